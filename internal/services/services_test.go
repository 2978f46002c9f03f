// internal/services/services_test.go
package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/unihub-backend/internal/catalog"
	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/media"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/store"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type stubUploader struct {
	mu      sync.Mutex
	folders []string
	fail    string
}

func (u *stubUploader) Upload(ctx context.Context, file media.File, folder string) (models.MediaItem, error) {
	u.mu.Lock()
	u.folders = append(u.folders, folder)
	u.mu.Unlock()
	if file.Name == u.fail {
		return models.MediaItem{}, media.ErrUploadFailed
	}
	return models.MediaItem{
		PublicID:     folder + "/" + file.Name,
		SecureURL:    "https://media.test/" + file.Name,
		ResourceType: media.ResourceKind(file.ContentType),
		Format:       "jpg",
	}, nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func num(v float64) *forms.NumericInput {
	n := forms.NumberInput(v)
	return &n
}

// invalidFields lists the fields named by a validation error.
func invalidFields(err error) []string {
	var fields []string
	for _, e := range utils.GetValidationErrors(err) {
		fields = append(fields, e.Field)
	}
	return fields
}

func fullInput(title string) forms.PropertyInput {
	return forms.PropertyInput{
		Title:       &title,
		CategoryID:  strPtr("cat"),
		Price:       num(1000),
		Location:    strPtr("Yaba, Lagos"),
		Description: strPtr("A quiet room"),
		AgentID:     strPtr("agent"),
	}
}

func file(name string) media.File {
	return media.File{Name: name, ContentType: "image/jpeg", Reader: strings.NewReader(name)}
}

type ServicesTestSuite struct {
	suite.Suite
	ctx        context.Context
	store      *store.MemoryStore
	now        time.Time
	uploader   *stubUploader
	tracker    *forms.Tracker
	catalog    *CatalogService
	properties *PropertyService
	categories *CategoryService
	agents     *AgentService
	settings   *SettingsService
}

func (suite *ServicesTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = store.NewMemoryStore()
	suite.now = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	suite.store.SetClock(func() time.Time {
		suite.now = suite.now.Add(time.Second)
		return suite.now
	})
	suite.uploader = &stubUploader{}
	suite.tracker = forms.NewTracker()

	suite.catalog = NewCatalogService(suite.store)
	suite.properties = NewPropertyService(suite.store, suite.uploader, suite.tracker, nil)
	suite.categories = NewCategoryService(suite.store, suite.tracker)
	suite.agents = NewAgentService(suite.store, suite.uploader, suite.tracker, nil)
	suite.settings = NewSettingsService(suite.store, suite.tracker)
}

func (suite *ServicesTestSuite) createProperty(title string, status models.PropertyStatus, price float64) *models.Property {
	in := fullInput(title)
	in.Status = &status
	in.Price = num(price)
	p, err := suite.properties.Create(suite.ctx, "admin", in)
	suite.Require().NoError(err)
	return p
}

func (suite *ServicesTestSuite) TestHomeUsesDefaultsAndNewestAvailable() {
	for i := 0; i < 8; i++ {
		suite.createProperty("p"+string(rune('a'+i)), models.PropertyStatusAvailable, 1000)
	}
	suite.createProperty("hidden", models.PropertyStatusHidden, 1000)

	home, err := suite.catalog.Home(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(models.DefaultHeroTitle, home.Settings.HeroTitle)
	suite.Require().Len(home.Featured, FeaturedLimit)
	suite.Equal("ph", home.Featured[0].Title)
}

func (suite *ServicesTestSuite) TestHomePrefersCuratedFeatured() {
	a := suite.createProperty("a", models.PropertyStatusAvailable, 1000)
	suite.createProperty("b", models.PropertyStatusAvailable, 1000)
	occupied := suite.createProperty("c", models.PropertyStatusOccupied, 1000)

	_, err := suite.settings.Update(suite.ctx, SettingsInput{
		HeroTitle:          strPtr("Welcome"),
		FeaturedProperties: []string{a.ID, occupied.ID, "missing"},
	})
	suite.Require().NoError(err)

	home, err := suite.catalog.Home(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("Welcome", home.Settings.HeroTitle)
	suite.Equal(models.DefaultCTAText, home.Settings.CTAText)
	suite.Require().Len(home.Featured, 1)
	suite.Equal(a.ID, home.Featured[0].ID)
}

func (suite *ServicesTestSuite) TestListingsExcludeHiddenAndApplyCriteria() {
	cat, err := suite.categories.Create(suite.ctx, "admin", CategoryInput{Name: strPtr("Studio")})
	suite.Require().NoError(err)
	inactive, err := suite.categories.Create(suite.ctx, "admin", CategoryInput{Name: strPtr("Old")})
	suite.Require().NoError(err)
	_, err = suite.categories.Update(suite.ctx, inactive.ID, CategoryInput{IsActive: new(bool)})
	suite.Require().NoError(err)

	cheap := suite.createProperty("cheap", models.PropertyStatusAvailable, 300000)
	suite.createProperty("pricey", models.PropertyStatusOccupied, 4500000)
	suite.createProperty("secret", models.PropertyStatusHidden, 100)
	_, err = suite.properties.Update(suite.ctx, cheap.ID, forms.PropertyInput{CategoryID: &cat.ID})
	suite.Require().NoError(err)

	page, err := suite.catalog.Listings(suite.ctx, catalog.Criteria{})
	suite.Require().NoError(err)
	suite.Equal(2, page.Total)
	suite.Require().Len(page.Categories, 1)
	suite.Equal("studio", page.Categories[0].Slug)

	max := 1000000.0
	page, err = suite.catalog.Listings(suite.ctx, catalog.Criteria{CategoryID: cat.ID, Location: "yaba", MaxPrice: &max})
	suite.Require().NoError(err)
	suite.Require().Len(page.Properties, 1)
	suite.Equal(cheap.ID, page.Properties[0].ID)
}

func (suite *ServicesTestSuite) TestPropertyDetails() {
	agent, err := suite.agents.Create(suite.ctx, "admin", forms.AgentInput{
		Name:           strPtr("Jane Smith"),
		Phone:          strPtr("+2348098765432"),
		WhatsappNumber: strPtr("+234 809 876 5432"),
	})
	suite.Require().NoError(err)
	suite.True(agent.IsActive)

	p := suite.createProperty("Cozy Studio", models.PropertyStatusAvailable, 800000)
	_, err = suite.properties.Update(suite.ctx, p.ID, forms.PropertyInput{AgentID: &agent.ID, CategoryID: strPtr("gone")})
	suite.Require().NoError(err)

	details, err := suite.catalog.PropertyDetails(suite.ctx, p.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(details.Agent)
	suite.Nil(details.Category)
	suite.True(strings.HasPrefix(details.ContactLink, "https://wa.me/2348098765432?text="))
	suite.Contains(details.ContactLink, "%E2%82%A6800%2C000")

	_, err = suite.properties.SetStatus(suite.ctx, p.ID, nil)
	suite.Require().NoError(err)
	details, err = suite.catalog.PropertyDetails(suite.ctx, p.ID)
	suite.Require().NoError(err)
	suite.Equal(models.PropertyStatusOccupied, details.Property.Status)
	suite.Empty(details.ContactLink)

	hidden := models.PropertyStatusHidden
	_, err = suite.properties.SetStatus(suite.ctx, p.ID, &hidden)
	suite.Require().NoError(err)
	_, err = suite.catalog.PropertyDetails(suite.ctx, p.ID)
	suite.ErrorIs(err, store.ErrNotFound)

	_, err = suite.catalog.PropertyDetails(suite.ctx, "missing")
	suite.ErrorIs(err, store.ErrNotFound)
}

func (suite *ServicesTestSuite) TestCreateValidatesForm() {
	blank := map[string]func(in *forms.PropertyInput){
		"title":       func(in *forms.PropertyInput) { in.Title = strPtr("  ") },
		"categoryId":  func(in *forms.PropertyInput) { in.CategoryID = nil },
		"location":    func(in *forms.PropertyInput) { in.Location = strPtr("") },
		"description": func(in *forms.PropertyInput) { in.Description = nil },
		"agentId":     func(in *forms.PropertyInput) { in.AgentID = strPtr(" ") },
	}
	for field, clear := range blank {
		in := fullInput("Studio")
		clear(&in)
		_, err := suite.properties.Create(suite.ctx, "admin", in)
		suite.Equal([]string{field}, invalidFields(err), field)
	}

	in := fullInput("Studio")
	in.Price = num(-1)
	_, err := suite.properties.Create(suite.ctx, "admin", in)
	suite.Equal([]string{"price"}, invalidFields(err))

	price := forms.TextInput("eight hundred")
	in = fullInput("Studio")
	in.Price = &price
	_, err = suite.properties.Create(suite.ctx, "admin", in)
	var fieldErr *forms.FieldError
	suite.Require().ErrorAs(err, &fieldErr)
	suite.Equal("price", fieldErr.Field)

	props, err := suite.store.ListProperties(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Empty(props)
}

func (suite *ServicesTestSuite) TestCreateCoercesTextPrices() {
	price := forms.TextInput("800000")
	deposit := forms.TextInput("")
	in := fullInput("Studio")
	in.Price = &price
	in.Deposit = &deposit
	p, err := suite.properties.Create(suite.ctx, "admin", in)
	suite.Require().NoError(err)
	suite.Equal(800000.0, p.Price)
	suite.Nil(p.Deposit)
	suite.Equal(models.PropertyStatusAvailable, p.Status)
	suite.NotNil(p.CreatedAt)
}

func (suite *ServicesTestSuite) TestStatusToggle() {
	p := suite.createProperty("t", models.PropertyStatusAvailable, 1)

	p, err := suite.properties.SetStatus(suite.ctx, p.ID, nil)
	suite.Require().NoError(err)
	suite.Equal(models.PropertyStatusOccupied, p.Status)

	p, err = suite.properties.SetStatus(suite.ctx, p.ID, nil)
	suite.Require().NoError(err)
	suite.Equal(models.PropertyStatusAvailable, p.Status)

	bogus := models.PropertyStatus("sold")
	_, err = suite.properties.SetStatus(suite.ctx, p.ID, &bogus)
	suite.Equal([]string{"status"}, invalidFields(err))
}

func (suite *ServicesTestSuite) TestFeatures() {
	p := suite.createProperty("t", models.PropertyStatusAvailable, 1)

	p, err := suite.properties.AddFeature(suite.ctx, p.ID, "  Water ")
	suite.Require().NoError(err)
	p, err = suite.properties.AddFeature(suite.ctx, p.ID, "Security")
	suite.Require().NoError(err)
	suite.Equal([]string{"Water", "Security"}, p.Features)

	_, err = suite.properties.AddFeature(suite.ctx, p.ID, "   ")
	suite.ErrorIs(err, forms.ErrEmptyFeature)

	p, err = suite.properties.RemoveFeature(suite.ctx, p.ID, 0)
	suite.Require().NoError(err)
	suite.Equal([]string{"Security"}, p.Features)

	_, err = suite.properties.RemoveFeature(suite.ctx, p.ID, 5)
	suite.ErrorIs(err, forms.ErrIndexOutOfRange)
}

func (suite *ServicesTestSuite) TestMediaUploadAndRemove() {
	p := suite.createProperty("t", models.PropertyStatusAvailable, 1)

	p, err := suite.properties.UploadMedia(suite.ctx, p.ID, []media.File{file("a.jpg"), file("b.jpg")})
	suite.Require().NoError(err)
	suite.Require().Len(p.Media, 2)
	suite.Equal(0, p.Media[0].Order)
	suite.Equal(1, p.Media[1].Order)
	suite.Equal(media.PropertyFolder(p.ID)+"/a.jpg", p.Media[0].PublicID)

	p, err = suite.properties.RemoveMedia(suite.ctx, p.ID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(p.Media, 1)
	suite.Equal(1, p.Media[0].Order)

	p, err = suite.properties.UploadMedia(suite.ctx, p.ID, []media.File{file("c.jpg")})
	suite.Require().NoError(err)
	suite.Equal([]int{1, 1}, []int{p.Media[0].Order, p.Media[1].Order})

	suite.uploader.fail = "bad.jpg"
	_, err = suite.properties.UploadMedia(suite.ctx, p.ID, []media.File{file("d.jpg"), file("bad.jpg")})
	suite.ErrorIs(err, media.ErrUploadFailed)

	p, err = suite.properties.Get(suite.ctx, p.ID)
	suite.Require().NoError(err)
	suite.Len(p.Media, 2)
}

func (suite *ServicesTestSuite) TestUploadStaged() {
	items, err := suite.properties.UploadStaged(suite.ctx, []media.File{file("a.jpg"), file("b.mp4")}, 3)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal(3, items[0].Order)
	suite.Equal(4, items[1].Order)
	suite.Contains(suite.uploader.folders, media.PropertyFolder(""))
}

func (suite *ServicesTestSuite) TestSubmissionInFlight() {
	p := suite.createProperty("t", models.PropertyStatusAvailable, 1)

	release, err := suite.tracker.Begin("property:" + p.ID)
	suite.Require().NoError(err)

	_, err = suite.properties.Update(suite.ctx, p.ID, forms.PropertyInput{Title: strPtr("again")})
	suite.ErrorIs(err, forms.ErrSubmissionInFlight)
	suite.ErrorIs(suite.properties.Delete(suite.ctx, p.ID), forms.ErrSubmissionInFlight)

	release()
	_, err = suite.properties.Update(suite.ctx, p.ID, forms.PropertyInput{Title: strPtr("again")})
	suite.NoError(err)
}

func (suite *ServicesTestSuite) TestCatalogSubmissionsInFlight() {
	release, err := suite.tracker.Begin("category:new:admin")
	suite.Require().NoError(err)
	_, err = suite.categories.Create(suite.ctx, "admin", CategoryInput{Name: strPtr("Studio")})
	suite.ErrorIs(err, forms.ErrSubmissionInFlight)
	_, err = suite.categories.Create(suite.ctx, "other", CategoryInput{Name: strPtr("Studio")})
	suite.Require().NoError(err, "another admin's form is independent")
	release()

	cat, err := suite.categories.Create(suite.ctx, "admin", CategoryInput{Name: strPtr("Duplex")})
	suite.Require().NoError(err)
	release, err = suite.tracker.Begin("category:" + cat.ID)
	suite.Require().NoError(err)
	_, err = suite.categories.Update(suite.ctx, cat.ID, CategoryInput{Name: strPtr("Duplexes")})
	suite.ErrorIs(err, forms.ErrSubmissionInFlight)
	suite.ErrorIs(suite.categories.Delete(suite.ctx, cat.ID), forms.ErrSubmissionInFlight)
	release()

	phone := strPtr("+2348012345678")
	release, err = suite.tracker.Begin("agent:new:admin")
	suite.Require().NoError(err)
	_, err = suite.agents.Create(suite.ctx, "admin", forms.AgentInput{Name: strPtr("Jane"), Phone: phone, WhatsappNumber: phone})
	suite.ErrorIs(err, forms.ErrSubmissionInFlight)
	release()

	agent, err := suite.agents.Create(suite.ctx, "admin", forms.AgentInput{Name: strPtr("Jane"), Phone: phone, WhatsappNumber: phone})
	suite.Require().NoError(err)
	release, err = suite.tracker.Begin("agent:" + agent.ID)
	suite.Require().NoError(err)
	_, err = suite.agents.Update(suite.ctx, agent.ID, forms.AgentInput{Name: strPtr("Janet")})
	suite.ErrorIs(err, forms.ErrSubmissionInFlight)
	suite.ErrorIs(suite.agents.Delete(suite.ctx, agent.ID), forms.ErrSubmissionInFlight)
	release()

	release, err = suite.tracker.Begin("settings")
	suite.Require().NoError(err)
	_, err = suite.settings.Update(suite.ctx, SettingsInput{CTAText: strPtr("Go")})
	suite.ErrorIs(err, forms.ErrSubmissionInFlight)
	release()

	s, err := suite.settings.Update(suite.ctx, SettingsInput{CTAText: strPtr("Go")})
	suite.Require().NoError(err)
	suite.Equal("Go", s.CTAText)
}

func (suite *ServicesTestSuite) TestConcurrentCategoryCreatesGetDistinctOrders() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := suite.categories.Create(suite.ctx, "admin"+strconv.Itoa(i), CategoryInput{Name: strPtr("Category " + strconv.Itoa(i))})
			suite.NoError(err)
		}(i)
	}
	wg.Wait()

	categories, err := suite.categories.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(categories, 8)
	orders := map[int]bool{}
	for _, c := range categories {
		orders[c.Order] = true
	}
	suite.Len(orders, 8)
}

func (suite *ServicesTestSuite) TestUpdateMissingProperty() {
	_, err := suite.properties.Update(suite.ctx, "missing", forms.PropertyInput{Title: strPtr("x")})
	suite.ErrorIs(err, store.ErrNotFound)
	suite.NoError(suite.properties.Delete(suite.ctx, "missing"))
}

func (suite *ServicesTestSuite) TestDashboard() {
	suite.createProperty("a", models.PropertyStatusAvailable, 1)
	suite.createProperty("b", models.PropertyStatusAvailable, 1)
	suite.createProperty("c", models.PropertyStatusOccupied, 1)
	suite.createProperty("d", models.PropertyStatusHidden, 1)
	_, err := suite.agents.Create(suite.ctx, "admin", forms.AgentInput{Name: strPtr("A"), Phone: strPtr("08012345678"), WhatsappNumber: strPtr("08012345678")})
	suite.Require().NoError(err)

	stats, err := suite.properties.Dashboard(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(DashboardStats{TotalProperties: 4, AvailableProperties: 2, OccupiedProperties: 1, TotalAgents: 1}, *stats)
}

func (suite *ServicesTestSuite) TestCategoryLifecycle() {
	first, err := suite.categories.Create(suite.ctx, "admin", CategoryInput{Name: strPtr("Studio Apartments")})
	suite.Require().NoError(err)
	suite.Equal("studio-apartments", first.Slug)
	suite.Equal(0, first.Order)
	suite.True(first.IsActive)

	second, err := suite.categories.Create(suite.ctx, "admin", CategoryInput{Name: strPtr("Duplex")})
	suite.Require().NoError(err)
	suite.Equal(1, second.Order)

	renamed, err := suite.categories.Update(suite.ctx, first.ID, CategoryInput{Name: strPtr("Studios")})
	suite.Require().NoError(err)
	suite.Equal("Studios", renamed.Name)
	suite.Equal("studio-apartments", renamed.Slug)

	suite.Require().NoError(suite.categories.Delete(suite.ctx, first.ID))
	third, err := suite.categories.Create(suite.ctx, "admin", CategoryInput{Name: strPtr("Shared Room")})
	suite.Require().NoError(err)
	suite.Equal(1, third.Order, "order is the current count, gaps are kept")

	_, err = suite.categories.Create(suite.ctx, "admin", CategoryInput{Name: strPtr("!!!")})
	suite.Equal([]string{"slug"}, invalidFields(err))

	_, err = suite.categories.Update(suite.ctx, second.ID, CategoryInput{Order: intPtr(-1)})
	suite.Equal([]string{"order"}, invalidFields(err))
}

func (suite *ServicesTestSuite) TestAgentLifecycle() {
	_, err := suite.agents.Create(suite.ctx, "admin", forms.AgentInput{Name: strPtr("No Phone")})
	suite.Equal([]string{"phone", "whatsappNumber"}, invalidFields(err))

	_, err = suite.agents.Create(suite.ctx, "admin", forms.AgentInput{Name: strPtr("Bad"), Phone: strPtr("not a phone"), WhatsappNumber: strPtr("xyz")})
	suite.Equal([]string{"phone", "whatsappNumber"}, invalidFields(err))

	agents, err := suite.agents.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(agents)

	agent, err := suite.agents.Create(suite.ctx, "admin", forms.AgentInput{Name: strPtr("John"), Phone: strPtr("+2348012345678"), WhatsappNumber: strPtr("0801 234 5678")})
	suite.Require().NoError(err)

	_, err = suite.agents.Update(suite.ctx, agent.ID, forms.AgentInput{Phone: strPtr("12")})
	suite.Equal([]string{"phone"}, invalidFields(err))

	url, err := suite.agents.UploadPhoto(suite.ctx, file("john.jpg"))
	suite.Require().NoError(err)
	suite.Equal([]string{media.AgentFolder}, suite.uploader.folders)

	agent, err = suite.agents.Update(suite.ctx, agent.ID, forms.AgentInput{ProfilePhotoURL: &url, IsActive: new(bool)})
	suite.Require().NoError(err)
	suite.Equal("https://media.test/john.jpg", agent.ProfilePhotoURL)
	suite.False(agent.IsActive)
	suite.Equal("John", agent.Name)

	suite.Require().NoError(suite.agents.Delete(suite.ctx, agent.ID))
	_, err = suite.agents.Get(suite.ctx, agent.ID)
	suite.ErrorIs(err, store.ErrNotFound)
}

func (suite *ServicesTestSuite) TestSettingsDefaultsAndMerge() {
	s, err := suite.settings.Get(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(models.DefaultSiteSettings(), *s)

	s, err = suite.settings.Update(suite.ctx, SettingsInput{HeroImage: strPtr("https://img.test/hero.jpg")})
	suite.Require().NoError(err)
	suite.Equal("https://img.test/hero.jpg", s.HeroImage)

	s, err = suite.settings.Update(suite.ctx, SettingsInput{CTAText: strPtr("Go")})
	suite.Require().NoError(err)
	suite.Equal("https://img.test/hero.jpg", s.HeroImage)
	suite.Equal("Go", s.CTAText)
}

func (suite *ServicesTestSuite) TestSeed() {
	result, err := NewSeedService(suite.store).Seed(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(SeedResult{Categories: 4, Agents: 2, Properties: 5}, *result)

	home, err := suite.catalog.Home(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(home.Featured, 4)
	suite.Equal("Affordable Shared Room in Akoka", home.Featured[0].Title)
	suite.NotEmpty(home.Settings.HeroImage)

	page, err := suite.catalog.Listings(suite.ctx, catalog.Criteria{})
	suite.Require().NoError(err)
	suite.Equal(5, page.Total)
	suite.Len(page.Categories, 4)

	details, err := suite.catalog.PropertyDetails(suite.ctx, home.Featured[0].ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(details.Agent)
	suite.Equal("Jane Smith", details.Agent.Name)
	suite.Require().NotNil(details.Category)
	suite.Equal("shared-room", details.Category.Slug)
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}

func TestSampleCatalogReferencesResolve(t *testing.T) {
	batch := SampleCatalog(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	categories := map[string]bool{}
	for _, c := range batch.Categories {
		categories[c.ID] = true
	}
	agents := map[string]bool{}
	for _, a := range batch.Agents {
		agents[a.ID] = true
	}

	for i, p := range batch.Properties {
		assert.True(t, categories[p.CategoryID], p.Title)
		assert.True(t, agents[p.AgentID], p.Title)
		require.NotNil(t, p.CreatedAt)
		if i > 0 {
			assert.True(t, p.CreatedAt.After(*batch.Properties[i-1].CreatedAt))
		}
	}
}

type failingStore struct {
	*store.MemoryStore
}

func (failingStore) ListProperties(ctx context.Context, status models.PropertyStatus) ([]models.Property, error) {
	return nil, errors.New("connection reset")
}

func TestCatalogSurfacesStoreErrors(t *testing.T) {
	svc := NewCatalogService(failingStore{store.NewMemoryStore()})

	_, err := svc.Home(context.Background())
	assert.ErrorContains(t, err, "connection reset")

	_, err = svc.Listings(context.Background(), catalog.Criteria{})
	assert.ErrorContains(t, err, "connection reset")
}

// internal/models/catalog.go
package models

type Category struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name" validate:"required,max=100"`
	Slug     string `json:"slug" bson:"slug" validate:"required"`
	IsActive bool   `json:"isActive" bson:"isActive"`
	Order    int    `json:"order" bson:"order" validate:"gte=0"`
}

type CategoryUpdate struct {
	Name     *string
	IsActive *bool
	Order    *int
}

func (u CategoryUpdate) Apply(c *Category) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}
	if u.Order != nil {
		c.Order = *u.Order
	}
}

type Agent struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	Name            string `json:"name" bson:"name" validate:"required,max=100"`
	Phone           string `json:"phone" bson:"phone" validate:"required,phone"`
	WhatsappNumber  string `json:"whatsappNumber" bson:"whatsappNumber" validate:"required,phone"`
	ProfilePhotoURL string `json:"profilePhotoURL,omitempty" bson:"profilePhotoURL,omitempty" validate:"omitempty,url"`
	IsActive        bool   `json:"isActive" bson:"isActive"`
}

type AgentUpdate struct {
	Name            *string
	Phone           *string
	WhatsappNumber  *string
	ProfilePhotoURL *string
	IsActive        *bool
}

func (u AgentUpdate) Apply(a *Agent) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Phone != nil {
		a.Phone = *u.Phone
	}
	if u.WhatsappNumber != nil {
		a.WhatsappNumber = *u.WhatsappNumber
	}
	if u.ProfilePhotoURL != nil {
		a.ProfilePhotoURL = *u.ProfilePhotoURL
	}
	if u.IsActive != nil {
		a.IsActive = *u.IsActive
	}
}

// SiteSettings is the singleton document holding home page content.
type SiteSettings struct {
	HeroTitle          string   `json:"heroTitle" bson:"heroTitle"`
	HeroSubtitle       string   `json:"heroSubtitle" bson:"heroSubtitle"`
	HeroImage          string   `json:"heroImage" bson:"heroImage"`
	CTAText            string   `json:"ctaText" bson:"ctaText"`
	FeaturedProperties []string `json:"featuredProperties" bson:"featuredProperties"`
}

type SiteSettingsUpdate struct {
	HeroTitle             *string
	HeroSubtitle          *string
	HeroImage             *string
	CTAText               *string
	FeaturedProperties    []string
	SetFeaturedProperties bool
}

func (u SiteSettingsUpdate) Apply(s *SiteSettings) {
	if u.HeroTitle != nil {
		s.HeroTitle = *u.HeroTitle
	}
	if u.HeroSubtitle != nil {
		s.HeroSubtitle = *u.HeroSubtitle
	}
	if u.HeroImage != nil {
		s.HeroImage = *u.HeroImage
	}
	if u.CTAText != nil {
		s.CTAText = *u.CTAText
	}
	if u.SetFeaturedProperties {
		s.FeaturedProperties = append([]string{}, u.FeaturedProperties...)
	}
}

// Home page copy used while the settings document has not been written yet.
const (
	DefaultHeroTitle    = "Find Your Perfect Student Home"
	DefaultHeroSubtitle = "Verified listings, direct agent contact, no hidden fees."
	DefaultCTAText      = "Browse Listings"
)

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		HeroTitle:          DefaultHeroTitle,
		HeroSubtitle:       DefaultHeroSubtitle,
		CTAText:            DefaultCTAText,
		FeaturedProperties: []string{},
	}
}

// WithFallbacks fills blank copy fields with the defaults.
func (s SiteSettings) WithFallbacks() SiteSettings {
	if s.HeroTitle == "" {
		s.HeroTitle = DefaultHeroTitle
	}
	if s.HeroSubtitle == "" {
		s.HeroSubtitle = DefaultHeroSubtitle
	}
	if s.CTAText == "" {
		s.CTAText = DefaultCTAText
	}
	if s.FeaturedProperties == nil {
		s.FeaturedProperties = []string{}
	}
	return s
}

// SeedBatch is a complete sample catalog written as one unit.
type SeedBatch struct {
	Settings   SiteSettings
	Categories []Category
	Agents     []Agent
	Properties []Property
}

// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/javajoker/unihub-backend/internal/catalog"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/store"
	"github.com/javajoker/unihub-backend/internal/utils"
)

// FeaturedLimit caps the properties promoted on the home page.
const FeaturedLimit = 6

// CatalogService serves the public site.
type CatalogService struct {
	store store.Store
}

type HomePage struct {
	Settings models.SiteSettings `json:"settings"`
	Featured []models.Property   `json:"featured"`
}

type ListingsPage struct {
	Properties []models.Property `json:"properties"`
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}

type PropertyDetails struct {
	Property    models.Property  `json:"property"`
	Agent       *models.Agent    `json:"agent,omitempty"`
	Category    *models.Category `json:"category,omitempty"`
	ContactLink string           `json:"contactLink,omitempty"`
}

func NewCatalogService(s store.Store) *CatalogService {
	return &CatalogService{store: s}
}

// Home returns the hero copy and up to FeaturedLimit available properties.
// Curated ids win when present; otherwise the newest available listings are used.
func (s *CatalogService) Home(ctx context.Context) (*HomePage, error) {
	var settings *models.SiteSettings
	var available []models.Property

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.store.GetSiteSettings(gctx)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("failed to load site settings: %w", err)
		}
		settings = st
		return nil
	})
	g.Go(func() error {
		props, err := s.store.ListProperties(gctx, models.PropertyStatusAvailable)
		if err != nil {
			return fmt.Errorf("failed to list available properties: %w", err)
		}
		available = props
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &HomePage{Settings: models.DefaultSiteSettings()}
	if settings != nil {
		page.Settings = settings.WithFallbacks()
	}
	page.Featured = selectFeatured(available, page.Settings.FeaturedProperties)
	return page, nil
}

func selectFeatured(available []models.Property, ids []string) []models.Property {
	featured := available
	if len(ids) > 0 {
		wanted := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			wanted[id] = struct{}{}
		}
		featured = make([]models.Property, 0, len(ids))
		for _, p := range available {
			if _, ok := wanted[p.ID]; ok {
				featured = append(featured, p)
			}
		}
	}
	if len(featured) > FeaturedLimit {
		featured = featured[:FeaturedLimit]
	}
	if featured == nil {
		featured = []models.Property{}
	}
	return featured
}

// Listings returns every non-hidden property matching c, plus the active categories.
func (s *CatalogService) Listings(ctx context.Context, c catalog.Criteria) (*ListingsPage, error) {
	var props []models.Property
	var categories []models.Category

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := s.store.ListProperties(gctx, "")
		if err != nil {
			return fmt.Errorf("failed to list properties: %w", err)
		}
		props = all
		return nil
	})
	g.Go(func() error {
		all, err := s.store.ListCategories(gctx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		categories = all
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	visible := make([]models.Property, 0, len(props))
	for _, p := range props {
		if p.Status != models.PropertyStatusHidden {
			visible = append(visible, p)
		}
	}
	matched := catalog.Filter(visible, c)

	return &ListingsPage{
		Properties: matched,
		Categories: ActiveCategories(categories),
		Total:      len(matched),
	}, nil
}

// ActiveCategories keeps the active categories in their given order.
func ActiveCategories(categories []models.Category) []models.Category {
	active := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active
}

// PublicCategories lists the categories shown on the public site.
func (s *CatalogService) PublicCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return ActiveCategories(categories), nil
}

// PropertyDetails loads one public listing. Hidden listings are reported as not found.
// A dangling agent or category reference is omitted rather than treated as an error.
func (s *CatalogService) PropertyDetails(ctx context.Context, id string) (*PropertyDetails, error) {
	p, err := s.store.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == models.PropertyStatusHidden {
		return nil, store.ErrNotFound
	}

	details := &PropertyDetails{Property: *p}

	if p.AgentID != "" {
		agent, err := s.store.GetAgent(ctx, p.AgentID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("failed to load agent: %w", err)
		}
		details.Agent = agent
	}
	if p.CategoryID != "" {
		category, err := s.store.GetCategory(ctx, p.CategoryID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("failed to load category: %w", err)
		}
		details.Category = category
	}

	if details.Agent != nil && p.Status != models.PropertyStatusOccupied && details.Agent.WhatsappNumber != "" {
		details.ContactLink = utils.WhatsAppLink(details.Agent.WhatsappNumber, utils.InquiryMessage(p.Title, p.Price, p.Location))
	}
	return details, nil
}

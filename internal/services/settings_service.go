// internal/services/settings_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/store"
)

type SettingsInput struct {
	HeroTitle          *string  `json:"heroTitle"`
	HeroSubtitle       *string  `json:"heroSubtitle"`
	HeroImage          *string  `json:"heroImage"`
	CTAText            *string  `json:"ctaText"`
	FeaturedProperties []string `json:"featuredProperties"`
}

type SettingsService struct {
	store   store.Store
	tracker *forms.Tracker
}

func NewSettingsService(s store.Store, tracker *forms.Tracker) *SettingsService {
	if tracker == nil {
		tracker = forms.NewTracker()
	}
	return &SettingsService{store: s, tracker: tracker}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (s *SettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.store.GetSiteSettings(ctx)
	if errors.Is(err, store.ErrNotFound) {
		defaults := models.DefaultSiteSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}
	return settings, nil
}

// Update merges the given fields into the settings document, creating it if needed.
func (s *SettingsService) Update(ctx context.Context, in SettingsInput) (*models.SiteSettings, error) {
	release, err := s.tracker.Begin("settings")
	if err != nil {
		return nil, err
	}
	defer release()

	update := models.SiteSettingsUpdate{
		HeroTitle:             in.HeroTitle,
		HeroSubtitle:          in.HeroSubtitle,
		HeroImage:             in.HeroImage,
		CTAText:               in.CTAText,
		FeaturedProperties:    in.FeaturedProperties,
		SetFeaturedProperties: in.FeaturedProperties != nil,
	}

	ctx = context.WithoutCancel(ctx)
	if err := s.store.UpsertSiteSettings(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to save site settings: %w", err)
	}
	return s.Get(ctx)
}

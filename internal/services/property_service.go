// internal/services/property_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/media"
	"github.com/javajoker/unihub-backend/internal/metrics"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/store"
)

// PropertyService backs the admin property screens.
type PropertyService struct {
	store    store.Store
	uploader media.Uploader
	tracker  *forms.Tracker
	metrics  *metrics.Metrics
}

type DashboardStats struct {
	TotalProperties     int `json:"totalProperties"`
	AvailableProperties int `json:"availableProperties"`
	OccupiedProperties  int `json:"occupiedProperties"`
	TotalAgents         int `json:"totalAgents"`
}

func NewPropertyService(s store.Store, uploader media.Uploader, tracker *forms.Tracker, m *metrics.Metrics) *PropertyService {
	if tracker == nil {
		tracker = forms.NewTracker()
	}
	return &PropertyService{store: s, uploader: uploader, tracker: tracker, metrics: m}
}

// List returns properties newest first. An empty status lists all of them.
func (s *PropertyService) List(ctx context.Context, status models.PropertyStatus) ([]models.Property, error) {
	if status != "" && !status.Valid() {
		return nil, &forms.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}
	props, err := s.store.ListProperties(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return props, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	return s.store.GetProperty(ctx, id)
}

// Create submits a new property form. submitter identifies the form instance.
func (s *PropertyService) Create(ctx context.Context, submitter string, in forms.PropertyInput) (*models.Property, error) {
	release, err := s.tracker.Begin("property:new:" + submitter)
	if err != nil {
		return nil, err
	}
	defer release()

	form := forms.NewPropertyForm()
	form.Apply(in)
	fields, err := form.Fields()
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	id, err := s.store.CreateProperty(ctx, fields)
	s.metrics.PropertyOperation("create", err)
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return s.store.GetProperty(ctx, id)
}

// Update submits an edit form: the given values are staged over the stored
// property and the full field set is written back.
func (s *PropertyService) Update(ctx context.Context, id string, in forms.PropertyInput) (*models.Property, error) {
	return s.edit(ctx, id, "update", func(form *forms.PropertyForm) error {
		form.Apply(in)
		return nil
	})
}

// SetStatus sets the status, or toggles between available and occupied when status is nil.
func (s *PropertyService) SetStatus(ctx context.Context, id string, status *models.PropertyStatus) (*models.Property, error) {
	return s.edit(ctx, id, "status", func(form *forms.PropertyForm) error {
		next := form.Status().Toggled()
		if status != nil {
			next = *status
		}
		form.Apply(forms.PropertyInput{Status: &next})
		return nil
	})
}

func (s *PropertyService) AddFeature(ctx context.Context, id, feature string) (*models.Property, error) {
	return s.edit(ctx, id, "add_feature", func(form *forms.PropertyForm) error {
		return form.AddFeature(feature)
	})
}

func (s *PropertyService) RemoveFeature(ctx context.Context, id string, index int) (*models.Property, error) {
	return s.edit(ctx, id, "remove_feature", func(form *forms.PropertyForm) error {
		return form.RemoveFeature(index)
	})
}

// UploadMedia uploads files into the property's folder and appends them to its media.
// Nothing is appended when any upload fails.
func (s *PropertyService) UploadMedia(ctx context.Context, id string, files []media.File) (*models.Property, error) {
	if _, err := s.store.GetProperty(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.upload(ctx, files, media.PropertyFolder(id))
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, id, "append_media", func(form *forms.PropertyForm) error {
		form.AppendMedia(items...)
		return nil
	})
}

func (s *PropertyService) RemoveMedia(ctx context.Context, id string, index int) (*models.Property, error) {
	return s.edit(ctx, id, "remove_media", func(form *forms.PropertyForm) error {
		return form.RemoveMedia(index)
	})
}

// UploadStaged uploads media for a property form that has not been saved yet.
// Orders continue from offset, the length of the caller's staged list.
func (s *PropertyService) UploadStaged(ctx context.Context, files []media.File, offset int) ([]models.MediaItem, error) {
	items, err := s.upload(ctx, files, media.PropertyFolder(""))
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	staged := make(forms.MediaList, offset)
	staged.Append(items...)
	return staged[offset:], nil
}

func (s *PropertyService) upload(ctx context.Context, files []media.File, folder string) ([]models.MediaItem, error) {
	started := time.Now()
	items, err := media.UploadAll(context.WithoutCancel(ctx), s.uploader, files, folder)
	s.metrics.MediaUpload(started, err)
	return items, err
}

// Delete removes the property. Deleting a missing property succeeds.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	release, err := s.tracker.Begin("property:" + id)
	if err != nil {
		return err
	}
	defer release()

	err = s.store.DeleteProperty(context.WithoutCancel(ctx), id)
	s.metrics.PropertyOperation("delete", err)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}

// edit loads the property into an edit form, applies change and writes the result.
func (s *PropertyService) edit(ctx context.Context, id, operation string, change func(*forms.PropertyForm) error) (*models.Property, error) {
	release, err := s.tracker.Begin("property:" + id)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.store.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	form := forms.EditPropertyForm(existing)
	if err := change(form); err != nil {
		return nil, err
	}
	fields, err := form.Fields()
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	err = s.store.UpdateProperty(ctx, id, fields.FullUpdate())
	s.metrics.PropertyOperation(operation, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return s.store.GetProperty(ctx, id)
}

// Dashboard counts properties by status and agents.
func (s *PropertyService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var props []models.Property
	var agents []models.Agent

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		props, err = s.store.ListProperties(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		agents, err = s.store.ListAgents(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	stats := &DashboardStats{TotalProperties: len(props), TotalAgents: len(agents)}
	for _, p := range props {
		switch p.Status {
		case models.PropertyStatusAvailable:
			stats.AvailableProperties++
		case models.PropertyStatusOccupied:
			stats.OccupiedProperties++
		}
	}
	return stats, nil
}

// internal/services/agent_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/media"
	"github.com/javajoker/unihub-backend/internal/metrics"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/store"
)

type AgentService struct {
	store    store.Store
	uploader media.Uploader
	tracker  *forms.Tracker
	metrics  *metrics.Metrics
}

func NewAgentService(s store.Store, uploader media.Uploader, tracker *forms.Tracker, m *metrics.Metrics) *AgentService {
	if tracker == nil {
		tracker = forms.NewTracker()
	}
	return &AgentService{store: s, uploader: uploader, tracker: tracker, metrics: m}
}

func (s *AgentService) List(ctx context.Context) ([]models.Agent, error) {
	agents, err := s.store.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

func (s *AgentService) Get(ctx context.Context, id string) (*models.Agent, error) {
	return s.store.GetAgent(ctx, id)
}

// Create submits a new agent form. submitter identifies the form instance.
func (s *AgentService) Create(ctx context.Context, submitter string, in forms.AgentInput) (*models.Agent, error) {
	release, err := s.tracker.Begin("agent:new:" + submitter)
	if err != nil {
		return nil, err
	}
	defer release()

	form := forms.NewAgentForm()
	form.Apply(in)
	agent, err := form.Agent()
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	id, err := s.store.CreateAgent(ctx, agent)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return s.store.GetAgent(ctx, id)
}

func (s *AgentService) Update(ctx context.Context, id string, in forms.AgentInput) (*models.Agent, error) {
	release, err := s.tracker.Begin("agent:" + id)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.store.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	form := forms.EditAgentForm(existing)
	form.Apply(in)
	update, err := form.Update()
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	if err := s.store.UpdateAgent(ctx, id, update); err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return s.store.GetAgent(ctx, id)
}

func (s *AgentService) Delete(ctx context.Context, id string) error {
	release, err := s.tracker.Begin("agent:" + id)
	if err != nil {
		return err
	}
	defer release()

	if err := s.store.DeleteAgent(context.WithoutCancel(ctx), id); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// UploadPhoto stores a profile photo and returns its URL for the agent form.
func (s *AgentService) UploadPhoto(ctx context.Context, file media.File) (string, error) {
	started := time.Now()
	item, err := s.uploader.Upload(context.WithoutCancel(ctx), file, media.AgentFolder)
	s.metrics.MediaUpload(started, err)
	if err != nil {
		return "", err
	}
	return item.SecureURL, nil
}

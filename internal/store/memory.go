// internal/store/memory.go
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/javajoker/unihub-backend/internal/models"
)

// MemoryStore is a process-local catalog used for development and tests.
type MemoryStore struct {
	mu         sync.RWMutex
	now        func() time.Time
	seq        int
	properties map[string]models.Property
	agents     map[string]agentRow
	categories map[string]models.Category
	settings   *models.SiteSettings
}

type agentRow struct {
	agent models.Agent
	seq   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:        time.Now,
		properties: make(map[string]models.Property),
		agents:     make(map[string]agentRow),
		categories: make(map[string]models.Category),
	}
}

// SetClock overrides the time source used for property timestamps.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Properties

func (s *MemoryStore) ListProperties(ctx context.Context, status models.PropertyStatus) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	properties := []models.Property{}
	for _, p := range s.properties {
		if status != "" && p.Status != status {
			continue
		}
		properties = append(properties, cloneProperty(p))
	}

	// Map iteration is random; break creation-time ties by id for a stable order.
	sort.Slice(properties, func(i, j int) bool { return properties[i].ID < properties[j].ID })
	SortNewestFirst(properties)
	return properties, nil
}

func (s *MemoryStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneProperty(p)
	return &out, nil
}

func (s *MemoryStore) CreateProperty(ctx context.Context, fields models.PropertyFields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.properties[id] = cloneProperty(newPropertyDocument(id, fields, s.now().UTC()))
	return id, nil
}

func (s *MemoryStore) UpdateProperty(ctx context.Context, id string, update models.PropertyUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[id]
	if !ok {
		return ErrNotFound
	}
	update.Apply(&p)
	updated := s.now().UTC()
	p.UpdatedAt = &updated
	s.properties[id] = p
	return nil
}

func (s *MemoryStore) DeleteProperty(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.properties, id)
	return nil
}

// Agents

func (s *MemoryStore) ListAgents(ctx context.Context) ([]models.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]agentRow, 0, len(s.agents))
	for _, row := range s.agents {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	agents := make([]models.Agent, 0, len(rows))
	for _, row := range rows {
		agents = append(agents, row.agent)
	}
	return agents, nil
}

func (s *MemoryStore) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.agents[id]
	if !ok {
		return nil, ErrNotFound
	}
	agent := row.agent
	return &agent, nil
}

func (s *MemoryStore) CreateAgent(ctx context.Context, agent models.Agent) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agent.ID = uuid.NewString()
	s.putAgent(agent)
	return agent.ID, nil
}

func (s *MemoryStore) putAgent(agent models.Agent) {
	s.seq++
	s.agents[agent.ID] = agentRow{agent: agent, seq: s.seq}
}

func (s *MemoryStore) UpdateAgent(ctx context.Context, id string, update models.AgentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.agents[id]
	if !ok {
		return ErrNotFound
	}
	update.Apply(&row.agent)
	s.agents[id] = row
	return nil
}

func (s *MemoryStore) DeleteAgent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.agents, id)
	return nil
}

// Categories

func (s *MemoryStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Order != categories[j].Order {
			return categories[i].Order < categories[j].Order
		}
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

func (s *MemoryStore) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) CreateCategory(ctx context.Context, category models.Category) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = uuid.NewString()
	s.categories[category.ID] = category
	return category.ID, nil
}

func (s *MemoryStore) UpdateCategory(ctx context.Context, id string, update models.CategoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return ErrNotFound
	}
	update.Apply(&c)
	s.categories[id] = c
	return nil
}

func (s *MemoryStore) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categories, id)
	return nil
}

// Settings

func (s *MemoryStore) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return nil, ErrNotFound
	}
	out := *s.settings
	out.FeaturedProperties = append([]string{}, s.settings.FeaturedProperties...)
	return &out, nil
}

func (s *MemoryStore) UpsertSiteSettings(ctx context.Context, update models.SiteSettingsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertSettings(update)
	return nil
}

func (s *MemoryStore) upsertSettings(update models.SiteSettingsUpdate) {
	if s.settings == nil {
		s.settings = &models.SiteSettings{FeaturedProperties: []string{}}
	}
	update.Apply(s.settings)
}

// SeedCatalog applies the batch under a single lock so readers never observe half of it.
func (s *MemoryStore) SeedCatalog(ctx context.Context, batch models.SeedBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := batch.Settings
	s.upsertSettings(models.SiteSettingsUpdate{
		HeroTitle:             &settings.HeroTitle,
		HeroSubtitle:          &settings.HeroSubtitle,
		HeroImage:             &settings.HeroImage,
		CTAText:               &settings.CTAText,
		FeaturedProperties:    settings.FeaturedProperties,
		SetFeaturedProperties: true,
	})

	for _, c := range batch.Categories {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		s.categories[c.ID] = c
	}
	for _, a := range batch.Agents {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		s.putAgent(a)
	}

	now := s.now().UTC()
	for _, p := range batch.Properties {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		doc := newPropertyDocument(id, p.Fields(), now)
		if p.CreatedAt != nil {
			doc.CreatedAt = p.CreatedAt
		}
		s.properties[id] = cloneProperty(doc)
	}
	return nil
}

func cloneProperty(p models.Property) models.Property {
	p.Features = append([]string{}, p.Features...)
	p.Media = append([]models.MediaItem{}, p.Media...)
	if p.Deposit != nil {
		d := *p.Deposit
		p.Deposit = &d
	}
	return p
}

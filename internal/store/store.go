// internal/store/store.go
package store

import (
	"context"
	"errors"
	"sort"

	"github.com/javajoker/unihub-backend/internal/models"
)

var ErrNotFound = errors.New("document not found")

// Collection names in the document store.
const (
	PropertiesCollection = "properties"
	AgentsCollection     = "agents"
	CategoriesCollection = "categories"
	SettingsCollection   = "settings"

	// SettingsDocumentID is the id of the singleton settings document.
	SettingsDocumentID = "general"
)

type PropertyStore interface {
	// ListProperties returns properties newest first. An empty status lists every property.
	ListProperties(ctx context.Context, status models.PropertyStatus) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	CreateProperty(ctx context.Context, fields models.PropertyFields) (string, error)
	UpdateProperty(ctx context.Context, id string, update models.PropertyUpdate) error
	DeleteProperty(ctx context.Context, id string) error
}

type AgentStore interface {
	ListAgents(ctx context.Context) ([]models.Agent, error)
	GetAgent(ctx context.Context, id string) (*models.Agent, error)
	CreateAgent(ctx context.Context, agent models.Agent) (string, error)
	UpdateAgent(ctx context.Context, id string, update models.AgentUpdate) error
	DeleteAgent(ctx context.Context, id string) error
}

type CategoryStore interface {
	// ListCategories returns categories in ascending order.
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (string, error)
	UpdateCategory(ctx context.Context, id string, update models.CategoryUpdate) error
	DeleteCategory(ctx context.Context, id string) error
}

type SettingsStore interface {
	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)
	// UpsertSiteSettings creates the settings document if absent and merges the given fields.
	UpsertSiteSettings(ctx context.Context, update models.SiteSettingsUpdate) error
}

type CatalogSeeder interface {
	// SeedCatalog writes the whole batch or nothing.
	SeedCatalog(ctx context.Context, batch models.SeedBatch) error
}

// Store is the full catalog data-access surface.
type Store interface {
	PropertyStore
	AgentStore
	CategoryStore
	SettingsStore
	CatalogSeeder
	Ping(ctx context.Context) error
}

// SortNewestFirst orders properties by creation time, newest first.
// Properties without a creation time sort as the oldest.
func SortNewestFirst(props []models.Property) {
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].CreatedUnix() > props[j].CreatedUnix()
	})
}

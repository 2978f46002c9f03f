// internal/store/cached.go
package store

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/unihub-backend/internal/cache"
	"github.com/javajoker/unihub-backend/internal/models"
)

// CachedStore serves the public catalog reads through a cache. Every write
// bumps a generation counter that is part of each cache key, so a single
// write invalidates all cached reads at once.
type CachedStore struct {
	Store
	cache  cache.Cache
	ttl    time.Duration
	prefix string
	onRead func(name string, hit bool)
}

// DefaultCacheTTL applies when NewCachedStore is given no positive TTL.
const DefaultCacheTTL = time.Minute

// NewCachedStore wraps inner. Entries always expire, so stale generations age out.
func NewCachedStore(inner Store, c cache.Cache, ttl time.Duration, prefix string) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{Store: inner, cache: c, ttl: ttl, prefix: prefix}
}

// OnRead registers a callback invoked after every cached read with whether it was a hit.
func (s *CachedStore) OnRead(fn func(name string, hit bool)) *CachedStore {
	s.onRead = fn
	return s
}

func (s *CachedStore) observe(name string, hit bool) {
	if s.onRead != nil {
		s.onRead(name, hit)
	}
}

func (s *CachedStore) generationKey() string {
	return s.prefix + ":generation"
}

func (s *CachedStore) key(ctx context.Context, name string, params map[string]string) (string, bool) {
	gen, err := s.cache.Counter(ctx, s.generationKey())
	if err != nil {
		logrus.WithError(err).Warn("Cache generation unavailable, reading through")
		return "", false
	}
	if params == nil {
		params = map[string]string{}
	}
	params["gen"] = strconv.FormatInt(gen, 10)
	return cache.Key(s.prefix, name, params), true
}

func (s *CachedStore) invalidate(ctx context.Context) {
	if _, err := s.cache.Incr(ctx, s.generationKey()); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate catalog cache")
	}
}

func readThrough[T any](ctx context.Context, s *CachedStore, name string, params map[string]string, load func() (T, error)) (T, error) {
	key, ok := s.key(ctx, name, params)
	if ok {
		var cached T
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
		} else if found {
			s.observe(name, true)
			return cached, nil
		}
	}
	s.observe(name, false)

	value, err := load()
	if err != nil {
		return value, err
	}

	if ok {
		if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
		}
	}
	return value, nil
}

func (s *CachedStore) ListProperties(ctx context.Context, status models.PropertyStatus) ([]models.Property, error) {
	return readThrough(ctx, s, "properties", map[string]string{"status": string(status)}, func() ([]models.Property, error) {
		return s.Store.ListProperties(ctx, status)
	})
}

func (s *CachedStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return readThrough(ctx, s, "categories", nil, func() ([]models.Category, error) {
		return s.Store.ListCategories(ctx)
	})
}

func (s *CachedStore) ListAgents(ctx context.Context) ([]models.Agent, error) {
	return readThrough(ctx, s, "agents", nil, func() ([]models.Agent, error) {
		return s.Store.ListAgents(ctx)
	})
}

func (s *CachedStore) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	return readThrough(ctx, s, "settings", nil, func() (*models.SiteSettings, error) {
		return s.Store.GetSiteSettings(ctx)
	})
}

// Writes

func (s *CachedStore) CreateProperty(ctx context.Context, fields models.PropertyFields) (string, error) {
	id, err := s.Store.CreateProperty(ctx, fields)
	if err == nil {
		s.invalidate(ctx)
	}
	return id, err
}

func (s *CachedStore) UpdateProperty(ctx context.Context, id string, update models.PropertyUpdate) error {
	return s.afterWrite(ctx, s.Store.UpdateProperty(ctx, id, update))
}

func (s *CachedStore) DeleteProperty(ctx context.Context, id string) error {
	return s.afterWrite(ctx, s.Store.DeleteProperty(ctx, id))
}

func (s *CachedStore) CreateAgent(ctx context.Context, agent models.Agent) (string, error) {
	id, err := s.Store.CreateAgent(ctx, agent)
	if err == nil {
		s.invalidate(ctx)
	}
	return id, err
}

func (s *CachedStore) UpdateAgent(ctx context.Context, id string, update models.AgentUpdate) error {
	return s.afterWrite(ctx, s.Store.UpdateAgent(ctx, id, update))
}

func (s *CachedStore) DeleteAgent(ctx context.Context, id string) error {
	return s.afterWrite(ctx, s.Store.DeleteAgent(ctx, id))
}

func (s *CachedStore) CreateCategory(ctx context.Context, category models.Category) (string, error) {
	id, err := s.Store.CreateCategory(ctx, category)
	if err == nil {
		s.invalidate(ctx)
	}
	return id, err
}

func (s *CachedStore) UpdateCategory(ctx context.Context, id string, update models.CategoryUpdate) error {
	return s.afterWrite(ctx, s.Store.UpdateCategory(ctx, id, update))
}

func (s *CachedStore) DeleteCategory(ctx context.Context, id string) error {
	return s.afterWrite(ctx, s.Store.DeleteCategory(ctx, id))
}

func (s *CachedStore) UpsertSiteSettings(ctx context.Context, update models.SiteSettingsUpdate) error {
	return s.afterWrite(ctx, s.Store.UpsertSiteSettings(ctx, update))
}

func (s *CachedStore) SeedCatalog(ctx context.Context, batch models.SeedBatch) error {
	return s.afterWrite(ctx, s.Store.SeedCatalog(ctx, batch))
}

func (s *CachedStore) afterWrite(ctx context.Context, err error) error {
	if err == nil {
		s.invalidate(ctx)
	}
	return err
}

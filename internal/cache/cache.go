// internal/cache/cache.go
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/javajoker/unihub-backend/internal/config"
)

// Cache stores JSON-encoded values and integer counters.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Counter returns the current value of an integer key, zero when unset.
	Counter(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// New builds the cache selected by configuration.
func New(cfg *config.Config) (Cache, error) {
	switch cfg.Cache.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisCache(client), nil
	case "memory":
		return NewMemoryCache(), nil
	case "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.Cache.Driver)
	}
}

// Key builds a deterministic key from a name and query parameters.
func Key(prefix, name string, params map[string]string) string {
	if len(params) == 0 {
		return prefix + ":" + name
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := sha256.Sum256([]byte(builder.String()))
	return prefix + ":" + name + ":" + hex.EncodeToString(hash[:8])
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, dest interface{}) (bool, error) { return false, nil }

func (Noop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (Noop) Counter(ctx context.Context, key string) (int64, error) { return 0, nil }

func (Noop) Incr(ctx context.Context, key string) (int64, error) { return 0, nil }

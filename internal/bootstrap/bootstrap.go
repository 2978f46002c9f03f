// internal/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/unihub-backend/internal/cache"
	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/database"
	"github.com/javajoker/unihub-backend/internal/metrics"
	"github.com/javajoker/unihub-backend/internal/store"
)

// OpenStore connects the catalog backend selected by STORE_DRIVER and wraps it
// in the read-through cache unless caching is disabled. The returned func
// releases every connection it opened.
func OpenStore(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (store.Store, func(), error) {
	var (
		base    store.Store
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Mongo.StoreDriver {
	case "memory":
		logrus.Warn("Using the in-memory catalog store; data is lost on restart")
		base = store.NewMemoryStore()
	default:
		client, db, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { database.DisconnectMongo(client) })

		if err := database.EnsureIndexes(ctx, db); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to create catalog indexes: %w", err)
		}
		base = store.NewMongoStore(db)
	}

	if cfg.Cache.Driver == "none" {
		return base, closeAll, nil
	}

	c, err := cache.New(cfg)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	if closer, ok := c.(io.Closer); ok {
		closers = append(closers, func() { closer.Close() })
	}

	cached := store.NewCachedStore(base, c, time.Duration(cfg.Cache.TTL)*time.Second, cfg.Cache.Prefix).
		OnRead(m.CacheRead)
	logrus.WithField("driver", cfg.Cache.Driver).Info("Catalog cache enabled")

	return cached, closeAll, nil
}

// OpenDatabase connects the admin database and brings its schema up to date.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db); err != nil {
		database.Close(db)
		return nil, err
	}
	return db, nil
}

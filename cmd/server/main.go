// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/unihub-backend/internal/bootstrap"
	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/database"
	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/logger"
	"github.com/javajoker/unihub-backend/internal/media"
	"github.com/javajoker/unihub-backend/internal/metrics"
	"github.com/javajoker/unihub-backend/internal/middleware"
	"github.com/javajoker/unihub-backend/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	logger.Setup(cfg)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(registry, cfg.Metrics.Prefix)
		gatherer = registry
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
	catalogStore, closeStore, err := bootstrap.OpenStore(startCtx, cfg, m)
	cancelStart()
	if err != nil {
		logrus.Fatal("Failed to open catalog store: ", err)
	}
	defer closeStore()

	// Initialize database
	db, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close(db)

	created, err := database.EnsureAdmin(context.Background(), db, cfg.Admin)
	if err != nil {
		logrus.Fatal("Failed to bootstrap admin account: ", err)
	}
	if created {
		logrus.WithField("email", cfg.Admin.Email).Info("Created initial admin account")
	}

	uploader, err := media.New(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize media uploader: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	limiters := middleware.NewRateLimiters()
	defer limiters.Stop()

	r := router.Initialize(router.Dependencies{
		Config:   cfg,
		DB:       db,
		Store:    catalogStore,
		Uploader: uploader,
		Metrics:  m,
		Gatherer: gatherer,
		Limiters: limiters,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithFields(logrus.Fields{
			"port":  cfg.Server.Port,
			"store": cfg.Mongo.StoreDriver,
			"cache": cfg.Cache.Driver,
			"media": cfg.Media.Provider,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}

// internal/router/router.go
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/javajoker/unihub-backend/internal/config"
	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/handlers"
	"github.com/javajoker/unihub-backend/internal/media"
	"github.com/javajoker/unihub-backend/internal/metrics"
	"github.com/javajoker/unihub-backend/internal/middleware"
	"github.com/javajoker/unihub-backend/internal/services"
	"github.com/javajoker/unihub-backend/internal/store"
	"github.com/javajoker/unihub-backend/internal/utils"
)

// Dependencies are the long-lived collaborators the HTTP surface is built on.
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Store    store.Store
	Uploader media.Uploader
	Metrics  *metrics.Metrics
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Limiters *middleware.RateLimiters
}

func Initialize(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	// Initialize services
	tracker := forms.NewTracker()
	catalogService := services.NewCatalogService(deps.Store)
	propertyService := services.NewPropertyService(deps.Store, deps.Uploader, tracker, deps.Metrics)
	categoryService := services.NewCategoryService(deps.Store, tracker)
	agentService := services.NewAgentService(deps.Store, deps.Uploader, tracker, deps.Metrics)
	settingsService := services.NewSettingsService(deps.Store, tracker)
	seedService := services.NewSeedService(deps.Store)
	authService := services.NewAuthService(deps.DB, cfg, deps.Metrics)

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(catalogService)
	authHandler := handlers.NewAuthHandler(authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	agentHandler := handlers.NewAgentHandler(agentService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, seedService)

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	limiters := deps.Limiters
	if limiters == nil {
		limiters = middleware.NewRateLimiters()
	}

	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.CORS(cfg.Frontend.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(limiters.General.Middleware())

	r.GET("/health", healthHandler(deps))
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")
	{
		// Public site
		v1.GET("/home", publicHandler.Home)
		v1.GET("/listings", publicHandler.Listings)
		v1.GET("/properties/:id", publicHandler.PropertyDetails)
		v1.GET("/categories", publicHandler.Categories)

		admin := v1.Group("/admin")
		admin.POST("/login", limiters.Auth.Middleware(), authHandler.Login)

		protected := admin.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
		if deps.DB != nil {
			protected.Use(middleware.AuditLogMiddleware(deps.DB))
		}
		{
			protected.GET("/me", authHandler.Me)
			protected.GET("/dashboard", propertyHandler.Dashboard)

			uploads := []gin.HandlerFunc{
				limiters.Upload.Middleware(),
				middleware.BodyLimit(int64(cfg.Media.MaxUploadMB) << 20),
			}

			properties := protected.Group("/properties")
			{
				properties.GET("", propertyHandler.List)
				properties.POST("", propertyHandler.Create)
				properties.GET("/:id", propertyHandler.Get)
				properties.PUT("/:id", propertyHandler.Update)
				properties.DELETE("/:id", propertyHandler.Delete)
				properties.PATCH("/:id/status", propertyHandler.SetStatus)
				properties.POST("/:id/features", propertyHandler.AddFeature)
				properties.DELETE("/:id/features/:index", propertyHandler.RemoveFeature)
				properties.POST("/:id/media", append(uploads, propertyHandler.UploadMedia)...)
				properties.DELETE("/:id/media/:index", propertyHandler.RemoveMedia)
			}
			protected.POST("/media", append(uploads, propertyHandler.UploadStaged)...)

			agents := protected.Group("/agents")
			{
				agents.GET("", agentHandler.List)
				agents.POST("", agentHandler.Create)
				agents.POST("/photo", append(uploads, agentHandler.UploadPhoto)...)
				agents.GET("/:id", agentHandler.Get)
				agents.PUT("/:id", agentHandler.Update)
				agents.DELETE("/:id", agentHandler.Delete)
			}

			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.GET("/:id", categoryHandler.Get)
				categories.PUT("/:id", categoryHandler.Update)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			protected.GET("/settings", settingsHandler.Get)
			protected.PUT("/settings", settingsHandler.Update)
			protected.POST("/seed", settingsHandler.Seed)
		}
	}

	return r
}

func healthHandler(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"store": "ok"}
		healthy := true

		if err := deps.Store.Ping(ctx); err != nil {
			checks["store"] = err.Error()
			healthy = false
		}
		if deps.DB != nil {
			checks["database"] = "ok"
			if sqlDB, err := deps.DB.DB(); err != nil {
				checks["database"] = err.Error()
				healthy = false
			} else if err := sqlDB.PingContext(ctx); err != nil {
				checks["database"] = err.Error()
				healthy = false
			}
		}

		status, code := "healthy", http.StatusOK
		if !healthy {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": "1.0.0",
			"checks":  checks,
		})
	}
}

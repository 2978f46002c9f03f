// internal/middleware/middleware_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/metrics"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	i18n.Initialize("en")
}

func TestAuthRequired(t *testing.T) {
	utils.SetJWTSecret("middleware-secret")
	router := gin.New()
	router.Use(I18nMiddleware("en"))
	router.GET("/private", AuthRequired(), AdminRequired(), func(c *gin.Context) {
		id, _ := utils.GetAdminIDFromContext(c)
		c.String(http.StatusOK, id)
	})

	adminID := uuid.New()
	token, err := utils.GenerateJWT(adminID, "admin@unihub.test", 1)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, adminID.String(), w.Body.String())
			}
		})
	}
}

func TestNegotiateLanguage(t *testing.T) {
	assert.Equal(t, "fr", negotiateLanguage("fr-CA,fr;q=0.9,en;q=0.8", "en"))
	assert.Equal(t, "en", negotiateLanguage("de-DE,en;q=0.5", "en"))
	assert.Equal(t, "en", negotiateLanguage("", "en"))
	assert.Equal(t, "en", negotiateLanguage("ja", "en"))
}

func TestExtractResource(t *testing.T) {
	assert.Equal(t, "properties", extractResourceType("/v1/admin/properties/65a1f0c2e4b0a1b2c3d4e5f6/status"))
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", extractResourceID("/v1/admin/properties/65a1f0c2e4b0a1b2c3d4e5f6/status", "properties"))
	assert.Equal(t, "settings", extractResourceType("/v1/admin/settings"))
	assert.Equal(t, "", extractResourceID("/v1/admin/settings", "settings"))
	assert.Equal(t, "unknown", extractResourceType("/"))
}

func TestAuditLogMiddleware(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:audit?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AdminUser{}, &models.AuditLog{}))

	adminID := uuid.New()
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("admin_id", adminID.String())
		c.Next()
	}, AuditLogMiddleware(db))
	router.PUT("/v1/admin/categories/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/v1/admin/categories", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	body := `{"name":"Self Contain","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/categories/abc123", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/admin/categories", nil))

	var logs []models.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "categories", logs[0].ResourceType)
	assert.Equal(t, "abc123", logs[0].ResourceID)
	assert.Equal(t, http.StatusOK, logs[0].StatusCode)
	require.NotNil(t, logs[0].AdminID)
	assert.Equal(t, adminID, *logs[0].AdminID)
	assert.Equal(t, "Self Contain", logs[0].Payload["name"])
	assert.Equal(t, "[redacted]", logs[0].Payload["password"])
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 2)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestIDAndMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry(), "test")
	router := gin.New()
	router.Use(RequestID(), Metrics(m))
	router.GET("/v1/properties/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/properties/abc", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/v1/properties/def", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/v1/properties/:id", "200")))
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://unihub.example"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://unihub.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://unihub.example", w.Header().Get("Access-Control-Allow-Origin"))
}

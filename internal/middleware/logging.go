// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/unihub-backend/internal/models"
)

const maxAuditBody = 64 << 10

// AuditLogMiddleware stores one AuditLog row per mutating admin request.
// Multipart bodies are not captured.
func AuditLogMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		var requestBody []byte
		if c.Request.Body != nil && strings.HasPrefix(c.ContentType(), "application/json") {
			requestBody, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBody))
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(requestBody), c.Request.Body))
		}

		c.Next()

		var adminUUID *uuid.UUID
		if adminID := c.GetString("admin_id"); adminID != "" {
			if parsed, err := uuid.Parse(adminID); err == nil {
				adminUUID = &parsed
			}
		}

		var payload map[string]interface{}
		if len(requestBody) > 0 {
			if err := json.Unmarshal(requestBody, &payload); err == nil {
				redact(payload)
			}
		}

		path := c.Request.URL.Path
		resourceType := extractResourceType(path)
		auditLog := &models.AuditLog{
			AdminID:      adminUUID,
			Action:       c.Request.Method + " " + path,
			ResourceType: resourceType,
			ResourceID:   extractResourceID(path, resourceType),
			Payload:      models.JSONB(payload),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
			StatusCode:   c.Writer.Status(),
		}

		if err := db.WithContext(c.Request.Context()).Create(auditLog).Error; err != nil {
			logrus.WithError(err).Error("Failed to create audit log")
		}
	}
}

func redact(payload map[string]interface{}) {
	for _, k := range []string{"password", "token"} {
		if _, ok := payload[k]; ok {
			payload[k] = "[redacted]"
		}
	}
}

// extractResourceType returns the segment after /v1/admin, or after /v1.
func extractResourceType(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 0 && parts[0] == "v1" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[0] == "admin" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "unknown"
}

// extractResourceID returns the segment following the resource type.
func extractResourceID(path, resourceType string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == resourceType && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// RequestLogger writes one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetString("request_id"),
		}
		if adminID := c.GetString("admin_id"); adminID != "" {
			fields["admin_id"] = adminID
		}

		entry := logrus.WithFields(fields)
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("Request processed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("Request processed")
		default:
			entry.Info("Request processed")
		}
	}
}

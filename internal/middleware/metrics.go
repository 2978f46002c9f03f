// internal/middleware/metrics.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/unihub-backend/internal/metrics"
)

// Metrics records request count and latency labelled by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), start)
	}
}

// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/unihub-backend/internal/i18n"
)

// I18nMiddleware picks the first supported language from Accept-Language.
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return func(c *gin.Context) {
		c.Set("lang", negotiateLanguage(c.GetHeader("Accept-Language"), defaultLang))
		c.Next()
	}
}

// negotiateLanguage handles headers like "fr-CA,fr;q=0.9,en;q=0.8".
func negotiateLanguage(header, fallback string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if tag == "" {
			continue
		}
		base := strings.ToLower(strings.SplitN(strings.ReplaceAll(tag, "_", "-"), "-", 2)[0])
		if i18n.Supports(base) {
			return base
		}
	}
	return fallback
}

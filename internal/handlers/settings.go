// internal/handlers/settings.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/services"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	seedService     *services.SeedService
}

func NewSettingsHandler(settingsService *services.SettingsService, seedService *services.SeedService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, seedService: seedService}
}

// GET /v1/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "settings")
		return
	}
	utils.SuccessResponse(c, settings)
}

// PUT /v1/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var in services.SettingsInput
	if !bindJSON(c, &in) {
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "settings")
		return
	}
	utils.SuccessResponse(c, settings)
}

// POST /v1/admin/seed
func (h *SettingsHandler) Seed(c *gin.Context) {
	result, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err, "settings")
		return
	}
	lang := utils.GetLangFromContext(c)
	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdminSeeded),
		"seeded":  result,
	})
}

// internal/handlers/public.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/unihub-backend/internal/catalog"
	"github.com/javajoker/unihub-backend/internal/services"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type PublicHandler struct {
	catalogService *services.CatalogService
}

func NewPublicHandler(catalogService *services.CatalogService) *PublicHandler {
	return &PublicHandler{catalogService: catalogService}
}

// GET /v1/home
func (h *PublicHandler) Home(c *gin.Context) {
	page, err := h.catalogService.Home(c.Request.Context())
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, page)
}

// GET /v1/listings?category=&location=&max_price=
func (h *PublicHandler) Listings(c *gin.Context) {
	criteria, err := catalog.ParseCriteria(c.Query("category"), c.Query("location"), c.Query("max_price"))
	if err != nil {
		utils.ValidationErrorResponse(c, utils.FieldValidationErrors("max_price", err.Error()))
		return
	}

	page, err := h.catalogService.Listings(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponseWithMeta(c, page.Properties, gin.H{
		"total":      page.Total,
		"categories": page.Categories,
	})
}

// GET /v1/properties/:id
func (h *PublicHandler) PropertyDetails(c *gin.Context) {
	details, err := h.catalogService.PropertyDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, details)
}

// GET /v1/categories
func (h *PublicHandler) Categories(c *gin.Context) {
	categories, err := h.catalogService.PublicCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "category")
		return
	}
	utils.SuccessResponse(c, categories)
}

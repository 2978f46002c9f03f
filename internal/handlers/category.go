// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/services"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /v1/admin/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "category")
		return
	}
	utils.SuccessResponse(c, categories)
}

// GET /v1/admin/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categoryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "category")
		return
	}
	utils.SuccessResponse(c, category)
}

// POST /v1/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var in services.CategoryInput
	if !bindJSON(c, &in) {
		return
	}

	adminID, _ := utils.GetAdminIDFromContext(c)
	category, err := h.categoryService.Create(c.Request.Context(), adminID, in)
	if err != nil {
		respondError(c, err, "category")
		return
	}
	utils.CreatedResponse(c, category)
}

// PUT /v1/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var in services.CategoryInput
	if !bindJSON(c, &in) {
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "category")
		return
	}
	utils.SuccessResponse(c, category)
}

// DELETE /v1/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "category")
		return
	}
	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyCategoryDeleted)})
}

// internal/handlers/property.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/media"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/services"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

type statusRequest struct {
	Status *models.PropertyStatus `json:"status" validate:"omitempty,property_status"`
}

type featureRequest struct {
	Feature string `json:"feature" validate:"required"`
}

// GET /v1/admin/dashboard
func (h *PropertyHandler) Dashboard(c *gin.Context) {
	stats, err := h.propertyService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, stats)
}

// GET /v1/admin/properties?status=
func (h *PropertyHandler) List(c *gin.Context) {
	props, err := h.propertyService.List(c.Request.Context(), models.PropertyStatus(c.Query("status")))
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponseWithMeta(c, props, gin.H{"total": len(props)})
}

// GET /v1/admin/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.propertyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, p)
}

// POST /v1/admin/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var in forms.PropertyInput
	if !bindJSON(c, &in) {
		return
	}

	adminID, _ := utils.GetAdminIDFromContext(c)
	p, err := h.propertyService.Create(c.Request.Context(), adminID, in)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.CreatedResponse(c, p)
}

// PUT /v1/admin/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	var in forms.PropertyInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := h.propertyService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, p)
}

// PATCH /v1/admin/properties/:id/status
// An empty body toggles between available and occupied.
func (h *PropertyHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	p, err := h.propertyService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, p)
}

// DELETE /v1/admin/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.propertyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "property")
		return
	}
	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyPropertyDeleted)})
}

// POST /v1/admin/properties/:id/features
func (h *PropertyHandler) AddFeature(c *gin.Context) {
	var req featureRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.propertyService.AddFeature(c.Request.Context(), c.Param("id"), req.Feature)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, p)
}

// DELETE /v1/admin/properties/:id/features/:index
func (h *PropertyHandler) RemoveFeature(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	p, err := h.propertyService.RemoveFeature(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, p)
}

// POST /v1/admin/properties/:id/media (multipart "files")
func (h *PropertyHandler) UploadMedia(c *gin.Context) {
	files, closeAll, ok := openUploads(c, "files")
	if !ok {
		return
	}
	defer closeAll()

	p, err := h.propertyService.UploadMedia(c.Request.Context(), c.Param("id"), files)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, p)
}

// DELETE /v1/admin/properties/:id/media/:index
func (h *PropertyHandler) RemoveMedia(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	p, err := h.propertyService.RemoveMedia(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.SuccessResponse(c, p)
}

// POST /v1/admin/media?offset= (multipart "files")
// Uploads media for a property form that has not been saved yet.
func (h *PropertyHandler) UploadStaged(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		utils.ValidationErrorResponse(c, utils.FieldValidationErrors("offset", "must be a non-negative integer"))
		return
	}

	files, closeAll, ok := openUploads(c, "files")
	if !ok {
		return
	}
	defer closeAll()

	items, err := h.propertyService.UploadStaged(c.Request.Context(), files, offset)
	if err != nil {
		respondError(c, err, "property")
		return
	}
	utils.CreatedResponse(c, items)
}

// openUploads opens the multipart files posted under field.
func openUploads(c *gin.Context, field string) ([]media.File, func(), bool) {
	lang := utils.GetLangFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "upload"), err.Error())
		return nil, nil, false
	}
	headers := form.File[field]
	if len(headers) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyMediaNoFiles), nil)
		return nil, nil, false
	}

	files, closeAll, err := media.OpenAll(headers)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return nil, nil, false
	}
	return files, closeAll, true
}

// internal/handlers/errors.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/media"
	"github.com/javajoker/unihub-backend/internal/store"
	"github.com/javajoker/unihub-backend/internal/utils"
)

// respondError maps service errors onto the response envelope.
// resource names the i18n prefix used for not-found messages.
func respondError(c *gin.Context, err error, resource string) {
	lang := utils.GetLangFromContext(c)

	var fieldErr *forms.FieldError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.As(err, &fieldErr):
		utils.ValidationErrorResponse(c, utils.FieldValidationErrors(fieldErr.Field, fieldErr.Message))
	case errors.As(err, &validationErrs):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErrs))
	case errors.Is(err, forms.ErrEmptyFeature):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, forms.ErrIndexOutOfRange):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyPropertyInvalidRef), err.Error())
	case errors.Is(err, forms.ErrSubmissionInFlight):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyPropertyInFlight))
	case errors.Is(err, media.ErrUploadFailed):
		logrus.WithError(err).WithField("request_id", utils.GetRequestIDFromContext(c)).Warn("Media upload failed")
		utils.BadGatewayResponse(c, i18n.T(lang, i18n.KeyMediaUploadFailed))
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": utils.GetRequestIDFromContext(c),
		}).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}

// bindJSON decodes the request body into dest and runs its validate tags.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(dest)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "index"), nil)
		return 0, false
	}
	return index, true
}

// internal/utils/validator.go
package utils

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/unihub-backend/internal/models"
)

var validate *validator.Validate

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{6,19}$`)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("property_status", validatePropertyStatus)
	validate.RegisterValidation("phone", validatePhone)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName reports fields by their JSON name so errors match request bodies.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name != "" {
		return name
	}
	r := []rune(fld.Name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func validatePropertyStatus(fl validator.FieldLevel) bool {
	return models.PropertyStatus(fl.Field().String()).Valid()
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// FieldValidationErrors wraps a single field problem in the usual response shape.
func FieldValidationErrors(field, message string) []ValidationError {
	return []ValidationError{{Field: field, Tag: "invalid", Message: message}}
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "url":
		return e.Field() + " must be a URL"
	case "property_status":
		return "Status must be one of available, occupied or hidden"
	case "phone":
		return e.Field() + " must be a phone number"
	default:
		return e.Field() + " is invalid"
	}
}

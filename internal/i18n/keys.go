// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"
	KeyAdminSeeded       = "admin.seeded"

	// Properties
	KeyPropertyCreated    = "property.created"
	KeyPropertyUpdated    = "property.updated"
	KeyPropertyDeleted    = "property.deleted"
	KeyPropertyNotFound   = "property.not_found"
	KeyPropertyInFlight   = "property.in_flight"
	KeyPropertyInvalidRef = "property.invalid_index"

	// Categories
	KeyCategoryCreated  = "category.created"
	KeyCategoryUpdated  = "category.updated"
	KeyCategoryDeleted  = "category.deleted"
	KeyCategoryNotFound = "category.not_found"

	// Agents
	KeyAgentCreated  = "agent.created"
	KeyAgentUpdated  = "agent.updated"
	KeyAgentDeleted  = "agent.deleted"
	KeyAgentNotFound = "agent.not_found"

	// Settings
	KeySettingsUpdated = "settings.updated"

	// Media
	KeyMediaUploadFailed = "media.upload_failed"
	KeyMediaNoFiles      = "media.no_files"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Rate limiting
	KeyRateLimited = "rate.limited"
)

// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Product editor
	KeyEditorOpened          = "editor.opened"
	KeyEditorClosed          = "editor.closed"
	KeyEditorNotOpen         = "editor.not_open"
	KeyEditorSubmitAccepted  = "editor.submit_accepted"
	KeyEditorSubmitPending   = "editor.submit_in_progress"
	KeyEditorSubmitCanceled  = "editor.submit_canceled"
	KeyEditorBusy            = "editor.busy"
	KeyIdempotencyKeyReused  = "idempotency.key_reused"
	KeySubmissionNotFound    = "submission.not_found"
	KeyAssetNotFound         = "asset.not_found"
	KeySettingsUpdated       = "settings.updated"
	KeySettingsPasswordWrong = "settings.password_mismatch"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// File Upload
	KeyFileUploadFailed = "file.upload_failed"
	KeyFileInvalidType  = "file.invalid_type"
	KeyFileTooLarge     = "file.too_large"

	// Search
	KeySearchNoResults = "search.no_results"

	// Rate limiting
	KeyRateLimited = "rate.limited"
)

// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// Users
	KeyUserNotFound        = "user.not_found"
	KeyUserUpdated         = "user.updated"
	KeyUserDeleted         = "user.deleted"
	KeyUserPasswordChanged = "user.password_changed"

	// Books
	KeyBookCreated          = "book.created"
	KeyBookUpdated          = "book.updated"
	KeyBookDeleted          = "book.deleted"
	KeyBookNotFound         = "book.not_found"
	KeyBookAlreadyPurchased = "book.already_purchased"
	KeyBookPurchased        = "book.purchased"
	KeyBookReviewAdded      = "book.review_added"
	KeyBookAlreadyReviewed  = "book.already_reviewed"
	KeyBookInvalidRating    = "book.invalid_rating"

	// Files
	KeyFileNotFound      = "file.not_found"
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileDeleted       = "file.deleted"
	KeyFileMissing       = "file.missing"
	KeyFileInvalidType   = "file.invalid_type"

	// Payments
	KeyPaymentSuccess       = "payment.success"
	KeyPaymentFailed        = "payment.failed"
	KeyPaymentBookIsFree    = "payment.book_is_free"
	KeyPaymentNotConfirmed  = "payment.not_confirmed"
	KeyPaymentIntentCreated = "payment.intent_created"

	// Access
	KeyAccessDenied = "access.denied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)

package errors

// Error code constants, CATEGORY_SPECIFIC_DETAIL. Controllers map these to
// flash messages and error pages.

const (
	// Authentication
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// Authorization
	AuthzForbidden  = "AUTHZ_FORBIDDEN"
	AuthzSellerOnly = "AUTHZ_SELLER_ONLY"

	// Validation
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// Resources
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Catalog
	BookNotFound     = "BOOK_NOT_FOUND"
	CategoryNotFound = "CATEGORY_NOT_FOUND"

	// Cart and checkout
	CartEmpty          = "CART_EMPTY"
	OrderNotFound      = "ORDER_NOT_FOUND"
	OrderInvalidStatus = "ORDER_INVALID_STATUS"
	CheckoutFailed     = "CHECKOUT_FAILED"

	// Reviews
	ReviewNotEligible   = "REVIEW_NOT_ELIGIBLE"
	ReviewInvalidRating = "REVIEW_INVALID_RATING"

	// Internal
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)

// Package i18n provides internationalization support for the transfer service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"

	// ErrKeyEmptyCart indicates a transfer request with no items.
	ErrKeyEmptyCart = "error.transfer.empty_cart"
	// ErrKeyDuplicateProduct indicates a cart with a repeated product.
	ErrKeyDuplicateProduct = "error.transfer.duplicate_product"
	// ErrKeyInvalidQuantity indicates a cart item with a non-positive quantity.
	ErrKeyInvalidQuantity = "error.transfer.invalid_quantity"
	// ErrKeyPreviewFailed indicates the upstream preview call failed.
	ErrKeyPreviewFailed = "error.transfer.preview_failed"
	// ErrKeyExecuteFailed indicates the upstream execute call failed.
	ErrKeyExecuteFailed = "error.transfer.execute_failed"
	// ErrKeyNotPreviewed indicates execute was requested without a preview.
	ErrKeyNotPreviewed = "error.transfer.not_previewed"
	// ErrKeyAlreadyExecuted indicates the transfer was already executed.
	ErrKeyAlreadyExecuted = "error.transfer.already_executed"
	// ErrKeyExecutePending indicates an execute request is still in flight.
	ErrKeyExecutePending = "error.transfer.execute_pending"
	// ErrKeyNothingTransferable indicates the preview has no transferable lines.
	ErrKeyNothingTransferable = "error.transfer.nothing_transferable"
	// ErrKeyUpstreamUnavailable indicates the stock service is unreachable.
	ErrKeyUpstreamUnavailable = "error.transfer.upstream_unavailable"
)

// Success message translation keys.
const (
	// SuccessKeyPreviewBuilt indicates a successful transfer preview.
	SuccessKeyPreviewBuilt = "success.transfer.preview_built"
	// SuccessKeyTransferExecuted indicates a successful transfer execution.
	SuccessKeyTransferExecuted = "success.transfer.executed"
)

// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry validation
// and serialization for API communication.
package dto

import (
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
)

// TransferRequest is the JSON body shared by the preview and execute
// endpoints. The same cart-derived payload is sent to both upstream calls;
// Metadata is passed through opaquely from the cart-building screen.
//
// @Description Wholesale-to-retail transfer request
// @Example {"items": [{"product_id": 1, "quantity": 2, "wholesale_package": "كرتونة 6 قطعة", "final_price": 10}]}
type TransferRequest struct {
	// Items is the cart: one entry per product, product_id unique.
	Items []model.TransferCartItem `json:"items" binding:"required,min=1,dive"`
	// Metadata is opaque cart metadata forwarded to the upstream service.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
} // @name TransferRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyCart is returned when the request carries no items.
	ErrEmptyCart = &ValidationError{
		Field:   "items",
		Message: "must contain at least one item",
	}
	// ErrDuplicateProduct is returned when a product_id appears twice.
	ErrDuplicateProduct = &ValidationError{
		Field:   "items",
		Message: "product_id must be unique within a transfer",
	}
	// ErrInvalidQuantity is returned when an item quantity is not positive.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
)

// Validate performs custom validation on the transfer request.
func (r *TransferRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrEmptyCart
	}
	seen := make(map[int64]struct{}, len(r.Items))
	for _, item := range r.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if _, dup := seen[item.ProductID]; dup {
			return ErrDuplicateProduct
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}

// ExecuteTransferRequest confirms a previously previewed transfer.
// The session identifier is issued by the preview endpoint; executing
// without one is impossible by construction.
//
// @Description Transfer execution confirmation
type ExecuteTransferRequest struct {
	SessionID string `json:"session_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name ExecuteTransferRequest

// CancelTransferRequest abandons a previewed transfer session.
//
// @Description Transfer cancellation
type CancelTransferRequest struct {
	SessionID string `json:"session_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name CancelTransferRequest

// HistoryQuery holds query parameters for the transfer history endpoint.
type HistoryQuery struct {
	// Limit caps the number of receipts returned (default 50, max 200).
	Limit int `form:"limit,default=50" binding:"omitempty,gt=0,lte=200"`
} // @name HistoryQuery

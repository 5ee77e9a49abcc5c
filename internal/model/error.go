package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeInvalidCategory = "INVALID_CATEGORY"
	ErrCodeInvalidStatus   = "INVALID_STATUS"
	ErrCodeEmptyOrder      = "EMPTY_ORDER"
	ErrCodeTotalMismatch   = "TOTAL_MISMATCH"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure that maps to a client error.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrInvalidCategory = NewDomainError(ErrCodeInvalidCategory, "Category is not one of the allowed values")
	ErrInvalidStatus   = NewDomainError(ErrCodeInvalidStatus, "Status must be pending, processing, shipped, delivered or cancelled")
	ErrEmptyOrder      = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrTotalMismatch   = NewDomainError(ErrCodeTotalMismatch, "Total amount does not match the sum of line items")
)

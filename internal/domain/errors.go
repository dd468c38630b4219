package domain

import (
	"errors"
	"fmt"
)

// Error codes for the failure kinds the catalog core can surface. "Not found"
// is deliberately absent: pure lookups signal a miss with a nil result, never
// an error.
const (
	ErrCodeInvalidEntity      = "INVALID_ENTITY"
	ErrCodeDuplicateKey       = "DUPLICATE_KEY"
	ErrCodePreconditionFailed = "PRECONDITION_FAILED"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"

	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeTokenMissing       = "TOKEN_MISSING"
)

// CatalogError represents an application error
type CatalogError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new application error
func NewCatalogError(code, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInvalidEntityError reports a construction or mutation that would violate
// a model invariant.
func NewInvalidEntityError(message string) *CatalogError {
	return NewCatalogError(ErrCodeInvalidEntity, message, nil)
}

// NewDuplicateKeyError reports registration of a natural key already present.
func NewDuplicateKeyError(message string) *CatalogError {
	return NewCatalogError(ErrCodeDuplicateKey, message, nil)
}

// NewPreconditionFailedError reports an operation whose referenced entity
// does not exist.
func NewPreconditionFailedError(message string) *CatalogError {
	return NewCatalogError(ErrCodePreconditionFailed, message, nil)
}

// NewStorageError reports an unreachable or failing persistent engine. The
// failure is surfaced, not retried; retry policy belongs to the caller.
func NewStorageError(operation string, err error) *CatalogError {
	return NewCatalogError(ErrCodeStorageUnavailable, fmt.Sprintf("storage operation failed: %s", operation), err)
}

// IsCatalogError checks if an error is a CatalogError
func IsCatalogError(err error) (*CatalogError, bool) {
	var catalogErr *CatalogError
	if errors.As(err, &catalogErr) {
		return catalogErr, true
	}
	return nil, false
}

// HasCode reports whether err is a CatalogError carrying the given code.
func HasCode(err error, code string) bool {
	if catalogErr, ok := IsCatalogError(err); ok {
		return catalogErr.Code == code
	}
	return false
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *CatalogError `json:"error"`
	Success bool          `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *CatalogError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a bad input on a single calculation request: a
// salary below the legal minimum, an out-of-range company parameter, an
// unknown state. It is a per-request condition, never a deployment defect.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a named input field.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// CatalogError reports a defect in the loaded rate catalog itself: an empty
// or non-monotonic bracket table, a missing state rate, a non-positive UMA.
// It means the deployment is misconfigured and no calculation can be trusted.
type CatalogError struct {
	Catalog string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalogo %s: %s: %v", e.Catalog, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalogo %s: %s", e.Catalog, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// NewCatalogError builds a CatalogError for the named catalog.
func NewCatalogError(catalog, format string, args ...interface{}) *CatalogError {
	return &CatalogError{Catalog: catalog, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsCatalog reports whether err is (or wraps) a CatalogError.
func IsCatalog(err error) bool {
	var ce *CatalogError
	return errors.As(err, &ce)
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// Provider error kinds. A *ProviderError always wraps exactly one of them.
var (
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrTimeout            = errors.New("timeout")
	ErrServerError        = errors.New("server error")
	ErrRateLimited        = errors.New("rate limited")
	ErrProviderAuth       = errors.New("provider auth error")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrMalformedResponse  = errors.New("malformed response")

	// ErrProviderUnavailable is returned by a fallback chain when no provider
	// found the item and at least one of them failed.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ProviderError is a failed call to an external food-data provider.
// errors.Is matches both the Kind sentinel and the underlying cause.
type ProviderError struct {
	Provider string
	Kind     error
	Status   int
	Err      error
}

func (e *ProviderError) Error() string {
	msg := e.Provider + ": " + e.Kind.Error()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewProviderError creates a ProviderError of the given kind.
func NewProviderError(provider string, kind error, status int, cause error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, Status: status, Err: cause}
}

// IsTransient reports whether err is a failure worth retrying:
// a timeout, a 5xx, or no response at all.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) ||
		errors.Is(err, ErrNetworkUnavailable)
}

// UserMessage returns a human-readable message for an error surfaced to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "Food not found."
	case errors.Is(err, ErrValidation):
		return err.Error()
	case errors.Is(err, ErrProviderUnavailable):
		return "Food databases are unreachable right now. Please try again."
	case errors.Is(err, ErrTimeout):
		return "The request timed out. Please try again."
	case errors.Is(err, ErrNetworkUnavailable):
		return "No response from server. Please check your internet connection."
	case errors.Is(err, ErrServerError):
		return "The food database is temporarily unavailable. Please try again later."
	case errors.Is(err, ErrRateLimited):
		return "Too many requests. Please try again later."
	case errors.Is(err, ErrProviderAuth):
		return "API key error. Please check the configured API key."
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request. Please check your search parameters."
	case errors.Is(err, ErrMalformedResponse):
		return "The food database returned an unreadable response."
	default:
		return "Something went wrong. Please try again."
	}
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure taxonomy of the voice pipeline and reminder submission. Every error
// returned by those layers matches exactly one of these with errors.Is.
var (
	ErrPermissionDenied   = errors.New("microphone permission denied")
	ErrNoActiveSession    = errors.New("no active recording session")
	ErrCredentialMissing  = errors.New("credential not configured")
	ErrCredentialRejected = errors.New("credential rejected by provider")
	ErrEmptyResponse      = errors.New("provider returned no usable content")
	ErrMalformedResponse  = errors.New("provider returned malformed content")
	ErrValidation         = errors.New("validation failed")
)

// ProviderError is a non-2xx answer from a remote provider.
// A 401 also matches ErrCredentialRejected.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s API error %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s API error %d: %s", e.Provider, e.StatusCode, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrCredentialRejected && e.StatusCode == http.StatusUnauthorized
}

// ValidationError reports a rejected field value. It matches ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CredentialError names the credential slot a missing/rejected failure belongs to.
type CredentialError struct {
	Slot string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("%s: %v", e.Slot, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// SlotOf returns the credential slot carried by err, if any.
func SlotOf(err error) (string, bool) {
	var ce *CredentialError
	if errors.As(err, &ce) {
		return ce.Slot, true
	}
	return "", false
}

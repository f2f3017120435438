package domain

import (
	"encoding/json"
	"fmt"
)

// ValidationError reports bad or missing caller input. It is always raised
// before any outbound call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError reports a missing entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// UpstreamError reports a failed call to the mapping provider. Status is the
// provider status string when one was returned; Details is the raw provider
// payload and is surfaced to the caller as-is.
type UpstreamError struct {
	Status  string
	Details json.RawMessage
	Err     error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil && e.Status != "":
		return fmt.Sprintf("upstream status %s: %v", e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("upstream call failed: %v", e.Err)
	default:
		return fmt.Sprintf("upstream status %s", e.Status)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a new UpstreamError.
func NewUpstreamError(status string, details json.RawMessage, err error) *UpstreamError {
	return &UpstreamError{Status: status, Details: details, Err: err}
}

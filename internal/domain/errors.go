package domain

import (
	"errors"
	"fmt"
)

// Error codes used across the service. Handlers map these to HTTP statuses.
const (
	CodeUserIneligible    = "USER_INELIGIBLE"
	CodeHotelIneligible   = "HOTEL_INELIGIBLE"
	CodeRemoteUnavailable = "REMOTE_UNAVAILABLE"
	CodeNotFound          = "NOT_FOUND"
	CodeValidation        = "VALIDATION"
)

// DomainError is a business-rule failure with a stable code.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *DomainError) Unwrap() error { return e.Err }

// NewUserIneligibleError reports that a user may not create bookings.
func NewUserIneligibleError(reason string) *DomainError {
	return &DomainError{Code: CodeUserIneligible, Message: reason}
}

// NewHotelIneligibleError reports that a hotel may not be booked.
func NewHotelIneligibleError(reason string) *DomainError {
	return &DomainError{Code: CodeHotelIneligible, Message: reason}
}

// NewRemoteUnavailableError wraps a failed call to the remote booking peer.
func NewRemoteUnavailableError(op string, err error) *DomainError {
	return &DomainError{Code: CodeRemoteUnavailable, Message: "remote booking service failed during " + op, Err: err}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// NewValidationError reports malformed or missing input.
func NewValidationError(reason string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: reason}
}

// CodeOf extracts the domain error code from err, or "" if err is not a DomainError.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

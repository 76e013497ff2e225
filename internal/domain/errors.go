package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation codes carried on ValidationError. These mirror the structured
// error codes the backend uses on its side of the same rules.
const (
	CodeInvalidRange = "INVALID_RANGE"
	CodeNoAdults     = "NO_ADULTS"
	CodeNoGuests     = "NO_GUESTS"
	CodeNameRequired = "NAME_REQUIRED"
	CodeInvalidEmail = "INVALID_EMAIL"
	CodeZeroTotal    = "ZERO_TOTAL"
)

// ValidationError is a local, recoverable input error. It never crosses the
// wire; the producing step surfaces it and the user re-edits.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrInvalidRange = &ValidationError{Code: CodeInvalidRange, Message: "check-out must be after check-in"}
	ErrNoAdults     = &ValidationError{Code: CodeNoAdults, Message: "at least one adult required"}
	ErrNoGuests     = &ValidationError{Code: CodeNoGuests, Message: "at least one guest required"}
	ErrNameRequired = &ValidationError{Code: CodeNameRequired, Message: "guest full name is required"}
	ErrInvalidEmail = &ValidationError{Code: CodeInvalidEmail, Message: "guest email is invalid"}
	ErrZeroTotal    = &ValidationError{Code: CodeZeroTotal, Message: "booking total must be greater than zero"}
)

// Session and authorization errors.
var (
	ErrDecodeToken   = errors.New("malformed identity token")
	ErrLoginRequired = errors.New("authentication required")
	ErrRoleDenied    = errors.New("insufficient role")
)

// TransportError means a gateway call produced no usable HTTP response
// (connection refused, DNS failure, context cancellation). The user-facing
// treatment is a generic retry-suggesting message.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError is a structured rejection from the backend: an HTTP status
// plus whatever code and message the server put in the body. Message, when
// present, is shown to the user verbatim.
type ApplicationError struct {
	Status  int
	Code    string
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e *ApplicationError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

func (e *ApplicationError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

package models

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrConflictData  = errors.New("data conflicts with existing data")
	ErrDataNotFound  = errors.New("data not found")
	ErrInternalError = errors.New("internal error")

	ErrUnknownStatus        = errors.New("unknown order status")
	ErrTransitionNotAllowed = errors.New("transition is not allowed")
	ErrOTPRequired          = errors.New("otp is required")
	ErrOTPMismatch          = errors.New("otp does not match")
	ErrTransitionNotFound   = errors.New("pending transition not found")
	ErrTransitionExpired    = errors.New("pending transition expired")

	ErrValidation  = errors.New("validation failed")
	ErrNetwork     = errors.New("backend unreachable")
	ErrRejected    = errors.New("backend rejected request")
	ErrServerFault = errors.New("backend server fault")
)

// ValidationError is client-side field check failure
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NetworkError is transport failure talking to backend
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// Timeout reports whether request timed out
func (e *NetworkError) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// APIError is non-success backend response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() []error {
	switch {
	case e.StatusCode >= http.StatusInternalServerError:
		return []error{ErrServerFault}
	case e.StatusCode == http.StatusNotFound:
		return []error{ErrRejected, ErrDataNotFound}
	default:
		return []error{ErrRejected}
	}
}

// TooManyRequestsError is returned when backend throttles requests
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestsError(retryAfter time.Duration) error {
	return TooManyRequestsError{RetryAfter: retryAfter}
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

func (e TooManyRequestsError) Unwrap() error {
	return ErrRejected
}

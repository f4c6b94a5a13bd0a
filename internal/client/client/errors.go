package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrInvalidResponse  = errors.New("invalid response format")
)

// StatusError reports a response with a status other than 200.
type StatusError struct {
	Code int
	err  error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.err, e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Unwrap() error {
	return e.err
}

// mapStatus converts an HTTP status code to nil or a *StatusError.
func mapStatus(code int) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return &StatusError{Code: code, err: ErrUnauthorized}
	default:
		return &StatusError{Code: code, err: ErrUnexpectedStatus}
	}
}

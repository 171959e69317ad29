// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork signals the transport could not reach the server.
	ErrNetwork = errors.New("network error")
	// ErrDecode signals an unparsable body on an otherwise successful response.
	ErrDecode = errors.New("decode error")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotReady signals a screen action fired outside the Ready phase.
	ErrNotReady = errors.New("screen not ready")
)

// RequestError is a server rejection carrying the response status and a
// best-effort human-readable message. Screens surface Message verbatim.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %d %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 rejection.
func IsUnauthorized(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == 401
}

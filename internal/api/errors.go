package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrProtocol is matched by every ProtocolError.
var ErrProtocol = errors.New("api: protocol violation")

// ErrBodyTooLarge is wrapped by the TransportError returned for a response
// body longer than the transport reads into memory.
var ErrBodyTooLarge = errors.New("api: response body too large")

// APIError is a structured error envelope returned by the server.
// Code and Message are carried verbatim.
type APIError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// APICode returns the server's error code.
func (e *APIError) APICode() int {
	return e.Code
}

// IsCode reports whether err is an APIError carrying code.
func IsCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// TransportError wraps a failure below the envelope layer: building the
// request, reaching the server, or a non-2xx reply without an error envelope.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode >= 200 && e.StatusCode <= 299 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a response whose shape contradicts the endpoint's
// contract, such as a paginated body on a single-object endpoint.
// It signals a broken API contract and must not be retried.
type ProtocolError struct {
	Expected Shape
	Got      Shape
	Err      error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol violation: expected %s envelope: %v", e.Expected, e.Err)
	}
	return fmt.Sprintf("protocol violation: expected %s envelope, got %s", e.Expected, e.Got)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// Fatal is always true. Callers that classify errors for retry use it to
// tell contract breaks apart from transient failures.
func (e *ProtocolError) Fatal() bool {
	return true
}

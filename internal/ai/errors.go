package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies why a backend attempt produced no reply.
type Kind string

const (
	KindMissingKey  Kind = "missing_key"
	KindHTTPStatus  Kind = "http_status"
	KindBadResponse Kind = "bad_response"
	KindTimeout     Kind = "timeout"
	KindTransport   Kind = "transport"
)

var (
	// ErrNoReply is returned when every backend in the order failed.
	ErrNoReply = errors.New("ai: no provider returned a reply")

	ErrMissingKey = errors.New("api key is not configured")
	ErrEmptyReply = errors.New("response has no text content")
)

// ProviderError records one failed attempt.
type ProviderError struct {
	Backend string
	Kind    Kind
	Status  int
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Backend, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Backend, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func newProviderError(backend string, kind Kind, err error) *ProviderError {
	return &ProviderError{Backend: backend, Kind: kind, Err: err}
}

func statusError(backend string, status int, err error) *ProviderError {
	return &ProviderError{Backend: backend, Kind: KindHTTPStatus, Status: status, Err: err}
}

// classifyCallError sorts errors that happened before a usable HTTP status
// was observed.
func classifyCallError(backend string, err error) *ProviderError {
	if errors.Is(err, context.DeadlineExceeded) {
		return newProviderError(backend, KindTimeout, err)
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return newProviderError(backend, KindBadResponse, err)
	}
	return newProviderError(backend, KindTransport, err)
}

// KindOf returns the failure kind of err, or "" when err is not a ProviderError.
func KindOf(err error) Kind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

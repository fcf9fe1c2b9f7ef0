package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned for 401 responses: the token is missing,
// malformed, or expired. Callers must force a re-login; the client never
// refreshes tokens on its own.
var ErrUnauthorized = errors.New("unauthorized")

// NetworkError is a transport-level failure: the request never produced an
// HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Body is kept verbatim so the caller
// can surface the backend's message.
type ServerError struct {
	Status int
	Body   []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, string(e.Body))
}

// DecodeError is a 2xx response whose body did not match the expected
// shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode server response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

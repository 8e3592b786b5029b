package errors

import (
	"errors"
	"net/http"
)

// Failure kinds of board operations. Match them with errors.Is.
var (
	ErrAlreadyInitialized = errors.New("board already initialized")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPayloadTooLarge    = errors.New("payload too large")
	ErrCounterExhausted   = errors.New("message counter exhausted")
	// text every storage engine can hold: valid UTF-8 without NUL
	ErrInvalidPayload     = errors.New("invalid payload")
)

var kinds = []struct {
	err    error
	name   string
	status int
}{
	{ErrAlreadyInitialized, "already_initialized", http.StatusConflict},
	{ErrNotFound, "not_found", http.StatusNotFound},
	{ErrAlreadyExists, "already_exists", http.StatusConflict},
	{ErrUnauthorized, "unauthorized", http.StatusForbidden},
	{ErrPayloadTooLarge, "payload_too_large", http.StatusRequestEntityTooLarge},
	{ErrCounterExhausted, "counter_exhausted", http.StatusInsufficientStorage},
	{ErrInvalidPayload, "invalid_payload", http.StatusBadRequest},
}

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	kind       error
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) Unwrap() error {
	return e.kind
}

// New returns an error of the given kind that carries its HTTP status.
func New(kind error, message string) *ErrorWithStatusCode {
	status := http.StatusInternalServerError
	for _, k := range kinds {
		if k.err == kind {
			status = k.status
			break
		}
	}
	return &ErrorWithStatusCode{Message: message, StatusCode: status, kind: kind}
}

// Kind returns a stable name of the failure kind wrapped in err,
// "internal" for anything else.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}

// FromKind is the inverse of Kind. Returns nil for unknown names.
func FromKind(name string) error {
	for _, k := range kinds {
		if k.name == name {
			return k.err
		}
	}
	return nil
}

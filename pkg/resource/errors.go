package resource

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotReachable = errors.New("backend not reachable")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrServerError  = errors.New("server error")

	ErrStoreClosed = errors.New("store closed")
)

// Error is the typed failure returned by a Transport.
//
// Kind is one of ErrNotReachable, ErrInvalidInput, ErrNotFound or
// ErrServerError, so callers can match with errors.Is. Message is meant for
// humans and is what a Store records in its error state.
type Error struct {
	Kind     error
	Op       string
	Resource string
	Status   int
	Message  string
	Err      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// kindOf maps an HTTP status to the error taxonomy. It returns nil for 2xx.
func kindOf(status int) error {
	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return nil
	case status == http.StatusBadRequest:
		return ErrInvalidInput
	case status == http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrServerError
	}
}

// newError builds the human readable message for a failed operation.
func newError(kind error, op Op, names Names, status int, detail string, cause error) *Error {
	var msg string

	switch {
	case errors.Is(kind, ErrNotFound):
		msg = names.Singular + " not found"
	case errors.Is(kind, ErrInvalidInput):
		msg = "invalid " + names.Singular + " data"
		if detail != "" {
			msg += ": " + detail
		}
	case errors.Is(kind, ErrNotReachable):
		msg = "failed to " + op.describe(names)
		if cause != nil {
			msg += ": " + cause.Error()
		}
	default:
		msg = fmt.Sprintf("failed to %s: server responded %d", op.describe(names), status)
		if detail != "" {
			msg += ": " + detail
		}
	}

	return &Error{
		Kind:     kind,
		Op:       string(op),
		Resource: names.Plural,
		Status:   status,
		Message:  msg,
		Err:      cause,
	}
}

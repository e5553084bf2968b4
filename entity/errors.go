package entity

import (
	"errors"
	"fmt"
)

// ErrUnresolvablePayload marks webhook bodies that cannot resolve to any
// shape, which in practice means bodies that are not JSON objects.
var ErrUnresolvablePayload = errors.New("unresolvable webhook payload")

// ErrorKind classifies integration failures by what the caller should do
// about them.
type ErrorKind int

const (
	// ErrNetwork means the ChatGuru API was never reached or did not
	// answer in time. These are the only delivery failures callers see;
	// application-level rejections are absorbed by the sender.
	ErrNetwork ErrorKind = iota
	// ErrAPI means ChatGuru answered with an application-level rejection.
	ErrAPI
	// ErrSerialization means a payload could not be decoded or encoded.
	ErrSerialization
	// ErrValidation means the caller supplied unusable input.
	ErrValidation
	// ErrInternal covers failures in our own plumbing.
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNetwork:
		return "network error"
	case ErrAPI:
		return "chatguru api error"
	case ErrSerialization:
		return "serialization error"
	case ErrValidation:
		return "validation error"
	default:
		return "internal error"
	}
}

// Error is an integration failure tagged with a kind. It wraps an
// underlying cause when there is one.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NetworkError(message string, err error) *Error {
	return &Error{Kind: ErrNetwork, Message: message, Err: err}
}

func APIError(message string, err error) *Error {
	return &Error{Kind: ErrAPI, Message: message, Err: err}
}

func SerializationError(message string, err error) *Error {
	return &Error{Kind: ErrSerialization, Message: message, Err: err}
}

func ValidationError(message string, err error) *Error {
	return &Error{Kind: ErrValidation, Message: message, Err: err}
}

func InternalError(message string, err error) *Error {
	return &Error{Kind: ErrInternal, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain. The second return is false
// when no tagged error is present.
func KindOf(err error) (ErrorKind, bool) {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind, true
	}
	return ErrInternal, false
}

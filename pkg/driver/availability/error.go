package availability

import (
	"errors"
)

var (
	ErrUnimplemented  = NewError("not implemented")
	ErrNoDevice       = NewError("no default output device")
	ErrNoChannels     = NewError("no controllable channels")
	ErrNotInitialized = NewError("session is not initialized")
)

type errorString struct {
	s string
}

func NewError(text string) error {
	return &errorString{text}
}

// IsError reports whether err, or any error it wraps, belongs to the
// availability vocabulary.
func IsError(err error) bool {
	var target *errorString
	return errors.As(err, &target)
}

func (e *errorString) Error() string {
	return e.s
}

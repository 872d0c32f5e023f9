package convert

import (
	"errors"
)

var (
	// ErrNullPointer means a frame or its pixel buffer was nil.
	ErrNullPointer = NewError("convert: nil buffer")
	// ErrSizeMismatch means the two frames disagree on width or height.
	ErrSizeMismatch = NewError("convert: source and destination dimensions differ")
	// ErrFormatMismatch means source and destination share a format.
	ErrFormatMismatch = NewError("convert: source and destination formats are identical")
	// ErrUnsupportedFormat means the engine has no kernel for the pair.
	ErrUnsupportedFormat = NewError("convert: unsupported format pair")
)

type errorString struct {
	s string
}

// NewError returns an error that IsError recognises as coming from the engine.
func NewError(text string) error {
	return &errorString{text}
}

// IsError reports whether err was produced by the conversion engine's
// validation.
func IsError(err error) bool {
	var target *errorString
	return errors.As(err, &target)
}

func (e *errorString) Error() string {
	return e.s
}

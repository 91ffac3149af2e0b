package bitio

import "errors"

var (
	// ErrOverflow is returned by Append/PadZero when writing would
	// exceed the Writer's declared capacity.
	ErrOverflow = errors.New("bitio: overflow")

	// ErrUnderflow is returned by Read when fewer bits remain than requested.
	ErrUnderflow = errors.New("bitio: underflow")

	// ErrValueTooWide is returned when a width is out of [1, 64] or a
	// value does not fit in the requested width.
	ErrValueTooWide = errors.New("bitio: value too wide")
)

package types

import "errors"

var (
	// ErrNoCapacity reports that a fixed-capacity inline buffer cannot hold
	// the result of a mutation. A switching container absorbs it by
	// promoting to heap storage; it only reaches callers that use the
	// inline string standalone.
	ErrNoCapacity = errors.New("not enough inline capacity")

	// ErrNotCharBoundary reports a byte index that lands in the middle of
	// a UTF-8 sequence.
	ErrNotCharBoundary = errors.New("index is not a utf-8 character boundary")

	// ErrIndexOutOfRange reports a byte index outside the content.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidUTF8 reports input bytes that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 bytes")
)

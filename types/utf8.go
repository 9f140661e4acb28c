package types

import "unicode/utf8"

// IsBoundary reports whether i is a valid UTF-8 character boundary in b.
// Both 0 and len(b) are boundaries of any content.
func IsBoundary(b []byte, i int) bool {
	if i < 0 || i > len(b) {
		return false
	}
	if i == 0 || i == len(b) {
		return true
	}
	return utf8.RuneStart(b[i])
}

// CheckBoundary validates i as a mutation point in b. It distinguishes a
// plain out-of-range index from an index that splits a multi-byte sequence,
// so callers can surface the precise failure before touching any byte.
func CheckBoundary(b []byte, i int) error {
	if i < 0 || i > len(b) {
		return ErrIndexOutOfRange
	}
	if i != len(b) && i != 0 && !utf8.RuneStart(b[i]) {
		return ErrNotCharBoundary
	}
	return nil
}

// Package heapstr provides an owned, growable, heap-backed UTF-8 string
// buffer with explicit capacity control. It is the always-allocated baseline
// behind the smallstr switching container and exposes the same operation
// surface, so generic code can run against either.
package heapstr

import (
	"unicode/utf8"

	"github.com/quickwritereader/InlineStr/types"
	"github.com/quickwritereader/InlineStr/utils"
)

// String is an owned, growable UTF-8 byte buffer. The zero value is an
// empty string ready to use. Content is always valid UTF-8: every mutator
// validates its arguments before touching a byte, so a failed call leaves
// the content exactly as it was.
//
// String has value-copy hazards like bytes.Buffer: two copies share the
// backing buffer. Pass *String around once it carries content.
type String struct {
	buf []byte
}

func New() String { return String{} }

// WithCapacity returns an empty string with at least n bytes of capacity.
func WithCapacity(n int) String {
	return String{buf: alloc(n)}
}

func FromString(str string) String {
	b := alloc(len(str))
	return String{buf: append(b, str...)}
}

// FromBytes copies b into a new buffer. Bytes that are not valid UTF-8 are
// rejected with types.ErrInvalidUTF8 and b is left untouched.
func FromBytes(b []byte) (String, error) {
	if !utf8.Valid(b) {
		return String{}, types.ErrInvalidUTF8
	}
	nb := alloc(len(b))
	return String{buf: append(nb, b...)}, nil
}

func (s *String) Len() int      { return len(s.buf) }
func (s *String) IsEmpty() bool { return len(s.buf) == 0 }
func (s *String) Capacity() int { return cap(s.buf) }

// Bytes returns the content as a read-only view, valid until the next
// mutation.
func (s *String) Bytes() []byte { return s.buf }

// String returns the content as a zero-copy view, valid until the next
// mutation.
func (s *String) String() string { return utils.B2S(s.buf) }

// grow ensures room for extra more bytes. Growth at least doubles the
// capacity to keep repeated appends amortized.
func (s *String) grow(extra int) {
	need := len(s.buf) + extra
	if need <= cap(s.buf) {
		return
	}
	newCap := cap(s.buf) * 2
	if newCap < need {
		newCap = need
	}
	nb := alloc(newCap)
	nb = append(nb, s.buf...)
	free(s.buf)
	s.buf = nb
}

func (s *String) PushStr(str string) {
	s.grow(len(str))
	s.buf = append(s.buf, str...)
}

// Push appends the UTF-8 encoding of r. Invalid runes are encoded as
// U+FFFD, matching utf8.AppendRune, so the content stays valid UTF-8.
func (s *String) Push(r rune) {
	s.grow(utf8.UTFMax)
	s.buf = utf8.AppendRune(s.buf, r)
}

func (s *String) InsertStr(i int, str string) error {
	if err := types.CheckBoundary(s.buf, i); err != nil {
		return err
	}
	old := len(s.buf)
	s.grow(len(str))
	s.buf = s.buf[:old+len(str)]
	copy(s.buf[i+len(str):], s.buf[i:old])
	copy(s.buf[i:], str)
	return nil
}

func (s *String) Insert(i int, r rune) error {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return s.InsertStr(i, utils.B2S(tmp[:n]))
}

// Remove deletes and returns the character starting at byte index i.
func (s *String) Remove(i int) (rune, error) {
	if err := types.CheckBoundary(s.buf, i); err != nil {
		return 0, err
	}
	if i == len(s.buf) {
		return 0, types.ErrIndexOutOfRange
	}
	r, n := utf8.DecodeRune(s.buf[i:])
	s.buf = append(s.buf[:i], s.buf[i+n:]...)
	return r, nil
}

// RemoveRange deletes the bytes in [i, j). Both ends must be character
// boundaries.
func (s *String) RemoveRange(i, j int) error {
	if i > j {
		return types.ErrIndexOutOfRange
	}
	if err := types.CheckBoundary(s.buf, i); err != nil {
		return err
	}
	if err := types.CheckBoundary(s.buf, j); err != nil {
		return err
	}
	s.buf = append(s.buf[:i], s.buf[j:]...)
	return nil
}

// Pop removes and returns the last character. The second result is false
// when the string is empty.
func (s *String) Pop() (rune, bool) {
	if len(s.buf) == 0 {
		return 0, false
	}
	r, n := utf8.DecodeLastRune(s.buf)
	s.buf = s.buf[:len(s.buf)-n]
	return r, true
}

// Truncate shortens the content to n bytes in place. n must not exceed the
// current length and must land on a character boundary.
func (s *String) Truncate(n int) error {
	if n < 0 || n > len(s.buf) {
		return types.ErrIndexOutOfRange
	}
	if !types.IsBoundary(s.buf, n) {
		return types.ErrNotCharBoundary
	}
	s.buf = s.buf[:n]
	return nil
}

// Clear empties the content, keeping the capacity.
func (s *String) Clear() { s.buf = s.buf[:0] }

// Reserve ensures capacity for at least additional more bytes, growing by
// the usual doubling policy.
func (s *String) Reserve(additional int) {
	if additional > 0 {
		s.grow(additional)
	}
}

// ReserveExact ensures capacity for exactly additional more bytes, without
// the doubling headroom.
func (s *String) ReserveExact(additional int) {
	need := len(s.buf) + additional
	if additional <= 0 || need <= cap(s.buf) {
		return
	}
	nb := alloc(need)
	nb = append(nb, s.buf...)
	free(s.buf)
	s.buf = nb
}

// ShrinkToFit reallocates so that capacity matches the length exactly.
// It bypasses the pooled allocator's size classes on purpose; the old
// buffer is still handed back to it.
func (s *String) ShrinkToFit() {
	if cap(s.buf) == len(s.buf) {
		return
	}
	nb := make([]byte, len(s.buf))
	copy(nb, s.buf)
	free(s.buf)
	s.buf = nb
}

// ReplaceRange substitutes the bytes in [i, j) with str. Both ends must be
// character boundaries.
func (s *String) ReplaceRange(i, j int, str string) error {
	if i > j {
		return types.ErrIndexOutOfRange
	}
	if err := types.CheckBoundary(s.buf, i); err != nil {
		return err
	}
	if err := types.CheckBoundary(s.buf, j); err != nil {
		return err
	}
	old := len(s.buf)
	delta := len(str) - (j - i)
	if delta > 0 {
		s.grow(delta)
		s.buf = s.buf[:old+delta]
	}
	copy(s.buf[i+len(str):], s.buf[j:old])
	copy(s.buf[i:], str)
	if delta < 0 {
		s.buf = s.buf[:old+delta]
	}
	return nil
}

// SplitOff truncates the string to at bytes and returns the tail as a new
// String. at must be a character boundary.
func (s *String) SplitOff(at int) (String, error) {
	if err := types.CheckBoundary(s.buf, at); err != nil {
		return String{}, err
	}
	tail := FromString(utils.B2S(s.buf[at:]))
	s.buf = s.buf[:at]
	return tail, nil
}

// Retain keeps only the characters for which keep returns true, in place
// and in order.
func (s *String) Retain(keep func(rune) bool) {
	dst := 0
	for i := 0; i < len(s.buf); {
		r, n := utf8.DecodeRune(s.buf[i:])
		if keep(r) {
			copy(s.buf[dst:], s.buf[i:i+n])
			dst += n
		}
		i += n
	}
	s.buf = s.buf[:dst]
}

// Release hands the backing buffer to the allocator and resets the string
// to empty. Views returned earlier become invalid. With the default
// allocator this is equivalent to dropping the buffer.
func (s *String) Release() {
	free(s.buf)
	s.buf = nil
}

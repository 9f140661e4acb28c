// Package inlinestr provides a short UTF-8 string stored entirely inside
// the value. It performs no heap allocation and in exchange every growing
// operation can fail with types.ErrNoCapacity. The smallstr package wraps
// it together with a heap-backed buffer into a string that never runs out
// of room.
package inlinestr

import (
	"unicode/utf8"
	"unsafe"

	"github.com/quickwritereader/InlineStr/heapstr"
	"github.com/quickwritereader/InlineStr/types"
	"github.com/quickwritereader/InlineStr/utils"
)

// Capacity is the number of content bytes an inline String can hold. It is
// derived from the footprint of the heap representation rather than
// hardcoded: the heap arm's size minus one byte for the inline length
// field, so the two arms of a switching container occupy the same space.
// 23 on 64-bit platforms.
const Capacity = int(unsafe.Sizeof(heapstr.String{})) - 1

// String is a fixed-capacity UTF-8 string. The zero value is empty and
// ready to use. Mutators that would exceed Capacity fail with
// types.ErrNoCapacity and leave the content untouched; bytes past the
// length are unspecified.
type String struct {
	n   uint8
	buf [Capacity]byte
}

func New() String { return String{} }

// FromString copies str into an inline String, failing with
// types.ErrNoCapacity if it does not fit.
func FromString(str string) (String, error) {
	var s String
	if len(str) > Capacity {
		return s, types.ErrNoCapacity
	}
	copy(s.buf[:], str)
	s.n = uint8(len(str))
	return s, nil
}

func (s *String) Len() int      { return int(s.n) }
func (s *String) IsEmpty() bool { return s.n == 0 }

// Bytes returns the content as a read-only view, valid until the next
// mutation.
func (s *String) Bytes() []byte { return s.buf[:s.n] }

// String returns the content as a zero-copy view, valid until the next
// mutation.
func (s *String) String() string { return utils.B2S(s.buf[:s.n]) }

func (s *String) PushStr(str string) error {
	if int(s.n)+len(str) > Capacity {
		return types.ErrNoCapacity
	}
	copy(s.buf[s.n:], str)
	s.n += uint8(len(str))
	return nil
}

// Push appends the UTF-8 encoding of r (1-4 bytes). Invalid runes are
// encoded as U+FFFD.
func (s *String) Push(r rune) error {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return s.PushStr(utils.B2S(tmp[:n]))
}

func (s *String) InsertStr(i int, str string) error {
	if err := types.CheckBoundary(s.buf[:s.n], i); err != nil {
		return err
	}
	if int(s.n)+len(str) > Capacity {
		return types.ErrNoCapacity
	}
	copy(s.buf[i+len(str):int(s.n)+len(str)], s.buf[i:s.n])
	copy(s.buf[i:], str)
	s.n += uint8(len(str))
	return nil
}

func (s *String) Insert(i int, r rune) error {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return s.InsertStr(i, utils.B2S(tmp[:n]))
}

// Remove deletes and returns the character starting at byte index i.
func (s *String) Remove(i int) (rune, error) {
	b := s.buf[:s.n]
	if err := types.CheckBoundary(b, i); err != nil {
		return 0, err
	}
	if i == len(b) {
		return 0, types.ErrIndexOutOfRange
	}
	r, n := utf8.DecodeRune(b[i:])
	copy(s.buf[i:], b[i+n:])
	s.n -= uint8(n)
	return r, nil
}

// RemoveRange deletes the bytes in [i, j). Both ends must be character
// boundaries.
func (s *String) RemoveRange(i, j int) error {
	b := s.buf[:s.n]
	if i > j {
		return types.ErrIndexOutOfRange
	}
	if err := types.CheckBoundary(b, i); err != nil {
		return err
	}
	if err := types.CheckBoundary(b, j); err != nil {
		return err
	}
	copy(s.buf[i:], b[j:])
	s.n -= uint8(j - i)
	return nil
}

// Pop removes and returns the last character. The second result is false
// when the string is empty.
func (s *String) Pop() (rune, bool) {
	if s.n == 0 {
		return 0, false
	}
	r, n := utf8.DecodeLastRune(s.buf[:s.n])
	s.n -= uint8(n)
	return r, true
}

// Truncate shortens the content to n bytes in place. n must not exceed the
// current length and must land on a character boundary.
func (s *String) Truncate(n int) error {
	if n < 0 || n > int(s.n) {
		return types.ErrIndexOutOfRange
	}
	if !types.IsBoundary(s.buf[:s.n], n) {
		return types.ErrNotCharBoundary
	}
	s.n = uint8(n)
	return nil
}

func (s *String) Clear() { s.n = 0 }

// ReplaceRange substitutes the bytes in [i, j) with str, failing with
// types.ErrNoCapacity when the net growth does not fit.
func (s *String) ReplaceRange(i, j int, str string) error {
	b := s.buf[:s.n]
	if i > j {
		return types.ErrIndexOutOfRange
	}
	if err := types.CheckBoundary(b, i); err != nil {
		return err
	}
	if err := types.CheckBoundary(b, j); err != nil {
		return err
	}
	newLen := int(s.n) - (j - i) + len(str)
	if newLen > Capacity {
		return types.ErrNoCapacity
	}
	copy(s.buf[i+len(str):newLen], b[j:])
	copy(s.buf[i:], str)
	s.n = uint8(newLen)
	return nil
}

// SplitOff truncates the string to at bytes and returns the tail as a new
// String. at must be a character boundary.
func (s *String) SplitOff(at int) (String, error) {
	var tail String
	b := s.buf[:s.n]
	if err := types.CheckBoundary(b, at); err != nil {
		return tail, err
	}
	copy(tail.buf[:], b[at:])
	tail.n = uint8(len(b) - at)
	s.n = uint8(at)
	return tail, nil
}

// Retain keeps only the characters for which keep returns true, in place
// and in order.
func (s *String) Retain(keep func(rune) bool) {
	dst := 0
	for i := 0; i < int(s.n); {
		r, n := utf8.DecodeRune(s.buf[i:s.n])
		if keep(r) {
			copy(s.buf[dst:], s.buf[i:i+n])
			dst += n
		}
		i += n
	}
	s.n = uint8(dst)
}

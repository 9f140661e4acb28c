// Package smallstr implements an owned, growable UTF-8 string that keeps
// short content inline inside the value and switches to heap-backed storage
// only when the content outgrows the inline capacity. The switch is one-way:
// once a String has promoted to the heap it stays there, even if later
// truncation brings the length back under the inline limit. That keeps the
// representation logic auditable and avoids allocation churn on repeated
// grow/shrink cycles.
//
// The Buffer interface is the capability seam: it is implemented both by
// *String and by the always-allocated *heapstr.String, so algorithms can be
// written once and run over either.
package smallstr

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/quickwritereader/InlineStr/heapstr"
	"github.com/quickwritereader/InlineStr/inlinestr"
	"github.com/quickwritereader/InlineStr/types"
	"github.com/quickwritereader/InlineStr/utils"
)

// String is an inline-or-heap UTF-8 string. The zero value is an empty
// inline string ready to use. Exactly one arm is live at a time, named by
// the rep discriminant.
//
// String has value-copy hazards like bytes.Buffer: after promotion, copies
// share the heap buffer. Pass *String around once it carries content.
type String struct {
	rep    types.Rep
	inline inlinestr.String
	heap   heapstr.String
}

func New() String { return String{} }

// WithCapacity returns an empty string that can hold n bytes without
// promoting or reallocating. Requests within the inline capacity stay
// inline; anything larger starts out heap-backed.
func WithCapacity(n int) String {
	if n <= inlinestr.Capacity {
		return String{}
	}
	return String{rep: types.RepHeap, heap: heapstr.WithCapacity(n)}
}

// FromString copies str, choosing the representation by size: inline when
// it fits, heap-allocated at exactly the required size otherwise. Oversized
// input never takes an intermediate inline copy.
func FromString(str string) String {
	if inl, err := inlinestr.FromString(str); err == nil {
		return String{inline: inl}
	}
	return String{rep: types.RepHeap, heap: heapstr.FromString(str)}
}

// FromBytes copies b using the same size rule as FromString. Bytes that
// are not valid UTF-8 are rejected with types.ErrInvalidUTF8 and b is left
// untouched.
func FromBytes(b []byte) (String, error) {
	if !utf8.Valid(b) {
		return String{}, types.ErrInvalidUTF8
	}
	return FromString(utils.B2S(b)), nil
}

// FromUTF16 decodes a UTF-16 code unit sequence. Unpaired surrogates
// become U+FFFD.
func FromUTF16(u []uint16) String {
	return FromString(string(utf16.Decode(u)))
}

// Rep reports which storage arm is live.
func (s *String) Rep() types.Rep { return s.rep }

// promote moves the inline content into a heap buffer sized for the
// current length plus extra pending bytes. This is the only place the
// representation changes, and the change is permanent: nothing demotes
// back to inline.
func (s *String) promote(extra int) {
	if s.rep == types.RepHeap {
		return
	}
	h := heapstr.WithCapacity(s.inline.Len() + extra)
	h.PushStr(s.inline.String())
	s.heap = h
	s.inline.Clear()
	s.rep = types.RepHeap
}

func (s *String) Len() int {
	if s.rep == types.RepHeap {
		return s.heap.Len()
	}
	return s.inline.Len()
}

func (s *String) IsEmpty() bool { return s.Len() == 0 }

// Capacity reports the live arm's capacity: the fixed inline capacity
// before promotion, the heap buffer's capacity after. It can decrease
// across promotion when the heap buffer is sized tightly to the content;
// callers must not assume monotonic capacity.
func (s *String) Capacity() int {
	if s.rep == types.RepHeap {
		return s.heap.Capacity()
	}
	return inlinestr.Capacity
}

// Bytes returns the content as a read-only view, valid until the next
// mutation.
func (s *String) Bytes() []byte {
	if s.rep == types.RepHeap {
		return s.heap.Bytes()
	}
	return s.inline.Bytes()
}

// String returns the content as a zero-copy view, valid until the next
// mutation.
func (s *String) String() string {
	if s.rep == types.RepHeap {
		return s.heap.String()
	}
	return s.inline.String()
}

func (s *String) PushStr(str string) {
	if s.rep == types.RepInline {
		if s.inline.PushStr(str) == nil {
			return
		}
		s.promote(len(str))
	}
	s.heap.PushStr(str)
}

// Push appends the UTF-8 encoding of r (1-4 bytes). Invalid runes are
// encoded as U+FFFD.
func (s *String) Push(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	s.PushStr(utils.B2S(tmp[:n]))
}

func (s *String) InsertStr(i int, str string) error {
	if s.rep == types.RepInline {
		err := s.inline.InsertStr(i, str)
		if err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrNoCapacity) {
			return err
		}
		s.promote(len(str))
	}
	return s.heap.InsertStr(i, str)
}

func (s *String) Insert(i int, r rune) error {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return s.InsertStr(i, utils.B2S(tmp[:n]))
}

// Remove deletes and returns the character starting at byte index i.
// Removal only shrinks, so it never promotes.
func (s *String) Remove(i int) (rune, error) {
	if s.rep == types.RepHeap {
		return s.heap.Remove(i)
	}
	return s.inline.Remove(i)
}

// RemoveRange deletes the bytes in [i, j). Both ends must be character
// boundaries.
func (s *String) RemoveRange(i, j int) error {
	if s.rep == types.RepHeap {
		return s.heap.RemoveRange(i, j)
	}
	return s.inline.RemoveRange(i, j)
}

// Pop removes and returns the last character. The second result is false
// when the string is empty.
func (s *String) Pop() (rune, bool) {
	if s.rep == types.RepHeap {
		return s.heap.Pop()
	}
	return s.inline.Pop()
}

// Truncate shortens the content in place. A heap string stays heap no
// matter how short it gets.
func (s *String) Truncate(n int) error {
	if s.rep == types.RepHeap {
		return s.heap.Truncate(n)
	}
	return s.inline.Truncate(n)
}

// Clear empties the content in place without changing the representation.
func (s *String) Clear() {
	if s.rep == types.RepHeap {
		s.heap.Clear()
		return
	}
	s.inline.Clear()
}

// Reserve guarantees room for additional more bytes. If that cannot fit
// inline it promotes immediately, so subsequent writes up to the reserved
// size can neither promote nor reallocate.
func (s *String) Reserve(additional int) {
	if s.rep == types.RepInline {
		if s.inline.Len()+additional <= inlinestr.Capacity {
			return
		}
		s.promote(additional)
		return
	}
	s.heap.Reserve(additional)
}

// ReserveExact is Reserve without the heap arm's doubling headroom.
func (s *String) ReserveExact(additional int) {
	if s.rep == types.RepInline {
		if s.inline.Len()+additional <= inlinestr.Capacity {
			return
		}
		s.promote(additional)
		return
	}
	s.heap.ReserveExact(additional)
}

// ShrinkToFit trims a heap buffer's capacity down to its length. It does
// not demote to inline: promotion is one-way.
func (s *String) ShrinkToFit() {
	if s.rep == types.RepHeap {
		s.heap.ShrinkToFit()
	}
}

// ReplaceRange substitutes the bytes in [i, j) with str, promoting when
// the net growth no longer fits inline.
func (s *String) ReplaceRange(i, j int, str string) error {
	if s.rep == types.RepInline {
		err := s.inline.ReplaceRange(i, j, str)
		if err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrNoCapacity) {
			return err
		}
		s.promote(len(str))
	}
	return s.heap.ReplaceRange(i, j, str)
}

// SplitOff truncates the string to at bytes and returns the tail as a new
// String. The tail chooses its own representation by size; the receiver
// keeps its current one.
func (s *String) SplitOff(at int) (String, error) {
	if s.rep == types.RepHeap {
		if err := types.CheckBoundary(s.heap.Bytes(), at); err != nil {
			return String{}, err
		}
		tail := FromString(utils.B2S(s.heap.Bytes()[at:]))
		// Cannot fail: at was just validated.
		_ = s.heap.Truncate(at)
		return tail, nil
	}
	inlTail, err := s.inline.SplitOff(at)
	if err != nil {
		return String{}, err
	}
	return String{inline: inlTail}, nil
}

// Retain keeps only the characters for which keep returns true, in place
// and in order. Filtering only shrinks, so the representation is unchanged.
func (s *String) Retain(keep func(rune) bool) {
	if s.rep == types.RepHeap {
		s.heap.Retain(keep)
		return
	}
	s.inline.Retain(keep)
}

// IntoBytes returns the content as an owned byte slice that does not alias
// the string's storage.
func (s *String) IntoBytes() []byte {
	b := s.Bytes()
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// IntoHeap converts the content into a standalone heap string. A
// heap-backed String hands over its buffer; an inline one is copied out.
// The receiver must not be used afterwards.
func (s *String) IntoHeap() heapstr.String {
	if s.rep == types.RepHeap {
		return s.heap
	}
	return heapstr.FromString(s.inline.String())
}

func (s *String) HasPrefix(prefix string) bool { return utils.HasPrefix(s.Bytes(), prefix) }
func (s *String) HasSuffix(suffix string) bool { return utils.HasSuffix(s.Bytes(), suffix) }

// Equal reports content equality. Representation is irrelevant: an inline
// and a heap string holding the same bytes are equal.
func (s *String) Equal(other *String) bool {
	return string(s.Bytes()) == string(other.Bytes())
}

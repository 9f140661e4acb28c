package smallstr

import "github.com/quickwritereader/InlineStr/heapstr"

// Buffer is the capability surface shared by the inline-or-heap String and
// the always-allocated heapstr.String. Two buffers built from the same
// input and driven through the same operation sequence hold identical
// content and answer every query identically, except Capacity, which is
// representation-dependent.
//
// SplitOff is deliberately absent: it returns the concrete type, which an
// interface cannot express.
type Buffer interface {
	Len() int
	IsEmpty() bool
	Capacity() int
	String() string
	Bytes() []byte
	Push(r rune)
	PushStr(str string)
	Insert(i int, r rune) error
	InsertStr(i int, str string) error
	Remove(i int) (rune, error)
	RemoveRange(i, j int) error
	Pop() (rune, bool)
	Truncate(n int) error
	Clear()
	Reserve(additional int)
	ReserveExact(additional int)
	ShrinkToFit()
	Retain(keep func(rune) bool)
	ReplaceRange(i, j int, str string) error
}

var (
	_ Buffer = (*String)(nil)
	_ Buffer = (*heapstr.String)(nil)
)

package types

// Rep is the discriminant of a switching string container: which of the
// two storage arms is live.
type Rep uint8

const (
	RepInline Rep = 0
	RepHeap   Rep = 1
)

// String returns the human-readable name of the representation
func (r Rep) String() string {
	switch r {
	case RepInline:
		return "inline"
	case RepHeap:
		return "heap"
	default:
		return "invalid"
	}
}

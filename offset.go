package isbnurn

import (
	"strings"

	"github.com/creachadair/mds/value"
)

// An Offset is a character position within the content unit that a
// URN addresses, with an optional length.
//
// Start and length are kept as the digit strings they were given as,
// so that values like "007" survive a parse/serialize round trip.
//
// The zero Offset has no start, and is never rendered.
type Offset struct {
	start  string
	length value.Maybe[string]
}

// NewOffset returns an Offset at the given start position, with no
// length.
func NewOffset(start string) Offset {
	return Offset{start: start}
}

// WithLength returns a copy of o with the given length.
func (o Offset) WithLength(length string) Offset {
	o.length = value.Just(length)
	return o
}

// WithoutLength returns a copy of o with no length.
func (o Offset) WithoutLength() Offset {
	o.length = value.Absent[string]()
	return o
}

// Start returns the offset's start position.
func (o Offset) Start() string { return o.start }

// Length returns the offset's length, and whether it has one.
func (o Offset) Length() (string, bool) { return o.length.GetOK() }

// IsZero reports whether o has no start position. A zero Offset
// renders nothing.
func (o Offset) IsZero() bool { return o.start == "" }

// String returns the offset in its URN fragment form, for example
// "offset(10,34)". The zero Offset returns "".
func (o Offset) String() string {
	if o.IsZero() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(offsetPrefix)
	sb.WriteString(o.start)
	if l, ok := o.length.GetOK(); ok {
		sb.WriteByte(',')
		sb.WriteString(l)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports whether o and other have the same start and length.
func (o Offset) Equal(other Offset) bool {
	if o.start != other.start {
		return false
	}
	l1, ok1 := o.length.GetOK()
	l2, ok2 := other.length.GetOK()
	return ok1 == ok2 && l1 == l2
}

package isbnurn

import (
	"strings"

	"github.com/creachadair/mds/value"
	"github.com/danderson/isbnurn/internal/scan"
)

// DefaultNamespaceIdentifier is the namespace identifier that
// [Record.SetNamespaceIdentifier] uses when given an empty string.
const DefaultNamespaceIdentifier = "isbn"

const (
	urnPrefix     = "urn:"
	tocItemKey    = "tocitem="
	segmentNumKey = "segmentnum="
	offsetPrefix  = "offset("
)

// A Record is a URN that addresses a location within a publication.
//
// Every field is optional. The zero Record has no fields set, and
// renders as "urn:".
//
// A Record is not safe for concurrent mutation.
type Record struct {
	nid          value.Maybe[string]
	namespace    value.Maybe[string]
	tocItem      value.Maybe[string]
	segmentNum   value.Maybe[string]
	offset       value.Maybe[Offset]
	textFragment value.Maybe[string]
}

// New returns an empty Record.
func New() *Record {
	return &Record{}
}

// Parse parses a URN string.
//
// Parse never fails. Each component of the URN is searched for
// independently anywhere in s, and components that are not found are
// left unset. A string that matches nothing yields an empty Record.
func Parse(s string) *Record {
	ret := &Record{}
	ret.Apply(s)
	return ret
}

// Apply parses s into r. Fields whose URN component is found in s are
// overwritten, all other fields keep their current value.
//
// If s has an offset with no trailing text fragment, r's text
// fragment is cleared.
func (r *Record) Apply(s string) {
	if nid, ns, ok := parseIdentifier(s); ok {
		r.nid = value.Just(nid)
		r.namespace = value.Just(ns)
	}

	if toc, ok := scan.Value(s, tocItemKey, scan.DottedDigits); ok {
		r.tocItem = value.Just(toc)
	} else if seg, ok := scan.Value(s, segmentNumKey, scan.Digits); ok {
		r.segmentNum = value.Just(seg)
	}

	if off, text, ok := parseFragment(s); ok {
		r.offset = value.Just(off)
		if text == "" {
			r.textFragment = value.Absent[string]()
		} else {
			r.textFragment = value.Just(unescapeFragment(text))
		}
	}
}

// parseIdentifier finds the leftmost urn:<nid>:<namespace> in s,
// where nid is [^:]+ and namespace is [^?#]+.
func parseIdentifier(s string) (nid, ns string, ok bool) {
	scan.Each(s, urnPrefix, func(i int) bool {
		end := scan.Run(s, i, scan.Not(":"))
		if end == i {
			return false
		}
		nsStart, found := scan.Literal(s, end, ":")
		if !found {
			return false
		}
		nsEnd := scan.Run(s, nsStart, scan.Not("?#"))
		if nsEnd == nsStart {
			return false
		}
		nid, ns, ok = s[i:end], s[nsStart:nsEnd], true
		return true
	})
	return nid, ns, ok
}

// parseFragment finds the leftmost #offset(<start>[,<length>]) in s,
// and returns the offset along with the still-encoded run of
// fragment text that immediately follows it, if any.
func parseFragment(s string) (off Offset, text string, ok bool) {
	scan.Each(s, "#"+offsetPrefix, func(i int) bool {
		startEnd := scan.Run(s, i, scan.Digits)
		if startEnd == i {
			return false
		}
		o := NewOffset(s[i:startEnd])

		next := startEnd
		if lenStart, found := scan.Literal(s, next, ","); found {
			lenEnd := scan.Run(s, lenStart, scan.Digits)
			if lenEnd == lenStart {
				return false
			}
			o = o.WithLength(s[lenStart:lenEnd])
			next = lenEnd
		}
		next, found := scan.Literal(s, next, ")")
		if !found {
			return false
		}

		off, ok = o, true
		text = s[next:scan.Run(s, next, scan.FragmentText)]
		return true
	})
	return off, text, ok
}

// String returns the URN for r.
//
// The URN is built from r's current fields on every call. The
// namespace identifier and namespace are only rendered if both are
// set. If both a TOC item and a segment number are set, only the TOC
// item is rendered. The text fragment is only rendered after an
// offset.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(urnPrefix)

	nid, nidOK := r.NamespaceIdentifier()
	ns, nsOK := r.Namespace()
	if nidOK && nsOK {
		sb.WriteString(nid)
		sb.WriteByte(':')
		sb.WriteString(ns)
	}

	if toc, ok := r.TocItem(); ok {
		sb.WriteByte('?')
		sb.WriteString(tocItemKey)
		sb.WriteString(toc)
	} else if seg, ok := r.SegmentNum(); ok {
		sb.WriteByte('?')
		sb.WriteString(segmentNumKey)
		sb.WriteString(seg)
	}

	if off, ok := r.Offset(); ok {
		sb.WriteByte('#')
		sb.WriteString(off.String())
		if text, ok := r.TextFragment(); ok {
			sb.WriteString(escapeFragment(text))
		}
	}

	return sb.String()
}

// nonEmpty returns m's value if it is present and not "".
func nonEmpty(m value.Maybe[string]) (string, bool) {
	v, ok := m.GetOK()
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// NamespaceIdentifier returns the URN's namespace identifier (for
// example "isbn"), and whether it is set.
func (r *Record) NamespaceIdentifier() (string, bool) { return nonEmpty(r.nid) }

// SetNamespaceIdentifier sets the namespace identifier. If nid is
// empty, the namespace identifier is set to
// [DefaultNamespaceIdentifier].
func (r *Record) SetNamespaceIdentifier(nid string) {
	if nid == "" {
		nid = DefaultNamespaceIdentifier
	}
	r.nid = value.Just(nid)
}

// ClearNamespaceIdentifier unsets the namespace identifier.
func (r *Record) ClearNamespaceIdentifier() { r.nid = value.Absent[string]() }

// Namespace returns the URN's namespace-specific string, for example
// an ISBN-13, and whether it is set. The namespace is not validated.
func (r *Record) Namespace() (string, bool) { return nonEmpty(r.namespace) }

// SetNamespace sets the namespace-specific string.
func (r *Record) SetNamespace(ns string) { r.namespace = value.Just(ns) }

// ClearNamespace unsets the namespace-specific string.
func (r *Record) ClearNamespace() { r.namespace = value.Absent[string]() }

// TocItem returns the dotted table of contents path (for example
// "3.3.3"), and whether it is set.
func (r *Record) TocItem() (string, bool) { return nonEmpty(r.tocItem) }

// SetTocItem sets the table of contents path.
func (r *Record) SetTocItem(toc string) { r.tocItem = value.Just(toc) }

// ClearTocItem unsets the table of contents path.
func (r *Record) ClearTocItem() { r.tocItem = value.Absent[string]() }

// SegmentNum returns the flat segment number, and whether it is set.
// A segment number of "0" is set.
func (r *Record) SegmentNum() (string, bool) { return nonEmpty(r.segmentNum) }

// SetSegmentNum sets the segment number.
func (r *Record) SetSegmentNum(seg string) { r.segmentNum = value.Just(seg) }

// ClearSegmentNum unsets the segment number.
func (r *Record) ClearSegmentNum() { r.segmentNum = value.Absent[string]() }

// Offset returns the URN's offset, and whether it is set. A zero
// Offset is reported as unset.
func (r *Record) Offset() (Offset, bool) {
	off, ok := r.offset.GetOK()
	if !ok || off.IsZero() {
		return Offset{}, false
	}
	return off, true
}

// SetOffset sets the offset. Setting the zero Offset is equivalent to
// [Record.ClearOffset].
func (r *Record) SetOffset(off Offset) { r.offset = value.Just(off) }

// ClearOffset unsets the offset. The text fragment, if any, is kept
// but is not rendered until an offset is set again.
func (r *Record) ClearOffset() { r.offset = value.Absent[Offset]() }

// TextFragment returns the decoded anchor text, and whether it is
// set.
func (r *Record) TextFragment() (string, bool) { return nonEmpty(r.textFragment) }

// SetTextFragment sets the anchor text. text is given unescaped.
func (r *Record) SetTextFragment(text string) { r.textFragment = value.Just(text) }

// ClearTextFragment unsets the anchor text.
func (r *Record) ClearTextFragment() { r.textFragment = value.Absent[string]() }

// Clone returns a copy of r.
func (r *Record) Clone() *Record {
	ret := *r
	return &ret
}

// Equal reports whether r and other have the same fields set to the
// same values.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	type getter func(*Record) (string, bool)
	for _, get := range []getter{
		(*Record).NamespaceIdentifier,
		(*Record).Namespace,
		(*Record).TocItem,
		(*Record).SegmentNum,
		(*Record).TextFragment,
	} {
		a, aOK := get(r)
		b, bOK := get(other)
		if aOK != bOK || a != b {
			return false
		}
	}
	o1, ok1 := r.Offset()
	o2, ok2 := other.Offset()
	return ok1 == ok2 && o1.Equal(o2)
}

// Canonical parses s and returns its canonical rendering, and whether
// s was already canonical.
func Canonical(s string) (string, bool) {
	ret := Parse(s).String()
	return ret, ret == s
}

// MarshalText implements [encoding.TextMarshaler]. It returns the
// same text as [Record.String].
func (r *Record) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It resets r
// and parses text into it. It never returns an error.
func (r *Record) UnmarshalText(text []byte) error {
	*r = Record{}
	r.Apply(string(text))
	return nil
}

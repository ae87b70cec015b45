package isbnurn

import (
	"errors"
	"fmt"
)

var (
	// ErrUnpaired is the reason for a FieldError on a namespace
	// identifier or namespace that is set without the other.
	ErrUnpaired = errors.New("set without its pair, not rendered")
	// ErrShadowed is the reason for a FieldError on a segment number
	// that is hidden by a TOC item.
	ErrShadowed = errors.New("shadowed by tocitem, not rendered")
	// ErrNoOffset is the reason for a FieldError on a text fragment
	// that has no offset to follow.
	ErrNoOffset = errors.New("no offset to anchor to, not rendered")
)

// FieldError is the error returned by [Record.Validate] for a field
// that is set but would be left out of the record's URN.
type FieldError struct {
	// Field is the name of the field, as it appears in the URN
	// grammar.
	Field string
	// Reason explains why the field is not rendered.
	Reason error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("urn field %s: %s", e.Field, e.Reason)
}

func (e FieldError) Unwrap() error {
	return e.Reason
}

// Validate reports fields of r that are set but that [Record.String]
// leaves out. It returns nil if every set field is rendered,
// otherwise a join of one [FieldError] per dropped field.
//
// Parsing and serialization never call Validate.
func (r *Record) Validate() error {
	var errs []error
	_, nidOK := r.NamespaceIdentifier()
	_, nsOK := r.Namespace()
	if nidOK && !nsOK {
		errs = append(errs, FieldError{"nid", ErrUnpaired})
	}
	if nsOK && !nidOK {
		errs = append(errs, FieldError{"namespace", ErrUnpaired})
	}

	_, tocOK := r.TocItem()
	if _, ok := r.SegmentNum(); ok && tocOK {
		errs = append(errs, FieldError{"segmentnum", ErrShadowed})
	}

	_, offOK := r.Offset()
	if _, ok := r.TextFragment(); ok && !offOK {
		errs = append(errs, FieldError{"text", ErrNoOffset})
	}

	return errors.Join(errs...)
}

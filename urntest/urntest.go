// Package urntest provides helpers for testing code that handles
// publication URNs.
package urntest

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/danderson/isbnurn"
)

//go:embed testdata/canonical.txt
var canonical string

// Canonical returns a corpus of URNs that are already in canonical
// form, covering every component of the URN grammar.
//
// Every string s in the corpus satisfies isbnurn.Parse(s).String() == s.
func Canonical() []string {
	var ret []string
	for _, l := range strings.Split(canonical, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			ret = append(ret, l)
		}
	}
	return ret
}

// RoundTrip parses s, and reports a test error if the parsed record
// does not render back to s. It returns the parsed record.
func RoundTrip(t testing.TB, s string) *isbnurn.Record {
	t.Helper()
	r := isbnurn.Parse(s)
	if got := r.String(); got != s {
		t.Errorf("Parse(%q).String() = %q, want round trip", s, got)
	}
	return r
}

// Build returns the URN for a record populated by fn, starting from
// an empty record.
func Build(fn func(r *isbnurn.Record)) string {
	r := isbnurn.New()
	fn(r)
	return r.String()
}

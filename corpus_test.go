package isbnurn_test

import (
	"testing"

	"github.com/danderson/isbnurn"
	"github.com/danderson/isbnurn/urntest"
)

func TestRoundTrip(t *testing.T) {
	for _, s := range urntest.Canonical() {
		r := urntest.RoundTrip(t, s)
		if err := r.Validate(); err != nil {
			t.Errorf("Parse(%q).Validate() = %v, want nil", s, err)
		}
		if got, ok := isbnurn.Canonical(s); !ok {
			t.Errorf("Canonical(%q) = %q, false, want canonical", s, got)
		}
		again := isbnurn.Parse(r.String())
		if !again.Equal(r) {
			t.Errorf("Parse(%q) not stable across a second round trip", s)
		}
	}
}

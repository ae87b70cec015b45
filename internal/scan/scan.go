// Package scan provides the unanchored search primitives that the URN
// grammar is built from.
//
// Every search operates on the raw input string and returns the
// leftmost match, the same way an unanchored regular expression
// search would. Searches never share a cursor, so callers can run
// them in any order against the same input.
package scan

import "strings"

// A Class is a set of bytes.
type Class func(b byte) bool

var (
	// Digits matches [0-9].
	Digits Class = func(b byte) bool { return '0' <= b && b <= '9' }
	// DottedDigits matches [0-9.].
	DottedDigits Class = func(b byte) bool { return b == '.' || Digits(b) }
	// FragmentText matches [a-zA-Z0-9+].
	FragmentText Class = func(b byte) bool {
		return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b == '+' || Digits(b)
	}
)

// Not returns a Class that matches every byte except those in
// exclude.
func Not(exclude string) Class {
	return func(b byte) bool { return strings.IndexByte(exclude, b) < 0 }
}

// Run returns the end index of the longest run of bytes in class
// starting at s[i]. If s[i] is not in class, Run returns i.
func Run(s string, i int, class Class) int {
	for i < len(s) && class(s[i]) {
		i++
	}
	return i
}

// Literal reports whether s has lit at index i, and returns the index
// just past it.
func Literal(s string, i int, lit string) (int, bool) {
	if !strings.HasPrefix(s[i:], lit) {
		return i, false
	}
	return i + len(lit), true
}

// Each calls fn with the index just past each occurrence of lit in s,
// leftmost first, until fn returns true.
//
// Occurrences may overlap: after a rejected occurrence at index i,
// the search resumes at i+1.
func Each(s, lit string, fn func(after int) bool) {
	for i := 0; i <= len(s)-len(lit); {
		j := strings.Index(s[i:], lit)
		if j < 0 {
			return
		}
		start := i + j
		if fn(start + len(lit)) {
			return
		}
		i = start + 1
	}
}

// Value returns the first non-empty run of class that immediately
// follows an occurrence of key in s, as in a search for
// key([class]+).
func Value(s, key string, class Class) (ret string, ok bool) {
	Each(s, key, func(after int) bool {
		end := Run(s, after, class)
		if end == after {
			return false
		}
		ret, ok = s[after:end], true
		return true
	})
	return ret, ok
}

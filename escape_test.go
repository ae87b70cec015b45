package isbnurn

import "testing"

func TestEscapeFragment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{testText, "de+lelijke+vos+sprong+in+de+bosjes"},
		{"a-b_c.d", "a-b_c.d"},
		{"a+b", "a%2Bb"},
		{"~", "%7E"},
		{"é", "%C3%A9"},
		{"50%", "50%25"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := escapeFragment(tc.in); got != tc.want {
			t.Errorf("escapeFragment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnescapeFragment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"de+lelijke+vos", "de lelijke vos"},
		{"a%2Bb", "a+b"},
		{"%C3%A9", "é"},
		{"%zz+a", "%zz a"},
		{"%41%", "A%"},
		{"%4", "%4"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := unescapeFragment(tc.in); got != tc.want {
			t.Errorf("unescapeFragment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

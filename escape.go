package isbnurn

import (
	"net/url"
	"strings"
)

// escapeFragment form-encodes a text fragment for inclusion after an
// offset: ASCII letters, digits and "-_." pass through, space becomes
// '+', and all other bytes become %XX.
//
// Note that only letters, digits and '+' are recognized as fragment
// text when parsing. Text containing any other character does not
// survive a round trip beyond the first such character.
func escapeFragment(s string) string {
	// QueryEscape also leaves '~' alone, form encoding does not.
	return strings.ReplaceAll(url.QueryEscape(s), "~", "%7E")
}

// unescapeFragment reverses escapeFragment. Malformed %-escapes are
// kept verbatim.
func unescapeFragment(s string) string {
	if ret, err := url.QueryUnescape(s); err == nil {
		return ret
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			sb.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// Package isbnurn parses and builds URNs that address a location
// within an ISBN-identified publication.
//
// The URN format is:
//
//	urn:<nid>:<namespace>[?tocitem=<toc>|?segmentnum=<seg>][#offset(<start>[,<length>])[<text>]]
//
// For example:
//
//	urn:isbn:9795363916662?tocitem=3.3.3#offset(10,34)de+lelijke+vos+sprong+in+de+bosjes
//
// addresses the 34 characters starting at character 10 of table of
// contents entry 3.3.3 in ISBN 9795363916662, and anchors them to the
// text "de lelijke vos sprong in de bosjes".
//
// [Parse] is lenient. Each component is searched for on its own,
// anywhere in the input, and the first match wins:
//
// The identifier is the first "urn:" followed by one or more non-':'
// bytes, a ':', and one or more bytes that are neither '?' nor
// '#'. The namespace is opaque, and is not checked to be a valid
// ISBN.
//
// The TOC item is the first "tocitem=" followed by one or more digits
// and dots. If there is no TOC item, the segment number is the first
// "segmentnum=" followed by one or more digits. A URN with a TOC item
// never has a segment number, even if one is present in the string.
//
// The offset is the first "#offset(" followed by a start position, an
// optional comma and length, and a closing parenthesis. Any letters,
// digits and '+' directly after the closing parenthesis are the text
// fragment, which is form-decoded. A '%' ends the text fragment, so
// text that needed %-escaping when it was built does not survive
// parsing in full.
//
// Components that are not found are left unset. Parse has no error
// return: a string that is not a URN at all produces an empty
// [Record].
//
// [Record.String] rebuilds the URN from the record's fields, and
// always produces the same output for the same fields. Fields that
// the format cannot express are left out rather than reported:
//
// The namespace identifier and namespace are only rendered together.
//
// If both a TOC item and a segment number are set, only the TOC item
// is rendered.
//
// The text fragment is only rendered after an offset.
//
// Use [Record.Validate] to find out which set fields a record's URN
// leaves out.
//
// For every URN that Parse accepts in full, Parse(s).String() == s.
package isbnurn

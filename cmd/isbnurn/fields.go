package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danderson/isbnurn"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// applyFieldArgs sets the fields of r given on the command line.
func applyFieldArgs(r *isbnurn.Record) error {
	a := fieldArgs
	if a.NID != "" || (a.Namespace != "" && !hasNID(r)) {
		r.SetNamespaceIdentifier(a.NID)
	}
	if a.Namespace != "" {
		r.SetNamespace(a.Namespace)
	}
	if a.Toc != "" {
		r.SetTocItem(a.Toc)
	}
	if a.Segment != "" {
		r.SetSegmentNum(a.Segment)
	}
	if a.Offset != "" {
		off, err := parseOffsetArg(a.Offset)
		if err != nil {
			return err
		}
		r.SetOffset(off)
	}
	if a.Text != "" {
		r.SetTextFragment(a.Text)
	}
	return nil
}

func hasNID(r *isbnurn.Record) bool {
	_, ok := r.NamespaceIdentifier()
	return ok
}

// parseOffsetArg parses an offset given as "start" or
// "start,length".
func parseOffsetArg(s string) (isbnurn.Offset, error) {
	want := "offset(" + s + ")"
	off, ok := isbnurn.Parse("#" + want).Offset()
	if !ok || off.String() != want {
		return isbnurn.Offset{}, fmt.Errorf("invalid offset %q, want start or start,length", s)
	}
	return off, nil
}

// recordView is the structured form of a Record used for printing.
type recordView struct {
	URN                 string      `json:"urn" yaml:"urn"`
	NamespaceIdentifier *string     `json:"nid,omitempty" yaml:"nid,omitempty"`
	Namespace           *string     `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	TocItem             *string     `json:"tocitem,omitempty" yaml:"tocitem,omitempty"`
	SegmentNum          *string     `json:"segmentnum,omitempty" yaml:"segmentnum,omitempty"`
	Offset              *offsetView `json:"offset,omitempty" yaml:"offset,omitempty"`
	TextFragment        *string     `json:"text,omitempty" yaml:"text,omitempty"`
}

type offsetView struct {
	Start  string  `json:"start" yaml:"start"`
	Length *string `json:"length,omitempty" yaml:"length,omitempty"`
}

func opt(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}

func viewOf(r *isbnurn.Record) recordView {
	ret := recordView{
		URN:                 r.String(),
		NamespaceIdentifier: opt(r.NamespaceIdentifier()),
		Namespace:           opt(r.Namespace()),
		TocItem:             opt(r.TocItem()),
		SegmentNum:          opt(r.SegmentNum()),
		TextFragment:        opt(r.TextFragment()),
	}
	if off, ok := r.Offset(); ok {
		ret.Offset = &offsetView{
			Start:  off.Start(),
			Length: opt(off.Length()),
		}
	}
	return ret
}

func printRecord(w io.Writer, format string, r *isbnurn.Record) error {
	v := viewOf(r)
	switch format {
	case "json":
		bs, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", bs)
		return err
	case "yaml":
		bs, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "---\n%s", bs)
		return err
	case "go":
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(v))
		return err
	default:
		return printText(w, v)
	}
}

func printText(w io.Writer, v recordView) error {
	line := func(label string, val *string) {
		if val != nil {
			fmt.Fprintf(w, "%s: %s\n", label, *val)
		}
	}
	fmt.Fprintf(w, "URN: %s\n", v.URN)
	line("Namespace Identifier", v.NamespaceIdentifier)
	line("Namespace", v.Namespace)
	line("TOC Item", v.TocItem)
	line("Segment Number", v.SegmentNum)
	if v.Offset != nil {
		if v.Offset.Length != nil {
			fmt.Fprintf(w, "Offset: start %s, length %s\n", v.Offset.Start, *v.Offset.Length)
		} else {
			fmt.Fprintf(w, "Offset: start %s\n", v.Offset.Start)
		}
	}
	line("Text Fragment", v.TextFragment)
	return nil
}

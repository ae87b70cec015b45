package isbnurn

// fields is a comparable snapshot of a Record's accessors. Unset
// fields are nil.
type fields struct {
	NID       *string
	Namespace *string
	Toc       *string
	Segment   *string
	Start     *string
	Length    *string
	Text      *string
}

func str(s string) *string { return &s }

func opt(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}

func snapshot(r *Record) fields {
	ret := fields{
		NID:       opt(r.NamespaceIdentifier()),
		Namespace: opt(r.Namespace()),
		Toc:       opt(r.TocItem()),
		Segment:   opt(r.SegmentNum()),
		Text:      opt(r.TextFragment()),
	}
	if off, ok := r.Offset(); ok {
		ret.Start = str(off.Start())
		ret.Length = opt(off.Length())
	}
	return ret
}

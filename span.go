package docgo

import (
	"iter"
	"strings"
)

// Span is a lazy, read-only window over a document range. It never copies
// token data: a span is (document, start, stop, label) and stays valid only
// as long as the document does not merge or reallocate underneath it.
type Span struct {
	doc   *Doc
	start int
	stop  int
	label uint64
}

// Start returns the index of the first token in the span.
func (s Span) Start() int { return s.start }

// Stop returns the index one past the last token in the span.
func (s Span) Stop() int { return s.stop }

// Label returns the span's label symbol (the entity type for entity spans,
// 0 otherwise).
func (s Span) Label() uint64 { return s.label }

// Len returns the number of tokens in the span.
func (s Span) Len() int { return s.stop - s.start }

// All iterates the span's tokens in index order.
func (s Span) All() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for i := s.start; i < s.stop; i++ {
			if !yield(s.doc.view(i)) {
				return
			}
		}
	}
}

// Text returns the span's surface text. The trailing space of the last
// token is not included.
func (s Span) Text() string {
	var sb strings.Builder
	for i := s.start; i < s.stop; i++ {
		r := s.doc.rec(i)
		sb.WriteString(r.Lex.Text())
		if r.Spacy && i < s.stop-1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Ents extracts entity spans by scanning the IOB tags left to right:
// IOBBegin opens a span labelled with the token's entity type, IOBInside
// continues it, anything else closes it. A span still open at the end of
// the document is flushed as a final span.
func (d *Doc) Ents() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		start := -1
		var label uint64
		for i := 0; i < d.length; i++ {
			r := d.rec(i)
			switch r.EntIOB {
			case IOBBegin:
				if start >= 0 && !yield(Span{doc: d, start: start, stop: i, label: label}) {
					return
				}
				start, label = i, r.EntType
			case IOBInside:
				// continues the open span
			default:
				if start >= 0 {
					if !yield(Span{doc: d, start: start, stop: i, label: label}) {
						return
					}
					start = -1
				}
			}
		}
		if start >= 0 {
			yield(Span{doc: d, start: start, stop: d.length, label: label})
		}
	}
}

// Sents extracts sentence spans delimited by SentStart boundaries; the first
// sentence implicitly starts at token 0. Meaningful on parsed documents,
// but not enforced.
func (d *Doc) Sents() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if d.length == 0 {
			return
		}
		start := 0
		for i := 1; i < d.length; i++ {
			if d.rec(i).SentStart {
				if !yield(Span{doc: d, start: start, stop: i}) {
					return
				}
				start = i
			}
		}
		yield(Span{doc: d, start: start, stop: d.length})
	}
}

package docgo

import (
	"iter"
	"strings"

	"github.com/hupe1980/docgo/vocab"
)

// Padding is the fixed margin of sentinel records kept on both ends of the
// buffer. Internal indices in [-Padding, length+Padding) are always safe to
// dereference, so neighbor-relative access near the edges (e.g. feature
// windows looking a few tokens back or forward) needs no extra check.
const Padding = 5

// Doc is the document buffer: a contiguous, padded, growable sequence of
// token records bound to one vocabulary for its lifetime.
//
// A Doc is exclusively owned by whichever scope holds it and is not designed
// for concurrent mutation.
type Doc struct {
	vocab    *vocab.Vocab
	data     []TokenRecord // Padding + capacity + Padding slots
	length   int
	capacity int

	tagged bool
	parsed bool

	// version is bumped by every structural mutation (Merge, Grow) so
	// index-keyed caches can detect staleness.
	version uint64
	views   []*Token
}

// New creates an empty document bound to v.
func New(v *vocab.Vocab, opts ...Option) *Doc {
	o := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Doc{
		vocab:    v,
		data:     make([]TokenRecord, Padding+o.capacity+Padding),
		capacity: o.capacity,
	}
	d.fillSentinel(0, len(d.data))
	return d
}

// Vocab returns the vocabulary the document is bound to.
func (d *Doc) Vocab() *vocab.Vocab { return d.vocab }

// Len returns the number of live tokens.
func (d *Doc) Len() int { return d.length }

// Cap returns the buffer capacity in tokens, excluding padding.
func (d *Doc) Cap() int { return d.capacity }

// Tagged reports whether a tagging pass has run (set by SetParse, FromArray,
// and Merge only).
func (d *Doc) Tagged() bool { return d.tagged }

// Parsed reports whether a parsing pass has run (set by SetParse and
// FromArray only).
func (d *Doc) Parsed() bool { return d.parsed }

// Version returns the structural version counter. It changes whenever Merge
// or Grow invalidates index-keyed views.
func (d *Doc) Version() uint64 { return d.version }

// rec returns the record at logical index i. Valid for any i in
// [-Padding, length+Padding); indices outside [0, length) address sentinel
// slots.
func (d *Doc) rec(i int) *TokenRecord {
	return &d.data[Padding+i]
}

func (d *Doc) fillSentinel(lo, hi int) {
	empty := d.vocab.Empty()
	for i := lo; i < hi; i++ {
		d.data[i] = TokenRecord{Lex: empty}
	}
}

func (d *Doc) invalidate() {
	d.version++
	d.views = nil
}

// PushBack appends one token and returns the character offset just past it
// (its Idx plus length plus trailing space), so producers can track text
// position without recomputation. Grows the buffer by doubling when full.
func (d *Doc) PushBack(lex *vocab.Lexeme, hasSpace bool) int {
	return d.push(TokenRecord{Lex: lex, Spacy: hasSpace})
}

// PushToken appends one full record, annotations included. Lex and Spacy
// are taken from the record; Idx is recomputed from the previous token.
func (d *Doc) PushToken(rec TokenRecord) int {
	return d.push(rec)
}

func (d *Doc) push(rec TokenRecord) int {
	if rec.Lex == nil {
		rec.Lex = d.vocab.Empty()
	}
	if d.length == d.capacity {
		d.Grow(max(d.capacity*2, 1))
	}

	rec.Idx = 0
	if d.length > 0 {
		prev := d.rec(d.length - 1)
		rec.Idx = prev.Idx + prev.Lex.Length + spaceLen(prev.Spacy)
	}

	*d.rec(d.length) = rec
	d.length++
	return rec.Idx + rec.Lex.Length + spaceLen(rec.Spacy)
}

// Grow reallocates the backing storage to hold at least newCap tokens,
// preserving existing records and re-filling both padding regions with
// sentinel records. Capacity never shrinks.
func (d *Doc) Grow(newCap int) {
	if newCap <= d.capacity {
		return
	}
	data := make([]TokenRecord, Padding+newCap+Padding)
	copy(data[Padding:], d.data[Padding:Padding+d.length])
	d.data = data
	d.capacity = newCap
	d.fillSentinel(0, Padding)
	d.fillSentinel(Padding+d.length, len(d.data))
	d.invalidate()
}

// Get returns the token at logical index i. Negative i wraps as length+i.
// After normalization, indices are rejected exactly when (i+Padding) < 0 or
// (i-Padding) >= length; indices inside the padding window but outside
// [0, length) resolve to sentinel empty-lexeme data.
func (d *Doc) Get(i int) (*Token, error) {
	if i < 0 {
		i += d.length
	}
	if i+Padding < 0 || i-Padding >= d.length {
		return nil, &ErrIndexOutOfRange{Index: i, Length: d.length}
	}
	if i >= 0 && i < d.length {
		return d.view(i), nil
	}
	// Padding window: sentinel data, not worth caching.
	return &Token{doc: d, i: i}, nil
}

// view returns the cached wrapper for live index i, materializing it lazily.
func (d *Doc) view(i int) *Token {
	if len(d.views) < d.length {
		views := make([]*Token, d.length)
		copy(views, d.views)
		d.views = views
	}
	if d.views[i] == nil {
		d.views[i] = &Token{doc: d, i: i}
	}
	return d.views[i]
}

// All iterates the live tokens in index order. The sequence is lazy, finite,
// and restartable.
func (d *Doc) All() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for i := 0; i < d.length; i++ {
			if !yield(d.view(i)) {
				return
			}
		}
	}
}

// Slice returns a no-copy view over [start, stop). Negative bounds wrap;
// out-of-range bounds clamp to the document.
func (d *Doc) Slice(start, stop int) (*Span, error) {
	if start < 0 {
		start += d.length
	}
	if stop < 0 {
		stop += d.length
	}
	start = min(max(start, 0), d.length)
	stop = min(max(stop, start), d.length)
	return &Span{doc: d, start: start, stop: stop}, nil
}

// SliceStep is Slice with an explicit step. Any step other than 1 is
// rejected with ErrUnsupportedStep: callers needing a stride must
// materialize a token list first.
func (d *Doc) SliceStep(start, stop, step int) (*Span, error) {
	if step != 1 {
		return nil, ErrUnsupportedStep
	}
	return d.Slice(start, stop)
}

// SetParse bulk-overwrites all records from an externally computed array
// (the output of a parser) and marks the document parsed. All-or-nothing:
// a length mismatch leaves the document untouched.
func (d *Doc) SetParse(recs []TokenRecord) error {
	if len(recs) != d.length {
		return &ErrLengthMismatch{Want: d.length, Got: len(recs)}
	}
	for i := range recs {
		rec := recs[i]
		if rec.Lex == nil {
			rec.Lex = d.vocab.Empty()
		}
		*d.rec(i) = rec
	}
	d.refreshIdx()
	d.tagged = true
	d.parsed = true
	return nil
}

// refreshIdx re-derives every Idx from lexeme lengths and whitespace flags.
func (d *Doc) refreshIdx() {
	off := 0
	for i := 0; i < d.length; i++ {
		r := d.rec(i)
		r.Idx = off
		off += r.Lex.Length + spaceLen(r.Spacy)
	}
}

// Text reconstructs the document text from lexemes and whitespace flags.
func (d *Doc) Text() string {
	var sb strings.Builder
	for i := 0; i < d.length; i++ {
		r := d.rec(i)
		sb.WriteString(r.Lex.Text())
		if r.Spacy {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func spaceLen(spacy bool) int {
	if spacy {
		return 1
	}
	return 0
}

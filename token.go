package docgo

import (
	"github.com/hupe1980/docgo/attrs"
	"github.com/hupe1980/docgo/vocab"
)

// IOB2-style entity chunking states stored in TokenRecord.EntIOB.
const (
	IOBNone    = 0 // no entity information
	IOBInside  = 1 // inside the current entity
	IOBOutside = 2 // explicitly outside any entity
	IOBBegin   = 3 // first token of an entity
)

// TokenRecord is one position's mutable annotation bundle plus a reference
// to its lexeme. Records live inside a Doc's buffer; Lex always outlives the
// document (its lifetime is the vocabulary's).
type TokenRecord struct {
	Lex *vocab.Lexeme

	// Idx is the character offset of the token's first character in the
	// document text. Strictly derivable: Idx[i] = Idx[i-1] +
	// Length(Lex[i-1]) + Spacy[i-1], with Idx[0] = 0.
	Idx int

	// Spacy reports whether a single trailing whitespace character follows
	// this token.
	Spacy bool

	// Annotation symbols, 0 until a tagger/parser assigns them.
	Pos   uint64
	Tag   uint64
	Lemma uint64
	Dep   uint64

	// Head is a signed relative offset to the governing token:
	// i + Head == governor index. Always exposed in relative form; merge
	// converts to absolute form only internally.
	Head int

	EntIOB  int
	EntType uint64

	// SentStart is true exactly at the first token of each sentence.
	SentStart bool
}

// Token is a lazy view of one record in a Doc. Views are keyed by index:
// a stored Token becomes stale as soon as Merge or Grow shifts indices and
// must be re-fetched.
type Token struct {
	doc *Doc
	i   int
}

// Index returns the token's position in the document.
func (t *Token) Index() int { return t.i }

// Lex returns the token's lexeme.
func (t *Token) Lex() *vocab.Lexeme { return t.doc.rec(t.i).Lex }

// Text returns the token's surface form.
func (t *Token) Text() string { return t.doc.rec(t.i).Lex.Text() }

// Idx returns the character offset of the token's first character.
func (t *Token) Idx() int { return t.doc.rec(t.i).Idx }

// HasSpace reports whether a whitespace character follows the token.
func (t *Token) HasSpace() bool { return t.doc.rec(t.i).Spacy }

// Head returns the signed relative offset to the token's governor.
func (t *Token) Head() int { return t.doc.rec(t.i).Head }

// Record returns the underlying mutable record. The pointer is only valid
// until the next structural mutation of the document.
func (t *Token) Record() *TokenRecord { return t.doc.rec(t.i) }

// Attr resolves an attribute id against the token, dispatching between
// token-level and lexeme-level fields. Unknown ids resolve to 0.
func (t *Token) Attr(id attrs.ID) uint64 { return getAttr(t.doc.rec(t.i), id) }

// Per-field setters for incremental annotation by an external tagger/parser.

// SetTag sets the fine-grained tag symbol.
func (t *Token) SetTag(tag uint64) { t.doc.rec(t.i).Tag = tag }

// SetPos sets the coarse part-of-speech symbol.
func (t *Token) SetPos(pos uint64) { t.doc.rec(t.i).Pos = pos }

// SetLemma sets the lemma symbol.
func (t *Token) SetLemma(lemma uint64) { t.doc.rec(t.i).Lemma = lemma }

// SetDep sets the dependency label symbol.
func (t *Token) SetDep(dep uint64) { t.doc.rec(t.i).Dep = dep }

// SetHead sets the signed relative offset to the token's governor.
func (t *Token) SetHead(head int) { t.doc.rec(t.i).Head = head }

// SetEnt sets the IOB state and entity label.
func (t *Token) SetEnt(iob int, entType uint64) {
	r := t.doc.rec(t.i)
	r.EntIOB = iob
	r.EntType = entType
}

// SetSentStart marks whether the token begins a sentence.
func (t *Token) SetSentStart(v bool) { t.doc.rec(t.i).SentStart = v }

// getAttr resolves a symbolic attribute id to a value on a token record.
//
// Token-level fields are checked first; ids below attrs.FlagMax read a bit
// of the lexeme flag bitset; the named lexeme ids read lexeme fields. Head
// is exposed as its two's-complement uint64 image so signed offsets survive
// the uniform value type. Unknown or legacy ids resolve to 0 rather than
// failing, so export and counting tolerate schema drift.
func getAttr(r *TokenRecord, id attrs.ID) uint64 {
	switch id {
	case attrs.Lemma:
		return r.Lemma
	case attrs.Pos:
		return r.Pos
	case attrs.Tag:
		return r.Tag
	case attrs.Dep:
		return r.Dep
	case attrs.Head:
		return uint64(int64(r.Head))
	case attrs.EntIOB:
		return uint64(r.EntIOB)
	case attrs.EntType:
		return r.EntType
	case attrs.SentStart:
		return boolAttr(r.SentStart)
	case attrs.Spacy:
		return boolAttr(r.Spacy)
	}

	if id < attrs.FlagMax {
		return boolAttr(r.Lex.Flags.Has(id))
	}

	switch id {
	case attrs.LexID:
		return r.Lex.ID
	case attrs.Orth:
		return uint64(r.Lex.Orth)
	case attrs.Lower:
		return uint64(r.Lex.Lower)
	case attrs.Norm:
		return uint64(r.Lex.Norm)
	case attrs.Shape:
		return uint64(r.Lex.Shape)
	case attrs.Prefix:
		return uint64(r.Lex.Prefix)
	case attrs.Suffix:
		return uint64(r.Lex.Suffix)
	case attrs.Length:
		return uint64(r.Lex.Length)
	case attrs.Cluster:
		return r.Lex.Cluster
	}

	return 0
}

func boolAttr(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

package vocab

import (
	"strings"
	"sync"
	"unicode/utf8"
	"unique"

	"github.com/hupe1980/docgo/codec"
)

type options struct {
	codec codec.Codec
}

// Option configures Vocab construction.
type Option func(*options)

// WithCodec configures the codec used to compress id sequences during
// document serialization.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// Vocab assigns a stable dense id to every distinct surface form and caches
// its lexical attributes. Read-mostly; safe for concurrent readers.
type Vocab struct {
	mu      sync.RWMutex
	strings *StringStore
	byOrth  map[Symbol]*Lexeme
	rows    []*Lexeme
	codec   codec.Codec
	empty   *Lexeme
}

// New creates an empty vocabulary holding only the empty-lexeme sentinel.
func New(opts ...Option) *Vocab {
	o := options{codec: codec.Default}
	for _, opt := range opts {
		opt(&o)
	}

	empty := &Lexeme{text: unique.Make("")}
	v := &Vocab{
		strings: NewStringStore(),
		byOrth:  map[Symbol]*Lexeme{0: empty},
		rows:    []*Lexeme{empty},
		codec:   o.codec,
	}
	v.empty = empty
	return v
}

// Lookup returns the lexeme for text, interning it on first sight.
// Idempotent: the same text always yields the same lexeme.
func (v *Vocab) Lookup(text string) *Lexeme {
	orth := v.strings.Intern(text)

	v.mu.RLock()
	lex, ok := v.byOrth[orth]
	v.mu.RUnlock()
	if ok {
		return lex
	}

	lower := v.strings.Intern(strings.ToLower(text))
	lex = &Lexeme{
		Orth:   orth,
		Lower:  lower,
		Norm:   lower,
		Shape:  v.strings.Intern(wordShape(text)),
		Prefix: v.strings.Intern(prefixOf(text)),
		Suffix: v.strings.Intern(suffixOf(text)),
		Length: utf8.RuneCountInString(text),
		Flags:  buildFlags(text),
		text:   unique.Make(text),
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if prev, ok := v.byOrth[orth]; ok {
		return prev
	}
	lex.ID = uint64(len(v.rows))
	v.byOrth[orth] = lex
	v.rows = append(v.rows, lex)
	return lex
}

// LookupID returns the lexeme whose surface-form symbol is orth.
func (v *Vocab) LookupID(orth Symbol) (*Lexeme, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	lex, ok := v.byOrth[orth]
	return lex, ok
}

// Intern interns text into the vocabulary's string store without creating a
// lexeme. Used for annotation symbols (tags, labels, lemmas).
func (v *Vocab) Intern(text string) Symbol {
	return v.strings.Intern(text)
}

// Strings returns the vocabulary's string store.
func (v *Vocab) Strings() *StringStore { return v.strings }

// Codec returns the id-sequence codec configured for this vocabulary.
func (v *Vocab) Codec() codec.Codec { return v.codec }

// Empty returns the shared empty-lexeme sentinel used for buffer padding.
func (v *Vocab) Empty() *Lexeme { return v.empty }

// Len returns the number of interned lexemes, including the sentinel.
func (v *Vocab) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.rows)
}

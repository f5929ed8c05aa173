// Package attrs defines the closed attribute symbol space used for token and
// lexeme field access, export, and counting.
//
// Attribute ids form a single numeric space: ids below FlagMax address one
// bit of a lexeme's flag bitset, everything above it names a concrete token
// or lexeme field. The space is closed by design — lookups through an
// unknown id resolve to zero instead of failing, so exports stay robust to
// schema drift between writers and readers.
package attrs

// ID identifies a token or lexeme attribute.
type ID uint64

// FlagMax is the exclusive upper bound of the lexeme flag id range.
// Any attribute id below it reads a single bit of the lexeme flag bitset.
const FlagMax ID = 64

// Lexeme flag ids. Each occupies one bit of the lexeme flag bitset.
const (
	IsAlpha ID = iota
	IsASCII
	IsDigit
	IsLower
	IsPunct
	IsSpace
	IsTitle
	IsUpper
	LikeNum
	IsQuote
	IsBracket
)

// Lexeme field ids.
const (
	LexID ID = FlagMax + iota
	Orth
	Lower
	Norm
	Shape
	Prefix
	Suffix
	Length
	Cluster
)

// Token field ids.
const (
	Lemma ID = FlagMax + 32 + iota
	Pos
	Tag
	Dep
	Head
	EntIOB
	EntType
	SentStart
	Spacy
)

package vocab

import (
	"strings"
	"unicode"
	"unique"

	"github.com/hupe1980/docgo/attrs"
)

// Flags is a 64-bit lexeme flag bitset addressed by attribute ids below
// attrs.FlagMax.
type Flags uint64

// Has reports whether the flag bit addressed by id is set.
// Ids at or above attrs.FlagMax always read as unset.
func (f Flags) Has(id attrs.ID) bool {
	if id >= attrs.FlagMax {
		return false
	}
	return f&(1<<id) != 0
}

func (f *Flags) set(id attrs.ID, v bool) {
	if v {
		*f |= 1 << id
	}
}

// Lexeme is one immutable vocabulary entry: the static lexical attributes of
// a distinct surface form, shared by every token record referencing it.
type Lexeme struct {
	// ID is the dense row of the lexeme in its owning vocabulary.
	ID uint64

	// Orth is the symbol of the surface form itself; the remaining symbols
	// reference derived strings in the same store.
	Orth   Symbol
	Lower  Symbol
	Norm   Symbol
	Shape  Symbol
	Prefix Symbol
	Suffix Symbol

	// Length is the surface form's length in runes.
	Length int

	// Cluster is an optional distributional cluster id, 0 when unassigned.
	Cluster uint64

	Flags Flags

	text unique.Handle[string]
}

// Text returns the lexeme's surface form.
func (l *Lexeme) Text() string { return l.text.Value() }

// buildFlags classifies the surface form into the lexeme flag bitset.
func buildFlags(s string) Flags {
	if s == "" {
		return 0
	}

	alpha, ascii, digit, lower, punct, space, upper := true, true, true, true, true, true, true
	for _, r := range s {
		alpha = alpha && unicode.IsLetter(r)
		ascii = ascii && r < 128
		digit = digit && unicode.IsDigit(r)
		lower = lower && unicode.IsLower(r)
		punct = punct && (unicode.IsPunct(r) || unicode.IsSymbol(r))
		space = space && unicode.IsSpace(r)
		upper = upper && unicode.IsUpper(r)
	}

	var f Flags
	f.set(attrs.IsAlpha, alpha)
	f.set(attrs.IsASCII, ascii)
	f.set(attrs.IsDigit, digit)
	f.set(attrs.IsLower, lower)
	f.set(attrs.IsPunct, punct)
	f.set(attrs.IsSpace, space)
	f.set(attrs.IsTitle, isTitle(s))
	f.set(attrs.IsUpper, upper)
	f.set(attrs.LikeNum, likeNum(s))
	f.set(attrs.IsQuote, strings.ContainsAny(s, `"'`+"`“”‘’«»") && len([]rune(s)) == 1)
	f.set(attrs.IsBracket, strings.ContainsAny(s, "()[]{}<>") && len([]rune(s)) == 1)
	return f
}

func isTitle(s string) bool {
	first := true
	for _, r := range s {
		if first {
			if !unicode.IsUpper(r) && !unicode.IsTitle(r) {
				return false
			}
			first = false
			continue
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
	}
	return !first
}

func likeNum(s string) bool {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// wordShape maps a surface form onto its casing/digit shape, with runs of
// the same character class capped at four (e.g. "Frobnicate" -> "Xxxxx",
// "12345" -> "dddd", "C3PO" -> "XdXX").
func wordShape(s string) string {
	var sb strings.Builder
	var last rune
	run := 0
	for _, r := range s {
		var c rune
		switch {
		case unicode.IsDigit(r):
			c = 'd'
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			c = 'X'
		case unicode.IsLetter(r):
			c = 'x'
		default:
			c = r
		}
		if c == last {
			run++
		} else {
			run = 1
			last = c
		}
		if run <= 4 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// prefixOf returns the first rune of s.
func prefixOf(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// suffixOf returns the last three runes of s.
func suffixOf(s string) string {
	rs := []rune(s)
	if len(rs) <= 3 {
		return s
	}
	return string(rs[len(rs)-3:])
}

// Package vocab implements the shared interning vocabulary: a string store
// assigning stable dense symbols to distinct strings, and a lexeme table
// caching the static lexical attributes of every distinct surface form.
//
// A Vocab is read-mostly and safe for concurrent readers; interning the same
// string always yields the same symbol for the lifetime of the store, which
// the document buffer relies on for merge and serialization round trips.
// Lexemes are immutable once interned and are shared by every token record
// referencing the same surface form; documents never own lexeme data.
package vocab

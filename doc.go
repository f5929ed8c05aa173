// Package docgo provides an annotated-document container for NLP pipelines.
//
// A Doc owns a contiguous, padded, growable buffer of per-token records: a
// shared lexeme reference plus position-specific annotations (part of
// speech, tag, lemma, dependency head and label, entity tag, sentence
// boundary, trailing-whitespace flag). On top of the buffer it offers
// structural operations: indexed and sliced access, lazy iteration,
// token-span merging with in-place dependency-tree repair, attribute export
// to dense tables, frequency counting, and a compact binary serialization
// against a shared vocabulary.
//
// # Model
//
// Tokens are pushed one at a time while text is consumed:
//
//	v := vocab.New()
//	d := docgo.New(v)
//	d.PushBack(v.Lookup("Hello"), true)
//	d.PushBack(v.Lookup("world"), false)
//	fmt.Println(d.Text()) // "Hello world"
//
// A tagger/parser then overwrites annotation fields in place, either through
// per-token setters or in bulk via SetParse/FromArray. Readers use Get,
// Slice, All, Ents, Sents, ToArray, and CountBy.
//
// # Ownership and views
//
// A Doc is a single-owner mutable structure: all operations run to
// completion on the caller's goroutine and there is no internal locking.
// Token and Span views never copy record data; any cached view becomes
// stale the moment Merge or Grow shifts indices, and must be re-fetched.
// The shared Vocab is read-mostly and safe for concurrent readers.
//
// # Serialization
//
// ToBytes encodes the ordered surface-form id sequence through the
// vocabulary's codec, followed by one whitespace bit per token. FromBytes
// reconstructs the text and a fresh Doc against the same vocabulary;
// annotations are not part of this wire format. Pack bundles multiple
// documents together with their annotation tables.
package docgo

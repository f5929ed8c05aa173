package vocab

import (
	"sync"
	"unique"
)

// Symbol is a dense, stable identifier for an interned string.
// Symbol 0 is always the empty string.
type Symbol uint64

// StringStore interns strings to dense symbols.
//
// Interning is idempotent: the same string always resolves to the same
// symbol for the lifetime of the store. Safe for concurrent use.
type StringStore struct {
	mu      sync.RWMutex
	symbols map[unique.Handle[string]]Symbol
	strings []unique.Handle[string]
}

// NewStringStore creates an empty store with symbol 0 bound to "".
func NewStringStore() *StringStore {
	empty := unique.Make("")
	return &StringStore{
		symbols: map[unique.Handle[string]]Symbol{empty: 0},
		strings: []unique.Handle[string]{empty},
	}
}

// Intern returns the symbol for s, assigning the next dense symbol on first
// sight.
func (ss *StringStore) Intern(s string) Symbol {
	h := unique.Make(s)

	ss.mu.RLock()
	sym, ok := ss.symbols[h]
	ss.mu.RUnlock()
	if ok {
		return sym
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	if sym, ok := ss.symbols[h]; ok {
		return sym
	}
	sym = Symbol(len(ss.strings))
	ss.symbols[h] = sym
	ss.strings = append(ss.strings, h)
	return sym
}

// Lookup returns the symbol for s without interning.
func (ss *StringStore) Lookup(s string) (Symbol, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	sym, ok := ss.symbols[unique.Make(s)]
	return sym, ok
}

// Get returns the string bound to sym, or "" if the symbol is unknown.
func (ss *StringStore) Get(sym Symbol) string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if sym >= Symbol(len(ss.strings)) {
		return ""
	}
	return ss.strings[sym].Value()
}

// Len returns the number of interned strings, including the empty string.
func (ss *StringStore) Len() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.strings)
}

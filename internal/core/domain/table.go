package domain

import (
	"iter"
	"strings"
	"sync"

	"fortio.org/safecast"
	"github.com/cockroachdb/swiss"
	"go.trai.ch/zerr"
)

// chunkSize is the fixed capacity of one storage chunk.
// A chunk is never reallocated once created, so previously appended strings keep their slot.
const chunkSize = 256

// Table is an append-only store of unique strings.
// Each distinct string is assigned a stable index on first insertion and is never removed.
//
// A Table is safe for concurrent use. Readers share a read lock; appends are serialized.
type Table struct {
	mu     sync.RWMutex
	chunks [][]string
	index  *swiss.Map[string, uint32]
	count  int
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		index: swiss.New[string, uint32](chunkSize),
	}
}

// Intern returns the symbol for text, inserting it if it has not been seen before.
// Interning equal content always yields symbols with the same index.
func (t *Table) Intern(text string) Symbol {
	if sym, ok := t.Lookup(text); ok {
		return sym
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Another writer may have inserted text between the read and write lock.
	if idx, ok := t.index.Get(text); ok {
		return newSymbol(t, idx)
	}

	idx := t.appendLocked(strings.Clone(text))
	return newSymbol(t, idx)
}

// InternBytes is like Intern but accepts a byte slice.
// The bytes are copied when they are inserted.
func (t *Table) InternBytes(b []byte) Symbol {
	return t.Intern(string(b))
}

// Lookup returns the symbol for text if it has already been interned.
// It never modifies the table.
func (t *Table) Lookup(text string) (Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx, ok := t.index.Get(text)
	if !ok {
		return Symbol{}, false
	}
	return newSymbol(t, idx), true
}

// Contains reports whether text has been interned.
func (t *Table) Contains(text string) bool {
	_, ok := t.Lookup(text)
	return ok
}

// Len returns the number of distinct strings in the table.
// Sliced symbols are not counted.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// All returns the interned strings in insertion order.
// Strings appended after iteration starts are not visited.
func (t *Table) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range t.Entries() {
			if !yield(s) {
				return
			}
		}
	}
}

// Entries returns index and string pairs in insertion order.
func (t *Table) Entries() iter.Seq2[uint32, string] {
	return func(yield func(uint32, string) bool) {
		n := t.Len()
		for i := range n {
			idx := uint32(i) //nolint:gosec // bounded by the table count, which fits in uint32
			if !yield(idx, t.stringAt(idx)) {
				return
			}
		}
	}
}

// Symbols returns a rooted symbol for every entry in insertion order.
func (t *Table) Symbols() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for idx := range t.Entries() {
			if !yield(newSymbol(t, idx)) {
				return
			}
		}
	}
}

// Strings returns a copy of all interned strings in insertion order.
func (t *Table) Strings() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, 0, t.count)
	for _, chunk := range t.chunks {
		out = append(out, chunk...)
	}
	return out
}

// stringAt returns the string stored at idx, or "" if idx is out of range.
func (t *Table) stringAt(idx uint32) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(idx) >= t.count {
		return ""
	}
	return t.chunks[idx/chunkSize][idx%chunkSize]
}

// appendLocked stores s in the next free slot and indexes it.
// The caller must hold the write lock.
func (t *Table) appendLocked(s string) uint32 {
	idx, err := safecast.Conv[uint32](t.count)
	if err != nil {
		panic(zerr.With(zerr.Wrap(ErrTableFull, err.Error()), "count", t.count))
	}

	if n := len(t.chunks); n == 0 || len(t.chunks[n-1]) == chunkSize {
		t.chunks = append(t.chunks, make([]string, 0, chunkSize))
	}
	last := len(t.chunks) - 1
	t.chunks[last] = append(t.chunks[last], s)

	t.index.Put(s, idx)
	t.count++
	return idx
}

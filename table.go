package symbol

// The intern table is a process-wide registry mapping strings to dense
// identities. It only ever grows: once assigned, an identity and its text are
// immutable for the remainder of the process. That append-only discipline is
// what lets resolve run under a read lock while interning proceeds
// concurrently.

import (
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// entry is one interned string together with its hash, computed once at
// insertion so Symbol.Hash never rehashes the text.
type entry struct {
	text string
	hash uint64
}

// symtab maps strings to identities via ids and back via the append-only
// entries slice, where the identity is the slice index.
type symtab struct {
	mu      sync.RWMutex
	ids     map[string]uint32
	entries []entry
}

// global is the process-wide table. Initializing it in a var declaration is
// Go's one-time-initialized shared static: it exists before any goroutine
// can intern and is never torn down.
var global = newSymtab()

func newSymtab() *symtab {
	t := &symtab{
		ids:     make(map[string]uint32, 64),
		entries: make([]entry, 0, 64),
	}
	// Identity 0 is the empty string, so the zero Symbol resolves to "".
	t.append("")
	return t
}

// append stores text under the next identity. Callers must hold mu for
// writing, except during construction.
func (t *symtab) append(text string) uint32 {
	if uint64(len(t.entries)) > math.MaxUint32 {
		panic("symbol: intern table exhausted (more than 1<<32 distinct symbols)")
	}
	id := uint32(len(t.entries))
	t.ids[text] = id
	t.entries = append(t.entries, entry{text: text, hash: xxhash.Sum64String(text)})
	return id
}

// intern returns the identity for text, assigning the next one on first use.
func (t *symtab) intern(text string) uint32 {
	t.mu.RLock()
	id, ok := t.ids[text]
	t.mu.RUnlock()
	if ok {
		return id
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another goroutine may have interned text between the two locks.
	if id, ok := t.ids[text]; ok {
		return id
	}
	return t.append(text)
}

// internBytes is intern for byte slices. The read-locked lookup converts b
// inside the map index expression, which the compiler performs without
// allocating; only a miss pays for the string copy.
func (t *symtab) internBytes(b []byte) uint32 {
	t.mu.RLock()
	id, ok := t.ids[string(b)]
	t.mu.RUnlock()
	if ok {
		return id
	}
	return t.intern(string(b))
}

// internFresh inserts text only if it has never been interned, reporting
// whether the insert happened.
func (t *symtab) internFresh(text string) (uint32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.ids[text]; ok {
		return 0, false
	}
	return t.append(text), true
}

func (t *symtab) resolve(id uint32) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[id].text
}

func (t *symtab) hash(id uint32) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[id].hash
}

func (t *symtab) size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

func (t *symtab) all() []Symbol {
	t.mu.RLock()
	n := len(t.entries)
	t.mu.RUnlock()

	out := make([]Symbol, n)
	for i := range out {
		out[i] = Symbol{id: uint32(i)}
	}
	return out
}

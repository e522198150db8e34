// Package symbol provides globally interned strings.
//
// Interning stores each distinct string exactly once for the lifetime of the
// process and hands back a small Symbol handle. Equal strings always produce
// equal handles, so comparing two symbols is a single integer comparison
// regardless of how long the underlying text is.
//
// Example usage:
//
//	s1 := symbol.Intern("asdf")
//	s2 := symbol.Intern("asdf")
//	s3 := symbol.Intern("qwerty")
//
//	s1 == s2         // true
//	s1 == s3         // false
//	s1.String()      // "asdf"
//
// Symbols are comparable values and can be used directly as map keys.
package symbol

import "strconv"

// A Symbol is a handle to an interned string. It is four bytes, holds no
// pointers, and is freely copyable; the zero value is the interned empty
// string.
//
// Two symbols compare equal with == exactly when the strings they were
// interned from were equal.
type Symbol struct {
	id uint32
}

// Intern returns the Symbol for text, storing an owned copy on first use.
// Repeated calls with equal text return equal symbols.
//
// Interned strings are never released. A process can hold at most 1<<32
// distinct symbols; exceeding that panics.
func Intern(text string) Symbol {
	return Symbol{id: global.intern(text)}
}

// InternBytes interns the string represented by b. The lookup for an
// already-interned value does not allocate, making this the preferred
// constructor when interning tokens out of a byte buffer.
func InternBytes(b []byte) Symbol {
	return Symbol{id: global.internBytes(b)}
}

// Len returns the number of distinct strings interned so far.
func Len() int {
	return global.size()
}

// All returns every interned symbol in identity order. The snapshot is
// consistent: symbols interned concurrently with the call may or may not be
// included, but every returned symbol is valid.
func All() []Symbol {
	return global.all()
}

// String returns the interned text.
func (s Symbol) String() string {
	return global.resolve(s.id)
}

// GoString returns the quoted text, so %#v prints symbols readably.
func (s Symbol) GoString() string {
	return strconv.Quote(global.resolve(s.id))
}

// ID returns the symbol's raw identity: a dense index assigned in
// first-interned order, starting at zero for the empty string. Useful for
// diagnostics and for indexing external tables by symbol.
func (s Symbol) ID() uint32 {
	return s.id
}

// Hash returns a 64-bit hash of the symbol's text, computed once when the
// text was interned. Equal symbols always hash equal.
func (s Symbol) Hash() uint64 {
	return global.hash(s.id)
}

// Compare orders symbols by identity: the symbol interned first sorts first.
// This is a total order consistent with ==, but it is not lexicographic;
// compare resolved text directly when display order matters.
func (s Symbol) Compare(o Symbol) int {
	switch {
	case s.id < o.id:
		return -1
	case s.id > o.id:
		return 1
	default:
		return 0
	}
}

// Less reports whether s was interned before o.
func (s Symbol) Less(o Symbol) bool {
	return s.id < o.id
}

// Trace visits each reference the symbol holds into collector-managed
// memory. A symbol stores only an identity, never a pointer, so visit is
// never called; external tracing collectors may treat symbols as leaves.
func (s Symbol) Trace(visit func(ref uintptr)) {}

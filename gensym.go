package symbol

import (
	"strconv"
	"sync/atomic"
)

// gensymCounter feeds candidate names for Gensym. It only ever advances, so
// generated names never repeat even when candidates are skipped.
var gensymCounter atomic.Uint64

// Gensym interns and returns a fresh symbol named "G#n" for the smallest
// unused n. Candidate names that are already interned — for example because
// a caller interned the literal "G#1" by hand — are skipped, never reused,
// so the returned symbol is always distinct from every existing one.
func Gensym() Symbol {
	for {
		name := "G#" + strconv.FormatUint(gensymCounter.Add(1)-1, 10)
		if id, ok := global.internFresh(name); ok {
			return Symbol{id: id}
		}
	}
}

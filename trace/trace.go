// Package trace adapts interned symbols to external tracing garbage
// collectors.
//
// A collector that traces heap references needs to know, for every value it
// manages, which references the value holds into collector-managed memory.
// A symbol.Symbol holds none: it is a four-byte identity into the intern
// table, not a pointer. This package expresses that as a capability so that
// programs without such a collector pay nothing, and programs with one can
// classify symbols (and any other pointer-free value) as leaves.
//
// The core symbol package does not import this package; the dependency runs
// strictly adapter → core.
package trace

import "reflect"

// A Tracer reports the references a value holds into collector-managed
// memory by calling visit once per reference. Values whose layout contains
// no such references implement it with an empty body; symbol.Symbol does
// exactly that.
type Tracer interface {
	Trace(visit func(ref uintptr))
}

// Leaf reports whether v's in-memory layout is free of pointers, meaning a
// tracing collector may mark it as a leaf with no outgoing references and
// skip scanning it entirely.
func Leaf(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	return pointerFree(t)
}

// Size returns v's in-memory size in bytes, for collectors that account
// allocation by exact layout.
func Size(v any) uintptr {
	return reflect.TypeOf(v).Size()
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, strings, slices, maps, channels, funcs, and interfaces
		// all carry references.
		return false
	}
}

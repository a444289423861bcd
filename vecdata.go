package remap

import "unsafe"

// vecData is a raw view over an owned slice's backing array. start is the
// allocation base and ptr the next unprocessed element; the descriptor owns
// every element it has not yet handed off. Holding start keeps the
// allocation reachable while a driver walks it.
//
// Invariant: start <= ptr <= start + len*sizeof(T), and cap is fixed for
// the descriptor's lifetime.
type vecData[T any] struct {
	start unsafe.Pointer
	ptr   unsafe.Pointer
	len   int
	cap   int
}

// takeVec takes ownership of xs's backing array without touching elements.
// The caller must not use xs afterwards.
func takeVec[T any](xs []T) vecData[T] {
	p := unsafe.Pointer(unsafe.SliceData(xs))
	return vecData[T]{start: p, ptr: p, len: len(xs), cap: cap(xs)}
}

// retype hands a backing array back as a []U of the given length, keeping
// the full capacity. All layout checking happens before a driver is built;
// by the time retype runs the memory already holds valid U values.
func retype[U any](p unsafe.Pointer, length, capacity int) []U {
	if p == nil {
		return nil
	}
	return unsafe.Slice((*U)(p), capacity)[:length:capacity]
}

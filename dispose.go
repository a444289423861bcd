package remap

import (
	"reflect"
	"unsafe"

	"github.com/rawbytedev/remap/internal/layout"
)

// Disposer is implemented by element types that own an external resource (a
// pooled buffer, a handle, a refcount) that must be released when the engine
// discards the element without handing it to the caller or to the transform
// function. Element types that don't implement Disposer need no per-element
// action; the collector reclaims them.
type Disposer interface {
	Dispose()
}

var disposerType = reflect.TypeOf((*Disposer)(nil)).Elem()

// needsDispose reports whether elements of type T can carry a disposer.
// Interface-typed elements always might, so they are checked per value.
func needsDispose[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.Kind() == reflect.Interface || t.Implements(disposerType)
}

func dispose[T any](v T) {
	if d, ok := any(v).(Disposer); ok {
		d.Dispose()
	}
}

// disposeRange disposes n elements starting at p. The cursor moves past a
// slot before its Dispose runs, so a panicking Dispose skips the rest of
// the range but can never revisit a slot.
func disposeRange[T any](p unsafe.Pointer, n int) {
	if n <= 0 || !needsDispose[T]() {
		return
	}
	size := layout.Size[T]()
	for ; n > 0; n-- {
		v := *(*T)(p)
		p = unsafe.Add(p, size)
		dispose(v)
	}
}

// disposeSlice disposes every element of xs front to back.
func disposeSlice[T any](xs []T) {
	if !needsDispose[T]() {
		return
	}
	for _, v := range xs {
		dispose(v)
	}
}

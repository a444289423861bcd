// Package layout reports the memory layout of element types and decides
// when two types may safely share a backing allocation.
package layout

import (
	"reflect"
	"unsafe"
)

// Size returns T's size in bytes.
func Size[T any]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

// Align returns T's alignment in bytes.
func Align[T any]() uintptr {
	var z T
	return unsafe.Alignof(z)
}

// Layout is the memory layout of an element type.
type Layout struct {
	Size, Align uintptr
}

// Of returns the layout of T.
func Of[T any]() Layout {
	return Layout{Size[T](), Align[T]()}
}

// Compatible reports whether values of type U may be stored in memory that
// was allocated for values of type T. Identical types always qualify.
// Distinct types qualify only when their sizes and alignments match and
// neither contains pointers: the collector scans an allocation with the
// pointer map of the type it was allocated as, so aliasing pointered memory
// across distinct types would corrupt that map.
func Compatible[T, U any]() bool {
	t, u := reflect.TypeOf((*T)(nil)).Elem(), reflect.TypeOf((*U)(nil)).Elem()
	if t == u {
		return true
	}
	if t.Size() != u.Size() || t.Align() != u.Align() {
		return false
	}
	return PointerFree(t) && PointerFree(u)
}

// PointerFree reports whether values of type t contain no pointers the
// collector would need to trace.
func PointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || PointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !PointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Chan, Func, Interface, Map, Pointer, Slice, String, UnsafePointer
		return false
	}
}

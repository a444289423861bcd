// Package remap transforms owned slices in place. Whenever the source and
// destination element types share a memory layout, the transform writes its
// outputs into the input's backing array instead of allocating a new one,
// eliminating an allocation per transformed collection.
//
// Every operation takes ownership of its input slice(s): the caller must
// not read, write, or retain an input after the call. On the reuse path the
// returned slice aliases the input's backing array under a different
// element type.
//
// Elements whose type implements Disposer are released exactly once on
// every path that discards them — short-circuit errors, panics out of the
// transform function, and the excess tail of a zip's longer input included.
package remap

import "github.com/rawbytedev/remap/internal/layout"

// Map transforms every element of xs, reusing xs's backing array for the
// output whenever the element types share a layout.
func Map[T, U any](xs []T, f func(T) U) []U {
	out, _ := TryMap(xs, func(v T) (U, error) { return f(v), nil })
	return out
}

// TryMap is Map with a short-circuiting transform. The first error stops
// the walk and is returned verbatim, after every element still owned by the
// operation — produced outputs and untouched inputs alike — has been
// disposed. The element whose transform failed was already consumed by f
// and is not disposed again.
func TryMap[T, U any](xs []T, f func(T) (U, error)) ([]U, error) {
	if layout.Compatible[T, U]() {
		it := mapIter[T, U]{data: takeVec(xs)}
		return it.tryIntoSlice(f)
	}
	return tryMapAlloc(xs, f)
}

// ZipWith combines a and b positionally up to the shorter length. Excess
// elements of the longer input never reach f; they are disposed before the
// result is handed back.
func ZipWith[T, U, V any](a []T, b []U, f func(T, U) V) []V {
	out, _ := TryZipWith(a, b, func(x T, y U) (V, error) { return f(x, y), nil })
	return out
}

// TryZipWith is ZipWith with a short-circuiting transform. The output is
// written into whichever input's backing array is layout-compatible with
// the output type; when both are, the one with greater-or-equal capacity
// wins, so the walk can never outgrow its allocation. Argument order of f
// is preserved no matter which input hosts the output.
func TryZipWith[T, U, V any](a []T, b []U, f func(T, U) (V, error)) ([]V, error) {
	la, lb := layout.Compatible[T, V](), layout.Compatible[U, V]()
	switch {
	case la && (!lb || cap(a) >= cap(b)):
		it := zipIter[T, U, V]{
			left:   takeVec(a),
			right:  takeVec(b),
			minLen: min(len(a), len(b)),
		}
		return it.tryIntoSlice(f)
	case lb:
		it := zipIter[U, T, V]{
			left:   takeVec(b),
			right:  takeVec(a),
			minLen: min(len(a), len(b)),
		}
		return it.tryIntoSlice(func(y U, x T) (V, error) { return f(x, y) })
	default:
		return tryZipAlloc(a, b, f)
	}
}

// DropAndReuse disposes every element of xs and returns an empty slice of a
// different element type backed by the same allocation, capacity preserved,
// when the layouts allow it. When they don't, it returns a nil slice and
// the allocation is left to the collector.
func DropAndReuse[T, U any](xs []T) []U {
	disposeSlice(xs)
	if !layout.Compatible[T, U]() {
		return nil
	}
	d := takeVec(xs)
	return retype[U](d.start, 0, d.cap)
}

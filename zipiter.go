package remap

import (
	"unsafe"

	"github.com/rawbytedev/remap/internal/layout"
)

// zipIter walks two buffers in lockstep up to minLen, consuming one input
// from each and writing the output into the left buffer's vacated slot.
// left is whichever buffer the dispatch in TryZipWith chose to reuse
// (layout.Compatible[T, V]() holds for it); right is only ever read.
type zipIter[T, U, V any] struct {
	left  vecData[T]
	right vecData[U]

	// left slots [0, initLen) hold valid outputs; right slots [0, initLen)
	// are consumed; both buffers own their untouched tails independently.
	initLen int

	// the shorter input's length; elements past it never reach f but are
	// still owned here until disposed
	minLen int
}

func (it *zipIter[T, U, V]) tryIntoSlice(f func(T, U) (V, error)) ([]V, error) {
	sizeT, sizeU := layout.Size[T](), layout.Size[U]()

	done := false
	defer func() {
		if !done {
			it.cleanup()
		}
	}()

	for it.initLen < it.minLen {
		x := *(*T)(it.left.ptr)
		y := *(*U)(it.right.ptr)

		v, err := f(x, y)
		if err != nil {
			return nil, err
		}

		*(*V)(it.left.ptr) = v
		it.left.ptr = unsafe.Add(it.left.ptr, sizeT)
		it.right.ptr = unsafe.Add(it.right.ptr, sizeU)
		it.initLen++
	}

	done = true
	out := retype[V](it.left.start, it.minLen, it.left.cap)

	// The output exists before the leftover disposal below, with its own
	// teardown deferred first: if a Dispose panics, the deferred actions
	// unwind in order — right leftovers, then the produced elements — so
	// nothing is leaked and nothing runs twice.
	handed := false
	defer func() {
		if !handed {
			disposeRange[V](it.left.start, it.minLen)
		}
	}()
	defer disposeRange[U](it.right.ptr, it.right.len-it.minLen)
	disposeRange[T](it.left.ptr, it.left.len-it.minLen)

	handed = true
	return out, nil
}

// cleanup handles the short-circuit and unwind exits, always mid-iteration:
// both cursors point at slots whose inputs were already moved out, so each
// remainder starts one past its cursor. The produced prefix, the left
// remainder, and the right remainder are disjoint ranges, each its own
// action, so a panic in one cannot cancel or repeat another.
func (it *zipIter[T, U, V]) cleanup() {
	defer disposeRange[U](unsafe.Add(it.right.ptr, layout.Size[U]()), it.right.len-it.initLen-1)
	defer disposeRange[T](unsafe.Add(it.left.ptr, layout.Size[T]()), it.left.len-it.initLen-1)
	disposeRange[V](it.left.start, it.initLen)
}

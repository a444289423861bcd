package remap

import (
	"unsafe"

	"github.com/rawbytedev/remap/internal/layout"
)

// mapIter walks a single buffer, consuming the input element in each slot
// and writing the transform's output back into the same slot. Only built
// when layout.Compatible[T, U]() holds, so an output always fits exactly
// where its input was.
type mapIter[T, U any] struct {
	data vecData[T]

	// slots [0, initLen) hold valid outputs; the slot at data.ptr is either
	// untouched input or, mid-iteration, already moved out; slots past it
	// up to data.len hold untouched inputs.
	initLen int
}

// tryIntoSlice runs the walk. On success the backing array comes back
// re-typed as []U with its original length and capacity; nothing was
// allocated or freed. On a short-circuit error or a panic out of f, every
// element the walk still owns is disposed before control leaves.
func (it *mapIter[T, U]) tryIntoSlice(f func(T) (U, error)) ([]U, error) {
	size := layout.Size[T]()

	done := false
	defer func() {
		if !done {
			it.cleanup()
		}
	}()

	for it.initLen < it.data.len {
		// move the input out; until the write lands, this slot is
		// logically empty and must not be disposed again
		v := *(*T)(it.data.ptr)

		u, err := f(v)
		if err != nil {
			return nil, err
		}

		*(*U)(it.data.ptr) = u
		it.data.ptr = unsafe.Add(it.data.ptr, size)
		it.initLen++
	}

	done = true
	return retype[U](it.data.start, it.data.len, it.data.cap), nil
}

// cleanup runs on every exit other than the hand-off, always mid-iteration:
// the slot at ptr was already read from, so the untouched remainder starts
// one past it. The produced prefix is deferred separately so it is still
// disposed if disposing the remainder panics.
func (it *mapIter[T, U]) cleanup() {
	defer disposeRange[U](it.data.start, it.initLen)
	disposeRange[T](unsafe.Add(it.data.ptr, layout.Size[T]()), it.data.len-it.initLen-1)
}

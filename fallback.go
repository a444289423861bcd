package remap

// The no-reuse paths: when the layouts rule out writing outputs over
// inputs, consume the inputs positionally into a freshly allocated output
// slice. Same disposal contract as the drivers, without any re-typing.

func tryMapAlloc[T, U any](xs []T, f func(T) (U, error)) ([]U, error) {
	out := make([]U, 0, len(xs))

	i := 0
	done := false
	defer func() {
		if !done {
			// xs[i] was consumed by the failing call; everything past it,
			// and every produced output, is still owned here
			defer disposeSlice(out)
			disposeSlice(xs[i+1:])
		}
	}()

	for ; i < len(xs); i++ {
		u, err := f(xs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}

	done = true
	return out, nil
}

func tryZipAlloc[T, U, V any](a []T, b []U, f func(T, U) (V, error)) ([]V, error) {
	n := min(len(a), len(b))
	out := make([]V, 0, n)

	i := 0
	done := false
	defer func() {
		if !done {
			defer disposeSlice(out)
			defer disposeSlice(b[i+1:])
			disposeSlice(a[i+1:])
		}
	}()

	for ; i < n; i++ {
		v, err := f(a[i], b[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	done = true

	// excess past the shorter input never reaches f but is still disposed
	defer disposeSlice(b[n:])
	disposeSlice(a[n:])
	return out, nil
}

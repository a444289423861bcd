package remap

import (
	"testing"
)

func BenchmarkMapReuse(b *testing.B) {
	xs := make([]uint64, 4096)
	for i := range xs {
		xs[i] = uint64(i)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		xs = Map(xs, func(v uint64) uint64 { return v*2 + 1 })
	}
}

func BenchmarkMapRetype(b *testing.B) {
	xs := make([]uint64, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ys := Map(xs, func(v uint64) float64 { return float64(v) })
		xs = Map(ys, func(v float64) uint64 { return uint64(v) })
	}
}

func BenchmarkMapAllocFallback(b *testing.B) {
	xs := make([]uint32, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ys := Map(xs, func(v uint32) uint64 { return uint64(v) })
		xs = Map(ys, func(v uint64) uint32 { return uint32(v) })
	}
}

func BenchmarkZipWithReuse(b *testing.B) {
	xs := make([]uint64, 4096)
	ys := make([]uint64, 4096)
	for i := range ys {
		ys[i] = uint64(i)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// ys holds plain integers and is only ever read by the walk, so
		// feeding it back each iteration keeps the benchmark allocation-free
		xs = ZipWith(xs, ys, func(x, y uint64) uint64 { return x ^ y })
	}
}

func BenchmarkTryMapShortCircuit(b *testing.B) {
	xs := make([]int32, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out, err := TryMap(xs, func(v int32) (int32, error) { return v + 1, nil })
		if err != nil {
			b.Fatal(err)
		}
		xs = out
	}
}

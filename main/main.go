package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/remap"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	xs := make([]uint64, 1<<20)
	for i := range xs {
		xs[i] = uint64(i)
	}

	start := time.Now()
	for i := 0; i < 10000; i++ {
		// same-layout round trip: both hops reuse the one allocation
		ys := remap.Map(xs, func(v uint64) float64 { return float64(v) })
		xs = remap.Map(ys, func(v float64) uint64 { return uint64(v) + 1 })
	}
	log.Printf("10000 in-place round trips over %d elements in %s", len(xs), time.Since(start))

	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}

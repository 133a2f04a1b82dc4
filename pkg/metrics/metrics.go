package metrics

import (
	"fmt"
	"io"
	"runtime"

	"memsafety/pkg/owned"
)

// MemStats returns current memory statistics
func MemStats() runtime.MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m
}

// PrintMemStats outputs Go heap usage
func PrintMemStats(w io.Writer, label string) {
	m := MemStats()

	fmt.Fprintf(w, "\n=== Memory Stats: %s ===\n", label)
	fmt.Fprintf(w, "Heap Alloc:   %d KB\n", m.HeapAlloc/1024)
	fmt.Fprintf(w, "Heap Objects: %d\n", m.HeapObjects)
	fmt.Fprintf(w, "GC Cycles:    %d\n", m.NumGC)
}

// PrintAllocStats outputs manual allocator accounting. Live blocks at the
// end of a run are leaks.
func PrintAllocStats(w io.Writer, label string, s owned.Stats) {
	fmt.Fprintf(w, "\n=== Allocator Stats: %s ===\n", label)
	fmt.Fprintf(w, "Allocs:       %d\n", s.Allocs)
	fmt.Fprintf(w, "Frees:        %d\n", s.Frees)
	fmt.Fprintf(w, "Reclaimed:    %d\n", s.Reclaimed)
	fmt.Fprintf(w, "Live Blocks:  %d (%d bytes)\n", s.LiveBlocks, s.LiveBytes)
	if s.LiveBlocks > 0 {
		fmt.Fprintf(w, "LEAK: %d blocks were never released\n", s.LiveBlocks)
	}
}

// Balanced reports whether every allocation has been freed.
func Balanced(s owned.Stats) bool {
	return s.LiveBlocks == 0 && s.Allocs == s.Frees
}

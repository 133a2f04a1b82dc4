package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"memsafety/pkg/metrics"
	"memsafety/pkg/owned"
	"memsafety/pkg/pitfalls"
)

func main() {
	logger := log.New(os.Stderr, "pitfalls: ", log.LstdFlags)
	alloc := owned.NewAllocator(owned.WithLogger(logger))

	run(os.Stdout, alloc)

	os.Exit(finish(alloc, logger))
}

func run(w io.Writer, alloc *owned.Allocator) {
	fmt.Fprintln(w, "Go Memory-Safety Pitfalls")
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())

	for i, d := range pitfalls.Catalogue(alloc) {
		fmt.Fprintf(w, "\n--- %d. %s (%s) ---\n", i+1, d.Name, d.Pitfall)
		if err := d.Run(w); err != nil {
			fmt.Fprintf(w, "diagnostic: %v\n", err)
		}
	}

	metrics.PrintAllocStats(w, "end of run", alloc.Stats())
	metrics.PrintMemStats(w, "end of run")
}

// finish returns the process exit code: 1 if any allocation is still live
// or the allocator cannot be closed.
func finish(alloc *owned.Allocator, logger *log.Logger) int {
	if s := alloc.Stats(); !metrics.Balanced(s) {
		logger.Printf("unbalanced allocator: %d allocs, %d frees", s.Allocs, s.Frees)
		return 1
	}
	if err := alloc.Close(); err != nil {
		logger.Printf("close allocator: %v", err)
		return 1
	}
	return 0
}

// Package owned pairs every manual allocation with exactly one release.
//
// Memory comes from modernc.org/memory, a malloc/free style allocator that
// lives outside the Go heap. Blocks are handed out through owning handles
// (Ints) whose Release is the only way back to the allocator that produced
// them, so acquire and release can never be mismatched.
package owned

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"unsafe"

	"modernc.org/memory"
)

var (
	// ErrReleased is returned when a handle is used after Release.
	ErrReleased = errors.New("use after release")

	// ErrDoubleRelease is returned by a second Release of the same handle.
	ErrDoubleRelease = errors.New("double release")

	// ErrForeignBlock is returned when freeing a block this allocator does not own.
	ErrForeignBlock = errors.New("block not owned by this allocator")

	// ErrNegativeSize is returned for allocation requests below zero.
	ErrNegativeSize = errors.New("negative size")

	// ErrLiveBlocks is returned by Close while blocks are still outstanding.
	ErrLiveBlocks = errors.New("allocator has live blocks")
)

// Stats is a snapshot of allocator accounting.
type Stats struct {
	Allocs     int64 // blocks handed out
	Frees      int64 // blocks returned, explicitly or by cleanup
	Reclaimed  int64 // blocks returned by a cleanup because their handle leaked
	LiveBlocks int
	LiveBytes  int64
}

// Allocator is a mutex-guarded memory.Allocator that tracks every live block.
// The runtime's cleanup goroutine may free leaked blocks concurrently with
// the owning goroutine, hence the lock.
type Allocator struct {
	mu     sync.Mutex
	mem    memory.Allocator
	live   map[uintptr]int // block address -> size
	stats  Stats
	logger *log.Logger
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithLogger reports reclaimed leaks and close failures to logger.
func WithLogger(logger *log.Logger) Option { return func(a *Allocator) { a.logger = logger } }

// NewAllocator creates an empty allocator.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{live: make(map[uintptr]int)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Alloc returns size zeroed bytes. A zero size yields a nil block that needs
// no Free.
func (a *Allocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("alloc %d bytes: %w", size, ErrNegativeSize)
	}
	if size == 0 {
		return nil, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	b, err := a.mem.Calloc(size)
	if err != nil {
		return nil, fmt.Errorf("alloc %d bytes: %w", size, err)
	}
	a.live[addr(b)] = len(b)
	a.stats.Allocs++
	a.stats.LiveBlocks++
	a.stats.LiveBytes += int64(len(b))
	return b, nil
}

// Free returns b to the allocator. Blocks that were not produced by this
// allocator, or were already freed, are rejected with ErrForeignBlock and
// left untouched.
func (a *Allocator) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	return a.freeLocked(b)
}

func (a *Allocator) freeLocked(b []byte) error {
	p := addr(b)
	size, ok := a.live[p]
	if !ok || size != len(b) {
		return fmt.Errorf("free %#x (%d bytes): %w", p, len(b), ErrForeignBlock)
	}
	if err := a.mem.Free(b); err != nil {
		return fmt.Errorf("free %#x: %w", p, err)
	}
	delete(a.live, p)
	a.stats.Frees++
	a.stats.LiveBlocks--
	a.stats.LiveBytes -= int64(size)
	return nil
}

// reclaim frees a block whose handle became unreachable without Release.
func (a *Allocator) reclaim(b []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.freeLocked(b); err != nil {
		a.logf("reclaim leaked block: %v", err)
		return
	}
	a.stats.Reclaimed++
	a.logf("reclaimed leaked block of %d bytes", len(b))
}

// Stats returns current accounting.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Close releases the allocator's OS resources. It refuses while blocks are
// live, since their handles would then point at unmapped memory.
func (a *Allocator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.live); n > 0 {
		a.logf("close with %d live blocks", n)
		return fmt.Errorf("%d blocks, %d bytes: %w", n, a.stats.LiveBytes, ErrLiveBlocks)
	}
	return a.mem.Close()
}

func (a *Allocator) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

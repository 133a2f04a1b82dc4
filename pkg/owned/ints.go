package owned

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"

	"memsafety/pkg/checked"
)

const intSize = int(unsafe.Sizeof(int(0)))

// Ints is an owning handle to a fixed-length sequence of ints held in
// allocator memory. It must be released exactly once; every access after
// Release fails with ErrReleased.
type Ints struct {
	blk     *block
	cleanup runtime.Cleanup
}

// block is the part of a handle the leak cleanup may touch. It must never
// point back at the Ints that owns it.
type block struct {
	alloc    *Allocator
	mem      []byte
	n        int
	released atomic.Bool
}

// NewInts allocates n zeroed ints from a.
func NewInts(a *Allocator, n int) (*Ints, error) {
	if n < 0 {
		return nil, fmt.Errorf("ints(%d): %w", n, ErrNegativeSize)
	}
	size, err := checked.Mul(n, intSize)
	if err != nil {
		return nil, fmt.Errorf("ints(%d): %w", n, err)
	}
	mem, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}

	h := &Ints{blk: &block{alloc: a, mem: mem, n: n}}
	if len(mem) > 0 {
		h.cleanup = runtime.AddCleanup(h, (*block).leaked, h.blk)
	}
	return h, nil
}

// WithInts runs fn with a fresh sequence of n ints and releases it when fn
// returns, whatever fn did.
func WithInts(a *Allocator, n int, fn func(*Ints) error) (err error) {
	h, err := NewInts(a, n)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, h.Release())
	}()
	return fn(h)
}

// Len returns the number of elements. It stays valid after Release.
func (h *Ints) Len() int { return h.blk.n }

// Released reports whether Release has been called.
func (h *Ints) Released() bool { return h.blk.released.Load() }

// At returns element i.
func (h *Ints) At(i int) (int, error) {
	s, err := h.view()
	if err != nil {
		return 0, err
	}
	if err := checked.Index(i, len(s)); err != nil {
		return 0, err
	}
	v := s[i]
	runtime.KeepAlive(h) // h's cleanup must not free the block mid-read
	return v, nil
}

// Set stores v at i.
func (h *Ints) Set(i, v int) error {
	s, err := h.view()
	if err != nil {
		return err
	}
	if err := checked.Index(i, len(s)); err != nil {
		return err
	}
	s[i] = v
	runtime.KeepAlive(h)
	return nil
}

// Values returns a Go-heap copy of the elements, safe to keep after Release.
func (h *Ints) Values() ([]int, error) {
	s, err := h.view()
	if err != nil {
		return nil, err
	}
	out := make([]int, len(s))
	copy(out, s)
	runtime.KeepAlive(h)
	return out, nil
}

// Release returns the memory to the allocator that produced it. A second
// call reports ErrDoubleRelease and frees nothing.
func (h *Ints) Release() error {
	if !h.blk.released.CompareAndSwap(false, true) {
		return fmt.Errorf("ints(%d): %w", h.blk.n, ErrDoubleRelease)
	}
	mem := h.blk.mem
	h.blk.mem = nil
	if len(mem) == 0 {
		return nil
	}
	h.cleanup.Stop()
	return h.blk.alloc.Free(mem)
}

// view exposes the block as []int. The slice must not outlive the call
// that obtained it.
func (h *Ints) view() ([]int, error) {
	if h.blk.released.Load() {
		return nil, fmt.Errorf("ints(%d): %w", h.blk.n, ErrReleased)
	}
	if h.blk.n == 0 {
		return nil, nil
	}
	return unsafe.Slice((*int)(unsafe.Pointer(unsafe.SliceData(h.blk.mem))), h.blk.n), nil
}

func (b *block) leaked() {
	if b.released.CompareAndSwap(false, true) {
		b.alloc.reclaim(b.mem)
	}
}

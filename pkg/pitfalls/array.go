package pitfalls

import (
	"errors"
	"fmt"
	"io"

	"memsafety/pkg/owned"
)

// CreateArray returns size ints with element i set to 2*i. The caller owns
// the result and must Release it once.
func CreateArray(alloc *owned.Allocator, size int) (*owned.Ints, error) {
	arr, err := owned.NewInts(alloc, size)
	if err != nil {
		return nil, fmt.Errorf("createArray(%d): %w", size, err)
	}
	if err := fillDoubled(arr); err != nil {
		return nil, abandon(arr, err)
	}
	return arr, nil
}

// PrintArray fills a scoped array of size ints with 2*i and prints it. The
// array is released by owned.WithInts before PrintArray returns.
func PrintArray(w io.Writer, alloc *owned.Allocator, size int) error {
	return owned.WithInts(alloc, size, func(arr *owned.Ints) error {
		if err := fillDoubled(arr); err != nil {
			return err
		}
		vals, err := arr.Values()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "createArray(%d) = %v\n", size, vals)
		return nil
	})
}

func fillDoubled(arr *owned.Ints) error {
	for i := 0; i < arr.Len(); i++ {
		if err := arr.Set(i, 2*i); err != nil {
			return err
		}
	}
	return nil
}

// abandon releases arr after a failed setup, keeping both errors.
func abandon(arr *owned.Ints, err error) error {
	return errors.Join(err, arr.Release())
}

// AllocationPairing acquires an array and releases it through its own
// handle, the only release path there is. The second release is refused.
func AllocationPairing(w io.Writer, alloc *owned.Allocator) error {
	arr, err := CreateArray(alloc, 5)
	if err != nil {
		return err
	}
	if err := arr.Release(); err != nil {
		return err
	}
	fmt.Fprintf(w, "released %d ints through their owning allocator (released=%v)\n", arr.Len(), arr.Released())

	// a second release must not reach the allocator
	return arr.Release()
}

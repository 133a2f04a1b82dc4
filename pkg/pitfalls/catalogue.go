// Package pitfalls is a catalogue of classic memory-safety bugs, each
// rewritten so the dangerous condition is caught and reported instead of
// corrupting memory.
package pitfalls

import (
	"errors"
	"fmt"
	"io"

	"memsafety/pkg/owned"
)

// ErrAbsent is returned when an optional value is missing.
var ErrAbsent = errors.New("value is absent")

// Demo is one catalogue entry. Run writes its output to w and returns the
// diagnostic it provoked, if any.
type Demo struct {
	Name    string
	Pitfall string
	Run     func(w io.Writer) error
}

// Catalogue returns the demonstrations in their fixed order. Allocating demos
// draw from alloc.
func Catalogue(alloc *owned.Allocator) []Demo {
	return []Demo{
		{"greet", "buffer overflow", func(w io.Writer) error {
			if err := Greet(w, "World"); err != nil {
				return err
			}
			return Greet(w, "Bartholomew")
		}},
		{"createArray", "memory leak", func(w io.Writer) error {
			return PrintArray(w, alloc, 5)
		}},
		{"useAfterFree", "use after free", UseAfterRelease},
		{"printLength", "null dereference", func(w io.Writer) error {
			label := GetLabel()
			if _, err := PrintLength(w, &label); err != nil {
				return err
			}
			_, err := PrintLength(w, nil)
			return err
		}},
		{"multiply", "integer overflow", func(w io.Writer) error {
			for _, p := range [][2]int32{{6, 7}, {2_000_000_000, 2}} {
				r, err := Multiply(p[0], p[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "multiply(%d, %d) = %d\n", p[0], p[1], r)
			}
			return nil
		}},
		{"printVector", "off-by-one", func(w io.Writer) error {
			return PrintVector(w, []int{1, 2, 3})
		}},
		{"getLabel", "dangling reference", func(w io.Writer) error {
			box := owned.NewValue(GetLabel())
			label, err := box.Take()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "getLabel() = %q\n", label)
			return nil
		}},
		{"checkValue", "uninitialized read", func(w io.Writer) error {
			fmt.Fprintf(w, "checkValue read %d\n", CheckValue(w))
			return nil
		}},
		{"processItems", "signed/unsigned comparison", func(w io.Writer) error {
			ProcessItems(w, []string{"alpha", "beta", "gamma"})
			return nil
		}},
		{"allocationPairing", "mismatched allocator pairing", func(w io.Writer) error {
			return AllocationPairing(w, alloc)
		}},
	}
}

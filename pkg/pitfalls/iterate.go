package pitfalls

import (
	"fmt"
	"io"

	"memsafety/pkg/checked"
)

// PrintVector prints one element per line, indices [0, len(v)) only.
func PrintVector(w io.Writer, v []int) error {
	for i := 0; i < len(v); i++ {
		if err := checked.Index(i, len(v)); err != nil {
			return err
		}
		fmt.Fprintln(w, v[i])
	}
	return nil
}

// ProcessItems prints every item. The index and len(items) are both int.
func ProcessItems(w io.Writer, items []string) {
	for i := range len(items) {
		fmt.Fprintln(w, items[i])
	}
}

package pitfalls

import (
	"fmt"
	"io"

	"memsafety/pkg/bounded"
)

// NameCapacity is the number of name bytes a greeting can hold.
const NameCapacity = 9

// Greet copies name into a NameCapacity-byte buffer and prints the greeting.
// Longer names are cut on a rune boundary; the cut is printed and returned
// as a wrapped bounded.ErrCapacityExceeded.
func Greet(w io.Writer, name string) error {
	kept, cut := bounded.Copy(name, NameCapacity)

	fmt.Fprintf(w, "Hello, %s\n", kept)
	if cut {
		fmt.Fprintf(w, "(name truncated from %d to %d bytes)\n", len(name), len(kept))
		return fmt.Errorf("greet %q: kept %d of %d bytes: %w", name, len(kept), len(name), bounded.ErrCapacityExceeded)
	}
	return nil
}

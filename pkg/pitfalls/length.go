package pitfalls

import (
	"fmt"
	"io"
)

// PrintLength prints the byte length of *s. A nil s is ErrAbsent.
func PrintLength(w io.Writer, s *string) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("printLength: %w", ErrAbsent)
	}
	n := len(*s)
	fmt.Fprintf(w, "Length: %d\n", n)
	return n, nil
}

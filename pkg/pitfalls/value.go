package pitfalls

import (
	"fmt"
	"io"
)

// CheckValue prints "Positive" if its local result is above zero and returns
// what it read. result has no initializer, so it is 0.
func CheckValue(w io.Writer) int {
	var result int
	if result > 0 {
		fmt.Fprintln(w, "Positive")
	}
	return result
}

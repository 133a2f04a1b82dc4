package pitfalls

import (
	"fmt"

	"memsafety/pkg/checked"
)

// Multiply returns a*b, or checked.ErrOverflow instead of a wrapped product.
func Multiply(a, b int32) (int32, error) {
	r, err := checked.Mul32(a, b)
	if err != nil {
		return 0, fmt.Errorf("multiply: %w", err)
	}
	return r, nil
}

// Package checked provides arithmetic and indexing that report overflow and
// out-of-range conditions instead of wrapping or panicking.
package checked

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow is returned when a result does not fit the operand type.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrIndexOutOfRange is returned when an index falls outside [0, n).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Mul returns a*b, or ErrOverflow when the product does not fit in int.
func Mul(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	var overflow bool
	switch {
	case a > 0 && b > 0:
		overflow = a > math.MaxInt/b
	case a < 0 && b < 0:
		overflow = a < math.MaxInt/b
	case a > 0 && b < 0:
		overflow = b < math.MinInt/a
	default: // a < 0 && b > 0
		overflow = a < math.MinInt/b
	}
	if overflow {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return a * b, nil
}

// Mul32 multiplies in int64 and narrows back, failing if the product
// leaves the int32 range.
func Mul32(a, b int32) (int32, error) {
	wide := int64(a) * int64(b) // |a*b| <= 2^62, always fits
	if wide > math.MaxInt32 || wide < math.MinInt32 {
		return 0, fmt.Errorf("%d * %d = %d exceeds int32: %w", a, b, wide, ErrOverflow)
	}
	return int32(wide), nil
}

// Index validates i against a sequence of length n.
func Index(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d with length %d: %w", i, n, ErrIndexOutOfRange)
	}
	return nil
}

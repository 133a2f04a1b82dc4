package owned

import "fmt"

// Value is a single-owner box. Once released or taken, the box forgets its
// contents and every accessor fails with ErrReleased.
type Value[T any] struct {
	v *T
}

// NewValue boxes v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: &v}
}

// Get returns the boxed value.
func (b *Value[T]) Get() (T, error) {
	if b.v == nil {
		var zero T
		return zero, fmt.Errorf("value: %w", ErrReleased)
	}
	return *b.v, nil
}

// Set replaces the boxed value.
func (b *Value[T]) Set(v T) error {
	if b.v == nil {
		return fmt.Errorf("value: %w", ErrReleased)
	}
	*b.v = v
	return nil
}

// Take moves the value out, leaving the box released.
func (b *Value[T]) Take() (T, error) {
	v, err := b.Get()
	if err != nil {
		return v, err
	}
	b.v = nil
	return v, nil
}

// Release drops the value.
func (b *Value[T]) Release() error {
	if b.v == nil {
		return fmt.Errorf("value: %w", ErrDoubleRelease)
	}
	b.v = nil
	return nil
}

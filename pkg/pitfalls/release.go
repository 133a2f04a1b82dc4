package pitfalls

import (
	"fmt"
	"io"

	"memsafety/pkg/owned"
)

// UseAfterRelease boxes 42, releases it and then tries to read it again.
// The read is refused with owned.ErrReleased.
func UseAfterRelease(w io.Writer) error {
	v := owned.NewValue(42)
	if got, err := v.Get(); err == nil {
		fmt.Fprintf(w, "value before release: %d\n", got)
	}
	if err := v.Release(); err != nil {
		return err
	}

	if _, err := v.Get(); err != nil {
		return fmt.Errorf("read after release: %w", err)
	}
	return nil
}

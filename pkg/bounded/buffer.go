// Package bounded implements a fixed-capacity text buffer. Writes never
// extend past the capacity chosen at construction; input that does not fit
// is truncated on a rune boundary and reported.
package bounded

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrCapacityExceeded is returned when a write did not fit and was truncated.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// Buffer is a text buffer with a hard capacity.
type Buffer struct {
	mem []byte // len == used, cap == capacity
}

// New returns an empty Buffer that holds at most capacity bytes.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	mem := make([]byte, capacity)
	return &Buffer{
		mem: mem[0:0:capacity], // full-sliced, append can never reallocate past capacity unnoticed
	}
}

// Cap returns the buffer capacity in bytes.
func (b *Buffer) Cap() int { return cap(b.mem) }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return len(b.mem) }

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int { return cap(b.mem) - len(b.mem) }

// Write appends as much of p as fits. If p was cut short it returns the
// number of bytes kept and ErrCapacityExceeded. A cut never splits a
// multi-byte UTF-8 sequence.
func (b *Buffer) Write(p []byte) (int, error) {
	n := fit(p, b.Available())
	b.mem = append(b.mem, p[:n]...)
	if n < len(p) {
		return n, fmt.Errorf("kept %d of %d bytes: %w", n, len(p), ErrCapacityExceeded)
	}
	return n, nil
}

// WriteString is Write for strings.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// String returns a copy of the contents.
func (b *Buffer) String() string { return string(b.mem) }

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() { b.mem = b.mem[:0] }

// Copy returns s cut to at most capacity bytes, and whether it was cut.
func Copy(s string, capacity int) (string, bool) {
	buf := New(capacity)
	_, err := buf.WriteString(s)
	return buf.String(), err != nil
}

// fit returns the largest n <= limit such that p[:n] does not end inside a
// multi-byte rune. Bytes that are not valid UTF-8 are cut at limit.
func fit(p []byte, limit int) int {
	if len(p) <= limit {
		return len(p)
	}
	if limit <= 0 {
		return 0
	}
	n := limit
	for back := 1; back < utf8.UTFMax && n > 0 && !utf8.RuneStart(p[n]); back++ {
		n--
	}
	if n == limit {
		return limit
	}
	if _, size := utf8.DecodeRune(p[n:]); n+size <= limit {
		return limit // p[n] does not start a rune straddling limit
	}
	return n
}

package pitfalls

import (
	"io"
	"testing"

	"memsafety/pkg/owned"
)

var (
	sinkInt   int   // prevents dead-code elimination for int results
	sinkInt32 int32 // same for multiply
)

// ---------- 1. Checked vs. raw multiply ----------

//go:noinline
func rawMultiply(a, b int32) int32 { return a * b }

func BenchmarkMultiplyRaw(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkInt32 = rawMultiply(int32(i), 3)
	}
}

func BenchmarkMultiplyChecked(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r, _ := Multiply(int32(i), 3)
		sinkInt32 = r
	}
}

// ---------- 2. Go heap vs. manual allocator ----------

func BenchmarkCreateArrayHeap(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := make([]int, 64)
		for j := range s {
			s[j] = 2 * j
		}
		sinkInt = s[63]
	}
}

func BenchmarkCreateArrayOwned(b *testing.B) {
	a := owned.NewAllocator()
	defer a.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		arr, err := CreateArray(a, 64)
		if err != nil {
			b.Fatal(err)
		}
		sinkInt, _ = arr.At(63)
		if err := arr.Release(); err != nil {
			b.Fatal(err)
		}
	}
}

// ---------- 3. Bounded greeting ----------

func BenchmarkGreet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Greet(io.Discard, "Bartholomew")
	}
}

package metrics

import (
	"bytes"
	"strings"
	"testing"

	"memsafety/pkg/owned"
)

func TestPrintAllocStats(t *testing.T) {
	var out bytes.Buffer
	PrintAllocStats(&out, "end of run", owned.Stats{Allocs: 2, Frees: 2})

	got := out.String()
	for _, want := range []string{"=== Allocator Stats: end of run ===", "Allocs:       2", "Live Blocks:  0 (0 bytes)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "LEAK") {
		t.Errorf("balanced stats reported a leak:\n%s", got)
	}
}

func TestPrintAllocStatsLeak(t *testing.T) {
	var out bytes.Buffer
	PrintAllocStats(&out, "leaky", owned.Stats{Allocs: 3, Frees: 2, LiveBlocks: 1, LiveBytes: 40})

	if !strings.Contains(out.String(), "LEAK: 1 blocks were never released") {
		t.Fatalf("leak not reported:\n%s", out.String())
	}
}

func TestBalanced(t *testing.T) {
	if !Balanced(owned.Stats{Allocs: 1, Frees: 1}) {
		t.Errorf("1/1 should be balanced")
	}
	if Balanced(owned.Stats{Allocs: 2, Frees: 1, LiveBlocks: 1}) {
		t.Errorf("2/1 should not be balanced")
	}
}

func TestPrintMemStats(t *testing.T) {
	var out bytes.Buffer
	PrintMemStats(&out, "now")
	if !strings.HasPrefix(out.String(), "\n=== Memory Stats: now ===\n") {
		t.Fatalf("unexpected header:\n%s", out.String())
	}
}

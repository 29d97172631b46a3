package contour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTrimClosureCutsTail(t *testing.T) {
	// A path that loops back near its start then wanders off.
	in := []Point{
		{0, 0}, {3, 0}, {5, 2}, {5, 5}, {2, 5}, {0, 3},
		{1, 1}, // back within sqrt(2) of the start
		{8, 8}, {12, 12},
	}
	got, closed := TrimClosure(in, TrimOptions{})
	if !closed {
		t.Fatal("TrimClosure did not report closure")
	}
	want := in[:7]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trimmed path mismatch (-want +got):\n%s", diff)
	}
}

func TestTrimClosureOpenPathUnchanged(t *testing.T) {
	in := []Point{{0, 0}, {5, 0}, {10, 0}, {15, 0}, {20, 0}}
	got, closed := TrimClosure(in, TrimOptions{})
	if closed {
		t.Error("TrimClosure reported closure on a straight line")
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("open path modified (-want +got):\n%s", diff)
	}
}

func TestTrimClosureMidpointGate(t *testing.T) {
	// Early wobble back near the start must not trigger truncation
	// before the halfway mark.
	in := []Point{
		{0, 0}, {1, 1}, {4, 0}, {8, 0}, {8, 4}, {8, 8},
		{4, 8}, {0, 8}, {0, 4}, {0, 1},
	}
	got, closed := TrimClosure(in, TrimOptions{})
	if !closed {
		t.Fatal("TrimClosure did not detect the genuine closure at the end")
	}
	// Index 1 is within threshold but gated; index 9 closes the loop.
	if len(got) != 10 {
		t.Errorf("trimmed to %d points, want 10: %v", len(got), got)
	}
}

func TestTrimClosureWarmup(t *testing.T) {
	in := []Point{
		{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 1}, {5, 5}, {9, 9},
	}
	// Without warmup, index 4 (past midpoint 3) closes.
	got, closed := TrimClosure(in, TrimOptions{})
	if !closed || len(got) != 5 {
		t.Fatalf("default trim: closed=%v len=%d, want true 5", closed, len(got))
	}
	// Warmup past that index suppresses it.
	_, closed = TrimClosure(in, TrimOptions{Warmup: 6})
	if closed {
		t.Error("warmup should have suppressed the closure point")
	}
}

func TestTrimClosureAppendStart(t *testing.T) {
	in := []Point{
		{0, 0}, {4, 0}, {4, 4}, {0, 4}, {1, 0}, {7, 7},
	}
	got, closed := TrimClosure(in, TrimOptions{AppendStart: true})
	if !closed {
		t.Fatal("TrimClosure did not report closure")
	}
	if got[len(got)-1] != in[0] {
		t.Errorf("last point = %+v, want explicit start %+v", got[len(got)-1], in[0])
	}
}

func TestTrimClosureThresholdOverride(t *testing.T) {
	in := []Point{
		{0, 0}, {6, 0}, {6, 6}, {0, 6}, {0, 3}, {3, 3},
	}
	// Default threshold 2: (0,3) is distSq 9 from start, no closure.
	if _, closed := TrimClosure(in, TrimOptions{}); closed {
		t.Error("default threshold should not close at distSq 9")
	}
	got, closed := TrimClosure(in, TrimOptions{DistSqThreshold: 9})
	if !closed || len(got) != 5 {
		t.Errorf("threshold 9: closed=%v len=%d, want true 5", closed, len(got))
	}
}

func TestTrimClosureInputNotModified(t *testing.T) {
	in := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {1, 1}, {9, 9}}
	orig := append([]Point(nil), in...)
	TrimClosure(in, TrimOptions{AppendStart: true})
	if diff := cmp.Diff(orig, in); diff != "" {
		t.Errorf("input slice was modified (-want +got):\n%s", diff)
	}
}

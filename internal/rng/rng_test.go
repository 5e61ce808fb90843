package rng

import "testing"

func TestStreamDeterministic(t *testing.T) {
	a := New(42).Stream("events", 7)
	b := New(42).Stream("events", 7)
	for i := 0; i < 100; i++ {
		if got, want := a.Uint64(), b.Uint64(); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestStreamIndependence(t *testing.T) {
	src := New(42)
	tests := []struct {
		name         string
		kindA, kindB string
		nA, nB       uint64
	}{
		{"different kind", "events", "users", 0, 0},
		{"different index", "events", "events", 0, 1},
		{"adjacent indexes", "users", "users", 3, 4},
	}
	for _, tc := range tests {
		a := src.Stream(tc.kindA, tc.nA)
		b := src.Stream(tc.kindB, tc.nB)
		same := true
		for i := 0; i < 16; i++ {
			if a.Uint64() != b.Uint64() {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("%s: streams (%q,%d) and (%q,%d) are identical", tc.name, tc.kindA, tc.nA, tc.kindB, tc.nB)
		}
	}
}

func TestBetweenInclusive(t *testing.T) {
	r := New(1).Stream("test", 0)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		n := Between(r, 3, 5)
		if n < 3 || n > 5 {
			t.Fatalf("Between(3, 5) = %d", n)
		}
		seen[n] = true
	}
	if !seen[3] || !seen[5] {
		t.Fatalf("bounds never drawn: %v", seen)
	}
	if got := Between(r, 9, 9); got != 9 {
		t.Fatalf("degenerate range: got %d", got)
	}
}

func TestSampleDistinct(t *testing.T) {
	r := New(1).Stream("test", 0)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := 0; i < 50; i++ {
		out := Sample(r, items, 4)
		if len(out) != 4 {
			t.Fatalf("got %d items, want 4", len(out))
		}
		seen := map[int]bool{}
		for _, v := range out {
			if seen[v] {
				t.Fatalf("duplicate %d in sample %v", v, out)
			}
			seen[v] = true
		}
	}
	if got := Sample(r, items, 50); len(got) != len(items) {
		t.Fatalf("oversized k: got %d items, want %d", len(got), len(items))
	}
}

func TestWeightedIndex(t *testing.T) {
	r := New(1).Stream("test", 0)
	counts := make([]int, 3)
	for i := 0; i < 10000; i++ {
		counts[WeightedIndex(r, []float64{0, 1, 9})]++
	}
	if counts[0] != 0 {
		t.Fatalf("zero-weight index drawn %d times", counts[0])
	}
	if counts[2] < counts[1] {
		t.Fatalf("heavier index drawn less: %v", counts)
	}
	if got := WeightedIndex(r, []float64{0, 0}); got != 0 {
		t.Fatalf("all-zero weights: got %d, want 0", got)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.24, 3.0},
		{3.26, 3.5},
		{4.76, 5.0},
		{0.2, 1.0},
		{6.3, 5.0},
		{1.0, 1.0},
		{5.0, 5.0},
	}
	for _, tc := range tests {
		if got := ClampScore(tc.in, 1, 5); got != tc.want {
			t.Fatalf("ClampScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

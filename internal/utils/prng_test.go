// internal/utils/prng_test.go
package utils

import "testing"

func TestSeededSequencesAreDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRangeStaysWithinBounds(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := rng.Range(1.4, 3.0)
		if v < 1.4 || v >= 3.0 {
			t.Fatalf("Range returned %v, want [1.4, 3.0)", v)
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(1)

	if got := rng.ChooseWeighted(nil); got != -1 {
		t.Errorf("empty weights: got %d, want -1", got)
	}
	if got := rng.ChooseWeighted([]float64{0, 0}); got != 0 {
		t.Errorf("zero weights: got %d, want 0", got)
	}

	weights := []float64{0.6, 0.25, 0.15}
	counts := make([]int, len(weights))
	for i := 0; i < 10000; i++ {
		idx := rng.ChooseWeighted(weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("index %d out of range", idx)
		}
		counts[idx]++
	}
	// Самый тяжёлый вариант обязан выпадать чаще самого лёгкого.
	if counts[0] <= counts[2] {
		t.Errorf("weighted choice looks uniform: %v", counts)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 24, 24)
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", NewRect(12, 12, 24, 24), true},
		{"touching edges", NewRect(24, 0, 24, 24), false},
		{"contained", NewRect(6, 6, 6, 6), true},
		{"apart", NewRect(100, 100, 24, 24), false},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	field := NewRect(0, 0, 624, 624)
	if !field.Contains(NewRect(0, 0, 6, 6)) {
		t.Error("rect on the edge must be contained")
	}
	if field.Contains(NewRect(-1, 0, 6, 6)) {
		t.Error("rect past the left edge must not be contained")
	}
	if field.Contains(NewRect(620, 0, 6, 6)) {
		t.Error("rect past the right edge must not be contained")
	}
}

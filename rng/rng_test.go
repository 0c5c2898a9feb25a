package rng

import "testing"

func TestRangedIntStaysInBounds(t *testing.T) {
	cases := []struct {
		name     string
		min, max int
	}{
		{"one_to_five", 1, 5},
		{"zero_to_one", 0, 1},
		{"single", 3, 3},
		{"platform_count", 1, 7},
	}

	sources := map[string]Source{
		"stable":    NewStable(42),
		"reseeding": NewReseedingWithClock(counterClock(99)),
	}

	for srcName, src := range sources {
		for _, c := range cases {
			t.Run(srcName+"/"+c.name, func(t *testing.T) {
				seen := map[int]bool{}
				for i := 0; i < 2000; i++ {
					v := src.RangedInt(c.min, c.max)
					if v < c.min || v > c.max {
						t.Fatalf("RangedInt(%d, %d) = %d out of range", c.min, c.max, v)
					}
					seen[v] = true
				}
				if c.max-c.min <= 1 && len(seen) != c.max-c.min+1 {
					t.Fatalf("expected every value in [%d, %d], saw %v", c.min, c.max, seen)
				}
			})
		}
	}
}

func TestFoldRangeIsLowBiased(t *testing.T) {
	// [0, 500] folded mod 5 gives 0 one extra hit.
	counts := make([]int, 5)
	for v := 0; v <= 500; v++ {
		counts[foldRange(1, 5, func(int) int { return v })-1]++
	}
	if counts[0] != counts[1]+1 {
		t.Fatalf("expected the lowest value to be favoured, got %v", counts)
	}
}

func TestFoldRangeEmptySpan(t *testing.T) {
	if got := foldRange(4, 2, func(int) int { t.Fatal("should not draw"); return 0 }); got != 4 {
		t.Fatalf("expected min for empty span, got %d", got)
	}
}

func TestUniformHandlesReversedBounds(t *testing.T) {
	src := NewStable(7)
	for i := 0; i < 500; i++ {
		v := src.Uniform(1, 0.375)
		if v < 0.375 || v > 1 {
			t.Fatalf("Uniform(1, 0.375) = %f", v)
		}
	}
}

func TestChance(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		u       float64
		want    bool
	}{
		{"zero_never", 0, 0.999, false},
		{"hundred_fires", 100, 0.001, true},
		{"over_hundred_fires", 350, 0.0001, true},
		{"half_low", 50, 0.4, false},
		{"half_high", 50, 0.6, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := chance(tc.percent, tc.u); got != tc.want {
				t.Fatalf("chance(%v, %v) = %v, want %v", tc.percent, tc.u, got, tc.want)
			}
		})
	}
}

func TestStableIsReproducible(t *testing.T) {
	a := NewStable(1234)
	b := NewStable(1234)
	for i := 0; i < 100; i++ {
		if a.Uniform(10, 20) != b.Uniform(10, 20) {
			t.Fatalf("draw %d diverged", i)
		}
	}
}

func TestReseedingFollowsClock(t *testing.T) {
	a := NewReseedingWithClock(counterClock(5))
	b := NewReseedingWithClock(counterClock(5))
	for i := 0; i < 50; i++ {
		if a.RangedInt(1, 5) != b.RangedInt(1, 5) {
			t.Fatalf("draw %d diverged for identical clocks", i)
		}
	}
}

func TestReseedingNeverSticksAtZero(t *testing.T) {
	src := NewReseedingWithClock(func() int64 { return 0 })
	for i := 0; i < 10; i++ {
		src.Uniform(0, 1)
		if src.seed == 0 {
			t.Fatalf("seed collapsed to zero after %d draws", i+1)
		}
	}
}

func counterClock(start int64) func() int64 {
	n := start
	return func() int64 {
		n++
		return n
	}
}

package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestLerpClamped(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{name: "start", a: 2, b: 4, t: 0, want: 2},
		{name: "half", a: 2, b: 4, t: 0.5, want: 3},
		{name: "past end", a: 2, b: 4, t: 3, want: 4},
		{name: "negative", a: 2, b: 4, t: -1, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpClamped(tt.a, tt.b, tt.t); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRotatePoint(t *testing.T) {
	got := RotatePoint(cp.Vector{X: 0, Y: -0.5}, math.Pi, cp.Vector{X: 3, Y: 1})
	if math.Abs(got.X-3) > 1e-9 || math.Abs(got.Y-1.5) > 1e-9 {
		t.Fatalf("expected (3, 1.5), got %v", got)
	}
}

package common

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"below", -0.5, 0},
		{"inside", 0.25, 0.25},
		{"above", 3, 1},
		{"nan", math.NaN(), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp01(c.in); got != c.want {
				t.Fatalf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(12, 1, 10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := ClampInt(0, 1, 10); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

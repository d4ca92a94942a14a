package dogs

import (
	"math"
	"testing"
)

func TestParseRange(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		in       string
		min, max float64
	}{
		{"30 - 40", 30, 40},
		{"23-29", 23, 29},
		{"9 - 11.5", 9, 11.5},
		{"30", 30, nan},
		{"", nan, nan},
		{"- 40", nan, 40},
		{"abc - 12", nan, 12},
		{"NaN", nan, nan},
		{"1e400 - 2", nan, 2},
	}

	for _, tc := range cases {
		lo, hi := ParseRange(tc.in)
		if !sameFloat(lo, tc.min) || !sameFloat(hi, tc.max) {
			t.Fatalf("ParseRange(%q) = (%v, %v), want (%v, %v)", tc.in, lo, hi, tc.min, tc.max)
		}
	}
}

func TestParseRange_MinNotAboveMaxForValidRanges(t *testing.T) {
	for _, in := range []string{"1 - 2", "10 - 15", "64 - 69", "3.5 - 3.5"} {
		lo, hi := ParseRange(in)
		if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
			t.Fatalf("ParseRange(%q) = (%v, %v)", in, lo, hi)
		}
	}
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

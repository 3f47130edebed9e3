package vitals

import (
	"math"
	"testing"
)

func TestComputeBMI(t *testing.T) {
	got := ComputeBMI(70, 1.75)
	if got == nil {
		t.Fatal("expected a value")
	}
	if *got != 22.86 {
		t.Errorf("expected 22.86, got %v", *got)
	}
}

func TestComputeBMI_Rounding(t *testing.T) {
	got := ComputeBMI(80, 1.8) // 24.6913... -> 24.69
	if got == nil || *got != 24.69 {
		t.Errorf("expected 24.69, got %v", got)
	}
}

func TestComputeBMI_NotComputable(t *testing.T) {
	cases := []struct {
		name           string
		weight, height float64
	}{
		{"zero weight", 0, 1.75},
		{"zero height", 70, 0},
		{"negative weight", -70, 1.75},
		{"negative height", 70, -1.75},
		{"both zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeBMI(tc.weight, tc.height); got != nil {
				t.Errorf("expected nil, got %v", *got)
			}
		})
	}
}

func TestComputeBMI_MonotonicInHeight(t *testing.T) {
	// For fixed weight, BMI strictly decreases as height grows.
	prev := math.Inf(1)
	for h := 1.40; h <= 2.10; h += 0.05 {
		got := ComputeBMI(70, h)
		if got == nil {
			t.Fatalf("unexpected nil at height %v", h)
		}
		if *got >= prev {
			t.Errorf("BMI not decreasing at height %v: %v >= %v", h, *got, prev)
		}
		prev = *got
	}
}

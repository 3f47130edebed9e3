package vitals

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestClassifyBMI(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{15.9, BMISevereUnderweight},
		{16, BMIModerateUnderweight},
		{16.99, BMIModerateUnderweight},
		{17, BMIMildUnderweight},
		{18.49, BMIMildUnderweight},
		{18.5, BMINormal},
		{22.86, BMINormal},
		{24.99, BMINormal},
		{25, BMIOverweight},
		{29.99, BMIOverweight},
		{30, BMIObeseClassI},
		{35, BMIObeseClassII},
		{39.99, BMIObeseClassII},
		{40, BMIObeseClassIII},
		{55, BMIObeseClassIII},
	}
	for _, tc := range cases {
		if got := ClassifyBMI(f(tc.bmi)); got != tc.want {
			t.Errorf("ClassifyBMI(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestClassifyBMI_Unavailable(t *testing.T) {
	if got := ClassifyBMI(nil); got != LabelUnavailable {
		t.Errorf("nil BMI: got %q", got)
	}
	if got := ClassifyBMI(f(math.NaN())); got != LabelUnavailable {
		t.Errorf("NaN BMI: got %q", got)
	}
}

func TestClassifyBMISimple(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{15, "Underweight"},
		{18.49, "Underweight"},
		{18.5, "Normal"},
		{24.99, "Normal"},
		{25, "Overweight"},
		{29.99, "Overweight"},
		{30, "Obese"},
		{42, "Obese"},
	}
	for _, tc := range cases {
		if got := ClassifyBMISimple(f(tc.bmi)); got != tc.want {
			t.Errorf("ClassifyBMISimple(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
	if got := ClassifyBMISimple(nil); got != LabelUnavailable {
		t.Errorf("nil BMI: got %q", got)
	}
}

package vitals

import "math"

// round2 rounds half away from zero to 2 decimal places. Used uniformly for
// BMI and temperature conversions.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeBMI returns weight(kg)/height(m)² rounded to 2 decimals, or nil when
// BMI is not computable (missing, zero or negative inputs). Not computable is
// not an error: callers render it as the "Data not available" sentinel.
func ComputeBMI(weightKg, heightM float64) *float64 {
	if weightKg <= 0 || heightM <= 0 {
		return nil
	}
	bmi := round2(weightKg / (heightM * heightM))
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return nil
	}
	return &bmi
}

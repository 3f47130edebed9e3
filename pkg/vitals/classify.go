package vitals

import "math"

// Sentinel labels returned in place of a classification when the input is
// absent or invalid. They are fixed strings, never errors.
const (
	LabelUnavailable = "Data not available"
	LabelInvalidUnit = "Invalid unit"
)

// Clinical BMI labels, one per WHO bucket.
const (
	BMISevereUnderweight   = "Severe underweight"
	BMIModerateUnderweight = "Moderate underweight"
	BMIMildUnderweight     = "Mild underweight"
	BMINormal              = "Normal weight"
	BMIOverweight          = "Overweight"
	BMIObeseClassI         = "Obese class I"
	BMIObeseClassII        = "Obese class II"
	BMIObeseClassIII       = "Obese class III"
)

// ClassifyBMI maps a BMI value to the 8-bucket clinical label. Buckets have an
// inclusive lower bound and exclusive upper bound, evaluated in ascending
// order. nil or NaN yields the unavailable sentinel.
func ClassifyBMI(bmi *float64) string {
	if bmi == nil || math.IsNaN(*bmi) {
		return LabelUnavailable
	}
	v := *bmi
	switch {
	case v < 16:
		return BMISevereUnderweight
	case v < 17:
		return BMIModerateUnderweight
	case v < 18.5:
		return BMIMildUnderweight
	case v < 25:
		return BMINormal
	case v < 30:
		return BMIOverweight
	case v < 35:
		return BMIObeseClassI
	case v < 40:
		return BMIObeseClassII
	default:
		return BMIObeseClassIII
	}
}

// ClassifyBMISimple maps a BMI value to the simplified 4-bucket label. It is
// a distinct operation from ClassifyBMI; call sites choose the granularity
// they need.
func ClassifyBMISimple(bmi *float64) string {
	if bmi == nil || math.IsNaN(*bmi) {
		return LabelUnavailable
	}
	v := *bmi
	switch {
	case v < 18.5:
		return "Underweight"
	case v < 25:
		return "Normal"
	case v < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

package vitals

// Unit is a declared temperature unit.
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// Valid reports whether the unit is one of the two recognized scales.
func (u Unit) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// Temperature state labels.
const (
	TempHighFever     = "High fever"
	TempLowGradeFever = "Low-grade fever"
	TempHypothermia   = "Mild hypothermia"
	TempNormal        = "Normal"
)

// CelsiusToFahrenheit converts °C to °F, rounded to 2 decimals.
func CelsiusToFahrenheit(c float64) float64 {
	return round2(c*9/5 + 32)
}

// FahrenheitToCelsius converts °F to °C, rounded to 2 decimals.
func FahrenheitToCelsius(f float64) float64 {
	return round2((f - 32) * 5 / 9)
}

// ClassifyTemperature maps a reading in its declared unit to a fever state.
// An unrecognized unit yields the invalid-unit sentinel, not an error; the
// service layer rejects such readings before they are ever stored.
func ClassifyTemperature(value float64, unit Unit) string {
	switch unit {
	case Celsius:
		switch {
		case value >= 38:
			return TempHighFever
		case value >= 37.5:
			return TempLowGradeFever
		case value < 36:
			return TempHypothermia
		default:
			return TempNormal
		}
	case Fahrenheit:
		switch {
		case value >= 100.4:
			return TempHighFever
		case value >= 99.5:
			return TempLowGradeFever
		default:
			return TempNormal
		}
	default:
		return LabelInvalidUnit
	}
}

// InCelsius normalizes a reading to °C. Readings already in Celsius pass
// through unrounded.
func InCelsius(value float64, unit Unit) float64 {
	if unit == Fahrenheit {
		return FahrenheitToCelsius(value)
	}
	return value
}

// InFahrenheit normalizes a reading to °F.
func InFahrenheit(value float64, unit Unit) float64 {
	if unit == Celsius {
		return CelsiusToFahrenheit(value)
	}
	return value
}

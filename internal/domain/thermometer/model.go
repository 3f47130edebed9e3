package thermometer

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack/healthtrack/pkg/vitals"
)

// TemperatureMeasurement maps to the temperature_measurement table. Unit is
// the unit the reading was taken in; both renderings are derived at read time.
type TemperatureMeasurement struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	PatientID  uuid.UUID   `db:"patient_id" json:"patient_id"`
	Value      float64     `db:"value" json:"value"`
	Unit       vitals.Unit `db:"unit" json:"unit"`
	RecordedAt time.Time   `db:"recorded_at" json:"recorded_at"`
	Symptoms   *string     `db:"symptoms" json:"symptoms,omitempty"`
	Notes      *string     `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`

	// Derived at read time, never persisted.
	Celsius        float64 `db:"-" json:"celsius"`
	Fahrenheit     float64 `db:"-" json:"fahrenheit"`
	Classification string  `db:"-" json:"classification,omitempty"`
}

func (m *TemperatureMeasurement) decorate() {
	m.Celsius = vitals.InCelsius(m.Value, m.Unit)
	m.Fahrenheit = vitals.InFahrenheit(m.Value, m.Unit)
	m.Classification = vitals.ClassifyTemperature(m.Value, m.Unit)
}

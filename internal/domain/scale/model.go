package scale

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack/healthtrack/pkg/vitals"
)

// WeightMeasurement maps to the weight_measurement table.
type WeightMeasurement struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	WeightKg   float64   `db:"weight_kg" json:"weight_kg"`
	HeightM    float64   `db:"height_m" json:"height_m"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	// Derived at read time, never persisted.
	BMI            *float64 `db:"-" json:"bmi,omitempty"`
	Classification string   `db:"-" json:"classification,omitempty"`
}

func (m *WeightMeasurement) decorate() {
	m.BMI = vitals.ComputeBMI(m.WeightKg, m.HeightM)
	m.Classification = vitals.ClassifyBMI(m.BMI)
}

package thermometer

import (
	"context"

	"github.com/google/uuid"
)

// TemperatureStats is the SQL-side aggregate over a patient's temperature
// log, normalized to Celsius.
type TemperatureStats struct {
	Count      int
	MaxCelsius *float64
	MinCelsius *float64
}

type TemperatureRepository interface {
	Create(ctx context.Context, m *TemperatureMeasurement) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TemperatureMeasurement, int, error)
	Stats(ctx context.Context, patientID uuid.UUID) (*TemperatureStats, error)
}

package scale

import (
	"context"

	"github.com/google/uuid"
)

// WeightStats is the SQL-side aggregate over a patient's weight log.
type WeightStats struct {
	Count       int
	MaxWeightKg *float64
	MinWeightKg *float64
}

type WeightRepository interface {
	Create(ctx context.Context, m *WeightMeasurement) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*WeightMeasurement, int, error)
	Latest(ctx context.Context, patientID uuid.UUID) (*WeightMeasurement, error)
	Stats(ctx context.Context, patientID uuid.UUID) (*WeightStats, error)
}

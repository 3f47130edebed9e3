package thermometer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthtrack/healthtrack/internal/apperr"
)

type temperatureRepoPG struct{ pool *pgxpool.Pool }

func NewTemperatureRepoPG(pool *pgxpool.Pool) TemperatureRepository {
	return &temperatureRepoPG{pool: pool}
}

const temperatureCols = `id, patient_id, value, unit, recorded_at, symptoms, notes, created_at`

func (r *temperatureRepoPG) scanRow(row pgx.Row) (*TemperatureMeasurement, error) {
	var m TemperatureMeasurement
	err := row.Scan(&m.ID, &m.PatientID, &m.Value, &m.Unit, &m.RecordedAt, &m.Symptoms, &m.Notes, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("scan temperature measurement", err)
	}
	return &m, nil
}

func (r *temperatureRepoPG) Create(ctx context.Context, m *TemperatureMeasurement) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO temperature_measurement (id, patient_id, value, unit, recorded_at, symptoms, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.PatientID, m.Value, m.Unit, m.RecordedAt, m.Symptoms, m.Notes)
	if err != nil {
		return apperr.Persistence("insert temperature measurement", err)
	}
	return nil
}

func (r *temperatureRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TemperatureMeasurement, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM temperature_measurement WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, apperr.Persistence("count temperature measurements", err)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+temperatureCols+` FROM temperature_measurement
		WHERE patient_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, apperr.Persistence("list temperature measurements", err)
	}
	defer rows.Close()
	var items []*TemperatureMeasurement
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, nil
}

func (r *temperatureRepoPG) Stats(ctx context.Context, patientID uuid.UUID) (*TemperatureStats, error) {
	var s TemperatureStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			ROUND(MAX(CASE WHEN unit = 'F' THEN (value - 32) / 1.8 ELSE value END)::numeric, 2),
			ROUND(MIN(CASE WHEN unit = 'F' THEN (value - 32) / 1.8 ELSE value END)::numeric, 2)
		FROM temperature_measurement WHERE patient_id = $1`, patientID).
		Scan(&s.Count, &s.MaxCelsius, &s.MinCelsius)
	if err != nil {
		return nil, apperr.Persistence("temperature stats", err)
	}
	return &s, nil
}

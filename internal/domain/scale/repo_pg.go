package scale

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthtrack/healthtrack/internal/apperr"
)

type weightRepoPG struct{ pool *pgxpool.Pool }

func NewWeightRepoPG(pool *pgxpool.Pool) WeightRepository {
	return &weightRepoPG{pool: pool}
}

const weightCols = `id, patient_id, weight_kg, height_m, recorded_at, notes, created_at`

func (r *weightRepoPG) scanRow(row pgx.Row) (*WeightMeasurement, error) {
	var m WeightMeasurement
	err := row.Scan(&m.ID, &m.PatientID, &m.WeightKg, &m.HeightM, &m.RecordedAt, &m.Notes, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("scan weight measurement", err)
	}
	return &m, nil
}

func (r *weightRepoPG) Create(ctx context.Context, m *WeightMeasurement) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO weight_measurement (id, patient_id, weight_kg, height_m, recorded_at, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.PatientID, m.WeightKg, m.HeightM, m.RecordedAt, m.Notes)
	if err != nil {
		return apperr.Persistence("insert weight measurement", err)
	}
	return nil
}

func (r *weightRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*WeightMeasurement, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM weight_measurement WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, apperr.Persistence("count weight measurements", err)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+weightCols+` FROM weight_measurement
		WHERE patient_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, apperr.Persistence("list weight measurements", err)
	}
	defer rows.Close()
	var items []*WeightMeasurement
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, nil
}

func (r *weightRepoPG) Latest(ctx context.Context, patientID uuid.UUID) (*WeightMeasurement, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `
		SELECT `+weightCols+` FROM weight_measurement
		WHERE patient_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1`, patientID))
}

func (r *weightRepoPG) Stats(ctx context.Context, patientID uuid.UUID) (*WeightStats, error) {
	var s WeightStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), MAX(weight_kg), MIN(weight_kg)
		FROM weight_measurement WHERE patient_id = $1`, patientID).
		Scan(&s.Count, &s.MaxWeightKg, &s.MinWeightKg)
	if err != nil {
		return nil, apperr.Persistence("weight stats", err)
	}
	return &s, nil
}

package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthtrack/healthtrack/internal/apperr"
)

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, user_id, first_name, last_name, birth_date, dni, gender,
	phone, email, address, height_m, created_at, updated_at`

func (r *patientRepoPG) scanRow(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.BirthDate, &p.DNI, &p.Gender,
		&p.Phone, &p.Email, &p.Address, &p.HeightM, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("scan patient", err)
	}
	return &p, nil
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (id, user_id, first_name, last_name, birth_date, dni, gender,
			phone, email, address, height_m)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.BirthDate, p.DNI, p.Gender,
		p.Phone, p.Email, p.Address, p.HeightM)
	if err != nil {
		return apperr.Persistence("insert patient", err)
	}
	return nil
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *patientRepoPG) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients WHERE user_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, apperr.Persistence("count patients", err)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+patientCols+` FROM patients
		WHERE user_id = $1
		ORDER BY last_name, first_name, id
		LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, 0, apperr.Persistence("list patients", err)
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient, ownerID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET first_name=$3, last_name=$4, birth_date=$5, dni=$6, gender=$7,
			phone=$8, email=$9, address=$10, height_m=$11, updated_at=NOW()
		WHERE id = $1 AND user_id = $2`,
		p.ID, ownerID, p.FirstName, p.LastName, p.BirthDate, p.DNI, p.Gender,
		p.Phone, p.Email, p.Address, p.HeightM)
	if err != nil {
		return apperr.Persistence("update patient", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *patientRepoPG) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return apperr.Persistence("delete patient", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

package patient

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthtrack/healthtrack/internal/apperr"
	"github.com/healthtrack/healthtrack/internal/platform/auth"
	"github.com/healthtrack/healthtrack/pkg/vitals"
)

type Service struct {
	repo   PatientRepository
	logger zerolog.Logger
}

func NewService(repo PatientRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

var validGenders = map[string]bool{
	"masculino": true, "femenino": true, "otro": true,
}

func (s *Service) validate(p *Patient) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return apperr.Validation("first_name", "must not be empty")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return apperr.Validation("last_name", "must not be empty")
	}
	if _, err := vitals.Age(p.BirthDate, time.Now()); err != nil {
		var ide *vitals.InvalidDateError
		if errors.As(err, &ide) {
			return apperr.Validation("birth_date", ide.Reason)
		}
		return err
	}
	if p.Gender != nil && !validGenders[*p.Gender] {
		return apperr.Validation("gender", "must be one of masculino, femenino, otro")
	}
	if p.HeightM != nil && *p.HeightM <= 0 {
		return apperr.Validation("height_m", "must be positive")
	}
	return nil
}

// decorate fills the derived age. Records whose birth date cannot produce an
// age are returned with Age unset rather than failing the read.
func (s *Service) decorate(p *Patient) {
	age, err := vitals.Age(p.BirthDate, time.Now())
	if err != nil {
		return
	}
	p.Age = &age
}

func (s *Service) CreatePatient(ctx context.Context, ownerID uuid.UUID, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	p.UserID = &ownerID
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.decorate(p)
	s.logger.Info().Str("patient_id", p.ID.String()).Str("user_id", ownerID.String()).Msg("patient created")
	return nil
}

// GetPatient resolves the record and enforces ownership. Callers are never
// told whether a record exists for another owner.
func (s *Service) GetPatient(ctx context.Context, ownerID, id uuid.UUID) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner := uuid.Nil
	if p.UserID != nil {
		owner = *p.UserID
	}
	if !auth.Authorize(ownerID, owner) {
		return nil, apperr.ErrNotFound
	}
	s.decorate(p)
	return p, nil
}

func (s *Service) ListPatients(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	items, total, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for _, p := range items {
		s.decorate(p)
	}
	return items, total, nil
}

// UpdatePatient applies the mutable fields and returns the stored record
// re-read from the repository, so the caller sees the real timestamps rather
// than whatever the request body carried.
func (s *Service) UpdatePatient(ctx context.Context, ownerID uuid.UUID, p *Patient) (*Patient, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p, ownerID); err != nil {
		return nil, err
	}
	updated, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	s.decorate(updated)
	return updated, nil
}

func (s *Service) DeletePatient(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, ownerID)
}

type AgeResult struct {
	PatientID uuid.UUID `json:"patient_id"`
	BirthDate time.Time `json:"birth_date"`
	Age       int       `json:"age"`
}

// ComputeAge returns the patient's age in completed years.
func (s *Service) ComputeAge(ctx context.Context, ownerID, id uuid.UUID) (*AgeResult, error) {
	p, err := s.GetPatient(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	age, err := vitals.Age(p.BirthDate, time.Now())
	if err != nil {
		var ide *vitals.InvalidDateError
		if errors.As(err, &ide) {
			return nil, apperr.Validation("birth_date", ide.Reason)
		}
		return nil, err
	}
	return &AgeResult{PatientID: p.ID, BirthDate: p.BirthDate, Age: age}, nil
}

package thermometer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthtrack/healthtrack/internal/apperr"
	"github.com/healthtrack/healthtrack/internal/domain/patient"
	"github.com/healthtrack/healthtrack/internal/platform/auth"
	"github.com/healthtrack/healthtrack/pkg/vitals"
)

// PatientResolver is the slice of the patient repository needed for ownership
// checks. Satisfied by patient.PatientRepository.
type PatientResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service struct {
	repo     TemperatureRepository
	patients PatientResolver
	logger   zerolog.Logger
}

func NewService(repo TemperatureRepository, patients PatientResolver, logger zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, logger: logger}
}

func (s *Service) resolveOwned(ctx context.Context, ownerID, patientID uuid.UUID) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	owner := uuid.Nil
	if p.UserID != nil {
		owner = *p.UserID
	}
	if !auth.Authorize(ownerID, owner) {
		return apperr.ErrNotFound
	}
	return nil
}

type RecordTemperatureInput struct {
	PatientID  uuid.UUID   `json:"patient_id"`
	Value      float64     `json:"value"`
	Unit       vitals.Unit `json:"unit"`
	RecordedAt time.Time   `json:"recorded_at"`
	Symptoms   *string     `json:"symptoms,omitempty"`
	Notes      *string     `json:"notes,omitempty"`
}

type RecordTemperatureResult struct {
	ID             uuid.UUID `json:"id"`
	Celsius        float64   `json:"celsius"`
	Fahrenheit     float64   `json:"fahrenheit"`
	Classification string    `json:"classification"`
}

// RecordTemperature validates and stores one temperature reading. An unknown
// unit is rejected before any write; the log never holds a reading that
// cannot be classified.
func (s *Service) RecordTemperature(ctx context.Context, ownerID uuid.UUID, in RecordTemperatureInput) (*RecordTemperatureResult, error) {
	if err := s.resolveOwned(ctx, ownerID, in.PatientID); err != nil {
		return nil, err
	}

	if !in.Unit.Valid() {
		return nil, apperr.Validation("unit", "must be C or F")
	}
	if in.Value <= 0 {
		return nil, apperr.Validation("value", "must be positive")
	}
	if in.RecordedAt.IsZero() {
		in.RecordedAt = time.Now()
	}
	if in.RecordedAt.After(time.Now().Add(time.Minute)) {
		return nil, apperr.Validation("recorded_at", "must not be in the future")
	}

	m := &TemperatureMeasurement{
		PatientID:  in.PatientID,
		Value:      in.Value,
		Unit:       in.Unit,
		RecordedAt: in.RecordedAt,
		Symptoms:   in.Symptoms,
		Notes:      in.Notes,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	m.decorate()

	s.logger.Info().
		Str("patient_id", in.PatientID.String()).
		Float64("value", in.Value).
		Str("unit", string(in.Unit)).
		Str("state", m.Classification).
		Msg("temperature recorded")

	return &RecordTemperatureResult{
		ID:             m.ID,
		Celsius:        m.Celsius,
		Fahrenheit:     m.Fahrenheit,
		Classification: m.Classification,
	}, nil
}

type TemperatureHistory struct {
	Total int                       `json:"total"`
	Items []*TemperatureMeasurement `json:"items"`
}

func (s *Service) ListTemperatureHistory(ctx context.Context, ownerID, patientID uuid.UUID, limit, offset int) (*TemperatureHistory, error) {
	if err := s.resolveOwned(ctx, ownerID, patientID); err != nil {
		return nil, err
	}
	items, total, err := s.repo.ListByPatient(ctx, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, m := range items {
		m.decorate()
	}
	return &TemperatureHistory{Total: total, Items: items}, nil
}

type TemperatureSummary struct {
	PatientID  uuid.UUID `json:"patient_id"`
	Count      int       `json:"count"`
	MaxCelsius *float64  `json:"max_celsius,omitempty"`
	MinCelsius *float64  `json:"min_celsius,omitempty"`
}

func (s *Service) Summary(ctx context.Context, ownerID, patientID uuid.UUID) (*TemperatureSummary, error) {
	if err := s.resolveOwned(ctx, ownerID, patientID); err != nil {
		return nil, err
	}
	stats, err := s.repo.Stats(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &TemperatureSummary{
		PatientID:  patientID,
		Count:      stats.Count,
		MaxCelsius: stats.MaxCelsius,
		MinCelsius: stats.MinCelsius,
	}, nil
}

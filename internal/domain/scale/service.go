package scale

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthtrack/healthtrack/internal/apperr"
	"github.com/healthtrack/healthtrack/internal/domain/patient"
	"github.com/healthtrack/healthtrack/internal/platform/auth"
	"github.com/healthtrack/healthtrack/pkg/vitals"
)

// PatientResolver is the slice of the patient repository the measurement
// services need for ownership checks. Satisfied by patient.PatientRepository.
type PatientResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service struct {
	repo     WeightRepository
	patients PatientResolver
	logger   zerolog.Logger
}

func NewService(repo WeightRepository, patients PatientResolver, logger zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, logger: logger}
}

// resolveOwned loads the patient and enforces ownership before any
// measurement operation touches its log.
func (s *Service) resolveOwned(ctx context.Context, ownerID, patientID uuid.UUID) (*patient.Patient, error) {
	p, err := s.patients.GetByID(ctx, patientID)
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
	return p, nil
}

type RecordWeightInput struct {
	PatientID  uuid.UUID `json:"patient_id"`
	WeightKg   float64   `json:"weight_kg"`
	HeightM    float64   `json:"height_m"`
	RecordedAt time.Time `json:"recorded_at"`
	Notes      *string   `json:"notes,omitempty"`
}

type RecordWeightResult struct {
	ID             uuid.UUID `json:"id"`
	BMI            *float64  `json:"bmi"`
	Classification string    `json:"classification"`
}

// RecordWeight validates and stores one weight measurement. When the request
// carries no height the patient's registered height is used; with neither
// available the measurement is rejected before any write.
func (s *Service) RecordWeight(ctx context.Context, ownerID uuid.UUID, in RecordWeightInput) (*RecordWeightResult, error) {
	p, err := s.resolveOwned(ctx, ownerID, in.PatientID)
	if err != nil {
		return nil, err
	}

	if in.WeightKg <= 0 {
		return nil, apperr.Validation("weight_kg", "must be positive")
	}
	if in.HeightM == 0 && p.HeightM != nil {
		in.HeightM = *p.HeightM
	}
	if in.HeightM <= 0 {
		return nil, apperr.Validation("height_m", "must be positive")
	}
	if in.RecordedAt.IsZero() {
		in.RecordedAt = time.Now()
	}
	if in.RecordedAt.After(time.Now().Add(time.Minute)) {
		return nil, apperr.Validation("recorded_at", "must not be in the future")
	}

	m := &WeightMeasurement{
		PatientID:  in.PatientID,
		WeightKg:   in.WeightKg,
		HeightM:    in.HeightM,
		RecordedAt: in.RecordedAt,
		Notes:      in.Notes,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	m.decorate()

	s.logger.Info().
		Str("patient_id", in.PatientID.String()).
		Float64("weight_kg", in.WeightKg).
		Msg("weight recorded")

	return &RecordWeightResult{ID: m.ID, BMI: m.BMI, Classification: m.Classification}, nil
}

// WeightHistory carries the measurement page plus the headline block with the
// latest reading's body mass index.
type WeightHistory struct {
	Total                int                  `json:"total"`
	LatestBMI            *float64             `json:"latest_bmi,omitempty"`
	LatestClassification string               `json:"latest_classification,omitempty"`
	Items                []*WeightMeasurement `json:"items"`
}

func (s *Service) ListWeightHistory(ctx context.Context, ownerID, patientID uuid.UUID, limit, offset int) (*WeightHistory, error) {
	if _, err := s.resolveOwned(ctx, ownerID, patientID); err != nil {
		return nil, err
	}
	items, total, err := s.repo.ListByPatient(ctx, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, m := range items {
		m.decorate()
	}

	h := &WeightHistory{Total: total, Items: items}
	if latest, err := s.repo.Latest(ctx, patientID); err == nil {
		latest.decorate()
		h.LatestBMI = latest.BMI
		h.LatestClassification = latest.Classification
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	return h, nil
}

type WeightSummary struct {
	PatientID            uuid.UUID `json:"patient_id"`
	Count                int       `json:"count"`
	MaxWeightKg          *float64  `json:"max_weight_kg,omitempty"`
	MinWeightKg          *float64  `json:"min_weight_kg,omitempty"`
	LatestBMI            *float64  `json:"latest_bmi,omitempty"`
	Classification       string    `json:"classification"`
	ClassificationSimple string    `json:"classification_simple"`
}

func (s *Service) WeightSummary(ctx context.Context, ownerID, patientID uuid.UUID) (*WeightSummary, error) {
	if _, err := s.resolveOwned(ctx, ownerID, patientID); err != nil {
		return nil, err
	}
	stats, err := s.repo.Stats(ctx, patientID)
	if err != nil {
		return nil, err
	}

	sum := &WeightSummary{
		PatientID:   patientID,
		Count:       stats.Count,
		MaxWeightKg: stats.MaxWeightKg,
		MinWeightKg: stats.MinWeightKg,
	}
	if latest, err := s.repo.Latest(ctx, patientID); err == nil {
		latest.decorate()
		sum.LatestBMI = latest.BMI
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	sum.Classification = vitals.ClassifyBMI(sum.LatestBMI)
	sum.ClassificationSimple = vitals.ClassifyBMISimple(sum.LatestBMI)
	return sum, nil
}

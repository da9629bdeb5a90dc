package worksheets

import (
	"context"
	"errors"
	"strings"
	"time"

	"insulin-worksheet/internal/domain/dosing"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("worksheet not found")
)

type Service struct {
	repo Repository
	calc *dosing.Service
	now  func() time.Time
}

func NewService(repo Repository, calc *dosing.Service) *Service {
	return &Service{
		repo: repo,
		calc: calc,
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientLabel string
	Patient      dosing.PatientInput
}

// Create computa la recomendación y la persiste como worksheet.
// El cálculo es el mismo que /dosing/calculate; acá solo se agrega identidad
// y timestamp. Los errores del calculador (ErrInvalidInput,
// ErrGlucoseOutOfRange) suben tal cual para que el handler los mapee igual.
func (s *Service) Create(ctx context.Context, clinicianUserID string, in CreateInput) (Worksheet, error) {
	if strings.TrimSpace(clinicianUserID) == "" {
		return Worksheet{}, ErrInvalidInput
	}

	rec, err := s.calc.Compute(in.Patient)
	if err != nil {
		return Worksheet{}, err
	}

	w := Worksheet{
		ID:              uuid.NewString(),
		ClinicianUserID: clinicianUserID,
		PatientLabel:    strings.TrimSpace(in.PatientLabel),
		Input:           in.Patient,
		Recommendation:  rec,
		CreatedAt:       s.now(),
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return Worksheet{}, err
	}
	return w, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Worksheet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByClinician(ctx context.Context, clinicianUserID string) ([]Worksheet, error) {
	return s.repo.ListByClinician(ctx, clinicianUserID)
}

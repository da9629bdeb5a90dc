package followups

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("follow-up not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	SeenAt             time.Time
	FastingMgDL        int
	AdjustedTotalUnits *float64
	Note               string
}

func (s *Service) Create(ctx context.Context, worksheetID, recordedBy string, in CreateInput) (FollowUp, error) {
	if strings.TrimSpace(worksheetID) == "" {
		return FollowUp{}, ErrInvalidInput
	}
	if strings.TrimSpace(recordedBy) == "" {
		return FollowUp{}, ErrInvalidInput
	}
	if in.SeenAt.IsZero() {
		return FollowUp{}, ErrInvalidInput
	}
	if in.FastingMgDL <= 0 {
		return FollowUp{}, ErrInvalidInput
	}
	if in.AdjustedTotalUnits != nil && *in.AdjustedTotalUnits <= 0 {
		return FollowUp{}, ErrInvalidInput
	}

	f := FollowUp{
		ID:                 uuid.NewString(),
		WorksheetID:        worksheetID,
		RecordedBy:         recordedBy,
		SeenAt:             in.SeenAt,
		FastingMgDL:        in.FastingMgDL,
		AdjustedTotalUnits: in.AdjustedTotalUnits,
		Note:               strings.TrimSpace(in.Note),
		Status:             StatusActive,
		RecordedAt:         s.now(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return FollowUp{}, err
	}
	return f, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (FollowUp, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByWorksheet(ctx context.Context, worksheetID string) ([]FollowUp, error) {
	return s.repo.ListByWorksheet(ctx, worksheetID)
}

// Void marca el follow-up como voided (no se borra).
func (s *Service) Void(ctx context.Context, id string) (FollowUp, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return FollowUp{}, ErrInvalidInput
	}
	if err := s.repo.Void(ctx, id); err != nil {
		return FollowUp{}, err
	}
	return s.repo.GetByID(ctx, id)
}

package followups

import "context"

type Repository interface {
	Create(ctx context.Context, f FollowUp) error
	GetByID(ctx context.Context, id string) (FollowUp, error)
	ListByWorksheet(ctx context.Context, worksheetID string) ([]FollowUp, error)
	Void(ctx context.Context, id string) error
}

package worksheets

import "context"

type Repository interface {
	Create(ctx context.Context, w Worksheet) error
	GetByID(ctx context.Context, id string) (Worksheet, error)
	ListByClinician(ctx context.Context, clinicianUserID string) ([]Worksheet, error)
}

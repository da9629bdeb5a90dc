package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"insulin-worksheet/internal/domain/worksheets"
)

type worksheetsRepo struct {
	mu   sync.RWMutex
	byID map[string]worksheets.Worksheet
}

func NewWorksheetsRepo() worksheets.Repository {
	return &worksheetsRepo{
		byID: make(map[string]worksheets.Worksheet),
	}
}

func (r *worksheetsRepo) Create(ctx context.Context, w worksheets.Worksheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(w.ID) == "" {
		return errors.New("worksheet id required")
	}
	if _, exists := r.byID[w.ID]; exists {
		return errors.New("worksheet already exists")
	}
	r.byID[w.ID] = w
	return nil
}

func (r *worksheetsRepo) GetByID(ctx context.Context, id string) (worksheets.Worksheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.byID[id]
	if !ok {
		return worksheets.Worksheet{}, worksheets.ErrNotFound
	}
	return w, nil
}

func (r *worksheetsRepo) ListByClinician(ctx context.Context, clinicianUserID string) ([]worksheets.Worksheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]worksheets.Worksheet, 0)
	for _, w := range r.byID {
		if w.ClinicianUserID == clinicianUserID {
			out = append(out, w)
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"insulin-worksheet/internal/domain/followups"
)

type followUpsRepo struct {
	mu   sync.RWMutex
	byID map[string]followups.FollowUp
}

func NewFollowUpsRepo() followups.Repository {
	return &followUpsRepo{
		byID: make(map[string]followups.FollowUp),
	}
}

func (r *followUpsRepo) Create(ctx context.Context, f followups.FollowUp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("follow-up id required")
	}
	if _, exists := r.byID[f.ID]; exists {
		return errors.New("follow-up already exists")
	}
	r.byID[f.ID] = f
	return nil
}

func (r *followUpsRepo) GetByID(ctx context.Context, id string) (followups.FollowUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return followups.FollowUp{}, followups.ErrNotFound
	}
	return f, nil
}

func (r *followUpsRepo) ListByWorksheet(ctx context.Context, worksheetID string) ([]followups.FollowUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]followups.FollowUp, 0)
	for _, f := range r.byID {
		if f.WorksheetID == worksheetID {
			out = append(out, f)
		}
	}

	// Orden por fecha de revisión asc (el log de titulación se lee cronológico)
	sort.Slice(out, func(i, j int) bool {
		return out[i].SeenAt.Before(out[j].SeenAt)
	})

	return out, nil
}

func (r *followUpsRepo) Void(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.byID[id]
	if !ok {
		return followups.ErrNotFound
	}
	f.Status = followups.StatusVoided
	r.byID[id] = f
	return nil
}

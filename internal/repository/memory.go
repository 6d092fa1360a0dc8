package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/openpdst/dst-service/internal/domain/model"
)

// MemoryDrugRepository is an in-process drug reference store used when
// MongoDB is disabled. It starts seeded with the built-in panel so the
// calculator works out of the box.
type MemoryDrugRepository struct {
	mu    sync.RWMutex
	drugs map[string]model.DrugReference
}

// NewMemoryDrugRepository creates a seeded in-memory drug store.
func NewMemoryDrugRepository() *MemoryDrugRepository {
	r := &MemoryDrugRepository{drugs: make(map[string]model.DrugReference, len(model.DefaultDrugPanel))}
	for _, d := range model.DefaultDrugPanel {
		d.CreatedAt = time.Now()
		d.UpdatedAt = d.CreatedAt
		r.drugs[d.DrugID] = d
	}
	return r
}

// GetByDrugID returns the reference record for the given drug ID.
func (r *MemoryDrugRepository) GetByDrugID(_ context.Context, drugID string) (*model.DrugReference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drugs[drugID]
	if !ok {
		return nil, ErrDrugNotFound
	}
	return &d, nil
}

// List returns all drug references sorted by name, matching the MongoDB
// repository. Callers use list positions as 1-based drug indices, so the
// order must be identical on every call.
func (r *MemoryDrugRepository) List(_ context.Context, availableOnly bool) ([]model.DrugReference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.DrugReference, 0, len(r.drugs))
	for _, d := range r.drugs {
		if availableOnly && !d.Available {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].DrugID < out[j].DrugID
	})
	return out, nil
}

// Create adds a drug reference.
func (r *MemoryDrugRepository) Create(_ context.Context, drug *model.DrugReference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	d := *drug
	d.CreatedAt = now
	d.UpdatedAt = now
	r.drugs[d.DrugID] = d
	return nil
}

// UpdateAvailability toggles a drug's availability.
func (r *MemoryDrugRepository) UpdateAvailability(_ context.Context, drugID string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drugs[drugID]
	if !ok {
		return ErrDrugNotFound
	}
	d.Available = available
	d.UpdatedAt = time.Now()
	r.drugs[drugID] = d
	return nil
}

// SeedDefaultPanel restores any missing built-in panel entries.
func (r *MemoryDrugRepository) SeedDefaultPanel(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range model.DefaultDrugPanel {
		if _, ok := r.drugs[d.DrugID]; !ok {
			d.CreatedAt = time.Now()
			d.UpdatedAt = d.CreatedAt
			r.drugs[d.DrugID] = d
		}
	}
	return nil
}

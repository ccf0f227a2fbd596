// Package memory provides an in-memory plan repository used by tests and
// the "memory" database driver.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/smartdiet/v1/internal/domain/plan"
	"github.com/smartdiet/v1/internal/ports/outbound"
)

// PlanRepository implements the plan repository backed by process memory.
type PlanRepository struct {
	mutex   sync.RWMutex
	entries map[uuid.UUID]plan.HistoryEntry
}

// NewPlanRepository creates a new in-memory plan repository
func NewPlanRepository() outbound.PlanRepository {
	return &PlanRepository{
		entries: make(map[uuid.UUID]plan.HistoryEntry),
	}
}

// Insert appends a new history entry
func (r *PlanRepository) Insert(ctx context.Context, entry *plan.HistoryEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entries[entry.ID] = *cloneEntry(*entry)
	return nil
}

// FindByOwner returns the owner's entries, newest first
func (r *PlanRepository) FindByOwner(ctx context.Context, ownerID string) ([]*plan.HistoryEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]*plan.HistoryEntry, 0)
	for _, entry := range r.entries {
		if entry.OwnerID != ownerID {
			continue
		}
		out = append(out, cloneEntry(entry))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

// cloneEntry copies an entry including the meal slots and their tags, so
// callers mutating a returned entry never reach stored state.
func cloneEntry(entry plan.HistoryEntry) *plan.HistoryEntry {
	copied := entry
	copied.Plan.Meals = make([]plan.MealSlot, len(entry.Plan.Meals))
	for i, meal := range entry.Plan.Meals {
		copied.Plan.Meals[i] = meal
		copied.Plan.Meals[i].Tags = append([]string(nil), meal.Tags...)
	}
	return &copied
}

// DeleteByOwner removes an entry scoped to its owner
func (r *PlanRepository) DeleteByOwner(ctx context.Context, ownerID string, entryID uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.entries[entryID]
	if !exists || entry.OwnerID != ownerID {
		return plan.ErrEntryNotFound
	}

	delete(r.entries, entryID)
	return nil
}

package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet/v1/internal/domain/plan"
	"github.com/smartdiet/v1/internal/ports/outbound"
)

// PlanRepository implements the plan repository interface using GORM
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) outbound.PlanRepository {
	return &PlanRepository{db: db}
}

// Insert appends a new history entry
func (r *PlanRepository) Insert(ctx context.Context, entry *plan.HistoryEntry) error {
	model, err := EntryToModel(entry)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// FindByOwner returns the owner's entries, newest first
func (r *PlanRepository) FindByOwner(ctx context.Context, ownerID string) ([]*plan.HistoryEntry, error) {
	var models []PlanEntryModel

	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*plan.HistoryEntry, len(models))
	for i, model := range models {
		entry, err := ModelToEntry(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}

// DeleteByOwner removes an entry scoped to its owner. Filtering on both
// id and owner makes a cross-owner delete indistinguishable from a
// missing entry.
func (r *PlanRepository) DeleteByOwner(ctx context.Context, ownerID string, entryID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", entryID, ownerID).
		Delete(&PlanEntryModel{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return plan.ErrEntryNotFound
	}

	return nil
}

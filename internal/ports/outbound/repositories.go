// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartdiet/v1/internal/domain/plan"
)

// PlanRepository defines the interface for plan history persistence.
// Implementations must return plan.ErrEntryNotFound (possibly wrapped)
// when DeleteByOwner targets an entry that does not exist for that owner;
// a cross-owner delete is indistinguishable from a missing entry.
type PlanRepository interface {
	// Insert appends a new history entry. Every save is a new row; there
	// is no upsert.
	Insert(ctx context.Context, entry *plan.HistoryEntry) error

	// FindByOwner returns the owner's entries ordered by creation time
	// descending. An owner with no entries gets an empty slice, not an
	// error.
	FindByOwner(ctx context.Context, ownerID string) ([]*plan.HistoryEntry, error)

	// DeleteByOwner removes the entry with the given id if and only if it
	// belongs to the owner.
	DeleteByOwner(ctx context.Context, ownerID string, entryID uuid.UUID) error
}

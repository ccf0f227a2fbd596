package plan

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is a persisted, owner-scoped snapshot of a generated plan.
// OwnerID is set once at creation and never changes; the entry has exactly
// two states, active and deleted, and deletion is terminal.
type HistoryEntry struct {
	ID        uuid.UUID
	OwnerID   string
	Title     string
	Plan      GeneratedPlan
	Macros    Macros
	CreatedAt time.Time
}

// NewHistoryEntry wraps a generated plan in a fresh history entry for the
// given owner. The macros summary is duplicated out of the plan so listing
// never needs to open the plan payload.
func NewHistoryEntry(ownerID string, generated *GeneratedPlan) (*HistoryEntry, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}

	return &HistoryEntry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     generated.Title,
		Plan:      *generated,
		Macros:    generated.Macros,
		CreatedAt: time.Now().UTC(),
	}, nil
}

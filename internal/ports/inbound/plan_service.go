// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smartdiet/v1/internal/domain/plan"
)

// PlanService defines the use cases for diet plan generation and history.
// This is the primary port that HTTP handlers will use.
type PlanService interface {
	// Commands - operations that modify state
	GeneratePlan(ctx context.Context, cmd GeneratePlanCommand) (*PlanEntryDTO, error)
	DeletePlan(ctx context.Context, ownerID string, entryID uuid.UUID) error

	// Queries - operations that read state
	ListPlans(ctx context.Context, ownerID string) ([]PlanEntryDTO, error)
}

// GeneratePlanCommand carries the raw intake fields plus the authenticated
// owner identity. Enum fields arrive as strings from the wire and are
// validated during profile normalization.
type GeneratePlanCommand struct {
	OwnerID         string
	Age             int
	Gender          string
	HeightCM        float64
	WeightKG        float64
	ActivityLevel   string
	DietType        string
	Conditions      []string
	Exclusions      []string
	MeatPreferences []string
}

// PlanEntryDTO is the stored-entry representation returned to adapters.
type PlanEntryDTO struct {
	ID        uuid.UUID          `json:"id"`
	OwnerID   string             `json:"ownerId"`
	Title     string             `json:"title"`
	Plan      plan.GeneratedPlan `json:"planData"`
	Macros    plan.Macros        `json:"macros"`
	CreatedAt time.Time          `json:"createdAt"`
}

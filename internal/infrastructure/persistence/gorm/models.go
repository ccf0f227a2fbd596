// Package gorm provides GORM-based repository implementations
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// PlanEntryModel is the database row for a persisted plan. The plan
// payload is stored opaquely as JSON; the macros summary is flattened
// into columns so history listings never parse the payload.
type PlanEntryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       string    `gorm:"size:64;not null;index:idx_plan_entries_owner"`
	Title         string    `gorm:"size:200;not null"`
	PlanData      []byte    `gorm:"type:text;not null"`
	MacroCalories int       `gorm:"not null"`
	MacroProtein  string    `gorm:"size:32"`
	MacroCarbs    string    `gorm:"size:32"`
	MacroFats     string    `gorm:"size:32"`
	CreatedAt     time.Time `gorm:"not null;index:idx_plan_entries_created"`
}

// TableName specifies the table name for PlanEntryModel
func (PlanEntryModel) TableName() string {
	return "plan_entries"
}

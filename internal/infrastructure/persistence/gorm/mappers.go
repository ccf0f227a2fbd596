package gorm

import (
	"encoding/json"
	"fmt"

	"github.com/smartdiet/v1/internal/domain/plan"
)

// EntryToModel converts a domain history entry to its database row.
func EntryToModel(entry *plan.HistoryEntry) (*PlanEntryModel, error) {
	payload, err := json.Marshal(entry.Plan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan payload: %w", err)
	}

	return &PlanEntryModel{
		ID:            entry.ID,
		OwnerID:       entry.OwnerID,
		Title:         entry.Title,
		PlanData:      payload,
		MacroCalories: entry.Macros.Calories,
		MacroProtein:  entry.Macros.Protein,
		MacroCarbs:    entry.Macros.Carbs,
		MacroFats:     entry.Macros.Fats,
		CreatedAt:     entry.CreatedAt,
	}, nil
}

// ModelToEntry converts a database row back to a domain history entry.
// The plan payload round-trips through JSON without interpretation.
func ModelToEntry(model *PlanEntryModel) (*plan.HistoryEntry, error) {
	var generated plan.GeneratedPlan
	if err := json.Unmarshal(model.PlanData, &generated); err != nil {
		return nil, fmt.Errorf("failed to decode plan payload: %w", err)
	}

	return &plan.HistoryEntry{
		ID:      model.ID,
		OwnerID: model.OwnerID,
		Title:   model.Title,
		Plan:    generated,
		Macros: plan.Macros{
			Calories: model.MacroCalories,
			Protein:  model.MacroProtein,
			Carbs:    model.MacroCarbs,
			Fats:     model.MacroFats,
		},
		CreatedAt: model.CreatedAt,
	}, nil
}

// Package plan provides the application layer for diet plan generation
// and history management, implementing the inbound PlanService port.
package plan

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartdiet/v1/internal/domain/plan"
	"github.com/smartdiet/v1/internal/infrastructure/monitoring"
	"github.com/smartdiet/v1/internal/ports/inbound"
	"github.com/smartdiet/v1/internal/ports/outbound"
	apperrors "github.com/smartdiet/v1/pkg/errors"
)

// PlanService implements the plan use cases
type PlanService struct {
	repo    outbound.PlanRepository
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(
	repo outbound.PlanRepository,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) inbound.PlanService {
	return &PlanService{
		repo:    repo,
		metrics: metrics,
		logger:  logger.Named("plan-service"),
	}
}

// GeneratePlan normalizes the intake, assembles a plan and persists it as
// a new history entry for the caller. No fallback plan is ever
// substituted: any validation or storage failure propagates.
func (s *PlanService) GeneratePlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*inbound.PlanEntryDTO, error) {
	s.logger.Info("Generating diet plan",
		zap.String("owner_id", cmd.OwnerID),
		zap.String("diet_type", cmd.DietType),
	)

	profile, err := buildProfile(cmd)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	generated, err := plan.Assemble(profile)
	if err != nil {
		if plan.IsValidation(err) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		return nil, apperrors.Wrap(err, "failed to assemble plan")
	}

	entry, err := plan.NewHistoryEntry(cmd.OwnerID, generated)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("caller identity required")
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.metrics.RecordStoreOperation("save", "error")
		return nil, apperrors.NewStoreUnavailableError("save plan", err)
	}

	s.metrics.RecordStoreOperation("save", "success")
	s.metrics.RecordPlanGenerated(entry.Title)

	s.logger.Info("Diet plan saved",
		zap.String("entry_id", entry.ID.String()),
		zap.String("title", entry.Title),
		zap.Int("calories_per_day", entry.Plan.CaloriesPerDay),
	)

	return entryToDTO(entry), nil
}

// ListPlans returns the caller's history, newest first.
func (s *PlanService) ListPlans(ctx context.Context, ownerID string) ([]inbound.PlanEntryDTO, error) {
	entries, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.metrics.RecordStoreOperation("list", "error")
		return nil, apperrors.NewStoreUnavailableError("list plans", err)
	}

	s.metrics.RecordStoreOperation("list", "success")

	dtos := make([]inbound.PlanEntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = *entryToDTO(entry)
	}
	return dtos, nil
}

// DeletePlan removes one of the caller's entries. A missing entry and an
// entry owned by someone else produce the same not-found error.
func (s *PlanService) DeletePlan(ctx context.Context, ownerID string, entryID uuid.UUID) error {
	err := s.repo.DeleteByOwner(ctx, ownerID, entryID)
	if err != nil {
		if errors.Is(err, plan.ErrEntryNotFound) {
			s.metrics.RecordStoreOperation("delete", "not_found")
			return apperrors.NewPlanNotFoundError(entryID.String())
		}
		s.metrics.RecordStoreOperation("delete", "error")
		return apperrors.NewStoreUnavailableError("delete plan", err)
	}

	s.metrics.RecordStoreOperation("delete", "success")

	s.logger.Info("Diet plan deleted",
		zap.String("owner_id", ownerID),
		zap.String("entry_id", entryID.String()),
	)

	return nil
}

// buildProfile maps the raw command onto a draft and normalizes it.
func buildProfile(cmd inbound.GeneratePlanCommand) (*plan.UserProfile, error) {
	draft := plan.ProfileDraft{
		Age:             cmd.Age,
		Gender:          plan.Gender(cmd.Gender),
		HeightCM:        cmd.HeightCM,
		WeightKG:        cmd.WeightKG,
		ActivityLevel:   plan.ActivityLevel(cmd.ActivityLevel),
		DietType:        plan.DietType(cmd.DietType),
		MeatPreferences: cmd.MeatPreferences,
	}
	for _, c := range cmd.Conditions {
		draft.Conditions = append(draft.Conditions, plan.ConditionTag(c))
	}
	for _, e := range cmd.Exclusions {
		draft.Exclusions = append(draft.Exclusions, plan.ExclusionTag(e))
	}
	return draft.Build()
}

func entryToDTO(entry *plan.HistoryEntry) *inbound.PlanEntryDTO {
	return &inbound.PlanEntryDTO{
		ID:        entry.ID,
		OwnerID:   entry.OwnerID,
		Title:     entry.Title,
		Plan:      entry.Plan,
		Macros:    entry.Macros,
		CreatedAt: entry.CreatedAt,
	}
}

// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartdiet/v1/internal/infrastructure/http/middleware"
	"github.com/smartdiet/v1/internal/ports/inbound"
	apperrors "github.com/smartdiet/v1/pkg/errors"
)

// PlanAPIHandlers handles diet plan REST API requests
type PlanAPIHandlers struct {
	planService inbound.PlanService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewPlanAPIHandlers creates a new plan API handlers instance
func NewPlanAPIHandlers(planService inbound.PlanService, logger *zap.Logger) *PlanAPIHandlers {
	return &PlanAPIHandlers{
		planService: planService,
		validate:    validator.New(),
		logger:      logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// GeneratePlanRequest is the intake payload. The plan itself is always
// computed server-side from these fields; a client-supplied plan envelope
// is never trusted.
type GeneratePlanRequest struct {
	Age             int      `json:"age" validate:"required,gt=0"`
	Gender          string   `json:"gender" validate:"required,oneof=male female"`
	HeightCM        float64  `json:"height_cm" validate:"required,gt=0"`
	WeightKG        float64  `json:"weight_kg" validate:"required,gt=0"`
	ActivityLevel   string   `json:"activity_level" validate:"required,oneof=sedentary light moderate active"`
	DietType        string   `json:"diet_type" validate:"required,oneof=veg eggitarian non_veg vegan"`
	Conditions      []string `json:"conditions" validate:"omitempty,dive,oneof=none diabetes hypertension thyroid pcod cholesterol uric_acid"`
	Exclusions      []string `json:"exclusions" validate:"omitempty,dive,oneof=onion garlic root_veg lactose chicken"`
	MeatPreferences []string `json:"meat_preferences"`
}

// GeneratePlan handles POST /api/v1/diet-plans
func (h *PlanAPIHandlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.NewUnauthorizedError(""))
		return
	}

	var req GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.NewBadRequestError("Invalid JSON payload"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, apperrors.NewValidationError(err.Error()))
		return
	}

	entry, err := h.planService.GeneratePlan(r.Context(), inbound.GeneratePlanCommand{
		OwnerID:         ownerID,
		Age:             req.Age,
		Gender:          req.Gender,
		HeightCM:        req.HeightCM,
		WeightKG:        req.WeightKG,
		ActivityLevel:   req.ActivityLevel,
		DietType:        req.DietType,
		Conditions:      req.Conditions,
		Exclusions:      req.Exclusions,
		MeatPreferences: req.MeatPreferences,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    entry,
		Message: "Diet plan generated",
	})
}

// ListPlans handles GET /api/v1/diet-plans
func (h *PlanAPIHandlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.NewUnauthorizedError(""))
		return
	}

	entries, err := h.planService.ListPlans(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    entries,
	})
}

// DeletePlan handles DELETE /api/v1/diet-plans/{id}
func (h *PlanAPIHandlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, apperrors.NewUnauthorizedError(""))
		return
	}

	// A malformed id cannot name an existing entry, so it reads as not
	// found rather than leaking id format expectations.
	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, apperrors.NewPlanNotFoundError(chi.URLParam(r, "id")))
		return
	}

	if err := h.planService.DeletePlan(r.Context(), ownerID, entryID); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Plan removed",
	})
}

// writeJSON writes a JSON response
func (h *PlanAPIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error onto the API envelope with the right status
func (h *PlanAPIHandlers) writeError(w http.ResponseWriter, err error) {
	appErr := apperrors.Wrap(err, "request failed")

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.Error(appErr))
	}

	h.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   appErr.Message,
		Message: appErr.Details,
	})
}

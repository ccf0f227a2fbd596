package plan

import "errors"

// Domain errors for profile normalization and plan generation

var (
	// Profile validation errors
	ErrInvalidAge           = errors.New("age must be greater than 0")
	ErrInvalidHeight        = errors.New("height_cm must be greater than 0")
	ErrInvalidWeight        = errors.New("weight_kg must be greater than 0")
	ErrUnknownGender        = errors.New("gender must be one of: male, female")
	ErrUnknownActivityLevel = errors.New("activity_level must be one of: sedentary, light, moderate, active")
	ErrUnknownDietType      = errors.New("diet_type must be one of: veg, eggitarian, non_veg, vegan")
	ErrUnknownCondition     = errors.New("conditions contains an unknown tag")
	ErrUnknownExclusion     = errors.New("exclusions contains an unknown tag")
	ErrConditionConflict    = errors.New("conditions cannot combine none with other tags")

	// History errors
	ErrMissingOwner  = errors.New("history entry requires an owner identity")
	ErrEntryNotFound = errors.New("plan entry not found")
)

// IsValidation reports whether err is one of the profile validation
// errors above. Callers use it to map domain failures to 400 responses.
func IsValidation(err error) bool {
	for _, domainErr := range []error{
		ErrInvalidAge,
		ErrInvalidHeight,
		ErrInvalidWeight,
		ErrUnknownGender,
		ErrUnknownActivityLevel,
		ErrUnknownDietType,
		ErrUnknownCondition,
		ErrUnknownExclusion,
		ErrConditionConflict,
	} {
		if errors.Is(err, domainErr) {
			return true
		}
	}
	return false
}

package plan

// Daily calorie targets are a coarse step function: a gender base plus a
// flat activity adjustment. Conditions affect the menu, never the target.

const (
	baseCaloriesMale   = 2000
	baseCaloriesFemale = 1800
)

var activityAdjustment = map[ActivityLevel]int{
	ActivitySedentary: 0,
	ActivityLight:     0,
	ActivityModerate:  400,
	ActivityActive:    700,
}

// DailyCalories computes the kcal/day target for a profile. The result is
// the unclamped sum of base and adjustment. An activity level outside the
// four known buckets is a validation error, not a default.
func DailyCalories(profile *UserProfile) (int, error) {
	adjustment, ok := activityAdjustment[profile.ActivityLevel()]
	if !ok {
		return 0, ErrUnknownActivityLevel
	}

	base := baseCaloriesFemale
	if profile.Gender() == GenderMale {
		base = baseCaloriesMale
	}

	return base + adjustment, nil
}

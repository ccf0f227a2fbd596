package plan

// Macros is the display summary attached to a plan. CaloriesPerDay on the
// plan is authoritative; the calorie value here duplicates it for listing.
type Macros struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fats     string `json:"fats"`
}

// GeneratedPlan is the immutable output of plan generation. It is a pure
// function of the profile at generation time; later edits require
// regenerating, never mutating.
type GeneratedPlan struct {
	Title          string     `json:"title"`
	CaloriesPerDay int        `json:"caloriesPerDay"`
	Macros         Macros     `json:"macros"`
	Warnings       string     `json:"warnings"`
	Meals          []MealSlot `json:"meals"`
}

// Plan titles, keyed off the condition set.
const (
	TitleVitality         = "Vitality Protocol"
	TitleMetabolicSupport = "Metabolic Support Protocol"
	TitleTherapeutic      = "Therapeutic Bio-Plan"
)

// Warning strings attached to a plan.
const (
	WarningSattvic  = "Sattvic Mode Active"
	WarningStandard = "Standard Optimization"
)

// Assemble combines the calorie model and meal selector into a complete
// plan. It propagates any computation failure as-is; there is no partial
// or fallback plan.
func Assemble(profile *UserProfile) (*GeneratedPlan, error) {
	calories, err := DailyCalories(profile)
	if err != nil {
		return nil, err
	}

	title := TitleTherapeutic
	switch {
	case profile.IsHealthy():
		title = TitleVitality
	case profile.HasCondition(ConditionThyroid):
		// Thyroid takes precedence over any other non-empty condition set.
		title = TitleMetabolicSupport
	}

	warnings := WarningStandard
	if profile.Excludes(ExclusionOnion) {
		warnings = WarningSattvic
	}

	return &GeneratedPlan{
		Title:          title,
		CaloriesPerDay: calories,
		Macros: Macros{
			Calories: calories,
			Protein:  "High",
			Carbs:    "Moderate",
			Fats:     "Low",
		},
		Warnings: warnings,
		Meals:    SelectMeals(profile),
	}, nil
}

package plan

// Meal selection is a priority-ordered decision list per slot: the first
// rule whose predicate matches the profile wins, and every table ends in
// a catch-all, so selection is a total function of the profile.

// MealSlot is one of the four fixed positions in a daily plan.
type MealSlot struct {
	Slot        string   `json:"slot"`
	Time        string   `json:"time"`
	Dish        string   `json:"dish"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ThyroidSafe bool     `json:"thyroidSafe"`
}

// Slot names, in the fixed order they appear in a plan.
const (
	SlotEarlyMorning = "Early Morning"
	SlotBreakfast    = "Breakfast"
	SlotLunch        = "Lunch"
	SlotDinner       = "Dinner"
)

type mealRule struct {
	when        func(*UserProfile) bool
	dish        string
	description string
}

func always(*UserProfile) bool { return true }

var earlyMorningRules = []mealRule{
	{
		when:        (*UserProfile).IsVegetarian,
		dish:        "Methi Water + Soaked Almonds",
		description: "Metabolic kickstart. Cortisol regulation.",
	},
	{
		when:        always,
		dish:        "Methi Water + Boiled Egg White",
		description: "Metabolic kickstart. Cortisol regulation.",
	},
}

var breakfastRules = []mealRule{
	{
		when: func(p *UserProfile) bool {
			return p.DietType() == DietNonVeg && !p.Excludes(ExclusionChicken)
		},
		dish:        "Chicken Salami Sandwich",
		description: "High protein, low glycemic index energy source.",
	},
	{
		when:        always,
		dish:        "Moong Dal Chilla & Chutney",
		description: "High protein, low glycemic index energy source.",
	},
}

var lunchRules = []mealRule{
	{
		when: func(p *UserProfile) bool {
			return p.HasCondition(ConditionHypertension)
		},
		dish:        "2 Roti (Bran) + Palak Paneer + Salad",
		description: "Low oil preparation for heart health.",
	},
	{
		when:        always,
		dish:        "2 Roti (Bran) + Palak Paneer + Salad",
		description: "Balanced macronutrient profile.",
	},
}

var dinnerRules = []mealRule{
	{
		when: func(p *UserProfile) bool {
			return p.Excludes(ExclusionLactose)
		},
		dish:        "Grilled Tofu + Clear Soup",
		description: "Light digestion for optimized sleep cycles.",
	},
	{
		when:        always,
		dish:        "Bottle Gourd (Lauki) Sabzi + 1 Roti",
		description: "Light digestion for optimized sleep cycles.",
	},
}

func pick(rules []mealRule, profile *UserProfile) mealRule {
	for _, rule := range rules {
		if rule.when(profile) {
			return rule
		}
	}
	// Unreachable: every table ends in a catch-all.
	return rules[len(rules)-1]
}

// SelectMeals evaluates the rule tables and returns the four slots in
// fixed order. Output is byte-identical for identical profiles.
func SelectMeals(profile *UserProfile) []MealSlot {
	earlyMorning := pick(earlyMorningRules, profile)
	breakfast := pick(breakfastRules, profile)
	lunch := pick(lunchRules, profile)
	dinner := pick(dinnerRules, profile)

	return []MealSlot{
		{
			Slot:        SlotEarlyMorning,
			Time:        "7:00 AM",
			Dish:        earlyMorning.dish,
			Description: earlyMorning.description,
			Tags:        []string{},
			ThyroidSafe: profile.HasCondition(ConditionThyroid),
		},
		{
			Slot:        SlotBreakfast,
			Time:        "9:00 AM",
			Dish:        breakfast.dish,
			Description: breakfast.description,
			Tags:        []string{"High Protein", "Gluten Free"},
		},
		{
			Slot:        SlotLunch,
			Time:        "1:30 PM",
			Dish:        lunch.dish,
			Description: lunch.description,
			Tags:        []string{"Fiber Rich", "Iron Boost"},
		},
		{
			Slot:        SlotDinner,
			Time:        "8:00 PM",
			Dish:        dinner.dish,
			Description: dinner.description,
			Tags:        []string{"Light", "Detox"},
		},
	}
}

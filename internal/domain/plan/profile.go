// Package plan contains the core domain logic for diet plan generation.
// Everything in this package is pure computation: a normalized profile in,
// a deterministic plan out. Persistence and transport live elsewhere.
package plan

import (
	"sort"
)

// Gender is the biological profile attribute the calorie model keys on.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel is one of four discrete activity buckets.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// ConditionTag marks a diagnosed medical condition used for menu filtering.
type ConditionTag string

const (
	ConditionNone         ConditionTag = "none"
	ConditionDiabetes     ConditionTag = "diabetes"
	ConditionHypertension ConditionTag = "hypertension"
	ConditionThyroid      ConditionTag = "thyroid"
	ConditionPCOD         ConditionTag = "pcod"
	ConditionCholesterol  ConditionTag = "cholesterol"
	ConditionUricAcid     ConditionTag = "uric_acid"
)

// DietType classifies the user's dietary pattern.
type DietType string

const (
	DietVeg        DietType = "veg"
	DietEggitarian DietType = "eggitarian"
	DietNonVeg     DietType = "non_veg"
	DietVegan      DietType = "vegan"
)

// ExclusionTag marks an ingredient the menu must avoid or substitute.
type ExclusionTag string

const (
	ExclusionOnion   ExclusionTag = "onion"
	ExclusionGarlic  ExclusionTag = "garlic"
	ExclusionRootVeg ExclusionTag = "root_veg"
	ExclusionLactose ExclusionTag = "lactose"
	ExclusionChicken ExclusionTag = "chicken"
)

var knownConditions = map[ConditionTag]bool{
	ConditionNone:         true,
	ConditionDiabetes:     true,
	ConditionHypertension: true,
	ConditionThyroid:      true,
	ConditionPCOD:         true,
	ConditionCholesterol:  true,
	ConditionUricAcid:     true,
}

var knownExclusions = map[ExclusionTag]bool{
	ExclusionOnion:   true,
	ExclusionGarlic:  true,
	ExclusionRootVeg: true,
	ExclusionLactose: true,
	ExclusionChicken: true,
}

var knownActivityLevels = map[ActivityLevel]bool{
	ActivitySedentary: true,
	ActivityLight:     true,
	ActivityModerate:  true,
	ActivityActive:    true,
}

var knownDietTypes = map[DietType]bool{
	DietVeg:        true,
	DietEggitarian: true,
	DietNonVeg:     true,
	DietVegan:      true,
}

// UserProfile is the canonical, immutable input to plan generation.
// Construct one through ProfileDraft.Build; the zero value is not valid.
type UserProfile struct {
	age             int
	gender          Gender
	heightCM        float64
	weightKG        float64
	activityLevel   ActivityLevel
	dietType        DietType
	conditions      []ConditionTag
	exclusions      []ExclusionTag
	meatPreferences []string
}

// Age returns the user's age in years.
func (p *UserProfile) Age() int {
	return p.age
}

// Gender returns the user's gender.
func (p *UserProfile) Gender() Gender {
	return p.gender
}

// HeightCM returns the user's height in centimeters.
func (p *UserProfile) HeightCM() float64 {
	return p.heightCM
}

// WeightKG returns the user's weight in kilograms.
func (p *UserProfile) WeightKG() float64 {
	return p.weightKG
}

// ActivityLevel returns the user's activity bucket.
func (p *UserProfile) ActivityLevel() ActivityLevel {
	return p.activityLevel
}

// DietType returns the user's dietary pattern.
func (p *UserProfile) DietType() DietType {
	return p.dietType
}

// Conditions returns a copy of the condition set in sorted order.
func (p *UserProfile) Conditions() []ConditionTag {
	out := make([]ConditionTag, len(p.conditions))
	copy(out, p.conditions)
	return out
}

// Exclusions returns a copy of the exclusion set in sorted order.
func (p *UserProfile) Exclusions() []ExclusionTag {
	out := make([]ExclusionTag, len(p.exclusions))
	copy(out, p.exclusions)
	return out
}

// MeatPreferences returns a copy of the meat preference set. It is empty
// unless the diet type is non_veg.
func (p *UserProfile) MeatPreferences() []string {
	out := make([]string, len(p.meatPreferences))
	copy(out, p.meatPreferences)
	return out
}

// HasCondition reports whether the profile carries the given condition.
func (p *UserProfile) HasCondition(tag ConditionTag) bool {
	for _, c := range p.conditions {
		if c == tag {
			return true
		}
	}
	return false
}

// Excludes reports whether the profile excludes the given ingredient.
func (p *UserProfile) Excludes(tag ExclusionTag) bool {
	for _, e := range p.exclusions {
		if e == tag {
			return true
		}
	}
	return false
}

// IsHealthy reports whether the profile carries no condition beyond an
// explicit "none". Healthy profiles get the vitality plan title.
func (p *UserProfile) IsHealthy() bool {
	if len(p.conditions) == 0 {
		return true
	}
	return len(p.conditions) == 1 && p.conditions[0] == ConditionNone
}

// IsVegetarian reports whether the diet type forbids eggs and meat.
func (p *UserProfile) IsVegetarian() bool {
	return p.dietType == DietVeg || p.dietType == DietVegan
}

// ProfileDraft is the mutable intake-form counterpart of UserProfile.
// It is confined to the request boundary: handlers populate a draft from
// the wire payload, and Build produces the immutable profile the rest of
// the pipeline sees.
type ProfileDraft struct {
	Age             int
	Gender          Gender
	HeightCM        float64
	WeightKG        float64
	ActivityLevel   ActivityLevel
	DietType        DietType
	Conditions      []ConditionTag
	Exclusions      []ExclusionTag
	MeatPreferences []string
}

// ToggleCondition adds or removes a condition, preserving the invariant
// that "none" never coexists with another tag: selecting "none" clears
// the set, selecting anything else clears "none".
func (d *ProfileDraft) ToggleCondition(tag ConditionTag) {
	if tag == ConditionNone {
		d.Conditions = []ConditionTag{ConditionNone}
		return
	}

	kept := d.Conditions[:0]
	removed := false
	for _, c := range d.Conditions {
		switch c {
		case ConditionNone:
			// cleared by selecting a real condition
		case tag:
			removed = true
		default:
			kept = append(kept, c)
		}
	}
	d.Conditions = kept
	if !removed {
		d.Conditions = append(d.Conditions, tag)
	}
}

// ToggleExclusion adds or removes an ingredient exclusion.
func (d *ProfileDraft) ToggleExclusion(tag ExclusionTag) {
	for i, e := range d.Exclusions {
		if e == tag {
			d.Exclusions = append(d.Exclusions[:i], d.Exclusions[i+1:]...)
			return
		}
	}
	d.Exclusions = append(d.Exclusions, tag)
}

// Build validates and normalizes the draft into a canonical UserProfile.
// Set fields are deduplicated and sorted so identical intakes produce
// byte-identical profiles regardless of input order.
func (d *ProfileDraft) Build() (*UserProfile, error) {
	if d.Age <= 0 {
		return nil, ErrInvalidAge
	}
	if d.HeightCM <= 0 {
		return nil, ErrInvalidHeight
	}
	if d.WeightKG <= 0 {
		return nil, ErrInvalidWeight
	}
	if d.Gender != GenderMale && d.Gender != GenderFemale {
		return nil, ErrUnknownGender
	}
	if !knownActivityLevels[d.ActivityLevel] {
		return nil, ErrUnknownActivityLevel
	}
	if !knownDietTypes[d.DietType] {
		return nil, ErrUnknownDietType
	}

	conditions, err := normalizeConditions(d.Conditions)
	if err != nil {
		return nil, err
	}

	exclusions, err := normalizeExclusions(d.Exclusions)
	if err != nil {
		return nil, err
	}

	// Meat preferences are only meaningful for non-veg diets.
	var meats []string
	if d.DietType == DietNonVeg {
		meats = dedupeStrings(d.MeatPreferences)
	}

	return &UserProfile{
		age:             d.Age,
		gender:          d.Gender,
		heightCM:        d.HeightCM,
		weightKG:        d.WeightKG,
		activityLevel:   d.ActivityLevel,
		dietType:        d.DietType,
		conditions:      conditions,
		exclusions:      exclusions,
		meatPreferences: meats,
	}, nil
}

func normalizeConditions(tags []ConditionTag) ([]ConditionTag, error) {
	seen := make(map[ConditionTag]bool, len(tags))
	out := make([]ConditionTag, 0, len(tags))
	for _, tag := range tags {
		if !knownConditions[tag] {
			return nil, ErrUnknownCondition
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if seen[ConditionNone] && len(out) > 1 {
		return nil, ErrConditionConflict
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func normalizeExclusions(tags []ExclusionTag) ([]ExclusionTag, error) {
	seen := make(map[ExclusionTag]bool, len(tags))
	out := make([]ExclusionTag, 0, len(tags))
	for _, tag := range tags {
		if !knownExclusions[tag] {
			return nil, ErrUnknownExclusion
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ProfileTestSuite provides a test suite for profile normalization
type ProfileTestSuite struct {
	suite.Suite
}

func validDraft() ProfileDraft {
	return ProfileDraft{
		Age:           32,
		Gender:        GenderMale,
		HeightCM:      176,
		WeightKG:      74,
		ActivityLevel: ActivitySedentary,
		DietType:      DietVeg,
	}
}

func (suite *ProfileTestSuite) TestBuildValidation() {
	suite.Run("ValidDraft_ShouldBuildSuccessfully", func() {
		draft := validDraft()

		profile, err := draft.Build()

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), profile)
		assert.Equal(suite.T(), 32, profile.Age())
		assert.Equal(suite.T(), GenderMale, profile.Gender())
		assert.Equal(suite.T(), DietVeg, profile.DietType())
		assert.Empty(suite.T(), profile.Conditions())
	})

	suite.Run("ZeroAge_ShouldReturnError", func() {
		draft := validDraft()
		draft.Age = 0

		profile, err := draft.Build()

		assert.Nil(suite.T(), profile)
		assert.ErrorIs(suite.T(), err, ErrInvalidAge)
	})

	suite.Run("NegativeHeight_ShouldReturnError", func() {
		draft := validDraft()
		draft.HeightCM = -170

		_, err := draft.Build()

		assert.ErrorIs(suite.T(), err, ErrInvalidHeight)
	})

	suite.Run("MissingWeight_ShouldReturnError", func() {
		draft := validDraft()
		draft.WeightKG = 0

		_, err := draft.Build()

		assert.ErrorIs(suite.T(), err, ErrInvalidWeight)
	})

	suite.Run("UnknownGender_ShouldReturnError", func() {
		draft := validDraft()
		draft.Gender = "other"

		_, err := draft.Build()

		assert.ErrorIs(suite.T(), err, ErrUnknownGender)
	})

	suite.Run("UnknownActivityLevel_ShouldReturnError", func() {
		draft := validDraft()
		draft.ActivityLevel = "very_active"

		_, err := draft.Build()

		assert.ErrorIs(suite.T(), err, ErrUnknownActivityLevel)
		assert.True(suite.T(), IsValidation(err))
	})

	suite.Run("UnknownDietType_ShouldReturnError", func() {
		draft := validDraft()
		draft.DietType = "pescatarian"

		_, err := draft.Build()

		assert.ErrorIs(suite.T(), err, ErrUnknownDietType)
	})

	suite.Run("UnknownConditionTag_ShouldReturnError", func() {
		draft := validDraft()
		draft.Conditions = []ConditionTag{"asthma"}

		_, err := draft.Build()

		assert.ErrorIs(suite.T(), err, ErrUnknownCondition)
	})

	suite.Run("NoneCombinedWithCondition_ShouldReturnError", func() {
		draft := validDraft()
		draft.Conditions = []ConditionTag{ConditionNone, ConditionDiabetes}

		_, err := draft.Build()

		assert.ErrorIs(suite.T(), err, ErrConditionConflict)
	})
}

func (suite *ProfileTestSuite) TestNormalization() {
	suite.Run("DuplicateTags_ShouldDeduplicate", func() {
		draft := validDraft()
		draft.Conditions = []ConditionTag{ConditionThyroid, ConditionDiabetes, ConditionThyroid}
		draft.Exclusions = []ExclusionTag{ExclusionOnion, ExclusionOnion}

		profile, err := draft.Build()

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), []ConditionTag{ConditionDiabetes, ConditionThyroid}, profile.Conditions())
		assert.Equal(suite.T(), []ExclusionTag{ExclusionOnion}, profile.Exclusions())
	})

	suite.Run("TagOrder_ShouldNotMatter", func() {
		first := validDraft()
		first.Conditions = []ConditionTag{ConditionThyroid, ConditionPCOD}

		second := validDraft()
		second.Conditions = []ConditionTag{ConditionPCOD, ConditionThyroid}

		a, err := first.Build()
		require.NoError(suite.T(), err)
		b, err := second.Build()
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), a.Conditions(), b.Conditions())
	})

	suite.Run("MeatPreferences_DroppedUnlessNonVeg", func() {
		draft := validDraft()
		draft.DietType = DietVeg
		draft.MeatPreferences = []string{"Chicken", "Fish"}

		profile, err := draft.Build()

		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), profile.MeatPreferences())
	})

	suite.Run("MeatPreferences_KeptForNonVeg", func() {
		draft := validDraft()
		draft.DietType = DietNonVeg
		draft.MeatPreferences = []string{"Fish", "Chicken", "Fish"}

		profile, err := draft.Build()

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), []string{"Chicken", "Fish"}, profile.MeatPreferences())
	})
}

func (suite *ProfileTestSuite) TestToggleCondition() {
	suite.Run("SelectingNone_ShouldClearOthers", func() {
		draft := validDraft()
		draft.ToggleCondition(ConditionDiabetes)
		draft.ToggleCondition(ConditionThyroid)

		draft.ToggleCondition(ConditionNone)

		assert.Equal(suite.T(), []ConditionTag{ConditionNone}, draft.Conditions)
	})

	suite.Run("SelectingCondition_ShouldClearNone", func() {
		draft := validDraft()
		draft.ToggleCondition(ConditionNone)

		draft.ToggleCondition(ConditionDiabetes)

		assert.Equal(suite.T(), []ConditionTag{ConditionDiabetes}, draft.Conditions)
	})

	suite.Run("SecondToggle_ShouldRemove", func() {
		draft := validDraft()
		draft.ToggleCondition(ConditionPCOD)
		draft.ToggleCondition(ConditionPCOD)

		assert.Empty(suite.T(), draft.Conditions)
	})

	suite.Run("AnyToggleSequence_NeverCombinesNoneWithOthers", func() {
		tags := []ConditionTag{
			ConditionNone, ConditionDiabetes, ConditionNone, ConditionThyroid,
			ConditionHypertension, ConditionNone, ConditionUricAcid, ConditionDiabetes,
			ConditionNone, ConditionCholesterol, ConditionPCOD, ConditionNone,
		}

		draft := validDraft()
		for _, tag := range tags {
			draft.ToggleCondition(tag)

			hasNone := false
			for _, c := range draft.Conditions {
				if c == ConditionNone {
					hasNone = true
				}
			}
			if hasNone {
				assert.Len(suite.T(), draft.Conditions, 1)
			}
		}
	})
}

func (suite *ProfileTestSuite) TestImmutability() {
	suite.Run("MutatingGetterResults_ShouldNotAffectProfile", func() {
		draft := validDraft()
		draft.Conditions = []ConditionTag{ConditionDiabetes}

		profile, err := draft.Build()
		require.NoError(suite.T(), err)

		conditions := profile.Conditions()
		conditions[0] = ConditionThyroid

		assert.Equal(suite.T(), []ConditionTag{ConditionDiabetes}, profile.Conditions())
		assert.True(suite.T(), profile.HasCondition(ConditionDiabetes))
		assert.False(suite.T(), profile.HasCondition(ConditionThyroid))
	})
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileTestSuite))
}

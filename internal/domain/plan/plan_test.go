package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AssemblerTestSuite struct {
	suite.Suite
}

func (suite *AssemblerTestSuite) assemble(mutate func(*ProfileDraft)) *GeneratedPlan {
	draft := validDraft()
	if mutate != nil {
		mutate(&draft)
	}
	profile, err := draft.Build()
	require.NoError(suite.T(), err)

	generated, err := Assemble(profile)
	require.NoError(suite.T(), err)
	return generated
}

func (suite *AssemblerTestSuite) TestTitles() {
	suite.Run("NoConditions_GetsVitalityProtocol", func() {
		generated := suite.assemble(nil)

		assert.Equal(suite.T(), TitleVitality, generated.Title)
	})

	suite.Run("ExplicitNone_GetsVitalityProtocol", func() {
		generated := suite.assemble(func(d *ProfileDraft) {
			d.Conditions = []ConditionTag{ConditionNone}
		})

		assert.Equal(suite.T(), TitleVitality, generated.Title)
	})

	suite.Run("Thyroid_GetsMetabolicSupport", func() {
		generated := suite.assemble(func(d *ProfileDraft) {
			d.Conditions = []ConditionTag{ConditionThyroid}
		})

		assert.Equal(suite.T(), TitleMetabolicSupport, generated.Title)
	})

	suite.Run("ThyroidAmongOthers_StillMetabolicSupport", func() {
		generated := suite.assemble(func(d *ProfileDraft) {
			d.Conditions = []ConditionTag{ConditionDiabetes, ConditionThyroid, ConditionPCOD}
		})

		assert.Equal(suite.T(), TitleMetabolicSupport, generated.Title)
	})

	suite.Run("OtherCondition_GetsTherapeutic", func() {
		generated := suite.assemble(func(d *ProfileDraft) {
			d.Conditions = []ConditionTag{ConditionDiabetes}
		})

		assert.Equal(suite.T(), TitleTherapeutic, generated.Title)
	})
}

func (suite *AssemblerTestSuite) TestWarnings() {
	suite.Run("OnionExcluded_GetsSattvicMode", func() {
		generated := suite.assemble(func(d *ProfileDraft) {
			d.Exclusions = []ExclusionTag{ExclusionOnion}
		})

		assert.Equal(suite.T(), WarningSattvic, generated.Warnings)
	})

	suite.Run("Default_GetsStandardOptimization", func() {
		generated := suite.assemble(nil)

		assert.Equal(suite.T(), WarningStandard, generated.Warnings)
	})
}

func (suite *AssemblerTestSuite) TestMacrosSummary() {
	generated := suite.assemble(func(d *ProfileDraft) {
		d.Gender = GenderMale
		d.ActivityLevel = ActivityActive
	})

	assert.Equal(suite.T(), 2700, generated.CaloriesPerDay)
	assert.Equal(suite.T(), generated.CaloriesPerDay, generated.Macros.Calories)
	assert.Equal(suite.T(), "High", generated.Macros.Protein)
	assert.Equal(suite.T(), "Moderate", generated.Macros.Carbs)
	assert.Equal(suite.T(), "Low", generated.Macros.Fats)
}

func (suite *AssemblerTestSuite) TestDeterminism() {
	// Identical profiles must serialize to byte-identical plans.
	build := func() *GeneratedPlan {
		return suite.assemble(func(d *ProfileDraft) {
			d.DietType = DietNonVeg
			d.Conditions = []ConditionTag{ConditionHypertension, ConditionCholesterol}
			d.Exclusions = []ExclusionTag{ExclusionOnion, ExclusionGarlic}
		})
	}

	first, err := json.Marshal(build())
	require.NoError(suite.T(), err)
	second, err := json.Marshal(build())
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), first, second)
}

func TestAssemblerTestSuite(t *testing.T) {
	suite.Run(t, new(AssemblerTestSuite))
}

package plan

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HistoryEntryTestSuite struct {
	suite.Suite
}

func (suite *HistoryEntryTestSuite) TestNewHistoryEntry() {
	suite.Run("ValidOwner_ShouldCreateEntry", func() {
		draft := validDraft()
		profile, err := draft.Build()
		require.NoError(suite.T(), err)
		generated, err := Assemble(profile)
		require.NoError(suite.T(), err)

		entry, err := NewHistoryEntry("user-42", generated)

		require.NoError(suite.T(), err)
		assert.NotEqual(suite.T(), uuid.Nil, entry.ID)
		assert.Equal(suite.T(), "user-42", entry.OwnerID)
		assert.Equal(suite.T(), generated.Title, entry.Title)
		assert.Equal(suite.T(), generated.Macros, entry.Macros)
		assert.False(suite.T(), entry.CreatedAt.IsZero())
	})

	suite.Run("EmptyOwner_ShouldReturnError", func() {
		entry, err := NewHistoryEntry("", &GeneratedPlan{Title: TitleVitality})

		assert.Nil(suite.T(), entry)
		assert.ErrorIs(suite.T(), err, ErrMissingOwner)
	})
}

func TestHistoryEntryTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryEntryTestSuite))
}

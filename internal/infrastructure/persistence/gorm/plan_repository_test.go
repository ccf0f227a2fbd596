package gorm_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smartdiet/v1/internal/domain/plan"
	gormrepo "github.com/smartdiet/v1/internal/infrastructure/persistence/gorm"
	"github.com/smartdiet/v1/internal/infrastructure/persistence/sqlite"
	"github.com/smartdiet/v1/internal/ports/outbound"
)

type GormPlanRepositoryTestSuite struct {
	suite.Suite
	repo outbound.PlanRepository
	ctx  context.Context
}

func (suite *GormPlanRepositoryTestSuite) SetupTest() {
	db, err := sqlite.SetupDatabase("", gormlogger.Silent)
	require.NoError(suite.T(), err)

	suite.repo = gormrepo.NewPlanRepository(db)
	suite.ctx = context.Background()
}

func (suite *GormPlanRepositoryTestSuite) newEntry(ownerID string, createdAt time.Time) *plan.HistoryEntry {
	draft := plan.ProfileDraft{
		Age:           30,
		Gender:        plan.GenderMale,
		HeightCM:      178,
		WeightKG:      76,
		ActivityLevel: plan.ActivitySedentary,
		DietType:      plan.DietVeg,
	}
	profile, err := draft.Build()
	require.NoError(suite.T(), err)
	generated, err := plan.Assemble(profile)
	require.NoError(suite.T(), err)

	entry, err := plan.NewHistoryEntry(ownerID, generated)
	require.NoError(suite.T(), err)
	entry.CreatedAt = createdAt
	return entry
}

func (suite *GormPlanRepositoryTestSuite) TestInsertAndFindByOwner() {
	base := time.Now().UTC().Truncate(time.Second)
	older := suite.newEntry("owner-a", base.Add(-time.Hour))
	newer := suite.newEntry("owner-a", base)
	other := suite.newEntry("owner-b", base)

	require.NoError(suite.T(), suite.repo.Insert(suite.ctx, older))
	require.NoError(suite.T(), suite.repo.Insert(suite.ctx, newer))
	require.NoError(suite.T(), suite.repo.Insert(suite.ctx, other))

	entries, err := suite.repo.FindByOwner(suite.ctx, "owner-a")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), entries, 2)
	assert.Equal(suite.T(), newer.ID, entries[0].ID)
	assert.Equal(suite.T(), older.ID, entries[1].ID)

	// The full plan payload survives the round trip.
	assert.Equal(suite.T(), plan.TitleVitality, entries[0].Title)
	assert.Equal(suite.T(), 2000, entries[0].Plan.CaloriesPerDay)
	assert.Len(suite.T(), entries[0].Plan.Meals, 4)
	assert.Equal(suite.T(), newer.Macros, entries[0].Macros)
}

func (suite *GormPlanRepositoryTestSuite) TestFindByOwner_Empty() {
	entries, err := suite.repo.FindByOwner(suite.ctx, "owner-x")

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), entries)
}

func (suite *GormPlanRepositoryTestSuite) TestDeleteByOwner() {
	entry := suite.newEntry("owner-a", time.Now().UTC())
	require.NoError(suite.T(), suite.repo.Insert(suite.ctx, entry))

	suite.Run("CrossOwner_ShouldReportNotFound", func() {
		err := suite.repo.DeleteByOwner(suite.ctx, "owner-b", entry.ID)

		assert.ErrorIs(suite.T(), err, plan.ErrEntryNotFound)
	})

	suite.Run("Owner_ShouldDelete", func() {
		require.NoError(suite.T(), suite.repo.DeleteByOwner(suite.ctx, "owner-a", entry.ID))

		entries, err := suite.repo.FindByOwner(suite.ctx, "owner-a")
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), entries)
	})

	suite.Run("SecondDelete_ShouldReportNotFound", func() {
		err := suite.repo.DeleteByOwner(suite.ctx, "owner-a", entry.ID)

		assert.ErrorIs(suite.T(), err, plan.ErrEntryNotFound)
	})

	suite.Run("UnknownEntry_ShouldReportNotFound", func() {
		err := suite.repo.DeleteByOwner(suite.ctx, "owner-a", uuid.New())

		assert.ErrorIs(suite.T(), err, plan.ErrEntryNotFound)
	})
}

func TestGormPlanRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormPlanRepositoryTestSuite))
}

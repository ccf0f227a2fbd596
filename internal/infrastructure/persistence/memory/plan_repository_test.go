package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet/v1/internal/domain/plan"
)

func newEntry(ownerID string, createdAt time.Time) *plan.HistoryEntry {
	return &plan.HistoryEntry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     plan.TitleVitality,
		CreatedAt: createdAt,
	}
}

func TestPlanRepository_FindByOwner(t *testing.T) {
	repo := NewPlanRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	older := newEntry("owner-a", base.Add(-time.Hour))
	newer := newEntry("owner-a", base)
	other := newEntry("owner-b", base)

	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))
	require.NoError(t, repo.Insert(ctx, other))

	entries, err := repo.FindByOwner(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)

	entries, err = repo.FindByOwner(ctx, "owner-c")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlanRepository_DeleteByOwner(t *testing.T) {
	repo := NewPlanRepository()
	ctx := context.Background()

	entry := newEntry("owner-a", time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, entry))

	// Cross-owner delete is indistinguishable from a missing entry.
	err := repo.DeleteByOwner(ctx, "owner-b", entry.ID)
	assert.ErrorIs(t, err, plan.ErrEntryNotFound)

	require.NoError(t, repo.DeleteByOwner(ctx, "owner-a", entry.ID))

	err = repo.DeleteByOwner(ctx, "owner-a", entry.ID)
	assert.ErrorIs(t, err, plan.ErrEntryNotFound)
}

func TestPlanRepository_CopiesOnRead(t *testing.T) {
	repo := NewPlanRepository()
	ctx := context.Background()

	entry := newEntry("owner-a", time.Now().UTC())
	entry.Plan.Meals = []plan.MealSlot{
		{Slot: plan.SlotBreakfast, Dish: "Moong Dal Chilla & Chutney", Tags: []string{"High Protein"}},
	}
	require.NoError(t, repo.Insert(ctx, entry))

	first, err := repo.FindByOwner(ctx, "owner-a")
	require.NoError(t, err)
	first[0].Title = "mutated"
	first[0].Plan.Meals[0].Dish = "mutated"
	first[0].Plan.Meals[0].Tags[0] = "mutated"

	second, err := repo.FindByOwner(ctx, "owner-a")
	require.NoError(t, err)
	assert.Equal(t, plan.TitleVitality, second[0].Title)
	assert.Equal(t, "Moong Dal Chilla & Chutney", second[0].Plan.Meals[0].Dish)
	assert.Equal(t, []string{"High Protein"}, second[0].Plan.Meals[0].Tags)
}

func TestPlanRepository_CopiesOnWrite(t *testing.T) {
	repo := NewPlanRepository()
	ctx := context.Background()

	entry := newEntry("owner-a", time.Now().UTC())
	entry.Plan.Meals = []plan.MealSlot{
		{Slot: plan.SlotDinner, Dish: "Bottle Gourd (Lauki) Sabzi + 1 Roti", Tags: []string{"Light"}},
	}
	require.NoError(t, repo.Insert(ctx, entry))

	// Mutating the inserted entry afterwards must not reach the store.
	entry.Plan.Meals[0].Dish = "mutated"
	entry.Plan.Meals[0].Tags[0] = "mutated"

	stored, err := repo.FindByOwner(ctx, "owner-a")
	require.NoError(t, err)
	assert.Equal(t, "Bottle Gourd (Lauki) Sabzi + 1 Roti", stored[0].Plan.Meals[0].Dish)
	assert.Equal(t, []string{"Light"}, stored[0].Plan.Meals[0].Tags)
}

package repository

import (
	"context"
	"testing"
	"time"

	"travelmeetup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTravelPlanRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewTravelPlanRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	plan := seedPlan(alice.ID)
	plan.Notes = "first trip"
	require.NoError(t, repo.Create(ctx, plan))
	require.NotZero(t, plan.ID)

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.City)
	assert.Equal(t, "first trip", got.Notes)
	assert.True(t, got.IsPublic)

	got.Notes = "rescheduled"
	got.StartDate = date(2026, 10, 1)
	got.EndDate = date(2026, 10, 8)
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "rescheduled", updated.Notes)
	assert.Equal(t, date(2026, 10, 1), updated.StartDate.UTC().Truncate(24*time.Hour))

	require.NoError(t, repo.Delete(ctx, plan.ID))
	_, err = repo.GetByID(ctx, plan.ID)
	assert.True(t, models.IsNotFound(err))

	err = repo.Delete(ctx, plan.ID)
	assert.True(t, models.IsNotFound(err))
}

func TestTravelPlanRepository_PrivateFlagPersists(t *testing.T) {
	db := newTestDB(t)
	repo := NewTravelPlanRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	private := seedPlan(alice.ID)
	private.IsPublic = false
	require.NoError(t, repo.Create(ctx, private))

	got, err := repo.GetByID(ctx, private.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublic, "a private plan stays private through the insert")
}

func TestTravelPlanRepository_ForeignKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewTravelPlanRepository(db)
	ctx := context.Background()

	orphan := seedPlan(12345)
	intErr, ok := models.IsIntegrityViolation(repo.Create(ctx, orphan))
	require.True(t, ok, "plan for unknown user must be rejected")
	assert.Equal(t, models.IntegrityForeignKey, intErr.Kind)
}

func TestTravelPlanRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTravelPlanRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	later := seedPlan(alice.ID)
	later.StartDate = date(2026, 12, 1)
	later.EndDate = date(2026, 12, 5)
	require.NoError(t, repo.Create(ctx, later))

	earlier := seedPlan(alice.ID)
	require.NoError(t, repo.Create(ctx, earlier))

	require.NoError(t, repo.Create(ctx, seedPlan(bob.ID)))

	plans, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, earlier.ID, plans[0].ID, "sorted by start date")
	assert.Equal(t, later.ID, plans[1].ID)
}

func TestTravelPlanRepository_ListPublicByCity(t *testing.T) {
	db := newTestDB(t)
	repo := NewTravelPlanRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, seedPlan(alice.ID)))

	private := seedPlan(bob.ID)
	private.IsPublic = false
	require.NoError(t, repo.Create(ctx, private))

	elsewhere := seedPlan(bob.ID)
	elsewhere.City = "Porto"
	require.NoError(t, repo.Create(ctx, elsewhere))

	plans, err := repo.ListPublicByCity(ctx, "Lisbon", 20, 0)
	require.NoError(t, err)
	require.Len(t, plans, 1, "private and other-city plans are excluded")
	assert.Equal(t, alice.ID, plans[0].UserID)
}

func TestTravelPlanRepository_FindOverlapping(t *testing.T) {
	db := newTestDB(t)
	repo := NewTravelPlanRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	mk := func(userID uint, start, end time.Time, public bool) *models.TravelPlan {
		p := seedPlan(userID)
		p.StartDate = start
		p.EndDate = end
		p.IsPublic = public
		require.NoError(t, repo.Create(ctx, p))
		return p
	}

	// Alice searches Sep 10-17.
	overlapping := mk(bob.ID, date(2026, 9, 15), date(2026, 9, 20), true)
	touching := mk(carol.ID, date(2026, 9, 17), date(2026, 9, 25), true)
	mk(bob.ID, date(2026, 9, 18), date(2026, 9, 25), true)   // starts after window
	mk(carol.ID, date(2026, 9, 1), date(2026, 9, 9), true)   // ends before window
	mk(carol.ID, date(2026, 9, 12), date(2026, 9, 14), false) // overlaps but private
	mk(alice.ID, date(2026, 9, 11), date(2026, 9, 16), true)  // searcher's own plan

	matches, err := repo.FindOverlapping(ctx, "Lisbon", date(2026, 9, 10), date(2026, 9, 17), alice.ID)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, overlapping.ID, matches[0].ID)
	assert.Equal(t, touching.ID, matches[1].ID, "a shared boundary day counts as overlap")
}

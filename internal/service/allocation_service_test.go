package service_test

import (
	"context"
	"testing"

	"github.com/navikt/fairrooms/internal/config"
	"github.com/navikt/fairrooms/internal/models"
	"github.com/navikt/fairrooms/internal/repository"
	"github.com/navikt/fairrooms/internal/repository/memory"
	"github.com/navikt/fairrooms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededService returns a service over an in-memory repository loaded
// with the default dataset
func seededService(t *testing.T) *service.AllocationService {
	t.Helper()

	repo := memory.NewRepository()
	svc := service.NewAllocationService(repo)

	seed, err := config.LoadSeed("")
	require.NoError(t, err)
	require.NoError(t, svc.SeedIfEmpty(context.Background(), seed.RoomModels(), seed.BookingModels()))

	return svc
}

func TestSeedIfEmpty(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	rooms, err := svc.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 6)

	bookings, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 9)

	// Seeding again must not clobber existing state
	require.NoError(t, svc.SeedIfEmpty(ctx, []*models.Room{{ID: "extra", Capacity: 1}}, nil))
	rooms, err = svc.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 6)
}

func TestGetFairness(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	t.Run("KnownRoom", func(t *testing.T) {
		// Lab A: capacity 30, historical 85, recent 12, bookings 28/25/30
		result, err := svc.GetFairness(ctx, "r1")
		require.NoError(t, err)

		assert.Equal(t, 3, result.BookingCount)
		assert.InDelta(t, 57.6, result.Score, 0.001)
	})

	t.Run("UnknownRoom", func(t *testing.T) {
		_, err := svc.GetFairness(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestFairnessReport(t *testing.T) {
	svc := seededService(t)

	report, err := svc.FairnessReport(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 6)

	// Report follows seeding order and every score is clamped
	assert.Equal(t, "r1", report[0].Room.ID)
	assert.Equal(t, "r6", report[5].Room.ID)
	for _, rf := range report {
		assert.GreaterOrEqual(t, rf.Fairness.Score, 0.0)
		assert.LessOrEqual(t, rf.Fairness.Score, 100.0)
	}
}

func TestSummary(t *testing.T) {
	svc := seededService(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9, summary.TotalBookings)
	assert.Greater(t, summary.AvgFairness, 0.0)
	assert.Greater(t, summary.AvgUtilization, 0.0)
}

func TestMoveBooking(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	var notified int
	svc.RegisterUpdateCallback(func() { notified++ })

	t.Run("MoveIgnoresCapacity", func(t *testing.T) {
		// b7 has attendance 150; Study Room A holds 15. Manual moves are
		// allowed to over-fill a room.
		bookings, err := svc.MoveBooking(ctx, "b7", "r4")
		require.NoError(t, err)

		var moved *models.Booking
		for _, b := range bookings {
			if b.ID == "b7" {
				moved = b
			}
		}
		require.NotNil(t, moved)
		assert.Equal(t, "r4", moved.RoomID)
		assert.Equal(t, 1, notified)
	})

	t.Run("MoveChangesScores", func(t *testing.T) {
		// 150 attendees in a 15-seat room pushes utilization into the
		// heavy tier.
		result, err := svc.GetFairness(ctx, "r4")
		require.NoError(t, err)
		assert.Equal(t, 40.0, result.Details.UtilizationScore)
	})

	t.Run("UnknownBooking", func(t *testing.T) {
		_, err := svc.MoveBooking(ctx, "missing", "r1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Equal(t, 1, notified, "failed move must not notify")
	})

	t.Run("UnknownRoom", func(t *testing.T) {
		_, err := svc.MoveBooking(ctx, "b1", "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestAutoOptimizeOnReferenceDataset(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	var notified int
	svc.RegisterUpdateCallback(func() { notified++ })

	before, err := svc.ListBookings(ctx)
	require.NoError(t, err)

	// On the reference dataset the two overused rooms' first bookings
	// (27 and 28 attendees) exceed both underused rooms' capacities
	// (25 and 15), so the pass changes nothing.
	after, moves, err := svc.AutoOptimize(ctx)
	require.NoError(t, err)

	assert.Empty(t, moves)
	assert.Equal(t, 0, notified, "a pass without moves must not notify")
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, *before[i], *after[i])
	}
}

func TestAutoOptimizeAppliesMoves(t *testing.T) {
	repo := memory.NewRepository()
	svc := service.NewAllocationService(repo)
	ctx := context.Background()

	rooms := []*models.Room{
		{ID: "a", Name: "Small Lab", Capacity: 20, Category: "Computer Lab", HistoricalUsage: 90, RecentBookings: 15},
		{ID: "b", Name: "Mid Lab", Capacity: 30, Category: "Computer Lab", HistoricalUsage: 80, RecentBookings: 12},
		{ID: "c", Name: "Hall", Capacity: 100, Category: "Auditorium", HistoricalUsage: 20, RecentBookings: 2},
		{ID: "d", Name: "Seminar", Capacity: 40, Category: "Conference Room", HistoricalUsage: 30, RecentBookings: 3},
	}
	bookings := []*models.Booking{
		{ID: "x1", RoomID: "a", Title: "Workshop", Attendance: 18, Duration: 2, TimeSlot: "09:00"},
		{ID: "x2", RoomID: "b", Title: "Lecture", Attendance: 28, Duration: 1, TimeSlot: "11:00"},
	}
	require.NoError(t, svc.SeedIfEmpty(ctx, rooms, bookings))

	var notified int
	svc.RegisterUpdateCallback(func() { notified++ })

	after, moves, err := svc.AutoOptimize(ctx)
	require.NoError(t, err)

	require.Len(t, moves, 2)
	assert.Equal(t, 1, notified)

	// The new assignment is persisted, not just returned
	stored, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "d", stored[0].RoomID)
	assert.Equal(t, "d", stored[1].RoomID)
	assert.Equal(t, stored[0].RoomID, after[0].RoomID)

	// Booking count and identities never change
	assert.Equal(t, "x1", stored[0].ID)
	assert.Equal(t, "Workshop", stored[0].Title)
}

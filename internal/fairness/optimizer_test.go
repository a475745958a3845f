package fairness_test

import (
	"testing"

	"github.com/navikt/fairrooms/internal/fairness"
	"github.com/navikt/fairrooms/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoOptimizeMovesFromOverusedRooms(t *testing.T) {
	// a and b score lowest, c and d highest; d is searched before c
	// because the underused slice keeps ascending score order.
	rooms := []*models.Room{
		{ID: "a", Capacity: 20, HistoricalUsage: 90, RecentBookings: 15},
		{ID: "b", Capacity: 30, HistoricalUsage: 80, RecentBookings: 12},
		{ID: "c", Capacity: 100, HistoricalUsage: 20, RecentBookings: 2},
		{ID: "d", Capacity: 40, HistoricalUsage: 30, RecentBookings: 3},
	}
	bookings := []*models.Booking{
		{ID: "x1", RoomID: "a", Title: "Workshop", Attendance: 18, Duration: 2, TimeSlot: "09:00"},
		{ID: "x2", RoomID: "b", Title: "Lecture", Attendance: 28, Duration: 1, TimeSlot: "11:00"},
	}

	next, moves := fairness.AutoOptimize(rooms, bookings)

	require.Len(t, moves, 2)
	assert.Equal(t, fairness.Move{BookingID: "x1", FromRoomID: "a", ToRoomID: "d"}, moves[0])
	assert.Equal(t, fairness.Move{BookingID: "x2", FromRoomID: "b", ToRoomID: "d"}, moves[1])

	require.Len(t, next, 2)
	assert.Equal(t, "d", next[0].RoomID)
	assert.Equal(t, "d", next[1].RoomID)

	// Only the room assignment changes; every other field survives intact
	assert.Equal(t, "x1", next[0].ID)
	assert.Equal(t, "Workshop", next[0].Title)
	assert.Equal(t, 18, next[0].Attendance)
	assert.Equal(t, 2.0, next[0].Duration)
	assert.Equal(t, "09:00", next[0].TimeSlot)

	// The input booking set is never mutated
	assert.Equal(t, "a", bookings[0].RoomID)
	assert.Equal(t, "b", bookings[1].RoomID)
}

func TestAutoOptimizeNoEligibleTarget(t *testing.T) {
	// Both overused rooms' first bookings exceed every underused room's
	// capacity, so the pass must leave the booking set identical.
	rooms := []*models.Room{
		{ID: "a", Capacity: 60, HistoricalUsage: 95, RecentBookings: 20},
		{ID: "b", Capacity: 55, HistoricalUsage: 90, RecentBookings: 18},
		{ID: "c", Capacity: 10, HistoricalUsage: 10, RecentBookings: 1},
		{ID: "d", Capacity: 20, HistoricalUsage: 15, RecentBookings: 2},
	}
	bookings := []*models.Booking{
		{ID: "x1", RoomID: "a", Attendance: 50},
		{ID: "x2", RoomID: "b", Attendance: 50},
	}

	next, moves := fairness.AutoOptimize(rooms, bookings)

	assert.Empty(t, moves)
	require.Len(t, next, len(bookings))
	for i := range bookings {
		assert.Equal(t, *bookings[i], *next[i])
	}
}

func TestAutoOptimizeSkipsEmptyOverusedRoom(t *testing.T) {
	rooms := []*models.Room{
		{ID: "a", Capacity: 20, HistoricalUsage: 100, RecentBookings: 20},
		{ID: "b", Capacity: 20, HistoricalUsage: 95, RecentBookings: 18},
		{ID: "c", Capacity: 50, HistoricalUsage: 10, RecentBookings: 1},
		{ID: "d", Capacity: 50, HistoricalUsage: 20, RecentBookings: 2},
	}
	// The lowest-scoring room has nothing to move
	bookings := []*models.Booking{
		{ID: "x1", RoomID: "b", Attendance: 15},
	}

	next, moves := fairness.AutoOptimize(rooms, bookings)

	require.Len(t, moves, 1)
	assert.Equal(t, "x1", moves[0].BookingID)
	assert.Len(t, next, 1)
}

func TestAutoOptimizeOverlappingSets(t *testing.T) {
	// With fewer than four rooms the overused and underused slices share
	// rooms. The pass runs without any guard: the middle room appears in
	// both sets, so a booking moved into it can immediately be picked up
	// again as that room's own candidate, yielding a move to itself.
	rooms := []*models.Room{
		{ID: "p", Capacity: 20, HistoricalUsage: 100, RecentBookings: 20},
		{ID: "q", Capacity: 30, HistoricalUsage: 50, RecentBookings: 5},
		{ID: "r", Capacity: 25, HistoricalUsage: 10, RecentBookings: 1},
	}
	bookings := []*models.Booking{
		{ID: "y1", RoomID: "p", Attendance: 18},
	}

	next, moves := fairness.AutoOptimize(rooms, bookings)

	require.Len(t, next, 1)
	assert.Equal(t, "q", next[0].RoomID)

	require.Len(t, moves, 2)
	assert.Equal(t, fairness.Move{BookingID: "y1", FromRoomID: "p", ToRoomID: "q"}, moves[0])
	// Second pass sees y1 in q (also an overused room) and reassigns it
	// in place.
	assert.Equal(t, fairness.Move{BookingID: "y1", FromRoomID: "q", ToRoomID: "q"}, moves[1])
}

func TestAutoOptimizeDecidesAgainstSnapshot(t *testing.T) {
	// Moving x1 into d would change d's score, but the second decision
	// must still be made against the pre-pass ranking: x2 also targets d.
	rooms := []*models.Room{
		{ID: "a", Capacity: 10, HistoricalUsage: 95, RecentBookings: 20},
		{ID: "b", Capacity: 10, HistoricalUsage: 90, RecentBookings: 18},
		{ID: "c", Capacity: 5, HistoricalUsage: 10, RecentBookings: 1},
		{ID: "d", Capacity: 10, HistoricalUsage: 20, RecentBookings: 2},
	}
	bookings := []*models.Booking{
		{ID: "x1", RoomID: "a", Attendance: 9},
		{ID: "x2", RoomID: "b", Attendance: 9},
	}

	_, moves := fairness.AutoOptimize(rooms, bookings)

	require.Len(t, moves, 2)
	assert.Equal(t, "d", moves[0].ToRoomID)
	assert.Equal(t, "d", moves[1].ToRoomID)
}

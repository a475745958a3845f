package fairness

import (
	"sort"

	"github.com/navikt/fairrooms/internal/models"
)

// extremeCount is how many rooms each end of the score ranking
// contributes to an optimization pass.
const extremeCount = 2

// Move records a single booking reassignment made by an optimization pass
type Move struct {
	BookingID  string `json:"booking_id"`
	FromRoomID string `json:"from_room_id"`
	ToRoomID   string `json:"to_room_id"`
}

// AutoOptimize runs one best-effort rebalancing pass and returns a new
// booking slice plus the moves it applied. The input is never mutated.
//
// The heuristic is deliberately not a solver: it scores every room once,
// takes the two lowest-scoring rooms as overused and the two highest as
// underused, and for each overused room moves its first booking (listing
// order) to the first underused room with enough capacity. At most one
// booking moves per overused room, and every decision is made against the
// score snapshot taken before the pass; it never re-scores between moves
// and never iterates to convergence.
//
// With fewer than four rooms the overused and underused sets overlap.
// That is the documented behavior, not a defect, so there is no guard.
func AutoOptimize(rooms []*models.Room, bookings []*models.Booking) ([]*models.Booking, []Move) {
	ranked := ScoreAll(rooms, bookings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fairness.Score < ranked[j].Fairness.Score
	})

	overused := ranked[:min(extremeCount, len(ranked))]
	underused := ranked[max(0, len(ranked)-extremeCount):]

	next := models.CloneBookings(bookings)
	var moves []Move

	for _, over := range overused {
		// First booking of the overused room, in listing order
		var candidate *models.Booking
		for _, b := range next {
			if b.RoomID == over.Room.ID {
				candidate = b
				break
			}
		}
		if candidate == nil {
			continue
		}

		// The underused slice is ordered ascending by score; the search
		// order follows the slice as taken, not a re-sort.
		for _, under := range underused {
			if under.Room.Fits(candidate.Attendance) {
				moves = append(moves, Move{
					BookingID:  candidate.ID,
					FromRoomID: candidate.RoomID,
					ToRoomID:   under.Room.ID,
				})
				candidate.RoomID = under.Room.ID
				break
			}
		}
	}

	return next, moves
}

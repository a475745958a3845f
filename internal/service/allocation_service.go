// Package service provides the business logic for fairness queries and
// booking reassignment.
package service

import (
	"context"
	"sync"

	"github.com/navikt/fairrooms/internal/fairness"
	"github.com/navikt/fairrooms/internal/models"
	"github.com/navikt/fairrooms/internal/repository"
)

// UpdateCallback is a function type for booking update callbacks
type UpdateCallback func()

// AllocationService provides fairness scoring, booking reassignment and
// the auto-optimization pass over a repository
type AllocationService struct {
	repo            repository.Repository
	updateCallbacks []UpdateCallback

	// Serializes mutations so a fairness read never observes a
	// half-applied optimization pass. Reads go straight to the
	// repository, which handles its own read locking.
	writeMu sync.Mutex
}

// NewAllocationService creates a new AllocationService with the given repository
func NewAllocationService(repo repository.Repository) *AllocationService {
	return &AllocationService{
		repo:            repo,
		updateCallbacks: make([]UpdateCallback, 0),
	}
}

// RegisterUpdateCallback registers a callback function to be called when
// the booking assignment changes
func (s *AllocationService) RegisterUpdateCallback(callback UpdateCallback) {
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

// notifyUpdate calls all registered callbacks
func (s *AllocationService) notifyUpdate() {
	for _, callback := range s.updateCallbacks {
		callback()
	}
}

// ListRooms returns a snapshot of all rooms in seeding order
func (s *AllocationService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.repo.ListRooms(ctx)
}

// ListBookings returns a snapshot of all bookings in listing order
func (s *AllocationService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.repo.ListBookings(ctx)
}

// GetRoom returns a single room by id
func (s *AllocationService) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	return s.repo.GetRoom(ctx, roomID)
}

// GetFairness computes the current fairness evaluation for one room.
// Returns repository.ErrNotFound for an unknown room id.
func (s *AllocationService) GetFairness(ctx context.Context, roomID string) (models.FairnessResult, error) {
	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return models.FairnessResult{}, err
	}

	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return models.FairnessResult{}, err
	}

	return fairness.Score(room, bookings), nil
}

// FairnessReport evaluates every room against the current booking set,
// in room seeding order
func (s *AllocationService) FairnessReport(ctx context.Context) ([]models.RoomFairness, error) {
	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	return fairness.ScoreAll(rooms, bookings), nil
}

// Summary returns dataset-wide aggregates for the status view
func (s *AllocationService) Summary(ctx context.Context) (models.Summary, error) {
	report, err := s.FairnessReport(ctx)
	if err != nil {
		return models.Summary{}, err
	}

	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return models.Summary{}, err
	}

	return fairness.Summarize(report, bookings), nil
}

// MoveBooking reassigns one booking to the target room and returns the
// updated booking set. No capacity check: a manual move into a room too
// small for the booking is allowed. Returns repository.ErrNotFound when
// either id is unknown, leaving the booking set untouched.
func (s *AllocationService) MoveBooking(ctx context.Context, bookingID, targetRoomID string) ([]*models.Booking, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.ReassignBooking(ctx, bookingID, targetRoomID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	s.notifyUpdate()
	return bookings, nil
}

// AutoOptimize runs one rebalancing pass over the current state and
// applies the resulting assignment. Returns the updated booking set and
// the moves that were made (possibly none).
func (s *AllocationService) AutoOptimize(ctx context.Context) ([]*models.Booking, []fairness.Move, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, nil, err
	}

	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, nil, err
	}

	next, moves := fairness.AutoOptimize(rooms, bookings)
	if err := s.repo.ReplaceBookings(ctx, next); err != nil {
		return nil, nil, err
	}

	if len(moves) > 0 {
		s.notifyUpdate()
	}
	return next, moves, nil
}

// SeedIfEmpty loads the given dataset into the repository unless rooms
// are already present, so a restart against a persistent backend does not
// clobber reassignments made in earlier sessions.
func (s *AllocationService) SeedIfEmpty(ctx context.Context, rooms []*models.Room, bookings []*models.Booking) error {
	existing, err := s.repo.ListRooms(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, room := range rooms {
		if err := s.repo.SaveRoom(ctx, room); err != nil {
			return err
		}
	}
	for _, booking := range bookings {
		if err := s.repo.SaveBooking(ctx, booking); err != nil {
			return err
		}
	}
	return nil
}

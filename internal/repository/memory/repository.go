// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"sync"

	"github.com/navikt/fairrooms/internal/models"
	"github.com/navikt/fairrooms/internal/repository"
)

// Repository implements the repository interface with in-memory storage.
// Insertion order is tracked separately from the lookup maps because
// listing order is part of the repository contract.
type Repository struct {
	rooms        map[string]*models.Room
	roomOrder    []string
	bookings     map[string]*models.Booking
	bookingOrder []string
	mu           sync.RWMutex
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{
		rooms:    make(map[string]*models.Room),
		bookings: make(map[string]*models.Booking),
	}
}

// SaveRoom stores a room, appending it to the listing order on first save
func (r *Repository) SaveRoom(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[room.ID]; !exists {
		r.roomOrder = append(r.roomOrder, room.ID)
	}

	stored := *room
	r.rooms[room.ID] = &stored
	return nil
}

// GetRoom retrieves a room by ID
func (r *Repository) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	found := *room
	return &found, nil
}

// ListRooms returns all rooms in insertion order
func (r *Repository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*models.Room, 0, len(r.roomOrder))
	for _, id := range r.roomOrder {
		room := *r.rooms[id]
		rooms = append(rooms, &room)
	}
	return rooms, nil
}

// SaveBooking stores a booking, appending it to the listing order on
// first save
func (r *Repository) SaveBooking(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; !exists {
		r.bookingOrder = append(r.bookingOrder, booking.ID)
	}

	stored := *booking
	r.bookings[booking.ID] = &stored
	return nil
}

// GetBooking retrieves a booking by ID
func (r *Repository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return booking.Clone(), nil
}

// ListBookings returns all bookings in insertion order
func (r *Repository) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*models.Booking, 0, len(r.bookingOrder))
	for _, id := range r.bookingOrder {
		bookings = append(bookings, r.bookings[id].Clone())
	}
	return bookings, nil
}

// ReassignBooking rewrites a booking's room reference. Both the booking
// and the target room must exist; on failure the collection is untouched.
func (r *Repository) ReassignBooking(ctx context.Context, bookingID, roomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[bookingID]
	if !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.rooms[roomID]; !ok {
		return repository.ErrNotFound
	}

	booking.RoomID = roomID
	return nil
}

// ReplaceBookings applies a complete new booking assignment atomically.
// Every referenced room is checked before anything is written, so a bad
// assignment never leaves the store half-updated.
func (r *Repository) ReplaceBookings(ctx context.Context, bookings []*models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bookings {
		if _, ok := r.rooms[b.RoomID]; !ok {
			return repository.ErrNotFound
		}
	}

	newBookings := make(map[string]*models.Booking, len(bookings))
	newOrder := make([]string, 0, len(bookings))
	for _, b := range bookings {
		newBookings[b.ID] = b.Clone()
		newOrder = append(newOrder, b.ID)
	}

	r.bookings = newBookings
	r.bookingOrder = newOrder
	return nil
}

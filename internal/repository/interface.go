// Package repository defines interfaces for data storage
package repository

import (
	"context"
	"errors"

	"github.com/navikt/fairrooms/internal/models"
)

// ErrNotFound is returned when a referenced room or booking does not exist
var ErrNotFound = errors.New("entity not found")

// Repository defines the interface for storing and retrieving rooms and
// bookings. List operations return entities in insertion order; that order
// is part of the contract because the optimizer picks each room's first
// booking by listing position.
type Repository interface {
	// Room operations
	SaveRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]*models.Room, error)

	// Booking operations
	SaveBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)

	// ReassignBooking rewrites a booking's room reference and nothing
	// else. Returns ErrNotFound if either id is unknown. No capacity
	// check: manual moves into a too-small room are allowed.
	ReassignBooking(ctx context.Context, bookingID, roomID string) error

	// ReplaceBookings applies a complete new booking assignment, as
	// produced by an optimization pass. Every referenced room must exist.
	ReplaceBookings(ctx context.Context, bookings []*models.Booking) error
}

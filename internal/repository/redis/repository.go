// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/navikt/fairrooms/internal/config"
	"github.com/navikt/fairrooms/internal/models"
	"github.com/navikt/fairrooms/internal/repository"
	"github.com/redis/go-redis/v9"
)

// Repository implements the repository interface with Redis storage.
// Entities are stored as JSON values; separate index lists preserve
// insertion order, which KEYS/SCAN cannot guarantee.
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		if opt.DB == 0 {
			opt.DB = cfg.DB
		}
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.DataTTL,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// roomKey returns the Redis key for a room
func (r *Repository) roomKey(id string) string {
	return fmt.Sprintf("%srooms:%s", r.keyPrefix, id)
}

// bookingKey returns the Redis key for a booking
func (r *Repository) bookingKey(id string) string {
	return fmt.Sprintf("%sbookings:%s", r.keyPrefix, id)
}

// roomIndexKey returns the Redis key for the room listing order
func (r *Repository) roomIndexKey() string {
	return r.keyPrefix + "rooms:index"
}

// bookingIndexKey returns the Redis key for the booking listing order
func (r *Repository) bookingIndexKey() string {
	return r.keyPrefix + "bookings:index"
}

// SaveRoom stores a room, appending it to the index on first save
func (r *Repository) SaveRoom(ctx context.Context, room *models.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	key := r.roomKey(room.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, data, r.ttl)
	if exists == 0 {
		pipe.RPush(ctx, r.roomIndexKey(), room.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID
func (r *Repository) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	data, err := r.client.Get(ctx, r.roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// ListRooms returns all rooms in insertion order
func (r *Repository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	ids, err := r.client.LRange(ctx, r.roomIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	if len(ids) == 0 {
		return []*models.Room{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.roomKey(id))
	}

	// MGET retrieves all rooms in a single roundtrip
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room data: %w", err)
	}

	rooms := make([]*models.Room, 0, len(values))
	for _, v := range values {
		strData, ok := v.(string)
		if !ok {
			continue
		}

		var room models.Room
		if err := json.Unmarshal([]byte(strData), &room); err != nil {
			continue
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

// SaveBooking stores a booking, appending it to the index on first save
func (r *Repository) SaveBooking(ctx context.Context, booking *models.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	key := r.bookingKey(booking.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, data, r.ttl)
	if exists == 0 {
		pipe.RPush(ctx, r.bookingIndexKey(), booking.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	return nil
}

// GetBooking retrieves a booking by ID
func (r *Repository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	data, err := r.client.Get(ctx, r.bookingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	var booking models.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	return &booking, nil
}

// ListBookings returns all bookings in insertion order
func (r *Repository) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	ids, err := r.client.LRange(ctx, r.bookingIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if len(ids) == 0 {
		return []*models.Booking{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.bookingKey(id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking data: %w", err)
	}

	bookings := make([]*models.Booking, 0, len(values))
	for _, v := range values {
		strData, ok := v.(string)
		if !ok {
			continue
		}

		var booking models.Booking
		if err := json.Unmarshal([]byte(strData), &booking); err != nil {
			continue
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

// ReassignBooking rewrites a booking's room reference and nothing else
func (r *Repository) ReassignBooking(ctx context.Context, bookingID, roomID string) error {
	booking, err := r.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.roomKey(roomID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check if room exists: %w", err)
	}
	if exists == 0 {
		return repository.ErrNotFound
	}

	booking.RoomID = roomID

	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	if err := r.client.Set(ctx, r.bookingKey(bookingID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	return nil
}

// ReplaceBookings applies a complete new booking assignment. Room
// references are checked up front, then the bookings and their index are
// rewritten in one pipeline.
func (r *Repository) ReplaceBookings(ctx context.Context, bookings []*models.Booking) error {
	for _, b := range bookings {
		exists, err := r.client.Exists(ctx, r.roomKey(b.RoomID)).Result()
		if err != nil {
			return fmt.Errorf("failed to check if room exists: %w", err)
		}
		if exists == 0 {
			return repository.ErrNotFound
		}
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.bookingIndexKey())
	for _, b := range bookings {
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to marshal booking: %w", err)
		}
		pipe.Set(ctx, r.bookingKey(b.ID), data, r.ttl)
		pipe.RPush(ctx, r.bookingIndexKey(), b.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace bookings: %w", err)
	}

	return nil
}

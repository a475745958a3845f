package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/navikt/fairrooms/internal/models"
)

// SeedRoom is the seed-file representation of a room
type SeedRoom struct {
	ID              string `yaml:"id" validate:"required"`
	Name            string `yaml:"name" validate:"required"`
	Capacity        int    `yaml:"capacity" validate:"gt=0"`
	Category        string `yaml:"category" validate:"required"`
	HistoricalUsage int    `yaml:"historicalUsage" validate:"min=0,max=100"`
	RecentBookings  int    `yaml:"recentBookings" validate:"min=0"`
}

// SeedBooking is the seed-file representation of a booking
type SeedBooking struct {
	ID         string  `yaml:"id" validate:"required"`
	RoomID     string  `yaml:"roomId" validate:"required"`
	Title      string  `yaml:"title" validate:"required"`
	Attendance int     `yaml:"attendance" validate:"gt=0"`
	Duration   float64 `yaml:"duration" validate:"gt=0"`
	TimeSlot   string  `yaml:"timeSlot" validate:"required"`
}

// Seed is the startup dataset of rooms and bookings
type Seed struct {
	Rooms    []SeedRoom    `yaml:"rooms" validate:"min=1,dive"`
	Bookings []SeedBooking `yaml:"bookings" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// DefaultSeed returns the built-in dataset of 6 rooms and 9 bookings
func DefaultSeed() *Seed {
	return &Seed{
		Rooms: []SeedRoom{
			{ID: "r1", Name: "Lab A", Capacity: 30, Category: "Computer Lab", HistoricalUsage: 85, RecentBookings: 12},
			{ID: "r2", Name: "Lab B", Capacity: 25, Category: "Computer Lab", HistoricalUsage: 45, RecentBookings: 5},
			{ID: "r3", Name: "Conference 1", Capacity: 50, Category: "Conference Room", HistoricalUsage: 70, RecentBookings: 9},
			{ID: "r4", Name: "Study Room A", Capacity: 15, Category: "Study Room", HistoricalUsage: 30, RecentBookings: 3},
			{ID: "r5", Name: "Auditorium", Capacity: 200, Category: "Auditorium", HistoricalUsage: 55, RecentBookings: 6},
			{ID: "r6", Name: "Lab C", Capacity: 28, Category: "Computer Lab", HistoricalUsage: 90, RecentBookings: 14},
		},
		Bookings: []SeedBooking{
			{ID: "b1", RoomID: "r1", Title: "CS 101 Practical", Attendance: 28, Duration: 2, TimeSlot: "09:00"},
			{ID: "b2", RoomID: "r1", Title: "Data Structures Lab", Attendance: 25, Duration: 3, TimeSlot: "11:00"},
			{ID: "b3", RoomID: "r1", Title: "Web Dev Workshop", Attendance: 30, Duration: 2, TimeSlot: "14:00"},
			{ID: "b4", RoomID: "r3", Title: "Faculty Meeting", Attendance: 35, Duration: 1, TimeSlot: "10:00"},
			{ID: "b5", RoomID: "r3", Title: "Student Council", Attendance: 20, Duration: 2, TimeSlot: "15:00"},
			{ID: "b6", RoomID: "r2", Title: "Python Bootcamp", Attendance: 18, Duration: 2, TimeSlot: "09:00"},
			{ID: "b7", RoomID: "r5", Title: "Guest Lecture", Attendance: 150, Duration: 2, TimeSlot: "11:00"},
			{ID: "b8", RoomID: "r6", Title: "AI Workshop", Attendance: 27, Duration: 3, TimeSlot: "09:00"},
			{ID: "b9", RoomID: "r6", Title: "Machine Learning Lab", Attendance: 26, Duration: 2, TimeSlot: "13:00"},
		},
	}
}

// LoadSeed loads and validates a seed dataset. An empty path selects the
// built-in default dataset, which is validated the same way.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		seed := DefaultSeed()
		if err := ValidateSeed(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := ValidateSeed(&seed); err != nil {
		return nil, err
	}

	return &seed, nil
}

// ValidateSeed validates the seed dataset. Beyond per-field checks it
// rejects duplicate ids and bookings that reference unknown rooms, so bad
// data fails at startup instead of surfacing as nonsense scores later.
func ValidateSeed(seed *Seed) error {
	if err := validate.Struct(seed); err != nil {
		return fmt.Errorf("seed validation failed: %w", err)
	}

	roomIDs := make(map[string]struct{}, len(seed.Rooms))
	for _, room := range seed.Rooms {
		if _, dup := roomIDs[room.ID]; dup {
			return fmt.Errorf("duplicate room id %q in seed data", room.ID)
		}
		roomIDs[room.ID] = struct{}{}
	}

	bookingIDs := make(map[string]struct{}, len(seed.Bookings))
	for _, booking := range seed.Bookings {
		if _, dup := bookingIDs[booking.ID]; dup {
			return fmt.Errorf("duplicate booking id %q in seed data", booking.ID)
		}
		bookingIDs[booking.ID] = struct{}{}

		if _, ok := roomIDs[booking.RoomID]; !ok {
			return fmt.Errorf("booking %q references unknown room %q", booking.ID, booking.RoomID)
		}
	}

	return nil
}

// RoomModels converts the seed rooms to domain models, preserving order
func (s *Seed) RoomModels() []*models.Room {
	rooms := make([]*models.Room, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		rooms = append(rooms, &models.Room{
			ID:              r.ID,
			Name:            r.Name,
			Capacity:        r.Capacity,
			Category:        r.Category,
			HistoricalUsage: r.HistoricalUsage,
			RecentBookings:  r.RecentBookings,
		})
	}
	return rooms
}

// BookingModels converts the seed bookings to domain models, preserving order
func (s *Seed) BookingModels() []*models.Booking {
	bookings := make([]*models.Booking, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		bookings = append(bookings, &models.Booking{
			ID:         b.ID,
			RoomID:     b.RoomID,
			Title:      b.Title,
			Attendance: b.Attendance,
			Duration:   b.Duration,
			TimeSlot:   b.TimeSlot,
		})
	}
	return bookings
}

package models

// Booking represents a single room booking. RoomID is the only field
// that ever changes after seeding; reassignment rewrites it and nothing
// else.
type Booking struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"room_id"`
	Title      string  `json:"title"`
	Attendance int     `json:"attendance"`
	Duration   float64 `json:"duration"` // in hours
	// TimeSlot is informational only ("09:00"); overlaps are not checked.
	TimeSlot string `json:"time_slot"`
}

// Clone returns a copy of the booking
func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

// CloneBookings returns a deep copy of a booking slice, preserving order
func CloneBookings(bookings []*Booking) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Clone())
	}
	return out
}

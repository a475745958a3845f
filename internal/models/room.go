package models

// Room represents a bookable room from the seed inventory.
// Rooms are immutable after seeding; only bookings move between them.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Category string `json:"category"`
	// HistoricalUsage is an externally supplied 0-100 percentage.
	HistoricalUsage int `json:"historical_usage"`
	// RecentBookings is an externally supplied counter, not derived
	// from booking moves.
	RecentBookings int `json:"recent_bookings"`
}

// Fits returns true if the room can hold the given attendance
func (r *Room) Fits(attendance int) bool {
	return attendance <= r.Capacity
}

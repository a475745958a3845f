package models

// FairnessDetails breaks a fairness score down into its three weighted
// components, so callers can explain a score instead of just showing it.
type FairnessDetails struct {
	HistoricalScore  float64 `json:"historical_score"`
	BookingScore     float64 `json:"booking_score"`
	UtilizationScore float64 `json:"utilization_score"`
}

// FairnessResult is the derived fairness evaluation for one room against
// the current booking set. It is recomputed on every query and never stored.
type FairnessResult struct {
	Score              float64         `json:"score"`
	BookingCount       int             `json:"booking_count"`
	AvgAttendance      float64         `json:"avg_attendance"`
	UtilizationPercent float64         `json:"utilization_percent"`
	Details            FairnessDetails `json:"details"`
}

// RoomFairness pairs a room with its current fairness evaluation for
// display purposes
type RoomFairness struct {
	Room     *Room          `json:"room"`
	Fairness FairnessResult `json:"fairness"`
}

// Summary holds dataset-wide aggregates for the status view
type Summary struct {
	AvgFairness    float64 `json:"avg_fairness"`
	TotalBookings  int     `json:"total_bookings"`
	AvgUtilization float64 `json:"avg_utilization"`
}

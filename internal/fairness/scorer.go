// Package fairness implements the fairness scoring of rooms and the
// rebalancing heuristic that moves bookings between them.
package fairness

import (
	"github.com/navikt/fairrooms/internal/models"
)

// Component weights of the composite score
const (
	historicalWeight  = 0.4
	bookingWeight     = 0.3
	utilizationWeight = 0.3
)

// Utilization tiers. Heavy use is penalized in flat bands, not
// proportionally; the thresholds are strict (exactly 80% scores the
// 70 tier, exactly 50% the 90 tier).
const (
	heavyUtilizationScore    = 40
	moderateUtilizationScore = 70
	lightUtilizationScore    = 90
)

// Score computes the fairness evaluation for one room against the full
// booking set. It is pure and deterministic: same inputs, same result.
func Score(room *models.Room, bookings []*models.Booking) models.FairnessResult {
	var bookingCount int
	var totalAttendance int
	for _, b := range bookings {
		if b.RoomID == room.ID {
			bookingCount++
			totalAttendance += b.Attendance
		}
	}

	// Guard the empty room: average attendance is defined as 0
	var avgAttendance float64
	if bookingCount > 0 {
		avgAttendance = float64(totalAttendance) / float64(bookingCount)
	}
	utilization := avgAttendance / float64(room.Capacity) * 100

	// Sub-scores may transiently leave [0, 100]; only the composite is clamped
	historicalScore := 100 - float64(room.HistoricalUsage)*0.4
	bookingScore := 100 - float64(room.RecentBookings)*3

	utilizationScore := float64(lightUtilizationScore)
	if utilization > 80 {
		utilizationScore = heavyUtilizationScore
	} else if utilization > 50 {
		utilizationScore = moderateUtilizationScore
	}

	score := historicalScore*historicalWeight +
		bookingScore*bookingWeight +
		utilizationScore*utilizationWeight

	return models.FairnessResult{
		Score:              clamp(score, 0, 100),
		BookingCount:       bookingCount,
		AvgAttendance:      avgAttendance,
		UtilizationPercent: utilization,
		Details: models.FairnessDetails{
			HistoricalScore:  historicalScore,
			BookingScore:     bookingScore,
			UtilizationScore: utilizationScore,
		},
	}
}

// ScoreAll evaluates every room against the booking set, preserving
// room order
func ScoreAll(rooms []*models.Room, bookings []*models.Booking) []models.RoomFairness {
	results := make([]models.RoomFairness, 0, len(rooms))
	for _, room := range rooms {
		results = append(results, models.RoomFairness{
			Room:     room,
			Fairness: Score(room, bookings),
		})
	}
	return results
}

// Summarize computes dataset-wide aggregates over a fairness report
func Summarize(report []models.RoomFairness, bookings []*models.Booking) models.Summary {
	if len(report) == 0 {
		return models.Summary{TotalBookings: len(bookings)}
	}

	var scoreSum, utilizationSum float64
	for _, rf := range report {
		scoreSum += rf.Fairness.Score
		utilizationSum += rf.Fairness.UtilizationPercent
	}

	return models.Summary{
		AvgFairness:    scoreSum / float64(len(report)),
		TotalBookings:  len(bookings),
		AvgUtilization: utilizationSum / float64(len(report)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

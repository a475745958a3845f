package api

import (
	"net/http"

	"github.com/navikt/fairrooms/internal/service"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(allocationService *service.AllocationService) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler)

	// Room endpoints, including per-room fairness
	roomHandler := NewRoomHandler(allocationService)
	mux.Handle("/api/rooms", roomHandler)
	mux.Handle("/api/rooms/", roomHandler)

	// Booking endpoints, including manual reassignment
	bookingHandler := NewBookingHandler(allocationService)
	mux.Handle("/api/bookings", bookingHandler)
	mux.Handle("/api/bookings/", bookingHandler)

	// Optimization pass
	mux.Handle("/api/optimize", NewOptimizeHandler(allocationService))

	// Dataset-wide fairness report and summary stats
	statusHandler := NewStatusHandler(allocationService)
	mux.HandleFunc("/api/fairness", statusHandler.handleFairnessReport)
	mux.HandleFunc("/api/stats", statusHandler.handleStats)

	return mux
}

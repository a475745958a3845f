package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/navikt/fairrooms/internal/repository"
	"github.com/navikt/fairrooms/internal/service"
	"github.com/navikt/fairrooms/internal/utils"
)

// MoveRequest is the body of a manual reassignment request
type MoveRequest struct {
	RoomID string `json:"room_id"`
}

// BookingHandler handles HTTP requests for bookings and reassignment
type BookingHandler struct {
	allocationService *service.AllocationService
}

// NewBookingHandler creates a new booking handler with the given service
func NewBookingHandler(allocationService *service.AllocationService) *BookingHandler {
	return &BookingHandler{
		allocationService: allocationService,
	}
}

// ServeHTTP handles HTTP requests for booking management
func (h *BookingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Set common headers
	w.Header().Set("Content-Type", "application/json")

	// Path format: /api/bookings/{bookingID}/move
	pathParts := strings.Split(r.URL.Path, "/")
	var bookingID, action string

	if len(pathParts) >= 4 && pathParts[3] != "" {
		bookingID = pathParts[3]
	}
	if len(pathParts) >= 5 && pathParts[4] != "" {
		action = pathParts[4]
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/bookings":
		h.listBookings(w, r)
	case r.Method == http.MethodPost && bookingID != "" && action == "move":
		h.moveBooking(w, r, bookingID)
	default:
		http.NotFound(w, r)
	}
}

// listBookings handles GET /api/bookings to list all bookings
func (h *BookingHandler) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.allocationService.ListBookings(r.Context())
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		http.Error(w, "Error retrieving bookings", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(bookings)
}

// moveBooking handles POST /api/bookings/{bookingID}/move to reassign a
// booking to another room. Capacity is deliberately not checked here.
func (h *BookingHandler) moveBooking(w http.ResponseWriter, r *http.Request, bookingID string) {
	var req MoveRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Error decoding move request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.RoomID == "" {
		http.Error(w, "Target room ID is required", http.StatusBadRequest)
		return
	}

	bookings, err := h.allocationService.MoveBooking(r.Context(), bookingID, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Booking or room not found", http.StatusNotFound)
			return
		}
		log.Printf("Error moving booking %s: %v", utils.SanitizeLogString(bookingID), err)
		http.Error(w, "Error moving booking", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(bookings)
}

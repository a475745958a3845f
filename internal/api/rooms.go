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

// RoomHandler handles HTTP requests for rooms and per-room fairness
type RoomHandler struct {
	allocationService *service.AllocationService
}

// NewRoomHandler creates a new room handler with the given service
func NewRoomHandler(allocationService *service.AllocationService) *RoomHandler {
	return &RoomHandler{
		allocationService: allocationService,
	}
}

// ServeHTTP handles HTTP requests for room queries
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Set common headers
	w.Header().Set("Content-Type", "application/json")

	// Path format: /api/rooms/{roomID}[/fairness]
	pathParts := strings.Split(r.URL.Path, "/")
	var roomID, sub string

	if len(pathParts) >= 4 && pathParts[3] != "" {
		roomID = pathParts[3]
	}
	if len(pathParts) >= 5 && pathParts[4] != "" {
		sub = pathParts[4]
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/rooms":
		h.listRooms(w, r)
	case r.Method == http.MethodGet && roomID != "" && sub == "":
		h.getRoom(w, r, roomID)
	case r.Method == http.MethodGet && roomID != "" && sub == "fairness":
		h.getFairness(w, r, roomID)
	default:
		http.NotFound(w, r)
	}
}

// listRooms handles GET /api/rooms to list all rooms in seeding order
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.allocationService.ListRooms(r.Context())
	if err != nil {
		log.Printf("Error listing rooms: %v", err)
		http.Error(w, "Error retrieving rooms", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(rooms)
}

// getRoom handles GET /api/rooms/{roomID} to get a specific room
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	room, err := h.allocationService.GetRoom(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting room %s: %v", utils.SanitizeLogString(roomID), err)
		http.Error(w, "Error retrieving room", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(room)
}

// getFairness handles GET /api/rooms/{roomID}/fairness to compute the
// room's current fairness evaluation
func (h *RoomHandler) getFairness(w http.ResponseWriter, r *http.Request, roomID string) {
	result, err := h.allocationService.GetFairness(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		log.Printf("Error scoring room %s: %v", utils.SanitizeLogString(roomID), err)
		http.Error(w, "Error computing fairness", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(result)
}

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/navikt/fairrooms/internal/fairness"
	"github.com/navikt/fairrooms/internal/models"
	"github.com/navikt/fairrooms/internal/service"
)

// OptimizeResponse is the result of an optimization pass
type OptimizeResponse struct {
	Bookings []*models.Booking `json:"bookings"`
	Moves    []fairness.Move   `json:"moves"`
}

// OptimizeHandler handles HTTP requests for the auto-optimization pass
type OptimizeHandler struct {
	allocationService *service.AllocationService
}

// NewOptimizeHandler creates a new optimize handler with the given service
func NewOptimizeHandler(allocationService *service.AllocationService) *OptimizeHandler {
	return &OptimizeHandler{
		allocationService: allocationService,
	}
}

// ServeHTTP handles POST /api/optimize to run one rebalancing pass
func (h *OptimizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	bookings, moves, err := h.allocationService.AutoOptimize(r.Context())
	if err != nil {
		log.Printf("Error running optimization pass: %v", err)
		http.Error(w, "Error optimizing bookings", http.StatusInternalServerError)
		return
	}

	if moves == nil {
		moves = []fairness.Move{}
	}
	json.NewEncoder(w).Encode(OptimizeResponse{
		Bookings: bookings,
		Moves:    moves,
	})
}

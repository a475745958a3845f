package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/navikt/fairrooms/internal/service"
)

// StatusHandler serves the dataset-wide fairness report and summary stats
type StatusHandler struct {
	allocationService *service.AllocationService
}

// NewStatusHandler creates a new status handler with the given service
func NewStatusHandler(allocationService *service.AllocationService) *StatusHandler {
	return &StatusHandler{
		allocationService: allocationService,
	}
}

// handleFairnessReport handles GET /api/fairness to evaluate every room
func (h *StatusHandler) handleFairnessReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	report, err := h.allocationService.FairnessReport(r.Context())
	if err != nil {
		log.Printf("Error building fairness report: %v", err)
		http.Error(w, "Error computing fairness", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(report)
}

// handleStats handles GET /api/stats for dataset-wide aggregates
func (h *StatusHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	summary, err := h.allocationService.Summary(r.Context())
	if err != nil {
		log.Printf("Error computing summary: %v", err)
		http.Error(w, "Error computing stats", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(summary)
}

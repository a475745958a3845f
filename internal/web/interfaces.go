package web

import (
	"context"

	"github.com/navikt/fairrooms/internal/models"
)

// FairnessReporter defines the contract for the service used by the
// event stream
type FairnessReporter interface {
	FairnessReport(ctx context.Context) ([]models.RoomFairness, error)
}

// Package web provides the push boundary towards external presentation
// layers: a server-sent-events stream with fresh fairness snapshots.
package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/r3labs/sse/v2"
)

// FairnessStream is the SSE stream name clients subscribe to
const FairnessStream = "fairness"

// publishTimeout bounds the report computation for one snapshot
const publishTimeout = 5 * time.Second

// EventServer broadcasts fairness snapshots over server-sent events so an
// external UI can re-render after every booking change
type EventServer struct {
	server  *sse.Server
	service FairnessReporter
}

// NewEventServer creates a new SSE event server for fairness updates
func NewEventServer(service FairnessReporter) *EventServer {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(FairnessStream)

	return &EventServer{
		server:  server,
		service: service,
	}
}

// ServeHTTP implements the http.Handler interface for SSE connections.
// Clients connect with GET /events?stream=fairness.
func (es *EventServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	es.server.ServeHTTP(w, r)
}

// NotifyBookingsChanged computes a fresh fairness report and publishes it
// to all connected clients. Registered as an update callback on the
// allocation service.
func (es *EventServer) NotifyBookingsChanged() {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	report, err := es.service.FairnessReport(ctx)
	if err != nil {
		log.Printf("Error building fairness snapshot for SSE clients: %v", err)
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		log.Printf("Error encoding fairness snapshot: %v", err)
		return
	}

	es.server.Publish(FairnessStream, &sse.Event{
		Event: []byte(FairnessStream),
		Data:  data,
	})
}

// Shutdown closes all client connections
func (es *EventServer) Shutdown() {
	es.server.Close()
}

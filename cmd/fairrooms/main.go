package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navikt/fairrooms/internal/api"
	"github.com/navikt/fairrooms/internal/config"
	"github.com/navikt/fairrooms/internal/repository"
	"github.com/navikt/fairrooms/internal/repository/memory"
	"github.com/navikt/fairrooms/internal/repository/redis"
	"github.com/navikt/fairrooms/internal/service"
	"github.com/navikt/fairrooms/internal/web"
)

func main() {
	// Initialize the repository: Redis when enabled, in-memory otherwise
	redisConfig := config.GetRedisConfig()

	var repo repository.Repository
	if redisConfig.Enabled {
		redisRepo, err := redis.NewRepository(redisConfig)
		if err != nil {
			log.Fatalf("Failed to initialize Redis repository: %v", err)
		}
		defer func() {
			if err := redisRepo.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
		repo = redisRepo
		log.Println("Using Redis repository")
	} else {
		repo = memory.NewRepository()
		log.Println("Using in-memory repository")
	}

	// Initialize the service layer
	allocationService := service.NewAllocationService(repo)

	// Load and validate the seed dataset, then seed an empty store
	seed, err := config.LoadSeed(config.GetSeedFilePath())
	if err != nil {
		log.Fatalf("Failed to load seed dataset: %v", err)
	}
	if err := allocationService.SeedIfEmpty(context.Background(), seed.RoomModels(), seed.BookingModels()); err != nil {
		log.Fatalf("Failed to seed repository: %v", err)
	}

	// Set up the SSE event stream and register it for booking updates
	eventServer := web.NewEventServer(allocationService)
	allocationService.RegisterUpdateCallback(eventServer.NotifyBookingsChanged)

	// Set up API routes
	mux := api.SetupRoutes(allocationService)
	mux.Handle("/events", eventServer)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Configure the HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      web.WrapMuxWithMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Printf("Starting fairrooms server on port %s", port)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until a signal is received or an error occurs
	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// First, close SSE connections so Shutdown does not wait on them
		eventServer.Shutdown()

		// Create a deadline to wait for
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}

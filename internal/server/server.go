// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/pulseguard/hub/api"
	"github.com/pulseguard/hub/internal/cache"
	"github.com/pulseguard/hub/internal/config"
	"github.com/pulseguard/hub/internal/database"
	"github.com/pulseguard/hub/internal/forwarding"
	"github.com/pulseguard/hub/internal/hubservice"
	"github.com/pulseguard/hub/internal/monitoring"
	"github.com/pulseguard/hub/internal/repository"
	"github.com/pulseguard/hub/internal/repository/memory"
	"github.com/pulseguard/hub/internal/repository/postgres"
	"github.com/pulseguard/hub/internal/store"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	hubservice *hubservice.HubService
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.hubservice = initializeHubService(s.config)
	s.monitoring = monitoring.NewService(monitoring.Config{
		LogLevel: s.config.Monitoring.LogLevel,
	})

	// Set up store event handlers
	s.setupEventHandlers()

	// Setup routes and middleware
	router := api.NewRouter(s.hubservice)
	handler := handlers.RecoveryHandler()(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router))

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	s.hubservice.Monitor.Close()
	if err := s.hubservice.Mirror.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing snapshot mirror: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// setupEventHandlers forwards store change events to the monitoring service
func (s *Server) setupEventHandlers() {
	monitor := s.hubservice.Monitor

	monitor.OnChange(store.EventVitalsExpired, func(args ...interface{}) {
		s.monitoring.RecordEvent("vitals_expired", nil)
	})

	monitor.OnChange(store.EventEmergencyRaised, func(args ...interface{}) {
		s.monitoring.RecordEvent("emergency_raised", nil)
	})

	monitor.OnChange(store.EventEmergencyCleared, func(args ...interface{}) {
		s.monitoring.RecordEvent("emergency_cleared", nil)
	})

	monitor.OnChange(store.EventAlarmSet, func(args ...interface{}) {
		labels := map[string]string{}
		if len(args) > 0 {
			if t, ok := args[0].(string); ok {
				labels["time"] = t
			}
		}
		s.monitoring.RecordEvent("alarm_set", labels)
	})

	monitor.OnChange(store.EventDiseaseReported, func(args ...interface{}) {
		labels := map[string]string{}
		if len(args) > 0 {
			if name, ok := args[0].(string); ok {
				labels["disease"] = name
			}
		}
		s.monitoring.RecordEvent("disease_reported", labels)
	})
}

// initializeHubService creates and configures the hub service
func initializeHubService(cfg *config.Config) *hubservice.HubService {
	monitor := store.New(store.Config{
		InactivityTimeout: cfg.Vitals.InactivityTimeout,
		HistoryLimit:      cfg.Vitals.HistoryLimit,
	})

	var appointments repository.AppointmentRepository
	switch cfg.Database.Driver {
	case "postgres":
		appDB := initAppDB(cfg.Database.Postgres)
		appointments = postgres.NewAppointmentRepository(appDB)
	default:
		nuts.L.Infof("[Server] Using in-memory appointment store")
		appointments = memory.NewAppointmentRepository()
	}

	forwarder := forwarding.New(cfg.Destination)
	mirror := cache.New(cfg.Redis)
	if mirror == nil {
		nuts.L.Infof("[Server] Snapshot mirror disabled (no redis host configured)")
	}

	svc := hubservice.New(monitor, appointments, forwarder, mirror)
	if err := svc.Validate(); err != nil {
		nuts.L.Fatalf("[Server] Invalid service wiring: %v", err)
	}
	return svc
}

func initAppDB(cfg config.PostgresConfig) database.DB {
	wrappedDB, err := database.NewPostgresDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to AppDB: %v", err)
	}

	// Set up connection timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := wrappedDB.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping database: %v", err)
	}
	return wrappedDB
}

package monitoring

import (
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// Config holds monitoring configuration
type Config struct {
	LogLevel string
}

// Service provides monitoring functionality
type Service struct {
	config Config
}

// NewService creates a new monitoring service
func NewService(config Config) *Service {
	return &Service{
		config: config,
	}
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	// Record event timestamp
	ts := time.Now()

	// Log event
	nuts.L.Infof("[Monitoring] Event %s recorded at %v with labels: %v", eventName, ts, labels)
	// TODO: wire a metrics backend; today events are log-only
}

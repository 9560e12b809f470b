package hubservice

import (
	"github.com/pulseguard/hub/internal/cache"
	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/forwarding"
	"github.com/pulseguard/hub/internal/repository"
	"github.com/pulseguard/hub/internal/store"
)

// HubService contains the monitor store, the appointment repository and
// service-wide dependencies
type HubService struct {
	Monitor      *store.MonitorStore
	Appointments repository.AppointmentRepository
	Forwarder    *forwarding.Forwarder
	Mirror       *cache.SnapshotMirror
}

// New creates a new HubService instance
func New(
	monitor *store.MonitorStore,
	appointments repository.AppointmentRepository,
	forwarder *forwarding.Forwarder,
	mirror *cache.SnapshotMirror,
) *HubService {
	return &HubService{
		Monitor:      monitor,
		Appointments: appointments,
		Forwarder:    forwarder,
		Mirror:       mirror,
	}
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Monitor == nil {
		return ErrMissingDependency("monitor store")
	}
	if s.Appointments == nil {
		return ErrMissingDependency("appointments")
	}
	if s.Forwarder == nil {
		return ErrMissingDependency("forwarder")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}

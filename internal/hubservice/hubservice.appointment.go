// FilePath: internal/hubservice/hubservice.appointment.go
package hubservice

import (
	"context"
	"time"

	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateAppointment validates and stores a new appointment request.
// Requests default to pending until a caregiver approves them.
func (s *HubService) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	if appt.Patient == "" {
		return errors.NewValidationError("patient is required", nil)
	}
	if appt.Doctor == "" {
		return errors.NewValidationError("doctor is required", nil)
	}
	if appt.Time != "" && !alarmTimePattern.MatchString(appt.Time) {
		return errors.NewValidationError("invalid time format, use HH:MM", nil)
	}

	if appt.ID == "" {
		appt.ID = nuts.NID("apt", 12)
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentPending
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	nuts.L.Infof("[HubService] Creating appointment %s for %s with %s", appt.ID, appt.Patient, appt.Doctor)
	return s.Appointments.Create(ctx, appt)
}

// ApproveAppointment transitions a pending appointment to scheduled at the
// given time and forwards it to the destination collaborator. Forwarding is
// best-effort: a delivery failure is logged and does not fail the approval.
// Approving an already scheduled appointment only refreshes its time and
// does not forward again.
func (s *HubService) ApproveAppointment(ctx context.Context, id, at string) (*models.Appointment, error) {
	if at == "" {
		return nil, errors.NewValidationError("time is required to schedule an appointment", nil)
	}
	if !alarmTimePattern.MatchString(at) {
		return nil, errors.NewValidationError("invalid time format, use HH:MM", nil)
	}

	appt, err := s.Appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	wasPending := appt.Status == models.AppointmentPending
	appt.Status = models.AppointmentScheduled
	appt.Time = at
	appt.UpdatedAt = time.Now()

	if err := s.Appointments.Update(ctx, appt); err != nil {
		return nil, err
	}

	if wasPending {
		if err := s.Forwarder.ForwardAppointment(ctx, appt); err != nil {
			nuts.L.Warnf("[HubService] Appointment %s scheduled but forwarding failed: %v", appt.ID, err)
		}
	}

	nuts.L.Infof("[HubService] Appointment %s scheduled for %s", appt.ID, at)
	return appt, nil
}

// LatestAppointment returns the most recently created appointment, or nil
// when none exist.
func (s *HubService) LatestAppointment(ctx context.Context) (*models.Appointment, error) {
	appt, err := s.Appointments.Latest(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return appt, nil
}

// ListAppointments returns appointments newest first, optionally filtered
// by status.
func (s *HubService) ListAppointments(ctx context.Context, filters models.AppointmentFilters) ([]*models.Appointment, error) {
	if filters.Status != "" {
		switch models.AppointmentStatus(filters.Status) {
		case models.AppointmentPending, models.AppointmentScheduled:
		default:
			return nil, errors.NewValidationError(`invalid status filter, use "pending" or "scheduled"`, nil)
		}
	}
	return s.Appointments.List(ctx, filters)
}

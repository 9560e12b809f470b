// FilePath: internal/hubservice/hubservice.monitor.go
package hubservice

import (
	"context"
	"regexp"
	"strings"

	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// alarmTimePattern accepts 24h "HH:MM" with zero-padded, in-range fields.
// "7:00" and "25:61" both fail.
var alarmTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IngestVitals merges a partial sensor payload into the monitor store and
// mirrors the resulting snapshot. An empty payload is a valid no-op.
func (s *HubService) IngestVitals(ctx context.Context, update models.VitalsUpdate) models.Vitals {
	vitals := s.Monitor.UpdateVitals(update)
	s.Mirror.Store(ctx, s.Monitor.Snapshot())
	return vitals
}

// IngestClimate handles DHT sensor payloads carrying only temperature and
// humidity. Heart-rate fields are untouched, so the inactivity timer is not
// re-armed by climate data.
func (s *HubService) IngestClimate(ctx context.Context, temperature, humidity *float64) models.Vitals {
	return s.IngestVitals(ctx, models.VitalsUpdate{
		Temperature: temperature,
		Humidity:    humidity,
	})
}

// SetAlarm arms the reminder at the given time, or clears it when t is nil.
func (s *HubService) SetAlarm(ctx context.Context, t *string) error {
	if t != nil && !alarmTimePattern.MatchString(*t) {
		return errors.NewValidationError("invalid time format, use HH:MM or null", nil)
	}
	s.Monitor.SetAlarm(t)
	if t != nil {
		nuts.L.Infof("[HubService] Alarm set for %s", *t)
	} else {
		nuts.L.Infof("[HubService] Alarm cleared")
	}
	return nil
}

// SetAlarmStatus flips the device ring flag.
func (s *HubService) SetAlarmStatus(ctx context.Context, status string) error {
	switch models.AlarmStatus(status) {
	case models.AlarmIdle, models.AlarmRinging:
		s.Monitor.SetAlarmStatus(models.AlarmStatus(status))
		return nil
	default:
		return errors.NewValidationError(`invalid status, use "ringing" or "idle"`, nil)
	}
}

// SetDoctorStatus records the caregiver acknowledgement flag.
func (s *HubService) SetDoctorStatus(ctx context.Context, status string) error {
	switch models.DoctorStatus(status) {
	case models.DoctorIdle, models.DoctorComing:
		s.Monitor.SetDoctorStatus(models.DoctorStatus(status))
		nuts.L.Infof("[HubService] Doctor status set to %s", status)
		return nil
	default:
		return errors.NewValidationError(`invalid status, use "coming" or "idle"`, nil)
	}
}

// UpdateEmergency maps an "active"/"cleared" transition onto the emergency
// record. An active transition without a message gets a generic one.
func (s *HubService) UpdateEmergency(ctx context.Context, status string, message, patient, address *string) (models.Emergency, error) {
	var active bool
	switch status {
	case "active":
		active = true
	case "cleared":
		active = false
	default:
		return models.Emergency{}, errors.NewValidationError(`invalid status, use "active" or "cleared"`, nil)
	}

	if active && (message == nil || *message == "") {
		fallback := "Emergency Alert"
		message = &fallback
	}
	if !active && message == nil {
		empty := ""
		message = &empty
	}

	emergency := s.Monitor.UpdateEmergency(models.EmergencyUpdate{
		Active:  &active,
		Message: message,
		Patient: patient,
		Address: address,
	})
	s.Mirror.Store(ctx, s.Monitor.Snapshot())

	nuts.L.Infof("[HubService] Emergency update: active=%v message=%q", emergency.Active, emergency.Message)
	return emergency, nil
}

// ReportDisease stores a new disease report, or clears the current one when
// name is nil. Empty and whitespace-only names are rejected.
func (s *HubService) ReportDisease(ctx context.Context, name *string) (models.Disease, error) {
	if name != nil && strings.TrimSpace(*name) == "" {
		return models.Disease{}, errors.NewValidationError(`"disease" must be a non-empty string or null`, nil)
	}
	disease := s.Monitor.SetDisease(name)
	if name != nil {
		nuts.L.Infof("[HubService] Disease reported: %s", *name)
	} else {
		nuts.L.Infof("[HubService] Disease report cleared")
	}
	return disease, nil
}

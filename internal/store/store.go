// FilePath: internal/store/store.go
package store

import (
	"sync"
	"time"

	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// Store change events, consumed by the monitoring service.
const (
	EventVitalsUpdated    = "vitals.updated"
	EventVitalsExpired    = "vitals.expired"
	EventEmergencyRaised  = "emergency.raised"
	EventEmergencyCleared = "emergency.cleared"
	EventAlarmSet         = "alarm.set"
	EventDiseaseReported  = "disease.reported"
)

// Config holds the tunables of the monitor store.
type Config struct {
	// InactivityTimeout is how long heart-rate/SpO2 readings stay valid
	// without a fresh update before both are reset to zero.
	InactivityTimeout time.Duration
	// HistoryLimit caps the heart-rate history buffer.
	HistoryLimit int
}

const (
	DefaultInactivityTimeout = 30 * time.Second
	DefaultHistoryLimit      = 50
)

// MonitorStore is the single shared record of patient-monitor state: latest
// vitals, emergency flag, alarm/reminder state, doctor status, disease report
// and a bounded heart-rate history. All mutation goes through its methods,
// serialized behind one mutex, so the expiry timer and request handlers can
// never interleave mid-merge.
//
// Getters return value snapshots; History returns a copy.
type MonitorStore struct {
	mu     sync.Mutex
	cfg    Config
	now    func() time.Time
	events *nuts.EventEmitter
	expiry debounce

	vitals       models.Vitals
	emergency    models.Emergency
	alarm        models.Alarm
	alarmStatus  models.AlarmStatus
	doctorStatus models.DoctorStatus
	disease      models.Disease
	history      []float64
}

// New creates a monitor store with zeroed vitals and idle statuses.
func New(cfg Config) *MonitorStore {
	if cfg.InactivityTimeout <= 0 {
		cfg.InactivityTimeout = DefaultInactivityTimeout
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return &MonitorStore{
		cfg:          cfg,
		now:          time.Now,
		events:       nuts.NewEventEmitter(),
		alarmStatus:  models.AlarmIdle,
		doctorStatus: models.DoctorIdle,
	}
}

// SetClock replaces the wall clock, for tests.
func (s *MonitorStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// OnChange registers a handler for a store change event.
func (s *MonitorStore) OnChange(event string, handler func(args ...interface{})) {
	s.events.On(event, "store_handler", handler)
}

// Close cancels the pending inactivity timer, if any.
func (s *MonitorStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiry.Cancel()
}

// UpdateVitals merges the partial update into the current vitals,
// last-write-wins per supplied field. A non-zero heart rate is appended to
// the history buffer. Any heart-rate or SpO2 field present re-arms the
// inactivity timer: a single deferred reset that zeroes both readings after
// the configured quiet period, leaving temperature and humidity untouched.
func (s *MonitorStore) UpdateVitals(update models.VitalsUpdate) models.Vitals {
	s.mu.Lock()
	if update.HeartRate != nil {
		s.vitals.HeartRate = *update.HeartRate
		if *update.HeartRate != 0 {
			s.history = append(s.history, *update.HeartRate)
			if len(s.history) > s.cfg.HistoryLimit {
				s.history = s.history[len(s.history)-s.cfg.HistoryLimit:]
			}
		}
	}
	if update.Pulse != nil {
		s.vitals.Pulse = *update.Pulse
	}
	if update.Temperature != nil {
		s.vitals.Temperature = *update.Temperature
	}
	if update.Humidity != nil {
		s.vitals.Humidity = *update.Humidity
	}
	if update.HeartRate != nil || update.Pulse != nil {
		s.expiry.Arm(s.cfg.InactivityTimeout, s.expireVitals)
	}
	v := s.vitals
	s.mu.Unlock()

	s.events.Emit(EventVitalsUpdated, v)
	return v
}

// expireVitals is the inactivity timer callback. A stale generation means a
// newer update re-armed the timer after this fire was already scheduled.
func (s *MonitorStore) expireVitals(gen uint64) {
	s.mu.Lock()
	if !s.expiry.Live(gen) {
		s.mu.Unlock()
		return
	}
	s.vitals.HeartRate = 0
	s.vitals.Pulse = 0
	v := s.vitals
	s.mu.Unlock()

	nuts.L.Infof("[MonitorStore] Vitals reset after %s without heart-rate data", s.cfg.InactivityTimeout)
	s.events.Emit(EventVitalsExpired, v)
}

// Vitals returns the current vitals snapshot.
func (s *MonitorStore) Vitals() models.Vitals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vitals
}

// History returns the buffered heart-rate samples, oldest first.
func (s *MonitorStore) History() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, len(s.history))
	copy(out, s.history)
	return out
}

// UpdateEmergency merges the partial update into the emergency record.
// The timestamp is owned by the store: stamped when the alert goes active,
// cleared when it is cleared.
func (s *MonitorStore) UpdateEmergency(update models.EmergencyUpdate) models.Emergency {
	s.mu.Lock()
	wasActive := s.emergency.Active
	if update.Message != nil {
		s.emergency.Message = *update.Message
	}
	if update.Patient != nil {
		s.emergency.Patient = *update.Patient
	}
	if update.Address != nil {
		s.emergency.Address = *update.Address
	}
	if update.Active != nil {
		s.emergency.Active = *update.Active
		if *update.Active {
			ts := s.now().UTC().Format(time.RFC3339)
			s.emergency.Timestamp = &ts
		} else {
			s.emergency.Timestamp = nil
		}
	}
	e := s.emergency
	s.mu.Unlock()

	if update.Active != nil {
		if *update.Active {
			s.events.Emit(EventEmergencyRaised, e)
		} else if wasActive {
			s.events.Emit(EventEmergencyCleared, e)
		}
	}
	return e
}

// Emergency returns the current emergency record.
func (s *MonitorStore) Emergency() models.Emergency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emergency
}

// SetAlarm arms the reminder at the given "HH:MM" time, or clears it when
// t is nil. Validation is the caller's job.
func (s *MonitorStore) SetAlarm(t *string) {
	s.mu.Lock()
	s.alarm = models.Alarm{Time: t}
	s.mu.Unlock()

	if t != nil {
		s.events.Emit(EventAlarmSet, *t)
	}
}

func (s *MonitorStore) Alarm() models.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alarm
}

func (s *MonitorStore) SetAlarmStatus(status models.AlarmStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alarmStatus = status
}

func (s *MonitorStore) AlarmStatus() models.AlarmStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alarmStatus
}

func (s *MonitorStore) SetDoctorStatus(status models.DoctorStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctorStatus = status
}

func (s *MonitorStore) DoctorStatus() models.DoctorStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doctorStatus
}

// SetDisease stores a new disease report with a fresh millisecond timestamp,
// or clears both fields when name is nil. A repeated identical name still
// refreshes the timestamp so polling clients re-surface the report.
func (s *MonitorStore) SetDisease(name *string) models.Disease {
	s.mu.Lock()
	if name != nil {
		ts := s.now().UnixMilli()
		s.disease = models.Disease{Name: name, Timestamp: &ts}
	} else {
		s.disease = models.Disease{}
	}
	d := s.disease
	s.mu.Unlock()

	if name != nil {
		s.events.Emit(EventDiseaseReported, *name)
	}
	return d
}

func (s *MonitorStore) Disease() models.Disease {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disease
}

// Snapshot returns the full store state in one read.
func (s *MonitorStore) Snapshot() models.MonitorSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]float64, len(s.history))
	copy(history, s.history)
	return models.MonitorSnapshot{
		Vitals:       s.vitals,
		Emergency:    s.emergency,
		Alarm:        s.alarm,
		AlarmStatus:  s.alarmStatus,
		DoctorStatus: s.doctorStatus,
		Disease:      s.disease,
		History:      history,
		GeneratedAt:  s.now(),
	}
}

// FilePath: internal/store/store_test.go
package store_test

import (
	"testing"
	"time"

	"github.com/pulseguard/hub/internal/models"
	"github.com/pulseguard/hub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func str(v string) *string { return &v }

func TestUpdateVitals_MergesPartialFields(t *testing.T) {
	s := store.New(store.Config{})
	defer s.Close()

	s.UpdateVitals(models.VitalsUpdate{HeartRate: f(72), Pulse: f(98)})
	s.UpdateVitals(models.VitalsUpdate{Temperature: f(24.5)})

	vitals := s.Vitals()
	assert.Equal(t, 72.0, vitals.HeartRate)
	assert.Equal(t, 98.0, vitals.Pulse)
	assert.Equal(t, 24.5, vitals.Temperature)
	assert.Equal(t, 0.0, vitals.Humidity)

	// A later partial update must not clobber untouched fields.
	s.UpdateVitals(models.VitalsUpdate{HeartRate: f(80)})
	vitals = s.Vitals()
	assert.Equal(t, 80.0, vitals.HeartRate)
	assert.Equal(t, 98.0, vitals.Pulse)
	assert.Equal(t, 24.5, vitals.Temperature)
}

func TestUpdateVitals_HistoryKeepsLastSamplesOldestFirst(t *testing.T) {
	s := store.New(store.Config{})
	defer s.Close()

	for i := 1; i <= 60; i++ {
		s.UpdateVitals(models.VitalsUpdate{HeartRate: f(float64(i))})
	}

	history := s.History()
	require.Len(t, history, store.DefaultHistoryLimit)
	assert.Equal(t, 11.0, history[0])
	assert.Equal(t, 60.0, history[len(history)-1])
}

func TestUpdateVitals_ZeroHeartRateNotRecorded(t *testing.T) {
	s := store.New(store.Config{})
	defer s.Close()

	s.UpdateVitals(models.VitalsUpdate{HeartRate: f(0)})
	s.UpdateVitals(models.VitalsUpdate{HeartRate: f(65)})
	s.UpdateVitals(models.VitalsUpdate{HeartRate: f(0)})

	assert.Equal(t, []float64{65}, s.History())
}

func TestInactivityExpiry_ResetsHeartRateAndPulseOnly(t *testing.T) {
	s := store.New(store.Config{InactivityTimeout: 50 * time.Millisecond})
	defer s.Close()

	s.UpdateVitals(models.VitalsUpdate{
		HeartRate:   f(70),
		Pulse:       f(97),
		Temperature: f(22),
		Humidity:    f(55),
	})

	require.Eventually(t, func() bool {
		return s.Vitals().HeartRate == 0
	}, time.Second, 10*time.Millisecond)

	vitals := s.Vitals()
	assert.Equal(t, 0.0, vitals.HeartRate)
	assert.Equal(t, 0.0, vitals.Pulse)
	assert.Equal(t, 22.0, vitals.Temperature)
	assert.Equal(t, 55.0, vitals.Humidity)

	// History survives the reset.
	assert.Equal(t, []float64{70}, s.History())
}

func TestInactivityExpiry_FreshUpdateReArmsTimer(t *testing.T) {
	s := store.New(store.Config{InactivityTimeout: 120 * time.Millisecond})
	defer s.Close()

	s.UpdateVitals(models.VitalsUpdate{HeartRate: f(70)})
	time.Sleep(70 * time.Millisecond)
	s.UpdateVitals(models.VitalsUpdate{Pulse: f(96)})

	// The original deadline has passed but the second update re-armed
	// the timer, so readings are still live.
	time.Sleep(70 * time.Millisecond)
	assert.Equal(t, 70.0, s.Vitals().HeartRate)

	require.Eventually(t, func() bool {
		v := s.Vitals()
		return v.HeartRate == 0 && v.Pulse == 0
	}, time.Second, 10*time.Millisecond)
}

func TestInactivityExpiry_ClimateOnlyUpdateDoesNotArm(t *testing.T) {
	s := store.New(store.Config{InactivityTimeout: 50 * time.Millisecond})
	defer s.Close()

	s.UpdateVitals(models.VitalsUpdate{Temperature: f(21)})
	time.Sleep(100 * time.Millisecond)

	// No heart-rate field was ever supplied, so nothing expires.
	assert.Equal(t, 21.0, s.Vitals().Temperature)
}

func TestSetAlarm_SetAndClear(t *testing.T) {
	s := store.New(store.Config{})
	defer s.Close()

	s.SetAlarm(str("07:00"))
	alarm := s.Alarm()
	require.NotNil(t, alarm.Time)
	assert.Equal(t, "07:00", *alarm.Time)

	s.SetAlarm(nil)
	assert.Nil(t, s.Alarm().Time)
}

func TestSetDisease_TimestampRefreshesOnRepeatedReport(t *testing.T) {
	s := store.New(store.Config{})
	defer s.Close()

	current := time.Unix(1700000000, 0)
	s.SetClock(func() time.Time { return current })

	first := s.SetDisease(str("fever"))
	require.NotNil(t, first.Timestamp)

	current = current.Add(3 * time.Second)
	second := s.SetDisease(str("fever"))
	require.NotNil(t, second.Timestamp)
	assert.Greater(t, *second.Timestamp, *first.Timestamp)

	cleared := s.SetDisease(nil)
	assert.Nil(t, cleared.Name)
	assert.Nil(t, cleared.Timestamp)
}

func TestUpdateEmergency_Transitions(t *testing.T) {
	s := store.New(store.Config{})
	defer s.Close()

	active := true
	emergency := s.UpdateEmergency(models.EmergencyUpdate{
		Active:  &active,
		Message: str("Fall Detected"),
		Patient: str("John Doe"),
	})
	assert.True(t, emergency.Active)
	assert.Equal(t, "Fall Detected", emergency.Message)
	assert.Equal(t, "John Doe", emergency.Patient)
	require.NotNil(t, emergency.Timestamp)

	cleared := false
	emergency = s.UpdateEmergency(models.EmergencyUpdate{Active: &cleared})
	assert.False(t, emergency.Active)
	assert.Nil(t, emergency.Timestamp)
	// Patient is merged state, not reset by the transition.
	assert.Equal(t, "John Doe", emergency.Patient)
}

func TestOnChange_EmitsStoreEvents(t *testing.T) {
	s := store.New(store.Config{})
	defer s.Close()

	raised := make(chan struct{}, 1)
	s.OnChange(store.EventEmergencyRaised, func(args ...interface{}) {
		raised <- struct{}{}
	})

	active := true
	s.UpdateEmergency(models.EmergencyUpdate{Active: &active})

	select {
	case <-raised:
	case <-time.After(time.Second):
		t.Fatal("expected emergency.raised event")
	}
}

func TestSnapshot_ReturnsConsistentView(t *testing.T) {
	s := store.New(store.Config{})
	defer s.Close()

	s.UpdateVitals(models.VitalsUpdate{HeartRate: f(75), Pulse: f(98)})
	s.SetAlarm(str("08:30"))
	s.SetDoctorStatus(models.DoctorComing)

	snapshot := s.Snapshot()
	assert.Equal(t, 75.0, snapshot.Vitals.HeartRate)
	require.NotNil(t, snapshot.Alarm.Time)
	assert.Equal(t, "08:30", *snapshot.Alarm.Time)
	assert.Equal(t, models.DoctorComing, snapshot.DoctorStatus)
	assert.Equal(t, []float64{75}, snapshot.History)
	assert.False(t, snapshot.GeneratedAt.IsZero())

	// Mutating the returned history must not leak into the store.
	snapshot.History[0] = -1
	assert.Equal(t, []float64{75}, s.History())
}

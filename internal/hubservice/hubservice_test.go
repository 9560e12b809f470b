// FilePath: internal/hubservice/hubservice_test.go
package hubservice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pulseguard/hub/internal/config"
	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/forwarding"
	"github.com/pulseguard/hub/internal/hubservice"
	"github.com/pulseguard/hub/internal/models"
	"github.com/pulseguard/hub/internal/repository/memory"
	"github.com/pulseguard/hub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, destinationURL string) *hubservice.HubService {
	t.Helper()
	monitor := store.New(store.Config{InactivityTimeout: time.Minute})
	t.Cleanup(monitor.Close)

	return hubservice.New(
		monitor,
		memory.NewAppointmentRepository(),
		forwarding.New(config.DestinationConfig{URL: destinationURL, Timeout: 2 * time.Second}),
		nil,
	)
}

func TestSetAlarm_TimePatternBoundaries(t *testing.T) {
	svc := newService(t, "http://localhost:1/unused")
	ctx := context.Background()

	for _, valid := range []string{"00:00", "07:00", "19:45", "23:59"} {
		v := valid
		assert.NoError(t, svc.SetAlarm(ctx, &v), "time %q should be accepted", valid)
	}
	for _, invalid := range []string{"24:00", "23:60", "7:00", "07:5", "0700", "ab:cd", ""} {
		v := invalid
		err := svc.SetAlarm(ctx, &v)
		require.Error(t, err, "time %q should be rejected", invalid)
		apiErr, ok := err.(*errors.APIError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeValidation, apiErr.Type)
	}

	assert.NoError(t, svc.SetAlarm(ctx, nil))
}

func TestUpdateEmergency_MessageFallbacks(t *testing.T) {
	svc := newService(t, "http://localhost:1/unused")
	ctx := context.Background()

	// Active with no message gets the generic alert text.
	emergency, err := svc.UpdateEmergency(ctx, "active", nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, emergency.Active)
	assert.Equal(t, "Emergency Alert", emergency.Message)

	// Clearing without a message blanks it rather than keeping the old one.
	emergency, err = svc.UpdateEmergency(ctx, "cleared", nil, nil, nil)
	require.NoError(t, err)
	assert.False(t, emergency.Active)
	assert.Empty(t, emergency.Message)

	_, err = svc.UpdateEmergency(ctx, "panic", nil, nil, nil)
	require.Error(t, err)
}

func TestApproveAppointment_ForwardFailureDoesNotFailApproval(t *testing.T) {
	destination := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer destination.Close()

	svc := newService(t, destination.URL)
	ctx := context.Background()

	appt := &models.Appointment{Patient: "John Doe", Doctor: "Dr. Smith"}
	require.NoError(t, svc.CreateAppointment(ctx, appt))

	// The destination rejects the delivery, but scheduling still succeeds.
	approved, err := svc.ApproveAppointment(ctx, appt.ID, "14:30")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, approved.Status)

	stored, err := svc.Appointments.Get(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, stored.Status)
}

func TestApproveAppointment_UnknownID(t *testing.T) {
	svc := newService(t, "http://localhost:1/unused")

	_, err := svc.ApproveAppointment(context.Background(), "missing", "14:30")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCreateAppointment_Validation(t *testing.T) {
	svc := newService(t, "http://localhost:1/unused")
	ctx := context.Background()

	err := svc.CreateAppointment(ctx, &models.Appointment{Doctor: "Dr. Smith"})
	require.Error(t, err)

	err = svc.CreateAppointment(ctx, &models.Appointment{Patient: "John Doe"})
	require.Error(t, err)

	err = svc.CreateAppointment(ctx, &models.Appointment{
		Patient: "John Doe", Doctor: "Dr. Smith", Time: "25:00",
	})
	require.Error(t, err)
}

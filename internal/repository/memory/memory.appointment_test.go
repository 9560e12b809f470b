// FilePath: internal/repository/memory/memory.appointment_test.go
package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAppointment(t *testing.T, repo *AppointmentRepo, key string, createdAt time.Time) *models.Appointment {
	t.Helper()
	appt := &models.Appointment{
		Key:       key,
		Patient:   "John Doe",
		Doctor:    "Dr. Smith",
		Status:    models.AppointmentPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), appt))
	return appt
}

func TestMemoryRepo_CreateAssignsID(t *testing.T) {
	repo := NewAppointmentRepository()
	appt := seedAppointment(t, repo, "esp32-001", time.Now())
	assert.NotEmpty(t, appt.ID)

	got, err := repo.Get(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Patient)
}

func TestMemoryRepo_GetNotFound(t *testing.T) {
	repo := NewAppointmentRepository()

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestMemoryRepo_GetByKeyReturnsNewest(t *testing.T) {
	repo := NewAppointmentRepository()
	now := time.Now()
	seedAppointment(t, repo, "esp32-001", now.Add(-time.Hour))
	newest := seedAppointment(t, repo, "esp32-001", now)
	seedAppointment(t, repo, "esp32-002", now.Add(time.Minute))

	got, err := repo.GetByKey(context.Background(), "esp32-001")
	require.NoError(t, err)
	assert.Equal(t, newest.ID, got.ID)
}

func TestMemoryRepo_Latest(t *testing.T) {
	repo := NewAppointmentRepository()

	_, err := repo.Latest(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	now := time.Now()
	seedAppointment(t, repo, "a", now.Add(-time.Hour))
	newest := seedAppointment(t, repo, "b", now)

	got, err := repo.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, newest.ID, got.ID)
}

func TestMemoryRepo_ListFilterAndPagination(t *testing.T) {
	repo := NewAppointmentRepository()
	now := time.Now()
	for i := 0; i < 5; i++ {
		appt := seedAppointment(t, repo, fmt.Sprintf("key-%d", i), now.Add(time.Duration(i)*time.Minute))
		if i%2 == 0 {
			appt.Status = models.AppointmentScheduled
			require.NoError(t, repo.Update(context.Background(), appt))
		}
	}

	scheduled, err := repo.List(context.Background(), models.AppointmentFilters{Status: "scheduled"})
	require.NoError(t, err)
	assert.Len(t, scheduled, 3)

	// Newest first.
	all, err := repo.List(context.Background(), models.AppointmentFilters{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "key-4", all[0].Key)

	page, err := repo.List(context.Background(), models.AppointmentFilters{Offset: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	empty, err := repo.List(context.Background(), models.AppointmentFilters{Offset: 99})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryRepo_UpdateAndDelete(t *testing.T) {
	repo := NewAppointmentRepository()
	appt := seedAppointment(t, repo, "esp32-001", time.Now())

	appt.Status = models.AppointmentScheduled
	appt.Time = "14:30"
	require.NoError(t, repo.Update(context.Background(), appt))

	got, err := repo.Get(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, got.Status)
	assert.Equal(t, "14:30", got.Time)

	require.NoError(t, repo.Delete(context.Background(), appt.ID))
	_, err = repo.Get(context.Background(), appt.ID)
	assert.True(t, errors.IsNotFound(err))

	err = repo.Update(context.Background(), &models.Appointment{ID: "missing"})
	assert.True(t, errors.IsNotFound(err))
	err = repo.Delete(context.Background(), "missing")
	assert.True(t, errors.IsNotFound(err))
}

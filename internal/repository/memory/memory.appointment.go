// FilePath: internal/repository/memory/memory.appointment.go
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// AppointmentRepo is the in-process appointment store backing the memory
// database driver. State lives for the lifetime of the process only.
type AppointmentRepo struct {
	mu    sync.RWMutex
	appts map[string]models.Appointment
}

func NewAppointmentRepository() *AppointmentRepo {
	return &AppointmentRepo{
		appts: make(map[string]models.Appointment),
	}
}

func (r *AppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appt.ID == "" {
		appt.ID = nuts.NID("apt", 12)
	}
	if _, exists := r.appts[appt.ID]; exists {
		return errors.NewDatabaseError("appointment already exists", nil)
	}
	r.appts[appt.ID] = *appt
	return nil
}

func (r *AppointmentRepo) Get(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.appts[id]
	if !ok {
		return nil, errors.NewNotFoundError("appointment not found", nil)
	}
	return &appt, nil
}

func (r *AppointmentRepo) GetByKey(ctx context.Context, key string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *models.Appointment
	for id := range r.appts {
		appt := r.appts[id]
		if appt.Key != key {
			continue
		}
		if latest == nil || appt.CreatedAt.After(latest.CreatedAt) {
			latest = &appt
		}
	}
	if latest == nil {
		return nil, errors.NewNotFoundError("appointment not found", nil)
	}
	return latest, nil
}

func (r *AppointmentRepo) Latest(ctx context.Context) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *models.Appointment
	for id := range r.appts {
		appt := r.appts[id]
		if latest == nil || appt.CreatedAt.After(latest.CreatedAt) {
			latest = &appt
		}
	}
	if latest == nil {
		return nil, errors.NewNotFoundError("no appointments", nil)
	}
	return latest, nil
}

func (r *AppointmentRepo) List(ctx context.Context, filters models.AppointmentFilters) ([]*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Appointment, 0, len(r.appts))
	for id := range r.appts {
		appt := r.appts[id]
		if filters.Status != "" && string(appt.Status) != filters.Status {
			continue
		}
		all = append(all, appt)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []*models.Appointment{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	out := make([]*models.Appointment, 0, end-offset)
	for i := offset; i < end; i++ {
		appt := all[i]
		out = append(out, &appt)
	}
	return out, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appts[appt.ID]; !ok {
		return errors.NewNotFoundError("appointment not found", nil)
	}
	r.appts[appt.ID] = *appt
	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appts[id]; !ok {
		return errors.NewNotFoundError("appointment not found", nil)
	}
	delete(r.appts, id)
	return nil
}

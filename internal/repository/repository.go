// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/pulseguard/hub/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate indicates that a resource already exists
	ErrDuplicate = errors.New("resource already exists")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// AppointmentRepository defines the interface for appointment persistence.
// The hub ships two implementations: an in-process memory store and a
// PostgreSQL store, selected by configuration.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	Get(ctx context.Context, id string) (*models.Appointment, error)
	GetByKey(ctx context.Context, key string) (*models.Appointment, error)
	Latest(ctx context.Context) (*models.Appointment, error)
	List(ctx context.Context, filters models.AppointmentFilters) ([]*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
}

// FilePath: internal/repository/postgres/postgres.appointment.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/pulseguard/hub/internal/database"
	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

type AppointmentRepo struct {
	PostgresBaseRepo
}

func NewAppointmentRepository(db database.DB) *AppointmentRepo {
	repo := &PostgresBaseRepo{db: db}
	return &AppointmentRepo{PostgresBaseRepo: *repo}
}

func (r *AppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	if appt.ID == "" {
		appt.ID = nuts.NID("apt", 12)
	}
	query := `
		INSERT INTO appointments (
			id, key, patient, doctor, time, description, status,
			created_at, updated_at
		) VALUES (
			:id, :key, :patient, :doctor, :time, :description, :status,
			:created_at, :updated_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, appt)
	if err != nil {
		return errors.NewDatabaseError("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepo) Get(ctx context.Context, id string) (*models.Appointment, error) {
	appt := &models.Appointment{}
	query := `SELECT * FROM appointments WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, appt, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("appointment not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get appointment", err)
	}
	return appt, nil
}

func (r *AppointmentRepo) GetByKey(ctx context.Context, key string) (*models.Appointment, error) {
	appt := &models.Appointment{}
	query := `SELECT * FROM appointments WHERE key = $1 ORDER BY created_at DESC LIMIT 1`

	err := r.db.GetDB().GetContext(ctx, appt, query, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("appointment not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get appointment by key", err)
	}
	return appt, nil
}

func (r *AppointmentRepo) Latest(ctx context.Context) (*models.Appointment, error) {
	appt := &models.Appointment{}
	query := `SELECT * FROM appointments ORDER BY created_at DESC LIMIT 1`

	err := r.db.GetDB().GetContext(ctx, appt, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("no appointments", err)
		}
		return nil, errors.NewDatabaseError("failed to get latest appointment", err)
	}
	return appt, nil
}

func (r *AppointmentRepo) List(ctx context.Context, filters models.AppointmentFilters) ([]*models.Appointment, error) {
	appts := []*models.Appointment{}
	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	if filters.Status != "" {
		query := `SELECT * FROM appointments WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		if err := r.db.GetDB().SelectContext(ctx, &appts, query, filters.Status, limit, offset); err != nil {
			return nil, errors.NewDatabaseError("failed to list appointments", err)
		}
		return appts, nil
	}

	query := `SELECT * FROM appointments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := r.db.GetDB().SelectContext(ctx, &appts, query, limit, offset); err != nil {
		return nil, errors.NewDatabaseError("failed to list appointments", err)
	}
	return appts, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error {
	query := `
		UPDATE appointments SET
			patient = :patient,
			doctor = :doctor,
			time = :time,
			description = :description,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, appt)
	if err != nil {
		return errors.NewDatabaseError("failed to update appointment", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("appointment not found", nil)
	}

	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM appointments WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete appointment", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("appointment not found", nil)
	}

	return nil
}

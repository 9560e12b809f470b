// FilePath: internal/models/models.appointment.go
package models

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentScheduled AppointmentStatus = "scheduled"
)

// Appointment is a scheduling record. Key is an optional correlation id
// supplied by the requesting device so it can poll for the outcome.
type Appointment struct {
	ID          string            `json:"id" db:"id"`
	Key         string            `json:"key,omitempty" db:"key"`
	Patient     string            `json:"patient" db:"patient"`
	Doctor      string            `json:"doctor" db:"doctor"`
	Time        string            `json:"time,omitempty" db:"time"`
	Description string            `json:"description,omitempty" db:"description"`
	Status      AppointmentStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// AppointmentFilters narrows appointment listings.
type AppointmentFilters struct {
	Status string `schema:"status"`
	Offset int    `schema:"offset"`
	Limit  int    `schema:"limit"`
}

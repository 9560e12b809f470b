// FilePath: api/resources/api.resource.appointments.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/hubservice"
	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// AppointmentHandlers encapsulates the appointment HTTP handlers
type AppointmentHandlers struct {
	hubservice *hubservice.HubService
}

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// @Summary Get appointments
// @Description Without query parameters returns the most recent appointment
// @Description (null when none exist); with status/offset/limit returns a list
// @Tags appointments
// @Produce json
// @Success 200 {object} models.Appointment
// @Failure 400 {object} errors.APIError
// @Router /appointment [get]
func (h *AppointmentHandlers) GetAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	if len(r.URL.Query()) == 0 {
		appt, err := h.hubservice.LatestAppointment(r.Context())
		if err != nil {
			respondServiceError(w, requestID, err, "failed to fetch appointment")
			return
		}
		respondWithJSON(w, http.StatusOK, appt)
		return
	}

	var filters models.AppointmentFilters
	if err := queryDecoder.Decode(&filters, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	appts, err := h.hubservice.ListAppointments(r.Context(), filters)
	if err != nil {
		respondServiceError(w, requestID, err, "failed to list appointments")
		return
	}

	respondWithJSON(w, http.StatusOK, appts)
}

// @Summary Create an appointment request
// @Description Stores a new appointment; status defaults to pending
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body models.Appointment true "Appointment details"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} errors.APIError
// @Router /appointment [post]
func (h *AppointmentHandlers) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var appt models.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appt); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.CreateAppointment(r.Context(), &appt); err != nil {
		respondServiceError(w, requestID, err, "failed to create appointment")
		return
	}

	respondWithJSON(w, http.StatusCreated, appt)
}

// @Summary Approve an appointment
// @Description Transitions a pending appointment to scheduled at the given
// @Description time and forwards it to the destination collaborator
// @Tags appointments
// @Accept json
// @Produce json
// @Success 200 {object} models.Appointment
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /appointment [put]
func (h *AppointmentHandlers) ApproveAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var body struct {
		ID   string `json:"id"`
		Key  string `json:"key"`
		Time string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	id := body.ID
	if id == "" && body.Key != "" {
		appt, err := h.hubservice.Appointments.GetByKey(r.Context(), body.Key)
		if err != nil {
			respondServiceError(w, requestID, err, "failed to resolve appointment key")
			return
		}
		id = appt.ID
	}
	if id == "" {
		respondWithError(w, errors.NewValidationError("id or key is required", nil).WithRequestID(requestID))
		return
	}

	appt, err := h.hubservice.ApproveAppointment(r.Context(), id, body.Time)
	if err != nil {
		respondServiceError(w, requestID, err, "failed to approve appointment")
		return
	}

	respondWithJSON(w, http.StatusOK, appt)
}

// FilePath: api/resources/api.resource.alarm.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/pulseguard/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// @Summary Get the alarm setting
// @Description Get the currently armed reminder time, null when none is set
// @Tags alarm
// @Produce json
// @Success 200 {object} models.Alarm
// @Router /alarm [get]
func (h *MonitorHandlers) GetAlarm(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.hubservice.Monitor.Alarm())
}

// @Summary Set or clear the alarm
// @Description Arm the reminder at "HH:MM", or clear it with a null time
// @Tags alarm
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /alarm [post]
func (h *MonitorHandlers) PostAlarm(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var body struct {
		Time *string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.SetAlarm(r.Context(), body.Time); err != nil {
		respondServiceError(w, requestID, err, "failed to set alarm")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Alarm set successfully"})
}

// GetAlarmTrigger reports whether the device should currently be sounding.
func (h *MonitorHandlers) GetAlarmTrigger(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status": string(h.hubservice.Monitor.AlarmStatus()),
	})
}

// PostAlarmTrigger flips the ring flag; the web app posts "ringing" while
// the on-screen alarm sounds and "idle" on dismissal.
func (h *MonitorHandlers) PostAlarmTrigger(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.SetAlarmStatus(r.Context(), body.Status); err != nil {
		respondServiceError(w, requestID, err, "failed to set alarm status")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Alarm status set to " + body.Status})
}

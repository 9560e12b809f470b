// FilePath: api/resources/api.resource.emergency.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/pulseguard/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// @Summary Get the emergency record
// @Tags emergency
// @Produce json
// @Success 200 {object} models.Emergency
// @Router /emergency [get]
func (h *MonitorHandlers) GetEmergency(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.hubservice.Monitor.Emergency())
}

// @Summary Update the emergency state
// @Description Raise ("active") or clear ("cleared") the fall/SOS alert
// @Tags emergency
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.APIError
// @Router /emergency [post]
func (h *MonitorHandlers) PostEmergency(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var body struct {
		Status  string  `json:"status"`
		Message *string `json:"message"`
		Patient *string `json:"patient"`
		Address *string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	emergency, err := h.hubservice.UpdateEmergency(r.Context(), body.Status, body.Message, body.Patient, body.Address)
	if err != nil {
		respondServiceError(w, requestID, err, "failed to update emergency")
		return
	}

	nuts.L.Infof("[API] Emergency update: active=%v", emergency.Active)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Emergency status updated",
	})
}

// GetDoctorStatus serves the caregiver acknowledgement flag the device polls.
func (h *MonitorHandlers) GetDoctorStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status": string(h.hubservice.Monitor.DoctorStatus()),
	})
}

// PostDoctorStatus records whether the caregiver is on their way.
func (h *MonitorHandlers) PostDoctorStatus(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.SetDoctorStatus(r.Context(), body.Status); err != nil {
		respondServiceError(w, requestID, err, "failed to set doctor status")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Doctor status set to " + body.Status})
}

// @Summary Get the latest disease report
// @Tags disease
// @Produce json
// @Success 200 {object} models.Disease
// @Router /disease [get]
func (h *MonitorHandlers) GetDisease(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.hubservice.Monitor.Disease())
}

// @Summary Report or clear a disease
// @Description A non-empty name files a fresh report; null clears it
// @Tags disease
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /disease [post]
func (h *MonitorHandlers) PostDisease(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var body struct {
		Disease *string `json:"disease"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, errors.NewValidationError(`invalid request body, "disease" must be a string or null`, err).WithRequestID(requestID))
		return
	}

	if _, err := h.hubservice.ReportDisease(r.Context(), body.Disease); err != nil {
		respondServiceError(w, requestID, err, "failed to report disease")
		return
	}

	if body.Disease == nil {
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Disease report cleared successfully"})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Disease report received successfully"})
}

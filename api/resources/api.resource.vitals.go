// FilePath: api/resources/api.resource.vitals.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/hubservice"
	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// MonitorHandlers encapsulates the monitor-state HTTP handlers: vitals,
// alarm, emergency, doctor status and disease reports.
type MonitorHandlers struct {
	hubservice *hubservice.HubService
}

// vitalsResponse is the merged view polled by dashboards: the latest vitals
// with the emergency record embedded.
type vitalsResponse struct {
	models.Vitals
	Emergency models.Emergency `json:"emergency"`
}

// @Summary Get latest vitals
// @Description Get the latest vitals snapshot merged with the emergency record
// @Tags vitals
// @Produce json
// @Success 200 {object} vitalsResponse
// @Router /vitals [get]
func (h *MonitorHandlers) GetVitals(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, vitalsResponse{
		Vitals:    h.hubservice.Monitor.Vitals(),
		Emergency: h.hubservice.Monitor.Emergency(),
	})
}

// @Summary Ingest vitals
// @Description Merge a partial sensor payload into the monitor state
// @Tags vitals
// @Accept json
// @Produce json
// @Param vitals body models.VitalsUpdate true "Partial vitals payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /vitals [post]
func (h *MonitorHandlers) PostVitals(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var update models.VitalsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	vitals := h.hubservice.IngestVitals(r.Context(), update)
	nuts.L.Debugf("[API] Vitals ingested: hr=%.1f spo2=%.1f", vitals.HeartRate, vitals.Pulse)

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Data received successfully"})
}

// GetVitalsHistory serves the buffered heart-rate samples, oldest first.
func (h *MonitorHandlers) GetVitalsHistory(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string][]float64{
		"historicalHeartRates": h.hubservice.Monitor.History(),
	})
}

// PostDHT ingests climate-only payloads from the DHT sensor. Heart-rate
// fields are never touched by this endpoint.
func (h *MonitorHandlers) PostDHT(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var body struct {
		Temperature *float64 `json:"temperature"`
		Humidity    *float64 `json:"humidity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	h.hubservice.IngestClimate(r.Context(), body.Temperature, body.Humidity)

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "DHT Data received successfully"})
}

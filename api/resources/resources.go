// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/pulseguard/hub/internal/errors"
	"github.com/pulseguard/hub/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Monitor      *MonitorHandlers
	Appointments *AppointmentHandlers
	Destination  *DestinationHandlers
	HealthCheck  func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *hubservice.HubService) *Resources {
	return &Resources{
		Monitor:      &MonitorHandlers{hubservice: svc},
		Appointments: &AppointmentHandlers{hubservice: svc},
		Destination:  &DestinationHandlers{},
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// Helper functions

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

// respondServiceError maps service-layer errors onto HTTP responses,
// preserving the APIError taxonomy when the service produced one.
func respondServiceError(w http.ResponseWriter, requestID string, err error, fallback string) {
	if apiErr, ok := err.(*errors.APIError); ok {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	respondWithError(w, errors.NewInternalError(fallback, err).WithRequestID(requestID))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

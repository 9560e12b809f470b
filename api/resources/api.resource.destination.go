// FilePath: api/resources/api.resource.destination.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/pulseguard/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// DestinationHandlers stands in for the downstream scheduling system that
// receives finalized appointments. It logs and acknowledges.
type DestinationHandlers struct{}

func (h *DestinationHandlers) ReceiveAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	pretty, _ := json.MarshalIndent(payload, "", "  ")
	nuts.L.Infof("[Destination] Final appointment received:\n%s", string(pretty))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Appointment received at destination",
	})
}

// FilePath: internal/forwarding/forwarder.go
package forwarding

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/pulseguard/hub/internal/config"
	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// Forwarder delivers finalized scheduled appointments to the destination
// collaborator. Delivery is best-effort with no retry: the caller decides
// whether a failed forward fails the triggering request (it does not).
type Forwarder struct {
	client *resty.Client
	url    string
}

func New(cfg config.DestinationConfig) *Forwarder {
	client := resty.New().SetTimeout(cfg.Timeout)
	return &Forwarder{
		client: client,
		url:    cfg.URL,
	}
}

// ForwardAppointment posts the appointment to the destination endpoint.
func (f *Forwarder) ForwardAppointment(ctx context.Context, appt *models.Appointment) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(appt).
		Post(f.url)
	if err != nil {
		return fmt.Errorf("forwarding appointment %s: %w", appt.ID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("forwarding appointment %s: destination responded %d", appt.ID, resp.StatusCode())
	}

	nuts.L.Infof("[Forwarder] Appointment %s forwarded to %s", appt.ID, f.url)
	return nil
}

// FilePath: internal/poller/client.go
package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pulseguard/hub/internal/models"
)

// Client wraps the hub's JSON API for polling clients: the device
// simulator and the watcher state machines.
type Client struct {
	http *resty.Client
}

// VitalsSnapshot mirrors the merged GET /api/vitals response.
type VitalsSnapshot struct {
	models.Vitals
	Emergency models.Emergency `json:"emergency"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	resp, err := c.http.R().SetContext(ctx).SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("GET %s: hub responded %d", path, resp.StatusCode())
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	resp, err := c.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("POST %s: hub responded %d", path, resp.StatusCode())
	}
	return nil
}

// Vitals fetches the merged vitals/emergency snapshot.
func (c *Client) Vitals(ctx context.Context) (VitalsSnapshot, error) {
	var out VitalsSnapshot
	err := c.get(ctx, "/api/vitals", &out)
	return out, err
}

// PostVitals sends a partial vitals payload.
func (c *Client) PostVitals(ctx context.Context, update models.VitalsUpdate) error {
	return c.post(ctx, "/api/vitals", update)
}

// PostDHT sends a climate-only payload.
func (c *Client) PostDHT(ctx context.Context, temperature, humidity float64) error {
	return c.post(ctx, "/api/dht", map[string]float64{
		"temperature": temperature,
		"humidity":    humidity,
	})
}

// Alarm fetches the armed reminder time.
func (c *Client) Alarm(ctx context.Context) (models.Alarm, error) {
	var out models.Alarm
	err := c.get(ctx, "/api/alarm", &out)
	return out, err
}

// SetAlarm arms or clears (nil) the reminder.
func (c *Client) SetAlarm(ctx context.Context, t *string) error {
	return c.post(ctx, "/api/alarm", map[string]*string{"time": t})
}

// AlarmTrigger fetches the current ring flag.
func (c *Client) AlarmTrigger(ctx context.Context) (models.AlarmStatus, error) {
	var out struct {
		Status models.AlarmStatus `json:"status"`
	}
	err := c.get(ctx, "/api/alarm/trigger", &out)
	return out.Status, err
}

// SetAlarmTrigger flips the ring flag.
func (c *Client) SetAlarmTrigger(ctx context.Context, status models.AlarmStatus) error {
	return c.post(ctx, "/api/alarm/trigger", map[string]string{"status": string(status)})
}

// Disease fetches the latest disease report.
func (c *Client) Disease(ctx context.Context) (models.Disease, error) {
	var out models.Disease
	err := c.get(ctx, "/api/disease", &out)
	return out, err
}

// PostDisease files a disease report.
func (c *Client) PostDisease(ctx context.Context, name string) error {
	return c.post(ctx, "/api/disease", map[string]string{"disease": name})
}

// ClearDisease clears the current report.
func (c *Client) ClearDisease(ctx context.Context) error {
	return c.post(ctx, "/api/disease", map[string]*string{"disease": nil})
}

// SetDoctorStatus records the caregiver acknowledgement.
func (c *Client) SetDoctorStatus(ctx context.Context, status models.DoctorStatus) error {
	return c.post(ctx, "/api/doctor/status", map[string]string{"status": string(status)})
}

// PostEmergency raises or clears the fall/SOS alert.
func (c *Client) PostEmergency(ctx context.Context, status, message string) error {
	return c.post(ctx, "/api/emergency", map[string]string{
		"status":  status,
		"message": message,
	})
}

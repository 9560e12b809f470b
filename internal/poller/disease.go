// FilePath: internal/poller/disease.go
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// DiseaseWatcherConfig tunes the disease report polling loop.
type DiseaseWatcherConfig struct {
	PollInterval time.Duration
	// OnReport fires once per new report, keyed by the report timestamp.
	OnReport func(name string, timestamp int64)
}

// DiseaseWatcher polls the latest disease report and surfaces each new one
// exactly once, deduplicated by remembering the last seen timestamp. The
// hub refreshes the timestamp on every report, so a repeated diagnosis is
// still surfaced again.
type DiseaseWatcher struct {
	client *Client
	cfg    DiseaseWatcherConfig

	mu       sync.Mutex
	lastSeen *int64
}

func NewDiseaseWatcher(client *Client, cfg DiseaseWatcherConfig) *DiseaseWatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	return &DiseaseWatcher{
		client: client,
		cfg:    cfg,
	}
}

// Run polls until ctx is cancelled.
func (w *DiseaseWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check performs one poll cycle.
func (w *DiseaseWatcher) Check(ctx context.Context) {
	disease, err := w.client.Disease(ctx)
	if err != nil {
		nuts.L.Warnf("[DiseaseWatcher] Failed to poll disease: %v", err)
		return
	}
	if disease.Name == nil || disease.Timestamp == nil {
		return
	}

	w.mu.Lock()
	if w.lastSeen != nil && *w.lastSeen == *disease.Timestamp {
		w.mu.Unlock()
		return
	}
	ts := *disease.Timestamp
	w.lastSeen = &ts
	w.mu.Unlock()

	nuts.L.Infof("[DiseaseWatcher] New disease report: %s", *disease.Name)
	if w.cfg.OnReport != nil {
		w.cfg.OnReport(*disease.Name, ts)
	}
}

// Acknowledge clears the report on the hub and optionally records that the
// caregiver is on their way.
func (w *DiseaseWatcher) Acknowledge(ctx context.Context, doctorComing bool) error {
	if err := w.client.ClearDisease(ctx); err != nil {
		return err
	}
	if doctorComing {
		return w.client.SetDoctorStatus(ctx, models.DoctorComing)
	}
	return nil
}

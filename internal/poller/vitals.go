// FilePath: internal/poller/vitals.go
package poller

import (
	"context"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// VitalsWatcherConfig tunes the vitals polling loop.
type VitalsWatcherConfig struct {
	PollInterval time.Duration
	OnSnapshot   func(snapshot VitalsSnapshot)
}

// VitalsWatcher polls the merged vitals/emergency snapshot on a fixed
// interval. Purely presentational: no state beyond the last fetch, and
// staleness up to one polling period is accepted.
type VitalsWatcher struct {
	client *Client
	cfg    VitalsWatcherConfig
}

func NewVitalsWatcher(client *Client, cfg VitalsWatcherConfig) *VitalsWatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2500 * time.Millisecond
	}
	return &VitalsWatcher{
		client: client,
		cfg:    cfg,
	}
}

// Run polls until ctx is cancelled.
func (w *VitalsWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot, err := w.client.Vitals(ctx)
			if err != nil {
				nuts.L.Warnf("[VitalsWatcher] Failed to poll vitals: %v", err)
				continue
			}
			if w.cfg.OnSnapshot != nil {
				w.cfg.OnSnapshot(snapshot)
			}
		}
	}
}

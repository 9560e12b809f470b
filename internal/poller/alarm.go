// FilePath: internal/poller/alarm.go
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/pulseguard/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// AlarmWatcherConfig tunes the alarm polling loop. Zero values fall back
// to the dashboard defaults.
type AlarmWatcherConfig struct {
	// PollInterval is how often the armed time is refreshed from the hub.
	PollInterval time.Duration
	// TickInterval is how often the wall clock is compared to the armed time.
	TickInterval time.Duration
	// RingInterval is how often the ring notification is re-posted while ringing.
	RingInterval time.Duration
	// OnRing is called once when the alarm starts ringing.
	OnRing func(armedAt string)
}

// AlarmWatcher reproduces the dashboard's reminder state machine: poll the
// armed "HH:MM" time, compare it to the wall clock every tick, and on an
// exact match start ringing, re-posting the ring notification until
// Dismiss. Dismissal clears the armed time on the hub, so the alarm cannot
// re-trigger within the same minute.
type AlarmWatcher struct {
	client *Client
	cfg    AlarmWatcherConfig
	now    func() time.Time

	mu      sync.Mutex
	armed   *string
	ringing bool
}

func NewAlarmWatcher(client *Client, cfg AlarmWatcherConfig) *AlarmWatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.RingInterval <= 0 {
		cfg.RingInterval = 2 * time.Second
	}
	return &AlarmWatcher{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// SetClock replaces the wall clock, for tests.
func (w *AlarmWatcher) SetClock(now func() time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.now = now
}

// Ringing reports whether the alarm is currently sounding.
func (w *AlarmWatcher) Ringing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ringing
}

// Run polls until ctx is cancelled.
func (w *AlarmWatcher) Run(ctx context.Context) {
	poll := time.NewTicker(w.cfg.PollInterval)
	tick := time.NewTicker(w.cfg.TickInterval)
	ring := time.NewTicker(w.cfg.RingInterval)
	defer poll.Stop()
	defer tick.Stop()
	defer ring.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-poll.C:
			w.refresh(ctx)
		case <-tick.C:
			w.check(ctx)
		case <-ring.C:
			w.notifyRinging(ctx)
		}
	}
}

// refresh pulls the armed time from the hub.
func (w *AlarmWatcher) refresh(ctx context.Context) {
	alarm, err := w.client.Alarm(ctx)
	if err != nil {
		nuts.L.Warnf("[AlarmWatcher] Failed to poll alarm: %v", err)
		return
	}
	w.mu.Lock()
	w.armed = alarm.Time
	w.mu.Unlock()
}

// check compares the wall clock to the armed time and transitions to
// ringing on an exact minute match.
func (w *AlarmWatcher) check(ctx context.Context) {
	w.mu.Lock()
	if w.ringing || w.armed == nil || w.now().Format("15:04") != *w.armed {
		w.mu.Unlock()
		return
	}
	w.ringing = true
	armedAt := *w.armed
	onRing := w.cfg.OnRing
	w.mu.Unlock()

	nuts.L.Infof("[AlarmWatcher] Alarm ringing at %s", armedAt)
	if onRing != nil {
		onRing(armedAt)
	}
	if err := w.client.SetAlarmTrigger(ctx, models.AlarmRinging); err != nil {
		nuts.L.Warnf("[AlarmWatcher] Failed to post ring notification: %v", err)
	}
}

// notifyRinging re-posts the ring notification while the alarm sounds.
func (w *AlarmWatcher) notifyRinging(ctx context.Context) {
	if !w.Ringing() {
		return
	}
	if err := w.client.SetAlarmTrigger(ctx, models.AlarmRinging); err != nil {
		nuts.L.Warnf("[AlarmWatcher] Failed to post ring notification: %v", err)
	}
}

// Dismiss stops the ringing alarm: the armed time is cleared on the hub and
// the ring flag reset to idle.
func (w *AlarmWatcher) Dismiss(ctx context.Context) error {
	w.mu.Lock()
	w.ringing = false
	w.armed = nil
	w.mu.Unlock()

	if err := w.client.SetAlarm(ctx, nil); err != nil {
		return err
	}
	return w.client.SetAlarmTrigger(ctx, models.AlarmIdle)
}

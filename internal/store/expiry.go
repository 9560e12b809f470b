// FilePath: internal/store/expiry.go
package store

import "time"

// debounce is a single cancellable deferred task. Arming it again replaces
// any pending run; at most one scheduled fire is live at any time.
//
// The zero value is ready to use. Callers must serialize access themselves;
// MonitorStore does so under its own mutex. Each Arm bumps a generation
// counter and the fire callback receives the generation it was armed with,
// so a superseded timer that already left time.AfterFunc's queue can detect
// it lost the race and do nothing.
type debounce struct {
	gen   uint64
	timer *time.Timer
}

// Arm schedules fn after d, cancelling any pending schedule.
func (t *debounce) Arm(d time.Duration, fn func(gen uint64)) {
	t.gen++
	gen := t.gen
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(d, func() { fn(gen) })
}

// Cancel stops any pending fire and invalidates outstanding generations.
func (t *debounce) Cancel() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Live reports whether gen is still the armed generation.
func (t *debounce) Live(gen uint64) bool {
	return t.timer != nil && t.gen == gen
}

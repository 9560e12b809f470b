// FilePath: internal/store/expiry_test.go
package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounce_ArmSupersedesPending(t *testing.T) {
	var mu sync.Mutex
	var d debounce
	count := 0

	// Mirrors store usage: the callback re-acquires the lock and checks
	// its generation before acting.
	fire := func(gen uint64) {
		mu.Lock()
		defer mu.Unlock()
		if d.Live(gen) {
			count++
		}
	}

	mu.Lock()
	d.Arm(30*time.Millisecond, fire)
	d.Arm(30*time.Millisecond, fire)
	mu.Unlock()

	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestDebounce_CancelStopsPendingFire(t *testing.T) {
	var mu sync.Mutex
	count := 0

	var d debounce
	d.Arm(30*time.Millisecond, func(gen uint64) {
		mu.Lock()
		defer mu.Unlock()
		if d.Live(gen) {
			count++
		}
	})
	d.Cancel()

	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}

func TestDebounce_LiveTracksGenerations(t *testing.T) {
	var d debounce
	assert.False(t, d.Live(0))

	d.Arm(time.Hour, func(uint64) {})
	assert.True(t, d.Live(1))

	d.Arm(time.Hour, func(uint64) {})
	assert.False(t, d.Live(1))
	assert.True(t, d.Live(2))

	d.Cancel()
	assert.False(t, d.Live(2))
}

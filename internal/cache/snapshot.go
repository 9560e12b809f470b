// FilePath: internal/cache/snapshot.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pulseguard/hub/internal/config"
	"github.com/pulseguard/hub/internal/models"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

const (
	snapshotKey = "pulseguard:monitor:snapshot"
	snapshotTTL = 60 * time.Second
)

// SnapshotMirror pushes the latest monitor snapshot into Redis so sibling
// processes and dashboards can read it without polling the hub. A nil
// mirror is valid and writes nothing; failures are logged, never fatal.
type SnapshotMirror struct {
	client *redis.Client
}

// New connects to Redis per config. Returns nil when no host is configured.
func New(cfg config.RedisConfig) *SnapshotMirror {
	if cfg.Host == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &SnapshotMirror{client: client}
}

// Store writes the snapshot under a short TTL.
func (m *SnapshotMirror) Store(ctx context.Context, snapshot models.MonitorSnapshot) {
	if m == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		nuts.L.Errorf("[SnapshotMirror] Failed to marshal snapshot: %v", err)
		return
	}
	if err := m.client.Set(ctx, snapshotKey, data, snapshotTTL).Err(); err != nil {
		nuts.L.Warnf("[SnapshotMirror] Failed to write snapshot: %v", err)
	}
}

// Close releases the Redis connection.
func (m *SnapshotMirror) Close() error {
	if m == nil {
		return nil
	}
	return m.client.Close()
}

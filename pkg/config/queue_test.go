package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 10, cfg.MaxConcurrentTasks)
	assert.Equal(t, 1*time.Second, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 15*time.Minute, cfg.TaskTimeout)
	assert.Equal(t, 15*time.Minute, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 1*time.Minute, cfg.OrphanDetectionInterval)
	assert.Equal(t, 5*time.Minute, cfg.OrphanThreshold)

	// A worker must be able to miss several heartbeats before its task is
	// declared orphaned and re-queued.
	assert.Greater(t, cfg.OrphanThreshold, 3*cfg.HeartbeatInterval)
}

func TestLoadQueueConfigEnvOverrides(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "12")
	t.Setenv("QUEUE_MAX_CONCURRENT_TASKS", "40")
	t.Setenv("QUEUE_POLL_INTERVAL", "250ms")
	t.Setenv("QUEUE_POLL_INTERVAL_JITTER", "100ms")
	t.Setenv("QUEUE_TASK_TIMEOUT", "5m")
	t.Setenv("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", "5m")
	t.Setenv("QUEUE_HEARTBEAT_INTERVAL", "10s")
	t.Setenv("QUEUE_ORPHAN_DETECTION_INTERVAL", "30s")
	t.Setenv("QUEUE_ORPHAN_THRESHOLD", "90s")

	cfg := LoadQueueConfig()

	assert.Equal(t, 12, cfg.WorkerCount)
	assert.Equal(t, 40, cfg.MaxConcurrentTasks)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 5*time.Minute, cfg.TaskTimeout)
	assert.Equal(t, 5*time.Minute, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 30*time.Second, cfg.OrphanDetectionInterval)
	assert.Equal(t, 90*time.Second, cfg.OrphanThreshold)
}

func TestLoadQueueConfigIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "many")
	t.Setenv("QUEUE_POLL_INTERVAL", "soon")

	cfg := LoadQueueConfig()

	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.PollInterval)
}

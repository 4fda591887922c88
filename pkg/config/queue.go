package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how tasks are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes tasks.
	WorkerCount int

	// MaxConcurrentTasks is the global limit of tasks being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentTasks int

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// TaskTimeout is the maximum time a single task can run.
	TaskTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to complete during shutdown. Should match TaskTimeout.
	GracefulShutdownTimeout time.Duration

	// HeartbeatInterval is how often a running worker refreshes its claim.
	HeartbeatInterval time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned tasks.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a task can go without a heartbeat
	// before it is considered orphaned and re-queued.
	OrphanThreshold time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentTasks:      10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// LoadQueueConfig returns the defaults overridden by QUEUE_* environment
// variables where set.
func LoadQueueConfig() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = getEnvInt("QUEUE_WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxConcurrentTasks = getEnvInt("QUEUE_MAX_CONCURRENT_TASKS", cfg.MaxConcurrentTasks)
	cfg.PollInterval = getEnvDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval)
	cfg.PollIntervalJitter = getEnvDuration("QUEUE_POLL_INTERVAL_JITTER", cfg.PollIntervalJitter)
	cfg.TaskTimeout = getEnvDuration("QUEUE_TASK_TIMEOUT", cfg.TaskTimeout)
	cfg.GracefulShutdownTimeout = getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	cfg.HeartbeatInterval = getEnvDuration("QUEUE_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval)
	cfg.OrphanDetectionInterval = getEnvDuration("QUEUE_ORPHAN_DETECTION_INTERVAL", cfg.OrphanDetectionInterval)
	cfg.OrphanThreshold = getEnvDuration("QUEUE_ORPHAN_THRESHOLD", cfg.OrphanThreshold)
	return cfg
}

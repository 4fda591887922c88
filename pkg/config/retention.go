package config

import "time"

// RetentionConfig controls cleanup of terminal task rows. The queue table
// keeps one row per request turn, so it grows with traffic; request, query,
// and session rows are user data and are never swept.
type RetentionConfig struct {
	// TaskRetention is how long completed and failed task rows are kept
	// before deletion.
	TaskRetention time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// LoadRetentionConfig reads retention settings from the environment.
func LoadRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetention:   getEnvDuration("TASK_RETENTION", 7*24*time.Hour),
		CleanupInterval: getEnvDuration("CLEANUP_INTERVAL", 12*time.Hour),
	}
}

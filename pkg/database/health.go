package database

import (
	"context"
	"database/sql"
	"time"
)

// pingTimeout bounds the health probe so a stalled connection cannot hang
// the /health endpoint.
const pingTimeout = 2 * time.Second

// HealthStatus is the application store's view for the health endpoint: a
// round-trip probe plus connection pool statistics.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the store and reports pool statistics. On a failed ping the
// returned status is "unhealthy" alongside the error.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := db.PingContext(ctx)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return &HealthStatus{Status: "unhealthy", ResponseTime: elapsed}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:          "healthy",
		ResponseTime:    elapsed,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}

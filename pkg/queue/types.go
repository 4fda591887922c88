// Package queue provides the database-backed task queue: broker, worker pool
// and orphan recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/task"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no pending tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor processes one claimed task. The executor owns the request
// lifecycle internally and writes results progressively through the services
// layer; the worker only handles claiming, heartbeat and the terminal task
// status.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) *ExecutionResult
}

// ExecutionResult is just the terminal task state. All request-level state
// was already written by the executor during processing.
type ExecutionResult struct {
	Status task.Status // completed, failed
	Error  error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}

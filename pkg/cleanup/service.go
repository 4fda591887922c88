// Package cleanup enforces retention on the task queue table.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/task"
	"github.com/apegpt/queryflow/pkg/config"
)

// Service periodically deletes terminal task rows past their retention
// window. Deletion is idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention", s.config.TaskRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteOldTasks(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteOldTasks(ctx)
		}
	}
}

// deleteOldTasks removes completed and failed tasks whose last update is
// older than the retention window. Pending and running rows are never
// touched; orphan recovery owns those.
func (s *Service) deleteOldTasks(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.TaskRetention)

	count, err := s.client.Task.Delete().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed),
			task.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: task cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old tasks", "count", count)
	}
}

package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/task"
)

// maxTaskAttempts bounds re-delivery of a repeatedly orphaned task.
const maxTaskAttempts = 3

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running tasks with stale heartbeats and
// re-queues them. Delivery is at-least-once: a task whose pod died mid-run
// will execute again on another pod, so executors must be idempotent.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.LastHeartbeatNotNil(),
			task.LastHeartbeatLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, orphan := range orphans {
		if err := recoverOrphanedTask(ctx, orphan); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", orphan.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedTask re-queues a single orphaned task, or fails it after
// too many attempts.
func recoverOrphanedTask(ctx context.Context, orphan *ent.Task) error {
	podID := "unknown"
	if orphan.PodID != nil {
		podID = *orphan.PodID
	}
	lastHeartbeat := "unknown"
	if orphan.LastHeartbeat != nil {
		lastHeartbeat = orphan.LastHeartbeat.Format(time.RFC3339)
	}

	log := slog.With("task_id", orphan.ID, "old_pod_id", podID)

	if orphan.Attempts >= maxTaskAttempts {
		err := orphan.Update().
			SetStatus(task.StatusFailed).
			SetError(fmt.Sprintf("Orphaned after %d attempts, no heartbeat from pod %s since %s",
				orphan.Attempts, podID, lastHeartbeat)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark task as failed: %w", err)
		}
		log.Warn("Orphaned task failed permanently", "attempts", orphan.Attempts)
		return nil
	}

	err := orphan.Update().
		SetStatus(task.StatusPending).
		ClearPodID().
		ClearClaimedAt().
		ClearLastHeartbeat().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-queue task: %w", err)
	}

	log.Warn("Orphaned task re-queued", "last_heartbeat", lastHeartbeat, "attempts", orphan.Attempts)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of tasks owned by this
// pod that were running when the pod previously crashed. Called once during
// startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.PodID(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, orphan := range orphans {
		if err := recoverOrphanedTask(ctx, orphan); err != nil {
			slog.Error("Failed to recover startup orphan",
				"task_id", orphan.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "task_id", orphan.ID)
	}

	return nil
}

package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/pkg/models"
)

// TaskProcessRequest is the task name for request processing.
const TaskProcessRequest = "process_request"

// Broker enqueues tasks for the worker pool. Delivery is at-least-once;
// enqueue itself is idempotent on the task id.
type Broker struct {
	client *ent.Client
	logger *slog.Logger
}

// NewBroker creates a new Broker
func NewBroker(client *ent.Client) *Broker {
	return &Broker{
		client: client,
		logger: slog.With("component", "broker"),
	}
}

// Enqueue writes a pending task row. Re-enqueueing the same task id is a
// no-op so a retried HTTP handler cannot double-schedule a request.
func (b *Broker) Enqueue(ctx context.Context, name string, taskID uuid.UUID, payload models.WorkerRequest) error {
	body, err := toJSONMap(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	err = b.client.Task.Create().
		SetID(taskID).
		SetName(name).
		SetPayload(body).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			b.logger.Debug("Task already enqueued", "task_id", taskID, "name", name)
			return nil
		}
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	b.logger.Info("Task enqueued", "task_id", taskID, "name", name)
	return nil
}

package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/task"
	"github.com/apegpt/queryflow/pkg/config"
	"github.com/apegpt/queryflow/pkg/models"
	testdb "github.com/apegpt/queryflow/test/database"
)

type recordingExecutor struct {
	mu       sync.Mutex
	executed []uuid.UUID
	result   *ExecutionResult
}

func (e *recordingExecutor) Execute(_ context.Context, t *ent.Task) *ExecutionResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.executed = append(e.executed, t.ID)
	return e.result
}

func (e *recordingExecutor) seen() []uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]uuid.UUID(nil), e.executed...)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.TaskTimeout = 5 * time.Second
	return cfg
}

func TestBrokerEnqueueIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	broker := NewBroker(client.Client)
	taskID := uuid.New()
	payload := models.WorkerRequest{
		SessionID: uuid.New(),
		RequestID: taskID,
		User:      "user-1",
		Request:   "show me revenue",
	}

	require.NoError(t, broker.Enqueue(ctx, TaskProcessRequest, taskID, payload))
	require.NoError(t, broker.Enqueue(ctx, TaskProcessRequest, taskID, payload))

	count, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := client.Task.Get(ctx, taskID)
	require.NoError(t, err)
	decoded, err := DecodePayload(stored)
	require.NoError(t, err)
	assert.Equal(t, payload.Request, decoded.Request)
	assert.Equal(t, payload.SessionID, decoded.SessionID)
}

func TestWorkerPoolProcessesTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	broker := NewBroker(client.Client)
	executor := &recordingExecutor{result: &ExecutionResult{Status: task.StatusCompleted}}

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		id := uuid.New()
		ids = append(ids, id)
		require.NoError(t, broker.Enqueue(ctx, TaskProcessRequest, id, models.WorkerRequest{
			RequestID: id,
			Request:   "turn",
		}))
	}

	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		done, err := client.Task.Query().
			Where(task.StatusEQ(task.StatusCompleted)).
			Count(ctx)
		return err == nil && done == len(ids)
	}, 10*time.Second, 100*time.Millisecond)

	assert.ElementsMatch(t, ids, executor.seen())
}

func TestStartupOrphanRequeue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stale := time.Now().Add(-time.Hour)
	taskID := uuid.New()
	require.NoError(t, client.Task.Create().
		SetID(taskID).
		SetName(TaskProcessRequest).
		SetPayload(map[string]any{"request": "turn"}).
		SetStatus(task.StatusRunning).
		SetPodID("test-pod").
		SetClaimedAt(stale).
		SetLastHeartbeat(stale).
		SetAttempts(1).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "test-pod"))

	recovered, err := client.Task.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, recovered.Status)
	assert.Nil(t, recovered.PodID)
	assert.Nil(t, recovered.LastHeartbeat)
}

func TestOrphanFailsAfterMaxAttempts(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stale := time.Now().Add(-time.Hour)
	taskID := uuid.New()
	require.NoError(t, client.Task.Create().
		SetID(taskID).
		SetName(TaskProcessRequest).
		SetPayload(map[string]any{"request": "turn"}).
		SetStatus(task.StatusRunning).
		SetPodID("test-pod").
		SetClaimedAt(stale).
		SetLastHeartbeat(stale).
		SetAttempts(maxTaskAttempts).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "test-pod"))

	failed, err := client.Task.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, failed.Status)
	require.NotNil(t, failed.Error)
	assert.Contains(t, *failed.Error, "Orphaned")
}

package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/task"
	"github.com/apegpt/queryflow/pkg/config"
	testdb "github.com/apegpt/queryflow/test/database"
)

func createTask(t *testing.T, client *ent.Client, status task.Status, age time.Duration) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := client.Task.Create().
		SetID(id).
		SetName("process_request").
		SetPayload(map[string]any{}).
		SetStatus(status).
		SetUpdatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestService_DeletesOldTerminalTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	oldCompleted := createTask(t, client.Client, task.StatusCompleted, 10*24*time.Hour)
	oldFailed := createTask(t, client.Client, task.StatusFailed, 10*24*time.Hour)
	recentCompleted := createTask(t, client.Client, task.StatusCompleted, time.Hour)

	svc := NewService(&config.RetentionConfig{
		TaskRetention:   7 * 24 * time.Hour,
		CleanupInterval: time.Hour,
	}, client.Client)
	svc.deleteOldTasks(ctx)

	for _, id := range []uuid.UUID{oldCompleted, oldFailed} {
		_, err := client.Task.Get(ctx, id)
		assert.True(t, ent.IsNotFound(err), "task %s should be deleted", id)
	}
	_, err := client.Task.Get(ctx, recentCompleted)
	assert.NoError(t, err, "recent task should be preserved")
}

func TestService_PreservesNonTerminalTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	pending := createTask(t, client.Client, task.StatusPending, 10*24*time.Hour)
	running := createTask(t, client.Client, task.StatusRunning, 10*24*time.Hour)

	svc := NewService(&config.RetentionConfig{
		TaskRetention:   7 * 24 * time.Hour,
		CleanupInterval: time.Hour,
	}, client.Client)
	svc.deleteOldTasks(ctx)

	for _, id := range []uuid.UUID{pending, running} {
		_, err := client.Task.Get(ctx, id)
		assert.NoError(t, err, "non-terminal task %s must never be swept", id)
	}
}

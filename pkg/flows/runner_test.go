package flows

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/task"
	"github.com/apegpt/queryflow/pkg/models"
)

type fakeBroker struct {
	mu       sync.Mutex
	enqueued []models.WorkerRequest
}

func (b *fakeBroker) Enqueue(ctx context.Context, name string, taskID uuid.UUID, payload models.WorkerRequest) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enqueued = append(b.enqueued, payload)
	return nil
}

func taskFor(t *testing.T, wr *models.WorkerRequest) *ent.Task {
	t.Helper()
	buf, err := json.Marshal(wr)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf, &payload))
	return &ent.Task{ID: wr.RequestID, Name: "process_request", Payload: payload}
}

func TestRunnerMarksUnhandledFailures(t *testing.T) {
	store := newFakeStore()
	deps := testDeps(store, &fakeLLM{}, &fakeWarehouse{})
	wr := testWorkerRequest()
	wr.Flow = "bogus"

	result := NewRunner(deps).Execute(context.Background(), taskFor(t, wr))
	require.NotNil(t, result)
	assert.Equal(t, task.StatusFailed, result.Status)
	require.Error(t, result.Error)

	assert.Equal(t, models.StatusError, store.statuses[len(store.statuses)-1])
	require.NotEmpty(t, store.errTexts)
	assert.Equal(t, "Unhandled exception, check logs", store.errTexts[len(store.errTexts)-1])
}

func TestRunnerDispatchesLinkedFollowUp(t *testing.T) {
	store := newFakeStore()
	wr := testWorkerRequest()
	store.metadata[wr.SessionID] = &models.QueryMetadata{
		ID:  uuid.New(),
		SQL: "SELECT token FROM trades",
	}
	client := &fakeLLM{structured: []string{
		`{"request_type": "linked_session", "response": "Break down by day", "description": "Daily breakdown"}`,
	}}
	broker := &fakeBroker{}
	deps := testDeps(store, client, &fakeWarehouse{})
	deps.Broker = broker

	result := NewRunner(deps).Execute(context.Background(), taskFor(t, wr))
	require.NotNil(t, result)
	assert.Equal(t, task.StatusCompleted, result.Status)

	// The follow-up request landed in the child session and was enqueued.
	require.Len(t, store.added, 1)
	assert.Equal(t, "Break down by day", store.added[0].Request)
	assert.Equal(t, models.RequestTypeTBD, store.added[0].RequestType)

	require.Len(t, broker.enqueued, 1)
	follow := broker.enqueued[0]
	require.NotNil(t, follow.ParentSessionID)
	assert.Equal(t, wr.SessionID, *follow.ParentSessionID)
	assert.NotEqual(t, wr.SessionID, follow.SessionID)
	assert.Equal(t, wr.User, follow.User)
}

func TestRunnerRejectsUndecodablePayload(t *testing.T) {
	deps := testDeps(newFakeStore(), &fakeLLM{}, &fakeWarehouse{})
	bad := &ent.Task{ID: uuid.New(), Payload: map[string]any{"session_id": "not-a-uuid"}}

	result := NewRunner(deps).Execute(context.Background(), bad)
	require.NotNil(t, result)
	assert.Equal(t, task.StatusFailed, result.Status)
	require.Error(t, result.Error)
}

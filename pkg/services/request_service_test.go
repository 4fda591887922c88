package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/pkg/models"
	testdb "github.com/apegpt/queryflow/test/database"
)

func TestRequestLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sessionService := NewSessionService(client.Client)
	requestService := NewRequestService(client.Client)

	sess, err := sessionService.CreateSession(ctx, "user-1", models.CreateSessionRequest{Name: "revenue"}, nil)
	require.NoError(t, err)

	t.Run("sequence numbers are dense under concurrent inserts", func(t *testing.T) {
		const inserts = 8

		var wg sync.WaitGroup
		for i := 0; i < inserts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := requestService.AddRequest(ctx, "user-1", sess.ID, models.AddRequest{
					Request: "show me revenue by month",
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		requests, err := requestService.ListRequests(ctx, "user-1", sess.ID)
		require.NoError(t, err)
		require.Len(t, requests, inserts)
		for i, r := range requests {
			assert.Equal(t, i+1, r.SequenceNumber)
		}
	})

	t.Run("terminal status is sticky", func(t *testing.T) {
		created, err := requestService.AddRequest(ctx, "user-1", sess.ID, models.AddRequest{
			Request: "top customers",
		})
		require.NoError(t, err)

		require.NoError(t, requestService.UpdateStatus(ctx, created.ID, models.StatusInProgress, nil))
		require.NoError(t, requestService.UpdateStatus(ctx, created.ID, models.StatusDone, nil))

		// A late write from a racing worker must not land.
		require.NoError(t, requestService.UpdateStatus(ctx, created.ID, models.StatusError, nil))

		got, err := requestService.GetRequestByID(ctx, "user-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, string(models.StatusDone), string(got.Status))
	})

	t.Run("update on a deleted row is a no-op", func(t *testing.T) {
		err := requestService.UpdateStatus(ctx, uuid.New(), models.StatusDone, nil)
		assert.NoError(t, err)
	})

	t.Run("get by sequence", func(t *testing.T) {
		got, err := requestService.GetRequest(ctx, "user-1", sess.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.SequenceNumber)

		_, err = requestService.GetRequest(ctx, "someone-else", sess.ID, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteRequestRevert(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sessionService := NewSessionService(client.Client)
	requestService := NewRequestService(client.Client)

	sess, err := sessionService.CreateSession(ctx, "user-1", models.CreateSessionRequest{}, nil)
	require.NoError(t, err)

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		created, err := requestService.AddRequest(ctx, "user-1", sess.ID, models.AddRequest{
			Request: "turn",
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	// Deleting turn 3 removes turns 3..5 and keeps 1..2.
	sessionID, err := requestService.DeleteRequestRevert(ctx, "user-1", ids[2])
	require.NoError(t, err)
	assert.Equal(t, sess.ID, sessionID)

	remaining, err := requestService.ListRequests(ctx, "user-1", sess.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, 1, remaining[0].SequenceNumber)
	assert.Equal(t, 2, remaining[1].SequenceNumber)

	_, err = requestService.DeleteRequestRevert(ctx, "user-1", ids[2])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sessionService := NewSessionService(client.Client)
	requestService := NewRequestService(client.Client)

	sess, err := sessionService.CreateSession(ctx, "user-1", models.CreateSessionRequest{}, nil)
	require.NoError(t, err)

	first, err := requestService.AddRequest(ctx, "user-1", sess.ID, models.AddRequest{Request: "question one"})
	require.NoError(t, err)
	answer := "answer one"
	require.NoError(t, requestService.UpdateRequest(ctx, first.ID, models.UpdateRequestFields{Response: &answer}))

	_, err = requestService.AddRequest(ctx, "user-1", sess.ID, models.AddRequest{Request: "question two"})
	require.NoError(t, err)

	full, err := requestService.GetHistory(ctx, "user-1", sess.ID, true)
	require.NoError(t, err)
	require.Len(t, full, 3)
	assert.Equal(t, models.HistoryTurn{Role: "user", Content: "question one"}, full[0])
	assert.Equal(t, models.HistoryTurn{Role: "assistant", Content: "answer one"}, full[1])
	assert.Equal(t, models.HistoryTurn{Role: "user", Content: "question two"}, full[2])

	usersOnly, err := requestService.GetHistory(ctx, "user-1", sess.ID, false)
	require.NoError(t, err)
	require.Len(t, usersOnly, 2)
	for _, turn := range usersOnly {
		assert.Equal(t, "user", turn.Role)
	}
}

func TestSessionOwnership(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sessionService := NewSessionService(client.Client)

	sess, err := sessionService.CreateSession(ctx, "user-1", models.CreateSessionRequest{Name: "mine"}, nil)
	require.NoError(t, err)

	_, err = sessionService.GetSession(ctx, "user-2", sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Admin access skips the ownership check.
	got, err := sessionService.GetSession(ctx, "", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.User)

	sessions, total, err := sessionService.ListSessions(ctx, models.SessionFilters{User: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, sessions, 1)
}

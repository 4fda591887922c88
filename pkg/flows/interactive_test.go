package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/pkg/assembler"
	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/services"
	"github.com/apegpt/queryflow/pkg/warehouse"
)

// fakeStore records every persistence call so tests can assert the exact
// status trail a flow produced.
type fakeStore struct {
	mu       sync.Mutex
	statuses []models.RequestStatus
	errTexts []string
	updates  []models.UpdateRequestFields
	metadata map[uuid.UUID]*models.QueryMetadata
	names    map[uuid.UUID]string
	sessions map[uuid.UUID]*uuid.UUID
	queries  []models.CreateQueryFields
	history  []models.HistoryTurn
	added    []models.AddRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		metadata: map[uuid.UUID]*models.QueryMetadata{},
		names:    map[uuid.UUID]string{},
		sessions: map[uuid.UUID]*uuid.UUID{},
	}
}

func (s *fakeStore) GetSession(ctx context.Context, user string, id uuid.UUID) (*ent.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &ent.Session{ID: id, ParentID: s.sessions[id]}, nil
}

func (s *fakeStore) CreateSession(ctx context.Context, user string, req models.CreateSessionRequest, parent *uuid.UUID) (*ent.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.sessions[id] = parent
	s.names[id] = req.Name
	return &ent.Session{ID: id}, nil
}

func (s *fakeStore) UpdateSessionName(ctx context.Context, user string, id uuid.UUID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[id] = name
	return nil
}

func (s *fakeStore) UpdateQueryMetadata(ctx context.Context, user string, id uuid.UUID, md *models.QueryMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadata[id] = md
	return nil
}

func (s *fakeStore) GetQueryMetadata(ctx context.Context, user string, id uuid.UUID) (*models.QueryMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metadata[id], nil
}

func (s *fakeStore) AddRequest(ctx context.Context, user string, sessionID uuid.UUID, req models.AddRequest) (*ent.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.added = append(s.added, req)
	return &ent.Request{ID: uuid.New(), SequenceNumber: len(s.added)}, nil
}

func (s *fakeStore) UpdateStatus(ctx context.Context, requestID uuid.UUID, status models.RequestStatus, errText *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, status)
	if errText != nil {
		s.errTexts = append(s.errTexts, *errText)
	}
	return nil
}

func (s *fakeStore) UpdateRequest(ctx context.Context, requestID uuid.UUID, fields models.UpdateRequestFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, fields)
	if fields.Status != nil {
		s.statuses = append(s.statuses, *fields.Status)
	}
	return nil
}

func (s *fakeStore) GetHistory(ctx context.Context, user string, sessionID uuid.UUID, includeResponses bool) ([]models.HistoryTurn, error) {
	return s.history, nil
}

func (s *fakeStore) CreateQuery(ctx context.Context, f models.CreateQueryFields) (*ent.QueryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, f)
	return &ent.QueryRecord{ID: f.ID}, nil
}

func (s *fakeStore) LatestQuery(ctx context.Context, sessionID uuid.UUID) (*ent.QueryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return nil, services.ErrNotFound
	}
	return &ent.QueryRecord{ID: s.queries[len(s.queries)-1].ID}, nil
}

func (s *fakeStore) lastResponse() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.updates) - 1; i >= 0; i-- {
		if s.updates[i].Response != nil {
			return *s.updates[i].Response
		}
	}
	return ""
}

// fakeLLM replays a scripted sequence of structured replies.
type fakeLLM struct {
	mu         sync.Mutex
	structured []string
	completion string
}

func (c *fakeLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	return c.completion, nil
}

func (c *fakeLLM) CompleteStructured(ctx context.Context, messages []llm.Message, schema map[string]any, modelOverride string) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.structured) == 0 {
		return nil, errors.New("script exhausted")
	}
	next := c.structured[0]
	c.structured = c.structured[1:]
	return json.RawMessage(next), nil
}

type fakeModels struct{ client llm.Client }

func (m fakeModels) Get(model models.ModelType) (llm.Client, error) {
	return m.client, nil
}

type fakePrompts struct{}

func (fakePrompts) Render(ctx context.Context, slot string, vars map[string]any, reqCtx map[string]any) (*assembler.SlotMaterial, error) {
	return &assembler.SlotMaterial{Slot: slot, Prompt: "prompt for " + slot}, nil
}

// fakeWarehouse fails preflight for the first failPreflights calls.
type fakeWarehouse struct {
	mu             sync.Mutex
	failPreflights int
	preflights     []string
	executed       []string
	csv            string
}

func (w *fakeWarehouse) Preflight(ctx context.Context, query string) (*warehouse.PreflightEstimate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.preflights = append(w.preflights, query)
	if len(w.preflights) <= w.failPreflights {
		return nil, fmt.Errorf("preflight: DB::Exception: Missing columns: 'nonexistent' Stack trace: 0x0")
	}
	return &warehouse.PreflightEstimate{Rows: 1000, Parts: 1, Marks: 10}, nil
}

func (w *fakeWarehouse) Count(ctx context.Context, query string) (int64, error) {
	return 42, nil
}

func (w *fakeWarehouse) Execute(ctx context.Context, query string, limit, offset int) ([]map[string]any, int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.executed = append(w.executed, query)
	return []map[string]any{{"a": "1"}}, 1, nil
}

func (w *fakeWarehouse) ExecutePreview(ctx context.Context, query string, limit int) ([]string, [][]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.executed = append(w.executed, query)
	return []string{"a"}, [][]string{{"1"}}, nil
}

func (w *fakeWarehouse) ExecuteCSV(ctx context.Context, query string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.executed = append(w.executed, query)
	return w.csv, nil
}

func (w *fakeWarehouse) Exec(ctx context.Context, query string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.executed = append(w.executed, query)
	return nil
}

func testDeps(store *fakeStore, client llm.Client, wh Warehouse) Deps {
	return Deps{
		Store:     Store{Sessions: store, Requests: store, Queries: store},
		Models:    fakeModels{client: client},
		Warehouse: wh,
		Prompts:   fakePrompts{},
		MaxSteps:  5,
		Version:   "test",
	}
}

func testWorkerRequest() *models.WorkerRequest {
	return &models.WorkerRequest{
		SessionID:      uuid.New(),
		RequestID:      uuid.New(),
		SequenceNumber: 1,
		User:           "user-1",
		Request:        "top tokens by volume",
		Flow:           models.FlowInteractive,
		Model:          models.ModelOpenAI,
		DB:             models.DBV2,
	}
}

func TestInteractiveQueryRetriesUntilPreflightPasses(t *testing.T) {
	store := newFakeStore()
	client := &fakeLLM{structured: []string{
		`{"request_type": "interactive_query", "intent": "top tokens by volume"}`,
		`{"sql": "SELECT token FROM trades ORDER BY missing_col", "summary": "Top tokens"}`,
		`{"sql": "SELECT token FROM trades ORDER BY also_missing", "summary": "Top tokens"}`,
		`{"sql": "SELECT token, sum(volume) AS v FROM trades GROUP BY token ORDER BY v DESC", "summary": "Top tokens"}`,
	}}
	wh := &fakeWarehouse{failPreflights: 2}
	wr := testWorkerRequest()

	resp, err := NewInteractiveFlow(testDeps(store, client, wh)).Run(context.Background(), wr)
	require.NoError(t, err)
	require.NotNil(t, resp)

	wantSQL := "SELECT token, sum(volume) AS v FROM trades GROUP BY token ORDER BY v DESC"
	assert.Equal(t, wantSQL, resp.SQL)

	// Two rejected attempts, then the accepted one.
	assert.Equal(t, []models.RequestStatus{
		models.StatusInProgress,
		models.StatusIntent,
		models.StatusSQL,
		models.StatusRetry,
		models.StatusSQL,
		models.StatusRetry,
		models.StatusSQL,
		models.StatusFinalizing,
		models.StatusDone,
	}, store.statuses)

	require.Len(t, store.queries, 1)
	assert.Equal(t, wantSQL, store.queries[0].SQL)
	assert.Equal(t, wr.SessionID, store.queries[0].SessionID)

	require.NotNil(t, store.metadata[wr.SessionID])
	assert.Equal(t, wantSQL, store.metadata[wr.SessionID].SQL)
	require.NotNil(t, store.metadata[wr.SessionID].RowCount)
	assert.EqualValues(t, 42, *store.metadata[wr.SessionID].RowCount)

	// Session renamed from the summary.
	assert.Equal(t, "Top tokens", store.names[wr.SessionID])
	assert.Len(t, wh.preflights, 3)
}

func TestInteractiveQueryFailsAfterThreeAttempts(t *testing.T) {
	store := newFakeStore()
	client := &fakeLLM{structured: []string{
		`{"request_type": "interactive_query"}`,
		`{"sql": "SELECT 1 FROM bad"}`,
		`{"sql": "SELECT 2 FROM bad"}`,
		`{"sql": "SELECT 3 FROM bad"}`,
	}}
	wh := &fakeWarehouse{failPreflights: 10}
	wr := testWorkerRequest()

	_, err := NewInteractiveFlow(testDeps(store, client, wh)).Run(context.Background(), wr)
	require.Error(t, err)

	assert.Equal(t, models.StatusError, store.statuses[len(store.statuses)-1])
	require.NotEmpty(t, store.errTexts)
	assert.Contains(t, store.errTexts[len(store.errTexts)-1], "3 attempts")
	assert.Empty(t, store.queries)
}

func TestInteractiveGeneralChat(t *testing.T) {
	store := newFakeStore()
	client := &fakeLLM{structured: []string{
		`{"request_type": "general_chat", "response": "I can query trading data for you."}`,
	}}
	wr := testWorkerRequest()

	resp, err := NewInteractiveFlow(testDeps(store, client, &fakeWarehouse{})).Run(context.Background(), wr)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, models.StatusDone, store.statuses[len(store.statuses)-1])
	assert.Equal(t, "I can query trading data for you.", store.lastResponse())
	assert.Empty(t, store.queries)
}

func TestInteractiveLinkedSessionSeedsChild(t *testing.T) {
	store := newFakeStore()
	wr := testWorkerRequest()
	store.metadata[wr.SessionID] = &models.QueryMetadata{
		ID:  uuid.New(),
		SQL: "SELECT token FROM trades",
	}
	client := &fakeLLM{structured: []string{
		`{"request_type": "linked_session", "response": "Drill into this token", "description": "Token drilldown"}`,
	}}

	resp, err := NewInteractiveFlow(testDeps(store, client, &fakeWarehouse{})).Run(context.Background(), wr)
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.LinkedSessionID)

	parent, ok := store.sessions[*resp.LinkedSessionID]
	require.True(t, ok)
	require.NotNil(t, parent)
	assert.Equal(t, wr.SessionID, *parent)

	// Child session carries the parent's query metadata.
	require.NotNil(t, store.metadata[*resp.LinkedSessionID])
	assert.Equal(t, "SELECT token FROM trades", store.metadata[*resp.LinkedSessionID].SQL)
	assert.Equal(t, models.StatusDone, store.statuses[len(store.statuses)-1])
}

func TestInteractiveFollowUpCarriesSessionParent(t *testing.T) {
	store := newFakeStore()
	parentID := uuid.New()
	wr := testWorkerRequest()
	wr.SequenceNumber = 2
	store.sessions[wr.SessionID] = &parentID

	client := &fakeLLM{structured: []string{
		`{"request_type": "interactive_query", "intent": "volume for this token"}`,
		fmt.Sprintf(`{"sql": "SELECT volume FROM trades WHERE token = 'ABC'", "summary": "ABC volume", "parents": [%q]}`, parentID),
	}}

	resp, err := NewInteractiveFlow(testDeps(store, client, &fakeWarehouse{})).Run(context.Background(), wr)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// The parent session id lands in the lineage exactly once even though
	// the model echoed it back.
	require.Len(t, store.queries, 1)
	assert.Equal(t, []uuid.UUID{parentID}, store.queries[0].Parents)

	require.NotNil(t, store.metadata[wr.SessionID])
	assert.Equal(t, []uuid.UUID{parentID}, store.metadata[wr.SessionID].Parents)

	// Renaming is not limited to the first turn.
	assert.Equal(t, "ABC volume", store.names[wr.SessionID])
}

func TestInteractiveResultWithoutSQL(t *testing.T) {
	store := newFakeStore()
	client := &fakeLLM{structured: []string{
		`{"request_type": "interactive_query"}`,
		`{"result": "The previous result already answers this: 42 tokens."}`,
	}}
	wr := testWorkerRequest()

	_, err := NewInteractiveFlow(testDeps(store, client, &fakeWarehouse{})).Run(context.Background(), wr)
	require.NoError(t, err)

	assert.Equal(t, models.StatusDone, store.statuses[len(store.statuses)-1])
	assert.Equal(t, "The previous result already answers this: 42 tokens.", store.lastResponse())
	assert.Empty(t, store.queries)
}

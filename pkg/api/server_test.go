package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/queue"
	"github.com/apegpt/queryflow/pkg/services"
	testdb "github.com/apegpt/queryflow/test/database"
)

// stubExecutor serves a fixed page for data endpoint tests.
type stubExecutor struct {
	rows  []map[string]any
	total int64
}

func (e *stubExecutor) Execute(ctx context.Context, query string, limit, offset int) ([]map[string]any, int64, error) {
	return e.rows, e.total, nil
}

type testServer struct {
	*Server
	client *ent.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testdb.NewTestClient(t)

	svc := Services{
		Sessions: services.NewSessionService(db.Client),
		Requests: services.NewRequestService(db.Client),
		Queries: services.NewQueryService(db.Client, &stubExecutor{
			rows:  []map[string]any{{"token": "ABC", "volume": "100"}},
			total: 1,
		}),
	}
	s := NewServer(svc, queue.NewBroker(db.Client), nil, nil, nil, nil, "test")
	return &testServer{Server: s, client: db.Client}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSessionEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/session", map[string]any{"name": "Trading", "tags": "defi"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeJSON[map[string]any](t, rec)
	id := created["id"]
	require.NotEmpty(t, id)

	rec = ts.do(t, http.MethodGet, "/session/"+id.(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPatch, "/session/"+id.(string), map[string]any{"name": "Renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Renamed", patched["name"])

	rec = ts.do(t, http.MethodGet, "/session?tags=defi", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listing := decodeJSON[map[string]any](t, rec)
	assert.EqualValues(t, 1, listing["total"])

	rec = ts.do(t, http.MethodGet, "/session/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/session/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddRequestEnqueuesTask(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	rec := ts.do(t, http.MethodPost, "/session", map[string]any{"name": "s"})
	require.Equal(t, http.StatusOK, rec.Code)
	sessionID := decodeJSON[map[string]any](t, rec)["id"].(string)

	rec = ts.do(t, http.MethodPost, "/request/"+sessionID, map[string]any{
		"request": "top tokens by volume",
		"flow":    "interactive",
		"model":   "openai",
		"db":      "v2",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeJSON[map[string]any](t, rec)
	assert.EqualValues(t, 1, created["sequence_number"])

	// The request id doubles as the broker task id.
	requestID := uuid.MustParse(created["id"].(string))
	task, err := ts.client.Task.Get(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, queue.TaskProcessRequest, task.Name)

	rec = ts.do(t, http.MethodPost, "/request/"+sessionID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/request/"+sessionID+"/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/session/get_requests/"+sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	requests := decodeJSON[[]map[string]any](t, rec)
	assert.Len(t, requests, 1)
}

func TestPatchRequestReviewAndCancel(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/session", map[string]any{"name": "s"})
	require.Equal(t, http.StatusOK, rec.Code)
	sessionID := decodeJSON[map[string]any](t, rec)["id"].(string)

	rec = ts.do(t, http.MethodPost, "/request/"+sessionID, map[string]any{"request": "hello"})
	require.Equal(t, http.StatusOK, rec.Code)
	requestID := decodeJSON[map[string]any](t, rec)["id"].(string)

	rec = ts.do(t, http.MethodPatch, "/request/"+requestID, map[string]any{"rating": 5, "review": "good"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodPatch, "/request/"+requestID, map[string]any{"status": "cancelled"})
	require.Equal(t, http.StatusOK, rec.Code)
	cancelled := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "cancelled", cancelled["status"])

	// Only cancellation is allowed through the status field.
	rec = ts.do(t, http.MethodPatch, "/request/"+requestID, map[string]any{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRequestRevertsSession(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/session", map[string]any{"name": "s"})
	require.Equal(t, http.StatusOK, rec.Code)
	sessionID := decodeJSON[map[string]any](t, rec)["id"].(string)

	var lastRequestID string
	for _, text := range []string{"one", "two", "three"} {
		rec = ts.do(t, http.MethodPost, "/request/"+sessionID, map[string]any{"request": text})
		require.Equal(t, http.StatusOK, rec.Code)
		lastRequestID = decodeJSON[map[string]any](t, rec)["id"].(string)
	}

	rec = ts.do(t, http.MethodDelete, "/request/"+lastRequestID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	reverted := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, sessionID, reverted["session_id"])

	rec = ts.do(t, http.MethodGet, "/session/get_requests/"+sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	requests := decodeJSON[[]map[string]any](t, rec)
	assert.Len(t, requests, 2)
}

func TestDataEndpointETag(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	session, err := ts.svc.Sessions.CreateSession(ctx, "u1", models.CreateSessionRequest{Name: "s"}, nil)
	require.NoError(t, err)
	request, err := ts.svc.Requests.AddRequest(ctx, "u1", session.ID, models.AddRequest{Request: "q"})
	require.NoError(t, err)
	query, err := ts.svc.Queries.CreateQuery(ctx, models.CreateQueryFields{
		SessionID: session.ID,
		RequestID: request.ID,
		User:      "u1",
		Request:   "q",
		SQL:       "SELECT token, volume FROM trades",
	})
	require.NoError(t, err)

	rec := ts.do(t, http.MethodGet, "/data/"+query.ID.String()+"?limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "public, max-age=0, s-maxage=600, stale-while-revalidate=1200", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "Authorization, Accept, Accept-Encoding", rec.Header().Get("Vary"))

	// Same page, same data: identical ETag and a 304 on revalidation.
	rec2 := ts.do(t, http.MethodGet, "/data/"+query.ID.String()+"?limit=10", nil)
	assert.Equal(t, etag, rec2.Header().Get("ETag"))
	assert.Equal(t, rec.Body.String(), rec2.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/data/"+query.ID.String()+"?limit=10", nil)
	req.Header.Set("If-None-Match", etag)
	rec3 := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec3, req)
	assert.Equal(t, http.StatusNotModified, rec3.Code)

	rec = ts.do(t, http.MethodGet, "/data/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutesRequireScope(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/admin/sessions", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodGet, "/admin/requests", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestChartFileNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/chart/chart_missing.png", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

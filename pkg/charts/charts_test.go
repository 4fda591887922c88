package charts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestRenderCodeStoresImage(t *testing.T) {
	var gotCode string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/render", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotCode = body["code"]
		w.Write([]byte("fake-png-bytes"))
	}))
	defer server.Close()

	store := newTestStore(t)
	client := NewClient(server.URL, store)

	url, err := client.RenderCode(context.Background(), "plot(x)")
	require.NoError(t, err)
	assert.Equal(t, "plot(x)", gotCode)
	require.True(t, strings.HasPrefix(url, "/chart/chart_"), url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := store.Read(strings.TrimPrefix(url, "/chart/"))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestRenderCodeRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("png"))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t))
	_, err := client.RenderCode(context.Background(), "plot(x)")
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRenderCodeDoesNotRetryRejection(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t))
	_, err := client.RenderCode(context.Background(), "broken(")
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRenderHTMLRoundTrip(t *testing.T) {
	store := newTestStore(t)
	client := NewClient("", store)

	url, err := client.RenderHTML(context.Background(), "<html>chart</html>")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".html"))

	data, err := store.Read(strings.TrimPrefix(url, "/chart/"))
	require.NoError(t, err)
	assert.Equal(t, "<html>chart</html>", string(data))
}

func TestStoreRejectsTraversal(t *testing.T) {
	store := newTestStore(t)
	require.Error(t, store.Save("../escape.png", []byte("x")))
	_, err := store.Read("../../etc/passwd")
	require.Error(t, err)
}

func TestStoreMissingFile(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Read("chart_missing.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

package flows

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/pkg/models"
)

type fakeCharts struct {
	mu    sync.Mutex
	codes []string
	htmls []string
}

func (c *fakeCharts) RenderCode(ctx context.Context, code string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codes = append(c.codes, code)
	return "https://charts.test/chart-1.png", nil
}

func (c *fakeCharts) RenderHTML(ctx context.Context, html string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.htmls = append(c.htmls, html)
	return "https://charts.test/chart-1.html", nil
}

func TestMultistepInvestigation(t *testing.T) {
	store := newFakeStore()
	client := &fakeLLM{structured: []string{
		`{"summary": "Fetch daily volumes", "sql_request": "SELECT day, sum(volume) FROM trades GROUP BY day", "next_step_needed": true}`,
		`{"summary": "Chart the trend", "chart_code": "plot(volumes)", "next_step_needed": true}`,
		`{"summary": "Done", "response_to_user": "Volume is trending up.", "intro": "Here is the trend:", "next_step_needed": false}`,
	}}
	charts := &fakeCharts{}
	wh := &fakeWarehouse{}
	deps := testDeps(store, client, wh)
	deps.Charts = charts
	wr := testWorkerRequest()
	wr.Flow = models.FlowMultistep

	resp, err := NewMultistepFlow(deps).Run(context.Background(), wr)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, models.StatusDone, store.statuses[len(store.statuses)-1])
	assert.Equal(t, "Volume is trending up.", store.lastResponse())
	assert.Equal(t, "Here is the trend:", resp.Intro)
	assert.Equal(t, "SELECT day, sum(volume) FROM trades GROUP BY day", resp.SQL)
	assert.Equal(t, []string{"a"}, resp.RawDataLabels)

	require.Len(t, charts.codes, 1)
	assert.Equal(t, "https://charts.test/chart-1.png", resp.ChartURL)
	assert.Equal(t, "plot(volumes)", resp.Chart)
}

func TestMultistepFeedsSQLErrorsBack(t *testing.T) {
	store := newFakeStore()
	client := &fakeLLM{structured: []string{
		`{"summary": "Try a query", "sql_request": "SELECT bad FROM trades", "next_step_needed": true}`,
		`{"summary": "Answer anyway", "response_to_user": "Could not fetch the data.", "next_step_needed": false}`,
	}}
	wh := &failingPreviewWarehouse{}
	wr := testWorkerRequest()
	wr.Flow = models.FlowMultistep

	resp, err := NewMultistepFlow(testDeps(store, client, wh)).Run(context.Background(), wr)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Contains(t, store.statuses, models.StatusRetry)
	assert.Equal(t, models.StatusDone, store.statuses[len(store.statuses)-1])
	assert.Equal(t, "Could not fetch the data.", store.lastResponse())
}

func TestMultistepStopsAtStepBudget(t *testing.T) {
	store := newFakeStore()
	client := &fakeLLM{structured: []string{
		`{"summary": "step 1", "next_step_needed": true}`,
		`{"summary": "step 2", "next_step_needed": true}`,
		`{"summary": "final summary", "next_step_needed": true}`,
	}}
	deps := testDeps(store, client, &fakeWarehouse{})
	deps.MaxSteps = 3
	wr := testWorkerRequest()
	wr.Flow = models.FlowMultistep

	_, err := NewMultistepFlow(deps).Run(context.Background(), wr)
	require.NoError(t, err)

	assert.Equal(t, models.StatusDone, store.statuses[len(store.statuses)-1])
	assert.Equal(t, "final summary", store.lastResponse())
}

// failingPreviewWarehouse embeds the happy-path fake but fails previews.
type failingPreviewWarehouse struct {
	fakeWarehouse
}

func (w *failingPreviewWarehouse) ExecutePreview(ctx context.Context, query string, limit int) ([]string, [][]string, error) {
	return nil, nil, assert.AnError
}

package flows

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apegpt/queryflow/pkg/models"
)

func TestTopoOrderRespectsDependencies(t *testing.T) {
	steps := []models.PipelineStep{
		{ID: "final", DependsOn: []string{"agg"}},
		{ID: "base"},
		{ID: "agg", DependsOn: []string{"base"}},
	}

	order, err := topoOrder(steps)
	require.NoError(t, err)
	require.Len(t, order, 3)

	pos := map[string]int{}
	for at, i := range order {
		pos[steps[i].ID] = at
	}
	assert.Less(t, pos["base"], pos["agg"])
	assert.Less(t, pos["agg"], pos["final"])
}

func TestTopoOrderDetectsCycle(t *testing.T) {
	steps := []models.PipelineStep{
		{ID: "a", DependsOn: []string{"b"}},
		{ID: "b", DependsOn: []string{"a"}},
	}
	_, err := topoOrder(steps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestTopoOrderRejectsUnknownDependency(t *testing.T) {
	steps := []models.PipelineStep{{ID: "a", DependsOn: []string{"missing"}}}
	_, err := topoOrder(steps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")
}

func TestAssignStepIDsIsDeterministic(t *testing.T) {
	id := uuid.New()
	p1 := models.ExecutionPipeline{QueryID: id, Steps: []models.PipelineStep{{}, {ID: "named"}, {}}}
	p2 := models.ExecutionPipeline{QueryID: id, Steps: []models.PipelineStep{{}, {ID: "named"}, {}}}

	assignStepIDs(&p1)
	assignStepIDs(&p2)

	assert.Equal(t, "named", p1.Steps[1].ID)
	assert.Equal(t, p1.Steps[0].ID, p2.Steps[0].ID)
	assert.Equal(t, p1.Steps[2].ID, p2.Steps[2].ID)
	assert.NotEqual(t, p1.Steps[0].ID, p1.Steps[2].ID)
}

func TestPipelineFlowExecutesDAG(t *testing.T) {
	store := newFakeStore()
	client := &fakeLLM{structured: []string{
		`{
			"output_step_id": "final",
			"steps": [
				{"id": "base", "sql": "SELECT * FROM trades WHERE day >= yesterday()", "output_table": "stage_base"},
				{"id": "final", "sql": "SELECT token, sum(volume) FROM stage_base GROUP BY token", "depends_on": ["base"]}
			]
		}`,
	}}
	wh := &fakeWarehouse{}
	wr := testWorkerRequest()
	wr.Flow = models.FlowPipeline

	resp, err := NewPipelineFlow(testDeps(store, client, wh)).Run(context.Background(), wr)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, models.StatusDone, store.statuses[len(store.statuses)-1])
	assert.Equal(t, "SELECT token, sum(volume) FROM stage_base GROUP BY token", resp.SQL)

	// The staging step materialized and was dropped afterwards.
	require.GreaterOrEqual(t, len(wh.executed), 3)
	assert.Contains(t, wh.executed[0], "CREATE TEMPORARY TABLE stage_base")
	assert.Contains(t, wh.executed[len(wh.executed)-1], "DROP TABLE IF EXISTS stage_base")
}

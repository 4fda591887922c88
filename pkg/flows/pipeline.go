package flows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/warehouse"
)

// PipelineFlow plans a typed ExecutionPipeline up front and executes it as a
// DAG: steps run in dependency order, materializing intermediate tables that
// later steps read.
type PipelineFlow struct {
	deps   Deps
	logger *slog.Logger
}

// NewPipelineFlow creates a new PipelineFlow
func NewPipelineFlow(deps Deps) *PipelineFlow {
	return &PipelineFlow{
		deps:   deps,
		logger: slog.With("flow", "pipeline"),
	}
}

// Run implements Flow.
func (f *PipelineFlow) Run(ctx context.Context, wr *models.WorkerRequest) (*models.StructuredResponse, error) {
	log := f.logger.With("request_id", wr.RequestID, "session_id", wr.SessionID)

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusInProgress, nil); err != nil {
		return nil, err
	}

	client, err := f.deps.Models.Get(wr.Model)
	if err != nil {
		failRequest(f.deps, wr, fmt.Sprintf("Unsupported model %q", wr.Model))
		return nil, err
	}

	reqCtx := map[string]any{
		"user":       wr.User,
		"db":         string(wr.DB),
		"session_id": wr.SessionID.String(),
	}
	material, err := f.deps.Prompts.Render(ctx, "pipeline", map[string]any{
		"request":  wr.Request,
		"datetime": time.Now().Format("2006-01-02 15:04:05"),
	}, reqCtx)
	if err != nil {
		failRequest(f.deps, wr, "Prompt rendering failed")
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusSQL, nil); err != nil {
		return nil, err
	}
	raw, err := client.CompleteStructured(ctx,
		[]llm.Message{llm.System(material.Prompt), llm.User(wr.Request)},
		executionPipelineSchema(), "")
	if err != nil {
		failRequest(f.deps, wr, "Pipeline planning failed")
		return nil, err
	}
	var pipeline models.ExecutionPipeline
	if err := json.Unmarshal(raw, &pipeline); err != nil {
		failRequest(f.deps, wr, "Unparseable pipeline")
		return nil, err
	}
	if len(pipeline.Steps) == 0 {
		err := fmt.Errorf("pipeline has no steps")
		failRequest(f.deps, wr, "Empty pipeline")
		return nil, err
	}
	pipeline.QueryID = uuid.New()
	pipeline.UserQuestion = wr.Request
	assignStepIDs(&pipeline)

	order, err := topoOrder(pipeline.Steps)
	if err != nil {
		failRequest(f.deps, wr, "Invalid pipeline: "+err.Error())
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusDataFetch, nil); err != nil {
		return nil, err
	}
	return f.execute(ctx, wr, &pipeline, order, log)
}

// execute runs the planned steps in topological order. The output step's
// result becomes the response data.
func (f *PipelineFlow) execute(ctx context.Context, wr *models.WorkerRequest,
	pipeline *models.ExecutionPipeline, order []int, log *slog.Logger) (*models.StructuredResponse, error) {

	output := finalStep(pipeline)
	resp := &models.StructuredResponse{}
	var staged []string
	defer func() {
		if len(staged) == 0 {
			return
		}
		dropCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		for _, table := range staged {
			if err := f.deps.Warehouse.Exec(dropCtx, "DROP TABLE IF EXISTS "+table); err != nil {
				log.Warn("Failed to drop staged table", "table", table, "error", err)
			}
		}
	}()

	for _, i := range order {
		step := &pipeline.Steps[i]
		if step.SQL == "" {
			continue
		}
		_ = warehouse.CheckSyntax(step.SQL)

		if step == output {
			rows, total, err := f.deps.Warehouse.Execute(ctx, step.SQL, inlineRowLimit, 0)
			if err != nil {
				step.Error = extractDBError(err.Error())
				failRequest(f.deps, wr, fmt.Sprintf("Pipeline step %q failed: %s", step.ID, step.Error))
				return nil, err
			}
			pipeline.Result = rows
			resp.SQL = step.SQL
			log.Info("Pipeline output produced", "step", step.ID, "total_rows", total)
			continue
		}

		if step.OutputTable == "" {
			step.OutputTable = "qf_step_" + strings.ReplaceAll(step.ID, "-", "_")
		}
		stmt := fmt.Sprintf("CREATE TEMPORARY TABLE %s AS %s", step.OutputTable, step.SQL)
		if err := f.deps.Warehouse.Exec(ctx, stmt); err != nil {
			step.Error = extractDBError(err.Error())
			failRequest(f.deps, wr, fmt.Sprintf("Pipeline step %q failed: %s", step.ID, step.Error))
			return nil, err
		}
		staged = append(staged, step.OutputTable)
		log.Info("Pipeline step materialized", "step", step.ID, "table", step.OutputTable)
	}

	encoded, err := json.Marshal(pipeline)
	if err != nil {
		return nil, err
	}
	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr(string(encoded)),
	}); err != nil {
		return nil, err
	}
	return resp, nil
}

// assignStepIDs fills missing step ids deterministically from the pipeline's
// query id and the step position, so re-planning the same pipeline yields the
// same ids.
func assignStepIDs(p *models.ExecutionPipeline) {
	for i := range p.Steps {
		if p.Steps[i].ID != "" {
			continue
		}
		sum := sha256.Sum256(fmt.Appendf(p.QueryID[:], "/%d", i))
		p.Steps[i].ID = hex.EncodeToString(sum[:4])
	}
}

// topoOrder returns step indices in dependency order, failing on unknown
// references and cycles.
func topoOrder(steps []models.PipelineStep) ([]int, error) {
	index := make(map[string]int, len(steps))
	for i, s := range steps {
		index[s.ID] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(steps))
	order := make([]int, 0, len(steps))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("cycle through step %q", steps[i].ID)
		}
		state[i] = visiting
		for _, dep := range steps[i].DependsOn {
			j, ok := index[dep]
			if !ok {
				return fmt.Errorf("step %q depends on unknown step %q", steps[i].ID, dep)
			}
			if err := visit(j); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}

	for i := range steps {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}

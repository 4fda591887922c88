package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/warehouse"
)

// FlexFlow generates one query and, when preflight judges it too broad for a
// single pass, asks the model to decompose it into staged statements piped
// through intermediate tables.
type FlexFlow struct {
	deps   Deps
	logger *slog.Logger
}

// NewFlexFlow creates a new FlexFlow
func NewFlexFlow(deps Deps) *FlexFlow {
	return &FlexFlow{
		deps:   deps,
		logger: slog.With("flow", "flex"),
	}
}

// Run implements Flow.
func (f *FlexFlow) Run(ctx context.Context, wr *models.WorkerRequest) (*models.StructuredResponse, error) {
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
	vars := map[string]any{
		"request":  wr.Request,
		"datetime": time.Now().Format("2006-01-02 15:04:05"),
	}

	material, err := f.deps.Prompts.Render(ctx, "interactive_query", vars, reqCtx)
	if err != nil {
		failRequest(f.deps, wr, "Prompt rendering failed")
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusSQL, nil); err != nil {
		return nil, err
	}
	raw, err := client.CompleteStructured(ctx,
		[]llm.Message{llm.System(material.Prompt), llm.User(wr.Request)},
		queryMetadataSchema(), "")
	if err != nil {
		failRequest(f.deps, wr, "Query generation failed")
		return nil, err
	}
	var md models.QueryMetadata
	if err := json.Unmarshal(raw, &md); err != nil {
		failRequest(f.deps, wr, "Unparseable query metadata")
		return nil, err
	}
	if md.SQL == "" {
		err := fmt.Errorf("model produced no sql")
		failRequest(f.deps, wr, "No SQL")
		return nil, err
	}
	_ = warehouse.CheckSyntax(md.SQL)

	est, err := f.deps.Warehouse.Preflight(ctx, md.SQL)
	if err != nil {
		failRequest(f.deps, wr, "SQL failed validation: "+extractDBError(err.Error()))
		return nil, err
	}

	if !est.TooBroad {
		if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusDataFetch, nil); err != nil {
			return nil, err
		}
		csv, err := f.deps.Warehouse.ExecuteCSV(ctx, md.SQL)
		if err != nil {
			failRequest(f.deps, wr, "Query execution failed: "+extractDBError(err.Error()))
			return nil, err
		}
		if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
			Status:   statusPtr(models.StatusDone),
			Response: strPtr(md.Result),
		}); err != nil {
			return nil, err
		}
		return &models.StructuredResponse{SQL: md.SQL, CSV: csv}, nil
	}

	log.Info("Query too broad, decomposing",
		"rows", est.Rows, "parts", est.Parts, "marks", est.Marks)
	return f.runDecomposed(ctx, client, wr, &md, vars, reqCtx, log)
}

// runDecomposed asks the model for a staged pipeline and executes the stages
// in order, piping intermediate tables through the warehouse.
func (f *FlexFlow) runDecomposed(ctx context.Context, client llm.Client, wr *models.WorkerRequest,
	md *models.QueryMetadata, vars, reqCtx map[string]any, log *slog.Logger) (*models.StructuredResponse, error) {

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusRetry, nil); err != nil {
		return nil, err
	}

	vars["sql"] = md.SQL
	material, err := f.deps.Prompts.Render(ctx, "flex_decompose", vars, reqCtx)
	if err != nil {
		failRequest(f.deps, wr, "Prompt rendering failed")
		return nil, err
	}
	raw, err := client.CompleteStructured(ctx,
		[]llm.Message{llm.System(material.Prompt), llm.User(wr.Request)},
		executionPipelineSchema(), "")
	if err != nil {
		failRequest(f.deps, wr, "Pipeline decomposition failed")
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

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusDataFetch, nil); err != nil {
		return nil, err
	}

	var staged []string
	defer f.dropStaged(&staged)

	final := finalStep(&pipeline)
	var csv string
	for i := range pipeline.Steps {
		step := &pipeline.Steps[i]
		if step.SQL == "" {
			continue
		}
		if step == final {
			out, err := f.deps.Warehouse.ExecuteCSV(ctx, step.SQL)
			if err != nil {
				failRequest(f.deps, wr, fmt.Sprintf("Pipeline step %q failed: %s", step.ID, extractDBError(err.Error())))
				return nil, err
			}
			csv = out
			continue
		}
		if step.OutputTable == "" {
			step.OutputTable = "qf_stage_" + strings.ReplaceAll(step.ID, "-", "_")
		}
		stmt := fmt.Sprintf("CREATE TEMPORARY TABLE %s AS %s", step.OutputTable, step.SQL)
		if err := f.deps.Warehouse.Exec(ctx, stmt); err != nil {
			failRequest(f.deps, wr, fmt.Sprintf("Pipeline step %q failed: %s", step.ID, extractDBError(err.Error())))
			return nil, err
		}
		staged = append(staged, step.OutputTable)
		log.Info("Pipeline stage materialized", "step", step.ID, "table", step.OutputTable)
	}

	narration, err := client.Complete(ctx, []llm.Message{
		llm.System("Summarize for the user how their question was answered, given the executed plan."),
		llm.User(wr.Request),
		llm.Assistant(string(raw)),
	})
	if err != nil {
		log.Warn("Pipeline narration failed", "error", err)
		narration = ""
	}

	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr(narration),
	}); err != nil {
		return nil, err
	}
	return &models.StructuredResponse{SQL: md.SQL, CSV: csv}, nil
}

// dropStaged drops intermediate tables, best effort.
func (f *FlexFlow) dropStaged(staged *[]string) {
	if len(*staged) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, table := range *staged {
		if err := f.deps.Warehouse.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			f.logger.Warn("Failed to drop staged table", "table", table, "error", err)
		}
	}
}

// finalStep picks the pipeline's output: the declared output step, else the
// last step carrying SQL.
func finalStep(p *models.ExecutionPipeline) *models.PipelineStep {
	if p.OutputStepID != "" {
		for i := range p.Steps {
			if p.Steps[i].ID == p.OutputStepID {
				return &p.Steps[i]
			}
		}
	}
	for i := len(p.Steps) - 1; i >= 0; i-- {
		if p.Steps[i].SQL != "" {
			return &p.Steps[i]
		}
	}
	return nil
}

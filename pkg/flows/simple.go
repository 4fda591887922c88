package flows

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/warehouse"
)

// inlineRowLimit is the largest result presented inline; bigger results are
// referenced by CSV.
const inlineRowLimit = 50

// SimpleFlow is the legacy single-shot pipeline: one free-text turn producing
// a fenced SQL block, one execution, one narrated reply.
type SimpleFlow struct {
	deps   Deps
	logger *slog.Logger
}

// NewSimpleFlow creates a new SimpleFlow
func NewSimpleFlow(deps Deps) *SimpleFlow {
	return &SimpleFlow{
		deps:   deps,
		logger: slog.With("flow", "simple"),
	}
}

// Run implements Flow.
func (f *SimpleFlow) Run(ctx context.Context, wr *models.WorkerRequest) (*models.StructuredResponse, error) {
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
	vars := map[string]any{"request": wr.Request}

	material, err := f.deps.Prompts.Render(ctx, "legacy_simple_request", vars, reqCtx)
	if err != nil {
		failRequest(f.deps, wr, "Prompt rendering failed")
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusSQL, nil); err != nil {
		return nil, err
	}

	reply, err := client.Complete(ctx, []llm.Message{llm.System(material.Prompt), llm.User(wr.Request)})
	if err != nil {
		failRequest(f.deps, wr, "Query generation failed")
		return nil, err
	}
	sql := extractSQLFence(reply)
	if sql == "" {
		err := fmt.Errorf("no fenced sql block in model reply")
		failRequest(f.deps, wr, "No SQL")
		return nil, err
	}
	_ = warehouse.CheckSyntax(sql)

	if _, err := f.deps.Warehouse.Preflight(ctx, sql); err != nil {
		failRequest(f.deps, wr, "SQL failed validation: "+extractDBError(err.Error()))
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusDataFetch, nil); err != nil {
		return nil, err
	}

	resp := &models.StructuredResponse{SQL: sql}
	count, err := f.deps.Warehouse.Count(ctx, sql)
	if err != nil {
		log.Warn("Row count failed", "error", err)
		count = -1
	}

	if count >= 0 && count <= inlineRowLimit {
		labels, rows, err := f.deps.Warehouse.ExecutePreview(ctx, sql, inlineRowLimit)
		if err != nil {
			failRequest(f.deps, wr, "Query execution failed: "+extractDBError(err.Error()))
			return nil, err
		}
		resp.RawDataLabels = labels
		resp.RawDataRows = rows
	} else {
		csv, err := f.deps.Warehouse.ExecuteCSV(ctx, sql)
		if err != nil {
			failRequest(f.deps, wr, "Query execution failed: "+extractDBError(err.Error()))
			return nil, err
		}
		resp.CSV = csv
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusFinalizing, nil); err != nil {
		return nil, err
	}

	vars["sql"] = sql
	vars["labels"] = resp.RawDataLabels
	vars["rows"] = resp.RawDataRows
	vars["row_count"] = count
	outMaterial, err := f.deps.Prompts.Render(ctx, "legacy_simple_response", vars, reqCtx)
	if err != nil {
		failRequest(f.deps, wr, "Prompt rendering failed")
		return nil, err
	}
	narration, err := client.Complete(ctx, []llm.Message{llm.System(outMaterial.Prompt), llm.User(wr.Request)})
	if err != nil {
		failRequest(f.deps, wr, "Response generation failed")
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr(narration),
	}); err != nil {
		return nil, err
	}
	return resp, nil
}

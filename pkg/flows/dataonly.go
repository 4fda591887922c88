package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/warehouse"
)

// DataOnlyFlow generates one query and returns its CSV. No narration.
type DataOnlyFlow struct {
	deps   Deps
	logger *slog.Logger
}

// NewDataOnlyFlow creates a new DataOnlyFlow
func NewDataOnlyFlow(deps Deps) *DataOnlyFlow {
	return &DataOnlyFlow{
		deps:   deps,
		logger: slog.With("flow", "data_only"),
	}
}

// Run implements Flow.
func (f *DataOnlyFlow) Run(ctx context.Context, wr *models.WorkerRequest) (*models.StructuredResponse, error) {
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

	if _, err := f.deps.Warehouse.Preflight(ctx, md.SQL); err != nil {
		failRequest(f.deps, wr, "SQL failed validation: "+extractDBError(err.Error()))
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusDataFetch, nil); err != nil {
		return nil, err
	}
	csv, err := f.deps.Warehouse.ExecuteCSV(ctx, md.SQL)
	if err != nil {
		failRequest(f.deps, wr, "Query execution failed: "+extractDBError(err.Error()))
		return nil, err
	}
	if csv == "" {
		log.Info("Result not inlined as CSV", "sql_summary", md.Summary)
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusDone, nil); err != nil {
		return nil, err
	}
	return &models.StructuredResponse{SQL: md.SQL, CSV: csv}, nil
}

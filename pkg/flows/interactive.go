package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/services"
	"github.com/apegpt/queryflow/pkg/warehouse"
)

// maxSQLAttempts bounds the interactive query retry loop.
const maxSQLAttempts = 3

// InteractiveFlow is the default pipeline: a planner turn classifies the
// request, then dispatch runs the matching branch. The query branch retries
// SQL generation with warehouse feedback until preflight accepts it.
type InteractiveFlow struct {
	deps   Deps
	logger *slog.Logger
}

// NewInteractiveFlow creates a new InteractiveFlow
func NewInteractiveFlow(deps Deps) *InteractiveFlow {
	return &InteractiveFlow{
		deps:   deps,
		logger: slog.With("flow", "interactive"),
	}
}

// Run implements Flow.
func (f *InteractiveFlow) Run(ctx context.Context, wr *models.WorkerRequest) (*models.StructuredResponse, error) {
	log := f.logger.With("request_id", wr.RequestID, "session_id", wr.SessionID)

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusInProgress, nil); err != nil {
		return nil, err
	}

	client, err := f.deps.Models.Get(wr.Model)
	if err != nil {
		failRequest(f.deps, wr, fmt.Sprintf("Unsupported model %q", wr.Model))
		return nil, err
	}
	if !wr.DB.Valid() {
		err := fmt.Errorf("unsupported db %q", wr.DB)
		failRequest(f.deps, wr, err.Error())
		return nil, err
	}

	// Later turns in a linked session carry no parent in the payload; the
	// session row remembers it.
	if wr.ParentSessionID == nil {
		if sess, err := f.deps.Store.Sessions.GetSession(ctx, wr.User, wr.SessionID); err != nil {
			log.Warn("Failed to load session", "error", err)
		} else {
			wr.ParentSessionID = sess.ParentID
		}
	}

	md, parentMD := f.assembleMetadata(ctx, wr, log)

	history, err := f.deps.Store.Requests.GetHistory(ctx, wr.User, wr.SessionID, true)
	if err != nil {
		log.Warn("Failed to load session history", "error", err)
		history = nil
	}

	reqCtx := f.requestContext(wr)
	ia, err := f.classifyIntent(ctx, client, wr, md, parentMD, history, reqCtx)
	if err != nil {
		failRequest(f.deps, wr, "Intent analysis failed")
		return nil, err
	}
	log.Info("Intent classified", "request_type", ia.RequestType)

	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:      statusPtr(models.StatusIntent),
		RequestType: &ia.RequestType,
		Intent:      strPtr(ia.Intent),
	}); err != nil {
		return nil, err
	}

	switch ia.RequestType {
	case models.RequestTypeLinkedSession:
		return f.runLinkedSession(ctx, wr, ia, md)
	case models.RequestTypeInteractiveQuery:
		return f.runInteractiveQuery(ctx, client, wr, ia, md, history, reqCtx, log)
	case models.RequestTypeDataAnalysis:
		return f.runDataAnalysis(ctx, client, wr, ia, md, history, reqCtx)
	case models.RequestTypeGeneralChat, models.RequestTypeDisambiguation:
		return f.runChat(ctx, client, wr, ia, history)
	}

	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr("Unsupported request type"),
	}); err != nil {
		return nil, err
	}
	return &models.StructuredResponse{Intent: ia.Intent}, nil
}

// assembleMetadata resolves the working query metadata for this turn. The
// payload's seed wins, then the session's stored metadata, then a fresh id.
// The parent session's metadata rides along for lineage.
func (f *InteractiveFlow) assembleMetadata(ctx context.Context, wr *models.WorkerRequest, log *slog.Logger) (*models.QueryMetadata, *models.QueryMetadata) {
	md := wr.Query
	if md == nil {
		stored, err := f.deps.Store.Sessions.GetQueryMetadata(ctx, wr.User, wr.SessionID)
		if err != nil {
			log.Warn("Failed to load session metadata", "error", err)
		}
		md = stored
	}
	if md == nil {
		md = &models.QueryMetadata{ID: uuid.New()}
	}

	var parentMD *models.QueryMetadata
	if wr.ParentSessionID != nil {
		parent, err := f.deps.Store.Sessions.GetQueryMetadata(ctx, wr.User, *wr.ParentSessionID)
		if err != nil {
			log.Warn("Failed to load parent session metadata", "error", err)
		}
		parentMD = parent
	}
	return md, parentMD
}

func (f *InteractiveFlow) requestContext(wr *models.WorkerRequest) map[string]any {
	return map[string]any{
		"user":       wr.User,
		"db":         string(wr.DB),
		"session_id": wr.SessionID.String(),
		"request_id": wr.RequestID.String(),
	}
}

// promptVars builds the shared template variables for the planner and query
// slots.
func (f *InteractiveFlow) promptVars(wr *models.WorkerRequest, md, parentMD *models.QueryMetadata) map[string]any {
	vars := map[string]any{
		"request":        wr.Request,
		"query_metadata": md,
		"datetime":       time.Now().Format("2006-01-02 15:04:05"),
	}
	if parentMD != nil {
		vars["parent_query_metadata"] = parentMD
	}
	if wr.RequestType != "" && wr.RequestType != models.RequestTypeTBD {
		vars["intent_hint"] = string(wr.RequestType)
	}
	if wr.Refs != nil {
		if len(wr.Refs.Rows) > 0 {
			vars["selected_row_data"] = wr.Refs.Rows
		}
		if len(wr.Refs.Cols) > 0 {
			vars["selected_column_data"] = wr.Refs.Cols
		}
	}
	return vars
}

// classifyIntent runs the planner turn.
func (f *InteractiveFlow) classifyIntent(ctx context.Context, client llm.Client, wr *models.WorkerRequest,
	md, parentMD *models.QueryMetadata, history []models.HistoryTurn, reqCtx map[string]any) (*models.IntentAnalysis, error) {

	material, err := f.deps.Prompts.Render(ctx, "planner", f.promptVars(wr, md, parentMD), reqCtx)
	if err != nil {
		return nil, err
	}

	msgs := append([]llm.Message{llm.System(material.Prompt)}, historyMessages(history)...)
	msgs = append(msgs, llm.User(wr.Request))

	raw, err := client.CompleteStructured(ctx, msgs, intentAnalysisSchema(), "")
	if err != nil {
		return nil, err
	}
	var ia models.IntentAnalysis
	if err := json.Unmarshal(raw, &ia); err != nil {
		return nil, fmt.Errorf("unparseable intent analysis: %w", err)
	}
	return &ia, nil
}

// runLinkedSession creates a child session seeded with the current metadata.
// The runner dispatches the follow-up request into it.
func (f *InteractiveFlow) runLinkedSession(ctx context.Context, wr *models.WorkerRequest,
	ia *models.IntentAnalysis, md *models.QueryMetadata) (*models.StructuredResponse, error) {

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusFinalizing, nil); err != nil {
		return nil, err
	}

	child, err := f.deps.Store.Sessions.CreateSession(ctx, wr.User, models.CreateSessionRequest{
		Name: ia.Description,
		Refs: wr.Refs,
	}, &wr.SessionID)
	if err != nil {
		failRequest(f.deps, wr, "Failed to create linked session")
		return nil, err
	}

	if md.SQL != "" {
		if err := f.deps.Store.Sessions.UpdateQueryMetadata(ctx, wr.User, child.ID, md); err != nil {
			f.logger.Warn("Failed to seed linked session metadata", "child_session_id", child.ID, "error", err)
		}
	}

	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr(ia.Response),
	}); err != nil {
		return nil, err
	}

	return &models.StructuredResponse{
		Intent:          ia.Intent,
		SQL:             md.SQL,
		Metadata:        md,
		LinkedSessionID: &child.ID,
		LinkedRequest:   ia.Response,
	}, nil
}

// runInteractiveQuery is the SQL generation loop. Preflight failures feed the
// warehouse error back to the model as a system turn and retry.
func (f *InteractiveFlow) runInteractiveQuery(ctx context.Context, client llm.Client, wr *models.WorkerRequest,
	ia *models.IntentAnalysis, md *models.QueryMetadata, history []models.HistoryTurn,
	reqCtx map[string]any, log *slog.Logger) (*models.StructuredResponse, error) {

	queryID := uuid.New()
	vars := f.promptVars(wr, md, nil)
	vars["intent"] = ia.Intent

	var feedback []llm.Message
	for attempt := 1; attempt <= maxSQLAttempts; attempt++ {
		if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusSQL, nil); err != nil {
			return nil, err
		}

		material, err := f.deps.Prompts.Render(ctx, "interactive_query", vars, reqCtx)
		if err != nil {
			failRequest(f.deps, wr, "Prompt rendering failed")
			return nil, err
		}

		msgs := append([]llm.Message{llm.System(material.Prompt)}, historyMessages(history)...)
		msgs = append(msgs, llm.User(wr.Request))
		msgs = append(msgs, feedback...)

		raw, err := client.CompleteStructured(ctx, msgs, queryMetadataSchema(), "")
		if err != nil {
			failRequest(f.deps, wr, "Query generation failed")
			return nil, err
		}

		newMD := &models.QueryMetadata{}
		if err := json.Unmarshal(raw, newMD); err != nil {
			failRequest(f.deps, wr, "Unparseable query metadata")
			return nil, err
		}
		newMD.ID = queryID
		newMD.Parents = mergeParents(wr.ParentSessionID, newMD.Parents)

		if newMD.Summary != "" {
			if err := f.deps.Store.Sessions.UpdateSessionName(ctx, wr.User, wr.SessionID, newMD.Summary); err != nil {
				log.Warn("Failed to rename session", "error", err)
			}
		}

		if newMD.SQL == "" {
			if newMD.Result != "" {
				return f.finishWithoutSQL(ctx, wr, ia, newMD)
			}
			err := fmt.Errorf("model produced neither sql nor result")
			failRequest(f.deps, wr, "No SQL")
			return nil, err
		}

		// Dialect parse and analyzer findings are advisory; preflight is the
		// authoritative check.
		_ = warehouse.CheckSyntax(newMD.SQL)
		if f.deps.Analyzer != nil {
			if findings, err := f.deps.Analyzer.AnalyzeQuery(ctx, reqCtx, newMD.SQL); err != nil {
				log.Warn("Query analyzer failed", "error", err)
			} else if len(findings) > 0 {
				log.Info("Query analyzer findings", "findings", findings)
			}
		}

		est, err := f.deps.Warehouse.Preflight(ctx, newMD.SQL)
		if err != nil {
			log.Info("Preflight rejected SQL", "attempt", attempt, "error", err)
			if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusRetry, nil); err != nil {
				return nil, err
			}
			feedback = append(feedback, llm.System(fmt.Sprintf(
				"The previous SQL failed validation with this database error:\n%s\nFix the query and try again.",
				extractDBError(err.Error()))))
			continue
		}
		newMD.Explanation = map[string]any{
			"rows":  est.Rows,
			"parts": est.Parts,
			"marks": est.Marks,
		}

		if count, err := f.deps.Warehouse.Count(ctx, newMD.SQL); err != nil {
			log.Warn("Row count failed", "error", err)
		} else {
			newMD.RowCount = &count
		}

		return f.finalizeQuery(ctx, wr, ia, newMD, log)
	}

	err := fmt.Errorf("no working query after %d attempts", maxSQLAttempts)
	failRequest(f.deps, wr, fmt.Sprintf("Failed to produce a working query after %d attempts", maxSQLAttempts))
	return nil, err
}

// finalizeQuery persists session metadata, the Query row and the request
// linkage, then marks the request done.
func (f *InteractiveFlow) finalizeQuery(ctx context.Context, wr *models.WorkerRequest,
	ia *models.IntentAnalysis, md *models.QueryMetadata, log *slog.Logger) (*models.StructuredResponse, error) {

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusFinalizing, nil); err != nil {
		return nil, err
	}

	if err := f.deps.Store.Sessions.UpdateQueryMetadata(ctx, wr.User, wr.SessionID, md); err != nil {
		return nil, err
	}

	var parentID *uuid.UUID
	if prior, err := f.deps.Store.Queries.LatestQuery(ctx, wr.SessionID); err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			log.Warn("Failed to resolve prior query", "error", err)
		}
	} else if prior != nil {
		parentID = &prior.ID
	}

	if _, err := f.deps.Store.Queries.CreateQuery(ctx, models.CreateQueryFields{
		ID:          md.ID,
		SessionID:   wr.SessionID,
		RequestID:   wr.RequestID,
		ParentID:    parentID,
		User:        wr.User,
		Request:     wr.Request,
		SQL:         md.SQL,
		Summary:     md.Summary,
		Description: md.Description,
		Columns:     md.Columns,
		RowCount:    md.RowCount,
		Explanation: md.Explanation,
		Parents:     md.Parents,
		Version:     f.deps.Version,
	}); err != nil {
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		SQL:      strPtr(md.SQL),
		QueryID:  &md.ID,
		Response: strPtr(md.Result),
	}); err != nil {
		return nil, err
	}

	return &models.StructuredResponse{
		Intent:   ia.Intent,
		SQL:      md.SQL,
		Metadata: md,
	}, nil
}

// finishWithoutSQL handles the result-only branch: the model answered from
// the existing data without producing a new query.
func (f *InteractiveFlow) finishWithoutSQL(ctx context.Context, wr *models.WorkerRequest,
	ia *models.IntentAnalysis, md *models.QueryMetadata) (*models.StructuredResponse, error) {

	if err := f.deps.Store.Sessions.UpdateQueryMetadata(ctx, wr.User, wr.SessionID, md); err != nil {
		f.logger.Warn("Failed to persist session metadata", "session_id", wr.SessionID, "error", err)
	}
	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr(md.Result),
	}); err != nil {
		return nil, err
	}
	return &models.StructuredResponse{Intent: ia.Intent, Metadata: md}, nil
}

// runDataAnalysis reuses the query slot but asks for free text over the
// selected data.
func (f *InteractiveFlow) runDataAnalysis(ctx context.Context, client llm.Client, wr *models.WorkerRequest,
	ia *models.IntentAnalysis, md *models.QueryMetadata, history []models.HistoryTurn,
	reqCtx map[string]any) (*models.StructuredResponse, error) {

	vars := f.promptVars(wr, md, nil)
	vars["intent"] = ia.Intent
	material, err := f.deps.Prompts.Render(ctx, "interactive_query", vars, reqCtx)
	if err != nil {
		failRequest(f.deps, wr, "Prompt rendering failed")
		return nil, err
	}

	msgs := append([]llm.Message{llm.System(material.Prompt)}, historyMessages(history)...)
	msgs = append(msgs, llm.User(wr.Request))

	text, err := client.Complete(ctx, msgs)
	if err != nil {
		failRequest(f.deps, wr, "Analysis failed")
		return nil, err
	}

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusFinalizing, nil); err != nil {
		return nil, err
	}
	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr(text),
	}); err != nil {
		return nil, err
	}
	return &models.StructuredResponse{Intent: ia.Intent}, nil
}

// runChat answers conversational and disambiguation turns.
func (f *InteractiveFlow) runChat(ctx context.Context, client llm.Client, wr *models.WorkerRequest,
	ia *models.IntentAnalysis, history []models.HistoryTurn) (*models.StructuredResponse, error) {

	text := ia.Response
	if text == "" {
		msgs := append(historyMessages(history), llm.User(wr.Request))
		reply, err := client.Complete(ctx, msgs)
		if err != nil {
			failRequest(f.deps, wr, "Chat completion failed")
			return nil, err
		}
		text = reply
	}

	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr(text),
	}); err != nil {
		return nil, err
	}
	return &models.StructuredResponse{Intent: ia.Intent}, nil
}

// mergeParents carries the parent session id into the lineage when the
// session was spawned from another one.
func mergeParents(parent *uuid.UUID, parents []uuid.UUID) []uuid.UUID {
	if parent == nil {
		return parents
	}
	for _, p := range parents {
		if p == *parent {
			return parents
		}
	}
	return append(parents, *parent)
}

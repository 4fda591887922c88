package flows

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/ent/task"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/queue"
)

// unhandledErrText is the user-facing error for failures caught at the task
// boundary; the real error goes to the log.
const unhandledErrText = "Unhandled exception, check logs"

// Runner is the queue executor: it decodes the task payload, selects a flow
// by the request's flow/model/db triple and runs it, catching everything at
// the task boundary.
type Runner struct {
	deps   Deps
	logger *slog.Logger
}

// NewRunner creates a new Runner
func NewRunner(deps Deps) *Runner {
	return &Runner{
		deps:   deps,
		logger: slog.With("component", "flow_runner"),
	}
}

// Execute implements queue.TaskExecutor.
func (r *Runner) Execute(ctx context.Context, t *ent.Task) *queue.ExecutionResult {
	wr, err := queue.DecodePayload(t)
	if err != nil {
		r.logger.Error("Undecodable task payload", "task_id", t.ID, "error", err)
		return &queue.ExecutionResult{Status: task.StatusFailed, Error: err}
	}

	log := r.logger.With("request_id", wr.RequestID, "session_id", wr.SessionID, "flow", wr.Flow)
	log.Info("Processing request")

	if err := r.process(ctx, wr); err != nil {
		log.Error("Request processing failed", "error", err)
		// Terminal statuses are sticky, so this generic write only lands
		// when the flow did not already record a specific error.
		r.markError(wr)
		return &queue.ExecutionResult{Status: task.StatusFailed, Error: err}
	}

	log.Info("Request processed")
	return &queue.ExecutionResult{Status: task.StatusCompleted}
}

// process runs the flow for one request, converting panics into errors so
// the task boundary stays intact.
func (r *Runner) process(ctx context.Context, wr *models.WorkerRequest) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic in flow: %v", p)
		}
	}()

	flow, err := r.selectFlow(wr)
	if err != nil {
		return err
	}

	resp, err := flow.Run(ctx, wr)
	if err != nil {
		return err
	}

	if resp != nil {
		if err := r.persistResponse(ctx, wr, resp); err != nil {
			return err
		}
		if resp.LinkedSessionID != nil {
			if err := r.dispatchLinkedRequest(ctx, wr, resp); err != nil {
				return err
			}
		}
	}
	return nil
}

// selectFlow maps the request's flow name to an implementation.
func (r *Runner) selectFlow(wr *models.WorkerRequest) (Flow, error) {
	switch wr.Flow {
	case models.FlowInteractive, "":
		return NewInteractiveFlow(r.deps), nil
	case models.FlowSimple:
		return NewSimpleFlow(r.deps), nil
	case models.FlowMultistep:
		return NewMultistepFlow(r.deps), nil
	case models.FlowDataOnly:
		return NewDataOnlyFlow(r.deps), nil
	case models.FlowFlex:
		return NewFlexFlow(r.deps), nil
	case models.FlowPipeline:
		return NewPipelineFlow(r.deps), nil
	}
	return nil, fmt.Errorf("unknown flow %q", wr.Flow)
}

// persistResponse writes the structured response onto the request row.
func (r *Runner) persistResponse(ctx context.Context, wr *models.WorkerRequest, resp *models.StructuredResponse) error {
	fields := models.UpdateRequestFields{}
	touched := false

	if resp.Intent != "" {
		fields.Intent = strPtr(resp.Intent)
		touched = true
	}
	if resp.Assumptions != "" {
		fields.Assumptions = strPtr(resp.Assumptions)
		touched = true
	}
	if resp.Intro != "" {
		fields.Intro = strPtr(resp.Intro)
		touched = true
	}
	if resp.Outro != "" {
		fields.Outro = strPtr(resp.Outro)
		touched = true
	}
	if resp.SQL != "" {
		fields.SQL = strPtr(resp.SQL)
		touched = true
	}
	if len(resp.RawDataLabels) > 0 {
		fields.RawDataLabels = resp.RawDataLabels
		touched = true
	}
	if len(resp.RawDataRows) > 0 {
		fields.RawDataRows = resp.RawDataRows
		touched = true
	}
	if resp.CSV != "" {
		fields.CSV = strPtr(resp.CSV)
		touched = true
	}
	if resp.Chart != "" {
		fields.Chart = strPtr(resp.Chart)
		touched = true
	}
	if resp.ChartURL != "" {
		fields.ChartURL = strPtr(resp.ChartURL)
		touched = true
	}
	if resp.Refs != nil {
		fields.Refs = resp.Refs
		touched = true
	}
	if resp.Metadata != nil && resp.Metadata.ID != uuid.Nil {
		fields.QueryID = &resp.Metadata.ID
		touched = true
	}
	if resp.LinkedSessionID != nil {
		fields.LinkedSessionID = resp.LinkedSessionID
		touched = true
	}

	if !touched {
		return nil
	}
	return r.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, fields)
}

// dispatchLinkedRequest creates the follow-up request in the freshly created
// child session and enqueues it.
func (r *Runner) dispatchLinkedRequest(ctx context.Context, wr *models.WorkerRequest, resp *models.StructuredResponse) error {
	text := resp.LinkedRequest
	if text == "" {
		text = wr.Request
	}

	created, err := r.deps.Store.Requests.AddRequest(ctx, wr.User, *resp.LinkedSessionID, models.AddRequest{
		Request:     text,
		RequestType: models.RequestTypeTBD,
		Flow:        wr.Flow,
		Model:       wr.Model,
		DB:          wr.DB,
		Refs:        wr.Refs,
	})
	if err != nil {
		return fmt.Errorf("failed to create linked request: %w", err)
	}

	payload := models.WorkerRequest{
		SessionID:       *resp.LinkedSessionID,
		RequestID:       created.ID,
		SequenceNumber:  created.SequenceNumber,
		User:            wr.User,
		Request:         text,
		RequestType:     models.RequestTypeTBD,
		ParentSessionID: &wr.SessionID,
		Flow:            wr.Flow,
		Model:           wr.Model,
		DB:              wr.DB,
		Refs:            wr.Refs,
		Query:           resp.Metadata,
		Version:         wr.Version,
	}
	if err := r.deps.Broker.Enqueue(ctx, queue.TaskProcessRequest, created.ID, payload); err != nil {
		return fmt.Errorf("failed to enqueue linked request: %w", err)
	}

	r.logger.Info("Linked follow-up dispatched",
		"child_session_id", resp.LinkedSessionID, "request_id", created.ID)
	return nil
}

// markError transitions the request to error with the generic boundary text.
// Runs on a background context: the task context may already be cancelled.
func (r *Runner) markError(wr *models.WorkerRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusError, strPtr(unhandledErrText)); err != nil {
		r.logger.Error("Failed to mark request errored", "request_id", wr.RequestID, "error", err)
	}
}

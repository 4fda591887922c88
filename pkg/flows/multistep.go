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

// defaultMaxSteps bounds the investigation loop when configuration does not.
const defaultMaxSteps = 8

// MultistepFlow runs an iterative investigation: each turn the model returns
// one InvestigationStep, optionally asking for data or emitting chart code,
// until it produces a response for the user or the step budget runs out.
type MultistepFlow struct {
	deps   Deps
	logger *slog.Logger
}

// NewMultistepFlow creates a new MultistepFlow
func NewMultistepFlow(deps Deps) *MultistepFlow {
	return &MultistepFlow{
		deps:   deps,
		logger: slog.With("flow", "multistep"),
	}
}

// Run implements Flow.
func (f *MultistepFlow) Run(ctx context.Context, wr *models.WorkerRequest) (*models.StructuredResponse, error) {
	log := f.logger.With("request_id", wr.RequestID, "session_id", wr.SessionID)

	if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusInProgress, nil); err != nil {
		return nil, err
	}

	client, err := f.deps.Models.Get(wr.Model)
	if err != nil {
		failRequest(f.deps, wr, fmt.Sprintf("Unsupported model %q", wr.Model))
		return nil, err
	}

	maxSteps := f.deps.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}

	reqCtx := map[string]any{
		"user":       wr.User,
		"db":         string(wr.DB),
		"session_id": wr.SessionID.String(),
	}
	material, err := f.deps.Prompts.Render(ctx, "multistep", map[string]any{
		"request":  wr.Request,
		"datetime": time.Now().Format("2006-01-02 15:04:05"),
	}, reqCtx)
	if err != nil {
		failRequest(f.deps, wr, "Prompt rendering failed")
		return nil, err
	}

	convo := []llm.Message{llm.System(material.Prompt), llm.User(wr.Request)}
	resp := &models.StructuredResponse{}
	lastSummary := ""

	for step := 1; step <= maxSteps; step++ {
		if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusSQL, nil); err != nil {
			return nil, err
		}

		raw, err := client.CompleteStructured(ctx, convo, investigationStepSchema(), "")
		if err != nil {
			failRequest(f.deps, wr, "Investigation step failed")
			return nil, err
		}
		var st models.InvestigationStep
		if err := json.Unmarshal(raw, &st); err != nil {
			failRequest(f.deps, wr, "Unparseable investigation step")
			return nil, err
		}
		convo = append(convo, llm.Assistant(string(raw)))
		lastSummary = st.Summary
		log.Info("Investigation step", "step", step, "summary", st.Summary, "next_step_needed", st.NextStepNeeded)

		if st.SQLRequest != "" {
			_ = warehouse.CheckSyntax(st.SQLRequest)
			if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusDataFetch, nil); err != nil {
				return nil, err
			}
			labels, rows, err := f.deps.Warehouse.ExecutePreview(ctx, st.SQLRequest, inlineRowLimit)
			if err != nil {
				log.Info("Step SQL failed", "step", step, "error", err)
				if err := f.deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusRetry, nil); err != nil {
					return nil, err
				}
				convo = append(convo, llm.System(fmt.Sprintf(
					"The SQL from the last step failed:\n%s\nAdjust the investigation.",
					truncateAtStackTrace(err.Error()))))
				continue
			}
			resp.SQL = st.SQLRequest
			resp.RawDataLabels = labels
			resp.RawDataRows = rows
			convo = append(convo, llm.System("Query result:\n"+encodeTable(labels, rows)))
		}

		if st.ChartCode != "" && f.deps.Charts != nil {
			if url, err := f.deps.Charts.RenderCode(ctx, st.ChartCode); err != nil {
				log.Warn("Chart rendering failed", "error", err)
			} else {
				resp.Chart = st.ChartCode
				resp.ChartURL = url
			}
		}
		if st.ChartHTML != "" && f.deps.Charts != nil {
			if url, err := f.deps.Charts.RenderHTML(ctx, st.ChartHTML); err != nil {
				log.Warn("Chart HTML rendering failed", "error", err)
			} else {
				resp.ChartURL = url
			}
		}

		if st.ResponseToUser != "" {
			resp.Intro = st.Intro
			resp.Outro = st.Outro
			if len(st.Labels) > 0 {
				resp.RawDataLabels = st.Labels
				resp.RawDataRows = st.Rows
			}
			if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
				Status:   statusPtr(models.StatusDone),
				Response: strPtr(st.ResponseToUser),
			}); err != nil {
				return nil, err
			}
			return resp, nil
		}
		if !st.NextStepNeeded {
			break
		}
	}

	// Step budget exhausted without a user-facing answer; surface the last
	// summary rather than failing.
	text := lastSummary
	if text == "" {
		text = "Investigation ended without a conclusion"
	}
	if err := f.deps.Store.Requests.UpdateRequest(ctx, wr.RequestID, models.UpdateRequestFields{
		Status:   statusPtr(models.StatusDone),
		Response: strPtr(text),
	}); err != nil {
		return nil, err
	}
	return resp, nil
}

// encodeTable renders a small result set as JSON for feeding back to the
// model.
func encodeTable(labels []string, rows [][]string) string {
	b, err := json.Marshal(map[string]any{"labels": labels, "rows": rows})
	if err != nil {
		return ""
	}
	return string(b)
}

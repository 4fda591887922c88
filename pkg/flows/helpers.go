package flows

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/models"
)

var (
	dbExceptionRe = regexp.MustCompile(`(?s)(DB::Exception.*?)Stack trace`)
	sqlFenceRe    = regexp.MustCompile("(?s)```sql\\s*(.*?)```")
)

// extractDBError pulls the ClickHouse exception text out of a driver error,
// dropping the stack trace. Falls back to the full message.
func extractDBError(msg string) string {
	if m := dbExceptionRe.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1])
	}
	return truncateAtStackTrace(msg)
}

// truncateAtStackTrace cuts everything from "Stack trace" on.
func truncateAtStackTrace(msg string) string {
	if i := strings.Index(msg, "Stack trace"); i >= 0 {
		return strings.TrimSpace(msg[:i])
	}
	return strings.TrimSpace(msg)
}

// extractSQLFence returns the first ```sql fenced block, or empty.
func extractSQLFence(text string) string {
	if m := sqlFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// historyMessages converts stored chat turns into LLM messages.
func historyMessages(history []models.HistoryTurn) []llm.Message {
	out := make([]llm.Message, 0, len(history))
	for _, turn := range history {
		out = append(out, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	return out
}

// failRequest records a specific terminal error on the request. Uses a fresh
// context so the write survives task cancellation; terminal statuses are
// sticky, so the runner's generic error write afterwards is a no-op.
func failRequest(deps Deps, wr *models.WorkerRequest, msg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.Store.Requests.UpdateStatus(ctx, wr.RequestID, models.StatusError, strPtr(msg)); err != nil {
		slog.Error("Failed to record flow error", "request_id", wr.RequestID, "error", err)
	}
}

func strPtr(s string) *string { return &s }

func statusPtr(s models.RequestStatus) *models.RequestStatus { return &s }

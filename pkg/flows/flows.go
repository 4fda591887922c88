// Package flows contains the request-processing pipelines. A flow takes the
// worker payload for one request turn, drives the LLM and the warehouse, and
// persists progress through the services layer as it goes.
package flows

import (
	"context"

	"github.com/google/uuid"

	"github.com/apegpt/queryflow/ent"
	"github.com/apegpt/queryflow/pkg/assembler"
	"github.com/apegpt/queryflow/pkg/llm"
	"github.com/apegpt/queryflow/pkg/mcp"
	"github.com/apegpt/queryflow/pkg/models"
	"github.com/apegpt/queryflow/pkg/warehouse"
)

// Flow is one processing pipeline. Run persists request state progressively;
// the returned response is what the runner writes onto the request at the
// end. A flow that reaches a terminal status itself may still return an
// error for logging; terminal statuses are sticky so the runner's generic
// error write will not overwrite a specific one.
type Flow interface {
	Run(ctx context.Context, wr *models.WorkerRequest) (*models.StructuredResponse, error)
}

// Sessions is the session persistence surface flows use.
type Sessions interface {
	GetSession(ctx context.Context, user string, sessionID uuid.UUID) (*ent.Session, error)
	CreateSession(ctx context.Context, user string, req models.CreateSessionRequest, parent *uuid.UUID) (*ent.Session, error)
	UpdateSessionName(ctx context.Context, user string, sessionID uuid.UUID, name string) error
	UpdateQueryMetadata(ctx context.Context, user string, sessionID uuid.UUID, metadata *models.QueryMetadata) error
	GetQueryMetadata(ctx context.Context, user string, sessionID uuid.UUID) (*models.QueryMetadata, error)
}

// Requests is the request persistence surface flows use.
type Requests interface {
	AddRequest(ctx context.Context, user string, sessionID uuid.UUID, req models.AddRequest) (*ent.Request, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status models.RequestStatus, errText *string) error
	UpdateRequest(ctx context.Context, requestID uuid.UUID, fields models.UpdateRequestFields) error
	GetHistory(ctx context.Context, user string, sessionID uuid.UUID, includeResponses bool) ([]models.HistoryTurn, error)
}

// Queries is the query persistence surface flows use.
type Queries interface {
	CreateQuery(ctx context.Context, f models.CreateQueryFields) (*ent.QueryRecord, error)
	LatestQuery(ctx context.Context, sessionID uuid.UUID) (*ent.QueryRecord, error)
}

// Store bundles the persistence surfaces.
type Store struct {
	Sessions Sessions
	Requests Requests
	Queries  Queries
}

// Warehouse is the analytics database surface flows use. Satisfied by
// *warehouse.Client.
type Warehouse interface {
	Preflight(ctx context.Context, query string) (*warehouse.PreflightEstimate, error)
	Count(ctx context.Context, query string) (int64, error)
	Execute(ctx context.Context, query string, limit, offset int) ([]map[string]any, int64, error)
	ExecutePreview(ctx context.Context, query string, limit int) ([]string, [][]string, error)
	ExecuteCSV(ctx context.Context, query string) (string, error)
	Exec(ctx context.Context, query string) error
}

// Models resolves an LLM adapter by family. Satisfied by *llm.Registry.
type Models interface {
	Get(model models.ModelType) (llm.Client, error)
}

// Prompts renders prompt slots. Satisfied by *assembler.Assembler.
type Prompts interface {
	Render(ctx context.Context, slot string, vars map[string]any, reqCtx map[string]any) (*assembler.SlotMaterial, error)
}

// Renderer turns chart code or HTML into a served URL. Satisfied by
// *charts.Client.
type Renderer interface {
	RenderCode(ctx context.Context, code string) (string, error)
	RenderHTML(ctx context.Context, html string) (string, error)
}

// Enqueuer schedules follow-up tasks. Satisfied by *queue.Broker.
type Enqueuer interface {
	Enqueue(ctx context.Context, name string, taskID uuid.UUID, payload models.WorkerRequest) error
}

// Deps carries everything a flow needs. Charts and Analyzer are optional;
// flows degrade gracefully without them.
type Deps struct {
	Store     Store
	Models    Models
	Warehouse Warehouse
	Prompts   Prompts
	Charts    Renderer
	Analyzer  mcp.QueryAnalyzer
	Broker    Enqueuer

	// MaxSteps bounds the multistep investigation loop.
	MaxSteps int

	// Version is reported in query lineage.
	Version string
}

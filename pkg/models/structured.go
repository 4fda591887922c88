package models

import "github.com/google/uuid"

// Refs is column/row data the user selected in the UI and attached to a
// request for context. Rows are [id, values...]; Cols are column ids.
type Refs struct {
	Rows [][]string `json:"rows,omitempty"`
	Cols []string   `json:"cols,omitempty"`
}

// IntentAnalysis is the planner's verdict on an interactive request.
type IntentAnalysis struct {
	RequestType InteractiveRequestType `json:"request_type"`
	Intent      string                 `json:"intent,omitempty"`
	Response    string                 `json:"response,omitempty"`
	Description string                 `json:"description,omitempty"`
}

// StructuredResponse is the normalized outcome of any flow: what the model
// produced, plus everything the flow derived from it (data preview, chart,
// linked session). Flows fill only the parts their contract defines.
type StructuredResponse struct {
	Intent          string         `json:"intent,omitempty"`
	Assumptions     string         `json:"assumptions,omitempty"`
	Intro           string         `json:"intro,omitempty"`
	Outro           string         `json:"outro,omitempty"`
	SQL             string         `json:"sql,omitempty"`
	Description     string         `json:"description,omitempty"`
	RawDataLabels   []string       `json:"raw_data_labels,omitempty"`
	RawDataRows     [][]string     `json:"raw_data,omitempty"`
	CSV             string         `json:"csv,omitempty"`
	Chart           string         `json:"chart,omitempty"`
	ChartURL        string         `json:"chart_url,omitempty"`
	Refs            *Refs          `json:"refs,omitempty"`
	Metadata        *QueryMetadata `json:"metadata,omitempty"`
	LinkedSessionID *uuid.UUID     `json:"linked_session_id,omitempty"`
	LinkedRequest   string         `json:"linked_request,omitempty"`
}

// InvestigationStep is one iteration of the multistep flow's loop.
type InvestigationStep struct {
	Summary               string     `json:"summary"`
	UserIntent            string     `json:"user_intent,omitempty"`
	SQLRequest            string     `json:"sql_request,omitempty"`
	ResponseToUser        string     `json:"response_to_user,omitempty"`
	NextStepNeeded        bool       `json:"next_step_needed"`
	SelfCheckPassed       bool       `json:"self_check_passed"`
	AdditionalDataRequest string     `json:"additional_data_request,omitempty"`
	Labels                []string   `json:"labels,omitempty"`
	Rows                  [][]string `json:"rows,omitempty"`
	Intro                 string     `json:"intro,omitempty"`
	Outro                 string     `json:"outro,omitempty"`
	ChartCode             string     `json:"chart_code,omitempty"`
	ChartHTML             string     `json:"chart_html,omitempty"`
}

// PipelineStep is one node of an execution pipeline DAG.
type PipelineStep struct {
	ID          string         `json:"id"`
	Label       string         `json:"label,omitempty"`
	Description string         `json:"description,omitempty"`
	DependsOn   []string       `json:"depends_on,omitempty"`
	Type        string         `json:"type,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	SQL         string         `json:"sql,omitempty"`
	OutputTable string         `json:"output_table,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// ExecutionPipeline is a typed decomposition of a broad question into
// dependent warehouse steps, executed topologically by the pipeline flow.
type ExecutionPipeline struct {
	QueryID      uuid.UUID        `json:"query_id"`
	UserQuestion string           `json:"user_question"`
	Steps        []PipelineStep   `json:"steps"`
	OutputStepID string           `json:"output_step_id,omitempty"`
	Result       []map[string]any `json:"result,omitempty"`
}

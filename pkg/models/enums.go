// Package models contains the shared domain types: request/session DTOs,
// status and flow enums, and the structured payloads exchanged with the
// language models.
package models

// RequestStatus tracks a request through its processing lifecycle.
type RequestStatus string

const (
	StatusNew        RequestStatus = "new"
	StatusInProgress RequestStatus = "in_progress"
	StatusIntent     RequestStatus = "intent"
	StatusSQL        RequestStatus = "sql"
	StatusDataFetch  RequestStatus = "data_fetch"
	StatusRetry      RequestStatus = "retry"
	StatusFinalizing RequestStatus = "finalizing"
	StatusDone       RequestStatus = "done"
	StatusError      RequestStatus = "error"
	StatusCancelled  RequestStatus = "cancelled"
	StatusScheduled  RequestStatus = "scheduled"
)

// Terminal reports whether the status is final. Terminal statuses are sticky:
// once a request reaches one, later status writes are discarded.
func (s RequestStatus) Terminal() bool {
	switch s {
	case StatusDone, StatusError, StatusCancelled:
		return true
	}
	return false
}

// Valid reports whether s is a known status value.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusIntent, StatusSQL, StatusDataFetch,
		StatusRetry, StatusFinalizing, StatusDone, StatusError, StatusCancelled,
		StatusScheduled:
		return true
	}
	return false
}

// RequestStatusValues lists every status, for ent schema enums.
func RequestStatusValues() []string {
	return []string{
		string(StatusNew), string(StatusInProgress), string(StatusIntent),
		string(StatusSQL), string(StatusDataFetch), string(StatusRetry),
		string(StatusFinalizing), string(StatusDone), string(StatusError),
		string(StatusCancelled), string(StatusScheduled),
	}
}

// FlowType selects the processing pipeline for a request.
type FlowType string

const (
	FlowSimple      FlowType = "simple"
	FlowMultistep   FlowType = "multistep"
	FlowDataOnly    FlowType = "data_only"
	FlowFlex        FlowType = "flex"
	FlowPipeline    FlowType = "pipeline"
	FlowInteractive FlowType = "interactive"
)

// Valid reports whether f is a known flow.
func (f FlowType) Valid() bool {
	switch f {
	case FlowSimple, FlowMultistep, FlowDataOnly, FlowFlex, FlowPipeline, FlowInteractive:
		return true
	}
	return false
}

// ModelType selects the LLM provider family.
type ModelType string

const (
	ModelOpenAI    ModelType = "openai"
	ModelGemini    ModelType = "gemini"
	ModelDeepSeek  ModelType = "deepseek"
	ModelAnthropic ModelType = "anthropic"
)

// Valid reports whether m is a known model family.
func (m ModelType) Valid() bool {
	switch m {
	case ModelOpenAI, ModelGemini, ModelDeepSeek, ModelAnthropic:
		return true
	}
	return false
}

// DBType names the warehouse schema generation a request runs against.
type DBType string

const (
	DBV2 DBType = "v2"
)

// Valid reports whether d is a known warehouse schema.
func (d DBType) Valid() bool {
	return d == DBV2
}

// InteractiveRequestType is the planner's classification of an interactive
// request. TBD marks a follow-up request whose type the planner has not
// assigned yet.
type InteractiveRequestType string

const (
	RequestTypeTBD              InteractiveRequestType = "tbd"
	RequestTypeLinkedSession    InteractiveRequestType = "linked_session"
	RequestTypeInteractiveQuery InteractiveRequestType = "interactive_query"
	RequestTypeDataAnalysis     InteractiveRequestType = "data_analysis"
	RequestTypeGeneralChat      InteractiveRequestType = "general_chat"
	RequestTypeDisambiguation   InteractiveRequestType = "disambiguation"
	RequestTypeUnknown          InteractiveRequestType = "unknown"
)

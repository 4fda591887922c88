package models

import "github.com/google/uuid"

// CreateSessionRequest contains fields for creating a session.
type CreateSessionRequest struct {
	Name string `json:"name,omitempty"`
	Tags string `json:"tags,omitempty"`
	Refs *Refs  `json:"refs,omitempty"`
}

// PatchSessionRequest carries partial session updates; nil means unchanged.
type PatchSessionRequest struct {
	Name *string `json:"name,omitempty"`
	Tags *string `json:"tags,omitempty"`
	Refs *Refs   `json:"refs,omitempty"`
}

// AddRequest contains fields for enqueuing a new request in a session.
type AddRequest struct {
	Request     string                 `json:"request"`
	RequestType InteractiveRequestType `json:"request_type,omitempty"`
	Flow        FlowType               `json:"flow,omitempty"`
	Model       ModelType              `json:"model,omitempty"`
	DB          DBType                 `json:"db,omitempty"`
	Refs        *Refs                  `json:"refs,omitempty"`
}

// AddLinkedRequest creates a child session seeded from an existing query and
// enqueues its first request.
type AddLinkedRequest struct {
	Name    string    `json:"name,omitempty"`
	Tags    string    `json:"tags,omitempty"`
	Request string    `json:"request"`
	Flow    FlowType  `json:"flow,omitempty"`
	Model   ModelType `json:"model,omitempty"`
	DB      DBType    `json:"db,omitempty"`
	Refs    *Refs     `json:"refs,omitempty"`
	Version string    `json:"version,omitempty"`
}

// WorkerRequest is the task payload handed to the worker pool. It carries
// everything a flow needs so the worker can start without a read round-trip.
type WorkerRequest struct {
	SessionID       uuid.UUID              `json:"session_id"`
	RequestID       uuid.UUID              `json:"request_id"`
	SequenceNumber  int                    `json:"sequence_number"`
	User            string                 `json:"user"`
	Request         string                 `json:"request"`
	RequestType     InteractiveRequestType `json:"request_type,omitempty"`
	Response        string                 `json:"response,omitempty"`
	ParentSessionID *uuid.UUID             `json:"parent_session_id,omitempty"`
	Flow            FlowType               `json:"flow"`
	Model           ModelType              `json:"model"`
	DB              DBType                 `json:"db"`
	Refs            *Refs                  `json:"refs,omitempty"`
	Query           *QueryMetadata         `json:"query,omitempty"`
	Version         string                 `json:"version,omitempty"`
}

// UpdateRequestFields is a partial update of a request row. Nil pointers mean
// "leave unchanged"; Status is handled separately so terminal stickiness can
// be enforced in one place.
type UpdateRequestFields struct {
	Status          *RequestStatus          `json:"status,omitempty"`
	RequestType     *InteractiveRequestType `json:"request_type,omitempty"`
	Err             *string                 `json:"err,omitempty"`
	Response        *string                 `json:"response,omitempty"`
	Intent          *string                 `json:"intent,omitempty"`
	Assumptions     *string                 `json:"assumptions,omitempty"`
	Intro           *string                 `json:"intro,omitempty"`
	Outro           *string                 `json:"outro,omitempty"`
	SQL             *string                 `json:"sql,omitempty"`
	RawDataLabels   []string                `json:"raw_data_labels,omitempty"`
	RawDataRows     [][]string              `json:"raw_data,omitempty"`
	CSV             *string                 `json:"csv,omitempty"`
	Chart           *string                 `json:"chart,omitempty"`
	ChartURL        *string                 `json:"chart_url,omitempty"`
	Refs            *Refs                   `json:"refs,omitempty"`
	View            *View                   `json:"view,omitempty"`
	QueryID         *uuid.UUID              `json:"query_id,omitempty"`
	LinkedSessionID *uuid.UUID              `json:"linked_session_id,omitempty"`
	Rating          *int                    `json:"rating,omitempty"`
	Review          *string                 `json:"review,omitempty"`
}

// HistoryTurn is one chat turn of a session's request history.
type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	User   string `json:"user,omitempty"`
	Tags   string `json:"tags,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

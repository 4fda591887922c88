package models

import (
	"fmt"

	"github.com/google/uuid"
)

// View describes a client-requested presentation of query results,
// currently just the sort applied on top of the stored SQL.
type View struct {
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

// Validate checks the sort order; an empty View is valid.
func (v *View) Validate() error {
	if v == nil {
		return nil
	}
	switch v.SortOrder {
	case "", "asc", "desc", "ASC", "DESC":
		return nil
	}
	return fmt.Errorf("invalid sort_order %q", v.SortOrder)
}

// ColumnInfo describes a single result column of a saved query.
type ColumnInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// QueryMetadata is the query payload carried on sessions and requests. The
// same shape lives in Session.Metadata (the session's latest query), on a
// Request's query edge, and in the Query table itself.
type QueryMetadata struct {
	ID          uuid.UUID      `json:"id"`
	SQL         string         `json:"sql,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	Description string         `json:"description,omitempty"`
	Result      string         `json:"result,omitempty"`
	Columns     []ColumnInfo   `json:"columns,omitempty"`
	RowCount    *int64         `json:"row_count,omitempty"`
	Explanation map[string]any `json:"explanation,omitempty"`
	Parents     []uuid.UUID    `json:"parents,omitempty"`
	View        *View          `json:"view,omitempty"`
}

// CreateQueryFields carries everything needed to persist a Query row.
type CreateQueryFields struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	RequestID   uuid.UUID
	ParentID    *uuid.UUID
	User        string
	Request     string
	SQL         string
	Summary     string
	Description string
	Columns     []ColumnInfo
	RowCount    *int64
	Explanation map[string]any
	Parents     []uuid.UUID
	Tags        string
	Version     string
}

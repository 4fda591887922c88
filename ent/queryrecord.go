// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apegpt/queryflow/ent/queryrecord"
	"github.com/apegpt/queryflow/ent/session"
	"github.com/google/uuid"
)

// QueryRecord is the model entity for the QueryRecord schema.
type QueryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// Request turn that produced this query
	RequestID uuid.UUID `json:"request_id,omitempty"`
	// Previous query in the session, or the seed of a linked session
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	// User holds the value of the "user" field.
	User string `json:"user,omitempty"`
	// Natural-language question the SQL answers
	Request string `json:"request,omitempty"`
	// SQL holds the value of the "sql" field.
	SQL string `json:"sql,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Result column names/types/descriptions
	Columns []map[string]interface{} `json:"columns,omitempty"`
	// RowCount holds the value of the "row_count" field.
	RowCount *int64 `json:"row_count,omitempty"`
	// Preflight estimate and other advisory detail
	Explanation map[string]interface{} `json:"explanation,omitempty"`
	// Parent session ids this lineage descends from
	Parents []string `json:"parents,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags string `json:"tags,omitempty"`
	// Prompt pack version the SQL was generated with
	Version string `json:"version,omitempty"`
	// View holds the value of the "view" field.
	View map[string]interface{} `json:"view,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QueryRecordQuery when eager-loading is set.
	Edges        QueryRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QueryRecordEdges holds the relations/edges for other nodes in the graph.
type QueryRecordEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QueryRecordEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queryrecord.FieldParentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case queryrecord.FieldColumns, queryrecord.FieldExplanation, queryrecord.FieldParents, queryrecord.FieldView:
			values[i] = new([]byte)
		case queryrecord.FieldRowCount:
			values[i] = new(sql.NullInt64)
		case queryrecord.FieldUser, queryrecord.FieldRequest, queryrecord.FieldSQL, queryrecord.FieldSummary, queryrecord.FieldDescription, queryrecord.FieldTags, queryrecord.FieldVersion:
			values[i] = new(sql.NullString)
		case queryrecord.FieldCreatedAt, queryrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case queryrecord.FieldID, queryrecord.FieldSessionID, queryrecord.FieldRequestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueryRecord fields.
func (_m *QueryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queryrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case queryrecord.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case queryrecord.FieldRequestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value != nil {
				_m.RequestID = *value
			}
		case queryrecord.FieldParentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(uuid.UUID)
				*_m.ParentID = *value.S.(*uuid.UUID)
			}
		case queryrecord.FieldUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user", values[i])
			} else if value.Valid {
				_m.User = value.String
			}
		case queryrecord.FieldRequest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request", values[i])
			} else if value.Valid {
				_m.Request = value.String
			}
		case queryrecord.FieldSQL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql", values[i])
			} else if value.Valid {
				_m.SQL = value.String
			}
		case queryrecord.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case queryrecord.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case queryrecord.FieldColumns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field columns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Columns); err != nil {
					return fmt.Errorf("unmarshal field columns: %w", err)
				}
			}
		case queryrecord.FieldRowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_count", values[i])
			} else if value.Valid {
				_m.RowCount = new(int64)
				*_m.RowCount = value.Int64
			}
		case queryrecord.FieldExplanation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Explanation); err != nil {
					return fmt.Errorf("unmarshal field explanation: %w", err)
				}
			}
		case queryrecord.FieldParents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parents); err != nil {
					return fmt.Errorf("unmarshal field parents: %w", err)
				}
			}
		case queryrecord.FieldTags:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value.Valid {
				_m.Tags = value.String
			}
		case queryrecord.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case queryrecord.FieldView:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field view", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.View); err != nil {
					return fmt.Errorf("unmarshal field view: %w", err)
				}
			}
		case queryrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case queryrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *QueryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the QueryRecord entity.
func (_m *QueryRecord) QuerySession() *SessionQuery {
	return NewQueryRecordClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this QueryRecord.
// Note that you need to call QueryRecord.Unwrap() before calling this method if this QueryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueryRecord) Update() *QueryRecordUpdateOne {
	return NewQueryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueryRecord) Unwrap() *QueryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("QueryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("user=")
	builder.WriteString(_m.User)
	builder.WriteString(", ")
	builder.WriteString("request=")
	builder.WriteString(_m.Request)
	builder.WriteString(", ")
	builder.WriteString("sql=")
	builder.WriteString(_m.SQL)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("columns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Columns))
	builder.WriteString(", ")
	if v := _m.RowCount; v != nil {
		builder.WriteString("row_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Explanation))
	builder.WriteString(", ")
	builder.WriteString("parents=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parents))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(_m.Tags)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("view=")
	builder.WriteString(fmt.Sprintf("%v", _m.View))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QueryRecords is a parsable slice of QueryRecord.
type QueryRecords []*QueryRecord

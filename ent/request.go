// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apegpt/queryflow/ent/request"
	"github.com/apegpt/queryflow/ent/session"
	"github.com/google/uuid"
)

// Request is the model entity for the Request schema.
type Request struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// Dense 1-based order within the session
	SequenceNumber int `json:"sequence_number,omitempty"`
	// Owner subject from the access token
	User string `json:"user,omitempty"`
	// The user's natural-language question
	Request string `json:"request,omitempty"`
	// Planner classification (tbd until the planner runs)
	RequestType string `json:"request_type,omitempty"`
	// Status holds the value of the "status" field.
	Status request.Status `json:"status,omitempty"`
	// Flow holds the value of the "flow" field.
	Flow string `json:"flow,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Db holds the value of the "db" field.
	Db string `json:"db,omitempty"`
	// User-facing error text when status is error
	Err *string `json:"err,omitempty"`
	// Final conversational response
	Response *string `json:"response,omitempty"`
	// Intent holds the value of the "intent" field.
	Intent *string `json:"intent,omitempty"`
	// Assumptions holds the value of the "assumptions" field.
	Assumptions *string `json:"assumptions,omitempty"`
	// Intro holds the value of the "intro" field.
	Intro *string `json:"intro,omitempty"`
	// Outro holds the value of the "outro" field.
	Outro *string `json:"outro,omitempty"`
	// Validated SQL produced for this turn
	SQL *string `json:"sql,omitempty"`
	// RawDataLabels holds the value of the "raw_data_labels" field.
	RawDataLabels []string `json:"raw_data_labels,omitempty"`
	// Preview rows shown inline in the reply
	RawData [][]string `json:"raw_data,omitempty"`
	// Csv holds the value of the "csv" field.
	Csv *string `json:"csv,omitempty"`
	// Chart code or HTML produced by the flow
	Chart *string `json:"chart,omitempty"`
	// ChartURL holds the value of the "chart_url" field.
	ChartURL *string `json:"chart_url,omitempty"`
	// Refs holds the value of the "refs" field.
	Refs map[string]interface{} `json:"refs,omitempty"`
	// Sort applied by the data endpoint
	View map[string]interface{} `json:"view,omitempty"`
	// Query row this turn produced or was seeded from
	QueryID *uuid.UUID `json:"query_id,omitempty"`
	// LinkedSessionID holds the value of the "linked_session_id" field.
	LinkedSessionID *uuid.UUID `json:"linked_session_id,omitempty"`
	// User feedback, 1-5
	Rating *int `json:"rating,omitempty"`
	// Review holds the value of the "review" field.
	Review *string `json:"review,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequestQuery when eager-loading is set.
	Edges        RequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequestEdges holds the relations/edges for other nodes in the graph.
type RequestEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequestEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Request) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case request.FieldQueryID, request.FieldLinkedSessionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case request.FieldRawDataLabels, request.FieldRawData, request.FieldRefs, request.FieldView:
			values[i] = new([]byte)
		case request.FieldSequenceNumber, request.FieldRating:
			values[i] = new(sql.NullInt64)
		case request.FieldUser, request.FieldRequest, request.FieldRequestType, request.FieldStatus, request.FieldFlow, request.FieldModel, request.FieldDb, request.FieldErr, request.FieldResponse, request.FieldIntent, request.FieldAssumptions, request.FieldIntro, request.FieldOutro, request.FieldSQL, request.FieldCsv, request.FieldChart, request.FieldChartURL, request.FieldReview:
			values[i] = new(sql.NullString)
		case request.FieldCreatedAt, request.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case request.FieldID, request.FieldSessionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Request fields.
func (_m *Request) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case request.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case request.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case request.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case request.FieldUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user", values[i])
			} else if value.Valid {
				_m.User = value.String
			}
		case request.FieldRequest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request", values[i])
			} else if value.Valid {
				_m.Request = value.String
			}
		case request.FieldRequestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_type", values[i])
			} else if value.Valid {
				_m.RequestType = value.String
			}
		case request.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = request.Status(value.String)
			}
		case request.FieldFlow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow", values[i])
			} else if value.Valid {
				_m.Flow = value.String
			}
		case request.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case request.FieldDb:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field db", values[i])
			} else if value.Valid {
				_m.Db = value.String
			}
		case request.FieldErr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field err", values[i])
			} else if value.Valid {
				_m.Err = new(string)
				*_m.Err = value.String
			}
		case request.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = new(string)
				*_m.Response = value.String
			}
		case request.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = new(string)
				*_m.Intent = value.String
			}
		case request.FieldAssumptions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assumptions", values[i])
			} else if value.Valid {
				_m.Assumptions = new(string)
				*_m.Assumptions = value.String
			}
		case request.FieldIntro:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intro", values[i])
			} else if value.Valid {
				_m.Intro = new(string)
				*_m.Intro = value.String
			}
		case request.FieldOutro:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outro", values[i])
			} else if value.Valid {
				_m.Outro = new(string)
				*_m.Outro = value.String
			}
		case request.FieldSQL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql", values[i])
			} else if value.Valid {
				_m.SQL = new(string)
				*_m.SQL = value.String
			}
		case request.FieldRawDataLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_data_labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawDataLabels); err != nil {
					return fmt.Errorf("unmarshal field raw_data_labels: %w", err)
				}
			}
		case request.FieldRawData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawData); err != nil {
					return fmt.Errorf("unmarshal field raw_data: %w", err)
				}
			}
		case request.FieldCsv:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field csv", values[i])
			} else if value.Valid {
				_m.Csv = new(string)
				*_m.Csv = value.String
			}
		case request.FieldChart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chart", values[i])
			} else if value.Valid {
				_m.Chart = new(string)
				*_m.Chart = value.String
			}
		case request.FieldChartURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chart_url", values[i])
			} else if value.Valid {
				_m.ChartURL = new(string)
				*_m.ChartURL = value.String
			}
		case request.FieldRefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field refs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Refs); err != nil {
					return fmt.Errorf("unmarshal field refs: %w", err)
				}
			}
		case request.FieldView:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field view", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.View); err != nil {
					return fmt.Errorf("unmarshal field view: %w", err)
				}
			}
		case request.FieldQueryID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field query_id", values[i])
			} else if value.Valid {
				_m.QueryID = new(uuid.UUID)
				*_m.QueryID = *value.S.(*uuid.UUID)
			}
		case request.FieldLinkedSessionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field linked_session_id", values[i])
			} else if value.Valid {
				_m.LinkedSessionID = new(uuid.UUID)
				*_m.LinkedSessionID = *value.S.(*uuid.UUID)
			}
		case request.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = new(int)
				*_m.Rating = int(value.Int64)
			}
		case request.FieldReview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review", values[i])
			} else if value.Valid {
				_m.Review = new(string)
				*_m.Review = value.String
			}
		case request.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case request.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Request.
// This includes values selected through modifiers, order, etc.
func (_m *Request) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Request entity.
func (_m *Request) QuerySession() *SessionQuery {
	return NewRequestClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Request.
// Note that you need to call Request.Unwrap() before calling this method if this Request
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Request) Update() *RequestUpdateOne {
	return NewRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Request entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Request) Unwrap() *Request {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Request is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Request) String() string {
	var builder strings.Builder
	builder.WriteString("Request(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("user=")
	builder.WriteString(_m.User)
	builder.WriteString(", ")
	builder.WriteString("request=")
	builder.WriteString(_m.Request)
	builder.WriteString(", ")
	builder.WriteString("request_type=")
	builder.WriteString(_m.RequestType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("flow=")
	builder.WriteString(_m.Flow)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("db=")
	builder.WriteString(_m.Db)
	builder.WriteString(", ")
	if v := _m.Err; v != nil {
		builder.WriteString("err=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Response; v != nil {
		builder.WriteString("response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Intent; v != nil {
		builder.WriteString("intent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Assumptions; v != nil {
		builder.WriteString("assumptions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Intro; v != nil {
		builder.WriteString("intro=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Outro; v != nil {
		builder.WriteString("outro=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SQL; v != nil {
		builder.WriteString("sql=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("raw_data_labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawDataLabels))
	builder.WriteString(", ")
	builder.WriteString("raw_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawData))
	builder.WriteString(", ")
	if v := _m.Csv; v != nil {
		builder.WriteString("csv=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Chart; v != nil {
		builder.WriteString("chart=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChartURL; v != nil {
		builder.WriteString("chart_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("refs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Refs))
	builder.WriteString(", ")
	builder.WriteString("view=")
	builder.WriteString(fmt.Sprintf("%v", _m.View))
	builder.WriteString(", ")
	if v := _m.QueryID; v != nil {
		builder.WriteString("query_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LinkedSessionID; v != nil {
		builder.WriteString("linked_session_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Rating; v != nil {
		builder.WriteString("rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Review; v != nil {
		builder.WriteString("review=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Requests is a parsable slice of Request.
type Requests []*Request

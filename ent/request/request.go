// Code generated by ent, DO NOT EDIT.

package request

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the request type in the database.
	Label = "request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldUser holds the string denoting the user field in the database.
	FieldUser = "user"
	// FieldRequest holds the string denoting the request field in the database.
	FieldRequest = "request"
	// FieldRequestType holds the string denoting the request_type field in the database.
	FieldRequestType = "request_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFlow holds the string denoting the flow field in the database.
	FieldFlow = "flow"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldDb holds the string denoting the db field in the database.
	FieldDb = "db"
	// FieldErr holds the string denoting the err field in the database.
	FieldErr = "err"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldAssumptions holds the string denoting the assumptions field in the database.
	FieldAssumptions = "assumptions"
	// FieldIntro holds the string denoting the intro field in the database.
	FieldIntro = "intro"
	// FieldOutro holds the string denoting the outro field in the database.
	FieldOutro = "outro"
	// FieldSQL holds the string denoting the sql field in the database.
	FieldSQL = "sql"
	// FieldRawDataLabels holds the string denoting the raw_data_labels field in the database.
	FieldRawDataLabels = "raw_data_labels"
	// FieldRawData holds the string denoting the raw_data field in the database.
	FieldRawData = "raw_data"
	// FieldCsv holds the string denoting the csv field in the database.
	FieldCsv = "csv"
	// FieldChart holds the string denoting the chart field in the database.
	FieldChart = "chart"
	// FieldChartURL holds the string denoting the chart_url field in the database.
	FieldChartURL = "chart_url"
	// FieldRefs holds the string denoting the refs field in the database.
	FieldRefs = "refs"
	// FieldView holds the string denoting the view field in the database.
	FieldView = "view"
	// FieldQueryID holds the string denoting the query_id field in the database.
	FieldQueryID = "query_id"
	// FieldLinkedSessionID holds the string denoting the linked_session_id field in the database.
	FieldLinkedSessionID = "linked_session_id"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldReview holds the string denoting the review field in the database.
	FieldReview = "review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the request in the database.
	Table = "requests"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "requests"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for request fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSequenceNumber,
	FieldUser,
	FieldRequest,
	FieldRequestType,
	FieldStatus,
	FieldFlow,
	FieldModel,
	FieldDb,
	FieldErr,
	FieldResponse,
	FieldIntent,
	FieldAssumptions,
	FieldIntro,
	FieldOutro,
	FieldSQL,
	FieldRawDataLabels,
	FieldRawData,
	FieldCsv,
	FieldChart,
	FieldChartURL,
	FieldRefs,
	FieldView,
	FieldQueryID,
	FieldLinkedSessionID,
	FieldRating,
	FieldReview,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRequestType holds the default value on creation for the "request_type" field.
	DefaultRequestType string
	// DefaultFlow holds the default value on creation for the "flow" field.
	DefaultFlow string
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
	// DefaultDb holds the default value on creation for the "db" field.
	DefaultDb string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusIntent     Status = "intent"
	StatusSQL        Status = "sql"
	StatusDataFetch  Status = "data_fetch"
	StatusRetry      Status = "retry"
	StatusFinalizing Status = "finalizing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
	StatusCancelled  Status = "cancelled"
	StatusScheduled  Status = "scheduled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusInProgress, StatusIntent, StatusSQL, StatusDataFetch, StatusRetry, StatusFinalizing, StatusDone, StatusError, StatusCancelled, StatusScheduled:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Request queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByUser orders the results by the user field.
func ByUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUser, opts...).ToFunc()
}

// ByRequest orders the results by the request field.
func ByRequest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequest, opts...).ToFunc()
}

// ByRequestType orders the results by the request_type field.
func ByRequestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFlow orders the results by the flow field.
func ByFlow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlow, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByDb orders the results by the db field.
func ByDb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDb, opts...).ToFunc()
}

// ByErr orders the results by the err field.
func ByErr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErr, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByAssumptions orders the results by the assumptions field.
func ByAssumptions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssumptions, opts...).ToFunc()
}

// ByIntro orders the results by the intro field.
func ByIntro(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntro, opts...).ToFunc()
}

// ByOutro orders the results by the outro field.
func ByOutro(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutro, opts...).ToFunc()
}

// BySQL orders the results by the sql field.
func BySQL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSQL, opts...).ToFunc()
}

// ByCsv orders the results by the csv field.
func ByCsv(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCsv, opts...).ToFunc()
}

// ByChart orders the results by the chart field.
func ByChart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChart, opts...).ToFunc()
}

// ByChartURL orders the results by the chart_url field.
func ByChartURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartURL, opts...).ToFunc()
}

// ByQueryID orders the results by the query_id field.
func ByQueryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryID, opts...).ToFunc()
}

// ByLinkedSessionID orders the results by the linked_session_id field.
func ByLinkedSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedSessionID, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByReview orders the results by the review field.
func ByReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}

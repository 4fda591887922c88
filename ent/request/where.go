// Code generated by ent, DO NOT EDIT.

package request

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/apegpt/queryflow/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSessionID, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSequenceNumber, v))
}

// User applies equality check predicate on the "user" field. It's identical to UserEQ.
func User(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUser, v))
}

// Request applies equality check predicate on the "request" field. It's identical to RequestEQ.
func Request(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequest, v))
}

// RequestType applies equality check predicate on the "request_type" field. It's identical to RequestTypeEQ.
func RequestType(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequestType, v))
}

// Flow applies equality check predicate on the "flow" field. It's identical to FlowEQ.
func Flow(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldFlow, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldModel, v))
}

// Db applies equality check predicate on the "db" field. It's identical to DbEQ.
func Db(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDb, v))
}

// Err applies equality check predicate on the "err" field. It's identical to ErrEQ.
func Err(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldErr, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldResponse, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIntent, v))
}

// Assumptions applies equality check predicate on the "assumptions" field. It's identical to AssumptionsEQ.
func Assumptions(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAssumptions, v))
}

// Intro applies equality check predicate on the "intro" field. It's identical to IntroEQ.
func Intro(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIntro, v))
}

// Outro applies equality check predicate on the "outro" field. It's identical to OutroEQ.
func Outro(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOutro, v))
}

// SQL applies equality check predicate on the "sql" field. It's identical to SQLEQ.
func SQL(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSQL, v))
}

// Csv applies equality check predicate on the "csv" field. It's identical to CsvEQ.
func Csv(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCsv, v))
}

// Chart applies equality check predicate on the "chart" field. It's identical to ChartEQ.
func Chart(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChart, v))
}

// ChartURL applies equality check predicate on the "chart_url" field. It's identical to ChartURLEQ.
func ChartURL(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChartURL, v))
}

// QueryID applies equality check predicate on the "query_id" field. It's identical to QueryIDEQ.
func QueryID(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldQueryID, v))
}

// LinkedSessionID applies equality check predicate on the "linked_session_id" field. It's identical to LinkedSessionIDEQ.
func LinkedSessionID(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLinkedSessionID, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRating, v))
}

// Review applies equality check predicate on the "review" field. It's identical to ReviewEQ.
func Review(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldSessionID, vs...))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldSequenceNumber, v))
}

// UserEQ applies the EQ predicate on the "user" field.
func UserEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUser, v))
}

// UserNEQ applies the NEQ predicate on the "user" field.
func UserNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldUser, v))
}

// UserIn applies the In predicate on the "user" field.
func UserIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldUser, vs...))
}

// UserNotIn applies the NotIn predicate on the "user" field.
func UserNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldUser, vs...))
}

// UserGT applies the GT predicate on the "user" field.
func UserGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldUser, v))
}

// UserGTE applies the GTE predicate on the "user" field.
func UserGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldUser, v))
}

// UserLT applies the LT predicate on the "user" field.
func UserLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldUser, v))
}

// UserLTE applies the LTE predicate on the "user" field.
func UserLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldUser, v))
}

// UserContains applies the Contains predicate on the "user" field.
func UserContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldUser, v))
}

// UserHasPrefix applies the HasPrefix predicate on the "user" field.
func UserHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldUser, v))
}

// UserHasSuffix applies the HasSuffix predicate on the "user" field.
func UserHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldUser, v))
}

// UserEqualFold applies the EqualFold predicate on the "user" field.
func UserEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldUser, v))
}

// UserContainsFold applies the ContainsFold predicate on the "user" field.
func UserContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldUser, v))
}

// RequestEQ applies the EQ predicate on the "request" field.
func RequestEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequest, v))
}

// RequestNEQ applies the NEQ predicate on the "request" field.
func RequestNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRequest, v))
}

// RequestIn applies the In predicate on the "request" field.
func RequestIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRequest, vs...))
}

// RequestNotIn applies the NotIn predicate on the "request" field.
func RequestNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRequest, vs...))
}

// RequestGT applies the GT predicate on the "request" field.
func RequestGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldRequest, v))
}

// RequestGTE applies the GTE predicate on the "request" field.
func RequestGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldRequest, v))
}

// RequestLT applies the LT predicate on the "request" field.
func RequestLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldRequest, v))
}

// RequestLTE applies the LTE predicate on the "request" field.
func RequestLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldRequest, v))
}

// RequestContains applies the Contains predicate on the "request" field.
func RequestContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldRequest, v))
}

// RequestHasPrefix applies the HasPrefix predicate on the "request" field.
func RequestHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldRequest, v))
}

// RequestHasSuffix applies the HasSuffix predicate on the "request" field.
func RequestHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldRequest, v))
}

// RequestEqualFold applies the EqualFold predicate on the "request" field.
func RequestEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldRequest, v))
}

// RequestContainsFold applies the ContainsFold predicate on the "request" field.
func RequestContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldRequest, v))
}

// RequestTypeEQ applies the EQ predicate on the "request_type" field.
func RequestTypeEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequestType, v))
}

// RequestTypeNEQ applies the NEQ predicate on the "request_type" field.
func RequestTypeNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRequestType, v))
}

// RequestTypeIn applies the In predicate on the "request_type" field.
func RequestTypeIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRequestType, vs...))
}

// RequestTypeNotIn applies the NotIn predicate on the "request_type" field.
func RequestTypeNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRequestType, vs...))
}

// RequestTypeGT applies the GT predicate on the "request_type" field.
func RequestTypeGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldRequestType, v))
}

// RequestTypeGTE applies the GTE predicate on the "request_type" field.
func RequestTypeGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldRequestType, v))
}

// RequestTypeLT applies the LT predicate on the "request_type" field.
func RequestTypeLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldRequestType, v))
}

// RequestTypeLTE applies the LTE predicate on the "request_type" field.
func RequestTypeLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldRequestType, v))
}

// RequestTypeContains applies the Contains predicate on the "request_type" field.
func RequestTypeContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldRequestType, v))
}

// RequestTypeHasPrefix applies the HasPrefix predicate on the "request_type" field.
func RequestTypeHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldRequestType, v))
}

// RequestTypeHasSuffix applies the HasSuffix predicate on the "request_type" field.
func RequestTypeHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldRequestType, v))
}

// RequestTypeEqualFold applies the EqualFold predicate on the "request_type" field.
func RequestTypeEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldRequestType, v))
}

// RequestTypeContainsFold applies the ContainsFold predicate on the "request_type" field.
func RequestTypeContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldRequestType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldStatus, vs...))
}

// FlowEQ applies the EQ predicate on the "flow" field.
func FlowEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldFlow, v))
}

// FlowNEQ applies the NEQ predicate on the "flow" field.
func FlowNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldFlow, v))
}

// FlowIn applies the In predicate on the "flow" field.
func FlowIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldFlow, vs...))
}

// FlowNotIn applies the NotIn predicate on the "flow" field.
func FlowNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldFlow, vs...))
}

// FlowGT applies the GT predicate on the "flow" field.
func FlowGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldFlow, v))
}

// FlowGTE applies the GTE predicate on the "flow" field.
func FlowGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldFlow, v))
}

// FlowLT applies the LT predicate on the "flow" field.
func FlowLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldFlow, v))
}

// FlowLTE applies the LTE predicate on the "flow" field.
func FlowLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldFlow, v))
}

// FlowContains applies the Contains predicate on the "flow" field.
func FlowContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldFlow, v))
}

// FlowHasPrefix applies the HasPrefix predicate on the "flow" field.
func FlowHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldFlow, v))
}

// FlowHasSuffix applies the HasSuffix predicate on the "flow" field.
func FlowHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldFlow, v))
}

// FlowEqualFold applies the EqualFold predicate on the "flow" field.
func FlowEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldFlow, v))
}

// FlowContainsFold applies the ContainsFold predicate on the "flow" field.
func FlowContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldFlow, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldModel, v))
}

// DbEQ applies the EQ predicate on the "db" field.
func DbEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDb, v))
}

// DbNEQ applies the NEQ predicate on the "db" field.
func DbNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDb, v))
}

// DbIn applies the In predicate on the "db" field.
func DbIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDb, vs...))
}

// DbNotIn applies the NotIn predicate on the "db" field.
func DbNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDb, vs...))
}

// DbGT applies the GT predicate on the "db" field.
func DbGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDb, v))
}

// DbGTE applies the GTE predicate on the "db" field.
func DbGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDb, v))
}

// DbLT applies the LT predicate on the "db" field.
func DbLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDb, v))
}

// DbLTE applies the LTE predicate on the "db" field.
func DbLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDb, v))
}

// DbContains applies the Contains predicate on the "db" field.
func DbContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldDb, v))
}

// DbHasPrefix applies the HasPrefix predicate on the "db" field.
func DbHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldDb, v))
}

// DbHasSuffix applies the HasSuffix predicate on the "db" field.
func DbHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldDb, v))
}

// DbEqualFold applies the EqualFold predicate on the "db" field.
func DbEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldDb, v))
}

// DbContainsFold applies the ContainsFold predicate on the "db" field.
func DbContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldDb, v))
}

// ErrEQ applies the EQ predicate on the "err" field.
func ErrEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldErr, v))
}

// ErrNEQ applies the NEQ predicate on the "err" field.
func ErrNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldErr, v))
}

// ErrIn applies the In predicate on the "err" field.
func ErrIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldErr, vs...))
}

// ErrNotIn applies the NotIn predicate on the "err" field.
func ErrNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldErr, vs...))
}

// ErrGT applies the GT predicate on the "err" field.
func ErrGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldErr, v))
}

// ErrGTE applies the GTE predicate on the "err" field.
func ErrGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldErr, v))
}

// ErrLT applies the LT predicate on the "err" field.
func ErrLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldErr, v))
}

// ErrLTE applies the LTE predicate on the "err" field.
func ErrLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldErr, v))
}

// ErrContains applies the Contains predicate on the "err" field.
func ErrContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldErr, v))
}

// ErrHasPrefix applies the HasPrefix predicate on the "err" field.
func ErrHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldErr, v))
}

// ErrHasSuffix applies the HasSuffix predicate on the "err" field.
func ErrHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldErr, v))
}

// ErrIsNil applies the IsNil predicate on the "err" field.
func ErrIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldErr))
}

// ErrNotNil applies the NotNil predicate on the "err" field.
func ErrNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldErr))
}

// ErrEqualFold applies the EqualFold predicate on the "err" field.
func ErrEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldErr, v))
}

// ErrContainsFold applies the ContainsFold predicate on the "err" field.
func ErrContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldErr, v))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldResponse))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldResponse, v))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentIsNil applies the IsNil predicate on the "intent" field.
func IntentIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldIntent))
}

// IntentNotNil applies the NotNil predicate on the "intent" field.
func IntentNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldIntent))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldIntent, v))
}

// AssumptionsEQ applies the EQ predicate on the "assumptions" field.
func AssumptionsEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAssumptions, v))
}

// AssumptionsNEQ applies the NEQ predicate on the "assumptions" field.
func AssumptionsNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldAssumptions, v))
}

// AssumptionsIn applies the In predicate on the "assumptions" field.
func AssumptionsIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldAssumptions, vs...))
}

// AssumptionsNotIn applies the NotIn predicate on the "assumptions" field.
func AssumptionsNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldAssumptions, vs...))
}

// AssumptionsGT applies the GT predicate on the "assumptions" field.
func AssumptionsGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldAssumptions, v))
}

// AssumptionsGTE applies the GTE predicate on the "assumptions" field.
func AssumptionsGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldAssumptions, v))
}

// AssumptionsLT applies the LT predicate on the "assumptions" field.
func AssumptionsLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldAssumptions, v))
}

// AssumptionsLTE applies the LTE predicate on the "assumptions" field.
func AssumptionsLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldAssumptions, v))
}

// AssumptionsContains applies the Contains predicate on the "assumptions" field.
func AssumptionsContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldAssumptions, v))
}

// AssumptionsHasPrefix applies the HasPrefix predicate on the "assumptions" field.
func AssumptionsHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldAssumptions, v))
}

// AssumptionsHasSuffix applies the HasSuffix predicate on the "assumptions" field.
func AssumptionsHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldAssumptions, v))
}

// AssumptionsIsNil applies the IsNil predicate on the "assumptions" field.
func AssumptionsIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldAssumptions))
}

// AssumptionsNotNil applies the NotNil predicate on the "assumptions" field.
func AssumptionsNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldAssumptions))
}

// AssumptionsEqualFold applies the EqualFold predicate on the "assumptions" field.
func AssumptionsEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldAssumptions, v))
}

// AssumptionsContainsFold applies the ContainsFold predicate on the "assumptions" field.
func AssumptionsContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldAssumptions, v))
}

// IntroEQ applies the EQ predicate on the "intro" field.
func IntroEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIntro, v))
}

// IntroNEQ applies the NEQ predicate on the "intro" field.
func IntroNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldIntro, v))
}

// IntroIn applies the In predicate on the "intro" field.
func IntroIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldIntro, vs...))
}

// IntroNotIn applies the NotIn predicate on the "intro" field.
func IntroNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldIntro, vs...))
}

// IntroGT applies the GT predicate on the "intro" field.
func IntroGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldIntro, v))
}

// IntroGTE applies the GTE predicate on the "intro" field.
func IntroGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldIntro, v))
}

// IntroLT applies the LT predicate on the "intro" field.
func IntroLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldIntro, v))
}

// IntroLTE applies the LTE predicate on the "intro" field.
func IntroLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldIntro, v))
}

// IntroContains applies the Contains predicate on the "intro" field.
func IntroContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldIntro, v))
}

// IntroHasPrefix applies the HasPrefix predicate on the "intro" field.
func IntroHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldIntro, v))
}

// IntroHasSuffix applies the HasSuffix predicate on the "intro" field.
func IntroHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldIntro, v))
}

// IntroIsNil applies the IsNil predicate on the "intro" field.
func IntroIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldIntro))
}

// IntroNotNil applies the NotNil predicate on the "intro" field.
func IntroNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldIntro))
}

// IntroEqualFold applies the EqualFold predicate on the "intro" field.
func IntroEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldIntro, v))
}

// IntroContainsFold applies the ContainsFold predicate on the "intro" field.
func IntroContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldIntro, v))
}

// OutroEQ applies the EQ predicate on the "outro" field.
func OutroEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOutro, v))
}

// OutroNEQ applies the NEQ predicate on the "outro" field.
func OutroNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldOutro, v))
}

// OutroIn applies the In predicate on the "outro" field.
func OutroIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldOutro, vs...))
}

// OutroNotIn applies the NotIn predicate on the "outro" field.
func OutroNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldOutro, vs...))
}

// OutroGT applies the GT predicate on the "outro" field.
func OutroGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldOutro, v))
}

// OutroGTE applies the GTE predicate on the "outro" field.
func OutroGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldOutro, v))
}

// OutroLT applies the LT predicate on the "outro" field.
func OutroLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldOutro, v))
}

// OutroLTE applies the LTE predicate on the "outro" field.
func OutroLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldOutro, v))
}

// OutroContains applies the Contains predicate on the "outro" field.
func OutroContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldOutro, v))
}

// OutroHasPrefix applies the HasPrefix predicate on the "outro" field.
func OutroHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldOutro, v))
}

// OutroHasSuffix applies the HasSuffix predicate on the "outro" field.
func OutroHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldOutro, v))
}

// OutroIsNil applies the IsNil predicate on the "outro" field.
func OutroIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldOutro))
}

// OutroNotNil applies the NotNil predicate on the "outro" field.
func OutroNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldOutro))
}

// OutroEqualFold applies the EqualFold predicate on the "outro" field.
func OutroEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldOutro, v))
}

// OutroContainsFold applies the ContainsFold predicate on the "outro" field.
func OutroContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldOutro, v))
}

// SQLEQ applies the EQ predicate on the "sql" field.
func SQLEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSQL, v))
}

// SQLNEQ applies the NEQ predicate on the "sql" field.
func SQLNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldSQL, v))
}

// SQLIn applies the In predicate on the "sql" field.
func SQLIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldSQL, vs...))
}

// SQLNotIn applies the NotIn predicate on the "sql" field.
func SQLNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldSQL, vs...))
}

// SQLGT applies the GT predicate on the "sql" field.
func SQLGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldSQL, v))
}

// SQLGTE applies the GTE predicate on the "sql" field.
func SQLGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldSQL, v))
}

// SQLLT applies the LT predicate on the "sql" field.
func SQLLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldSQL, v))
}

// SQLLTE applies the LTE predicate on the "sql" field.
func SQLLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldSQL, v))
}

// SQLContains applies the Contains predicate on the "sql" field.
func SQLContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldSQL, v))
}

// SQLHasPrefix applies the HasPrefix predicate on the "sql" field.
func SQLHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldSQL, v))
}

// SQLHasSuffix applies the HasSuffix predicate on the "sql" field.
func SQLHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldSQL, v))
}

// SQLIsNil applies the IsNil predicate on the "sql" field.
func SQLIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldSQL))
}

// SQLNotNil applies the NotNil predicate on the "sql" field.
func SQLNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldSQL))
}

// SQLEqualFold applies the EqualFold predicate on the "sql" field.
func SQLEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldSQL, v))
}

// SQLContainsFold applies the ContainsFold predicate on the "sql" field.
func SQLContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldSQL, v))
}

// RawDataLabelsIsNil applies the IsNil predicate on the "raw_data_labels" field.
func RawDataLabelsIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldRawDataLabels))
}

// RawDataLabelsNotNil applies the NotNil predicate on the "raw_data_labels" field.
func RawDataLabelsNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldRawDataLabels))
}

// RawDataIsNil applies the IsNil predicate on the "raw_data" field.
func RawDataIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldRawData))
}

// RawDataNotNil applies the NotNil predicate on the "raw_data" field.
func RawDataNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldRawData))
}

// CsvEQ applies the EQ predicate on the "csv" field.
func CsvEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCsv, v))
}

// CsvNEQ applies the NEQ predicate on the "csv" field.
func CsvNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCsv, v))
}

// CsvIn applies the In predicate on the "csv" field.
func CsvIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCsv, vs...))
}

// CsvNotIn applies the NotIn predicate on the "csv" field.
func CsvNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCsv, vs...))
}

// CsvGT applies the GT predicate on the "csv" field.
func CsvGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCsv, v))
}

// CsvGTE applies the GTE predicate on the "csv" field.
func CsvGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCsv, v))
}

// CsvLT applies the LT predicate on the "csv" field.
func CsvLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCsv, v))
}

// CsvLTE applies the LTE predicate on the "csv" field.
func CsvLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCsv, v))
}

// CsvContains applies the Contains predicate on the "csv" field.
func CsvContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldCsv, v))
}

// CsvHasPrefix applies the HasPrefix predicate on the "csv" field.
func CsvHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldCsv, v))
}

// CsvHasSuffix applies the HasSuffix predicate on the "csv" field.
func CsvHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldCsv, v))
}

// CsvIsNil applies the IsNil predicate on the "csv" field.
func CsvIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldCsv))
}

// CsvNotNil applies the NotNil predicate on the "csv" field.
func CsvNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldCsv))
}

// CsvEqualFold applies the EqualFold predicate on the "csv" field.
func CsvEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldCsv, v))
}

// CsvContainsFold applies the ContainsFold predicate on the "csv" field.
func CsvContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldCsv, v))
}

// ChartEQ applies the EQ predicate on the "chart" field.
func ChartEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChart, v))
}

// ChartNEQ applies the NEQ predicate on the "chart" field.
func ChartNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldChart, v))
}

// ChartIn applies the In predicate on the "chart" field.
func ChartIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldChart, vs...))
}

// ChartNotIn applies the NotIn predicate on the "chart" field.
func ChartNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldChart, vs...))
}

// ChartGT applies the GT predicate on the "chart" field.
func ChartGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldChart, v))
}

// ChartGTE applies the GTE predicate on the "chart" field.
func ChartGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldChart, v))
}

// ChartLT applies the LT predicate on the "chart" field.
func ChartLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldChart, v))
}

// ChartLTE applies the LTE predicate on the "chart" field.
func ChartLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldChart, v))
}

// ChartContains applies the Contains predicate on the "chart" field.
func ChartContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldChart, v))
}

// ChartHasPrefix applies the HasPrefix predicate on the "chart" field.
func ChartHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldChart, v))
}

// ChartHasSuffix applies the HasSuffix predicate on the "chart" field.
func ChartHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldChart, v))
}

// ChartIsNil applies the IsNil predicate on the "chart" field.
func ChartIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldChart))
}

// ChartNotNil applies the NotNil predicate on the "chart" field.
func ChartNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldChart))
}

// ChartEqualFold applies the EqualFold predicate on the "chart" field.
func ChartEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldChart, v))
}

// ChartContainsFold applies the ContainsFold predicate on the "chart" field.
func ChartContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldChart, v))
}

// ChartURLEQ applies the EQ predicate on the "chart_url" field.
func ChartURLEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChartURL, v))
}

// ChartURLNEQ applies the NEQ predicate on the "chart_url" field.
func ChartURLNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldChartURL, v))
}

// ChartURLIn applies the In predicate on the "chart_url" field.
func ChartURLIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldChartURL, vs...))
}

// ChartURLNotIn applies the NotIn predicate on the "chart_url" field.
func ChartURLNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldChartURL, vs...))
}

// ChartURLGT applies the GT predicate on the "chart_url" field.
func ChartURLGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldChartURL, v))
}

// ChartURLGTE applies the GTE predicate on the "chart_url" field.
func ChartURLGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldChartURL, v))
}

// ChartURLLT applies the LT predicate on the "chart_url" field.
func ChartURLLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldChartURL, v))
}

// ChartURLLTE applies the LTE predicate on the "chart_url" field.
func ChartURLLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldChartURL, v))
}

// ChartURLContains applies the Contains predicate on the "chart_url" field.
func ChartURLContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldChartURL, v))
}

// ChartURLHasPrefix applies the HasPrefix predicate on the "chart_url" field.
func ChartURLHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldChartURL, v))
}

// ChartURLHasSuffix applies the HasSuffix predicate on the "chart_url" field.
func ChartURLHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldChartURL, v))
}

// ChartURLIsNil applies the IsNil predicate on the "chart_url" field.
func ChartURLIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldChartURL))
}

// ChartURLNotNil applies the NotNil predicate on the "chart_url" field.
func ChartURLNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldChartURL))
}

// ChartURLEqualFold applies the EqualFold predicate on the "chart_url" field.
func ChartURLEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldChartURL, v))
}

// ChartURLContainsFold applies the ContainsFold predicate on the "chart_url" field.
func ChartURLContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldChartURL, v))
}

// RefsIsNil applies the IsNil predicate on the "refs" field.
func RefsIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldRefs))
}

// RefsNotNil applies the NotNil predicate on the "refs" field.
func RefsNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldRefs))
}

// ViewIsNil applies the IsNil predicate on the "view" field.
func ViewIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldView))
}

// ViewNotNil applies the NotNil predicate on the "view" field.
func ViewNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldView))
}

// QueryIDEQ applies the EQ predicate on the "query_id" field.
func QueryIDEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldQueryID, v))
}

// QueryIDNEQ applies the NEQ predicate on the "query_id" field.
func QueryIDNEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldQueryID, v))
}

// QueryIDIn applies the In predicate on the "query_id" field.
func QueryIDIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldQueryID, vs...))
}

// QueryIDNotIn applies the NotIn predicate on the "query_id" field.
func QueryIDNotIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldQueryID, vs...))
}

// QueryIDGT applies the GT predicate on the "query_id" field.
func QueryIDGT(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldQueryID, v))
}

// QueryIDGTE applies the GTE predicate on the "query_id" field.
func QueryIDGTE(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldQueryID, v))
}

// QueryIDLT applies the LT predicate on the "query_id" field.
func QueryIDLT(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldQueryID, v))
}

// QueryIDLTE applies the LTE predicate on the "query_id" field.
func QueryIDLTE(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldQueryID, v))
}

// QueryIDIsNil applies the IsNil predicate on the "query_id" field.
func QueryIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldQueryID))
}

// QueryIDNotNil applies the NotNil predicate on the "query_id" field.
func QueryIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldQueryID))
}

// LinkedSessionIDEQ applies the EQ predicate on the "linked_session_id" field.
func LinkedSessionIDEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLinkedSessionID, v))
}

// LinkedSessionIDNEQ applies the NEQ predicate on the "linked_session_id" field.
func LinkedSessionIDNEQ(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldLinkedSessionID, v))
}

// LinkedSessionIDIn applies the In predicate on the "linked_session_id" field.
func LinkedSessionIDIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldLinkedSessionID, vs...))
}

// LinkedSessionIDNotIn applies the NotIn predicate on the "linked_session_id" field.
func LinkedSessionIDNotIn(vs ...uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldLinkedSessionID, vs...))
}

// LinkedSessionIDGT applies the GT predicate on the "linked_session_id" field.
func LinkedSessionIDGT(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldLinkedSessionID, v))
}

// LinkedSessionIDGTE applies the GTE predicate on the "linked_session_id" field.
func LinkedSessionIDGTE(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldLinkedSessionID, v))
}

// LinkedSessionIDLT applies the LT predicate on the "linked_session_id" field.
func LinkedSessionIDLT(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldLinkedSessionID, v))
}

// LinkedSessionIDLTE applies the LTE predicate on the "linked_session_id" field.
func LinkedSessionIDLTE(v uuid.UUID) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldLinkedSessionID, v))
}

// LinkedSessionIDIsNil applies the IsNil predicate on the "linked_session_id" field.
func LinkedSessionIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldLinkedSessionID))
}

// LinkedSessionIDNotNil applies the NotNil predicate on the "linked_session_id" field.
func LinkedSessionIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldLinkedSessionID))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldRating, v))
}

// RatingIsNil applies the IsNil predicate on the "rating" field.
func RatingIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldRating))
}

// RatingNotNil applies the NotNil predicate on the "rating" field.
func RatingNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldRating))
}

// ReviewEQ applies the EQ predicate on the "review" field.
func ReviewEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldReview, v))
}

// ReviewNEQ applies the NEQ predicate on the "review" field.
func ReviewNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldReview, v))
}

// ReviewIn applies the In predicate on the "review" field.
func ReviewIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldReview, vs...))
}

// ReviewNotIn applies the NotIn predicate on the "review" field.
func ReviewNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldReview, vs...))
}

// ReviewGT applies the GT predicate on the "review" field.
func ReviewGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldReview, v))
}

// ReviewGTE applies the GTE predicate on the "review" field.
func ReviewGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldReview, v))
}

// ReviewLT applies the LT predicate on the "review" field.
func ReviewLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldReview, v))
}

// ReviewLTE applies the LTE predicate on the "review" field.
func ReviewLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldReview, v))
}

// ReviewContains applies the Contains predicate on the "review" field.
func ReviewContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldReview, v))
}

// ReviewHasPrefix applies the HasPrefix predicate on the "review" field.
func ReviewHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldReview, v))
}

// ReviewHasSuffix applies the HasSuffix predicate on the "review" field.
func ReviewHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldReview, v))
}

// ReviewIsNil applies the IsNil predicate on the "review" field.
func ReviewIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldReview))
}

// ReviewNotNil applies the NotNil predicate on the "review" field.
func ReviewNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldReview))
}

// ReviewEqualFold applies the EqualFold predicate on the "review" field.
func ReviewEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldReview, v))
}

// ReviewContainsFold applies the ContainsFold predicate on the "review" field.
func ReviewContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Request) predicate.Request {
	return predicate.Request(sql.NotPredicates(p))
}

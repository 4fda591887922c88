// Code generated by ent, DO NOT EDIT.

package queryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/apegpt/queryflow/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldSessionID, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldRequestID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldParentID, v))
}

// User applies equality check predicate on the "user" field. It's identical to UserEQ.
func User(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldUser, v))
}

// Request applies equality check predicate on the "request" field. It's identical to RequestEQ.
func Request(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldRequest, v))
}

// SQL applies equality check predicate on the "sql" field. It's identical to SQLEQ.
func SQL(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldSQL, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldSummary, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldDescription, v))
}

// RowCount applies equality check predicate on the "row_count" field. It's identical to RowCountEQ.
func RowCount(v int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldRowCount, v))
}

// Tags applies equality check predicate on the "tags" field. It's identical to TagsEQ.
func Tags(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldTags, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldRequestID, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v uuid.UUID) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldParentID))
}

// UserEQ applies the EQ predicate on the "user" field.
func UserEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldUser, v))
}

// UserNEQ applies the NEQ predicate on the "user" field.
func UserNEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldUser, v))
}

// UserIn applies the In predicate on the "user" field.
func UserIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldUser, vs...))
}

// UserNotIn applies the NotIn predicate on the "user" field.
func UserNotIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldUser, vs...))
}

// UserGT applies the GT predicate on the "user" field.
func UserGT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldUser, v))
}

// UserGTE applies the GTE predicate on the "user" field.
func UserGTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldUser, v))
}

// UserLT applies the LT predicate on the "user" field.
func UserLT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldUser, v))
}

// UserLTE applies the LTE predicate on the "user" field.
func UserLTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldUser, v))
}

// UserContains applies the Contains predicate on the "user" field.
func UserContains(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContains(FieldUser, v))
}

// UserHasPrefix applies the HasPrefix predicate on the "user" field.
func UserHasPrefix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasPrefix(FieldUser, v))
}

// UserHasSuffix applies the HasSuffix predicate on the "user" field.
func UserHasSuffix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasSuffix(FieldUser, v))
}

// UserEqualFold applies the EqualFold predicate on the "user" field.
func UserEqualFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEqualFold(FieldUser, v))
}

// UserContainsFold applies the ContainsFold predicate on the "user" field.
func UserContainsFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContainsFold(FieldUser, v))
}

// RequestEQ applies the EQ predicate on the "request" field.
func RequestEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldRequest, v))
}

// RequestNEQ applies the NEQ predicate on the "request" field.
func RequestNEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldRequest, v))
}

// RequestIn applies the In predicate on the "request" field.
func RequestIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldRequest, vs...))
}

// RequestNotIn applies the NotIn predicate on the "request" field.
func RequestNotIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldRequest, vs...))
}

// RequestGT applies the GT predicate on the "request" field.
func RequestGT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldRequest, v))
}

// RequestGTE applies the GTE predicate on the "request" field.
func RequestGTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldRequest, v))
}

// RequestLT applies the LT predicate on the "request" field.
func RequestLT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldRequest, v))
}

// RequestLTE applies the LTE predicate on the "request" field.
func RequestLTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldRequest, v))
}

// RequestContains applies the Contains predicate on the "request" field.
func RequestContains(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContains(FieldRequest, v))
}

// RequestHasPrefix applies the HasPrefix predicate on the "request" field.
func RequestHasPrefix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasPrefix(FieldRequest, v))
}

// RequestHasSuffix applies the HasSuffix predicate on the "request" field.
func RequestHasSuffix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasSuffix(FieldRequest, v))
}

// RequestEqualFold applies the EqualFold predicate on the "request" field.
func RequestEqualFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEqualFold(FieldRequest, v))
}

// RequestContainsFold applies the ContainsFold predicate on the "request" field.
func RequestContainsFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContainsFold(FieldRequest, v))
}

// SQLEQ applies the EQ predicate on the "sql" field.
func SQLEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldSQL, v))
}

// SQLNEQ applies the NEQ predicate on the "sql" field.
func SQLNEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldSQL, v))
}

// SQLIn applies the In predicate on the "sql" field.
func SQLIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldSQL, vs...))
}

// SQLNotIn applies the NotIn predicate on the "sql" field.
func SQLNotIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldSQL, vs...))
}

// SQLGT applies the GT predicate on the "sql" field.
func SQLGT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldSQL, v))
}

// SQLGTE applies the GTE predicate on the "sql" field.
func SQLGTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldSQL, v))
}

// SQLLT applies the LT predicate on the "sql" field.
func SQLLT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldSQL, v))
}

// SQLLTE applies the LTE predicate on the "sql" field.
func SQLLTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldSQL, v))
}

// SQLContains applies the Contains predicate on the "sql" field.
func SQLContains(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContains(FieldSQL, v))
}

// SQLHasPrefix applies the HasPrefix predicate on the "sql" field.
func SQLHasPrefix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasPrefix(FieldSQL, v))
}

// SQLHasSuffix applies the HasSuffix predicate on the "sql" field.
func SQLHasSuffix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasSuffix(FieldSQL, v))
}

// SQLEqualFold applies the EqualFold predicate on the "sql" field.
func SQLEqualFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEqualFold(FieldSQL, v))
}

// SQLContainsFold applies the ContainsFold predicate on the "sql" field.
func SQLContainsFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContainsFold(FieldSQL, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContainsFold(FieldSummary, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContainsFold(FieldDescription, v))
}

// ColumnsIsNil applies the IsNil predicate on the "columns" field.
func ColumnsIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldColumns))
}

// ColumnsNotNil applies the NotNil predicate on the "columns" field.
func ColumnsNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldColumns))
}

// RowCountEQ applies the EQ predicate on the "row_count" field.
func RowCountEQ(v int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldRowCount, v))
}

// RowCountNEQ applies the NEQ predicate on the "row_count" field.
func RowCountNEQ(v int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldRowCount, v))
}

// RowCountIn applies the In predicate on the "row_count" field.
func RowCountIn(vs ...int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldRowCount, vs...))
}

// RowCountNotIn applies the NotIn predicate on the "row_count" field.
func RowCountNotIn(vs ...int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldRowCount, vs...))
}

// RowCountGT applies the GT predicate on the "row_count" field.
func RowCountGT(v int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldRowCount, v))
}

// RowCountGTE applies the GTE predicate on the "row_count" field.
func RowCountGTE(v int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldRowCount, v))
}

// RowCountLT applies the LT predicate on the "row_count" field.
func RowCountLT(v int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldRowCount, v))
}

// RowCountLTE applies the LTE predicate on the "row_count" field.
func RowCountLTE(v int64) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldRowCount, v))
}

// RowCountIsNil applies the IsNil predicate on the "row_count" field.
func RowCountIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldRowCount))
}

// RowCountNotNil applies the NotNil predicate on the "row_count" field.
func RowCountNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldRowCount))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldExplanation))
}

// ParentsIsNil applies the IsNil predicate on the "parents" field.
func ParentsIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldParents))
}

// ParentsNotNil applies the NotNil predicate on the "parents" field.
func ParentsNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldParents))
}

// TagsEQ applies the EQ predicate on the "tags" field.
func TagsEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldTags, v))
}

// TagsNEQ applies the NEQ predicate on the "tags" field.
func TagsNEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldTags, v))
}

// TagsIn applies the In predicate on the "tags" field.
func TagsIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldTags, vs...))
}

// TagsNotIn applies the NotIn predicate on the "tags" field.
func TagsNotIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldTags, vs...))
}

// TagsGT applies the GT predicate on the "tags" field.
func TagsGT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldTags, v))
}

// TagsGTE applies the GTE predicate on the "tags" field.
func TagsGTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldTags, v))
}

// TagsLT applies the LT predicate on the "tags" field.
func TagsLT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldTags, v))
}

// TagsLTE applies the LTE predicate on the "tags" field.
func TagsLTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldTags, v))
}

// TagsContains applies the Contains predicate on the "tags" field.
func TagsContains(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContains(FieldTags, v))
}

// TagsHasPrefix applies the HasPrefix predicate on the "tags" field.
func TagsHasPrefix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasPrefix(FieldTags, v))
}

// TagsHasSuffix applies the HasSuffix predicate on the "tags" field.
func TagsHasSuffix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasSuffix(FieldTags, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldTags))
}

// TagsEqualFold applies the EqualFold predicate on the "tags" field.
func TagsEqualFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEqualFold(FieldTags, v))
}

// TagsContainsFold applies the ContainsFold predicate on the "tags" field.
func TagsContainsFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContainsFold(FieldTags, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionIsNil applies the IsNil predicate on the "version" field.
func VersionIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldVersion))
}

// VersionNotNil applies the NotNil predicate on the "version" field.
func VersionNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldVersion))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldContainsFold(FieldVersion, v))
}

// ViewIsNil applies the IsNil predicate on the "view" field.
func ViewIsNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIsNull(FieldView))
}

// ViewNotNil applies the NotNil predicate on the "view" field.
func ViewNotNil() predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotNull(FieldView))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QueryRecord {
	return predicate.QueryRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.QueryRecord {
	return predicate.QueryRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.QueryRecord {
	return predicate.QueryRecord(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueryRecord) predicate.QueryRecord {
	return predicate.QueryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueryRecord) predicate.QueryRecord {
	return predicate.QueryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueryRecord) predicate.QueryRecord {
	return predicate.QueryRecord(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apegpt/queryflow/ent/predicate"
	"github.com/apegpt/queryflow/ent/queryrecord"
	"github.com/apegpt/queryflow/ent/request"
	"github.com/apegpt/queryflow/ent/session"
	"github.com/apegpt/queryflow/ent/task"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQueryRecord = "QueryRecord"
	TypeRequest     = "Request"
	TypeSession     = "Session"
	TypeTask        = "Task"
)

// QueryRecordMutation represents an operation that mutates the QueryRecord nodes in the graph.
type QueryRecordMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	request_id     *uuid.UUID
	parent_id      *uuid.UUID
	user           *string
	request        *string
	sql            *string
	summary        *string
	description    *string
	columns        *[]map[string]interface{}
	appendcolumns  []map[string]interface{}
	row_count      *int64
	addrow_count   *int64
	explanation    *map[string]interface{}
	parents        *[]string
	appendparents  []string
	tags           *string
	version        *string
	view           *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	session        *uuid.UUID
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*QueryRecord, error)
	predicates     []predicate.QueryRecord
}

var _ ent.Mutation = (*QueryRecordMutation)(nil)

// queryrecordOption allows management of the mutation configuration using functional options.
type queryrecordOption func(*QueryRecordMutation)

// newQueryRecordMutation creates new mutation for the QueryRecord entity.
func newQueryRecordMutation(c config, op Op, opts ...queryrecordOption) *QueryRecordMutation {
	m := &QueryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeQueryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueryRecordID sets the ID field of the mutation.
func withQueryRecordID(id uuid.UUID) queryrecordOption {
	return func(m *QueryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *QueryRecord
		)
		m.oldValue = func(ctx context.Context) (*QueryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueryRecord sets the old QueryRecord of the mutation.
func withQueryRecord(node *QueryRecord) queryrecordOption {
	return func(m *QueryRecordMutation) {
		m.oldValue = func(context.Context) (*QueryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueryRecord entities.
func (m *QueryRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueryRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueryRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *QueryRecordMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QueryRecordMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QueryRecordMutation) ResetSessionID() {
	m.session = nil
}

// SetRequestID sets the "request_id" field.
func (m *QueryRecordMutation) SetRequestID(u uuid.UUID) {
	m.request_id = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *QueryRecordMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldRequestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *QueryRecordMutation) ResetRequestID() {
	m.request_id = nil
}

// SetParentID sets the "parent_id" field.
func (m *QueryRecordMutation) SetParentID(u uuid.UUID) {
	m.parent_id = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *QueryRecordMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldParentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *QueryRecordMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[queryrecord.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *QueryRecordMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *QueryRecordMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, queryrecord.FieldParentID)
}

// SetUser sets the "user" field.
func (m *QueryRecordMutation) SetUser(s string) {
	m.user = &s
}

// User returns the value of the "user" field in the mutation.
func (m *QueryRecordMutation) User() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUser returns the old "user" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUser: %w", err)
	}
	return oldValue.User, nil
}

// ResetUser resets all changes to the "user" field.
func (m *QueryRecordMutation) ResetUser() {
	m.user = nil
}

// SetRequest sets the "request" field.
func (m *QueryRecordMutation) SetRequest(s string) {
	m.request = &s
}

// Request returns the value of the "request" field in the mutation.
func (m *QueryRecordMutation) Request() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ResetRequest resets all changes to the "request" field.
func (m *QueryRecordMutation) ResetRequest() {
	m.request = nil
}

// SetSQL sets the "sql" field.
func (m *QueryRecordMutation) SetSQL(s string) {
	m.sql = &s
}

// SQL returns the value of the "sql" field in the mutation.
func (m *QueryRecordMutation) SQL() (r string, exists bool) {
	v := m.sql
	if v == nil {
		return
	}
	return *v, true
}

// OldSQL returns the old "sql" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldSQL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSQL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSQL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSQL: %w", err)
	}
	return oldValue.SQL, nil
}

// ResetSQL resets all changes to the "sql" field.
func (m *QueryRecordMutation) ResetSQL() {
	m.sql = nil
}

// SetSummary sets the "summary" field.
func (m *QueryRecordMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *QueryRecordMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *QueryRecordMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[queryrecord.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *QueryRecordMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *QueryRecordMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, queryrecord.FieldSummary)
}

// SetDescription sets the "description" field.
func (m *QueryRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *QueryRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *QueryRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[queryrecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *QueryRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *QueryRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, queryrecord.FieldDescription)
}

// SetColumns sets the "columns" field.
func (m *QueryRecordMutation) SetColumns(value []map[string]interface{}) {
	m.columns = &value
	m.appendcolumns = nil
}

// Columns returns the value of the "columns" field in the mutation.
func (m *QueryRecordMutation) Columns() (r []map[string]interface{}, exists bool) {
	v := m.columns
	if v == nil {
		return
	}
	return *v, true
}

// OldColumns returns the old "columns" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldColumns(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumns: %w", err)
	}
	return oldValue.Columns, nil
}

// AppendColumns adds value to the "columns" field.
func (m *QueryRecordMutation) AppendColumns(value []map[string]interface{}) {
	m.appendcolumns = append(m.appendcolumns, value...)
}

// AppendedColumns returns the list of values that were appended to the "columns" field in this mutation.
func (m *QueryRecordMutation) AppendedColumns() ([]map[string]interface{}, bool) {
	if len(m.appendcolumns) == 0 {
		return nil, false
	}
	return m.appendcolumns, true
}

// ClearColumns clears the value of the "columns" field.
func (m *QueryRecordMutation) ClearColumns() {
	m.columns = nil
	m.appendcolumns = nil
	m.clearedFields[queryrecord.FieldColumns] = struct{}{}
}

// ColumnsCleared returns if the "columns" field was cleared in this mutation.
func (m *QueryRecordMutation) ColumnsCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldColumns]
	return ok
}

// ResetColumns resets all changes to the "columns" field.
func (m *QueryRecordMutation) ResetColumns() {
	m.columns = nil
	m.appendcolumns = nil
	delete(m.clearedFields, queryrecord.FieldColumns)
}

// SetRowCount sets the "row_count" field.
func (m *QueryRecordMutation) SetRowCount(i int64) {
	m.row_count = &i
	m.addrow_count = nil
}

// RowCount returns the value of the "row_count" field in the mutation.
func (m *QueryRecordMutation) RowCount() (r int64, exists bool) {
	v := m.row_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRowCount returns the old "row_count" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldRowCount(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowCount: %w", err)
	}
	return oldValue.RowCount, nil
}

// AddRowCount adds i to the "row_count" field.
func (m *QueryRecordMutation) AddRowCount(i int64) {
	if m.addrow_count != nil {
		*m.addrow_count += i
	} else {
		m.addrow_count = &i
	}
}

// AddedRowCount returns the value that was added to the "row_count" field in this mutation.
func (m *QueryRecordMutation) AddedRowCount() (r int64, exists bool) {
	v := m.addrow_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearRowCount clears the value of the "row_count" field.
func (m *QueryRecordMutation) ClearRowCount() {
	m.row_count = nil
	m.addrow_count = nil
	m.clearedFields[queryrecord.FieldRowCount] = struct{}{}
}

// RowCountCleared returns if the "row_count" field was cleared in this mutation.
func (m *QueryRecordMutation) RowCountCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldRowCount]
	return ok
}

// ResetRowCount resets all changes to the "row_count" field.
func (m *QueryRecordMutation) ResetRowCount() {
	m.row_count = nil
	m.addrow_count = nil
	delete(m.clearedFields, queryrecord.FieldRowCount)
}

// SetExplanation sets the "explanation" field.
func (m *QueryRecordMutation) SetExplanation(value map[string]interface{}) {
	m.explanation = &value
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QueryRecordMutation) Explanation() (r map[string]interface{}, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldExplanation(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *QueryRecordMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[queryrecord.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *QueryRecordMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QueryRecordMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, queryrecord.FieldExplanation)
}

// SetParents sets the "parents" field.
func (m *QueryRecordMutation) SetParents(s []string) {
	m.parents = &s
	m.appendparents = nil
}

// Parents returns the value of the "parents" field in the mutation.
func (m *QueryRecordMutation) Parents() (r []string, exists bool) {
	v := m.parents
	if v == nil {
		return
	}
	return *v, true
}

// OldParents returns the old "parents" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldParents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParents: %w", err)
	}
	return oldValue.Parents, nil
}

// AppendParents adds s to the "parents" field.
func (m *QueryRecordMutation) AppendParents(s []string) {
	m.appendparents = append(m.appendparents, s...)
}

// AppendedParents returns the list of values that were appended to the "parents" field in this mutation.
func (m *QueryRecordMutation) AppendedParents() ([]string, bool) {
	if len(m.appendparents) == 0 {
		return nil, false
	}
	return m.appendparents, true
}

// ClearParents clears the value of the "parents" field.
func (m *QueryRecordMutation) ClearParents() {
	m.parents = nil
	m.appendparents = nil
	m.clearedFields[queryrecord.FieldParents] = struct{}{}
}

// ParentsCleared returns if the "parents" field was cleared in this mutation.
func (m *QueryRecordMutation) ParentsCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldParents]
	return ok
}

// ResetParents resets all changes to the "parents" field.
func (m *QueryRecordMutation) ResetParents() {
	m.parents = nil
	m.appendparents = nil
	delete(m.clearedFields, queryrecord.FieldParents)
}

// SetTags sets the "tags" field.
func (m *QueryRecordMutation) SetTags(s string) {
	m.tags = &s
}

// Tags returns the value of the "tags" field in the mutation.
func (m *QueryRecordMutation) Tags() (r string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldTags(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// ClearTags clears the value of the "tags" field.
func (m *QueryRecordMutation) ClearTags() {
	m.tags = nil
	m.clearedFields[queryrecord.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *QueryRecordMutation) TagsCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *QueryRecordMutation) ResetTags() {
	m.tags = nil
	delete(m.clearedFields, queryrecord.FieldTags)
}

// SetVersion sets the "version" field.
func (m *QueryRecordMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *QueryRecordMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ClearVersion clears the value of the "version" field.
func (m *QueryRecordMutation) ClearVersion() {
	m.version = nil
	m.clearedFields[queryrecord.FieldVersion] = struct{}{}
}

// VersionCleared returns if the "version" field was cleared in this mutation.
func (m *QueryRecordMutation) VersionCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldVersion]
	return ok
}

// ResetVersion resets all changes to the "version" field.
func (m *QueryRecordMutation) ResetVersion() {
	m.version = nil
	delete(m.clearedFields, queryrecord.FieldVersion)
}

// SetView sets the "view" field.
func (m *QueryRecordMutation) SetView(value map[string]interface{}) {
	m.view = &value
}

// View returns the value of the "view" field in the mutation.
func (m *QueryRecordMutation) View() (r map[string]interface{}, exists bool) {
	v := m.view
	if v == nil {
		return
	}
	return *v, true
}

// OldView returns the old "view" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldView(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldView is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldView requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldView: %w", err)
	}
	return oldValue.View, nil
}

// ClearView clears the value of the "view" field.
func (m *QueryRecordMutation) ClearView() {
	m.view = nil
	m.clearedFields[queryrecord.FieldView] = struct{}{}
}

// ViewCleared returns if the "view" field was cleared in this mutation.
func (m *QueryRecordMutation) ViewCleared() bool {
	_, ok := m.clearedFields[queryrecord.FieldView]
	return ok
}

// ResetView resets all changes to the "view" field.
func (m *QueryRecordMutation) ResetView() {
	m.view = nil
	delete(m.clearedFields, queryrecord.FieldView)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueryRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueryRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueryRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueryRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueryRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueryRecord entity.
// If the QueryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueryRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *QueryRecordMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[queryrecord.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *QueryRecordMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *QueryRecordMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *QueryRecordMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the QueryRecordMutation builder.
func (m *QueryRecordMutation) Where(ps ...predicate.QueryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueryRecord).
func (m *QueryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueryRecordMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.session != nil {
		fields = append(fields, queryrecord.FieldSessionID)
	}
	if m.request_id != nil {
		fields = append(fields, queryrecord.FieldRequestID)
	}
	if m.parent_id != nil {
		fields = append(fields, queryrecord.FieldParentID)
	}
	if m.user != nil {
		fields = append(fields, queryrecord.FieldUser)
	}
	if m.request != nil {
		fields = append(fields, queryrecord.FieldRequest)
	}
	if m.sql != nil {
		fields = append(fields, queryrecord.FieldSQL)
	}
	if m.summary != nil {
		fields = append(fields, queryrecord.FieldSummary)
	}
	if m.description != nil {
		fields = append(fields, queryrecord.FieldDescription)
	}
	if m.columns != nil {
		fields = append(fields, queryrecord.FieldColumns)
	}
	if m.row_count != nil {
		fields = append(fields, queryrecord.FieldRowCount)
	}
	if m.explanation != nil {
		fields = append(fields, queryrecord.FieldExplanation)
	}
	if m.parents != nil {
		fields = append(fields, queryrecord.FieldParents)
	}
	if m.tags != nil {
		fields = append(fields, queryrecord.FieldTags)
	}
	if m.version != nil {
		fields = append(fields, queryrecord.FieldVersion)
	}
	if m.view != nil {
		fields = append(fields, queryrecord.FieldView)
	}
	if m.created_at != nil {
		fields = append(fields, queryrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, queryrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queryrecord.FieldSessionID:
		return m.SessionID()
	case queryrecord.FieldRequestID:
		return m.RequestID()
	case queryrecord.FieldParentID:
		return m.ParentID()
	case queryrecord.FieldUser:
		return m.User()
	case queryrecord.FieldRequest:
		return m.Request()
	case queryrecord.FieldSQL:
		return m.SQL()
	case queryrecord.FieldSummary:
		return m.Summary()
	case queryrecord.FieldDescription:
		return m.Description()
	case queryrecord.FieldColumns:
		return m.Columns()
	case queryrecord.FieldRowCount:
		return m.RowCount()
	case queryrecord.FieldExplanation:
		return m.Explanation()
	case queryrecord.FieldParents:
		return m.Parents()
	case queryrecord.FieldTags:
		return m.Tags()
	case queryrecord.FieldVersion:
		return m.Version()
	case queryrecord.FieldView:
		return m.View()
	case queryrecord.FieldCreatedAt:
		return m.CreatedAt()
	case queryrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queryrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case queryrecord.FieldRequestID:
		return m.OldRequestID(ctx)
	case queryrecord.FieldParentID:
		return m.OldParentID(ctx)
	case queryrecord.FieldUser:
		return m.OldUser(ctx)
	case queryrecord.FieldRequest:
		return m.OldRequest(ctx)
	case queryrecord.FieldSQL:
		return m.OldSQL(ctx)
	case queryrecord.FieldSummary:
		return m.OldSummary(ctx)
	case queryrecord.FieldDescription:
		return m.OldDescription(ctx)
	case queryrecord.FieldColumns:
		return m.OldColumns(ctx)
	case queryrecord.FieldRowCount:
		return m.OldRowCount(ctx)
	case queryrecord.FieldExplanation:
		return m.OldExplanation(ctx)
	case queryrecord.FieldParents:
		return m.OldParents(ctx)
	case queryrecord.FieldTags:
		return m.OldTags(ctx)
	case queryrecord.FieldVersion:
		return m.OldVersion(ctx)
	case queryrecord.FieldView:
		return m.OldView(ctx)
	case queryrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case queryrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queryrecord.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case queryrecord.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case queryrecord.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case queryrecord.FieldUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUser(v)
		return nil
	case queryrecord.FieldRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case queryrecord.FieldSQL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSQL(v)
		return nil
	case queryrecord.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case queryrecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case queryrecord.FieldColumns:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumns(v)
		return nil
	case queryrecord.FieldRowCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowCount(v)
		return nil
	case queryrecord.FieldExplanation:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case queryrecord.FieldParents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParents(v)
		return nil
	case queryrecord.FieldTags:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case queryrecord.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case queryrecord.FieldView:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetView(v)
		return nil
	case queryrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case queryrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addrow_count != nil {
		fields = append(fields, queryrecord.FieldRowCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queryrecord.FieldRowCount:
		return m.AddedRowCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queryrecord.FieldRowCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowCount(v)
		return nil
	}
	return fmt.Errorf("unknown QueryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queryrecord.FieldParentID) {
		fields = append(fields, queryrecord.FieldParentID)
	}
	if m.FieldCleared(queryrecord.FieldSummary) {
		fields = append(fields, queryrecord.FieldSummary)
	}
	if m.FieldCleared(queryrecord.FieldDescription) {
		fields = append(fields, queryrecord.FieldDescription)
	}
	if m.FieldCleared(queryrecord.FieldColumns) {
		fields = append(fields, queryrecord.FieldColumns)
	}
	if m.FieldCleared(queryrecord.FieldRowCount) {
		fields = append(fields, queryrecord.FieldRowCount)
	}
	if m.FieldCleared(queryrecord.FieldExplanation) {
		fields = append(fields, queryrecord.FieldExplanation)
	}
	if m.FieldCleared(queryrecord.FieldParents) {
		fields = append(fields, queryrecord.FieldParents)
	}
	if m.FieldCleared(queryrecord.FieldTags) {
		fields = append(fields, queryrecord.FieldTags)
	}
	if m.FieldCleared(queryrecord.FieldVersion) {
		fields = append(fields, queryrecord.FieldVersion)
	}
	if m.FieldCleared(queryrecord.FieldView) {
		fields = append(fields, queryrecord.FieldView)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueryRecordMutation) ClearField(name string) error {
	switch name {
	case queryrecord.FieldParentID:
		m.ClearParentID()
		return nil
	case queryrecord.FieldSummary:
		m.ClearSummary()
		return nil
	case queryrecord.FieldDescription:
		m.ClearDescription()
		return nil
	case queryrecord.FieldColumns:
		m.ClearColumns()
		return nil
	case queryrecord.FieldRowCount:
		m.ClearRowCount()
		return nil
	case queryrecord.FieldExplanation:
		m.ClearExplanation()
		return nil
	case queryrecord.FieldParents:
		m.ClearParents()
		return nil
	case queryrecord.FieldTags:
		m.ClearTags()
		return nil
	case queryrecord.FieldVersion:
		m.ClearVersion()
		return nil
	case queryrecord.FieldView:
		m.ClearView()
		return nil
	}
	return fmt.Errorf("unknown QueryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueryRecordMutation) ResetField(name string) error {
	switch name {
	case queryrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case queryrecord.FieldRequestID:
		m.ResetRequestID()
		return nil
	case queryrecord.FieldParentID:
		m.ResetParentID()
		return nil
	case queryrecord.FieldUser:
		m.ResetUser()
		return nil
	case queryrecord.FieldRequest:
		m.ResetRequest()
		return nil
	case queryrecord.FieldSQL:
		m.ResetSQL()
		return nil
	case queryrecord.FieldSummary:
		m.ResetSummary()
		return nil
	case queryrecord.FieldDescription:
		m.ResetDescription()
		return nil
	case queryrecord.FieldColumns:
		m.ResetColumns()
		return nil
	case queryrecord.FieldRowCount:
		m.ResetRowCount()
		return nil
	case queryrecord.FieldExplanation:
		m.ResetExplanation()
		return nil
	case queryrecord.FieldParents:
		m.ResetParents()
		return nil
	case queryrecord.FieldTags:
		m.ResetTags()
		return nil
	case queryrecord.FieldVersion:
		m.ResetVersion()
		return nil
	case queryrecord.FieldView:
		m.ResetView()
		return nil
	case queryrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case queryrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, queryrecord.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueryRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case queryrecord.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, queryrecord.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueryRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case queryrecord.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueryRecordMutation) ClearEdge(name string) error {
	switch name {
	case queryrecord.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown QueryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueryRecordMutation) ResetEdge(name string) error {
	switch name {
	case queryrecord.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown QueryRecord edge %s", name)
}

// RequestMutation represents an operation that mutates the Request nodes in the graph.
type RequestMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	sequence_number       *int
	addsequence_number    *int
	user                  *string
	request               *string
	request_type          *string
	status                *request.Status
	flow                  *string
	model                 *string
	db                    *string
	err                   *string
	response              *string
	intent                *string
	assumptions           *string
	intro                 *string
	outro                 *string
	sql                   *string
	raw_data_labels       *[]string
	appendraw_data_labels []string
	raw_data              *[][]string
	appendraw_data        [][]string
	csv                   *string
	chart                 *string
	chart_url             *string
	refs                  *map[string]interface{}
	view                  *map[string]interface{}
	query_id              *uuid.UUID
	linked_session_id     *uuid.UUID
	rating                *int
	addrating             *int
	review                *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	session               *uuid.UUID
	clearedsession        bool
	done                  bool
	oldValue              func(context.Context) (*Request, error)
	predicates            []predicate.Request
}

var _ ent.Mutation = (*RequestMutation)(nil)

// requestOption allows management of the mutation configuration using functional options.
type requestOption func(*RequestMutation)

// newRequestMutation creates new mutation for the Request entity.
func newRequestMutation(c config, op Op, opts ...requestOption) *RequestMutation {
	m := &RequestMutation{
		config:        c,
		op:            op,
		typ:           TypeRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestID sets the ID field of the mutation.
func withRequestID(id uuid.UUID) requestOption {
	return func(m *RequestMutation) {
		var (
			err   error
			once  sync.Once
			value *Request
		)
		m.oldValue = func(ctx context.Context) (*Request, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Request.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequest sets the old Request of the mutation.
func withRequest(node *Request) requestOption {
	return func(m *RequestMutation) {
		m.oldValue = func(context.Context) (*Request, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Request entities.
func (m *RequestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Request.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RequestMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RequestMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RequestMutation) ResetSessionID() {
	m.session = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *RequestMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *RequestMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *RequestMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *RequestMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *RequestMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetUser sets the "user" field.
func (m *RequestMutation) SetUser(s string) {
	m.user = &s
}

// User returns the value of the "user" field in the mutation.
func (m *RequestMutation) User() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUser returns the old "user" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUser: %w", err)
	}
	return oldValue.User, nil
}

// ResetUser resets all changes to the "user" field.
func (m *RequestMutation) ResetUser() {
	m.user = nil
}

// SetRequest sets the "request" field.
func (m *RequestMutation) SetRequest(s string) {
	m.request = &s
}

// Request returns the value of the "request" field in the mutation.
func (m *RequestMutation) Request() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ResetRequest resets all changes to the "request" field.
func (m *RequestMutation) ResetRequest() {
	m.request = nil
}

// SetRequestType sets the "request_type" field.
func (m *RequestMutation) SetRequestType(s string) {
	m.request_type = &s
}

// RequestType returns the value of the "request_type" field in the mutation.
func (m *RequestMutation) RequestType() (r string, exists bool) {
	v := m.request_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestType returns the old "request_type" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRequestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestType: %w", err)
	}
	return oldValue.RequestType, nil
}

// ResetRequestType resets all changes to the "request_type" field.
func (m *RequestMutation) ResetRequestType() {
	m.request_type = nil
}

// SetStatus sets the "status" field.
func (m *RequestMutation) SetStatus(r request.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RequestMutation) Status() (r request.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldStatus(ctx context.Context) (v request.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RequestMutation) ResetStatus() {
	m.status = nil
}

// SetFlow sets the "flow" field.
func (m *RequestMutation) SetFlow(s string) {
	m.flow = &s
}

// Flow returns the value of the "flow" field in the mutation.
func (m *RequestMutation) Flow() (r string, exists bool) {
	v := m.flow
	if v == nil {
		return
	}
	return *v, true
}

// OldFlow returns the old "flow" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldFlow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlow: %w", err)
	}
	return oldValue.Flow, nil
}

// ResetFlow resets all changes to the "flow" field.
func (m *RequestMutation) ResetFlow() {
	m.flow = nil
}

// SetModel sets the "model" field.
func (m *RequestMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *RequestMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *RequestMutation) ResetModel() {
	m.model = nil
}

// SetDb sets the "db" field.
func (m *RequestMutation) SetDb(s string) {
	m.db = &s
}

// Db returns the value of the "db" field in the mutation.
func (m *RequestMutation) Db() (r string, exists bool) {
	v := m.db
	if v == nil {
		return
	}
	return *v, true
}

// OldDb returns the old "db" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDb(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDb: %w", err)
	}
	return oldValue.Db, nil
}

// ResetDb resets all changes to the "db" field.
func (m *RequestMutation) ResetDb() {
	m.db = nil
}

// SetErr sets the "err" field.
func (m *RequestMutation) SetErr(s string) {
	m.err = &s
}

// Err returns the value of the "err" field in the mutation.
func (m *RequestMutation) Err() (r string, exists bool) {
	v := m.err
	if v == nil {
		return
	}
	return *v, true
}

// OldErr returns the old "err" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldErr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErr: %w", err)
	}
	return oldValue.Err, nil
}

// ClearErr clears the value of the "err" field.
func (m *RequestMutation) ClearErr() {
	m.err = nil
	m.clearedFields[request.FieldErr] = struct{}{}
}

// ErrCleared returns if the "err" field was cleared in this mutation.
func (m *RequestMutation) ErrCleared() bool {
	_, ok := m.clearedFields[request.FieldErr]
	return ok
}

// ResetErr resets all changes to the "err" field.
func (m *RequestMutation) ResetErr() {
	m.err = nil
	delete(m.clearedFields, request.FieldErr)
}

// SetResponse sets the "response" field.
func (m *RequestMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *RequestMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *RequestMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[request.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *RequestMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[request.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *RequestMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, request.FieldResponse)
}

// SetIntent sets the "intent" field.
func (m *RequestMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *RequestMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldIntent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *RequestMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[request.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *RequestMutation) IntentCleared() bool {
	_, ok := m.clearedFields[request.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *RequestMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, request.FieldIntent)
}

// SetAssumptions sets the "assumptions" field.
func (m *RequestMutation) SetAssumptions(s string) {
	m.assumptions = &s
}

// Assumptions returns the value of the "assumptions" field in the mutation.
func (m *RequestMutation) Assumptions() (r string, exists bool) {
	v := m.assumptions
	if v == nil {
		return
	}
	return *v, true
}

// OldAssumptions returns the old "assumptions" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldAssumptions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssumptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssumptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssumptions: %w", err)
	}
	return oldValue.Assumptions, nil
}

// ClearAssumptions clears the value of the "assumptions" field.
func (m *RequestMutation) ClearAssumptions() {
	m.assumptions = nil
	m.clearedFields[request.FieldAssumptions] = struct{}{}
}

// AssumptionsCleared returns if the "assumptions" field was cleared in this mutation.
func (m *RequestMutation) AssumptionsCleared() bool {
	_, ok := m.clearedFields[request.FieldAssumptions]
	return ok
}

// ResetAssumptions resets all changes to the "assumptions" field.
func (m *RequestMutation) ResetAssumptions() {
	m.assumptions = nil
	delete(m.clearedFields, request.FieldAssumptions)
}

// SetIntro sets the "intro" field.
func (m *RequestMutation) SetIntro(s string) {
	m.intro = &s
}

// Intro returns the value of the "intro" field in the mutation.
func (m *RequestMutation) Intro() (r string, exists bool) {
	v := m.intro
	if v == nil {
		return
	}
	return *v, true
}

// OldIntro returns the old "intro" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldIntro(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntro: %w", err)
	}
	return oldValue.Intro, nil
}

// ClearIntro clears the value of the "intro" field.
func (m *RequestMutation) ClearIntro() {
	m.intro = nil
	m.clearedFields[request.FieldIntro] = struct{}{}
}

// IntroCleared returns if the "intro" field was cleared in this mutation.
func (m *RequestMutation) IntroCleared() bool {
	_, ok := m.clearedFields[request.FieldIntro]
	return ok
}

// ResetIntro resets all changes to the "intro" field.
func (m *RequestMutation) ResetIntro() {
	m.intro = nil
	delete(m.clearedFields, request.FieldIntro)
}

// SetOutro sets the "outro" field.
func (m *RequestMutation) SetOutro(s string) {
	m.outro = &s
}

// Outro returns the value of the "outro" field in the mutation.
func (m *RequestMutation) Outro() (r string, exists bool) {
	v := m.outro
	if v == nil {
		return
	}
	return *v, true
}

// OldOutro returns the old "outro" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldOutro(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutro: %w", err)
	}
	return oldValue.Outro, nil
}

// ClearOutro clears the value of the "outro" field.
func (m *RequestMutation) ClearOutro() {
	m.outro = nil
	m.clearedFields[request.FieldOutro] = struct{}{}
}

// OutroCleared returns if the "outro" field was cleared in this mutation.
func (m *RequestMutation) OutroCleared() bool {
	_, ok := m.clearedFields[request.FieldOutro]
	return ok
}

// ResetOutro resets all changes to the "outro" field.
func (m *RequestMutation) ResetOutro() {
	m.outro = nil
	delete(m.clearedFields, request.FieldOutro)
}

// SetSQL sets the "sql" field.
func (m *RequestMutation) SetSQL(s string) {
	m.sql = &s
}

// SQL returns the value of the "sql" field in the mutation.
func (m *RequestMutation) SQL() (r string, exists bool) {
	v := m.sql
	if v == nil {
		return
	}
	return *v, true
}

// OldSQL returns the old "sql" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldSQL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSQL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSQL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSQL: %w", err)
	}
	return oldValue.SQL, nil
}

// ClearSQL clears the value of the "sql" field.
func (m *RequestMutation) ClearSQL() {
	m.sql = nil
	m.clearedFields[request.FieldSQL] = struct{}{}
}

// SQLCleared returns if the "sql" field was cleared in this mutation.
func (m *RequestMutation) SQLCleared() bool {
	_, ok := m.clearedFields[request.FieldSQL]
	return ok
}

// ResetSQL resets all changes to the "sql" field.
func (m *RequestMutation) ResetSQL() {
	m.sql = nil
	delete(m.clearedFields, request.FieldSQL)
}

// SetRawDataLabels sets the "raw_data_labels" field.
func (m *RequestMutation) SetRawDataLabels(s []string) {
	m.raw_data_labels = &s
	m.appendraw_data_labels = nil
}

// RawDataLabels returns the value of the "raw_data_labels" field in the mutation.
func (m *RequestMutation) RawDataLabels() (r []string, exists bool) {
	v := m.raw_data_labels
	if v == nil {
		return
	}
	return *v, true
}

// OldRawDataLabels returns the old "raw_data_labels" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRawDataLabels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawDataLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawDataLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawDataLabels: %w", err)
	}
	return oldValue.RawDataLabels, nil
}

// AppendRawDataLabels adds s to the "raw_data_labels" field.
func (m *RequestMutation) AppendRawDataLabels(s []string) {
	m.appendraw_data_labels = append(m.appendraw_data_labels, s...)
}

// AppendedRawDataLabels returns the list of values that were appended to the "raw_data_labels" field in this mutation.
func (m *RequestMutation) AppendedRawDataLabels() ([]string, bool) {
	if len(m.appendraw_data_labels) == 0 {
		return nil, false
	}
	return m.appendraw_data_labels, true
}

// ClearRawDataLabels clears the value of the "raw_data_labels" field.
func (m *RequestMutation) ClearRawDataLabels() {
	m.raw_data_labels = nil
	m.appendraw_data_labels = nil
	m.clearedFields[request.FieldRawDataLabels] = struct{}{}
}

// RawDataLabelsCleared returns if the "raw_data_labels" field was cleared in this mutation.
func (m *RequestMutation) RawDataLabelsCleared() bool {
	_, ok := m.clearedFields[request.FieldRawDataLabels]
	return ok
}

// ResetRawDataLabels resets all changes to the "raw_data_labels" field.
func (m *RequestMutation) ResetRawDataLabels() {
	m.raw_data_labels = nil
	m.appendraw_data_labels = nil
	delete(m.clearedFields, request.FieldRawDataLabels)
}

// SetRawData sets the "raw_data" field.
func (m *RequestMutation) SetRawData(s [][]string) {
	m.raw_data = &s
	m.appendraw_data = nil
}

// RawData returns the value of the "raw_data" field in the mutation.
func (m *RequestMutation) RawData() (r [][]string, exists bool) {
	v := m.raw_data
	if v == nil {
		return
	}
	return *v, true
}

// OldRawData returns the old "raw_data" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRawData(ctx context.Context) (v [][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawData: %w", err)
	}
	return oldValue.RawData, nil
}

// AppendRawData adds s to the "raw_data" field.
func (m *RequestMutation) AppendRawData(s [][]string) {
	m.appendraw_data = append(m.appendraw_data, s...)
}

// AppendedRawData returns the list of values that were appended to the "raw_data" field in this mutation.
func (m *RequestMutation) AppendedRawData() ([][]string, bool) {
	if len(m.appendraw_data) == 0 {
		return nil, false
	}
	return m.appendraw_data, true
}

// ClearRawData clears the value of the "raw_data" field.
func (m *RequestMutation) ClearRawData() {
	m.raw_data = nil
	m.appendraw_data = nil
	m.clearedFields[request.FieldRawData] = struct{}{}
}

// RawDataCleared returns if the "raw_data" field was cleared in this mutation.
func (m *RequestMutation) RawDataCleared() bool {
	_, ok := m.clearedFields[request.FieldRawData]
	return ok
}

// ResetRawData resets all changes to the "raw_data" field.
func (m *RequestMutation) ResetRawData() {
	m.raw_data = nil
	m.appendraw_data = nil
	delete(m.clearedFields, request.FieldRawData)
}

// SetCsv sets the "csv" field.
func (m *RequestMutation) SetCsv(s string) {
	m.csv = &s
}

// Csv returns the value of the "csv" field in the mutation.
func (m *RequestMutation) Csv() (r string, exists bool) {
	v := m.csv
	if v == nil {
		return
	}
	return *v, true
}

// OldCsv returns the old "csv" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCsv(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCsv is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCsv requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCsv: %w", err)
	}
	return oldValue.Csv, nil
}

// ClearCsv clears the value of the "csv" field.
func (m *RequestMutation) ClearCsv() {
	m.csv = nil
	m.clearedFields[request.FieldCsv] = struct{}{}
}

// CsvCleared returns if the "csv" field was cleared in this mutation.
func (m *RequestMutation) CsvCleared() bool {
	_, ok := m.clearedFields[request.FieldCsv]
	return ok
}

// ResetCsv resets all changes to the "csv" field.
func (m *RequestMutation) ResetCsv() {
	m.csv = nil
	delete(m.clearedFields, request.FieldCsv)
}

// SetChart sets the "chart" field.
func (m *RequestMutation) SetChart(s string) {
	m.chart = &s
}

// Chart returns the value of the "chart" field in the mutation.
func (m *RequestMutation) Chart() (r string, exists bool) {
	v := m.chart
	if v == nil {
		return
	}
	return *v, true
}

// OldChart returns the old "chart" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldChart(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChart: %w", err)
	}
	return oldValue.Chart, nil
}

// ClearChart clears the value of the "chart" field.
func (m *RequestMutation) ClearChart() {
	m.chart = nil
	m.clearedFields[request.FieldChart] = struct{}{}
}

// ChartCleared returns if the "chart" field was cleared in this mutation.
func (m *RequestMutation) ChartCleared() bool {
	_, ok := m.clearedFields[request.FieldChart]
	return ok
}

// ResetChart resets all changes to the "chart" field.
func (m *RequestMutation) ResetChart() {
	m.chart = nil
	delete(m.clearedFields, request.FieldChart)
}

// SetChartURL sets the "chart_url" field.
func (m *RequestMutation) SetChartURL(s string) {
	m.chart_url = &s
}

// ChartURL returns the value of the "chart_url" field in the mutation.
func (m *RequestMutation) ChartURL() (r string, exists bool) {
	v := m.chart_url
	if v == nil {
		return
	}
	return *v, true
}

// OldChartURL returns the old "chart_url" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldChartURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartURL: %w", err)
	}
	return oldValue.ChartURL, nil
}

// ClearChartURL clears the value of the "chart_url" field.
func (m *RequestMutation) ClearChartURL() {
	m.chart_url = nil
	m.clearedFields[request.FieldChartURL] = struct{}{}
}

// ChartURLCleared returns if the "chart_url" field was cleared in this mutation.
func (m *RequestMutation) ChartURLCleared() bool {
	_, ok := m.clearedFields[request.FieldChartURL]
	return ok
}

// ResetChartURL resets all changes to the "chart_url" field.
func (m *RequestMutation) ResetChartURL() {
	m.chart_url = nil
	delete(m.clearedFields, request.FieldChartURL)
}

// SetRefs sets the "refs" field.
func (m *RequestMutation) SetRefs(value map[string]interface{}) {
	m.refs = &value
}

// Refs returns the value of the "refs" field in the mutation.
func (m *RequestMutation) Refs() (r map[string]interface{}, exists bool) {
	v := m.refs
	if v == nil {
		return
	}
	return *v, true
}

// OldRefs returns the old "refs" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRefs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefs: %w", err)
	}
	return oldValue.Refs, nil
}

// ClearRefs clears the value of the "refs" field.
func (m *RequestMutation) ClearRefs() {
	m.refs = nil
	m.clearedFields[request.FieldRefs] = struct{}{}
}

// RefsCleared returns if the "refs" field was cleared in this mutation.
func (m *RequestMutation) RefsCleared() bool {
	_, ok := m.clearedFields[request.FieldRefs]
	return ok
}

// ResetRefs resets all changes to the "refs" field.
func (m *RequestMutation) ResetRefs() {
	m.refs = nil
	delete(m.clearedFields, request.FieldRefs)
}

// SetView sets the "view" field.
func (m *RequestMutation) SetView(value map[string]interface{}) {
	m.view = &value
}

// View returns the value of the "view" field in the mutation.
func (m *RequestMutation) View() (r map[string]interface{}, exists bool) {
	v := m.view
	if v == nil {
		return
	}
	return *v, true
}

// OldView returns the old "view" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldView(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldView is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldView requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldView: %w", err)
	}
	return oldValue.View, nil
}

// ClearView clears the value of the "view" field.
func (m *RequestMutation) ClearView() {
	m.view = nil
	m.clearedFields[request.FieldView] = struct{}{}
}

// ViewCleared returns if the "view" field was cleared in this mutation.
func (m *RequestMutation) ViewCleared() bool {
	_, ok := m.clearedFields[request.FieldView]
	return ok
}

// ResetView resets all changes to the "view" field.
func (m *RequestMutation) ResetView() {
	m.view = nil
	delete(m.clearedFields, request.FieldView)
}

// SetQueryID sets the "query_id" field.
func (m *RequestMutation) SetQueryID(u uuid.UUID) {
	m.query_id = &u
}

// QueryID returns the value of the "query_id" field in the mutation.
func (m *RequestMutation) QueryID() (r uuid.UUID, exists bool) {
	v := m.query_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryID returns the old "query_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldQueryID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryID: %w", err)
	}
	return oldValue.QueryID, nil
}

// ClearQueryID clears the value of the "query_id" field.
func (m *RequestMutation) ClearQueryID() {
	m.query_id = nil
	m.clearedFields[request.FieldQueryID] = struct{}{}
}

// QueryIDCleared returns if the "query_id" field was cleared in this mutation.
func (m *RequestMutation) QueryIDCleared() bool {
	_, ok := m.clearedFields[request.FieldQueryID]
	return ok
}

// ResetQueryID resets all changes to the "query_id" field.
func (m *RequestMutation) ResetQueryID() {
	m.query_id = nil
	delete(m.clearedFields, request.FieldQueryID)
}

// SetLinkedSessionID sets the "linked_session_id" field.
func (m *RequestMutation) SetLinkedSessionID(u uuid.UUID) {
	m.linked_session_id = &u
}

// LinkedSessionID returns the value of the "linked_session_id" field in the mutation.
func (m *RequestMutation) LinkedSessionID() (r uuid.UUID, exists bool) {
	v := m.linked_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedSessionID returns the old "linked_session_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldLinkedSessionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedSessionID: %w", err)
	}
	return oldValue.LinkedSessionID, nil
}

// ClearLinkedSessionID clears the value of the "linked_session_id" field.
func (m *RequestMutation) ClearLinkedSessionID() {
	m.linked_session_id = nil
	m.clearedFields[request.FieldLinkedSessionID] = struct{}{}
}

// LinkedSessionIDCleared returns if the "linked_session_id" field was cleared in this mutation.
func (m *RequestMutation) LinkedSessionIDCleared() bool {
	_, ok := m.clearedFields[request.FieldLinkedSessionID]
	return ok
}

// ResetLinkedSessionID resets all changes to the "linked_session_id" field.
func (m *RequestMutation) ResetLinkedSessionID() {
	m.linked_session_id = nil
	delete(m.clearedFields, request.FieldLinkedSessionID)
}

// SetRating sets the "rating" field.
func (m *RequestMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *RequestMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *RequestMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *RequestMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ClearRating clears the value of the "rating" field.
func (m *RequestMutation) ClearRating() {
	m.rating = nil
	m.addrating = nil
	m.clearedFields[request.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *RequestMutation) RatingCleared() bool {
	_, ok := m.clearedFields[request.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *RequestMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
	delete(m.clearedFields, request.FieldRating)
}

// SetReview sets the "review" field.
func (m *RequestMutation) SetReview(s string) {
	m.review = &s
}

// Review returns the value of the "review" field in the mutation.
func (m *RequestMutation) Review() (r string, exists bool) {
	v := m.review
	if v == nil {
		return
	}
	return *v, true
}

// OldReview returns the old "review" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldReview(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReview: %w", err)
	}
	return oldValue.Review, nil
}

// ClearReview clears the value of the "review" field.
func (m *RequestMutation) ClearReview() {
	m.review = nil
	m.clearedFields[request.FieldReview] = struct{}{}
}

// ReviewCleared returns if the "review" field was cleared in this mutation.
func (m *RequestMutation) ReviewCleared() bool {
	_, ok := m.clearedFields[request.FieldReview]
	return ok
}

// ResetReview resets all changes to the "review" field.
func (m *RequestMutation) ResetReview() {
	m.review = nil
	delete(m.clearedFields, request.FieldReview)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *RequestMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[request.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *RequestMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RequestMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RequestMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the RequestMutation builder.
func (m *RequestMutation) Where(ps ...predicate.Request) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Request, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Request).
func (m *RequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestMutation) Fields() []string {
	fields := make([]string, 0, 29)
	if m.session != nil {
		fields = append(fields, request.FieldSessionID)
	}
	if m.sequence_number != nil {
		fields = append(fields, request.FieldSequenceNumber)
	}
	if m.user != nil {
		fields = append(fields, request.FieldUser)
	}
	if m.request != nil {
		fields = append(fields, request.FieldRequest)
	}
	if m.request_type != nil {
		fields = append(fields, request.FieldRequestType)
	}
	if m.status != nil {
		fields = append(fields, request.FieldStatus)
	}
	if m.flow != nil {
		fields = append(fields, request.FieldFlow)
	}
	if m.model != nil {
		fields = append(fields, request.FieldModel)
	}
	if m.db != nil {
		fields = append(fields, request.FieldDb)
	}
	if m.err != nil {
		fields = append(fields, request.FieldErr)
	}
	if m.response != nil {
		fields = append(fields, request.FieldResponse)
	}
	if m.intent != nil {
		fields = append(fields, request.FieldIntent)
	}
	if m.assumptions != nil {
		fields = append(fields, request.FieldAssumptions)
	}
	if m.intro != nil {
		fields = append(fields, request.FieldIntro)
	}
	if m.outro != nil {
		fields = append(fields, request.FieldOutro)
	}
	if m.sql != nil {
		fields = append(fields, request.FieldSQL)
	}
	if m.raw_data_labels != nil {
		fields = append(fields, request.FieldRawDataLabels)
	}
	if m.raw_data != nil {
		fields = append(fields, request.FieldRawData)
	}
	if m.csv != nil {
		fields = append(fields, request.FieldCsv)
	}
	if m.chart != nil {
		fields = append(fields, request.FieldChart)
	}
	if m.chart_url != nil {
		fields = append(fields, request.FieldChartURL)
	}
	if m.refs != nil {
		fields = append(fields, request.FieldRefs)
	}
	if m.view != nil {
		fields = append(fields, request.FieldView)
	}
	if m.query_id != nil {
		fields = append(fields, request.FieldQueryID)
	}
	if m.linked_session_id != nil {
		fields = append(fields, request.FieldLinkedSessionID)
	}
	if m.rating != nil {
		fields = append(fields, request.FieldRating)
	}
	if m.review != nil {
		fields = append(fields, request.FieldReview)
	}
	if m.created_at != nil {
		fields = append(fields, request.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, request.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case request.FieldSessionID:
		return m.SessionID()
	case request.FieldSequenceNumber:
		return m.SequenceNumber()
	case request.FieldUser:
		return m.User()
	case request.FieldRequest:
		return m.Request()
	case request.FieldRequestType:
		return m.RequestType()
	case request.FieldStatus:
		return m.Status()
	case request.FieldFlow:
		return m.Flow()
	case request.FieldModel:
		return m.Model()
	case request.FieldDb:
		return m.Db()
	case request.FieldErr:
		return m.Err()
	case request.FieldResponse:
		return m.Response()
	case request.FieldIntent:
		return m.Intent()
	case request.FieldAssumptions:
		return m.Assumptions()
	case request.FieldIntro:
		return m.Intro()
	case request.FieldOutro:
		return m.Outro()
	case request.FieldSQL:
		return m.SQL()
	case request.FieldRawDataLabels:
		return m.RawDataLabels()
	case request.FieldRawData:
		return m.RawData()
	case request.FieldCsv:
		return m.Csv()
	case request.FieldChart:
		return m.Chart()
	case request.FieldChartURL:
		return m.ChartURL()
	case request.FieldRefs:
		return m.Refs()
	case request.FieldView:
		return m.View()
	case request.FieldQueryID:
		return m.QueryID()
	case request.FieldLinkedSessionID:
		return m.LinkedSessionID()
	case request.FieldRating:
		return m.Rating()
	case request.FieldReview:
		return m.Review()
	case request.FieldCreatedAt:
		return m.CreatedAt()
	case request.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case request.FieldSessionID:
		return m.OldSessionID(ctx)
	case request.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case request.FieldUser:
		return m.OldUser(ctx)
	case request.FieldRequest:
		return m.OldRequest(ctx)
	case request.FieldRequestType:
		return m.OldRequestType(ctx)
	case request.FieldStatus:
		return m.OldStatus(ctx)
	case request.FieldFlow:
		return m.OldFlow(ctx)
	case request.FieldModel:
		return m.OldModel(ctx)
	case request.FieldDb:
		return m.OldDb(ctx)
	case request.FieldErr:
		return m.OldErr(ctx)
	case request.FieldResponse:
		return m.OldResponse(ctx)
	case request.FieldIntent:
		return m.OldIntent(ctx)
	case request.FieldAssumptions:
		return m.OldAssumptions(ctx)
	case request.FieldIntro:
		return m.OldIntro(ctx)
	case request.FieldOutro:
		return m.OldOutro(ctx)
	case request.FieldSQL:
		return m.OldSQL(ctx)
	case request.FieldRawDataLabels:
		return m.OldRawDataLabels(ctx)
	case request.FieldRawData:
		return m.OldRawData(ctx)
	case request.FieldCsv:
		return m.OldCsv(ctx)
	case request.FieldChart:
		return m.OldChart(ctx)
	case request.FieldChartURL:
		return m.OldChartURL(ctx)
	case request.FieldRefs:
		return m.OldRefs(ctx)
	case request.FieldView:
		return m.OldView(ctx)
	case request.FieldQueryID:
		return m.OldQueryID(ctx)
	case request.FieldLinkedSessionID:
		return m.OldLinkedSessionID(ctx)
	case request.FieldRating:
		return m.OldRating(ctx)
	case request.FieldReview:
		return m.OldReview(ctx)
	case request.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case request.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Request field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case request.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case request.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case request.FieldUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUser(v)
		return nil
	case request.FieldRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case request.FieldRequestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestType(v)
		return nil
	case request.FieldStatus:
		v, ok := value.(request.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case request.FieldFlow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlow(v)
		return nil
	case request.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case request.FieldDb:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDb(v)
		return nil
	case request.FieldErr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErr(v)
		return nil
	case request.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case request.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case request.FieldAssumptions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssumptions(v)
		return nil
	case request.FieldIntro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntro(v)
		return nil
	case request.FieldOutro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutro(v)
		return nil
	case request.FieldSQL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSQL(v)
		return nil
	case request.FieldRawDataLabels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawDataLabels(v)
		return nil
	case request.FieldRawData:
		v, ok := value.([][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawData(v)
		return nil
	case request.FieldCsv:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCsv(v)
		return nil
	case request.FieldChart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChart(v)
		return nil
	case request.FieldChartURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartURL(v)
		return nil
	case request.FieldRefs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefs(v)
		return nil
	case request.FieldView:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetView(v)
		return nil
	case request.FieldQueryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryID(v)
		return nil
	case request.FieldLinkedSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedSessionID(v)
		return nil
	case request.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case request.FieldReview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReview(v)
		return nil
	case request.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case request.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, request.FieldSequenceNumber)
	}
	if m.addrating != nil {
		fields = append(fields, request.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case request.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case request.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case request.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case request.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown Request numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(request.FieldErr) {
		fields = append(fields, request.FieldErr)
	}
	if m.FieldCleared(request.FieldResponse) {
		fields = append(fields, request.FieldResponse)
	}
	if m.FieldCleared(request.FieldIntent) {
		fields = append(fields, request.FieldIntent)
	}
	if m.FieldCleared(request.FieldAssumptions) {
		fields = append(fields, request.FieldAssumptions)
	}
	if m.FieldCleared(request.FieldIntro) {
		fields = append(fields, request.FieldIntro)
	}
	if m.FieldCleared(request.FieldOutro) {
		fields = append(fields, request.FieldOutro)
	}
	if m.FieldCleared(request.FieldSQL) {
		fields = append(fields, request.FieldSQL)
	}
	if m.FieldCleared(request.FieldRawDataLabels) {
		fields = append(fields, request.FieldRawDataLabels)
	}
	if m.FieldCleared(request.FieldRawData) {
		fields = append(fields, request.FieldRawData)
	}
	if m.FieldCleared(request.FieldCsv) {
		fields = append(fields, request.FieldCsv)
	}
	if m.FieldCleared(request.FieldChart) {
		fields = append(fields, request.FieldChart)
	}
	if m.FieldCleared(request.FieldChartURL) {
		fields = append(fields, request.FieldChartURL)
	}
	if m.FieldCleared(request.FieldRefs) {
		fields = append(fields, request.FieldRefs)
	}
	if m.FieldCleared(request.FieldView) {
		fields = append(fields, request.FieldView)
	}
	if m.FieldCleared(request.FieldQueryID) {
		fields = append(fields, request.FieldQueryID)
	}
	if m.FieldCleared(request.FieldLinkedSessionID) {
		fields = append(fields, request.FieldLinkedSessionID)
	}
	if m.FieldCleared(request.FieldRating) {
		fields = append(fields, request.FieldRating)
	}
	if m.FieldCleared(request.FieldReview) {
		fields = append(fields, request.FieldReview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestMutation) ClearField(name string) error {
	switch name {
	case request.FieldErr:
		m.ClearErr()
		return nil
	case request.FieldResponse:
		m.ClearResponse()
		return nil
	case request.FieldIntent:
		m.ClearIntent()
		return nil
	case request.FieldAssumptions:
		m.ClearAssumptions()
		return nil
	case request.FieldIntro:
		m.ClearIntro()
		return nil
	case request.FieldOutro:
		m.ClearOutro()
		return nil
	case request.FieldSQL:
		m.ClearSQL()
		return nil
	case request.FieldRawDataLabels:
		m.ClearRawDataLabels()
		return nil
	case request.FieldRawData:
		m.ClearRawData()
		return nil
	case request.FieldCsv:
		m.ClearCsv()
		return nil
	case request.FieldChart:
		m.ClearChart()
		return nil
	case request.FieldChartURL:
		m.ClearChartURL()
		return nil
	case request.FieldRefs:
		m.ClearRefs()
		return nil
	case request.FieldView:
		m.ClearView()
		return nil
	case request.FieldQueryID:
		m.ClearQueryID()
		return nil
	case request.FieldLinkedSessionID:
		m.ClearLinkedSessionID()
		return nil
	case request.FieldRating:
		m.ClearRating()
		return nil
	case request.FieldReview:
		m.ClearReview()
		return nil
	}
	return fmt.Errorf("unknown Request nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestMutation) ResetField(name string) error {
	switch name {
	case request.FieldSessionID:
		m.ResetSessionID()
		return nil
	case request.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case request.FieldUser:
		m.ResetUser()
		return nil
	case request.FieldRequest:
		m.ResetRequest()
		return nil
	case request.FieldRequestType:
		m.ResetRequestType()
		return nil
	case request.FieldStatus:
		m.ResetStatus()
		return nil
	case request.FieldFlow:
		m.ResetFlow()
		return nil
	case request.FieldModel:
		m.ResetModel()
		return nil
	case request.FieldDb:
		m.ResetDb()
		return nil
	case request.FieldErr:
		m.ResetErr()
		return nil
	case request.FieldResponse:
		m.ResetResponse()
		return nil
	case request.FieldIntent:
		m.ResetIntent()
		return nil
	case request.FieldAssumptions:
		m.ResetAssumptions()
		return nil
	case request.FieldIntro:
		m.ResetIntro()
		return nil
	case request.FieldOutro:
		m.ResetOutro()
		return nil
	case request.FieldSQL:
		m.ResetSQL()
		return nil
	case request.FieldRawDataLabels:
		m.ResetRawDataLabels()
		return nil
	case request.FieldRawData:
		m.ResetRawData()
		return nil
	case request.FieldCsv:
		m.ResetCsv()
		return nil
	case request.FieldChart:
		m.ResetChart()
		return nil
	case request.FieldChartURL:
		m.ResetChartURL()
		return nil
	case request.FieldRefs:
		m.ResetRefs()
		return nil
	case request.FieldView:
		m.ResetView()
		return nil
	case request.FieldQueryID:
		m.ResetQueryID()
		return nil
	case request.FieldLinkedSessionID:
		m.ResetLinkedSessionID()
		return nil
	case request.FieldRating:
		m.ResetRating()
		return nil
	case request.FieldReview:
		m.ResetReview()
		return nil
	case request.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case request.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, request.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, request.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestMutation) EdgeCleared(name string) bool {
	switch name {
	case request.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestMutation) ClearEdge(name string) error {
	switch name {
	case request.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Request unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestMutation) ResetEdge(name string) error {
	switch name {
	case request.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Request edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	user            *string
	name            *string
	tags            *string
	parent_id       *uuid.UUID
	metadata        *map[string]interface{}
	refs            *map[string]interface{}
	version         *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	requests        map[uuid.UUID]struct{}
	removedrequests map[uuid.UUID]struct{}
	clearedrequests bool
	queries         map[uuid.UUID]struct{}
	removedqueries  map[uuid.UUID]struct{}
	clearedqueries  bool
	done            bool
	oldValue        func(context.Context) (*Session, error)
	predicates      []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id uuid.UUID) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUser sets the "user" field.
func (m *SessionMutation) SetUser(s string) {
	m.user = &s
}

// User returns the value of the "user" field in the mutation.
func (m *SessionMutation) User() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUser returns the old "user" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUser: %w", err)
	}
	return oldValue.User, nil
}

// ResetUser resets all changes to the "user" field.
func (m *SessionMutation) ResetUser() {
	m.user = nil
}

// SetName sets the "name" field.
func (m *SessionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SessionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *SessionMutation) ClearName() {
	m.name = nil
	m.clearedFields[session.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *SessionMutation) NameCleared() bool {
	_, ok := m.clearedFields[session.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *SessionMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, session.FieldName)
}

// SetTags sets the "tags" field.
func (m *SessionMutation) SetTags(s string) {
	m.tags = &s
}

// Tags returns the value of the "tags" field in the mutation.
func (m *SessionMutation) Tags() (r string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTags(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// ClearTags clears the value of the "tags" field.
func (m *SessionMutation) ClearTags() {
	m.tags = nil
	m.clearedFields[session.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *SessionMutation) TagsCleared() bool {
	_, ok := m.clearedFields[session.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *SessionMutation) ResetTags() {
	m.tags = nil
	delete(m.clearedFields, session.FieldTags)
}

// SetParentID sets the "parent_id" field.
func (m *SessionMutation) SetParentID(u uuid.UUID) {
	m.parent_id = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *SessionMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldParentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *SessionMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[session.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *SessionMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[session.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *SessionMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, session.FieldParentID)
}

// SetMetadata sets the "metadata" field.
func (m *SessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[session.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[session.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, session.FieldMetadata)
}

// SetRefs sets the "refs" field.
func (m *SessionMutation) SetRefs(value map[string]interface{}) {
	m.refs = &value
}

// Refs returns the value of the "refs" field in the mutation.
func (m *SessionMutation) Refs() (r map[string]interface{}, exists bool) {
	v := m.refs
	if v == nil {
		return
	}
	return *v, true
}

// OldRefs returns the old "refs" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRefs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefs: %w", err)
	}
	return oldValue.Refs, nil
}

// ClearRefs clears the value of the "refs" field.
func (m *SessionMutation) ClearRefs() {
	m.refs = nil
	m.clearedFields[session.FieldRefs] = struct{}{}
}

// RefsCleared returns if the "refs" field was cleared in this mutation.
func (m *SessionMutation) RefsCleared() bool {
	_, ok := m.clearedFields[session.FieldRefs]
	return ok
}

// ResetRefs resets all changes to the "refs" field.
func (m *SessionMutation) ResetRefs() {
	m.refs = nil
	delete(m.clearedFields, session.FieldRefs)
}

// SetVersion sets the "version" field.
func (m *SessionMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *SessionMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ClearVersion clears the value of the "version" field.
func (m *SessionMutation) ClearVersion() {
	m.version = nil
	m.clearedFields[session.FieldVersion] = struct{}{}
}

// VersionCleared returns if the "version" field was cleared in this mutation.
func (m *SessionMutation) VersionCleared() bool {
	_, ok := m.clearedFields[session.FieldVersion]
	return ok
}

// ResetVersion resets all changes to the "version" field.
func (m *SessionMutation) ResetVersion() {
	m.version = nil
	delete(m.clearedFields, session.FieldVersion)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRequestIDs adds the "requests" edge to the Request entity by ids.
func (m *SessionMutation) AddRequestIDs(ids ...uuid.UUID) {
	if m.requests == nil {
		m.requests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.requests[ids[i]] = struct{}{}
	}
}

// ClearRequests clears the "requests" edge to the Request entity.
func (m *SessionMutation) ClearRequests() {
	m.clearedrequests = true
}

// RequestsCleared reports if the "requests" edge to the Request entity was cleared.
func (m *SessionMutation) RequestsCleared() bool {
	return m.clearedrequests
}

// RemoveRequestIDs removes the "requests" edge to the Request entity by IDs.
func (m *SessionMutation) RemoveRequestIDs(ids ...uuid.UUID) {
	if m.removedrequests == nil {
		m.removedrequests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.requests, ids[i])
		m.removedrequests[ids[i]] = struct{}{}
	}
}

// RemovedRequests returns the removed IDs of the "requests" edge to the Request entity.
func (m *SessionMutation) RemovedRequestsIDs() (ids []uuid.UUID) {
	for id := range m.removedrequests {
		ids = append(ids, id)
	}
	return
}

// RequestsIDs returns the "requests" edge IDs in the mutation.
func (m *SessionMutation) RequestsIDs() (ids []uuid.UUID) {
	for id := range m.requests {
		ids = append(ids, id)
	}
	return
}

// ResetRequests resets all changes to the "requests" edge.
func (m *SessionMutation) ResetRequests() {
	m.requests = nil
	m.clearedrequests = false
	m.removedrequests = nil
}

// AddQueryIDs adds the "queries" edge to the QueryRecord entity by ids.
func (m *SessionMutation) AddQueryIDs(ids ...uuid.UUID) {
	if m.queries == nil {
		m.queries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.queries[ids[i]] = struct{}{}
	}
}

// ClearQueries clears the "queries" edge to the QueryRecord entity.
func (m *SessionMutation) ClearQueries() {
	m.clearedqueries = true
}

// QueriesCleared reports if the "queries" edge to the QueryRecord entity was cleared.
func (m *SessionMutation) QueriesCleared() bool {
	return m.clearedqueries
}

// RemoveQueryIDs removes the "queries" edge to the QueryRecord entity by IDs.
func (m *SessionMutation) RemoveQueryIDs(ids ...uuid.UUID) {
	if m.removedqueries == nil {
		m.removedqueries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.queries, ids[i])
		m.removedqueries[ids[i]] = struct{}{}
	}
}

// RemovedQueries returns the removed IDs of the "queries" edge to the QueryRecord entity.
func (m *SessionMutation) RemovedQueriesIDs() (ids []uuid.UUID) {
	for id := range m.removedqueries {
		ids = append(ids, id)
	}
	return
}

// QueriesIDs returns the "queries" edge IDs in the mutation.
func (m *SessionMutation) QueriesIDs() (ids []uuid.UUID) {
	for id := range m.queries {
		ids = append(ids, id)
	}
	return
}

// ResetQueries resets all changes to the "queries" edge.
func (m *SessionMutation) ResetQueries() {
	m.queries = nil
	m.clearedqueries = false
	m.removedqueries = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, session.FieldUser)
	}
	if m.name != nil {
		fields = append(fields, session.FieldName)
	}
	if m.tags != nil {
		fields = append(fields, session.FieldTags)
	}
	if m.parent_id != nil {
		fields = append(fields, session.FieldParentID)
	}
	if m.metadata != nil {
		fields = append(fields, session.FieldMetadata)
	}
	if m.refs != nil {
		fields = append(fields, session.FieldRefs)
	}
	if m.version != nil {
		fields = append(fields, session.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUser:
		return m.User()
	case session.FieldName:
		return m.Name()
	case session.FieldTags:
		return m.Tags()
	case session.FieldParentID:
		return m.ParentID()
	case session.FieldMetadata:
		return m.Metadata()
	case session.FieldRefs:
		return m.Refs()
	case session.FieldVersion:
		return m.Version()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUser:
		return m.OldUser(ctx)
	case session.FieldName:
		return m.OldName(ctx)
	case session.FieldTags:
		return m.OldTags(ctx)
	case session.FieldParentID:
		return m.OldParentID(ctx)
	case session.FieldMetadata:
		return m.OldMetadata(ctx)
	case session.FieldRefs:
		return m.OldRefs(ctx)
	case session.FieldVersion:
		return m.OldVersion(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUser(v)
		return nil
	case session.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case session.FieldTags:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case session.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case session.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case session.FieldRefs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefs(v)
		return nil
	case session.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldName) {
		fields = append(fields, session.FieldName)
	}
	if m.FieldCleared(session.FieldTags) {
		fields = append(fields, session.FieldTags)
	}
	if m.FieldCleared(session.FieldParentID) {
		fields = append(fields, session.FieldParentID)
	}
	if m.FieldCleared(session.FieldMetadata) {
		fields = append(fields, session.FieldMetadata)
	}
	if m.FieldCleared(session.FieldRefs) {
		fields = append(fields, session.FieldRefs)
	}
	if m.FieldCleared(session.FieldVersion) {
		fields = append(fields, session.FieldVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldName:
		m.ClearName()
		return nil
	case session.FieldTags:
		m.ClearTags()
		return nil
	case session.FieldParentID:
		m.ClearParentID()
		return nil
	case session.FieldMetadata:
		m.ClearMetadata()
		return nil
	case session.FieldRefs:
		m.ClearRefs()
		return nil
	case session.FieldVersion:
		m.ClearVersion()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUser:
		m.ResetUser()
		return nil
	case session.FieldName:
		m.ResetName()
		return nil
	case session.FieldTags:
		m.ResetTags()
		return nil
	case session.FieldParentID:
		m.ResetParentID()
		return nil
	case session.FieldMetadata:
		m.ResetMetadata()
		return nil
	case session.FieldRefs:
		m.ResetRefs()
		return nil
	case session.FieldVersion:
		m.ResetVersion()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.requests != nil {
		edges = append(edges, session.EdgeRequests)
	}
	if m.queries != nil {
		edges = append(edges, session.EdgeQueries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeRequests:
		ids := make([]ent.Value, 0, len(m.requests))
		for id := range m.requests {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.queries))
		for id := range m.queries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrequests != nil {
		edges = append(edges, session.EdgeRequests)
	}
	if m.removedqueries != nil {
		edges = append(edges, session.EdgeQueries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeRequests:
		ids := make([]ent.Value, 0, len(m.removedrequests))
		for id := range m.removedrequests {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.removedqueries))
		for id := range m.removedqueries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrequests {
		edges = append(edges, session.EdgeRequests)
	}
	if m.clearedqueries {
		edges = append(edges, session.EdgeQueries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeRequests:
		return m.clearedrequests
	case session.EdgeQueries:
		return m.clearedqueries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeRequests:
		m.ResetRequests()
		return nil
	case session.EdgeQueries:
		m.ResetQueries()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	payload        *map[string]interface{}
	status         *task.Status
	pod_id         *string
	claimed_at     *time.Time
	last_heartbeat *time.Time
	attempts       *int
	addattempts    *int
	error          *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Task, error)
	predicates     []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id uuid.UUID) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetPayload sets the "payload" field.
func (m *TaskMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *TaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *TaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *TaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[task.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *TaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *TaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, task.FieldClaimedAt)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *TaskMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *TaskMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *TaskMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[task.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *TaskMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, task.FieldLastHeartbeat)
}

// SetAttempts sets the "attempts" field.
func (m *TaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetError sets the "error" field.
func (m *TaskMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskMutation) ClearError() {
	m.error = nil
	m.clearedFields[task.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, task.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.payload != nil {
		fields = append(fields, task.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.claimed_at != nil {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, task.FieldLastHeartbeat)
	}
	if m.attempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.error != nil {
		fields = append(fields, task.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldName:
		return m.Name()
	case task.FieldPayload:
		return m.Payload()
	case task.FieldStatus:
		return m.Status()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldClaimedAt:
		return m.ClaimedAt()
	case task.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case task.FieldAttempts:
		return m.Attempts()
	case task.FieldError:
		return m.Error()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldPayload:
		return m.OldPayload(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case task.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case task.FieldAttempts:
		return m.OldAttempts(ctx)
	case task.FieldError:
		return m.OldError(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case task.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case task.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldClaimedAt) {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.FieldCleared(task.FieldLastHeartbeat) {
		fields = append(fields, task.FieldLastHeartbeat)
	}
	if m.FieldCleared(task.FieldError) {
		fields = append(fields, task.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case task.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case task.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldPayload:
		m.ResetPayload()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case task.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case task.FieldAttempts:
		m.ResetAttempts()
		return nil
	case task.FieldError:
		m.ResetError()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

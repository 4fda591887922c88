// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/apegpt/queryflow/ent/predicate"
	"github.com/apegpt/queryflow/ent/queryrecord"
	"github.com/google/uuid"
)

// QueryRecordUpdate is the builder for updating QueryRecord entities.
type QueryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *QueryRecordMutation
}

// Where appends a list predicates to the QueryRecordUpdate builder.
func (_u *QueryRecordUpdate) Where(ps ...predicate.QueryRecord) *QueryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *QueryRecordUpdate) SetParentID(v uuid.UUID) *QueryRecordUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableParentID(v *uuid.UUID) *QueryRecordUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *QueryRecordUpdate) ClearParentID() *QueryRecordUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetUser sets the "user" field.
func (_u *QueryRecordUpdate) SetUser(v string) *QueryRecordUpdate {
	_u.mutation.SetUser(v)
	return _u
}

// SetNillableUser sets the "user" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableUser(v *string) *QueryRecordUpdate {
	if v != nil {
		_u.SetUser(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *QueryRecordUpdate) SetRequest(v string) *QueryRecordUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableRequest(v *string) *QueryRecordUpdate {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetSQL sets the "sql" field.
func (_u *QueryRecordUpdate) SetSQL(v string) *QueryRecordUpdate {
	_u.mutation.SetSQL(v)
	return _u
}

// SetNillableSQL sets the "sql" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableSQL(v *string) *QueryRecordUpdate {
	if v != nil {
		_u.SetSQL(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *QueryRecordUpdate) SetSummary(v string) *QueryRecordUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableSummary(v *string) *QueryRecordUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *QueryRecordUpdate) ClearSummary() *QueryRecordUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetDescription sets the "description" field.
func (_u *QueryRecordUpdate) SetDescription(v string) *QueryRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableDescription(v *string) *QueryRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *QueryRecordUpdate) ClearDescription() *QueryRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetColumns sets the "columns" field.
func (_u *QueryRecordUpdate) SetColumns(v []map[string]interface{}) *QueryRecordUpdate {
	_u.mutation.SetColumns(v)
	return _u
}

// AppendColumns appends value to the "columns" field.
func (_u *QueryRecordUpdate) AppendColumns(v []map[string]interface{}) *QueryRecordUpdate {
	_u.mutation.AppendColumns(v)
	return _u
}

// ClearColumns clears the value of the "columns" field.
func (_u *QueryRecordUpdate) ClearColumns() *QueryRecordUpdate {
	_u.mutation.ClearColumns()
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *QueryRecordUpdate) SetRowCount(v int64) *QueryRecordUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableRowCount(v *int64) *QueryRecordUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *QueryRecordUpdate) AddRowCount(v int64) *QueryRecordUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// ClearRowCount clears the value of the "row_count" field.
func (_u *QueryRecordUpdate) ClearRowCount() *QueryRecordUpdate {
	_u.mutation.ClearRowCount()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QueryRecordUpdate) SetExplanation(v map[string]interface{}) *QueryRecordUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QueryRecordUpdate) ClearExplanation() *QueryRecordUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetParents sets the "parents" field.
func (_u *QueryRecordUpdate) SetParents(v []string) *QueryRecordUpdate {
	_u.mutation.SetParents(v)
	return _u
}

// AppendParents appends value to the "parents" field.
func (_u *QueryRecordUpdate) AppendParents(v []string) *QueryRecordUpdate {
	_u.mutation.AppendParents(v)
	return _u
}

// ClearParents clears the value of the "parents" field.
func (_u *QueryRecordUpdate) ClearParents() *QueryRecordUpdate {
	_u.mutation.ClearParents()
	return _u
}

// SetTags sets the "tags" field.
func (_u *QueryRecordUpdate) SetTags(v string) *QueryRecordUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableTags(v *string) *QueryRecordUpdate {
	if v != nil {
		_u.SetTags(*v)
	}
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *QueryRecordUpdate) ClearTags() *QueryRecordUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetVersion sets the "version" field.
func (_u *QueryRecordUpdate) SetVersion(v string) *QueryRecordUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *QueryRecordUpdate) SetNillableVersion(v *string) *QueryRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *QueryRecordUpdate) ClearVersion() *QueryRecordUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// SetView sets the "view" field.
func (_u *QueryRecordUpdate) SetView(v map[string]interface{}) *QueryRecordUpdate {
	_u.mutation.SetView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *QueryRecordUpdate) ClearView() *QueryRecordUpdate {
	_u.mutation.ClearView()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueryRecordUpdate) SetUpdatedAt(v time.Time) *QueryRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueryRecordMutation object of the builder.
func (_u *QueryRecordUpdate) Mutation() *QueryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueryRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueryRecordUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QueryRecord.session"`)
	}
	return nil
}

func (_u *QueryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queryrecord.Table, queryrecord.Columns, sqlgraph.NewFieldSpec(queryrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(queryrecord.FieldParentID, field.TypeUUID, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(queryrecord.FieldParentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.User(); ok {
		_spec.SetField(queryrecord.FieldUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(queryrecord.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.SQL(); ok {
		_spec.SetField(queryrecord.FieldSQL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(queryrecord.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(queryrecord.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(queryrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(queryrecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Columns(); ok {
		_spec.SetField(queryrecord.FieldColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryrecord.FieldColumns, value)
		})
	}
	if _u.mutation.ColumnsCleared() {
		_spec.ClearField(queryrecord.FieldColumns, field.TypeJSON)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(queryrecord.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(queryrecord.FieldRowCount, field.TypeInt64, value)
	}
	if _u.mutation.RowCountCleared() {
		_spec.ClearField(queryrecord.FieldRowCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(queryrecord.FieldExplanation, field.TypeJSON, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(queryrecord.FieldExplanation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Parents(); ok {
		_spec.SetField(queryrecord.FieldParents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryrecord.FieldParents, value)
		})
	}
	if _u.mutation.ParentsCleared() {
		_spec.ClearField(queryrecord.FieldParents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(queryrecord.FieldTags, field.TypeString, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(queryrecord.FieldTags, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(queryrecord.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(queryrecord.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(queryrecord.FieldView, field.TypeJSON, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(queryrecord.FieldView, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryRecordUpdateOne is the builder for updating a single QueryRecord entity.
type QueryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryRecordMutation
}

// SetParentID sets the "parent_id" field.
func (_u *QueryRecordUpdateOne) SetParentID(v uuid.UUID) *QueryRecordUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableParentID(v *uuid.UUID) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *QueryRecordUpdateOne) ClearParentID() *QueryRecordUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetUser sets the "user" field.
func (_u *QueryRecordUpdateOne) SetUser(v string) *QueryRecordUpdateOne {
	_u.mutation.SetUser(v)
	return _u
}

// SetNillableUser sets the "user" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableUser(v *string) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetUser(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *QueryRecordUpdateOne) SetRequest(v string) *QueryRecordUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableRequest(v *string) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetSQL sets the "sql" field.
func (_u *QueryRecordUpdateOne) SetSQL(v string) *QueryRecordUpdateOne {
	_u.mutation.SetSQL(v)
	return _u
}

// SetNillableSQL sets the "sql" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableSQL(v *string) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetSQL(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *QueryRecordUpdateOne) SetSummary(v string) *QueryRecordUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableSummary(v *string) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *QueryRecordUpdateOne) ClearSummary() *QueryRecordUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetDescription sets the "description" field.
func (_u *QueryRecordUpdateOne) SetDescription(v string) *QueryRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableDescription(v *string) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *QueryRecordUpdateOne) ClearDescription() *QueryRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetColumns sets the "columns" field.
func (_u *QueryRecordUpdateOne) SetColumns(v []map[string]interface{}) *QueryRecordUpdateOne {
	_u.mutation.SetColumns(v)
	return _u
}

// AppendColumns appends value to the "columns" field.
func (_u *QueryRecordUpdateOne) AppendColumns(v []map[string]interface{}) *QueryRecordUpdateOne {
	_u.mutation.AppendColumns(v)
	return _u
}

// ClearColumns clears the value of the "columns" field.
func (_u *QueryRecordUpdateOne) ClearColumns() *QueryRecordUpdateOne {
	_u.mutation.ClearColumns()
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *QueryRecordUpdateOne) SetRowCount(v int64) *QueryRecordUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableRowCount(v *int64) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *QueryRecordUpdateOne) AddRowCount(v int64) *QueryRecordUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// ClearRowCount clears the value of the "row_count" field.
func (_u *QueryRecordUpdateOne) ClearRowCount() *QueryRecordUpdateOne {
	_u.mutation.ClearRowCount()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QueryRecordUpdateOne) SetExplanation(v map[string]interface{}) *QueryRecordUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QueryRecordUpdateOne) ClearExplanation() *QueryRecordUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetParents sets the "parents" field.
func (_u *QueryRecordUpdateOne) SetParents(v []string) *QueryRecordUpdateOne {
	_u.mutation.SetParents(v)
	return _u
}

// AppendParents appends value to the "parents" field.
func (_u *QueryRecordUpdateOne) AppendParents(v []string) *QueryRecordUpdateOne {
	_u.mutation.AppendParents(v)
	return _u
}

// ClearParents clears the value of the "parents" field.
func (_u *QueryRecordUpdateOne) ClearParents() *QueryRecordUpdateOne {
	_u.mutation.ClearParents()
	return _u
}

// SetTags sets the "tags" field.
func (_u *QueryRecordUpdateOne) SetTags(v string) *QueryRecordUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableTags(v *string) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetTags(*v)
	}
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *QueryRecordUpdateOne) ClearTags() *QueryRecordUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetVersion sets the "version" field.
func (_u *QueryRecordUpdateOne) SetVersion(v string) *QueryRecordUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *QueryRecordUpdateOne) SetNillableVersion(v *string) *QueryRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *QueryRecordUpdateOne) ClearVersion() *QueryRecordUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// SetView sets the "view" field.
func (_u *QueryRecordUpdateOne) SetView(v map[string]interface{}) *QueryRecordUpdateOne {
	_u.mutation.SetView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *QueryRecordUpdateOne) ClearView() *QueryRecordUpdateOne {
	_u.mutation.ClearView()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueryRecordUpdateOne) SetUpdatedAt(v time.Time) *QueryRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueryRecordMutation object of the builder.
func (_u *QueryRecordUpdateOne) Mutation() *QueryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryRecordUpdate builder.
func (_u *QueryRecordUpdateOne) Where(ps ...predicate.QueryRecord) *QueryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryRecordUpdateOne) Select(field string, fields ...string) *QueryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryRecord entity.
func (_u *QueryRecordUpdateOne) Save(ctx context.Context) (*QueryRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryRecordUpdateOne) SaveX(ctx context.Context) *QueryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueryRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueryRecordUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QueryRecord.session"`)
	}
	return nil
}

func (_u *QueryRecordUpdateOne) sqlSave(ctx context.Context) (_node *QueryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queryrecord.Table, queryrecord.Columns, sqlgraph.NewFieldSpec(queryrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queryrecord.FieldID)
		for _, f := range fields {
			if !queryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(queryrecord.FieldParentID, field.TypeUUID, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(queryrecord.FieldParentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.User(); ok {
		_spec.SetField(queryrecord.FieldUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(queryrecord.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.SQL(); ok {
		_spec.SetField(queryrecord.FieldSQL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(queryrecord.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(queryrecord.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(queryrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(queryrecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Columns(); ok {
		_spec.SetField(queryrecord.FieldColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryrecord.FieldColumns, value)
		})
	}
	if _u.mutation.ColumnsCleared() {
		_spec.ClearField(queryrecord.FieldColumns, field.TypeJSON)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(queryrecord.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(queryrecord.FieldRowCount, field.TypeInt64, value)
	}
	if _u.mutation.RowCountCleared() {
		_spec.ClearField(queryrecord.FieldRowCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(queryrecord.FieldExplanation, field.TypeJSON, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(queryrecord.FieldExplanation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Parents(); ok {
		_spec.SetField(queryrecord.FieldParents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queryrecord.FieldParents, value)
		})
	}
	if _u.mutation.ParentsCleared() {
		_spec.ClearField(queryrecord.FieldParents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(queryrecord.FieldTags, field.TypeString, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(queryrecord.FieldTags, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(queryrecord.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(queryrecord.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(queryrecord.FieldView, field.TypeJSON, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(queryrecord.FieldView, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

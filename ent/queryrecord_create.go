// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apegpt/queryflow/ent/queryrecord"
	"github.com/apegpt/queryflow/ent/session"
	"github.com/google/uuid"
)

// QueryRecordCreate is the builder for creating a QueryRecord entity.
type QueryRecordCreate struct {
	config
	mutation *QueryRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QueryRecordCreate) SetSessionID(v uuid.UUID) *QueryRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *QueryRecordCreate) SetRequestID(v uuid.UUID) *QueryRecordCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *QueryRecordCreate) SetParentID(v uuid.UUID) *QueryRecordCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableParentID(v *uuid.UUID) *QueryRecordCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetUser sets the "user" field.
func (_c *QueryRecordCreate) SetUser(v string) *QueryRecordCreate {
	_c.mutation.SetUser(v)
	return _c
}

// SetRequest sets the "request" field.
func (_c *QueryRecordCreate) SetRequest(v string) *QueryRecordCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetSQL sets the "sql" field.
func (_c *QueryRecordCreate) SetSQL(v string) *QueryRecordCreate {
	_c.mutation.SetSQL(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *QueryRecordCreate) SetSummary(v string) *QueryRecordCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableSummary(v *string) *QueryRecordCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *QueryRecordCreate) SetDescription(v string) *QueryRecordCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableDescription(v *string) *QueryRecordCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetColumns sets the "columns" field.
func (_c *QueryRecordCreate) SetColumns(v []map[string]interface{}) *QueryRecordCreate {
	_c.mutation.SetColumns(v)
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *QueryRecordCreate) SetRowCount(v int64) *QueryRecordCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableRowCount(v *int64) *QueryRecordCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QueryRecordCreate) SetExplanation(v map[string]interface{}) *QueryRecordCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetParents sets the "parents" field.
func (_c *QueryRecordCreate) SetParents(v []string) *QueryRecordCreate {
	_c.mutation.SetParents(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *QueryRecordCreate) SetTags(v string) *QueryRecordCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableTags(v *string) *QueryRecordCreate {
	if v != nil {
		_c.SetTags(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *QueryRecordCreate) SetVersion(v string) *QueryRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableVersion(v *string) *QueryRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetView sets the "view" field.
func (_c *QueryRecordCreate) SetView(v map[string]interface{}) *QueryRecordCreate {
	_c.mutation.SetView(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueryRecordCreate) SetCreatedAt(v time.Time) *QueryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableCreatedAt(v *time.Time) *QueryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueryRecordCreate) SetUpdatedAt(v time.Time) *QueryRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableUpdatedAt(v *time.Time) *QueryRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueryRecordCreate) SetID(v uuid.UUID) *QueryRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QueryRecordCreate) SetNillableID(v *uuid.UUID) *QueryRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *QueryRecordCreate) SetSession(v *Session) *QueryRecordCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the QueryRecordMutation object of the builder.
func (_c *QueryRecordCreate) Mutation() *QueryRecordMutation {
	return _c.mutation
}

// Save creates the QueryRecord in the database.
func (_c *QueryRecordCreate) Save(ctx context.Context) (*QueryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryRecordCreate) SaveX(ctx context.Context) *QueryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queryrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queryrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := queryrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QueryRecord.session_id"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "QueryRecord.request_id"`)}
	}
	if _, ok := _c.mutation.User(); !ok {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required field "QueryRecord.user"`)}
	}
	if _, ok := _c.mutation.Request(); !ok {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required field "QueryRecord.request"`)}
	}
	if _, ok := _c.mutation.SQL(); !ok {
		return &ValidationError{Name: "sql", err: errors.New(`ent: missing required field "QueryRecord.sql"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueryRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueryRecord.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "QueryRecord.session"`)}
	}
	return nil
}

func (_c *QueryRecordCreate) sqlSave(ctx context.Context) (*QueryRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueryRecordCreate) createSpec() (*QueryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queryrecord.Table, sqlgraph.NewFieldSpec(queryrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(queryrecord.FieldRequestID, field.TypeUUID, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(queryrecord.FieldParentID, field.TypeUUID, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.User(); ok {
		_spec.SetField(queryrecord.FieldUser, field.TypeString, value)
		_node.User = value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(queryrecord.FieldRequest, field.TypeString, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.SQL(); ok {
		_spec.SetField(queryrecord.FieldSQL, field.TypeString, value)
		_node.SQL = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(queryrecord.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(queryrecord.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Columns(); ok {
		_spec.SetField(queryrecord.FieldColumns, field.TypeJSON, value)
		_node.Columns = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(queryrecord.FieldRowCount, field.TypeInt64, value)
		_node.RowCount = &value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(queryrecord.FieldExplanation, field.TypeJSON, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Parents(); ok {
		_spec.SetField(queryrecord.FieldParents, field.TypeJSON, value)
		_node.Parents = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(queryrecord.FieldTags, field.TypeString, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(queryrecord.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.View(); ok {
		_spec.SetField(queryrecord.FieldView, field.TypeJSON, value)
		_node.View = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queryrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queryrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queryrecord.SessionTable,
			Columns: []string{queryrecord.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QueryRecordCreateBulk is the builder for creating many QueryRecord entities in bulk.
type QueryRecordCreateBulk struct {
	config
	err      error
	builders []*QueryRecordCreate
}

// Save creates the QueryRecord entities in the database.
func (_c *QueryRecordCreateBulk) Save(ctx context.Context) ([]*QueryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QueryRecordCreateBulk) SaveX(ctx context.Context) []*QueryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

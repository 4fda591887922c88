// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apegpt/queryflow/ent/request"
	"github.com/apegpt/queryflow/ent/session"
	"github.com/google/uuid"
)

// RequestCreate is the builder for creating a Request entity.
type RequestCreate struct {
	config
	mutation *RequestMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *RequestCreate) SetSessionID(v uuid.UUID) *RequestCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *RequestCreate) SetSequenceNumber(v int) *RequestCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetUser sets the "user" field.
func (_c *RequestCreate) SetUser(v string) *RequestCreate {
	_c.mutation.SetUser(v)
	return _c
}

// SetRequest sets the "request" field.
func (_c *RequestCreate) SetRequest(v string) *RequestCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetRequestType sets the "request_type" field.
func (_c *RequestCreate) SetRequestType(v string) *RequestCreate {
	_c.mutation.SetRequestType(v)
	return _c
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_c *RequestCreate) SetNillableRequestType(v *string) *RequestCreate {
	if v != nil {
		_c.SetRequestType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequestCreate) SetStatus(v request.Status) *RequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequestCreate) SetNillableStatus(v *request.Status) *RequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFlow sets the "flow" field.
func (_c *RequestCreate) SetFlow(v string) *RequestCreate {
	_c.mutation.SetFlow(v)
	return _c
}

// SetNillableFlow sets the "flow" field if the given value is not nil.
func (_c *RequestCreate) SetNillableFlow(v *string) *RequestCreate {
	if v != nil {
		_c.SetFlow(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *RequestCreate) SetModel(v string) *RequestCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *RequestCreate) SetNillableModel(v *string) *RequestCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetDb sets the "db" field.
func (_c *RequestCreate) SetDb(v string) *RequestCreate {
	_c.mutation.SetDb(v)
	return _c
}

// SetNillableDb sets the "db" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDb(v *string) *RequestCreate {
	if v != nil {
		_c.SetDb(*v)
	}
	return _c
}

// SetErr sets the "err" field.
func (_c *RequestCreate) SetErr(v string) *RequestCreate {
	_c.mutation.SetErr(v)
	return _c
}

// SetNillableErr sets the "err" field if the given value is not nil.
func (_c *RequestCreate) SetNillableErr(v *string) *RequestCreate {
	if v != nil {
		_c.SetErr(*v)
	}
	return _c
}

// SetResponse sets the "response" field.
func (_c *RequestCreate) SetResponse(v string) *RequestCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *RequestCreate) SetNillableResponse(v *string) *RequestCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// SetIntent sets the "intent" field.
func (_c *RequestCreate) SetIntent(v string) *RequestCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *RequestCreate) SetNillableIntent(v *string) *RequestCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetAssumptions sets the "assumptions" field.
func (_c *RequestCreate) SetAssumptions(v string) *RequestCreate {
	_c.mutation.SetAssumptions(v)
	return _c
}

// SetNillableAssumptions sets the "assumptions" field if the given value is not nil.
func (_c *RequestCreate) SetNillableAssumptions(v *string) *RequestCreate {
	if v != nil {
		_c.SetAssumptions(*v)
	}
	return _c
}

// SetIntro sets the "intro" field.
func (_c *RequestCreate) SetIntro(v string) *RequestCreate {
	_c.mutation.SetIntro(v)
	return _c
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_c *RequestCreate) SetNillableIntro(v *string) *RequestCreate {
	if v != nil {
		_c.SetIntro(*v)
	}
	return _c
}

// SetOutro sets the "outro" field.
func (_c *RequestCreate) SetOutro(v string) *RequestCreate {
	_c.mutation.SetOutro(v)
	return _c
}

// SetNillableOutro sets the "outro" field if the given value is not nil.
func (_c *RequestCreate) SetNillableOutro(v *string) *RequestCreate {
	if v != nil {
		_c.SetOutro(*v)
	}
	return _c
}

// SetSQL sets the "sql" field.
func (_c *RequestCreate) SetSQL(v string) *RequestCreate {
	_c.mutation.SetSQL(v)
	return _c
}

// SetNillableSQL sets the "sql" field if the given value is not nil.
func (_c *RequestCreate) SetNillableSQL(v *string) *RequestCreate {
	if v != nil {
		_c.SetSQL(*v)
	}
	return _c
}

// SetRawDataLabels sets the "raw_data_labels" field.
func (_c *RequestCreate) SetRawDataLabels(v []string) *RequestCreate {
	_c.mutation.SetRawDataLabels(v)
	return _c
}

// SetRawData sets the "raw_data" field.
func (_c *RequestCreate) SetRawData(v [][]string) *RequestCreate {
	_c.mutation.SetRawData(v)
	return _c
}

// SetCsv sets the "csv" field.
func (_c *RequestCreate) SetCsv(v string) *RequestCreate {
	_c.mutation.SetCsv(v)
	return _c
}

// SetNillableCsv sets the "csv" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCsv(v *string) *RequestCreate {
	if v != nil {
		_c.SetCsv(*v)
	}
	return _c
}

// SetChart sets the "chart" field.
func (_c *RequestCreate) SetChart(v string) *RequestCreate {
	_c.mutation.SetChart(v)
	return _c
}

// SetNillableChart sets the "chart" field if the given value is not nil.
func (_c *RequestCreate) SetNillableChart(v *string) *RequestCreate {
	if v != nil {
		_c.SetChart(*v)
	}
	return _c
}

// SetChartURL sets the "chart_url" field.
func (_c *RequestCreate) SetChartURL(v string) *RequestCreate {
	_c.mutation.SetChartURL(v)
	return _c
}

// SetNillableChartURL sets the "chart_url" field if the given value is not nil.
func (_c *RequestCreate) SetNillableChartURL(v *string) *RequestCreate {
	if v != nil {
		_c.SetChartURL(*v)
	}
	return _c
}

// SetRefs sets the "refs" field.
func (_c *RequestCreate) SetRefs(v map[string]interface{}) *RequestCreate {
	_c.mutation.SetRefs(v)
	return _c
}

// SetView sets the "view" field.
func (_c *RequestCreate) SetView(v map[string]interface{}) *RequestCreate {
	_c.mutation.SetView(v)
	return _c
}

// SetQueryID sets the "query_id" field.
func (_c *RequestCreate) SetQueryID(v uuid.UUID) *RequestCreate {
	_c.mutation.SetQueryID(v)
	return _c
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableQueryID(v *uuid.UUID) *RequestCreate {
	if v != nil {
		_c.SetQueryID(*v)
	}
	return _c
}

// SetLinkedSessionID sets the "linked_session_id" field.
func (_c *RequestCreate) SetLinkedSessionID(v uuid.UUID) *RequestCreate {
	_c.mutation.SetLinkedSessionID(v)
	return _c
}

// SetNillableLinkedSessionID sets the "linked_session_id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableLinkedSessionID(v *uuid.UUID) *RequestCreate {
	if v != nil {
		_c.SetLinkedSessionID(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *RequestCreate) SetRating(v int) *RequestCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *RequestCreate) SetNillableRating(v *int) *RequestCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetReview sets the "review" field.
func (_c *RequestCreate) SetReview(v string) *RequestCreate {
	_c.mutation.SetReview(v)
	return _c
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_c *RequestCreate) SetNillableReview(v *string) *RequestCreate {
	if v != nil {
		_c.SetReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestCreate) SetCreatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCreatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequestCreate) SetUpdatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableUpdatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestCreate) SetID(v uuid.UUID) *RequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableID(v *uuid.UUID) *RequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *RequestCreate) SetSession(v *Session) *RequestCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the RequestMutation object of the builder.
func (_c *RequestCreate) Mutation() *RequestMutation {
	return _c.mutation
}

// Save creates the Request in the database.
func (_c *RequestCreate) Save(ctx context.Context) (*Request, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestCreate) SaveX(ctx context.Context) *Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestCreate) defaults() {
	if _, ok := _c.mutation.RequestType(); !ok {
		v := request.DefaultRequestType
		_c.mutation.SetRequestType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := request.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Flow(); !ok {
		v := request.DefaultFlow
		_c.mutation.SetFlow(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := request.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.Db(); !ok {
		v := request.DefaultDb
		_c.mutation.SetDb(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := request.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := request.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := request.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Request.session_id"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "Request.sequence_number"`)}
	}
	if _, ok := _c.mutation.User(); !ok {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required field "Request.user"`)}
	}
	if _, ok := _c.mutation.Request(); !ok {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required field "Request.request"`)}
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		return &ValidationError{Name: "request_type", err: errors.New(`ent: missing required field "Request.request_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Request.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Flow(); !ok {
		return &ValidationError{Name: "flow", err: errors.New(`ent: missing required field "Request.flow"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Request.model"`)}
	}
	if _, ok := _c.mutation.Db(); !ok {
		return &ValidationError{Name: "db", err: errors.New(`ent: missing required field "Request.db"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Request.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Request.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Request.session"`)}
	}
	return nil
}

func (_c *RequestCreate) sqlSave(ctx context.Context) (*Request, error) {
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

func (_c *RequestCreate) createSpec() (*Request, *sqlgraph.CreateSpec) {
	var (
		_node = &Request{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(request.Table, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(request.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.User(); ok {
		_spec.SetField(request.FieldUser, field.TypeString, value)
		_node.User = value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(request.FieldRequest, field.TypeString, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeString, value)
		_node.RequestType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Flow(); ok {
		_spec.SetField(request.FieldFlow, field.TypeString, value)
		_node.Flow = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(request.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Db(); ok {
		_spec.SetField(request.FieldDb, field.TypeString, value)
		_node.Db = value
	}
	if value, ok := _c.mutation.Err(); ok {
		_spec.SetField(request.FieldErr, field.TypeString, value)
		_node.Err = &value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(request.FieldResponse, field.TypeString, value)
		_node.Response = &value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(request.FieldIntent, field.TypeString, value)
		_node.Intent = &value
	}
	if value, ok := _c.mutation.Assumptions(); ok {
		_spec.SetField(request.FieldAssumptions, field.TypeString, value)
		_node.Assumptions = &value
	}
	if value, ok := _c.mutation.Intro(); ok {
		_spec.SetField(request.FieldIntro, field.TypeString, value)
		_node.Intro = &value
	}
	if value, ok := _c.mutation.Outro(); ok {
		_spec.SetField(request.FieldOutro, field.TypeString, value)
		_node.Outro = &value
	}
	if value, ok := _c.mutation.SQL(); ok {
		_spec.SetField(request.FieldSQL, field.TypeString, value)
		_node.SQL = &value
	}
	if value, ok := _c.mutation.RawDataLabels(); ok {
		_spec.SetField(request.FieldRawDataLabels, field.TypeJSON, value)
		_node.RawDataLabels = value
	}
	if value, ok := _c.mutation.RawData(); ok {
		_spec.SetField(request.FieldRawData, field.TypeJSON, value)
		_node.RawData = value
	}
	if value, ok := _c.mutation.Csv(); ok {
		_spec.SetField(request.FieldCsv, field.TypeString, value)
		_node.Csv = &value
	}
	if value, ok := _c.mutation.Chart(); ok {
		_spec.SetField(request.FieldChart, field.TypeString, value)
		_node.Chart = &value
	}
	if value, ok := _c.mutation.ChartURL(); ok {
		_spec.SetField(request.FieldChartURL, field.TypeString, value)
		_node.ChartURL = &value
	}
	if value, ok := _c.mutation.Refs(); ok {
		_spec.SetField(request.FieldRefs, field.TypeJSON, value)
		_node.Refs = value
	}
	if value, ok := _c.mutation.View(); ok {
		_spec.SetField(request.FieldView, field.TypeJSON, value)
		_node.View = value
	}
	if value, ok := _c.mutation.QueryID(); ok {
		_spec.SetField(request.FieldQueryID, field.TypeUUID, value)
		_node.QueryID = &value
	}
	if value, ok := _c.mutation.LinkedSessionID(); ok {
		_spec.SetField(request.FieldLinkedSessionID, field.TypeUUID, value)
		_node.LinkedSessionID = &value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(request.FieldRating, field.TypeInt, value)
		_node.Rating = &value
	}
	if value, ok := _c.mutation.Review(); ok {
		_spec.SetField(request.FieldReview, field.TypeString, value)
		_node.Review = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(request.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   request.SessionTable,
			Columns: []string{request.SessionColumn},
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

// RequestCreateBulk is the builder for creating many Request entities in bulk.
type RequestCreateBulk struct {
	config
	err      error
	builders []*RequestCreate
}

// Save creates the Request entities in the database.
func (_c *RequestCreateBulk) Save(ctx context.Context) ([]*Request, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Request, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestMutation)
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
func (_c *RequestCreateBulk) SaveX(ctx context.Context) []*Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

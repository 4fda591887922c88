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
	"github.com/apegpt/queryflow/ent/request"
	"github.com/google/uuid"
)

// RequestUpdate is the builder for updating Request entities.
type RequestUpdate struct {
	config
	hooks    []Hook
	mutation *RequestMutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdate) Where(ps ...predicate.Request) *RequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *RequestUpdate) SetSequenceNumber(v int) *RequestUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableSequenceNumber(v *int) *RequestUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *RequestUpdate) AddSequenceNumber(v int) *RequestUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetUser sets the "user" field.
func (_u *RequestUpdate) SetUser(v string) *RequestUpdate {
	_u.mutation.SetUser(v)
	return _u
}

// SetNillableUser sets the "user" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableUser(v *string) *RequestUpdate {
	if v != nil {
		_u.SetUser(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *RequestUpdate) SetRequest(v string) *RequestUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRequest(v *string) *RequestUpdate {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *RequestUpdate) SetRequestType(v string) *RequestUpdate {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRequestType(v *string) *RequestUpdate {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestUpdate) SetStatus(v request.Status) *RequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableStatus(v *request.Status) *RequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFlow sets the "flow" field.
func (_u *RequestUpdate) SetFlow(v string) *RequestUpdate {
	_u.mutation.SetFlow(v)
	return _u
}

// SetNillableFlow sets the "flow" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableFlow(v *string) *RequestUpdate {
	if v != nil {
		_u.SetFlow(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *RequestUpdate) SetModel(v string) *RequestUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableModel(v *string) *RequestUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetDb sets the "db" field.
func (_u *RequestUpdate) SetDb(v string) *RequestUpdate {
	_u.mutation.SetDb(v)
	return _u
}

// SetNillableDb sets the "db" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDb(v *string) *RequestUpdate {
	if v != nil {
		_u.SetDb(*v)
	}
	return _u
}

// SetErr sets the "err" field.
func (_u *RequestUpdate) SetErr(v string) *RequestUpdate {
	_u.mutation.SetErr(v)
	return _u
}

// SetNillableErr sets the "err" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableErr(v *string) *RequestUpdate {
	if v != nil {
		_u.SetErr(*v)
	}
	return _u
}

// ClearErr clears the value of the "err" field.
func (_u *RequestUpdate) ClearErr() *RequestUpdate {
	_u.mutation.ClearErr()
	return _u
}

// SetResponse sets the "response" field.
func (_u *RequestUpdate) SetResponse(v string) *RequestUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableResponse(v *string) *RequestUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *RequestUpdate) ClearResponse() *RequestUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetIntent sets the "intent" field.
func (_u *RequestUpdate) SetIntent(v string) *RequestUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableIntent(v *string) *RequestUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *RequestUpdate) ClearIntent() *RequestUpdate {
	_u.mutation.ClearIntent()
	return _u
}

// SetAssumptions sets the "assumptions" field.
func (_u *RequestUpdate) SetAssumptions(v string) *RequestUpdate {
	_u.mutation.SetAssumptions(v)
	return _u
}

// SetNillableAssumptions sets the "assumptions" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableAssumptions(v *string) *RequestUpdate {
	if v != nil {
		_u.SetAssumptions(*v)
	}
	return _u
}

// ClearAssumptions clears the value of the "assumptions" field.
func (_u *RequestUpdate) ClearAssumptions() *RequestUpdate {
	_u.mutation.ClearAssumptions()
	return _u
}

// SetIntro sets the "intro" field.
func (_u *RequestUpdate) SetIntro(v string) *RequestUpdate {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableIntro(v *string) *RequestUpdate {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *RequestUpdate) ClearIntro() *RequestUpdate {
	_u.mutation.ClearIntro()
	return _u
}

// SetOutro sets the "outro" field.
func (_u *RequestUpdate) SetOutro(v string) *RequestUpdate {
	_u.mutation.SetOutro(v)
	return _u
}

// SetNillableOutro sets the "outro" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableOutro(v *string) *RequestUpdate {
	if v != nil {
		_u.SetOutro(*v)
	}
	return _u
}

// ClearOutro clears the value of the "outro" field.
func (_u *RequestUpdate) ClearOutro() *RequestUpdate {
	_u.mutation.ClearOutro()
	return _u
}

// SetSQL sets the "sql" field.
func (_u *RequestUpdate) SetSQL(v string) *RequestUpdate {
	_u.mutation.SetSQL(v)
	return _u
}

// SetNillableSQL sets the "sql" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableSQL(v *string) *RequestUpdate {
	if v != nil {
		_u.SetSQL(*v)
	}
	return _u
}

// ClearSQL clears the value of the "sql" field.
func (_u *RequestUpdate) ClearSQL() *RequestUpdate {
	_u.mutation.ClearSQL()
	return _u
}

// SetRawDataLabels sets the "raw_data_labels" field.
func (_u *RequestUpdate) SetRawDataLabels(v []string) *RequestUpdate {
	_u.mutation.SetRawDataLabels(v)
	return _u
}

// AppendRawDataLabels appends value to the "raw_data_labels" field.
func (_u *RequestUpdate) AppendRawDataLabels(v []string) *RequestUpdate {
	_u.mutation.AppendRawDataLabels(v)
	return _u
}

// ClearRawDataLabels clears the value of the "raw_data_labels" field.
func (_u *RequestUpdate) ClearRawDataLabels() *RequestUpdate {
	_u.mutation.ClearRawDataLabels()
	return _u
}

// SetRawData sets the "raw_data" field.
func (_u *RequestUpdate) SetRawData(v [][]string) *RequestUpdate {
	_u.mutation.SetRawData(v)
	return _u
}

// AppendRawData appends value to the "raw_data" field.
func (_u *RequestUpdate) AppendRawData(v [][]string) *RequestUpdate {
	_u.mutation.AppendRawData(v)
	return _u
}

// ClearRawData clears the value of the "raw_data" field.
func (_u *RequestUpdate) ClearRawData() *RequestUpdate {
	_u.mutation.ClearRawData()
	return _u
}

// SetCsv sets the "csv" field.
func (_u *RequestUpdate) SetCsv(v string) *RequestUpdate {
	_u.mutation.SetCsv(v)
	return _u
}

// SetNillableCsv sets the "csv" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableCsv(v *string) *RequestUpdate {
	if v != nil {
		_u.SetCsv(*v)
	}
	return _u
}

// ClearCsv clears the value of the "csv" field.
func (_u *RequestUpdate) ClearCsv() *RequestUpdate {
	_u.mutation.ClearCsv()
	return _u
}

// SetChart sets the "chart" field.
func (_u *RequestUpdate) SetChart(v string) *RequestUpdate {
	_u.mutation.SetChart(v)
	return _u
}

// SetNillableChart sets the "chart" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableChart(v *string) *RequestUpdate {
	if v != nil {
		_u.SetChart(*v)
	}
	return _u
}

// ClearChart clears the value of the "chart" field.
func (_u *RequestUpdate) ClearChart() *RequestUpdate {
	_u.mutation.ClearChart()
	return _u
}

// SetChartURL sets the "chart_url" field.
func (_u *RequestUpdate) SetChartURL(v string) *RequestUpdate {
	_u.mutation.SetChartURL(v)
	return _u
}

// SetNillableChartURL sets the "chart_url" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableChartURL(v *string) *RequestUpdate {
	if v != nil {
		_u.SetChartURL(*v)
	}
	return _u
}

// ClearChartURL clears the value of the "chart_url" field.
func (_u *RequestUpdate) ClearChartURL() *RequestUpdate {
	_u.mutation.ClearChartURL()
	return _u
}

// SetRefs sets the "refs" field.
func (_u *RequestUpdate) SetRefs(v map[string]interface{}) *RequestUpdate {
	_u.mutation.SetRefs(v)
	return _u
}

// ClearRefs clears the value of the "refs" field.
func (_u *RequestUpdate) ClearRefs() *RequestUpdate {
	_u.mutation.ClearRefs()
	return _u
}

// SetView sets the "view" field.
func (_u *RequestUpdate) SetView(v map[string]interface{}) *RequestUpdate {
	_u.mutation.SetView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *RequestUpdate) ClearView() *RequestUpdate {
	_u.mutation.ClearView()
	return _u
}

// SetQueryID sets the "query_id" field.
func (_u *RequestUpdate) SetQueryID(v uuid.UUID) *RequestUpdate {
	_u.mutation.SetQueryID(v)
	return _u
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableQueryID(v *uuid.UUID) *RequestUpdate {
	if v != nil {
		_u.SetQueryID(*v)
	}
	return _u
}

// ClearQueryID clears the value of the "query_id" field.
func (_u *RequestUpdate) ClearQueryID() *RequestUpdate {
	_u.mutation.ClearQueryID()
	return _u
}

// SetLinkedSessionID sets the "linked_session_id" field.
func (_u *RequestUpdate) SetLinkedSessionID(v uuid.UUID) *RequestUpdate {
	_u.mutation.SetLinkedSessionID(v)
	return _u
}

// SetNillableLinkedSessionID sets the "linked_session_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableLinkedSessionID(v *uuid.UUID) *RequestUpdate {
	if v != nil {
		_u.SetLinkedSessionID(*v)
	}
	return _u
}

// ClearLinkedSessionID clears the value of the "linked_session_id" field.
func (_u *RequestUpdate) ClearLinkedSessionID() *RequestUpdate {
	_u.mutation.ClearLinkedSessionID()
	return _u
}

// SetRating sets the "rating" field.
func (_u *RequestUpdate) SetRating(v int) *RequestUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRating(v *int) *RequestUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *RequestUpdate) AddRating(v int) *RequestUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *RequestUpdate) ClearRating() *RequestUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetReview sets the "review" field.
func (_u *RequestUpdate) SetReview(v string) *RequestUpdate {
	_u.mutation.SetReview(v)
	return _u
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableReview(v *string) *RequestUpdate {
	if v != nil {
		_u.SetReview(*v)
	}
	return _u
}

// ClearReview clears the value of the "review" field.
func (_u *RequestUpdate) ClearReview() *RequestUpdate {
	_u.mutation.ClearReview()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdate) SetUpdatedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdate) Mutation() *RequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := request.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Request.session"`)
	}
	return nil
}

func (_u *RequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(request.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(request.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.User(); ok {
		_spec.SetField(request.FieldUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(request.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Flow(); ok {
		_spec.SetField(request.FieldFlow, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(request.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Db(); ok {
		_spec.SetField(request.FieldDb, field.TypeString, value)
	}
	if value, ok := _u.mutation.Err(); ok {
		_spec.SetField(request.FieldErr, field.TypeString, value)
	}
	if _u.mutation.ErrCleared() {
		_spec.ClearField(request.FieldErr, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(request.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(request.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(request.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(request.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.Assumptions(); ok {
		_spec.SetField(request.FieldAssumptions, field.TypeString, value)
	}
	if _u.mutation.AssumptionsCleared() {
		_spec.ClearField(request.FieldAssumptions, field.TypeString)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(request.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(request.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Outro(); ok {
		_spec.SetField(request.FieldOutro, field.TypeString, value)
	}
	if _u.mutation.OutroCleared() {
		_spec.ClearField(request.FieldOutro, field.TypeString)
	}
	if value, ok := _u.mutation.SQL(); ok {
		_spec.SetField(request.FieldSQL, field.TypeString, value)
	}
	if _u.mutation.SQLCleared() {
		_spec.ClearField(request.FieldSQL, field.TypeString)
	}
	if value, ok := _u.mutation.RawDataLabels(); ok {
		_spec.SetField(request.FieldRawDataLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawDataLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, request.FieldRawDataLabels, value)
		})
	}
	if _u.mutation.RawDataLabelsCleared() {
		_spec.ClearField(request.FieldRawDataLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawData(); ok {
		_spec.SetField(request.FieldRawData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, request.FieldRawData, value)
		})
	}
	if _u.mutation.RawDataCleared() {
		_spec.ClearField(request.FieldRawData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Csv(); ok {
		_spec.SetField(request.FieldCsv, field.TypeString, value)
	}
	if _u.mutation.CsvCleared() {
		_spec.ClearField(request.FieldCsv, field.TypeString)
	}
	if value, ok := _u.mutation.Chart(); ok {
		_spec.SetField(request.FieldChart, field.TypeString, value)
	}
	if _u.mutation.ChartCleared() {
		_spec.ClearField(request.FieldChart, field.TypeString)
	}
	if value, ok := _u.mutation.ChartURL(); ok {
		_spec.SetField(request.FieldChartURL, field.TypeString, value)
	}
	if _u.mutation.ChartURLCleared() {
		_spec.ClearField(request.FieldChartURL, field.TypeString)
	}
	if value, ok := _u.mutation.Refs(); ok {
		_spec.SetField(request.FieldRefs, field.TypeJSON, value)
	}
	if _u.mutation.RefsCleared() {
		_spec.ClearField(request.FieldRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(request.FieldView, field.TypeJSON, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(request.FieldView, field.TypeJSON)
	}
	if value, ok := _u.mutation.QueryID(); ok {
		_spec.SetField(request.FieldQueryID, field.TypeUUID, value)
	}
	if _u.mutation.QueryIDCleared() {
		_spec.ClearField(request.FieldQueryID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LinkedSessionID(); ok {
		_spec.SetField(request.FieldLinkedSessionID, field.TypeUUID, value)
	}
	if _u.mutation.LinkedSessionIDCleared() {
		_spec.ClearField(request.FieldLinkedSessionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(request.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(request.FieldRating, field.TypeInt, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(request.FieldRating, field.TypeInt)
	}
	if value, ok := _u.mutation.Review(); ok {
		_spec.SetField(request.FieldReview, field.TypeString, value)
	}
	if _u.mutation.ReviewCleared() {
		_spec.ClearField(request.FieldReview, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestUpdateOne is the builder for updating a single Request entity.
type RequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestMutation
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *RequestUpdateOne) SetSequenceNumber(v int) *RequestUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableSequenceNumber(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *RequestUpdateOne) AddSequenceNumber(v int) *RequestUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetUser sets the "user" field.
func (_u *RequestUpdateOne) SetUser(v string) *RequestUpdateOne {
	_u.mutation.SetUser(v)
	return _u
}

// SetNillableUser sets the "user" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableUser(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetUser(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *RequestUpdateOne) SetRequest(v string) *RequestUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRequest(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *RequestUpdateOne) SetRequestType(v string) *RequestUpdateOne {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRequestType(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestUpdateOne) SetStatus(v request.Status) *RequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableStatus(v *request.Status) *RequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFlow sets the "flow" field.
func (_u *RequestUpdateOne) SetFlow(v string) *RequestUpdateOne {
	_u.mutation.SetFlow(v)
	return _u
}

// SetNillableFlow sets the "flow" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableFlow(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetFlow(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *RequestUpdateOne) SetModel(v string) *RequestUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableModel(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetDb sets the "db" field.
func (_u *RequestUpdateOne) SetDb(v string) *RequestUpdateOne {
	_u.mutation.SetDb(v)
	return _u
}

// SetNillableDb sets the "db" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDb(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetDb(*v)
	}
	return _u
}

// SetErr sets the "err" field.
func (_u *RequestUpdateOne) SetErr(v string) *RequestUpdateOne {
	_u.mutation.SetErr(v)
	return _u
}

// SetNillableErr sets the "err" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableErr(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetErr(*v)
	}
	return _u
}

// ClearErr clears the value of the "err" field.
func (_u *RequestUpdateOne) ClearErr() *RequestUpdateOne {
	_u.mutation.ClearErr()
	return _u
}

// SetResponse sets the "response" field.
func (_u *RequestUpdateOne) SetResponse(v string) *RequestUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableResponse(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *RequestUpdateOne) ClearResponse() *RequestUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetIntent sets the "intent" field.
func (_u *RequestUpdateOne) SetIntent(v string) *RequestUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableIntent(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *RequestUpdateOne) ClearIntent() *RequestUpdateOne {
	_u.mutation.ClearIntent()
	return _u
}

// SetAssumptions sets the "assumptions" field.
func (_u *RequestUpdateOne) SetAssumptions(v string) *RequestUpdateOne {
	_u.mutation.SetAssumptions(v)
	return _u
}

// SetNillableAssumptions sets the "assumptions" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableAssumptions(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetAssumptions(*v)
	}
	return _u
}

// ClearAssumptions clears the value of the "assumptions" field.
func (_u *RequestUpdateOne) ClearAssumptions() *RequestUpdateOne {
	_u.mutation.ClearAssumptions()
	return _u
}

// SetIntro sets the "intro" field.
func (_u *RequestUpdateOne) SetIntro(v string) *RequestUpdateOne {
	_u.mutation.SetIntro(v)
	return _u
}

// SetNillableIntro sets the "intro" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableIntro(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetIntro(*v)
	}
	return _u
}

// ClearIntro clears the value of the "intro" field.
func (_u *RequestUpdateOne) ClearIntro() *RequestUpdateOne {
	_u.mutation.ClearIntro()
	return _u
}

// SetOutro sets the "outro" field.
func (_u *RequestUpdateOne) SetOutro(v string) *RequestUpdateOne {
	_u.mutation.SetOutro(v)
	return _u
}

// SetNillableOutro sets the "outro" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableOutro(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetOutro(*v)
	}
	return _u
}

// ClearOutro clears the value of the "outro" field.
func (_u *RequestUpdateOne) ClearOutro() *RequestUpdateOne {
	_u.mutation.ClearOutro()
	return _u
}

// SetSQL sets the "sql" field.
func (_u *RequestUpdateOne) SetSQL(v string) *RequestUpdateOne {
	_u.mutation.SetSQL(v)
	return _u
}

// SetNillableSQL sets the "sql" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableSQL(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetSQL(*v)
	}
	return _u
}

// ClearSQL clears the value of the "sql" field.
func (_u *RequestUpdateOne) ClearSQL() *RequestUpdateOne {
	_u.mutation.ClearSQL()
	return _u
}

// SetRawDataLabels sets the "raw_data_labels" field.
func (_u *RequestUpdateOne) SetRawDataLabels(v []string) *RequestUpdateOne {
	_u.mutation.SetRawDataLabels(v)
	return _u
}

// AppendRawDataLabels appends value to the "raw_data_labels" field.
func (_u *RequestUpdateOne) AppendRawDataLabels(v []string) *RequestUpdateOne {
	_u.mutation.AppendRawDataLabels(v)
	return _u
}

// ClearRawDataLabels clears the value of the "raw_data_labels" field.
func (_u *RequestUpdateOne) ClearRawDataLabels() *RequestUpdateOne {
	_u.mutation.ClearRawDataLabels()
	return _u
}

// SetRawData sets the "raw_data" field.
func (_u *RequestUpdateOne) SetRawData(v [][]string) *RequestUpdateOne {
	_u.mutation.SetRawData(v)
	return _u
}

// AppendRawData appends value to the "raw_data" field.
func (_u *RequestUpdateOne) AppendRawData(v [][]string) *RequestUpdateOne {
	_u.mutation.AppendRawData(v)
	return _u
}

// ClearRawData clears the value of the "raw_data" field.
func (_u *RequestUpdateOne) ClearRawData() *RequestUpdateOne {
	_u.mutation.ClearRawData()
	return _u
}

// SetCsv sets the "csv" field.
func (_u *RequestUpdateOne) SetCsv(v string) *RequestUpdateOne {
	_u.mutation.SetCsv(v)
	return _u
}

// SetNillableCsv sets the "csv" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableCsv(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetCsv(*v)
	}
	return _u
}

// ClearCsv clears the value of the "csv" field.
func (_u *RequestUpdateOne) ClearCsv() *RequestUpdateOne {
	_u.mutation.ClearCsv()
	return _u
}

// SetChart sets the "chart" field.
func (_u *RequestUpdateOne) SetChart(v string) *RequestUpdateOne {
	_u.mutation.SetChart(v)
	return _u
}

// SetNillableChart sets the "chart" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableChart(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetChart(*v)
	}
	return _u
}

// ClearChart clears the value of the "chart" field.
func (_u *RequestUpdateOne) ClearChart() *RequestUpdateOne {
	_u.mutation.ClearChart()
	return _u
}

// SetChartURL sets the "chart_url" field.
func (_u *RequestUpdateOne) SetChartURL(v string) *RequestUpdateOne {
	_u.mutation.SetChartURL(v)
	return _u
}

// SetNillableChartURL sets the "chart_url" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableChartURL(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetChartURL(*v)
	}
	return _u
}

// ClearChartURL clears the value of the "chart_url" field.
func (_u *RequestUpdateOne) ClearChartURL() *RequestUpdateOne {
	_u.mutation.ClearChartURL()
	return _u
}

// SetRefs sets the "refs" field.
func (_u *RequestUpdateOne) SetRefs(v map[string]interface{}) *RequestUpdateOne {
	_u.mutation.SetRefs(v)
	return _u
}

// ClearRefs clears the value of the "refs" field.
func (_u *RequestUpdateOne) ClearRefs() *RequestUpdateOne {
	_u.mutation.ClearRefs()
	return _u
}

// SetView sets the "view" field.
func (_u *RequestUpdateOne) SetView(v map[string]interface{}) *RequestUpdateOne {
	_u.mutation.SetView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *RequestUpdateOne) ClearView() *RequestUpdateOne {
	_u.mutation.ClearView()
	return _u
}

// SetQueryID sets the "query_id" field.
func (_u *RequestUpdateOne) SetQueryID(v uuid.UUID) *RequestUpdateOne {
	_u.mutation.SetQueryID(v)
	return _u
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableQueryID(v *uuid.UUID) *RequestUpdateOne {
	if v != nil {
		_u.SetQueryID(*v)
	}
	return _u
}

// ClearQueryID clears the value of the "query_id" field.
func (_u *RequestUpdateOne) ClearQueryID() *RequestUpdateOne {
	_u.mutation.ClearQueryID()
	return _u
}

// SetLinkedSessionID sets the "linked_session_id" field.
func (_u *RequestUpdateOne) SetLinkedSessionID(v uuid.UUID) *RequestUpdateOne {
	_u.mutation.SetLinkedSessionID(v)
	return _u
}

// SetNillableLinkedSessionID sets the "linked_session_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableLinkedSessionID(v *uuid.UUID) *RequestUpdateOne {
	if v != nil {
		_u.SetLinkedSessionID(*v)
	}
	return _u
}

// ClearLinkedSessionID clears the value of the "linked_session_id" field.
func (_u *RequestUpdateOne) ClearLinkedSessionID() *RequestUpdateOne {
	_u.mutation.ClearLinkedSessionID()
	return _u
}

// SetRating sets the "rating" field.
func (_u *RequestUpdateOne) SetRating(v int) *RequestUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRating(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *RequestUpdateOne) AddRating(v int) *RequestUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *RequestUpdateOne) ClearRating() *RequestUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetReview sets the "review" field.
func (_u *RequestUpdateOne) SetReview(v string) *RequestUpdateOne {
	_u.mutation.SetReview(v)
	return _u
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableReview(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetReview(*v)
	}
	return _u
}

// ClearReview clears the value of the "review" field.
func (_u *RequestUpdateOne) ClearReview() *RequestUpdateOne {
	_u.mutation.ClearReview()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdateOne) SetUpdatedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdateOne) Mutation() *RequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdateOne) Where(ps ...predicate.Request) *RequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestUpdateOne) Select(field string, fields ...string) *RequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Request entity.
func (_u *RequestUpdateOne) Save(ctx context.Context) (*Request, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdateOne) SaveX(ctx context.Context) *Request {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := request.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Request.session"`)
	}
	return nil
}

func (_u *RequestUpdateOne) sqlSave(ctx context.Context) (_node *Request, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Request.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, request.FieldID)
		for _, f := range fields {
			if !request.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != request.FieldID {
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
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(request.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(request.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.User(); ok {
		_spec.SetField(request.FieldUser, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(request.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Flow(); ok {
		_spec.SetField(request.FieldFlow, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(request.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Db(); ok {
		_spec.SetField(request.FieldDb, field.TypeString, value)
	}
	if value, ok := _u.mutation.Err(); ok {
		_spec.SetField(request.FieldErr, field.TypeString, value)
	}
	if _u.mutation.ErrCleared() {
		_spec.ClearField(request.FieldErr, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(request.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(request.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(request.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(request.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.Assumptions(); ok {
		_spec.SetField(request.FieldAssumptions, field.TypeString, value)
	}
	if _u.mutation.AssumptionsCleared() {
		_spec.ClearField(request.FieldAssumptions, field.TypeString)
	}
	if value, ok := _u.mutation.Intro(); ok {
		_spec.SetField(request.FieldIntro, field.TypeString, value)
	}
	if _u.mutation.IntroCleared() {
		_spec.ClearField(request.FieldIntro, field.TypeString)
	}
	if value, ok := _u.mutation.Outro(); ok {
		_spec.SetField(request.FieldOutro, field.TypeString, value)
	}
	if _u.mutation.OutroCleared() {
		_spec.ClearField(request.FieldOutro, field.TypeString)
	}
	if value, ok := _u.mutation.SQL(); ok {
		_spec.SetField(request.FieldSQL, field.TypeString, value)
	}
	if _u.mutation.SQLCleared() {
		_spec.ClearField(request.FieldSQL, field.TypeString)
	}
	if value, ok := _u.mutation.RawDataLabels(); ok {
		_spec.SetField(request.FieldRawDataLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawDataLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, request.FieldRawDataLabels, value)
		})
	}
	if _u.mutation.RawDataLabelsCleared() {
		_spec.ClearField(request.FieldRawDataLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawData(); ok {
		_spec.SetField(request.FieldRawData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, request.FieldRawData, value)
		})
	}
	if _u.mutation.RawDataCleared() {
		_spec.ClearField(request.FieldRawData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Csv(); ok {
		_spec.SetField(request.FieldCsv, field.TypeString, value)
	}
	if _u.mutation.CsvCleared() {
		_spec.ClearField(request.FieldCsv, field.TypeString)
	}
	if value, ok := _u.mutation.Chart(); ok {
		_spec.SetField(request.FieldChart, field.TypeString, value)
	}
	if _u.mutation.ChartCleared() {
		_spec.ClearField(request.FieldChart, field.TypeString)
	}
	if value, ok := _u.mutation.ChartURL(); ok {
		_spec.SetField(request.FieldChartURL, field.TypeString, value)
	}
	if _u.mutation.ChartURLCleared() {
		_spec.ClearField(request.FieldChartURL, field.TypeString)
	}
	if value, ok := _u.mutation.Refs(); ok {
		_spec.SetField(request.FieldRefs, field.TypeJSON, value)
	}
	if _u.mutation.RefsCleared() {
		_spec.ClearField(request.FieldRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(request.FieldView, field.TypeJSON, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(request.FieldView, field.TypeJSON)
	}
	if value, ok := _u.mutation.QueryID(); ok {
		_spec.SetField(request.FieldQueryID, field.TypeUUID, value)
	}
	if _u.mutation.QueryIDCleared() {
		_spec.ClearField(request.FieldQueryID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LinkedSessionID(); ok {
		_spec.SetField(request.FieldLinkedSessionID, field.TypeUUID, value)
	}
	if _u.mutation.LinkedSessionIDCleared() {
		_spec.ClearField(request.FieldLinkedSessionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(request.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(request.FieldRating, field.TypeInt, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(request.FieldRating, field.TypeInt)
	}
	if value, ok := _u.mutation.Review(); ok {
		_spec.SetField(request.FieldReview, field.TypeString, value)
	}
	if _u.mutation.ReviewCleared() {
		_spec.ClearField(request.FieldReview, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Request{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

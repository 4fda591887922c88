// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/apegpt/queryflow/ent/queryrecord"
	"github.com/apegpt/queryflow/ent/request"
	"github.com/apegpt/queryflow/ent/schema"
	"github.com/apegpt/queryflow/ent/session"
	"github.com/apegpt/queryflow/ent/task"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	queryrecordFields := schema.QueryRecord{}.Fields()
	_ = queryrecordFields
	// queryrecordDescCreatedAt is the schema descriptor for created_at field.
	queryrecordDescCreatedAt := queryrecordFields[16].Descriptor()
	// queryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	queryrecord.DefaultCreatedAt = queryrecordDescCreatedAt.Default.(func() time.Time)
	// queryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	queryrecordDescUpdatedAt := queryrecordFields[17].Descriptor()
	// queryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queryrecord.DefaultUpdatedAt = queryrecordDescUpdatedAt.Default.(func() time.Time)
	// queryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	queryrecord.UpdateDefaultUpdatedAt = queryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// queryrecordDescID is the schema descriptor for id field.
	queryrecordDescID := queryrecordFields[0].Descriptor()
	// queryrecord.DefaultID holds the default value on creation for the id field.
	queryrecord.DefaultID = queryrecordDescID.Default.(func() uuid.UUID)
	requestFields := schema.Request{}.Fields()
	_ = requestFields
	// requestDescRequestType is the schema descriptor for request_type field.
	requestDescRequestType := requestFields[5].Descriptor()
	// request.DefaultRequestType holds the default value on creation for the request_type field.
	request.DefaultRequestType = requestDescRequestType.Default.(string)
	// requestDescFlow is the schema descriptor for flow field.
	requestDescFlow := requestFields[7].Descriptor()
	// request.DefaultFlow holds the default value on creation for the flow field.
	request.DefaultFlow = requestDescFlow.Default.(string)
	// requestDescModel is the schema descriptor for model field.
	requestDescModel := requestFields[8].Descriptor()
	// request.DefaultModel holds the default value on creation for the model field.
	request.DefaultModel = requestDescModel.Default.(string)
	// requestDescDb is the schema descriptor for db field.
	requestDescDb := requestFields[9].Descriptor()
	// request.DefaultDb holds the default value on creation for the db field.
	request.DefaultDb = requestDescDb.Default.(string)
	// requestDescCreatedAt is the schema descriptor for created_at field.
	requestDescCreatedAt := requestFields[28].Descriptor()
	// request.DefaultCreatedAt holds the default value on creation for the created_at field.
	request.DefaultCreatedAt = requestDescCreatedAt.Default.(func() time.Time)
	// requestDescUpdatedAt is the schema descriptor for updated_at field.
	requestDescUpdatedAt := requestFields[29].Descriptor()
	// request.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	request.DefaultUpdatedAt = requestDescUpdatedAt.Default.(func() time.Time)
	// request.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	request.UpdateDefaultUpdatedAt = requestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requestDescID is the schema descriptor for id field.
	requestDescID := requestFields[0].Descriptor()
	// request.DefaultID holds the default value on creation for the id field.
	request.DefaultID = requestDescID.Default.(func() uuid.UUID)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[8].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[9].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[7].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[9].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[10].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}

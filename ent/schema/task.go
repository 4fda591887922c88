package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity: the DB-backed work
// queue row claimed by pool workers with FOR UPDATE SKIP LOCKED.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("task_id").
			Immutable().
			Comment("Caller-supplied, equals the request id for request tasks"),
		field.String("name").
			Comment("Task kind, e.g. process_request"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("WorkerRequest payload"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Claiming pod, for orphan recovery"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Int("attempts").
			Default(0),
		field.Text("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan: pending tasks in FIFO order.
		index.Fields("status", "created_at"),
		index.Fields("pod_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Request holds the schema definition for the Request entity: one user turn
// in a session, processed asynchronously by a flow.
type Request struct {
	ent.Schema
}

// Fields of the Request.
func (Request) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("request_id").
			Default(uuid.New).
			Immutable(),
		field.UUID("session_id", uuid.UUID{}).
			Immutable(),
		field.Int("sequence_number").
			Comment("Dense 1-based order within the session"),
		field.String("user").
			Comment("Owner subject from the access token"),
		field.Text("request").
			Comment("The user's natural-language question"),
		field.String("request_type").
			Default("tbd").
			Comment("Planner classification (tbd until the planner runs)"),
		field.Enum("status").
			Values("new", "in_progress", "intent", "sql", "data_fetch", "retry",
				"finalizing", "done", "error", "cancelled", "scheduled").
			Default("new"),
		field.String("flow").
			Default("interactive"),
		field.String("model").
			Default("openai"),
		field.String("db").
			Default("v2"),
		field.Text("err").
			Optional().
			Nillable().
			Comment("User-facing error text when status is error"),
		field.Text("response").
			Optional().
			Nillable().
			Comment("Final conversational response"),
		field.Text("intent").
			Optional().
			Nillable(),
		field.Text("assumptions").
			Optional().
			Nillable(),
		field.Text("intro").
			Optional().
			Nillable(),
		field.Text("outro").
			Optional().
			Nillable(),
		field.Text("sql").
			Optional().
			Nillable().
			Comment("Validated SQL produced for this turn"),
		field.JSON("raw_data_labels", []string{}).
			Optional(),
		field.JSON("raw_data", [][]string{}).
			Optional().
			Comment("Preview rows shown inline in the reply"),
		field.Text("csv").
			Optional().
			Nillable(),
		field.Text("chart").
			Optional().
			Nillable().
			Comment("Chart code or HTML produced by the flow"),
		field.String("chart_url").
			Optional().
			Nillable(),
		field.JSON("refs", map[string]interface{}{}).
			Optional(),
		field.JSON("view", map[string]interface{}{}).
			Optional().
			Comment("Sort applied by the data endpoint"),
		field.UUID("query_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Query row this turn produced or was seeded from"),
		field.UUID("linked_session_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Int("rating").
			Optional().
			Nillable().
			Comment("User feedback, 1-5"),
		field.Text("review").
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

// Edges of the Request.
func (Request) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("requests").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Request.
func (Request) Indexes() []ent.Index {
	return []ent.Index{
		// Sequence numbers are dense and unique per session.
		index.Fields("session_id", "sequence_number").
			Unique(),
		index.Fields("user"),
		index.Fields("status"),
	}
}

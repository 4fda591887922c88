package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// QueryRecord holds the schema definition for a saved, validated SQL statement
// with its metadata and lineage. The entity cannot be named Query because that
// collides with an ent predeclared identifier; the table stays "queries".
type QueryRecord struct {
	ent.Schema
}

// Annotations of the QueryRecord.
func (QueryRecord) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "queries"},
	}
}

// Fields of the QueryRecord.
func (QueryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("query_id").
			Default(uuid.New).
			Immutable(),
		field.UUID("session_id", uuid.UUID{}).
			Immutable(),
		field.UUID("request_id", uuid.UUID{}).
			Immutable().
			Comment("Request turn that produced this query"),
		field.UUID("parent_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Previous query in the session, or the seed of a linked session"),
		field.String("user"),
		field.Text("request").
			Comment("Natural-language question the SQL answers"),
		field.Text("sql"),
		field.Text("summary").
			Optional(),
		field.Text("description").
			Optional(),
		field.JSON("columns", []map[string]interface{}{}).
			Optional().
			Comment("Result column names/types/descriptions"),
		field.Int64("row_count").
			Optional().
			Nillable(),
		field.JSON("explanation", map[string]interface{}{}).
			Optional().
			Comment("Preflight estimate and other advisory detail"),
		field.JSON("parents", []string{}).
			Optional().
			Comment("Parent session ids this lineage descends from"),
		field.String("tags").
			Optional(),
		field.String("version").
			Optional().
			Comment("Prompt pack version the SQL was generated with"),
		field.JSON("view", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the QueryRecord.
func (QueryRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("queries").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the QueryRecord.
func (QueryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("user"),
	}
}

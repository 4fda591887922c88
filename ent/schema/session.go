package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Session holds the schema definition for the Session entity: a conversation
// thread owned by one user, carrying the latest query metadata.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("session_id").
			Default(uuid.New).
			Immutable(),
		field.String("user").
			Comment("Owner subject from the access token"),
		field.String("name").
			Optional().
			Comment("Display name; flows rename from the latest query summary"),
		field.String("tags").
			Optional(),
		field.UUID("parent_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set on linked sessions spawned from another session's query"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Latest query metadata for the session (id, sql, summary, view, parents)"),
		field.JSON("refs", map[string]interface{}{}).
			Optional().
			Comment("User-selected row/column references"),
		field.String("version").
			Optional().
			Comment("Pinned prompt pack version, empty means latest"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("requests", Request.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("queries", QueryRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user"),
		index.Fields("parent_id"),
	}
}

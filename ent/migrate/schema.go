// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QueriesColumns holds the columns for the "queries" table.
	QueriesColumns = []*schema.Column{
		{Name: "query_id", Type: field.TypeUUID},
		{Name: "request_id", Type: field.TypeUUID},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user", Type: field.TypeString},
		{Name: "request", Type: field.TypeString, Size: 2147483647},
		{Name: "sql", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "columns", Type: field.TypeJSON, Nullable: true},
		{Name: "row_count", Type: field.TypeInt64, Nullable: true},
		{Name: "explanation", Type: field.TypeJSON, Nullable: true},
		{Name: "parents", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeString, Nullable: true},
		{Name: "view", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// QueriesTable holds the schema information for the "queries" table.
	QueriesTable = &schema.Table{
		Name:       "queries",
		Columns:    QueriesColumns,
		PrimaryKey: []*schema.Column{QueriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "queries_sessions_queries",
				Columns:    []*schema.Column{QueriesColumns[17]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "queryrecord_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueriesColumns[17], QueriesColumns[15]},
			},
			{
				Name:    "queryrecord_user",
				Unique:  false,
				Columns: []*schema.Column{QueriesColumns[3]},
			},
		},
	}
	// RequestsColumns holds the columns for the "requests" table.
	RequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeUUID},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "user", Type: field.TypeString},
		{Name: "request", Type: field.TypeString, Size: 2147483647},
		{Name: "request_type", Type: field.TypeString, Default: "tbd"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "in_progress", "intent", "sql", "data_fetch", "retry", "finalizing", "done", "error", "cancelled", "scheduled"}, Default: "new"},
		{Name: "flow", Type: field.TypeString, Default: "interactive"},
		{Name: "model", Type: field.TypeString, Default: "openai"},
		{Name: "db", Type: field.TypeString, Default: "v2"},
		{Name: "err", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "intent", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assumptions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "outro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sql", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_data_labels", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_data", Type: field.TypeJSON, Nullable: true},
		{Name: "csv", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "chart", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "chart_url", Type: field.TypeString, Nullable: true},
		{Name: "refs", Type: field.TypeJSON, Nullable: true},
		{Name: "view", Type: field.TypeJSON, Nullable: true},
		{Name: "query_id", Type: field.TypeUUID, Nullable: true},
		{Name: "linked_session_id", Type: field.TypeUUID, Nullable: true},
		{Name: "rating", Type: field.TypeInt, Nullable: true},
		{Name: "review", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// RequestsTable holds the schema information for the "requests" table.
	RequestsTable = &schema.Table{
		Name:       "requests",
		Columns:    RequestsColumns,
		PrimaryKey: []*schema.Column{RequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "requests_sessions_requests",
				Columns:    []*schema.Column{RequestsColumns[29]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "request_session_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{RequestsColumns[29], RequestsColumns[1]},
			},
			{
				Name:    "request_user",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[2]},
			},
			{
				Name:    "request_status",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[5]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "user", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeString, Nullable: true},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "refs", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_parent_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[9]},
			},
			{
				Name:    "task_pod_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QueriesTable,
		RequestsTable,
		SessionsTable,
		TasksTable,
	}
)

func init() {
	QueriesTable.ForeignKeys[0].RefTable = SessionsTable
	QueriesTable.Annotation = &entsql.Annotation{
		Table: "queries",
	}
	RequestsTable.ForeignKeys[0].RefTable = SessionsTable
}

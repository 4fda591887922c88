// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// QueryRecord is the predicate function for queryrecord builders.
type QueryRecord func(*sql.Selector)

// Request is the predicate function for request builders.
type Request func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DigestRun is the predicate function for digestrun builders.
type DigestRun func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Plan is the predicate function for plan builders.
type Plan func(*sql.Selector)

// PlanCompletion is the predicate function for plancompletion builders.
type PlanCompletion func(*sql.Selector)

// SharedPlan is the predicate function for sharedplan builders.
type SharedPlan func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskCompletion is the predicate function for taskcompletion builders.
type TaskCompletion func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

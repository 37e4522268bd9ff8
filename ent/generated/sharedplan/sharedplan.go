// Code generated by ent, DO NOT EDIT.

package sharedplan

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the sharedplan type in the database.
	Label = "shared_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldSharedWithID holds the string denoting the shared_with_id field in the database.
	FieldSharedWithID = "shared_with_id"
	// FieldPermission holds the string denoting the permission field in the database.
	FieldPermission = "permission"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePlan holds the string denoting the plan edge name in mutations.
	EdgePlan = "plan"
	// EdgeSharedWith holds the string denoting the shared_with edge name in mutations.
	EdgeSharedWith = "shared_with"
	// Table holds the table name of the sharedplan in the database.
	Table = "shared_plans"
	// PlanTable is the table that holds the plan relation/edge.
	PlanTable = "shared_plans"
	// PlanInverseTable is the table name for the Plan entity.
	// It exists in this package in order to avoid circular dependency with the "plan" package.
	PlanInverseTable = "plans"
	// PlanColumn is the table column denoting the plan relation/edge.
	PlanColumn = "plan_id"
	// SharedWithTable is the table that holds the shared_with relation/edge.
	SharedWithTable = "shared_plans"
	// SharedWithInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	SharedWithInverseTable = "users"
	// SharedWithColumn is the table column denoting the shared_with relation/edge.
	SharedWithColumn = "shared_with_id"
)

// Columns holds all SQL columns for sharedplan fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldOwnerID,
	FieldSharedWithID,
	FieldPermission,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Permission defines the type for the "permission" enum field.
type Permission string

// Permission values.
const (
	PermissionRead       Permission = "read"
	PermissionWrite      Permission = "write"
	PermissionIndividual Permission = "individual"
)

func (pe Permission) String() string {
	return string(pe)
}

// PermissionValidator is a validator for the "permission" field enum values. It is called by the builders before save.
func PermissionValidator(pe Permission) error {
	switch pe {
	case PermissionRead, PermissionWrite, PermissionIndividual:
		return nil
	default:
		return fmt.Errorf("sharedplan: invalid enum value for permission field: %q", pe)
	}
}

// OrderOption defines the ordering options for the SharedPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// BySharedWithID orders the results by the shared_with_id field.
func BySharedWithID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSharedWithID, opts...).ToFunc()
}

// ByPermission orders the results by the permission field.
func ByPermission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermission, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPlanField orders the results by plan field.
func ByPlanField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanStep(), sql.OrderByField(field, opts...))
	}
}

// BySharedWithField orders the results by shared_with field.
func BySharedWithField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSharedWithStep(), sql.OrderByField(field, opts...))
	}
}
func newPlanStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
	)
}
func newSharedWithStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SharedWithInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SharedWithTable, SharedWithColumn),
	)
}

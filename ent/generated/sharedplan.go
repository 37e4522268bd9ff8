// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/planmaster/planmaster/ent/generated/plan"
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/ent/generated/user"
)

// SharedPlan is the model entity for the SharedPlan schema.
type SharedPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Plan being shared
	PlanID uuid.UUID `json:"plan_id,omitempty"`
	// Owner granting the share
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// User the plan is shared with
	SharedWithID uuid.UUID `json:"shared_with_id,omitempty"`
	// Collaboration mode granted to the target user
	Permission sharedplan.Permission `json:"permission,omitempty"`
	// When the share was granted or last replaced
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SharedPlanQuery when eager-loading is set.
	Edges        SharedPlanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SharedPlanEdges holds the relations/edges for other nodes in the graph.
type SharedPlanEdges struct {
	// Plan holds the value of the plan edge.
	Plan *Plan `json:"plan,omitempty"`
	// SharedWith holds the value of the shared_with edge.
	SharedWith *User `json:"shared_with,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PlanOrErr returns the Plan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SharedPlanEdges) PlanOrErr() (*Plan, error) {
	if e.Plan != nil {
		return e.Plan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: plan.Label}
	}
	return nil, &NotLoadedError{edge: "plan"}
}

// SharedWithOrErr returns the SharedWith value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SharedPlanEdges) SharedWithOrErr() (*User, error) {
	if e.SharedWith != nil {
		return e.SharedWith, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "shared_with"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SharedPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sharedplan.FieldPermission:
			values[i] = new(sql.NullString)
		case sharedplan.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case sharedplan.FieldID, sharedplan.FieldPlanID, sharedplan.FieldOwnerID, sharedplan.FieldSharedWithID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SharedPlan fields.
func (_m *SharedPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sharedplan.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sharedplan.FieldPlanID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value != nil {
				_m.PlanID = *value
			}
		case sharedplan.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case sharedplan.FieldSharedWithID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field shared_with_id", values[i])
			} else if value != nil {
				_m.SharedWithID = *value
			}
		case sharedplan.FieldPermission:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permission", values[i])
			} else if value.Valid {
				_m.Permission = sharedplan.Permission(value.String)
			}
		case sharedplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SharedPlan.
// This includes values selected through modifiers, order, etc.
func (_m *SharedPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlan queries the "plan" edge of the SharedPlan entity.
func (_m *SharedPlan) QueryPlan() *PlanQuery {
	return NewSharedPlanClient(_m.config).QueryPlan(_m)
}

// QuerySharedWith queries the "shared_with" edge of the SharedPlan entity.
func (_m *SharedPlan) QuerySharedWith() *UserQuery {
	return NewSharedPlanClient(_m.config).QuerySharedWith(_m)
}

// Update returns a builder for updating this SharedPlan.
// Note that you need to call SharedPlan.Unwrap() before calling this method if this SharedPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SharedPlan) Update() *SharedPlanUpdateOne {
	return NewSharedPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SharedPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SharedPlan) Unwrap() *SharedPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: SharedPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SharedPlan) String() string {
	var builder strings.Builder
	builder.WriteString("SharedPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanID))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("shared_with_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SharedWithID))
	builder.WriteString(", ")
	builder.WriteString("permission=")
	builder.WriteString(fmt.Sprintf("%v", _m.Permission))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SharedPlans is a parsable slice of SharedPlan.
type SharedPlans []*SharedPlan

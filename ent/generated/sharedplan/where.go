// Code generated by ent, DO NOT EDIT.

package sharedplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/planmaster/planmaster/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldPlanID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldOwnerID, v))
}

// SharedWithID applies equality check predicate on the "shared_with_id" field. It's identical to SharedWithIDEQ.
func SharedWithID(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldSharedWithID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNotIn(FieldPlanID, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldLTE(FieldOwnerID, v))
}

// SharedWithIDEQ applies the EQ predicate on the "shared_with_id" field.
func SharedWithIDEQ(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldSharedWithID, v))
}

// SharedWithIDNEQ applies the NEQ predicate on the "shared_with_id" field.
func SharedWithIDNEQ(v uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNEQ(FieldSharedWithID, v))
}

// SharedWithIDIn applies the In predicate on the "shared_with_id" field.
func SharedWithIDIn(vs ...uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldIn(FieldSharedWithID, vs...))
}

// SharedWithIDNotIn applies the NotIn predicate on the "shared_with_id" field.
func SharedWithIDNotIn(vs ...uuid.UUID) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNotIn(FieldSharedWithID, vs...))
}

// PermissionEQ applies the EQ predicate on the "permission" field.
func PermissionEQ(v Permission) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldPermission, v))
}

// PermissionNEQ applies the NEQ predicate on the "permission" field.
func PermissionNEQ(v Permission) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNEQ(FieldPermission, v))
}

// PermissionIn applies the In predicate on the "permission" field.
func PermissionIn(vs ...Permission) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldIn(FieldPermission, vs...))
}

// PermissionNotIn applies the NotIn predicate on the "permission" field.
func PermissionNotIn(vs ...Permission) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNotIn(FieldPermission, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SharedPlan {
	return predicate.SharedPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPlan applies the HasEdge predicate on the "plan" edge.
func HasPlan() predicate.SharedPlan {
	return predicate.SharedPlan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlanWith applies the HasEdge predicate on the "plan" edge with a given conditions (other predicates).
func HasPlanWith(preds ...predicate.Plan) predicate.SharedPlan {
	return predicate.SharedPlan(func(s *sql.Selector) {
		step := newPlanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSharedWith applies the HasEdge predicate on the "shared_with" edge.
func HasSharedWith() predicate.SharedPlan {
	return predicate.SharedPlan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SharedWithTable, SharedWithColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSharedWithWith applies the HasEdge predicate on the "shared_with" edge with a given conditions (other predicates).
func HasSharedWithWith(preds ...predicate.User) predicate.SharedPlan {
	return predicate.SharedPlan(func(s *sql.Selector) {
		step := newSharedWithStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SharedPlan) predicate.SharedPlan {
	return predicate.SharedPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SharedPlan) predicate.SharedPlan {
	return predicate.SharedPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SharedPlan) predicate.SharedPlan {
	return predicate.SharedPlan(sql.NotPredicates(p))
}

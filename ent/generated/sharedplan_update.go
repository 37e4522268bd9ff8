// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/planmaster/planmaster/ent/generated/plan"
	"github.com/planmaster/planmaster/ent/generated/predicate"
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/ent/generated/user"
)

// SharedPlanUpdate is the builder for updating SharedPlan entities.
type SharedPlanUpdate struct {
	config
	hooks    []Hook
	mutation *SharedPlanMutation
}

// Where appends a list predicates to the SharedPlanUpdate builder.
func (_u *SharedPlanUpdate) Where(ps ...predicate.SharedPlan) *SharedPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *SharedPlanUpdate) SetPlanID(v uuid.UUID) *SharedPlanUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *SharedPlanUpdate) SetNillablePlanID(v *uuid.UUID) *SharedPlanUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *SharedPlanUpdate) SetOwnerID(v uuid.UUID) *SharedPlanUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *SharedPlanUpdate) SetNillableOwnerID(v *uuid.UUID) *SharedPlanUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetSharedWithID sets the "shared_with_id" field.
func (_u *SharedPlanUpdate) SetSharedWithID(v uuid.UUID) *SharedPlanUpdate {
	_u.mutation.SetSharedWithID(v)
	return _u
}

// SetNillableSharedWithID sets the "shared_with_id" field if the given value is not nil.
func (_u *SharedPlanUpdate) SetNillableSharedWithID(v *uuid.UUID) *SharedPlanUpdate {
	if v != nil {
		_u.SetSharedWithID(*v)
	}
	return _u
}

// SetPermission sets the "permission" field.
func (_u *SharedPlanUpdate) SetPermission(v sharedplan.Permission) *SharedPlanUpdate {
	_u.mutation.SetPermission(v)
	return _u
}

// SetNillablePermission sets the "permission" field if the given value is not nil.
func (_u *SharedPlanUpdate) SetNillablePermission(v *sharedplan.Permission) *SharedPlanUpdate {
	if v != nil {
		_u.SetPermission(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SharedPlanUpdate) SetCreatedAt(v time.Time) *SharedPlanUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SharedPlanUpdate) SetNillableCreatedAt(v *time.Time) *SharedPlanUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_u *SharedPlanUpdate) SetPlan(v *Plan) *SharedPlanUpdate {
	return _u.SetPlanID(v.ID)
}

// SetSharedWith sets the "shared_with" edge to the User entity.
func (_u *SharedPlanUpdate) SetSharedWith(v *User) *SharedPlanUpdate {
	return _u.SetSharedWithID(v.ID)
}

// Mutation returns the SharedPlanMutation object of the builder.
func (_u *SharedPlanUpdate) Mutation() *SharedPlanMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (_u *SharedPlanUpdate) ClearPlan() *SharedPlanUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// ClearSharedWith clears the "shared_with" edge to the User entity.
func (_u *SharedPlanUpdate) ClearSharedWith() *SharedPlanUpdate {
	_u.mutation.ClearSharedWith()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SharedPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SharedPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SharedPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SharedPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SharedPlanUpdate) check() error {
	if v, ok := _u.mutation.Permission(); ok {
		if err := sharedplan.PermissionValidator(v); err != nil {
			return &ValidationError{Name: "permission", err: fmt.Errorf(`generated: validator failed for field "SharedPlan.permission": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "SharedPlan.plan"`)
	}
	if _u.mutation.SharedWithCleared() && len(_u.mutation.SharedWithIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "SharedPlan.shared_with"`)
	}
	return nil
}

func (_u *SharedPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sharedplan.Table, sharedplan.Columns, sqlgraph.NewFieldSpec(sharedplan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(sharedplan.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Permission(); ok {
		_spec.SetField(sharedplan.FieldPermission, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sharedplan.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.PlanTable,
			Columns: []string{sharedplan.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.PlanTable,
			Columns: []string{sharedplan.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SharedWithCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.SharedWithTable,
			Columns: []string{sharedplan.SharedWithColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SharedWithIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.SharedWithTable,
			Columns: []string{sharedplan.SharedWithColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sharedplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SharedPlanUpdateOne is the builder for updating a single SharedPlan entity.
type SharedPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SharedPlanMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *SharedPlanUpdateOne) SetPlanID(v uuid.UUID) *SharedPlanUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *SharedPlanUpdateOne) SetNillablePlanID(v *uuid.UUID) *SharedPlanUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *SharedPlanUpdateOne) SetOwnerID(v uuid.UUID) *SharedPlanUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *SharedPlanUpdateOne) SetNillableOwnerID(v *uuid.UUID) *SharedPlanUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetSharedWithID sets the "shared_with_id" field.
func (_u *SharedPlanUpdateOne) SetSharedWithID(v uuid.UUID) *SharedPlanUpdateOne {
	_u.mutation.SetSharedWithID(v)
	return _u
}

// SetNillableSharedWithID sets the "shared_with_id" field if the given value is not nil.
func (_u *SharedPlanUpdateOne) SetNillableSharedWithID(v *uuid.UUID) *SharedPlanUpdateOne {
	if v != nil {
		_u.SetSharedWithID(*v)
	}
	return _u
}

// SetPermission sets the "permission" field.
func (_u *SharedPlanUpdateOne) SetPermission(v sharedplan.Permission) *SharedPlanUpdateOne {
	_u.mutation.SetPermission(v)
	return _u
}

// SetNillablePermission sets the "permission" field if the given value is not nil.
func (_u *SharedPlanUpdateOne) SetNillablePermission(v *sharedplan.Permission) *SharedPlanUpdateOne {
	if v != nil {
		_u.SetPermission(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SharedPlanUpdateOne) SetCreatedAt(v time.Time) *SharedPlanUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SharedPlanUpdateOne) SetNillableCreatedAt(v *time.Time) *SharedPlanUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_u *SharedPlanUpdateOne) SetPlan(v *Plan) *SharedPlanUpdateOne {
	return _u.SetPlanID(v.ID)
}

// SetSharedWith sets the "shared_with" edge to the User entity.
func (_u *SharedPlanUpdateOne) SetSharedWith(v *User) *SharedPlanUpdateOne {
	return _u.SetSharedWithID(v.ID)
}

// Mutation returns the SharedPlanMutation object of the builder.
func (_u *SharedPlanUpdateOne) Mutation() *SharedPlanMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (_u *SharedPlanUpdateOne) ClearPlan() *SharedPlanUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// ClearSharedWith clears the "shared_with" edge to the User entity.
func (_u *SharedPlanUpdateOne) ClearSharedWith() *SharedPlanUpdateOne {
	_u.mutation.ClearSharedWith()
	return _u
}

// Where appends a list predicates to the SharedPlanUpdate builder.
func (_u *SharedPlanUpdateOne) Where(ps ...predicate.SharedPlan) *SharedPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SharedPlanUpdateOne) Select(field string, fields ...string) *SharedPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SharedPlan entity.
func (_u *SharedPlanUpdateOne) Save(ctx context.Context) (*SharedPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SharedPlanUpdateOne) SaveX(ctx context.Context) *SharedPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SharedPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SharedPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SharedPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Permission(); ok {
		if err := sharedplan.PermissionValidator(v); err != nil {
			return &ValidationError{Name: "permission", err: fmt.Errorf(`generated: validator failed for field "SharedPlan.permission": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "SharedPlan.plan"`)
	}
	if _u.mutation.SharedWithCleared() && len(_u.mutation.SharedWithIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "SharedPlan.shared_with"`)
	}
	return nil
}

func (_u *SharedPlanUpdateOne) sqlSave(ctx context.Context) (_node *SharedPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sharedplan.Table, sharedplan.Columns, sqlgraph.NewFieldSpec(sharedplan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "SharedPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sharedplan.FieldID)
		for _, f := range fields {
			if !sharedplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != sharedplan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(sharedplan.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Permission(); ok {
		_spec.SetField(sharedplan.FieldPermission, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sharedplan.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.PlanTable,
			Columns: []string{sharedplan.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.PlanTable,
			Columns: []string{sharedplan.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SharedWithCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.SharedWithTable,
			Columns: []string{sharedplan.SharedWithColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SharedWithIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sharedplan.SharedWithTable,
			Columns: []string{sharedplan.SharedWithColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SharedPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sharedplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

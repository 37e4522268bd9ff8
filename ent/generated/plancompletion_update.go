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
	"github.com/planmaster/planmaster/ent/generated/plancompletion"
	"github.com/planmaster/planmaster/ent/generated/predicate"
)

// PlanCompletionUpdate is the builder for updating PlanCompletion entities.
type PlanCompletionUpdate struct {
	config
	hooks    []Hook
	mutation *PlanCompletionMutation
}

// Where appends a list predicates to the PlanCompletionUpdate builder.
func (_u *PlanCompletionUpdate) Where(ps ...predicate.PlanCompletion) *PlanCompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanCompletionUpdate) SetPlanID(v uuid.UUID) *PlanCompletionUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanCompletionUpdate) SetNillablePlanID(v *uuid.UUID) *PlanCompletionUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlanCompletionUpdate) SetUserID(v uuid.UUID) *PlanCompletionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlanCompletionUpdate) SetNillableUserID(v *uuid.UUID) *PlanCompletionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PlanCompletionUpdate) SetCompleted(v bool) *PlanCompletionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PlanCompletionUpdate) SetNillableCompleted(v *bool) *PlanCompletionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanCompletionUpdate) SetCompletedAt(v time.Time) *PlanCompletionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanCompletionUpdate) SetNillableCompletedAt(v *time.Time) *PlanCompletionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanCompletionUpdate) ClearCompletedAt() *PlanCompletionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_u *PlanCompletionUpdate) SetPlan(v *Plan) *PlanCompletionUpdate {
	return _u.SetPlanID(v.ID)
}

// Mutation returns the PlanCompletionMutation object of the builder.
func (_u *PlanCompletionUpdate) Mutation() *PlanCompletionMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (_u *PlanCompletionUpdate) ClearPlan() *PlanCompletionUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanCompletionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanCompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanCompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanCompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanCompletionUpdate) check() error {
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "PlanCompletion.plan"`)
	}
	return nil
}

func (_u *PlanCompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plancompletion.Table, plancompletion.Columns, sqlgraph.NewFieldSpec(plancompletion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(plancompletion.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(plancompletion.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plancompletion.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plancompletion.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   plancompletion.PlanTable,
			Columns: []string{plancompletion.PlanColumn},
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
			Table:   plancompletion.PlanTable,
			Columns: []string{plancompletion.PlanColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plancompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanCompletionUpdateOne is the builder for updating a single PlanCompletion entity.
type PlanCompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanCompletionMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanCompletionUpdateOne) SetPlanID(v uuid.UUID) *PlanCompletionUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanCompletionUpdateOne) SetNillablePlanID(v *uuid.UUID) *PlanCompletionUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlanCompletionUpdateOne) SetUserID(v uuid.UUID) *PlanCompletionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlanCompletionUpdateOne) SetNillableUserID(v *uuid.UUID) *PlanCompletionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PlanCompletionUpdateOne) SetCompleted(v bool) *PlanCompletionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PlanCompletionUpdateOne) SetNillableCompleted(v *bool) *PlanCompletionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanCompletionUpdateOne) SetCompletedAt(v time.Time) *PlanCompletionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanCompletionUpdateOne) SetNillableCompletedAt(v *time.Time) *PlanCompletionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanCompletionUpdateOne) ClearCompletedAt() *PlanCompletionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_u *PlanCompletionUpdateOne) SetPlan(v *Plan) *PlanCompletionUpdateOne {
	return _u.SetPlanID(v.ID)
}

// Mutation returns the PlanCompletionMutation object of the builder.
func (_u *PlanCompletionUpdateOne) Mutation() *PlanCompletionMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (_u *PlanCompletionUpdateOne) ClearPlan() *PlanCompletionUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// Where appends a list predicates to the PlanCompletionUpdate builder.
func (_u *PlanCompletionUpdateOne) Where(ps ...predicate.PlanCompletion) *PlanCompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanCompletionUpdateOne) Select(field string, fields ...string) *PlanCompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanCompletion entity.
func (_u *PlanCompletionUpdateOne) Save(ctx context.Context) (*PlanCompletion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanCompletionUpdateOne) SaveX(ctx context.Context) *PlanCompletion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanCompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanCompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanCompletionUpdateOne) check() error {
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "PlanCompletion.plan"`)
	}
	return nil
}

func (_u *PlanCompletionUpdateOne) sqlSave(ctx context.Context) (_node *PlanCompletion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plancompletion.Table, plancompletion.Columns, sqlgraph.NewFieldSpec(plancompletion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "PlanCompletion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plancompletion.FieldID)
		for _, f := range fields {
			if !plancompletion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != plancompletion.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(plancompletion.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(plancompletion.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plancompletion.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plancompletion.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   plancompletion.PlanTable,
			Columns: []string{plancompletion.PlanColumn},
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
			Table:   plancompletion.PlanTable,
			Columns: []string{plancompletion.PlanColumn},
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
	_node = &PlanCompletion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plancompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

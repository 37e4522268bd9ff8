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
	"github.com/planmaster/planmaster/ent/generated/predicate"
	"github.com/planmaster/planmaster/ent/generated/task"
	"github.com/planmaster/planmaster/ent/generated/taskcompletion"
)

// TaskCompletionUpdate is the builder for updating TaskCompletion entities.
type TaskCompletionUpdate struct {
	config
	hooks    []Hook
	mutation *TaskCompletionMutation
}

// Where appends a list predicates to the TaskCompletionUpdate builder.
func (_u *TaskCompletionUpdate) Where(ps ...predicate.TaskCompletion) *TaskCompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskCompletionUpdate) SetTaskID(v uuid.UUID) *TaskCompletionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableTaskID(v *uuid.UUID) *TaskCompletionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskCompletionUpdate) SetUserID(v uuid.UUID) *TaskCompletionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableUserID(v *uuid.UUID) *TaskCompletionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *TaskCompletionUpdate) SetCompleted(v bool) *TaskCompletionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableCompleted(v *bool) *TaskCompletionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskCompletionUpdate) SetCompletedAt(v time.Time) *TaskCompletionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskCompletionUpdate) SetNillableCompletedAt(v *time.Time) *TaskCompletionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskCompletionUpdate) ClearCompletedAt() *TaskCompletionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskCompletionUpdate) SetTask(v *Task) *TaskCompletionUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskCompletionMutation object of the builder.
func (_u *TaskCompletionUpdate) Mutation() *TaskCompletionMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskCompletionUpdate) ClearTask() *TaskCompletionUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskCompletionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskCompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskCompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskCompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskCompletionUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TaskCompletion.task"`)
	}
	return nil
}

func (_u *TaskCompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskcompletion.Table, taskcompletion.Columns, sqlgraph.NewFieldSpec(taskcompletion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskcompletion.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(taskcompletion.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskcompletion.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskcompletion.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskcompletion.TaskTable,
			Columns: []string{taskcompletion.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskcompletion.TaskTable,
			Columns: []string{taskcompletion.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskcompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskCompletionUpdateOne is the builder for updating a single TaskCompletion entity.
type TaskCompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskCompletionMutation
}

// SetTaskID sets the "task_id" field.
func (_u *TaskCompletionUpdateOne) SetTaskID(v uuid.UUID) *TaskCompletionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableTaskID(v *uuid.UUID) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskCompletionUpdateOne) SetUserID(v uuid.UUID) *TaskCompletionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableUserID(v *uuid.UUID) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *TaskCompletionUpdateOne) SetCompleted(v bool) *TaskCompletionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableCompleted(v *bool) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskCompletionUpdateOne) SetCompletedAt(v time.Time) *TaskCompletionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskCompletionUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskCompletionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskCompletionUpdateOne) ClearCompletedAt() *TaskCompletionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskCompletionUpdateOne) SetTask(v *Task) *TaskCompletionUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskCompletionMutation object of the builder.
func (_u *TaskCompletionUpdateOne) Mutation() *TaskCompletionMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskCompletionUpdateOne) ClearTask() *TaskCompletionUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the TaskCompletionUpdate builder.
func (_u *TaskCompletionUpdateOne) Where(ps ...predicate.TaskCompletion) *TaskCompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskCompletionUpdateOne) Select(field string, fields ...string) *TaskCompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskCompletion entity.
func (_u *TaskCompletionUpdateOne) Save(ctx context.Context) (*TaskCompletion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskCompletionUpdateOne) SaveX(ctx context.Context) *TaskCompletion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskCompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskCompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskCompletionUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TaskCompletion.task"`)
	}
	return nil
}

func (_u *TaskCompletionUpdateOne) sqlSave(ctx context.Context) (_node *TaskCompletion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskcompletion.Table, taskcompletion.Columns, sqlgraph.NewFieldSpec(taskcompletion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "TaskCompletion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskcompletion.FieldID)
		for _, f := range fields {
			if !taskcompletion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != taskcompletion.FieldID {
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
		_spec.SetField(taskcompletion.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(taskcompletion.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskcompletion.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskcompletion.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskcompletion.TaskTable,
			Columns: []string{taskcompletion.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskcompletion.TaskTable,
			Columns: []string{taskcompletion.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskCompletion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskcompletion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

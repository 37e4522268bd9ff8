// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/planmaster/planmaster/ent/generated/task"
	"github.com/planmaster/planmaster/ent/generated/taskcompletion"
)

// TaskCompletionCreate is the builder for creating a TaskCompletion entity.
type TaskCompletionCreate struct {
	config
	mutation *TaskCompletionMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TaskCompletionCreate) SetTaskID(v uuid.UUID) *TaskCompletionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TaskCompletionCreate) SetUserID(v uuid.UUID) *TaskCompletionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *TaskCompletionCreate) SetCompleted(v bool) *TaskCompletionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *TaskCompletionCreate) SetNillableCompleted(v *bool) *TaskCompletionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCompletionCreate) SetCompletedAt(v time.Time) *TaskCompletionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCompletionCreate) SetNillableCompletedAt(v *time.Time) *TaskCompletionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCompletionCreate) SetID(v uuid.UUID) *TaskCompletionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TaskCompletionCreate) SetNillableID(v *uuid.UUID) *TaskCompletionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskCompletionCreate) SetTask(v *Task) *TaskCompletionCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskCompletionMutation object of the builder.
func (_c *TaskCompletionCreate) Mutation() *TaskCompletionMutation {
	return _c.mutation
}

// Save creates the TaskCompletion in the database.
func (_c *TaskCompletionCreate) Save(ctx context.Context) (*TaskCompletion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCompletionCreate) SaveX(ctx context.Context) *TaskCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCompletionCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := taskcompletion.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := taskcompletion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCompletionCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`generated: missing required field "TaskCompletion.task_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`generated: missing required field "TaskCompletion.user_id"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`generated: missing required field "TaskCompletion.completed"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`generated: missing required edge "TaskCompletion.task"`)}
	}
	return nil
}

func (_c *TaskCompletionCreate) sqlSave(ctx context.Context) (*TaskCompletion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCompletionCreate) createSpec() (*TaskCompletion, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskCompletion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskcompletion.Table, sqlgraph.NewFieldSpec(taskcompletion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(taskcompletion.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(taskcompletion.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskcompletion.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCompletionCreateBulk is the builder for creating many TaskCompletion entities in bulk.
type TaskCompletionCreateBulk struct {
	config
	err      error
	builders []*TaskCompletionCreate
}

// Save creates the TaskCompletion entities in the database.
func (_c *TaskCompletionCreateBulk) Save(ctx context.Context) ([]*TaskCompletion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskCompletion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskCompletionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCompletionCreateBulk) SaveX(ctx context.Context) []*TaskCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/planmaster/planmaster/ent/generated/plan"
	"github.com/planmaster/planmaster/ent/generated/plancompletion"
)

// PlanCompletionCreate is the builder for creating a PlanCompletion entity.
type PlanCompletionCreate struct {
	config
	mutation *PlanCompletionMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *PlanCompletionCreate) SetPlanID(v uuid.UUID) *PlanCompletionCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PlanCompletionCreate) SetUserID(v uuid.UUID) *PlanCompletionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *PlanCompletionCreate) SetCompleted(v bool) *PlanCompletionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *PlanCompletionCreate) SetNillableCompleted(v *bool) *PlanCompletionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlanCompletionCreate) SetCompletedAt(v time.Time) *PlanCompletionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlanCompletionCreate) SetNillableCompletedAt(v *time.Time) *PlanCompletionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanCompletionCreate) SetID(v uuid.UUID) *PlanCompletionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PlanCompletionCreate) SetNillableID(v *uuid.UUID) *PlanCompletionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_c *PlanCompletionCreate) SetPlan(v *Plan) *PlanCompletionCreate {
	return _c.SetPlanID(v.ID)
}

// Mutation returns the PlanCompletionMutation object of the builder.
func (_c *PlanCompletionCreate) Mutation() *PlanCompletionMutation {
	return _c.mutation
}

// Save creates the PlanCompletion in the database.
func (_c *PlanCompletionCreate) Save(ctx context.Context) (*PlanCompletion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCompletionCreate) SaveX(ctx context.Context) *PlanCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCompletionCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := plancompletion.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := plancompletion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCompletionCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`generated: missing required field "PlanCompletion.plan_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`generated: missing required field "PlanCompletion.user_id"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`generated: missing required field "PlanCompletion.completed"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`generated: missing required edge "PlanCompletion.plan"`)}
	}
	return nil
}

func (_c *PlanCompletionCreate) sqlSave(ctx context.Context) (*PlanCompletion, error) {
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

func (_c *PlanCompletionCreate) createSpec() (*PlanCompletion, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanCompletion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plancompletion.Table, sqlgraph.NewFieldSpec(plancompletion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(plancompletion.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(plancompletion.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(plancompletion.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
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
		_node.PlanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PlanCompletionCreateBulk is the builder for creating many PlanCompletion entities in bulk.
type PlanCompletionCreateBulk struct {
	config
	err      error
	builders []*PlanCompletionCreate
}

// Save creates the PlanCompletion entities in the database.
func (_c *PlanCompletionCreateBulk) Save(ctx context.Context) ([]*PlanCompletion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanCompletion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanCompletionMutation)
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
func (_c *PlanCompletionCreateBulk) SaveX(ctx context.Context) []*PlanCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

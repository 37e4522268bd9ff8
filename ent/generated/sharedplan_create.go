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
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/ent/generated/user"
)

// SharedPlanCreate is the builder for creating a SharedPlan entity.
type SharedPlanCreate struct {
	config
	mutation *SharedPlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *SharedPlanCreate) SetPlanID(v uuid.UUID) *SharedPlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *SharedPlanCreate) SetOwnerID(v uuid.UUID) *SharedPlanCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetSharedWithID sets the "shared_with_id" field.
func (_c *SharedPlanCreate) SetSharedWithID(v uuid.UUID) *SharedPlanCreate {
	_c.mutation.SetSharedWithID(v)
	return _c
}

// SetPermission sets the "permission" field.
func (_c *SharedPlanCreate) SetPermission(v sharedplan.Permission) *SharedPlanCreate {
	_c.mutation.SetPermission(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SharedPlanCreate) SetCreatedAt(v time.Time) *SharedPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SharedPlanCreate) SetNillableCreatedAt(v *time.Time) *SharedPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SharedPlanCreate) SetID(v uuid.UUID) *SharedPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SharedPlanCreate) SetNillableID(v *uuid.UUID) *SharedPlanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_c *SharedPlanCreate) SetPlan(v *Plan) *SharedPlanCreate {
	return _c.SetPlanID(v.ID)
}

// SetSharedWith sets the "shared_with" edge to the User entity.
func (_c *SharedPlanCreate) SetSharedWith(v *User) *SharedPlanCreate {
	return _c.SetSharedWithID(v.ID)
}

// Mutation returns the SharedPlanMutation object of the builder.
func (_c *SharedPlanCreate) Mutation() *SharedPlanMutation {
	return _c.mutation
}

// Save creates the SharedPlan in the database.
func (_c *SharedPlanCreate) Save(ctx context.Context) (*SharedPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SharedPlanCreate) SaveX(ctx context.Context) *SharedPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SharedPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SharedPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SharedPlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sharedplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sharedplan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SharedPlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`generated: missing required field "SharedPlan.plan_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`generated: missing required field "SharedPlan.owner_id"`)}
	}
	if _, ok := _c.mutation.SharedWithID(); !ok {
		return &ValidationError{Name: "shared_with_id", err: errors.New(`generated: missing required field "SharedPlan.shared_with_id"`)}
	}
	if _, ok := _c.mutation.Permission(); !ok {
		return &ValidationError{Name: "permission", err: errors.New(`generated: missing required field "SharedPlan.permission"`)}
	}
	if v, ok := _c.mutation.Permission(); ok {
		if err := sharedplan.PermissionValidator(v); err != nil {
			return &ValidationError{Name: "permission", err: fmt.Errorf(`generated: validator failed for field "SharedPlan.permission": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "SharedPlan.created_at"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`generated: missing required edge "SharedPlan.plan"`)}
	}
	if len(_c.mutation.SharedWithIDs()) == 0 {
		return &ValidationError{Name: "shared_with", err: errors.New(`generated: missing required edge "SharedPlan.shared_with"`)}
	}
	return nil
}

func (_c *SharedPlanCreate) sqlSave(ctx context.Context) (*SharedPlan, error) {
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

func (_c *SharedPlanCreate) createSpec() (*SharedPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &SharedPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sharedplan.Table, sqlgraph.NewFieldSpec(sharedplan.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(sharedplan.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Permission(); ok {
		_spec.SetField(sharedplan.FieldPermission, field.TypeEnum, value)
		_node.Permission = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sharedplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
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
		_node.PlanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SharedWithIDs(); len(nodes) > 0 {
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
		_node.SharedWithID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SharedPlanCreateBulk is the builder for creating many SharedPlan entities in bulk.
type SharedPlanCreateBulk struct {
	config
	err      error
	builders []*SharedPlanCreate
}

// Save creates the SharedPlan entities in the database.
func (_c *SharedPlanCreateBulk) Save(ctx context.Context) ([]*SharedPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SharedPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SharedPlanMutation)
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
func (_c *SharedPlanCreateBulk) SaveX(ctx context.Context) []*SharedPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SharedPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SharedPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

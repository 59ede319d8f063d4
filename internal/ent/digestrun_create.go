// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-recap/internal/ent/digestrun"
)

// DigestRunCreate is the builder for creating a DigestRun entity.
type DigestRunCreate struct {
	config
	mutation *DigestRunMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (drc *DigestRunCreate) SetCreateTime(t time.Time) *DigestRunCreate {
	drc.mutation.SetCreateTime(t)
	return drc
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (drc *DigestRunCreate) SetNillableCreateTime(t *time.Time) *DigestRunCreate {
	if t != nil {
		drc.SetCreateTime(*t)
	}
	return drc
}

// SetUpdateTime sets the "update_time" field.
func (drc *DigestRunCreate) SetUpdateTime(t time.Time) *DigestRunCreate {
	drc.mutation.SetUpdateTime(t)
	return drc
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (drc *DigestRunCreate) SetNillableUpdateTime(t *time.Time) *DigestRunCreate {
	if t != nil {
		drc.SetUpdateTime(*t)
	}
	return drc
}

// SetStartTime sets the "start_time" field.
func (drc *DigestRunCreate) SetStartTime(t time.Time) *DigestRunCreate {
	drc.mutation.SetStartTime(t)
	return drc
}

// SetEndTime sets the "end_time" field.
func (drc *DigestRunCreate) SetEndTime(t time.Time) *DigestRunCreate {
	drc.mutation.SetEndTime(t)
	return drc
}

// SetStatus sets the "status" field.
func (drc *DigestRunCreate) SetStatus(d digestrun.Status) *DigestRunCreate {
	drc.mutation.SetStatus(d)
	return drc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (drc *DigestRunCreate) SetNillableStatus(d *digestrun.Status) *DigestRunCreate {
	if d != nil {
		drc.SetStatus(*d)
	}
	return drc
}

// SetErrorMessage sets the "error_message" field.
func (drc *DigestRunCreate) SetErrorMessage(s string) *DigestRunCreate {
	drc.mutation.SetErrorMessage(s)
	return drc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (drc *DigestRunCreate) SetNillableErrorMessage(s *string) *DigestRunCreate {
	if s != nil {
		drc.SetErrorMessage(*s)
	}
	return drc
}

// Mutation returns the DigestRunMutation object of the builder.
func (drc *DigestRunCreate) Mutation() *DigestRunMutation {
	return drc.mutation
}

// Save creates the DigestRun in the database.
func (drc *DigestRunCreate) Save(ctx context.Context) (*DigestRun, error) {
	drc.defaults()
	return withHooks(ctx, drc.sqlSave, drc.mutation, drc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (drc *DigestRunCreate) SaveX(ctx context.Context) *DigestRun {
	v, err := drc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (drc *DigestRunCreate) Exec(ctx context.Context) error {
	_, err := drc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (drc *DigestRunCreate) ExecX(ctx context.Context) {
	if err := drc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (drc *DigestRunCreate) defaults() {
	if _, ok := drc.mutation.CreateTime(); !ok {
		v := digestrun.DefaultCreateTime()
		drc.mutation.SetCreateTime(v)
	}
	if _, ok := drc.mutation.UpdateTime(); !ok {
		v := digestrun.DefaultUpdateTime()
		drc.mutation.SetUpdateTime(v)
	}
	if _, ok := drc.mutation.Status(); !ok {
		v := digestrun.DefaultStatus
		drc.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (drc *DigestRunCreate) check() error {
	if _, ok := drc.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "DigestRun.create_time"`)}
	}
	if _, ok := drc.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "DigestRun.update_time"`)}
	}
	if _, ok := drc.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "DigestRun.start_time"`)}
	}
	if _, ok := drc.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "DigestRun.end_time"`)}
	}
	if _, ok := drc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DigestRun.status"`)}
	}
	if v, ok := drc.mutation.Status(); ok {
		if err := digestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestRun.status": %w`, err)}
		}
	}
	return nil
}

func (drc *DigestRunCreate) sqlSave(ctx context.Context) (*DigestRun, error) {
	if err := drc.check(); err != nil {
		return nil, err
	}
	_node, _spec := drc.createSpec()
	if err := sqlgraph.CreateNode(ctx, drc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	drc.mutation.id = &_node.ID
	drc.mutation.done = true
	return _node, nil
}

func (drc *DigestRunCreate) createSpec() (*DigestRun, *sqlgraph.CreateSpec) {
	var (
		_node = &DigestRun{config: drc.config}
		_spec = sqlgraph.NewCreateSpec(digestrun.Table, sqlgraph.NewFieldSpec(digestrun.FieldID, field.TypeInt))
	)
	if value, ok := drc.mutation.CreateTime(); ok {
		_spec.SetField(digestrun.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := drc.mutation.UpdateTime(); ok {
		_spec.SetField(digestrun.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := drc.mutation.StartTime(); ok {
		_spec.SetField(digestrun.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := drc.mutation.EndTime(); ok {
		_spec.SetField(digestrun.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := drc.mutation.Status(); ok {
		_spec.SetField(digestrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := drc.mutation.ErrorMessage(); ok {
		_spec.SetField(digestrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// DigestRunCreateBulk is the builder for creating many DigestRun entities in bulk.
type DigestRunCreateBulk struct {
	config
	err      error
	builders []*DigestRunCreate
}

// Save creates the DigestRun entities in the database.
func (drcb *DigestRunCreateBulk) Save(ctx context.Context) ([]*DigestRun, error) {
	if drcb.err != nil {
		return nil, drcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(drcb.builders))
	nodes := make([]*DigestRun, len(drcb.builders))
	mutators := make([]Mutator, len(drcb.builders))
	for i := range drcb.builders {
		func(i int, root context.Context) {
			builder := drcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DigestRunMutation)
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
					_, err = mutators[i+1].Mutate(root, drcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, drcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, drcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (drcb *DigestRunCreateBulk) SaveX(ctx context.Context) []*DigestRun {
	v, err := drcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (drcb *DigestRunCreateBulk) Exec(ctx context.Context) error {
	_, err := drcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (drcb *DigestRunCreateBulk) ExecX(ctx context.Context) {
	if err := drcb.Exec(ctx); err != nil {
		panic(err)
	}
}

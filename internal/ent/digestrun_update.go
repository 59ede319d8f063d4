// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-recap/internal/ent/digestrun"
	"github.com/fachebot/chat-recap/internal/ent/predicate"
)

// DigestRunUpdate is the builder for updating DigestRun entities.
type DigestRunUpdate struct {
	config
	hooks    []Hook
	mutation *DigestRunMutation
}

// Where appends a list predicates to the DigestRunUpdate builder.
func (dru *DigestRunUpdate) Where(ps ...predicate.DigestRun) *DigestRunUpdate {
	dru.mutation.Where(ps...)
	return dru
}

// SetUpdateTime sets the "update_time" field.
func (dru *DigestRunUpdate) SetUpdateTime(t time.Time) *DigestRunUpdate {
	dru.mutation.SetUpdateTime(t)
	return dru
}

// SetStartTime sets the "start_time" field.
func (dru *DigestRunUpdate) SetStartTime(t time.Time) *DigestRunUpdate {
	dru.mutation.SetStartTime(t)
	return dru
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (dru *DigestRunUpdate) SetNillableStartTime(t *time.Time) *DigestRunUpdate {
	if t != nil {
		dru.SetStartTime(*t)
	}
	return dru
}

// SetEndTime sets the "end_time" field.
func (dru *DigestRunUpdate) SetEndTime(t time.Time) *DigestRunUpdate {
	dru.mutation.SetEndTime(t)
	return dru
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (dru *DigestRunUpdate) SetNillableEndTime(t *time.Time) *DigestRunUpdate {
	if t != nil {
		dru.SetEndTime(*t)
	}
	return dru
}

// SetStatus sets the "status" field.
func (dru *DigestRunUpdate) SetStatus(d digestrun.Status) *DigestRunUpdate {
	dru.mutation.SetStatus(d)
	return dru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (dru *DigestRunUpdate) SetNillableStatus(d *digestrun.Status) *DigestRunUpdate {
	if d != nil {
		dru.SetStatus(*d)
	}
	return dru
}

// SetErrorMessage sets the "error_message" field.
func (dru *DigestRunUpdate) SetErrorMessage(s string) *DigestRunUpdate {
	dru.mutation.SetErrorMessage(s)
	return dru
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (dru *DigestRunUpdate) SetNillableErrorMessage(s *string) *DigestRunUpdate {
	if s != nil {
		dru.SetErrorMessage(*s)
	}
	return dru
}

// ClearErrorMessage clears the value of the "error_message" field.
func (dru *DigestRunUpdate) ClearErrorMessage() *DigestRunUpdate {
	dru.mutation.ClearErrorMessage()
	return dru
}

// Mutation returns the DigestRunMutation object of the builder.
func (dru *DigestRunUpdate) Mutation() *DigestRunMutation {
	return dru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dru *DigestRunUpdate) Save(ctx context.Context) (int, error) {
	dru.defaults()
	return withHooks(ctx, dru.sqlSave, dru.mutation, dru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dru *DigestRunUpdate) SaveX(ctx context.Context) int {
	affected, err := dru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dru *DigestRunUpdate) Exec(ctx context.Context) error {
	_, err := dru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dru *DigestRunUpdate) ExecX(ctx context.Context) {
	if err := dru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dru *DigestRunUpdate) defaults() {
	if _, ok := dru.mutation.UpdateTime(); !ok {
		v := digestrun.UpdateDefaultUpdateTime()
		dru.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dru *DigestRunUpdate) check() error {
	if v, ok := dru.mutation.Status(); ok {
		if err := digestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestRun.status": %w`, err)}
		}
	}
	return nil
}

func (dru *DigestRunUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(digestrun.Table, digestrun.Columns, sqlgraph.NewFieldSpec(digestrun.FieldID, field.TypeInt))
	if ps := dru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dru.mutation.UpdateTime(); ok {
		_spec.SetField(digestrun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := dru.mutation.StartTime(); ok {
		_spec.SetField(digestrun.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := dru.mutation.EndTime(); ok {
		_spec.SetField(digestrun.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := dru.mutation.Status(); ok {
		_spec.SetField(digestrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := dru.mutation.ErrorMessage(); ok {
		_spec.SetField(digestrun.FieldErrorMessage, field.TypeString, value)
	}
	if dru.mutation.ErrorMessageCleared() {
		_spec.ClearField(digestrun.FieldErrorMessage, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dru.mutation.done = true
	return n, nil
}

// DigestRunUpdateOne is the builder for updating a single DigestRun entity.
type DigestRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DigestRunMutation
}

// SetUpdateTime sets the "update_time" field.
func (druo *DigestRunUpdateOne) SetUpdateTime(t time.Time) *DigestRunUpdateOne {
	druo.mutation.SetUpdateTime(t)
	return druo
}

// SetStartTime sets the "start_time" field.
func (druo *DigestRunUpdateOne) SetStartTime(t time.Time) *DigestRunUpdateOne {
	druo.mutation.SetStartTime(t)
	return druo
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (druo *DigestRunUpdateOne) SetNillableStartTime(t *time.Time) *DigestRunUpdateOne {
	if t != nil {
		druo.SetStartTime(*t)
	}
	return druo
}

// SetEndTime sets the "end_time" field.
func (druo *DigestRunUpdateOne) SetEndTime(t time.Time) *DigestRunUpdateOne {
	druo.mutation.SetEndTime(t)
	return druo
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (druo *DigestRunUpdateOne) SetNillableEndTime(t *time.Time) *DigestRunUpdateOne {
	if t != nil {
		druo.SetEndTime(*t)
	}
	return druo
}

// SetStatus sets the "status" field.
func (druo *DigestRunUpdateOne) SetStatus(d digestrun.Status) *DigestRunUpdateOne {
	druo.mutation.SetStatus(d)
	return druo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (druo *DigestRunUpdateOne) SetNillableStatus(d *digestrun.Status) *DigestRunUpdateOne {
	if d != nil {
		druo.SetStatus(*d)
	}
	return druo
}

// SetErrorMessage sets the "error_message" field.
func (druo *DigestRunUpdateOne) SetErrorMessage(s string) *DigestRunUpdateOne {
	druo.mutation.SetErrorMessage(s)
	return druo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (druo *DigestRunUpdateOne) SetNillableErrorMessage(s *string) *DigestRunUpdateOne {
	if s != nil {
		druo.SetErrorMessage(*s)
	}
	return druo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (druo *DigestRunUpdateOne) ClearErrorMessage() *DigestRunUpdateOne {
	druo.mutation.ClearErrorMessage()
	return druo
}

// Mutation returns the DigestRunMutation object of the builder.
func (druo *DigestRunUpdateOne) Mutation() *DigestRunMutation {
	return druo.mutation
}

// Where appends a list predicates to the DigestRunUpdate builder.
func (druo *DigestRunUpdateOne) Where(ps ...predicate.DigestRun) *DigestRunUpdateOne {
	druo.mutation.Where(ps...)
	return druo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (druo *DigestRunUpdateOne) Select(field string, fields ...string) *DigestRunUpdateOne {
	druo.fields = append([]string{field}, fields...)
	return druo
}

// Save executes the query and returns the updated DigestRun entity.
func (druo *DigestRunUpdateOne) Save(ctx context.Context) (*DigestRun, error) {
	druo.defaults()
	return withHooks(ctx, druo.sqlSave, druo.mutation, druo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (druo *DigestRunUpdateOne) SaveX(ctx context.Context) *DigestRun {
	node, err := druo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (druo *DigestRunUpdateOne) Exec(ctx context.Context) error {
	_, err := druo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (druo *DigestRunUpdateOne) ExecX(ctx context.Context) {
	if err := druo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (druo *DigestRunUpdateOne) defaults() {
	if _, ok := druo.mutation.UpdateTime(); !ok {
		v := digestrun.UpdateDefaultUpdateTime()
		druo.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (druo *DigestRunUpdateOne) check() error {
	if v, ok := druo.mutation.Status(); ok {
		if err := digestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestRun.status": %w`, err)}
		}
	}
	return nil
}

func (druo *DigestRunUpdateOne) sqlSave(ctx context.Context) (_node *DigestRun, err error) {
	if err := druo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(digestrun.Table, digestrun.Columns, sqlgraph.NewFieldSpec(digestrun.FieldID, field.TypeInt))
	id, ok := druo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DigestRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := druo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, digestrun.FieldID)
		for _, f := range fields {
			if !digestrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != digestrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := druo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := druo.mutation.UpdateTime(); ok {
		_spec.SetField(digestrun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := druo.mutation.StartTime(); ok {
		_spec.SetField(digestrun.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := druo.mutation.EndTime(); ok {
		_spec.SetField(digestrun.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := druo.mutation.Status(); ok {
		_spec.SetField(digestrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := druo.mutation.ErrorMessage(); ok {
		_spec.SetField(digestrun.FieldErrorMessage, field.TypeString, value)
	}
	if druo.mutation.ErrorMessageCleared() {
		_spec.ClearField(digestrun.FieldErrorMessage, field.TypeString)
	}
	_node = &DigestRun{config: druo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, druo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	druo.mutation.done = true
	return _node, nil
}

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
	"github.com/fachebot/chat-recap/internal/ent/predicate"
	"github.com/fachebot/chat-recap/internal/ent/summary"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryMutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (su *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetUpdateTime sets the "update_time" field.
func (su *SummaryUpdate) SetUpdateTime(t time.Time) *SummaryUpdate {
	su.mutation.SetUpdateTime(t)
	return su
}

// SetConversationID sets the "conversation_id" field.
func (su *SummaryUpdate) SetConversationID(s string) *SummaryUpdate {
	su.mutation.SetConversationID(s)
	return su
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableConversationID(s *string) *SummaryUpdate {
	if s != nil {
		su.SetConversationID(*s)
	}
	return su
}

// SetEngine sets the "engine" field.
func (su *SummaryUpdate) SetEngine(s string) *SummaryUpdate {
	su.mutation.SetEngine(s)
	return su
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableEngine(s *string) *SummaryUpdate {
	if s != nil {
		su.SetEngine(*s)
	}
	return su
}

// SetSummaryDate sets the "summary_date" field.
func (su *SummaryUpdate) SetSummaryDate(t time.Time) *SummaryUpdate {
	su.mutation.SetSummaryDate(t)
	return su
}

// SetNillableSummaryDate sets the "summary_date" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableSummaryDate(t *time.Time) *SummaryUpdate {
	if t != nil {
		su.SetSummaryDate(*t)
	}
	return su
}

// SetContent sets the "content" field.
func (su *SummaryUpdate) SetContent(s string) *SummaryUpdate {
	su.mutation.SetContent(s)
	return su
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableContent(s *string) *SummaryUpdate {
	if s != nil {
		su.SetContent(*s)
	}
	return su
}

// Mutation returns the SummaryMutation object of the builder.
func (su *SummaryUpdate) Mutation() *SummaryMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SummaryUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SummaryUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *SummaryUpdate) defaults() {
	if _, ok := su.mutation.UpdateTime(); !ok {
		v := summary.UpdateDefaultUpdateTime()
		su.mutation.SetUpdateTime(v)
	}
}

func (su *SummaryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.UpdateTime(); ok {
		_spec.SetField(summary.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := su.mutation.ConversationID(); ok {
		_spec.SetField(summary.FieldConversationID, field.TypeString, value)
	}
	if value, ok := su.mutation.Engine(); ok {
		_spec.SetField(summary.FieldEngine, field.TypeString, value)
	}
	if value, ok := su.mutation.SummaryDate(); ok {
		_spec.SetField(summary.FieldSummaryDate, field.TypeTime, value)
	}
	if value, ok := su.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryMutation
}

// SetUpdateTime sets the "update_time" field.
func (suo *SummaryUpdateOne) SetUpdateTime(t time.Time) *SummaryUpdateOne {
	suo.mutation.SetUpdateTime(t)
	return suo
}

// SetConversationID sets the "conversation_id" field.
func (suo *SummaryUpdateOne) SetConversationID(s string) *SummaryUpdateOne {
	suo.mutation.SetConversationID(s)
	return suo
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableConversationID(s *string) *SummaryUpdateOne {
	if s != nil {
		suo.SetConversationID(*s)
	}
	return suo
}

// SetEngine sets the "engine" field.
func (suo *SummaryUpdateOne) SetEngine(s string) *SummaryUpdateOne {
	suo.mutation.SetEngine(s)
	return suo
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableEngine(s *string) *SummaryUpdateOne {
	if s != nil {
		suo.SetEngine(*s)
	}
	return suo
}

// SetSummaryDate sets the "summary_date" field.
func (suo *SummaryUpdateOne) SetSummaryDate(t time.Time) *SummaryUpdateOne {
	suo.mutation.SetSummaryDate(t)
	return suo
}

// SetNillableSummaryDate sets the "summary_date" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableSummaryDate(t *time.Time) *SummaryUpdateOne {
	if t != nil {
		suo.SetSummaryDate(*t)
	}
	return suo
}

// SetContent sets the "content" field.
func (suo *SummaryUpdateOne) SetContent(s string) *SummaryUpdateOne {
	suo.mutation.SetContent(s)
	return suo
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableContent(s *string) *SummaryUpdateOne {
	if s != nil {
		suo.SetContent(*s)
	}
	return suo
}

// Mutation returns the SummaryMutation object of the builder.
func (suo *SummaryUpdateOne) Mutation() *SummaryMutation {
	return suo.mutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (suo *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Summary entity.
func (suo *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *SummaryUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdateTime(); !ok {
		v := summary.UpdateDefaultUpdateTime()
		suo.mutation.SetUpdateTime(v)
	}
}

func (suo *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.UpdateTime(); ok {
		_spec.SetField(summary.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := suo.mutation.ConversationID(); ok {
		_spec.SetField(summary.FieldConversationID, field.TypeString, value)
	}
	if value, ok := suo.mutation.Engine(); ok {
		_spec.SetField(summary.FieldEngine, field.TypeString, value)
	}
	if value, ok := suo.mutation.SummaryDate(); ok {
		_spec.SetField(summary.FieldSummaryDate, field.TypeTime, value)
	}
	if value, ok := suo.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
	}
	_node = &Summary{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-recap/internal/ent/digestrun"
	"github.com/fachebot/chat-recap/internal/ent/predicate"
)

// DigestRunQuery is the builder for querying DigestRun entities.
type DigestRunQuery struct {
	config
	ctx        *QueryContext
	order      []digestrun.OrderOption
	inters     []Interceptor
	predicates []predicate.DigestRun
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DigestRunQuery builder.
func (drq *DigestRunQuery) Where(ps ...predicate.DigestRun) *DigestRunQuery {
	drq.predicates = append(drq.predicates, ps...)
	return drq
}

// Limit the number of records to be returned by this query.
func (drq *DigestRunQuery) Limit(limit int) *DigestRunQuery {
	drq.ctx.Limit = &limit
	return drq
}

// Offset to start from.
func (drq *DigestRunQuery) Offset(offset int) *DigestRunQuery {
	drq.ctx.Offset = &offset
	return drq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (drq *DigestRunQuery) Unique(unique bool) *DigestRunQuery {
	drq.ctx.Unique = &unique
	return drq
}

// Order specifies how the records should be ordered.
func (drq *DigestRunQuery) Order(o ...digestrun.OrderOption) *DigestRunQuery {
	drq.order = append(drq.order, o...)
	return drq
}

// First returns the first DigestRun entity from the query.
// Returns a *NotFoundError when no DigestRun was found.
func (drq *DigestRunQuery) First(ctx context.Context) (*DigestRun, error) {
	nodes, err := drq.Limit(1).All(setContextOp(ctx, drq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{digestrun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (drq *DigestRunQuery) FirstX(ctx context.Context) *DigestRun {
	node, err := drq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DigestRun ID from the query.
// Returns a *NotFoundError when no DigestRun ID was found.
func (drq *DigestRunQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = drq.Limit(1).IDs(setContextOp(ctx, drq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{digestrun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (drq *DigestRunQuery) FirstIDX(ctx context.Context) int {
	id, err := drq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DigestRun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DigestRun entity is found.
// Returns a *NotFoundError when no DigestRun entities are found.
func (drq *DigestRunQuery) Only(ctx context.Context) (*DigestRun, error) {
	nodes, err := drq.Limit(2).All(setContextOp(ctx, drq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{digestrun.Label}
	default:
		return nil, &NotSingularError{digestrun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (drq *DigestRunQuery) OnlyX(ctx context.Context) *DigestRun {
	node, err := drq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DigestRun ID in the query.
// Returns a *NotSingularError when more than one DigestRun ID is found.
// Returns a *NotFoundError when no entities are found.
func (drq *DigestRunQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = drq.Limit(2).IDs(setContextOp(ctx, drq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{digestrun.Label}
	default:
		err = &NotSingularError{digestrun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (drq *DigestRunQuery) OnlyIDX(ctx context.Context) int {
	id, err := drq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DigestRuns.
func (drq *DigestRunQuery) All(ctx context.Context) ([]*DigestRun, error) {
	ctx = setContextOp(ctx, drq.ctx, ent.OpQueryAll)
	if err := drq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DigestRun, *DigestRunQuery]()
	return withInterceptors[[]*DigestRun](ctx, drq, qr, drq.inters)
}

// AllX is like All, but panics if an error occurs.
func (drq *DigestRunQuery) AllX(ctx context.Context) []*DigestRun {
	nodes, err := drq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DigestRun IDs.
func (drq *DigestRunQuery) IDs(ctx context.Context) (ids []int, err error) {
	if drq.ctx.Unique == nil && drq.path != nil {
		drq.Unique(true)
	}
	ctx = setContextOp(ctx, drq.ctx, ent.OpQueryIDs)
	if err = drq.Select(digestrun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (drq *DigestRunQuery) IDsX(ctx context.Context) []int {
	ids, err := drq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (drq *DigestRunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, drq.ctx, ent.OpQueryCount)
	if err := drq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, drq, querierCount[*DigestRunQuery](), drq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (drq *DigestRunQuery) CountX(ctx context.Context) int {
	count, err := drq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (drq *DigestRunQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, drq.ctx, ent.OpQueryExist)
	switch _, err := drq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (drq *DigestRunQuery) ExistX(ctx context.Context) bool {
	exist, err := drq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DigestRunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (drq *DigestRunQuery) Clone() *DigestRunQuery {
	if drq == nil {
		return nil
	}
	return &DigestRunQuery{
		config:     drq.config,
		ctx:        drq.ctx.Clone(),
		order:      append([]digestrun.OrderOption{}, drq.order...),
		inters:     append([]Interceptor{}, drq.inters...),
		predicates: append([]predicate.DigestRun{}, drq.predicates...),
		// clone intermediate query.
		sql:  drq.sql.Clone(),
		path: drq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DigestRun.Query().
//		GroupBy(digestrun.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (drq *DigestRunQuery) GroupBy(field string, fields ...string) *DigestRunGroupBy {
	drq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DigestRunGroupBy{build: drq}
	grbuild.flds = &drq.ctx.Fields
	grbuild.label = digestrun.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//	}
//
//	client.DigestRun.Query().
//		Select(digestrun.FieldCreateTime).
//		Scan(ctx, &v)
func (drq *DigestRunQuery) Select(fields ...string) *DigestRunSelect {
	drq.ctx.Fields = append(drq.ctx.Fields, fields...)
	sbuild := &DigestRunSelect{DigestRunQuery: drq}
	sbuild.label = digestrun.Label
	sbuild.flds, sbuild.scan = &drq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DigestRunSelect configured with the given aggregations.
func (drq *DigestRunQuery) Aggregate(fns ...AggregateFunc) *DigestRunSelect {
	return drq.Select().Aggregate(fns...)
}

func (drq *DigestRunQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range drq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, drq); err != nil {
				return err
			}
		}
	}
	for _, f := range drq.ctx.Fields {
		if !digestrun.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if drq.path != nil {
		prev, err := drq.path(ctx)
		if err != nil {
			return err
		}
		drq.sql = prev
	}
	return nil
}

func (drq *DigestRunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DigestRun, error) {
	var (
		nodes = []*DigestRun{}
		_spec = drq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DigestRun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DigestRun{config: drq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, drq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (drq *DigestRunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := drq.querySpec()
	_spec.Node.Columns = drq.ctx.Fields
	if len(drq.ctx.Fields) > 0 {
		_spec.Unique = drq.ctx.Unique != nil && *drq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, drq.driver, _spec)
}

func (drq *DigestRunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(digestrun.Table, digestrun.Columns, sqlgraph.NewFieldSpec(digestrun.FieldID, field.TypeInt))
	_spec.From = drq.sql
	if unique := drq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if drq.path != nil {
		_spec.Unique = true
	}
	if fields := drq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, digestrun.FieldID)
		for i := range fields {
			if fields[i] != digestrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := drq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := drq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := drq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := drq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (drq *DigestRunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(drq.driver.Dialect())
	t1 := builder.Table(digestrun.Table)
	columns := drq.ctx.Fields
	if len(columns) == 0 {
		columns = digestrun.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if drq.sql != nil {
		selector = drq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if drq.ctx.Unique != nil && *drq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range drq.predicates {
		p(selector)
	}
	for _, p := range drq.order {
		p(selector)
	}
	if offset := drq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := drq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DigestRunGroupBy is the group-by builder for DigestRun entities.
type DigestRunGroupBy struct {
	selector
	build *DigestRunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (drgb *DigestRunGroupBy) Aggregate(fns ...AggregateFunc) *DigestRunGroupBy {
	drgb.fns = append(drgb.fns, fns...)
	return drgb
}

// Scan applies the selector query and scans the result into the given value.
func (drgb *DigestRunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, drgb.build.ctx, ent.OpQueryGroupBy)
	if err := drgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DigestRunQuery, *DigestRunGroupBy](ctx, drgb.build, drgb, drgb.build.inters, v)
}

func (drgb *DigestRunGroupBy) sqlScan(ctx context.Context, root *DigestRunQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(drgb.fns))
	for _, fn := range drgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*drgb.flds)+len(drgb.fns))
		for _, f := range *drgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*drgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := drgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DigestRunSelect is the builder for selecting fields of DigestRun entities.
type DigestRunSelect struct {
	*DigestRunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (drs *DigestRunSelect) Aggregate(fns ...AggregateFunc) *DigestRunSelect {
	drs.fns = append(drs.fns, fns...)
	return drs
}

// Scan applies the selector query and scans the result into the given value.
func (drs *DigestRunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, drs.ctx, ent.OpQuerySelect)
	if err := drs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DigestRunQuery, *DigestRunSelect](ctx, drs.DigestRunQuery, drs, drs.inters, v)
}

func (drs *DigestRunSelect) sqlScan(ctx context.Context, root *DigestRunQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(drs.fns))
	for _, fn := range drs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*drs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := drs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

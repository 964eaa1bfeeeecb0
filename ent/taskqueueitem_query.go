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
	"github.com/crewkit/squadron/ent/predicate"
	"github.com/crewkit/squadron/ent/taskqueueitem"
)

// TaskQueueItemQuery is the builder for querying TaskQueueItem entities.
type TaskQueueItemQuery struct {
	config
	ctx        *QueryContext
	order      []taskqueueitem.OrderOption
	inters     []Interceptor
	predicates []predicate.TaskQueueItem
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaskQueueItemQuery builder.
func (tqiq *TaskQueueItemQuery) Where(ps ...predicate.TaskQueueItem) *TaskQueueItemQuery {
	tqiq.predicates = append(tqiq.predicates, ps...)
	return tqiq
}

// Limit the number of records to be returned by this query.
func (tqiq *TaskQueueItemQuery) Limit(limit int) *TaskQueueItemQuery {
	tqiq.ctx.Limit = &limit
	return tqiq
}

// Offset to start from.
func (tqiq *TaskQueueItemQuery) Offset(offset int) *TaskQueueItemQuery {
	tqiq.ctx.Offset = &offset
	return tqiq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (tqiq *TaskQueueItemQuery) Unique(unique bool) *TaskQueueItemQuery {
	tqiq.ctx.Unique = &unique
	return tqiq
}

// Order specifies how the records should be ordered.
func (tqiq *TaskQueueItemQuery) Order(o ...taskqueueitem.OrderOption) *TaskQueueItemQuery {
	tqiq.order = append(tqiq.order, o...)
	return tqiq
}

// First returns the first TaskQueueItem entity from the query.
// Returns a *NotFoundError when no TaskQueueItem was found.
func (tqiq *TaskQueueItemQuery) First(ctx context.Context) (*TaskQueueItem, error) {
	nodes, err := tqiq.Limit(1).All(setContextOp(ctx, tqiq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{taskqueueitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (tqiq *TaskQueueItemQuery) FirstX(ctx context.Context) *TaskQueueItem {
	node, err := tqiq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaskQueueItem ID from the query.
// Returns a *NotFoundError when no TaskQueueItem ID was found.
func (tqiq *TaskQueueItemQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = tqiq.Limit(1).IDs(setContextOp(ctx, tqiq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{taskqueueitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (tqiq *TaskQueueItemQuery) FirstIDX(ctx context.Context) string {
	id, err := tqiq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaskQueueItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaskQueueItem entity is found.
// Returns a *NotFoundError when no TaskQueueItem entities are found.
func (tqiq *TaskQueueItemQuery) Only(ctx context.Context) (*TaskQueueItem, error) {
	nodes, err := tqiq.Limit(2).All(setContextOp(ctx, tqiq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{taskqueueitem.Label}
	default:
		return nil, &NotSingularError{taskqueueitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (tqiq *TaskQueueItemQuery) OnlyX(ctx context.Context) *TaskQueueItem {
	node, err := tqiq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaskQueueItem ID in the query.
// Returns a *NotSingularError when more than one TaskQueueItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (tqiq *TaskQueueItemQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = tqiq.Limit(2).IDs(setContextOp(ctx, tqiq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{taskqueueitem.Label}
	default:
		err = &NotSingularError{taskqueueitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (tqiq *TaskQueueItemQuery) OnlyIDX(ctx context.Context) string {
	id, err := tqiq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaskQueueItems.
func (tqiq *TaskQueueItemQuery) All(ctx context.Context) ([]*TaskQueueItem, error) {
	ctx = setContextOp(ctx, tqiq.ctx, ent.OpQueryAll)
	if err := tqiq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaskQueueItem, *TaskQueueItemQuery]()
	return withInterceptors[[]*TaskQueueItem](ctx, tqiq, qr, tqiq.inters)
}

// AllX is like All, but panics if an error occurs.
func (tqiq *TaskQueueItemQuery) AllX(ctx context.Context) []*TaskQueueItem {
	nodes, err := tqiq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaskQueueItem IDs.
func (tqiq *TaskQueueItemQuery) IDs(ctx context.Context) (ids []string, err error) {
	if tqiq.ctx.Unique == nil && tqiq.path != nil {
		tqiq.Unique(true)
	}
	ctx = setContextOp(ctx, tqiq.ctx, ent.OpQueryIDs)
	if err = tqiq.Select(taskqueueitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (tqiq *TaskQueueItemQuery) IDsX(ctx context.Context) []string {
	ids, err := tqiq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (tqiq *TaskQueueItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, tqiq.ctx, ent.OpQueryCount)
	if err := tqiq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, tqiq, querierCount[*TaskQueueItemQuery](), tqiq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (tqiq *TaskQueueItemQuery) CountX(ctx context.Context) int {
	count, err := tqiq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (tqiq *TaskQueueItemQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, tqiq.ctx, ent.OpQueryExist)
	switch _, err := tqiq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (tqiq *TaskQueueItemQuery) ExistX(ctx context.Context) bool {
	exist, err := tqiq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaskQueueItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (tqiq *TaskQueueItemQuery) Clone() *TaskQueueItemQuery {
	if tqiq == nil {
		return nil
	}
	return &TaskQueueItemQuery{
		config:     tqiq.config,
		ctx:        tqiq.ctx.Clone(),
		order:      append([]taskqueueitem.OrderOption{}, tqiq.order...),
		inters:     append([]Interceptor{}, tqiq.inters...),
		predicates: append([]predicate.TaskQueueItem{}, tqiq.predicates...),
		// clone intermediate query.
		sql:  tqiq.sql.Clone(),
		path: tqiq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CommanderID string `json:"commander_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TaskQueueItem.Query().
//		GroupBy(taskqueueitem.FieldCommanderID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (tqiq *TaskQueueItemQuery) GroupBy(field string, fields ...string) *TaskQueueItemGroupBy {
	tqiq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaskQueueItemGroupBy{build: tqiq}
	grbuild.flds = &tqiq.ctx.Fields
	grbuild.label = taskqueueitem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CommanderID string `json:"commander_id,omitempty"`
//	}
//
//	client.TaskQueueItem.Query().
//		Select(taskqueueitem.FieldCommanderID).
//		Scan(ctx, &v)
func (tqiq *TaskQueueItemQuery) Select(fields ...string) *TaskQueueItemSelect {
	tqiq.ctx.Fields = append(tqiq.ctx.Fields, fields...)
	sbuild := &TaskQueueItemSelect{TaskQueueItemQuery: tqiq}
	sbuild.label = taskqueueitem.Label
	sbuild.flds, sbuild.scan = &tqiq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaskQueueItemSelect configured with the given aggregations.
func (tqiq *TaskQueueItemQuery) Aggregate(fns ...AggregateFunc) *TaskQueueItemSelect {
	return tqiq.Select().Aggregate(fns...)
}

func (tqiq *TaskQueueItemQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range tqiq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, tqiq); err != nil {
				return err
			}
		}
	}
	for _, f := range tqiq.ctx.Fields {
		if !taskqueueitem.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if tqiq.path != nil {
		prev, err := tqiq.path(ctx)
		if err != nil {
			return err
		}
		tqiq.sql = prev
	}
	return nil
}

func (tqiq *TaskQueueItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaskQueueItem, error) {
	var (
		nodes = []*TaskQueueItem{}
		_spec = tqiq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaskQueueItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaskQueueItem{config: tqiq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, tqiq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (tqiq *TaskQueueItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := tqiq.querySpec()
	_spec.Node.Columns = tqiq.ctx.Fields
	if len(tqiq.ctx.Fields) > 0 {
		_spec.Unique = tqiq.ctx.Unique != nil && *tqiq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, tqiq.driver, _spec)
}

func (tqiq *TaskQueueItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(taskqueueitem.Table, taskqueueitem.Columns, sqlgraph.NewFieldSpec(taskqueueitem.FieldID, field.TypeString))
	_spec.From = tqiq.sql
	if unique := tqiq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if tqiq.path != nil {
		_spec.Unique = true
	}
	if fields := tqiq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskqueueitem.FieldID)
		for i := range fields {
			if fields[i] != taskqueueitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := tqiq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := tqiq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := tqiq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := tqiq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (tqiq *TaskQueueItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(tqiq.driver.Dialect())
	t1 := builder.Table(taskqueueitem.Table)
	columns := tqiq.ctx.Fields
	if len(columns) == 0 {
		columns = taskqueueitem.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if tqiq.sql != nil {
		selector = tqiq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if tqiq.ctx.Unique != nil && *tqiq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range tqiq.predicates {
		p(selector)
	}
	for _, p := range tqiq.order {
		p(selector)
	}
	if offset := tqiq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := tqiq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TaskQueueItemGroupBy is the group-by builder for TaskQueueItem entities.
type TaskQueueItemGroupBy struct {
	selector
	build *TaskQueueItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tqigb *TaskQueueItemGroupBy) Aggregate(fns ...AggregateFunc) *TaskQueueItemGroupBy {
	tqigb.fns = append(tqigb.fns, fns...)
	return tqigb
}

// Scan applies the selector query and scans the result into the given value.
func (tqigb *TaskQueueItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tqigb.build.ctx, ent.OpQueryGroupBy)
	if err := tqigb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskQueueItemQuery, *TaskQueueItemGroupBy](ctx, tqigb.build, tqigb, tqigb.build.inters, v)
}

func (tqigb *TaskQueueItemGroupBy) sqlScan(ctx context.Context, root *TaskQueueItemQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tqigb.fns))
	for _, fn := range tqigb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tqigb.flds)+len(tqigb.fns))
		for _, f := range *tqigb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tqigb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tqigb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TaskQueueItemSelect is the builder for selecting fields of TaskQueueItem entities.
type TaskQueueItemSelect struct {
	*TaskQueueItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tqis *TaskQueueItemSelect) Aggregate(fns ...AggregateFunc) *TaskQueueItemSelect {
	tqis.fns = append(tqis.fns, fns...)
	return tqis
}

// Scan applies the selector query and scans the result into the given value.
func (tqis *TaskQueueItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tqis.ctx, ent.OpQuerySelect)
	if err := tqis.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskQueueItemQuery, *TaskQueueItemSelect](ctx, tqis.TaskQueueItemQuery, tqis, tqis.inters, v)
}

func (tqis *TaskQueueItemSelect) sqlScan(ctx context.Context, root *TaskQueueItemQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tqis.fns))
	for _, fn := range tqis.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tqis.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tqis.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

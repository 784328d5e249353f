// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/ent/generated/predicate"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// WatchedDirectoryQuery is the builder for querying WatchedDirectory entities.
type WatchedDirectoryQuery struct {
	config
	ctx        *QueryContext
	order      []watcheddirectory.OrderOption
	inters     []Interceptor
	predicates []predicate.WatchedDirectory
	withItems  *CatalogItemQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WatchedDirectoryQuery builder.
func (_q *WatchedDirectoryQuery) Where(ps ...predicate.WatchedDirectory) *WatchedDirectoryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *WatchedDirectoryQuery) Limit(limit int) *WatchedDirectoryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *WatchedDirectoryQuery) Offset(offset int) *WatchedDirectoryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *WatchedDirectoryQuery) Unique(unique bool) *WatchedDirectoryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *WatchedDirectoryQuery) Order(o ...watcheddirectory.OrderOption) *WatchedDirectoryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryItems chains the current query on the "items" edge.
func (_q *WatchedDirectoryQuery) QueryItems() *CatalogItemQuery {
	query := (&CatalogItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(watcheddirectory.Table, watcheddirectory.FieldID, selector),
			sqlgraph.To(catalogitem.Table, catalogitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, watcheddirectory.ItemsTable, watcheddirectory.ItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WatchedDirectory entity from the query.
// Returns a *NotFoundError when no WatchedDirectory was found.
func (_q *WatchedDirectoryQuery) First(ctx context.Context) (*WatchedDirectory, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{watcheddirectory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *WatchedDirectoryQuery) FirstX(ctx context.Context) *WatchedDirectory {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WatchedDirectory ID from the query.
// Returns a *NotFoundError when no WatchedDirectory ID was found.
func (_q *WatchedDirectoryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{watcheddirectory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *WatchedDirectoryQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WatchedDirectory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WatchedDirectory entity is found.
// Returns a *NotFoundError when no WatchedDirectory entities are found.
func (_q *WatchedDirectoryQuery) Only(ctx context.Context) (*WatchedDirectory, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{watcheddirectory.Label}
	default:
		return nil, &NotSingularError{watcheddirectory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *WatchedDirectoryQuery) OnlyX(ctx context.Context) *WatchedDirectory {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WatchedDirectory ID in the query.
// Returns a *NotSingularError when more than one WatchedDirectory ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *WatchedDirectoryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{watcheddirectory.Label}
	default:
		err = &NotSingularError{watcheddirectory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *WatchedDirectoryQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WatchedDirectories.
func (_q *WatchedDirectoryQuery) All(ctx context.Context) ([]*WatchedDirectory, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WatchedDirectory, *WatchedDirectoryQuery]()
	return withInterceptors[[]*WatchedDirectory](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *WatchedDirectoryQuery) AllX(ctx context.Context) []*WatchedDirectory {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WatchedDirectory IDs.
func (_q *WatchedDirectoryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(watcheddirectory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *WatchedDirectoryQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *WatchedDirectoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*WatchedDirectoryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *WatchedDirectoryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *WatchedDirectoryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *WatchedDirectoryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WatchedDirectoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *WatchedDirectoryQuery) Clone() *WatchedDirectoryQuery {
	if _q == nil {
		return nil
	}
	return &WatchedDirectoryQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]watcheddirectory.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.WatchedDirectory{}, _q.predicates...),
		withItems:  _q.withItems.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithItems tells the query-builder to eager-load the nodes that are connected to
// the "items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WatchedDirectoryQuery) WithItems(opts ...func(*CatalogItemQuery)) *WatchedDirectoryQuery {
	query := (&CatalogItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withItems = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WatchedDirectory.Query().
//		GroupBy(watcheddirectory.FieldCreatedAt).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (_q *WatchedDirectoryQuery) GroupBy(field string, fields ...string) *WatchedDirectoryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WatchedDirectoryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = watcheddirectory.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.WatchedDirectory.Query().
//		Select(watcheddirectory.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *WatchedDirectoryQuery) Select(fields ...string) *WatchedDirectorySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &WatchedDirectorySelect{WatchedDirectoryQuery: _q}
	sbuild.label = watcheddirectory.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WatchedDirectorySelect configured with the given aggregations.
func (_q *WatchedDirectoryQuery) Aggregate(fns ...AggregateFunc) *WatchedDirectorySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *WatchedDirectoryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !watcheddirectory.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *WatchedDirectoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WatchedDirectory, error) {
	var (
		nodes       = []*WatchedDirectory{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withItems != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WatchedDirectory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WatchedDirectory{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withItems; query != nil {
		if err := _q.loadItems(ctx, query, nodes,
			func(n *WatchedDirectory) { n.Edges.Items = []*CatalogItem{} },
			func(n *WatchedDirectory, e *CatalogItem) { n.Edges.Items = append(n.Edges.Items, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *WatchedDirectoryQuery) loadItems(ctx context.Context, query *CatalogItemQuery, nodes []*WatchedDirectory, init func(*WatchedDirectory), assign func(*WatchedDirectory, *CatalogItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*WatchedDirectory)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(catalogitem.FieldDirectoryID)
	}
	query.Where(predicate.CatalogItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(watcheddirectory.ItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DirectoryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "directory_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *WatchedDirectoryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *WatchedDirectoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(watcheddirectory.Table, watcheddirectory.Columns, sqlgraph.NewFieldSpec(watcheddirectory.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, watcheddirectory.FieldID)
		for i := range fields {
			if fields[i] != watcheddirectory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *WatchedDirectoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(watcheddirectory.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = watcheddirectory.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WatchedDirectoryGroupBy is the group-by builder for WatchedDirectory entities.
type WatchedDirectoryGroupBy struct {
	selector
	build *WatchedDirectoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *WatchedDirectoryGroupBy) Aggregate(fns ...AggregateFunc) *WatchedDirectoryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *WatchedDirectoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WatchedDirectoryQuery, *WatchedDirectoryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *WatchedDirectoryGroupBy) sqlScan(ctx context.Context, root *WatchedDirectoryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WatchedDirectorySelect is the builder for selecting fields of WatchedDirectory entities.
type WatchedDirectorySelect struct {
	*WatchedDirectoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *WatchedDirectorySelect) Aggregate(fns ...AggregateFunc) *WatchedDirectorySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *WatchedDirectorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WatchedDirectoryQuery, *WatchedDirectorySelect](ctx, _s.WatchedDirectoryQuery, _s, _s.inters, v)
}

func (_s *WatchedDirectorySelect) sqlScan(ctx context.Context, root *WatchedDirectoryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

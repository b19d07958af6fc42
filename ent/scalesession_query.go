// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jazzgym/ent/predicate"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/abhisek/jazzgym/ent/sessionscale"
	"github.com/google/uuid"
)

// ScaleSessionQuery is the builder for querying ScaleSession entities.
type ScaleSessionQuery struct {
	config
	ctx        *QueryContext
	order      []scalesession.OrderOption
	inters     []Interceptor
	predicates []predicate.ScaleSession
	withScales *SessionScaleQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScaleSessionQuery builder.
func (_q *ScaleSessionQuery) Where(ps ...predicate.ScaleSession) *ScaleSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ScaleSessionQuery) Limit(limit int) *ScaleSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ScaleSessionQuery) Offset(offset int) *ScaleSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ScaleSessionQuery) Unique(unique bool) *ScaleSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ScaleSessionQuery) Order(o ...scalesession.OrderOption) *ScaleSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryScales chains the current query on the "scales" edge.
func (_q *ScaleSessionQuery) QueryScales() *SessionScaleQuery {
	query := (&SessionScaleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(scalesession.Table, scalesession.FieldID, selector),
			sqlgraph.To(sessionscale.Table, sessionscale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scalesession.ScalesTable, scalesession.ScalesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ScaleSession entity from the query.
// Returns a *NotFoundError when no ScaleSession was found.
func (_q *ScaleSessionQuery) First(ctx context.Context) (*ScaleSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{scalesession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ScaleSessionQuery) FirstX(ctx context.Context) *ScaleSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScaleSession ID from the query.
// Returns a *NotFoundError when no ScaleSession ID was found.
func (_q *ScaleSessionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{scalesession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ScaleSessionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScaleSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScaleSession entity is found.
// Returns a *NotFoundError when no ScaleSession entities are found.
func (_q *ScaleSessionQuery) Only(ctx context.Context) (*ScaleSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{scalesession.Label}
	default:
		return nil, &NotSingularError{scalesession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ScaleSessionQuery) OnlyX(ctx context.Context) *ScaleSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScaleSession ID in the query.
// Returns a *NotSingularError when more than one ScaleSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ScaleSessionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{scalesession.Label}
	default:
		err = &NotSingularError{scalesession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ScaleSessionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScaleSessions.
func (_q *ScaleSessionQuery) All(ctx context.Context) ([]*ScaleSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScaleSession, *ScaleSessionQuery]()
	return withInterceptors[[]*ScaleSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ScaleSessionQuery) AllX(ctx context.Context) []*ScaleSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScaleSession IDs.
func (_q *ScaleSessionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(scalesession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ScaleSessionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ScaleSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ScaleSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ScaleSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ScaleSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ScaleSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScaleSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ScaleSessionQuery) Clone() *ScaleSessionQuery {
	if _q == nil {
		return nil
	}
	return &ScaleSessionQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]scalesession.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.ScaleSession{}, _q.predicates...),
		withScales: _q.withScales.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithScales tells the query-builder to eager-load the nodes that are connected to
// the "scales" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScaleSessionQuery) WithScales(opts ...func(*SessionScaleQuery)) *ScaleSessionQuery {
	query := (&SessionScaleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withScales = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StartedAt time.Time `json:"started_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ScaleSession.Query().
//		GroupBy(scalesession.FieldStartedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ScaleSessionQuery) GroupBy(field string, fields ...string) *ScaleSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScaleSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = scalesession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StartedAt time.Time `json:"started_at,omitempty"`
//	}
//
//	client.ScaleSession.Query().
//		Select(scalesession.FieldStartedAt).
//		Scan(ctx, &v)
func (_q *ScaleSessionQuery) Select(fields ...string) *ScaleSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ScaleSessionSelect{ScaleSessionQuery: _q}
	sbuild.label = scalesession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScaleSessionSelect configured with the given aggregations.
func (_q *ScaleSessionQuery) Aggregate(fns ...AggregateFunc) *ScaleSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ScaleSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !scalesession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *ScaleSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScaleSession, error) {
	var (
		nodes       = []*ScaleSession{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withScales != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScaleSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScaleSession{config: _q.config}
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
	if query := _q.withScales; query != nil {
		if err := _q.loadScales(ctx, query, nodes,
			func(n *ScaleSession) { n.Edges.Scales = []*SessionScale{} },
			func(n *ScaleSession, e *SessionScale) { n.Edges.Scales = append(n.Edges.Scales, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ScaleSessionQuery) loadScales(ctx context.Context, query *SessionScaleQuery, nodes []*ScaleSession, init func(*ScaleSession), assign func(*ScaleSession, *SessionScale)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ScaleSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.SessionScale(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(scalesession.ScalesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.scale_session_scales
		if fk == nil {
			return fmt.Errorf(`foreign-key "scale_session_scales" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "scale_session_scales" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ScaleSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ScaleSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(scalesession.Table, scalesession.Columns, sqlgraph.NewFieldSpec(scalesession.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scalesession.FieldID)
		for i := range fields {
			if fields[i] != scalesession.FieldID {
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

func (_q *ScaleSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(scalesession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = scalesession.Columns
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

// ScaleSessionGroupBy is the group-by builder for ScaleSession entities.
type ScaleSessionGroupBy struct {
	selector
	build *ScaleSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ScaleSessionGroupBy) Aggregate(fns ...AggregateFunc) *ScaleSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ScaleSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScaleSessionQuery, *ScaleSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ScaleSessionGroupBy) sqlScan(ctx context.Context, root *ScaleSessionQuery, v any) error {
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

// ScaleSessionSelect is the builder for selecting fields of ScaleSession entities.
type ScaleSessionSelect struct {
	*ScaleSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ScaleSessionSelect) Aggregate(fns ...AggregateFunc) *ScaleSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ScaleSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScaleSessionQuery, *ScaleSessionSelect](ctx, _s.ScaleSessionQuery, _s, _s.inters, v)
}

func (_s *ScaleSessionSelect) sqlScan(ctx context.Context, root *ScaleSessionQuery, v any) error {
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

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/frame"
	"framescribe/gen/ent/pipelinestep"
	"framescribe/gen/ent/predicate"
	"framescribe/gen/ent/profile"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ConversionJobQuery is the builder for querying ConversionJob entities.
type ConversionJobQuery struct {
	config
	ctx         *QueryContext
	order       []conversionjob.OrderOption
	inters      []Interceptor
	predicates  []predicate.ConversionJob
	withProfile *ProfileQuery
	withFrames  *FrameQuery
	withBatches *BatchSubmissionQuery
	withSteps   *PipelineStepQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ConversionJobQuery builder.
func (_q *ConversionJobQuery) Where(ps ...predicate.ConversionJob) *ConversionJobQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ConversionJobQuery) Limit(limit int) *ConversionJobQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ConversionJobQuery) Offset(offset int) *ConversionJobQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ConversionJobQuery) Unique(unique bool) *ConversionJobQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ConversionJobQuery) Order(o ...conversionjob.OrderOption) *ConversionJobQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProfile chains the current query on the "profile" edge.
func (_q *ConversionJobQuery) QueryProfile() *ProfileQuery {
	query := (&ProfileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, selector),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversionjob.ProfileTable, conversionjob.ProfileColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFrames chains the current query on the "frames" edge.
func (_q *ConversionJobQuery) QueryFrames() *FrameQuery {
	query := (&FrameClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, selector),
			sqlgraph.To(frame.Table, frame.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversionjob.FramesTable, conversionjob.FramesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBatches chains the current query on the "batches" edge.
func (_q *ConversionJobQuery) QueryBatches() *BatchSubmissionQuery {
	query := (&BatchSubmissionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, selector),
			sqlgraph.To(batchsubmission.Table, batchsubmission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversionjob.BatchesTable, conversionjob.BatchesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySteps chains the current query on the "steps" edge.
func (_q *ConversionJobQuery) QuerySteps() *PipelineStepQuery {
	query := (&PipelineStepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, selector),
			sqlgraph.To(pipelinestep.Table, pipelinestep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversionjob.StepsTable, conversionjob.StepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ConversionJob entity from the query.
// Returns a *NotFoundError when no ConversionJob was found.
func (_q *ConversionJobQuery) First(ctx context.Context) (*ConversionJob, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{conversionjob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ConversionJobQuery) FirstX(ctx context.Context) *ConversionJob {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ConversionJob ID from the query.
// Returns a *NotFoundError when no ConversionJob ID was found.
func (_q *ConversionJobQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{conversionjob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ConversionJobQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ConversionJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ConversionJob entity is found.
// Returns a *NotFoundError when no ConversionJob entities are found.
func (_q *ConversionJobQuery) Only(ctx context.Context) (*ConversionJob, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{conversionjob.Label}
	default:
		return nil, &NotSingularError{conversionjob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ConversionJobQuery) OnlyX(ctx context.Context) *ConversionJob {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ConversionJob ID in the query.
// Returns a *NotSingularError when more than one ConversionJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ConversionJobQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{conversionjob.Label}
	default:
		err = &NotSingularError{conversionjob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ConversionJobQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ConversionJobs.
func (_q *ConversionJobQuery) All(ctx context.Context) ([]*ConversionJob, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ConversionJob, *ConversionJobQuery]()
	return withInterceptors[[]*ConversionJob](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ConversionJobQuery) AllX(ctx context.Context) []*ConversionJob {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ConversionJob IDs.
func (_q *ConversionJobQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(conversionjob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ConversionJobQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ConversionJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ConversionJobQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ConversionJobQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ConversionJobQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ConversionJobQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ConversionJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ConversionJobQuery) Clone() *ConversionJobQuery {
	if _q == nil {
		return nil
	}
	return &ConversionJobQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]conversionjob.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.ConversionJob{}, _q.predicates...),
		withProfile: _q.withProfile.Clone(),
		withFrames:  _q.withFrames.Clone(),
		withBatches: _q.withBatches.Clone(),
		withSteps:   _q.withSteps.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProfile tells the query-builder to eager-load the nodes that are connected to
// the "profile" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConversionJobQuery) WithProfile(opts ...func(*ProfileQuery)) *ConversionJobQuery {
	query := (&ProfileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProfile = query
	return _q
}

// WithFrames tells the query-builder to eager-load the nodes that are connected to
// the "frames" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConversionJobQuery) WithFrames(opts ...func(*FrameQuery)) *ConversionJobQuery {
	query := (&FrameClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFrames = query
	return _q
}

// WithBatches tells the query-builder to eager-load the nodes that are connected to
// the "batches" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConversionJobQuery) WithBatches(opts ...func(*BatchSubmissionQuery)) *ConversionJobQuery {
	query := (&BatchSubmissionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBatches = query
	return _q
}

// WithSteps tells the query-builder to eager-load the nodes that are connected to
// the "steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ConversionJobQuery) WithSteps(opts ...func(*PipelineStepQuery)) *ConversionJobQuery {
	query := (&PipelineStepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSteps = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProfileID uuid.UUID `json:"profile_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ConversionJob.Query().
//		GroupBy(conversionjob.FieldProfileID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ConversionJobQuery) GroupBy(field string, fields ...string) *ConversionJobGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ConversionJobGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = conversionjob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProfileID uuid.UUID `json:"profile_id,omitempty"`
//	}
//
//	client.ConversionJob.Query().
//		Select(conversionjob.FieldProfileID).
//		Scan(ctx, &v)
func (_q *ConversionJobQuery) Select(fields ...string) *ConversionJobSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ConversionJobSelect{ConversionJobQuery: _q}
	sbuild.label = conversionjob.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ConversionJobSelect configured with the given aggregations.
func (_q *ConversionJobQuery) Aggregate(fns ...AggregateFunc) *ConversionJobSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ConversionJobQuery) prepareQuery(ctx context.Context) error {
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
		if !conversionjob.ValidColumn(f) {
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

func (_q *ConversionJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ConversionJob, error) {
	var (
		nodes       = []*ConversionJob{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withProfile != nil,
			_q.withFrames != nil,
			_q.withBatches != nil,
			_q.withSteps != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ConversionJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ConversionJob{config: _q.config}
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
	if query := _q.withProfile; query != nil {
		if err := _q.loadProfile(ctx, query, nodes, nil,
			func(n *ConversionJob, e *Profile) { n.Edges.Profile = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFrames; query != nil {
		if err := _q.loadFrames(ctx, query, nodes,
			func(n *ConversionJob) { n.Edges.Frames = []*Frame{} },
			func(n *ConversionJob, e *Frame) { n.Edges.Frames = append(n.Edges.Frames, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBatches; query != nil {
		if err := _q.loadBatches(ctx, query, nodes,
			func(n *ConversionJob) { n.Edges.Batches = []*BatchSubmission{} },
			func(n *ConversionJob, e *BatchSubmission) { n.Edges.Batches = append(n.Edges.Batches, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSteps; query != nil {
		if err := _q.loadSteps(ctx, query, nodes,
			func(n *ConversionJob) { n.Edges.Steps = []*PipelineStep{} },
			func(n *ConversionJob, e *PipelineStep) { n.Edges.Steps = append(n.Edges.Steps, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ConversionJobQuery) loadProfile(ctx context.Context, query *ProfileQuery, nodes []*ConversionJob, init func(*ConversionJob), assign func(*ConversionJob, *Profile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ConversionJob)
	for i := range nodes {
		fk := nodes[i].ProfileID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(profile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "profile_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ConversionJobQuery) loadFrames(ctx context.Context, query *FrameQuery, nodes []*ConversionJob, init func(*ConversionJob), assign func(*ConversionJob, *Frame)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ConversionJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(frame.FieldJobID)
	}
	query.Where(predicate.Frame(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(conversionjob.FramesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ConversionJobQuery) loadBatches(ctx context.Context, query *BatchSubmissionQuery, nodes []*ConversionJob, init func(*ConversionJob), assign func(*ConversionJob, *BatchSubmission)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ConversionJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(batchsubmission.FieldJobID)
	}
	query.Where(predicate.BatchSubmission(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(conversionjob.BatchesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ConversionJobQuery) loadSteps(ctx context.Context, query *PipelineStepQuery, nodes []*ConversionJob, init func(*ConversionJob), assign func(*ConversionJob, *PipelineStep)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ConversionJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(pipelinestep.FieldJobID)
	}
	query.Where(predicate.PipelineStep(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(conversionjob.StepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ConversionJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ConversionJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(conversionjob.Table, conversionjob.Columns, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversionjob.FieldID)
		for i := range fields {
			if fields[i] != conversionjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProfile != nil {
			_spec.Node.AddColumnOnce(conversionjob.FieldProfileID)
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

func (_q *ConversionJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(conversionjob.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = conversionjob.Columns
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

// ConversionJobGroupBy is the group-by builder for ConversionJob entities.
type ConversionJobGroupBy struct {
	selector
	build *ConversionJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ConversionJobGroupBy) Aggregate(fns ...AggregateFunc) *ConversionJobGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ConversionJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ConversionJobQuery, *ConversionJobGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ConversionJobGroupBy) sqlScan(ctx context.Context, root *ConversionJobQuery, v any) error {
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

// ConversionJobSelect is the builder for selecting fields of ConversionJob entities.
type ConversionJobSelect struct {
	*ConversionJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ConversionJobSelect) Aggregate(fns ...AggregateFunc) *ConversionJobSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ConversionJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ConversionJobQuery, *ConversionJobSelect](ctx, _s.ConversionJobQuery, _s, _s.inters, v)
}

func (_s *ConversionJobSelect) sqlScan(ctx context.Context, root *ConversionJobQuery, v any) error {
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

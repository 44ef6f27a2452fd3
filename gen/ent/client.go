// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"framescribe/gen/ent/migrate"

	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/frame"
	"framescribe/gen/ent/pipelinestep"
	"framescribe/gen/ent/profile"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BatchSubmission is the client for interacting with the BatchSubmission builders.
	BatchSubmission *BatchSubmissionClient
	// ConversionJob is the client for interacting with the ConversionJob builders.
	ConversionJob *ConversionJobClient
	// Frame is the client for interacting with the Frame builders.
	Frame *FrameClient
	// PipelineStep is the client for interacting with the PipelineStep builders.
	PipelineStep *PipelineStepClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BatchSubmission = NewBatchSubmissionClient(c.config)
	c.ConversionJob = NewConversionJobClient(c.config)
	c.Frame = NewFrameClient(c.config)
	c.PipelineStep = NewPipelineStepClient(c.config)
	c.Profile = NewProfileClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		BatchSubmission: NewBatchSubmissionClient(cfg),
		ConversionJob:   NewConversionJobClient(cfg),
		Frame:           NewFrameClient(cfg),
		PipelineStep:    NewPipelineStepClient(cfg),
		Profile:         NewProfileClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		BatchSubmission: NewBatchSubmissionClient(cfg),
		ConversionJob:   NewConversionJobClient(cfg),
		Frame:           NewFrameClient(cfg),
		PipelineStep:    NewPipelineStepClient(cfg),
		Profile:         NewProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BatchSubmission.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.BatchSubmission.Use(hooks...)
	c.ConversionJob.Use(hooks...)
	c.Frame.Use(hooks...)
	c.PipelineStep.Use(hooks...)
	c.Profile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BatchSubmission.Intercept(interceptors...)
	c.ConversionJob.Intercept(interceptors...)
	c.Frame.Intercept(interceptors...)
	c.PipelineStep.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BatchSubmissionMutation:
		return c.BatchSubmission.mutate(ctx, m)
	case *ConversionJobMutation:
		return c.ConversionJob.mutate(ctx, m)
	case *FrameMutation:
		return c.Frame.mutate(ctx, m)
	case *PipelineStepMutation:
		return c.PipelineStep.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BatchSubmissionClient is a client for the BatchSubmission schema.
type BatchSubmissionClient struct {
	config
}

// NewBatchSubmissionClient returns a client for the BatchSubmission from the given config.
func NewBatchSubmissionClient(c config) *BatchSubmissionClient {
	return &BatchSubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchsubmission.Hooks(f(g(h())))`.
func (c *BatchSubmissionClient) Use(hooks ...Hook) {
	c.hooks.BatchSubmission = append(c.hooks.BatchSubmission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchsubmission.Intercept(f(g(h())))`.
func (c *BatchSubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchSubmission = append(c.inters.BatchSubmission, interceptors...)
}

// Create returns a builder for creating a BatchSubmission entity.
func (c *BatchSubmissionClient) Create() *BatchSubmissionCreate {
	mutation := newBatchSubmissionMutation(c.config, OpCreate)
	return &BatchSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchSubmission entities.
func (c *BatchSubmissionClient) CreateBulk(builders ...*BatchSubmissionCreate) *BatchSubmissionCreateBulk {
	return &BatchSubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchSubmissionClient) MapCreateBulk(slice any, setFunc func(*BatchSubmissionCreate, int)) *BatchSubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchSubmissionCreateBulk{err: fmt.Errorf("calling to BatchSubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchSubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchSubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchSubmission.
func (c *BatchSubmissionClient) Update() *BatchSubmissionUpdate {
	mutation := newBatchSubmissionMutation(c.config, OpUpdate)
	return &BatchSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchSubmissionClient) UpdateOne(_m *BatchSubmission) *BatchSubmissionUpdateOne {
	mutation := newBatchSubmissionMutation(c.config, OpUpdateOne, withBatchSubmission(_m))
	return &BatchSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchSubmissionClient) UpdateOneID(id uuid.UUID) *BatchSubmissionUpdateOne {
	mutation := newBatchSubmissionMutation(c.config, OpUpdateOne, withBatchSubmissionID(id))
	return &BatchSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchSubmission.
func (c *BatchSubmissionClient) Delete() *BatchSubmissionDelete {
	mutation := newBatchSubmissionMutation(c.config, OpDelete)
	return &BatchSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchSubmissionClient) DeleteOne(_m *BatchSubmission) *BatchSubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchSubmissionClient) DeleteOneID(id uuid.UUID) *BatchSubmissionDeleteOne {
	builder := c.Delete().Where(batchsubmission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchSubmissionDeleteOne{builder}
}

// Query returns a query builder for BatchSubmission.
func (c *BatchSubmissionClient) Query() *BatchSubmissionQuery {
	return &BatchSubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchSubmission entity by its id.
func (c *BatchSubmissionClient) Get(ctx context.Context, id uuid.UUID) (*BatchSubmission, error) {
	return c.Query().Where(batchsubmission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchSubmissionClient) GetX(ctx context.Context, id uuid.UUID) *BatchSubmission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a BatchSubmission.
func (c *BatchSubmissionClient) QueryJob(_m *BatchSubmission) *ConversionJobQuery {
	query := (&ConversionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batchsubmission.Table, batchsubmission.FieldID, id),
			sqlgraph.To(conversionjob.Table, conversionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, batchsubmission.JobTable, batchsubmission.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchSubmissionClient) Hooks() []Hook {
	return c.hooks.BatchSubmission
}

// Interceptors returns the client interceptors.
func (c *BatchSubmissionClient) Interceptors() []Interceptor {
	return c.inters.BatchSubmission
}

func (c *BatchSubmissionClient) mutate(ctx context.Context, m *BatchSubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchSubmission mutation op: %q", m.Op())
	}
}

// ConversionJobClient is a client for the ConversionJob schema.
type ConversionJobClient struct {
	config
}

// NewConversionJobClient returns a client for the ConversionJob from the given config.
func NewConversionJobClient(c config) *ConversionJobClient {
	return &ConversionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversionjob.Hooks(f(g(h())))`.
func (c *ConversionJobClient) Use(hooks ...Hook) {
	c.hooks.ConversionJob = append(c.hooks.ConversionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversionjob.Intercept(f(g(h())))`.
func (c *ConversionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversionJob = append(c.inters.ConversionJob, interceptors...)
}

// Create returns a builder for creating a ConversionJob entity.
func (c *ConversionJobClient) Create() *ConversionJobCreate {
	mutation := newConversionJobMutation(c.config, OpCreate)
	return &ConversionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversionJob entities.
func (c *ConversionJobClient) CreateBulk(builders ...*ConversionJobCreate) *ConversionJobCreateBulk {
	return &ConversionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversionJobClient) MapCreateBulk(slice any, setFunc func(*ConversionJobCreate, int)) *ConversionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversionJobCreateBulk{err: fmt.Errorf("calling to ConversionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversionJob.
func (c *ConversionJobClient) Update() *ConversionJobUpdate {
	mutation := newConversionJobMutation(c.config, OpUpdate)
	return &ConversionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversionJobClient) UpdateOne(_m *ConversionJob) *ConversionJobUpdateOne {
	mutation := newConversionJobMutation(c.config, OpUpdateOne, withConversionJob(_m))
	return &ConversionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversionJobClient) UpdateOneID(id uuid.UUID) *ConversionJobUpdateOne {
	mutation := newConversionJobMutation(c.config, OpUpdateOne, withConversionJobID(id))
	return &ConversionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversionJob.
func (c *ConversionJobClient) Delete() *ConversionJobDelete {
	mutation := newConversionJobMutation(c.config, OpDelete)
	return &ConversionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversionJobClient) DeleteOne(_m *ConversionJob) *ConversionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversionJobClient) DeleteOneID(id uuid.UUID) *ConversionJobDeleteOne {
	builder := c.Delete().Where(conversionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversionJobDeleteOne{builder}
}

// Query returns a query builder for ConversionJob.
func (c *ConversionJobClient) Query() *ConversionJobQuery {
	return &ConversionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversionJob entity by its id.
func (c *ConversionJobClient) Get(ctx context.Context, id uuid.UUID) (*ConversionJob, error) {
	return c.Query().Where(conversionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversionJobClient) GetX(ctx context.Context, id uuid.UUID) *ConversionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a ConversionJob.
func (c *ConversionJobClient) QueryProfile(_m *ConversionJob) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversionjob.ProfileTable, conversionjob.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFrames queries the frames edge of a ConversionJob.
func (c *ConversionJobClient) QueryFrames(_m *ConversionJob) *FrameQuery {
	query := (&FrameClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, id),
			sqlgraph.To(frame.Table, frame.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversionjob.FramesTable, conversionjob.FramesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBatches queries the batches edge of a ConversionJob.
func (c *ConversionJobClient) QueryBatches(_m *ConversionJob) *BatchSubmissionQuery {
	query := (&BatchSubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, id),
			sqlgraph.To(batchsubmission.Table, batchsubmission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversionjob.BatchesTable, conversionjob.BatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a ConversionJob.
func (c *ConversionJobClient) QuerySteps(_m *ConversionJob) *PipelineStepQuery {
	query := (&PipelineStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversionjob.Table, conversionjob.FieldID, id),
			sqlgraph.To(pipelinestep.Table, pipelinestep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversionjob.StepsTable, conversionjob.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversionJobClient) Hooks() []Hook {
	return c.hooks.ConversionJob
}

// Interceptors returns the client interceptors.
func (c *ConversionJobClient) Interceptors() []Interceptor {
	return c.inters.ConversionJob
}

func (c *ConversionJobClient) mutate(ctx context.Context, m *ConversionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversionJob mutation op: %q", m.Op())
	}
}

// FrameClient is a client for the Frame schema.
type FrameClient struct {
	config
}

// NewFrameClient returns a client for the Frame from the given config.
func NewFrameClient(c config) *FrameClient {
	return &FrameClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `frame.Hooks(f(g(h())))`.
func (c *FrameClient) Use(hooks ...Hook) {
	c.hooks.Frame = append(c.hooks.Frame, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `frame.Intercept(f(g(h())))`.
func (c *FrameClient) Intercept(interceptors ...Interceptor) {
	c.inters.Frame = append(c.inters.Frame, interceptors...)
}

// Create returns a builder for creating a Frame entity.
func (c *FrameClient) Create() *FrameCreate {
	mutation := newFrameMutation(c.config, OpCreate)
	return &FrameCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Frame entities.
func (c *FrameClient) CreateBulk(builders ...*FrameCreate) *FrameCreateBulk {
	return &FrameCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FrameClient) MapCreateBulk(slice any, setFunc func(*FrameCreate, int)) *FrameCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FrameCreateBulk{err: fmt.Errorf("calling to FrameClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FrameCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FrameCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Frame.
func (c *FrameClient) Update() *FrameUpdate {
	mutation := newFrameMutation(c.config, OpUpdate)
	return &FrameUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FrameClient) UpdateOne(_m *Frame) *FrameUpdateOne {
	mutation := newFrameMutation(c.config, OpUpdateOne, withFrame(_m))
	return &FrameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FrameClient) UpdateOneID(id uuid.UUID) *FrameUpdateOne {
	mutation := newFrameMutation(c.config, OpUpdateOne, withFrameID(id))
	return &FrameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Frame.
func (c *FrameClient) Delete() *FrameDelete {
	mutation := newFrameMutation(c.config, OpDelete)
	return &FrameDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FrameClient) DeleteOne(_m *Frame) *FrameDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FrameClient) DeleteOneID(id uuid.UUID) *FrameDeleteOne {
	builder := c.Delete().Where(frame.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FrameDeleteOne{builder}
}

// Query returns a query builder for Frame.
func (c *FrameClient) Query() *FrameQuery {
	return &FrameQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFrame},
		inters: c.Interceptors(),
	}
}

// Get returns a Frame entity by its id.
func (c *FrameClient) Get(ctx context.Context, id uuid.UUID) (*Frame, error) {
	return c.Query().Where(frame.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FrameClient) GetX(ctx context.Context, id uuid.UUID) *Frame {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a Frame.
func (c *FrameClient) QueryJob(_m *Frame) *ConversionJobQuery {
	query := (&ConversionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(frame.Table, frame.FieldID, id),
			sqlgraph.To(conversionjob.Table, conversionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, frame.JobTable, frame.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FrameClient) Hooks() []Hook {
	return c.hooks.Frame
}

// Interceptors returns the client interceptors.
func (c *FrameClient) Interceptors() []Interceptor {
	return c.inters.Frame
}

func (c *FrameClient) mutate(ctx context.Context, m *FrameMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FrameCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FrameUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FrameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FrameDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Frame mutation op: %q", m.Op())
	}
}

// PipelineStepClient is a client for the PipelineStep schema.
type PipelineStepClient struct {
	config
}

// NewPipelineStepClient returns a client for the PipelineStep from the given config.
func NewPipelineStepClient(c config) *PipelineStepClient {
	return &PipelineStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinestep.Hooks(f(g(h())))`.
func (c *PipelineStepClient) Use(hooks ...Hook) {
	c.hooks.PipelineStep = append(c.hooks.PipelineStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinestep.Intercept(f(g(h())))`.
func (c *PipelineStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineStep = append(c.inters.PipelineStep, interceptors...)
}

// Create returns a builder for creating a PipelineStep entity.
func (c *PipelineStepClient) Create() *PipelineStepCreate {
	mutation := newPipelineStepMutation(c.config, OpCreate)
	return &PipelineStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineStep entities.
func (c *PipelineStepClient) CreateBulk(builders ...*PipelineStepCreate) *PipelineStepCreateBulk {
	return &PipelineStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStepClient) MapCreateBulk(slice any, setFunc func(*PipelineStepCreate, int)) *PipelineStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStepCreateBulk{err: fmt.Errorf("calling to PipelineStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineStep.
func (c *PipelineStepClient) Update() *PipelineStepUpdate {
	mutation := newPipelineStepMutation(c.config, OpUpdate)
	return &PipelineStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStepClient) UpdateOne(_m *PipelineStep) *PipelineStepUpdateOne {
	mutation := newPipelineStepMutation(c.config, OpUpdateOne, withPipelineStep(_m))
	return &PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStepClient) UpdateOneID(id uuid.UUID) *PipelineStepUpdateOne {
	mutation := newPipelineStepMutation(c.config, OpUpdateOne, withPipelineStepID(id))
	return &PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineStep.
func (c *PipelineStepClient) Delete() *PipelineStepDelete {
	mutation := newPipelineStepMutation(c.config, OpDelete)
	return &PipelineStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStepClient) DeleteOne(_m *PipelineStep) *PipelineStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStepClient) DeleteOneID(id uuid.UUID) *PipelineStepDeleteOne {
	builder := c.Delete().Where(pipelinestep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStepDeleteOne{builder}
}

// Query returns a query builder for PipelineStep.
func (c *PipelineStepClient) Query() *PipelineStepQuery {
	return &PipelineStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineStep},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineStep entity by its id.
func (c *PipelineStepClient) Get(ctx context.Context, id uuid.UUID) (*PipelineStep, error) {
	return c.Query().Where(pipelinestep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStepClient) GetX(ctx context.Context, id uuid.UUID) *PipelineStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a PipelineStep.
func (c *PipelineStepClient) QueryJob(_m *PipelineStep) *ConversionJobQuery {
	query := (&ConversionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinestep.Table, pipelinestep.FieldID, id),
			sqlgraph.To(conversionjob.Table, conversionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinestep.JobTable, pipelinestep.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineStepClient) Hooks() []Hook {
	return c.hooks.PipelineStep
}

// Interceptors returns the client interceptors.
func (c *PipelineStepClient) Interceptors() []Interceptor {
	return c.inters.PipelineStep
}

func (c *PipelineStepClient) mutate(ctx context.Context, m *PipelineStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineStep mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Profile.
func (c *ProfileClient) QueryJobs(_m *Profile) *ConversionJobQuery {
	query := (&ConversionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(conversionjob.Table, conversionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.JobsTable, profile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BatchSubmission, ConversionJob, Frame, PipelineStep, Profile []ent.Hook
	}
	inters struct {
		BatchSubmission, ConversionJob, Frame, PipelineStep, Profile []ent.Interceptor
	}
)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/szymonw/studylog/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/szymonw/studylog/ent/studysession"
	"github.com/szymonw/studylog/ent/studytask"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// StudySession is the client for interacting with the StudySession builders.
	StudySession *StudySessionClient
	// StudyTask is the client for interacting with the StudyTask builders.
	StudyTask *StudyTaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.StudySession = NewStudySessionClient(c.config)
	c.StudyTask = NewStudyTaskClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		StudySession: NewStudySessionClient(cfg),
		StudyTask:    NewStudyTaskClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		StudySession: NewStudySessionClient(cfg),
		StudyTask:    NewStudyTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		StudySession.
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
	c.StudySession.Use(hooks...)
	c.StudyTask.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.StudySession.Intercept(interceptors...)
	c.StudyTask.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *StudySessionMutation:
		return c.StudySession.mutate(ctx, m)
	case *StudyTaskMutation:
		return c.StudyTask.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// StudySessionClient is a client for the StudySession schema.
type StudySessionClient struct {
	config
}

// NewStudySessionClient returns a client for the StudySession from the given config.
func NewStudySessionClient(c config) *StudySessionClient {
	return &StudySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studysession.Hooks(f(g(h())))`.
func (c *StudySessionClient) Use(hooks ...Hook) {
	c.hooks.StudySession = append(c.hooks.StudySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studysession.Intercept(f(g(h())))`.
func (c *StudySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudySession = append(c.inters.StudySession, interceptors...)
}

// Create returns a builder for creating a StudySession entity.
func (c *StudySessionClient) Create() *StudySessionCreate {
	mutation := newStudySessionMutation(c.config, OpCreate)
	return &StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudySession entities.
func (c *StudySessionClient) CreateBulk(builders ...*StudySessionCreate) *StudySessionCreateBulk {
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudySessionClient) MapCreateBulk(slice any, setFunc func(*StudySessionCreate, int)) *StudySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudySessionCreateBulk{err: fmt.Errorf("calling to StudySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudySession.
func (c *StudySessionClient) Update() *StudySessionUpdate {
	mutation := newStudySessionMutation(c.config, OpUpdate)
	return &StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudySessionClient) UpdateOne(_m *StudySession) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySession(_m))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudySessionClient) UpdateOneID(id int) *StudySessionUpdateOne {
	mutation := newStudySessionMutation(c.config, OpUpdateOne, withStudySessionID(id))
	return &StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudySession.
func (c *StudySessionClient) Delete() *StudySessionDelete {
	mutation := newStudySessionMutation(c.config, OpDelete)
	return &StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudySessionClient) DeleteOne(_m *StudySession) *StudySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudySessionClient) DeleteOneID(id int) *StudySessionDeleteOne {
	builder := c.Delete().Where(studysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudySessionDeleteOne{builder}
}

// Query returns a query builder for StudySession.
func (c *StudySessionClient) Query() *StudySessionQuery {
	return &StudySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudySession},
		inters: c.Interceptors(),
	}
}

// Get returns a StudySession entity by its id.
func (c *StudySessionClient) Get(ctx context.Context, id int) (*StudySession, error) {
	return c.Query().Where(studysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudySessionClient) GetX(ctx context.Context, id int) *StudySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudySessionClient) Hooks() []Hook {
	return c.hooks.StudySession
}

// Interceptors returns the client interceptors.
func (c *StudySessionClient) Interceptors() []Interceptor {
	return c.inters.StudySession
}

func (c *StudySessionClient) mutate(ctx context.Context, m *StudySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudySession mutation op: %q", m.Op())
	}
}

// StudyTaskClient is a client for the StudyTask schema.
type StudyTaskClient struct {
	config
}

// NewStudyTaskClient returns a client for the StudyTask from the given config.
func NewStudyTaskClient(c config) *StudyTaskClient {
	return &StudyTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studytask.Hooks(f(g(h())))`.
func (c *StudyTaskClient) Use(hooks ...Hook) {
	c.hooks.StudyTask = append(c.hooks.StudyTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studytask.Intercept(f(g(h())))`.
func (c *StudyTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyTask = append(c.inters.StudyTask, interceptors...)
}

// Create returns a builder for creating a StudyTask entity.
func (c *StudyTaskClient) Create() *StudyTaskCreate {
	mutation := newStudyTaskMutation(c.config, OpCreate)
	return &StudyTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyTask entities.
func (c *StudyTaskClient) CreateBulk(builders ...*StudyTaskCreate) *StudyTaskCreateBulk {
	return &StudyTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyTaskClient) MapCreateBulk(slice any, setFunc func(*StudyTaskCreate, int)) *StudyTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyTaskCreateBulk{err: fmt.Errorf("calling to StudyTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyTask.
func (c *StudyTaskClient) Update() *StudyTaskUpdate {
	mutation := newStudyTaskMutation(c.config, OpUpdate)
	return &StudyTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyTaskClient) UpdateOne(_m *StudyTask) *StudyTaskUpdateOne {
	mutation := newStudyTaskMutation(c.config, OpUpdateOne, withStudyTask(_m))
	return &StudyTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyTaskClient) UpdateOneID(id int) *StudyTaskUpdateOne {
	mutation := newStudyTaskMutation(c.config, OpUpdateOne, withStudyTaskID(id))
	return &StudyTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyTask.
func (c *StudyTaskClient) Delete() *StudyTaskDelete {
	mutation := newStudyTaskMutation(c.config, OpDelete)
	return &StudyTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyTaskClient) DeleteOne(_m *StudyTask) *StudyTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyTaskClient) DeleteOneID(id int) *StudyTaskDeleteOne {
	builder := c.Delete().Where(studytask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyTaskDeleteOne{builder}
}

// Query returns a query builder for StudyTask.
func (c *StudyTaskClient) Query() *StudyTaskQuery {
	return &StudyTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyTask},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyTask entity by its id.
func (c *StudyTaskClient) Get(ctx context.Context, id int) (*StudyTask, error) {
	return c.Query().Where(studytask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyTaskClient) GetX(ctx context.Context, id int) *StudyTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyTaskClient) Hooks() []Hook {
	return c.hooks.StudyTask
}

// Interceptors returns the client interceptors.
func (c *StudyTaskClient) Interceptors() []Interceptor {
	return c.inters.StudyTask
}

func (c *StudyTaskClient) mutate(ctx context.Context, m *StudyTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyTask mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		StudySession, StudyTask []ent.Hook
	}
	inters struct {
		StudySession, StudyTask []ent.Interceptor
	}
)

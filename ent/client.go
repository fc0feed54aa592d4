// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Imaliure/adaptive-language-learning/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Imaliure/adaptive-language-learning/ent/attemptevent"
	"github.com/Imaliure/adaptive-language-learning/ent/dictationevent"
	"github.com/Imaliure/adaptive-language-learning/ent/revealevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// DictationEvent is the client for interacting with the DictationEvent builders.
	DictationEvent *DictationEventClient
	// RevealEvent is the client for interacting with the RevealEvent builders.
	RevealEvent *RevealEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.DictationEvent = NewDictationEventClient(c.config)
	c.RevealEvent = NewRevealEventClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AttemptEvent:   NewAttemptEventClient(cfg),
		DictationEvent: NewDictationEventClient(cfg),
		RevealEvent:    NewRevealEventClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AttemptEvent:   NewAttemptEventClient(cfg),
		DictationEvent: NewDictationEventClient(cfg),
		RevealEvent:    NewRevealEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
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
	c.AttemptEvent.Use(hooks...)
	c.DictationEvent.Use(hooks...)
	c.RevealEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttemptEvent.Intercept(interceptors...)
	c.DictationEvent.Intercept(interceptors...)
	c.RevealEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *DictationEventMutation:
		return c.DictationEvent.mutate(ctx, m)
	case *RevealEventMutation:
		return c.RevealEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// DictationEventClient is a client for the DictationEvent schema.
type DictationEventClient struct {
	config
}

// NewDictationEventClient returns a client for the DictationEvent from the given config.
func NewDictationEventClient(c config) *DictationEventClient {
	return &DictationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dictationevent.Hooks(f(g(h())))`.
func (c *DictationEventClient) Use(hooks ...Hook) {
	c.hooks.DictationEvent = append(c.hooks.DictationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dictationevent.Intercept(f(g(h())))`.
func (c *DictationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.DictationEvent = append(c.inters.DictationEvent, interceptors...)
}

// Create returns a builder for creating a DictationEvent entity.
func (c *DictationEventClient) Create() *DictationEventCreate {
	mutation := newDictationEventMutation(c.config, OpCreate)
	return &DictationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DictationEvent entities.
func (c *DictationEventClient) CreateBulk(builders ...*DictationEventCreate) *DictationEventCreateBulk {
	return &DictationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DictationEventClient) MapCreateBulk(slice any, setFunc func(*DictationEventCreate, int)) *DictationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DictationEventCreateBulk{err: fmt.Errorf("calling to DictationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DictationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DictationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DictationEvent.
func (c *DictationEventClient) Update() *DictationEventUpdate {
	mutation := newDictationEventMutation(c.config, OpUpdate)
	return &DictationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DictationEventClient) UpdateOne(_m *DictationEvent) *DictationEventUpdateOne {
	mutation := newDictationEventMutation(c.config, OpUpdateOne, withDictationEvent(_m))
	return &DictationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DictationEventClient) UpdateOneID(id int) *DictationEventUpdateOne {
	mutation := newDictationEventMutation(c.config, OpUpdateOne, withDictationEventID(id))
	return &DictationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DictationEvent.
func (c *DictationEventClient) Delete() *DictationEventDelete {
	mutation := newDictationEventMutation(c.config, OpDelete)
	return &DictationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DictationEventClient) DeleteOne(_m *DictationEvent) *DictationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DictationEventClient) DeleteOneID(id int) *DictationEventDeleteOne {
	builder := c.Delete().Where(dictationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DictationEventDeleteOne{builder}
}

// Query returns a query builder for DictationEvent.
func (c *DictationEventClient) Query() *DictationEventQuery {
	return &DictationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDictationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a DictationEvent entity by its id.
func (c *DictationEventClient) Get(ctx context.Context, id int) (*DictationEvent, error) {
	return c.Query().Where(dictationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DictationEventClient) GetX(ctx context.Context, id int) *DictationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DictationEventClient) Hooks() []Hook {
	return c.hooks.DictationEvent
}

// Interceptors returns the client interceptors.
func (c *DictationEventClient) Interceptors() []Interceptor {
	return c.inters.DictationEvent
}

func (c *DictationEventClient) mutate(ctx context.Context, m *DictationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DictationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DictationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DictationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DictationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DictationEvent mutation op: %q", m.Op())
	}
}

// RevealEventClient is a client for the RevealEvent schema.
type RevealEventClient struct {
	config
}

// NewRevealEventClient returns a client for the RevealEvent from the given config.
func NewRevealEventClient(c config) *RevealEventClient {
	return &RevealEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `revealevent.Hooks(f(g(h())))`.
func (c *RevealEventClient) Use(hooks ...Hook) {
	c.hooks.RevealEvent = append(c.hooks.RevealEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `revealevent.Intercept(f(g(h())))`.
func (c *RevealEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RevealEvent = append(c.inters.RevealEvent, interceptors...)
}

// Create returns a builder for creating a RevealEvent entity.
func (c *RevealEventClient) Create() *RevealEventCreate {
	mutation := newRevealEventMutation(c.config, OpCreate)
	return &RevealEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RevealEvent entities.
func (c *RevealEventClient) CreateBulk(builders ...*RevealEventCreate) *RevealEventCreateBulk {
	return &RevealEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RevealEventClient) MapCreateBulk(slice any, setFunc func(*RevealEventCreate, int)) *RevealEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RevealEventCreateBulk{err: fmt.Errorf("calling to RevealEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RevealEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RevealEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RevealEvent.
func (c *RevealEventClient) Update() *RevealEventUpdate {
	mutation := newRevealEventMutation(c.config, OpUpdate)
	return &RevealEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RevealEventClient) UpdateOne(_m *RevealEvent) *RevealEventUpdateOne {
	mutation := newRevealEventMutation(c.config, OpUpdateOne, withRevealEvent(_m))
	return &RevealEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RevealEventClient) UpdateOneID(id int) *RevealEventUpdateOne {
	mutation := newRevealEventMutation(c.config, OpUpdateOne, withRevealEventID(id))
	return &RevealEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RevealEvent.
func (c *RevealEventClient) Delete() *RevealEventDelete {
	mutation := newRevealEventMutation(c.config, OpDelete)
	return &RevealEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RevealEventClient) DeleteOne(_m *RevealEvent) *RevealEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RevealEventClient) DeleteOneID(id int) *RevealEventDeleteOne {
	builder := c.Delete().Where(revealevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RevealEventDeleteOne{builder}
}

// Query returns a query builder for RevealEvent.
func (c *RevealEventClient) Query() *RevealEventQuery {
	return &RevealEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRevealEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RevealEvent entity by its id.
func (c *RevealEventClient) Get(ctx context.Context, id int) (*RevealEvent, error) {
	return c.Query().Where(revealevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RevealEventClient) GetX(ctx context.Context, id int) *RevealEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RevealEventClient) Hooks() []Hook {
	return c.hooks.RevealEvent
}

// Interceptors returns the client interceptors.
func (c *RevealEventClient) Interceptors() []Interceptor {
	return c.inters.RevealEvent
}

func (c *RevealEventClient) mutate(ctx context.Context, m *RevealEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RevealEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RevealEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RevealEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RevealEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RevealEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, DictationEvent, RevealEvent []ent.Hook
	}
	inters struct {
		AttemptEvent, DictationEvent, RevealEvent []ent.Interceptor
	}
)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/mcqgen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mcqgen/ent/conceptrecord"
	"github.com/abhisek/mcqgen/ent/generationsession"
	"github.com/abhisek/mcqgen/ent/llmrequestevent"
	"github.com/abhisek/mcqgen/ent/mcqrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConceptRecord is the client for interacting with the ConceptRecord builders.
	ConceptRecord *ConceptRecordClient
	// GenerationSession is the client for interacting with the GenerationSession builders.
	GenerationSession *GenerationSessionClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MCQRecord is the client for interacting with the MCQRecord builders.
	MCQRecord *MCQRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConceptRecord = NewConceptRecordClient(c.config)
	c.GenerationSession = NewGenerationSessionClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MCQRecord = NewMCQRecordClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ConceptRecord:     NewConceptRecordClient(cfg),
		GenerationSession: NewGenerationSessionClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		MCQRecord:         NewMCQRecordClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ConceptRecord:     NewConceptRecordClient(cfg),
		GenerationSession: NewGenerationSessionClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		MCQRecord:         NewMCQRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConceptRecord.
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
	c.ConceptRecord.Use(hooks...)
	c.GenerationSession.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.MCQRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ConceptRecord.Intercept(interceptors...)
	c.GenerationSession.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.MCQRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConceptRecordMutation:
		return c.ConceptRecord.mutate(ctx, m)
	case *GenerationSessionMutation:
		return c.GenerationSession.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MCQRecordMutation:
		return c.MCQRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConceptRecordClient is a client for the ConceptRecord schema.
type ConceptRecordClient struct {
	config
}

// NewConceptRecordClient returns a client for the ConceptRecord from the given config.
func NewConceptRecordClient(c config) *ConceptRecordClient {
	return &ConceptRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conceptrecord.Hooks(f(g(h())))`.
func (c *ConceptRecordClient) Use(hooks ...Hook) {
	c.hooks.ConceptRecord = append(c.hooks.ConceptRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conceptrecord.Intercept(f(g(h())))`.
func (c *ConceptRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConceptRecord = append(c.inters.ConceptRecord, interceptors...)
}

// Create returns a builder for creating a ConceptRecord entity.
func (c *ConceptRecordClient) Create() *ConceptRecordCreate {
	mutation := newConceptRecordMutation(c.config, OpCreate)
	return &ConceptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConceptRecord entities.
func (c *ConceptRecordClient) CreateBulk(builders ...*ConceptRecordCreate) *ConceptRecordCreateBulk {
	return &ConceptRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptRecordClient) MapCreateBulk(slice any, setFunc func(*ConceptRecordCreate, int)) *ConceptRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptRecordCreateBulk{err: fmt.Errorf("calling to ConceptRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConceptRecord.
func (c *ConceptRecordClient) Update() *ConceptRecordUpdate {
	mutation := newConceptRecordMutation(c.config, OpUpdate)
	return &ConceptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptRecordClient) UpdateOne(_m *ConceptRecord) *ConceptRecordUpdateOne {
	mutation := newConceptRecordMutation(c.config, OpUpdateOne, withConceptRecord(_m))
	return &ConceptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptRecordClient) UpdateOneID(id int) *ConceptRecordUpdateOne {
	mutation := newConceptRecordMutation(c.config, OpUpdateOne, withConceptRecordID(id))
	return &ConceptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConceptRecord.
func (c *ConceptRecordClient) Delete() *ConceptRecordDelete {
	mutation := newConceptRecordMutation(c.config, OpDelete)
	return &ConceptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptRecordClient) DeleteOne(_m *ConceptRecord) *ConceptRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptRecordClient) DeleteOneID(id int) *ConceptRecordDeleteOne {
	builder := c.Delete().Where(conceptrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptRecordDeleteOne{builder}
}

// Query returns a query builder for ConceptRecord.
func (c *ConceptRecordClient) Query() *ConceptRecordQuery {
	return &ConceptRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConceptRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ConceptRecord entity by its id.
func (c *ConceptRecordClient) Get(ctx context.Context, id int) (*ConceptRecord, error) {
	return c.Query().Where(conceptrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptRecordClient) GetX(ctx context.Context, id int) *ConceptRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptRecordClient) Hooks() []Hook {
	return c.hooks.ConceptRecord
}

// Interceptors returns the client interceptors.
func (c *ConceptRecordClient) Interceptors() []Interceptor {
	return c.inters.ConceptRecord
}

func (c *ConceptRecordClient) mutate(ctx context.Context, m *ConceptRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConceptRecord mutation op: %q", m.Op())
	}
}

// GenerationSessionClient is a client for the GenerationSession schema.
type GenerationSessionClient struct {
	config
}

// NewGenerationSessionClient returns a client for the GenerationSession from the given config.
func NewGenerationSessionClient(c config) *GenerationSessionClient {
	return &GenerationSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationsession.Hooks(f(g(h())))`.
func (c *GenerationSessionClient) Use(hooks ...Hook) {
	c.hooks.GenerationSession = append(c.hooks.GenerationSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationsession.Intercept(f(g(h())))`.
func (c *GenerationSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationSession = append(c.inters.GenerationSession, interceptors...)
}

// Create returns a builder for creating a GenerationSession entity.
func (c *GenerationSessionClient) Create() *GenerationSessionCreate {
	mutation := newGenerationSessionMutation(c.config, OpCreate)
	return &GenerationSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationSession entities.
func (c *GenerationSessionClient) CreateBulk(builders ...*GenerationSessionCreate) *GenerationSessionCreateBulk {
	return &GenerationSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationSessionClient) MapCreateBulk(slice any, setFunc func(*GenerationSessionCreate, int)) *GenerationSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationSessionCreateBulk{err: fmt.Errorf("calling to GenerationSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationSession.
func (c *GenerationSessionClient) Update() *GenerationSessionUpdate {
	mutation := newGenerationSessionMutation(c.config, OpUpdate)
	return &GenerationSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationSessionClient) UpdateOne(_m *GenerationSession) *GenerationSessionUpdateOne {
	mutation := newGenerationSessionMutation(c.config, OpUpdateOne, withGenerationSession(_m))
	return &GenerationSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationSessionClient) UpdateOneID(id int) *GenerationSessionUpdateOne {
	mutation := newGenerationSessionMutation(c.config, OpUpdateOne, withGenerationSessionID(id))
	return &GenerationSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationSession.
func (c *GenerationSessionClient) Delete() *GenerationSessionDelete {
	mutation := newGenerationSessionMutation(c.config, OpDelete)
	return &GenerationSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationSessionClient) DeleteOne(_m *GenerationSession) *GenerationSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationSessionClient) DeleteOneID(id int) *GenerationSessionDeleteOne {
	builder := c.Delete().Where(generationsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationSessionDeleteOne{builder}
}

// Query returns a query builder for GenerationSession.
func (c *GenerationSessionClient) Query() *GenerationSessionQuery {
	return &GenerationSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationSession},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationSession entity by its id.
func (c *GenerationSessionClient) Get(ctx context.Context, id int) (*GenerationSession, error) {
	return c.Query().Where(generationsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationSessionClient) GetX(ctx context.Context, id int) *GenerationSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationSessionClient) Hooks() []Hook {
	return c.hooks.GenerationSession
}

// Interceptors returns the client interceptors.
func (c *GenerationSessionClient) Interceptors() []Interceptor {
	return c.inters.GenerationSession
}

func (c *GenerationSessionClient) mutate(ctx context.Context, m *GenerationSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationSession mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MCQRecordClient is a client for the MCQRecord schema.
type MCQRecordClient struct {
	config
}

// NewMCQRecordClient returns a client for the MCQRecord from the given config.
func NewMCQRecordClient(c config) *MCQRecordClient {
	return &MCQRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mcqrecord.Hooks(f(g(h())))`.
func (c *MCQRecordClient) Use(hooks ...Hook) {
	c.hooks.MCQRecord = append(c.hooks.MCQRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mcqrecord.Intercept(f(g(h())))`.
func (c *MCQRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MCQRecord = append(c.inters.MCQRecord, interceptors...)
}

// Create returns a builder for creating a MCQRecord entity.
func (c *MCQRecordClient) Create() *MCQRecordCreate {
	mutation := newMCQRecordMutation(c.config, OpCreate)
	return &MCQRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MCQRecord entities.
func (c *MCQRecordClient) CreateBulk(builders ...*MCQRecordCreate) *MCQRecordCreateBulk {
	return &MCQRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MCQRecordClient) MapCreateBulk(slice any, setFunc func(*MCQRecordCreate, int)) *MCQRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MCQRecordCreateBulk{err: fmt.Errorf("calling to MCQRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MCQRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MCQRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MCQRecord.
func (c *MCQRecordClient) Update() *MCQRecordUpdate {
	mutation := newMCQRecordMutation(c.config, OpUpdate)
	return &MCQRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MCQRecordClient) UpdateOne(_m *MCQRecord) *MCQRecordUpdateOne {
	mutation := newMCQRecordMutation(c.config, OpUpdateOne, withMCQRecord(_m))
	return &MCQRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MCQRecordClient) UpdateOneID(id int) *MCQRecordUpdateOne {
	mutation := newMCQRecordMutation(c.config, OpUpdateOne, withMCQRecordID(id))
	return &MCQRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MCQRecord.
func (c *MCQRecordClient) Delete() *MCQRecordDelete {
	mutation := newMCQRecordMutation(c.config, OpDelete)
	return &MCQRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MCQRecordClient) DeleteOne(_m *MCQRecord) *MCQRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MCQRecordClient) DeleteOneID(id int) *MCQRecordDeleteOne {
	builder := c.Delete().Where(mcqrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MCQRecordDeleteOne{builder}
}

// Query returns a query builder for MCQRecord.
func (c *MCQRecordClient) Query() *MCQRecordQuery {
	return &MCQRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMCQRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MCQRecord entity by its id.
func (c *MCQRecordClient) Get(ctx context.Context, id int) (*MCQRecord, error) {
	return c.Query().Where(mcqrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MCQRecordClient) GetX(ctx context.Context, id int) *MCQRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MCQRecordClient) Hooks() []Hook {
	return c.hooks.MCQRecord
}

// Interceptors returns the client interceptors.
func (c *MCQRecordClient) Interceptors() []Interceptor {
	return c.inters.MCQRecord
}

func (c *MCQRecordClient) mutate(ctx context.Context, m *MCQRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MCQRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MCQRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MCQRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MCQRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MCQRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConceptRecord, GenerationSession, LLMRequestEvent, MCQRecord []ent.Hook
	}
	inters struct {
		ConceptRecord, GenerationSession, LLMRequestEvent, MCQRecord []ent.Interceptor
	}
)

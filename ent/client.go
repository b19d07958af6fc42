// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/jazzgym/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/jazzgym/ent/chordpreferences"
	"github.com/abhisek/jazzgym/ent/practicesession"
	"github.com/abhisek/jazzgym/ent/scalepreferences"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/abhisek/jazzgym/ent/sessionchord"
	"github.com/abhisek/jazzgym/ent/sessionscale"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChordPreferences is the client for interacting with the ChordPreferences builders.
	ChordPreferences *ChordPreferencesClient
	// PracticeSession is the client for interacting with the PracticeSession builders.
	PracticeSession *PracticeSessionClient
	// ScalePreferences is the client for interacting with the ScalePreferences builders.
	ScalePreferences *ScalePreferencesClient
	// ScaleSession is the client for interacting with the ScaleSession builders.
	ScaleSession *ScaleSessionClient
	// SessionChord is the client for interacting with the SessionChord builders.
	SessionChord *SessionChordClient
	// SessionScale is the client for interacting with the SessionScale builders.
	SessionScale *SessionScaleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChordPreferences = NewChordPreferencesClient(c.config)
	c.PracticeSession = NewPracticeSessionClient(c.config)
	c.ScalePreferences = NewScalePreferencesClient(c.config)
	c.ScaleSession = NewScaleSessionClient(c.config)
	c.SessionChord = NewSessionChordClient(c.config)
	c.SessionScale = NewSessionScaleClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ChordPreferences: NewChordPreferencesClient(cfg),
		PracticeSession:  NewPracticeSessionClient(cfg),
		ScalePreferences: NewScalePreferencesClient(cfg),
		ScaleSession:     NewScaleSessionClient(cfg),
		SessionChord:     NewSessionChordClient(cfg),
		SessionScale:     NewSessionScaleClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ChordPreferences: NewChordPreferencesClient(cfg),
		PracticeSession:  NewPracticeSessionClient(cfg),
		ScalePreferences: NewScalePreferencesClient(cfg),
		ScaleSession:     NewScaleSessionClient(cfg),
		SessionChord:     NewSessionChordClient(cfg),
		SessionScale:     NewSessionScaleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChordPreferences.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ChordPreferences, c.PracticeSession, c.ScalePreferences, c.ScaleSession,
		c.SessionChord, c.SessionScale,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChordPreferences, c.PracticeSession, c.ScalePreferences, c.ScaleSession,
		c.SessionChord, c.SessionScale,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChordPreferencesMutation:
		return c.ChordPreferences.mutate(ctx, m)
	case *PracticeSessionMutation:
		return c.PracticeSession.mutate(ctx, m)
	case *ScalePreferencesMutation:
		return c.ScalePreferences.mutate(ctx, m)
	case *ScaleSessionMutation:
		return c.ScaleSession.mutate(ctx, m)
	case *SessionChordMutation:
		return c.SessionChord.mutate(ctx, m)
	case *SessionScaleMutation:
		return c.SessionScale.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChordPreferencesClient is a client for the ChordPreferences schema.
type ChordPreferencesClient struct {
	config
}

// NewChordPreferencesClient returns a client for the ChordPreferences from the given config.
func NewChordPreferencesClient(c config) *ChordPreferencesClient {
	return &ChordPreferencesClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chordpreferences.Hooks(f(g(h())))`.
func (c *ChordPreferencesClient) Use(hooks ...Hook) {
	c.hooks.ChordPreferences = append(c.hooks.ChordPreferences, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chordpreferences.Intercept(f(g(h())))`.
func (c *ChordPreferencesClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChordPreferences = append(c.inters.ChordPreferences, interceptors...)
}

// Create returns a builder for creating a ChordPreferences entity.
func (c *ChordPreferencesClient) Create() *ChordPreferencesCreate {
	mutation := newChordPreferencesMutation(c.config, OpCreate)
	return &ChordPreferencesCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChordPreferences entities.
func (c *ChordPreferencesClient) CreateBulk(builders ...*ChordPreferencesCreate) *ChordPreferencesCreateBulk {
	return &ChordPreferencesCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChordPreferencesClient) MapCreateBulk(slice any, setFunc func(*ChordPreferencesCreate, int)) *ChordPreferencesCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChordPreferencesCreateBulk{err: fmt.Errorf("calling to ChordPreferencesClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChordPreferencesCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChordPreferencesCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChordPreferences.
func (c *ChordPreferencesClient) Update() *ChordPreferencesUpdate {
	mutation := newChordPreferencesMutation(c.config, OpUpdate)
	return &ChordPreferencesUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChordPreferencesClient) UpdateOne(_m *ChordPreferences) *ChordPreferencesUpdateOne {
	mutation := newChordPreferencesMutation(c.config, OpUpdateOne, withChordPreferences(_m))
	return &ChordPreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChordPreferencesClient) UpdateOneID(id int) *ChordPreferencesUpdateOne {
	mutation := newChordPreferencesMutation(c.config, OpUpdateOne, withChordPreferencesID(id))
	return &ChordPreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChordPreferences.
func (c *ChordPreferencesClient) Delete() *ChordPreferencesDelete {
	mutation := newChordPreferencesMutation(c.config, OpDelete)
	return &ChordPreferencesDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChordPreferencesClient) DeleteOne(_m *ChordPreferences) *ChordPreferencesDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChordPreferencesClient) DeleteOneID(id int) *ChordPreferencesDeleteOne {
	builder := c.Delete().Where(chordpreferences.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChordPreferencesDeleteOne{builder}
}

// Query returns a query builder for ChordPreferences.
func (c *ChordPreferencesClient) Query() *ChordPreferencesQuery {
	return &ChordPreferencesQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChordPreferences},
		inters: c.Interceptors(),
	}
}

// Get returns a ChordPreferences entity by its id.
func (c *ChordPreferencesClient) Get(ctx context.Context, id int) (*ChordPreferences, error) {
	return c.Query().Where(chordpreferences.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChordPreferencesClient) GetX(ctx context.Context, id int) *ChordPreferences {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChordPreferencesClient) Hooks() []Hook {
	return c.hooks.ChordPreferences
}

// Interceptors returns the client interceptors.
func (c *ChordPreferencesClient) Interceptors() []Interceptor {
	return c.inters.ChordPreferences
}

func (c *ChordPreferencesClient) mutate(ctx context.Context, m *ChordPreferencesMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChordPreferencesCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChordPreferencesUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChordPreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChordPreferencesDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChordPreferences mutation op: %q", m.Op())
	}
}

// PracticeSessionClient is a client for the PracticeSession schema.
type PracticeSessionClient struct {
	config
}

// NewPracticeSessionClient returns a client for the PracticeSession from the given config.
func NewPracticeSessionClient(c config) *PracticeSessionClient {
	return &PracticeSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicesession.Hooks(f(g(h())))`.
func (c *PracticeSessionClient) Use(hooks ...Hook) {
	c.hooks.PracticeSession = append(c.hooks.PracticeSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicesession.Intercept(f(g(h())))`.
func (c *PracticeSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeSession = append(c.inters.PracticeSession, interceptors...)
}

// Create returns a builder for creating a PracticeSession entity.
func (c *PracticeSessionClient) Create() *PracticeSessionCreate {
	mutation := newPracticeSessionMutation(c.config, OpCreate)
	return &PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeSession entities.
func (c *PracticeSessionClient) CreateBulk(builders ...*PracticeSessionCreate) *PracticeSessionCreateBulk {
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeSessionClient) MapCreateBulk(slice any, setFunc func(*PracticeSessionCreate, int)) *PracticeSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeSessionCreateBulk{err: fmt.Errorf("calling to PracticeSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeSession.
func (c *PracticeSessionClient) Update() *PracticeSessionUpdate {
	mutation := newPracticeSessionMutation(c.config, OpUpdate)
	return &PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeSessionClient) UpdateOne(_m *PracticeSession) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSession(_m))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeSessionClient) UpdateOneID(id uuid.UUID) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSessionID(id))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeSession.
func (c *PracticeSessionClient) Delete() *PracticeSessionDelete {
	mutation := newPracticeSessionMutation(c.config, OpDelete)
	return &PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeSessionClient) DeleteOne(_m *PracticeSession) *PracticeSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeSessionClient) DeleteOneID(id uuid.UUID) *PracticeSessionDeleteOne {
	builder := c.Delete().Where(practicesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeSessionDeleteOne{builder}
}

// Query returns a query builder for PracticeSession.
func (c *PracticeSessionClient) Query() *PracticeSessionQuery {
	return &PracticeSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeSession entity by its id.
func (c *PracticeSessionClient) Get(ctx context.Context, id uuid.UUID) (*PracticeSession, error) {
	return c.Query().Where(practicesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeSessionClient) GetX(ctx context.Context, id uuid.UUID) *PracticeSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChords queries the chords edge of a PracticeSession.
func (c *PracticeSessionClient) QueryChords(_m *PracticeSession) *SessionChordQuery {
	query := (&SessionChordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(practicesession.Table, practicesession.FieldID, id),
			sqlgraph.To(sessionchord.Table, sessionchord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, practicesession.ChordsTable, practicesession.ChordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PracticeSessionClient) Hooks() []Hook {
	return c.hooks.PracticeSession
}

// Interceptors returns the client interceptors.
func (c *PracticeSessionClient) Interceptors() []Interceptor {
	return c.inters.PracticeSession
}

func (c *PracticeSessionClient) mutate(ctx context.Context, m *PracticeSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeSession mutation op: %q", m.Op())
	}
}

// ScalePreferencesClient is a client for the ScalePreferences schema.
type ScalePreferencesClient struct {
	config
}

// NewScalePreferencesClient returns a client for the ScalePreferences from the given config.
func NewScalePreferencesClient(c config) *ScalePreferencesClient {
	return &ScalePreferencesClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scalepreferences.Hooks(f(g(h())))`.
func (c *ScalePreferencesClient) Use(hooks ...Hook) {
	c.hooks.ScalePreferences = append(c.hooks.ScalePreferences, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scalepreferences.Intercept(f(g(h())))`.
func (c *ScalePreferencesClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScalePreferences = append(c.inters.ScalePreferences, interceptors...)
}

// Create returns a builder for creating a ScalePreferences entity.
func (c *ScalePreferencesClient) Create() *ScalePreferencesCreate {
	mutation := newScalePreferencesMutation(c.config, OpCreate)
	return &ScalePreferencesCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScalePreferences entities.
func (c *ScalePreferencesClient) CreateBulk(builders ...*ScalePreferencesCreate) *ScalePreferencesCreateBulk {
	return &ScalePreferencesCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScalePreferencesClient) MapCreateBulk(slice any, setFunc func(*ScalePreferencesCreate, int)) *ScalePreferencesCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScalePreferencesCreateBulk{err: fmt.Errorf("calling to ScalePreferencesClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScalePreferencesCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScalePreferencesCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScalePreferences.
func (c *ScalePreferencesClient) Update() *ScalePreferencesUpdate {
	mutation := newScalePreferencesMutation(c.config, OpUpdate)
	return &ScalePreferencesUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScalePreferencesClient) UpdateOne(_m *ScalePreferences) *ScalePreferencesUpdateOne {
	mutation := newScalePreferencesMutation(c.config, OpUpdateOne, withScalePreferences(_m))
	return &ScalePreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScalePreferencesClient) UpdateOneID(id int) *ScalePreferencesUpdateOne {
	mutation := newScalePreferencesMutation(c.config, OpUpdateOne, withScalePreferencesID(id))
	return &ScalePreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScalePreferences.
func (c *ScalePreferencesClient) Delete() *ScalePreferencesDelete {
	mutation := newScalePreferencesMutation(c.config, OpDelete)
	return &ScalePreferencesDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScalePreferencesClient) DeleteOne(_m *ScalePreferences) *ScalePreferencesDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScalePreferencesClient) DeleteOneID(id int) *ScalePreferencesDeleteOne {
	builder := c.Delete().Where(scalepreferences.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScalePreferencesDeleteOne{builder}
}

// Query returns a query builder for ScalePreferences.
func (c *ScalePreferencesClient) Query() *ScalePreferencesQuery {
	return &ScalePreferencesQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScalePreferences},
		inters: c.Interceptors(),
	}
}

// Get returns a ScalePreferences entity by its id.
func (c *ScalePreferencesClient) Get(ctx context.Context, id int) (*ScalePreferences, error) {
	return c.Query().Where(scalepreferences.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScalePreferencesClient) GetX(ctx context.Context, id int) *ScalePreferences {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScalePreferencesClient) Hooks() []Hook {
	return c.hooks.ScalePreferences
}

// Interceptors returns the client interceptors.
func (c *ScalePreferencesClient) Interceptors() []Interceptor {
	return c.inters.ScalePreferences
}

func (c *ScalePreferencesClient) mutate(ctx context.Context, m *ScalePreferencesMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScalePreferencesCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScalePreferencesUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScalePreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScalePreferencesDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScalePreferences mutation op: %q", m.Op())
	}
}

// ScaleSessionClient is a client for the ScaleSession schema.
type ScaleSessionClient struct {
	config
}

// NewScaleSessionClient returns a client for the ScaleSession from the given config.
func NewScaleSessionClient(c config) *ScaleSessionClient {
	return &ScaleSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scalesession.Hooks(f(g(h())))`.
func (c *ScaleSessionClient) Use(hooks ...Hook) {
	c.hooks.ScaleSession = append(c.hooks.ScaleSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scalesession.Intercept(f(g(h())))`.
func (c *ScaleSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScaleSession = append(c.inters.ScaleSession, interceptors...)
}

// Create returns a builder for creating a ScaleSession entity.
func (c *ScaleSessionClient) Create() *ScaleSessionCreate {
	mutation := newScaleSessionMutation(c.config, OpCreate)
	return &ScaleSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScaleSession entities.
func (c *ScaleSessionClient) CreateBulk(builders ...*ScaleSessionCreate) *ScaleSessionCreateBulk {
	return &ScaleSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScaleSessionClient) MapCreateBulk(slice any, setFunc func(*ScaleSessionCreate, int)) *ScaleSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScaleSessionCreateBulk{err: fmt.Errorf("calling to ScaleSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScaleSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScaleSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScaleSession.
func (c *ScaleSessionClient) Update() *ScaleSessionUpdate {
	mutation := newScaleSessionMutation(c.config, OpUpdate)
	return &ScaleSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScaleSessionClient) UpdateOne(_m *ScaleSession) *ScaleSessionUpdateOne {
	mutation := newScaleSessionMutation(c.config, OpUpdateOne, withScaleSession(_m))
	return &ScaleSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScaleSessionClient) UpdateOneID(id uuid.UUID) *ScaleSessionUpdateOne {
	mutation := newScaleSessionMutation(c.config, OpUpdateOne, withScaleSessionID(id))
	return &ScaleSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScaleSession.
func (c *ScaleSessionClient) Delete() *ScaleSessionDelete {
	mutation := newScaleSessionMutation(c.config, OpDelete)
	return &ScaleSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScaleSessionClient) DeleteOne(_m *ScaleSession) *ScaleSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScaleSessionClient) DeleteOneID(id uuid.UUID) *ScaleSessionDeleteOne {
	builder := c.Delete().Where(scalesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScaleSessionDeleteOne{builder}
}

// Query returns a query builder for ScaleSession.
func (c *ScaleSessionClient) Query() *ScaleSessionQuery {
	return &ScaleSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScaleSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ScaleSession entity by its id.
func (c *ScaleSessionClient) Get(ctx context.Context, id uuid.UUID) (*ScaleSession, error) {
	return c.Query().Where(scalesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScaleSessionClient) GetX(ctx context.Context, id uuid.UUID) *ScaleSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScales queries the scales edge of a ScaleSession.
func (c *ScaleSessionClient) QueryScales(_m *ScaleSession) *SessionScaleQuery {
	query := (&SessionScaleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scalesession.Table, scalesession.FieldID, id),
			sqlgraph.To(sessionscale.Table, sessionscale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scalesession.ScalesTable, scalesession.ScalesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScaleSessionClient) Hooks() []Hook {
	return c.hooks.ScaleSession
}

// Interceptors returns the client interceptors.
func (c *ScaleSessionClient) Interceptors() []Interceptor {
	return c.inters.ScaleSession
}

func (c *ScaleSessionClient) mutate(ctx context.Context, m *ScaleSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScaleSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScaleSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScaleSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScaleSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScaleSession mutation op: %q", m.Op())
	}
}

// SessionChordClient is a client for the SessionChord schema.
type SessionChordClient struct {
	config
}

// NewSessionChordClient returns a client for the SessionChord from the given config.
func NewSessionChordClient(c config) *SessionChordClient {
	return &SessionChordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionchord.Hooks(f(g(h())))`.
func (c *SessionChordClient) Use(hooks ...Hook) {
	c.hooks.SessionChord = append(c.hooks.SessionChord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionchord.Intercept(f(g(h())))`.
func (c *SessionChordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionChord = append(c.inters.SessionChord, interceptors...)
}

// Create returns a builder for creating a SessionChord entity.
func (c *SessionChordClient) Create() *SessionChordCreate {
	mutation := newSessionChordMutation(c.config, OpCreate)
	return &SessionChordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionChord entities.
func (c *SessionChordClient) CreateBulk(builders ...*SessionChordCreate) *SessionChordCreateBulk {
	return &SessionChordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionChordClient) MapCreateBulk(slice any, setFunc func(*SessionChordCreate, int)) *SessionChordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionChordCreateBulk{err: fmt.Errorf("calling to SessionChordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionChordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionChordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionChord.
func (c *SessionChordClient) Update() *SessionChordUpdate {
	mutation := newSessionChordMutation(c.config, OpUpdate)
	return &SessionChordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionChordClient) UpdateOne(_m *SessionChord) *SessionChordUpdateOne {
	mutation := newSessionChordMutation(c.config, OpUpdateOne, withSessionChord(_m))
	return &SessionChordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionChordClient) UpdateOneID(id int) *SessionChordUpdateOne {
	mutation := newSessionChordMutation(c.config, OpUpdateOne, withSessionChordID(id))
	return &SessionChordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionChord.
func (c *SessionChordClient) Delete() *SessionChordDelete {
	mutation := newSessionChordMutation(c.config, OpDelete)
	return &SessionChordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionChordClient) DeleteOne(_m *SessionChord) *SessionChordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionChordClient) DeleteOneID(id int) *SessionChordDeleteOne {
	builder := c.Delete().Where(sessionchord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionChordDeleteOne{builder}
}

// Query returns a query builder for SessionChord.
func (c *SessionChordClient) Query() *SessionChordQuery {
	return &SessionChordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionChord},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionChord entity by its id.
func (c *SessionChordClient) Get(ctx context.Context, id int) (*SessionChord, error) {
	return c.Query().Where(sessionchord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionChordClient) GetX(ctx context.Context, id int) *SessionChord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionChord.
func (c *SessionChordClient) QuerySession(_m *SessionChord) *PracticeSessionQuery {
	query := (&PracticeSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionchord.Table, sessionchord.FieldID, id),
			sqlgraph.To(practicesession.Table, practicesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionchord.SessionTable, sessionchord.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionChordClient) Hooks() []Hook {
	return c.hooks.SessionChord
}

// Interceptors returns the client interceptors.
func (c *SessionChordClient) Interceptors() []Interceptor {
	return c.inters.SessionChord
}

func (c *SessionChordClient) mutate(ctx context.Context, m *SessionChordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionChordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionChordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionChordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionChordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionChord mutation op: %q", m.Op())
	}
}

// SessionScaleClient is a client for the SessionScale schema.
type SessionScaleClient struct {
	config
}

// NewSessionScaleClient returns a client for the SessionScale from the given config.
func NewSessionScaleClient(c config) *SessionScaleClient {
	return &SessionScaleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionscale.Hooks(f(g(h())))`.
func (c *SessionScaleClient) Use(hooks ...Hook) {
	c.hooks.SessionScale = append(c.hooks.SessionScale, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionscale.Intercept(f(g(h())))`.
func (c *SessionScaleClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionScale = append(c.inters.SessionScale, interceptors...)
}

// Create returns a builder for creating a SessionScale entity.
func (c *SessionScaleClient) Create() *SessionScaleCreate {
	mutation := newSessionScaleMutation(c.config, OpCreate)
	return &SessionScaleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionScale entities.
func (c *SessionScaleClient) CreateBulk(builders ...*SessionScaleCreate) *SessionScaleCreateBulk {
	return &SessionScaleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionScaleClient) MapCreateBulk(slice any, setFunc func(*SessionScaleCreate, int)) *SessionScaleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionScaleCreateBulk{err: fmt.Errorf("calling to SessionScaleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionScaleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionScaleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionScale.
func (c *SessionScaleClient) Update() *SessionScaleUpdate {
	mutation := newSessionScaleMutation(c.config, OpUpdate)
	return &SessionScaleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionScaleClient) UpdateOne(_m *SessionScale) *SessionScaleUpdateOne {
	mutation := newSessionScaleMutation(c.config, OpUpdateOne, withSessionScale(_m))
	return &SessionScaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionScaleClient) UpdateOneID(id int) *SessionScaleUpdateOne {
	mutation := newSessionScaleMutation(c.config, OpUpdateOne, withSessionScaleID(id))
	return &SessionScaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionScale.
func (c *SessionScaleClient) Delete() *SessionScaleDelete {
	mutation := newSessionScaleMutation(c.config, OpDelete)
	return &SessionScaleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionScaleClient) DeleteOne(_m *SessionScale) *SessionScaleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionScaleClient) DeleteOneID(id int) *SessionScaleDeleteOne {
	builder := c.Delete().Where(sessionscale.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionScaleDeleteOne{builder}
}

// Query returns a query builder for SessionScale.
func (c *SessionScaleClient) Query() *SessionScaleQuery {
	return &SessionScaleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionScale},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionScale entity by its id.
func (c *SessionScaleClient) Get(ctx context.Context, id int) (*SessionScale, error) {
	return c.Query().Where(sessionscale.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionScaleClient) GetX(ctx context.Context, id int) *SessionScale {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionScale.
func (c *SessionScaleClient) QuerySession(_m *SessionScale) *ScaleSessionQuery {
	query := (&ScaleSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionscale.Table, sessionscale.FieldID, id),
			sqlgraph.To(scalesession.Table, scalesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionscale.SessionTable, sessionscale.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionScaleClient) Hooks() []Hook {
	return c.hooks.SessionScale
}

// Interceptors returns the client interceptors.
func (c *SessionScaleClient) Interceptors() []Interceptor {
	return c.inters.SessionScale
}

func (c *SessionScaleClient) mutate(ctx context.Context, m *SessionScaleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionScaleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionScaleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionScaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionScaleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionScale mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChordPreferences, PracticeSession, ScalePreferences, ScaleSession, SessionChord,
		SessionScale []ent.Hook
	}
	inters struct {
		ChordPreferences, PracticeSession, ScalePreferences, ScaleSession, SessionChord,
		SessionScale []ent.Interceptor
	}
)

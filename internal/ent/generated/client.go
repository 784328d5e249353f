// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/memedex/memedex/internal/ent/generated/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/ent/generated/tag"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CatalogItem is the client for interacting with the CatalogItem builders.
	CatalogItem *CatalogItemClient
	// Tag is the client for interacting with the Tag builders.
	Tag *TagClient
	// WatchedDirectory is the client for interacting with the WatchedDirectory builders.
	WatchedDirectory *WatchedDirectoryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CatalogItem = NewCatalogItemClient(c.config)
	c.Tag = NewTagClient(c.config)
	c.WatchedDirectory = NewWatchedDirectoryClient(c.config)
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
var ErrTxStarted = errors.New("generated: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("generated: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CatalogItem:      NewCatalogItemClient(cfg),
		Tag:              NewTagClient(cfg),
		WatchedDirectory: NewWatchedDirectoryClient(cfg),
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
		CatalogItem:      NewCatalogItemClient(cfg),
		Tag:              NewTagClient(cfg),
		WatchedDirectory: NewWatchedDirectoryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CatalogItem.
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
	c.CatalogItem.Use(hooks...)
	c.Tag.Use(hooks...)
	c.WatchedDirectory.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CatalogItem.Intercept(interceptors...)
	c.Tag.Intercept(interceptors...)
	c.WatchedDirectory.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CatalogItemMutation:
		return c.CatalogItem.mutate(ctx, m)
	case *TagMutation:
		return c.Tag.mutate(ctx, m)
	case *WatchedDirectoryMutation:
		return c.WatchedDirectory.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("generated: unknown mutation type %T", m)
	}
}

// CatalogItemClient is a client for the CatalogItem schema.
type CatalogItemClient struct {
	config
}

// NewCatalogItemClient returns a client for the CatalogItem from the given config.
func NewCatalogItemClient(c config) *CatalogItemClient {
	return &CatalogItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `catalogitem.Hooks(f(g(h())))`.
func (c *CatalogItemClient) Use(hooks ...Hook) {
	c.hooks.CatalogItem = append(c.hooks.CatalogItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `catalogitem.Intercept(f(g(h())))`.
func (c *CatalogItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CatalogItem = append(c.inters.CatalogItem, interceptors...)
}

// Create returns a builder for creating a CatalogItem entity.
func (c *CatalogItemClient) Create() *CatalogItemCreate {
	mutation := newCatalogItemMutation(c.config, OpCreate)
	return &CatalogItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CatalogItem entities.
func (c *CatalogItemClient) CreateBulk(builders ...*CatalogItemCreate) *CatalogItemCreateBulk {
	return &CatalogItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CatalogItemClient) MapCreateBulk(slice any, setFunc func(*CatalogItemCreate, int)) *CatalogItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CatalogItemCreateBulk{err: fmt.Errorf("calling to CatalogItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CatalogItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CatalogItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CatalogItem.
func (c *CatalogItemClient) Update() *CatalogItemUpdate {
	mutation := newCatalogItemMutation(c.config, OpUpdate)
	return &CatalogItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CatalogItemClient) UpdateOne(_m *CatalogItem) *CatalogItemUpdateOne {
	mutation := newCatalogItemMutation(c.config, OpUpdateOne, withCatalogItem(_m))
	return &CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CatalogItemClient) UpdateOneID(id int) *CatalogItemUpdateOne {
	mutation := newCatalogItemMutation(c.config, OpUpdateOne, withCatalogItemID(id))
	return &CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CatalogItem.
func (c *CatalogItemClient) Delete() *CatalogItemDelete {
	mutation := newCatalogItemMutation(c.config, OpDelete)
	return &CatalogItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CatalogItemClient) DeleteOne(_m *CatalogItem) *CatalogItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CatalogItemClient) DeleteOneID(id int) *CatalogItemDeleteOne {
	builder := c.Delete().Where(catalogitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CatalogItemDeleteOne{builder}
}

// Query returns a query builder for CatalogItem.
func (c *CatalogItemClient) Query() *CatalogItemQuery {
	return &CatalogItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCatalogItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CatalogItem entity by its id.
func (c *CatalogItemClient) Get(ctx context.Context, id int) (*CatalogItem, error) {
	return c.Query().Where(catalogitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CatalogItemClient) GetX(ctx context.Context, id int) *CatalogItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDirectory queries the directory edge of a CatalogItem.
func (c *CatalogItemClient) QueryDirectory(_m *CatalogItem) *WatchedDirectoryQuery {
	query := (&WatchedDirectoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(catalogitem.Table, catalogitem.FieldID, id),
			sqlgraph.To(watcheddirectory.Table, watcheddirectory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, catalogitem.DirectoryTable, catalogitem.DirectoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTags queries the tags edge of a CatalogItem.
func (c *CatalogItemClient) QueryTags(_m *CatalogItem) *TagQuery {
	query := (&TagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(catalogitem.Table, catalogitem.FieldID, id),
			sqlgraph.To(tag.Table, tag.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, catalogitem.TagsTable, catalogitem.TagsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CatalogItemClient) Hooks() []Hook {
	return c.hooks.CatalogItem
}

// Interceptors returns the client interceptors.
func (c *CatalogItemClient) Interceptors() []Interceptor {
	return c.inters.CatalogItem
}

func (c *CatalogItemClient) mutate(ctx context.Context, m *CatalogItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CatalogItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CatalogItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CatalogItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CatalogItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown CatalogItem mutation op: %q", m.Op())
	}
}

// TagClient is a client for the Tag schema.
type TagClient struct {
	config
}

// NewTagClient returns a client for the Tag from the given config.
func NewTagClient(c config) *TagClient {
	return &TagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tag.Hooks(f(g(h())))`.
func (c *TagClient) Use(hooks ...Hook) {
	c.hooks.Tag = append(c.hooks.Tag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tag.Intercept(f(g(h())))`.
func (c *TagClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tag = append(c.inters.Tag, interceptors...)
}

// Create returns a builder for creating a Tag entity.
func (c *TagClient) Create() *TagCreate {
	mutation := newTagMutation(c.config, OpCreate)
	return &TagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tag entities.
func (c *TagClient) CreateBulk(builders ...*TagCreate) *TagCreateBulk {
	return &TagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TagClient) MapCreateBulk(slice any, setFunc func(*TagCreate, int)) *TagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TagCreateBulk{err: fmt.Errorf("calling to TagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tag.
func (c *TagClient) Update() *TagUpdate {
	mutation := newTagMutation(c.config, OpUpdate)
	return &TagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TagClient) UpdateOne(_m *Tag) *TagUpdateOne {
	mutation := newTagMutation(c.config, OpUpdateOne, withTag(_m))
	return &TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TagClient) UpdateOneID(id int) *TagUpdateOne {
	mutation := newTagMutation(c.config, OpUpdateOne, withTagID(id))
	return &TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tag.
func (c *TagClient) Delete() *TagDelete {
	mutation := newTagMutation(c.config, OpDelete)
	return &TagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TagClient) DeleteOne(_m *Tag) *TagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TagClient) DeleteOneID(id int) *TagDeleteOne {
	builder := c.Delete().Where(tag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TagDeleteOne{builder}
}

// Query returns a query builder for Tag.
func (c *TagClient) Query() *TagQuery {
	return &TagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTag},
		inters: c.Interceptors(),
	}
}

// Get returns a Tag entity by its id.
func (c *TagClient) Get(ctx context.Context, id int) (*Tag, error) {
	return c.Query().Where(tag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TagClient) GetX(ctx context.Context, id int) *Tag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Tag.
func (c *TagClient) QueryItems(_m *Tag) *CatalogItemQuery {
	query := (&CatalogItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tag.Table, tag.FieldID, id),
			sqlgraph.To(catalogitem.Table, catalogitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, tag.ItemsTable, tag.ItemsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TagClient) Hooks() []Hook {
	return c.hooks.Tag
}

// Interceptors returns the client interceptors.
func (c *TagClient) Interceptors() []Interceptor {
	return c.inters.Tag
}

func (c *TagClient) mutate(ctx context.Context, m *TagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Tag mutation op: %q", m.Op())
	}
}

// WatchedDirectoryClient is a client for the WatchedDirectory schema.
type WatchedDirectoryClient struct {
	config
}

// NewWatchedDirectoryClient returns a client for the WatchedDirectory from the given config.
func NewWatchedDirectoryClient(c config) *WatchedDirectoryClient {
	return &WatchedDirectoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `watcheddirectory.Hooks(f(g(h())))`.
func (c *WatchedDirectoryClient) Use(hooks ...Hook) {
	c.hooks.WatchedDirectory = append(c.hooks.WatchedDirectory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `watcheddirectory.Intercept(f(g(h())))`.
func (c *WatchedDirectoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.WatchedDirectory = append(c.inters.WatchedDirectory, interceptors...)
}

// Create returns a builder for creating a WatchedDirectory entity.
func (c *WatchedDirectoryClient) Create() *WatchedDirectoryCreate {
	mutation := newWatchedDirectoryMutation(c.config, OpCreate)
	return &WatchedDirectoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WatchedDirectory entities.
func (c *WatchedDirectoryClient) CreateBulk(builders ...*WatchedDirectoryCreate) *WatchedDirectoryCreateBulk {
	return &WatchedDirectoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WatchedDirectoryClient) MapCreateBulk(slice any, setFunc func(*WatchedDirectoryCreate, int)) *WatchedDirectoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WatchedDirectoryCreateBulk{err: fmt.Errorf("calling to WatchedDirectoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WatchedDirectoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WatchedDirectoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WatchedDirectory.
func (c *WatchedDirectoryClient) Update() *WatchedDirectoryUpdate {
	mutation := newWatchedDirectoryMutation(c.config, OpUpdate)
	return &WatchedDirectoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WatchedDirectoryClient) UpdateOne(_m *WatchedDirectory) *WatchedDirectoryUpdateOne {
	mutation := newWatchedDirectoryMutation(c.config, OpUpdateOne, withWatchedDirectory(_m))
	return &WatchedDirectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WatchedDirectoryClient) UpdateOneID(id int) *WatchedDirectoryUpdateOne {
	mutation := newWatchedDirectoryMutation(c.config, OpUpdateOne, withWatchedDirectoryID(id))
	return &WatchedDirectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WatchedDirectory.
func (c *WatchedDirectoryClient) Delete() *WatchedDirectoryDelete {
	mutation := newWatchedDirectoryMutation(c.config, OpDelete)
	return &WatchedDirectoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WatchedDirectoryClient) DeleteOne(_m *WatchedDirectory) *WatchedDirectoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WatchedDirectoryClient) DeleteOneID(id int) *WatchedDirectoryDeleteOne {
	builder := c.Delete().Where(watcheddirectory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WatchedDirectoryDeleteOne{builder}
}

// Query returns a query builder for WatchedDirectory.
func (c *WatchedDirectoryClient) Query() *WatchedDirectoryQuery {
	return &WatchedDirectoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWatchedDirectory},
		inters: c.Interceptors(),
	}
}

// Get returns a WatchedDirectory entity by its id.
func (c *WatchedDirectoryClient) Get(ctx context.Context, id int) (*WatchedDirectory, error) {
	return c.Query().Where(watcheddirectory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WatchedDirectoryClient) GetX(ctx context.Context, id int) *WatchedDirectory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a WatchedDirectory.
func (c *WatchedDirectoryClient) QueryItems(_m *WatchedDirectory) *CatalogItemQuery {
	query := (&CatalogItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(watcheddirectory.Table, watcheddirectory.FieldID, id),
			sqlgraph.To(catalogitem.Table, catalogitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, watcheddirectory.ItemsTable, watcheddirectory.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WatchedDirectoryClient) Hooks() []Hook {
	return c.hooks.WatchedDirectory
}

// Interceptors returns the client interceptors.
func (c *WatchedDirectoryClient) Interceptors() []Interceptor {
	return c.inters.WatchedDirectory
}

func (c *WatchedDirectoryClient) mutate(ctx context.Context, m *WatchedDirectoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WatchedDirectoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WatchedDirectoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WatchedDirectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WatchedDirectoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown WatchedDirectory mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CatalogItem, Tag, WatchedDirectory []ent.Hook
	}
	inters struct {
		CatalogItem, Tag, WatchedDirectory []ent.Interceptor
	}
)

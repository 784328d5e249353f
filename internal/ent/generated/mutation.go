// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/ent/generated/predicate"
	"github.com/memedex/memedex/internal/ent/generated/tag"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCatalogItem      = "CatalogItem"
	TypeTag              = "Tag"
	TypeWatchedDirectory = "WatchedDirectory"
)

// CatalogItemMutation represents an operation that mutates the CatalogItem nodes in the graph.
type CatalogItemMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	filename         *string
	description      *string
	status           *catalogitem.Status
	clearedFields    map[string]struct{}
	directory        *int
	cleareddirectory bool
	tags             map[int]struct{}
	removedtags      map[int]struct{}
	clearedtags      bool
	done             bool
	oldValue         func(context.Context) (*CatalogItem, error)
	predicates       []predicate.CatalogItem
}

var _ ent.Mutation = (*CatalogItemMutation)(nil)

// catalogitemOption allows management of the mutation configuration using functional options.
type catalogitemOption func(*CatalogItemMutation)

// newCatalogItemMutation creates new mutation for the CatalogItem entity.
func newCatalogItemMutation(c config, op Op, opts ...catalogitemOption) *CatalogItemMutation {
	m := &CatalogItemMutation{
		config:        c,
		op:            op,
		typ:           TypeCatalogItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCatalogItemID sets the ID field of the mutation.
func withCatalogItemID(id int) catalogitemOption {
	return func(m *CatalogItemMutation) {
		var (
			err   error
			once  sync.Once
			value *CatalogItem
		)
		m.oldValue = func(ctx context.Context) (*CatalogItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CatalogItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCatalogItem sets the old CatalogItem of the mutation.
func withCatalogItem(node *CatalogItem) catalogitemOption {
	return func(m *CatalogItemMutation) {
		m.oldValue = func(context.Context) (*CatalogItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CatalogItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CatalogItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CatalogItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CatalogItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CatalogItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CatalogItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CatalogItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CatalogItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CatalogItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CatalogItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CatalogItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDirectoryID sets the "directory_id" field.
func (m *CatalogItemMutation) SetDirectoryID(i int) {
	m.directory = &i
}

// DirectoryID returns the value of the "directory_id" field in the mutation.
func (m *CatalogItemMutation) DirectoryID() (r int, exists bool) {
	v := m.directory
	if v == nil {
		return
	}
	return *v, true
}

// OldDirectoryID returns the old "directory_id" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldDirectoryID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirectoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirectoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirectoryID: %w", err)
	}
	return oldValue.DirectoryID, nil
}

// ResetDirectoryID resets all changes to the "directory_id" field.
func (m *CatalogItemMutation) ResetDirectoryID() {
	m.directory = nil
}

// SetFilename sets the "filename" field.
func (m *CatalogItemMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *CatalogItemMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *CatalogItemMutation) ResetFilename() {
	m.filename = nil
}

// SetDescription sets the "description" field.
func (m *CatalogItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CatalogItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CatalogItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[catalogitem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CatalogItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[catalogitem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CatalogItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, catalogitem.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *CatalogItemMutation) SetStatus(c catalogitem.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CatalogItemMutation) Status() (r catalogitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldStatus(ctx context.Context) (v catalogitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CatalogItemMutation) ResetStatus() {
	m.status = nil
}

// ClearDirectory clears the "directory" edge to the WatchedDirectory entity.
func (m *CatalogItemMutation) ClearDirectory() {
	m.cleareddirectory = true
	m.clearedFields[catalogitem.FieldDirectoryID] = struct{}{}
}

// DirectoryCleared reports if the "directory" edge to the WatchedDirectory entity was cleared.
func (m *CatalogItemMutation) DirectoryCleared() bool {
	return m.cleareddirectory
}

// DirectoryIDs returns the "directory" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DirectoryID instead. It exists only for internal usage by the builders.
func (m *CatalogItemMutation) DirectoryIDs() (ids []int) {
	if id := m.directory; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDirectory resets all changes to the "directory" edge.
func (m *CatalogItemMutation) ResetDirectory() {
	m.directory = nil
	m.cleareddirectory = false
}

// AddTagIDs adds the "tags" edge to the Tag entity by ids.
func (m *CatalogItemMutation) AddTagIDs(ids ...int) {
	if m.tags == nil {
		m.tags = make(map[int]struct{})
	}
	for i := range ids {
		m.tags[ids[i]] = struct{}{}
	}
}

// ClearTags clears the "tags" edge to the Tag entity.
func (m *CatalogItemMutation) ClearTags() {
	m.clearedtags = true
}

// TagsCleared reports if the "tags" edge to the Tag entity was cleared.
func (m *CatalogItemMutation) TagsCleared() bool {
	return m.clearedtags
}

// RemoveTagIDs removes the "tags" edge to the Tag entity by IDs.
func (m *CatalogItemMutation) RemoveTagIDs(ids ...int) {
	if m.removedtags == nil {
		m.removedtags = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tags, ids[i])
		m.removedtags[ids[i]] = struct{}{}
	}
}

// RemovedTags returns the removed IDs of the "tags" edge to the Tag entity.
func (m *CatalogItemMutation) RemovedTagsIDs() (ids []int) {
	for id := range m.removedtags {
		ids = append(ids, id)
	}
	return
}

// TagsIDs returns the "tags" edge IDs in the mutation.
func (m *CatalogItemMutation) TagsIDs() (ids []int) {
	for id := range m.tags {
		ids = append(ids, id)
	}
	return
}

// ResetTags resets all changes to the "tags" edge.
func (m *CatalogItemMutation) ResetTags() {
	m.tags = nil
	m.clearedtags = false
	m.removedtags = nil
}

// Where appends a list predicates to the CatalogItemMutation builder.
func (m *CatalogItemMutation) Where(ps ...predicate.CatalogItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CatalogItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CatalogItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CatalogItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CatalogItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CatalogItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CatalogItem).
func (m *CatalogItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CatalogItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, catalogitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, catalogitem.FieldUpdatedAt)
	}
	if m.directory != nil {
		fields = append(fields, catalogitem.FieldDirectoryID)
	}
	if m.filename != nil {
		fields = append(fields, catalogitem.FieldFilename)
	}
	if m.description != nil {
		fields = append(fields, catalogitem.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, catalogitem.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CatalogItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case catalogitem.FieldCreatedAt:
		return m.CreatedAt()
	case catalogitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case catalogitem.FieldDirectoryID:
		return m.DirectoryID()
	case catalogitem.FieldFilename:
		return m.Filename()
	case catalogitem.FieldDescription:
		return m.Description()
	case catalogitem.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CatalogItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case catalogitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case catalogitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case catalogitem.FieldDirectoryID:
		return m.OldDirectoryID(ctx)
	case catalogitem.FieldFilename:
		return m.OldFilename(ctx)
	case catalogitem.FieldDescription:
		return m.OldDescription(ctx)
	case catalogitem.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown CatalogItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case catalogitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case catalogitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case catalogitem.FieldDirectoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirectoryID(v)
		return nil
	case catalogitem.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case catalogitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case catalogitem.FieldStatus:
		v, ok := value.(catalogitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CatalogItemMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CatalogItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CatalogItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CatalogItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(catalogitem.FieldDescription) {
		fields = append(fields, catalogitem.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CatalogItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CatalogItemMutation) ClearField(name string) error {
	switch name {
	case catalogitem.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown CatalogItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CatalogItemMutation) ResetField(name string) error {
	switch name {
	case catalogitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case catalogitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case catalogitem.FieldDirectoryID:
		m.ResetDirectoryID()
		return nil
	case catalogitem.FieldFilename:
		m.ResetFilename()
		return nil
	case catalogitem.FieldDescription:
		m.ResetDescription()
		return nil
	case catalogitem.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown CatalogItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CatalogItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.directory != nil {
		edges = append(edges, catalogitem.EdgeDirectory)
	}
	if m.tags != nil {
		edges = append(edges, catalogitem.EdgeTags)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CatalogItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case catalogitem.EdgeDirectory:
		if id := m.directory; id != nil {
			return []ent.Value{*id}
		}
	case catalogitem.EdgeTags:
		ids := make([]ent.Value, 0, len(m.tags))
		for id := range m.tags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CatalogItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtags != nil {
		edges = append(edges, catalogitem.EdgeTags)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CatalogItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case catalogitem.EdgeTags:
		ids := make([]ent.Value, 0, len(m.removedtags))
		for id := range m.removedtags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CatalogItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddirectory {
		edges = append(edges, catalogitem.EdgeDirectory)
	}
	if m.clearedtags {
		edges = append(edges, catalogitem.EdgeTags)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CatalogItemMutation) EdgeCleared(name string) bool {
	switch name {
	case catalogitem.EdgeDirectory:
		return m.cleareddirectory
	case catalogitem.EdgeTags:
		return m.clearedtags
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CatalogItemMutation) ClearEdge(name string) error {
	switch name {
	case catalogitem.EdgeDirectory:
		m.ClearDirectory()
		return nil
	}
	return fmt.Errorf("unknown CatalogItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CatalogItemMutation) ResetEdge(name string) error {
	switch name {
	case catalogitem.EdgeDirectory:
		m.ResetDirectory()
		return nil
	case catalogitem.EdgeTags:
		m.ResetTags()
		return nil
	}
	return fmt.Errorf("unknown CatalogItem edge %s", name)
}

// TagMutation represents an operation that mutates the Tag nodes in the graph.
type TagMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	clearedFields map[string]struct{}
	items         map[int]struct{}
	removeditems  map[int]struct{}
	cleareditems  bool
	done          bool
	oldValue      func(context.Context) (*Tag, error)
	predicates    []predicate.Tag
}

var _ ent.Mutation = (*TagMutation)(nil)

// tagOption allows management of the mutation configuration using functional options.
type tagOption func(*TagMutation)

// newTagMutation creates new mutation for the Tag entity.
func newTagMutation(c config, op Op, opts ...tagOption) *TagMutation {
	m := &TagMutation{
		config:        c,
		op:            op,
		typ:           TypeTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTagID sets the ID field of the mutation.
func withTagID(id int) tagOption {
	return func(m *TagMutation) {
		var (
			err   error
			once  sync.Once
			value *Tag
		)
		m.oldValue = func(ctx context.Context) (*Tag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTag sets the old Tag of the mutation.
func withTag(node *Tag) tagOption {
	return func(m *TagMutation) {
		m.oldValue = func(context.Context) (*Tag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TagMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TagMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TagMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TagMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TagMutation) ResetName() {
	m.name = nil
}

// AddItemIDs adds the "items" edge to the CatalogItem entity by ids.
func (m *TagMutation) AddItemIDs(ids ...int) {
	if m.items == nil {
		m.items = make(map[int]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the CatalogItem entity.
func (m *TagMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the CatalogItem entity was cleared.
func (m *TagMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the CatalogItem entity by IDs.
func (m *TagMutation) RemoveItemIDs(ids ...int) {
	if m.removeditems == nil {
		m.removeditems = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the CatalogItem entity.
func (m *TagMutation) RemovedItemsIDs() (ids []int) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *TagMutation) ItemsIDs() (ids []int) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *TagMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the TagMutation builder.
func (m *TagMutation) Where(ps ...predicate.Tag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tag).
func (m *TagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TagMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, tag.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tag.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tag.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Tag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tag.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TagMutation) ResetField(name string) error {
	switch name {
	case tag.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TagMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, tag.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, tag.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TagMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, tag.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TagMutation) EdgeCleared(name string) bool {
	switch name {
	case tag.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TagMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TagMutation) ResetEdge(name string) error {
	switch name {
	case tag.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Tag edge %s", name)
}

// WatchedDirectoryMutation represents an operation that mutates the WatchedDirectory nodes in the graph.
type WatchedDirectoryMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	created_at                *time.Time
	updated_at                *time.Time
	name                      *string
	scan_frequency_minutes    *int
	addscan_frequency_minutes *int
	last_scanned_at           *time.Time
	scan_status               *watcheddirectory.ScanStatus
	last_scan_error           *string
	currently_scanning        *bool
	last_scan_duration_ms     *int64
	addlast_scan_duration_ms  *int64
	clearedFields             map[string]struct{}
	items                     map[int]struct{}
	removeditems              map[int]struct{}
	cleareditems              bool
	done                      bool
	oldValue                  func(context.Context) (*WatchedDirectory, error)
	predicates                []predicate.WatchedDirectory
}

var _ ent.Mutation = (*WatchedDirectoryMutation)(nil)

// watcheddirectoryOption allows management of the mutation configuration using functional options.
type watcheddirectoryOption func(*WatchedDirectoryMutation)

// newWatchedDirectoryMutation creates new mutation for the WatchedDirectory entity.
func newWatchedDirectoryMutation(c config, op Op, opts ...watcheddirectoryOption) *WatchedDirectoryMutation {
	m := &WatchedDirectoryMutation{
		config:        c,
		op:            op,
		typ:           TypeWatchedDirectory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWatchedDirectoryID sets the ID field of the mutation.
func withWatchedDirectoryID(id int) watcheddirectoryOption {
	return func(m *WatchedDirectoryMutation) {
		var (
			err   error
			once  sync.Once
			value *WatchedDirectory
		)
		m.oldValue = func(ctx context.Context) (*WatchedDirectory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WatchedDirectory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWatchedDirectory sets the old WatchedDirectory of the mutation.
func withWatchedDirectory(node *WatchedDirectory) watcheddirectoryOption {
	return func(m *WatchedDirectoryMutation) {
		m.oldValue = func(context.Context) (*WatchedDirectory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WatchedDirectoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WatchedDirectoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WatchedDirectoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WatchedDirectoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WatchedDirectory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WatchedDirectoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WatchedDirectoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WatchedDirectoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WatchedDirectoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WatchedDirectoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WatchedDirectoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *WatchedDirectoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WatchedDirectoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WatchedDirectoryMutation) ResetName() {
	m.name = nil
}

// SetScanFrequencyMinutes sets the "scan_frequency_minutes" field.
func (m *WatchedDirectoryMutation) SetScanFrequencyMinutes(i int) {
	m.scan_frequency_minutes = &i
	m.addscan_frequency_minutes = nil
}

// ScanFrequencyMinutes returns the value of the "scan_frequency_minutes" field in the mutation.
func (m *WatchedDirectoryMutation) ScanFrequencyMinutes() (r int, exists bool) {
	v := m.scan_frequency_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldScanFrequencyMinutes returns the old "scan_frequency_minutes" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldScanFrequencyMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanFrequencyMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanFrequencyMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanFrequencyMinutes: %w", err)
	}
	return oldValue.ScanFrequencyMinutes, nil
}

// AddScanFrequencyMinutes adds i to the "scan_frequency_minutes" field.
func (m *WatchedDirectoryMutation) AddScanFrequencyMinutes(i int) {
	if m.addscan_frequency_minutes != nil {
		*m.addscan_frequency_minutes += i
	} else {
		m.addscan_frequency_minutes = &i
	}
}

// AddedScanFrequencyMinutes returns the value that was added to the "scan_frequency_minutes" field in this mutation.
func (m *WatchedDirectoryMutation) AddedScanFrequencyMinutes() (r int, exists bool) {
	v := m.addscan_frequency_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearScanFrequencyMinutes clears the value of the "scan_frequency_minutes" field.
func (m *WatchedDirectoryMutation) ClearScanFrequencyMinutes() {
	m.scan_frequency_minutes = nil
	m.addscan_frequency_minutes = nil
	m.clearedFields[watcheddirectory.FieldScanFrequencyMinutes] = struct{}{}
}

// ScanFrequencyMinutesCleared returns if the "scan_frequency_minutes" field was cleared in this mutation.
func (m *WatchedDirectoryMutation) ScanFrequencyMinutesCleared() bool {
	_, ok := m.clearedFields[watcheddirectory.FieldScanFrequencyMinutes]
	return ok
}

// ResetScanFrequencyMinutes resets all changes to the "scan_frequency_minutes" field.
func (m *WatchedDirectoryMutation) ResetScanFrequencyMinutes() {
	m.scan_frequency_minutes = nil
	m.addscan_frequency_minutes = nil
	delete(m.clearedFields, watcheddirectory.FieldScanFrequencyMinutes)
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (m *WatchedDirectoryMutation) SetLastScannedAt(t time.Time) {
	m.last_scanned_at = &t
}

// LastScannedAt returns the value of the "last_scanned_at" field in the mutation.
func (m *WatchedDirectoryMutation) LastScannedAt() (r time.Time, exists bool) {
	v := m.last_scanned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScannedAt returns the old "last_scanned_at" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldLastScannedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScannedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScannedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScannedAt: %w", err)
	}
	return oldValue.LastScannedAt, nil
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (m *WatchedDirectoryMutation) ClearLastScannedAt() {
	m.last_scanned_at = nil
	m.clearedFields[watcheddirectory.FieldLastScannedAt] = struct{}{}
}

// LastScannedAtCleared returns if the "last_scanned_at" field was cleared in this mutation.
func (m *WatchedDirectoryMutation) LastScannedAtCleared() bool {
	_, ok := m.clearedFields[watcheddirectory.FieldLastScannedAt]
	return ok
}

// ResetLastScannedAt resets all changes to the "last_scanned_at" field.
func (m *WatchedDirectoryMutation) ResetLastScannedAt() {
	m.last_scanned_at = nil
	delete(m.clearedFields, watcheddirectory.FieldLastScannedAt)
}

// SetScanStatus sets the "scan_status" field.
func (m *WatchedDirectoryMutation) SetScanStatus(ws watcheddirectory.ScanStatus) {
	m.scan_status = &ws
}

// ScanStatus returns the value of the "scan_status" field in the mutation.
func (m *WatchedDirectoryMutation) ScanStatus() (r watcheddirectory.ScanStatus, exists bool) {
	v := m.scan_status
	if v == nil {
		return
	}
	return *v, true
}

// OldScanStatus returns the old "scan_status" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldScanStatus(ctx context.Context) (v watcheddirectory.ScanStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanStatus: %w", err)
	}
	return oldValue.ScanStatus, nil
}

// ResetScanStatus resets all changes to the "scan_status" field.
func (m *WatchedDirectoryMutation) ResetScanStatus() {
	m.scan_status = nil
}

// SetLastScanError sets the "last_scan_error" field.
func (m *WatchedDirectoryMutation) SetLastScanError(s string) {
	m.last_scan_error = &s
}

// LastScanError returns the value of the "last_scan_error" field in the mutation.
func (m *WatchedDirectoryMutation) LastScanError() (r string, exists bool) {
	v := m.last_scan_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScanError returns the old "last_scan_error" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldLastScanError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScanError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScanError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScanError: %w", err)
	}
	return oldValue.LastScanError, nil
}

// ClearLastScanError clears the value of the "last_scan_error" field.
func (m *WatchedDirectoryMutation) ClearLastScanError() {
	m.last_scan_error = nil
	m.clearedFields[watcheddirectory.FieldLastScanError] = struct{}{}
}

// LastScanErrorCleared returns if the "last_scan_error" field was cleared in this mutation.
func (m *WatchedDirectoryMutation) LastScanErrorCleared() bool {
	_, ok := m.clearedFields[watcheddirectory.FieldLastScanError]
	return ok
}

// ResetLastScanError resets all changes to the "last_scan_error" field.
func (m *WatchedDirectoryMutation) ResetLastScanError() {
	m.last_scan_error = nil
	delete(m.clearedFields, watcheddirectory.FieldLastScanError)
}

// SetCurrentlyScanning sets the "currently_scanning" field.
func (m *WatchedDirectoryMutation) SetCurrentlyScanning(b bool) {
	m.currently_scanning = &b
}

// CurrentlyScanning returns the value of the "currently_scanning" field in the mutation.
func (m *WatchedDirectoryMutation) CurrentlyScanning() (r bool, exists bool) {
	v := m.currently_scanning
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentlyScanning returns the old "currently_scanning" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldCurrentlyScanning(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentlyScanning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentlyScanning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentlyScanning: %w", err)
	}
	return oldValue.CurrentlyScanning, nil
}

// ResetCurrentlyScanning resets all changes to the "currently_scanning" field.
func (m *WatchedDirectoryMutation) ResetCurrentlyScanning() {
	m.currently_scanning = nil
}

// SetLastScanDurationMs sets the "last_scan_duration_ms" field.
func (m *WatchedDirectoryMutation) SetLastScanDurationMs(i int64) {
	m.last_scan_duration_ms = &i
	m.addlast_scan_duration_ms = nil
}

// LastScanDurationMs returns the value of the "last_scan_duration_ms" field in the mutation.
func (m *WatchedDirectoryMutation) LastScanDurationMs() (r int64, exists bool) {
	v := m.last_scan_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScanDurationMs returns the old "last_scan_duration_ms" field's value of the WatchedDirectory entity.
// If the WatchedDirectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WatchedDirectoryMutation) OldLastScanDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScanDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScanDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScanDurationMs: %w", err)
	}
	return oldValue.LastScanDurationMs, nil
}

// AddLastScanDurationMs adds i to the "last_scan_duration_ms" field.
func (m *WatchedDirectoryMutation) AddLastScanDurationMs(i int64) {
	if m.addlast_scan_duration_ms != nil {
		*m.addlast_scan_duration_ms += i
	} else {
		m.addlast_scan_duration_ms = &i
	}
}

// AddedLastScanDurationMs returns the value that was added to the "last_scan_duration_ms" field in this mutation.
func (m *WatchedDirectoryMutation) AddedLastScanDurationMs() (r int64, exists bool) {
	v := m.addlast_scan_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastScanDurationMs resets all changes to the "last_scan_duration_ms" field.
func (m *WatchedDirectoryMutation) ResetLastScanDurationMs() {
	m.last_scan_duration_ms = nil
	m.addlast_scan_duration_ms = nil
}

// AddItemIDs adds the "items" edge to the CatalogItem entity by ids.
func (m *WatchedDirectoryMutation) AddItemIDs(ids ...int) {
	if m.items == nil {
		m.items = make(map[int]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the CatalogItem entity.
func (m *WatchedDirectoryMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the CatalogItem entity was cleared.
func (m *WatchedDirectoryMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the CatalogItem entity by IDs.
func (m *WatchedDirectoryMutation) RemoveItemIDs(ids ...int) {
	if m.removeditems == nil {
		m.removeditems = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the CatalogItem entity.
func (m *WatchedDirectoryMutation) RemovedItemsIDs() (ids []int) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *WatchedDirectoryMutation) ItemsIDs() (ids []int) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *WatchedDirectoryMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the WatchedDirectoryMutation builder.
func (m *WatchedDirectoryMutation) Where(ps ...predicate.WatchedDirectory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WatchedDirectoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WatchedDirectoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WatchedDirectory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WatchedDirectoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WatchedDirectoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WatchedDirectory).
func (m *WatchedDirectoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WatchedDirectoryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, watcheddirectory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, watcheddirectory.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, watcheddirectory.FieldName)
	}
	if m.scan_frequency_minutes != nil {
		fields = append(fields, watcheddirectory.FieldScanFrequencyMinutes)
	}
	if m.last_scanned_at != nil {
		fields = append(fields, watcheddirectory.FieldLastScannedAt)
	}
	if m.scan_status != nil {
		fields = append(fields, watcheddirectory.FieldScanStatus)
	}
	if m.last_scan_error != nil {
		fields = append(fields, watcheddirectory.FieldLastScanError)
	}
	if m.currently_scanning != nil {
		fields = append(fields, watcheddirectory.FieldCurrentlyScanning)
	}
	if m.last_scan_duration_ms != nil {
		fields = append(fields, watcheddirectory.FieldLastScanDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WatchedDirectoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case watcheddirectory.FieldCreatedAt:
		return m.CreatedAt()
	case watcheddirectory.FieldUpdatedAt:
		return m.UpdatedAt()
	case watcheddirectory.FieldName:
		return m.Name()
	case watcheddirectory.FieldScanFrequencyMinutes:
		return m.ScanFrequencyMinutes()
	case watcheddirectory.FieldLastScannedAt:
		return m.LastScannedAt()
	case watcheddirectory.FieldScanStatus:
		return m.ScanStatus()
	case watcheddirectory.FieldLastScanError:
		return m.LastScanError()
	case watcheddirectory.FieldCurrentlyScanning:
		return m.CurrentlyScanning()
	case watcheddirectory.FieldLastScanDurationMs:
		return m.LastScanDurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WatchedDirectoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case watcheddirectory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case watcheddirectory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case watcheddirectory.FieldName:
		return m.OldName(ctx)
	case watcheddirectory.FieldScanFrequencyMinutes:
		return m.OldScanFrequencyMinutes(ctx)
	case watcheddirectory.FieldLastScannedAt:
		return m.OldLastScannedAt(ctx)
	case watcheddirectory.FieldScanStatus:
		return m.OldScanStatus(ctx)
	case watcheddirectory.FieldLastScanError:
		return m.OldLastScanError(ctx)
	case watcheddirectory.FieldCurrentlyScanning:
		return m.OldCurrentlyScanning(ctx)
	case watcheddirectory.FieldLastScanDurationMs:
		return m.OldLastScanDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown WatchedDirectory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WatchedDirectoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case watcheddirectory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case watcheddirectory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case watcheddirectory.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case watcheddirectory.FieldScanFrequencyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanFrequencyMinutes(v)
		return nil
	case watcheddirectory.FieldLastScannedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScannedAt(v)
		return nil
	case watcheddirectory.FieldScanStatus:
		v, ok := value.(watcheddirectory.ScanStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanStatus(v)
		return nil
	case watcheddirectory.FieldLastScanError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScanError(v)
		return nil
	case watcheddirectory.FieldCurrentlyScanning:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentlyScanning(v)
		return nil
	case watcheddirectory.FieldLastScanDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScanDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown WatchedDirectory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WatchedDirectoryMutation) AddedFields() []string {
	var fields []string
	if m.addscan_frequency_minutes != nil {
		fields = append(fields, watcheddirectory.FieldScanFrequencyMinutes)
	}
	if m.addlast_scan_duration_ms != nil {
		fields = append(fields, watcheddirectory.FieldLastScanDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WatchedDirectoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case watcheddirectory.FieldScanFrequencyMinutes:
		return m.AddedScanFrequencyMinutes()
	case watcheddirectory.FieldLastScanDurationMs:
		return m.AddedLastScanDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WatchedDirectoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case watcheddirectory.FieldScanFrequencyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScanFrequencyMinutes(v)
		return nil
	case watcheddirectory.FieldLastScanDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastScanDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown WatchedDirectory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WatchedDirectoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(watcheddirectory.FieldScanFrequencyMinutes) {
		fields = append(fields, watcheddirectory.FieldScanFrequencyMinutes)
	}
	if m.FieldCleared(watcheddirectory.FieldLastScannedAt) {
		fields = append(fields, watcheddirectory.FieldLastScannedAt)
	}
	if m.FieldCleared(watcheddirectory.FieldLastScanError) {
		fields = append(fields, watcheddirectory.FieldLastScanError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WatchedDirectoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WatchedDirectoryMutation) ClearField(name string) error {
	switch name {
	case watcheddirectory.FieldScanFrequencyMinutes:
		m.ClearScanFrequencyMinutes()
		return nil
	case watcheddirectory.FieldLastScannedAt:
		m.ClearLastScannedAt()
		return nil
	case watcheddirectory.FieldLastScanError:
		m.ClearLastScanError()
		return nil
	}
	return fmt.Errorf("unknown WatchedDirectory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WatchedDirectoryMutation) ResetField(name string) error {
	switch name {
	case watcheddirectory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case watcheddirectory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case watcheddirectory.FieldName:
		m.ResetName()
		return nil
	case watcheddirectory.FieldScanFrequencyMinutes:
		m.ResetScanFrequencyMinutes()
		return nil
	case watcheddirectory.FieldLastScannedAt:
		m.ResetLastScannedAt()
		return nil
	case watcheddirectory.FieldScanStatus:
		m.ResetScanStatus()
		return nil
	case watcheddirectory.FieldLastScanError:
		m.ResetLastScanError()
		return nil
	case watcheddirectory.FieldCurrentlyScanning:
		m.ResetCurrentlyScanning()
		return nil
	case watcheddirectory.FieldLastScanDurationMs:
		m.ResetLastScanDurationMs()
		return nil
	}
	return fmt.Errorf("unknown WatchedDirectory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WatchedDirectoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, watcheddirectory.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WatchedDirectoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case watcheddirectory.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WatchedDirectoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, watcheddirectory.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WatchedDirectoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case watcheddirectory.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WatchedDirectoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, watcheddirectory.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WatchedDirectoryMutation) EdgeCleared(name string) bool {
	switch name {
	case watcheddirectory.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WatchedDirectoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WatchedDirectory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WatchedDirectoryMutation) ResetEdge(name string) error {
	switch name {
	case watcheddirectory.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown WatchedDirectory edge %s", name)
}

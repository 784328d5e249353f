// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/ent/generated/tag"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// CatalogItemCreate is the builder for creating a CatalogItem entity.
type CatalogItemCreate struct {
	config
	mutation *CatalogItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CatalogItemCreate) SetCreatedAt(v time.Time) *CatalogItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableCreatedAt(v *time.Time) *CatalogItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CatalogItemCreate) SetUpdatedAt(v time.Time) *CatalogItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableUpdatedAt(v *time.Time) *CatalogItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDirectoryID sets the "directory_id" field.
func (_c *CatalogItemCreate) SetDirectoryID(v int) *CatalogItemCreate {
	_c.mutation.SetDirectoryID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *CatalogItemCreate) SetFilename(v string) *CatalogItemCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CatalogItemCreate) SetDescription(v string) *CatalogItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableDescription(v *string) *CatalogItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CatalogItemCreate) SetStatus(v catalogitem.Status) *CatalogItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableStatus(v *catalogitem.Status) *CatalogItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDirectory sets the "directory" edge to the WatchedDirectory entity.
func (_c *CatalogItemCreate) SetDirectory(v *WatchedDirectory) *CatalogItemCreate {
	return _c.SetDirectoryID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_c *CatalogItemCreate) AddTagIDs(ids ...int) *CatalogItemCreate {
	_c.mutation.AddTagIDs(ids...)
	return _c
}

// AddTags adds the "tags" edges to the Tag entity.
func (_c *CatalogItemCreate) AddTags(v ...*Tag) *CatalogItemCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTagIDs(ids...)
}

// Mutation returns the CatalogItemMutation object of the builder.
func (_c *CatalogItemCreate) Mutation() *CatalogItemMutation {
	return _c.mutation
}

// Save creates the CatalogItem in the database.
func (_c *CatalogItemCreate) Save(ctx context.Context) (*CatalogItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CatalogItemCreate) SaveX(ctx context.Context) *CatalogItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CatalogItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := catalogitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := catalogitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := catalogitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CatalogItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "CatalogItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "CatalogItem.updated_at"`)}
	}
	if _, ok := _c.mutation.DirectoryID(); !ok {
		return &ValidationError{Name: "directory_id", err: errors.New(`generated: missing required field "CatalogItem.directory_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`generated: missing required field "CatalogItem.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := catalogitem.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`generated: validator failed for field "CatalogItem.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "CatalogItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := catalogitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "CatalogItem.status": %w`, err)}
		}
	}
	if len(_c.mutation.DirectoryIDs()) == 0 {
		return &ValidationError{Name: "directory", err: errors.New(`generated: missing required edge "CatalogItem.directory"`)}
	}
	return nil
}

func (_c *CatalogItemCreate) sqlSave(ctx context.Context) (*CatalogItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CatalogItemCreate) createSpec() (*CatalogItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CatalogItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(catalogitem.Table, sqlgraph.NewFieldSpec(catalogitem.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(catalogitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(catalogitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(catalogitem.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(catalogitem.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(catalogitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.DirectoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   catalogitem.DirectoryTable,
			Columns: []string{catalogitem.DirectoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(watcheddirectory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DirectoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   catalogitem.TagsTable,
			Columns: catalogitem.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CatalogItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CatalogItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CatalogItemCreate) OnConflict(opts ...sql.ConflictOption) *CatalogItemUpsertOne {
	_c.conflict = opts
	return &CatalogItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CatalogItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CatalogItemCreate) OnConflictColumns(columns ...string) *CatalogItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CatalogItemUpsertOne{
		create: _c,
	}
}

type (
	// CatalogItemUpsertOne is the builder for "upsert"-ing
	//  one CatalogItem node.
	CatalogItemUpsertOne struct {
		create *CatalogItemCreate
	}

	// CatalogItemUpsert is the "OnConflict" setter.
	CatalogItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CatalogItemUpsert) SetUpdatedAt(v time.Time) *CatalogItemUpsert {
	u.Set(catalogitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CatalogItemUpsert) UpdateUpdatedAt() *CatalogItemUpsert {
	u.SetExcluded(catalogitem.FieldUpdatedAt)
	return u
}

// SetDirectoryID sets the "directory_id" field.
func (u *CatalogItemUpsert) SetDirectoryID(v int) *CatalogItemUpsert {
	u.Set(catalogitem.FieldDirectoryID, v)
	return u
}

// UpdateDirectoryID sets the "directory_id" field to the value that was provided on create.
func (u *CatalogItemUpsert) UpdateDirectoryID() *CatalogItemUpsert {
	u.SetExcluded(catalogitem.FieldDirectoryID)
	return u
}

// SetFilename sets the "filename" field.
func (u *CatalogItemUpsert) SetFilename(v string) *CatalogItemUpsert {
	u.Set(catalogitem.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *CatalogItemUpsert) UpdateFilename() *CatalogItemUpsert {
	u.SetExcluded(catalogitem.FieldFilename)
	return u
}

// SetDescription sets the "description" field.
func (u *CatalogItemUpsert) SetDescription(v string) *CatalogItemUpsert {
	u.Set(catalogitem.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CatalogItemUpsert) UpdateDescription() *CatalogItemUpsert {
	u.SetExcluded(catalogitem.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CatalogItemUpsert) ClearDescription() *CatalogItemUpsert {
	u.SetNull(catalogitem.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *CatalogItemUpsert) SetStatus(v catalogitem.Status) *CatalogItemUpsert {
	u.Set(catalogitem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CatalogItemUpsert) UpdateStatus() *CatalogItemUpsert {
	u.SetExcluded(catalogitem.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CatalogItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CatalogItemUpsertOne) UpdateNewValues() *CatalogItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(catalogitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CatalogItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CatalogItemUpsertOne) Ignore() *CatalogItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CatalogItemUpsertOne) DoNothing() *CatalogItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CatalogItemCreate.OnConflict
// documentation for more info.
func (u *CatalogItemUpsertOne) Update(set func(*CatalogItemUpsert)) *CatalogItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CatalogItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CatalogItemUpsertOne) SetUpdatedAt(v time.Time) *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CatalogItemUpsertOne) UpdateUpdatedAt() *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDirectoryID sets the "directory_id" field.
func (u *CatalogItemUpsertOne) SetDirectoryID(v int) *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetDirectoryID(v)
	})
}

// UpdateDirectoryID sets the "directory_id" field to the value that was provided on create.
func (u *CatalogItemUpsertOne) UpdateDirectoryID() *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateDirectoryID()
	})
}

// SetFilename sets the "filename" field.
func (u *CatalogItemUpsertOne) SetFilename(v string) *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *CatalogItemUpsertOne) UpdateFilename() *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateFilename()
	})
}

// SetDescription sets the "description" field.
func (u *CatalogItemUpsertOne) SetDescription(v string) *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CatalogItemUpsertOne) UpdateDescription() *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CatalogItemUpsertOne) ClearDescription() *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *CatalogItemUpsertOne) SetStatus(v catalogitem.Status) *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CatalogItemUpsertOne) UpdateStatus() *CatalogItemUpsertOne {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *CatalogItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for CatalogItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CatalogItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CatalogItemUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CatalogItemUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CatalogItemCreateBulk is the builder for creating many CatalogItem entities in bulk.
type CatalogItemCreateBulk struct {
	config
	err      error
	builders []*CatalogItemCreate
	conflict []sql.ConflictOption
}

// Save creates the CatalogItem entities in the database.
func (_c *CatalogItemCreateBulk) Save(ctx context.Context) ([]*CatalogItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CatalogItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CatalogItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CatalogItemCreateBulk) SaveX(ctx context.Context) []*CatalogItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CatalogItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CatalogItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CatalogItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *CatalogItemUpsertBulk {
	_c.conflict = opts
	return &CatalogItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CatalogItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CatalogItemCreateBulk) OnConflictColumns(columns ...string) *CatalogItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CatalogItemUpsertBulk{
		create: _c,
	}
}

// CatalogItemUpsertBulk is the builder for "upsert"-ing
// a bulk of CatalogItem nodes.
type CatalogItemUpsertBulk struct {
	create *CatalogItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CatalogItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CatalogItemUpsertBulk) UpdateNewValues() *CatalogItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(catalogitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CatalogItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CatalogItemUpsertBulk) Ignore() *CatalogItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CatalogItemUpsertBulk) DoNothing() *CatalogItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CatalogItemCreateBulk.OnConflict
// documentation for more info.
func (u *CatalogItemUpsertBulk) Update(set func(*CatalogItemUpsert)) *CatalogItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CatalogItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CatalogItemUpsertBulk) SetUpdatedAt(v time.Time) *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CatalogItemUpsertBulk) UpdateUpdatedAt() *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDirectoryID sets the "directory_id" field.
func (u *CatalogItemUpsertBulk) SetDirectoryID(v int) *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetDirectoryID(v)
	})
}

// UpdateDirectoryID sets the "directory_id" field to the value that was provided on create.
func (u *CatalogItemUpsertBulk) UpdateDirectoryID() *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateDirectoryID()
	})
}

// SetFilename sets the "filename" field.
func (u *CatalogItemUpsertBulk) SetFilename(v string) *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *CatalogItemUpsertBulk) UpdateFilename() *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateFilename()
	})
}

// SetDescription sets the "description" field.
func (u *CatalogItemUpsertBulk) SetDescription(v string) *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CatalogItemUpsertBulk) UpdateDescription() *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CatalogItemUpsertBulk) ClearDescription() *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *CatalogItemUpsertBulk) SetStatus(v catalogitem.Status) *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CatalogItemUpsertBulk) UpdateStatus() *CatalogItemUpsertBulk {
	return u.Update(func(s *CatalogItemUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *CatalogItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the CatalogItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for CatalogItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CatalogItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

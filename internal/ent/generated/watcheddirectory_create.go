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
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// WatchedDirectoryCreate is the builder for creating a WatchedDirectory entity.
type WatchedDirectoryCreate struct {
	config
	mutation *WatchedDirectoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *WatchedDirectoryCreate) SetCreatedAt(v time.Time) *WatchedDirectoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WatchedDirectoryCreate) SetNillableCreatedAt(v *time.Time) *WatchedDirectoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WatchedDirectoryCreate) SetUpdatedAt(v time.Time) *WatchedDirectoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WatchedDirectoryCreate) SetNillableUpdatedAt(v *time.Time) *WatchedDirectoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *WatchedDirectoryCreate) SetName(v string) *WatchedDirectoryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetScanFrequencyMinutes sets the "scan_frequency_minutes" field.
func (_c *WatchedDirectoryCreate) SetScanFrequencyMinutes(v int) *WatchedDirectoryCreate {
	_c.mutation.SetScanFrequencyMinutes(v)
	return _c
}

// SetNillableScanFrequencyMinutes sets the "scan_frequency_minutes" field if the given value is not nil.
func (_c *WatchedDirectoryCreate) SetNillableScanFrequencyMinutes(v *int) *WatchedDirectoryCreate {
	if v != nil {
		_c.SetScanFrequencyMinutes(*v)
	}
	return _c
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_c *WatchedDirectoryCreate) SetLastScannedAt(v time.Time) *WatchedDirectoryCreate {
	_c.mutation.SetLastScannedAt(v)
	return _c
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_c *WatchedDirectoryCreate) SetNillableLastScannedAt(v *time.Time) *WatchedDirectoryCreate {
	if v != nil {
		_c.SetLastScannedAt(*v)
	}
	return _c
}

// SetScanStatus sets the "scan_status" field.
func (_c *WatchedDirectoryCreate) SetScanStatus(v watcheddirectory.ScanStatus) *WatchedDirectoryCreate {
	_c.mutation.SetScanStatus(v)
	return _c
}

// SetNillableScanStatus sets the "scan_status" field if the given value is not nil.
func (_c *WatchedDirectoryCreate) SetNillableScanStatus(v *watcheddirectory.ScanStatus) *WatchedDirectoryCreate {
	if v != nil {
		_c.SetScanStatus(*v)
	}
	return _c
}

// SetLastScanError sets the "last_scan_error" field.
func (_c *WatchedDirectoryCreate) SetLastScanError(v string) *WatchedDirectoryCreate {
	_c.mutation.SetLastScanError(v)
	return _c
}

// SetNillableLastScanError sets the "last_scan_error" field if the given value is not nil.
func (_c *WatchedDirectoryCreate) SetNillableLastScanError(v *string) *WatchedDirectoryCreate {
	if v != nil {
		_c.SetLastScanError(*v)
	}
	return _c
}

// SetCurrentlyScanning sets the "currently_scanning" field.
func (_c *WatchedDirectoryCreate) SetCurrentlyScanning(v bool) *WatchedDirectoryCreate {
	_c.mutation.SetCurrentlyScanning(v)
	return _c
}

// SetNillableCurrentlyScanning sets the "currently_scanning" field if the given value is not nil.
func (_c *WatchedDirectoryCreate) SetNillableCurrentlyScanning(v *bool) *WatchedDirectoryCreate {
	if v != nil {
		_c.SetCurrentlyScanning(*v)
	}
	return _c
}

// SetLastScanDurationMs sets the "last_scan_duration_ms" field.
func (_c *WatchedDirectoryCreate) SetLastScanDurationMs(v int64) *WatchedDirectoryCreate {
	_c.mutation.SetLastScanDurationMs(v)
	return _c
}

// SetNillableLastScanDurationMs sets the "last_scan_duration_ms" field if the given value is not nil.
func (_c *WatchedDirectoryCreate) SetNillableLastScanDurationMs(v *int64) *WatchedDirectoryCreate {
	if v != nil {
		_c.SetLastScanDurationMs(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the CatalogItem entity by IDs.
func (_c *WatchedDirectoryCreate) AddItemIDs(ids ...int) *WatchedDirectoryCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the CatalogItem entity.
func (_c *WatchedDirectoryCreate) AddItems(v ...*CatalogItem) *WatchedDirectoryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the WatchedDirectoryMutation object of the builder.
func (_c *WatchedDirectoryCreate) Mutation() *WatchedDirectoryMutation {
	return _c.mutation
}

// Save creates the WatchedDirectory in the database.
func (_c *WatchedDirectoryCreate) Save(ctx context.Context) (*WatchedDirectory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WatchedDirectoryCreate) SaveX(ctx context.Context) *WatchedDirectory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WatchedDirectoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WatchedDirectoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WatchedDirectoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := watcheddirectory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := watcheddirectory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ScanStatus(); !ok {
		v := watcheddirectory.DefaultScanStatus
		_c.mutation.SetScanStatus(v)
	}
	if _, ok := _c.mutation.CurrentlyScanning(); !ok {
		v := watcheddirectory.DefaultCurrentlyScanning
		_c.mutation.SetCurrentlyScanning(v)
	}
	if _, ok := _c.mutation.LastScanDurationMs(); !ok {
		v := watcheddirectory.DefaultLastScanDurationMs
		_c.mutation.SetLastScanDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WatchedDirectoryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "WatchedDirectory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "WatchedDirectory.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`generated: missing required field "WatchedDirectory.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := watcheddirectory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "WatchedDirectory.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScanStatus(); !ok {
		return &ValidationError{Name: "scan_status", err: errors.New(`generated: missing required field "WatchedDirectory.scan_status"`)}
	}
	if v, ok := _c.mutation.ScanStatus(); ok {
		if err := watcheddirectory.ScanStatusValidator(v); err != nil {
			return &ValidationError{Name: "scan_status", err: fmt.Errorf(`generated: validator failed for field "WatchedDirectory.scan_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentlyScanning(); !ok {
		return &ValidationError{Name: "currently_scanning", err: errors.New(`generated: missing required field "WatchedDirectory.currently_scanning"`)}
	}
	if _, ok := _c.mutation.LastScanDurationMs(); !ok {
		return &ValidationError{Name: "last_scan_duration_ms", err: errors.New(`generated: missing required field "WatchedDirectory.last_scan_duration_ms"`)}
	}
	return nil
}

func (_c *WatchedDirectoryCreate) sqlSave(ctx context.Context) (*WatchedDirectory, error) {
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

func (_c *WatchedDirectoryCreate) createSpec() (*WatchedDirectory, *sqlgraph.CreateSpec) {
	var (
		_node = &WatchedDirectory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(watcheddirectory.Table, sqlgraph.NewFieldSpec(watcheddirectory.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(watcheddirectory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(watcheddirectory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(watcheddirectory.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ScanFrequencyMinutes(); ok {
		_spec.SetField(watcheddirectory.FieldScanFrequencyMinutes, field.TypeInt, value)
		_node.ScanFrequencyMinutes = &value
	}
	if value, ok := _c.mutation.LastScannedAt(); ok {
		_spec.SetField(watcheddirectory.FieldLastScannedAt, field.TypeTime, value)
		_node.LastScannedAt = &value
	}
	if value, ok := _c.mutation.ScanStatus(); ok {
		_spec.SetField(watcheddirectory.FieldScanStatus, field.TypeEnum, value)
		_node.ScanStatus = value
	}
	if value, ok := _c.mutation.LastScanError(); ok {
		_spec.SetField(watcheddirectory.FieldLastScanError, field.TypeString, value)
		_node.LastScanError = &value
	}
	if value, ok := _c.mutation.CurrentlyScanning(); ok {
		_spec.SetField(watcheddirectory.FieldCurrentlyScanning, field.TypeBool, value)
		_node.CurrentlyScanning = value
	}
	if value, ok := _c.mutation.LastScanDurationMs(); ok {
		_spec.SetField(watcheddirectory.FieldLastScanDurationMs, field.TypeInt64, value)
		_node.LastScanDurationMs = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   watcheddirectory.ItemsTable,
			Columns: []string{watcheddirectory.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(catalogitem.FieldID, field.TypeInt),
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
//	client.WatchedDirectory.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WatchedDirectoryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *WatchedDirectoryCreate) OnConflict(opts ...sql.ConflictOption) *WatchedDirectoryUpsertOne {
	_c.conflict = opts
	return &WatchedDirectoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WatchedDirectory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WatchedDirectoryCreate) OnConflictColumns(columns ...string) *WatchedDirectoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WatchedDirectoryUpsertOne{
		create: _c,
	}
}

type (
	// WatchedDirectoryUpsertOne is the builder for "upsert"-ing
	//  one WatchedDirectory node.
	WatchedDirectoryUpsertOne struct {
		create *WatchedDirectoryCreate
	}

	// WatchedDirectoryUpsert is the "OnConflict" setter.
	WatchedDirectoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *WatchedDirectoryUpsert) SetUpdatedAt(v time.Time) *WatchedDirectoryUpsert {
	u.Set(watcheddirectory.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WatchedDirectoryUpsert) UpdateUpdatedAt() *WatchedDirectoryUpsert {
	u.SetExcluded(watcheddirectory.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *WatchedDirectoryUpsert) SetName(v string) *WatchedDirectoryUpsert {
	u.Set(watcheddirectory.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *WatchedDirectoryUpsert) UpdateName() *WatchedDirectoryUpsert {
	u.SetExcluded(watcheddirectory.FieldName)
	return u
}

// SetScanFrequencyMinutes sets the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsert) SetScanFrequencyMinutes(v int) *WatchedDirectoryUpsert {
	u.Set(watcheddirectory.FieldScanFrequencyMinutes, v)
	return u
}

// UpdateScanFrequencyMinutes sets the "scan_frequency_minutes" field to the value that was provided on create.
func (u *WatchedDirectoryUpsert) UpdateScanFrequencyMinutes() *WatchedDirectoryUpsert {
	u.SetExcluded(watcheddirectory.FieldScanFrequencyMinutes)
	return u
}

// AddScanFrequencyMinutes adds v to the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsert) AddScanFrequencyMinutes(v int) *WatchedDirectoryUpsert {
	u.Add(watcheddirectory.FieldScanFrequencyMinutes, v)
	return u
}

// ClearScanFrequencyMinutes clears the value of the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsert) ClearScanFrequencyMinutes() *WatchedDirectoryUpsert {
	u.SetNull(watcheddirectory.FieldScanFrequencyMinutes)
	return u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *WatchedDirectoryUpsert) SetLastScannedAt(v time.Time) *WatchedDirectoryUpsert {
	u.Set(watcheddirectory.FieldLastScannedAt, v)
	return u
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *WatchedDirectoryUpsert) UpdateLastScannedAt() *WatchedDirectoryUpsert {
	u.SetExcluded(watcheddirectory.FieldLastScannedAt)
	return u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *WatchedDirectoryUpsert) ClearLastScannedAt() *WatchedDirectoryUpsert {
	u.SetNull(watcheddirectory.FieldLastScannedAt)
	return u
}

// SetScanStatus sets the "scan_status" field.
func (u *WatchedDirectoryUpsert) SetScanStatus(v watcheddirectory.ScanStatus) *WatchedDirectoryUpsert {
	u.Set(watcheddirectory.FieldScanStatus, v)
	return u
}

// UpdateScanStatus sets the "scan_status" field to the value that was provided on create.
func (u *WatchedDirectoryUpsert) UpdateScanStatus() *WatchedDirectoryUpsert {
	u.SetExcluded(watcheddirectory.FieldScanStatus)
	return u
}

// SetLastScanError sets the "last_scan_error" field.
func (u *WatchedDirectoryUpsert) SetLastScanError(v string) *WatchedDirectoryUpsert {
	u.Set(watcheddirectory.FieldLastScanError, v)
	return u
}

// UpdateLastScanError sets the "last_scan_error" field to the value that was provided on create.
func (u *WatchedDirectoryUpsert) UpdateLastScanError() *WatchedDirectoryUpsert {
	u.SetExcluded(watcheddirectory.FieldLastScanError)
	return u
}

// ClearLastScanError clears the value of the "last_scan_error" field.
func (u *WatchedDirectoryUpsert) ClearLastScanError() *WatchedDirectoryUpsert {
	u.SetNull(watcheddirectory.FieldLastScanError)
	return u
}

// SetCurrentlyScanning sets the "currently_scanning" field.
func (u *WatchedDirectoryUpsert) SetCurrentlyScanning(v bool) *WatchedDirectoryUpsert {
	u.Set(watcheddirectory.FieldCurrentlyScanning, v)
	return u
}

// UpdateCurrentlyScanning sets the "currently_scanning" field to the value that was provided on create.
func (u *WatchedDirectoryUpsert) UpdateCurrentlyScanning() *WatchedDirectoryUpsert {
	u.SetExcluded(watcheddirectory.FieldCurrentlyScanning)
	return u
}

// SetLastScanDurationMs sets the "last_scan_duration_ms" field.
func (u *WatchedDirectoryUpsert) SetLastScanDurationMs(v int64) *WatchedDirectoryUpsert {
	u.Set(watcheddirectory.FieldLastScanDurationMs, v)
	return u
}

// UpdateLastScanDurationMs sets the "last_scan_duration_ms" field to the value that was provided on create.
func (u *WatchedDirectoryUpsert) UpdateLastScanDurationMs() *WatchedDirectoryUpsert {
	u.SetExcluded(watcheddirectory.FieldLastScanDurationMs)
	return u
}

// AddLastScanDurationMs adds v to the "last_scan_duration_ms" field.
func (u *WatchedDirectoryUpsert) AddLastScanDurationMs(v int64) *WatchedDirectoryUpsert {
	u.Add(watcheddirectory.FieldLastScanDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.WatchedDirectory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WatchedDirectoryUpsertOne) UpdateNewValues() *WatchedDirectoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(watcheddirectory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WatchedDirectory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WatchedDirectoryUpsertOne) Ignore() *WatchedDirectoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WatchedDirectoryUpsertOne) DoNothing() *WatchedDirectoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WatchedDirectoryCreate.OnConflict
// documentation for more info.
func (u *WatchedDirectoryUpsertOne) Update(set func(*WatchedDirectoryUpsert)) *WatchedDirectoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WatchedDirectoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WatchedDirectoryUpsertOne) SetUpdatedAt(v time.Time) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertOne) UpdateUpdatedAt() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *WatchedDirectoryUpsertOne) SetName(v string) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertOne) UpdateName() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateName()
	})
}

// SetScanFrequencyMinutes sets the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsertOne) SetScanFrequencyMinutes(v int) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetScanFrequencyMinutes(v)
	})
}

// AddScanFrequencyMinutes adds v to the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsertOne) AddScanFrequencyMinutes(v int) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.AddScanFrequencyMinutes(v)
	})
}

// UpdateScanFrequencyMinutes sets the "scan_frequency_minutes" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertOne) UpdateScanFrequencyMinutes() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateScanFrequencyMinutes()
	})
}

// ClearScanFrequencyMinutes clears the value of the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsertOne) ClearScanFrequencyMinutes() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.ClearScanFrequencyMinutes()
	})
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *WatchedDirectoryUpsertOne) SetLastScannedAt(v time.Time) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetLastScannedAt(v)
	})
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertOne) UpdateLastScannedAt() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateLastScannedAt()
	})
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *WatchedDirectoryUpsertOne) ClearLastScannedAt() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.ClearLastScannedAt()
	})
}

// SetScanStatus sets the "scan_status" field.
func (u *WatchedDirectoryUpsertOne) SetScanStatus(v watcheddirectory.ScanStatus) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetScanStatus(v)
	})
}

// UpdateScanStatus sets the "scan_status" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertOne) UpdateScanStatus() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateScanStatus()
	})
}

// SetLastScanError sets the "last_scan_error" field.
func (u *WatchedDirectoryUpsertOne) SetLastScanError(v string) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetLastScanError(v)
	})
}

// UpdateLastScanError sets the "last_scan_error" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertOne) UpdateLastScanError() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateLastScanError()
	})
}

// ClearLastScanError clears the value of the "last_scan_error" field.
func (u *WatchedDirectoryUpsertOne) ClearLastScanError() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.ClearLastScanError()
	})
}

// SetCurrentlyScanning sets the "currently_scanning" field.
func (u *WatchedDirectoryUpsertOne) SetCurrentlyScanning(v bool) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetCurrentlyScanning(v)
	})
}

// UpdateCurrentlyScanning sets the "currently_scanning" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertOne) UpdateCurrentlyScanning() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateCurrentlyScanning()
	})
}

// SetLastScanDurationMs sets the "last_scan_duration_ms" field.
func (u *WatchedDirectoryUpsertOne) SetLastScanDurationMs(v int64) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetLastScanDurationMs(v)
	})
}

// AddLastScanDurationMs adds v to the "last_scan_duration_ms" field.
func (u *WatchedDirectoryUpsertOne) AddLastScanDurationMs(v int64) *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.AddLastScanDurationMs(v)
	})
}

// UpdateLastScanDurationMs sets the "last_scan_duration_ms" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertOne) UpdateLastScanDurationMs() *WatchedDirectoryUpsertOne {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateLastScanDurationMs()
	})
}

// Exec executes the query.
func (u *WatchedDirectoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for WatchedDirectoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WatchedDirectoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WatchedDirectoryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WatchedDirectoryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WatchedDirectoryCreateBulk is the builder for creating many WatchedDirectory entities in bulk.
type WatchedDirectoryCreateBulk struct {
	config
	err      error
	builders []*WatchedDirectoryCreate
	conflict []sql.ConflictOption
}

// Save creates the WatchedDirectory entities in the database.
func (_c *WatchedDirectoryCreateBulk) Save(ctx context.Context) ([]*WatchedDirectory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WatchedDirectory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WatchedDirectoryMutation)
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
func (_c *WatchedDirectoryCreateBulk) SaveX(ctx context.Context) []*WatchedDirectory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WatchedDirectoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WatchedDirectoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WatchedDirectory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WatchedDirectoryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *WatchedDirectoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *WatchedDirectoryUpsertBulk {
	_c.conflict = opts
	return &WatchedDirectoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WatchedDirectory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WatchedDirectoryCreateBulk) OnConflictColumns(columns ...string) *WatchedDirectoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WatchedDirectoryUpsertBulk{
		create: _c,
	}
}

// WatchedDirectoryUpsertBulk is the builder for "upsert"-ing
// a bulk of WatchedDirectory nodes.
type WatchedDirectoryUpsertBulk struct {
	create *WatchedDirectoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WatchedDirectory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WatchedDirectoryUpsertBulk) UpdateNewValues() *WatchedDirectoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(watcheddirectory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WatchedDirectory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WatchedDirectoryUpsertBulk) Ignore() *WatchedDirectoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WatchedDirectoryUpsertBulk) DoNothing() *WatchedDirectoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WatchedDirectoryCreateBulk.OnConflict
// documentation for more info.
func (u *WatchedDirectoryUpsertBulk) Update(set func(*WatchedDirectoryUpsert)) *WatchedDirectoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WatchedDirectoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WatchedDirectoryUpsertBulk) SetUpdatedAt(v time.Time) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertBulk) UpdateUpdatedAt() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *WatchedDirectoryUpsertBulk) SetName(v string) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertBulk) UpdateName() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateName()
	})
}

// SetScanFrequencyMinutes sets the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsertBulk) SetScanFrequencyMinutes(v int) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetScanFrequencyMinutes(v)
	})
}

// AddScanFrequencyMinutes adds v to the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsertBulk) AddScanFrequencyMinutes(v int) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.AddScanFrequencyMinutes(v)
	})
}

// UpdateScanFrequencyMinutes sets the "scan_frequency_minutes" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertBulk) UpdateScanFrequencyMinutes() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateScanFrequencyMinutes()
	})
}

// ClearScanFrequencyMinutes clears the value of the "scan_frequency_minutes" field.
func (u *WatchedDirectoryUpsertBulk) ClearScanFrequencyMinutes() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.ClearScanFrequencyMinutes()
	})
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *WatchedDirectoryUpsertBulk) SetLastScannedAt(v time.Time) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetLastScannedAt(v)
	})
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertBulk) UpdateLastScannedAt() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateLastScannedAt()
	})
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *WatchedDirectoryUpsertBulk) ClearLastScannedAt() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.ClearLastScannedAt()
	})
}

// SetScanStatus sets the "scan_status" field.
func (u *WatchedDirectoryUpsertBulk) SetScanStatus(v watcheddirectory.ScanStatus) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetScanStatus(v)
	})
}

// UpdateScanStatus sets the "scan_status" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertBulk) UpdateScanStatus() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateScanStatus()
	})
}

// SetLastScanError sets the "last_scan_error" field.
func (u *WatchedDirectoryUpsertBulk) SetLastScanError(v string) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetLastScanError(v)
	})
}

// UpdateLastScanError sets the "last_scan_error" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertBulk) UpdateLastScanError() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateLastScanError()
	})
}

// ClearLastScanError clears the value of the "last_scan_error" field.
func (u *WatchedDirectoryUpsertBulk) ClearLastScanError() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.ClearLastScanError()
	})
}

// SetCurrentlyScanning sets the "currently_scanning" field.
func (u *WatchedDirectoryUpsertBulk) SetCurrentlyScanning(v bool) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetCurrentlyScanning(v)
	})
}

// UpdateCurrentlyScanning sets the "currently_scanning" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertBulk) UpdateCurrentlyScanning() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateCurrentlyScanning()
	})
}

// SetLastScanDurationMs sets the "last_scan_duration_ms" field.
func (u *WatchedDirectoryUpsertBulk) SetLastScanDurationMs(v int64) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.SetLastScanDurationMs(v)
	})
}

// AddLastScanDurationMs adds v to the "last_scan_duration_ms" field.
func (u *WatchedDirectoryUpsertBulk) AddLastScanDurationMs(v int64) *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.AddLastScanDurationMs(v)
	})
}

// UpdateLastScanDurationMs sets the "last_scan_duration_ms" field to the value that was provided on create.
func (u *WatchedDirectoryUpsertBulk) UpdateLastScanDurationMs() *WatchedDirectoryUpsertBulk {
	return u.Update(func(s *WatchedDirectoryUpsert) {
		s.UpdateLastScanDurationMs()
	})
}

// Exec executes the query.
func (u *WatchedDirectoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the WatchedDirectoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for WatchedDirectoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WatchedDirectoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/memedex/memedex/internal/ent/generated/predicate"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// WatchedDirectoryUpdate is the builder for updating WatchedDirectory entities.
type WatchedDirectoryUpdate struct {
	config
	hooks    []Hook
	mutation *WatchedDirectoryMutation
}

// Where appends a list predicates to the WatchedDirectoryUpdate builder.
func (_u *WatchedDirectoryUpdate) Where(ps ...predicate.WatchedDirectory) *WatchedDirectoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WatchedDirectoryUpdate) SetUpdatedAt(v time.Time) *WatchedDirectoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *WatchedDirectoryUpdate) SetName(v string) *WatchedDirectoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WatchedDirectoryUpdate) SetNillableName(v *string) *WatchedDirectoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScanFrequencyMinutes sets the "scan_frequency_minutes" field.
func (_u *WatchedDirectoryUpdate) SetScanFrequencyMinutes(v int) *WatchedDirectoryUpdate {
	_u.mutation.ResetScanFrequencyMinutes()
	_u.mutation.SetScanFrequencyMinutes(v)
	return _u
}

// SetNillableScanFrequencyMinutes sets the "scan_frequency_minutes" field if the given value is not nil.
func (_u *WatchedDirectoryUpdate) SetNillableScanFrequencyMinutes(v *int) *WatchedDirectoryUpdate {
	if v != nil {
		_u.SetScanFrequencyMinutes(*v)
	}
	return _u
}

// AddScanFrequencyMinutes adds value to the "scan_frequency_minutes" field.
func (_u *WatchedDirectoryUpdate) AddScanFrequencyMinutes(v int) *WatchedDirectoryUpdate {
	_u.mutation.AddScanFrequencyMinutes(v)
	return _u
}

// ClearScanFrequencyMinutes clears the value of the "scan_frequency_minutes" field.
func (_u *WatchedDirectoryUpdate) ClearScanFrequencyMinutes() *WatchedDirectoryUpdate {
	_u.mutation.ClearScanFrequencyMinutes()
	return _u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_u *WatchedDirectoryUpdate) SetLastScannedAt(v time.Time) *WatchedDirectoryUpdate {
	_u.mutation.SetLastScannedAt(v)
	return _u
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_u *WatchedDirectoryUpdate) SetNillableLastScannedAt(v *time.Time) *WatchedDirectoryUpdate {
	if v != nil {
		_u.SetLastScannedAt(*v)
	}
	return _u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (_u *WatchedDirectoryUpdate) ClearLastScannedAt() *WatchedDirectoryUpdate {
	_u.mutation.ClearLastScannedAt()
	return _u
}

// SetScanStatus sets the "scan_status" field.
func (_u *WatchedDirectoryUpdate) SetScanStatus(v watcheddirectory.ScanStatus) *WatchedDirectoryUpdate {
	_u.mutation.SetScanStatus(v)
	return _u
}

// SetNillableScanStatus sets the "scan_status" field if the given value is not nil.
func (_u *WatchedDirectoryUpdate) SetNillableScanStatus(v *watcheddirectory.ScanStatus) *WatchedDirectoryUpdate {
	if v != nil {
		_u.SetScanStatus(*v)
	}
	return _u
}

// SetLastScanError sets the "last_scan_error" field.
func (_u *WatchedDirectoryUpdate) SetLastScanError(v string) *WatchedDirectoryUpdate {
	_u.mutation.SetLastScanError(v)
	return _u
}

// SetNillableLastScanError sets the "last_scan_error" field if the given value is not nil.
func (_u *WatchedDirectoryUpdate) SetNillableLastScanError(v *string) *WatchedDirectoryUpdate {
	if v != nil {
		_u.SetLastScanError(*v)
	}
	return _u
}

// ClearLastScanError clears the value of the "last_scan_error" field.
func (_u *WatchedDirectoryUpdate) ClearLastScanError() *WatchedDirectoryUpdate {
	_u.mutation.ClearLastScanError()
	return _u
}

// SetCurrentlyScanning sets the "currently_scanning" field.
func (_u *WatchedDirectoryUpdate) SetCurrentlyScanning(v bool) *WatchedDirectoryUpdate {
	_u.mutation.SetCurrentlyScanning(v)
	return _u
}

// SetNillableCurrentlyScanning sets the "currently_scanning" field if the given value is not nil.
func (_u *WatchedDirectoryUpdate) SetNillableCurrentlyScanning(v *bool) *WatchedDirectoryUpdate {
	if v != nil {
		_u.SetCurrentlyScanning(*v)
	}
	return _u
}

// SetLastScanDurationMs sets the "last_scan_duration_ms" field.
func (_u *WatchedDirectoryUpdate) SetLastScanDurationMs(v int64) *WatchedDirectoryUpdate {
	_u.mutation.ResetLastScanDurationMs()
	_u.mutation.SetLastScanDurationMs(v)
	return _u
}

// SetNillableLastScanDurationMs sets the "last_scan_duration_ms" field if the given value is not nil.
func (_u *WatchedDirectoryUpdate) SetNillableLastScanDurationMs(v *int64) *WatchedDirectoryUpdate {
	if v != nil {
		_u.SetLastScanDurationMs(*v)
	}
	return _u
}

// AddLastScanDurationMs adds value to the "last_scan_duration_ms" field.
func (_u *WatchedDirectoryUpdate) AddLastScanDurationMs(v int64) *WatchedDirectoryUpdate {
	_u.mutation.AddLastScanDurationMs(v)
	return _u
}

// AddItemIDs adds the "items" edge to the CatalogItem entity by IDs.
func (_u *WatchedDirectoryUpdate) AddItemIDs(ids ...int) *WatchedDirectoryUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the CatalogItem entity.
func (_u *WatchedDirectoryUpdate) AddItems(v ...*CatalogItem) *WatchedDirectoryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the WatchedDirectoryMutation object of the builder.
func (_u *WatchedDirectoryUpdate) Mutation() *WatchedDirectoryMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the CatalogItem entity.
func (_u *WatchedDirectoryUpdate) ClearItems() *WatchedDirectoryUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to CatalogItem entities by IDs.
func (_u *WatchedDirectoryUpdate) RemoveItemIDs(ids ...int) *WatchedDirectoryUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to CatalogItem entities.
func (_u *WatchedDirectoryUpdate) RemoveItems(v ...*CatalogItem) *WatchedDirectoryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WatchedDirectoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WatchedDirectoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WatchedDirectoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WatchedDirectoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WatchedDirectoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := watcheddirectory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WatchedDirectoryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := watcheddirectory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "WatchedDirectory.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScanStatus(); ok {
		if err := watcheddirectory.ScanStatusValidator(v); err != nil {
			return &ValidationError{Name: "scan_status", err: fmt.Errorf(`generated: validator failed for field "WatchedDirectory.scan_status": %w`, err)}
		}
	}
	return nil
}

func (_u *WatchedDirectoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(watcheddirectory.Table, watcheddirectory.Columns, sqlgraph.NewFieldSpec(watcheddirectory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(watcheddirectory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(watcheddirectory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScanFrequencyMinutes(); ok {
		_spec.SetField(watcheddirectory.FieldScanFrequencyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScanFrequencyMinutes(); ok {
		_spec.AddField(watcheddirectory.FieldScanFrequencyMinutes, field.TypeInt, value)
	}
	if _u.mutation.ScanFrequencyMinutesCleared() {
		_spec.ClearField(watcheddirectory.FieldScanFrequencyMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.LastScannedAt(); ok {
		_spec.SetField(watcheddirectory.FieldLastScannedAt, field.TypeTime, value)
	}
	if _u.mutation.LastScannedAtCleared() {
		_spec.ClearField(watcheddirectory.FieldLastScannedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ScanStatus(); ok {
		_spec.SetField(watcheddirectory.FieldScanStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastScanError(); ok {
		_spec.SetField(watcheddirectory.FieldLastScanError, field.TypeString, value)
	}
	if _u.mutation.LastScanErrorCleared() {
		_spec.ClearField(watcheddirectory.FieldLastScanError, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentlyScanning(); ok {
		_spec.SetField(watcheddirectory.FieldCurrentlyScanning, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastScanDurationMs(); ok {
		_spec.SetField(watcheddirectory.FieldLastScanDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastScanDurationMs(); ok {
		_spec.AddField(watcheddirectory.FieldLastScanDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{watcheddirectory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WatchedDirectoryUpdateOne is the builder for updating a single WatchedDirectory entity.
type WatchedDirectoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WatchedDirectoryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WatchedDirectoryUpdateOne) SetUpdatedAt(v time.Time) *WatchedDirectoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *WatchedDirectoryUpdateOne) SetName(v string) *WatchedDirectoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WatchedDirectoryUpdateOne) SetNillableName(v *string) *WatchedDirectoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScanFrequencyMinutes sets the "scan_frequency_minutes" field.
func (_u *WatchedDirectoryUpdateOne) SetScanFrequencyMinutes(v int) *WatchedDirectoryUpdateOne {
	_u.mutation.ResetScanFrequencyMinutes()
	_u.mutation.SetScanFrequencyMinutes(v)
	return _u
}

// SetNillableScanFrequencyMinutes sets the "scan_frequency_minutes" field if the given value is not nil.
func (_u *WatchedDirectoryUpdateOne) SetNillableScanFrequencyMinutes(v *int) *WatchedDirectoryUpdateOne {
	if v != nil {
		_u.SetScanFrequencyMinutes(*v)
	}
	return _u
}

// AddScanFrequencyMinutes adds value to the "scan_frequency_minutes" field.
func (_u *WatchedDirectoryUpdateOne) AddScanFrequencyMinutes(v int) *WatchedDirectoryUpdateOne {
	_u.mutation.AddScanFrequencyMinutes(v)
	return _u
}

// ClearScanFrequencyMinutes clears the value of the "scan_frequency_minutes" field.
func (_u *WatchedDirectoryUpdateOne) ClearScanFrequencyMinutes() *WatchedDirectoryUpdateOne {
	_u.mutation.ClearScanFrequencyMinutes()
	return _u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_u *WatchedDirectoryUpdateOne) SetLastScannedAt(v time.Time) *WatchedDirectoryUpdateOne {
	_u.mutation.SetLastScannedAt(v)
	return _u
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_u *WatchedDirectoryUpdateOne) SetNillableLastScannedAt(v *time.Time) *WatchedDirectoryUpdateOne {
	if v != nil {
		_u.SetLastScannedAt(*v)
	}
	return _u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (_u *WatchedDirectoryUpdateOne) ClearLastScannedAt() *WatchedDirectoryUpdateOne {
	_u.mutation.ClearLastScannedAt()
	return _u
}

// SetScanStatus sets the "scan_status" field.
func (_u *WatchedDirectoryUpdateOne) SetScanStatus(v watcheddirectory.ScanStatus) *WatchedDirectoryUpdateOne {
	_u.mutation.SetScanStatus(v)
	return _u
}

// SetNillableScanStatus sets the "scan_status" field if the given value is not nil.
func (_u *WatchedDirectoryUpdateOne) SetNillableScanStatus(v *watcheddirectory.ScanStatus) *WatchedDirectoryUpdateOne {
	if v != nil {
		_u.SetScanStatus(*v)
	}
	return _u
}

// SetLastScanError sets the "last_scan_error" field.
func (_u *WatchedDirectoryUpdateOne) SetLastScanError(v string) *WatchedDirectoryUpdateOne {
	_u.mutation.SetLastScanError(v)
	return _u
}

// SetNillableLastScanError sets the "last_scan_error" field if the given value is not nil.
func (_u *WatchedDirectoryUpdateOne) SetNillableLastScanError(v *string) *WatchedDirectoryUpdateOne {
	if v != nil {
		_u.SetLastScanError(*v)
	}
	return _u
}

// ClearLastScanError clears the value of the "last_scan_error" field.
func (_u *WatchedDirectoryUpdateOne) ClearLastScanError() *WatchedDirectoryUpdateOne {
	_u.mutation.ClearLastScanError()
	return _u
}

// SetCurrentlyScanning sets the "currently_scanning" field.
func (_u *WatchedDirectoryUpdateOne) SetCurrentlyScanning(v bool) *WatchedDirectoryUpdateOne {
	_u.mutation.SetCurrentlyScanning(v)
	return _u
}

// SetNillableCurrentlyScanning sets the "currently_scanning" field if the given value is not nil.
func (_u *WatchedDirectoryUpdateOne) SetNillableCurrentlyScanning(v *bool) *WatchedDirectoryUpdateOne {
	if v != nil {
		_u.SetCurrentlyScanning(*v)
	}
	return _u
}

// SetLastScanDurationMs sets the "last_scan_duration_ms" field.
func (_u *WatchedDirectoryUpdateOne) SetLastScanDurationMs(v int64) *WatchedDirectoryUpdateOne {
	_u.mutation.ResetLastScanDurationMs()
	_u.mutation.SetLastScanDurationMs(v)
	return _u
}

// SetNillableLastScanDurationMs sets the "last_scan_duration_ms" field if the given value is not nil.
func (_u *WatchedDirectoryUpdateOne) SetNillableLastScanDurationMs(v *int64) *WatchedDirectoryUpdateOne {
	if v != nil {
		_u.SetLastScanDurationMs(*v)
	}
	return _u
}

// AddLastScanDurationMs adds value to the "last_scan_duration_ms" field.
func (_u *WatchedDirectoryUpdateOne) AddLastScanDurationMs(v int64) *WatchedDirectoryUpdateOne {
	_u.mutation.AddLastScanDurationMs(v)
	return _u
}

// AddItemIDs adds the "items" edge to the CatalogItem entity by IDs.
func (_u *WatchedDirectoryUpdateOne) AddItemIDs(ids ...int) *WatchedDirectoryUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the CatalogItem entity.
func (_u *WatchedDirectoryUpdateOne) AddItems(v ...*CatalogItem) *WatchedDirectoryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the WatchedDirectoryMutation object of the builder.
func (_u *WatchedDirectoryUpdateOne) Mutation() *WatchedDirectoryMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the CatalogItem entity.
func (_u *WatchedDirectoryUpdateOne) ClearItems() *WatchedDirectoryUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to CatalogItem entities by IDs.
func (_u *WatchedDirectoryUpdateOne) RemoveItemIDs(ids ...int) *WatchedDirectoryUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to CatalogItem entities.
func (_u *WatchedDirectoryUpdateOne) RemoveItems(v ...*CatalogItem) *WatchedDirectoryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the WatchedDirectoryUpdate builder.
func (_u *WatchedDirectoryUpdateOne) Where(ps ...predicate.WatchedDirectory) *WatchedDirectoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WatchedDirectoryUpdateOne) Select(field string, fields ...string) *WatchedDirectoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WatchedDirectory entity.
func (_u *WatchedDirectoryUpdateOne) Save(ctx context.Context) (*WatchedDirectory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WatchedDirectoryUpdateOne) SaveX(ctx context.Context) *WatchedDirectory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WatchedDirectoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WatchedDirectoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WatchedDirectoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := watcheddirectory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WatchedDirectoryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := watcheddirectory.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "WatchedDirectory.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScanStatus(); ok {
		if err := watcheddirectory.ScanStatusValidator(v); err != nil {
			return &ValidationError{Name: "scan_status", err: fmt.Errorf(`generated: validator failed for field "WatchedDirectory.scan_status": %w`, err)}
		}
	}
	return nil
}

func (_u *WatchedDirectoryUpdateOne) sqlSave(ctx context.Context) (_node *WatchedDirectory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(watcheddirectory.Table, watcheddirectory.Columns, sqlgraph.NewFieldSpec(watcheddirectory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "WatchedDirectory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, watcheddirectory.FieldID)
		for _, f := range fields {
			if !watcheddirectory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != watcheddirectory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(watcheddirectory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(watcheddirectory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScanFrequencyMinutes(); ok {
		_spec.SetField(watcheddirectory.FieldScanFrequencyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScanFrequencyMinutes(); ok {
		_spec.AddField(watcheddirectory.FieldScanFrequencyMinutes, field.TypeInt, value)
	}
	if _u.mutation.ScanFrequencyMinutesCleared() {
		_spec.ClearField(watcheddirectory.FieldScanFrequencyMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.LastScannedAt(); ok {
		_spec.SetField(watcheddirectory.FieldLastScannedAt, field.TypeTime, value)
	}
	if _u.mutation.LastScannedAtCleared() {
		_spec.ClearField(watcheddirectory.FieldLastScannedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ScanStatus(); ok {
		_spec.SetField(watcheddirectory.FieldScanStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastScanError(); ok {
		_spec.SetField(watcheddirectory.FieldLastScanError, field.TypeString, value)
	}
	if _u.mutation.LastScanErrorCleared() {
		_spec.ClearField(watcheddirectory.FieldLastScanError, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentlyScanning(); ok {
		_spec.SetField(watcheddirectory.FieldCurrentlyScanning, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastScanDurationMs(); ok {
		_spec.SetField(watcheddirectory.FieldLastScanDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastScanDurationMs(); ok {
		_spec.AddField(watcheddirectory.FieldLastScanDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WatchedDirectory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{watcheddirectory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

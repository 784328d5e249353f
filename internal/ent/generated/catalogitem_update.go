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
	"github.com/memedex/memedex/internal/ent/generated/tag"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// CatalogItemUpdate is the builder for updating CatalogItem entities.
type CatalogItemUpdate struct {
	config
	hooks    []Hook
	mutation *CatalogItemMutation
}

// Where appends a list predicates to the CatalogItemUpdate builder.
func (_u *CatalogItemUpdate) Where(ps ...predicate.CatalogItem) *CatalogItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CatalogItemUpdate) SetUpdatedAt(v time.Time) *CatalogItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDirectoryID sets the "directory_id" field.
func (_u *CatalogItemUpdate) SetDirectoryID(v int) *CatalogItemUpdate {
	_u.mutation.SetDirectoryID(v)
	return _u
}

// SetNillableDirectoryID sets the "directory_id" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableDirectoryID(v *int) *CatalogItemUpdate {
	if v != nil {
		_u.SetDirectoryID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *CatalogItemUpdate) SetFilename(v string) *CatalogItemUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableFilename(v *string) *CatalogItemUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CatalogItemUpdate) SetDescription(v string) *CatalogItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableDescription(v *string) *CatalogItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CatalogItemUpdate) ClearDescription() *CatalogItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CatalogItemUpdate) SetStatus(v catalogitem.Status) *CatalogItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableStatus(v *catalogitem.Status) *CatalogItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDirectory sets the "directory" edge to the WatchedDirectory entity.
func (_u *CatalogItemUpdate) SetDirectory(v *WatchedDirectory) *CatalogItemUpdate {
	return _u.SetDirectoryID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *CatalogItemUpdate) AddTagIDs(ids ...int) *CatalogItemUpdate {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *CatalogItemUpdate) AddTags(v ...*Tag) *CatalogItemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the CatalogItemMutation object of the builder.
func (_u *CatalogItemUpdate) Mutation() *CatalogItemMutation {
	return _u.mutation
}

// ClearDirectory clears the "directory" edge to the WatchedDirectory entity.
func (_u *CatalogItemUpdate) ClearDirectory() *CatalogItemUpdate {
	_u.mutation.ClearDirectory()
	return _u
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *CatalogItemUpdate) ClearTags() *CatalogItemUpdate {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *CatalogItemUpdate) RemoveTagIDs(ids ...int) *CatalogItemUpdate {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *CatalogItemUpdate) RemoveTags(v ...*Tag) *CatalogItemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CatalogItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CatalogItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CatalogItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := catalogitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogItemUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := catalogitem.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`generated: validator failed for field "CatalogItem.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := catalogitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "CatalogItem.status": %w`, err)}
		}
	}
	if _u.mutation.DirectoryCleared() && len(_u.mutation.DirectoryIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "CatalogItem.directory"`)
	}
	return nil
}

func (_u *CatalogItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogitem.Table, catalogitem.Columns, sqlgraph.NewFieldSpec(catalogitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(catalogitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(catalogitem.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(catalogitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(catalogitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(catalogitem.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DirectoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DirectoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CatalogItemUpdateOne is the builder for updating a single CatalogItem entity.
type CatalogItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CatalogItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CatalogItemUpdateOne) SetUpdatedAt(v time.Time) *CatalogItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDirectoryID sets the "directory_id" field.
func (_u *CatalogItemUpdateOne) SetDirectoryID(v int) *CatalogItemUpdateOne {
	_u.mutation.SetDirectoryID(v)
	return _u
}

// SetNillableDirectoryID sets the "directory_id" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableDirectoryID(v *int) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetDirectoryID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *CatalogItemUpdateOne) SetFilename(v string) *CatalogItemUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableFilename(v *string) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CatalogItemUpdateOne) SetDescription(v string) *CatalogItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableDescription(v *string) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CatalogItemUpdateOne) ClearDescription() *CatalogItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CatalogItemUpdateOne) SetStatus(v catalogitem.Status) *CatalogItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableStatus(v *catalogitem.Status) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDirectory sets the "directory" edge to the WatchedDirectory entity.
func (_u *CatalogItemUpdateOne) SetDirectory(v *WatchedDirectory) *CatalogItemUpdateOne {
	return _u.SetDirectoryID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *CatalogItemUpdateOne) AddTagIDs(ids ...int) *CatalogItemUpdateOne {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *CatalogItemUpdateOne) AddTags(v ...*Tag) *CatalogItemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the CatalogItemMutation object of the builder.
func (_u *CatalogItemUpdateOne) Mutation() *CatalogItemMutation {
	return _u.mutation
}

// ClearDirectory clears the "directory" edge to the WatchedDirectory entity.
func (_u *CatalogItemUpdateOne) ClearDirectory() *CatalogItemUpdateOne {
	_u.mutation.ClearDirectory()
	return _u
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *CatalogItemUpdateOne) ClearTags() *CatalogItemUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *CatalogItemUpdateOne) RemoveTagIDs(ids ...int) *CatalogItemUpdateOne {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *CatalogItemUpdateOne) RemoveTags(v ...*Tag) *CatalogItemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Where appends a list predicates to the CatalogItemUpdate builder.
func (_u *CatalogItemUpdateOne) Where(ps ...predicate.CatalogItem) *CatalogItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CatalogItemUpdateOne) Select(field string, fields ...string) *CatalogItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CatalogItem entity.
func (_u *CatalogItemUpdateOne) Save(ctx context.Context) (*CatalogItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogItemUpdateOne) SaveX(ctx context.Context) *CatalogItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CatalogItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CatalogItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := catalogitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogItemUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := catalogitem.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`generated: validator failed for field "CatalogItem.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := catalogitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "CatalogItem.status": %w`, err)}
		}
	}
	if _u.mutation.DirectoryCleared() && len(_u.mutation.DirectoryIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "CatalogItem.directory"`)
	}
	return nil
}

func (_u *CatalogItemUpdateOne) sqlSave(ctx context.Context) (_node *CatalogItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogitem.Table, catalogitem.Columns, sqlgraph.NewFieldSpec(catalogitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "CatalogItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, catalogitem.FieldID)
		for _, f := range fields {
			if !catalogitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != catalogitem.FieldID {
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
		_spec.SetField(catalogitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(catalogitem.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(catalogitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(catalogitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(catalogitem.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DirectoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DirectoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CatalogItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

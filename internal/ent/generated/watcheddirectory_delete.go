// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memedex/memedex/internal/ent/generated/predicate"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// WatchedDirectoryDelete is the builder for deleting a WatchedDirectory entity.
type WatchedDirectoryDelete struct {
	config
	hooks    []Hook
	mutation *WatchedDirectoryMutation
}

// Where appends a list predicates to the WatchedDirectoryDelete builder.
func (_d *WatchedDirectoryDelete) Where(ps ...predicate.WatchedDirectory) *WatchedDirectoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WatchedDirectoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WatchedDirectoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WatchedDirectoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(watcheddirectory.Table, sqlgraph.NewFieldSpec(watcheddirectory.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WatchedDirectoryDeleteOne is the builder for deleting a single WatchedDirectory entity.
type WatchedDirectoryDeleteOne struct {
	_d *WatchedDirectoryDelete
}

// Where appends a list predicates to the WatchedDirectoryDelete builder.
func (_d *WatchedDirectoryDeleteOne) Where(ps ...predicate.WatchedDirectory) *WatchedDirectoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WatchedDirectoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{watcheddirectory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WatchedDirectoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

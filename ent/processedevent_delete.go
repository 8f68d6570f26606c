// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tripfolio/tripfolio-api/ent/predicate"
	"github.com/tripfolio/tripfolio-api/ent/processedevent"
)

// ProcessedEventDelete is the builder for deleting a ProcessedEvent entity.
type ProcessedEventDelete struct {
	config
	hooks    []Hook
	mutation *ProcessedEventMutation
}

// Where appends a list predicates to the ProcessedEventDelete builder.
func (_d *ProcessedEventDelete) Where(ps ...predicate.ProcessedEvent) *ProcessedEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcessedEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessedEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcessedEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(processedevent.Table, sqlgraph.NewFieldSpec(processedevent.FieldID, field.TypeInt))
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

// ProcessedEventDeleteOne is the builder for deleting a single ProcessedEvent entity.
type ProcessedEventDeleteOne struct {
	_d *ProcessedEventDelete
}

// Where appends a list predicates to the ProcessedEventDelete builder.
func (_d *ProcessedEventDeleteOne) Where(ps ...predicate.ProcessedEvent) *ProcessedEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcessedEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{processedevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessedEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

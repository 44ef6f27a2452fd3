// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ConversionJobDelete is the builder for deleting a ConversionJob entity.
type ConversionJobDelete struct {
	config
	hooks    []Hook
	mutation *ConversionJobMutation
}

// Where appends a list predicates to the ConversionJobDelete builder.
func (_d *ConversionJobDelete) Where(ps ...predicate.ConversionJob) *ConversionJobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConversionJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConversionJobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConversionJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(conversionjob.Table, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
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

// ConversionJobDeleteOne is the builder for deleting a single ConversionJob entity.
type ConversionJobDeleteOne struct {
	_d *ConversionJobDelete
}

// Where appends a list predicates to the ConversionJobDelete builder.
func (_d *ConversionJobDeleteOne) Where(ps ...predicate.ConversionJob) *ConversionJobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConversionJobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{conversionjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConversionJobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

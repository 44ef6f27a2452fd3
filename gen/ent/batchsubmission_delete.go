// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BatchSubmissionDelete is the builder for deleting a BatchSubmission entity.
type BatchSubmissionDelete struct {
	config
	hooks    []Hook
	mutation *BatchSubmissionMutation
}

// Where appends a list predicates to the BatchSubmissionDelete builder.
func (_d *BatchSubmissionDelete) Where(ps ...predicate.BatchSubmission) *BatchSubmissionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BatchSubmissionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BatchSubmissionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BatchSubmissionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(batchsubmission.Table, sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID))
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

// BatchSubmissionDeleteOne is the builder for deleting a single BatchSubmission entity.
type BatchSubmissionDeleteOne struct {
	_d *BatchSubmissionDelete
}

// Where appends a list predicates to the BatchSubmissionDelete builder.
func (_d *BatchSubmissionDeleteOne) Where(ps ...predicate.BatchSubmission) *BatchSubmissionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BatchSubmissionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{batchsubmission.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BatchSubmissionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

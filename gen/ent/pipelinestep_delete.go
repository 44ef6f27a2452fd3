// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"framescribe/gen/ent/pipelinestep"
	"framescribe/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PipelineStepDelete is the builder for deleting a PipelineStep entity.
type PipelineStepDelete struct {
	config
	hooks    []Hook
	mutation *PipelineStepMutation
}

// Where appends a list predicates to the PipelineStepDelete builder.
func (_d *PipelineStepDelete) Where(ps ...predicate.PipelineStep) *PipelineStepDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PipelineStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PipelineStepDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PipelineStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pipelinestep.Table, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID))
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

// PipelineStepDeleteOne is the builder for deleting a single PipelineStep entity.
type PipelineStepDeleteOne struct {
	_d *PipelineStepDelete
}

// Where appends a list predicates to the PipelineStepDelete builder.
func (_d *PipelineStepDeleteOne) Where(ps ...predicate.PipelineStep) *PipelineStepDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PipelineStepDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pipelinestep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PipelineStepDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/pipelinestep"
	"framescribe/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PipelineStepUpdate is the builder for updating PipelineStep entities.
type PipelineStepUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineStepMutation
}

// Where appends a list predicates to the PipelineStepUpdate builder.
func (_u *PipelineStepUpdate) Where(ps ...predicate.PipelineStep) *PipelineStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PipelineStepUpdate) SetJobID(v uuid.UUID) *PipelineStepUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableJobID(v *uuid.UUID) *PipelineStepUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineStepUpdate) SetName(v string) *PipelineStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableName(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *PipelineStepUpdate) SetResult(v json.RawMessage) *PipelineStepUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *PipelineStepUpdate) AppendResult(v json.RawMessage) *PipelineStepUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PipelineStepUpdate) ClearResult() *PipelineStepUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineStepUpdate) SetCompletedAt(v time.Time) *PipelineStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableCompletedAt(v *time.Time) *PipelineStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_u *PipelineStepUpdate) SetJob(v *ConversionJob) *PipelineStepUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_u *PipelineStepUpdate) Mutation() *PipelineStepMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (_u *PipelineStepUpdate) ClearJob() *PipelineStepUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pipelinestep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.name": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineStep.job"`)
	}
	return nil
}

func (_u *PipelineStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(pipelinestep.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(pipelinestep.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinestep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.JobTable,
			Columns: []string{pipelinestep.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.JobTable,
			Columns: []string{pipelinestep.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineStepUpdateOne is the builder for updating a single PipelineStep entity.
type PipelineStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineStepMutation
}

// SetJobID sets the "job_id" field.
func (_u *PipelineStepUpdateOne) SetJobID(v uuid.UUID) *PipelineStepUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableJobID(v *uuid.UUID) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineStepUpdateOne) SetName(v string) *PipelineStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableName(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *PipelineStepUpdateOne) SetResult(v json.RawMessage) *PipelineStepUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *PipelineStepUpdateOne) AppendResult(v json.RawMessage) *PipelineStepUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PipelineStepUpdateOne) ClearResult() *PipelineStepUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineStepUpdateOne) SetCompletedAt(v time.Time) *PipelineStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_u *PipelineStepUpdateOne) SetJob(v *ConversionJob) *PipelineStepUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_u *PipelineStepUpdateOne) Mutation() *PipelineStepMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (_u *PipelineStepUpdateOne) ClearJob() *PipelineStepUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the PipelineStepUpdate builder.
func (_u *PipelineStepUpdateOne) Where(ps ...predicate.PipelineStep) *PipelineStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineStepUpdateOne) Select(field string, fields ...string) *PipelineStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineStep entity.
func (_u *PipelineStepUpdateOne) Save(ctx context.Context) (*PipelineStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepUpdateOne) SaveX(ctx context.Context) *PipelineStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pipelinestep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.name": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineStep.job"`)
	}
	return nil
}

func (_u *PipelineStepUpdateOne) sqlSave(ctx context.Context) (_node *PipelineStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinestep.FieldID)
		for _, f := range fields {
			if !pipelinestep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinestep.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(pipelinestep.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(pipelinestep.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinestep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.JobTable,
			Columns: []string{pipelinestep.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.JobTable,
			Columns: []string{pipelinestep.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

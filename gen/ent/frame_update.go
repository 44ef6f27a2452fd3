// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/frame"
	"framescribe/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FrameUpdate is the builder for updating Frame entities.
type FrameUpdate struct {
	config
	hooks    []Hook
	mutation *FrameMutation
}

// Where appends a list predicates to the FrameUpdate builder.
func (_u *FrameUpdate) Where(ps ...predicate.Frame) *FrameUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *FrameUpdate) SetJobID(v uuid.UUID) *FrameUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *FrameUpdate) SetNillableJobID(v *uuid.UUID) *FrameUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *FrameUpdate) SetFilename(v string) *FrameUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *FrameUpdate) SetNillableFilename(v *string) *FrameUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetBaseKey sets the "base_key" field.
func (_u *FrameUpdate) SetBaseKey(v string) *FrameUpdate {
	_u.mutation.SetBaseKey(v)
	return _u
}

// SetNillableBaseKey sets the "base_key" field if the given value is not nil.
func (_u *FrameUpdate) SetNillableBaseKey(v *string) *FrameUpdate {
	if v != nil {
		_u.SetBaseKey(*v)
	}
	return _u
}

// SetFrameIndex sets the "frame_index" field.
func (_u *FrameUpdate) SetFrameIndex(v int) *FrameUpdate {
	_u.mutation.ResetFrameIndex()
	_u.mutation.SetFrameIndex(v)
	return _u
}

// SetNillableFrameIndex sets the "frame_index" field if the given value is not nil.
func (_u *FrameUpdate) SetNillableFrameIndex(v *int) *FrameUpdate {
	if v != nil {
		_u.SetFrameIndex(*v)
	}
	return _u
}

// AddFrameIndex adds value to the "frame_index" field.
func (_u *FrameUpdate) AddFrameIndex(v int) *FrameUpdate {
	_u.mutation.AddFrameIndex(v)
	return _u
}

// SetText sets the "text" field.
func (_u *FrameUpdate) SetText(v string) *FrameUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *FrameUpdate) SetNillableText(v *string) *FrameUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_u *FrameUpdate) SetJob(v *ConversionJob) *FrameUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the FrameMutation object of the builder.
func (_u *FrameUpdate) Mutation() *FrameMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (_u *FrameUpdate) ClearJob() *FrameUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FrameUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FrameUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FrameUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FrameUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FrameUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := frame.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Frame.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseKey(); ok {
		if err := frame.BaseKeyValidator(v); err != nil {
			return &ValidationError{Name: "base_key", err: fmt.Errorf(`ent: validator failed for field "Frame.base_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FrameIndex(); ok {
		if err := frame.FrameIndexValidator(v); err != nil {
			return &ValidationError{Name: "frame_index", err: fmt.Errorf(`ent: validator failed for field "Frame.frame_index": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Frame.job"`)
	}
	return nil
}

func (_u *FrameUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(frame.Table, frame.Columns, sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(frame.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseKey(); ok {
		_spec.SetField(frame.FieldBaseKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrameIndex(); ok {
		_spec.SetField(frame.FieldFrameIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrameIndex(); ok {
		_spec.AddField(frame.FieldFrameIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(frame.FieldText, field.TypeString, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   frame.JobTable,
			Columns: []string{frame.JobColumn},
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
			Table:   frame.JobTable,
			Columns: []string{frame.JobColumn},
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
			err = &NotFoundError{frame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FrameUpdateOne is the builder for updating a single Frame entity.
type FrameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FrameMutation
}

// SetJobID sets the "job_id" field.
func (_u *FrameUpdateOne) SetJobID(v uuid.UUID) *FrameUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *FrameUpdateOne) SetNillableJobID(v *uuid.UUID) *FrameUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *FrameUpdateOne) SetFilename(v string) *FrameUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *FrameUpdateOne) SetNillableFilename(v *string) *FrameUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetBaseKey sets the "base_key" field.
func (_u *FrameUpdateOne) SetBaseKey(v string) *FrameUpdateOne {
	_u.mutation.SetBaseKey(v)
	return _u
}

// SetNillableBaseKey sets the "base_key" field if the given value is not nil.
func (_u *FrameUpdateOne) SetNillableBaseKey(v *string) *FrameUpdateOne {
	if v != nil {
		_u.SetBaseKey(*v)
	}
	return _u
}

// SetFrameIndex sets the "frame_index" field.
func (_u *FrameUpdateOne) SetFrameIndex(v int) *FrameUpdateOne {
	_u.mutation.ResetFrameIndex()
	_u.mutation.SetFrameIndex(v)
	return _u
}

// SetNillableFrameIndex sets the "frame_index" field if the given value is not nil.
func (_u *FrameUpdateOne) SetNillableFrameIndex(v *int) *FrameUpdateOne {
	if v != nil {
		_u.SetFrameIndex(*v)
	}
	return _u
}

// AddFrameIndex adds value to the "frame_index" field.
func (_u *FrameUpdateOne) AddFrameIndex(v int) *FrameUpdateOne {
	_u.mutation.AddFrameIndex(v)
	return _u
}

// SetText sets the "text" field.
func (_u *FrameUpdateOne) SetText(v string) *FrameUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *FrameUpdateOne) SetNillableText(v *string) *FrameUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_u *FrameUpdateOne) SetJob(v *ConversionJob) *FrameUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the FrameMutation object of the builder.
func (_u *FrameUpdateOne) Mutation() *FrameMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (_u *FrameUpdateOne) ClearJob() *FrameUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the FrameUpdate builder.
func (_u *FrameUpdateOne) Where(ps ...predicate.Frame) *FrameUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FrameUpdateOne) Select(field string, fields ...string) *FrameUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Frame entity.
func (_u *FrameUpdateOne) Save(ctx context.Context) (*Frame, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FrameUpdateOne) SaveX(ctx context.Context) *Frame {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FrameUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FrameUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FrameUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := frame.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Frame.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseKey(); ok {
		if err := frame.BaseKeyValidator(v); err != nil {
			return &ValidationError{Name: "base_key", err: fmt.Errorf(`ent: validator failed for field "Frame.base_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FrameIndex(); ok {
		if err := frame.FrameIndexValidator(v); err != nil {
			return &ValidationError{Name: "frame_index", err: fmt.Errorf(`ent: validator failed for field "Frame.frame_index": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Frame.job"`)
	}
	return nil
}

func (_u *FrameUpdateOne) sqlSave(ctx context.Context) (_node *Frame, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(frame.Table, frame.Columns, sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Frame.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, frame.FieldID)
		for _, f := range fields {
			if !frame.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != frame.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(frame.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseKey(); ok {
		_spec.SetField(frame.FieldBaseKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrameIndex(); ok {
		_spec.SetField(frame.FieldFrameIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrameIndex(); ok {
		_spec.AddField(frame.FieldFrameIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(frame.FieldText, field.TypeString, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   frame.JobTable,
			Columns: []string{frame.JobColumn},
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
			Table:   frame.JobTable,
			Columns: []string{frame.JobColumn},
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
	_node = &Frame{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{frame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

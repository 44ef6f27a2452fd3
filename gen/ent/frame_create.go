// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/frame"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FrameCreate is the builder for creating a Frame entity.
type FrameCreate struct {
	config
	mutation *FrameMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *FrameCreate) SetJobID(v uuid.UUID) *FrameCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *FrameCreate) SetFilename(v string) *FrameCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetBaseKey sets the "base_key" field.
func (_c *FrameCreate) SetBaseKey(v string) *FrameCreate {
	_c.mutation.SetBaseKey(v)
	return _c
}

// SetFrameIndex sets the "frame_index" field.
func (_c *FrameCreate) SetFrameIndex(v int) *FrameCreate {
	_c.mutation.SetFrameIndex(v)
	return _c
}

// SetText sets the "text" field.
func (_c *FrameCreate) SetText(v string) *FrameCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *FrameCreate) SetNillableText(v *string) *FrameCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FrameCreate) SetID(v uuid.UUID) *FrameCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FrameCreate) SetNillableID(v *uuid.UUID) *FrameCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_c *FrameCreate) SetJob(v *ConversionJob) *FrameCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the FrameMutation object of the builder.
func (_c *FrameCreate) Mutation() *FrameMutation {
	return _c.mutation
}

// Save creates the Frame in the database.
func (_c *FrameCreate) Save(ctx context.Context) (*Frame, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FrameCreate) SaveX(ctx context.Context) *Frame {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FrameCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FrameCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FrameCreate) defaults() {
	if _, ok := _c.mutation.Text(); !ok {
		v := frame.DefaultText
		_c.mutation.SetText(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := frame.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FrameCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Frame.job_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Frame.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := frame.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Frame.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseKey(); !ok {
		return &ValidationError{Name: "base_key", err: errors.New(`ent: missing required field "Frame.base_key"`)}
	}
	if v, ok := _c.mutation.BaseKey(); ok {
		if err := frame.BaseKeyValidator(v); err != nil {
			return &ValidationError{Name: "base_key", err: fmt.Errorf(`ent: validator failed for field "Frame.base_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FrameIndex(); !ok {
		return &ValidationError{Name: "frame_index", err: errors.New(`ent: missing required field "Frame.frame_index"`)}
	}
	if v, ok := _c.mutation.FrameIndex(); ok {
		if err := frame.FrameIndexValidator(v); err != nil {
			return &ValidationError{Name: "frame_index", err: fmt.Errorf(`ent: validator failed for field "Frame.frame_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Frame.text"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Frame.job"`)}
	}
	return nil
}

func (_c *FrameCreate) sqlSave(ctx context.Context) (*Frame, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FrameCreate) createSpec() (*Frame, *sqlgraph.CreateSpec) {
	var (
		_node = &Frame{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(frame.Table, sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(frame.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.BaseKey(); ok {
		_spec.SetField(frame.FieldBaseKey, field.TypeString, value)
		_node.BaseKey = value
	}
	if value, ok := _c.mutation.FrameIndex(); ok {
		_spec.SetField(frame.FieldFrameIndex, field.TypeInt, value)
		_node.FrameIndex = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(frame.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FrameCreateBulk is the builder for creating many Frame entities in bulk.
type FrameCreateBulk struct {
	config
	err      error
	builders []*FrameCreate
}

// Save creates the Frame entities in the database.
func (_c *FrameCreateBulk) Save(ctx context.Context) ([]*Frame, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Frame, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FrameMutation)
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
func (_c *FrameCreateBulk) SaveX(ctx context.Context) []*Frame {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FrameCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FrameCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

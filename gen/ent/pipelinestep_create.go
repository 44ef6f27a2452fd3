// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/pipelinestep"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PipelineStepCreate is the builder for creating a PipelineStep entity.
type PipelineStepCreate struct {
	config
	mutation *PipelineStepMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *PipelineStepCreate) SetJobID(v uuid.UUID) *PipelineStepCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PipelineStepCreate) SetName(v string) *PipelineStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *PipelineStepCreate) SetResult(v json.RawMessage) *PipelineStepCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineStepCreate) SetCompletedAt(v time.Time) *PipelineStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableCompletedAt(v *time.Time) *PipelineStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineStepCreate) SetID(v uuid.UUID) *PipelineStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableID(v *uuid.UUID) *PipelineStepCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_c *PipelineStepCreate) SetJob(v *ConversionJob) *PipelineStepCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_c *PipelineStepCreate) Mutation() *PipelineStepMutation {
	return _c.mutation
}

// Save creates the PipelineStep in the database.
func (_c *PipelineStepCreate) Save(ctx context.Context) (*PipelineStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineStepCreate) SaveX(ctx context.Context) *PipelineStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineStepCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := pipelinestep.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pipelinestep.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineStepCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "PipelineStep.job_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PipelineStep.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := pipelinestep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "PipelineStep.completed_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "PipelineStep.job"`)}
	}
	return nil
}

func (_c *PipelineStepCreate) sqlSave(ctx context.Context) (*PipelineStep, error) {
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

func (_c *PipelineStepCreate) createSpec() (*PipelineStep, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinestep.Table, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(pipelinestep.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinestep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineStepCreateBulk is the builder for creating many PipelineStep entities in bulk.
type PipelineStepCreateBulk struct {
	config
	err      error
	builders []*PipelineStepCreate
}

// Save creates the PipelineStep entities in the database.
func (_c *PipelineStepCreateBulk) Save(ctx context.Context) ([]*PipelineStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineStepMutation)
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
func (_c *PipelineStepCreateBulk) SaveX(ctx context.Context) []*PipelineStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/conversionjob"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BatchSubmissionCreate is the builder for creating a BatchSubmission entity.
type BatchSubmissionCreate struct {
	config
	mutation *BatchSubmissionMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *BatchSubmissionCreate) SetJobID(v uuid.UUID) *BatchSubmissionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetBatchIndex sets the "batch_index" field.
func (_c *BatchSubmissionCreate) SetBatchIndex(v int) *BatchSubmissionCreate {
	_c.mutation.SetBatchIndex(v)
	return _c
}

// SetProviderBatchID sets the "provider_batch_id" field.
func (_c *BatchSubmissionCreate) SetProviderBatchID(v string) *BatchSubmissionCreate {
	_c.mutation.SetProviderBatchID(v)
	return _c
}

// SetNillableProviderBatchID sets the "provider_batch_id" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableProviderBatchID(v *string) *BatchSubmissionCreate {
	if v != nil {
		_c.SetProviderBatchID(*v)
	}
	return _c
}

// SetInputFileID sets the "input_file_id" field.
func (_c *BatchSubmissionCreate) SetInputFileID(v string) *BatchSubmissionCreate {
	_c.mutation.SetInputFileID(v)
	return _c
}

// SetNillableInputFileID sets the "input_file_id" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableInputFileID(v *string) *BatchSubmissionCreate {
	if v != nil {
		_c.SetInputFileID(*v)
	}
	return _c
}

// SetOutputFileID sets the "output_file_id" field.
func (_c *BatchSubmissionCreate) SetOutputFileID(v string) *BatchSubmissionCreate {
	_c.mutation.SetOutputFileID(v)
	return _c
}

// SetNillableOutputFileID sets the "output_file_id" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableOutputFileID(v *string) *BatchSubmissionCreate {
	if v != nil {
		_c.SetOutputFileID(*v)
	}
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *BatchSubmissionCreate) SetItemCount(v int) *BatchSubmissionCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableItemCount(v *int) *BatchSubmissionCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *BatchSubmissionCreate) SetState(v string) *BatchSubmissionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableState(v *string) *BatchSubmissionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetSupplementary sets the "supplementary" field.
func (_c *BatchSubmissionCreate) SetSupplementary(v bool) *BatchSubmissionCreate {
	_c.mutation.SetSupplementary(v)
	return _c
}

// SetNillableSupplementary sets the "supplementary" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableSupplementary(v *bool) *BatchSubmissionCreate {
	if v != nil {
		_c.SetSupplementary(*v)
	}
	return _c
}

// SetNextPollAt sets the "next_poll_at" field.
func (_c *BatchSubmissionCreate) SetNextPollAt(v time.Time) *BatchSubmissionCreate {
	_c.mutation.SetNextPollAt(v)
	return _c
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableNextPollAt(v *time.Time) *BatchSubmissionCreate {
	if v != nil {
		_c.SetNextPollAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchSubmissionCreate) SetCreatedAt(v time.Time) *BatchSubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableCreatedAt(v *time.Time) *BatchSubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BatchSubmissionCreate) SetUpdatedAt(v time.Time) *BatchSubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableUpdatedAt(v *time.Time) *BatchSubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchSubmissionCreate) SetID(v uuid.UUID) *BatchSubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchSubmissionCreate) SetNillableID(v *uuid.UUID) *BatchSubmissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_c *BatchSubmissionCreate) SetJob(v *ConversionJob) *BatchSubmissionCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the BatchSubmissionMutation object of the builder.
func (_c *BatchSubmissionCreate) Mutation() *BatchSubmissionMutation {
	return _c.mutation
}

// Save creates the BatchSubmission in the database.
func (_c *BatchSubmissionCreate) Save(ctx context.Context) (*BatchSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchSubmissionCreate) SaveX(ctx context.Context) *BatchSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchSubmissionCreate) defaults() {
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := batchsubmission.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := batchsubmission.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Supplementary(); !ok {
		v := batchsubmission.DefaultSupplementary
		_c.mutation.SetSupplementary(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batchsubmission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := batchsubmission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batchsubmission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchSubmissionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "BatchSubmission.job_id"`)}
	}
	if _, ok := _c.mutation.BatchIndex(); !ok {
		return &ValidationError{Name: "batch_index", err: errors.New(`ent: missing required field "BatchSubmission.batch_index"`)}
	}
	if v, ok := _c.mutation.BatchIndex(); ok {
		if err := batchsubmission.BatchIndexValidator(v); err != nil {
			return &ValidationError{Name: "batch_index", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.batch_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "BatchSubmission.item_count"`)}
	}
	if v, ok := _c.mutation.ItemCount(); ok {
		if err := batchsubmission.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.item_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "BatchSubmission.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := batchsubmission.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Supplementary(); !ok {
		return &ValidationError{Name: "supplementary", err: errors.New(`ent: missing required field "BatchSubmission.supplementary"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BatchSubmission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BatchSubmission.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "BatchSubmission.job"`)}
	}
	return nil
}

func (_c *BatchSubmissionCreate) sqlSave(ctx context.Context) (*BatchSubmission, error) {
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

func (_c *BatchSubmissionCreate) createSpec() (*BatchSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchsubmission.Table, sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BatchIndex(); ok {
		_spec.SetField(batchsubmission.FieldBatchIndex, field.TypeInt, value)
		_node.BatchIndex = value
	}
	if value, ok := _c.mutation.ProviderBatchID(); ok {
		_spec.SetField(batchsubmission.FieldProviderBatchID, field.TypeString, value)
		_node.ProviderBatchID = value
	}
	if value, ok := _c.mutation.InputFileID(); ok {
		_spec.SetField(batchsubmission.FieldInputFileID, field.TypeString, value)
		_node.InputFileID = value
	}
	if value, ok := _c.mutation.OutputFileID(); ok {
		_spec.SetField(batchsubmission.FieldOutputFileID, field.TypeString, value)
		_node.OutputFileID = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(batchsubmission.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(batchsubmission.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Supplementary(); ok {
		_spec.SetField(batchsubmission.FieldSupplementary, field.TypeBool, value)
		_node.Supplementary = value
	}
	if value, ok := _c.mutation.NextPollAt(); ok {
		_spec.SetField(batchsubmission.FieldNextPollAt, field.TypeTime, value)
		_node.NextPollAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batchsubmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(batchsubmission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batchsubmission.JobTable,
			Columns: []string{batchsubmission.JobColumn},
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

// BatchSubmissionCreateBulk is the builder for creating many BatchSubmission entities in bulk.
type BatchSubmissionCreateBulk struct {
	config
	err      error
	builders []*BatchSubmissionCreate
}

// Save creates the BatchSubmission entities in the database.
func (_c *BatchSubmissionCreateBulk) Save(ctx context.Context) ([]*BatchSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchSubmissionMutation)
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
func (_c *BatchSubmissionCreateBulk) SaveX(ctx context.Context) []*BatchSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

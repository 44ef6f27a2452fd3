// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BatchSubmissionUpdate is the builder for updating BatchSubmission entities.
type BatchSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *BatchSubmissionMutation
}

// Where appends a list predicates to the BatchSubmissionUpdate builder.
func (_u *BatchSubmissionUpdate) Where(ps ...predicate.BatchSubmission) *BatchSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *BatchSubmissionUpdate) SetJobID(v uuid.UUID) *BatchSubmissionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableJobID(v *uuid.UUID) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetBatchIndex sets the "batch_index" field.
func (_u *BatchSubmissionUpdate) SetBatchIndex(v int) *BatchSubmissionUpdate {
	_u.mutation.ResetBatchIndex()
	_u.mutation.SetBatchIndex(v)
	return _u
}

// SetNillableBatchIndex sets the "batch_index" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableBatchIndex(v *int) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetBatchIndex(*v)
	}
	return _u
}

// AddBatchIndex adds value to the "batch_index" field.
func (_u *BatchSubmissionUpdate) AddBatchIndex(v int) *BatchSubmissionUpdate {
	_u.mutation.AddBatchIndex(v)
	return _u
}

// SetProviderBatchID sets the "provider_batch_id" field.
func (_u *BatchSubmissionUpdate) SetProviderBatchID(v string) *BatchSubmissionUpdate {
	_u.mutation.SetProviderBatchID(v)
	return _u
}

// SetNillableProviderBatchID sets the "provider_batch_id" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableProviderBatchID(v *string) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetProviderBatchID(*v)
	}
	return _u
}

// ClearProviderBatchID clears the value of the "provider_batch_id" field.
func (_u *BatchSubmissionUpdate) ClearProviderBatchID() *BatchSubmissionUpdate {
	_u.mutation.ClearProviderBatchID()
	return _u
}

// SetInputFileID sets the "input_file_id" field.
func (_u *BatchSubmissionUpdate) SetInputFileID(v string) *BatchSubmissionUpdate {
	_u.mutation.SetInputFileID(v)
	return _u
}

// SetNillableInputFileID sets the "input_file_id" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableInputFileID(v *string) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetInputFileID(*v)
	}
	return _u
}

// ClearInputFileID clears the value of the "input_file_id" field.
func (_u *BatchSubmissionUpdate) ClearInputFileID() *BatchSubmissionUpdate {
	_u.mutation.ClearInputFileID()
	return _u
}

// SetOutputFileID sets the "output_file_id" field.
func (_u *BatchSubmissionUpdate) SetOutputFileID(v string) *BatchSubmissionUpdate {
	_u.mutation.SetOutputFileID(v)
	return _u
}

// SetNillableOutputFileID sets the "output_file_id" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableOutputFileID(v *string) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetOutputFileID(*v)
	}
	return _u
}

// ClearOutputFileID clears the value of the "output_file_id" field.
func (_u *BatchSubmissionUpdate) ClearOutputFileID() *BatchSubmissionUpdate {
	_u.mutation.ClearOutputFileID()
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *BatchSubmissionUpdate) SetItemCount(v int) *BatchSubmissionUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableItemCount(v *int) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *BatchSubmissionUpdate) AddItemCount(v int) *BatchSubmissionUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetState sets the "state" field.
func (_u *BatchSubmissionUpdate) SetState(v string) *BatchSubmissionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableState(v *string) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSupplementary sets the "supplementary" field.
func (_u *BatchSubmissionUpdate) SetSupplementary(v bool) *BatchSubmissionUpdate {
	_u.mutation.SetSupplementary(v)
	return _u
}

// SetNillableSupplementary sets the "supplementary" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableSupplementary(v *bool) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetSupplementary(*v)
	}
	return _u
}

// SetNextPollAt sets the "next_poll_at" field.
func (_u *BatchSubmissionUpdate) SetNextPollAt(v time.Time) *BatchSubmissionUpdate {
	_u.mutation.SetNextPollAt(v)
	return _u
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_u *BatchSubmissionUpdate) SetNillableNextPollAt(v *time.Time) *BatchSubmissionUpdate {
	if v != nil {
		_u.SetNextPollAt(*v)
	}
	return _u
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (_u *BatchSubmissionUpdate) ClearNextPollAt() *BatchSubmissionUpdate {
	_u.mutation.ClearNextPollAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchSubmissionUpdate) SetUpdatedAt(v time.Time) *BatchSubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_u *BatchSubmissionUpdate) SetJob(v *ConversionJob) *BatchSubmissionUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the BatchSubmissionMutation object of the builder.
func (_u *BatchSubmissionUpdate) Mutation() *BatchSubmissionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (_u *BatchSubmissionUpdate) ClearJob() *BatchSubmissionUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchSubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchSubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batchsubmission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchSubmissionUpdate) check() error {
	if v, ok := _u.mutation.BatchIndex(); ok {
		if err := batchsubmission.BatchIndexValidator(v); err != nil {
			return &ValidationError{Name: "batch_index", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.batch_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := batchsubmission.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.item_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := batchsubmission.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.state": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchSubmission.job"`)
	}
	return nil
}

func (_u *BatchSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchsubmission.Table, batchsubmission.Columns, sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BatchIndex(); ok {
		_spec.SetField(batchsubmission.FieldBatchIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchIndex(); ok {
		_spec.AddField(batchsubmission.FieldBatchIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProviderBatchID(); ok {
		_spec.SetField(batchsubmission.FieldProviderBatchID, field.TypeString, value)
	}
	if _u.mutation.ProviderBatchIDCleared() {
		_spec.ClearField(batchsubmission.FieldProviderBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.InputFileID(); ok {
		_spec.SetField(batchsubmission.FieldInputFileID, field.TypeString, value)
	}
	if _u.mutation.InputFileIDCleared() {
		_spec.ClearField(batchsubmission.FieldInputFileID, field.TypeString)
	}
	if value, ok := _u.mutation.OutputFileID(); ok {
		_spec.SetField(batchsubmission.FieldOutputFileID, field.TypeString, value)
	}
	if _u.mutation.OutputFileIDCleared() {
		_spec.ClearField(batchsubmission.FieldOutputFileID, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(batchsubmission.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(batchsubmission.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(batchsubmission.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Supplementary(); ok {
		_spec.SetField(batchsubmission.FieldSupplementary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextPollAt(); ok {
		_spec.SetField(batchsubmission.FieldNextPollAt, field.TypeTime, value)
	}
	if _u.mutation.NextPollAtCleared() {
		_spec.ClearField(batchsubmission.FieldNextPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batchsubmission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchSubmissionUpdateOne is the builder for updating a single BatchSubmission entity.
type BatchSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchSubmissionMutation
}

// SetJobID sets the "job_id" field.
func (_u *BatchSubmissionUpdateOne) SetJobID(v uuid.UUID) *BatchSubmissionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableJobID(v *uuid.UUID) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetBatchIndex sets the "batch_index" field.
func (_u *BatchSubmissionUpdateOne) SetBatchIndex(v int) *BatchSubmissionUpdateOne {
	_u.mutation.ResetBatchIndex()
	_u.mutation.SetBatchIndex(v)
	return _u
}

// SetNillableBatchIndex sets the "batch_index" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableBatchIndex(v *int) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetBatchIndex(*v)
	}
	return _u
}

// AddBatchIndex adds value to the "batch_index" field.
func (_u *BatchSubmissionUpdateOne) AddBatchIndex(v int) *BatchSubmissionUpdateOne {
	_u.mutation.AddBatchIndex(v)
	return _u
}

// SetProviderBatchID sets the "provider_batch_id" field.
func (_u *BatchSubmissionUpdateOne) SetProviderBatchID(v string) *BatchSubmissionUpdateOne {
	_u.mutation.SetProviderBatchID(v)
	return _u
}

// SetNillableProviderBatchID sets the "provider_batch_id" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableProviderBatchID(v *string) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetProviderBatchID(*v)
	}
	return _u
}

// ClearProviderBatchID clears the value of the "provider_batch_id" field.
func (_u *BatchSubmissionUpdateOne) ClearProviderBatchID() *BatchSubmissionUpdateOne {
	_u.mutation.ClearProviderBatchID()
	return _u
}

// SetInputFileID sets the "input_file_id" field.
func (_u *BatchSubmissionUpdateOne) SetInputFileID(v string) *BatchSubmissionUpdateOne {
	_u.mutation.SetInputFileID(v)
	return _u
}

// SetNillableInputFileID sets the "input_file_id" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableInputFileID(v *string) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetInputFileID(*v)
	}
	return _u
}

// ClearInputFileID clears the value of the "input_file_id" field.
func (_u *BatchSubmissionUpdateOne) ClearInputFileID() *BatchSubmissionUpdateOne {
	_u.mutation.ClearInputFileID()
	return _u
}

// SetOutputFileID sets the "output_file_id" field.
func (_u *BatchSubmissionUpdateOne) SetOutputFileID(v string) *BatchSubmissionUpdateOne {
	_u.mutation.SetOutputFileID(v)
	return _u
}

// SetNillableOutputFileID sets the "output_file_id" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableOutputFileID(v *string) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetOutputFileID(*v)
	}
	return _u
}

// ClearOutputFileID clears the value of the "output_file_id" field.
func (_u *BatchSubmissionUpdateOne) ClearOutputFileID() *BatchSubmissionUpdateOne {
	_u.mutation.ClearOutputFileID()
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *BatchSubmissionUpdateOne) SetItemCount(v int) *BatchSubmissionUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableItemCount(v *int) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *BatchSubmissionUpdateOne) AddItemCount(v int) *BatchSubmissionUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetState sets the "state" field.
func (_u *BatchSubmissionUpdateOne) SetState(v string) *BatchSubmissionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableState(v *string) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSupplementary sets the "supplementary" field.
func (_u *BatchSubmissionUpdateOne) SetSupplementary(v bool) *BatchSubmissionUpdateOne {
	_u.mutation.SetSupplementary(v)
	return _u
}

// SetNillableSupplementary sets the "supplementary" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableSupplementary(v *bool) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetSupplementary(*v)
	}
	return _u
}

// SetNextPollAt sets the "next_poll_at" field.
func (_u *BatchSubmissionUpdateOne) SetNextPollAt(v time.Time) *BatchSubmissionUpdateOne {
	_u.mutation.SetNextPollAt(v)
	return _u
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_u *BatchSubmissionUpdateOne) SetNillableNextPollAt(v *time.Time) *BatchSubmissionUpdateOne {
	if v != nil {
		_u.SetNextPollAt(*v)
	}
	return _u
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (_u *BatchSubmissionUpdateOne) ClearNextPollAt() *BatchSubmissionUpdateOne {
	_u.mutation.ClearNextPollAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BatchSubmissionUpdateOne) SetUpdatedAt(v time.Time) *BatchSubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (_u *BatchSubmissionUpdateOne) SetJob(v *ConversionJob) *BatchSubmissionUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the BatchSubmissionMutation object of the builder.
func (_u *BatchSubmissionUpdateOne) Mutation() *BatchSubmissionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (_u *BatchSubmissionUpdateOne) ClearJob() *BatchSubmissionUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the BatchSubmissionUpdate builder.
func (_u *BatchSubmissionUpdateOne) Where(ps ...predicate.BatchSubmission) *BatchSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchSubmissionUpdateOne) Select(field string, fields ...string) *BatchSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchSubmission entity.
func (_u *BatchSubmissionUpdateOne) Save(ctx context.Context) (*BatchSubmission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchSubmissionUpdateOne) SaveX(ctx context.Context) *BatchSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BatchSubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := batchsubmission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchSubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.BatchIndex(); ok {
		if err := batchsubmission.BatchIndexValidator(v); err != nil {
			return &ValidationError{Name: "batch_index", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.batch_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := batchsubmission.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.item_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := batchsubmission.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "BatchSubmission.state": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchSubmission.job"`)
	}
	return nil
}

func (_u *BatchSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *BatchSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchsubmission.Table, batchsubmission.Columns, sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchsubmission.FieldID)
		for _, f := range fields {
			if !batchsubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchsubmission.FieldID {
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
	if value, ok := _u.mutation.BatchIndex(); ok {
		_spec.SetField(batchsubmission.FieldBatchIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchIndex(); ok {
		_spec.AddField(batchsubmission.FieldBatchIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProviderBatchID(); ok {
		_spec.SetField(batchsubmission.FieldProviderBatchID, field.TypeString, value)
	}
	if _u.mutation.ProviderBatchIDCleared() {
		_spec.ClearField(batchsubmission.FieldProviderBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.InputFileID(); ok {
		_spec.SetField(batchsubmission.FieldInputFileID, field.TypeString, value)
	}
	if _u.mutation.InputFileIDCleared() {
		_spec.ClearField(batchsubmission.FieldInputFileID, field.TypeString)
	}
	if value, ok := _u.mutation.OutputFileID(); ok {
		_spec.SetField(batchsubmission.FieldOutputFileID, field.TypeString, value)
	}
	if _u.mutation.OutputFileIDCleared() {
		_spec.ClearField(batchsubmission.FieldOutputFileID, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(batchsubmission.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(batchsubmission.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(batchsubmission.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Supplementary(); ok {
		_spec.SetField(batchsubmission.FieldSupplementary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextPollAt(); ok {
		_spec.SetField(batchsubmission.FieldNextPollAt, field.TypeTime, value)
	}
	if _u.mutation.NextPollAtCleared() {
		_spec.ClearField(batchsubmission.FieldNextPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(batchsubmission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BatchSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/frame"
	"framescribe/gen/ent/pipelinestep"
	"framescribe/gen/ent/predicate"
	"framescribe/gen/ent/profile"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatchSubmission = "BatchSubmission"
	TypeConversionJob   = "ConversionJob"
	TypeFrame           = "Frame"
	TypePipelineStep    = "PipelineStep"
	TypeProfile         = "Profile"
)

// BatchSubmissionMutation represents an operation that mutates the BatchSubmission nodes in the graph.
type BatchSubmissionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	batch_index       *int
	addbatch_index    *int
	provider_batch_id *string
	input_file_id     *string
	output_file_id    *string
	item_count        *int
	additem_count     *int
	state             *string
	supplementary     *bool
	next_poll_at      *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	job               *uuid.UUID
	clearedjob        bool
	done              bool
	oldValue          func(context.Context) (*BatchSubmission, error)
	predicates        []predicate.BatchSubmission
}

var _ ent.Mutation = (*BatchSubmissionMutation)(nil)

// batchsubmissionOption allows management of the mutation configuration using functional options.
type batchsubmissionOption func(*BatchSubmissionMutation)

// newBatchSubmissionMutation creates new mutation for the BatchSubmission entity.
func newBatchSubmissionMutation(c config, op Op, opts ...batchsubmissionOption) *BatchSubmissionMutation {
	m := &BatchSubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchSubmissionID sets the ID field of the mutation.
func withBatchSubmissionID(id uuid.UUID) batchsubmissionOption {
	return func(m *BatchSubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchSubmission
		)
		m.oldValue = func(ctx context.Context) (*BatchSubmission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchSubmission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchSubmission sets the old BatchSubmission of the mutation.
func withBatchSubmission(node *BatchSubmission) batchsubmissionOption {
	return func(m *BatchSubmissionMutation) {
		m.oldValue = func(context.Context) (*BatchSubmission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchSubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchSubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchSubmission entities.
func (m *BatchSubmissionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchSubmissionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchSubmissionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchSubmission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *BatchSubmissionMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *BatchSubmissionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *BatchSubmissionMutation) ResetJobID() {
	m.job = nil
}

// SetBatchIndex sets the "batch_index" field.
func (m *BatchSubmissionMutation) SetBatchIndex(i int) {
	m.batch_index = &i
	m.addbatch_index = nil
}

// BatchIndex returns the value of the "batch_index" field in the mutation.
func (m *BatchSubmissionMutation) BatchIndex() (r int, exists bool) {
	v := m.batch_index
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchIndex returns the old "batch_index" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldBatchIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchIndex: %w", err)
	}
	return oldValue.BatchIndex, nil
}

// AddBatchIndex adds i to the "batch_index" field.
func (m *BatchSubmissionMutation) AddBatchIndex(i int) {
	if m.addbatch_index != nil {
		*m.addbatch_index += i
	} else {
		m.addbatch_index = &i
	}
}

// AddedBatchIndex returns the value that was added to the "batch_index" field in this mutation.
func (m *BatchSubmissionMutation) AddedBatchIndex() (r int, exists bool) {
	v := m.addbatch_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchIndex resets all changes to the "batch_index" field.
func (m *BatchSubmissionMutation) ResetBatchIndex() {
	m.batch_index = nil
	m.addbatch_index = nil
}

// SetProviderBatchID sets the "provider_batch_id" field.
func (m *BatchSubmissionMutation) SetProviderBatchID(s string) {
	m.provider_batch_id = &s
}

// ProviderBatchID returns the value of the "provider_batch_id" field in the mutation.
func (m *BatchSubmissionMutation) ProviderBatchID() (r string, exists bool) {
	v := m.provider_batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderBatchID returns the old "provider_batch_id" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldProviderBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderBatchID: %w", err)
	}
	return oldValue.ProviderBatchID, nil
}

// ClearProviderBatchID clears the value of the "provider_batch_id" field.
func (m *BatchSubmissionMutation) ClearProviderBatchID() {
	m.provider_batch_id = nil
	m.clearedFields[batchsubmission.FieldProviderBatchID] = struct{}{}
}

// ProviderBatchIDCleared returns if the "provider_batch_id" field was cleared in this mutation.
func (m *BatchSubmissionMutation) ProviderBatchIDCleared() bool {
	_, ok := m.clearedFields[batchsubmission.FieldProviderBatchID]
	return ok
}

// ResetProviderBatchID resets all changes to the "provider_batch_id" field.
func (m *BatchSubmissionMutation) ResetProviderBatchID() {
	m.provider_batch_id = nil
	delete(m.clearedFields, batchsubmission.FieldProviderBatchID)
}

// SetInputFileID sets the "input_file_id" field.
func (m *BatchSubmissionMutation) SetInputFileID(s string) {
	m.input_file_id = &s
}

// InputFileID returns the value of the "input_file_id" field in the mutation.
func (m *BatchSubmissionMutation) InputFileID() (r string, exists bool) {
	v := m.input_file_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInputFileID returns the old "input_file_id" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldInputFileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputFileID: %w", err)
	}
	return oldValue.InputFileID, nil
}

// ClearInputFileID clears the value of the "input_file_id" field.
func (m *BatchSubmissionMutation) ClearInputFileID() {
	m.input_file_id = nil
	m.clearedFields[batchsubmission.FieldInputFileID] = struct{}{}
}

// InputFileIDCleared returns if the "input_file_id" field was cleared in this mutation.
func (m *BatchSubmissionMutation) InputFileIDCleared() bool {
	_, ok := m.clearedFields[batchsubmission.FieldInputFileID]
	return ok
}

// ResetInputFileID resets all changes to the "input_file_id" field.
func (m *BatchSubmissionMutation) ResetInputFileID() {
	m.input_file_id = nil
	delete(m.clearedFields, batchsubmission.FieldInputFileID)
}

// SetOutputFileID sets the "output_file_id" field.
func (m *BatchSubmissionMutation) SetOutputFileID(s string) {
	m.output_file_id = &s
}

// OutputFileID returns the value of the "output_file_id" field in the mutation.
func (m *BatchSubmissionMutation) OutputFileID() (r string, exists bool) {
	v := m.output_file_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputFileID returns the old "output_file_id" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldOutputFileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputFileID: %w", err)
	}
	return oldValue.OutputFileID, nil
}

// ClearOutputFileID clears the value of the "output_file_id" field.
func (m *BatchSubmissionMutation) ClearOutputFileID() {
	m.output_file_id = nil
	m.clearedFields[batchsubmission.FieldOutputFileID] = struct{}{}
}

// OutputFileIDCleared returns if the "output_file_id" field was cleared in this mutation.
func (m *BatchSubmissionMutation) OutputFileIDCleared() bool {
	_, ok := m.clearedFields[batchsubmission.FieldOutputFileID]
	return ok
}

// ResetOutputFileID resets all changes to the "output_file_id" field.
func (m *BatchSubmissionMutation) ResetOutputFileID() {
	m.output_file_id = nil
	delete(m.clearedFields, batchsubmission.FieldOutputFileID)
}

// SetItemCount sets the "item_count" field.
func (m *BatchSubmissionMutation) SetItemCount(i int) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *BatchSubmissionMutation) ItemCount() (r int, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *BatchSubmissionMutation) AddItemCount(i int) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *BatchSubmissionMutation) AddedItemCount() (r int, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *BatchSubmissionMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
}

// SetState sets the "state" field.
func (m *BatchSubmissionMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *BatchSubmissionMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *BatchSubmissionMutation) ResetState() {
	m.state = nil
}

// SetSupplementary sets the "supplementary" field.
func (m *BatchSubmissionMutation) SetSupplementary(b bool) {
	m.supplementary = &b
}

// Supplementary returns the value of the "supplementary" field in the mutation.
func (m *BatchSubmissionMutation) Supplementary() (r bool, exists bool) {
	v := m.supplementary
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplementary returns the old "supplementary" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldSupplementary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplementary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplementary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplementary: %w", err)
	}
	return oldValue.Supplementary, nil
}

// ResetSupplementary resets all changes to the "supplementary" field.
func (m *BatchSubmissionMutation) ResetSupplementary() {
	m.supplementary = nil
}

// SetNextPollAt sets the "next_poll_at" field.
func (m *BatchSubmissionMutation) SetNextPollAt(t time.Time) {
	m.next_poll_at = &t
}

// NextPollAt returns the value of the "next_poll_at" field in the mutation.
func (m *BatchSubmissionMutation) NextPollAt() (r time.Time, exists bool) {
	v := m.next_poll_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextPollAt returns the old "next_poll_at" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldNextPollAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextPollAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextPollAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextPollAt: %w", err)
	}
	return oldValue.NextPollAt, nil
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (m *BatchSubmissionMutation) ClearNextPollAt() {
	m.next_poll_at = nil
	m.clearedFields[batchsubmission.FieldNextPollAt] = struct{}{}
}

// NextPollAtCleared returns if the "next_poll_at" field was cleared in this mutation.
func (m *BatchSubmissionMutation) NextPollAtCleared() bool {
	_, ok := m.clearedFields[batchsubmission.FieldNextPollAt]
	return ok
}

// ResetNextPollAt resets all changes to the "next_poll_at" field.
func (m *BatchSubmissionMutation) ResetNextPollAt() {
	m.next_poll_at = nil
	delete(m.clearedFields, batchsubmission.FieldNextPollAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchSubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchSubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchSubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BatchSubmissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BatchSubmissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BatchSubmission entity.
// If the BatchSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchSubmissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BatchSubmissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (m *BatchSubmissionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[batchsubmission.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ConversionJob entity was cleared.
func (m *BatchSubmissionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *BatchSubmissionMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *BatchSubmissionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the BatchSubmissionMutation builder.
func (m *BatchSubmissionMutation) Where(ps ...predicate.BatchSubmission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchSubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchSubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchSubmission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchSubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchSubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchSubmission).
func (m *BatchSubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchSubmissionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.job != nil {
		fields = append(fields, batchsubmission.FieldJobID)
	}
	if m.batch_index != nil {
		fields = append(fields, batchsubmission.FieldBatchIndex)
	}
	if m.provider_batch_id != nil {
		fields = append(fields, batchsubmission.FieldProviderBatchID)
	}
	if m.input_file_id != nil {
		fields = append(fields, batchsubmission.FieldInputFileID)
	}
	if m.output_file_id != nil {
		fields = append(fields, batchsubmission.FieldOutputFileID)
	}
	if m.item_count != nil {
		fields = append(fields, batchsubmission.FieldItemCount)
	}
	if m.state != nil {
		fields = append(fields, batchsubmission.FieldState)
	}
	if m.supplementary != nil {
		fields = append(fields, batchsubmission.FieldSupplementary)
	}
	if m.next_poll_at != nil {
		fields = append(fields, batchsubmission.FieldNextPollAt)
	}
	if m.created_at != nil {
		fields = append(fields, batchsubmission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, batchsubmission.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchSubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchsubmission.FieldJobID:
		return m.JobID()
	case batchsubmission.FieldBatchIndex:
		return m.BatchIndex()
	case batchsubmission.FieldProviderBatchID:
		return m.ProviderBatchID()
	case batchsubmission.FieldInputFileID:
		return m.InputFileID()
	case batchsubmission.FieldOutputFileID:
		return m.OutputFileID()
	case batchsubmission.FieldItemCount:
		return m.ItemCount()
	case batchsubmission.FieldState:
		return m.State()
	case batchsubmission.FieldSupplementary:
		return m.Supplementary()
	case batchsubmission.FieldNextPollAt:
		return m.NextPollAt()
	case batchsubmission.FieldCreatedAt:
		return m.CreatedAt()
	case batchsubmission.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchSubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchsubmission.FieldJobID:
		return m.OldJobID(ctx)
	case batchsubmission.FieldBatchIndex:
		return m.OldBatchIndex(ctx)
	case batchsubmission.FieldProviderBatchID:
		return m.OldProviderBatchID(ctx)
	case batchsubmission.FieldInputFileID:
		return m.OldInputFileID(ctx)
	case batchsubmission.FieldOutputFileID:
		return m.OldOutputFileID(ctx)
	case batchsubmission.FieldItemCount:
		return m.OldItemCount(ctx)
	case batchsubmission.FieldState:
		return m.OldState(ctx)
	case batchsubmission.FieldSupplementary:
		return m.OldSupplementary(ctx)
	case batchsubmission.FieldNextPollAt:
		return m.OldNextPollAt(ctx)
	case batchsubmission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batchsubmission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BatchSubmission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchSubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchsubmission.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case batchsubmission.FieldBatchIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchIndex(v)
		return nil
	case batchsubmission.FieldProviderBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderBatchID(v)
		return nil
	case batchsubmission.FieldInputFileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputFileID(v)
		return nil
	case batchsubmission.FieldOutputFileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputFileID(v)
		return nil
	case batchsubmission.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case batchsubmission.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case batchsubmission.FieldSupplementary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplementary(v)
		return nil
	case batchsubmission.FieldNextPollAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextPollAt(v)
		return nil
	case batchsubmission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batchsubmission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BatchSubmission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchSubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addbatch_index != nil {
		fields = append(fields, batchsubmission.FieldBatchIndex)
	}
	if m.additem_count != nil {
		fields = append(fields, batchsubmission.FieldItemCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchSubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchsubmission.FieldBatchIndex:
		return m.AddedBatchIndex()
	case batchsubmission.FieldItemCount:
		return m.AddedItemCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchSubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchsubmission.FieldBatchIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchIndex(v)
		return nil
	case batchsubmission.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	}
	return fmt.Errorf("unknown BatchSubmission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchSubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchsubmission.FieldProviderBatchID) {
		fields = append(fields, batchsubmission.FieldProviderBatchID)
	}
	if m.FieldCleared(batchsubmission.FieldInputFileID) {
		fields = append(fields, batchsubmission.FieldInputFileID)
	}
	if m.FieldCleared(batchsubmission.FieldOutputFileID) {
		fields = append(fields, batchsubmission.FieldOutputFileID)
	}
	if m.FieldCleared(batchsubmission.FieldNextPollAt) {
		fields = append(fields, batchsubmission.FieldNextPollAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchSubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchSubmissionMutation) ClearField(name string) error {
	switch name {
	case batchsubmission.FieldProviderBatchID:
		m.ClearProviderBatchID()
		return nil
	case batchsubmission.FieldInputFileID:
		m.ClearInputFileID()
		return nil
	case batchsubmission.FieldOutputFileID:
		m.ClearOutputFileID()
		return nil
	case batchsubmission.FieldNextPollAt:
		m.ClearNextPollAt()
		return nil
	}
	return fmt.Errorf("unknown BatchSubmission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchSubmissionMutation) ResetField(name string) error {
	switch name {
	case batchsubmission.FieldJobID:
		m.ResetJobID()
		return nil
	case batchsubmission.FieldBatchIndex:
		m.ResetBatchIndex()
		return nil
	case batchsubmission.FieldProviderBatchID:
		m.ResetProviderBatchID()
		return nil
	case batchsubmission.FieldInputFileID:
		m.ResetInputFileID()
		return nil
	case batchsubmission.FieldOutputFileID:
		m.ResetOutputFileID()
		return nil
	case batchsubmission.FieldItemCount:
		m.ResetItemCount()
		return nil
	case batchsubmission.FieldState:
		m.ResetState()
		return nil
	case batchsubmission.FieldSupplementary:
		m.ResetSupplementary()
		return nil
	case batchsubmission.FieldNextPollAt:
		m.ResetNextPollAt()
		return nil
	case batchsubmission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batchsubmission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchSubmission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchSubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, batchsubmission.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchSubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchsubmission.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchSubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchSubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchSubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, batchsubmission.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchSubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case batchsubmission.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchSubmissionMutation) ClearEdge(name string) error {
	switch name {
	case batchsubmission.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown BatchSubmission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchSubmissionMutation) ResetEdge(name string) error {
	switch name {
	case batchsubmission.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown BatchSubmission edge %s", name)
}

// ConversionJobMutation represents an operation that mutates the ConversionJob nodes in the graph.
type ConversionJobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	parent_job_id          *uuid.UUID
	kind                   *string
	status                 *string
	step                   *string
	error_message          *string
	archive_key            *string
	filtered_archive_key   *string
	thumbnail_key          *string
	text_doc_key           *string
	rich_doc_key           *string
	text_doc_size          *int64
	addtext_doc_size       *int64
	rich_doc_size          *int64
	addrich_doc_size       *int64
	total_images           *int
	addtotal_images        *int
	preprocessed_images    *int
	addpreprocessed_images *int
	submitted_images       *int
	addsubmitted_images    *int
	total_batches          *int
	addtotal_batches       *int
	completed_batches      *int
	addcompleted_batches   *int
	batch_size             *int
	addbatch_size          *int
	current_batch_id       *string
	current_input_file_id  *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	profile                *uuid.UUID
	clearedprofile         bool
	frames                 map[uuid.UUID]struct{}
	removedframes          map[uuid.UUID]struct{}
	clearedframes          bool
	batches                map[uuid.UUID]struct{}
	removedbatches         map[uuid.UUID]struct{}
	clearedbatches         bool
	steps                  map[uuid.UUID]struct{}
	removedsteps           map[uuid.UUID]struct{}
	clearedsteps           bool
	done                   bool
	oldValue               func(context.Context) (*ConversionJob, error)
	predicates             []predicate.ConversionJob
}

var _ ent.Mutation = (*ConversionJobMutation)(nil)

// conversionjobOption allows management of the mutation configuration using functional options.
type conversionjobOption func(*ConversionJobMutation)

// newConversionJobMutation creates new mutation for the ConversionJob entity.
func newConversionJobMutation(c config, op Op, opts ...conversionjobOption) *ConversionJobMutation {
	m := &ConversionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeConversionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversionJobID sets the ID field of the mutation.
func withConversionJobID(id uuid.UUID) conversionjobOption {
	return func(m *ConversionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversionJob
		)
		m.oldValue = func(ctx context.Context) (*ConversionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversionJob sets the old ConversionJob of the mutation.
func withConversionJob(node *ConversionJob) conversionjobOption {
	return func(m *ConversionJobMutation) {
		m.oldValue = func(context.Context) (*ConversionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversionJob entities.
func (m *ConversionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *ConversionJobMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ConversionJobMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ConversionJobMutation) ResetProfileID() {
	m.profile = nil
}

// SetParentJobID sets the "parent_job_id" field.
func (m *ConversionJobMutation) SetParentJobID(u uuid.UUID) {
	m.parent_job_id = &u
}

// ParentJobID returns the value of the "parent_job_id" field in the mutation.
func (m *ConversionJobMutation) ParentJobID() (r uuid.UUID, exists bool) {
	v := m.parent_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentJobID returns the old "parent_job_id" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldParentJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentJobID: %w", err)
	}
	return oldValue.ParentJobID, nil
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (m *ConversionJobMutation) ClearParentJobID() {
	m.parent_job_id = nil
	m.clearedFields[conversionjob.FieldParentJobID] = struct{}{}
}

// ParentJobIDCleared returns if the "parent_job_id" field was cleared in this mutation.
func (m *ConversionJobMutation) ParentJobIDCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldParentJobID]
	return ok
}

// ResetParentJobID resets all changes to the "parent_job_id" field.
func (m *ConversionJobMutation) ResetParentJobID() {
	m.parent_job_id = nil
	delete(m.clearedFields, conversionjob.FieldParentJobID)
}

// SetKind sets the "kind" field.
func (m *ConversionJobMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ConversionJobMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ConversionJobMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *ConversionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversionJobMutation) ResetStatus() {
	m.status = nil
}

// SetStep sets the "step" field.
func (m *ConversionJobMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *ConversionJobMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ResetStep resets all changes to the "step" field.
func (m *ConversionJobMutation) ResetStep() {
	m.step = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ConversionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ConversionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ConversionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[conversionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ConversionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ConversionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, conversionjob.FieldErrorMessage)
}

// SetArchiveKey sets the "archive_key" field.
func (m *ConversionJobMutation) SetArchiveKey(s string) {
	m.archive_key = &s
}

// ArchiveKey returns the value of the "archive_key" field in the mutation.
func (m *ConversionJobMutation) ArchiveKey() (r string, exists bool) {
	v := m.archive_key
	if v == nil {
		return
	}
	return *v, true
}

// OldArchiveKey returns the old "archive_key" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldArchiveKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchiveKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchiveKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchiveKey: %w", err)
	}
	return oldValue.ArchiveKey, nil
}

// ResetArchiveKey resets all changes to the "archive_key" field.
func (m *ConversionJobMutation) ResetArchiveKey() {
	m.archive_key = nil
}

// SetFilteredArchiveKey sets the "filtered_archive_key" field.
func (m *ConversionJobMutation) SetFilteredArchiveKey(s string) {
	m.filtered_archive_key = &s
}

// FilteredArchiveKey returns the value of the "filtered_archive_key" field in the mutation.
func (m *ConversionJobMutation) FilteredArchiveKey() (r string, exists bool) {
	v := m.filtered_archive_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFilteredArchiveKey returns the old "filtered_archive_key" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldFilteredArchiveKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilteredArchiveKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilteredArchiveKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilteredArchiveKey: %w", err)
	}
	return oldValue.FilteredArchiveKey, nil
}

// ClearFilteredArchiveKey clears the value of the "filtered_archive_key" field.
func (m *ConversionJobMutation) ClearFilteredArchiveKey() {
	m.filtered_archive_key = nil
	m.clearedFields[conversionjob.FieldFilteredArchiveKey] = struct{}{}
}

// FilteredArchiveKeyCleared returns if the "filtered_archive_key" field was cleared in this mutation.
func (m *ConversionJobMutation) FilteredArchiveKeyCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldFilteredArchiveKey]
	return ok
}

// ResetFilteredArchiveKey resets all changes to the "filtered_archive_key" field.
func (m *ConversionJobMutation) ResetFilteredArchiveKey() {
	m.filtered_archive_key = nil
	delete(m.clearedFields, conversionjob.FieldFilteredArchiveKey)
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (m *ConversionJobMutation) SetThumbnailKey(s string) {
	m.thumbnail_key = &s
}

// ThumbnailKey returns the value of the "thumbnail_key" field in the mutation.
func (m *ConversionJobMutation) ThumbnailKey() (r string, exists bool) {
	v := m.thumbnail_key
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailKey returns the old "thumbnail_key" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldThumbnailKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailKey: %w", err)
	}
	return oldValue.ThumbnailKey, nil
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (m *ConversionJobMutation) ClearThumbnailKey() {
	m.thumbnail_key = nil
	m.clearedFields[conversionjob.FieldThumbnailKey] = struct{}{}
}

// ThumbnailKeyCleared returns if the "thumbnail_key" field was cleared in this mutation.
func (m *ConversionJobMutation) ThumbnailKeyCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldThumbnailKey]
	return ok
}

// ResetThumbnailKey resets all changes to the "thumbnail_key" field.
func (m *ConversionJobMutation) ResetThumbnailKey() {
	m.thumbnail_key = nil
	delete(m.clearedFields, conversionjob.FieldThumbnailKey)
}

// SetTextDocKey sets the "text_doc_key" field.
func (m *ConversionJobMutation) SetTextDocKey(s string) {
	m.text_doc_key = &s
}

// TextDocKey returns the value of the "text_doc_key" field in the mutation.
func (m *ConversionJobMutation) TextDocKey() (r string, exists bool) {
	v := m.text_doc_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTextDocKey returns the old "text_doc_key" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldTextDocKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextDocKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextDocKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextDocKey: %w", err)
	}
	return oldValue.TextDocKey, nil
}

// ClearTextDocKey clears the value of the "text_doc_key" field.
func (m *ConversionJobMutation) ClearTextDocKey() {
	m.text_doc_key = nil
	m.clearedFields[conversionjob.FieldTextDocKey] = struct{}{}
}

// TextDocKeyCleared returns if the "text_doc_key" field was cleared in this mutation.
func (m *ConversionJobMutation) TextDocKeyCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldTextDocKey]
	return ok
}

// ResetTextDocKey resets all changes to the "text_doc_key" field.
func (m *ConversionJobMutation) ResetTextDocKey() {
	m.text_doc_key = nil
	delete(m.clearedFields, conversionjob.FieldTextDocKey)
}

// SetRichDocKey sets the "rich_doc_key" field.
func (m *ConversionJobMutation) SetRichDocKey(s string) {
	m.rich_doc_key = &s
}

// RichDocKey returns the value of the "rich_doc_key" field in the mutation.
func (m *ConversionJobMutation) RichDocKey() (r string, exists bool) {
	v := m.rich_doc_key
	if v == nil {
		return
	}
	return *v, true
}

// OldRichDocKey returns the old "rich_doc_key" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldRichDocKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRichDocKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRichDocKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRichDocKey: %w", err)
	}
	return oldValue.RichDocKey, nil
}

// ClearRichDocKey clears the value of the "rich_doc_key" field.
func (m *ConversionJobMutation) ClearRichDocKey() {
	m.rich_doc_key = nil
	m.clearedFields[conversionjob.FieldRichDocKey] = struct{}{}
}

// RichDocKeyCleared returns if the "rich_doc_key" field was cleared in this mutation.
func (m *ConversionJobMutation) RichDocKeyCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldRichDocKey]
	return ok
}

// ResetRichDocKey resets all changes to the "rich_doc_key" field.
func (m *ConversionJobMutation) ResetRichDocKey() {
	m.rich_doc_key = nil
	delete(m.clearedFields, conversionjob.FieldRichDocKey)
}

// SetTextDocSize sets the "text_doc_size" field.
func (m *ConversionJobMutation) SetTextDocSize(i int64) {
	m.text_doc_size = &i
	m.addtext_doc_size = nil
}

// TextDocSize returns the value of the "text_doc_size" field in the mutation.
func (m *ConversionJobMutation) TextDocSize() (r int64, exists bool) {
	v := m.text_doc_size
	if v == nil {
		return
	}
	return *v, true
}

// OldTextDocSize returns the old "text_doc_size" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldTextDocSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextDocSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextDocSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextDocSize: %w", err)
	}
	return oldValue.TextDocSize, nil
}

// AddTextDocSize adds i to the "text_doc_size" field.
func (m *ConversionJobMutation) AddTextDocSize(i int64) {
	if m.addtext_doc_size != nil {
		*m.addtext_doc_size += i
	} else {
		m.addtext_doc_size = &i
	}
}

// AddedTextDocSize returns the value that was added to the "text_doc_size" field in this mutation.
func (m *ConversionJobMutation) AddedTextDocSize() (r int64, exists bool) {
	v := m.addtext_doc_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetTextDocSize resets all changes to the "text_doc_size" field.
func (m *ConversionJobMutation) ResetTextDocSize() {
	m.text_doc_size = nil
	m.addtext_doc_size = nil
}

// SetRichDocSize sets the "rich_doc_size" field.
func (m *ConversionJobMutation) SetRichDocSize(i int64) {
	m.rich_doc_size = &i
	m.addrich_doc_size = nil
}

// RichDocSize returns the value of the "rich_doc_size" field in the mutation.
func (m *ConversionJobMutation) RichDocSize() (r int64, exists bool) {
	v := m.rich_doc_size
	if v == nil {
		return
	}
	return *v, true
}

// OldRichDocSize returns the old "rich_doc_size" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldRichDocSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRichDocSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRichDocSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRichDocSize: %w", err)
	}
	return oldValue.RichDocSize, nil
}

// AddRichDocSize adds i to the "rich_doc_size" field.
func (m *ConversionJobMutation) AddRichDocSize(i int64) {
	if m.addrich_doc_size != nil {
		*m.addrich_doc_size += i
	} else {
		m.addrich_doc_size = &i
	}
}

// AddedRichDocSize returns the value that was added to the "rich_doc_size" field in this mutation.
func (m *ConversionJobMutation) AddedRichDocSize() (r int64, exists bool) {
	v := m.addrich_doc_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetRichDocSize resets all changes to the "rich_doc_size" field.
func (m *ConversionJobMutation) ResetRichDocSize() {
	m.rich_doc_size = nil
	m.addrich_doc_size = nil
}

// SetTotalImages sets the "total_images" field.
func (m *ConversionJobMutation) SetTotalImages(i int) {
	m.total_images = &i
	m.addtotal_images = nil
}

// TotalImages returns the value of the "total_images" field in the mutation.
func (m *ConversionJobMutation) TotalImages() (r int, exists bool) {
	v := m.total_images
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalImages returns the old "total_images" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldTotalImages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalImages: %w", err)
	}
	return oldValue.TotalImages, nil
}

// AddTotalImages adds i to the "total_images" field.
func (m *ConversionJobMutation) AddTotalImages(i int) {
	if m.addtotal_images != nil {
		*m.addtotal_images += i
	} else {
		m.addtotal_images = &i
	}
}

// AddedTotalImages returns the value that was added to the "total_images" field in this mutation.
func (m *ConversionJobMutation) AddedTotalImages() (r int, exists bool) {
	v := m.addtotal_images
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalImages resets all changes to the "total_images" field.
func (m *ConversionJobMutation) ResetTotalImages() {
	m.total_images = nil
	m.addtotal_images = nil
}

// SetPreprocessedImages sets the "preprocessed_images" field.
func (m *ConversionJobMutation) SetPreprocessedImages(i int) {
	m.preprocessed_images = &i
	m.addpreprocessed_images = nil
}

// PreprocessedImages returns the value of the "preprocessed_images" field in the mutation.
func (m *ConversionJobMutation) PreprocessedImages() (r int, exists bool) {
	v := m.preprocessed_images
	if v == nil {
		return
	}
	return *v, true
}

// OldPreprocessedImages returns the old "preprocessed_images" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldPreprocessedImages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreprocessedImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreprocessedImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreprocessedImages: %w", err)
	}
	return oldValue.PreprocessedImages, nil
}

// AddPreprocessedImages adds i to the "preprocessed_images" field.
func (m *ConversionJobMutation) AddPreprocessedImages(i int) {
	if m.addpreprocessed_images != nil {
		*m.addpreprocessed_images += i
	} else {
		m.addpreprocessed_images = &i
	}
}

// AddedPreprocessedImages returns the value that was added to the "preprocessed_images" field in this mutation.
func (m *ConversionJobMutation) AddedPreprocessedImages() (r int, exists bool) {
	v := m.addpreprocessed_images
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreprocessedImages resets all changes to the "preprocessed_images" field.
func (m *ConversionJobMutation) ResetPreprocessedImages() {
	m.preprocessed_images = nil
	m.addpreprocessed_images = nil
}

// SetSubmittedImages sets the "submitted_images" field.
func (m *ConversionJobMutation) SetSubmittedImages(i int) {
	m.submitted_images = &i
	m.addsubmitted_images = nil
}

// SubmittedImages returns the value of the "submitted_images" field in the mutation.
func (m *ConversionJobMutation) SubmittedImages() (r int, exists bool) {
	v := m.submitted_images
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedImages returns the old "submitted_images" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldSubmittedImages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedImages: %w", err)
	}
	return oldValue.SubmittedImages, nil
}

// AddSubmittedImages adds i to the "submitted_images" field.
func (m *ConversionJobMutation) AddSubmittedImages(i int) {
	if m.addsubmitted_images != nil {
		*m.addsubmitted_images += i
	} else {
		m.addsubmitted_images = &i
	}
}

// AddedSubmittedImages returns the value that was added to the "submitted_images" field in this mutation.
func (m *ConversionJobMutation) AddedSubmittedImages() (r int, exists bool) {
	v := m.addsubmitted_images
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubmittedImages resets all changes to the "submitted_images" field.
func (m *ConversionJobMutation) ResetSubmittedImages() {
	m.submitted_images = nil
	m.addsubmitted_images = nil
}

// SetTotalBatches sets the "total_batches" field.
func (m *ConversionJobMutation) SetTotalBatches(i int) {
	m.total_batches = &i
	m.addtotal_batches = nil
}

// TotalBatches returns the value of the "total_batches" field in the mutation.
func (m *ConversionJobMutation) TotalBatches() (r int, exists bool) {
	v := m.total_batches
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalBatches returns the old "total_batches" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldTotalBatches(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalBatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalBatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalBatches: %w", err)
	}
	return oldValue.TotalBatches, nil
}

// AddTotalBatches adds i to the "total_batches" field.
func (m *ConversionJobMutation) AddTotalBatches(i int) {
	if m.addtotal_batches != nil {
		*m.addtotal_batches += i
	} else {
		m.addtotal_batches = &i
	}
}

// AddedTotalBatches returns the value that was added to the "total_batches" field in this mutation.
func (m *ConversionJobMutation) AddedTotalBatches() (r int, exists bool) {
	v := m.addtotal_batches
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalBatches resets all changes to the "total_batches" field.
func (m *ConversionJobMutation) ResetTotalBatches() {
	m.total_batches = nil
	m.addtotal_batches = nil
}

// SetCompletedBatches sets the "completed_batches" field.
func (m *ConversionJobMutation) SetCompletedBatches(i int) {
	m.completed_batches = &i
	m.addcompleted_batches = nil
}

// CompletedBatches returns the value of the "completed_batches" field in the mutation.
func (m *ConversionJobMutation) CompletedBatches() (r int, exists bool) {
	v := m.completed_batches
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedBatches returns the old "completed_batches" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldCompletedBatches(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedBatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedBatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedBatches: %w", err)
	}
	return oldValue.CompletedBatches, nil
}

// AddCompletedBatches adds i to the "completed_batches" field.
func (m *ConversionJobMutation) AddCompletedBatches(i int) {
	if m.addcompleted_batches != nil {
		*m.addcompleted_batches += i
	} else {
		m.addcompleted_batches = &i
	}
}

// AddedCompletedBatches returns the value that was added to the "completed_batches" field in this mutation.
func (m *ConversionJobMutation) AddedCompletedBatches() (r int, exists bool) {
	v := m.addcompleted_batches
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedBatches resets all changes to the "completed_batches" field.
func (m *ConversionJobMutation) ResetCompletedBatches() {
	m.completed_batches = nil
	m.addcompleted_batches = nil
}

// SetBatchSize sets the "batch_size" field.
func (m *ConversionJobMutation) SetBatchSize(i int) {
	m.batch_size = &i
	m.addbatch_size = nil
}

// BatchSize returns the value of the "batch_size" field in the mutation.
func (m *ConversionJobMutation) BatchSize() (r int, exists bool) {
	v := m.batch_size
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchSize returns the old "batch_size" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldBatchSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchSize: %w", err)
	}
	return oldValue.BatchSize, nil
}

// AddBatchSize adds i to the "batch_size" field.
func (m *ConversionJobMutation) AddBatchSize(i int) {
	if m.addbatch_size != nil {
		*m.addbatch_size += i
	} else {
		m.addbatch_size = &i
	}
}

// AddedBatchSize returns the value that was added to the "batch_size" field in this mutation.
func (m *ConversionJobMutation) AddedBatchSize() (r int, exists bool) {
	v := m.addbatch_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchSize resets all changes to the "batch_size" field.
func (m *ConversionJobMutation) ResetBatchSize() {
	m.batch_size = nil
	m.addbatch_size = nil
}

// SetCurrentBatchID sets the "current_batch_id" field.
func (m *ConversionJobMutation) SetCurrentBatchID(s string) {
	m.current_batch_id = &s
}

// CurrentBatchID returns the value of the "current_batch_id" field in the mutation.
func (m *ConversionJobMutation) CurrentBatchID() (r string, exists bool) {
	v := m.current_batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentBatchID returns the old "current_batch_id" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldCurrentBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentBatchID: %w", err)
	}
	return oldValue.CurrentBatchID, nil
}

// ClearCurrentBatchID clears the value of the "current_batch_id" field.
func (m *ConversionJobMutation) ClearCurrentBatchID() {
	m.current_batch_id = nil
	m.clearedFields[conversionjob.FieldCurrentBatchID] = struct{}{}
}

// CurrentBatchIDCleared returns if the "current_batch_id" field was cleared in this mutation.
func (m *ConversionJobMutation) CurrentBatchIDCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldCurrentBatchID]
	return ok
}

// ResetCurrentBatchID resets all changes to the "current_batch_id" field.
func (m *ConversionJobMutation) ResetCurrentBatchID() {
	m.current_batch_id = nil
	delete(m.clearedFields, conversionjob.FieldCurrentBatchID)
}

// SetCurrentInputFileID sets the "current_input_file_id" field.
func (m *ConversionJobMutation) SetCurrentInputFileID(s string) {
	m.current_input_file_id = &s
}

// CurrentInputFileID returns the value of the "current_input_file_id" field in the mutation.
func (m *ConversionJobMutation) CurrentInputFileID() (r string, exists bool) {
	v := m.current_input_file_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentInputFileID returns the old "current_input_file_id" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldCurrentInputFileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentInputFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentInputFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentInputFileID: %w", err)
	}
	return oldValue.CurrentInputFileID, nil
}

// ClearCurrentInputFileID clears the value of the "current_input_file_id" field.
func (m *ConversionJobMutation) ClearCurrentInputFileID() {
	m.current_input_file_id = nil
	m.clearedFields[conversionjob.FieldCurrentInputFileID] = struct{}{}
}

// CurrentInputFileIDCleared returns if the "current_input_file_id" field was cleared in this mutation.
func (m *ConversionJobMutation) CurrentInputFileIDCleared() bool {
	_, ok := m.clearedFields[conversionjob.FieldCurrentInputFileID]
	return ok
}

// ResetCurrentInputFileID resets all changes to the "current_input_file_id" field.
func (m *ConversionJobMutation) ResetCurrentInputFileID() {
	m.current_input_file_id = nil
	delete(m.clearedFields, conversionjob.FieldCurrentInputFileID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversionJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversionJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConversionJob entity.
// If the ConversionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversionJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *ConversionJobMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[conversionjob.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *ConversionJobMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *ConversionJobMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *ConversionJobMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddFrameIDs adds the "frames" edge to the Frame entity by ids.
func (m *ConversionJobMutation) AddFrameIDs(ids ...uuid.UUID) {
	if m.frames == nil {
		m.frames = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.frames[ids[i]] = struct{}{}
	}
}

// ClearFrames clears the "frames" edge to the Frame entity.
func (m *ConversionJobMutation) ClearFrames() {
	m.clearedframes = true
}

// FramesCleared reports if the "frames" edge to the Frame entity was cleared.
func (m *ConversionJobMutation) FramesCleared() bool {
	return m.clearedframes
}

// RemoveFrameIDs removes the "frames" edge to the Frame entity by IDs.
func (m *ConversionJobMutation) RemoveFrameIDs(ids ...uuid.UUID) {
	if m.removedframes == nil {
		m.removedframes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.frames, ids[i])
		m.removedframes[ids[i]] = struct{}{}
	}
}

// RemovedFrames returns the removed IDs of the "frames" edge to the Frame entity.
func (m *ConversionJobMutation) RemovedFramesIDs() (ids []uuid.UUID) {
	for id := range m.removedframes {
		ids = append(ids, id)
	}
	return
}

// FramesIDs returns the "frames" edge IDs in the mutation.
func (m *ConversionJobMutation) FramesIDs() (ids []uuid.UUID) {
	for id := range m.frames {
		ids = append(ids, id)
	}
	return
}

// ResetFrames resets all changes to the "frames" edge.
func (m *ConversionJobMutation) ResetFrames() {
	m.frames = nil
	m.clearedframes = false
	m.removedframes = nil
}

// AddBatchIDs adds the "batches" edge to the BatchSubmission entity by ids.
func (m *ConversionJobMutation) AddBatchIDs(ids ...uuid.UUID) {
	if m.batches == nil {
		m.batches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.batches[ids[i]] = struct{}{}
	}
}

// ClearBatches clears the "batches" edge to the BatchSubmission entity.
func (m *ConversionJobMutation) ClearBatches() {
	m.clearedbatches = true
}

// BatchesCleared reports if the "batches" edge to the BatchSubmission entity was cleared.
func (m *ConversionJobMutation) BatchesCleared() bool {
	return m.clearedbatches
}

// RemoveBatchIDs removes the "batches" edge to the BatchSubmission entity by IDs.
func (m *ConversionJobMutation) RemoveBatchIDs(ids ...uuid.UUID) {
	if m.removedbatches == nil {
		m.removedbatches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.batches, ids[i])
		m.removedbatches[ids[i]] = struct{}{}
	}
}

// RemovedBatches returns the removed IDs of the "batches" edge to the BatchSubmission entity.
func (m *ConversionJobMutation) RemovedBatchesIDs() (ids []uuid.UUID) {
	for id := range m.removedbatches {
		ids = append(ids, id)
	}
	return
}

// BatchesIDs returns the "batches" edge IDs in the mutation.
func (m *ConversionJobMutation) BatchesIDs() (ids []uuid.UUID) {
	for id := range m.batches {
		ids = append(ids, id)
	}
	return
}

// ResetBatches resets all changes to the "batches" edge.
func (m *ConversionJobMutation) ResetBatches() {
	m.batches = nil
	m.clearedbatches = false
	m.removedbatches = nil
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by ids.
func (m *ConversionJobMutation) AddStepIDs(ids ...uuid.UUID) {
	if m.steps == nil {
		m.steps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the PipelineStep entity.
func (m *ConversionJobMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the PipelineStep entity was cleared.
func (m *ConversionJobMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the PipelineStep entity by IDs.
func (m *ConversionJobMutation) RemoveStepIDs(ids ...uuid.UUID) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the PipelineStep entity.
func (m *ConversionJobMutation) RemovedStepsIDs() (ids []uuid.UUID) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *ConversionJobMutation) StepsIDs() (ids []uuid.UUID) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *ConversionJobMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the ConversionJobMutation builder.
func (m *ConversionJobMutation) Where(ps ...predicate.ConversionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversionJob).
func (m *ConversionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversionJobMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.profile != nil {
		fields = append(fields, conversionjob.FieldProfileID)
	}
	if m.parent_job_id != nil {
		fields = append(fields, conversionjob.FieldParentJobID)
	}
	if m.kind != nil {
		fields = append(fields, conversionjob.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, conversionjob.FieldStatus)
	}
	if m.step != nil {
		fields = append(fields, conversionjob.FieldStep)
	}
	if m.error_message != nil {
		fields = append(fields, conversionjob.FieldErrorMessage)
	}
	if m.archive_key != nil {
		fields = append(fields, conversionjob.FieldArchiveKey)
	}
	if m.filtered_archive_key != nil {
		fields = append(fields, conversionjob.FieldFilteredArchiveKey)
	}
	if m.thumbnail_key != nil {
		fields = append(fields, conversionjob.FieldThumbnailKey)
	}
	if m.text_doc_key != nil {
		fields = append(fields, conversionjob.FieldTextDocKey)
	}
	if m.rich_doc_key != nil {
		fields = append(fields, conversionjob.FieldRichDocKey)
	}
	if m.text_doc_size != nil {
		fields = append(fields, conversionjob.FieldTextDocSize)
	}
	if m.rich_doc_size != nil {
		fields = append(fields, conversionjob.FieldRichDocSize)
	}
	if m.total_images != nil {
		fields = append(fields, conversionjob.FieldTotalImages)
	}
	if m.preprocessed_images != nil {
		fields = append(fields, conversionjob.FieldPreprocessedImages)
	}
	if m.submitted_images != nil {
		fields = append(fields, conversionjob.FieldSubmittedImages)
	}
	if m.total_batches != nil {
		fields = append(fields, conversionjob.FieldTotalBatches)
	}
	if m.completed_batches != nil {
		fields = append(fields, conversionjob.FieldCompletedBatches)
	}
	if m.batch_size != nil {
		fields = append(fields, conversionjob.FieldBatchSize)
	}
	if m.current_batch_id != nil {
		fields = append(fields, conversionjob.FieldCurrentBatchID)
	}
	if m.current_input_file_id != nil {
		fields = append(fields, conversionjob.FieldCurrentInputFileID)
	}
	if m.created_at != nil {
		fields = append(fields, conversionjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversionjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversionjob.FieldProfileID:
		return m.ProfileID()
	case conversionjob.FieldParentJobID:
		return m.ParentJobID()
	case conversionjob.FieldKind:
		return m.Kind()
	case conversionjob.FieldStatus:
		return m.Status()
	case conversionjob.FieldStep:
		return m.Step()
	case conversionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case conversionjob.FieldArchiveKey:
		return m.ArchiveKey()
	case conversionjob.FieldFilteredArchiveKey:
		return m.FilteredArchiveKey()
	case conversionjob.FieldThumbnailKey:
		return m.ThumbnailKey()
	case conversionjob.FieldTextDocKey:
		return m.TextDocKey()
	case conversionjob.FieldRichDocKey:
		return m.RichDocKey()
	case conversionjob.FieldTextDocSize:
		return m.TextDocSize()
	case conversionjob.FieldRichDocSize:
		return m.RichDocSize()
	case conversionjob.FieldTotalImages:
		return m.TotalImages()
	case conversionjob.FieldPreprocessedImages:
		return m.PreprocessedImages()
	case conversionjob.FieldSubmittedImages:
		return m.SubmittedImages()
	case conversionjob.FieldTotalBatches:
		return m.TotalBatches()
	case conversionjob.FieldCompletedBatches:
		return m.CompletedBatches()
	case conversionjob.FieldBatchSize:
		return m.BatchSize()
	case conversionjob.FieldCurrentBatchID:
		return m.CurrentBatchID()
	case conversionjob.FieldCurrentInputFileID:
		return m.CurrentInputFileID()
	case conversionjob.FieldCreatedAt:
		return m.CreatedAt()
	case conversionjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversionjob.FieldProfileID:
		return m.OldProfileID(ctx)
	case conversionjob.FieldParentJobID:
		return m.OldParentJobID(ctx)
	case conversionjob.FieldKind:
		return m.OldKind(ctx)
	case conversionjob.FieldStatus:
		return m.OldStatus(ctx)
	case conversionjob.FieldStep:
		return m.OldStep(ctx)
	case conversionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case conversionjob.FieldArchiveKey:
		return m.OldArchiveKey(ctx)
	case conversionjob.FieldFilteredArchiveKey:
		return m.OldFilteredArchiveKey(ctx)
	case conversionjob.FieldThumbnailKey:
		return m.OldThumbnailKey(ctx)
	case conversionjob.FieldTextDocKey:
		return m.OldTextDocKey(ctx)
	case conversionjob.FieldRichDocKey:
		return m.OldRichDocKey(ctx)
	case conversionjob.FieldTextDocSize:
		return m.OldTextDocSize(ctx)
	case conversionjob.FieldRichDocSize:
		return m.OldRichDocSize(ctx)
	case conversionjob.FieldTotalImages:
		return m.OldTotalImages(ctx)
	case conversionjob.FieldPreprocessedImages:
		return m.OldPreprocessedImages(ctx)
	case conversionjob.FieldSubmittedImages:
		return m.OldSubmittedImages(ctx)
	case conversionjob.FieldTotalBatches:
		return m.OldTotalBatches(ctx)
	case conversionjob.FieldCompletedBatches:
		return m.OldCompletedBatches(ctx)
	case conversionjob.FieldBatchSize:
		return m.OldBatchSize(ctx)
	case conversionjob.FieldCurrentBatchID:
		return m.OldCurrentBatchID(ctx)
	case conversionjob.FieldCurrentInputFileID:
		return m.OldCurrentInputFileID(ctx)
	case conversionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversionjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversionjob.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case conversionjob.FieldParentJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentJobID(v)
		return nil
	case conversionjob.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case conversionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversionjob.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case conversionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case conversionjob.FieldArchiveKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchiveKey(v)
		return nil
	case conversionjob.FieldFilteredArchiveKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilteredArchiveKey(v)
		return nil
	case conversionjob.FieldThumbnailKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailKey(v)
		return nil
	case conversionjob.FieldTextDocKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextDocKey(v)
		return nil
	case conversionjob.FieldRichDocKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRichDocKey(v)
		return nil
	case conversionjob.FieldTextDocSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextDocSize(v)
		return nil
	case conversionjob.FieldRichDocSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRichDocSize(v)
		return nil
	case conversionjob.FieldTotalImages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalImages(v)
		return nil
	case conversionjob.FieldPreprocessedImages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreprocessedImages(v)
		return nil
	case conversionjob.FieldSubmittedImages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedImages(v)
		return nil
	case conversionjob.FieldTotalBatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalBatches(v)
		return nil
	case conversionjob.FieldCompletedBatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedBatches(v)
		return nil
	case conversionjob.FieldBatchSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchSize(v)
		return nil
	case conversionjob.FieldCurrentBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentBatchID(v)
		return nil
	case conversionjob.FieldCurrentInputFileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentInputFileID(v)
		return nil
	case conversionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversionjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversionJobMutation) AddedFields() []string {
	var fields []string
	if m.addtext_doc_size != nil {
		fields = append(fields, conversionjob.FieldTextDocSize)
	}
	if m.addrich_doc_size != nil {
		fields = append(fields, conversionjob.FieldRichDocSize)
	}
	if m.addtotal_images != nil {
		fields = append(fields, conversionjob.FieldTotalImages)
	}
	if m.addpreprocessed_images != nil {
		fields = append(fields, conversionjob.FieldPreprocessedImages)
	}
	if m.addsubmitted_images != nil {
		fields = append(fields, conversionjob.FieldSubmittedImages)
	}
	if m.addtotal_batches != nil {
		fields = append(fields, conversionjob.FieldTotalBatches)
	}
	if m.addcompleted_batches != nil {
		fields = append(fields, conversionjob.FieldCompletedBatches)
	}
	if m.addbatch_size != nil {
		fields = append(fields, conversionjob.FieldBatchSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversionjob.FieldTextDocSize:
		return m.AddedTextDocSize()
	case conversionjob.FieldRichDocSize:
		return m.AddedRichDocSize()
	case conversionjob.FieldTotalImages:
		return m.AddedTotalImages()
	case conversionjob.FieldPreprocessedImages:
		return m.AddedPreprocessedImages()
	case conversionjob.FieldSubmittedImages:
		return m.AddedSubmittedImages()
	case conversionjob.FieldTotalBatches:
		return m.AddedTotalBatches()
	case conversionjob.FieldCompletedBatches:
		return m.AddedCompletedBatches()
	case conversionjob.FieldBatchSize:
		return m.AddedBatchSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversionjob.FieldTextDocSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTextDocSize(v)
		return nil
	case conversionjob.FieldRichDocSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRichDocSize(v)
		return nil
	case conversionjob.FieldTotalImages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalImages(v)
		return nil
	case conversionjob.FieldPreprocessedImages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreprocessedImages(v)
		return nil
	case conversionjob.FieldSubmittedImages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubmittedImages(v)
		return nil
	case conversionjob.FieldTotalBatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalBatches(v)
		return nil
	case conversionjob.FieldCompletedBatches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedBatches(v)
		return nil
	case conversionjob.FieldBatchSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchSize(v)
		return nil
	}
	return fmt.Errorf("unknown ConversionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversionjob.FieldParentJobID) {
		fields = append(fields, conversionjob.FieldParentJobID)
	}
	if m.FieldCleared(conversionjob.FieldErrorMessage) {
		fields = append(fields, conversionjob.FieldErrorMessage)
	}
	if m.FieldCleared(conversionjob.FieldFilteredArchiveKey) {
		fields = append(fields, conversionjob.FieldFilteredArchiveKey)
	}
	if m.FieldCleared(conversionjob.FieldThumbnailKey) {
		fields = append(fields, conversionjob.FieldThumbnailKey)
	}
	if m.FieldCleared(conversionjob.FieldTextDocKey) {
		fields = append(fields, conversionjob.FieldTextDocKey)
	}
	if m.FieldCleared(conversionjob.FieldRichDocKey) {
		fields = append(fields, conversionjob.FieldRichDocKey)
	}
	if m.FieldCleared(conversionjob.FieldCurrentBatchID) {
		fields = append(fields, conversionjob.FieldCurrentBatchID)
	}
	if m.FieldCleared(conversionjob.FieldCurrentInputFileID) {
		fields = append(fields, conversionjob.FieldCurrentInputFileID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversionJobMutation) ClearField(name string) error {
	switch name {
	case conversionjob.FieldParentJobID:
		m.ClearParentJobID()
		return nil
	case conversionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case conversionjob.FieldFilteredArchiveKey:
		m.ClearFilteredArchiveKey()
		return nil
	case conversionjob.FieldThumbnailKey:
		m.ClearThumbnailKey()
		return nil
	case conversionjob.FieldTextDocKey:
		m.ClearTextDocKey()
		return nil
	case conversionjob.FieldRichDocKey:
		m.ClearRichDocKey()
		return nil
	case conversionjob.FieldCurrentBatchID:
		m.ClearCurrentBatchID()
		return nil
	case conversionjob.FieldCurrentInputFileID:
		m.ClearCurrentInputFileID()
		return nil
	}
	return fmt.Errorf("unknown ConversionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversionJobMutation) ResetField(name string) error {
	switch name {
	case conversionjob.FieldProfileID:
		m.ResetProfileID()
		return nil
	case conversionjob.FieldParentJobID:
		m.ResetParentJobID()
		return nil
	case conversionjob.FieldKind:
		m.ResetKind()
		return nil
	case conversionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case conversionjob.FieldStep:
		m.ResetStep()
		return nil
	case conversionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case conversionjob.FieldArchiveKey:
		m.ResetArchiveKey()
		return nil
	case conversionjob.FieldFilteredArchiveKey:
		m.ResetFilteredArchiveKey()
		return nil
	case conversionjob.FieldThumbnailKey:
		m.ResetThumbnailKey()
		return nil
	case conversionjob.FieldTextDocKey:
		m.ResetTextDocKey()
		return nil
	case conversionjob.FieldRichDocKey:
		m.ResetRichDocKey()
		return nil
	case conversionjob.FieldTextDocSize:
		m.ResetTextDocSize()
		return nil
	case conversionjob.FieldRichDocSize:
		m.ResetRichDocSize()
		return nil
	case conversionjob.FieldTotalImages:
		m.ResetTotalImages()
		return nil
	case conversionjob.FieldPreprocessedImages:
		m.ResetPreprocessedImages()
		return nil
	case conversionjob.FieldSubmittedImages:
		m.ResetSubmittedImages()
		return nil
	case conversionjob.FieldTotalBatches:
		m.ResetTotalBatches()
		return nil
	case conversionjob.FieldCompletedBatches:
		m.ResetCompletedBatches()
		return nil
	case conversionjob.FieldBatchSize:
		m.ResetBatchSize()
		return nil
	case conversionjob.FieldCurrentBatchID:
		m.ResetCurrentBatchID()
		return nil
	case conversionjob.FieldCurrentInputFileID:
		m.ResetCurrentInputFileID()
		return nil
	case conversionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversionjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.profile != nil {
		edges = append(edges, conversionjob.EdgeProfile)
	}
	if m.frames != nil {
		edges = append(edges, conversionjob.EdgeFrames)
	}
	if m.batches != nil {
		edges = append(edges, conversionjob.EdgeBatches)
	}
	if m.steps != nil {
		edges = append(edges, conversionjob.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversionjob.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case conversionjob.EdgeFrames:
		ids := make([]ent.Value, 0, len(m.frames))
		for id := range m.frames {
			ids = append(ids, id)
		}
		return ids
	case conversionjob.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.batches))
		for id := range m.batches {
			ids = append(ids, id)
		}
		return ids
	case conversionjob.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedframes != nil {
		edges = append(edges, conversionjob.EdgeFrames)
	}
	if m.removedbatches != nil {
		edges = append(edges, conversionjob.EdgeBatches)
	}
	if m.removedsteps != nil {
		edges = append(edges, conversionjob.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversionJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversionjob.EdgeFrames:
		ids := make([]ent.Value, 0, len(m.removedframes))
		for id := range m.removedframes {
			ids = append(ids, id)
		}
		return ids
	case conversionjob.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.removedbatches))
		for id := range m.removedbatches {
			ids = append(ids, id)
		}
		return ids
	case conversionjob.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedprofile {
		edges = append(edges, conversionjob.EdgeProfile)
	}
	if m.clearedframes {
		edges = append(edges, conversionjob.EdgeFrames)
	}
	if m.clearedbatches {
		edges = append(edges, conversionjob.EdgeBatches)
	}
	if m.clearedsteps {
		edges = append(edges, conversionjob.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case conversionjob.EdgeProfile:
		return m.clearedprofile
	case conversionjob.EdgeFrames:
		return m.clearedframes
	case conversionjob.EdgeBatches:
		return m.clearedbatches
	case conversionjob.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversionJobMutation) ClearEdge(name string) error {
	switch name {
	case conversionjob.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown ConversionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversionJobMutation) ResetEdge(name string) error {
	switch name {
	case conversionjob.EdgeProfile:
		m.ResetProfile()
		return nil
	case conversionjob.EdgeFrames:
		m.ResetFrames()
		return nil
	case conversionjob.EdgeBatches:
		m.ResetBatches()
		return nil
	case conversionjob.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown ConversionJob edge %s", name)
}

// FrameMutation represents an operation that mutates the Frame nodes in the graph.
type FrameMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	filename       *string
	base_key       *string
	frame_index    *int
	addframe_index *int
	text           *string
	clearedFields  map[string]struct{}
	job            *uuid.UUID
	clearedjob     bool
	done           bool
	oldValue       func(context.Context) (*Frame, error)
	predicates     []predicate.Frame
}

var _ ent.Mutation = (*FrameMutation)(nil)

// frameOption allows management of the mutation configuration using functional options.
type frameOption func(*FrameMutation)

// newFrameMutation creates new mutation for the Frame entity.
func newFrameMutation(c config, op Op, opts ...frameOption) *FrameMutation {
	m := &FrameMutation{
		config:        c,
		op:            op,
		typ:           TypeFrame,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFrameID sets the ID field of the mutation.
func withFrameID(id uuid.UUID) frameOption {
	return func(m *FrameMutation) {
		var (
			err   error
			once  sync.Once
			value *Frame
		)
		m.oldValue = func(ctx context.Context) (*Frame, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Frame.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFrame sets the old Frame of the mutation.
func withFrame(node *Frame) frameOption {
	return func(m *FrameMutation) {
		m.oldValue = func(context.Context) (*Frame, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FrameMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FrameMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Frame entities.
func (m *FrameMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FrameMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FrameMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Frame.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *FrameMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *FrameMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Frame entity.
// If the Frame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrameMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *FrameMutation) ResetJobID() {
	m.job = nil
}

// SetFilename sets the "filename" field.
func (m *FrameMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *FrameMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Frame entity.
// If the Frame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrameMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *FrameMutation) ResetFilename() {
	m.filename = nil
}

// SetBaseKey sets the "base_key" field.
func (m *FrameMutation) SetBaseKey(s string) {
	m.base_key = &s
}

// BaseKey returns the value of the "base_key" field in the mutation.
func (m *FrameMutation) BaseKey() (r string, exists bool) {
	v := m.base_key
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseKey returns the old "base_key" field's value of the Frame entity.
// If the Frame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrameMutation) OldBaseKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseKey: %w", err)
	}
	return oldValue.BaseKey, nil
}

// ResetBaseKey resets all changes to the "base_key" field.
func (m *FrameMutation) ResetBaseKey() {
	m.base_key = nil
}

// SetFrameIndex sets the "frame_index" field.
func (m *FrameMutation) SetFrameIndex(i int) {
	m.frame_index = &i
	m.addframe_index = nil
}

// FrameIndex returns the value of the "frame_index" field in the mutation.
func (m *FrameMutation) FrameIndex() (r int, exists bool) {
	v := m.frame_index
	if v == nil {
		return
	}
	return *v, true
}

// OldFrameIndex returns the old "frame_index" field's value of the Frame entity.
// If the Frame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrameMutation) OldFrameIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrameIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrameIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrameIndex: %w", err)
	}
	return oldValue.FrameIndex, nil
}

// AddFrameIndex adds i to the "frame_index" field.
func (m *FrameMutation) AddFrameIndex(i int) {
	if m.addframe_index != nil {
		*m.addframe_index += i
	} else {
		m.addframe_index = &i
	}
}

// AddedFrameIndex returns the value that was added to the "frame_index" field in this mutation.
func (m *FrameMutation) AddedFrameIndex() (r int, exists bool) {
	v := m.addframe_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrameIndex resets all changes to the "frame_index" field.
func (m *FrameMutation) ResetFrameIndex() {
	m.frame_index = nil
	m.addframe_index = nil
}

// SetText sets the "text" field.
func (m *FrameMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *FrameMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Frame entity.
// If the Frame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FrameMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *FrameMutation) ResetText() {
	m.text = nil
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (m *FrameMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[frame.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ConversionJob entity was cleared.
func (m *FrameMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *FrameMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *FrameMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the FrameMutation builder.
func (m *FrameMutation) Where(ps ...predicate.Frame) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FrameMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FrameMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Frame, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FrameMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FrameMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Frame).
func (m *FrameMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FrameMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, frame.FieldJobID)
	}
	if m.filename != nil {
		fields = append(fields, frame.FieldFilename)
	}
	if m.base_key != nil {
		fields = append(fields, frame.FieldBaseKey)
	}
	if m.frame_index != nil {
		fields = append(fields, frame.FieldFrameIndex)
	}
	if m.text != nil {
		fields = append(fields, frame.FieldText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FrameMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case frame.FieldJobID:
		return m.JobID()
	case frame.FieldFilename:
		return m.Filename()
	case frame.FieldBaseKey:
		return m.BaseKey()
	case frame.FieldFrameIndex:
		return m.FrameIndex()
	case frame.FieldText:
		return m.Text()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FrameMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case frame.FieldJobID:
		return m.OldJobID(ctx)
	case frame.FieldFilename:
		return m.OldFilename(ctx)
	case frame.FieldBaseKey:
		return m.OldBaseKey(ctx)
	case frame.FieldFrameIndex:
		return m.OldFrameIndex(ctx)
	case frame.FieldText:
		return m.OldText(ctx)
	}
	return nil, fmt.Errorf("unknown Frame field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FrameMutation) SetField(name string, value ent.Value) error {
	switch name {
	case frame.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case frame.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case frame.FieldBaseKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseKey(v)
		return nil
	case frame.FieldFrameIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrameIndex(v)
		return nil
	case frame.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	}
	return fmt.Errorf("unknown Frame field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FrameMutation) AddedFields() []string {
	var fields []string
	if m.addframe_index != nil {
		fields = append(fields, frame.FieldFrameIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FrameMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case frame.FieldFrameIndex:
		return m.AddedFrameIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FrameMutation) AddField(name string, value ent.Value) error {
	switch name {
	case frame.FieldFrameIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrameIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Frame numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FrameMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FrameMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FrameMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Frame nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FrameMutation) ResetField(name string) error {
	switch name {
	case frame.FieldJobID:
		m.ResetJobID()
		return nil
	case frame.FieldFilename:
		m.ResetFilename()
		return nil
	case frame.FieldBaseKey:
		m.ResetBaseKey()
		return nil
	case frame.FieldFrameIndex:
		m.ResetFrameIndex()
		return nil
	case frame.FieldText:
		m.ResetText()
		return nil
	}
	return fmt.Errorf("unknown Frame field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FrameMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, frame.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FrameMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case frame.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FrameMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FrameMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FrameMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, frame.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FrameMutation) EdgeCleared(name string) bool {
	switch name {
	case frame.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FrameMutation) ClearEdge(name string) error {
	switch name {
	case frame.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Frame unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FrameMutation) ResetEdge(name string) error {
	switch name {
	case frame.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Frame edge %s", name)
}

// PipelineStepMutation represents an operation that mutates the PipelineStep nodes in the graph.
type PipelineStepMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	result        *json.RawMessage
	appendresult  json.RawMessage
	completed_at  *time.Time
	clearedFields map[string]struct{}
	job           *uuid.UUID
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*PipelineStep, error)
	predicates    []predicate.PipelineStep
}

var _ ent.Mutation = (*PipelineStepMutation)(nil)

// pipelinestepOption allows management of the mutation configuration using functional options.
type pipelinestepOption func(*PipelineStepMutation)

// newPipelineStepMutation creates new mutation for the PipelineStep entity.
func newPipelineStepMutation(c config, op Op, opts ...pipelinestepOption) *PipelineStepMutation {
	m := &PipelineStepMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStepID sets the ID field of the mutation.
func withPipelineStepID(id uuid.UUID) pipelinestepOption {
	return func(m *PipelineStepMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineStep
		)
		m.oldValue = func(ctx context.Context) (*PipelineStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineStep sets the old PipelineStep of the mutation.
func withPipelineStep(node *PipelineStep) pipelinestepOption {
	return func(m *PipelineStepMutation) {
		m.oldValue = func(context.Context) (*PipelineStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineStep entities.
func (m *PipelineStepMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStepMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStepMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *PipelineStepMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *PipelineStepMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *PipelineStepMutation) ResetJobID() {
	m.job = nil
}

// SetName sets the "name" field.
func (m *PipelineStepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineStepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineStepMutation) ResetName() {
	m.name = nil
}

// SetResult sets the "result" field.
func (m *PipelineStepMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *PipelineStepMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *PipelineStepMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *PipelineStepMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *PipelineStepMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[pipelinestep.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *PipelineStepMutation) ResultCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *PipelineStepMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, pipelinestep.FieldResult)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineStepMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (m *PipelineStepMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[pipelinestep.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ConversionJob entity was cleared.
func (m *PipelineStepMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *PipelineStepMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *PipelineStepMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the PipelineStepMutation builder.
func (m *PipelineStepMutation) Where(ps ...predicate.PipelineStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineStep).
func (m *PipelineStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStepMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.job != nil {
		fields = append(fields, pipelinestep.FieldJobID)
	}
	if m.name != nil {
		fields = append(fields, pipelinestep.FieldName)
	}
	if m.result != nil {
		fields = append(fields, pipelinestep.FieldResult)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinestep.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinestep.FieldJobID:
		return m.JobID()
	case pipelinestep.FieldName:
		return m.Name()
	case pipelinestep.FieldResult:
		return m.Result()
	case pipelinestep.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinestep.FieldJobID:
		return m.OldJobID(ctx)
	case pipelinestep.FieldName:
		return m.OldName(ctx)
	case pipelinestep.FieldResult:
		return m.OldResult(ctx)
	case pipelinestep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinestep.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case pipelinestep.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipelinestep.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case pipelinestep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStepMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStepMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinestep.FieldResult) {
		fields = append(fields, pipelinestep.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStepMutation) ClearField(name string) error {
	switch name {
	case pipelinestep.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStepMutation) ResetField(name string) error {
	switch name {
	case pipelinestep.FieldJobID:
		m.ResetJobID()
		return nil
	case pipelinestep.FieldName:
		m.ResetName()
		return nil
	case pipelinestep.FieldResult:
		m.ResetResult()
		return nil
	case pipelinestep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, pipelinestep.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinestep.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, pipelinestep.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStepMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinestep.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStepMutation) ClearEdge(name string) error {
	switch name {
	case pipelinestep.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStepMutation) ResetEdge(name string) error {
	switch name {
	case pipelinestep.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	inference_api_key *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	jobs              map[uuid.UUID]struct{}
	removedjobs       map[uuid.UUID]struct{}
	clearedjobs       bool
	done              bool
	oldValue          func(context.Context) (*Profile, error)
	predicates        []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetInferenceAPIKey sets the "inference_api_key" field.
func (m *ProfileMutation) SetInferenceAPIKey(s string) {
	m.inference_api_key = &s
}

// InferenceAPIKey returns the value of the "inference_api_key" field in the mutation.
func (m *ProfileMutation) InferenceAPIKey() (r string, exists bool) {
	v := m.inference_api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldInferenceAPIKey returns the old "inference_api_key" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldInferenceAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInferenceAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInferenceAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInferenceAPIKey: %w", err)
	}
	return oldValue.InferenceAPIKey, nil
}

// ClearInferenceAPIKey clears the value of the "inference_api_key" field.
func (m *ProfileMutation) ClearInferenceAPIKey() {
	m.inference_api_key = nil
	m.clearedFields[profile.FieldInferenceAPIKey] = struct{}{}
}

// InferenceAPIKeyCleared returns if the "inference_api_key" field was cleared in this mutation.
func (m *ProfileMutation) InferenceAPIKeyCleared() bool {
	_, ok := m.clearedFields[profile.FieldInferenceAPIKey]
	return ok
}

// ResetInferenceAPIKey resets all changes to the "inference_api_key" field.
func (m *ProfileMutation) ResetInferenceAPIKey() {
	m.inference_api_key = nil
	delete(m.clearedFields, profile.FieldInferenceAPIKey)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the ConversionJob entity by ids.
func (m *ProfileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ConversionJob entity.
func (m *ProfileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ConversionJob entity was cleared.
func (m *ProfileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ConversionJob entity by IDs.
func (m *ProfileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ConversionJob entity.
func (m *ProfileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ProfileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ProfileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.inference_api_key != nil {
		fields = append(fields, profile.FieldInferenceAPIKey)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldName:
		return m.Name()
	case profile.FieldInferenceAPIKey:
		return m.InferenceAPIKey()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldInferenceAPIKey:
		return m.OldInferenceAPIKey(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldInferenceAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInferenceAPIKey(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldInferenceAPIKey) {
		fields = append(fields, profile.FieldInferenceAPIKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldInferenceAPIKey:
		m.ClearInferenceAPIKey()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldInferenceAPIKey:
		m.ResetInferenceAPIKey()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/frame"
	"framescribe/gen/ent/pipelinestep"
	"framescribe/gen/ent/predicate"
	"framescribe/gen/ent/profile"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ConversionJobUpdate is the builder for updating ConversionJob entities.
type ConversionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ConversionJobMutation
}

// Where appends a list predicates to the ConversionJobUpdate builder.
func (_u *ConversionJobUpdate) Where(ps ...predicate.ConversionJob) *ConversionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ConversionJobUpdate) SetProfileID(v uuid.UUID) *ConversionJobUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableProfileID(v *uuid.UUID) *ConversionJobUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetParentJobID sets the "parent_job_id" field.
func (_u *ConversionJobUpdate) SetParentJobID(v uuid.UUID) *ConversionJobUpdate {
	_u.mutation.SetParentJobID(v)
	return _u
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableParentJobID(v *uuid.UUID) *ConversionJobUpdate {
	if v != nil {
		_u.SetParentJobID(*v)
	}
	return _u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (_u *ConversionJobUpdate) ClearParentJobID() *ConversionJobUpdate {
	_u.mutation.ClearParentJobID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ConversionJobUpdate) SetKind(v string) *ConversionJobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableKind(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversionJobUpdate) SetStatus(v string) *ConversionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableStatus(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *ConversionJobUpdate) SetStep(v string) *ConversionJobUpdate {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableStep(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ConversionJobUpdate) SetErrorMessage(v string) *ConversionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableErrorMessage(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ConversionJobUpdate) ClearErrorMessage() *ConversionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetArchiveKey sets the "archive_key" field.
func (_u *ConversionJobUpdate) SetArchiveKey(v string) *ConversionJobUpdate {
	_u.mutation.SetArchiveKey(v)
	return _u
}

// SetNillableArchiveKey sets the "archive_key" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableArchiveKey(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetArchiveKey(*v)
	}
	return _u
}

// SetFilteredArchiveKey sets the "filtered_archive_key" field.
func (_u *ConversionJobUpdate) SetFilteredArchiveKey(v string) *ConversionJobUpdate {
	_u.mutation.SetFilteredArchiveKey(v)
	return _u
}

// SetNillableFilteredArchiveKey sets the "filtered_archive_key" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableFilteredArchiveKey(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetFilteredArchiveKey(*v)
	}
	return _u
}

// ClearFilteredArchiveKey clears the value of the "filtered_archive_key" field.
func (_u *ConversionJobUpdate) ClearFilteredArchiveKey() *ConversionJobUpdate {
	_u.mutation.ClearFilteredArchiveKey()
	return _u
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (_u *ConversionJobUpdate) SetThumbnailKey(v string) *ConversionJobUpdate {
	_u.mutation.SetThumbnailKey(v)
	return _u
}

// SetNillableThumbnailKey sets the "thumbnail_key" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableThumbnailKey(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetThumbnailKey(*v)
	}
	return _u
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (_u *ConversionJobUpdate) ClearThumbnailKey() *ConversionJobUpdate {
	_u.mutation.ClearThumbnailKey()
	return _u
}

// SetTextDocKey sets the "text_doc_key" field.
func (_u *ConversionJobUpdate) SetTextDocKey(v string) *ConversionJobUpdate {
	_u.mutation.SetTextDocKey(v)
	return _u
}

// SetNillableTextDocKey sets the "text_doc_key" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableTextDocKey(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetTextDocKey(*v)
	}
	return _u
}

// ClearTextDocKey clears the value of the "text_doc_key" field.
func (_u *ConversionJobUpdate) ClearTextDocKey() *ConversionJobUpdate {
	_u.mutation.ClearTextDocKey()
	return _u
}

// SetRichDocKey sets the "rich_doc_key" field.
func (_u *ConversionJobUpdate) SetRichDocKey(v string) *ConversionJobUpdate {
	_u.mutation.SetRichDocKey(v)
	return _u
}

// SetNillableRichDocKey sets the "rich_doc_key" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableRichDocKey(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetRichDocKey(*v)
	}
	return _u
}

// ClearRichDocKey clears the value of the "rich_doc_key" field.
func (_u *ConversionJobUpdate) ClearRichDocKey() *ConversionJobUpdate {
	_u.mutation.ClearRichDocKey()
	return _u
}

// SetTextDocSize sets the "text_doc_size" field.
func (_u *ConversionJobUpdate) SetTextDocSize(v int64) *ConversionJobUpdate {
	_u.mutation.ResetTextDocSize()
	_u.mutation.SetTextDocSize(v)
	return _u
}

// SetNillableTextDocSize sets the "text_doc_size" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableTextDocSize(v *int64) *ConversionJobUpdate {
	if v != nil {
		_u.SetTextDocSize(*v)
	}
	return _u
}

// AddTextDocSize adds value to the "text_doc_size" field.
func (_u *ConversionJobUpdate) AddTextDocSize(v int64) *ConversionJobUpdate {
	_u.mutation.AddTextDocSize(v)
	return _u
}

// SetRichDocSize sets the "rich_doc_size" field.
func (_u *ConversionJobUpdate) SetRichDocSize(v int64) *ConversionJobUpdate {
	_u.mutation.ResetRichDocSize()
	_u.mutation.SetRichDocSize(v)
	return _u
}

// SetNillableRichDocSize sets the "rich_doc_size" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableRichDocSize(v *int64) *ConversionJobUpdate {
	if v != nil {
		_u.SetRichDocSize(*v)
	}
	return _u
}

// AddRichDocSize adds value to the "rich_doc_size" field.
func (_u *ConversionJobUpdate) AddRichDocSize(v int64) *ConversionJobUpdate {
	_u.mutation.AddRichDocSize(v)
	return _u
}

// SetTotalImages sets the "total_images" field.
func (_u *ConversionJobUpdate) SetTotalImages(v int) *ConversionJobUpdate {
	_u.mutation.ResetTotalImages()
	_u.mutation.SetTotalImages(v)
	return _u
}

// SetNillableTotalImages sets the "total_images" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableTotalImages(v *int) *ConversionJobUpdate {
	if v != nil {
		_u.SetTotalImages(*v)
	}
	return _u
}

// AddTotalImages adds value to the "total_images" field.
func (_u *ConversionJobUpdate) AddTotalImages(v int) *ConversionJobUpdate {
	_u.mutation.AddTotalImages(v)
	return _u
}

// SetPreprocessedImages sets the "preprocessed_images" field.
func (_u *ConversionJobUpdate) SetPreprocessedImages(v int) *ConversionJobUpdate {
	_u.mutation.ResetPreprocessedImages()
	_u.mutation.SetPreprocessedImages(v)
	return _u
}

// SetNillablePreprocessedImages sets the "preprocessed_images" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillablePreprocessedImages(v *int) *ConversionJobUpdate {
	if v != nil {
		_u.SetPreprocessedImages(*v)
	}
	return _u
}

// AddPreprocessedImages adds value to the "preprocessed_images" field.
func (_u *ConversionJobUpdate) AddPreprocessedImages(v int) *ConversionJobUpdate {
	_u.mutation.AddPreprocessedImages(v)
	return _u
}

// SetSubmittedImages sets the "submitted_images" field.
func (_u *ConversionJobUpdate) SetSubmittedImages(v int) *ConversionJobUpdate {
	_u.mutation.ResetSubmittedImages()
	_u.mutation.SetSubmittedImages(v)
	return _u
}

// SetNillableSubmittedImages sets the "submitted_images" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableSubmittedImages(v *int) *ConversionJobUpdate {
	if v != nil {
		_u.SetSubmittedImages(*v)
	}
	return _u
}

// AddSubmittedImages adds value to the "submitted_images" field.
func (_u *ConversionJobUpdate) AddSubmittedImages(v int) *ConversionJobUpdate {
	_u.mutation.AddSubmittedImages(v)
	return _u
}

// SetTotalBatches sets the "total_batches" field.
func (_u *ConversionJobUpdate) SetTotalBatches(v int) *ConversionJobUpdate {
	_u.mutation.ResetTotalBatches()
	_u.mutation.SetTotalBatches(v)
	return _u
}

// SetNillableTotalBatches sets the "total_batches" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableTotalBatches(v *int) *ConversionJobUpdate {
	if v != nil {
		_u.SetTotalBatches(*v)
	}
	return _u
}

// AddTotalBatches adds value to the "total_batches" field.
func (_u *ConversionJobUpdate) AddTotalBatches(v int) *ConversionJobUpdate {
	_u.mutation.AddTotalBatches(v)
	return _u
}

// SetCompletedBatches sets the "completed_batches" field.
func (_u *ConversionJobUpdate) SetCompletedBatches(v int) *ConversionJobUpdate {
	_u.mutation.ResetCompletedBatches()
	_u.mutation.SetCompletedBatches(v)
	return _u
}

// SetNillableCompletedBatches sets the "completed_batches" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableCompletedBatches(v *int) *ConversionJobUpdate {
	if v != nil {
		_u.SetCompletedBatches(*v)
	}
	return _u
}

// AddCompletedBatches adds value to the "completed_batches" field.
func (_u *ConversionJobUpdate) AddCompletedBatches(v int) *ConversionJobUpdate {
	_u.mutation.AddCompletedBatches(v)
	return _u
}

// SetBatchSize sets the "batch_size" field.
func (_u *ConversionJobUpdate) SetBatchSize(v int) *ConversionJobUpdate {
	_u.mutation.ResetBatchSize()
	_u.mutation.SetBatchSize(v)
	return _u
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableBatchSize(v *int) *ConversionJobUpdate {
	if v != nil {
		_u.SetBatchSize(*v)
	}
	return _u
}

// AddBatchSize adds value to the "batch_size" field.
func (_u *ConversionJobUpdate) AddBatchSize(v int) *ConversionJobUpdate {
	_u.mutation.AddBatchSize(v)
	return _u
}

// SetCurrentBatchID sets the "current_batch_id" field.
func (_u *ConversionJobUpdate) SetCurrentBatchID(v string) *ConversionJobUpdate {
	_u.mutation.SetCurrentBatchID(v)
	return _u
}

// SetNillableCurrentBatchID sets the "current_batch_id" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableCurrentBatchID(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetCurrentBatchID(*v)
	}
	return _u
}

// ClearCurrentBatchID clears the value of the "current_batch_id" field.
func (_u *ConversionJobUpdate) ClearCurrentBatchID() *ConversionJobUpdate {
	_u.mutation.ClearCurrentBatchID()
	return _u
}

// SetCurrentInputFileID sets the "current_input_file_id" field.
func (_u *ConversionJobUpdate) SetCurrentInputFileID(v string) *ConversionJobUpdate {
	_u.mutation.SetCurrentInputFileID(v)
	return _u
}

// SetNillableCurrentInputFileID sets the "current_input_file_id" field if the given value is not nil.
func (_u *ConversionJobUpdate) SetNillableCurrentInputFileID(v *string) *ConversionJobUpdate {
	if v != nil {
		_u.SetCurrentInputFileID(*v)
	}
	return _u
}

// ClearCurrentInputFileID clears the value of the "current_input_file_id" field.
func (_u *ConversionJobUpdate) ClearCurrentInputFileID() *ConversionJobUpdate {
	_u.mutation.ClearCurrentInputFileID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversionJobUpdate) SetUpdatedAt(v time.Time) *ConversionJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ConversionJobUpdate) SetProfile(v *Profile) *ConversionJobUpdate {
	return _u.SetProfileID(v.ID)
}

// AddFrameIDs adds the "frames" edge to the Frame entity by IDs.
func (_u *ConversionJobUpdate) AddFrameIDs(ids ...uuid.UUID) *ConversionJobUpdate {
	_u.mutation.AddFrameIDs(ids...)
	return _u
}

// AddFrames adds the "frames" edges to the Frame entity.
func (_u *ConversionJobUpdate) AddFrames(v ...*Frame) *ConversionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFrameIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the BatchSubmission entity by IDs.
func (_u *ConversionJobUpdate) AddBatchIDs(ids ...uuid.UUID) *ConversionJobUpdate {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the BatchSubmission entity.
func (_u *ConversionJobUpdate) AddBatches(v ...*BatchSubmission) *ConversionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by IDs.
func (_u *ConversionJobUpdate) AddStepIDs(ids ...uuid.UUID) *ConversionJobUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the PipelineStep entity.
func (_u *ConversionJobUpdate) AddSteps(v ...*PipelineStep) *ConversionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the ConversionJobMutation object of the builder.
func (_u *ConversionJobUpdate) Mutation() *ConversionJobMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ConversionJobUpdate) ClearProfile() *ConversionJobUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearFrames clears all "frames" edges to the Frame entity.
func (_u *ConversionJobUpdate) ClearFrames() *ConversionJobUpdate {
	_u.mutation.ClearFrames()
	return _u
}

// RemoveFrameIDs removes the "frames" edge to Frame entities by IDs.
func (_u *ConversionJobUpdate) RemoveFrameIDs(ids ...uuid.UUID) *ConversionJobUpdate {
	_u.mutation.RemoveFrameIDs(ids...)
	return _u
}

// RemoveFrames removes "frames" edges to Frame entities.
func (_u *ConversionJobUpdate) RemoveFrames(v ...*Frame) *ConversionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFrameIDs(ids...)
}

// ClearBatches clears all "batches" edges to the BatchSubmission entity.
func (_u *ConversionJobUpdate) ClearBatches() *ConversionJobUpdate {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to BatchSubmission entities by IDs.
func (_u *ConversionJobUpdate) RemoveBatchIDs(ids ...uuid.UUID) *ConversionJobUpdate {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to BatchSubmission entities.
func (_u *ConversionJobUpdate) RemoveBatches(v ...*BatchSubmission) *ConversionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// ClearSteps clears all "steps" edges to the PipelineStep entity.
func (_u *ConversionJobUpdate) ClearSteps() *ConversionJobUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to PipelineStep entities by IDs.
func (_u *ConversionJobUpdate) RemoveStepIDs(ids ...uuid.UUID) *ConversionJobUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to PipelineStep entities.
func (_u *ConversionJobUpdate) RemoveSteps(v ...*PipelineStep) *ConversionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversionJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversionJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversionJobUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := conversionjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Step(); ok {
		if err := conversionjob.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchiveKey(); ok {
		if err := conversionjob.ArchiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "archive_key", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.archive_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalImages(); ok {
		if err := conversionjob.TotalImagesValidator(v); err != nil {
			return &ValidationError{Name: "total_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_images": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreprocessedImages(); ok {
		if err := conversionjob.PreprocessedImagesValidator(v); err != nil {
			return &ValidationError{Name: "preprocessed_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.preprocessed_images": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedImages(); ok {
		if err := conversionjob.SubmittedImagesValidator(v); err != nil {
			return &ValidationError{Name: "submitted_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.submitted_images": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalBatches(); ok {
		if err := conversionjob.TotalBatchesValidator(v); err != nil {
			return &ValidationError{Name: "total_batches", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_batches": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedBatches(); ok {
		if err := conversionjob.CompletedBatchesValidator(v); err != nil {
			return &ValidationError{Name: "completed_batches", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.completed_batches": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchSize(); ok {
		if err := conversionjob.BatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "batch_size", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.batch_size": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversionJob.profile"`)
	}
	return nil
}

func (_u *ConversionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversionjob.Table, conversionjob.Columns, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentJobID(); ok {
		_spec.SetField(conversionjob.FieldParentJobID, field.TypeUUID, value)
	}
	if _u.mutation.ParentJobIDCleared() {
		_spec.ClearField(conversionjob.FieldParentJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(conversionjob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(conversionjob.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(conversionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(conversionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ArchiveKey(); ok {
		_spec.SetField(conversionjob.FieldArchiveKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilteredArchiveKey(); ok {
		_spec.SetField(conversionjob.FieldFilteredArchiveKey, field.TypeString, value)
	}
	if _u.mutation.FilteredArchiveKeyCleared() {
		_spec.ClearField(conversionjob.FieldFilteredArchiveKey, field.TypeString)
	}
	if value, ok := _u.mutation.ThumbnailKey(); ok {
		_spec.SetField(conversionjob.FieldThumbnailKey, field.TypeString, value)
	}
	if _u.mutation.ThumbnailKeyCleared() {
		_spec.ClearField(conversionjob.FieldThumbnailKey, field.TypeString)
	}
	if value, ok := _u.mutation.TextDocKey(); ok {
		_spec.SetField(conversionjob.FieldTextDocKey, field.TypeString, value)
	}
	if _u.mutation.TextDocKeyCleared() {
		_spec.ClearField(conversionjob.FieldTextDocKey, field.TypeString)
	}
	if value, ok := _u.mutation.RichDocKey(); ok {
		_spec.SetField(conversionjob.FieldRichDocKey, field.TypeString, value)
	}
	if _u.mutation.RichDocKeyCleared() {
		_spec.ClearField(conversionjob.FieldRichDocKey, field.TypeString)
	}
	if value, ok := _u.mutation.TextDocSize(); ok {
		_spec.SetField(conversionjob.FieldTextDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTextDocSize(); ok {
		_spec.AddField(conversionjob.FieldTextDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RichDocSize(); ok {
		_spec.SetField(conversionjob.FieldRichDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRichDocSize(); ok {
		_spec.AddField(conversionjob.FieldRichDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalImages(); ok {
		_spec.SetField(conversionjob.FieldTotalImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalImages(); ok {
		_spec.AddField(conversionjob.FieldTotalImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreprocessedImages(); ok {
		_spec.SetField(conversionjob.FieldPreprocessedImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreprocessedImages(); ok {
		_spec.AddField(conversionjob.FieldPreprocessedImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmittedImages(); ok {
		_spec.SetField(conversionjob.FieldSubmittedImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubmittedImages(); ok {
		_spec.AddField(conversionjob.FieldSubmittedImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalBatches(); ok {
		_spec.SetField(conversionjob.FieldTotalBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalBatches(); ok {
		_spec.AddField(conversionjob.FieldTotalBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedBatches(); ok {
		_spec.SetField(conversionjob.FieldCompletedBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedBatches(); ok {
		_spec.AddField(conversionjob.FieldCompletedBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchSize(); ok {
		_spec.SetField(conversionjob.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchSize(); ok {
		_spec.AddField(conversionjob.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentBatchID(); ok {
		_spec.SetField(conversionjob.FieldCurrentBatchID, field.TypeString, value)
	}
	if _u.mutation.CurrentBatchIDCleared() {
		_spec.ClearField(conversionjob.FieldCurrentBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentInputFileID(); ok {
		_spec.SetField(conversionjob.FieldCurrentInputFileID, field.TypeString, value)
	}
	if _u.mutation.CurrentInputFileIDCleared() {
		_spec.ClearField(conversionjob.FieldCurrentInputFileID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversionjob.ProfileTable,
			Columns: []string{conversionjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversionjob.ProfileTable,
			Columns: []string{conversionjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FramesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.FramesTable,
			Columns: []string{conversionjob.FramesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFramesIDs(); len(nodes) > 0 && !_u.mutation.FramesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.FramesTable,
			Columns: []string{conversionjob.FramesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FramesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.FramesTable,
			Columns: []string{conversionjob.FramesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.BatchesTable,
			Columns: []string{conversionjob.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.BatchesTable,
			Columns: []string{conversionjob.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.BatchesTable,
			Columns: []string{conversionjob.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.StepsTable,
			Columns: []string{conversionjob.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.StepsTable,
			Columns: []string{conversionjob.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.StepsTable,
			Columns: []string{conversionjob.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversionJobUpdateOne is the builder for updating a single ConversionJob entity.
type ConversionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversionJobMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *ConversionJobUpdateOne) SetProfileID(v uuid.UUID) *ConversionJobUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableProfileID(v *uuid.UUID) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetParentJobID sets the "parent_job_id" field.
func (_u *ConversionJobUpdateOne) SetParentJobID(v uuid.UUID) *ConversionJobUpdateOne {
	_u.mutation.SetParentJobID(v)
	return _u
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableParentJobID(v *uuid.UUID) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetParentJobID(*v)
	}
	return _u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (_u *ConversionJobUpdateOne) ClearParentJobID() *ConversionJobUpdateOne {
	_u.mutation.ClearParentJobID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ConversionJobUpdateOne) SetKind(v string) *ConversionJobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableKind(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversionJobUpdateOne) SetStatus(v string) *ConversionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableStatus(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *ConversionJobUpdateOne) SetStep(v string) *ConversionJobUpdateOne {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableStep(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ConversionJobUpdateOne) SetErrorMessage(v string) *ConversionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableErrorMessage(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ConversionJobUpdateOne) ClearErrorMessage() *ConversionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetArchiveKey sets the "archive_key" field.
func (_u *ConversionJobUpdateOne) SetArchiveKey(v string) *ConversionJobUpdateOne {
	_u.mutation.SetArchiveKey(v)
	return _u
}

// SetNillableArchiveKey sets the "archive_key" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableArchiveKey(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetArchiveKey(*v)
	}
	return _u
}

// SetFilteredArchiveKey sets the "filtered_archive_key" field.
func (_u *ConversionJobUpdateOne) SetFilteredArchiveKey(v string) *ConversionJobUpdateOne {
	_u.mutation.SetFilteredArchiveKey(v)
	return _u
}

// SetNillableFilteredArchiveKey sets the "filtered_archive_key" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableFilteredArchiveKey(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetFilteredArchiveKey(*v)
	}
	return _u
}

// ClearFilteredArchiveKey clears the value of the "filtered_archive_key" field.
func (_u *ConversionJobUpdateOne) ClearFilteredArchiveKey() *ConversionJobUpdateOne {
	_u.mutation.ClearFilteredArchiveKey()
	return _u
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (_u *ConversionJobUpdateOne) SetThumbnailKey(v string) *ConversionJobUpdateOne {
	_u.mutation.SetThumbnailKey(v)
	return _u
}

// SetNillableThumbnailKey sets the "thumbnail_key" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableThumbnailKey(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetThumbnailKey(*v)
	}
	return _u
}

// ClearThumbnailKey clears the value of the "thumbnail_key" field.
func (_u *ConversionJobUpdateOne) ClearThumbnailKey() *ConversionJobUpdateOne {
	_u.mutation.ClearThumbnailKey()
	return _u
}

// SetTextDocKey sets the "text_doc_key" field.
func (_u *ConversionJobUpdateOne) SetTextDocKey(v string) *ConversionJobUpdateOne {
	_u.mutation.SetTextDocKey(v)
	return _u
}

// SetNillableTextDocKey sets the "text_doc_key" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableTextDocKey(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetTextDocKey(*v)
	}
	return _u
}

// ClearTextDocKey clears the value of the "text_doc_key" field.
func (_u *ConversionJobUpdateOne) ClearTextDocKey() *ConversionJobUpdateOne {
	_u.mutation.ClearTextDocKey()
	return _u
}

// SetRichDocKey sets the "rich_doc_key" field.
func (_u *ConversionJobUpdateOne) SetRichDocKey(v string) *ConversionJobUpdateOne {
	_u.mutation.SetRichDocKey(v)
	return _u
}

// SetNillableRichDocKey sets the "rich_doc_key" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableRichDocKey(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetRichDocKey(*v)
	}
	return _u
}

// ClearRichDocKey clears the value of the "rich_doc_key" field.
func (_u *ConversionJobUpdateOne) ClearRichDocKey() *ConversionJobUpdateOne {
	_u.mutation.ClearRichDocKey()
	return _u
}

// SetTextDocSize sets the "text_doc_size" field.
func (_u *ConversionJobUpdateOne) SetTextDocSize(v int64) *ConversionJobUpdateOne {
	_u.mutation.ResetTextDocSize()
	_u.mutation.SetTextDocSize(v)
	return _u
}

// SetNillableTextDocSize sets the "text_doc_size" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableTextDocSize(v *int64) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetTextDocSize(*v)
	}
	return _u
}

// AddTextDocSize adds value to the "text_doc_size" field.
func (_u *ConversionJobUpdateOne) AddTextDocSize(v int64) *ConversionJobUpdateOne {
	_u.mutation.AddTextDocSize(v)
	return _u
}

// SetRichDocSize sets the "rich_doc_size" field.
func (_u *ConversionJobUpdateOne) SetRichDocSize(v int64) *ConversionJobUpdateOne {
	_u.mutation.ResetRichDocSize()
	_u.mutation.SetRichDocSize(v)
	return _u
}

// SetNillableRichDocSize sets the "rich_doc_size" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableRichDocSize(v *int64) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetRichDocSize(*v)
	}
	return _u
}

// AddRichDocSize adds value to the "rich_doc_size" field.
func (_u *ConversionJobUpdateOne) AddRichDocSize(v int64) *ConversionJobUpdateOne {
	_u.mutation.AddRichDocSize(v)
	return _u
}

// SetTotalImages sets the "total_images" field.
func (_u *ConversionJobUpdateOne) SetTotalImages(v int) *ConversionJobUpdateOne {
	_u.mutation.ResetTotalImages()
	_u.mutation.SetTotalImages(v)
	return _u
}

// SetNillableTotalImages sets the "total_images" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableTotalImages(v *int) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetTotalImages(*v)
	}
	return _u
}

// AddTotalImages adds value to the "total_images" field.
func (_u *ConversionJobUpdateOne) AddTotalImages(v int) *ConversionJobUpdateOne {
	_u.mutation.AddTotalImages(v)
	return _u
}

// SetPreprocessedImages sets the "preprocessed_images" field.
func (_u *ConversionJobUpdateOne) SetPreprocessedImages(v int) *ConversionJobUpdateOne {
	_u.mutation.ResetPreprocessedImages()
	_u.mutation.SetPreprocessedImages(v)
	return _u
}

// SetNillablePreprocessedImages sets the "preprocessed_images" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillablePreprocessedImages(v *int) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetPreprocessedImages(*v)
	}
	return _u
}

// AddPreprocessedImages adds value to the "preprocessed_images" field.
func (_u *ConversionJobUpdateOne) AddPreprocessedImages(v int) *ConversionJobUpdateOne {
	_u.mutation.AddPreprocessedImages(v)
	return _u
}

// SetSubmittedImages sets the "submitted_images" field.
func (_u *ConversionJobUpdateOne) SetSubmittedImages(v int) *ConversionJobUpdateOne {
	_u.mutation.ResetSubmittedImages()
	_u.mutation.SetSubmittedImages(v)
	return _u
}

// SetNillableSubmittedImages sets the "submitted_images" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableSubmittedImages(v *int) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetSubmittedImages(*v)
	}
	return _u
}

// AddSubmittedImages adds value to the "submitted_images" field.
func (_u *ConversionJobUpdateOne) AddSubmittedImages(v int) *ConversionJobUpdateOne {
	_u.mutation.AddSubmittedImages(v)
	return _u
}

// SetTotalBatches sets the "total_batches" field.
func (_u *ConversionJobUpdateOne) SetTotalBatches(v int) *ConversionJobUpdateOne {
	_u.mutation.ResetTotalBatches()
	_u.mutation.SetTotalBatches(v)
	return _u
}

// SetNillableTotalBatches sets the "total_batches" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableTotalBatches(v *int) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetTotalBatches(*v)
	}
	return _u
}

// AddTotalBatches adds value to the "total_batches" field.
func (_u *ConversionJobUpdateOne) AddTotalBatches(v int) *ConversionJobUpdateOne {
	_u.mutation.AddTotalBatches(v)
	return _u
}

// SetCompletedBatches sets the "completed_batches" field.
func (_u *ConversionJobUpdateOne) SetCompletedBatches(v int) *ConversionJobUpdateOne {
	_u.mutation.ResetCompletedBatches()
	_u.mutation.SetCompletedBatches(v)
	return _u
}

// SetNillableCompletedBatches sets the "completed_batches" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableCompletedBatches(v *int) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetCompletedBatches(*v)
	}
	return _u
}

// AddCompletedBatches adds value to the "completed_batches" field.
func (_u *ConversionJobUpdateOne) AddCompletedBatches(v int) *ConversionJobUpdateOne {
	_u.mutation.AddCompletedBatches(v)
	return _u
}

// SetBatchSize sets the "batch_size" field.
func (_u *ConversionJobUpdateOne) SetBatchSize(v int) *ConversionJobUpdateOne {
	_u.mutation.ResetBatchSize()
	_u.mutation.SetBatchSize(v)
	return _u
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableBatchSize(v *int) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetBatchSize(*v)
	}
	return _u
}

// AddBatchSize adds value to the "batch_size" field.
func (_u *ConversionJobUpdateOne) AddBatchSize(v int) *ConversionJobUpdateOne {
	_u.mutation.AddBatchSize(v)
	return _u
}

// SetCurrentBatchID sets the "current_batch_id" field.
func (_u *ConversionJobUpdateOne) SetCurrentBatchID(v string) *ConversionJobUpdateOne {
	_u.mutation.SetCurrentBatchID(v)
	return _u
}

// SetNillableCurrentBatchID sets the "current_batch_id" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableCurrentBatchID(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetCurrentBatchID(*v)
	}
	return _u
}

// ClearCurrentBatchID clears the value of the "current_batch_id" field.
func (_u *ConversionJobUpdateOne) ClearCurrentBatchID() *ConversionJobUpdateOne {
	_u.mutation.ClearCurrentBatchID()
	return _u
}

// SetCurrentInputFileID sets the "current_input_file_id" field.
func (_u *ConversionJobUpdateOne) SetCurrentInputFileID(v string) *ConversionJobUpdateOne {
	_u.mutation.SetCurrentInputFileID(v)
	return _u
}

// SetNillableCurrentInputFileID sets the "current_input_file_id" field if the given value is not nil.
func (_u *ConversionJobUpdateOne) SetNillableCurrentInputFileID(v *string) *ConversionJobUpdateOne {
	if v != nil {
		_u.SetCurrentInputFileID(*v)
	}
	return _u
}

// ClearCurrentInputFileID clears the value of the "current_input_file_id" field.
func (_u *ConversionJobUpdateOne) ClearCurrentInputFileID() *ConversionJobUpdateOne {
	_u.mutation.ClearCurrentInputFileID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversionJobUpdateOne) SetUpdatedAt(v time.Time) *ConversionJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ConversionJobUpdateOne) SetProfile(v *Profile) *ConversionJobUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddFrameIDs adds the "frames" edge to the Frame entity by IDs.
func (_u *ConversionJobUpdateOne) AddFrameIDs(ids ...uuid.UUID) *ConversionJobUpdateOne {
	_u.mutation.AddFrameIDs(ids...)
	return _u
}

// AddFrames adds the "frames" edges to the Frame entity.
func (_u *ConversionJobUpdateOne) AddFrames(v ...*Frame) *ConversionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFrameIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the BatchSubmission entity by IDs.
func (_u *ConversionJobUpdateOne) AddBatchIDs(ids ...uuid.UUID) *ConversionJobUpdateOne {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the BatchSubmission entity.
func (_u *ConversionJobUpdateOne) AddBatches(v ...*BatchSubmission) *ConversionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by IDs.
func (_u *ConversionJobUpdateOne) AddStepIDs(ids ...uuid.UUID) *ConversionJobUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the PipelineStep entity.
func (_u *ConversionJobUpdateOne) AddSteps(v ...*PipelineStep) *ConversionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the ConversionJobMutation object of the builder.
func (_u *ConversionJobUpdateOne) Mutation() *ConversionJobMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ConversionJobUpdateOne) ClearProfile() *ConversionJobUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearFrames clears all "frames" edges to the Frame entity.
func (_u *ConversionJobUpdateOne) ClearFrames() *ConversionJobUpdateOne {
	_u.mutation.ClearFrames()
	return _u
}

// RemoveFrameIDs removes the "frames" edge to Frame entities by IDs.
func (_u *ConversionJobUpdateOne) RemoveFrameIDs(ids ...uuid.UUID) *ConversionJobUpdateOne {
	_u.mutation.RemoveFrameIDs(ids...)
	return _u
}

// RemoveFrames removes "frames" edges to Frame entities.
func (_u *ConversionJobUpdateOne) RemoveFrames(v ...*Frame) *ConversionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFrameIDs(ids...)
}

// ClearBatches clears all "batches" edges to the BatchSubmission entity.
func (_u *ConversionJobUpdateOne) ClearBatches() *ConversionJobUpdateOne {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to BatchSubmission entities by IDs.
func (_u *ConversionJobUpdateOne) RemoveBatchIDs(ids ...uuid.UUID) *ConversionJobUpdateOne {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to BatchSubmission entities.
func (_u *ConversionJobUpdateOne) RemoveBatches(v ...*BatchSubmission) *ConversionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// ClearSteps clears all "steps" edges to the PipelineStep entity.
func (_u *ConversionJobUpdateOne) ClearSteps() *ConversionJobUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to PipelineStep entities by IDs.
func (_u *ConversionJobUpdateOne) RemoveStepIDs(ids ...uuid.UUID) *ConversionJobUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to PipelineStep entities.
func (_u *ConversionJobUpdateOne) RemoveSteps(v ...*PipelineStep) *ConversionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the ConversionJobUpdate builder.
func (_u *ConversionJobUpdateOne) Where(ps ...predicate.ConversionJob) *ConversionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversionJobUpdateOne) Select(field string, fields ...string) *ConversionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversionJob entity.
func (_u *ConversionJobUpdateOne) Save(ctx context.Context) (*ConversionJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversionJobUpdateOne) SaveX(ctx context.Context) *ConversionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversionJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversionJobUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := conversionjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Step(); ok {
		if err := conversionjob.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchiveKey(); ok {
		if err := conversionjob.ArchiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "archive_key", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.archive_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalImages(); ok {
		if err := conversionjob.TotalImagesValidator(v); err != nil {
			return &ValidationError{Name: "total_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_images": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreprocessedImages(); ok {
		if err := conversionjob.PreprocessedImagesValidator(v); err != nil {
			return &ValidationError{Name: "preprocessed_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.preprocessed_images": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedImages(); ok {
		if err := conversionjob.SubmittedImagesValidator(v); err != nil {
			return &ValidationError{Name: "submitted_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.submitted_images": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalBatches(); ok {
		if err := conversionjob.TotalBatchesValidator(v); err != nil {
			return &ValidationError{Name: "total_batches", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_batches": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedBatches(); ok {
		if err := conversionjob.CompletedBatchesValidator(v); err != nil {
			return &ValidationError{Name: "completed_batches", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.completed_batches": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchSize(); ok {
		if err := conversionjob.BatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "batch_size", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.batch_size": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversionJob.profile"`)
	}
	return nil
}

func (_u *ConversionJobUpdateOne) sqlSave(ctx context.Context) (_node *ConversionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversionjob.Table, conversionjob.Columns, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversionjob.FieldID)
		for _, f := range fields {
			if !conversionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversionjob.FieldID {
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
	if value, ok := _u.mutation.ParentJobID(); ok {
		_spec.SetField(conversionjob.FieldParentJobID, field.TypeUUID, value)
	}
	if _u.mutation.ParentJobIDCleared() {
		_spec.ClearField(conversionjob.FieldParentJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(conversionjob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(conversionjob.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(conversionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(conversionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ArchiveKey(); ok {
		_spec.SetField(conversionjob.FieldArchiveKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilteredArchiveKey(); ok {
		_spec.SetField(conversionjob.FieldFilteredArchiveKey, field.TypeString, value)
	}
	if _u.mutation.FilteredArchiveKeyCleared() {
		_spec.ClearField(conversionjob.FieldFilteredArchiveKey, field.TypeString)
	}
	if value, ok := _u.mutation.ThumbnailKey(); ok {
		_spec.SetField(conversionjob.FieldThumbnailKey, field.TypeString, value)
	}
	if _u.mutation.ThumbnailKeyCleared() {
		_spec.ClearField(conversionjob.FieldThumbnailKey, field.TypeString)
	}
	if value, ok := _u.mutation.TextDocKey(); ok {
		_spec.SetField(conversionjob.FieldTextDocKey, field.TypeString, value)
	}
	if _u.mutation.TextDocKeyCleared() {
		_spec.ClearField(conversionjob.FieldTextDocKey, field.TypeString)
	}
	if value, ok := _u.mutation.RichDocKey(); ok {
		_spec.SetField(conversionjob.FieldRichDocKey, field.TypeString, value)
	}
	if _u.mutation.RichDocKeyCleared() {
		_spec.ClearField(conversionjob.FieldRichDocKey, field.TypeString)
	}
	if value, ok := _u.mutation.TextDocSize(); ok {
		_spec.SetField(conversionjob.FieldTextDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTextDocSize(); ok {
		_spec.AddField(conversionjob.FieldTextDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RichDocSize(); ok {
		_spec.SetField(conversionjob.FieldRichDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRichDocSize(); ok {
		_spec.AddField(conversionjob.FieldRichDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalImages(); ok {
		_spec.SetField(conversionjob.FieldTotalImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalImages(); ok {
		_spec.AddField(conversionjob.FieldTotalImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreprocessedImages(); ok {
		_spec.SetField(conversionjob.FieldPreprocessedImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreprocessedImages(); ok {
		_spec.AddField(conversionjob.FieldPreprocessedImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmittedImages(); ok {
		_spec.SetField(conversionjob.FieldSubmittedImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubmittedImages(); ok {
		_spec.AddField(conversionjob.FieldSubmittedImages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalBatches(); ok {
		_spec.SetField(conversionjob.FieldTotalBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalBatches(); ok {
		_spec.AddField(conversionjob.FieldTotalBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedBatches(); ok {
		_spec.SetField(conversionjob.FieldCompletedBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedBatches(); ok {
		_spec.AddField(conversionjob.FieldCompletedBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchSize(); ok {
		_spec.SetField(conversionjob.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchSize(); ok {
		_spec.AddField(conversionjob.FieldBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentBatchID(); ok {
		_spec.SetField(conversionjob.FieldCurrentBatchID, field.TypeString, value)
	}
	if _u.mutation.CurrentBatchIDCleared() {
		_spec.ClearField(conversionjob.FieldCurrentBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentInputFileID(); ok {
		_spec.SetField(conversionjob.FieldCurrentInputFileID, field.TypeString, value)
	}
	if _u.mutation.CurrentInputFileIDCleared() {
		_spec.ClearField(conversionjob.FieldCurrentInputFileID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversionjob.ProfileTable,
			Columns: []string{conversionjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversionjob.ProfileTable,
			Columns: []string{conversionjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FramesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.FramesTable,
			Columns: []string{conversionjob.FramesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFramesIDs(); len(nodes) > 0 && !_u.mutation.FramesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.FramesTable,
			Columns: []string{conversionjob.FramesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FramesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.FramesTable,
			Columns: []string{conversionjob.FramesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.BatchesTable,
			Columns: []string{conversionjob.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.BatchesTable,
			Columns: []string{conversionjob.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.BatchesTable,
			Columns: []string{conversionjob.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchsubmission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.StepsTable,
			Columns: []string{conversionjob.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.StepsTable,
			Columns: []string{conversionjob.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversionjob.StepsTable,
			Columns: []string{conversionjob.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConversionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

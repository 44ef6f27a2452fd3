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
	"framescribe/gen/ent/profile"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ConversionJobCreate is the builder for creating a ConversionJob entity.
type ConversionJobCreate struct {
	config
	mutation *ConversionJobMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *ConversionJobCreate) SetProfileID(v uuid.UUID) *ConversionJobCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetParentJobID sets the "parent_job_id" field.
func (_c *ConversionJobCreate) SetParentJobID(v uuid.UUID) *ConversionJobCreate {
	_c.mutation.SetParentJobID(v)
	return _c
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableParentJobID(v *uuid.UUID) *ConversionJobCreate {
	if v != nil {
		_c.SetParentJobID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ConversionJobCreate) SetKind(v string) *ConversionJobCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConversionJobCreate) SetStatus(v string) *ConversionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableStatus(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStep sets the "step" field.
func (_c *ConversionJobCreate) SetStep(v string) *ConversionJobCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableStep(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetStep(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ConversionJobCreate) SetErrorMessage(v string) *ConversionJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableErrorMessage(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetArchiveKey sets the "archive_key" field.
func (_c *ConversionJobCreate) SetArchiveKey(v string) *ConversionJobCreate {
	_c.mutation.SetArchiveKey(v)
	return _c
}

// SetFilteredArchiveKey sets the "filtered_archive_key" field.
func (_c *ConversionJobCreate) SetFilteredArchiveKey(v string) *ConversionJobCreate {
	_c.mutation.SetFilteredArchiveKey(v)
	return _c
}

// SetNillableFilteredArchiveKey sets the "filtered_archive_key" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableFilteredArchiveKey(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetFilteredArchiveKey(*v)
	}
	return _c
}

// SetThumbnailKey sets the "thumbnail_key" field.
func (_c *ConversionJobCreate) SetThumbnailKey(v string) *ConversionJobCreate {
	_c.mutation.SetThumbnailKey(v)
	return _c
}

// SetNillableThumbnailKey sets the "thumbnail_key" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableThumbnailKey(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetThumbnailKey(*v)
	}
	return _c
}

// SetTextDocKey sets the "text_doc_key" field.
func (_c *ConversionJobCreate) SetTextDocKey(v string) *ConversionJobCreate {
	_c.mutation.SetTextDocKey(v)
	return _c
}

// SetNillableTextDocKey sets the "text_doc_key" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableTextDocKey(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetTextDocKey(*v)
	}
	return _c
}

// SetRichDocKey sets the "rich_doc_key" field.
func (_c *ConversionJobCreate) SetRichDocKey(v string) *ConversionJobCreate {
	_c.mutation.SetRichDocKey(v)
	return _c
}

// SetNillableRichDocKey sets the "rich_doc_key" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableRichDocKey(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetRichDocKey(*v)
	}
	return _c
}

// SetTextDocSize sets the "text_doc_size" field.
func (_c *ConversionJobCreate) SetTextDocSize(v int64) *ConversionJobCreate {
	_c.mutation.SetTextDocSize(v)
	return _c
}

// SetNillableTextDocSize sets the "text_doc_size" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableTextDocSize(v *int64) *ConversionJobCreate {
	if v != nil {
		_c.SetTextDocSize(*v)
	}
	return _c
}

// SetRichDocSize sets the "rich_doc_size" field.
func (_c *ConversionJobCreate) SetRichDocSize(v int64) *ConversionJobCreate {
	_c.mutation.SetRichDocSize(v)
	return _c
}

// SetNillableRichDocSize sets the "rich_doc_size" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableRichDocSize(v *int64) *ConversionJobCreate {
	if v != nil {
		_c.SetRichDocSize(*v)
	}
	return _c
}

// SetTotalImages sets the "total_images" field.
func (_c *ConversionJobCreate) SetTotalImages(v int) *ConversionJobCreate {
	_c.mutation.SetTotalImages(v)
	return _c
}

// SetNillableTotalImages sets the "total_images" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableTotalImages(v *int) *ConversionJobCreate {
	if v != nil {
		_c.SetTotalImages(*v)
	}
	return _c
}

// SetPreprocessedImages sets the "preprocessed_images" field.
func (_c *ConversionJobCreate) SetPreprocessedImages(v int) *ConversionJobCreate {
	_c.mutation.SetPreprocessedImages(v)
	return _c
}

// SetNillablePreprocessedImages sets the "preprocessed_images" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillablePreprocessedImages(v *int) *ConversionJobCreate {
	if v != nil {
		_c.SetPreprocessedImages(*v)
	}
	return _c
}

// SetSubmittedImages sets the "submitted_images" field.
func (_c *ConversionJobCreate) SetSubmittedImages(v int) *ConversionJobCreate {
	_c.mutation.SetSubmittedImages(v)
	return _c
}

// SetNillableSubmittedImages sets the "submitted_images" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableSubmittedImages(v *int) *ConversionJobCreate {
	if v != nil {
		_c.SetSubmittedImages(*v)
	}
	return _c
}

// SetTotalBatches sets the "total_batches" field.
func (_c *ConversionJobCreate) SetTotalBatches(v int) *ConversionJobCreate {
	_c.mutation.SetTotalBatches(v)
	return _c
}

// SetNillableTotalBatches sets the "total_batches" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableTotalBatches(v *int) *ConversionJobCreate {
	if v != nil {
		_c.SetTotalBatches(*v)
	}
	return _c
}

// SetCompletedBatches sets the "completed_batches" field.
func (_c *ConversionJobCreate) SetCompletedBatches(v int) *ConversionJobCreate {
	_c.mutation.SetCompletedBatches(v)
	return _c
}

// SetNillableCompletedBatches sets the "completed_batches" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableCompletedBatches(v *int) *ConversionJobCreate {
	if v != nil {
		_c.SetCompletedBatches(*v)
	}
	return _c
}

// SetBatchSize sets the "batch_size" field.
func (_c *ConversionJobCreate) SetBatchSize(v int) *ConversionJobCreate {
	_c.mutation.SetBatchSize(v)
	return _c
}

// SetNillableBatchSize sets the "batch_size" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableBatchSize(v *int) *ConversionJobCreate {
	if v != nil {
		_c.SetBatchSize(*v)
	}
	return _c
}

// SetCurrentBatchID sets the "current_batch_id" field.
func (_c *ConversionJobCreate) SetCurrentBatchID(v string) *ConversionJobCreate {
	_c.mutation.SetCurrentBatchID(v)
	return _c
}

// SetNillableCurrentBatchID sets the "current_batch_id" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableCurrentBatchID(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetCurrentBatchID(*v)
	}
	return _c
}

// SetCurrentInputFileID sets the "current_input_file_id" field.
func (_c *ConversionJobCreate) SetCurrentInputFileID(v string) *ConversionJobCreate {
	_c.mutation.SetCurrentInputFileID(v)
	return _c
}

// SetNillableCurrentInputFileID sets the "current_input_file_id" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableCurrentInputFileID(v *string) *ConversionJobCreate {
	if v != nil {
		_c.SetCurrentInputFileID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversionJobCreate) SetCreatedAt(v time.Time) *ConversionJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableCreatedAt(v *time.Time) *ConversionJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversionJobCreate) SetUpdatedAt(v time.Time) *ConversionJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableUpdatedAt(v *time.Time) *ConversionJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversionJobCreate) SetID(v uuid.UUID) *ConversionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConversionJobCreate) SetNillableID(v *uuid.UUID) *ConversionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ConversionJobCreate) SetProfile(v *Profile) *ConversionJobCreate {
	return _c.SetProfileID(v.ID)
}

// AddFrameIDs adds the "frames" edge to the Frame entity by IDs.
func (_c *ConversionJobCreate) AddFrameIDs(ids ...uuid.UUID) *ConversionJobCreate {
	_c.mutation.AddFrameIDs(ids...)
	return _c
}

// AddFrames adds the "frames" edges to the Frame entity.
func (_c *ConversionJobCreate) AddFrames(v ...*Frame) *ConversionJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFrameIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the BatchSubmission entity by IDs.
func (_c *ConversionJobCreate) AddBatchIDs(ids ...uuid.UUID) *ConversionJobCreate {
	_c.mutation.AddBatchIDs(ids...)
	return _c
}

// AddBatches adds the "batches" edges to the BatchSubmission entity.
func (_c *ConversionJobCreate) AddBatches(v ...*BatchSubmission) *ConversionJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBatchIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by IDs.
func (_c *ConversionJobCreate) AddStepIDs(ids ...uuid.UUID) *ConversionJobCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the PipelineStep entity.
func (_c *ConversionJobCreate) AddSteps(v ...*PipelineStep) *ConversionJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the ConversionJobMutation object of the builder.
func (_c *ConversionJobCreate) Mutation() *ConversionJobMutation {
	return _c.mutation
}

// Save creates the ConversionJob in the database.
func (_c *ConversionJobCreate) Save(ctx context.Context) (*ConversionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversionJobCreate) SaveX(ctx context.Context) *ConversionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversionJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := conversionjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Step(); !ok {
		v := conversionjob.DefaultStep
		_c.mutation.SetStep(v)
	}
	if _, ok := _c.mutation.TextDocSize(); !ok {
		v := conversionjob.DefaultTextDocSize
		_c.mutation.SetTextDocSize(v)
	}
	if _, ok := _c.mutation.RichDocSize(); !ok {
		v := conversionjob.DefaultRichDocSize
		_c.mutation.SetRichDocSize(v)
	}
	if _, ok := _c.mutation.TotalImages(); !ok {
		v := conversionjob.DefaultTotalImages
		_c.mutation.SetTotalImages(v)
	}
	if _, ok := _c.mutation.PreprocessedImages(); !ok {
		v := conversionjob.DefaultPreprocessedImages
		_c.mutation.SetPreprocessedImages(v)
	}
	if _, ok := _c.mutation.SubmittedImages(); !ok {
		v := conversionjob.DefaultSubmittedImages
		_c.mutation.SetSubmittedImages(v)
	}
	if _, ok := _c.mutation.TotalBatches(); !ok {
		v := conversionjob.DefaultTotalBatches
		_c.mutation.SetTotalBatches(v)
	}
	if _, ok := _c.mutation.CompletedBatches(); !ok {
		v := conversionjob.DefaultCompletedBatches
		_c.mutation.SetCompletedBatches(v)
	}
	if _, ok := _c.mutation.BatchSize(); !ok {
		v := conversionjob.DefaultBatchSize
		_c.mutation.SetBatchSize(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversionjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversionjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := conversionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversionJobCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ConversionJob.profile_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ConversionJob.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := conversionjob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConversionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conversionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "ConversionJob.step"`)}
	}
	if v, ok := _c.mutation.Step(); ok {
		if err := conversionjob.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArchiveKey(); !ok {
		return &ValidationError{Name: "archive_key", err: errors.New(`ent: missing required field "ConversionJob.archive_key"`)}
	}
	if v, ok := _c.mutation.ArchiveKey(); ok {
		if err := conversionjob.ArchiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "archive_key", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.archive_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextDocSize(); !ok {
		return &ValidationError{Name: "text_doc_size", err: errors.New(`ent: missing required field "ConversionJob.text_doc_size"`)}
	}
	if _, ok := _c.mutation.RichDocSize(); !ok {
		return &ValidationError{Name: "rich_doc_size", err: errors.New(`ent: missing required field "ConversionJob.rich_doc_size"`)}
	}
	if _, ok := _c.mutation.TotalImages(); !ok {
		return &ValidationError{Name: "total_images", err: errors.New(`ent: missing required field "ConversionJob.total_images"`)}
	}
	if v, ok := _c.mutation.TotalImages(); ok {
		if err := conversionjob.TotalImagesValidator(v); err != nil {
			return &ValidationError{Name: "total_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_images": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreprocessedImages(); !ok {
		return &ValidationError{Name: "preprocessed_images", err: errors.New(`ent: missing required field "ConversionJob.preprocessed_images"`)}
	}
	if v, ok := _c.mutation.PreprocessedImages(); ok {
		if err := conversionjob.PreprocessedImagesValidator(v); err != nil {
			return &ValidationError{Name: "preprocessed_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.preprocessed_images": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedImages(); !ok {
		return &ValidationError{Name: "submitted_images", err: errors.New(`ent: missing required field "ConversionJob.submitted_images"`)}
	}
	if v, ok := _c.mutation.SubmittedImages(); ok {
		if err := conversionjob.SubmittedImagesValidator(v); err != nil {
			return &ValidationError{Name: "submitted_images", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.submitted_images": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalBatches(); !ok {
		return &ValidationError{Name: "total_batches", err: errors.New(`ent: missing required field "ConversionJob.total_batches"`)}
	}
	if v, ok := _c.mutation.TotalBatches(); ok {
		if err := conversionjob.TotalBatchesValidator(v); err != nil {
			return &ValidationError{Name: "total_batches", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.total_batches": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedBatches(); !ok {
		return &ValidationError{Name: "completed_batches", err: errors.New(`ent: missing required field "ConversionJob.completed_batches"`)}
	}
	if v, ok := _c.mutation.CompletedBatches(); ok {
		if err := conversionjob.CompletedBatchesValidator(v); err != nil {
			return &ValidationError{Name: "completed_batches", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.completed_batches": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BatchSize(); !ok {
		return &ValidationError{Name: "batch_size", err: errors.New(`ent: missing required field "ConversionJob.batch_size"`)}
	}
	if v, ok := _c.mutation.BatchSize(); ok {
		if err := conversionjob.BatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "batch_size", err: fmt.Errorf(`ent: validator failed for field "ConversionJob.batch_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversionJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConversionJob.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "ConversionJob.profile"`)}
	}
	return nil
}

func (_c *ConversionJobCreate) sqlSave(ctx context.Context) (*ConversionJob, error) {
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

func (_c *ConversionJobCreate) createSpec() (*ConversionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversionjob.Table, sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ParentJobID(); ok {
		_spec.SetField(conversionjob.FieldParentJobID, field.TypeUUID, value)
		_node.ParentJobID = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(conversionjob.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conversionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(conversionjob.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(conversionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ArchiveKey(); ok {
		_spec.SetField(conversionjob.FieldArchiveKey, field.TypeString, value)
		_node.ArchiveKey = value
	}
	if value, ok := _c.mutation.FilteredArchiveKey(); ok {
		_spec.SetField(conversionjob.FieldFilteredArchiveKey, field.TypeString, value)
		_node.FilteredArchiveKey = value
	}
	if value, ok := _c.mutation.ThumbnailKey(); ok {
		_spec.SetField(conversionjob.FieldThumbnailKey, field.TypeString, value)
		_node.ThumbnailKey = value
	}
	if value, ok := _c.mutation.TextDocKey(); ok {
		_spec.SetField(conversionjob.FieldTextDocKey, field.TypeString, value)
		_node.TextDocKey = value
	}
	if value, ok := _c.mutation.RichDocKey(); ok {
		_spec.SetField(conversionjob.FieldRichDocKey, field.TypeString, value)
		_node.RichDocKey = value
	}
	if value, ok := _c.mutation.TextDocSize(); ok {
		_spec.SetField(conversionjob.FieldTextDocSize, field.TypeInt64, value)
		_node.TextDocSize = value
	}
	if value, ok := _c.mutation.RichDocSize(); ok {
		_spec.SetField(conversionjob.FieldRichDocSize, field.TypeInt64, value)
		_node.RichDocSize = value
	}
	if value, ok := _c.mutation.TotalImages(); ok {
		_spec.SetField(conversionjob.FieldTotalImages, field.TypeInt, value)
		_node.TotalImages = value
	}
	if value, ok := _c.mutation.PreprocessedImages(); ok {
		_spec.SetField(conversionjob.FieldPreprocessedImages, field.TypeInt, value)
		_node.PreprocessedImages = value
	}
	if value, ok := _c.mutation.SubmittedImages(); ok {
		_spec.SetField(conversionjob.FieldSubmittedImages, field.TypeInt, value)
		_node.SubmittedImages = value
	}
	if value, ok := _c.mutation.TotalBatches(); ok {
		_spec.SetField(conversionjob.FieldTotalBatches, field.TypeInt, value)
		_node.TotalBatches = value
	}
	if value, ok := _c.mutation.CompletedBatches(); ok {
		_spec.SetField(conversionjob.FieldCompletedBatches, field.TypeInt, value)
		_node.CompletedBatches = value
	}
	if value, ok := _c.mutation.BatchSize(); ok {
		_spec.SetField(conversionjob.FieldBatchSize, field.TypeInt, value)
		_node.BatchSize = value
	}
	if value, ok := _c.mutation.CurrentBatchID(); ok {
		_spec.SetField(conversionjob.FieldCurrentBatchID, field.TypeString, value)
		_node.CurrentBatchID = value
	}
	if value, ok := _c.mutation.CurrentInputFileID(); ok {
		_spec.SetField(conversionjob.FieldCurrentInputFileID, field.TypeString, value)
		_node.CurrentInputFileID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversionjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversionjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FramesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversionJobCreateBulk is the builder for creating many ConversionJob entities in bulk.
type ConversionJobCreateBulk struct {
	config
	err      error
	builders []*ConversionJobCreate
}

// Save creates the ConversionJob entities in the database.
func (_c *ConversionJobCreateBulk) Save(ctx context.Context) ([]*ConversionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversionJobMutation)
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
func (_c *ConversionJobCreateBulk) SaveX(ctx context.Context) []*ConversionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

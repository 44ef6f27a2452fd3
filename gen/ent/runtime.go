// Code generated by ent, DO NOT EDIT.

package ent

import (
	"framescribe/db/ent/schema"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/frame"
	"framescribe/gen/ent/pipelinestep"
	"framescribe/gen/ent/profile"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchsubmissionFields := schema.BatchSubmission{}.Fields()
	_ = batchsubmissionFields
	// batchsubmissionDescBatchIndex is the schema descriptor for batch_index field.
	batchsubmissionDescBatchIndex := batchsubmissionFields[2].Descriptor()
	// batchsubmission.BatchIndexValidator is a validator for the "batch_index" field. It is called by the builders before save.
	batchsubmission.BatchIndexValidator = batchsubmissionDescBatchIndex.Validators[0].(func(int) error)
	// batchsubmissionDescItemCount is the schema descriptor for item_count field.
	batchsubmissionDescItemCount := batchsubmissionFields[6].Descriptor()
	// batchsubmission.DefaultItemCount holds the default value on creation for the item_count field.
	batchsubmission.DefaultItemCount = batchsubmissionDescItemCount.Default.(int)
	// batchsubmission.ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	batchsubmission.ItemCountValidator = batchsubmissionDescItemCount.Validators[0].(func(int) error)
	// batchsubmissionDescState is the schema descriptor for state field.
	batchsubmissionDescState := batchsubmissionFields[7].Descriptor()
	// batchsubmission.DefaultState holds the default value on creation for the state field.
	batchsubmission.DefaultState = batchsubmissionDescState.Default.(string)
	// batchsubmission.StateValidator is a validator for the "state" field. It is called by the builders before save.
	batchsubmission.StateValidator = batchsubmissionDescState.Validators[0].(func(string) error)
	// batchsubmissionDescSupplementary is the schema descriptor for supplementary field.
	batchsubmissionDescSupplementary := batchsubmissionFields[8].Descriptor()
	// batchsubmission.DefaultSupplementary holds the default value on creation for the supplementary field.
	batchsubmission.DefaultSupplementary = batchsubmissionDescSupplementary.Default.(bool)
	// batchsubmissionDescCreatedAt is the schema descriptor for created_at field.
	batchsubmissionDescCreatedAt := batchsubmissionFields[10].Descriptor()
	// batchsubmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	batchsubmission.DefaultCreatedAt = batchsubmissionDescCreatedAt.Default.(func() time.Time)
	// batchsubmissionDescUpdatedAt is the schema descriptor for updated_at field.
	batchsubmissionDescUpdatedAt := batchsubmissionFields[11].Descriptor()
	// batchsubmission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	batchsubmission.DefaultUpdatedAt = batchsubmissionDescUpdatedAt.Default.(func() time.Time)
	// batchsubmission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	batchsubmission.UpdateDefaultUpdatedAt = batchsubmissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// batchsubmissionDescID is the schema descriptor for id field.
	batchsubmissionDescID := batchsubmissionFields[0].Descriptor()
	// batchsubmission.DefaultID holds the default value on creation for the id field.
	batchsubmission.DefaultID = batchsubmissionDescID.Default.(func() uuid.UUID)
	conversionjobFields := schema.ConversionJob{}.Fields()
	_ = conversionjobFields
	// conversionjobDescKind is the schema descriptor for kind field.
	conversionjobDescKind := conversionjobFields[3].Descriptor()
	// conversionjob.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	conversionjob.KindValidator = func() func(string) error {
		validators := conversionjobDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// conversionjobDescStatus is the schema descriptor for status field.
	conversionjobDescStatus := conversionjobFields[4].Descriptor()
	// conversionjob.DefaultStatus holds the default value on creation for the status field.
	conversionjob.DefaultStatus = conversionjobDescStatus.Default.(string)
	// conversionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	conversionjob.StatusValidator = conversionjobDescStatus.Validators[0].(func(string) error)
	// conversionjobDescStep is the schema descriptor for step field.
	conversionjobDescStep := conversionjobFields[5].Descriptor()
	// conversionjob.DefaultStep holds the default value on creation for the step field.
	conversionjob.DefaultStep = conversionjobDescStep.Default.(string)
	// conversionjob.StepValidator is a validator for the "step" field. It is called by the builders before save.
	conversionjob.StepValidator = conversionjobDescStep.Validators[0].(func(string) error)
	// conversionjobDescArchiveKey is the schema descriptor for archive_key field.
	conversionjobDescArchiveKey := conversionjobFields[7].Descriptor()
	// conversionjob.ArchiveKeyValidator is a validator for the "archive_key" field. It is called by the builders before save.
	conversionjob.ArchiveKeyValidator = conversionjobDescArchiveKey.Validators[0].(func(string) error)
	// conversionjobDescTextDocSize is the schema descriptor for text_doc_size field.
	conversionjobDescTextDocSize := conversionjobFields[12].Descriptor()
	// conversionjob.DefaultTextDocSize holds the default value on creation for the text_doc_size field.
	conversionjob.DefaultTextDocSize = conversionjobDescTextDocSize.Default.(int64)
	// conversionjobDescRichDocSize is the schema descriptor for rich_doc_size field.
	conversionjobDescRichDocSize := conversionjobFields[13].Descriptor()
	// conversionjob.DefaultRichDocSize holds the default value on creation for the rich_doc_size field.
	conversionjob.DefaultRichDocSize = conversionjobDescRichDocSize.Default.(int64)
	// conversionjobDescTotalImages is the schema descriptor for total_images field.
	conversionjobDescTotalImages := conversionjobFields[14].Descriptor()
	// conversionjob.DefaultTotalImages holds the default value on creation for the total_images field.
	conversionjob.DefaultTotalImages = conversionjobDescTotalImages.Default.(int)
	// conversionjob.TotalImagesValidator is a validator for the "total_images" field. It is called by the builders before save.
	conversionjob.TotalImagesValidator = conversionjobDescTotalImages.Validators[0].(func(int) error)
	// conversionjobDescPreprocessedImages is the schema descriptor for preprocessed_images field.
	conversionjobDescPreprocessedImages := conversionjobFields[15].Descriptor()
	// conversionjob.DefaultPreprocessedImages holds the default value on creation for the preprocessed_images field.
	conversionjob.DefaultPreprocessedImages = conversionjobDescPreprocessedImages.Default.(int)
	// conversionjob.PreprocessedImagesValidator is a validator for the "preprocessed_images" field. It is called by the builders before save.
	conversionjob.PreprocessedImagesValidator = conversionjobDescPreprocessedImages.Validators[0].(func(int) error)
	// conversionjobDescSubmittedImages is the schema descriptor for submitted_images field.
	conversionjobDescSubmittedImages := conversionjobFields[16].Descriptor()
	// conversionjob.DefaultSubmittedImages holds the default value on creation for the submitted_images field.
	conversionjob.DefaultSubmittedImages = conversionjobDescSubmittedImages.Default.(int)
	// conversionjob.SubmittedImagesValidator is a validator for the "submitted_images" field. It is called by the builders before save.
	conversionjob.SubmittedImagesValidator = conversionjobDescSubmittedImages.Validators[0].(func(int) error)
	// conversionjobDescTotalBatches is the schema descriptor for total_batches field.
	conversionjobDescTotalBatches := conversionjobFields[17].Descriptor()
	// conversionjob.DefaultTotalBatches holds the default value on creation for the total_batches field.
	conversionjob.DefaultTotalBatches = conversionjobDescTotalBatches.Default.(int)
	// conversionjob.TotalBatchesValidator is a validator for the "total_batches" field. It is called by the builders before save.
	conversionjob.TotalBatchesValidator = conversionjobDescTotalBatches.Validators[0].(func(int) error)
	// conversionjobDescCompletedBatches is the schema descriptor for completed_batches field.
	conversionjobDescCompletedBatches := conversionjobFields[18].Descriptor()
	// conversionjob.DefaultCompletedBatches holds the default value on creation for the completed_batches field.
	conversionjob.DefaultCompletedBatches = conversionjobDescCompletedBatches.Default.(int)
	// conversionjob.CompletedBatchesValidator is a validator for the "completed_batches" field. It is called by the builders before save.
	conversionjob.CompletedBatchesValidator = conversionjobDescCompletedBatches.Validators[0].(func(int) error)
	// conversionjobDescBatchSize is the schema descriptor for batch_size field.
	conversionjobDescBatchSize := conversionjobFields[19].Descriptor()
	// conversionjob.DefaultBatchSize holds the default value on creation for the batch_size field.
	conversionjob.DefaultBatchSize = conversionjobDescBatchSize.Default.(int)
	// conversionjob.BatchSizeValidator is a validator for the "batch_size" field. It is called by the builders before save.
	conversionjob.BatchSizeValidator = conversionjobDescBatchSize.Validators[0].(func(int) error)
	// conversionjobDescCreatedAt is the schema descriptor for created_at field.
	conversionjobDescCreatedAt := conversionjobFields[22].Descriptor()
	// conversionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversionjob.DefaultCreatedAt = conversionjobDescCreatedAt.Default.(func() time.Time)
	// conversionjobDescUpdatedAt is the schema descriptor for updated_at field.
	conversionjobDescUpdatedAt := conversionjobFields[23].Descriptor()
	// conversionjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversionjob.DefaultUpdatedAt = conversionjobDescUpdatedAt.Default.(func() time.Time)
	// conversionjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversionjob.UpdateDefaultUpdatedAt = conversionjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conversionjobDescID is the schema descriptor for id field.
	conversionjobDescID := conversionjobFields[0].Descriptor()
	// conversionjob.DefaultID holds the default value on creation for the id field.
	conversionjob.DefaultID = conversionjobDescID.Default.(func() uuid.UUID)
	frameFields := schema.Frame{}.Fields()
	_ = frameFields
	// frameDescFilename is the schema descriptor for filename field.
	frameDescFilename := frameFields[2].Descriptor()
	// frame.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	frame.FilenameValidator = frameDescFilename.Validators[0].(func(string) error)
	// frameDescBaseKey is the schema descriptor for base_key field.
	frameDescBaseKey := frameFields[3].Descriptor()
	// frame.BaseKeyValidator is a validator for the "base_key" field. It is called by the builders before save.
	frame.BaseKeyValidator = frameDescBaseKey.Validators[0].(func(string) error)
	// frameDescFrameIndex is the schema descriptor for frame_index field.
	frameDescFrameIndex := frameFields[4].Descriptor()
	// frame.FrameIndexValidator is a validator for the "frame_index" field. It is called by the builders before save.
	frame.FrameIndexValidator = frameDescFrameIndex.Validators[0].(func(int) error)
	// frameDescText is the schema descriptor for text field.
	frameDescText := frameFields[5].Descriptor()
	// frame.DefaultText holds the default value on creation for the text field.
	frame.DefaultText = frameDescText.Default.(string)
	// frameDescID is the schema descriptor for id field.
	frameDescID := frameFields[0].Descriptor()
	// frame.DefaultID holds the default value on creation for the id field.
	frame.DefaultID = frameDescID.Default.(func() uuid.UUID)
	pipelinestepFields := schema.PipelineStep{}.Fields()
	_ = pipelinestepFields
	// pipelinestepDescName is the schema descriptor for name field.
	pipelinestepDescName := pipelinestepFields[2].Descriptor()
	// pipelinestep.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pipelinestep.NameValidator = pipelinestepDescName.Validators[0].(func(string) error)
	// pipelinestepDescCompletedAt is the schema descriptor for completed_at field.
	pipelinestepDescCompletedAt := pipelinestepFields[4].Descriptor()
	// pipelinestep.DefaultCompletedAt holds the default value on creation for the completed_at field.
	pipelinestep.DefaultCompletedAt = pipelinestepDescCompletedAt.Default.(func() time.Time)
	// pipelinestepDescID is the schema descriptor for id field.
	pipelinestepDescID := pipelinestepFields[0].Descriptor()
	// pipelinestep.DefaultID holds the default value on creation for the id field.
	pipelinestep.DefaultID = pipelinestepDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}

// Code generated by ent, DO NOT EDIT.

package conversionjob

import (
	"framescribe/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldProfileID, v))
}

// ParentJobID applies equality check predicate on the "parent_job_id" field. It's identical to ParentJobIDEQ.
func ParentJobID(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldParentJobID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldKind, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldStatus, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldStep, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ArchiveKey applies equality check predicate on the "archive_key" field. It's identical to ArchiveKeyEQ.
func ArchiveKey(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldArchiveKey, v))
}

// FilteredArchiveKey applies equality check predicate on the "filtered_archive_key" field. It's identical to FilteredArchiveKeyEQ.
func FilteredArchiveKey(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldFilteredArchiveKey, v))
}

// ThumbnailKey applies equality check predicate on the "thumbnail_key" field. It's identical to ThumbnailKeyEQ.
func ThumbnailKey(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldThumbnailKey, v))
}

// TextDocKey applies equality check predicate on the "text_doc_key" field. It's identical to TextDocKeyEQ.
func TextDocKey(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldTextDocKey, v))
}

// RichDocKey applies equality check predicate on the "rich_doc_key" field. It's identical to RichDocKeyEQ.
func RichDocKey(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldRichDocKey, v))
}

// TextDocSize applies equality check predicate on the "text_doc_size" field. It's identical to TextDocSizeEQ.
func TextDocSize(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldTextDocSize, v))
}

// RichDocSize applies equality check predicate on the "rich_doc_size" field. It's identical to RichDocSizeEQ.
func RichDocSize(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldRichDocSize, v))
}

// TotalImages applies equality check predicate on the "total_images" field. It's identical to TotalImagesEQ.
func TotalImages(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldTotalImages, v))
}

// PreprocessedImages applies equality check predicate on the "preprocessed_images" field. It's identical to PreprocessedImagesEQ.
func PreprocessedImages(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldPreprocessedImages, v))
}

// SubmittedImages applies equality check predicate on the "submitted_images" field. It's identical to SubmittedImagesEQ.
func SubmittedImages(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldSubmittedImages, v))
}

// TotalBatches applies equality check predicate on the "total_batches" field. It's identical to TotalBatchesEQ.
func TotalBatches(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldTotalBatches, v))
}

// CompletedBatches applies equality check predicate on the "completed_batches" field. It's identical to CompletedBatchesEQ.
func CompletedBatches(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldCompletedBatches, v))
}

// BatchSize applies equality check predicate on the "batch_size" field. It's identical to BatchSizeEQ.
func BatchSize(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldBatchSize, v))
}

// CurrentBatchID applies equality check predicate on the "current_batch_id" field. It's identical to CurrentBatchIDEQ.
func CurrentBatchID(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldCurrentBatchID, v))
}

// CurrentInputFileID applies equality check predicate on the "current_input_file_id" field. It's identical to CurrentInputFileIDEQ.
func CurrentInputFileID(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldCurrentInputFileID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldProfileID, vs...))
}

// ParentJobIDEQ applies the EQ predicate on the "parent_job_id" field.
func ParentJobIDEQ(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldParentJobID, v))
}

// ParentJobIDNEQ applies the NEQ predicate on the "parent_job_id" field.
func ParentJobIDNEQ(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldParentJobID, v))
}

// ParentJobIDIn applies the In predicate on the "parent_job_id" field.
func ParentJobIDIn(vs ...uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldParentJobID, vs...))
}

// ParentJobIDNotIn applies the NotIn predicate on the "parent_job_id" field.
func ParentJobIDNotIn(vs ...uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldParentJobID, vs...))
}

// ParentJobIDGT applies the GT predicate on the "parent_job_id" field.
func ParentJobIDGT(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldParentJobID, v))
}

// ParentJobIDGTE applies the GTE predicate on the "parent_job_id" field.
func ParentJobIDGTE(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldParentJobID, v))
}

// ParentJobIDLT applies the LT predicate on the "parent_job_id" field.
func ParentJobIDLT(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldParentJobID, v))
}

// ParentJobIDLTE applies the LTE predicate on the "parent_job_id" field.
func ParentJobIDLTE(v uuid.UUID) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldParentJobID, v))
}

// ParentJobIDIsNil applies the IsNil predicate on the "parent_job_id" field.
func ParentJobIDIsNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIsNull(FieldParentJobID))
}

// ParentJobIDNotNil applies the NotNil predicate on the "parent_job_id" field.
func ParentJobIDNotNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotNull(FieldParentJobID))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldKind, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldStatus, v))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldStep, v))
}

// StepContains applies the Contains predicate on the "step" field.
func StepContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldStep, v))
}

// StepHasPrefix applies the HasPrefix predicate on the "step" field.
func StepHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldStep, v))
}

// StepHasSuffix applies the HasSuffix predicate on the "step" field.
func StepHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldStep, v))
}

// StepEqualFold applies the EqualFold predicate on the "step" field.
func StepEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldStep, v))
}

// StepContainsFold applies the ContainsFold predicate on the "step" field.
func StepContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldStep, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ArchiveKeyEQ applies the EQ predicate on the "archive_key" field.
func ArchiveKeyEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldArchiveKey, v))
}

// ArchiveKeyNEQ applies the NEQ predicate on the "archive_key" field.
func ArchiveKeyNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldArchiveKey, v))
}

// ArchiveKeyIn applies the In predicate on the "archive_key" field.
func ArchiveKeyIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldArchiveKey, vs...))
}

// ArchiveKeyNotIn applies the NotIn predicate on the "archive_key" field.
func ArchiveKeyNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldArchiveKey, vs...))
}

// ArchiveKeyGT applies the GT predicate on the "archive_key" field.
func ArchiveKeyGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldArchiveKey, v))
}

// ArchiveKeyGTE applies the GTE predicate on the "archive_key" field.
func ArchiveKeyGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldArchiveKey, v))
}

// ArchiveKeyLT applies the LT predicate on the "archive_key" field.
func ArchiveKeyLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldArchiveKey, v))
}

// ArchiveKeyLTE applies the LTE predicate on the "archive_key" field.
func ArchiveKeyLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldArchiveKey, v))
}

// ArchiveKeyContains applies the Contains predicate on the "archive_key" field.
func ArchiveKeyContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldArchiveKey, v))
}

// ArchiveKeyHasPrefix applies the HasPrefix predicate on the "archive_key" field.
func ArchiveKeyHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldArchiveKey, v))
}

// ArchiveKeyHasSuffix applies the HasSuffix predicate on the "archive_key" field.
func ArchiveKeyHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldArchiveKey, v))
}

// ArchiveKeyEqualFold applies the EqualFold predicate on the "archive_key" field.
func ArchiveKeyEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldArchiveKey, v))
}

// ArchiveKeyContainsFold applies the ContainsFold predicate on the "archive_key" field.
func ArchiveKeyContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldArchiveKey, v))
}

// FilteredArchiveKeyEQ applies the EQ predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyNEQ applies the NEQ predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyIn applies the In predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldFilteredArchiveKey, vs...))
}

// FilteredArchiveKeyNotIn applies the NotIn predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldFilteredArchiveKey, vs...))
}

// FilteredArchiveKeyGT applies the GT predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyGTE applies the GTE predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyLT applies the LT predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyLTE applies the LTE predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyContains applies the Contains predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyHasPrefix applies the HasPrefix predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyHasSuffix applies the HasSuffix predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyIsNil applies the IsNil predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyIsNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIsNull(FieldFilteredArchiveKey))
}

// FilteredArchiveKeyNotNil applies the NotNil predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyNotNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotNull(FieldFilteredArchiveKey))
}

// FilteredArchiveKeyEqualFold applies the EqualFold predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldFilteredArchiveKey, v))
}

// FilteredArchiveKeyContainsFold applies the ContainsFold predicate on the "filtered_archive_key" field.
func FilteredArchiveKeyContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldFilteredArchiveKey, v))
}

// ThumbnailKeyEQ applies the EQ predicate on the "thumbnail_key" field.
func ThumbnailKeyEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldThumbnailKey, v))
}

// ThumbnailKeyNEQ applies the NEQ predicate on the "thumbnail_key" field.
func ThumbnailKeyNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldThumbnailKey, v))
}

// ThumbnailKeyIn applies the In predicate on the "thumbnail_key" field.
func ThumbnailKeyIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldThumbnailKey, vs...))
}

// ThumbnailKeyNotIn applies the NotIn predicate on the "thumbnail_key" field.
func ThumbnailKeyNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldThumbnailKey, vs...))
}

// ThumbnailKeyGT applies the GT predicate on the "thumbnail_key" field.
func ThumbnailKeyGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldThumbnailKey, v))
}

// ThumbnailKeyGTE applies the GTE predicate on the "thumbnail_key" field.
func ThumbnailKeyGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldThumbnailKey, v))
}

// ThumbnailKeyLT applies the LT predicate on the "thumbnail_key" field.
func ThumbnailKeyLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldThumbnailKey, v))
}

// ThumbnailKeyLTE applies the LTE predicate on the "thumbnail_key" field.
func ThumbnailKeyLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldThumbnailKey, v))
}

// ThumbnailKeyContains applies the Contains predicate on the "thumbnail_key" field.
func ThumbnailKeyContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldThumbnailKey, v))
}

// ThumbnailKeyHasPrefix applies the HasPrefix predicate on the "thumbnail_key" field.
func ThumbnailKeyHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldThumbnailKey, v))
}

// ThumbnailKeyHasSuffix applies the HasSuffix predicate on the "thumbnail_key" field.
func ThumbnailKeyHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldThumbnailKey, v))
}

// ThumbnailKeyIsNil applies the IsNil predicate on the "thumbnail_key" field.
func ThumbnailKeyIsNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIsNull(FieldThumbnailKey))
}

// ThumbnailKeyNotNil applies the NotNil predicate on the "thumbnail_key" field.
func ThumbnailKeyNotNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotNull(FieldThumbnailKey))
}

// ThumbnailKeyEqualFold applies the EqualFold predicate on the "thumbnail_key" field.
func ThumbnailKeyEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldThumbnailKey, v))
}

// ThumbnailKeyContainsFold applies the ContainsFold predicate on the "thumbnail_key" field.
func ThumbnailKeyContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldThumbnailKey, v))
}

// TextDocKeyEQ applies the EQ predicate on the "text_doc_key" field.
func TextDocKeyEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldTextDocKey, v))
}

// TextDocKeyNEQ applies the NEQ predicate on the "text_doc_key" field.
func TextDocKeyNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldTextDocKey, v))
}

// TextDocKeyIn applies the In predicate on the "text_doc_key" field.
func TextDocKeyIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldTextDocKey, vs...))
}

// TextDocKeyNotIn applies the NotIn predicate on the "text_doc_key" field.
func TextDocKeyNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldTextDocKey, vs...))
}

// TextDocKeyGT applies the GT predicate on the "text_doc_key" field.
func TextDocKeyGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldTextDocKey, v))
}

// TextDocKeyGTE applies the GTE predicate on the "text_doc_key" field.
func TextDocKeyGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldTextDocKey, v))
}

// TextDocKeyLT applies the LT predicate on the "text_doc_key" field.
func TextDocKeyLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldTextDocKey, v))
}

// TextDocKeyLTE applies the LTE predicate on the "text_doc_key" field.
func TextDocKeyLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldTextDocKey, v))
}

// TextDocKeyContains applies the Contains predicate on the "text_doc_key" field.
func TextDocKeyContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldTextDocKey, v))
}

// TextDocKeyHasPrefix applies the HasPrefix predicate on the "text_doc_key" field.
func TextDocKeyHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldTextDocKey, v))
}

// TextDocKeyHasSuffix applies the HasSuffix predicate on the "text_doc_key" field.
func TextDocKeyHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldTextDocKey, v))
}

// TextDocKeyIsNil applies the IsNil predicate on the "text_doc_key" field.
func TextDocKeyIsNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIsNull(FieldTextDocKey))
}

// TextDocKeyNotNil applies the NotNil predicate on the "text_doc_key" field.
func TextDocKeyNotNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotNull(FieldTextDocKey))
}

// TextDocKeyEqualFold applies the EqualFold predicate on the "text_doc_key" field.
func TextDocKeyEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldTextDocKey, v))
}

// TextDocKeyContainsFold applies the ContainsFold predicate on the "text_doc_key" field.
func TextDocKeyContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldTextDocKey, v))
}

// RichDocKeyEQ applies the EQ predicate on the "rich_doc_key" field.
func RichDocKeyEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldRichDocKey, v))
}

// RichDocKeyNEQ applies the NEQ predicate on the "rich_doc_key" field.
func RichDocKeyNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldRichDocKey, v))
}

// RichDocKeyIn applies the In predicate on the "rich_doc_key" field.
func RichDocKeyIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldRichDocKey, vs...))
}

// RichDocKeyNotIn applies the NotIn predicate on the "rich_doc_key" field.
func RichDocKeyNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldRichDocKey, vs...))
}

// RichDocKeyGT applies the GT predicate on the "rich_doc_key" field.
func RichDocKeyGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldRichDocKey, v))
}

// RichDocKeyGTE applies the GTE predicate on the "rich_doc_key" field.
func RichDocKeyGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldRichDocKey, v))
}

// RichDocKeyLT applies the LT predicate on the "rich_doc_key" field.
func RichDocKeyLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldRichDocKey, v))
}

// RichDocKeyLTE applies the LTE predicate on the "rich_doc_key" field.
func RichDocKeyLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldRichDocKey, v))
}

// RichDocKeyContains applies the Contains predicate on the "rich_doc_key" field.
func RichDocKeyContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldRichDocKey, v))
}

// RichDocKeyHasPrefix applies the HasPrefix predicate on the "rich_doc_key" field.
func RichDocKeyHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldRichDocKey, v))
}

// RichDocKeyHasSuffix applies the HasSuffix predicate on the "rich_doc_key" field.
func RichDocKeyHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldRichDocKey, v))
}

// RichDocKeyIsNil applies the IsNil predicate on the "rich_doc_key" field.
func RichDocKeyIsNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIsNull(FieldRichDocKey))
}

// RichDocKeyNotNil applies the NotNil predicate on the "rich_doc_key" field.
func RichDocKeyNotNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotNull(FieldRichDocKey))
}

// RichDocKeyEqualFold applies the EqualFold predicate on the "rich_doc_key" field.
func RichDocKeyEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldRichDocKey, v))
}

// RichDocKeyContainsFold applies the ContainsFold predicate on the "rich_doc_key" field.
func RichDocKeyContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldRichDocKey, v))
}

// TextDocSizeEQ applies the EQ predicate on the "text_doc_size" field.
func TextDocSizeEQ(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldTextDocSize, v))
}

// TextDocSizeNEQ applies the NEQ predicate on the "text_doc_size" field.
func TextDocSizeNEQ(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldTextDocSize, v))
}

// TextDocSizeIn applies the In predicate on the "text_doc_size" field.
func TextDocSizeIn(vs ...int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldTextDocSize, vs...))
}

// TextDocSizeNotIn applies the NotIn predicate on the "text_doc_size" field.
func TextDocSizeNotIn(vs ...int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldTextDocSize, vs...))
}

// TextDocSizeGT applies the GT predicate on the "text_doc_size" field.
func TextDocSizeGT(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldTextDocSize, v))
}

// TextDocSizeGTE applies the GTE predicate on the "text_doc_size" field.
func TextDocSizeGTE(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldTextDocSize, v))
}

// TextDocSizeLT applies the LT predicate on the "text_doc_size" field.
func TextDocSizeLT(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldTextDocSize, v))
}

// TextDocSizeLTE applies the LTE predicate on the "text_doc_size" field.
func TextDocSizeLTE(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldTextDocSize, v))
}

// RichDocSizeEQ applies the EQ predicate on the "rich_doc_size" field.
func RichDocSizeEQ(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldRichDocSize, v))
}

// RichDocSizeNEQ applies the NEQ predicate on the "rich_doc_size" field.
func RichDocSizeNEQ(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldRichDocSize, v))
}

// RichDocSizeIn applies the In predicate on the "rich_doc_size" field.
func RichDocSizeIn(vs ...int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldRichDocSize, vs...))
}

// RichDocSizeNotIn applies the NotIn predicate on the "rich_doc_size" field.
func RichDocSizeNotIn(vs ...int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldRichDocSize, vs...))
}

// RichDocSizeGT applies the GT predicate on the "rich_doc_size" field.
func RichDocSizeGT(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldRichDocSize, v))
}

// RichDocSizeGTE applies the GTE predicate on the "rich_doc_size" field.
func RichDocSizeGTE(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldRichDocSize, v))
}

// RichDocSizeLT applies the LT predicate on the "rich_doc_size" field.
func RichDocSizeLT(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldRichDocSize, v))
}

// RichDocSizeLTE applies the LTE predicate on the "rich_doc_size" field.
func RichDocSizeLTE(v int64) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldRichDocSize, v))
}

// TotalImagesEQ applies the EQ predicate on the "total_images" field.
func TotalImagesEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldTotalImages, v))
}

// TotalImagesNEQ applies the NEQ predicate on the "total_images" field.
func TotalImagesNEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldTotalImages, v))
}

// TotalImagesIn applies the In predicate on the "total_images" field.
func TotalImagesIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldTotalImages, vs...))
}

// TotalImagesNotIn applies the NotIn predicate on the "total_images" field.
func TotalImagesNotIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldTotalImages, vs...))
}

// TotalImagesGT applies the GT predicate on the "total_images" field.
func TotalImagesGT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldTotalImages, v))
}

// TotalImagesGTE applies the GTE predicate on the "total_images" field.
func TotalImagesGTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldTotalImages, v))
}

// TotalImagesLT applies the LT predicate on the "total_images" field.
func TotalImagesLT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldTotalImages, v))
}

// TotalImagesLTE applies the LTE predicate on the "total_images" field.
func TotalImagesLTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldTotalImages, v))
}

// PreprocessedImagesEQ applies the EQ predicate on the "preprocessed_images" field.
func PreprocessedImagesEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldPreprocessedImages, v))
}

// PreprocessedImagesNEQ applies the NEQ predicate on the "preprocessed_images" field.
func PreprocessedImagesNEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldPreprocessedImages, v))
}

// PreprocessedImagesIn applies the In predicate on the "preprocessed_images" field.
func PreprocessedImagesIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldPreprocessedImages, vs...))
}

// PreprocessedImagesNotIn applies the NotIn predicate on the "preprocessed_images" field.
func PreprocessedImagesNotIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldPreprocessedImages, vs...))
}

// PreprocessedImagesGT applies the GT predicate on the "preprocessed_images" field.
func PreprocessedImagesGT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldPreprocessedImages, v))
}

// PreprocessedImagesGTE applies the GTE predicate on the "preprocessed_images" field.
func PreprocessedImagesGTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldPreprocessedImages, v))
}

// PreprocessedImagesLT applies the LT predicate on the "preprocessed_images" field.
func PreprocessedImagesLT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldPreprocessedImages, v))
}

// PreprocessedImagesLTE applies the LTE predicate on the "preprocessed_images" field.
func PreprocessedImagesLTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldPreprocessedImages, v))
}

// SubmittedImagesEQ applies the EQ predicate on the "submitted_images" field.
func SubmittedImagesEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldSubmittedImages, v))
}

// SubmittedImagesNEQ applies the NEQ predicate on the "submitted_images" field.
func SubmittedImagesNEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldSubmittedImages, v))
}

// SubmittedImagesIn applies the In predicate on the "submitted_images" field.
func SubmittedImagesIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldSubmittedImages, vs...))
}

// SubmittedImagesNotIn applies the NotIn predicate on the "submitted_images" field.
func SubmittedImagesNotIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldSubmittedImages, vs...))
}

// SubmittedImagesGT applies the GT predicate on the "submitted_images" field.
func SubmittedImagesGT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldSubmittedImages, v))
}

// SubmittedImagesGTE applies the GTE predicate on the "submitted_images" field.
func SubmittedImagesGTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldSubmittedImages, v))
}

// SubmittedImagesLT applies the LT predicate on the "submitted_images" field.
func SubmittedImagesLT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldSubmittedImages, v))
}

// SubmittedImagesLTE applies the LTE predicate on the "submitted_images" field.
func SubmittedImagesLTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldSubmittedImages, v))
}

// TotalBatchesEQ applies the EQ predicate on the "total_batches" field.
func TotalBatchesEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldTotalBatches, v))
}

// TotalBatchesNEQ applies the NEQ predicate on the "total_batches" field.
func TotalBatchesNEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldTotalBatches, v))
}

// TotalBatchesIn applies the In predicate on the "total_batches" field.
func TotalBatchesIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldTotalBatches, vs...))
}

// TotalBatchesNotIn applies the NotIn predicate on the "total_batches" field.
func TotalBatchesNotIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldTotalBatches, vs...))
}

// TotalBatchesGT applies the GT predicate on the "total_batches" field.
func TotalBatchesGT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldTotalBatches, v))
}

// TotalBatchesGTE applies the GTE predicate on the "total_batches" field.
func TotalBatchesGTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldTotalBatches, v))
}

// TotalBatchesLT applies the LT predicate on the "total_batches" field.
func TotalBatchesLT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldTotalBatches, v))
}

// TotalBatchesLTE applies the LTE predicate on the "total_batches" field.
func TotalBatchesLTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldTotalBatches, v))
}

// CompletedBatchesEQ applies the EQ predicate on the "completed_batches" field.
func CompletedBatchesEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldCompletedBatches, v))
}

// CompletedBatchesNEQ applies the NEQ predicate on the "completed_batches" field.
func CompletedBatchesNEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldCompletedBatches, v))
}

// CompletedBatchesIn applies the In predicate on the "completed_batches" field.
func CompletedBatchesIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldCompletedBatches, vs...))
}

// CompletedBatchesNotIn applies the NotIn predicate on the "completed_batches" field.
func CompletedBatchesNotIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldCompletedBatches, vs...))
}

// CompletedBatchesGT applies the GT predicate on the "completed_batches" field.
func CompletedBatchesGT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldCompletedBatches, v))
}

// CompletedBatchesGTE applies the GTE predicate on the "completed_batches" field.
func CompletedBatchesGTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldCompletedBatches, v))
}

// CompletedBatchesLT applies the LT predicate on the "completed_batches" field.
func CompletedBatchesLT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldCompletedBatches, v))
}

// CompletedBatchesLTE applies the LTE predicate on the "completed_batches" field.
func CompletedBatchesLTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldCompletedBatches, v))
}

// BatchSizeEQ applies the EQ predicate on the "batch_size" field.
func BatchSizeEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldBatchSize, v))
}

// BatchSizeNEQ applies the NEQ predicate on the "batch_size" field.
func BatchSizeNEQ(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldBatchSize, v))
}

// BatchSizeIn applies the In predicate on the "batch_size" field.
func BatchSizeIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldBatchSize, vs...))
}

// BatchSizeNotIn applies the NotIn predicate on the "batch_size" field.
func BatchSizeNotIn(vs ...int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldBatchSize, vs...))
}

// BatchSizeGT applies the GT predicate on the "batch_size" field.
func BatchSizeGT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldBatchSize, v))
}

// BatchSizeGTE applies the GTE predicate on the "batch_size" field.
func BatchSizeGTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldBatchSize, v))
}

// BatchSizeLT applies the LT predicate on the "batch_size" field.
func BatchSizeLT(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldBatchSize, v))
}

// BatchSizeLTE applies the LTE predicate on the "batch_size" field.
func BatchSizeLTE(v int) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldBatchSize, v))
}

// CurrentBatchIDEQ applies the EQ predicate on the "current_batch_id" field.
func CurrentBatchIDEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldCurrentBatchID, v))
}

// CurrentBatchIDNEQ applies the NEQ predicate on the "current_batch_id" field.
func CurrentBatchIDNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldCurrentBatchID, v))
}

// CurrentBatchIDIn applies the In predicate on the "current_batch_id" field.
func CurrentBatchIDIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldCurrentBatchID, vs...))
}

// CurrentBatchIDNotIn applies the NotIn predicate on the "current_batch_id" field.
func CurrentBatchIDNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldCurrentBatchID, vs...))
}

// CurrentBatchIDGT applies the GT predicate on the "current_batch_id" field.
func CurrentBatchIDGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldCurrentBatchID, v))
}

// CurrentBatchIDGTE applies the GTE predicate on the "current_batch_id" field.
func CurrentBatchIDGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldCurrentBatchID, v))
}

// CurrentBatchIDLT applies the LT predicate on the "current_batch_id" field.
func CurrentBatchIDLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldCurrentBatchID, v))
}

// CurrentBatchIDLTE applies the LTE predicate on the "current_batch_id" field.
func CurrentBatchIDLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldCurrentBatchID, v))
}

// CurrentBatchIDContains applies the Contains predicate on the "current_batch_id" field.
func CurrentBatchIDContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldCurrentBatchID, v))
}

// CurrentBatchIDHasPrefix applies the HasPrefix predicate on the "current_batch_id" field.
func CurrentBatchIDHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldCurrentBatchID, v))
}

// CurrentBatchIDHasSuffix applies the HasSuffix predicate on the "current_batch_id" field.
func CurrentBatchIDHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldCurrentBatchID, v))
}

// CurrentBatchIDIsNil applies the IsNil predicate on the "current_batch_id" field.
func CurrentBatchIDIsNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIsNull(FieldCurrentBatchID))
}

// CurrentBatchIDNotNil applies the NotNil predicate on the "current_batch_id" field.
func CurrentBatchIDNotNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotNull(FieldCurrentBatchID))
}

// CurrentBatchIDEqualFold applies the EqualFold predicate on the "current_batch_id" field.
func CurrentBatchIDEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldCurrentBatchID, v))
}

// CurrentBatchIDContainsFold applies the ContainsFold predicate on the "current_batch_id" field.
func CurrentBatchIDContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldCurrentBatchID, v))
}

// CurrentInputFileIDEQ applies the EQ predicate on the "current_input_file_id" field.
func CurrentInputFileIDEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDNEQ applies the NEQ predicate on the "current_input_file_id" field.
func CurrentInputFileIDNEQ(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDIn applies the In predicate on the "current_input_file_id" field.
func CurrentInputFileIDIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldCurrentInputFileID, vs...))
}

// CurrentInputFileIDNotIn applies the NotIn predicate on the "current_input_file_id" field.
func CurrentInputFileIDNotIn(vs ...string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldCurrentInputFileID, vs...))
}

// CurrentInputFileIDGT applies the GT predicate on the "current_input_file_id" field.
func CurrentInputFileIDGT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDGTE applies the GTE predicate on the "current_input_file_id" field.
func CurrentInputFileIDGTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDLT applies the LT predicate on the "current_input_file_id" field.
func CurrentInputFileIDLT(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDLTE applies the LTE predicate on the "current_input_file_id" field.
func CurrentInputFileIDLTE(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDContains applies the Contains predicate on the "current_input_file_id" field.
func CurrentInputFileIDContains(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContains(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDHasPrefix applies the HasPrefix predicate on the "current_input_file_id" field.
func CurrentInputFileIDHasPrefix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasPrefix(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDHasSuffix applies the HasSuffix predicate on the "current_input_file_id" field.
func CurrentInputFileIDHasSuffix(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldHasSuffix(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDIsNil applies the IsNil predicate on the "current_input_file_id" field.
func CurrentInputFileIDIsNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIsNull(FieldCurrentInputFileID))
}

// CurrentInputFileIDNotNil applies the NotNil predicate on the "current_input_file_id" field.
func CurrentInputFileIDNotNil() predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotNull(FieldCurrentInputFileID))
}

// CurrentInputFileIDEqualFold applies the EqualFold predicate on the "current_input_file_id" field.
func CurrentInputFileIDEqualFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEqualFold(FieldCurrentInputFileID, v))
}

// CurrentInputFileIDContainsFold applies the ContainsFold predicate on the "current_input_file_id" field.
func CurrentInputFileIDContainsFold(v string) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldContainsFold(FieldCurrentInputFileID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConversionJob {
	return predicate.ConversionJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.ConversionJob {
	return predicate.ConversionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.ConversionJob {
	return predicate.ConversionJob(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFrames applies the HasEdge predicate on the "frames" edge.
func HasFrames() predicate.ConversionJob {
	return predicate.ConversionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FramesTable, FramesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFramesWith applies the HasEdge predicate on the "frames" edge with a given conditions (other predicates).
func HasFramesWith(preds ...predicate.Frame) predicate.ConversionJob {
	return predicate.ConversionJob(func(s *sql.Selector) {
		step := newFramesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBatches applies the HasEdge predicate on the "batches" edge.
func HasBatches() predicate.ConversionJob {
	return predicate.ConversionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchesWith applies the HasEdge predicate on the "batches" edge with a given conditions (other predicates).
func HasBatchesWith(preds ...predicate.BatchSubmission) predicate.ConversionJob {
	return predicate.ConversionJob(func(s *sql.Selector) {
		step := newBatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.ConversionJob {
	return predicate.ConversionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.PipelineStep) predicate.ConversionJob {
	return predicate.ConversionJob(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversionJob) predicate.ConversionJob {
	return predicate.ConversionJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversionJob) predicate.ConversionJob {
	return predicate.ConversionJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversionJob) predicate.ConversionJob {
	return predicate.ConversionJob(sql.NotPredicates(p))
}

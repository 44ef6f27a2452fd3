// Code generated by ent, DO NOT EDIT.

package batchsubmission

import (
	"framescribe/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldJobID, v))
}

// BatchIndex applies equality check predicate on the "batch_index" field. It's identical to BatchIndexEQ.
func BatchIndex(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldBatchIndex, v))
}

// ProviderBatchID applies equality check predicate on the "provider_batch_id" field. It's identical to ProviderBatchIDEQ.
func ProviderBatchID(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldProviderBatchID, v))
}

// InputFileID applies equality check predicate on the "input_file_id" field. It's identical to InputFileIDEQ.
func InputFileID(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldInputFileID, v))
}

// OutputFileID applies equality check predicate on the "output_file_id" field. It's identical to OutputFileIDEQ.
func OutputFileID(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldOutputFileID, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldItemCount, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldState, v))
}

// Supplementary applies equality check predicate on the "supplementary" field. It's identical to SupplementaryEQ.
func Supplementary(v bool) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldSupplementary, v))
}

// NextPollAt applies equality check predicate on the "next_poll_at" field. It's identical to NextPollAtEQ.
func NextPollAt(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldNextPollAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldJobID, vs...))
}

// BatchIndexEQ applies the EQ predicate on the "batch_index" field.
func BatchIndexEQ(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldBatchIndex, v))
}

// BatchIndexNEQ applies the NEQ predicate on the "batch_index" field.
func BatchIndexNEQ(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldBatchIndex, v))
}

// BatchIndexIn applies the In predicate on the "batch_index" field.
func BatchIndexIn(vs ...int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldBatchIndex, vs...))
}

// BatchIndexNotIn applies the NotIn predicate on the "batch_index" field.
func BatchIndexNotIn(vs ...int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldBatchIndex, vs...))
}

// BatchIndexGT applies the GT predicate on the "batch_index" field.
func BatchIndexGT(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldBatchIndex, v))
}

// BatchIndexGTE applies the GTE predicate on the "batch_index" field.
func BatchIndexGTE(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldBatchIndex, v))
}

// BatchIndexLT applies the LT predicate on the "batch_index" field.
func BatchIndexLT(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldBatchIndex, v))
}

// BatchIndexLTE applies the LTE predicate on the "batch_index" field.
func BatchIndexLTE(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldBatchIndex, v))
}

// ProviderBatchIDEQ applies the EQ predicate on the "provider_batch_id" field.
func ProviderBatchIDEQ(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldProviderBatchID, v))
}

// ProviderBatchIDNEQ applies the NEQ predicate on the "provider_batch_id" field.
func ProviderBatchIDNEQ(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldProviderBatchID, v))
}

// ProviderBatchIDIn applies the In predicate on the "provider_batch_id" field.
func ProviderBatchIDIn(vs ...string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldProviderBatchID, vs...))
}

// ProviderBatchIDNotIn applies the NotIn predicate on the "provider_batch_id" field.
func ProviderBatchIDNotIn(vs ...string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldProviderBatchID, vs...))
}

// ProviderBatchIDGT applies the GT predicate on the "provider_batch_id" field.
func ProviderBatchIDGT(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldProviderBatchID, v))
}

// ProviderBatchIDGTE applies the GTE predicate on the "provider_batch_id" field.
func ProviderBatchIDGTE(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldProviderBatchID, v))
}

// ProviderBatchIDLT applies the LT predicate on the "provider_batch_id" field.
func ProviderBatchIDLT(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldProviderBatchID, v))
}

// ProviderBatchIDLTE applies the LTE predicate on the "provider_batch_id" field.
func ProviderBatchIDLTE(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldProviderBatchID, v))
}

// ProviderBatchIDContains applies the Contains predicate on the "provider_batch_id" field.
func ProviderBatchIDContains(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldContains(FieldProviderBatchID, v))
}

// ProviderBatchIDHasPrefix applies the HasPrefix predicate on the "provider_batch_id" field.
func ProviderBatchIDHasPrefix(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldHasPrefix(FieldProviderBatchID, v))
}

// ProviderBatchIDHasSuffix applies the HasSuffix predicate on the "provider_batch_id" field.
func ProviderBatchIDHasSuffix(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldHasSuffix(FieldProviderBatchID, v))
}

// ProviderBatchIDIsNil applies the IsNil predicate on the "provider_batch_id" field.
func ProviderBatchIDIsNil() predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIsNull(FieldProviderBatchID))
}

// ProviderBatchIDNotNil applies the NotNil predicate on the "provider_batch_id" field.
func ProviderBatchIDNotNil() predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotNull(FieldProviderBatchID))
}

// ProviderBatchIDEqualFold applies the EqualFold predicate on the "provider_batch_id" field.
func ProviderBatchIDEqualFold(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEqualFold(FieldProviderBatchID, v))
}

// ProviderBatchIDContainsFold applies the ContainsFold predicate on the "provider_batch_id" field.
func ProviderBatchIDContainsFold(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldContainsFold(FieldProviderBatchID, v))
}

// InputFileIDEQ applies the EQ predicate on the "input_file_id" field.
func InputFileIDEQ(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldInputFileID, v))
}

// InputFileIDNEQ applies the NEQ predicate on the "input_file_id" field.
func InputFileIDNEQ(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldInputFileID, v))
}

// InputFileIDIn applies the In predicate on the "input_file_id" field.
func InputFileIDIn(vs ...string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldInputFileID, vs...))
}

// InputFileIDNotIn applies the NotIn predicate on the "input_file_id" field.
func InputFileIDNotIn(vs ...string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldInputFileID, vs...))
}

// InputFileIDGT applies the GT predicate on the "input_file_id" field.
func InputFileIDGT(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldInputFileID, v))
}

// InputFileIDGTE applies the GTE predicate on the "input_file_id" field.
func InputFileIDGTE(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldInputFileID, v))
}

// InputFileIDLT applies the LT predicate on the "input_file_id" field.
func InputFileIDLT(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldInputFileID, v))
}

// InputFileIDLTE applies the LTE predicate on the "input_file_id" field.
func InputFileIDLTE(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldInputFileID, v))
}

// InputFileIDContains applies the Contains predicate on the "input_file_id" field.
func InputFileIDContains(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldContains(FieldInputFileID, v))
}

// InputFileIDHasPrefix applies the HasPrefix predicate on the "input_file_id" field.
func InputFileIDHasPrefix(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldHasPrefix(FieldInputFileID, v))
}

// InputFileIDHasSuffix applies the HasSuffix predicate on the "input_file_id" field.
func InputFileIDHasSuffix(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldHasSuffix(FieldInputFileID, v))
}

// InputFileIDIsNil applies the IsNil predicate on the "input_file_id" field.
func InputFileIDIsNil() predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIsNull(FieldInputFileID))
}

// InputFileIDNotNil applies the NotNil predicate on the "input_file_id" field.
func InputFileIDNotNil() predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotNull(FieldInputFileID))
}

// InputFileIDEqualFold applies the EqualFold predicate on the "input_file_id" field.
func InputFileIDEqualFold(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEqualFold(FieldInputFileID, v))
}

// InputFileIDContainsFold applies the ContainsFold predicate on the "input_file_id" field.
func InputFileIDContainsFold(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldContainsFold(FieldInputFileID, v))
}

// OutputFileIDEQ applies the EQ predicate on the "output_file_id" field.
func OutputFileIDEQ(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldOutputFileID, v))
}

// OutputFileIDNEQ applies the NEQ predicate on the "output_file_id" field.
func OutputFileIDNEQ(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldOutputFileID, v))
}

// OutputFileIDIn applies the In predicate on the "output_file_id" field.
func OutputFileIDIn(vs ...string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldOutputFileID, vs...))
}

// OutputFileIDNotIn applies the NotIn predicate on the "output_file_id" field.
func OutputFileIDNotIn(vs ...string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldOutputFileID, vs...))
}

// OutputFileIDGT applies the GT predicate on the "output_file_id" field.
func OutputFileIDGT(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldOutputFileID, v))
}

// OutputFileIDGTE applies the GTE predicate on the "output_file_id" field.
func OutputFileIDGTE(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldOutputFileID, v))
}

// OutputFileIDLT applies the LT predicate on the "output_file_id" field.
func OutputFileIDLT(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldOutputFileID, v))
}

// OutputFileIDLTE applies the LTE predicate on the "output_file_id" field.
func OutputFileIDLTE(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldOutputFileID, v))
}

// OutputFileIDContains applies the Contains predicate on the "output_file_id" field.
func OutputFileIDContains(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldContains(FieldOutputFileID, v))
}

// OutputFileIDHasPrefix applies the HasPrefix predicate on the "output_file_id" field.
func OutputFileIDHasPrefix(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldHasPrefix(FieldOutputFileID, v))
}

// OutputFileIDHasSuffix applies the HasSuffix predicate on the "output_file_id" field.
func OutputFileIDHasSuffix(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldHasSuffix(FieldOutputFileID, v))
}

// OutputFileIDIsNil applies the IsNil predicate on the "output_file_id" field.
func OutputFileIDIsNil() predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIsNull(FieldOutputFileID))
}

// OutputFileIDNotNil applies the NotNil predicate on the "output_file_id" field.
func OutputFileIDNotNil() predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotNull(FieldOutputFileID))
}

// OutputFileIDEqualFold applies the EqualFold predicate on the "output_file_id" field.
func OutputFileIDEqualFold(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEqualFold(FieldOutputFileID, v))
}

// OutputFileIDContainsFold applies the ContainsFold predicate on the "output_file_id" field.
func OutputFileIDContainsFold(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldContainsFold(FieldOutputFileID, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldItemCount, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldContainsFold(FieldState, v))
}

// SupplementaryEQ applies the EQ predicate on the "supplementary" field.
func SupplementaryEQ(v bool) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldSupplementary, v))
}

// SupplementaryNEQ applies the NEQ predicate on the "supplementary" field.
func SupplementaryNEQ(v bool) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldSupplementary, v))
}

// NextPollAtEQ applies the EQ predicate on the "next_poll_at" field.
func NextPollAtEQ(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldNextPollAt, v))
}

// NextPollAtNEQ applies the NEQ predicate on the "next_poll_at" field.
func NextPollAtNEQ(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldNextPollAt, v))
}

// NextPollAtIn applies the In predicate on the "next_poll_at" field.
func NextPollAtIn(vs ...time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldNextPollAt, vs...))
}

// NextPollAtNotIn applies the NotIn predicate on the "next_poll_at" field.
func NextPollAtNotIn(vs ...time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldNextPollAt, vs...))
}

// NextPollAtGT applies the GT predicate on the "next_poll_at" field.
func NextPollAtGT(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldNextPollAt, v))
}

// NextPollAtGTE applies the GTE predicate on the "next_poll_at" field.
func NextPollAtGTE(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldNextPollAt, v))
}

// NextPollAtLT applies the LT predicate on the "next_poll_at" field.
func NextPollAtLT(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldNextPollAt, v))
}

// NextPollAtLTE applies the LTE predicate on the "next_poll_at" field.
func NextPollAtLTE(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldNextPollAt, v))
}

// NextPollAtIsNil applies the IsNil predicate on the "next_poll_at" field.
func NextPollAtIsNil() predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIsNull(FieldNextPollAt))
}

// NextPollAtNotNil applies the NotNil predicate on the "next_poll_at" field.
func NextPollAtNotNil() predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotNull(FieldNextPollAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.BatchSubmission {
	return predicate.BatchSubmission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ConversionJob) predicate.BatchSubmission {
	return predicate.BatchSubmission(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BatchSubmission) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BatchSubmission) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BatchSubmission) predicate.BatchSubmission {
	return predicate.BatchSubmission(sql.NotPredicates(p))
}

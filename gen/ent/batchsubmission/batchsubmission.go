// Code generated by ent, DO NOT EDIT.

package batchsubmission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the batchsubmission type in the database.
	Label = "batch_submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldBatchIndex holds the string denoting the batch_index field in the database.
	FieldBatchIndex = "batch_index"
	// FieldProviderBatchID holds the string denoting the provider_batch_id field in the database.
	FieldProviderBatchID = "provider_batch_id"
	// FieldInputFileID holds the string denoting the input_file_id field in the database.
	FieldInputFileID = "input_file_id"
	// FieldOutputFileID holds the string denoting the output_file_id field in the database.
	FieldOutputFileID = "output_file_id"
	// FieldItemCount holds the string denoting the item_count field in the database.
	FieldItemCount = "item_count"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldSupplementary holds the string denoting the supplementary field in the database.
	FieldSupplementary = "supplementary"
	// FieldNextPollAt holds the string denoting the next_poll_at field in the database.
	FieldNextPollAt = "next_poll_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the batchsubmission in the database.
	Table = "batch_submissions"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "batch_submissions"
	// JobInverseTable is the table name for the ConversionJob entity.
	// It exists in this package in order to avoid circular dependency with the "conversionjob" package.
	JobInverseTable = "conversion_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for batchsubmission fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldBatchIndex,
	FieldProviderBatchID,
	FieldInputFileID,
	FieldOutputFileID,
	FieldItemCount,
	FieldState,
	FieldSupplementary,
	FieldNextPollAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BatchIndexValidator is a validator for the "batch_index" field. It is called by the builders before save.
	BatchIndexValidator func(int) error
	// DefaultItemCount holds the default value on creation for the "item_count" field.
	DefaultItemCount int
	// ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	ItemCountValidator func(int) error
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultSupplementary holds the default value on creation for the "supplementary" field.
	DefaultSupplementary bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BatchSubmission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByBatchIndex orders the results by the batch_index field.
func ByBatchIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchIndex, opts...).ToFunc()
}

// ByProviderBatchID orders the results by the provider_batch_id field.
func ByProviderBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderBatchID, opts...).ToFunc()
}

// ByInputFileID orders the results by the input_file_id field.
func ByInputFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputFileID, opts...).ToFunc()
}

// ByOutputFileID orders the results by the output_file_id field.
func ByOutputFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputFileID, opts...).ToFunc()
}

// ByItemCount orders the results by the item_count field.
func ByItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCount, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// BySupplementary orders the results by the supplementary field.
func BySupplementary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplementary, opts...).ToFunc()
}

// ByNextPollAt orders the results by the next_poll_at field.
func ByNextPollAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextPollAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package conversionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the conversionjob type in the database.
	Label = "conversion_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldParentJobID holds the string denoting the parent_job_id field in the database.
	FieldParentJobID = "parent_job_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldArchiveKey holds the string denoting the archive_key field in the database.
	FieldArchiveKey = "archive_key"
	// FieldFilteredArchiveKey holds the string denoting the filtered_archive_key field in the database.
	FieldFilteredArchiveKey = "filtered_archive_key"
	// FieldThumbnailKey holds the string denoting the thumbnail_key field in the database.
	FieldThumbnailKey = "thumbnail_key"
	// FieldTextDocKey holds the string denoting the text_doc_key field in the database.
	FieldTextDocKey = "text_doc_key"
	// FieldRichDocKey holds the string denoting the rich_doc_key field in the database.
	FieldRichDocKey = "rich_doc_key"
	// FieldTextDocSize holds the string denoting the text_doc_size field in the database.
	FieldTextDocSize = "text_doc_size"
	// FieldRichDocSize holds the string denoting the rich_doc_size field in the database.
	FieldRichDocSize = "rich_doc_size"
	// FieldTotalImages holds the string denoting the total_images field in the database.
	FieldTotalImages = "total_images"
	// FieldPreprocessedImages holds the string denoting the preprocessed_images field in the database.
	FieldPreprocessedImages = "preprocessed_images"
	// FieldSubmittedImages holds the string denoting the submitted_images field in the database.
	FieldSubmittedImages = "submitted_images"
	// FieldTotalBatches holds the string denoting the total_batches field in the database.
	FieldTotalBatches = "total_batches"
	// FieldCompletedBatches holds the string denoting the completed_batches field in the database.
	FieldCompletedBatches = "completed_batches"
	// FieldBatchSize holds the string denoting the batch_size field in the database.
	FieldBatchSize = "batch_size"
	// FieldCurrentBatchID holds the string denoting the current_batch_id field in the database.
	FieldCurrentBatchID = "current_batch_id"
	// FieldCurrentInputFileID holds the string denoting the current_input_file_id field in the database.
	FieldCurrentInputFileID = "current_input_file_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// EdgeFrames holds the string denoting the frames edge name in mutations.
	EdgeFrames = "frames"
	// EdgeBatches holds the string denoting the batches edge name in mutations.
	EdgeBatches = "batches"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// Table holds the table name of the conversionjob in the database.
	Table = "conversion_jobs"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "conversion_jobs"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
	// FramesTable is the table that holds the frames relation/edge.
	FramesTable = "frames"
	// FramesInverseTable is the table name for the Frame entity.
	// It exists in this package in order to avoid circular dependency with the "frame" package.
	FramesInverseTable = "frames"
	// FramesColumn is the table column denoting the frames relation/edge.
	FramesColumn = "job_id"
	// BatchesTable is the table that holds the batches relation/edge.
	BatchesTable = "batch_submissions"
	// BatchesInverseTable is the table name for the BatchSubmission entity.
	// It exists in this package in order to avoid circular dependency with the "batchsubmission" package.
	BatchesInverseTable = "batch_submissions"
	// BatchesColumn is the table column denoting the batches relation/edge.
	BatchesColumn = "job_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "pipeline_steps"
	// StepsInverseTable is the table name for the PipelineStep entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinestep" package.
	StepsInverseTable = "pipeline_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "job_id"
)

// Columns holds all SQL columns for conversionjob fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldParentJobID,
	FieldKind,
	FieldStatus,
	FieldStep,
	FieldErrorMessage,
	FieldArchiveKey,
	FieldFilteredArchiveKey,
	FieldThumbnailKey,
	FieldTextDocKey,
	FieldRichDocKey,
	FieldTextDocSize,
	FieldRichDocSize,
	FieldTotalImages,
	FieldPreprocessedImages,
	FieldSubmittedImages,
	FieldTotalBatches,
	FieldCompletedBatches,
	FieldBatchSize,
	FieldCurrentBatchID,
	FieldCurrentInputFileID,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultStep holds the default value on creation for the "step" field.
	DefaultStep string
	// StepValidator is a validator for the "step" field. It is called by the builders before save.
	StepValidator func(string) error
	// ArchiveKeyValidator is a validator for the "archive_key" field. It is called by the builders before save.
	ArchiveKeyValidator func(string) error
	// DefaultTextDocSize holds the default value on creation for the "text_doc_size" field.
	DefaultTextDocSize int64
	// DefaultRichDocSize holds the default value on creation for the "rich_doc_size" field.
	DefaultRichDocSize int64
	// DefaultTotalImages holds the default value on creation for the "total_images" field.
	DefaultTotalImages int
	// TotalImagesValidator is a validator for the "total_images" field. It is called by the builders before save.
	TotalImagesValidator func(int) error
	// DefaultPreprocessedImages holds the default value on creation for the "preprocessed_images" field.
	DefaultPreprocessedImages int
	// PreprocessedImagesValidator is a validator for the "preprocessed_images" field. It is called by the builders before save.
	PreprocessedImagesValidator func(int) error
	// DefaultSubmittedImages holds the default value on creation for the "submitted_images" field.
	DefaultSubmittedImages int
	// SubmittedImagesValidator is a validator for the "submitted_images" field. It is called by the builders before save.
	SubmittedImagesValidator func(int) error
	// DefaultTotalBatches holds the default value on creation for the "total_batches" field.
	DefaultTotalBatches int
	// TotalBatchesValidator is a validator for the "total_batches" field. It is called by the builders before save.
	TotalBatchesValidator func(int) error
	// DefaultCompletedBatches holds the default value on creation for the "completed_batches" field.
	DefaultCompletedBatches int
	// CompletedBatchesValidator is a validator for the "completed_batches" field. It is called by the builders before save.
	CompletedBatchesValidator func(int) error
	// DefaultBatchSize holds the default value on creation for the "batch_size" field.
	DefaultBatchSize int
	// BatchSizeValidator is a validator for the "batch_size" field. It is called by the builders before save.
	BatchSizeValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ConversionJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByParentJobID orders the results by the parent_job_id field.
func ByParentJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentJobID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByArchiveKey orders the results by the archive_key field.
func ByArchiveKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchiveKey, opts...).ToFunc()
}

// ByFilteredArchiveKey orders the results by the filtered_archive_key field.
func ByFilteredArchiveKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilteredArchiveKey, opts...).ToFunc()
}

// ByThumbnailKey orders the results by the thumbnail_key field.
func ByThumbnailKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbnailKey, opts...).ToFunc()
}

// ByTextDocKey orders the results by the text_doc_key field.
func ByTextDocKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextDocKey, opts...).ToFunc()
}

// ByRichDocKey orders the results by the rich_doc_key field.
func ByRichDocKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRichDocKey, opts...).ToFunc()
}

// ByTextDocSize orders the results by the text_doc_size field.
func ByTextDocSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextDocSize, opts...).ToFunc()
}

// ByRichDocSize orders the results by the rich_doc_size field.
func ByRichDocSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRichDocSize, opts...).ToFunc()
}

// ByTotalImages orders the results by the total_images field.
func ByTotalImages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalImages, opts...).ToFunc()
}

// ByPreprocessedImages orders the results by the preprocessed_images field.
func ByPreprocessedImages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreprocessedImages, opts...).ToFunc()
}

// BySubmittedImages orders the results by the submitted_images field.
func BySubmittedImages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedImages, opts...).ToFunc()
}

// ByTotalBatches orders the results by the total_batches field.
func ByTotalBatches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalBatches, opts...).ToFunc()
}

// ByCompletedBatches orders the results by the completed_batches field.
func ByCompletedBatches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedBatches, opts...).ToFunc()
}

// ByBatchSize orders the results by the batch_size field.
func ByBatchSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchSize, opts...).ToFunc()
}

// ByCurrentBatchID orders the results by the current_batch_id field.
func ByCurrentBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentBatchID, opts...).ToFunc()
}

// ByCurrentInputFileID orders the results by the current_input_file_id field.
func ByCurrentInputFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentInputFileID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByFramesCount orders the results by frames count.
func ByFramesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFramesStep(), opts...)
	}
}

// ByFrames orders the results by frames terms.
func ByFrames(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFramesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBatchesCount orders the results by batches count.
func ByBatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBatchesStep(), opts...)
	}
}

// ByBatches orders the results by batches terms.
func ByBatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
func newFramesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FramesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FramesTable, FramesColumn),
	)
}
func newBatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}

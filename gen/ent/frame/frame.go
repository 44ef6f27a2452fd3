// Code generated by ent, DO NOT EDIT.

package frame

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the frame type in the database.
	Label = "frame"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldBaseKey holds the string denoting the base_key field in the database.
	FieldBaseKey = "base_key"
	// FieldFrameIndex holds the string denoting the frame_index field in the database.
	FieldFrameIndex = "frame_index"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the frame in the database.
	Table = "frames"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "frames"
	// JobInverseTable is the table name for the ConversionJob entity.
	// It exists in this package in order to avoid circular dependency with the "conversionjob" package.
	JobInverseTable = "conversion_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for frame fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldFilename,
	FieldBaseKey,
	FieldFrameIndex,
	FieldText,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// BaseKeyValidator is a validator for the "base_key" field. It is called by the builders before save.
	BaseKeyValidator func(string) error
	// FrameIndexValidator is a validator for the "frame_index" field. It is called by the builders before save.
	FrameIndexValidator func(int) error
	// DefaultText holds the default value on creation for the "text" field.
	DefaultText string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Frame queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByBaseKey orders the results by the base_key field.
func ByBaseKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseKey, opts...).ToFunc()
}

// ByFrameIndex orders the results by the frame_index field.
func ByFrameIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrameIndex, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
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

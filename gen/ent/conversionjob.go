// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/profile"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ConversionJob is the model entity for the ConversionJob schema.
type ConversionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// ParentJobID holds the value of the "parent_job_id" field.
	ParentJobID *uuid.UUID `json:"parent_job_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Step holds the value of the "step" field.
	Step string `json:"step,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ArchiveKey holds the value of the "archive_key" field.
	ArchiveKey string `json:"archive_key,omitempty"`
	// FilteredArchiveKey holds the value of the "filtered_archive_key" field.
	FilteredArchiveKey string `json:"filtered_archive_key,omitempty"`
	// ThumbnailKey holds the value of the "thumbnail_key" field.
	ThumbnailKey string `json:"thumbnail_key,omitempty"`
	// TextDocKey holds the value of the "text_doc_key" field.
	TextDocKey string `json:"text_doc_key,omitempty"`
	// RichDocKey holds the value of the "rich_doc_key" field.
	RichDocKey string `json:"rich_doc_key,omitempty"`
	// TextDocSize holds the value of the "text_doc_size" field.
	TextDocSize int64 `json:"text_doc_size,omitempty"`
	// RichDocSize holds the value of the "rich_doc_size" field.
	RichDocSize int64 `json:"rich_doc_size,omitempty"`
	// TotalImages holds the value of the "total_images" field.
	TotalImages int `json:"total_images,omitempty"`
	// PreprocessedImages holds the value of the "preprocessed_images" field.
	PreprocessedImages int `json:"preprocessed_images,omitempty"`
	// SubmittedImages holds the value of the "submitted_images" field.
	SubmittedImages int `json:"submitted_images,omitempty"`
	// TotalBatches holds the value of the "total_batches" field.
	TotalBatches int `json:"total_batches,omitempty"`
	// CompletedBatches holds the value of the "completed_batches" field.
	CompletedBatches int `json:"completed_batches,omitempty"`
	// BatchSize holds the value of the "batch_size" field.
	BatchSize int `json:"batch_size,omitempty"`
	// CurrentBatchID holds the value of the "current_batch_id" field.
	CurrentBatchID string `json:"current_batch_id,omitempty"`
	// CurrentInputFileID holds the value of the "current_input_file_id" field.
	CurrentInputFileID string `json:"current_input_file_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversionJobQuery when eager-loading is set.
	Edges        ConversionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversionJobEdges holds the relations/edges for other nodes in the graph.
type ConversionJobEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Frames holds the value of the frames edge.
	Frames []*Frame `json:"frames,omitempty"`
	// Batches holds the value of the batches edge.
	Batches []*BatchSubmission `json:"batches,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*PipelineStep `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversionJobEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// FramesOrErr returns the Frames value or an error if the edge
// was not loaded in eager-loading.
func (e ConversionJobEdges) FramesOrErr() ([]*Frame, error) {
	if e.loadedTypes[1] {
		return e.Frames, nil
	}
	return nil, &NotLoadedError{edge: "frames"}
}

// BatchesOrErr returns the Batches value or an error if the edge
// was not loaded in eager-loading.
func (e ConversionJobEdges) BatchesOrErr() ([]*BatchSubmission, error) {
	if e.loadedTypes[2] {
		return e.Batches, nil
	}
	return nil, &NotLoadedError{edge: "batches"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e ConversionJobEdges) StepsOrErr() ([]*PipelineStep, error) {
	if e.loadedTypes[3] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversionjob.FieldParentJobID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case conversionjob.FieldTextDocSize, conversionjob.FieldRichDocSize, conversionjob.FieldTotalImages, conversionjob.FieldPreprocessedImages, conversionjob.FieldSubmittedImages, conversionjob.FieldTotalBatches, conversionjob.FieldCompletedBatches, conversionjob.FieldBatchSize:
			values[i] = new(sql.NullInt64)
		case conversionjob.FieldKind, conversionjob.FieldStatus, conversionjob.FieldStep, conversionjob.FieldErrorMessage, conversionjob.FieldArchiveKey, conversionjob.FieldFilteredArchiveKey, conversionjob.FieldThumbnailKey, conversionjob.FieldTextDocKey, conversionjob.FieldRichDocKey, conversionjob.FieldCurrentBatchID, conversionjob.FieldCurrentInputFileID:
			values[i] = new(sql.NullString)
		case conversionjob.FieldCreatedAt, conversionjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case conversionjob.FieldID, conversionjob.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversionJob fields.
func (_m *ConversionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversionjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case conversionjob.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case conversionjob.FieldParentJobID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_job_id", values[i])
			} else if value.Valid {
				_m.ParentJobID = new(uuid.UUID)
				*_m.ParentJobID = *value.S.(*uuid.UUID)
			}
		case conversionjob.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case conversionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case conversionjob.FieldStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step", values[i])
			} else if value.Valid {
				_m.Step = value.String
			}
		case conversionjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case conversionjob.FieldArchiveKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archive_key", values[i])
			} else if value.Valid {
				_m.ArchiveKey = value.String
			}
		case conversionjob.FieldFilteredArchiveKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filtered_archive_key", values[i])
			} else if value.Valid {
				_m.FilteredArchiveKey = value.String
			}
		case conversionjob.FieldThumbnailKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail_key", values[i])
			} else if value.Valid {
				_m.ThumbnailKey = value.String
			}
		case conversionjob.FieldTextDocKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_doc_key", values[i])
			} else if value.Valid {
				_m.TextDocKey = value.String
			}
		case conversionjob.FieldRichDocKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rich_doc_key", values[i])
			} else if value.Valid {
				_m.RichDocKey = value.String
			}
		case conversionjob.FieldTextDocSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field text_doc_size", values[i])
			} else if value.Valid {
				_m.TextDocSize = value.Int64
			}
		case conversionjob.FieldRichDocSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rich_doc_size", values[i])
			} else if value.Valid {
				_m.RichDocSize = value.Int64
			}
		case conversionjob.FieldTotalImages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_images", values[i])
			} else if value.Valid {
				_m.TotalImages = int(value.Int64)
			}
		case conversionjob.FieldPreprocessedImages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field preprocessed_images", values[i])
			} else if value.Valid {
				_m.PreprocessedImages = int(value.Int64)
			}
		case conversionjob.FieldSubmittedImages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_images", values[i])
			} else if value.Valid {
				_m.SubmittedImages = int(value.Int64)
			}
		case conversionjob.FieldTotalBatches:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_batches", values[i])
			} else if value.Valid {
				_m.TotalBatches = int(value.Int64)
			}
		case conversionjob.FieldCompletedBatches:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_batches", values[i])
			} else if value.Valid {
				_m.CompletedBatches = int(value.Int64)
			}
		case conversionjob.FieldBatchSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_size", values[i])
			} else if value.Valid {
				_m.BatchSize = int(value.Int64)
			}
		case conversionjob.FieldCurrentBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_batch_id", values[i])
			} else if value.Valid {
				_m.CurrentBatchID = value.String
			}
		case conversionjob.FieldCurrentInputFileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_input_file_id", values[i])
			} else if value.Valid {
				_m.CurrentInputFileID = value.String
			}
		case conversionjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversionjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConversionJob.
// This includes values selected through modifiers, order, etc.
func (_m *ConversionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the ConversionJob entity.
func (_m *ConversionJob) QueryProfile() *ProfileQuery {
	return NewConversionJobClient(_m.config).QueryProfile(_m)
}

// QueryFrames queries the "frames" edge of the ConversionJob entity.
func (_m *ConversionJob) QueryFrames() *FrameQuery {
	return NewConversionJobClient(_m.config).QueryFrames(_m)
}

// QueryBatches queries the "batches" edge of the ConversionJob entity.
func (_m *ConversionJob) QueryBatches() *BatchSubmissionQuery {
	return NewConversionJobClient(_m.config).QueryBatches(_m)
}

// QuerySteps queries the "steps" edge of the ConversionJob entity.
func (_m *ConversionJob) QuerySteps() *PipelineStepQuery {
	return NewConversionJobClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this ConversionJob.
// Note that you need to call ConversionJob.Unwrap() before calling this method if this ConversionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConversionJob) Update() *ConversionJobUpdateOne {
	return NewConversionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConversionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConversionJob) Unwrap() *ConversionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConversionJob) String() string {
	var builder strings.Builder
	builder.WriteString("ConversionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	if v := _m.ParentJobID; v != nil {
		builder.WriteString("parent_job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("step=")
	builder.WriteString(_m.Step)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("archive_key=")
	builder.WriteString(_m.ArchiveKey)
	builder.WriteString(", ")
	builder.WriteString("filtered_archive_key=")
	builder.WriteString(_m.FilteredArchiveKey)
	builder.WriteString(", ")
	builder.WriteString("thumbnail_key=")
	builder.WriteString(_m.ThumbnailKey)
	builder.WriteString(", ")
	builder.WriteString("text_doc_key=")
	builder.WriteString(_m.TextDocKey)
	builder.WriteString(", ")
	builder.WriteString("rich_doc_key=")
	builder.WriteString(_m.RichDocKey)
	builder.WriteString(", ")
	builder.WriteString("text_doc_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.TextDocSize))
	builder.WriteString(", ")
	builder.WriteString("rich_doc_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.RichDocSize))
	builder.WriteString(", ")
	builder.WriteString("total_images=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalImages))
	builder.WriteString(", ")
	builder.WriteString("preprocessed_images=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreprocessedImages))
	builder.WriteString(", ")
	builder.WriteString("submitted_images=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmittedImages))
	builder.WriteString(", ")
	builder.WriteString("total_batches=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalBatches))
	builder.WriteString(", ")
	builder.WriteString("completed_batches=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedBatches))
	builder.WriteString(", ")
	builder.WriteString("batch_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchSize))
	builder.WriteString(", ")
	builder.WriteString("current_batch_id=")
	builder.WriteString(_m.CurrentBatchID)
	builder.WriteString(", ")
	builder.WriteString("current_input_file_id=")
	builder.WriteString(_m.CurrentInputFileID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConversionJobs is a parsable slice of ConversionJob.
type ConversionJobs []*ConversionJob

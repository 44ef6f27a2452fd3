// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/gen/ent/conversionjob"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// BatchSubmission is the model entity for the BatchSubmission schema.
type BatchSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// BatchIndex holds the value of the "batch_index" field.
	BatchIndex int `json:"batch_index,omitempty"`
	// ProviderBatchID holds the value of the "provider_batch_id" field.
	ProviderBatchID string `json:"provider_batch_id,omitempty"`
	// InputFileID holds the value of the "input_file_id" field.
	InputFileID string `json:"input_file_id,omitempty"`
	// OutputFileID holds the value of the "output_file_id" field.
	OutputFileID string `json:"output_file_id,omitempty"`
	// ItemCount holds the value of the "item_count" field.
	ItemCount int `json:"item_count,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Supplementary holds the value of the "supplementary" field.
	Supplementary bool `json:"supplementary,omitempty"`
	// NextPollAt holds the value of the "next_poll_at" field.
	NextPollAt *time.Time `json:"next_poll_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BatchSubmissionQuery when eager-loading is set.
	Edges        BatchSubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BatchSubmissionEdges holds the relations/edges for other nodes in the graph.
type BatchSubmissionEdges struct {
	// Job holds the value of the job edge.
	Job *ConversionJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BatchSubmissionEdges) JobOrErr() (*ConversionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BatchSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batchsubmission.FieldSupplementary:
			values[i] = new(sql.NullBool)
		case batchsubmission.FieldBatchIndex, batchsubmission.FieldItemCount:
			values[i] = new(sql.NullInt64)
		case batchsubmission.FieldProviderBatchID, batchsubmission.FieldInputFileID, batchsubmission.FieldOutputFileID, batchsubmission.FieldState:
			values[i] = new(sql.NullString)
		case batchsubmission.FieldNextPollAt, batchsubmission.FieldCreatedAt, batchsubmission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case batchsubmission.FieldID, batchsubmission.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BatchSubmission fields.
func (_m *BatchSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batchsubmission.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case batchsubmission.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case batchsubmission.FieldBatchIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_index", values[i])
			} else if value.Valid {
				_m.BatchIndex = int(value.Int64)
			}
		case batchsubmission.FieldProviderBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_batch_id", values[i])
			} else if value.Valid {
				_m.ProviderBatchID = value.String
			}
		case batchsubmission.FieldInputFileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_file_id", values[i])
			} else if value.Valid {
				_m.InputFileID = value.String
			}
		case batchsubmission.FieldOutputFileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_file_id", values[i])
			} else if value.Valid {
				_m.OutputFileID = value.String
			}
		case batchsubmission.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = int(value.Int64)
			}
		case batchsubmission.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case batchsubmission.FieldSupplementary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field supplementary", values[i])
			} else if value.Valid {
				_m.Supplementary = value.Bool
			}
		case batchsubmission.FieldNextPollAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_poll_at", values[i])
			} else if value.Valid {
				_m.NextPollAt = new(time.Time)
				*_m.NextPollAt = value.Time
			}
		case batchsubmission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case batchsubmission.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BatchSubmission.
// This includes values selected through modifiers, order, etc.
func (_m *BatchSubmission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the BatchSubmission entity.
func (_m *BatchSubmission) QueryJob() *ConversionJobQuery {
	return NewBatchSubmissionClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this BatchSubmission.
// Note that you need to call BatchSubmission.Unwrap() before calling this method if this BatchSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BatchSubmission) Update() *BatchSubmissionUpdateOne {
	return NewBatchSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BatchSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BatchSubmission) Unwrap() *BatchSubmission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BatchSubmission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BatchSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("BatchSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("batch_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchIndex))
	builder.WriteString(", ")
	builder.WriteString("provider_batch_id=")
	builder.WriteString(_m.ProviderBatchID)
	builder.WriteString(", ")
	builder.WriteString("input_file_id=")
	builder.WriteString(_m.InputFileID)
	builder.WriteString(", ")
	builder.WriteString("output_file_id=")
	builder.WriteString(_m.OutputFileID)
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("supplementary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Supplementary))
	builder.WriteString(", ")
	if v := _m.NextPollAt; v != nil {
		builder.WriteString("next_poll_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BatchSubmissions is a parsable slice of BatchSubmission.
type BatchSubmissions []*BatchSubmission

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/pipelinestep"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// PipelineStep is the model entity for the PipelineStep schema.
type PipelineStep struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Result holds the value of the "result" field.
	Result json.RawMessage `json:"result,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineStepQuery when eager-loading is set.
	Edges        PipelineStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineStepEdges holds the relations/edges for other nodes in the graph.
type PipelineStepEdges struct {
	// Job holds the value of the job edge.
	Job *ConversionJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineStepEdges) JobOrErr() (*ConversionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinestep.FieldResult:
			values[i] = new([]byte)
		case pipelinestep.FieldName:
			values[i] = new(sql.NullString)
		case pipelinestep.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case pipelinestep.FieldID, pipelinestep.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineStep fields.
func (_m *PipelineStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinestep.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pipelinestep.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case pipelinestep.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case pipelinestep.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case pipelinestep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineStep.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the PipelineStep entity.
func (_m *PipelineStep) QueryJob() *ConversionJobQuery {
	return NewPipelineStepClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this PipelineStep.
// Note that you need to call PipelineStep.Unwrap() before calling this method if this PipelineStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineStep) Update() *PipelineStepUpdateOne {
	return NewPipelineStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineStep) Unwrap() *PipelineStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineStep) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineSteps is a parsable slice of PipelineStep.
type PipelineSteps []*PipelineStep

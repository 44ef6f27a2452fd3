// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"framescribe/gen/ent/conversionjob"
	"framescribe/gen/ent/frame"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Frame is the model entity for the Frame schema.
type Frame struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// BaseKey holds the value of the "base_key" field.
	BaseKey string `json:"base_key,omitempty"`
	// FrameIndex holds the value of the "frame_index" field.
	FrameIndex int `json:"frame_index,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FrameQuery when eager-loading is set.
	Edges        FrameEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FrameEdges holds the relations/edges for other nodes in the graph.
type FrameEdges struct {
	// Job holds the value of the job edge.
	Job *ConversionJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FrameEdges) JobOrErr() (*ConversionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Frame) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case frame.FieldFrameIndex:
			values[i] = new(sql.NullInt64)
		case frame.FieldFilename, frame.FieldBaseKey, frame.FieldText:
			values[i] = new(sql.NullString)
		case frame.FieldID, frame.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Frame fields.
func (_m *Frame) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case frame.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case frame.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case frame.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case frame.FieldBaseKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_key", values[i])
			} else if value.Valid {
				_m.BaseKey = value.String
			}
		case frame.FieldFrameIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field frame_index", values[i])
			} else if value.Valid {
				_m.FrameIndex = int(value.Int64)
			}
		case frame.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Frame.
// This includes values selected through modifiers, order, etc.
func (_m *Frame) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Frame entity.
func (_m *Frame) QueryJob() *ConversionJobQuery {
	return NewFrameClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this Frame.
// Note that you need to call Frame.Unwrap() before calling this method if this Frame
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Frame) Update() *FrameUpdateOne {
	return NewFrameClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Frame entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Frame) Unwrap() *Frame {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Frame is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Frame) String() string {
	var builder strings.Builder
	builder.WriteString("Frame(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("base_key=")
	builder.WriteString(_m.BaseKey)
	builder.WriteString(", ")
	builder.WriteString("frame_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrameIndex))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteByte(')')
	return builder.String()
}

// Frames is a parsable slice of Frame.
type Frames []*Frame

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BatchSubmission is the predicate function for batchsubmission builders.
type BatchSubmission func(*sql.Selector)

// ConversionJob is the predicate function for conversionjob builders.
type ConversionJob func(*sql.Selector)

// Frame is the predicate function for frame builders.
type Frame func(*sql.Selector)

// PipelineStep is the predicate function for pipelinestep builders.
type PipelineStep func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

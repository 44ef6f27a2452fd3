package constants

// JobStatus is the canonical lifecycle status for rows in conversion_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "PENDING"    // created, not picked up yet
	JobStatusProcessing JobStatus = "PROCESSING" // a worker owns the job
	JobStatusDone       JobStatus = "DONE"       // documents built
	JobStatusError      JobStatus = "ERROR"      // terminal failure, step retained for resume
)

// JobStatuses holds the allowed values for the status field in ConversionJob.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusDone),
	string(JobStatusError),
}

// JobStep is the pipeline stage a job has reached. Steps only move forward.
type JobStep string

const (
	StepPreprocessing  JobStep = "PREPROCESSING"
	StepBatchSubmitted JobStep = "BATCH_SUBMITTED"
	StepResultsSaved   JobStep = "RESULTS_SAVED"
	StepDocsBuilt      JobStep = "DOCS_BUILT"
)

// StepOrder lists the steps in pipeline order.
var StepOrder = []JobStep{StepPreprocessing, StepBatchSubmitted, StepResultsSaved, StepDocsBuilt}

// JobSteps holds the allowed values for the step field in ConversionJob.
var JobSteps = []string{
	string(StepPreprocessing),
	string(StepBatchSubmitted),
	string(StepResultsSaved),
	string(StepDocsBuilt),
}

// StepIndex returns the position of a step in the pipeline, or -1 for unknown values.
func StepIndex(s JobStep) int {
	for i, v := range StepOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// JobKind distinguishes plain OCR jobs from derivative subtitle-removal jobs.
type JobKind string

const (
	JobKindOCR             JobKind = "OCR"
	JobKindSubtitleRemoval JobKind = "SUBTITLE_REMOVAL"
)

// JobKinds holds the allowed values for the kind field in ConversionJob.
var JobKinds = []string{string(JobKindOCR), string(JobKindSubtitleRemoval)}

// BatchRowState tracks a batch submission row in our own ledger
// (distinct from the provider-side batch status vocabulary).
type BatchRowState string

const (
	BatchRowCreated   BatchRowState = "CREATED"   // row reserved, provider batch not confirmed yet
	BatchRowSubmitted BatchRowState = "SUBMITTED" // provider accepted, awaiting completion
	BatchRowCompleted BatchRowState = "COMPLETED" // provider produced an output file
	BatchRowFailed    BatchRowState = "FAILED"    // provider reported failure/cancellation
)

// Resolved reports whether the row reached a final state on our side.
func (s BatchRowState) Resolved() bool {
	return s == BatchRowCompleted || s == BatchRowFailed
}

// BatchRowStates holds the allowed values for the state field in BatchSubmission.
var BatchRowStates = []string{
	string(BatchRowCreated),
	string(BatchRowSubmitted),
	string(BatchRowCompleted),
	string(BatchRowFailed),
}

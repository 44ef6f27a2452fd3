package entity

import (
	"time"

	"github.com/google/uuid"

	"framescribe/constants"
)

// Job is the domain view of a conversion_jobs row. The pipeline reads it once
// at entry and advances it at each durable checkpoint.
type Job struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	ParentJobID *uuid.UUID
	Kind        constants.JobKind
	Status      constants.JobStatus
	Step        constants.JobStep
	ErrorMsg    string

	ArchiveKey         string
	FilteredArchiveKey string
	ThumbnailKey       string
	TextDocKey         string
	RichDocKey         string
	TextDocSize        int64
	RichDocSize        int64

	TotalImages        int
	PreprocessedImages int
	SubmittedImages    int
	TotalBatches       int
	CompletedBatches   int
	BatchSize          int

	CurrentBatchID     string
	CurrentInputFileID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Frame is one persisted OCR result row.
type Frame struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	Filename   string
	BaseKey    string
	FrameIndex int
	Text       string
}

// Batch is the domain view of a batch_submissions row.
type Batch struct {
	ID              uuid.UUID
	JobID           uuid.UUID
	BatchIndex      int
	ProviderBatchID string
	InputFileID     string
	OutputFileID    string
	ItemCount       int
	State           constants.BatchRowState
	Supplementary   bool
	NextPollAt      *time.Time
}

// Profile is the owner of jobs; its inference credential is resolved
// through the credentials package, never read directly by the pipeline.
type Profile struct {
	ID              uuid.UUID
	Name            string
	InferenceAPIKey string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

package inference

import (
	"context"
	"errors"
)

// ErrCapacity signals a quota/capacity rejection at batch creation time.
// The submitter recovers from it by shrinking the batch size.
var ErrCapacity = errors.New("inference: batch capacity exceeded")

// State is the provider-side batch status vocabulary.
type State string

const (
	StateValidating State = "validating"
	StateInProgress State = "in_progress"
	StateFinalizing State = "finalizing"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	StateExpired    State = "expired"
	StateCancelling State = "cancelling"
	StateCancelled  State = "cancelled"
)

// Terminal reports whether no further transition will occur.
func (s State) Terminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateExpired, StateCancelled:
		return true
	}
	return false
}

// Succeeded reports the completed family.
func (s State) Succeeded() bool { return s == StateCompleted }

// Batch is one provider-side batch handle.
type Batch struct {
	ID           string
	InputFileID  string
	OutputFileID string
	ErrorFileID  string
	State        State
	Metadata     map[string]string
}

// Client is the batch inference provider collaborator.
type Client interface {
	// UploadBatchInput stores a line-delimited request payload and returns
	// the provider-assigned input file id.
	UploadBatchInput(ctx context.Context, filename string, jsonl []byte) (string, error)
	// CreateBatch submits an uploaded input file. Returns ErrCapacity when
	// the provider rejects the submission for quota reasons.
	CreateBatch(ctx context.Context, inputFileID string, metadata map[string]string) (Batch, error)
	GetBatch(ctx context.Context, batchID string) (Batch, error)
	// ListRecentBatches lets a restarted worker rediscover a batch it
	// created but did not record before crashing.
	ListRecentBatches(ctx context.Context, limit int) ([]Batch, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

// DefaultPrompt is the fixed per-image instruction sent with every request line.
const DefaultPrompt = "Transcribe the subtitle text visible in this image. " +
	"Return only the transcribed text, nothing else. " +
	"If no subtitle text is visible, return exactly NO_SUBTITLE."

// NoTextSentinel is the model's marker for "no text detected". Reconciliation
// stores it as the empty string, never drops the frame.
const NoTextSentinel = "NO_SUBTITLE"

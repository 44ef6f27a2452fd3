package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"framescribe/internal/archive"
)

// Pipeline-level failure classes. Every one of these is fatal for the job:
// the job's step stays at its last successful value and status flips to ERROR.
var (
	ErrLadderExhausted      = errors.New("pipeline: batch size ladder exhausted")
	ErrFrameCountMismatch   = errors.New("pipeline: reconciled frame count does not match expected image count")
	ErrBatchFailed          = errors.New("pipeline: provider batch reached a failed state")
	ErrMissingOutputPointer = errors.New("pipeline: completed batch has no output file")
)

// BatchSizeLadder is the fixed descending sequence used when the provider
// rejects a submission for capacity reasons. Size only ever moves down the
// ladder within a job.
var BatchSizeLadder = []int{500, 400, 300, 200, 100, 50}

// nextLadderSize returns the first ladder value strictly below cur.
func nextLadderSize(cur int) (int, bool) {
	for _, v := range BatchSizeLadder {
		if v < cur {
			return v, true
		}
	}
	return 0, false
}

// ArchiveBuilder is the work-item builder seam (see internal/archive).
type ArchiveBuilder interface {
	Build(ctx context.Context, jobID uuid.UUID, archiveKey string) (*archive.Result, error)
}

// ManifestStore holds the transient work-item manifest between stages.
type ManifestStore interface {
	Save(ctx context.Context, jobID uuid.UUID, items []archive.WorkItem) error
	Load(ctx context.Context, jobID uuid.UUID) ([]archive.WorkItem, error)
	Purge(ctx context.Context, jobID uuid.UUID) error
}

// Config holds pipeline tunables.
type Config struct {
	StartBatchSize  int
	PollInterval    time.Duration
	SignedURLTTL    time.Duration
	WorkDir         string
	Model           string
	Prompt          string
	PurgeScanMargin int
}

func (c Config) withDefaults() Config {
	if c.StartBatchSize <= 0 {
		c.StartBatchSize = BatchSizeLadder[0]
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 30 * time.Second
	}
	if c.SignedURLTTL <= 0 {
		c.SignedURLTTL = 48 * time.Hour
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.PurgeScanMargin <= 0 {
		c.PurgeScanMargin = 5
	}
	return c
}

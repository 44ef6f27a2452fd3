package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"framescribe/constants"
	"framescribe/internal/archive"
	"framescribe/internal/entity"
	"framescribe/internal/inference"
)

// submitAndPoll walks the work items in batches: submit one batch, poll it to
// completion, then move to the next. Each batch has a durable row reserved
// before any provider call, so a crash between "create batch" and "record id"
// is recoverable via metadata discovery.
func (p *Processor) submitAndPoll(ctx context.Context, client inference.Client, job *entity.Job, items []archive.WorkItem) error {
	rows, err := p.Batches.ListByJob(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("list batches: %w", err)
	}

	// resume point: every primary row with a provider id covers its items
	submitted := 0
	completed := 0
	nextIndex := 0
	for _, row := range rows {
		if row.Supplementary {
			continue
		}
		if row.ProviderBatchID != "" {
			submitted += row.ItemCount
			nextIndex = row.BatchIndex + 1
		}
		if row.State == constants.BatchRowCompleted {
			completed++
		}
		if row.State == constants.BatchRowFailed {
			return fmt.Errorf("batch %d: %w", row.BatchIndex, ErrBatchFailed)
		}
		// a submitted-but-unresolved row from a previous run gets polled
		// before anything new goes out
		if row.ProviderBatchID != "" && !row.State.Resolved() {
			if err := p.pollBatch(ctx, client, job, row); err != nil {
				return err
			}
			completed++
			if err := p.Jobs.SetCompletedBatches(ctx, job.ID, completed); err != nil {
				return fmt.Errorf("record completed batches: %w", err)
			}
		}
	}

	if submitted >= len(items) {
		p.Logger.Info("pipeline.submit.already_complete", "job_id", job.ID, "batches", completed)
		return nil
	}

	size := job.BatchSize
	if size <= 0 {
		size = p.Cfg.StartBatchSize
	}

	queue := items[submitted:]
	for len(queue) > 0 {
		n := min(size, len(queue))
		chunk := queue[:n]

		row, err := p.submitBatch(ctx, client, job, nextIndex, chunk)
		if errors.Is(err, inference.ErrCapacity) {
			next, ok := nextLadderSize(size)
			if !ok {
				return fmt.Errorf("%w: rejected at size %d", ErrLadderExhausted, size)
			}
			p.Logger.Warn("pipeline.submit.shrink", "job_id", job.ID, "batch_index", nextIndex, "from", size, "to", next)
			size = next
			// persist the ratchet now: a restart before the truncated resubmit
			// is accepted must not climb back to the larger size
			if err := p.Jobs.SetBatchSize(ctx, job.ID, size); err != nil {
				return fmt.Errorf("record batch size: %w", err)
			}
			continue
		}
		if err != nil {
			return err
		}

		submitted += len(chunk)
		queue = queue[n:]
		remaining := len(queue)
		totalBatches := nextIndex + 1 + (remaining+size-1)/size
		if err := p.Jobs.SetSubmitProgress(ctx, job.ID, submitted, totalBatches, size, row.ProviderBatchID, row.InputFileID); err != nil {
			return fmt.Errorf("record submit progress: %w", err)
		}
		p.Logger.Info("pipeline.submit.ok",
			"job_id", job.ID, "batch_index", nextIndex, "items", len(chunk),
			"submitted_images", submitted, "batch_size", size)

		if err := p.pollBatch(ctx, client, job, row); err != nil {
			return err
		}
		completed++
		if err := p.Jobs.SetCompletedBatches(ctx, job.ID, completed); err != nil {
			return fmt.Errorf("record completed batches: %w", err)
		}
		nextIndex++
	}
	return nil
}

// submitBatch takes one chunk from reserved row to created provider batch.
// The order of durable writes makes every crash window recoverable:
// row first, then input file id, then provider batch id.
func (p *Processor) submitBatch(ctx context.Context, client inference.Client, job *entity.Job, index int, chunk []archive.WorkItem) (*entity.Batch, error) {
	row, err := p.Batches.Reserve(ctx, job.ID, index, len(chunk), false)
	if err != nil {
		return nil, fmt.Errorf("reserve batch %d: %w", index, err)
	}
	if row.ProviderBatchID != "" {
		return row, nil
	}

	// crash window: an input file may have been uploaded and a batch created
	// without the row recording either; ask the provider what it has
	if row.InputFileID != "" {
		found, err := p.discoverBatch(ctx, client, job, index)
		if err != nil {
			return nil, err
		}
		if found != nil {
			if err := p.Batches.SetSubmitted(ctx, row.ID, found.ID); err != nil {
				return nil, fmt.Errorf("record discovered batch: %w", err)
			}
			row.ProviderBatchID = found.ID
			p.Logger.Info("pipeline.submit.rediscovered", "job_id", job.ID, "batch_index", index, "provider_batch_id", found.ID)
			return row, nil
		}
	}

	lines := make([]inference.RequestLine, len(chunk))
	prompt := p.Cfg.Prompt
	if prompt == "" {
		prompt = inference.DefaultPrompt
	}
	for i, item := range chunk {
		cid := EncodeCorrelationID(job.ID, index, item.GlobalIndex, item.Filename)
		lines[i] = inference.NewImageRequest(p.Cfg.Model, cid, prompt, item.SignedURL)
	}
	payload, err := inference.EncodeRequestLines(lines)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s.batch-%d.jsonl", job.ID, index)
	if p.Cfg.WorkDir != "" {
		local := filepath.Join(p.Cfg.WorkDir, name)
		if werr := os.WriteFile(local, payload, 0o644); werr != nil {
			p.Logger.Warn("pipeline.submit.spool_failed", "job_id", job.ID, "path", local, "error", werr)
		}
	}

	if row.InputFileID == "" || row.ItemCount != len(chunk) {
		fileID, err := client.UploadBatchInput(ctx, name, payload)
		if err != nil {
			return nil, fmt.Errorf("upload batch %d input: %w", index, err)
		}
		if err := p.Batches.SetInputFile(ctx, row.ID, fileID, len(chunk)); err != nil {
			return nil, fmt.Errorf("record input file: %w", err)
		}
		row.InputFileID = fileID
		row.ItemCount = len(chunk)
	}

	created, err := client.CreateBatch(ctx, row.InputFileID, map[string]string{
		"job_id":      job.ID.String(),
		"batch_index": strconv.Itoa(index),
	})
	if err != nil {
		return nil, fmt.Errorf("create batch %d: %w", index, err)
	}
	if err := p.Batches.SetSubmitted(ctx, row.ID, created.ID); err != nil {
		return nil, fmt.Errorf("record provider batch: %w", err)
	}
	row.ProviderBatchID = created.ID
	return row, nil
}

// discoverBatch checks the provider's recent batches for one carrying this
// job and index in its metadata.
func (p *Processor) discoverBatch(ctx context.Context, client inference.Client, job *entity.Job, index int) (*inference.Batch, error) {
	recent, err := client.ListRecentBatches(ctx, 50)
	if err != nil {
		return nil, fmt.Errorf("list recent batches: %w", err)
	}
	want := strconv.Itoa(index)
	for i := range recent {
		b := recent[i]
		if b.Metadata["job_id"] == job.ID.String() && b.Metadata["batch_index"] == want {
			return &b, nil
		}
	}
	return nil, nil
}

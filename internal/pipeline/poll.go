package pipeline

import (
	"context"
	"fmt"

	"framescribe/internal/entity"
	"framescribe/internal/inference"
)

// pollBatch waits for one provider batch to reach a terminal state. The next
// poll time is persisted on the row before each sleep, so a restart resumes
// the wait instead of hammering the provider.
func (p *Processor) pollBatch(ctx context.Context, client inference.Client, job *entity.Job, row *entity.Batch) error {
	for {
		if row.OutputFileID != "" {
			return nil
		}

		if row.NextPollAt != nil {
			if wait := row.NextPollAt.Sub(p.now()); wait > 0 {
				p.Logger.Debug("pipeline.poll.wait", "job_id", job.ID, "batch_index", row.BatchIndex, "wait", wait)
				if err := p.sleep(ctx, wait); err != nil {
					return err
				}
			}
			row.NextPollAt = nil
		}

		b, err := client.GetBatch(ctx, row.ProviderBatchID)
		if err != nil {
			return fmt.Errorf("poll batch %d: %w", row.BatchIndex, err)
		}
		p.Logger.Debug("pipeline.poll.state", "job_id", job.ID, "batch_index", row.BatchIndex, "state", b.State)

		if b.State.Succeeded() {
			if b.OutputFileID == "" {
				return fmt.Errorf("batch %d: %w", row.BatchIndex, ErrMissingOutputPointer)
			}
			if err := p.Batches.SetCompleted(ctx, row.ID, b.OutputFileID); err != nil {
				return fmt.Errorf("record batch completion: %w", err)
			}
			row.OutputFileID = b.OutputFileID
			p.Logger.Info("pipeline.poll.completed", "job_id", job.ID, "batch_index", row.BatchIndex)
			return nil
		}
		if b.State.Terminal() {
			if err := p.Batches.SetFailed(ctx, row.ID); err != nil {
				p.Logger.Error("pipeline.poll.record_failure_failed", "job_id", job.ID, "batch_index", row.BatchIndex, "error", err)
			}
			return fmt.Errorf("batch %d reached state %s: %w", row.BatchIndex, b.State, ErrBatchFailed)
		}

		at := p.now().Add(p.Cfg.PollInterval)
		if err := p.Batches.SetNextPollAt(ctx, row.ID, at); err != nil {
			return fmt.Errorf("record next poll: %w", err)
		}
		if err := p.sleep(ctx, p.Cfg.PollInterval); err != nil {
			return err
		}
	}
}

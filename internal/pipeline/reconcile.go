package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"framescribe/constants"
	"framescribe/internal/archive"
	"framescribe/internal/entity"
	"framescribe/internal/inference"
)

// reconcile downloads every completed batch output, matches lines back to
// work items by correlation id, retries failed/missing items with at most one
// supplementary batch, and persists the full frame set in one transaction.
// A gap that survives the retry fails the job: a document with silently
// missing frames is worse than no document.
func (p *Processor) reconcile(ctx context.Context, client inference.Client, job *entity.Job, items []archive.WorkItem) error {
	rows, err := p.Batches.ListByJob(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("list batches: %w", err)
	}

	texts := make(map[int]string, len(items)) // global index -> normalized text
	var supplementary *entity.Batch

	for _, row := range rows {
		if row.Supplementary {
			supplementary = row
			continue
		}
		if row.OutputFileID == "" {
			return fmt.Errorf("batch %d has no output: %w", row.BatchIndex, ErrMissingOutputPointer)
		}
		if err := p.mergeOutput(ctx, client, job, row, texts); err != nil {
			return err
		}
	}

	// a supplementary batch left over from a crashed run is part of this
	// reconciliation; poll it out if it never resolved
	if supplementary != nil {
		if supplementary.OutputFileID == "" && supplementary.ProviderBatchID != "" && !supplementary.State.Resolved() {
			if err := p.pollBatch(ctx, client, job, supplementary); err != nil {
				return err
			}
		}
		if supplementary.OutputFileID != "" {
			if err := p.mergeOutput(ctx, client, job, supplementary, texts); err != nil {
				return err
			}
		}
	}

	retry := p.retrySet(items, texts)
	if len(retry) > 0 && supplementary == nil {
		p.Logger.Warn("pipeline.reconcile.retry", "job_id", job.ID, "items", len(retry))
		row, err := p.submitSupplementary(ctx, client, job, retry)
		if err != nil {
			return err
		}
		if err := p.pollBatch(ctx, client, job, row); err != nil {
			return err
		}
		if err := p.mergeOutput(ctx, client, job, row, texts); err != nil {
			return err
		}
		retry = p.retrySet(items, texts)
	}

	if len(retry) > 0 {
		return fmt.Errorf("%w: %d of %d items unresolved after retry",
			ErrFrameCountMismatch, len(retry), len(items))
	}
	if len(texts) != len(items) {
		return fmt.Errorf("%w: have %d results, want %d", ErrFrameCountMismatch, len(texts), len(items))
	}

	frames := make([]entity.Frame, len(items))
	for i, item := range items {
		text, ok := texts[item.GlobalIndex]
		if !ok {
			return fmt.Errorf("%w: no result for index %d (%s)", ErrFrameCountMismatch, item.GlobalIndex, item.Filename)
		}
		frames[i] = entity.Frame{
			JobID:      job.ID,
			Filename:   item.Filename,
			BaseKey:    item.BaseKey,
			FrameIndex: item.GlobalIndex,
			Text:       text,
		}
	}
	if err := p.Frames.ReplaceForJob(ctx, job.ID, frames); err != nil {
		return fmt.Errorf("persist frames: %w", err)
	}
	p.Logger.Info("pipeline.reconcile.ok", "job_id", job.ID, "frames", len(frames))
	return nil
}

// mergeOutput downloads one batch output and folds its lines into texts.
// A failed line never overwrites a good result from another batch.
func (p *Processor) mergeOutput(ctx context.Context, client inference.Client, job *entity.Job, row *entity.Batch, texts map[int]string) error {
	data, err := client.DownloadFile(ctx, row.OutputFileID)
	if err != nil {
		return fmt.Errorf("download batch %d output: %w", row.BatchIndex, err)
	}
	lines, err := inference.DecodeResponseLines(data)
	if err != nil {
		return fmt.Errorf("batch %d output: %w", row.BatchIndex, err)
	}
	for _, line := range lines {
		cor, err := DecodeCorrelationID(line.CustomID)
		if err != nil {
			p.Logger.Warn("pipeline.reconcile.bad_correlation", "job_id", job.ID, "custom_id", line.CustomID, "error", err)
			continue
		}
		if cor.JobID != job.ID {
			p.Logger.Warn("pipeline.reconcile.foreign_line", "job_id", job.ID, "custom_id", line.CustomID)
			continue
		}
		if line.Failed() {
			continue
		}
		texts[cor.GlobalIndex] = normalizeText(line.Text())
	}
	return nil
}

// retrySet returns the work items that still need an answer. Per-item
// failures and never-mentioned items are handled identically.
func (p *Processor) retrySet(items []archive.WorkItem, texts map[int]string) []archive.WorkItem {
	var out []archive.WorkItem
	for _, item := range items {
		if _, ok := texts[item.GlobalIndex]; ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// submitSupplementary reserves and submits the single retry batch. Its index
// sits past every primary batch so correlation ids stay unique.
func (p *Processor) submitSupplementary(ctx context.Context, client inference.Client, job *entity.Job, retry []archive.WorkItem) (*entity.Batch, error) {
	rows, err := p.Batches.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	index := 0
	for _, r := range rows {
		if r.BatchIndex >= index {
			index = r.BatchIndex + 1
		}
	}

	row, err := p.Batches.Reserve(ctx, job.ID, index, len(retry), true)
	if err != nil {
		return nil, fmt.Errorf("reserve supplementary batch: %w", err)
	}
	if row.ProviderBatchID != "" {
		return row, nil
	}

	prompt := p.Cfg.Prompt
	if prompt == "" {
		prompt = inference.DefaultPrompt
	}
	lines := make([]inference.RequestLine, len(retry))
	for i, item := range retry {
		cid := EncodeCorrelationID(job.ID, index, item.GlobalIndex, item.Filename)
		lines[i] = inference.NewImageRequest(p.Cfg.Model, cid, prompt, item.SignedURL)
	}
	payload, err := inference.EncodeRequestLines(lines)
	if err != nil {
		return nil, err
	}
	fileID, err := client.UploadBatchInput(ctx, fmt.Sprintf("%s.batch-%d.jsonl", job.ID, index), payload)
	if err != nil {
		return nil, fmt.Errorf("upload supplementary input: %w", err)
	}
	if err := p.Batches.SetInputFile(ctx, row.ID, fileID, len(retry)); err != nil {
		return nil, fmt.Errorf("record supplementary input file: %w", err)
	}
	created, err := client.CreateBatch(ctx, fileID, map[string]string{
		"job_id":        job.ID.String(),
		"batch_index":   strconv.Itoa(index),
		"supplementary": "true",
	})
	if err != nil {
		return nil, fmt.Errorf("create supplementary batch: %w", err)
	}
	if err := p.Batches.SetSubmitted(ctx, row.ID, created.ID); err != nil {
		return nil, fmt.Errorf("record supplementary batch: %w", err)
	}
	row.InputFileID = fileID
	row.ProviderBatchID = created.ID
	row.State = constants.BatchRowSubmitted
	return row, nil
}

// normalizeText maps sentinel "no text" answers to the empty string and trims
// the rest. The frame row is always written, empty or not.
func normalizeText(s string) string {
	t := strings.TrimSpace(s)
	if strings.EqualFold(t, inference.NoTextSentinel) {
		return ""
	}
	if strings.EqualFold(t, "no subtitle detected") {
		return ""
	}
	return t
}

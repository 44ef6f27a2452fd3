package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"framescribe/internal/document"
	"framescribe/internal/entity"
)

// assemble turns the reconciled frames into the two final artifacts, records
// them on the job, then purges the job's ephemeral material. Purge failures
// are logged, never fatal: the documents are already durable at that point.
func (p *Processor) assemble(ctx context.Context, job *entity.Job) error {
	frames, err := p.Frames.ListByJob(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("load frames: %w", err)
	}

	text, html, err := document.Build(frames)
	if err != nil {
		return err
	}

	textKey := fmt.Sprintf("outputs/%s/transcript.txt", job.ID)
	richKey := fmt.Sprintf("outputs/%s/transcript.html", job.ID)
	textBytes := []byte(text)
	if err := p.Store.Put(ctx, textKey, bytes.NewReader(textBytes), int64(len(textBytes)), "text/plain; charset=utf-8"); err != nil {
		return fmt.Errorf("upload text document: %w", err)
	}
	if err := p.Store.Put(ctx, richKey, bytes.NewReader(html), int64(len(html)), "text/html; charset=utf-8"); err != nil {
		return fmt.Errorf("upload rich document: %w", err)
	}
	if err := p.Jobs.SetArtifacts(ctx, job.ID, textKey, int64(len(textBytes)), richKey, int64(len(html))); err != nil {
		return fmt.Errorf("record artifacts: %w", err)
	}
	job.TextDocKey = textKey
	job.RichDocKey = richKey
	p.Logger.Info("pipeline.assemble.ok",
		"job_id", job.ID, "text_bytes", len(textBytes), "rich_bytes", len(html), "frames", len(frames))

	p.purge(ctx, job)
	return nil
}

// purge removes everything the finished job no longer needs: the transient
// manifest, uploaded crops, and spooled request files. The local file scan
// runs past the recorded batch count by a margin, since the ladder can leave
// more spool files than total_batches suggests.
func (p *Processor) purge(ctx context.Context, job *entity.Job) {
	if err := p.Manifest.Purge(ctx, job.ID); err != nil {
		p.Logger.Warn("pipeline.purge.manifest", "job_id", job.ID, "error", err)
	}

	prefix := fmt.Sprintf("crops/%s/", job.ID)
	keys, err := p.Store.List(ctx, prefix)
	if err != nil {
		p.Logger.Warn("pipeline.purge.list_crops", "job_id", job.ID, "error", err)
	}
	for _, key := range keys {
		if err := p.Store.Delete(ctx, key); err != nil {
			p.Logger.Warn("pipeline.purge.crop", "job_id", job.ID, "key", key, "error", err)
		}
	}

	if p.Cfg.WorkDir != "" {
		limit := job.TotalBatches + p.Cfg.PurgeScanMargin
		for i := 0; i <= limit; i++ {
			local := filepath.Join(p.Cfg.WorkDir, fmt.Sprintf("%s.batch-%d.jsonl", job.ID, i))
			if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
				p.Logger.Warn("pipeline.purge.spool", "job_id", job.ID, "path", local, "error", err)
			}
		}
	}
	p.Logger.Info("pipeline.purge.ok", "job_id", job.ID, "crops", len(keys))
}

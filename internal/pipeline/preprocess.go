package pipeline

import (
	"context"
	"fmt"

	"framescribe/constants"
	"framescribe/internal/archive"
	"framescribe/internal/entity"
)

// preprocessResult is the durable slice of the builder's output. Work items
// themselves carry short-lived signed URLs and live in the transient manifest.
type preprocessResult struct {
	FilteredArchiveKey string `json:"filtered_archive_key"`
	ThumbnailKey       string `json:"thumbnail_key"`
	TotalImages        int    `json:"total_images"`
}

// preprocess runs the work-item builder as one memoized step. A crash
// mid-archive re-runs it wholesale; partial archive state is not resumable
// at finer grain.
func (p *Processor) preprocess(ctx context.Context, job *entity.Job) ([]archive.WorkItem, error) {
	builder, ok := p.Builders[job.Kind]
	if !ok {
		return nil, fmt.Errorf("no builder for job kind %s", job.Kind)
	}

	var res preprocessResult
	err := p.runStep(ctx, job.ID, "preprocess", &res, func(ctx context.Context) (any, error) {
		built, err := builder.Build(ctx, job.ID, job.ArchiveKey)
		if err != nil {
			return nil, fmt.Errorf("preprocess: %w", err)
		}
		if err := p.Manifest.Save(ctx, job.ID, built.Items); err != nil {
			return nil, fmt.Errorf("save manifest: %w", err)
		}
		if err := p.Jobs.SetPreprocessResult(ctx, job.ID, built.TotalImages, built.FilteredArchiveKey, built.ThumbnailKey); err != nil {
			return nil, fmt.Errorf("record preprocess result: %w", err)
		}
		return preprocessResult{
			FilteredArchiveKey: built.FilteredArchiveKey,
			ThumbnailKey:       built.ThumbnailKey,
			TotalImages:        built.TotalImages,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	items, err := p.Manifest.Load(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	if len(items) != res.TotalImages && constants.StepIndex(job.Step) < constants.StepIndex(constants.StepResultsSaved) {
		// manifest lost (e.g. different host after restart): redo the whole
		// step, it is pure given the source archive
		p.Logger.Warn("pipeline.preprocess.manifest_rebuild", "job_id", job.ID, "have", len(items), "want", res.TotalImages)
		built, err := builder.Build(ctx, job.ID, job.ArchiveKey)
		if err != nil {
			return nil, fmt.Errorf("preprocess rebuild: %w", err)
		}
		if err := p.Manifest.Save(ctx, job.ID, built.Items); err != nil {
			return nil, fmt.Errorf("save manifest: %w", err)
		}
		items = built.Items
	}

	job.TotalImages = res.TotalImages
	job.FilteredArchiveKey = res.FilteredArchiveKey
	job.ThumbnailKey = res.ThumbnailKey
	p.Logger.Info("pipeline.preprocess.ok", "job_id", job.ID, "total_images", res.TotalImages)
	return items, nil
}

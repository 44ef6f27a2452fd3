package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"framescribe/constants"
	"framescribe/internal/credentials"
	"framescribe/internal/entity"
	"framescribe/internal/repository"
	"framescribe/internal/storage"
)

// Processor drives one job's pipeline end to end: builder, submitter and
// poller per batch, reconciler, assembler. One logical worker owns one job;
// the job ledger row is the single source of truth for resumption.
type Processor struct {
	Jobs        repository.JobRepository
	Frames      repository.FrameRepository
	Batches     repository.BatchRepository
	Steps       repository.StepRepository
	Manifest    ManifestStore
	Store       storage.ObjectStore
	Credentials credentials.Resolver
	Builders    map[constants.JobKind]ArchiveBuilder
	Cfg         Config
	Logger      *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewProcessor(
	jobs repository.JobRepository,
	frames repository.FrameRepository,
	batches repository.BatchRepository,
	steps repository.StepRepository,
	man ManifestStore,
	store storage.ObjectStore,
	creds credentials.Resolver,
	builders map[constants.JobKind]ArchiveBuilder,
	cfg Config,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Jobs:        jobs,
		Frames:      frames,
		Batches:     batches,
		Steps:       steps,
		Manifest:    man,
		Store:       store,
		Credentials: creds,
		Builders:    builders,
		Cfg:         cfg.withDefaults(),
		Logger:      logger,
		now:         time.Now,
		sleep:       sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run executes (or resumes) the pipeline for one job. Re-entry is safe at any
// suspension point: each stage consults durable state before doing work.
func (p *Processor) Run(ctx context.Context, jobID uuid.UUID) error {
	start := time.Now()
	job, err := p.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if job.Status == constants.JobStatusDone {
		p.Logger.Info("pipeline.already_done", "job_id", jobID)
		return nil
	}

	client, err := p.Credentials.ClientFor(ctx, job.ProfileID)
	if err != nil {
		return p.fail(ctx, job, fmt.Errorf("resolve credential: %w", err))
	}

	if err := p.Jobs.MarkProcessing(ctx, jobID); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	p.Logger.Info("pipeline.start", "job_id", jobID, "kind", job.Kind, "step", job.Step, "status", job.Status)

	items, err := p.preprocess(ctx, job)
	if err != nil {
		return p.fail(ctx, job, err)
	}

	if constants.StepIndex(job.Step) < constants.StepIndex(constants.StepBatchSubmitted) {
		if err := p.submitAndPoll(ctx, client, job, items); err != nil {
			return p.fail(ctx, job, err)
		}
		if err := p.advance(ctx, job, constants.StepBatchSubmitted); err != nil {
			return err
		}
	}

	if constants.StepIndex(job.Step) < constants.StepIndex(constants.StepResultsSaved) {
		if err := p.reconcile(ctx, client, job, items); err != nil {
			return p.fail(ctx, job, err)
		}
		if err := p.advance(ctx, job, constants.StepResultsSaved); err != nil {
			return err
		}
	}

	if constants.StepIndex(job.Step) < constants.StepIndex(constants.StepDocsBuilt) {
		if err := p.assemble(ctx, job); err != nil {
			return p.fail(ctx, job, err)
		}
		if err := p.advance(ctx, job, constants.StepDocsBuilt); err != nil {
			return err
		}
	}

	if err := p.Jobs.MarkDone(ctx, jobID); err != nil {
		return fmt.Errorf("mark done: %w", err)
	}
	p.Logger.Info("pipeline.done", "job_id", jobID, "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}

// advance moves the durable step forward and mirrors it on the in-memory job.
func (p *Processor) advance(ctx context.Context, job *entity.Job, step constants.JobStep) error {
	if err := p.Jobs.AdvanceStep(ctx, job.ID, step); err != nil {
		return fmt.Errorf("advance step %s: %w", step, err)
	}
	job.Step = step
	return nil
}

// fail records the error on the ledger row; the step is left untouched so an
// external retry re-enters at the last successful stage.
func (p *Processor) fail(ctx context.Context, job *entity.Job, err error) error {
	p.Logger.Error("pipeline.failed", "job_id", job.ID, "step", job.Step, "error", err)
	if serr := p.Jobs.SetError(ctx, job.ID, err.Error()); serr != nil {
		p.Logger.Error("pipeline.record_error_failed", "job_id", job.ID, "error", serr)
	}
	return err
}

// runStep memoizes a named step per job: replays return the recorded result
// instead of re-executing the side effect.
func (p *Processor) runStep(ctx context.Context, jobID uuid.UUID, name string, out any, fn func(ctx context.Context) (any, error)) error {
	raw, ok, err := p.Steps.Get(ctx, jobID, name)
	if err != nil {
		return fmt.Errorf("step %s: read ledger: %w", name, err)
	}
	if ok {
		p.Logger.Debug("pipeline.step.replay", "job_id", jobID, "step", name)
		if out != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, out); err != nil {
				return fmt.Errorf("step %s: decode recorded result: %w", name, err)
			}
		}
		return nil
	}
	res, err := fn(ctx)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("step %s: encode result: %w", name, err)
	}
	if err := p.Steps.Put(ctx, jobID, name, encoded); err != nil {
		return fmt.Errorf("step %s: write ledger: %w", name, err)
	}
	if out != nil {
		if err := json.Unmarshal(encoded, out); err != nil {
			return fmt.Errorf("step %s: decode result: %w", name, err)
		}
	}
	return nil
}

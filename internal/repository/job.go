package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"framescribe/constants"
	"framescribe/gen/ent"
	"framescribe/gen/ent/conversionjob"
	"framescribe/internal/entity"
)

// CreateJobParams wraps parameters for creating a conversion job.
type CreateJobParams struct {
	ProfileID   uuid.UUID
	Kind        constants.JobKind
	ArchiveKey  string
	ParentJobID *uuid.UUID
}

type JobRepository interface {
	Create(ctx context.Context, p CreateJobParams) (*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	ListByStatus(ctx context.Context, status constants.JobStatus) ([]*entity.Job, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// AdvanceStep moves the step forward; it is a no-op if the job already
	// reached the target or a later step, so replays are safe.
	AdvanceStep(ctx context.Context, id uuid.UUID, step constants.JobStep) error
	MarkDone(ctx context.Context, id uuid.UUID) error
	// SetError records the failure message and flips status to ERROR,
	// leaving step at its last successful value for resumption.
	SetError(ctx context.Context, id uuid.UUID, msg string) error

	SetPreprocessResult(ctx context.Context, id uuid.UUID, totalImages int, filteredKey, thumbnailKey string) error
	SetSubmitProgress(ctx context.Context, id uuid.UUID, submittedImages, totalBatches, batchSize int, batchID, inputFileID string) error
	// SetBatchSize persists a ratchet step on its own, so a shrink survives a
	// crash that happens before the next accepted submission.
	SetBatchSize(ctx context.Context, id uuid.UUID, size int) error
	SetCompletedBatches(ctx context.Context, id uuid.UUID, n int) error
	SetArtifacts(ctx context.Context, id uuid.UUID, textKey string, textSize int64, richKey string, richSize int64) error
}

type jobRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobRepo{client: client, logger: logger}
}

func (r *jobRepo) Create(ctx context.Context, p CreateJobParams) (*entity.Job, error) {
	builder := r.client.ConversionJob.Create().
		SetProfileID(p.ProfileID).
		SetKind(string(p.Kind)).
		SetArchiveKey(p.ArchiveKey)
	if p.ParentJobID != nil {
		builder = builder.SetParentJobID(*p.ParentJobID)
	}
	job, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("job create failed", "profile_id", p.ProfileID, "error", err)
		return nil, err
	}
	r.logger.Info("job created", "job_id", job.ID, "kind", p.Kind, "archive_key", p.ArchiveKey)
	return toJob(job), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := r.client.ConversionJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toJob(job), nil
}

func (r *jobRepo) ListByStatus(ctx context.Context, status constants.JobStatus) ([]*entity.Job, error) {
	rows, err := r.client.ConversionJob.Query().
		Where(conversionjob.Status(string(status))).
		Order(conversionjob.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Job, len(rows))
	for i, row := range rows {
		out[i] = toJob(row)
	}
	return out, nil
}

func (r *jobRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.ConversionJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusProcessing)).
		ClearErrorMessage().
		Save(ctx)
	return err
}

func (r *jobRepo) AdvanceStep(ctx context.Context, id uuid.UUID, step constants.JobStep) error {
	idx := constants.StepIndex(step)
	// conditional update: only rows still at an earlier step move
	earlier := make([]string, 0, idx)
	for _, s := range constants.StepOrder[:idx] {
		earlier = append(earlier, string(s))
	}
	n, err := r.client.ConversionJob.Update().
		Where(conversionjob.ID(id), conversionjob.StepIn(earlier...)).
		SetStep(string(step)).
		Save(ctx)
	if err != nil {
		r.logger.Error("job step advance failed", "job_id", id, "step", step, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Debug("job step already advanced", "job_id", id, "step", step)
	} else {
		r.logger.Info("job step advanced", "job_id", id, "step", step)
	}
	return nil
}

func (r *jobRepo) MarkDone(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.ConversionJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusDone)).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("job mark done failed", "job_id", id, "error", err)
		return err
	}
	r.logger.Info("job done", "job_id", id)
	return nil
}

func (r *jobRepo) SetError(ctx context.Context, id uuid.UUID, msg string) error {
	_, err := r.client.ConversionJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusError)).
		SetErrorMessage(msg).
		Save(ctx)
	if err != nil {
		r.logger.Error("job set error failed", "job_id", id, "error", err)
		return err
	}
	r.logger.Warn("job failed", "job_id", id, "message", msg)
	return nil
}

func (r *jobRepo) SetPreprocessResult(ctx context.Context, id uuid.UUID, totalImages int, filteredKey, thumbnailKey string) error {
	b := r.client.ConversionJob.UpdateOneID(id).
		SetTotalImages(totalImages).
		SetPreprocessedImages(totalImages)
	if filteredKey != "" {
		b = b.SetFilteredArchiveKey(filteredKey)
	}
	if thumbnailKey != "" {
		b = b.SetThumbnailKey(thumbnailKey)
	}
	_, err := b.Save(ctx)
	return err
}

func (r *jobRepo) SetSubmitProgress(ctx context.Context, id uuid.UUID, submittedImages, totalBatches, batchSize int, batchID, inputFileID string) error {
	_, err := r.client.ConversionJob.UpdateOneID(id).
		SetSubmittedImages(submittedImages).
		SetTotalBatches(totalBatches).
		SetBatchSize(batchSize).
		SetCurrentBatchID(batchID).
		SetCurrentInputFileID(inputFileID).
		Save(ctx)
	return err
}

func (r *jobRepo) SetBatchSize(ctx context.Context, id uuid.UUID, size int) error {
	_, err := r.client.ConversionJob.UpdateOneID(id).
		SetBatchSize(size).
		Save(ctx)
	return err
}

func (r *jobRepo) SetCompletedBatches(ctx context.Context, id uuid.UUID, n int) error {
	_, err := r.client.ConversionJob.UpdateOneID(id).
		SetCompletedBatches(n).
		Save(ctx)
	return err
}

func (r *jobRepo) SetArtifacts(ctx context.Context, id uuid.UUID, textKey string, textSize int64, richKey string, richSize int64) error {
	_, err := r.client.ConversionJob.UpdateOneID(id).
		SetTextDocKey(textKey).
		SetTextDocSize(textSize).
		SetRichDocKey(richKey).
		SetRichDocSize(richSize).
		Save(ctx)
	return err
}

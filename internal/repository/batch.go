package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"framescribe/constants"
	"framescribe/gen/ent"
	"framescribe/gen/ent/batchsubmission"
	"framescribe/internal/entity"
)

type BatchRepository interface {
	// Reserve returns the existing row for (job, index) or creates a fresh one.
	// The row is the durable anchor for crash-safe submission.
	Reserve(ctx context.Context, jobID uuid.UUID, batchIndex, itemCount int, supplementary bool) (*entity.Batch, error)
	Get(ctx context.Context, jobID uuid.UUID, batchIndex int) (*entity.Batch, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Batch, error)
	SetInputFile(ctx context.Context, id uuid.UUID, inputFileID string, itemCount int) error
	SetSubmitted(ctx context.Context, id uuid.UUID, providerBatchID string) error
	SetCompleted(ctx context.Context, id uuid.UUID, outputFileID string) error
	SetFailed(ctx context.Context, id uuid.UUID) error
	SetNextPollAt(ctx context.Context, id uuid.UUID, at time.Time) error
}

type batchRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBatchRepository(client *ent.Client, logger *slog.Logger) BatchRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &batchRepo{client: client, logger: logger}
}

func (r *batchRepo) Reserve(ctx context.Context, jobID uuid.UUID, batchIndex, itemCount int, supplementary bool) (*entity.Batch, error) {
	row, err := r.client.BatchSubmission.Query().
		Where(batchsubmission.JobID(jobID), batchsubmission.BatchIndex(batchIndex)).
		Only(ctx)
	if err == nil {
		return toBatch(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	row, err = r.client.BatchSubmission.Create().
		SetJobID(jobID).
		SetBatchIndex(batchIndex).
		SetItemCount(itemCount).
		SetSupplementary(supplementary).
		Save(ctx)
	if err != nil {
		r.logger.Error("batch reserve failed", "job_id", jobID, "batch_index", batchIndex, "error", err)
		return nil, err
	}
	return toBatch(row), nil
}

func (r *batchRepo) Get(ctx context.Context, jobID uuid.UUID, batchIndex int) (*entity.Batch, error) {
	row, err := r.client.BatchSubmission.Query().
		Where(batchsubmission.JobID(jobID), batchsubmission.BatchIndex(batchIndex)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toBatch(row), nil
}

func (r *batchRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Batch, error) {
	rows, err := r.client.BatchSubmission.Query().
		Where(batchsubmission.JobID(jobID)).
		Order(batchsubmission.ByBatchIndex()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Batch, len(rows))
	for i, row := range rows {
		out[i] = toBatch(row)
	}
	return out, nil
}

func (r *batchRepo) SetInputFile(ctx context.Context, id uuid.UUID, inputFileID string, itemCount int) error {
	_, err := r.client.BatchSubmission.UpdateOneID(id).
		SetInputFileID(inputFileID).
		SetItemCount(itemCount).
		Save(ctx)
	return err
}

func (r *batchRepo) SetSubmitted(ctx context.Context, id uuid.UUID, providerBatchID string) error {
	_, err := r.client.BatchSubmission.UpdateOneID(id).
		SetProviderBatchID(providerBatchID).
		SetState(string(constants.BatchRowSubmitted)).
		Save(ctx)
	return err
}

func (r *batchRepo) SetCompleted(ctx context.Context, id uuid.UUID, outputFileID string) error {
	_, err := r.client.BatchSubmission.UpdateOneID(id).
		SetOutputFileID(outputFileID).
		SetState(string(constants.BatchRowCompleted)).
		ClearNextPollAt().
		Save(ctx)
	return err
}

func (r *batchRepo) SetFailed(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.BatchSubmission.UpdateOneID(id).
		SetState(string(constants.BatchRowFailed)).
		ClearNextPollAt().
		Save(ctx)
	return err
}

func (r *batchRepo) SetNextPollAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.client.BatchSubmission.UpdateOneID(id).
		SetNextPollAt(at).
		Save(ctx)
	return err
}

package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"framescribe/gen/ent"
	"framescribe/gen/ent/frame"
	"framescribe/internal/entity"
)

type FrameRepository interface {
	// ReplaceForJob deletes all existing rows for the job and inserts the
	// reconciled set in one transaction, so re-running reconciliation is safe.
	ReplaceForJob(ctx context.Context, jobID uuid.UUID, frames []entity.Frame) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Frame, error)
	CountByJob(ctx context.Context, jobID uuid.UUID) (int, error)
}

type frameRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFrameRepository(client *ent.Client, logger *slog.Logger) FrameRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &frameRepo{client: client, logger: logger}
}

func (r *frameRepo) ReplaceForJob(ctx context.Context, jobID uuid.UUID, frames []entity.Frame) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	deleted, err := tx.Frame.Delete().Where(frame.JobID(jobID)).Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete frames: %w", err)
	}
	builders := make([]*ent.FrameCreate, len(frames))
	for i, f := range frames {
		builders[i] = tx.Frame.Create().
			SetJobID(jobID).
			SetFilename(f.Filename).
			SetBaseKey(f.BaseKey).
			SetFrameIndex(f.FrameIndex).
			SetText(f.Text)
	}
	if _, err := tx.Frame.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert frames: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit frames: %w", err)
	}
	r.logger.Info("frames replaced", "job_id", jobID, "deleted", deleted, "inserted", len(frames))
	return nil
}

func (r *frameRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Frame, error) {
	rows, err := r.client.Frame.Query().
		Where(frame.JobID(jobID)).
		Order(frame.ByFrameIndex()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list frames", "job_id", jobID, "error", err)
		return nil, err
	}
	out := make([]*entity.Frame, len(rows))
	for i, row := range rows {
		out[i] = toFrame(row)
	}
	return out, nil
}

func (r *frameRepo) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	return r.client.Frame.Query().Where(frame.JobID(jobID)).Count(ctx)
}

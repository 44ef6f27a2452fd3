package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"framescribe/gen/ent"
	"framescribe/gen/ent/pipelinestep"
)

// StepRepository is the step-memoization ledger. Single-writer-per-job is
// assumed, so get-then-create is sufficient; a duplicate insert can only
// happen if that assumption is violated and then the unique index wins.
type StepRepository interface {
	Get(ctx context.Context, jobID uuid.UUID, name string) (json.RawMessage, bool, error)
	Put(ctx context.Context, jobID uuid.UUID, name string, result json.RawMessage) error
	DeleteForJob(ctx context.Context, jobID uuid.UUID) error
}

type stepRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStepRepository(client *ent.Client, logger *slog.Logger) StepRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &stepRepo{client: client, logger: logger}
}

func (r *stepRepo) Get(ctx context.Context, jobID uuid.UUID, name string) (json.RawMessage, bool, error) {
	row, err := r.client.PipelineStep.Query().
		Where(pipelinestep.JobID(jobID), pipelinestep.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Result, true, nil
}

func (r *stepRepo) Put(ctx context.Context, jobID uuid.UUID, name string, result json.RawMessage) error {
	row, err := r.client.PipelineStep.Query().
		Where(pipelinestep.JobID(jobID), pipelinestep.Name(name)).
		Only(ctx)
	if err == nil {
		_, err = r.client.PipelineStep.UpdateOneID(row.ID).SetResult(result).Save(ctx)
		return err
	}
	if !ent.IsNotFound(err) {
		return err
	}
	_, err = r.client.PipelineStep.Create().
		SetJobID(jobID).
		SetName(name).
		SetResult(result).
		Save(ctx)
	if err != nil {
		r.logger.Error("step put failed", "job_id", jobID, "step", name, "error", err)
	}
	return err
}

func (r *stepRepo) DeleteForJob(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.client.PipelineStep.Delete().Where(pipelinestep.JobID(jobID)).Exec(ctx)
	return err
}

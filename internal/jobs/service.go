package jobs

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"framescribe/constants"
	"framescribe/internal/async"
	"framescribe/internal/document"
	"framescribe/internal/entity"
	"framescribe/internal/repository"
)

// Service handles conversion job business logic: creation, lookup, and the
// frame export. Pipeline execution itself happens on the worker queue.
type Service struct {
	jobRepo     repository.JobRepository
	frameRepo   repository.FrameRepository
	profileRepo repository.ProfileRepository
	queue       async.Queue
	logger      *slog.Logger
}

func NewService(
	jobRepo repository.JobRepository,
	frameRepo repository.FrameRepository,
	profileRepo repository.ProfileRepository,
	queue async.Queue,
	logger *slog.Logger,
) *Service {
	return &Service{
		jobRepo:     jobRepo,
		frameRepo:   frameRepo,
		profileRepo: profileRepo,
		queue:       queue,
		logger:      logger,
	}
}

// CreateJobRequest represents job creation parameters.
type CreateJobRequest struct {
	ProfileID   uuid.UUID
	Kind        constants.JobKind
	ArchiveKey  string
	ParentJobID *uuid.UUID
}

// CreateJob records a new conversion job and queues it for processing.
func (s *Service) CreateJob(ctx context.Context, req CreateJobRequest) (*entity.Job, error) {
	key := strings.TrimSpace(req.ArchiveKey)
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "archive_key is required")
	}
	if req.Kind == "" {
		req.Kind = constants.JobKindOCR
	}
	valid := false
	for _, k := range constants.JobKinds {
		if k == string(req.Kind) {
			valid = true
			break
		}
	}
	if !valid {
		return nil, status.Errorf(codes.InvalidArgument, "unknown job kind %q", req.Kind)
	}

	if exists, _ := s.profileRepo.Exists(ctx, req.ProfileID); !exists {
		return nil, status.Error(codes.InvalidArgument, "profile not found")
	}

	job, err := s.jobRepo.Create(ctx, repository.CreateJobParams{
		ProfileID:   req.ProfileID,
		Kind:        req.Kind,
		ArchiveKey:  key,
		ParentJobID: req.ParentJobID,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create job: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Task{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		s.logger.Error("job enqueue failed", "job_id", job.ID, "error", err)
	}
	return job, nil
}

// GetJob returns one job by id.
func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	return job, nil
}

// ListJobs returns jobs in a given status, oldest first.
func (s *Service) ListJobs(ctx context.Context, st constants.JobStatus) ([]*entity.Job, error) {
	rows, err := s.jobRepo.ListByStatus(ctx, st)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}
	return rows, nil
}

// RetryJob re-queues a failed job; the pipeline resumes at the step the
// ledger recorded before the failure.
func (s *Service) RetryJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	if job.Status != constants.JobStatusError {
		return nil, status.Errorf(codes.FailedPrecondition, "job is %s, only ERROR jobs can be retried", job.Status)
	}
	if err := s.queue.Enqueue(ctx, async.Task{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		return nil, status.Errorf(codes.Internal, "enqueue: %v", err)
	}
	s.logger.Info("job retry queued", "job_id", job.ID, "step", job.Step)
	return job, nil
}

// ExportFrames renders a job's reconciled frames as an XLSX workbook.
func (s *Service) ExportFrames(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.jobRepo.GetByID(ctx, id); err != nil {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	frames, err := s.frameRepo.ListByJob(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list frames: %v", err)
	}
	if len(frames) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "job has no frames yet")
	}
	xlsx, err := document.FramesXLSX(frames)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "export frames: %v", err)
	}
	return xlsx, nil
}

// ResumeInterrupted re-queues every job a previous process left mid-flight.
// Called once at startup.
func (s *Service) ResumeInterrupted(ctx context.Context) (int, error) {
	var resumed int
	for _, st := range []constants.JobStatus{constants.JobStatusProcessing, constants.JobStatusPending} {
		rows, err := s.jobRepo.ListByStatus(ctx, st)
		if err != nil {
			return resumed, err
		}
		for _, job := range rows {
			if err := s.queue.Enqueue(ctx, async.Task{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
				s.logger.Error("resume enqueue failed", "job_id", job.ID, "error", err)
				continue
			}
			resumed++
		}
	}
	if resumed > 0 {
		s.logger.Info("resumed interrupted jobs", "count", resumed)
	}
	return resumed, nil
}

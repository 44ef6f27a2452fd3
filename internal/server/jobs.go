package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"framescribe/constants"
	framescribepb "framescribe/gen/proto/framescribe/v1"
	"framescribe/internal/jobs"
	"framescribe/internal/utils"
)

type JobServer struct {
	framescribepb.UnimplementedJobServiceServer
	svc    *jobs.Service
	logger *slog.Logger
}

func NewJobServer(svc *jobs.Service, logger *slog.Logger) *JobServer {
	return &JobServer{
		svc:    svc,
		logger: logger,
	}
}

// CreateJob registers a new conversion job and queues it for processing.
func (s *JobServer) CreateJob(ctx context.Context, req *framescribepb.CreateJobRequest) (*framescribepb.CreateJobResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	if pid == "" {
		s.logger.Error("create job request missing profile_id")
		return nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid profile_id format for create job", "profile_id", pid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	var parent *uuid.UUID
	if p := strings.TrimSpace(req.GetParentJobId()); p != "" {
		parentID, err := uuid.Parse(p)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "parent_job_id must be a UUID")
		}
		parent = &parentID
	}

	job, err := s.svc.CreateJob(ctx, jobs.CreateJobRequest{
		ProfileID:   profileID,
		Kind:        constants.JobKind(strings.TrimSpace(req.GetKind())),
		ArchiveKey:  req.GetArchiveKey(),
		ParentJobID: parent,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("job accepted", "job_id", job.ID, "kind", job.Kind)
	return &framescribepb.CreateJobResponse{Job: utils.ToPBJob(job)}, nil
}

// GetJob returns the current ledger view of one job.
func (s *JobServer) GetJob(ctx context.Context, req *framescribepb.GetJobRequest) (*framescribepb.GetJobResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.svc.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	return &framescribepb.GetJobResponse{Job: utils.ToPBJob(job)}, nil
}

// ListJobs returns jobs filtered by status.
func (s *JobServer) ListJobs(ctx context.Context, req *framescribepb.ListJobsRequest) (*framescribepb.ListJobsResponse, error) {
	st := constants.JobStatus(strings.ToUpper(strings.TrimSpace(req.GetStatus())))
	if st == "" {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}
	rows, err := s.svc.ListJobs(ctx, st)
	if err != nil {
		return nil, err
	}
	out := make([]*framescribepb.Job, 0, len(rows))
	for _, j := range rows {
		out = append(out, utils.ToPBJob(j))
	}
	return &framescribepb.ListJobsResponse{Jobs: out}, nil
}

// RetryJob re-queues an ERROR job; it resumes at its recorded step.
func (s *JobServer) RetryJob(ctx context.Context, req *framescribepb.RetryJobRequest) (*framescribepb.RetryJobResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.svc.RetryJob(ctx, id)
	if err != nil {
		return nil, err
	}
	return &framescribepb.RetryJobResponse{Job: utils.ToPBJob(job)}, nil
}

// ExportFrames returns the job's frame table as an XLSX workbook.
func (s *JobServer) ExportFrames(ctx context.Context, req *framescribepb.ExportFramesRequest) (*framescribepb.ExportFramesResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	xlsx, err := s.svc.ExportFrames(ctx, id)
	if err != nil {
		s.logger.Error("export.frames.failed", "job_id", id, "err", err)
		return nil, err
	}
	return &framescribepb.ExportFramesResponse{Xlsx: xlsx}, nil
}

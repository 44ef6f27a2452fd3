package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"framescribe/constants"
	"framescribe/internal/async"
	"framescribe/internal/entity"
	"framescribe/internal/repository"
)

type stubJobRepo struct {
	repository.JobRepository
	jobs map[uuid.UUID]*entity.Job
}

func (r *stubJobRepo) Create(_ context.Context, p repository.CreateJobParams) (*entity.Job, error) {
	job := &entity.Job{
		ID:        uuid.New(),
		ProfileID: p.ProfileID,
		Kind:      p.Kind,
		Status:    constants.JobStatusPending,
		Step:      constants.StepPreprocessing,
	}
	r.jobs[job.ID] = job
	return job, nil
}

func (r *stubJobRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return job, nil
}

func (r *stubJobRepo) ListByStatus(_ context.Context, st constants.JobStatus) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range r.jobs {
		if j.Status == st {
			out = append(out, j)
		}
	}
	return out, nil
}

type stubFrameRepo struct {
	repository.FrameRepository
	frames map[uuid.UUID][]*entity.Frame
}

func (r *stubFrameRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]*entity.Frame, error) {
	return r.frames[jobID], nil
}

type stubProfileRepo struct {
	repository.ProfileRepository
	known map[uuid.UUID]bool
}

func (r *stubProfileRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return r.known[id], nil
}

type stubQueue struct {
	tasks []async.Task
}

func (q *stubQueue) Enqueue(_ context.Context, task async.Task) error {
	q.tasks = append(q.tasks, task)
	return nil
}

func (q *stubQueue) Shutdown(context.Context) {}

func newTestService() (*Service, *stubJobRepo, *stubFrameRepo, *stubProfileRepo, *stubQueue) {
	jr := &stubJobRepo{jobs: map[uuid.UUID]*entity.Job{}}
	fr := &stubFrameRepo{frames: map[uuid.UUID][]*entity.Frame{}}
	pr := &stubProfileRepo{known: map[uuid.UUID]bool{}}
	q := &stubQueue{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(jr, fr, pr, q, logger), jr, fr, pr, q
}

func TestCreateJobEnqueues(t *testing.T) {
	svc, _, _, pr, q := newTestService()
	profileID := uuid.New()
	pr.known[profileID] = true

	job, err := svc.CreateJob(context.Background(), CreateJobRequest{
		ProfileID:  profileID,
		Kind:       constants.JobKindOCR,
		ArchiveKey: "uploads/a.zip",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if len(q.tasks) != 1 || q.tasks[0].JobID != job.ID {
		t.Errorf("queue tasks = %+v", q.tasks)
	}
}

func TestCreateJobValidation(t *testing.T) {
	svc, _, _, pr, _ := newTestService()
	profileID := uuid.New()
	pr.known[profileID] = true

	_, err := svc.CreateJob(context.Background(), CreateJobRequest{ProfileID: profileID})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("missing archive key: code = %v", status.Code(err))
	}

	_, err = svc.CreateJob(context.Background(), CreateJobRequest{
		ProfileID: profileID, ArchiveKey: "a.zip", Kind: "BOGUS",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("bogus kind: code = %v", status.Code(err))
	}

	_, err = svc.CreateJob(context.Background(), CreateJobRequest{
		ProfileID: uuid.New(), ArchiveKey: "a.zip",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("unknown profile: code = %v", status.Code(err))
	}
}

func TestRetryJobOnlyForErrorStatus(t *testing.T) {
	svc, jr, _, _, q := newTestService()
	job := &entity.Job{ID: uuid.New(), Status: constants.JobStatusError, Step: constants.StepBatchSubmitted}
	jr.jobs[job.ID] = job

	if _, err := svc.RetryJob(context.Background(), job.ID); err != nil {
		t.Fatalf("RetryJob: %v", err)
	}
	if len(q.tasks) != 1 {
		t.Errorf("queue tasks = %d, want 1", len(q.tasks))
	}

	done := &entity.Job{ID: uuid.New(), Status: constants.JobStatusDone}
	jr.jobs[done.ID] = done
	if _, err := svc.RetryJob(context.Background(), done.ID); status.Code(err) != codes.FailedPrecondition {
		t.Errorf("retry of DONE job: code = %v", status.Code(err))
	}
}

func TestResumeInterrupted(t *testing.T) {
	svc, jr, _, _, q := newTestService()
	processing := &entity.Job{ID: uuid.New(), Status: constants.JobStatusProcessing}
	pending := &entity.Job{ID: uuid.New(), Status: constants.JobStatusPending}
	done := &entity.Job{ID: uuid.New(), Status: constants.JobStatusDone}
	jr.jobs[processing.ID] = processing
	jr.jobs[pending.ID] = pending
	jr.jobs[done.ID] = done

	n, err := svc.ResumeInterrupted(context.Background())
	if err != nil {
		t.Fatalf("ResumeInterrupted: %v", err)
	}
	if n != 2 || len(q.tasks) != 2 {
		t.Errorf("resumed %d tasks (%d queued), want 2", n, len(q.tasks))
	}
}

func TestExportFramesRequiresFrames(t *testing.T) {
	svc, jr, fr, _, _ := newTestService()
	job := &entity.Job{ID: uuid.New(), Status: constants.JobStatusDone}
	jr.jobs[job.ID] = job

	if _, err := svc.ExportFrames(context.Background(), job.ID); status.Code(err) != codes.FailedPrecondition {
		t.Errorf("export without frames: code = %v", status.Code(err))
	}

	fr.frames[job.ID] = []*entity.Frame{{JobID: job.ID, Filename: "1.png", BaseKey: "1", Text: "hi"}}
	data, err := svc.ExportFrames(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("ExportFrames: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty workbook")
	}
}

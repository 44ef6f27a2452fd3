package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"framescribe/constants"
)

func TestRunHappyPath(t *testing.T) {
	f := newFixture(4)
	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	job := f.jobs.get(f.job.ID)
	if job.Status != constants.JobStatusDone {
		t.Errorf("status = %s, want DONE", job.Status)
	}
	if job.Step != constants.StepDocsBuilt {
		t.Errorf("step = %s, want DOCS_BUILT", job.Step)
	}
	if job.TextDocKey == "" || job.RichDocKey == "" {
		t.Errorf("artifact keys missing: %q %q", job.TextDocKey, job.RichDocKey)
	}
	if job.TextDocSize <= 0 || job.RichDocSize <= 0 {
		t.Errorf("artifact sizes not recorded: %d %d", job.TextDocSize, job.RichDocSize)
	}
	if _, err := f.store.Get(context.Background(), job.TextDocKey); err != nil {
		t.Errorf("text artifact not uploaded: %v", err)
	}
	if _, err := f.store.Get(context.Background(), job.RichDocKey); err != nil {
		t.Errorf("rich artifact not uploaded: %v", err)
	}
}

func TestRunResumesAfterFailureWithoutRedoingWork(t *testing.T) {
	f := newFixture(4)
	boom := errors.New("provider unavailable")
	f.provider.createErrOnce = boom

	if err := f.proc.Run(context.Background(), f.job.ID); !errors.Is(err, boom) {
		t.Fatalf("first run err = %v, want wrapped provider failure", err)
	}

	job := f.jobs.get(f.job.ID)
	if job.Status != constants.JobStatusError {
		t.Fatalf("status after crash = %s, want ERROR", job.Status)
	}
	buildsAfterFailure := f.builder.calls

	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("resume run: %v", err)
	}

	if f.builder.calls != buildsAfterFailure {
		t.Errorf("preprocessing re-ran on resume: %d builds, had %d", f.builder.calls, buildsAfterFailure)
	}
	job = f.jobs.get(f.job.ID)
	if job.Status != constants.JobStatusDone {
		t.Errorf("status after resume = %s, want DONE", job.Status)
	}
}

func TestRunResumesAfterSubmissionStageWithoutResubmitting(t *testing.T) {
	f := newFixture(5)
	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	creates := f.provider.createCalls
	uploads := f.provider.uploadCalls

	// crash window: submission durably recorded as finished, results not yet
	// saved; the frame table is still empty on the restarted host
	rewound := f.jobs.get(f.job.ID)
	rewound.Status = constants.JobStatusProcessing
	rewound.Step = constants.StepBatchSubmitted
	f.jobs.add(rewound)
	f.frames.mu.Lock()
	delete(f.frames.frames, f.job.ID)
	f.frames.mu.Unlock()

	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("resume run: %v", err)
	}

	if f.provider.createCalls != creates || f.provider.uploadCalls != uploads {
		t.Errorf("finished submission stage touched the provider again: %d/%d calls, had %d/%d",
			f.provider.createCalls, f.provider.uploadCalls, creates, uploads)
	}
	frames, _ := f.frames.ListByJob(context.Background(), f.job.ID)
	if len(frames) != 5 {
		t.Errorf("got %d frames after resume, want 5", len(frames))
	}
	job := f.jobs.get(f.job.ID)
	if job.Status != constants.JobStatusDone {
		t.Errorf("status after resume = %s, want DONE", job.Status)
	}
	if job.Step != constants.StepDocsBuilt {
		t.Errorf("step after resume = %s, want DOCS_BUILT", job.Step)
	}
}

func TestRunIsIdempotentWhenDone(t *testing.T) {
	f := newFixture(4)
	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	creates := f.provider.createCalls
	uploads := f.provider.uploadCalls

	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if f.provider.createCalls != creates || f.provider.uploadCalls != uploads {
		t.Errorf("completed job touched the provider again: %d/%d calls, had %d/%d",
			f.provider.createCalls, f.provider.uploadCalls, creates, uploads)
	}
}

func TestRunPurgesEphemeralState(t *testing.T) {
	f := newFixture(4)
	// seed a crop object the purge should sweep
	_ = f.store.Put(context.Background(), "crops/"+f.job.ID.String()+"/0001_1.png", strings.NewReader("png"), 3, "image/png")

	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if items, _ := f.manifest.Load(context.Background(), f.job.ID); len(items) != 0 {
		t.Errorf("manifest not purged: %d items remain", len(items))
	}
	keys, _ := f.store.List(context.Background(), "crops/"+f.job.ID.String()+"/")
	if len(keys) != 0 {
		t.Errorf("crops not purged: %v", keys)
	}
}

func TestRunStepReplaysRecordedResult(t *testing.T) {
	f := newFixture(2)
	calls := 0
	type out struct {
		N int `json:"n"`
	}

	var first out
	err := f.proc.runStep(context.Background(), f.job.ID, "scan", &first, func(context.Context) (any, error) {
		calls++
		return out{N: 41}, nil
	})
	if err != nil {
		t.Fatalf("first runStep: %v", err)
	}

	var second out
	err = f.proc.runStep(context.Background(), f.job.ID, "scan", &second, func(context.Context) (any, error) {
		calls++
		return out{N: 99}, nil
	})
	if err != nil {
		t.Fatalf("second runStep: %v", err)
	}
	if calls != 1 {
		t.Errorf("step executed %d times, want 1", calls)
	}
	if second.N != 41 {
		t.Errorf("replayed result = %d, want recorded 41", second.N)
	}
}

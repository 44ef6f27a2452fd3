package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"framescribe/constants"
)

func TestSubmitShrinksDownLadderAndNeverGrows(t *testing.T) {
	f := newFixture(520)
	f.provider.capacityAbove = 400

	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows, _ := f.batches.ListByJob(context.Background(), f.job.ID)
	if len(rows) != 2 {
		t.Fatalf("got %d batch rows, want 2", len(rows))
	}
	if rows[0].ItemCount != 400 {
		t.Errorf("batch 0 item count = %d, want 400", rows[0].ItemCount)
	}
	// the remainder stays at the ratcheted size even though 120 < 400
	if rows[1].ItemCount != 120 {
		t.Errorf("batch 1 item count = %d, want 120", rows[1].ItemCount)
	}

	job := f.jobs.get(f.job.ID)
	if job.BatchSize != 400 {
		t.Errorf("job batch size = %d, want ratcheted 400", job.BatchSize)
	}
	if job.SubmittedImages != 520 {
		t.Errorf("submitted images = %d, want 520", job.SubmittedImages)
	}
	if job.Status != constants.JobStatusDone {
		t.Errorf("job status = %s, want DONE", job.Status)
	}
}

func TestSubmitLadderExhausted(t *testing.T) {
	f := newFixture(120)
	f.provider.capacityAbove = 10

	err := f.proc.Run(context.Background(), f.job.ID)
	if !errors.Is(err, ErrLadderExhausted) {
		t.Fatalf("err = %v, want ErrLadderExhausted", err)
	}

	job := f.jobs.get(f.job.ID)
	if job.Status != constants.JobStatusError {
		t.Errorf("job status = %s, want ERROR", job.Status)
	}
	if job.Step != constants.StepPreprocessing {
		t.Errorf("job step = %s, want PREPROCESSING retained", job.Step)
	}
}

func TestSubmitPersistsShrunkSizeBeforeResubmission(t *testing.T) {
	f := newFixture(120)
	f.provider.capacityAbove = 10

	err := f.proc.Run(context.Background(), f.job.ID)
	if !errors.Is(err, ErrLadderExhausted) {
		t.Fatalf("err = %v, want ErrLadderExhausted", err)
	}

	// every shrink was durably recorded even though no submission succeeded
	job := f.jobs.get(f.job.ID)
	if job.BatchSize != 50 {
		t.Errorf("job batch size = %d, want 50", job.BatchSize)
	}

	// a restarted run picks up at the ratcheted size: one attempt, not a
	// fresh walk down from 500
	creates := f.provider.createCalls
	err = f.proc.Run(context.Background(), f.job.ID)
	if !errors.Is(err, ErrLadderExhausted) {
		t.Fatalf("rerun err = %v, want ErrLadderExhausted", err)
	}
	if got := f.provider.createCalls - creates; got != 1 {
		t.Errorf("rerun made %d create attempts, want 1", got)
	}
}

func TestSubmitSingleBatchForSmallJob(t *testing.T) {
	f := newFixture(7)
	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows, _ := f.batches.ListByJob(context.Background(), f.job.ID)
	if len(rows) != 1 {
		t.Fatalf("got %d batch rows, want 1", len(rows))
	}
	if rows[0].ItemCount != 7 {
		t.Errorf("item count = %d, want 7", rows[0].ItemCount)
	}
	job := f.jobs.get(f.job.ID)
	if job.TotalBatches != 1 || job.CompletedBatches != 1 {
		t.Errorf("batches = %d/%d, want 1/1", job.CompletedBatches, job.TotalBatches)
	}
}

func TestPollPersistsNextWake(t *testing.T) {
	f := newFixture(3)
	f.provider.pendingPolls = 2

	sleeps := 0
	f.proc.sleep = func(context.Context, time.Duration) error { sleeps++; return nil }

	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sleeps < 2 {
		t.Errorf("slept %d times, want at least 2", sleeps)
	}
	if f.provider.pollCalls < 3 {
		t.Errorf("polled %d times, want at least 3", f.provider.pollCalls)
	}
	rows, _ := f.batches.ListByJob(context.Background(), f.job.ID)
	if rows[0].NextPollAt != nil {
		t.Errorf("next poll not cleared after completion")
	}
}

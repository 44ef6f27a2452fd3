package pipeline

import (
	"context"
	"errors"
	"testing"

	"framescribe/constants"
)

func TestReconcileSupplementaryRetryFillsGaps(t *testing.T) {
	f := newFixture(5)
	f.provider.failItems[2] = true
	f.provider.failOnce = true

	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	frames, _ := f.frames.ListByJob(context.Background(), f.job.ID)
	if len(frames) != 5 {
		t.Fatalf("got %d frames, want 5", len(frames))
	}
	for _, fr := range frames {
		if fr.Text == "" {
			t.Errorf("frame %d has empty text after retry", fr.FrameIndex)
		}
	}

	rows, _ := f.batches.ListByJob(context.Background(), f.job.ID)
	var supp int
	for _, row := range rows {
		if row.Supplementary {
			supp++
			if row.ItemCount != 1 {
				t.Errorf("supplementary item count = %d, want 1", row.ItemCount)
			}
		}
	}
	if supp != 1 {
		t.Errorf("got %d supplementary batches, want exactly 1", supp)
	}
}

func TestReconcileFailsWhenRetryStillShort(t *testing.T) {
	f := newFixture(5)
	f.provider.failItems[2] = true // fails on every attempt

	err := f.proc.Run(context.Background(), f.job.ID)
	if !errors.Is(err, ErrFrameCountMismatch) {
		t.Fatalf("err = %v, want ErrFrameCountMismatch", err)
	}

	job := f.jobs.get(f.job.ID)
	if job.Status != constants.JobStatusError {
		t.Errorf("job status = %s, want ERROR", job.Status)
	}
	if job.Step != constants.StepBatchSubmitted {
		t.Errorf("job step = %s, want BATCH_SUBMITTED retained", job.Step)
	}
	if f.frames.replaces != 0 {
		t.Errorf("frames were persisted despite the gap")
	}
}

func TestReconcileNormalizesSentinels(t *testing.T) {
	f := newFixture(3)
	f.provider.respond = func(cor Correlation) string {
		switch cor.GlobalIndex {
		case 0:
			return "  hello there  "
		case 1:
			return "NO_SUBTITLE"
		default:
			return "No subtitle detected"
		}
	}

	if err := f.proc.Run(context.Background(), f.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	frames, _ := f.frames.ListByJob(context.Background(), f.job.ID)
	want := []string{"hello there", "", ""}
	for i, w := range want {
		if frames[i].Text != w {
			t.Errorf("frame %d text = %q, want %q", i, frames[i].Text, w)
		}
	}
}

func TestReconcileAllSentinelsFailsAssembly(t *testing.T) {
	f := newFixture(2)
	f.provider.respond = func(Correlation) string { return "NO_SUBTITLE" }

	err := f.proc.Run(context.Background(), f.job.ID)
	if err == nil {
		t.Fatal("expected empty-document failure")
	}

	job := f.jobs.get(f.job.ID)
	if job.Status != constants.JobStatusError {
		t.Errorf("job status = %s, want ERROR", job.Status)
	}
	// frames were still persisted, only assembly failed
	if job.Step != constants.StepResultsSaved {
		t.Errorf("job step = %s, want RESULTS_SAVED retained", job.Step)
	}
	frames, _ := f.frames.ListByJob(context.Background(), f.job.ID)
	if len(frames) != 2 {
		t.Errorf("got %d frames, want 2", len(frames))
	}
}

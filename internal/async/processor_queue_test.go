package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingRunner struct {
	mu   sync.Mutex
	runs []uuid.UUID
	done chan struct{}
	want int
}

func (r *recordingRunner) Run(_ context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, jobID)
	if len(r.runs) == r.want {
		close(r.done)
	}
	return nil
}

func TestQueueProcessesEnqueuedTasks(t *testing.T) {
	runner := &recordingRunner{done: make(chan struct{}), want: 3}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := NewProcessorQueue(runner, logger, WithWorkers(2), WithQueueSize(8))

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		if err := q.Enqueue(context.Background(), Task{JobID: id, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	select {
	case <-runner.done:
	case <-time.After(5 * time.Second):
		t.Fatal("tasks not processed in time")
	}
	q.Shutdown(context.Background())

	runner.mu.Lock()
	defer runner.mu.Unlock()
	if len(runner.runs) != 3 {
		t.Errorf("ran %d tasks, want 3", len(runner.runs))
	}
}

func TestQueueShutdownIsIdempotentAndRejectsLateTasks(t *testing.T) {
	runner := &recordingRunner{done: make(chan struct{}), want: 1}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := NewProcessorQueue(runner, logger, WithWorkers(1))

	q.Shutdown(context.Background())
	q.Shutdown(context.Background())

	// enqueue after shutdown is a logged no-op, not a panic
	if err := q.Enqueue(context.Background(), Task{JobID: uuid.New()}); err != nil {
		t.Fatalf("late enqueue: %v", err)
	}
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if len(runner.runs) != 0 {
		t.Errorf("ran %d tasks after shutdown", len(runner.runs))
	}
}

package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"framescribe/internal/pipeline"
)

// JobRunner is what a worker executes for one task.
type JobRunner interface {
	Run(ctx context.Context, jobID uuid.UUID) error
}

var _ JobRunner = (*pipeline.Processor)(nil)

type ProcessorQueue struct {
	runner  JobRunner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Task
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Task, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(runner JobRunner, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	q := &ProcessorQueue{
		runner:  runner,
		logger:  logger,
		workers: 4,
		// batch inference runs for hours; the timeout is a backstop, not a deadline
		timeout: 48 * time.Hour,
		ch:      make(chan Task, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for task := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.runner.Run(ctx, task.JobID)
					cancel()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "job_id", task.JobID, "error", err)
					} else {
						q.logger.Info("processed job successfully", "worker_id", workerID, "job_id", task.JobID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) Enqueue(_ context.Context, task Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", task.JobID)
		return nil
	}
	select {
	case q.ch <- task:
		q.logger.Info("queued job for processing", "job_id", task.JobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", task.JobID)
		q.ch <- task
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

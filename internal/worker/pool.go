package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to a Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	timeout  time.Duration
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	base     context.Context
}

// NewPool creates a new worker pool. Each job gets its own context bounded by timeout.
func NewPool(ctx context.Context, workers, queueSize int, timeout time.Duration) *Pool {
	if workers <= 0 {
		workers = DefaultPoolWorkers
	}
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	return &Pool{
		workers:  workers,
		timeout:  timeout,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		base:     context.WithoutCancel(ctx),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.process(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) process(job Job) {
	ctx, cancel := context.WithTimeout(p.base, p.timeout)
	defer cancel()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job without blocking. It returns false when the queue is full.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(p.base).Warn(LogMsgPoolFull)
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish. Queued jobs are dropped.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}

// Package worker provides a pool of goroutines for processing independent
// message payloads in parallel. Decode and validation share no mutable
// state, so payloads fan out with no coordination beyond the job queue.
package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/openpayments/iso20022"
)

// ErrNoProcessor is returned on jobs handled by a pool built without a
// processor.
var ErrNoProcessor = errors.New("worker: pool has no processor")

// Processor is the decode-and-validate seam the pool runs each payload
// through. engine.Processor satisfies it.
type Processor interface {
	ValidateBytes(ctx context.Context, data []byte) error
}

// Pool manages a fixed set of worker goroutines.
type Pool struct {
	workers    int
	jobsChan   chan Job
	resultChan chan *JobResult
	processor  Processor
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closed     atomic.Bool

	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	jobsFailed    atomic.Uint64
	totalDuration atomic.Uint64
}

// NewPool creates a pool with the specified number of workers. If
// workers <= 0 it asks the processor for its configured worker count,
// falling back to runtime.NumCPU().
func NewPool(processor Processor, workers int) *Pool {
	if workers <= 0 {
		if c, ok := processor.(interface{ Options() *iso20022.Options }); ok {
			workers = c.Options().WorkerCount
		}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:    workers,
		jobsChan:   make(chan Job, workers*2),
		resultChan: make(chan *JobResult, workers*2),
		processor:  processor,
		ctx:        ctx,
		cancel:     cancel,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit queues a job, blocking while the queue is full. Returns false if
// the pool is closed.
func (p *Pool) Submit(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// SubmitAsync queues a job without blocking. Returns false if the queue is
// full or the pool is closed.
func (p *Pool) SubmitAsync(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel job results arrive on.
func (p *Pool) Results() <-chan *JobResult {
	return p.resultChan
}

// Close shuts down the pool and waits for workers to finish, discarding
// any results not yet consumed.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}

	close(p.jobsChan)

	// Drain results in background so workers never block on send
	done := make(chan struct{})
	go func() {
		for range p.resultChan {
		}
		close(done)
	}()

	p.wg.Wait()
	p.cancel()
	close(p.resultChan)
	<-done
}

// CloseAndWait stops accepting jobs, processes everything already queued,
// and returns the collected results.
func (p *Pool) CloseAndWait() *BatchResult {
	if p.closed.Swap(true) {
		return &BatchResult{}
	}

	close(p.jobsChan)

	results := make([]*JobResult, 0, p.jobsSubmitted.Load())

	go func() {
		p.wg.Wait()
		p.cancel()
		close(p.resultChan)
	}()

	for result := range p.resultChan {
		results = append(results, result)
	}

	return &BatchResult{
		Results:       results,
		TotalJobs:     int(p.jobsSubmitted.Load()),
		CompletedJobs: int(p.jobsCompleted.Load()),
		FailedJobs:    int(p.jobsFailed.Load()),
		TotalDuration: time.Duration(p.totalDuration.Load()),
	}
}

// PoolStats is a point-in-time view of pool activity.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	JobsFailed    uint64
	AvgDuration   time.Duration
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	s := PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		JobsFailed:    p.jobsFailed.Load(),
	}
	if s.JobsCompleted > 0 {
		s.AvgDuration = time.Duration(p.totalDuration.Load() / s.JobsCompleted)
	}
	return s
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobsChan {
		result := p.processJob(job)
		p.jobsCompleted.Add(1)
		if result.Err != nil {
			p.jobsFailed.Add(1)
		}
		p.totalDuration.Add(uint64(result.Duration))

		select {
		case <-p.ctx.Done():
			return
		case p.resultChan <- result:
		}
	}
}

func (p *Pool) processJob(job Job) *JobResult {
	start := time.Now()

	result := &JobResult{ID: job.ID}
	if p.processor == nil {
		result.Err = ErrNoProcessor
		result.Duration = time.Since(start)
		return result
	}

	result.Err = p.processor.ValidateBytes(p.ctx, job.Payload)
	result.Duration = time.Since(start)
	return result
}

// Package worker runs perft subtrees on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Job is one root move to be counted. Position is owned by the job and
// already has Move applied.
type Job struct {
	Index    int // position of Move in the root move list
	Move     chess.Move
	Position *engine.Position
	Depth    int // remaining depth below Move
}

// Result is the outcome of a Job.
type Result struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Err   error
}

// JobFunc counts the nodes for one job.
type JobFunc func(job Job) Result

// Pool feeds jobs to workers and collects their results.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	run        JobFunc
	wg         sync.WaitGroup
	stopped    int32
	closed     chan struct{}
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that runs each job with run.
// Default: 1 worker, buffer size of 32.
func NewPool(run JobFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 32,
		run:        run,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	p.closed = make(chan struct{})
	return p
}

// Start starts the workers. Cancelling ctx stops the pool; jobs still
// queued are drained without being run.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-p.closed:
		}
	}()
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for job := range p.jobs {
		if ctx.Err() != nil {
			p.Stop()
		}
		if p.IsStopped() {
			continue
		}
		res := p.run(job)
		if res.Err == nil && ctx.Err() != nil {
			res.Err = ctx.Err()
		}
		p.results <- res
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers skip any job they have not started.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopped, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopped) != 0
}

// Close closes the job channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	close(p.closed)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Package workerpool runs deliberately expensive, CPU-bound jobs (password
// hashing) on a fixed set of goroutines so they never stall the request
// handlers that submit them.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrPoolClosed is returned when submitting to a shut-down pool.
	ErrPoolClosed = errors.New("workerpool: pool closed")
	// ErrPoolBusy is returned when the job queue is saturated. Callers
	// surface this as an internal error, never as a validation failure.
	ErrPoolBusy = errors.New("workerpool: queue full")
)

// Pool is a fixed-size blocking-work pool with a bounded queue.
type Pool struct {
	jobs chan func()
	quit chan struct{}
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New starts workers goroutines draining a queue of the given size.
func New(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		jobs: make(chan func(), queueSize),
		quit: make(chan struct{}),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			job()
		case <-p.quit:
			// Drain whatever was accepted before shutdown.
			for {
				select {
				case job := <-p.jobs:
					job()
				default:
					return
				}
			}
		}
	}
}

// Do submits fn and blocks until it resolves or ctx is done. A full queue
// fails fast with ErrPoolBusy. If ctx expires after the job was accepted the
// job still runs to completion on the pool (best-effort, not cancelled); only
// the wait is abandoned.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.mu.Unlock()

	done := make(chan error, 1)
	select {
	case p.jobs <- func() { done <- fn() }:
	default:
		return ErrPoolBusy
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting jobs and waits for in-flight work to finish.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.quit)
	p.wg.Wait()
}

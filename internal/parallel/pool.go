// Package parallel runs independent rendering jobs on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for row-parallel rendering.
//
// Jobs are pulled from a single shared queue, so a worker that finishes a
// cheap row (say, an all-black one) immediately picks up the next. The
// pool makes no ordering promise; callers that need ordered results write
// them into per-job slots.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup
	running atomic.Bool
	mu      sync.RWMutex
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*4),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// worker runs jobs until the queue is closed.
func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.queue {
		job()
	}
}

// ExecuteAll runs every job and waits for all of them to return.
// If the pool is closed, the jobs run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running.Load() {
		for _, fn := range work {
			if fn != nil {
				fn()
			}
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(work))
	for _, fn := range work {
		p.queue <- func() {
			defer done.Done()
			if fn != nil {
				fn()
			}
		}
	}
	done.Wait()
}

// Close stops the workers after queued work has finished.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	// Wait for in-flight ExecuteAll calls before closing the queue.
	p.mu.Lock()
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

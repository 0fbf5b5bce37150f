package cmdutil

import (
	"sync"

	"github.com/gammazero/workerpool"
)

// Pool limits how many tasks run at once and waits for all of them to complete.
// Tasks can submit more tasks.
type Pool struct {
	wp *workerpool.WorkerPool
	wg *sync.WaitGroup
}

// NewPool creates a pool that runs up to parallel tasks at once.
func NewPool(parallel int) Pool {
	if parallel < 1 {
		parallel = 1
	}
	return Pool{wp: workerpool.New(parallel), wg: &sync.WaitGroup{}}
}

// Submit adds a new task to the pool.
func (p Pool) Submit(f func()) {
	p.wg.Add(1)
	p.wp.Submit(func() {
		defer p.wg.Done()
		f()
	})
}

// Finish waits until no more tasks are running, then shuts down the worker pool.
// The wait group is needed because tasks can still be submitted by running tasks.
func (p Pool) Finish() {
	p.wg.Wait()
	p.wp.StopWait()
}

package workers

import (
	"context"
	"sync"
)

// Group runs a fixed set of workers under one cancellable context.
//
// Cancel only signals the workers and never blocks, so it may be called from
// inside a worker's own callback. Stop signals and then waits for every
// worker to return; calling it from a worker callback deadlocks. Start and
// Stop are serialized, so a Stop racing a Start waits for the new run.
type Group struct {
	workers []Worker

	// lifecycle serializes Start and Stop around wg.
	lifecycle sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewGroup(workers ...Worker) *Group {
	return &Group{workers: workers}
}

// Start stops any previously started run, then launches every worker in its
// own goroutine with a context derived from ctx.
func (g *Group) Start(ctx context.Context) {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()

	g.stopLocked()

	g.mu.Lock()
	defer g.mu.Unlock()

	groupCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel

	g.wg.Add(len(g.workers))
	for _, worker := range g.workers {
		go func(w Worker) {
			defer g.wg.Done()
			w.Run(groupCtx)
		}(worker)
	}
}

// Cancel signals all workers to stop without waiting for them.
// Safe to call when the group is not running.
func (g *Group) Cancel() {
	g.mu.Lock()
	cancel := g.cancel
	g.cancel = nil
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Stop cancels all workers and blocks until they have exited.
func (g *Group) Stop() {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()

	g.stopLocked()
}

func (g *Group) stopLocked() {
	g.Cancel()
	g.wg.Wait()
}

// Running reports whether the group has been started and not cancelled since.
func (g *Group) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cancel != nil
}

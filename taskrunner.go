package mwmregistry

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// taskRunner bounds the number of goroutines running concurrently to
// maxThreadCount, collecting the first error from any of them.
type taskRunner struct {
	eg          *errgroup.Group
	limiterChan chan struct{}
	ctx         context.Context
}

func newTaskRunner(ctx context.Context, maxThreadCount int) *taskRunner {
	if maxThreadCount < 1 {
		maxThreadCount = 1
	}
	eg, ctx2 := errgroup.WithContext(ctx)
	return &taskRunner{
		eg:          eg,
		limiterChan: make(chan struct{}, maxThreadCount),
		ctx:         ctx2,
	}
}

// context returns the errgroup-derived context, canceled on the first error.
func (tr *taskRunner) context() context.Context {
	return tr.ctx
}

// submit occupies a thread slot, blocking if maxThreadCount tasks are already
// running, then runs task on a new goroutine.
func (tr *taskRunner) submit(task func() error) {
	tr.limiterChan <- struct{}{}
	tr.eg.Go(func() error {
		defer func() { <-tr.limiterChan }()
		return task()
	})
}

// wait blocks until every submitted task has returned, yielding the first
// non-nil error if any.
func (tr *taskRunner) wait() error {
	return tr.eg.Wait()
}

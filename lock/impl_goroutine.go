//go:build !asyncs_local && !asyncs_noruntime

package lock

import (
	"context"

	"github.com/b97tsk/asyncs"
	"golang.org/x/sync/semaphore"
)

type semImpl struct {
	w *semaphore.Weighted
}

func newSem(n int64) *semImpl {
	return &semImpl{semaphore.NewWeighted(n)}
}

func (s *semImpl) acquire(ctx context.Context, n int64) error {
	if s.w.TryAcquire(n) {
		return nil
	}
	var err error
	asyncs.Suspend(ctx, func() { err = s.w.Acquire(ctx, n) })
	return err
}

func (s *semImpl) tryAcquire(n int64) bool {
	return s.w.TryAcquire(n)
}

func (s *semImpl) release(n int64) {
	s.w.Release(n)
}

//go:build asyncs_local && !asyncs_noruntime

package lock

import (
	"context"

	"github.com/b97tsk/asyncs"
)

type semImpl struct {
	s *asyncs.Semaphore
}

func newSem(n int64) *semImpl {
	return &semImpl{asyncs.NewSemaphore(n)}
}

func (s *semImpl) acquire(ctx context.Context, n int64) error {
	return s.s.Acquire(ctx, n)
}

func (s *semImpl) tryAcquire(n int64) bool {
	return s.s.TryAcquire(n)
}

func (s *semImpl) release(n int64) {
	s.s.Release(n)
}

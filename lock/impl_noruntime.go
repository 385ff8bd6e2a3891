//go:build asyncs_noruntime && !asyncs_local

package lock

import (
	"context"

	"github.com/b97tsk/asyncs"
)

type semImpl struct{}

func newSem(int64) *semImpl {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return nil
}

func (*semImpl) acquire(context.Context, int64) error {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return nil
}

func (*semImpl) tryAcquire(int64) bool {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return false
}

func (*semImpl) release(int64) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
}

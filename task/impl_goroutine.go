//go:build !asyncs_local && !asyncs_noruntime

package task

import (
	"context"

	"github.com/b97tsk/asyncs"
)

func spawn(ctx context.Context, f func(ctx context.Context)) *asyncs.Task {
	return asyncs.Go(ctx, f)
}

func spawnLocal(ctx context.Context, f func(ctx context.Context)) *asyncs.Task {
	return spawnOnExecutor(ctx, f)
}

func blocking(ctx context.Context, f func()) {
	asyncs.Blocking(ctx, f)
}

func yield(ctx context.Context) {
	asyncs.Yield(ctx)
}

//go:build asyncs_noruntime && !asyncs_local

package task

import (
	"context"

	"github.com/b97tsk/asyncs"
)

func spawn(context.Context, func(ctx context.Context)) *asyncs.Task {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return nil
}

func spawnLocal(context.Context, func(ctx context.Context)) *asyncs.Task {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return nil
}

func blocking(context.Context, func()) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
}

func yield(context.Context) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
}

//go:build asyncs_noruntime && !asyncs_local

package task_test

import (
	"context"
	"testing"

	"github.com/b97tsk/asyncs"
	"github.com/b97tsk/asyncs/task"
	"github.com/stretchr/testify/require"
)

func TestNoRuntime(t *testing.T) {
	prev := asyncs.Logger()
	asyncs.SetLogger(nil)
	t.Cleanup(func() { asyncs.SetLogger(prev) })

	ctx := context.Background()

	require.PanicsWithValue(t, asyncs.ErrNoRuntime, func() {
		task.Spawn(ctx, func(context.Context) int { return 0 })
	})
	require.PanicsWithValue(t, asyncs.ErrNoRuntime, func() {
		task.SpawnLocal(ctx, func(context.Context) int { return 0 })
	})
	require.PanicsWithValue(t, asyncs.ErrNoRuntime, func() {
		task.BlockInPlace(ctx, func() int { return 0 })
	})
	require.PanicsWithValue(t, asyncs.ErrNoRuntime, func() { task.YieldNow(ctx) })
}

package asyncs_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/b97tsk/asyncs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("Order", func(t *testing.T) {
		var myExecutor asyncs.Executor

		var got []string

		for _, p := range []string{"/b", "/a/2", "a", "/a/1", "/b/"} {
			myExecutor.Spawn(ctx, p, func(context.Context) { got = append(got, p) })
		}

		myExecutor.Run()

		require.Equal(t, []string{"/a/1", "/a/2", "/b", "/b/", "a"}, got)
	})
	t.Run("FIFO", func(t *testing.T) {
		var myExecutor asyncs.Executor

		var got []int

		for i := range 5 {
			myExecutor.Spawn(ctx, "/", func(context.Context) { got = append(got, i) })
		}

		myExecutor.Run()

		require.Equal(t, []int{0, 1, 2, 3, 4}, got)
	})
	t.Run("Yield", func(t *testing.T) {
		var myExecutor asyncs.Executor

		var got []string

		for _, name := range []string{"a", "b"} {
			myExecutor.Spawn(ctx, "/", func(ctx context.Context) {
				for range 3 {
					got = append(got, name)
					asyncs.Yield(ctx)
				}
			})
		}

		myExecutor.Run()

		require.Equal(t, []string{"a", "b", "a", "b", "a", "b"}, got)
	})
	t.Run("Suspend", func(t *testing.T) {
		var myExecutor asyncs.Executor

		myExecutor.Autorun(myExecutor.Run)

		ch := make(chan struct{})

		var got []string

		waiter := myExecutor.Spawn(ctx, "/", func(ctx context.Context) {
			got = append(got, "wait")
			asyncs.Suspend(ctx, func() { <-ch })
			got = append(got, "resumed")
		})

		closer := myExecutor.Spawn(ctx, "/", func(ctx context.Context) {
			got = append(got, "close")
			close(ch)
		})

		<-closer.Done()
		<-waiter.Done()

		require.Equal(t, []string{"wait", "close", "resumed"}, got)
	})
	t.Run("SpawnFromTask", func(t *testing.T) {
		var myExecutor asyncs.Executor

		myExecutor.Autorun(myExecutor.Run)

		var got []string

		parent := myExecutor.Spawn(ctx, "/", func(ctx context.Context) {
			e := asyncs.ExecutorFrom(ctx)
			assert.Same(t, &myExecutor, e)
			child := e.Spawn(ctx, "/child", func(context.Context) {
				got = append(got, "child")
			})
			got = append(got, "parent")
			assert.NoError(t, child.Wait(ctx))
			got = append(got, "joined")
		})

		<-parent.Done()

		require.Equal(t, []string{"parent", "child", "joined"}, got)
	})
	t.Run("Panic", func(t *testing.T) {
		logs := captureLogs(t)

		var myExecutor asyncs.Executor

		myExecutor.Autorun(myExecutor.Run)

		errBoom := errors.New("boom")

		task := myExecutor.Spawn(ctx, "/panic", func(context.Context) { panic(errBoom) })

		<-task.Done()

		err := task.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "task terminated abnormally")
		assert.Contains(t, logs.String(), `"path":"/panic"`)
		assert.Contains(t, logs.String(), `"lvl":"err"`)

		next := myExecutor.Spawn(ctx, "/", func(context.Context) {})
		<-next.Done()
		assert.NoError(t, next.Err())

		plain := myExecutor.Spawn(ctx, "/plain", func(context.Context) { panic("boom") })
		<-plain.Done()
		assert.NotErrorIs(t, plain.Err(), errBoom)
		assert.Contains(t, plain.Err().Error(), "panic: boom")
	})
	t.Run("Goexit", func(t *testing.T) {
		captureLogs(t)

		var myExecutor asyncs.Executor

		myExecutor.Autorun(myExecutor.Run)

		task := myExecutor.Spawn(ctx, "/", func(context.Context) { runtime.Goexit() })

		<-task.Done()

		require.Error(t, task.Err())
		assert.Contains(t, task.Err().Error(), "runtime.Goexit called")
	})
	t.Run("SuspendPanics", func(t *testing.T) {
		captureLogs(t)

		var myExecutor asyncs.Executor

		myExecutor.Autorun(myExecutor.Run)

		task := myExecutor.Spawn(ctx, "/", func(ctx context.Context) {
			asyncs.Suspend(ctx, func() { panic("inside wait") })
		})

		<-task.Done()
		require.Error(t, task.Err())

		after := myExecutor.Spawn(ctx, "/", func(context.Context) {})
		<-after.Done()
		require.NoError(t, after.Err())
	})
	t.Run("WaitCanceled", func(t *testing.T) {
		var myExecutor asyncs.Executor

		task := myExecutor.Spawn(ctx, "/", func(context.Context) {})

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		require.ErrorIs(t, task.Wait(canceled), context.Canceled)
		require.False(t, task.Ended())

		myExecutor.Run()

		require.NoError(t, task.Wait(ctx))
		require.True(t, task.Ended())
	})
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	require.Nil(t, asyncs.TaskFrom(ctx))
	require.Nil(t, asyncs.ExecutorFrom(ctx))

	var myExecutor asyncs.Executor

	bound := asyncs.NewContext(ctx, &myExecutor)
	require.Same(t, &myExecutor, asyncs.ExecutorFrom(bound))

	task := asyncs.Go(bound, func(ctx context.Context) {
		assert.NotNil(t, asyncs.TaskFrom(ctx))
		assert.Nil(t, asyncs.ExecutorFrom(ctx))
	})
	require.NoError(t, task.Wait(ctx))
	require.Nil(t, task.Executor())
	require.Equal(t, "/", task.Path())
}

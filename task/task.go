// Package task spawns concurrent work and joins its result.
//
// Work runs on the runtime a build selects; see package
// [github.com/b97tsk/asyncs]. Work that terminates abnormally, by panicking
// or calling runtime.Goexit, makes joining it a fatal error: failures of
// spawned work are never handed back as ordinary values.
package task

import (
	"context"
	"fmt"

	"github.com/b97tsk/asyncs"
)

// JoinHandle owns the result of spawned work.
type JoinHandle[T any] struct {
	task  *asyncs.Task
	value T
}

// Spawn schedules f to run concurrently and returns right away.
//
// With the goroutine runtime, f may run on any worker. With the local
// runtime, f runs on the [asyncs.Executor] ctx is bound to, and calling
// Spawn with a context bound to none is a fatal error.
//
// f is called with a context that keeps the values of ctx but not its
// cancellation.
func Spawn[T any](ctx context.Context, f func(ctx context.Context) T) *JoinHandle[T] {
	h := new(JoinHandle[T])
	h.task = spawn(ctx, func(ctx context.Context) { h.value = f(ctx) })
	return h
}

// SpawnLocal schedules f to run on the [asyncs.Executor] ctx is bound to,
// so that it shares a thread of execution with the caller and may touch
// state that is not safe for concurrent use. It returns right away.
//
// Calling SpawnLocal with a context bound to no Executor is a fatal error,
// whatever the runtime.
func SpawnLocal[T any](ctx context.Context, f func(ctx context.Context) T) *JoinHandle[T] {
	h := new(JoinHandle[T])
	h.task = spawnLocal(ctx, func(ctx context.Context) { h.value = f(ctx) })
	return h
}

// Join suspends the caller until the work ends, and returns its result.
// Joining again returns the same result.
//
// If ctx is done first, Join returns the context's error, and the work
// carries on. If the work terminated abnormally, Join reports it as a
// fatal error; see [asyncs.Fatal].
func (h *JoinHandle[T]) Join(ctx context.Context) (T, error) {
	if err := h.task.Wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	if err := h.task.Err(); err != nil {
		asyncs.Fatal(fmt.Errorf("task: join failed: %w", err))
	}
	return h.value, nil
}

// Done returns a channel that is closed when the work ends.
func (h *JoinHandle[T]) Done() <-chan struct{} {
	return h.task.Done()
}

// BlockInPlace runs f, which may block, and returns its result.
// The runtime is told that the calling task is blocked for as long as f
// runs, including when f panics, so that it can keep the other tasks going.
func BlockInPlace[R any](ctx context.Context, f func() R) R {
	var r R
	blocking(ctx, func() { r = f() })
	return r
}

// YieldNow suspends the calling task once, giving the tasks that are
// waiting to run a chance to do so, and then returns.
func YieldNow(ctx context.Context) {
	yield(ctx)
}

func spawnOnExecutor(ctx context.Context, f func(ctx context.Context)) *asyncs.Task {
	e := asyncs.ExecutorFrom(ctx)
	if e == nil {
		asyncs.Fatal(asyncs.ErrNoExecutor)
	}
	return e.Spawn(ctx, pathOf(ctx), f)
}

// pathOf returns the path children of the calling task are queued under,
// so that they run in the order they were spawned.
func pathOf(ctx context.Context) string {
	if t := asyncs.TaskFrom(ctx); t != nil {
		return t.Path()
	}
	return "/"
}

package asyncs

import (
	"context"
	"runtime"
)

// Suspend calls wait after giving up whatever ctx holds: control of an
// [Executor], or a slot of the worker pool. It takes it back after wait
// returns or panics, so capacity is never lost.
//
// Every operation that may have to wait for another task goes through
// Suspend. wait must only touch state that is safe for concurrent use.
func Suspend(ctx context.Context, wait func()) {
	switch t := TaskFrom(ctx); {
	case t == nil:
		wait()
	case t.executor != nil:
		t.suspend(wait)
	default:
		t.slot.suspend(wait)
	}
}

// Yield suspends the calling task exactly once and makes it runnable again
// right away, behind the work that was already waiting to run.
func Yield(ctx context.Context) {
	switch t := TaskFrom(ctx); {
	case t == nil:
		runtime.Gosched()
	case t.executor != nil:
		t.yield()
	default:
		t.slot.yield()
	}
}

// Blocking runs f, which may block, telling the runtime that the calling
// task is not making progress so that its worker slot can serve others.
//
// A task of an [Executor] keeps control while f runs: f may touch the state
// that task shares with its siblings, so nothing else runs meanwhile.
func Blocking(ctx context.Context, f func()) {
	switch t := TaskFrom(ctx); {
	case t == nil:
		f()
	case t.executor != nil:
		Logger().Debug().
			Str("path", t.path).
			Log("asyncs: blocking call runs inline on executor")
		f()
	default:
		t.slot.suspend(f)
	}
}

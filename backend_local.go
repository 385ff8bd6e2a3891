//go:build asyncs_local && !asyncs_noruntime

package asyncs

import (
	"context"
	"errors"
)

// Backend names the runtime compiled into this build.
const Backend = BackendLocal

var errNestedBlockOn = errors.New("asyncs: BlockOn called from a task of an executor")

// BlockOn runs f as the root of the runtime and returns when f returns.
//
// With the local runtime, BlockOn creates an [Executor], spawns f on it and
// drives it on the calling goroutine until f ends. Tasks f spawns that are
// still pending by then are left behind, suspended.
// If f terminates abnormally, BlockOn panics with the error of its [Task].
//
// Calling BlockOn from a task of an Executor is a fatal error.
func BlockOn(ctx context.Context, f func(ctx context.Context)) {
	if ExecutorFrom(ctx) != nil {
		Fatal(errNestedBlockOn)
	}

	var e Executor

	ready := make(chan struct{}, 1)

	e.Autorun(func() {
		select {
		case ready <- struct{}{}:
		default:
		}
	})

	t := e.spawn(ctx, "/", f)

	for !t.Ended() {
		<-ready
		e.Run()
	}

	if err := t.Err(); err != nil {
		panic(err)
	}
}

//go:build !asyncs_local && !asyncs_noruntime

package asyncs

import "context"

// Backend names the runtime compiled into this build.
const Backend = BackendGoroutine

// BlockOn runs f as the root of the runtime and returns when f returns.
//
// With the goroutine runtime, f runs on the calling goroutine inside a
// worker slot. If ctx already belongs to a task, f simply runs.
func BlockOn(ctx context.Context, f func(ctx context.Context)) {
	enterWorker(ctx, f)
}

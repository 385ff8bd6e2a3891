//go:build asyncs_noruntime && !asyncs_local

package asyncs

import "context"

// Backend names the runtime compiled into this build.
const Backend = BackendNone

// BlockOn is a fatal error: no runtime was compiled into this build.
func BlockOn(ctx context.Context, f func(ctx context.Context)) {
	Fatal(ErrNoRuntime)
}

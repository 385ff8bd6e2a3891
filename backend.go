package asyncs

// Names of the runtimes a build can select. See [Backend].
const (
	// BackendGoroutine is the default: the Go scheduler, with parallelism
	// bounded by a pool of worker slots.
	BackendGoroutine = "goroutine"

	// BackendLocal is selected by the asyncs_local build tag: every task
	// runs on an [Executor], one at a time.
	BackendLocal = "local"

	// BackendNone is selected by the asyncs_noruntime build tag: every
	// primitive is a fatal error.
	BackendNone = "noruntime"
)

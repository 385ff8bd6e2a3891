package asyncs

import "errors"

var (
	// ErrNoRuntime is raised, fatally, by every primitive of a build that
	// selected no runtime (the asyncs_noruntime tag).
	ErrNoRuntime = errors.New("asyncs: no async runtime configured")

	// ErrNoClock is raised, fatally, by every time operation of a build that
	// has no clock source.
	ErrNoClock = errors.New("asyncs: no clock source configured")

	// ErrNoExecutor is raised, fatally, when an operation that needs a local
	// [Executor] is called with a context that does not carry one.
	ErrNoExecutor = errors.New("asyncs: not running on a local executor")
)

// Fatal reports err at critical level and then panics with it.
//
// Fatal is the single exit for conditions that indicate a programming or
// integration error rather than an expected runtime condition.
func Fatal(err error) {
	Logger().Crit().
		Str("backend", Backend).
		Err(err).
		Log("asyncs: fatal")
	panic(err)
}

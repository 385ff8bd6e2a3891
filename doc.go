// Package asyncs is the runtime layer of a set of portable concurrency
// primitives.
//
// Code written against the subpackages, [github.com/b97tsk/asyncs/mpsc],
// [github.com/b97tsk/asyncs/oneshot], [github.com/b97tsk/asyncs/task],
// [github.com/b97tsk/asyncs/lock] and [github.com/b97tsk/asyncs/instant],
// runs unmodified on whichever runtime a build selects.
//
// # Selecting a Runtime
//
// Exactly one runtime is compiled into a build, chosen with build tags:
//
//   - no tag: the goroutine runtime. Tasks are goroutines; at most
//     [Workers] of them make progress at once, and a task gives its worker
//     slot up whenever it suspends.
//   - asyncs_local: the local runtime. Tasks run on an [Executor], one at
//     a time, so they may share state that is not safe for concurrent use.
//   - asyncs_noruntime: no runtime. Every primitive is a fatal error.
//
// Setting both asyncs_local and asyncs_noruntime does not compile.
// The clock used by package instant is selected the same way; see there.
//
// Primitives created under one runtime cannot be used under another, which
// a build rules out anyway.
//
// # Suspension
//
// Operations that may have to wait, such as receiving from an empty channel,
// take a [context.Context] and suspend the calling task through [Suspend].
// The context tells the runtime which task is suspending, so that the
// runtime can run something else meanwhile, and its cancellation aborts the
// wait. Tasks receive contexts that keep the values of their parent
// context but not its cancellation: there is no cancellation between tasks
// other than closing the endpoint of a channel.
//
// # Failures
//
// Conditions a caller is expected to handle, like a full or closed channel,
// are returned as errors. Conditions that indicate a programming error are
// fatal: they are reported to the [Logger] and raised as panics by [Fatal].
// These include joining a task that terminated abnormally, using time in a
// build without a clock, and using any primitive in a build without a
// runtime.
package asyncs

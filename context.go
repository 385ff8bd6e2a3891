package asyncs

import "context"

type (
	taskKey     struct{}
	executorKey struct{}
)

// NewContext returns a copy of ctx that carries e, so that work spawned
// with it can be scheduled on e.
func NewContext(ctx context.Context, e *Executor) context.Context {
	return context.WithValue(ctx, executorKey{}, e)
}

// TaskFrom returns the [Task] running with ctx, or nil if ctx does not
// belong to a task.
func TaskFrom(ctx context.Context) *Task {
	t, _ := ctx.Value(taskKey{}).(*Task)
	return t
}

// ExecutorFrom returns the [Executor] ctx is bound to, or nil.
//
// A context handed to a task spawned on an Executor is bound to that
// Executor. A context handed to a goroutine task is bound to none, even if
// its parent was.
func ExecutorFrom(ctx context.Context) *Executor {
	if t := TaskFrom(ctx); t != nil {
		return t.executor
	}
	e, _ := ctx.Value(executorKey{}).(*Executor)
	return e
}

func withTask(ctx context.Context, t *Task) context.Context {
	return context.WithValue(ctx, taskKey{}, t)
}

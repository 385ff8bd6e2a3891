package asyncs

import (
	"context"
	"runtime"
)

const (
	flagQueued = 1 << iota
	flagEnded
)

// A Task is a unit of concurrent work: a function running on its own
// goroutine, tracked from spawn to completion.
//
// A Task is either spawned on an [Executor], in which case it only runs
// while the Executor hands control to it, or spawned by [Go], in which case
// it runs on a worker slot of the goroutine runtime.
//
// A Task ends when its function returns, panics or calls runtime.Goexit.
// The latter two are abnormal terminations; see [Task.Err].
type Task struct {
	executor *Executor
	slot     *workerSlot
	path     string
	seq      uint64
	flag     uint8
	wake     chan struct{}
	done     chan struct{}
	ps       panicstack
}

func newTask(e *Executor, p string) *Task {
	return &Task{
		executor: e,
		path:     p,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Executor returns the [Executor] that spawned t, or nil if t was spawned
// by [Go].
func (t *Task) Executor() *Executor {
	return t.executor
}

// Path returns the path of t.
func (t *Task) Path() string {
	return t.path
}

// Done returns a channel that is closed when t ends.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Ended reports whether t has ended.
func (t *Task) Ended() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Err returns an error describing why t terminated abnormally, or nil if
// t has not ended or returned normally.
//
// The error formats every panic value with its stack trace, and unwraps to
// the panic values that are errors.
func (t *Task) Err() error {
	if !t.Ended() {
		return nil
	}
	return t.ps.Err()
}

// Wait suspends the caller until t ends or ctx is done, in which case it
// returns the context's error.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	default:
	}
	var err error
	Suspend(ctx, func() {
		select {
		case <-t.done:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}

func (t *Task) exec(ctx context.Context, f func(ctx context.Context)) {
	<-t.wake
	defer t.finish()
	t.ps.Try(func() { f(ctx) })
}

func (t *Task) finish() {
	e := t.executor

	e.mu.Lock()
	t.flag |= flagEnded
	current := e.current == t
	if current {
		e.current = nil
	}
	e.mu.Unlock()

	t.report()
	close(t.done)

	if current {
		e.handback <- struct{}{}
	}
}

func (t *Task) report() {
	if err := t.ps.Err(); err != nil {
		Logger().Err().
			Str("path", t.path).
			Err(err).
			Log("asyncs: task terminated abnormally")
	}
}

// suspend gives up control while wait runs, and takes it back afterwards,
// even if wait panics.
func (t *Task) suspend(wait func()) {
	if !t.executor.release(t) {
		wait()
		return
	}
	defer t.reclaim()
	wait()
}

func (t *Task) reclaim() {
	t.executor.resumeTask(t, true)
	<-t.wake
}

func (t *Task) yield() {
	if !t.executor.requeue(t) {
		runtime.Gosched()
		return
	}
	<-t.wake
}

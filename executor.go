package asyncs

import (
	"cmp"
	"context"
	"path"
	"sync"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// An Executor is a single-threaded [Task] runner.
//
// Every Task spawned on an Executor runs on its own goroutine, but only one
// of them runs at any given time: the Executor hands control to one Task and
// waits until that Task suspends or ends before handing it to the next.
// Code running in such Tasks may therefore share state that is not safe for
// concurrent use, as long as that state is only touched by Tasks of the same
// Executor.
//
// Spawning, resuming or yielding makes a Task runnable. Run hands control
// to runnable Tasks one at a time, lowest path first and, among equal
// paths, in the order they became runnable. A Task that blocks without
// going through [Suspend] keeps control, and starves its siblings.
//
// Rather than calling Run by hand, set up [Executor.Autorun] with a function
// that calls Run; it is invoked whenever a Task becomes runnable, and never
// twice at the same time.
//
// An Executor must not be copied after first use.
type Executor struct {
	mu       sync.Mutex
	pq       *priorityqueue.Queue
	seq      uint64
	running  bool
	current  *Task
	autorun  func()
	handback chan struct{}
}

// Autorun sets up an autorun function to calling the Run method automatically
// whenever a [Task] is spawned or resumed.
//
// One must pass a function that calls the Run method.
//
// If f blocks, the Spawn method may block too.
func (e *Executor) Autorun(f func()) {
	e.mu.Lock()
	e.autorun = f
	e.mu.Unlock()
}

// Run pops and runs every [Task] in the queue until the queue is emptied.
//
// Run must not be called twice at the same time.
func (e *Executor) Run() {
	e.mu.Lock()
	e.init()
	e.running = true

	for !e.pq.Empty() {
		v, _ := e.pq.Dequeue()
		t := v.(*Task)
		t.flag &^= flagQueued

		if t.flag&flagEnded != 0 {
			continue
		}

		e.current = t
		e.mu.Unlock()

		t.wake <- struct{}{}
		<-e.handback

		e.mu.Lock()
	}

	e.running = false
	e.mu.Unlock()
}

// Spawn creates a [Task] to work on f, using the result of path.Clean(p) as
// its path, and returns it.
//
// f is called with a context that keeps the values of ctx but not its
// cancellation, and that binds f to e.
//
// The Task is added in a queue. To run it, either call the Run method, or
// call the Autorun method to set up an autorun function beforehand.
//
// Spawn is safe for concurrent use.
func (e *Executor) Spawn(ctx context.Context, p string, f func(ctx context.Context)) *Task {
	return e.spawn(context.WithoutCancel(ctx), p, f)
}

func (e *Executor) spawn(ctx context.Context, p string, f func(ctx context.Context)) *Task {
	t := newTask(e, path.Clean(p))
	Logger().Trace().Str("path", t.path).Log("asyncs: spawn")
	go t.exec(withTask(ctx, t), f)
	e.resumeTask(t, false)
	return t
}

func (e *Executor) init() {
	if e.pq == nil {
		e.pq = priorityqueue.NewWith(compareTasks)
		e.handback = make(chan struct{})
	}
}

func compareTasks(a, b any) int {
	t, u := a.(*Task), b.(*Task)
	if c := cmp.Compare(t.path, u.path); c != 0 {
		return c
	}
	return cmp.Compare(t.seq, u.seq)
}

// resumeTask queues t unless it is queued already.
// If detach is set, the autorun function, if due, runs on a new goroutine;
// it must be set when the caller is t's own goroutine, which is about to
// wait for the Executor.
func (e *Executor) resumeTask(t *Task, detach bool) {
	var autorun func()

	e.mu.Lock()
	e.init()

	if t.flag&(flagQueued|flagEnded) != 0 {
		e.mu.Unlock()
		return
	}

	if !e.running && e.autorun != nil {
		e.running = true
		autorun = e.autorun
	}

	e.push(t)
	e.mu.Unlock()

	if autorun != nil {
		if detach {
			go autorun()
		} else {
			autorun()
		}
	}
}

// release gives control back to the Run loop if t holds it.
func (e *Executor) release(t *Task) bool {
	e.mu.Lock()
	if e.current != t {
		e.mu.Unlock()
		return false
	}
	e.current = nil
	e.mu.Unlock()
	e.handback <- struct{}{}
	return true
}

// requeue moves t, which must hold control, behind every queued Task of the
// same path and gives control back.
func (e *Executor) requeue(t *Task) bool {
	e.mu.Lock()
	if e.current != t {
		e.mu.Unlock()
		return false
	}
	e.current = nil
	e.push(t)
	e.mu.Unlock()
	e.handback <- struct{}{}
	return true
}

func (e *Executor) push(t *Task) {
	e.seq++
	t.seq = e.seq
	t.flag |= flagQueued
	e.pq.Enqueue(t)
}

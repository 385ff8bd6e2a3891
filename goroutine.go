package asyncs

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// WorkerThreadsEnv is the environment variable read, once, to size the
// worker pool of the goroutine runtime. It defaults to runtime.GOMAXPROCS(0).
const WorkerThreadsEnv = "ASYNCS_WORKER_THREADS"

type workerPool struct {
	sem  *semaphore.Weighted
	size int

	// busy counts slots held; pending counts spawned tasks that have not
	// got their first slot yet.
	busy    atomic.Int64
	pending atomic.Int64
}

var workers = sync.OnceValue(func() *workerPool {
	n := runtime.GOMAXPROCS(0)
	if s := os.Getenv(WorkerThreadsEnv); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			n = v
		} else {
			Logger().Warning().
				Str("value", s).
				Log("asyncs: ignoring invalid " + WorkerThreadsEnv)
		}
	}
	return &workerPool{sem: semaphore.NewWeighted(int64(n)), size: n}
})

// Workers returns the number of goroutine tasks that may run at the same
// time, not counting those that are suspended.
func Workers() int {
	return workers().size
}

// A workerSlot is the share of the worker pool held by one goroutine task.
type workerSlot struct {
	pool *workerPool
	held atomic.Bool
}

func (s *workerSlot) enter() {
	// Acquire only fails when its context is done.
	_ = s.pool.sem.Acquire(context.Background(), 1)
	s.pool.busy.Add(1)
	s.held.Store(true)
}

func (s *workerSlot) leave() {
	if s.held.CompareAndSwap(true, false) {
		s.pool.busy.Add(-1)
		s.pool.sem.Release(1)
	}
}

// suspend frees the slot while wait runs. The pool's waiters are served in
// FIFO order, so taking the slot back queues behind any task that was
// already waiting for one.
func (s *workerSlot) suspend(wait func()) {
	if !s.held.Load() {
		wait()
		return
	}
	s.leave()
	defer s.enter()
	wait()
}

// yield frees the slot until a newly spawned task has taken it, or until
// no such task is left. A goroutine that has not yet reached the pool's
// queue would otherwise lose the slot to the yielding task.
func (s *workerSlot) yield() {
	pool := s.pool
	s.suspend(func() {
		runtime.Gosched()
		for pool.pending.Load() > 0 && pool.busy.Load() < int64(pool.size) {
			runtime.Gosched()
		}
	})
}

// Go spawns a goroutine [Task] to work on f and returns it.
//
// The Task runs once it gets a slot of the worker pool, and gives the slot
// up whenever it suspends. f is called with a context that keeps the values
// of ctx but not its cancellation.
func Go(ctx context.Context, f func(ctx context.Context)) *Task {
	t := newTask(nil, "/")
	t.slot = &workerSlot{pool: workers()}
	ctx = withTask(context.WithoutCancel(ctx), t)
	t.slot.pool.pending.Add(1)
	go func() {
		t.slot.enter()
		t.slot.pool.pending.Add(-1)
		defer func() {
			t.slot.leave()
			t.report()
			close(t.done)
		}()
		t.ps.Try(func() { f(ctx) })
	}()
	return t
}

func enterWorker(ctx context.Context, f func(ctx context.Context)) {
	if TaskFrom(ctx) != nil {
		f(ctx)
		return
	}
	t := newTask(nil, "/")
	t.slot = &workerSlot{pool: workers()}
	t.slot.enter()
	defer t.slot.leave()
	f(withTask(ctx, t))
}

package asyncs

import (
	"context"
	"slices"
	"sync"
)

// Semaphore provides a way to bound access to a resource shared by tasks.
// The callers can request access with a given weight.
//
// Acquire suspends the calling task instead of blocking it, so a task of an
// [Executor] waiting for a weight lets the other tasks run, including the
// one that is going to release it.
//
// Waiters are served in FIFO order; a large request is not overtaken by
// smaller ones that come later.
//
// A Semaphore is safe for concurrent use.
type Semaphore struct {
	mu      sync.Mutex
	size    int64
	cur     int64
	waiters []*waiter
}

// NewSemaphore creates a new weighted semaphore with the given maximum
// combined weight.
func NewSemaphore(n int64) *Semaphore {
	return &Semaphore{size: n}
}

// Acquire acquires a weight of n, suspending the caller until it is
// available or until ctx is done. On failure, it returns the context's
// error and acquires nothing.
//
// Asking for more than the maximum combined weight waits for ctx.
func (s *Semaphore) Acquire(ctx context.Context, n int64) error {
	if n < 0 {
		panic("asyncs(Semaphore): negative weight")
	}

	s.mu.Lock()

	if s.size-s.cur >= n && len(s.waiters) == 0 {
		s.cur += n
		s.mu.Unlock()
		return nil
	}

	if n > s.size {
		s.mu.Unlock()
		Suspend(ctx, func() { <-ctx.Done() })
		return ctx.Err()
	}

	w := &waiter{n: n}
	token := w.Token()
	s.waiters = append(s.waiters, w)
	s.mu.Unlock()

	err := w.Await(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if w.n == 0 {
		return nil // Granted before the cancellation was noticed.
	}

	s.removeWaiter(w)
	s.notifyWaiters()

	return err
}

// TryAcquire acquires a weight of n if it is available right away, and
// reports whether it did.
func (s *Semaphore) TryAcquire(n int64) bool {
	if n < 0 {
		panic("asyncs(Semaphore): negative weight")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.size-s.cur >= n && len(s.waiters) == 0 {
		s.cur += n
		return true
	}

	return false
}

// Release releases the semaphore with a weight of n.
func (s *Semaphore) Release(n int64) {
	if n < 0 {
		panic("asyncs(Semaphore): negative weight")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur -= n
	if s.cur < 0 {
		panic("asyncs(Semaphore): released more than held")
	}

	s.notifyWaiters()
}

func (s *Semaphore) notifyWaiters() {
	i := 0
	for _, w := range s.waiters {
		if s.size-s.cur < w.n {
			break
		}
		s.cur += w.n
		w.n = 0
		w.Notify()
		i++
	}
	s.waiters = slices.Delete(s.waiters, 0, i)
}

type waiter struct {
	Signal
	n int64
}

func (s *Semaphore) removeWaiter(w *waiter) {
	if i := slices.Index(s.waiters, w); i != -1 {
		s.waiters = slices.Delete(s.waiters, i, i+1)
	}
}

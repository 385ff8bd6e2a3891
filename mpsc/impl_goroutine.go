//go:build !asyncs_local && !asyncs_noruntime

package mpsc

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/b97tsk/asyncs"
)

// The queue is a buffered channel, closed when the last sender goes away.
// done is closed when the receiver goes away. Senders check done and
// enqueue under a read lock of mu, which close takes for writing, so no
// value gets in once the receiver has gone. room is notified whenever a
// value leaves the queue, or the receiver leaves.
type shared[T any] struct {
	queue    chan T
	mu       sync.RWMutex
	done     chan struct{}
	doneOnce sync.Once
	room     asyncs.Signal
	senders  atomic.Int64
}

type senderImpl[T any] struct {
	sh     *shared[T]
	closed atomic.Bool
}

type receiverImpl[T any] struct {
	sh *shared[T]
}

func newChannel[T any](capacity int) (*senderImpl[T], *receiverImpl[T]) {
	sh := &shared[T]{
		queue: make(chan T, capacity),
		done:  make(chan struct{}),
	}
	sh.senders.Store(1)
	return &senderImpl[T]{sh: sh}, &receiverImpl[T]{sh: sh}
}

func (s *senderImpl[T]) send(ctx context.Context, v T) (status, error) {
	sh := s.sh

	for {
		token := sh.room.Token()
		if st := s.trySend(v); st != statusFull {
			return st, nil
		}
		if err := sh.room.Await(ctx, token); err != nil {
			return statusFull, err
		}
	}
}

func (s *senderImpl[T]) trySend(v T) status {
	if s.closed.Load() {
		return statusClosed
	}

	sh := s.sh
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	select {
	case <-sh.done:
		return statusClosed
	default:
	}

	select {
	case sh.queue <- v:
		return statusOK
	default:
		return statusFull
	}
}

func (s *senderImpl[T]) clone() *senderImpl[T] {
	c := &senderImpl[T]{sh: s.sh}
	if s.closed.Load() {
		c.closed.Store(true)
		return c
	}
	s.sh.senders.Add(1)
	return c
}

func (s *senderImpl[T]) close() {
	if s.closed.CompareAndSwap(false, true) && s.sh.senders.Add(-1) == 0 {
		close(s.sh.queue)
	}
}

func (r *receiverImpl[T]) recv(ctx context.Context) (T, status, error) {
	sh := r.sh

	for {
		if v, st := r.tryRecv(); st != statusEmpty {
			return v, st, nil
		}

		var (
			v   T
			ok  bool
			got bool
			err error
		)

		asyncs.Suspend(ctx, func() {
			select {
			case v, ok = <-sh.queue:
				got = true
			case <-sh.done:
			case <-ctx.Done():
				err = ctx.Err()
			}
		})

		switch {
		case err != nil:
			return v, statusEmpty, err
		case got && ok:
			sh.room.Notify()
			return v, statusOK, nil
		case got:
			return v, statusClosed, nil
		}
	}
}

func (r *receiverImpl[T]) tryRecv() (v T, _ status) {
	sh := r.sh

	select {
	case v, ok := <-sh.queue:
		if ok {
			sh.room.Notify()
			return v, statusOK
		}
		return v, statusClosed
	default:
	}

	select {
	case <-sh.done:
		return v, statusClosed
	default:
		return v, statusEmpty
	}
}

func (r *receiverImpl[T]) close() {
	sh := r.sh
	sh.doneOnce.Do(func() {
		sh.mu.Lock()
		close(sh.done)
		sh.mu.Unlock()
		sh.room.Notify()
	})
}

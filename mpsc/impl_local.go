//go:build asyncs_local && !asyncs_noruntime

package mpsc

import (
	"context"

	"github.com/b97tsk/asyncs"
	"github.com/emirpasic/gods/queues/circularbuffer"
)

// Tasks of an Executor run one at a time, so the queue needs no lock as
// long as every end stays on the same Executor. Suspended senders and the
// suspended receiver wait on the two Signals.
type shared[T any] struct {
	buf      *circularbuffer.Queue
	senders  int
	closed   bool
	notEmpty asyncs.Signal // a value was enqueued, or the last sender left
	notFull  asyncs.Signal // a value was dequeued, or the receiver left
}

type senderImpl[T any] struct {
	sh     *shared[T]
	closed bool
}

type receiverImpl[T any] struct {
	sh *shared[T]
}

func newChannel[T any](capacity int) (*senderImpl[T], *receiverImpl[T]) {
	sh := &shared[T]{
		buf:     circularbuffer.New(capacity),
		senders: 1,
	}
	return &senderImpl[T]{sh: sh}, &receiverImpl[T]{sh: sh}
}

func (s *senderImpl[T]) send(ctx context.Context, v T) (status, error) {
	sh := s.sh

	for {
		token := sh.notFull.Token()

		if st := s.trySend(v); st != statusFull {
			return st, nil
		}

		if err := sh.notFull.Await(ctx, token); err != nil {
			return statusFull, err
		}
	}
}

func (s *senderImpl[T]) trySend(v T) status {
	sh := s.sh

	switch {
	case s.closed || sh.closed:
		return statusClosed
	case sh.buf.Full():
		return statusFull
	}

	sh.buf.Enqueue(v)
	sh.notEmpty.Notify()

	return statusOK
}

func (s *senderImpl[T]) clone() *senderImpl[T] {
	if !s.closed {
		s.sh.senders++
	}
	return &senderImpl[T]{sh: s.sh, closed: s.closed}
}

func (s *senderImpl[T]) close() {
	if s.closed {
		return
	}

	s.closed = true
	s.sh.senders--

	if s.sh.senders == 0 {
		s.sh.notEmpty.Notify()
	}
}

func (r *receiverImpl[T]) recv(ctx context.Context) (T, status, error) {
	sh := r.sh

	for {
		token := sh.notEmpty.Token()

		if v, st := r.tryRecv(); st != statusEmpty {
			return v, st, nil
		}

		if err := sh.notEmpty.Await(ctx, token); err != nil {
			var zero T
			return zero, statusEmpty, err
		}
	}
}

func (r *receiverImpl[T]) tryRecv() (v T, _ status) {
	sh := r.sh

	if x, ok := sh.buf.Dequeue(); ok {
		v, _ = x.(T)
		sh.notFull.Notify()
		return v, statusOK
	}

	if sh.closed || sh.senders == 0 {
		return v, statusClosed
	}

	return v, statusEmpty
}

func (r *receiverImpl[T]) close() {
	if !r.sh.closed {
		r.sh.closed = true
		r.sh.notFull.Notify()
	}
}

//go:build !asyncs_local && !asyncs_noruntime

package oneshot

import (
	"context"
	"sync"

	"github.com/b97tsk/asyncs"
)

type state[T any] struct {
	mu       sync.Mutex
	value    T
	sent     bool // value holds a value to receive
	sendDone bool // the sender has sent or closed
	recvDone bool // the receiver has resolved or closed
	ready    chan struct{}
}

type (
	senderImpl[T any]   struct{ st *state[T] }
	receiverImpl[T any] struct{ st *state[T] }
)

func newChannel[T any]() (*senderImpl[T], *receiverImpl[T]) {
	st := &state[T]{ready: make(chan struct{})}
	return &senderImpl[T]{st}, &receiverImpl[T]{st}
}

func (s *senderImpl[T]) send(v T) bool {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.sendDone || st.recvDone {
		return false
	}

	st.value, st.sent, st.sendDone = v, true, true
	close(st.ready)

	return true
}

func (s *senderImpl[T]) close() {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.sendDone {
		st.sendDone = true
		close(st.ready)
	}
}

func (r *receiverImpl[T]) tryRecv() (v T, _ status) {
	st := r.st
	st.mu.Lock()
	defer st.mu.Unlock()

	switch {
	case st.recvDone:
		return v, statusClosed
	case st.sent:
		v, st.value, st.sent, st.recvDone = st.value, v, false, true
		return v, statusOK
	case st.sendDone:
		st.recvDone = true
		return v, statusClosed
	}

	return v, statusEmpty
}

func (r *receiverImpl[T]) recv(ctx context.Context) (T, status, error) {
	if v, st := r.tryRecv(); st != statusEmpty {
		return v, st, nil
	}

	var err error

	asyncs.Suspend(ctx, func() {
		select {
		case <-r.st.ready:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})

	if err != nil {
		var zero T
		return zero, statusEmpty, err
	}

	v, st := r.tryRecv()

	return v, st, nil
}

func (r *receiverImpl[T]) close() {
	st := r.st
	st.mu.Lock()
	defer st.mu.Unlock()

	var zero T
	st.value, st.sent, st.recvDone = zero, false, true
}

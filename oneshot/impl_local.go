//go:build asyncs_local && !asyncs_noruntime

package oneshot

import (
	"context"

	"github.com/b97tsk/asyncs"
)

// Tasks of an Executor run one at a time, so the state needs no lock as
// long as both ends stay on the same Executor. The Signal wakes up a
// suspended receiver.
type state[T any] struct {
	sig      asyncs.Signal
	value    T
	sent     bool
	sendDone bool
	recvDone bool
}

type (
	senderImpl[T any]   struct{ st *state[T] }
	receiverImpl[T any] struct{ st *state[T] }
)

func newChannel[T any]() (*senderImpl[T], *receiverImpl[T]) {
	st := new(state[T])
	return &senderImpl[T]{st}, &receiverImpl[T]{st}
}

func (s *senderImpl[T]) send(v T) bool {
	st := s.st
	if st.sendDone || st.recvDone {
		return false
	}
	st.value, st.sent, st.sendDone = v, true, true
	st.sig.Notify()
	return true
}

func (s *senderImpl[T]) close() {
	st := s.st
	if !st.sendDone {
		st.sendDone = true
		st.sig.Notify()
	}
}

func (r *receiverImpl[T]) tryRecv() (v T, _ status) {
	st := r.st
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
	for {
		token := r.st.sig.Token()
		if v, st := r.tryRecv(); st != statusEmpty {
			return v, st, nil
		}
		if err := r.st.sig.Await(ctx, token); err != nil {
			var zero T
			return zero, statusEmpty, err
		}
	}
}

func (r *receiverImpl[T]) close() {
	st := r.st
	var zero T
	st.value, st.sent, st.recvDone = zero, false, true
}

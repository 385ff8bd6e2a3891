// Package mpsc provides a bounded multi-producer, single-consumer channel.
//
// A [Sender] can be cloned, and every clone sends into the same queue; the
// [Receiver] is unique. Values sent by one sender are received in the order
// they were sent. Values sent by different senders interleave in the order
// they were enqueued.
//
// Ends are closed explicitly. The receiver sees the end of the stream, as
// [io.EOF], once every sender has been closed and the queue has been
// drained. Closing the receiver makes every later send fail and give its
// value back.
//
// The implementation behind the ends is the one of the runtime a build
// selects; see package [github.com/b97tsk/asyncs].
package mpsc

import (
	"context"
	"io"
	"iter"
)

type status uint8

const (
	statusOK status = iota
	statusEmpty
	statusFull
	statusClosed
)

// Sender is a sending end of a channel.
type Sender[T any] struct {
	impl *senderImpl[T]
}

// Receiver is the receiving end of a channel.
type Receiver[T any] struct {
	impl *receiverImpl[T]
}

// Channel creates a channel that buffers up to capacity values, and returns
// its two ends. Channel panics if capacity is not positive.
func Channel[T any](capacity int) (*Sender[T], *Receiver[T]) {
	if capacity < 1 {
		panic("mpsc: capacity must be positive")
	}
	s, r := newChannel[T](capacity)
	return &Sender[T]{s}, &Receiver[T]{r}
}

// Send enqueues v, suspending the caller while the queue is full.
//
// If the receiver has been closed, or is closed while Send waits, Send
// returns a [*SendError] holding v. If ctx is done first, Send returns the
// context's error.
//
// Send must not be called after, or concurrently with, Close on the same
// Sender.
func (s *Sender[T]) Send(ctx context.Context, v T) error {
	st, err := s.impl.send(ctx, v)
	if err != nil {
		return err
	}
	if st == statusClosed {
		return &SendError[T]{Value: v}
	}
	return nil
}

// TrySend enqueues v if there is room, without suspending. Otherwise it
// returns a [*TrySendError] holding v.
func (s *Sender[T]) TrySend(v T) error {
	switch s.impl.trySend(v) {
	case statusFull:
		return &TrySendError[T]{Value: v, full: true}
	case statusClosed:
		return &TrySendError[T]{Value: v}
	}
	return nil
}

// Clone returns a new Sender of the same channel, which has to be closed
// separately. Cloning a closed Sender returns a closed Sender.
func (s *Sender[T]) Clone() *Sender[T] {
	return &Sender[T]{s.impl.clone()}
}

// Close closes s. Closing it again is a no-op.
func (s *Sender[T]) Close() {
	s.impl.close()
}

// Recv suspends the caller until a value is available, and returns it.
//
// Recv returns [io.EOF] once the channel is closed and drained, and the
// context's error if ctx is done first.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	v, st, err := r.impl.recv(ctx)
	if err != nil {
		return v, err
	}
	if st == statusClosed {
		return v, io.EOF
	}
	return v, nil
}

// TryRecv returns a value if one is available, without suspending.
// Otherwise it returns [Empty] if more values may arrive, or [Closed] if
// none can.
func (r *Receiver[T]) TryRecv() (T, error) {
	v, st := r.impl.tryRecv()
	switch st {
	case statusEmpty:
		return v, Empty
	case statusClosed:
		return v, Closed
	}
	return v, nil
}

// Close closes r for new values. Values already queued can still be
// received. Senders waiting for room give up with a [*SendError].
// Closing it again is a no-op.
func (r *Receiver[T]) Close() {
	r.impl.close()
}

// All returns an iterator over the values received from r.
//
// The iterator stops when the channel is closed and drained, or when ctx is
// done. Breaking out of a loop over it leaves the remaining values in r,
// where another call to All picks them up.
func (r *Receiver[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := r.Recv(ctx)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

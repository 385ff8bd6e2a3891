// Package oneshot provides a channel that carries a single value from one
// task to another.
//
// At most one value ever flows through a channel. Once the value has been
// received, or either end has been closed, the channel is closed for good.
//
// The implementation behind [Sender] and [Receiver] is the one of the
// runtime a build selects; see package [github.com/b97tsk/asyncs].
package oneshot

import "context"

type status uint8

const (
	statusOK status = iota
	statusEmpty
	statusClosed
)

// Sender is the sending end of a channel.
type Sender[T any] struct {
	impl *senderImpl[T]
}

// Receiver is the receiving end of a channel.
type Receiver[T any] struct {
	impl *receiverImpl[T]
}

// Channel creates a channel and returns its two ends.
func Channel[T any]() (*Sender[T], *Receiver[T]) {
	s, r := newChannel[T]()
	return &Sender[T]{s}, &Receiver[T]{r}
}

// Send sends v and consumes s.
//
// If the receiver has been closed, or s has been used already, Send returns
// a [*SendError] holding v.
func (s *Sender[T]) Send(v T) error {
	if !s.impl.send(v) {
		return &SendError[T]{Value: v}
	}
	return nil
}

// Close closes s without sending anything. The receiver then observes
// [Closed]. Close is a no-op after a successful Send or another Close.
func (s *Sender[T]) Close() {
	s.impl.close()
}

// TryRecv returns the value if it has been sent, without suspending.
// Otherwise it returns [Empty] if the sender may still send, or [Closed] if
// it cannot, including when the value has been received already.
func (r *Receiver[T]) TryRecv() (T, error) {
	v, st := r.impl.tryRecv()
	return v, tryRecvError(st)
}

// Recv suspends the caller until the value is sent, and returns it.
//
// If the sender is closed without sending, or the value has been received
// already, Recv returns [RecvError]. If ctx is done first, Recv returns the
// context's error and may be called again.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	v, st, err := r.impl.recv(ctx)
	if err != nil {
		return v, err
	}
	if st != statusOK {
		return v, RecvError{}
	}
	return v, nil
}

// Close closes r. A value sent but not received is dropped, and later sends
// fail.
func (r *Receiver[T]) Close() {
	r.impl.close()
}

func tryRecvError(st status) error {
	switch st {
	case statusEmpty:
		return Empty
	case statusClosed:
		return Closed
	}
	return nil
}

package mpsc

import "errors"

var (
	// ErrFull is matched by a [*TrySendError] of a full channel.
	ErrFull = errors.New("mpsc: channel full")

	// ErrClosed is matched by every error reporting that the other end is
	// gone.
	ErrClosed = errors.New("mpsc: channel closed")
)

// SendError is returned by [Sender.Send] when the receiver is closed.
// It gives the value back.
type SendError[T any] struct {
	Value T
}

func (*SendError[T]) Error() string {
	return "mpsc: send on closed channel"
}

func (*SendError[T]) Unwrap() error {
	return ErrClosed
}

// TrySendError is returned by [Sender.TrySend] when the value could not be
// enqueued. It gives the value back.
type TrySendError[T any] struct {
	Value T
	full  bool
}

// Full reports whether the channel was full.
func (e *TrySendError[T]) Full() bool {
	return e.full
}

// Closed reports whether the receiver was closed.
func (e *TrySendError[T]) Closed() bool {
	return !e.full
}

func (e *TrySendError[T]) Error() string {
	if e.full {
		return "mpsc: send on full channel"
	}
	return "mpsc: send on closed channel"
}

func (e *TrySendError[T]) Unwrap() error {
	if e.full {
		return ErrFull
	}
	return ErrClosed
}

// TryRecvError is returned by [Receiver.TryRecv] when there is no value to
// take.
type TryRecvError uint8

const (
	// Empty means more values may still arrive.
	Empty TryRecvError = iota + 1
	// Closed means the channel is closed and drained.
	Closed
)

func (e TryRecvError) Error() string {
	switch e {
	case Empty:
		return "mpsc: channel empty"
	case Closed:
		return "mpsc: channel closed"
	}
	return "mpsc: unknown error"
}

func (e TryRecvError) Is(target error) bool {
	return e == Closed && target == ErrClosed
}

package oneshot

// TryRecvError is returned by [Receiver.TryRecv] when there is no value to
// take.
type TryRecvError uint8

const (
	// Empty means the sender may still send a value.
	Empty TryRecvError = iota + 1
	// Closed means no value is ever going to arrive.
	Closed
)

func (e TryRecvError) Error() string {
	switch e {
	case Empty:
		return "oneshot: channel empty"
	case Closed:
		return "oneshot: channel closed"
	}
	return "oneshot: unknown error"
}

// RecvError is returned by [Receiver.Recv] when the channel closed without
// delivering a value.
type RecvError struct{}

func (RecvError) Error() string {
	return "oneshot: channel closed"
}

// Is reports whether target is [Closed], which RecvError is the
// suspending counterpart of.
func (RecvError) Is(target error) bool {
	return target == Closed
}

// SendError is returned by [Sender.Send] when the value could not be
// delivered. It gives the value back.
type SendError[T any] struct {
	Value T
}

func (*SendError[T]) Error() string {
	return "oneshot: send on closed channel"
}

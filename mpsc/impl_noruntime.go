//go:build asyncs_noruntime && !asyncs_local

package mpsc

import (
	"context"

	"github.com/b97tsk/asyncs"
)

type (
	senderImpl[T any]   struct{}
	receiverImpl[T any] struct{}
)

func newChannel[T any](int) (*senderImpl[T], *receiverImpl[T]) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return nil, nil
}

func (*senderImpl[T]) send(context.Context, T) (status, error) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return statusClosed, nil
}

func (*senderImpl[T]) trySend(T) status {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return statusClosed
}

func (*senderImpl[T]) clone() *senderImpl[T] {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return nil
}

func (*senderImpl[T]) close() {
	asyncs.Fatal(asyncs.ErrNoRuntime)
}

func (*receiverImpl[T]) recv(context.Context) (v T, _ status, _ error) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return v, statusClosed, nil
}

func (*receiverImpl[T]) tryRecv() (v T, _ status) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return v, statusClosed
}

func (*receiverImpl[T]) close() {
	asyncs.Fatal(asyncs.ErrNoRuntime)
}

//go:build asyncs_noruntime && !asyncs_local

package oneshot

import (
	"context"

	"github.com/b97tsk/asyncs"
)

type (
	senderImpl[T any]   struct{}
	receiverImpl[T any] struct{}
)

func newChannel[T any]() (*senderImpl[T], *receiverImpl[T]) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return nil, nil
}

func (*senderImpl[T]) send(T) bool {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return false
}

func (*senderImpl[T]) close() {
	asyncs.Fatal(asyncs.ErrNoRuntime)
}

func (*receiverImpl[T]) tryRecv() (v T, _ status) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return v, statusClosed
}

func (*receiverImpl[T]) recv(context.Context) (v T, _ status, _ error) {
	asyncs.Fatal(asyncs.ErrNoRuntime)
	return v, statusClosed, nil
}

func (*receiverImpl[T]) close() {
	asyncs.Fatal(asyncs.ErrNoRuntime)
}

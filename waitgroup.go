package asyncs

import (
	"context"
	"sync"
)

// A WaitGroup is a [Signal] with a counter.
//
// Unlike [sync.WaitGroup], its Wait method suspends the calling task, so a
// task of an [Executor] can wait for its siblings.
//
// A WaitGroup is safe for concurrent use, and must not be copied after
// first use.
type WaitGroup struct {
	sig Signal
	mu  sync.Mutex
	n   int
}

// Add adds delta, which may be negative, to the [WaitGroup] counter.
// If the counter becomes zero, Add wakes up every task waiting on wg.
// If the counter becomes negative, Add panics.
func (wg *WaitGroup) Add(delta int) {
	wg.mu.Lock()
	wg.n += delta
	n := wg.n
	wg.mu.Unlock()

	if n < 0 {
		panic("asyncs(WaitGroup): negative counter")
	}

	if n == 0 && delta != 0 {
		wg.sig.Notify()
	}
}

// Done decrements the [WaitGroup] counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait suspends the caller until the [WaitGroup] counter is zero, or until
// ctx is done, in which case it returns the context's error.
func (wg *WaitGroup) Wait(ctx context.Context) error {
	for {
		token := wg.sig.Token()

		wg.mu.Lock()
		n := wg.n
		wg.mu.Unlock()

		if n == 0 {
			return nil
		}

		if err := wg.sig.Await(ctx, token); err != nil {
			return err
		}
	}
}

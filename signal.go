package asyncs

import (
	"context"
	"sync"
)

// A Signal wakes up tasks waiting for something to change.
//
// A Signal counts its notifications. A waiter first takes a token, then
// checks its condition, and then awaits with that token; if a notification
// happened in between, the await returns right away. The usual pattern is:
//
//	for {
//		token := sig.Token()
//		if ready() {
//			break
//		}
//		if err := sig.Await(ctx, token); err != nil {
//			return err
//		}
//	}
//
// A Signal is safe for concurrent use, and must not be copied after first
// use.
type Signal struct {
	mu      sync.Mutex
	count   uint64
	waiters map[chan struct{}]struct{}
}

// Token returns the number of notifications so far.
func (s *Signal) Token() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Notify wakes up every task awaiting s.
func (s *Signal) Notify() {
	s.mu.Lock()
	s.count++
	waiters := s.waiters
	s.waiters = nil
	s.mu.Unlock()

	for w := range waiters {
		close(w)
	}
}

// Await suspends the caller, through [Suspend], until s is notified after
// token was taken, or until ctx is done, in which case it returns the
// context's error.
func (s *Signal) Await(ctx context.Context, token uint64) error {
	s.mu.Lock()

	if s.count != token {
		s.mu.Unlock()
		return nil
	}

	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return err
	}

	w := make(chan struct{})
	if s.waiters == nil {
		s.waiters = make(map[chan struct{}]struct{})
	}
	s.waiters[w] = struct{}{}
	s.mu.Unlock()

	var err error
	Suspend(ctx, func() {
		select {
		case <-w:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})

	if err != nil {
		s.mu.Lock()
		delete(s.waiters, w)
		s.mu.Unlock()
	}

	return err
}

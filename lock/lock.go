// Package lock provides mutual exclusion locks whose waiters suspend
// instead of blocking.
//
// Each lock owns the value it protects, and hands out guards to it. A guard
// is released with Unlock; releasing it twice is a no-op.
//
// Waiters are served in arrival order, so a writer of an [RWMutex] is not
// starved by a stream of readers.
package lock

import (
	"context"
	"sync/atomic"
)

const maxReaders = 1 << 30

// Mutex is a mutual exclusion lock guarding a value of type T.
type Mutex[T any] struct {
	sem   *semImpl
	value T
}

// NewMutex returns a Mutex guarding v.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{sem: newSem(1), value: v}
}

// Lock suspends the caller until m is unlocked, then locks it.
// If ctx is done first, Lock returns the context's error.
func (m *Mutex[T]) Lock(ctx context.Context) (*MutexGuard[T], error) {
	if err := m.sem.acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &MutexGuard[T]{m: m}, nil
}

// TryLock locks m if it is unlocked, and reports whether it did.
func (m *Mutex[T]) TryLock() (*MutexGuard[T], bool) {
	if !m.sem.tryAcquire(1) {
		return nil, false
	}
	return &MutexGuard[T]{m: m}, true
}

// MutexGuard gives access to the value of a locked [Mutex].
type MutexGuard[T any] struct {
	m        *Mutex[T]
	released atomic.Bool
}

// Value returns a pointer to the guarded value. It must not be used after
// Unlock.
func (g *MutexGuard[T]) Value() *T {
	return &g.m.value
}

// Unlock unlocks the [Mutex].
func (g *MutexGuard[T]) Unlock() {
	if g.released.CompareAndSwap(false, true) {
		g.m.sem.release(1)
	}
}

// RWMutex is a reader/writer mutual exclusion lock guarding a value of type
// T. It can be held by any number of readers or by a single writer.
type RWMutex[T any] struct {
	sem   *semImpl
	value T
}

// NewRWMutex returns an RWMutex guarding v.
func NewRWMutex[T any](v T) *RWMutex[T] {
	return &RWMutex[T]{sem: newSem(maxReaders), value: v}
}

// RLock suspends the caller until no writer holds or waits for m, then
// locks it for reading. If ctx is done first, RLock returns the context's
// error.
func (m *RWMutex[T]) RLock(ctx context.Context) (*ReadGuard[T], error) {
	if err := m.sem.acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &ReadGuard[T]{m: m}, nil
}

// TryRLock locks m for reading if it can do so right away, and reports
// whether it did.
func (m *RWMutex[T]) TryRLock() (*ReadGuard[T], bool) {
	if !m.sem.tryAcquire(1) {
		return nil, false
	}
	return &ReadGuard[T]{m: m}, true
}

// Lock suspends the caller until m is unlocked, then locks it for writing.
// If ctx is done first, Lock returns the context's error.
func (m *RWMutex[T]) Lock(ctx context.Context) (*WriteGuard[T], error) {
	if err := m.sem.acquire(ctx, maxReaders); err != nil {
		return nil, err
	}
	return &WriteGuard[T]{m: m}, nil
}

// TryLock locks m for writing if it is unlocked, and reports whether it
// did.
func (m *RWMutex[T]) TryLock() (*WriteGuard[T], bool) {
	if !m.sem.tryAcquire(maxReaders) {
		return nil, false
	}
	return &WriteGuard[T]{m: m}, true
}

// ReadGuard gives shared access to the value of an [RWMutex].
type ReadGuard[T any] struct {
	m        *RWMutex[T]
	released atomic.Bool
}

// Value returns a pointer to the guarded value. The value must only be
// read, and not after Unlock.
func (g *ReadGuard[T]) Value() *T {
	return &g.m.value
}

// Unlock releases the read lock.
func (g *ReadGuard[T]) Unlock() {
	if g.released.CompareAndSwap(false, true) {
		g.m.sem.release(1)
	}
}

// WriteGuard gives exclusive access to the value of an [RWMutex].
type WriteGuard[T any] struct {
	m        *RWMutex[T]
	released atomic.Bool
}

// Value returns a pointer to the guarded value. It must not be used after
// Unlock.
func (g *WriteGuard[T]) Value() *T {
	return &g.m.value
}

// Unlock releases the write lock.
func (g *WriteGuard[T]) Unlock() {
	if g.released.CompareAndSwap(false, true) {
		g.m.sem.release(maxReaders)
	}
}

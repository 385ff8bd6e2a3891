//go:build !asyncs_noruntime

package lock_test

import (
	"context"
	"testing"

	"github.com/b97tsk/asyncs"
	"github.com/b97tsk/asyncs/lock"
	"github.com/b97tsk/asyncs/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutex(t *testing.T) {
	ctx := context.Background()

	t.Run("Exclusion", func(t *testing.T) {
		asyncs.BlockOn(ctx, func(ctx context.Context) {
			m := lock.NewMutex(0)

			var handles []*task.JoinHandle[error]

			for range 10 {
				handles = append(handles, task.Spawn(ctx, func(ctx context.Context) error {
					g, err := m.Lock(ctx)
					if err != nil {
						return err
					}
					defer g.Unlock()
					n := *g.Value()
					task.YieldNow(ctx)
					*g.Value() = n + 1
					return nil
				}))
			}

			for _, h := range handles {
				err, _ := h.Join(ctx)
				assert.NoError(t, err)
			}

			g, ok := m.TryLock()
			if assert.True(t, ok) {
				assert.Equal(t, 10, *g.Value())
				g.Unlock()
			}
		})
	})
	t.Run("TryLock", func(t *testing.T) {
		m := lock.NewMutex("v")

		g, ok := m.TryLock()
		require.True(t, ok)

		_, ok = m.TryLock()
		require.False(t, ok)

		g.Unlock()
		g.Unlock()

		g, ok = m.TryLock()
		require.True(t, ok)

		_, ok = m.TryLock()
		require.False(t, ok, "Unlocking twice must not release twice.")
		g.Unlock()
	})
	t.Run("Canceled", func(t *testing.T) {
		asyncs.BlockOn(ctx, func(ctx context.Context) {
			m := lock.NewMutex(0)

			g, err := m.Lock(ctx)
			assert.NoError(t, err)

			canceled, cancel := context.WithCancel(ctx)
			cancel()

			_, err = m.Lock(canceled)
			assert.ErrorIs(t, err, context.Canceled)

			g.Unlock()

			g, err = m.Lock(ctx)
			assert.NoError(t, err)
			g.Unlock()
		})
	})
}

func TestRWMutex(t *testing.T) {
	ctx := context.Background()

	t.Run("Readers", func(t *testing.T) {
		m := lock.NewRWMutex([]int{1, 2})

		r1, ok := m.TryRLock()
		require.True(t, ok)
		r2, ok := m.TryRLock()
		require.True(t, ok)

		require.Equal(t, []int{1, 2}, *r1.Value())

		_, ok = m.TryLock()
		require.False(t, ok)

		r1.Unlock()
		r2.Unlock()
		r2.Unlock()

		w, ok := m.TryLock()
		require.True(t, ok)
		*w.Value() = append(*w.Value(), 3)

		_, ok = m.TryRLock()
		require.False(t, ok)

		w.Unlock()

		r, ok := m.TryRLock()
		require.True(t, ok)
		require.Equal(t, []int{1, 2, 3}, *r.Value())
		r.Unlock()
	})
	t.Run("WaitingWriterBlocksReaders", func(t *testing.T) {
		asyncs.BlockOn(ctx, func(ctx context.Context) {
			m := lock.NewRWMutex(0)

			r, err := m.RLock(ctx)
			assert.NoError(t, err)

			h := task.Spawn(ctx, func(ctx context.Context) error {
				w, err := m.Lock(ctx)
				if err != nil {
					return err
				}
				*w.Value() = 1
				w.Unlock()
				return nil
			})

			blocked := false
			for range 1000 {
				task.YieldNow(ctx)
				g, ok := m.TryRLock()
				if !ok {
					blocked = true
					break
				}
				g.Unlock()
			}
			assert.True(t, blocked, "A waiting writer must keep new readers out.")

			r.Unlock()

			err, _ = h.Join(ctx)
			assert.NoError(t, err)

			g, err := m.RLock(ctx)
			assert.NoError(t, err)
			assert.Equal(t, 1, *g.Value())
			g.Unlock()
		})
	})
}

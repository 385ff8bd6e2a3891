//go:build !asyncs_noruntime

package mpsc_test

import (
	"context"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/b97tsk/asyncs"
	"github.com/b97tsk/asyncs/mpsc"
	"github.com/b97tsk/asyncs/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrySend(t *testing.T) {
	for capacity := 1; capacity <= 4; capacity++ {
		s, r := mpsc.Channel[int](capacity)

		for i := range capacity {
			require.NoError(t, s.TrySend(i))
		}

		err := s.TrySend(capacity)

		var sendErr *mpsc.TrySendError[int]
		require.ErrorAs(t, err, &sendErr)
		require.True(t, sendErr.Full())
		require.False(t, sendErr.Closed())
		require.Equal(t, capacity, sendErr.Value)
		require.ErrorIs(t, err, mpsc.ErrFull)

		v, err := r.TryRecv()
		require.NoError(t, err)
		require.Equal(t, 0, v)

		require.NoError(t, s.TrySend(capacity), "A receive must make room.")
	}
}

func TestTryRecv(t *testing.T) {
	s, r := mpsc.Channel[string](2)

	_, err := r.TryRecv()
	require.ErrorIs(t, err, mpsc.Empty)

	require.NoError(t, s.TrySend("a"))
	s.Close()
	s.Close()

	v, err := r.TryRecv()
	require.NoError(t, err)
	require.Equal(t, "a", v)

	_, err = r.TryRecv()
	require.ErrorIs(t, err, mpsc.Closed)
	require.ErrorIs(t, err, mpsc.ErrClosed)
}

func TestCapacity(t *testing.T) {
	require.PanicsWithValue(t, "mpsc: capacity must be positive", func() { mpsc.Channel[int](0) })
	require.PanicsWithValue(t, "mpsc: capacity must be positive", func() { mpsc.Channel[int](-1) })
}

func TestChannel(t *testing.T) {
	ctx := context.Background()

	t.Run("Order", func(t *testing.T) {
		asyncs.BlockOn(ctx, func(ctx context.Context) {
			s, r := mpsc.Channel[int](2)

			h := task.Spawn(ctx, func(ctx context.Context) error {
				defer s.Close()
				for i := range 10 {
					if err := s.Send(ctx, i); err != nil {
						return err
					}
				}
				return nil
			})

			var got []int
			for {
				v, err := r.Recv(ctx)
				if err == io.EOF {
					break
				}
				assert.NoError(t, err)
				got = append(got, v)
			}

			err, _ := h.Join(ctx)
			assert.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
		})
	})
	t.Run("SendersClosed", func(t *testing.T) {
		asyncs.BlockOn(ctx, func(ctx context.Context) {
			s, r := mpsc.Channel[int](1)
			c := s.Clone()

			h := task.Spawn(ctx, func(ctx context.Context) error {
				_, err := r.Recv(ctx)
				return err
			})

			task.YieldNow(ctx)
			s.Close()

			task.YieldNow(ctx)
			select {
			case <-h.Done():
				t.Error("Recv returned while a clone is open.")
			default:
			}

			c.Close()

			err, _ := h.Join(ctx)
			assert.Equal(t, io.EOF, err)

			_, err = r.Recv(ctx)
			assert.Equal(t, io.EOF, err, "A future Recv must not suspend.")
		})
	})
	t.Run("ReceiverClosed", func(t *testing.T) {
		asyncs.BlockOn(ctx, func(ctx context.Context) {
			s, r := mpsc.Channel[[]byte](1)
			assert.NoError(t, s.TrySend([]byte("queued")))

			pending := []byte("pending")

			h := task.Spawn(ctx, func(ctx context.Context) error {
				return s.Send(ctx, pending)
			})

			task.YieldNow(ctx)
			r.Close()
			r.Close()

			err, _ := h.Join(ctx)

			var sendErr *mpsc.SendError[[]byte]
			if assert.ErrorAs(t, err, &sendErr) {
				assert.Same(t, &pending[0], &sendErr.Value[0])
			}
			assert.ErrorIs(t, err, mpsc.ErrClosed)

			err = s.TrySend([]byte("late"))
			var trySendErr *mpsc.TrySendError[[]byte]
			if assert.ErrorAs(t, err, &trySendErr) {
				assert.True(t, trySendErr.Closed())
				assert.Equal(t, "late", string(trySendErr.Value))
			}

			v, err := r.Recv(ctx)
			assert.NoError(t, err, "Queued values must still drain.")
			assert.Equal(t, "queued", string(v))

			_, err = r.Recv(ctx)
			assert.Equal(t, io.EOF, err)
		})
	})
	t.Run("SendCanceled", func(t *testing.T) {
		asyncs.BlockOn(ctx, func(ctx context.Context) {
			s, r := mpsc.Channel[int](1)
			assert.NoError(t, s.Send(ctx, 1))

			canceled, cancel := context.WithCancel(ctx)
			cancel()

			assert.ErrorIs(t, s.Send(canceled, 2), context.Canceled)

			_, err := r.Recv(canceled)
			assert.NoError(t, err, "A ready value wins over a canceled context.")

			_, err = r.Recv(canceled)
			assert.ErrorIs(t, err, context.Canceled)
		})
	})
	t.Run("ClonedClosed", func(t *testing.T) {
		s, r := mpsc.Channel[int](1)
		s.Close()

		c := s.Clone()
		require.Error(t, c.TrySend(1))
		c.Close()

		_, err := r.TryRecv()
		require.ErrorIs(t, err, mpsc.Closed)
	})
}

func TestAll(t *testing.T) {
	ctx := context.Background()

	asyncs.BlockOn(ctx, func(ctx context.Context) {
		s, r := mpsc.Channel[int](8)
		for i := range 5 {
			assert.NoError(t, s.Send(ctx, i))
		}
		s.Close()

		var first []int
		for v := range r.All(ctx) {
			first = append(first, v)
			if len(first) == 2 {
				break
			}
		}

		assert.Equal(t, []int{0, 1}, first)
		assert.Equal(t, []int{2, 3, 4}, slices.Collect(r.All(ctx)))
		assert.Empty(t, slices.Collect(r.All(ctx)))
	})
}

func TestErrors(t *testing.T) {
	require.False(t, errors.Is(mpsc.Empty, mpsc.ErrClosed))
	require.True(t, errors.Is(&mpsc.SendError[int]{}, mpsc.ErrClosed))
	require.NotEqual(t, mpsc.Empty.Error(), mpsc.Closed.Error())
}

//go:build asyncs_nostd && !asyncs_hwclock

package instant_test

import (
	"context"
	"testing"
	"time"

	"github.com/b97tsk/asyncs"
	"github.com/b97tsk/asyncs/instant"
	"github.com/stretchr/testify/require"
)

func TestInstant(t *testing.T) {
	prev := asyncs.Logger()
	asyncs.SetLogger(nil)
	t.Cleanup(func() { asyncs.SetLogger(prev) })

	require.Equal(t, instant.VariantNull, instant.Variant)

	require.PanicsWithValue(t, asyncs.ErrNoClock, func() { instant.Now() })
	require.PanicsWithValue(t, asyncs.ErrNoClock, func() { instant.WithDelay(time.Second) })
	require.PanicsWithValue(t, asyncs.ErrNoClock, func() {
		_ = instant.Sleep(context.Background(), time.Second)
	})
}

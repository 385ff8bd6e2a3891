//go:build !asyncs_nostd && !asyncs_hwclock

package instant

import (
	"context"

	"github.com/b97tsk/asyncs"
)

// Variant names the variant behind [Instant] in this build.
const Variant = VariantSystem

type internal = SystemInstant

func sleepUntil(ctx context.Context, deadline internal) error {
	d, ok := internal{}.Now().CheckedDurationUntil(deadline)
	if !ok || d == 0 {
		return nil
	}

	c, _ := systemClock()
	timer := c.Timer(d)
	defer timer.Stop()

	var err error

	asyncs.Suspend(ctx, func() {
		select {
		case <-timer.C:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})

	return err
}

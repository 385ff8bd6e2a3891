//go:build asyncs_hwclock

package instant

import (
	"context"

	"github.com/b97tsk/asyncs"
)

// Variant names the variant behind [Instant] in this build.
const Variant = VariantTick

type internal = TickInstant

// A counter has nothing to wait on, so the task polls it, yielding in
// between.
func sleepUntil(ctx context.Context, deadline internal) error {
	var zero internal
	for zero.Now().Compare(deadline) < 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		asyncs.Yield(ctx)
	}
	return nil
}

//go:build asyncs_nostd && !asyncs_hwclock

package instant

import "context"

// Variant names the variant behind [Instant] in this build.
const Variant = VariantNull

type internal = NullInstant

func sleepUntil(context.Context, internal) error {
	noClock()
	return nil
}

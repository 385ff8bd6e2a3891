// Package instant provides a monotonic point in time that works the same
// whether or not the build has a clock.
//
// Three variants implement [Interface]: [SystemInstant], backed by the
// host's monotonic clock; [NullInstant], for builds without any clock; and
// [TickInstant], backed by a hardware counter registered with
// [SetTickSource]. [Instant] wraps the one a build selects:
//
//   - no tag: SystemInstant.
//   - asyncs_nostd: NullInstant.
//   - asyncs_hwclock: TickInstant, regardless of asyncs_nostd.
//
// A build with no clock tag gets the host clock rather than NullInstant.
// Every Go target has a monotonic clock, so clockless builds must opt in
// with asyncs_nostd.
package instant

import (
	"context"
	"time"
)

// Names of the variants. See [Variant].
const (
	VariantSystem = "system"
	VariantNull   = "null"
	VariantTick   = "tick"
)

// Instant is a point in time, as measured by the clock a build selects.
//
// Instants are comparable values, and == agrees with [Instant.Equal].
type Instant struct {
	v internal
}

var _ Interface[Instant] = Instant{}

// Now returns the current instant.
func Now() Instant {
	return Instant{internal{}.Now()}
}

// WithDelay returns the instant d from now.
func WithDelay(d time.Duration) Instant {
	return Instant{Deadline[internal](d)}
}

// Now returns the current instant. The receiver is ignored.
func (Instant) Now() Instant {
	return Now()
}

// Add returns the instant d after t. A negative d moves backwards.
func (t Instant) Add(d time.Duration) Instant {
	return Instant{t.v.Add(d)}
}

// Sub returns the instant d before t. A negative d moves forwards.
func (t Instant) Sub(d time.Duration) Instant {
	return Instant{t.v.Sub(d)}
}

// CheckedDurationUntil returns the time from t to later, and false if later
// is before t.
func (t Instant) CheckedDurationUntil(later Instant) (time.Duration, bool) {
	return t.v.CheckedDurationUntil(later.v)
}

// CheckedDurationSince returns the time from earlier to t, and false if
// earlier is after t.
func (t Instant) CheckedDurationSince(earlier Instant) (time.Duration, bool) {
	return t.v.CheckedDurationSince(earlier.v)
}

// Compare returns -1, 0 or +1 as t is before, equal to or after other.
func (t Instant) Compare(other Instant) int {
	return t.v.Compare(other.v)
}

// Before reports whether t is before other.
func (t Instant) Before(other Instant) bool { return t.Compare(other) < 0 }

// After reports whether t is after other.
func (t Instant) After(other Instant) bool { return t.Compare(other) > 0 }

// Equal reports whether t and other are the same instant.
func (t Instant) Equal(other Instant) bool { return t.Compare(other) == 0 }

func (t Instant) String() string {
	return t.v.String()
}

// Sleep suspends the calling task for d, or until ctx is canceled, in which
// case it returns ctx.Err().
func Sleep(ctx context.Context, d time.Duration) error {
	return SleepUntil(ctx, WithDelay(d))
}

// SleepUntil suspends the calling task until deadline, or until ctx is
// canceled, in which case it returns ctx.Err(). It returns immediately if
// deadline has passed.
func SleepUntil(ctx context.Context, deadline Instant) error {
	return sleepUntil(ctx, deadline.v)
}

package instant

import (
	"math"
	"time"
)

// Interface is the capability every instant variant implements, with I
// being the variant itself.
//
// Now ignores its receiver, so the zero value of a variant can be used to
// sample the clock: var zero I; zero.Now().
//
// Instants of different variants never meet: each variant is its own type.
type Interface[I any] interface {
	// Now samples the clock.
	Now() I
	// Add returns the instant d after the receiver, saturating at the
	// bounds of the variant.
	Add(d time.Duration) I
	// Sub returns the instant d before the receiver, saturating at the
	// bounds of the variant.
	Sub(d time.Duration) I
	// CheckedDurationUntil returns how long it takes from the receiver to
	// later, and false if later comes first.
	CheckedDurationUntil(later I) (time.Duration, bool)
	// CheckedDurationSince returns how long it has been from earlier to
	// the receiver, and false if earlier comes later.
	CheckedDurationSince(earlier I) (time.Duration, bool)
	// Compare returns -1, 0 or +1 as the receiver is before, equal to or
	// after other.
	Compare(other I) int
}

// Deadline returns the instant d from now, using variant I.
func Deadline[I Interface[I]](d time.Duration) I {
	var zero I
	return zero.Now().Add(d)
}

func satAdd(a, b int64) int64 {
	c := a + b
	if (c > a) == (b > 0) {
		return c
	}
	if b > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

func satSub(a, b int64) int64 {
	c := a - b
	if (c < a) == (b > 0) {
		return c
	}
	if b > 0 {
		return math.MinInt64
	}
	return math.MaxInt64
}

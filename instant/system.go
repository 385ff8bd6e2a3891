package instant

import (
	"cmp"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

var system struct {
	sync.RWMutex
	clock clock.Clock
	base  time.Time
}

func init() {
	SetClock(clock.New())
}

// SetClock replaces the clock [SystemInstant] samples, and restarts its
// epoch. Instants taken before the call must not be compared with instants
// taken after it.
//
// It exists so that tests can drive time with a [clock.Mock].
func SetClock(c clock.Clock) {
	system.Lock()
	system.clock = c
	system.base = c.Now()
	system.Unlock()
}

func systemClock() (clock.Clock, time.Time) {
	system.RLock()
	defer system.RUnlock()
	return system.clock, system.base
}

// SystemInstant is the variant backed by the host's monotonic clock.
//
// It counts nanoseconds from an epoch taken when the package initializes;
// instants before the epoch are negative. Arithmetic saturates at the
// bounds of int64.
type SystemInstant struct {
	ns int64
}

var _ Interface[SystemInstant] = SystemInstant{}

// Now samples the system clock.
func (SystemInstant) Now() SystemInstant {
	c, base := systemClock()
	return SystemInstant{ns: int64(c.Since(base))}
}

// Add returns the instant d after t.
func (t SystemInstant) Add(d time.Duration) SystemInstant {
	return SystemInstant{ns: satAdd(t.ns, int64(d))}
}

// Sub returns the instant d before t.
func (t SystemInstant) Sub(d time.Duration) SystemInstant {
	return SystemInstant{ns: satSub(t.ns, int64(d))}
}

// CheckedDurationUntil returns later minus t, or false if later is before t.
func (t SystemInstant) CheckedDurationUntil(later SystemInstant) (time.Duration, bool) {
	if later.ns < t.ns {
		return 0, false
	}
	return time.Duration(satSub(later.ns, t.ns)), true
}

// CheckedDurationSince returns t minus earlier, or false if earlier is
// after t.
func (t SystemInstant) CheckedDurationSince(earlier SystemInstant) (time.Duration, bool) {
	return earlier.CheckedDurationUntil(t)
}

// Compare compares t with other.
func (t SystemInstant) Compare(other SystemInstant) int {
	return cmp.Compare(t.ns, other.ns)
}

// String formats t as the offset from the epoch, e.g. "+1.5s".
func (t SystemInstant) String() string {
	if t.ns < 0 {
		return time.Duration(t.ns).String()
	}
	return "+" + time.Duration(t.ns).String()
}

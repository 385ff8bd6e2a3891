package instant

import (
	"cmp"
	"math"
	"math/bits"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/b97tsk/asyncs"
)

// TickSource is a free-running hardware counter.
type TickSource interface {
	// Ticks reads the counter. It must never go backwards.
	Ticks() uint64
	// Frequency returns the number of ticks per second. It must not be zero
	// and must not change.
	Frequency() uint64
}

type registeredSource struct{ TickSource }

var tickSource atomic.Pointer[registeredSource]

// SetTickSource registers the counter [TickInstant] reads. It must be called
// before any TickInstant is used; using one without a source is a fatal
// error.
func SetTickSource(src TickSource) {
	tickSource.Store(&registeredSource{src})
}

func currentTickSource() TickSource {
	r := tickSource.Load()
	if r == nil {
		asyncs.Fatal(asyncs.ErrNoClock)
	}
	return r.TickSource
}

// TickInstant is the variant backed by a [TickSource].
//
// It counts ticks, so its resolution is one tick: a duration added to it is
// truncated to a whole number of ticks. Arithmetic saturates at zero and at
// the largest tick count.
type TickInstant struct {
	ticks uint64
}

var _ Interface[TickInstant] = TickInstant{}

// Now reads the registered counter.
func (TickInstant) Now() TickInstant {
	return TickInstant{ticks: currentTickSource().Ticks()}
}

// Add returns the instant d after t.
func (t TickInstant) Add(d time.Duration) TickInstant {
	if d < 0 {
		return t.sub(negate(d))
	}
	return t.add(uint64(d))
}

// Sub returns the instant d before t.
func (t TickInstant) Sub(d time.Duration) TickInstant {
	if d < 0 {
		return t.add(negate(d))
	}
	return t.sub(uint64(d))
}

func (t TickInstant) add(ns uint64) TickInstant {
	n := durationToTicks(ns, currentTickSource().Frequency())
	sum, carry := bits.Add64(t.ticks, n, 0)
	if carry != 0 {
		sum = math.MaxUint64
	}
	return TickInstant{ticks: sum}
}

func (t TickInstant) sub(ns uint64) TickInstant {
	n := durationToTicks(ns, currentTickSource().Frequency())
	diff, borrow := bits.Sub64(t.ticks, n, 0)
	if borrow != 0 {
		diff = 0
	}
	return TickInstant{ticks: diff}
}

// CheckedDurationUntil returns later minus t, or false if later is before t.
func (t TickInstant) CheckedDurationUntil(later TickInstant) (time.Duration, bool) {
	if later.ticks < t.ticks {
		return 0, false
	}
	return ticksToDuration(later.ticks-t.ticks, currentTickSource().Frequency()), true
}

// CheckedDurationSince returns t minus earlier, or false if earlier is
// after t.
func (t TickInstant) CheckedDurationSince(earlier TickInstant) (time.Duration, bool) {
	return earlier.CheckedDurationUntil(t)
}

// Compare compares t with other.
func (t TickInstant) Compare(other TickInstant) int {
	return cmp.Compare(t.ticks, other.ticks)
}

// String formats t as a tick count.
func (t TickInstant) String() string {
	return strconv.FormatUint(t.ticks, 10) + " ticks"
}

func negate(d time.Duration) uint64 {
	return uint64(-(d + 1)) + 1
}

func durationToTicks(ns, freq uint64) uint64 {
	hi, lo := bits.Mul64(ns, freq)
	if hi >= uint64(time.Second) {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, uint64(time.Second))
	return q
}

func ticksToDuration(n, freq uint64) time.Duration {
	hi, lo := bits.Mul64(n, uint64(time.Second))
	if hi >= freq {
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, freq)
	if q > math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(q)
}

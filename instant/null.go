package instant

import (
	"time"

	"github.com/b97tsk/asyncs"
)

// NullInstant is the variant of builds without a clock. Every operation is
// a fatal error (see [asyncs.Fatal]), so that code depending on time by
// accident fails at first use instead of working with made-up timestamps.
type NullInstant struct{}

var _ Interface[NullInstant] = NullInstant{}

func noClock() {
	asyncs.Fatal(asyncs.ErrNoClock)
}

func (NullInstant) Now() NullInstant {
	noClock()
	return NullInstant{}
}

func (NullInstant) Add(time.Duration) NullInstant {
	noClock()
	return NullInstant{}
}

func (NullInstant) Sub(time.Duration) NullInstant {
	noClock()
	return NullInstant{}
}

func (NullInstant) CheckedDurationUntil(NullInstant) (time.Duration, bool) {
	noClock()
	return 0, false
}

func (NullInstant) CheckedDurationSince(NullInstant) (time.Duration, bool) {
	noClock()
	return 0, false
}

func (NullInstant) Compare(NullInstant) int {
	noClock()
	return 0
}

func (NullInstant) String() string {
	return "instant(no clock)"
}

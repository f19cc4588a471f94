// Package clock provides the repeating timers that drive scoring and fuel
// spawns. Elapsed time is accumulated as a time.Duration so that the number
// of completed periods does not depend on how a span of simulation time is
// split into ticks.
package clock

import (
	"math"
	"time"
)

// Slack absorbs float32 rounding in tick deltas: a period completes once the
// accumulated time is within Slack of it.
const Slack = time.Microsecond

// Seconds converts a tick delta in seconds to a Duration, rounded to the
// nearest nanosecond. Negative and NaN inputs map to zero.
func Seconds(s float32) time.Duration {
	if !(s > 0) {
		return 0
	}
	return time.Duration(math.Round(float64(s) * float64(time.Second)))
}

// Rate returns the period of something that happens perSecond times a
// second, computed in float64. A non-positive rate yields zero.
func Rate(perSecond float32) time.Duration {
	if !(perSecond > 0) {
		return 0
	}
	return time.Duration(math.Round(float64(time.Second) / float64(perSecond)))
}

// Timer is a repeating timer. Each call to Tick advances it and reports how
// many full periods completed during that tick; the remainder carries over.
type Timer struct {
	period   time.Duration
	elapsed  time.Duration
	finished uint64
	total    uint64
}

// NewTimer creates a repeating timer with the given period. A non-positive
// period yields a timer that never fires.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by dt and returns the number of periods that
// completed.
func (t *Timer) Tick(dt time.Duration) uint64 {
	t.finished = 0
	if t.period <= 0 || dt <= 0 {
		return 0
	}

	t.elapsed += dt
	if t.elapsed+Slack >= t.period {
		n := (t.elapsed + Slack) / t.period
		t.elapsed -= n * t.period
		if t.elapsed < 0 {
			t.elapsed = 0
		}
		t.finished = uint64(n)
		t.total += t.finished
	}
	return t.finished
}

// JustFinished reports whether the last Tick completed at least one period.
func (t *Timer) JustFinished() bool {
	return t.finished > 0
}

// TimesFinished returns the number of periods completed by the last Tick.
func (t *Timer) TimesFinished() uint64 {
	return t.finished
}

// Total returns the number of periods completed since creation or Reset.
func (t *Timer) Total() uint64 {
	return t.total
}

// Elapsed returns the time accumulated towards the next period.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left until the next period completes.
func (t *Timer) Remaining() time.Duration {
	if t.period <= 0 {
		return 0
	}
	return t.period - t.elapsed
}

// Period returns the timer's period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Reset clears all accumulated time and counters.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = 0
	t.total = 0
}

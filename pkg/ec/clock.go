package ec

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake so the
// current-year validation bound is deterministic.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used for year validation. Pass nil to
// reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// CurrentYear returns the calendar year of the package clock, in UTC.
// The portal has no data past the current year, so it is the upper bound
// for every year parameter.
func CurrentYear() int {
	return clock.Now().UTC().Year()
}

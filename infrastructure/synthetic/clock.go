package synthetic

import (
	"time"

	"mhtrends-backend/application/ports"
)

// SystemClock reads the wall clock in a fixed location
type SystemClock struct {
	loc *time.Location
}

var _ ports.Clock = SystemClock{}

// NewSystemClock creates a clock reporting time in loc; nil means time.Local
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return SystemClock{loc: loc}
}

// Now returns the current time
func (c SystemClock) Now() time.Time {
	if c.loc == nil {
		return time.Now()
	}
	return time.Now().In(c.loc)
}

// FixedClock always reports the same instant. It is meant for tests that
// need a deterministic "today".
type FixedClock time.Time

var _ ports.Clock = FixedClock{}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Package clock provides the wall clock used to decide the current day.
package clock

import "time"

// System reports the current time in a fixed location.
type System struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock for loc. A nil loc means UTC.
func New(loc *time.Location) *System {
	if loc == nil {
		loc = time.UTC
	}

	return &System{loc: loc, now: time.Now}
}

// Now returns the current time in the clock's location.
func (c *System) Now() time.Time {
	return c.now().In(c.loc)
}

// Location returns the clock's location.
func (c *System) Location() *time.Location {
	return c.loc
}

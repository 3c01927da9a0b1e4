// Package system adapts process-level facilities to the core ports.
package system

import "time"

// Clock implements ports.Clock with the wall clock in UTC.
type Clock struct{}

func NewClock() Clock {
	return Clock{}
}

// Now returns the current time in UTC truncated to microseconds, the precision the
// database keeps.
func (Clock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

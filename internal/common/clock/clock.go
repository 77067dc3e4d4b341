// Package clock lets game timestamps and Hall of Fame durations be fixed in tests.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/kostka/internal/common/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// New returns the wall clock
func New() *System {
	return &System{}
}

// Now returns the current time in UTC so stored games compare equal after a JSON round trip
func (c *System) Now() time.Time {
	return time.Now().UTC()
}

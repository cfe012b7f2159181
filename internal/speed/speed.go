// Package speed holds the linear speed ramp: every food eaten shortens the
// interval between snake moves until it reaches a floor.
package speed

import "time"

const (
	Initial = 180 * time.Millisecond
	Step    = 6 * time.Millisecond
	Min     = 60 * time.Millisecond
)

// Tighten returns the interval to use after a food is eaten.
func Tighten(cur time.Duration) time.Duration {
	return max(Min, cur-Step)
}

// TicksPerSecond converts an interval to moves per second.
func TicksPerSecond(interval time.Duration) float64 {
	if interval <= 0 {
		return 0
	}
	return float64(time.Second) / float64(interval)
}

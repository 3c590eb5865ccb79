package stopwatch

import "time"

// Clock provides a testable time source. The shell captures one instant per
// command from a Clock and passes it into the engine; the engine itself
// never reads a clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now, whose values
// carry a monotonic reading.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

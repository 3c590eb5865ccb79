// Package stopwatch implements the elapsed-time engine: one counter, a
// running flag, and operations that either fully commit or fully reject.
// Every operation takes the caller's captured "now" so that a check and its
// commit always see the same instant.
package stopwatch

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrRunning is returned by StartAt on a running stopwatch.
	ErrRunning = errors.New("stopwatch is already running")
	// ErrStopped is returned by StopAt on a stopped stopwatch.
	ErrStopped = errors.New("stopwatch is already stopped")
	// ErrOverflow is returned when an operation would push the elapsed time
	// past the largest representable duration. The stopwatch is left
	// untouched.
	ErrOverflow = errors.New("elapsed time would overflow")
)

// Stopwatch measures and accumulates time between starts and stops. The
// zero value is stopped with zero elapsed time, but use New so the caller
// holds a pointer.
type Stopwatch struct {
	// elapsed excludes the currently running interval
	elapsed time.Duration
	start   time.Time
	running bool
}

// New returns a stopped stopwatch with zero elapsed time.
func New() *Stopwatch { return &Stopwatch{} }

// NewStartedAt returns a running stopwatch whose interval began at now.
func NewStartedAt(now time.Time) *Stopwatch {
	return &Stopwatch{start: now, running: true}
}

// IsRunning reports whether the stopwatch is measuring.
func (s *Stopwatch) IsRunning() bool { return s.running }

// StartAt begins measuring at now. Fails with ErrRunning if already
// started.
func (s *Stopwatch) StartAt(now time.Time) error {
	if s.running {
		return ErrRunning
	}
	s.start = now
	s.running = true
	return nil
}

// StopAt commits the interval since the last start into the elapsed time.
// Fails with ErrStopped if not running, or ErrOverflow if the committed
// total would not be representable; on failure the stopwatch is unchanged
// and keeps running.
func (s *Stopwatch) StopAt(now time.Time) error {
	if !s.running {
		return ErrStopped
	}
	total, ok := addChecked(s.elapsed, now.Sub(s.start))
	if !ok {
		return ErrOverflow
	}
	s.elapsed = total
	s.start = time.Time{}
	s.running = false
	return nil
}

// ToggleAt starts a stopped stopwatch or stops a running one.
func (s *Stopwatch) ToggleAt(now time.Time) error {
	if s.running {
		return s.StopAt(now)
	}
	return s.StartAt(now)
}

// Reset stops the stopwatch and zeroes the elapsed time. Never fails.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.start = time.Time{}
	s.running = false
}

// ElapsedAt returns the effective elapsed time at now without mutating
// state. While running, an interval that cannot be represented fails the
// read only; the stopwatch itself keeps running.
func (s *Stopwatch) ElapsedAt(now time.Time) (time.Duration, error) {
	if !s.running {
		return s.elapsed, nil
	}
	total, ok := addChecked(s.elapsed, now.Sub(s.start))
	if !ok {
		return 0, ErrOverflow
	}
	return total, nil
}

// SetAt replaces the elapsed time. A running stopwatch keeps running with
// its current interval rebased to begin at now. Never fails; the input was
// range-checked by the parser.
func (s *Stopwatch) SetAt(d time.Duration, now time.Time) {
	s.elapsed = d
	if s.running {
		s.start = now
	}
}

// OffsetAt shifts the effective elapsed time at now by delta, which may be
// negative. A result below zero is clamped to zero and reported through
// clamped; a result above the representable range fails with ErrOverflow
// and leaves the stopwatch unchanged. On success a running stopwatch is
// rebased to now.
func (s *Stopwatch) OffsetAt(delta time.Duration, now time.Time) (clamped bool, err error) {
	eff, err := s.ElapsedAt(now)
	if err != nil {
		return false, err
	}
	var candidate time.Duration
	if delta >= 0 {
		var ok bool
		candidate, ok = addChecked(eff, delta)
		if !ok {
			return false, ErrOverflow
		}
	} else {
		// eff >= 0, so adding a negative delta cannot wrap
		candidate = eff + delta
		if candidate < 0 {
			candidate = 0
			clamped = true
		}
	}
	s.elapsed = candidate
	if s.running {
		s.start = now
	}
	return clamped, nil
}

func addChecked(a, b time.Duration) (time.Duration, bool) {
	// a and b are never negative here
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

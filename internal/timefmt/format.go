package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// Style selects how Format renders a duration.
type Style int

const (
	// StylePlain renders "H:MM:SS" plus optional subsecond digits. Plain
	// output parses back through Parse to the same duration, modulo the
	// precision truncation.
	StylePlain Style = iota
	// StyleCues renders the same digits with unit markers, e.g.
	// "1h 02m 03.45s".
	StyleCues
)

// MaxPrecision is the largest number of subsecond digits Format renders
// (nanosecond resolution).
const MaxPrecision = 9

// Format renders d with prec subsecond digits in the given style. Subsecond
// digits are truncated, not rounded, so a display never reads ahead of the
// stopwatch. prec is clamped to [0, MaxPrecision]. Pure function.
func Format(d time.Duration, prec int, style Style) string {
	if prec < 0 {
		prec = 0
	}
	if prec > MaxPrecision {
		prec = MaxPrecision
	}

	neg := d < 0
	mag := uint64(d)
	if neg {
		mag = -mag
	}

	nanos := mag % nanosPerSec
	secs := mag / nanosPerSec
	h := secs / secPerHour
	m := secs % secPerHour / secPerMin
	sec := secs % secPerMin

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if style == StyleCues {
		fmt.Fprintf(&b, "%dh %02dm %02d", h, m, sec)
	} else {
		fmt.Fprintf(&b, "%d:%02d:%02d", h, m, sec)
	}
	if prec > 0 {
		fmt.Fprintf(&b, ".%0*d", prec, nanos/pow10(uint(MaxPrecision-prec)))
	}
	if style == StyleCues {
		b.WriteByte('s')
	}
	return b.String()
}

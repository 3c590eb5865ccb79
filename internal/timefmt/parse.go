// Package timefmt parses and formats signed durations for the stopwatch.
//
// Two input grammars are recognised, picked by whether the text contains a
// colon: a unit form ("1.5m", "90 s") and a stopwatch form ("1:30:00.25",
// ":5", "-:5:"). All arithmetic is checked integer math; values that do not
// fit a time.Duration are reported as overflow, never wrapped.
package timefmt

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	nanosPerSec = uint64(time.Second)
	secPerMin   = 60
	secPerHour  = 3600

	maxNanos = uint64(math.MaxInt64)

	unitHint = "use 's' for seconds, 'm' for minutes, and 'h' for hours"
)

// Parse converts free-form duration text into a time.Duration. Input with a
// colon uses the stopwatch grammar, anything else the unit grammar. Failures
// are always a *ParseError.
func Parse(input string) (time.Duration, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, &ParseError{
			Kind:  KindSyntax,
			Input: input,
			Msg:   "empty duration",
			Hint:  `give a number with a unit ("1.5m") or a stopwatch time ("1:30")`,
		}
	}
	if strings.ContainsRune(s, ':') {
		return parseClock(input, s)
	}
	return parseUnit(input, s)
}

// ParseNonNegative is Parse for callers that cannot accept a negative
// duration, such as setting the elapsed time directly.
func ParseNonNegative(input string) (time.Duration, error) {
	d, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, &ParseError{
			Kind:  KindNegative,
			Input: input,
			Msg:   "a negative duration is not allowed here",
		}
	}
	return d, nil
}

// parseUnit handles "[ws] number [ws] unit [ws]" with unit one of s, m, h.
func parseUnit(input, s string) (time.Duration, error) {
	last, size := utf8.DecodeLastRuneInString(s)

	var secPerUnit uint64
	var unitName string
	switch last {
	case 's':
		secPerUnit, unitName = 1, "seconds"
	case 'm':
		secPerUnit, unitName = secPerMin, "minutes"
	case 'h':
		secPerUnit, unitName = secPerHour, "hours"
	default:
		if unicode.IsDigit(last) || last == '.' {
			return 0, &ParseError{Kind: KindSyntax, Input: input, Msg: "missing unit", Hint: unitHint}
		}
		return 0, &ParseError{
			Kind:  KindSyntax,
			Input: input,
			Msg:   fmt.Sprintf("unrecognised unit %q", last),
			Hint:  unitHint,
		}
	}

	num := strings.TrimSpace(s[:len(s)-size])
	if num == "" {
		return 0, &ParseError{
			Kind:  KindSyntax,
			Input: input,
			Msg:   "unit given, but missing value",
			Hint:  "expected the number of " + unitName,
		}
	}

	neg := false
	switch num[0] {
	case '+':
		num = num[1:]
	case '-':
		neg = true
		num = num[1:]
	}

	intPart, fracPart, _ := strings.Cut(num, ".")
	if !isDigits(intPart) || !isDigits(fracPart) || (intPart == "" && fracPart == "") {
		return 0, &ParseError{
			Kind:  KindSyntax,
			Input: input,
			Msg:   fmt.Sprintf("invalid number %q", num),
			Hint:  "expected the number of " + unitName,
		}
	}

	scale := secPerUnit * nanosPerSec

	var total uint64
	if intPart != "" {
		v, err := strconv.ParseUint(intPart, 10, 64)
		if err != nil {
			// digits are pre-checked, only range errors remain
			return 0, overflowErr(input, unitName)
		}
		hi, lo := bits.Mul64(v, scale)
		if hi != 0 {
			return 0, overflowErr(input, unitName)
		}
		total = lo
	}
	if fracPart != "" {
		var ok bool
		total, ok = addU64(total, fracNanos(fracPart, scale))
		if !ok {
			return 0, overflowErr(input, unitName)
		}
	}
	if total > maxNanos {
		return 0, overflowErr(input, unitName)
	}

	d := time.Duration(total)
	if neg {
		d = -d
	}
	return d, nil
}

// parseClock handles "[sign][hours]:[minutes]:[seconds][.subseconds]".
// Fields are assigned right to left, so ":5" and "::5" are both five
// seconds and ":5:" is five minutes. Minute and second fields over 59 are
// folded into the total rather than rejected.
func parseClock(input, s string) (time.Duration, error) {
	neg := false
	switch s[0] {
	case '+':
		s = strings.TrimSpace(s[1:])
	case '-':
		neg = true
		s = strings.TrimSpace(s[1:])
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, &ParseError{
			Kind:  KindSyntax,
			Input: input,
			Msg:   "unexpected colon",
			Hint:  "there is no colon before hours",
		}
	}

	var hours, mins string
	secs := strings.TrimSpace(parts[len(parts)-1])
	if len(parts) >= 2 {
		mins = strings.TrimSpace(parts[len(parts)-2])
	}
	if len(parts) == 3 {
		hours = strings.TrimSpace(parts[0])
	}

	if strings.Contains(hours, ".") || strings.Contains(mins, ".") {
		return 0, &ParseError{
			Kind:  KindSyntax,
			Input: input,
			Msg:   "unexpected decimal point",
			Hint:  "only the seconds field can have fractional values",
		}
	}

	secInt, secFrac, _ := strings.Cut(secs, ".")
	secInt = strings.TrimSpace(secInt)
	secFrac = strings.TrimSpace(secFrac)
	if strings.Contains(secFrac, ".") {
		return 0, &ParseError{
			Kind:  KindSyntax,
			Input: input,
			Msg:   "unexpected decimal point",
			Hint:  "a decimal point was already given for subseconds",
		}
	}

	var total uint64
	for _, field := range []struct {
		digits     string
		what       string
		secPerUnit uint64
	}{
		{hours, "hours", secPerHour},
		{mins, "minutes", secPerMin},
		{secInt, "seconds", 1},
	} {
		if field.digits == "" {
			continue
		}
		if !isDigits(field.digits) {
			return 0, &ParseError{
				Kind:  KindSyntax,
				Input: input,
				Msg:   fmt.Sprintf("invalid %s %q", field.what, field.digits),
				Hint:  field.what + " are parsed as an integer",
			}
		}
		v, err := strconv.ParseUint(field.digits, 10, 64)
		if err != nil {
			return 0, overflowErr(input, field.what)
		}
		hi, lo := bits.Mul64(v, field.secPerUnit*nanosPerSec)
		if hi != 0 {
			return 0, overflowErr(input, field.what)
		}
		var ok bool
		total, ok = addU64(total, lo)
		if !ok {
			return 0, overflowErr(input, field.what)
		}
	}

	if secFrac != "" {
		if !isDigits(secFrac) {
			return 0, &ParseError{
				Kind:  KindSyntax,
				Input: input,
				Msg:   fmt.Sprintf("invalid subseconds %q", secFrac),
				Hint:  "subseconds are parsed as digits",
			}
		}
		// nanosecond resolution; further digits truncate
		if len(secFrac) > 9 {
			secFrac = secFrac[:9]
		}
		v, _ := strconv.ParseUint(secFrac, 10, 64)
		v *= pow10(uint(9 - len(secFrac)))
		var ok bool
		total, ok = addU64(total, v)
		if !ok {
			return 0, overflowErr(input, "subseconds")
		}
	}

	if total > maxNanos {
		return 0, overflowErr(input, "seconds")
	}

	d := time.Duration(total)
	if neg {
		d = -d
	}
	return d, nil
}

// fracNanos converts a fractional digit run to nanoseconds at the given
// scale (nanoseconds per unit), truncating precision the scale cannot
// represent.
func fracNanos(frac string, scale uint64) uint64 {
	// the 14th digit contributes under a nanosecond even at the hour scale
	const maxDigits = 13
	if len(frac) > maxDigits {
		frac = frac[:maxDigits]
	}
	num, _ := strconv.ParseUint(frac, 10, 64) // digits pre-checked
	den := pow10(uint(len(frac)))

	// num < den and den*scale < 2^64 * den, so the 128-bit quotient always
	// fits and Div64 cannot trap.
	hi, lo := bits.Mul64(num, scale)
	quo, _ := bits.Div64(hi, lo, den)
	return quo
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func pow10(n uint) uint64 {
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

func addU64(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum >= a
}

package timefmt

import (
	"math"
	"testing"
	"time"
)

func TestFormatPlain(t *testing.T) {
	cases := []struct {
		d    time.Duration
		prec int
		want string
	}{
		{0, 2, "0:00:00.00"},
		{0, 0, "0:00:00"},
		{5 * time.Second, 0, "0:00:05"},
		{time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond, 2, "1:02:03.45"},
		{-5 * time.Second, 0, "-0:00:05"},
		{-90 * time.Second, 2, "-0:01:30.00"},
		{26 * time.Hour, 0, "26:00:00"},
		{time.Duration(math.MaxInt64), 9, "2562047:47:16.854775807"},
		// subsecond digits truncate, never round up
		{999999999 * time.Nanosecond, 2, "0:00:00.99"},
		// out-of-range precision clamps
		{time.Second, 12, "0:00:01.000000000"},
		{time.Second, -3, "0:00:01"},
	}
	for _, tc := range cases {
		if got := Format(tc.d, tc.prec, StylePlain); got != tc.want {
			t.Errorf("Format(%v, %d, plain) = %q, want %q", tc.d, tc.prec, got, tc.want)
		}
	}
}

func TestFormatCues(t *testing.T) {
	cases := []struct {
		d    time.Duration
		prec int
		want string
	}{
		{0, 2, "0h 00m 00.00s"},
		{time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond, 2, "1h 02m 03.45s"},
		{5 * time.Second, 0, "0h 00m 05s"},
		{-90 * time.Second, 1, "-0h 01m 30.0s"},
	}
	for _, tc := range cases {
		if got := Format(tc.d, tc.prec, StyleCues); got != tc.want {
			t.Errorf("Format(%v, %d, cues) = %q, want %q", tc.d, tc.prec, got, tc.want)
		}
	}
}

// Plain output must parse back to the same duration, modulo the precision
// truncation.
func TestFormatParseRoundTrip(t *testing.T) {
	durs := []time.Duration{
		0,
		time.Nanosecond,
		123456789 * time.Nanosecond,
		5 * time.Second,
		-90 * time.Second,
		time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond,
		26*time.Hour + 59*time.Minute + 59*time.Second + 999999999*time.Nanosecond,
		time.Duration(math.MaxInt64) - 1,
		time.Duration(math.MaxInt64),
	}
	for _, d := range durs {
		for _, prec := range []int{0, 2, 9} {
			s := Format(d, prec, StylePlain)
			got, err := Parse(s)
			if err != nil {
				t.Errorf("Parse(Format(%v, %d)) = Parse(%q) failed: %v", d, prec, s, err)
				continue
			}
			scale := time.Duration(pow10(uint(MaxPrecision - prec)))
			want := d / scale * scale // truncates toward zero, matching Format
			if got != want {
				t.Errorf("round trip %v at prec %d: %q -> %v, want %v", d, prec, s, got, want)
			}
		}
	}
}

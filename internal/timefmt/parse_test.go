package timefmt

import (
	"math"
	"testing"
	"time"
)

func TestParseUnitFormat(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"1s", time.Second},
		{" 1s", time.Second},
		{"1s ", time.Second},
		{"1 s", time.Second},
		{"1. s", time.Second},
		{".5s", 500 * time.Millisecond},
		{"0.2s", 200 * time.Millisecond},
		{"90 m", 90 * time.Minute},
		{"+2h", 2 * time.Hour},
		{"-1.5m", -90 * time.Second},
		{"0.5 h", 30 * time.Minute},
		{"0s", 0},
		{"-0s", 0},
		{"1.000000001s", time.Second + time.Nanosecond},
		// digits beyond the unit's resolution truncate instead of erroring
		{"0.0000000005h", 1800 * time.Nanosecond},
		{"0.9999999999999999s", 999999999 * time.Nanosecond},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseUnitFormatSyntaxErrors(t *testing.T) {
	cases := []string{"", "   ", "5", "1.", "1x", "s", "m", "h", "1.2.3s", "- s", "1 0s", "--1s"}
	// "5" and "1." end in a digit or dot, so they read as a missing unit
	for _, in := range cases {
		_, err := Parse(in)
		if !IsKind(err, KindSyntax) {
			t.Errorf("Parse(%q) = %v, want syntax error", in, err)
		}
	}
}

func TestParseUnitFormatOverflow(t *testing.T) {
	cases := []string{
		"9999999999h",
		"99999999999999999999s",
		"2562048h", // one hour past the representable range
		"-2562048h",
	}
	for _, in := range cases {
		_, err := Parse(in)
		if !IsKind(err, KindOverflow) {
			t.Errorf("Parse(%q) = %v, want overflow error", in, err)
		}
	}

	// the largest whole-hour value still fits
	if d, err := Parse("2562047h"); err != nil || d != 2562047*time.Hour {
		t.Errorf("Parse(2562047h) = %v, %v", d, err)
	}
}

func TestParseClockFieldsAssignRightToLeft(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"::5", 5 * time.Second},
		{":5", 5 * time.Second},
		{"0:5", 5 * time.Second},
		{"0:0:5", 5 * time.Second},
		{":0:5", 5 * time.Second},
		{":5:", 5 * time.Minute},
		{"3:", 3 * time.Minute},
		{":3:0", 3 * time.Minute},
		{"0:3:", 3 * time.Minute},
		{":.6", 600 * time.Millisecond},
		{"::.6", 600 * time.Millisecond},
		{"1::1.1", time.Hour + 1100*time.Millisecond},
		{"-:5", -5 * time.Second},
		{"+:5", 5 * time.Second},
		{"1:2:3", time.Hour + 2*time.Minute + 3*time.Second},
		{" 1 : 02 : 03.5 ", time.Hour + 2*time.Minute + 3*time.Second + 500*time.Millisecond},
		{"- :5", -5 * time.Second},
		{"::", 0},
		{":", 0},
		{"-::", 0},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseClockLenientFields(t *testing.T) {
	// minute and second fields over 59 fold into the total
	cases := []struct {
		in   string
		want time.Duration
	}{
		{":90", 90 * time.Second},
		{"90:", 90 * time.Minute},
		{"1:90:90", time.Hour + 90*time.Minute + 90*time.Second},
		// subsecond digits past nanosecond precision truncate
		{"::1.123456789123", time.Second + 123456789*time.Nanosecond},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseClockSyntaxErrors(t *testing.T) {
	cases := []string{
		"1:2:3:4",
		"1.5:0:0",
		":5.5:",
		"::5..5",
		"1:-2:3",
		"::x",
		"1 2::",
	}
	for _, in := range cases {
		_, err := Parse(in)
		if !IsKind(err, KindSyntax) {
			t.Errorf("Parse(%q) = %v, want syntax error", in, err)
		}
	}
}

func TestParseClockOverflow(t *testing.T) {
	// math.MaxInt64 nanoseconds is 2562047:47:16.854775807
	max := "2562047:47:16.854775807"
	d, err := Parse(max)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", max, err)
	}
	if d != time.Duration(math.MaxInt64) {
		t.Errorf("Parse(%q) = %d, want %d", max, d, int64(math.MaxInt64))
	}

	over := []string{
		"2562047:47:16.854775808",
		"2562047:47:17",
		"2562048::",
		"999999999999:0:0",
	}
	for _, in := range over {
		_, err := Parse(in)
		if !IsKind(err, KindOverflow) {
			t.Errorf("Parse(%q) = %v, want overflow error", in, err)
		}
	}
}

func TestParseNonNegative(t *testing.T) {
	if _, err := ParseNonNegative("-5s"); !IsKind(err, KindNegative) {
		t.Errorf("ParseNonNegative(-5s) = %v, want negative error", err)
	}
	if _, err := ParseNonNegative("-:5"); !IsKind(err, KindNegative) {
		t.Errorf("ParseNonNegative(-:5) = %v, want negative error", err)
	}
	if d, err := ParseNonNegative("5s"); err != nil || d != 5*time.Second {
		t.Errorf("ParseNonNegative(5s) = %v, %v", d, err)
	}
	// negative zero is still zero
	if d, err := ParseNonNegative("-0s"); err != nil || d != 0 {
		t.Errorf("ParseNonNegative(-0s) = %v, %v", d, err)
	}
}

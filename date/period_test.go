package date

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in   string
		want Period
	}{
		{"year", Yearly},
		{"yearly", Yearly},
		{"quarter", Quarterly},
		{"Quarterly", Quarterly},
		{" month ", Monthly},
		{"week", Weekly},
		{"day", Daily},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if err != nil || got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
			}
		})
	}
	for _, in := range []string{"decade", "", "q"} {
		if _, err := ParsePeriod(in); err == nil {
			t.Errorf("ParsePeriod(%q) should fail", in)
		}
	}
}

func TestPeriod_Noun(t *testing.T) {
	for _, p := range Periods {
		got, err := ParsePeriod(p.Noun())
		if err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", p.Noun(), got, err, p)
		}
	}
	if got := Period(42).String(); got != "Period(42)" {
		t.Errorf("Period(42).String() = %q", got)
	}
}

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		on     Date
		period Period
		want   Range
	}{
		{"day", New(2025, time.March, 31), Daily, Range{New(2025, time.March, 31), New(2025, time.March, 31)}},
		{"week across months", New(2025, time.April, 2), Weekly, Range{New(2025, time.March, 31), New(2025, time.April, 6)}},
		{"sunday ends the week", New(2025, time.April, 6), Weekly, Range{New(2025, time.March, 31), New(2025, time.April, 6)}},
		{"leap february", New(2024, time.February, 10), Monthly, Range{New(2024, time.February, 1), New(2024, time.February, 29)}},
		{"first quarter", New(2025, time.February, 1), Quarterly, Range{New(2025, time.January, 1), New(2025, time.March, 31)}},
		{"last quarter", New(2025, time.December, 31), Quarterly, Range{New(2025, time.October, 1), New(2025, time.December, 31)}},
		{"year", New(2025, time.June, 30), Yearly, Range{New(2025, time.January, 1), New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.on, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", tc.on, tc.period, got, tc.want)
			}
		})
	}
}

// Dividends are totalled per period with Contains, boundaries matter.
func TestRange_Contains(t *testing.T) {
	q1 := NewRange(New(2025, time.February, 1), Quarterly)
	year := NewRange(New(2025, time.June, 30), Yearly)
	testCases := []struct {
		name string
		r    Range
		d    Date
		want bool
	}{
		{"first day of quarter", q1, New(2025, time.January, 1), true},
		{"last day of quarter", q1, New(2025, time.March, 31), true},
		{"first day of next quarter", q1, New(2025, time.April, 1), false},
		{"last day of previous year", q1, New(2024, time.December, 31), false},
		{"new year's eve", year, New(2025, time.December, 31), true},
		{"new year's day", year, New(2026, time.January, 1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.d); got != tc.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tc.r, tc.d, got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"day", NewRange(New(2025, time.September, 8), Daily), "2025-09-08"},
		{"week", NewRange(New(2025, time.September, 10), Weekly), "2025-W37"},
		{"week in the next iso year", NewRange(New(2024, time.December, 31), Weekly), "2025-W01"},
		{"quarter", NewRange(New(2025, time.August, 15), Quarterly), "2025-Q3"},
		{"year", NewRange(New(2025, time.August, 15), Yearly), "2025"},
		{"two years", Range{New(2025, time.January, 1), New(2026, time.December, 31)}, "2025-01-01_2026-12-31"},
		{"part of a month", Range{New(2025, time.September, 2), New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

// Monthly dividend buckets are keyed and sorted by this identifier.
func TestRange_MonthlyIdentifier(t *testing.T) {
	testCases := []struct {
		on   Date
		want string
	}{
		{New(2025, time.January, 1), "2025-01"},
		{New(2025, time.January, 31), "2025-01"},
		{New(2024, time.February, 29), "2024-02"},
		{New(2025, time.December, 31), "2025-12"},
	}
	for _, tc := range testCases {
		got := NewRange(tc.on, Monthly).Identifier()
		if got != tc.want {
			t.Errorf("monthly identifier of %v = %q, want %q", tc.on, got, tc.want)
		}
	}
	if a, b := NewRange(New(2024, time.December, 5), Monthly).Identifier(), NewRange(New(2025, time.January, 5), Monthly).Identifier(); a >= b {
		t.Errorf("monthly identifiers do not sort by date: %q >= %q", a, b)
	}
}

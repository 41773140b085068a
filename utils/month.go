package utils

import (
	"fmt"
	"time"
)

// MonthLayout is the YYYY-MM label format used for projection months.
const MonthLayout = "2006-01"

// ParseMonth parses a YYYY-MM label into the first day of that month (UTC).
func ParseMonth(label string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month label %q: want YYYY-MM", label)
	}
	return t, nil
}

// AddMonths shifts a YYYY-MM label by n months. n may be negative.
func AddMonths(label string, n int) (string, error) {
	t, err := ParseMonth(label)
	if err != nil {
		return "", err
	}
	// day is always 1, so AddDate never normalises into the following month
	return t.AddDate(0, n, 0).Format(MonthLayout), nil
}

// MonthsBetween returns the number of whole months from a to b.
func MonthsBetween(a, b string) (int, error) {
	ta, err := ParseMonth(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseMonth(b)
	if err != nil {
		return 0, err
	}
	return (tb.Year()-ta.Year())*12 + int(tb.Month()) - int(ta.Month()), nil
}

// MonthLabels returns n consecutive labels starting at start.
func MonthLabels(start string, n int) ([]string, error) {
	if _, err := ParseMonth(start); err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		out[i], _ = AddMonths(start, i)
	}
	return out, nil
}

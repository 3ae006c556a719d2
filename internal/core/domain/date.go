package domain

import (
	"fmt"
	"time"
)

// KST is the civil calendar zone for all campaign schedule dates. Every
// date boundary in the platform is inclusive through 23:59:59 KST.
var KST = time.FixedZone("KST", 9*60*60)

// Date is a calendar date without a time component. The zero value means
// "not set" and acts as an open bound in interval checks.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD). An empty string
// parses to the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// TodayIn returns the KST civil date of the given instant.
func TodayIn(now time.Time) Date {
	return DateOf(now.In(KST))
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.time().Before(o.time())
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.time().After(o.time())
}

// AddDays returns the date n days after d, normalizing across month and
// year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

// String formats the date as YYYY-MM-DD. The zero date formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

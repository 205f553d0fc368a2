package internal

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DefaultPeriodDays is the pay period length used when nothing else is configured
const DefaultPeriodDays = 14

// PayPeriod is the half-open date range [Start, End) that bills are collected over.
// All fields derive from Start and LengthInDays; treat the value as immutable.
type PayPeriod struct {
	Start               time.Time
	End                 time.Time // exclusive
	LengthInDays        int
	IsCrossMonth        bool
	LastDayOfStartMonth int
}

// NewPayPeriod creates a pay period starting at the calendar date of start.
// Lengths reaching past the next month are accepted, but bill collection only
// catches up on missing month-end days once, at the first month boundary.
func NewPayPeriod(start time.Time, lengthInDays int) (PayPeriod, error) {
	if lengthInDays < 1 {
		return PayPeriod{}, fmt.Errorf("pay period length must be at least 1 day, got %d", lengthInDays)
	}

	start = toDate(start)
	end := start.AddDate(0, 0, lengthInDays)

	return PayPeriod{
		Start:               start,
		End:                 end,
		LengthInDays:        lengthInDays,
		IsCrossMonth:        start.Year() != end.Year() || start.Month() != end.Month(),
		LastDayOfStartMonth: DaysInMonth(start.Year(), start.Month()),
	}, nil
}

// DaysInMonth returns the number of days in the given month (28-31)
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// Contains returns true if t falls on a date in [Start, End)
func (p PayPeriod) Contains(t time.Time) bool {
	d := toDate(t)
	return !d.Before(p.Start) && d.Before(p.End)
}

// Days returns every calendar date in the period, in order
func (p PayPeriod) Days() []time.Time {
	days := make([]time.Time, 0, p.LengthInDays)
	for i := 0; i < p.LengthInDays; i++ {
		days = append(days, p.Start.AddDate(0, 0, i))
	}
	return days
}

// MonthBoundaries counts the month changes between the first and last day of the period
func (p PayPeriod) MonthBoundaries() int {
	last := p.End.AddDate(0, 0, -1)
	return (last.Year()-p.Start.Year())*12 + int(last.Month()) - int(p.Start.Month())
}

func (p PayPeriod) String() string {
	return p.Start.Format(dateLayout) + " - " + p.End.Format(dateLayout)
}

// toDate drops the time of day, keeping the calendar date as seen in t's location
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

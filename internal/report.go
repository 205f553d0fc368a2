package internal

import (
	"log/slog"
	"time"
)

// BuildReport works out which bills fall in the pay period starting at start,
// resolves the amounts of variable ones through r and returns the result.
// r may be nil when no bill is variable.
func BuildReport(bills []Bill, start time.Time, days int, r AmountResolver) (Report, error) {
	pp, err := NewPayPeriod(start, days)
	if err != nil {
		return Report{}, err
	}
	slog.Debug("pay period",
		"start", pp.Start.Format(dateLayout),
		"end", pp.End.Format(dateLayout),
		"cross_month", pp.IsCrossMonth,
		"last_day_of_start_month", pp.LastDayOfStartMonth)

	if pp.MonthBoundaries() > 1 {
		slog.Warn("pay period spans more than one month boundary; month-end catch-up only applies to the first",
			"days", pp.LengthInDays, "boundaries", pp.MonthBoundaries())
	}

	idx := NewDayIndex(bills)
	due := DueBillsInPeriod(idx, pp)
	slog.Debug("bills due", "count", len(due), "indexed", idx.Len())

	resolved, err := ResolveBills(due, r)
	if err != nil {
		return Report{}, err
	}
	return Report{Period: pp, Bills: resolved}, nil
}

package internal

import "log/slog"

// maxDayOfMonth is the highest day a bill can be declared on
const maxDayOfMonth = 31

// DueBillsInPeriod collects the bills charged within the pay period, in the order
// their dates occur. Bills sharing a day keep their index order.
//
// When the period crosses into the next month, bills declared on days the start
// month lacks (e.g. the 31st in November) are charged on the start month's last
// day, right before the next month's bills. This happens once per period; a second
// month boundary inside a very long period gets no such catch-up.
func DueBillsInPeriod(idx DayIndex, pp PayPeriod) []DueBill {
	var due []DueBill
	for i := 0; i < pp.LengthInDays; i++ {
		current := pp.Start.AddDate(0, 0, i)
		for _, b := range idx.On(current.Day()) {
			due = append(due, DueBill{Bill: b, Date: current})
		}

		if pp.IsCrossMonth && i < firstBoundaryOffset(pp) && current.Day() == pp.LastDayOfStartMonth {
			for day := pp.LastDayOfStartMonth + 1; day <= maxDayOfMonth; day++ {
				bills := idx.On(day)
				if len(bills) > 0 {
					slog.Debug("catching up month-end bills", "day", day, "date", current.Format(dateLayout), "count", len(bills))
				}
				for _, b := range bills {
					due = append(due, DueBill{Bill: b, Date: current, CatchUp: true})
				}
			}
		}
	}
	return due
}

// BillsInPeriod is DueBillsInPeriod without the due dates
func BillsInPeriod(idx DayIndex, pp PayPeriod) []Bill {
	due := DueBillsInPeriod(idx, pp)
	bills := make([]Bill, 0, len(due))
	for _, d := range due {
		bills = append(bills, d.Bill)
	}
	return bills
}

// firstBoundaryOffset is the offset of the first day of the month after Start
func firstBoundaryOffset(pp PayPeriod) int {
	return pp.LastDayOfStartMonth - pp.Start.Day() + 1
}

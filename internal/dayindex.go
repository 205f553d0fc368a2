package internal

import "slices"

// DayIndex groups bills by the day of month they are due.
// It is built once and read-only afterwards.
type DayIndex struct {
	byDay map[int][]Bill
	count int
}

// NewDayIndex builds an index from bills. Bills sharing a day keep their input order.
func NewDayIndex(bills []Bill) DayIndex {
	idx := DayIndex{byDay: make(map[int][]Bill)}
	for _, b := range bills {
		idx.byDay[b.DayOfMonth] = append(idx.byDay[b.DayOfMonth], b)
		idx.count++
	}
	return idx
}

// On returns the bills due on the given day of month. A day with no bills yields
// an empty slice; the index is never modified by lookups.
func (idx DayIndex) On(day int) []Bill {
	bills, ok := idx.byDay[day]
	if !ok {
		return []Bill{}
	}
	return bills
}

// Days returns the days that have at least one bill, ascending
func (idx DayIndex) Days() []int {
	days := make([]int, 0, len(idx.byDay))
	for d := range idx.byDay {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Len returns the total number of indexed bills
func (idx DayIndex) Len() int {
	return idx.count
}

package internal

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewPayPeriod(t *testing.T) {
	tests := []struct {
		name         string
		start        string
		days         int
		wantEnd      string
		wantCross    bool
		wantLastDay  int
		wantBoundary int
	}{
		{"mid month", "2021-11-12", 14, "2021-11-26", false, 30, 0},
		{"crosses month", "2021-11-26", 14, "2021-12-10", true, 30, 1},
		{"multiple months", "2021-11-26", 45, "2022-01-10", true, 30, 2},
		{"ends on first of next month", "2021-11-17", 14, "2021-12-01", true, 30, 0},
		{"crosses year", "2021-12-25", 14, "2022-01-08", true, 31, 1},
		{"february", "2022-02-20", 14, "2022-03-06", true, 28, 1},
		{"leap february", "2024-02-20", 14, "2024-03-05", true, 29, 1},
		{"single day", "2021-11-30", 1, "2021-12-01", true, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp, err := NewPayPeriod(date(tt.start), tt.days)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !pp.Start.Equal(date(tt.start)) {
				t.Errorf("Start = %s, want %s", pp.Start.Format(dateLayout), tt.start)
			}
			if !pp.End.Equal(date(tt.wantEnd)) {
				t.Errorf("End = %s, want %s", pp.End.Format(dateLayout), tt.wantEnd)
			}
			if pp.LengthInDays != tt.days {
				t.Errorf("LengthInDays = %d, want %d", pp.LengthInDays, tt.days)
			}
			if pp.IsCrossMonth != tt.wantCross {
				t.Errorf("IsCrossMonth = %v, want %v", pp.IsCrossMonth, tt.wantCross)
			}
			if pp.LastDayOfStartMonth != tt.wantLastDay {
				t.Errorf("LastDayOfStartMonth = %d, want %d", pp.LastDayOfStartMonth, tt.wantLastDay)
			}
			if pp.MonthBoundaries() != tt.wantBoundary {
				t.Errorf("MonthBoundaries() = %d, want %d", pp.MonthBoundaries(), tt.wantBoundary)
			}
		})
	}
}

func TestNewPayPeriod_InvalidLength(t *testing.T) {
	for _, days := range []int{0, -1} {
		if _, err := NewPayPeriod(date("2021-11-12"), days); err == nil {
			t.Errorf("expected error for length %d", days)
		}
	}
}

func TestNewPayPeriod_DropsTimeOfDay(t *testing.T) {
	start := time.Date(2021, time.November, 12, 23, 59, 0, 0, time.UTC)

	pp, err := NewPayPeriod(start, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pp.Start.Equal(date("2021-11-12")) {
		t.Errorf("Start = %v, want midnight 2021-11-12", pp.Start)
	}
	if !pp.End.Equal(date("2021-11-26")) {
		t.Errorf("End = %v, want 2021-11-26", pp.End)
	}
}

func TestPayPeriod_ContainsAndDays(t *testing.T) {
	pp, _ := NewPayPeriod(date("2021-11-26"), 14)

	if !pp.Contains(date("2021-11-26")) {
		t.Error("start date should be contained")
	}
	if !pp.Contains(date("2021-12-09")) {
		t.Error("last day should be contained")
	}
	if pp.Contains(date("2021-12-10")) {
		t.Error("end date is exclusive")
	}
	if pp.Contains(date("2021-11-25")) {
		t.Error("day before start should not be contained")
	}

	days := pp.Days()
	if len(days) != 14 {
		t.Fatalf("expected 14 days, got %d", len(days))
	}
	if !days[0].Equal(pp.Start) || !days[13].Equal(date("2021-12-09")) {
		t.Errorf("unexpected day range %s..%s", days[0].Format(dateLayout), days[13].Format(dateLayout))
	}
}

func TestPayPeriod_String(t *testing.T) {
	pp, _ := NewPayPeriod(date("2021-11-12"), 14)
	if got := pp.String(); got != "2021-11-12 - 2021-11-26" {
		t.Errorf("String() = %q", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2021, time.January, 31},
		{2021, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2021, time.April, 30},
		{2021, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2021-11-12"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseDate("12/11/2021"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

package internal

import (
	"fmt"
	"time"
)

// FrequencyMonthly is the only bill frequency supported. Bill files group their
// bills under this key.
const FrequencyMonthly = "monthly"

type Bill struct {
	DayOfMonth int    `validate:"min=1,max=31"` // not checked against the calendar; 31 means "end of month"
	Amount     *int   // nil means the amount varies and is asked for each period
	Name       string `validate:"required,notblank"`
}

// NewBill creates a bill with a fixed amount
func NewBill(day, amount int, name string) Bill {
	return Bill{DayOfMonth: day, Amount: &amount, Name: name}
}

// NewVariableBill creates a bill whose amount is resolved each period
func NewVariableBill(day int, name string) Bill {
	return Bill{DayOfMonth: day, Name: name}
}

func (b Bill) IsVariable() bool {
	return b.Amount == nil
}

func (b Bill) String() string {
	amount := "?"
	if b.Amount != nil {
		amount = fmt.Sprint(*b.Amount)
	}
	return fmt.Sprintf("%s: %s on %d", b.Name, amount, b.DayOfMonth)
}

// DueBill is a bill together with the date it is charged within a pay period
type DueBill struct {
	Bill
	Date    time.Time
	CatchUp bool // declared on a day the start month does not have
}

// ResolvedBill is a due bill with a known amount
type ResolvedBill struct {
	DueBill
	Amount   int
	Prompted bool // amount came from the resolver rather than the bill itself
}

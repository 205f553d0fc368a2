package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputPlain = "plain"
)

// Report is the resolved set of bills for one pay period
type Report struct {
	Period PayPeriod
	Bills  []ResolvedBill
}

func (r Report) Total() int {
	return Total(r.Bills)
}

// OutputOptions controls how a report is displayed
type OutputOptions struct {
	Format string
	Colors bool
}

// JSONOutput is the root JSON output object
type JSONOutput struct {
	Start      string        `json:"start"`
	End        string        `json:"end"`
	Days       int           `json:"days"`
	CrossMonth bool          `json:"cross_month"`
	Bills      []JSONDueBill `json:"bills"`
	Total      int           `json:"total"`
}

// JSONDueBill is the JSON output format for a bill due in the period
type JSONDueBill struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Name     string `json:"name"`
	Amount   int    `json:"amount"`
	Variable bool   `json:"variable,omitempty"`
	CatchUp  bool   `json:"catch_up,omitempty"`
}

// PrintReport writes the report in the requested format
func PrintReport(w io.Writer, r Report, opts OutputOptions) error {
	switch opts.Format {
	case OutputJSON:
		return PrintReportJSON(w, r)
	case OutputPlain:
		PrintReportPlain(w, r)
		return nil
	case OutputTable, "":
		PrintReportTable(w, r, opts)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (available: %s, %s, %s)", opts.Format, OutputTable, OutputJSON, OutputPlain)
	}
}

// PrintReportPlain writes the pay period range followed by the total
func PrintReportPlain(w io.Writer, r Report) {
	fmt.Fprintln(w, r.Period.String())
	fmt.Fprintf(w, "\nTotal: %d\n", r.Total())
}

// PrintReportJSON outputs the report in JSON format
func PrintReportJSON(w io.Writer, r Report) error {
	bills := make([]JSONDueBill, 0, len(r.Bills))
	for _, b := range r.Bills {
		bills = append(bills, JSONDueBill{
			Date:     b.Date.Format(dateLayout),
			Day:      b.DayOfMonth,
			Name:     b.Name,
			Amount:   b.Amount,
			Variable: b.Prompted,
			CatchUp:  b.CatchUp,
		})
	}

	output := JSONOutput{
		Start:      r.Period.Start.Format(dateLayout),
		End:        r.Period.End.Format(dateLayout),
		Days:       r.Period.LengthInDays,
		CrossMonth: r.Period.IsCrossMonth,
		Bills:      bills,
		Total:      r.Total(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// PrintReportTable outputs the bills due in the period as a formatted table
func PrintReportTable(w io.Writer, r Report, opts OutputOptions) {
	fmt.Fprintf(w, "Pay period: %s (%d days)\n\n", r.Period, r.Period.LengthInDays)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Day", "Name", "Amount"})

	for _, b := range r.Bills {
		day := strconv.Itoa(b.DayOfMonth)
		if b.CatchUp {
			day += "*"
		}
		amount := strconv.Itoa(b.Amount)
		if b.Prompted {
			amount = colorize(opts, text.FgYellow, amount)
		}
		t.AppendRow(table.Row{b.Date.Format(dateLayout), day, b.Name, amount})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", colorize(opts, text.Bold, "Total"), colorize(opts, text.Bold, strconv.Itoa(r.Total()))})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	t.Render()

	if hasCatchUp(r.Bills) {
		fmt.Fprintln(w, "* declared on a day the start month does not have")
	}
}

func hasCatchUp(bills []ResolvedBill) bool {
	for _, b := range bills {
		if b.CatchUp {
			return true
		}
	}
	return false
}

func colorize(opts OutputOptions, c text.Color, s string) string {
	if !opts.Colors {
		return s
	}
	return c.Sprint(s)
}

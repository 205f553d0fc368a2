package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func testReport(t *testing.T) Report {
	t.Helper()
	bills := append(scenarioBills(), NewVariableBill(27, "Power"))
	report, err := BuildReport(bills, date("2021-11-26"), 14, PresetResolver{"Power": 75})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	return report
}

func TestPrintReportPlain(t *testing.T) {
	var buf bytes.Buffer
	PrintReportPlain(&buf, testReport(t))

	want := "2021-11-26 - 2021-12-10\n\nTotal: 5175\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrintReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReport(&buf, testReport(t), OutputOptions{Format: OutputJSON}); err != nil {
		t.Fatalf("PrintReport: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if out.Start != "2021-11-26" || out.End != "2021-12-10" || out.Days != 14 || !out.CrossMonth {
		t.Errorf("unexpected period: %+v", out)
	}
	if out.Total != 5175 {
		t.Errorf("Total = %d, want 5175", out.Total)
	}

	var names []string
	for _, b := range out.Bills {
		names = append(names, b.Name)
	}
	if strings.Join(names, ",") != "bill 5,Power,bill 6,bill 1,bill 2" {
		t.Errorf("bills = %v", names)
	}

	power, phone := out.Bills[1], out.Bills[2]
	if !power.Variable || power.Amount != 75 || power.Date != "2021-11-27" {
		t.Errorf("Power = %+v", power)
	}
	if !phone.CatchUp || phone.Day != 31 || phone.Date != "2021-11-30" {
		t.Errorf("bill 6 = %+v", phone)
	}
}

func TestPrintReportTable(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReport(&buf, testReport(t), OutputOptions{Format: OutputTable}); err != nil {
		t.Fatalf("PrintReport: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Pay period: 2021-11-26 - 2021-12-10 (14 days)",
		"Power",
		"31*",
		"2021-11-30",
		"Total",
		"5175",
		"* declared on a day the start month does not have",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colors should be off:\n%s", out)
	}
}

func TestPrintReportTable_NoCatchUpNote(t *testing.T) {
	report, err := BuildReport(scenarioBills(), date("2021-11-12"), 14, nil)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	var buf bytes.Buffer
	PrintReportTable(&buf, report, OutputOptions{})
	if strings.Contains(buf.String(), "declared on a day") {
		t.Errorf("unexpected catch-up note:\n%s", buf.String())
	}
}

func TestPrintReport_UnknownFormat(t *testing.T) {
	if err := PrintReport(&bytes.Buffer{}, Report{}, OutputOptions{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gigurra/paybills/internal"
)

func TestRun_ImportsIntoBillBook(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	dbPath := filepath.Join(t.TempDir(), "bills.db")

	var stdout, stderr bytes.Buffer
	params := &Params{File: "../../testdata/bills.json", DB: dbPath}
	if err := run(context.Background(), params, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Imported 7 bills into "+dbPath) {
		t.Errorf("stdout = %q", stdout.String())
	}

	bills, err := internal.LoadBills("sqlite:" + dbPath)
	if err != nil {
		t.Fatalf("LoadBills: %v", err)
	}
	if len(bills) != 7 {
		t.Fatalf("expected 7 bills, got %d", len(bills))
	}
	if bills[0].Name != "Car loan" || bills[5].Name != "Power" || !bills[5].IsVariable() {
		t.Errorf("unexpected bills: %v", bills)
	}

	// importing again replaces rather than appends
	params.File = "yaml:../../testdata/bills.yaml"
	if err := run(context.Background(), params, &stdout, &stderr); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	bills, err = internal.LoadBills("sqlite:" + dbPath)
	if err != nil {
		t.Fatalf("LoadBills: %v", err)
	}
	if len(bills) != 7 {
		t.Errorf("expected 7 bills after re-import, got %d", len(bills))
	}
}

func TestRun_InvalidBillFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	dbPath := filepath.Join(t.TempDir(), "bills.db")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &Params{File: "../../testdata/no-monthly.json", DB: dbPath}, &stdout, &stderr)
	if internal.ExitCode(err) != internal.ExitConfigError {
		t.Errorf("expected configuration error, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
}

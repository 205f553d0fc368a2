package internal

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) (*BillStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book", "bills.db")
	store, err := OpenBillStore(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenBillStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestBillStore_ReplaceAndList(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	bills := []Bill{
		NewBill(31, 50, "Phone"),
		NewBill(1, 1200, "Rent"),
		NewVariableBill(15, "Power"),
		NewBill(1, 30, "Streaming"),
	}
	if err := store.ReplaceMonthly(ctx, bills); err != nil {
		t.Fatalf("ReplaceMonthly: %v", err)
	}

	got, err := store.ListMonthly(ctx)
	if err != nil {
		t.Fatalf("ListMonthly: %v", err)
	}
	if !reflect.DeepEqual(got, bills) {
		t.Errorf("got %v, want %v", got, bills)
	}
}

func TestBillStore_ReplaceOverwrites(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceMonthly(ctx, []Bill{NewBill(1, 1, "Old")}); err != nil {
		t.Fatalf("first ReplaceMonthly: %v", err)
	}
	if err := store.ReplaceMonthly(ctx, []Bill{NewBill(2, 2, "New")}); err != nil {
		t.Fatalf("second ReplaceMonthly: %v", err)
	}

	got, err := store.ListMonthly(ctx)
	if err != nil {
		t.Fatalf("ListMonthly: %v", err)
	}
	if !reflect.DeepEqual(billNames(got), []string{"New"}) {
		t.Errorf("got %v, want [New]", billNames(got))
	}
}

func TestBillStore_RejectsInvalidDay(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceMonthly(ctx, []Bill{NewBill(1, 1, "Ok"), NewBill(32, 1, "Bad")}); err == nil {
		t.Fatal("expected constraint error for day 32")
	}

	// the failed replace must not leave partial data behind
	got, err := store.ListMonthly(ctx)
	if err != nil {
		t.Fatalf("ListMonthly: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty book after failed replace, got %v", billNames(got))
	}
}

func TestBillStore_ReopenKeepsBills(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceMonthly(ctx, []Bill{NewBill(5, 10, "Gym")}); err != nil {
		t.Fatalf("ReplaceMonthly: %v", err)
	}
	store.Close()

	bills, err := LoadBills("sqlite:" + path)
	if err != nil {
		t.Fatalf("LoadBills: %v", err)
	}
	if len(bills) != 1 || bills[0].Name != "Gym" || *bills[0].Amount != 10 {
		t.Errorf("got %v", bills)
	}
}

func TestLoadSQLiteBills_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	_, err := LoadSQLiteBills(path)
	if !IsConfigurationError(err) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestLoadSQLiteBills_NotABillBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE notes (body TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	db.Close()

	_, err = LoadSQLiteBills(path)
	if !IsConfigurationError(err) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}

	// reading must not have migrated the file
	db, err = sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()
	var tables int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('bills', 'schema_migrations')`).Scan(&tables); err != nil {
		t.Fatalf("reading schema: %v", err)
	}
	if tables != 0 {
		t.Errorf("expected no bills or schema_migrations table, found %d", tables)
	}
}

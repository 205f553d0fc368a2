package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// BillStore is a SQLite bill book holding bill definitions.
// Computed totals are never stored.
type BillStore struct {
	db *sql.DB
}

// OpenBillStore opens (creating if needed) the bill book at path and brings its
// schema up to date.
func OpenBillStore(ctx context.Context, path string) (*BillStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := RunMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &BillStore{db: db}, nil
}

// RunMigrations applies the embedded schema migrations to the database at path
func RunMigrations(path string) error {
	// Separate connection so the migrator's Close does not affect the store
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *BillStore) Close() error {
	return s.db.Close()
}

// ReplaceMonthly replaces all monthly bills with the given list, keeping its order
func (s *BillStore) ReplaceMonthly(ctx context.Context, bills []Bill) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bills WHERE frequency = ?`, FrequencyMonthly); err != nil {
		return fmt.Errorf("clearing bills: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bills (position, frequency, day_of_month, amount, name)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range bills {
		var amount sql.NullInt64
		if b.Amount != nil {
			amount = sql.NullInt64{Int64: int64(*b.Amount), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, i, FrequencyMonthly, b.DayOfMonth, amount, b.Name); err != nil {
			return fmt.Errorf("inserting %s: %w", b.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListMonthly returns the monthly bills in the order they were stored
func (s *BillStore) ListMonthly(ctx context.Context) ([]Bill, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day_of_month, amount, name
		FROM bills
		WHERE frequency = ?
		ORDER BY position, id`, FrequencyMonthly)
	if err != nil {
		return nil, fmt.Errorf("querying bills: %w", err)
	}
	defer rows.Close()

	var bills []Bill
	for rows.Next() {
		var b Bill
		var amount sql.NullInt64
		if err := rows.Scan(&b.DayOfMonth, &amount, &b.Name); err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}
		if amount.Valid {
			v := int(amount.Int64)
			b.Amount = &v
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading bills: %w", err)
	}
	return bills, nil
}

// LoadSQLiteBills reads the monthly bills from an existing bill book.
// The file is opened read-only and its schema is left alone.
func LoadSQLiteBills(path string) ([]Bill, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ConfigurationError{Source: "sqlite", Path: path, Err: err}
	}

	ctx := context.Background()
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &ConfigurationError{Source: "sqlite", Path: path, Err: err}
	}
	defer db.Close()

	var tables int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'bills'`).Scan(&tables)
	if err != nil {
		return nil, &ConfigurationError{Source: "sqlite", Path: path, Err: fmt.Errorf("reading schema: %w", err)}
	}
	if tables == 0 {
		return nil, configErrorf("sqlite", path, "not a bill book (no bills table); create one with paybills-import")
	}

	store := &BillStore{db: db}
	bills, err := store.ListMonthly(ctx)
	if err != nil {
		return nil, &ConfigurationError{Source: "sqlite", Path: path, Err: err}
	}
	return bills, nil
}

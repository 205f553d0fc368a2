package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/paybills/internal"
	"github.com/joho/godotenv"
)

type Params struct {
	File    string `descr:"Bill file to import, optionally prefixed with its format (json:, yaml:, xlsx:)" positional:"true"`
	DB      string `descr:"Path to the SQLite bill book" default:"bills.db"`
	Verbose bool   `descr:"Enable debug logging" short:"v" optional:"true"`
}

func main() {
	_ = godotenv.Load()

	boa.NewCmdT[Params]("paybills-import").
		WithShort("Import a bill file into a SQLite bill book").
		WithLong("Reads bills from a JSON, YAML or XLSX bill file and replaces the monthly bills stored in a SQLite bill book, which paybills can then read as sqlite:<path>.").
		WithRunFunc(func(params *Params) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if err := run(ctx, params, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				stop()
				os.Exit(internal.ExitCode(err))
			}
		}).
		Run()
}

func run(ctx context.Context, params *Params, stdout, stderr io.Writer) error {
	internal.SetupLogging(stderr, internal.LogLevel(params.Verbose, os.Getenv("LOG_LEVEL")))

	bills, err := internal.LoadBills(params.File)
	if err != nil {
		return err
	}

	store, err := internal.OpenBillStore(ctx, params.DB)
	if err != nil {
		return fmt.Errorf("opening bill book: %w", err)
	}
	defer store.Close()

	if err := store.ReplaceMonthly(ctx, bills); err != nil {
		return fmt.Errorf("storing bills: %w", err)
	}

	fmt.Fprintf(stdout, "Imported %d bills into %s\n", len(bills), params.DB)
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/paybills/internal"
	"github.com/joho/godotenv"
)

// defaultBillsFile is read from the working directory when no bill file is configured
const defaultBillsFile = "bills.json"

type Params struct {
	File       string   `descr:"Bill file, optionally prefixed with its format (json:, yaml:, xlsx:, sqlite:)" positional:"true" optional:"true"`
	Config     string   `descr:"Path to config file (default ~/.paybills/config.yaml)" optional:"true"`
	Days       int      `descr:"Pay period length in days (default 14)" optional:"true"`
	Start      string   `descr:"First day of the pay period, YYYY-MM-DD (default today)" optional:"true"`
	Amount     []string `descr:"Amount for a variable bill as name=amount; repeatable" optional:"true"`
	Output     string   `descr:"Output format" alts:"table,json,plain" strict:"true" default:"table"`
	NoPrompt   bool     `descr:"Fail instead of asking for variable bill amounts" optional:"true"`
	InitConfig bool     `descr:"Write a config template to the config path and exit" optional:"true"`
	Verbose    bool     `descr:"Enable debug logging" short:"v" optional:"true"`
}

func main() {
	_ = godotenv.Load()

	boa.NewCmdT[Params]("paybills").
		WithShort("Total the monthly bills due in a pay period").
		WithLong("Finds the recurring monthly bills that fall due within a pay period (14 days from today by default), asks for the amounts of bills that vary month to month, and prints the total.").
		WithRunFunc(func(params *Params) {
			if err := run(params, os.Stdin, os.Stdout, os.Stderr, time.Now()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(internal.ExitCode(err))
			}
		}).
		Run()
}

func run(params *Params, stdin io.Reader, stdout, stderr io.Writer, now time.Time) error {
	internal.SetupLogging(stderr, internal.LogLevel(params.Verbose, os.Getenv("LOG_LEVEL")))

	configPath := params.Config
	if configPath == "" {
		configPath = internal.DefaultConfigPath()
	}

	if params.InitConfig {
		billsFile := params.File
		if billsFile == "" {
			billsFile = defaultBillsFile
		}
		if err := internal.GenerateConfigTemplate(billsFile).Save(configPath); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote config template to %s\n", configPath)
		return nil
	}

	cfg, err := loadConfig(configPath, params.Config != "")
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}

	billsArg := params.File
	if billsArg == "" {
		billsArg = cfg.BillsFile
	}
	if billsArg == "" {
		billsArg = defaultBillsFile
	}

	bills, err := internal.LoadBills(billsArg)
	if err != nil {
		return err
	}
	bills = cfg.FilterExcluded(bills)

	start := now
	if params.Start != "" {
		start, err = internal.ParseDate(params.Start)
		if err != nil {
			return err
		}
	}

	days := params.Days
	if days == 0 {
		days = cfg.GetPeriodDays()
	}

	presets := cfg.GetAmounts()
	flagPresets, err := internal.ParsePresets(params.Amount)
	if err != nil {
		return err
	}
	presets.Merge(flagPresets)

	var resolver internal.AmountResolver = presets
	if !params.NoPrompt {
		resolver = internal.ChainResolver(presets, internal.NewPromptResolver(stdin, stderr))
	}

	report, err := internal.BuildReport(bills, start, days, resolver)
	if err != nil {
		if errors.Is(err, internal.ErrNoPreset) {
			return fmt.Errorf("%w (pass --amount name=value or add it to amounts in the config)", err)
		}
		return err
	}

	return internal.PrintReport(stdout, report, internal.OutputOptions{
		Format: params.Output,
		Colors: internal.IsTerminal(stdout),
	})
}

// loadConfig loads the config file. A missing file is only an error when it was
// asked for explicitly.
func loadConfig(path string, explicit bool) (*internal.Config, error) {
	if path == "" {
		return internal.NewDefaultConfig(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !explicit {
		return internal.NewDefaultConfig(), nil
	}
	return internal.LoadConfig(path)
}

package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvBillsFile  = "PAYBILLS_FILE"
	EnvPeriodDays = "PAYBILLS_DAYS"
)

type Config struct {
	// BillsFile is the bill source used when none is given on the command line.
	// It may carry a format prefix, e.g. "yaml:~/bills.txt".
	BillsFile string `yaml:"bills_file,omitempty"`

	// PeriodDays is the pay period length (default 14)
	PeriodDays int `yaml:"period_days,omitempty"`

	// Amounts presets the amount of variable bills by name, skipping the prompt
	Amounts map[string]int `yaml:"amounts,omitempty"`

	// Exclude is a list of regex patterns; bills with matching names are ignored
	Exclude []string `yaml:"exclude,omitempty"`

	// compiled exclude patterns (not serialized)
	excludePatterns []*regexp.Regexp `yaml:"-"`
}

// DefaultConfigPath returns the default config file path (~/.paybills/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paybills", "config.yaml")
}

// NewDefaultConfig creates an empty config. Use this when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("reading config file: %w", err)}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigurationError{Path: path, Err: fmt.Errorf("parsing config file: %w", err)}
	}

	if cfg.PeriodDays < 0 {
		return nil, configErrorf("", path, "period_days must be positive, got %d", cfg.PeriodDays)
	}

	// Compile exclude patterns (case-insensitive)
	for _, pattern := range cfg.Exclude {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, configErrorf("", path, "invalid exclude pattern %q: %w", pattern, err)
		}
		cfg.excludePatterns = append(cfg.excludePatterns, re)
	}

	return &cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides config values from environment variables.
// getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvBillsFile); v != "" {
		c.BillsFile = v
	}
	if v := getenv(EnvPeriodDays); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 1 {
			return &ConfigurationError{Err: fmt.Errorf("%s must be a positive number of days, got %q", EnvPeriodDays, v)}
		}
		c.PeriodDays = days
	}
	return nil
}

// GetPeriodDays returns the configured pay period length, or the default
func (c *Config) GetPeriodDays() int {
	if c == nil || c.PeriodDays == 0 {
		return DefaultPeriodDays
	}
	return c.PeriodDays
}

// GetAmounts returns the preset amounts as a resolver
func (c *Config) GetAmounts() PresetResolver {
	presets := PresetResolver{}
	if c == nil {
		return presets
	}
	for name, amount := range c.Amounts {
		presets[name] = amount
	}
	return presets
}

// ShouldExclude returns true if the bill name matches any exclude pattern
func (c *Config) ShouldExclude(name string) bool {
	if c == nil {
		return false
	}
	for _, re := range c.excludePatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// FilterExcluded removes bills matching exclude patterns
func (c *Config) FilterExcluded(bills []Bill) []Bill {
	if c == nil || len(c.excludePatterns) == 0 {
		return bills
	}
	var result []Bill
	for _, b := range bills {
		if !c.ShouldExclude(b.Name) {
			result = append(result, b)
		}
	}
	return result
}

// GenerateConfigTemplate creates a starter config pointing at the given bill file
func GenerateConfigTemplate(billsFile string) *Config {
	return &Config{
		BillsFile:  billsFile,
		PeriodDays: DefaultPeriodDays,
	}
}

package internal

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// Source loads the monthly bill list from a file
type Source interface {
	Load(path string) ([]Bill, error)
}

// SourceFunc is a function that implements Source
type SourceFunc func(path string) ([]Bill, error)

func (f SourceFunc) Load(path string) ([]Bill, error) {
	return f(path)
}

// sources is the registry of available bill sources
var sources = map[string]Source{}

// extensions maps file extensions to the source used when no format prefix is given
var extensions = map[string]string{}

// RegisterSource registers a source with the given name and the file extensions it handles
func RegisterSource(name string, s Source, exts ...string) {
	sources[name] = s
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = name
	}
}

// GetSource returns the source for the given format
func GetSource(format string) (Source, error) {
	s, ok := sources[format]
	if !ok {
		return nil, fmt.Errorf("unknown bill source: %s (available: %v)", format, AvailableSources())
	}
	return s, nil
}

// AvailableSources returns the registered source names, sorted
func AvailableSources() []string {
	var names []string
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnownSource returns true if the name is a registered source
func IsKnownSource(name string) bool {
	_, ok := sources[name]
	return ok
}

// ParseFileArg parses a file argument that may have a format prefix.
// Returns (format, path). If no valid prefix, format is empty.
// Example: "yaml:bills.txt" → ("yaml", "bills.txt")
// Example: "bills.json" → ("", "bills.json")
// Example: "C:\bills\bills.xlsx" → ("", "C:\bills\bills.xlsx")
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownSource(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg
}

// DetectSource picks a source name from the file extension
func DetectSource(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if name, ok := extensions[ext]; ok {
		return name, nil
	}
	return "", fmt.Errorf("cannot tell bill file format from %q; use a prefix like json:%s (available: %v)", path, path, AvailableSources())
}

// LoadBills loads and validates bills from a possibly format-prefixed file argument
func LoadBills(arg string) ([]Bill, error) {
	if arg == "" {
		return nil, &ConfigurationError{Err: fmt.Errorf("no bill file given; pass one as an argument or set bills_file in the config")}
	}

	format, path := ParseFileArg(arg)
	if format == "" {
		detected, err := DetectSource(path)
		if err != nil {
			return nil, &ConfigurationError{Path: path, Err: err}
		}
		format = detected
	}

	src, err := GetSource(format)
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}

	bills, err := src.Load(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateBills(bills); err != nil {
		return nil, &ConfigurationError{Source: format, Path: path, Err: err}
	}

	slog.Debug("loaded bills", "source", format, "path", path, "count", len(bills))
	return bills, nil
}

func init() {
	RegisterSource("json", SourceFunc(LoadJSONBills), ".json")
	RegisterSource("yaml", SourceFunc(LoadYAMLBills), ".yaml", ".yml")
	RegisterSource("xlsx", SourceFunc(LoadXLSXBills), ".xlsx")
	RegisterSource("sqlite", SourceFunc(LoadSQLiteBills), ".db", ".sqlite", ".sqlite3")
}

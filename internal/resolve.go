package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAmount matches any InputError
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNoInput is returned when the prompt input ends before an amount was read
	ErrNoInput = errors.New("no input")
	// ErrNoPreset is returned by PresetResolver for names it has no amount for
	ErrNoPreset = errors.New("no preset amount")
)

// InputError reports a response that could not be read as an amount
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid amount %q: must be a whole number", e.Input)
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInvalidAmount }

// AmountResolver supplies the amount of a bill whose cost varies
type AmountResolver interface {
	ResolveAmount(name string) (int, error)
}

// AmountResolverFunc is a function that implements AmountResolver
type AmountResolverFunc func(name string) (int, error)

func (f AmountResolverFunc) ResolveAmount(name string) (int, error) {
	return f(name)
}

// ResolveBills gives every due bill an amount. Variable bills are passed to r,
// once each and in order. The input slice is left untouched.
func ResolveBills(due []DueBill, r AmountResolver) ([]ResolvedBill, error) {
	resolved := make([]ResolvedBill, 0, len(due))
	for _, d := range due {
		if !d.IsVariable() {
			resolved = append(resolved, ResolvedBill{DueBill: d, Amount: *d.Amount})
			continue
		}
		if r == nil {
			return nil, fmt.Errorf("resolving %s: %w", d.Name, ErrNoPreset)
		}
		amount, err := r.ResolveAmount(d.Name)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", d.Name, err)
		}
		slog.Debug("resolved variable bill", "name", d.Name, "amount", amount)
		resolved = append(resolved, ResolvedBill{DueBill: d, Amount: amount, Prompted: true})
	}
	return resolved, nil
}

// Total sums the resolved amounts
func Total(bills []ResolvedBill) int {
	total := 0
	for _, b := range bills {
		total += b.Amount
	}
	return total
}

// PromptResolver asks for each amount on Out and reads one line per bill from In
type PromptResolver struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

func NewPromptResolver(in io.Reader, out io.Writer) *PromptResolver {
	return &PromptResolver{In: in, Out: out}
}

func (p *PromptResolver) ResolveAmount(name string) (int, error) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}
	fmt.Fprintf(p.Out, "Input amount for %s: ", name)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading amount: %w", err)
		}
		return 0, ErrNoInput
	}
	return ParseAmount(p.scanner.Text())
}

// ParseAmount parses a whole-number amount, ignoring surrounding whitespace
func ParseAmount(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InputError{Input: s, Err: err}
	}
	return n, nil
}

// PresetResolver resolves amounts from a fixed name -> amount table.
// Names are matched case-insensitively.
type PresetResolver map[string]int

func (p PresetResolver) ResolveAmount(name string) (int, error) {
	if amount, ok := p[name]; ok {
		return amount, nil
	}
	for k, amount := range p {
		if strings.EqualFold(k, name) {
			return amount, nil
		}
	}
	return 0, ErrNoPreset
}

// Set stores amount under name, replacing any entry whose name differs only in case
func (p PresetResolver) Set(name string, amount int) {
	for k := range p {
		if strings.EqualFold(k, name) {
			delete(p, k)
		}
	}
	p[name] = amount
}

// Merge copies every entry of other into p; other wins on names equal ignoring case
func (p PresetResolver) Merge(other PresetResolver) {
	for name, amount := range other {
		p.Set(name, amount)
	}
}

// ParsePresets parses "name=amount" pairs as given on the command line
func ParsePresets(pairs []string) (PresetResolver, error) {
	presets := PresetResolver{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid amount %q: expected name=amount", pair)
		}
		amount, err := ParseAmount(value)
		if err != nil {
			return nil, fmt.Errorf("amount for %s: %w", name, err)
		}
		presets.Set(name, amount)
	}
	return presets, nil
}

// ChainResolver tries each resolver in order, moving on only when one has no
// preset for the name. Any other error stops the chain.
func ChainResolver(resolvers ...AmountResolver) AmountResolver {
	return AmountResolverFunc(func(name string) (int, error) {
		for _, r := range resolvers {
			amount, err := r.ResolveAmount(name)
			if errors.Is(err, ErrNoPreset) {
				continue
			}
			return amount, err
		}
		return 0, ErrNoPreset
	})
}

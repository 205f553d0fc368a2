package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLBill is the mapping form of a bill in a YAML bill file.
// Bills may also be written as [day, amount, name] sequences:
//
//	monthly:
//	  - [1, 1200, Rent]
//	  - [15, ~, Electricity]
//	  - day: 31
//	    amount: 50
//	    name: Phone
type YAMLBill struct {
	Day    int    `yaml:"day"`
	Amount *int   `yaml:"amount,omitempty"`
	Name   string `yaml:"name"`
}

// LoadYAMLBills reads the monthly bills from a YAML bill file
func LoadYAMLBills(path string) ([]Bill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Source: "yaml", Path: path, Err: err}
	}
	return parseYAMLBills(data, path)
}

func parseYAMLBills(data []byte, path string) ([]Bill, error) {
	var root map[string]yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, configErrorf("yaml", path, "parsing YAML: %w", err)
	}

	node, ok := root[FrequencyMonthly]
	if !ok {
		return nil, configErrorf("yaml", path, "missing %q key; add your bills before using this", FrequencyMonthly)
	}
	if node.Kind != yaml.SequenceNode {
		return nil, configErrorf("yaml", path, "%q must be a list (line %d)", FrequencyMonthly, node.Line)
	}

	bills := make([]Bill, 0, len(node.Content))
	for i, item := range node.Content {
		b, err := decodeYAMLBill(item)
		if err != nil {
			return nil, configErrorf("yaml", path, "bill %d (line %d): %w", i+1, item.Line, err)
		}
		bills = append(bills, b)
	}
	return bills, nil
}

func decodeYAMLBill(node *yaml.Node) (Bill, error) {
	switch node.Kind {
	case yaml.MappingNode:
		var yb YAMLBill
		if err := node.Decode(&yb); err != nil {
			return Bill{}, err
		}
		return Bill{DayOfMonth: yb.Day, Amount: yb.Amount, Name: yb.Name}, nil
	case yaml.SequenceNode:
		if len(node.Content) != 3 {
			return Bill{}, fmt.Errorf("expected [day, amount, name], got %d values", len(node.Content))
		}
		var b Bill
		if err := node.Content[0].Decode(&b.DayOfMonth); err != nil {
			return Bill{}, fmt.Errorf("day: %w", err)
		}
		if err := node.Content[1].Decode(&b.Amount); err != nil {
			return Bill{}, fmt.Errorf("amount: %w", err)
		}
		if err := node.Content[2].Decode(&b.Name); err != nil {
			return Bill{}, fmt.Errorf("name: %w", err)
		}
		return b, nil
	default:
		return Bill{}, fmt.Errorf("expected [day, amount, name] or a mapping")
	}
}

package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// JSON bill files group bills by frequency. Each bill is a [day, amount, name]
// tuple or an object; a null amount marks a variable bill.
// Example:
//
//	{
//	  "monthly": [
//	    [1, 1200, "Rent"],
//	    [15, null, "Electricity"],
//	    {"day": 31, "amount": 50, "name": "Phone"}
//	  ]
//	}
type JSONBill struct {
	Day    int    `json:"day"`
	Amount *int   `json:"amount"`
	Name   string `json:"name"`
}

// LoadJSONBills reads the monthly bills from a JSON bill file
func LoadJSONBills(path string) ([]Bill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Source: "json", Path: path, Err: err}
	}
	return parseJSONBills(data, path)
}

func parseJSONBills(data []byte, path string) ([]Bill, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, configErrorf("json", path, "parsing JSON: %w", err)
	}

	raw, ok := root[FrequencyMonthly]
	if !ok {
		return nil, configErrorf("json", path, "missing %q key; add your bills before using this", FrequencyMonthly)
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, configErrorf("json", path, "%q must be a list, got null", FrequencyMonthly)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, configErrorf("json", path, "%q must be a list: %w", FrequencyMonthly, err)
	}

	bills := make([]Bill, 0, len(entries))
	for i, entry := range entries {
		b, err := decodeJSONBill(entry)
		if err != nil {
			return nil, configErrorf("json", path, "bill %d: %w", i+1, err)
		}
		bills = append(bills, b)
	}
	return bills, nil
}

func decodeJSONBill(entry json.RawMessage) (Bill, error) {
	trimmed := bytes.TrimSpace(entry)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var jb JSONBill
		if err := json.Unmarshal(trimmed, &jb); err != nil {
			return Bill{}, err
		}
		return Bill{DayOfMonth: jb.Day, Amount: jb.Amount, Name: jb.Name}, nil
	}

	var tuple []json.RawMessage
	if err := json.Unmarshal(trimmed, &tuple); err != nil {
		return Bill{}, fmt.Errorf("expected [day, amount, name] or an object: %w", err)
	}
	if len(tuple) != 3 {
		return Bill{}, fmt.Errorf("expected [day, amount, name], got %d values", len(tuple))
	}

	var b Bill
	if err := json.Unmarshal(tuple[0], &b.DayOfMonth); err != nil {
		return Bill{}, fmt.Errorf("day: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &b.Amount); err != nil {
		return Bill{}, fmt.Errorf("amount: %w", err)
	}
	if err := json.Unmarshal(tuple[2], &b.Name); err != nil {
		return Bill{}, fmt.Errorf("name: %w", err)
	}
	return b, nil
}

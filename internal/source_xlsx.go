package internal

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSXBills reads bills from the first sheet of a spreadsheet.
// The header row must contain Day, Amount and Name columns (any case, any order);
// rows above it are ignored. An empty Amount cell marks a variable bill.
func LoadXLSXBills(path string) ([]Bill, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, configErrorf("xlsx", path, "opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, configErrorf("xlsx", path, "no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, configErrorf("xlsx", path, "reading sheet: %w", err)
	}

	// Find header row and column indices
	dayCol, amountCol, nameCol := -1, -1, -1
	dataStartRow := -1
	for i, row := range rows {
		for j, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "day":
				dayCol = j
			case "amount":
				amountCol = j
			case "name":
				nameCol = j
			}
		}
		if dayCol >= 0 && amountCol >= 0 && nameCol >= 0 {
			dataStartRow = i + 1
			break
		}
		dayCol, amountCol, nameCol = -1, -1, -1
	}
	if dataStartRow < 0 {
		return nil, configErrorf("xlsx", path, "could not find required columns (Day, Amount, Name)")
	}

	var bills []Bill
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]
		dayStr := cellAt(row, dayCol)
		amountStr := cellAt(row, amountCol)
		name := cellAt(row, nameCol)

		// Skip empty rows
		if dayStr == "" && amountStr == "" && name == "" {
			continue
		}

		day, err := strconv.Atoi(dayStr)
		if err != nil {
			return nil, configErrorf("xlsx", path, "row %d: invalid day %q", i+1, dayStr)
		}

		b := Bill{DayOfMonth: day, Name: name}
		if amountStr != "" {
			amount, err := strconv.Atoi(amountStr)
			if err != nil {
				return nil, configErrorf("xlsx", path, "row %d: invalid amount %q", i+1, amountStr)
			}
			b.Amount = &amount
		}
		bills = append(bills, b)
	}

	return bills, nil
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

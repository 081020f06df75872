package exchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
)

// ImportMode selects how imported quantities combine with current stock.
type ImportMode string

const (
	// ModeAdd adds imported quantities to the current stock.
	ModeAdd ImportMode = "add"
	// ModeReplace overwrites the current stock with imported quantities.
	ModeReplace ImportMode = "replace"
)

var (
	ErrInvalidHeader = errors.New("CSV header must contain item and quantity columns")
	ErrUnknownMode   = errors.New("import mode must be 'add' or 'replace'")
)

var validate = validator.New()

// Row is one CSV record. Line counts records from 1, the header being line 1.
type Row struct {
	Line     int
	Item     string `validate:"required"`
	Quantity string `validate:"required,number"`
}

// RowError describes a rejected row.
type RowError struct {
	Line        int    `json:"line"`
	Description string `json:"description"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Description)
}

// ImportResult reports how many rows were applied and which were rejected.
type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

// ParseImportMode accepts "add", "replace" or an empty string for ModeAdd.
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAdd:
		return ModeAdd, nil
	case ModeReplace:
		return ModeReplace, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ReadCSV reads rows from a CSV document whose header names an item column
// ("item" or "name") and a "quantity" column, in any order and case.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	itemCol, ok := index["item"]
	if !ok {
		itemCol, ok = index["name"]
	}
	qtyCol, hasQty := index["quantity"]
	if !ok || !hasQty {
		return nil, ErrInvalidHeader
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		line++

		rows = append(rows, Row{
			Line:     line,
			Item:     field(record, itemCol),
			Quantity: field(record, qtyCol),
		})
	}
	return rows, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// Import applies rows to store. Invalid rows are skipped and reported.
func Import(store *inventory.Store, rows []Row, mode ImportMode) ImportResult {
	result := ImportResult{Errors: []RowError{}}

	for _, row := range rows {
		qty, err := validateRow(row)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: row.Line, Description: err.Error()})
			continue
		}

		if mode == ModeReplace {
			err = store.Set(row.Item, qty)
		} else {
			err = store.Add(row.Item, qty)
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: row.Line, Description: err.Error()})
			continue
		}
		result.Imported++
	}

	return result
}

func validateRow(row Row) (int, error) {
	if err := validate.Struct(row); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Item":
				return 0, errors.New("missing item")
			case "Quantity":
				return 0, fmt.Errorf("invalid quantity %q", row.Quantity)
			}
		}
		return 0, err
	}

	qty, err := strconv.Atoi(row.Quantity)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", row.Quantity)
	}
	return qty, nil
}

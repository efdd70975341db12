package stockcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	enc "github.com/MrJamesThe3rd/ledger/internal/encoding"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
)

// Parser reads stock sheets exported as CSV. It accepts comma or semicolon separators
// and finds the header row by matching column names against known profiles, so
// title rows above the header are ignored.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var separators = []rune{',', ';'}

func (p *Parser) Parse(r io.Reader) ([]inventory.CreateParams, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	content, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	for _, sep := range separators {
		rows, err := readRows(string(content), sep)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		slog.Debug("parsing stock sheet", "profile", profile.Name, "charset", charset, "separator", string(sep))

		return parseRows(profile, cols, rows[headerIdx+1:], sep == ';')
	}

	return nil, apperr.Invalid("file", "no header row found: expected name, category, sku, quantity, unit and unit_price columns")
}

func readRows(content string, sep rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

// colIndex maps normalised column names to their index in the row.
type colIndex map[string]int

func (c colIndex) get(name string) int {
	if name == "" {
		return -1
	}

	if i, ok := c[name]; ok {
		return i
	}

	return -1
}

// detectProfile returns the first row that carries every required column of a profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := normalise(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows converts data rows. Blank rows are skipped; every unreadable number is
// reported against its data row index, matching the indexes used by inventory.Import.
func parseRows(p *Profile, cols colIndex, rows [][]string, european bool) ([]inventory.CreateParams, error) {
	var (
		params []inventory.CreateParams
		fields []apperr.FieldError
	)

	numbers := []struct {
		col   string
		field string
	}{
		{p.QuantityCol, "quantity"},
		{p.PriceCol, "unit_price"},
		{p.MinStockCol, "minimum_stock"},
	}

	for _, row := range rows {
		if blank(row) {
			continue
		}

		idx := len(params)

		values := make(map[string]decimal.Decimal, len(numbers))

		for _, n := range numbers {
			s := cellValue(row, cols.get(n.col))
			if s == "" {
				values[n.field] = decimal.Zero
				continue
			}

			d, err := parseNumber(s, european)
			if err != nil {
				fields = append(fields, apperr.FieldError{
					Field:   fmt.Sprintf("rows[%d].%s", idx, n.field),
					Message: fmt.Sprintf("not a number: %q", s),
				})

				continue
			}

			values[n.field] = d
		}

		params = append(params, inventory.CreateParams{
			Name:         cellValue(row, cols.get(p.NameCol)),
			Description:  cellValue(row, cols.get(p.DescCol)),
			Category:     cellValue(row, cols.get(p.CategoryCol)),
			SKU:          cellValue(row, cols.get(p.SKUCol)),
			Quantity:     values["quantity"],
			Unit:         cellValue(row, cols.get(p.UnitCol)),
			UnitPrice:    values["unit_price"],
			Location:     cellValue(row, cols.get(p.LocationCol)),
			MinimumStock: values["minimum_stock"],
		})
	}

	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	return params, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is the data region of one worksheet: its header and data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   []GridRow
}

// GridRow is one data row padded to the sheet width.
type GridRow struct {
	// R is the 1-based sheet row number.
	R int
	// Values holds the cell text as displayed (number formats applied).
	Values []string
	// Raw holds the unformatted cell values.
	Raw []string
}

// ReadSheet reads the header row and all data rows of a sheet.
// Data rows start at row 2 and run to the last non-blank row. Each row is
// padded or truncated to width cells. The header must reach every column in
// required, otherwise ErrMissingColumns is returned.
func ReadSheet(f *excelize.File, sheetName string, width int, required []int) (*Sheet, error) {
	values, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{Name: sheetName}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no header row", ErrMissingColumns, sheetName)
	}
	sheet.Header = values[0]
	if need := maxIndex(required) + 1; len(sheet.Header) < need {
		return nil, fmt.Errorf("%w: sheet %q header has %d columns, need %d",
			ErrMissingColumns, sheetName, len(sheet.Header), need)
	}

	last := lastDataRow(values)
	for rowIdx := 1; rowIdx <= last; rowIdx++ {
		var rawRow []string
		if rowIdx < len(raw) {
			rawRow = raw[rowIdx]
		}
		sheet.Rows = append(sheet.Rows, GridRow{
			R:      rowIdx + 1, // 1-based row index
			Values: pad(values[rowIdx], width),
			Raw:    pad(rawRow, width),
		})
	}

	return sheet, nil
}

// Text returns the trimmed display text of column col.
func (g GridRow) Text(col int) string {
	if col < 0 || col >= len(g.Values) {
		return ""
	}
	return strings.TrimSpace(g.Values[col])
}

// Number parses column col as a number, preferring the raw cell value.
// Blank cells report ok=false with a nil error.
func (g GridRow) Number(col int) (value float64, ok bool, err error) {
	s := ""
	if col >= 0 && col < len(g.Raw) {
		s = strings.TrimSpace(g.Raw[col])
	}
	if s == "" {
		s = g.Text(col)
	}
	if s == "" {
		return 0, false, nil
	}
	value, err = parseNumber(s)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

// parseNumber parses a cell value as a float64.
// Thousands separators and a leading currency symbol are tolerated.
func parseNumber(s string) (float64, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return checkFinite(s, f)
	}
	cleaned := strings.ReplaceAll(s, ",", "")
	cleaned = strings.TrimLeft(cleaned, "$€£ ")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return checkFinite(s, f)
}

func checkFinite(s string, f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return f, nil
}

func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

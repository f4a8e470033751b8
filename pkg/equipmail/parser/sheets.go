// Package parser reads report sheets from an xlsx workbook into typed rows.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SelectSheet resolves a sheet reference to a sheet name.
// A reference is either a sheet name (optionally quoted, e.g. 'Laptop List')
// or a zero-based position written as #N, e.g. #0 for the first sheet.
func SelectSheet(f *excelize.File, ref string) (string, error) {
	sheets := f.GetSheetList()

	index, byIndex, err := parseSheetRef(ref)
	if err != nil {
		return "", err
	}
	if byIndex {
		if index < 0 || index >= len(sheets) {
			return "", fmt.Errorf("%w: index %d of %d sheets", ErrSheetNotFound, index, len(sheets))
		}
		return sheets[index], nil
	}

	name := strings.Trim(strings.TrimSpace(ref), "'")
	for _, sheet := range sheets {
		if sheet == name {
			return sheet, nil
		}
	}
	// Sheet names are case-insensitive in Excel
	for _, sheet := range sheets {
		if strings.EqualFold(sheet, name) {
			return sheet, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// parseSheetRef reports whether ref is a positional reference and its index.
func parseSheetRef(ref string) (int, bool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, false, fmt.Errorf("%w: empty sheet reference", ErrSheetNotFound)
	}
	if !strings.HasPrefix(ref, "#") {
		return 0, false, nil
	}
	index, err := strconv.Atoi(ref[1:])
	if err != nil {
		return 0, false, fmt.Errorf("%w: bad sheet index %q", ErrSheetNotFound, ref)
	}
	return index, true, nil
}

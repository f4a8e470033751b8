package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeSheet saves a workbook holding rows (header first) in sheetName and
// reopens it, so tests read values the way a real file is read.
func writeSheet(t *testing.T, sheetName string, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			t.Fatalf("Failed to rename sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		values := row
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			t.Fatalf("Failed to set row %d: %v", i+1, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

package equipmail

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/parser"
)

// Result summarizes one job run.
type Result struct {
	Job string `json:"job"`
	// Sent is false when the job decided not to send.
	Sent    bool           `json:"sent"`
	Message models.Message `json:"message"`
	// Counts holds row counts per table.
	Counts map[string]int `json:"counts"`
	// Skipped lists malformed rows that were left out.
	Skipped []error `json:"-"`
}

// openWorkbook opens the workbook at path.
func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
	}
	return excelize.OpenFile(path)
}

// readSheet opens the workbook and reads the data region of the referenced sheet.
func readSheet(path, ref string, width int, required []int) (*parser.Sheet, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err := parser.SelectSheet(f, ref)
	if err != nil {
		return nil, err
	}
	return parser.ReadSheet(f, sheetName, width, required)
}

// logSkipped reports malformed rows; they never abort a run.
func logSkipped(log *zap.Logger, rowErrs []error) {
	for _, err := range rowErrs {
		log.Warn("skipping malformed row", zap.Error(err))
	}
}

package parser

import (
	"math"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// ParseLaptopRows converts sheet rows into laptop records.
// Blank rows are ignored. Rows whose age is missing or not numeric are
// reported as RowErrors and left out of the result.
func ParseLaptopRows(sheet *Sheet, cols models.LaptopColumns) ([]models.LaptopRow, []error) {
	var result []models.LaptopRow
	var rowErrs []error

	for _, row := range sheet.Rows {
		if isBlankRow(row.Values) {
			continue
		}

		age, ok, err := row.Number(cols.Age)
		if err != nil {
			rowErrs = append(rowErrs, NewRowError(sheet.Name, row.R, "age", err))
			continue
		}
		if !ok {
			rowErrs = append(rowErrs, NewRowError(sheet.Name, row.R, "age", ErrInvalidNumber))
			continue
		}

		result = append(result, models.LaptopRow{
			EmployeeName: row.Text(cols.EmployeeName),
			Model:        row.Text(cols.Model),
			AgeYears:     age,
			Row:          row.R,
		})
	}

	return result, rowErrs
}

// ParseOrderRows converts sheet rows into order records.
// Rows with a blank entry date are not orders and are ignored without error.
// Blank day counts and amounts read as zero.
func ParseOrderRows(sheet *Sheet, cols models.OrderColumns) ([]models.OrderRow, []error) {
	var result []models.OrderRow
	var rowErrs []error

	for _, row := range sheet.Rows {
		if row.Text(cols.EntryDate) == "" {
			continue
		}

		days, _, err := row.Number(cols.UndeliveredDays)
		if err != nil {
			rowErrs = append(rowErrs, NewRowError(sheet.Name, row.R, "undelivered_days", err))
			continue
		}
		amount, _, err := row.Number(cols.Amount)
		if err != nil {
			rowErrs = append(rowErrs, NewRowError(sheet.Name, row.R, "amount", err))
			continue
		}

		result = append(result, models.OrderRow{
			EntryDate:       row.Text(cols.EntryDate),
			UndeliveredDays: int(math.Floor(days)),
			OrderDate:       row.Text(cols.OrderDate),
			DeliveryDate:    row.Text(cols.DeliveryDate),
			ForWhom:         row.Text(cols.ForWhom),
			Amount:          amount,
			AmountText:      row.Text(cols.Amount),
			Description:     row.Text(cols.Description),
			Supplier:        row.Text(cols.Supplier),
			Status:          models.OrderStatus(row.Text(cols.Status)),
			Row:             row.R,
		})
	}

	return result, rowErrs
}

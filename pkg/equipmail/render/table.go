// Package render turns classified rows into table models and HTML email bodies.
package render

import (
	"strconv"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/classify"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// laptopColumns is the header of the laptop replacement table.
var laptopColumns = []string{"Name", "Age", "Model", "Row"}

// orderColumns is the header of each order digest table.
var orderColumns = map[models.Bucket][]string{
	models.BucketUndelivered:          {"Row", "Undelivered For (Days)", "For Whom", "Amount", "Description", "Supplier"},
	models.BucketDeliveredNotReceived: {"Row", "Delivery Date", "For Whom", "Amount", "Description"},
	models.BucketNoDeliveryDate:       {"Row", "For Whom", "Amount", "Description"},
	models.BucketAwaitingStatusChange: {"Row", "For Whom", "Amount", "Description", "Supplier", "Status"},
}

// LaptopTable builds the laptop replacement table from selected rows.
func LaptopTable(rows []models.LaptopRow) models.Table {
	table := models.Table{Columns: append([]string(nil), laptopColumns...)}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.EmployeeName,
			classify.FormatAge(row.AgeYears),
			row.Model,
			strconv.Itoa(row.Row),
		})
	}
	return table
}

// OrderTable builds the table of bucket b from its rows.
func OrderTable(b models.Bucket, rows []models.OrderRow) models.Table {
	table := models.Table{Columns: append([]string(nil), orderColumns[b]...)}
	for _, row := range rows {
		table.Rows = append(table.Rows, orderCells(b, row))
	}
	return table
}

func orderCells(b models.Bucket, row models.OrderRow) []string {
	rowNum := strconv.Itoa(row.Row)
	amount := amountText(row)

	switch b {
	case models.BucketUndelivered:
		return []string{rowNum, strconv.Itoa(row.UndeliveredDays), row.ForWhom, amount, row.Description, row.Supplier}
	case models.BucketDeliveredNotReceived:
		return []string{rowNum, row.DeliveryDate, row.ForWhom, amount, row.Description}
	case models.BucketNoDeliveryDate:
		return []string{rowNum, row.ForWhom, amount, row.Description}
	case models.BucketAwaitingStatusChange:
		return []string{rowNum, row.ForWhom, amount, row.Description, row.Supplier, string(row.Status)}
	}
	return nil
}

// amountText prefers the amount as the sheet displays it. A blank cell
// stays blank.
func amountText(row models.OrderRow) string {
	if row.AmountText != "" {
		return row.AmountText
	}
	if row.Amount == 0 {
		return ""
	}
	return strconv.FormatFloat(row.Amount, 'f', -1, 64)
}

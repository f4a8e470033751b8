// Package models defines the typed records and table model used by the report jobs.
package models

// LaptopRow represents one data row of the laptop inventory sheet.
type LaptopRow struct {
	// EmployeeName is the laptop holder, or a spare marker.
	EmployeeName string `json:"employee_name"`
	// Model is the laptop model description.
	Model string `json:"model"`
	// AgeYears is the laptop age in (fractional) years.
	AgeYears float64 `json:"age_years"`
	// Row is the 1-based sheet row number the record came from.
	Row int `json:"row"`
}

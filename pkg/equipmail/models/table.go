package models

// Table is a rendering-agnostic table: a header plus rows of display strings.
type Table struct {
	// Columns holds the header labels in display order.
	Columns []string `json:"columns"`
	// Rows holds one slice of cell text per record, aligned with Columns.
	Rows [][]string `json:"rows,omitempty"`
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

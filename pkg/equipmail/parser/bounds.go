package parser

import "strings"

// lastDataRow returns the 0-based index of the last row holding any non-blank
// cell, or -1 if every row is blank.
func lastDataRow(rows [][]string) int {
	last := -1
	for rowIdx, row := range rows {
		if !isBlankRow(row) {
			last = rowIdx
		}
	}
	return last
}

// isBlankRow reports whether every cell of row is blank.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// maxIndex returns the highest value in indexes, or -1 for none.
func maxIndex(indexes []int) int {
	highest := -1
	for _, idx := range indexes {
		if idx > highest {
			highest = idx
		}
	}
	return highest
}

// Package classify applies the report rules to parsed sheet rows.
package classify

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// LaptopRule selects laptops due for replacement.
type LaptopRule struct {
	// MaxAge is the age in years at or above which a laptop is reported.
	MaxAge float64
	// SpareMarker excludes rows whose name contains it, case-insensitively.
	SpareMarker string
}

// DefaultLaptopRule returns the standard replacement rule.
func DefaultLaptopRule() LaptopRule {
	return LaptopRule{
		MaxAge:      2.9,
		SpareMarker: "SPARE LAPTOP",
	}
}

// Matches reports whether row is due for replacement.
func (r LaptopRule) Matches(row models.LaptopRow) bool {
	if row.AgeYears < r.MaxAge {
		return false
	}
	if r.SpareMarker == "" {
		return true
	}
	return !strings.Contains(strings.ToUpper(row.EmployeeName), strings.ToUpper(r.SpareMarker))
}

// SelectLaptops returns the rows matching rule, sorted by ascending age.
// Rows of equal age keep their sheet order.
func SelectLaptops(rows []models.LaptopRow, rule LaptopRule) []models.LaptopRow {
	var selected []models.LaptopRow
	for _, row := range rows {
		if rule.Matches(row) {
			selected = append(selected, row)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].AgeYears < selected[j].AgeYears
	})
	return selected
}

// FormatAge renders a fractional age as whole years plus the fraction in
// tenths of a year, rounded half to even and shown as months, e.g.
// 3.25 -> "3y 2m", 3.27 -> "3y 3m" and 2.9 -> "2y 9m". Ten tenths carry
// into the year. A tenth of a year is not a calendar month; the sheet has
// always read this way.
func FormatAge(age float64) string {
	years := math.Floor(age)
	months := math.RoundToEven((age - years) * 10)
	if months >= 10 {
		years++
		months = 0
	}
	return fmt.Sprintf("%dy %dm", int(years), int(months))
}

package report

import (
	"fmt"
	"time"
)

// DaysInMonth returns the number of calendar days in the given month,
// accounting for leap years.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last day of a month as zero-padded
// YYYY-MM-DD strings. The zero padding is what makes lexical comparison
// against observation timestamps equivalent to date comparison.
func MonthRange(year, month int) (first, last string) {
	first = fmt.Sprintf("%04d-%02d-01", year, month)
	last = fmt.Sprintf("%04d-%02d-%02d", year, month, DaysInMonth(year, month))
	return first, last
}

package report

import (
	"strings"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

// Criteria is the resolved filter chain for one report request.
// Empty string fields mean no constraint. At most one of DateContains
// and DateFrom/DateTo is set, depending on the report view.
type Criteria struct {
	Area       string
	Contractor string
	StoreID    string

	// DateContains passes a row when the timestamp contains it as a
	// substring, so trailing time components are tolerated
	// ("2024-03-15 14:22:00" matches "2024-03-15"). Substring means a
	// bare "15" matches day 15 of any month; callers send full
	// YYYY-MM-DD dates.
	DateContains string

	// DateFrom/DateTo pass a row when the timestamp falls lexically
	// inside the closed range. Valid only for zero-padded YYYY-MM-DD.
	DateFrom string
	DateTo   string
}

// DailyCriteria resolves a daily-view filter into criteria
func DailyCriteria(f models.ReportFilter) Criteria {
	c := Criteria{DateContains: f.Date}
	if !models.IsAll(f.Area) {
		c.Area = f.Area
	}
	if !models.IsAll(f.Contractor) {
		c.Contractor = f.Contractor
	}
	if !models.IsAll(f.StoreID) {
		c.StoreID = f.StoreID
	}
	return c
}

// MonthlyCriteria resolves a monthly-view filter into criteria
func MonthlyCriteria(f models.MonthlyFilter) Criteria {
	first, last := MonthRange(f.Year, f.Month)
	c := Criteria{DateFrom: first, DateTo: last}
	if !models.IsAll(f.Area) {
		c.Area = f.Area
	}
	if !models.IsAll(f.Contractor) {
		c.Contractor = f.Contractor
	}
	if !models.IsAll(f.StoreID) {
		c.StoreID = f.StoreID
	}
	return c
}

// Apply narrows rows to those matching every set criterion, in the fixed
// order area, contractor, store id, date. Zero matches is a valid result,
// never an error.
func Apply(rows []models.Observation, c Criteria) []models.Observation {
	out := make([]models.Observation, 0, len(rows))
	for _, row := range rows {
		if c.Area != "" && row.Area != c.Area {
			continue
		}
		if c.Contractor != "" && row.Contractor != c.Contractor {
			continue
		}
		if c.StoreID != "" && row.StoreID != c.StoreID {
			continue
		}
		if c.DateContains != "" && !strings.Contains(row.Timestamp, c.DateContains) {
			continue
		}
		if c.DateFrom != "" || c.DateTo != "" {
			d := datePrefix(row.Timestamp)
			if c.DateFrom != "" && d < c.DateFrom {
				continue
			}
			if c.DateTo != "" && d > c.DateTo {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

// datePrefix strips a trailing time component so "2024-02-29 14:22:00"
// still falls inside the range ending at "2024-02-29". For bare
// zero-padded dates this is the identity and ordering is unchanged.
func datePrefix(ts string) string {
	const dateLen = len("2006-01-02")
	if len(ts) > dateLen {
		return ts[:dateLen]
	}
	return ts
}

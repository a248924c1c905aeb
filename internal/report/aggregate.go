package report

import (
	"sort"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

// GroupBy selects the grouping dimension for aggregation
type GroupBy int

const (
	GroupNone GroupBy = iota
	GroupArea
	GroupContractor
)

// Totals sums the three measures across all rows
func Totals(rows []models.Observation) models.MeasureSums {
	var sums models.MeasureSums
	for _, row := range rows {
		sums.Helmeted += row.Helmeted
		sums.Unhelmeted += row.Unhelmeted
		sums.Total += row.Total
	}
	return sums
}

// GroupTotals partitions rows by the chosen dimension and sums the three
// measures within each partition. Output is sorted by key so results are
// stable for a given input.
func GroupTotals(rows []models.Observation, by GroupBy) []models.GroupSums {
	if by == GroupNone {
		return []models.GroupSums{{Key: "total", MeasureSums: Totals(rows)}}
	}

	keyOf := func(o models.Observation) string { return o.Area }
	if by == GroupContractor {
		keyOf = func(o models.Observation) string { return o.Contractor }
	}

	byKey := make(map[string]models.MeasureSums)
	for _, row := range rows {
		sums := byKey[keyOf(row)]
		sums.Helmeted += row.Helmeted
		sums.Unhelmeted += row.Unhelmeted
		sums.Total += row.Total
		byKey[keyOf(row)] = sums
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]models.GroupSums, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, models.GroupSums{Key: k, MeasureSums: byKey[k]})
	}
	return groups
}

// DistinctDates counts unique timestamp values in the rows. A calendar
// day with no observation rows does not count as a day.
func DistinctDates(rows []models.Observation) int {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		seen[row.Timestamp] = struct{}{}
	}
	return len(seen)
}

// MonthlySummary computes the five-metric monthly block. Rows must
// already be filtered to the requested month. Returns
// ErrInsufficientData when there are no distinct observation dates to
// divide by.
func MonthlySummary(rows []models.Observation) (*models.MonthlySummary, error) {
	days := DistinctDates(rows)
	if days == 0 {
		return nil, ErrInsufficientData
	}
	sums := Totals(rows)
	return &models.MonthlySummary{
		MeasureSums:         sums,
		DistinctDates:       days,
		AvgHelmetedPerDay:   float64(sums.Helmeted) / float64(days),
		AvgUnhelmetedPerDay: float64(sums.Unhelmeted) / float64(days),
	}, nil
}

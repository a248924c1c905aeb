package report

import (
	"errors"
	"testing"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

func TestGroupByContractorScenario(t *testing.T) {
	rows := []models.Observation{
		{Area: "BE", Contractor: "X", StoreID: "001", Timestamp: "2024-01-01", Helmeted: 5, Unhelmeted: 2, Total: 7},
		{Area: "BE", Contractor: "Y", StoreID: "002", Timestamp: "2024-01-01", Helmeted: 3, Unhelmeted: 1, Total: 4},
	}

	filtered := Apply(rows, DailyCriteria(models.ReportFilter{Area: "BE"}))
	groups := GroupTotals(filtered, GroupContractor)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %v", groups)
	}
	want := map[string]models.MeasureSums{
		"X": {Helmeted: 5, Unhelmeted: 2, Total: 7},
		"Y": {Helmeted: 3, Unhelmeted: 1, Total: 4},
	}
	for _, g := range groups {
		if g.MeasureSums != want[g.Key] {
			t.Errorf("group %s: got %+v, want %+v", g.Key, g.MeasureSums, want[g.Key])
		}
	}
}

func TestGroupedSumsEqualUngroupedSums(t *testing.T) {
	rows := sampleRows()
	total := Totals(rows)

	for _, by := range []GroupBy{GroupArea, GroupContractor} {
		var sum models.MeasureSums
		for _, g := range GroupTotals(rows, by) {
			sum.Helmeted += g.Helmeted
			sum.Unhelmeted += g.Unhelmeted
			sum.Total += g.Total
		}
		if sum != total {
			t.Errorf("groupBy %v: grouped sums %+v != totals %+v", by, sum, total)
		}
	}
}

func TestGroupTotalsSortedByKey(t *testing.T) {
	groups := GroupTotals(sampleRows(), GroupArea)
	for i := 1; i < len(groups); i++ {
		if groups[i-1].Key >= groups[i].Key {
			t.Fatalf("groups not sorted by key: %v", groups)
		}
	}
}

func TestTotalIsPassedThroughNotRecomputed(t *testing.T) {
	// The source supplies total independently; a row where it disagrees
	// with helmeted+unhelmeted must keep the supplied value.
	rows := []models.Observation{
		{Area: "BE", Contractor: "X", StoreID: "1", Timestamp: "2024-01-01", Helmeted: 5, Unhelmeted: 2, Total: 9},
	}
	sums := Totals(rows)
	if sums.Total != 9 {
		t.Fatalf("total recomputed: got %d, want 9", sums.Total)
	}
}

func TestDistinctDatesCountsUniqueTimestamps(t *testing.T) {
	rows := []models.Observation{
		{Timestamp: "2024-01-01"},
		{Timestamp: "2024-01-01"},
		{Timestamp: "2024-01-03"},
	}
	if got := DistinctDates(rows); got != 2 {
		t.Fatalf("expected 2 distinct dates, got %d", got)
	}
}

func TestMonthlySummaryAverages(t *testing.T) {
	rows := []models.Observation{
		{Timestamp: "2024-02-01", Helmeted: 4, Unhelmeted: 2, Total: 6},
		{Timestamp: "2024-02-01", Helmeted: 2, Unhelmeted: 0, Total: 2},
		{Timestamp: "2024-02-02", Helmeted: 6, Unhelmeted: 4, Total: 10},
	}

	got, err := MonthlySummary(rows)
	if err != nil {
		t.Fatal(err)
	}
	if got.DistinctDates != 2 {
		t.Fatalf("expected 2 distinct dates, got %d", got.DistinctDates)
	}
	if got.AvgHelmetedPerDay != 6.0 {
		t.Errorf("avg helmeted per day: got %v, want 6", got.AvgHelmetedPerDay)
	}
	if got.AvgUnhelmetedPerDay != 3.0 {
		t.Errorf("avg unhelmeted per day: got %v, want 3", got.AvgUnhelmetedPerDay)
	}
}

func TestMonthlySummaryWithNoDates(t *testing.T) {
	_, err := MonthlySummary(nil)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

package report

import (
	"errors"
	"testing"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

func TestSelectOverview(t *testing.T) {
	spec, err := Select(models.ModeOverview, sampleRows())
	if err != nil {
		t.Fatal(err)
	}
	if spec.Summary == nil || spec.Summary.RecordCount != 4 {
		t.Fatalf("expected summary over 4 records, got %+v", spec.Summary)
	}
	if len(spec.Charts) != 1 || spec.Charts[0].CategoryAxis != "helmetStatus" {
		t.Fatalf("expected one helmet-status chart, got %+v", spec.Charts)
	}
	if spec.Groups != nil {
		t.Fatalf("overview must not group, got %+v", spec.Groups)
	}
}

func TestSelectByAreaGroupsAndCharts(t *testing.T) {
	spec, err := Select(models.ModeByArea, sampleRows())
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Groups) != 3 {
		t.Fatalf("expected 3 area groups, got %+v", spec.Groups)
	}
	chart := spec.Charts[0]
	if chart.CategoryAxis != "area" || len(chart.Series) != 2 {
		t.Fatalf("expected grouped area chart with 2 series, got %+v", chart)
	}
	if len(chart.Series[0].Points) != len(spec.Groups) {
		t.Fatalf("chart points (%d) must match groups (%d)", len(chart.Series[0].Points), len(spec.Groups))
	}
}

func TestSelectMonthlyBreakdown(t *testing.T) {
	spec, err := Select(models.ModeMonthlyReport, sampleRows())
	if err != nil {
		t.Fatal(err)
	}
	if spec.Monthly == nil {
		t.Fatal("expected monthly summary block")
	}
	if len(spec.Breakdown) != 3 {
		t.Fatalf("expected per-contractor breakdown, got %+v", spec.Breakdown)
	}
}

func TestSelectEmptyRowsRendersZeros(t *testing.T) {
	for _, mode := range []models.ReportMode{
		models.ModeOverview, models.ModeByArea, models.ModeByContractor, models.ModeMonthlyReport,
	} {
		spec, err := Select(mode, nil)
		if err != nil {
			t.Fatalf("mode %s: empty rows must render, got %v", mode, err)
		}
		if !spec.Empty {
			t.Errorf("mode %s: expected Empty flag", mode)
		}
	}
}

func TestSelectUnknownMode(t *testing.T) {
	_, err := Select("WEEKLY", sampleRows())
	if err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
	if errors.Is(err, ErrInsufficientData) {
		t.Fatalf("wrong error: %v", err)
	}
}

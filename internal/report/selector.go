package report

import (
	"fmt"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

// Select maps a report mode onto the aggregation output and chart shapes
// the presentation layer should render. Pure dispatch: the mode and the
// already-filtered rows fully determine the result.
func Select(mode models.ReportMode, rows []models.Observation) (*models.RenderSpec, error) {
	spec := &models.RenderSpec{Mode: mode, Empty: len(rows) == 0}

	switch mode {
	case models.ModeOverview:
		sums := Totals(rows)
		spec.Summary = &models.Summary{MeasureSums: sums, RecordCount: len(rows)}
		spec.Charts = []models.ChartSpec{statusChart(sums)}

	case models.ModeByArea:
		sums := Totals(rows)
		spec.Summary = &models.Summary{MeasureSums: sums, RecordCount: len(rows)}
		spec.Groups = GroupTotals(rows, GroupArea)
		spec.Charts = []models.ChartSpec{
			groupedChart("Helmet compliance by area", "area", spec.Groups),
		}

	case models.ModeByContractor:
		sums := Totals(rows)
		spec.Summary = &models.Summary{MeasureSums: sums, RecordCount: len(rows)}
		spec.Groups = GroupTotals(rows, GroupContractor)
		spec.Charts = []models.ChartSpec{
			groupedChart("Helmet compliance by contractor", "contractor", spec.Groups),
		}

	case models.ModeMonthlyReport:
		if spec.Empty {
			// Zero rows is a displayable state; the five-metric block
			// just reports zeros without dividing.
			spec.Monthly = &models.MonthlySummary{}
			return spec, nil
		}
		monthly, err := MonthlySummary(rows)
		if err != nil {
			return nil, err
		}
		spec.Monthly = monthly
		spec.Breakdown = GroupTotals(rows, GroupContractor)
		spec.Charts = []models.ChartSpec{
			groupedChart("Monthly totals by contractor", "contractor", spec.Breakdown),
		}

	default:
		return nil, fmt.Errorf("unknown report mode %q", mode)
	}

	return spec, nil
}

// statusChart is the two-bar helmeted/unhelmeted chart of the overview
func statusChart(sums models.MeasureSums) models.ChartSpec {
	return models.ChartSpec{
		Title:        "Helmet status",
		CategoryAxis: "helmetStatus",
		ValueAxis:    "count",
		Series: []models.ChartSeries{{
			Name: "observations",
			Points: []models.ChartPoint{
				{Label: "helmeted", Value: sums.Helmeted},
				{Label: "unhelmeted", Value: sums.Unhelmeted},
			},
		}},
	}
}

// groupedChart renders one helmeted and one unhelmeted series over the
// grouping keys
func groupedChart(title, categoryAxis string, groups []models.GroupSums) models.ChartSpec {
	helmeted := make([]models.ChartPoint, 0, len(groups))
	unhelmeted := make([]models.ChartPoint, 0, len(groups))
	for _, g := range groups {
		helmeted = append(helmeted, models.ChartPoint{Label: g.Key, Value: g.Helmeted})
		unhelmeted = append(unhelmeted, models.ChartPoint{Label: g.Key, Value: g.Unhelmeted})
	}
	return models.ChartSpec{
		Title:        title,
		CategoryAxis: categoryAxis,
		ValueAxis:    "count",
		Series: []models.ChartSeries{
			{Name: "helmeted", Points: helmeted},
			{Name: "unhelmeted", Points: unhelmeted},
		},
	}
}

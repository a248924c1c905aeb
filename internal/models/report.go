package models

// ReportMode selects which report view the pipeline produces
type ReportMode string

const (
	ModeOverview      ReportMode = "OVERVIEW"
	ModeByArea        ReportMode = "BY_AREA"
	ModeByContractor  ReportMode = "BY_CONTRACTOR"
	ModeMonthlyReport ReportMode = "MONTHLY"
)

// MeasureSums holds the three summed observation measures
type MeasureSums struct {
	Helmeted   int `json:"helmeted"`
	Unhelmeted int `json:"unhelmeted"`
	Total      int `json:"total"`
}

// GroupSums is the summed measures for one grouping key (area code or contractor)
type GroupSums struct {
	Key string `json:"key"`
	MeasureSums
}

// Summary is the ungrouped totals block shown on daily views
type Summary struct {
	MeasureSums
	RecordCount int `json:"recordCount"`
}

// MonthlySummary is the five-metric block of the monthly view.
// Averages divide by the number of distinct observation dates in the
// filtered set, not by calendar days in the month.
type MonthlySummary struct {
	MeasureSums
	DistinctDates       int     `json:"distinctDates"`
	AvgHelmetedPerDay   float64 `json:"avgHelmetedPerDay"`
	AvgUnhelmetedPerDay float64 `json:"avgUnhelmetedPerDay"`
}

// ChartPoint is one bar of a chart series
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ChartSeries is a named sequence of chart points
type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartSpec describes one bar chart for the presentation layer
type ChartSpec struct {
	Title        string        `json:"title"`
	CategoryAxis string        `json:"categoryAxis"` // area, contractor, or helmetStatus
	ValueAxis    string        `json:"valueAxis"`
	Series       []ChartSeries `json:"series"`
}

// RenderSpec is the full output handed to the presentation layer for one
// report request. Fields not used by the requested mode stay nil.
type RenderSpec struct {
	Mode      ReportMode      `json:"mode"`
	Empty     bool            `json:"empty"` // zero rows after filtering; valid, not an error
	Summary   *Summary        `json:"summary,omitempty"`
	Monthly   *MonthlySummary `json:"monthly,omitempty"`
	Groups    []GroupSums     `json:"groups,omitempty"`
	Breakdown []GroupSums     `json:"breakdown,omitempty"` // monthly per-contractor itemization
	Charts    []ChartSpec     `json:"charts,omitempty"`
}

// FilterOptions feeds the selector dropdowns of the UI
type FilterOptions struct {
	Areas       []string `json:"areas"`
	Contractors []string `json:"contractors"`
	StoreIDs    []string `json:"storeIds"`
}

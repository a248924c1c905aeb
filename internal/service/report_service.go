package service

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
	"github.com/siamvision/helmet-reports-backend-go/internal/report"
	"github.com/siamvision/helmet-reports-backend-go/internal/source"
)

// ErrSuperseded means a newer report request started while this one was
// still fetching; the stale snapshot is discarded instead of rendered.
var ErrSuperseded = errors.New("request superseded by a newer one")

// ReportService runs the reporting pipeline: fetch, normalize, filter,
// aggregate, select. Stateless across requests apart from the fetch
// generation counter.
type ReportService struct {
	src source.Source
	gen atomic.Uint64
}

// NewReportService creates a new report service
func NewReportService(src source.Source) *ReportService {
	return &ReportService{src: src}
}

// snapshot fetches and normalizes the full row set. Each call bumps the
// request generation; a snapshot that finishes after a newer request
// started is thrown away.
func (s *ReportService) snapshot(ctx context.Context) ([]models.Observation, error) {
	gen := s.gen.Add(1)

	raw, err := s.src.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.gen.Load() != gen {
		return nil, ErrSuperseded
	}

	return report.Normalize(raw)
}

// DailyReport produces the single-day overview plus the filtered rows
// for the tabular dump
func (s *ReportService) DailyReport(ctx context.Context, f models.ReportFilter) (*models.RenderSpec, []models.Observation, error) {
	rows, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	filtered := report.Apply(rows, report.DailyCriteria(f))
	spec, err := report.Select(models.ModeOverview, filtered)
	if err != nil {
		return nil, nil, err
	}
	return spec, filtered, nil
}

// AreaReport produces the per-area breakdown
func (s *ReportService) AreaReport(ctx context.Context, f models.ReportFilter) (*models.RenderSpec, error) {
	return s.dailyMode(ctx, f, models.ModeByArea)
}

// ContractorReport produces the per-contractor breakdown
func (s *ReportService) ContractorReport(ctx context.Context, f models.ReportFilter) (*models.RenderSpec, error) {
	return s.dailyMode(ctx, f, models.ModeByContractor)
}

func (s *ReportService) dailyMode(ctx context.Context, f models.ReportFilter, mode models.ReportMode) (*models.RenderSpec, error) {
	rows, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filtered := report.Apply(rows, report.DailyCriteria(f))
	return report.Select(mode, filtered)
}

// MonthlyReport produces the monthly summary and per-contractor
// itemization for one calendar month
func (s *ReportService) MonthlyReport(ctx context.Context, f models.MonthlyFilter) (*models.RenderSpec, error) {
	rows, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filtered := report.Apply(rows, report.MonthlyCriteria(f))
	return report.Select(models.ModeMonthlyReport, filtered)
}

// Records returns the filtered rows without aggregation
func (s *ReportService) Records(ctx context.Context, f models.ReportFilter) ([]models.Observation, error) {
	rows, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.Apply(rows, report.DailyCriteria(f)), nil
}

// FilterOptions returns the dropdown values for the filter form: the
// fixed area codes plus the distinct contractors and store ids present
// in the current data
func (s *ReportService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	rows, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	contractors := make(map[string]struct{})
	storeIDs := make(map[string]struct{})
	for _, row := range rows {
		contractors[row.Contractor] = struct{}{}
		storeIDs[row.StoreID] = struct{}{}
	}

	opts := &models.FilterOptions{
		Areas:       append([]string(nil), models.AreaCodes...),
		Contractors: sortedKeys(contractors),
		StoreIDs:    sortedKeys(storeIDs),
	}
	return opts, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

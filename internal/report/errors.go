package report

import "errors"

var (
	// ErrMalformedRecord means a fetched row failed normalization. The
	// whole batch is rejected so aggregates are never silently wrong.
	ErrMalformedRecord = errors.New("malformed record in source data")

	// ErrInsufficientData means a monthly average was requested over a
	// filtered set with zero distinct observation dates.
	ErrInsufficientData = errors.New("insufficient data for per-day averages")
)

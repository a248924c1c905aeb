// Package source provides the data-source adapters the reporting
// pipeline reads observation rows from. A Source fetches the full row
// set of one table on every call; filtering and aggregation happen
// downstream, in memory.
package source

import (
	"context"
	"errors"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

var (
	// ErrSourceUnavailable means the backing store could not be reached
	// or authenticated, after the single transient-failure retry.
	ErrSourceUnavailable = errors.New("data source unavailable")

	// ErrSchemaMismatch means the fetched table is missing an expected
	// column. The batch is rejected whole; no partial results.
	ErrSchemaMismatch = errors.New("data source schema mismatch")
)

// Source is a read-only tabular store of observation rows.
// Implementations must be safe for concurrent use; the handle is built
// once at startup and shared across requests.
type Source interface {
	// FetchAll reads every row of the observation table. All-or-nothing:
	// on any failure no rows are returned. An empty table yields an
	// empty slice, not an error.
	FetchAll(ctx context.Context) ([]models.RawRecord, error)
}

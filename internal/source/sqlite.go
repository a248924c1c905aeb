package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

// SQLiteSource reads the observation table from a local sqlite snapshot.
// Used for offline and demo operation; the pipeline treats it exactly
// like the remote sheet, fetch-all then filter in memory.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource creates a sqlite source over an already-opened handle
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// FetchAll reads every row of the observations table
func (s *SQLiteSource) FetchAll(ctx context.Context) ([]models.RawRecord, error) {
	query := `SELECT area, contractor, store_id, timestamp, helmeted, unhelmeted, total
		FROM observations`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	defer rows.Close()

	out := []models.RawRecord{}
	for rows.Next() {
		var (
			area, contractor, timestamp string
			storeID                     interface{}
			helmeted, unhelmeted, total int64
		)
		if err := rows.Scan(&area, &contractor, &storeID, &timestamp, &helmeted, &unhelmeted, &total); err != nil {
			return nil, fmt.Errorf("%w: failed to scan row: %v", ErrSourceUnavailable, err)
		}
		out = append(out, models.RawRecord{
			models.ColArea:       area,
			models.ColContractor: contractor,
			// store_id keeps whatever type the driver produced; the
			// normalization layer canonicalizes it to a string.
			models.ColStoreID:    storeID,
			models.ColTimestamp:  timestamp,
			models.ColHelmeted:   helmeted,
			models.ColUnhelmeted: unhelmeted,
			models.ColTotal:      total,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return out, nil
}

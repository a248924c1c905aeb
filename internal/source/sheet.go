package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

// SheetSource reads the observation table from the remote sheet API as
// records keyed by column header. One GET per FetchAll; nothing is
// cached, so every report renders against data current at request time.
type SheetSource struct {
	httpClient *http.Client
	baseURL    string
	table      string
	token      string
}

// NewSheetSource creates a sheet source for the given API base URL and
// table name. The bearer token may be empty for unauthenticated stores.
// timeout bounds each fetch attempt end to end.
func NewSheetSource(baseURL, table, token string, timeout time.Duration) *SheetSource {
	return &SheetSource{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		table:      table,
		token:      token,
	}
}

// FetchAll reads every row of the table. One retry on a transient
// network error or 5xx; auth and schema failures are not retried.
func (s *SheetSource) FetchAll(ctx context.Context) ([]models.RawRecord, error) {
	rows, err := s.fetchOnce(ctx)
	if err == nil {
		return rows, nil
	}
	if !isTransient(err) || ctx.Err() != nil {
		return nil, err
	}
	rows, retryErr := s.fetchOnce(ctx)
	if retryErr != nil {
		return nil, retryErr
	}
	return rows, nil
}

func (s *SheetSource) fetchOnce(ctx context.Context) ([]models.RawRecord, error) {
	url := fmt.Sprintf("%s/tables/%s/records", s.baseURL, s.table)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, transientErr(err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: authentication rejected (status %d)", ErrSourceUnavailable, res.StatusCode)
	case res.StatusCode >= 500:
		return nil, transientErr(fmt.Errorf("status %d", res.StatusCode))
	case res.StatusCode >= 400:
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrSourceUnavailable, res.StatusCode, string(body))
	}

	var result struct {
		Records []models.RawRecord `json:"records"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrSourceUnavailable, err)
	}

	if err := checkColumns(result.Records); err != nil {
		return nil, err
	}
	if result.Records == nil {
		result.Records = []models.RawRecord{}
	}
	return result.Records, nil
}

// checkColumns verifies the table carries every expected header before
// any row is handed downstream
func checkColumns(rows []models.RawRecord) error {
	if len(rows) == 0 {
		return nil
	}
	for _, col := range models.RequiredColumns {
		if _, ok := rows[0][col]; !ok {
			return fmt.Errorf("%w: missing column %q", ErrSchemaMismatch, col)
		}
	}
	return nil
}

// transientError marks a failure worth one retry
type transientError struct{ err error }

func (e *transientError) Error() string { return fmt.Sprintf("data source unavailable: %v", e.err) }
func (e *transientError) Unwrap() error { return ErrSourceUnavailable }

func transientErr(err error) error { return &transientError{err: err} }

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

// Normalize converts raw source rows into canonical observations.
// Store IDs are coerced to strings unconditionally: the source may hand
// back the numeric 7 or the text "7" for the same store, and both must
// compare equal as "7" (and stored leading zeros must survive).
//
// Any row that fails coercion rejects the whole batch with
// ErrMalformedRecord; partial results would render silently wrong sums.
func Normalize(rows []models.RawRecord) ([]models.Observation, error) {
	out := make([]models.Observation, 0, len(rows))
	for i, row := range rows {
		obs, err := normalizeRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, obs)
	}
	return out, nil
}

func normalizeRow(row models.RawRecord) (models.Observation, error) {
	var obs models.Observation
	var err error

	if obs.Area, err = stringCell(row, models.ColArea); err != nil {
		return obs, err
	}
	if obs.Contractor, err = stringCell(row, models.ColContractor); err != nil {
		return obs, err
	}
	if obs.StoreID, err = identifierCell(row, models.ColStoreID); err != nil {
		return obs, err
	}
	if obs.Timestamp, err = stringCell(row, models.ColTimestamp); err != nil {
		return obs, err
	}
	if obs.Helmeted, err = countCell(row, models.ColHelmeted); err != nil {
		return obs, err
	}
	if obs.Unhelmeted, err = countCell(row, models.ColUnhelmeted); err != nil {
		return obs, err
	}
	if obs.Total, err = countCell(row, models.ColTotal); err != nil {
		return obs, err
	}
	return obs, nil
}

// stringCell requires the cell to already be text
func stringCell(row models.RawRecord, col string) (string, error) {
	v, ok := row[col]
	if !ok {
		return "", fmt.Errorf("%w: missing column %q", ErrMalformedRecord, col)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: column %q is %T, want string", ErrMalformedRecord, col, v)
	}
	return s, nil
}

// identifierCell coerces a numeric-or-text cell to its canonical string form
func identifierCell(row models.RawRecord, col string) (string, error) {
	v, ok := row[col]
	if !ok {
		return "", fmt.Errorf("%w: missing column %q", ErrMalformedRecord, col)
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		// database/sql drivers may hand TEXT back as raw bytes
		return string(t), nil
	case float64:
		// JSON numbers decode as float64; integral values must print
		// without a decimal part so 7 and "7" compare equal.
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10), nil
		}
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case int:
		return strconv.Itoa(t), nil
	default:
		return "", fmt.Errorf("%w: column %q has unsupported type %T", ErrMalformedRecord, col, v)
	}
}

// countCell coerces a measure cell to a non-negative int
func countCell(row models.RawRecord, col string) (int, error) {
	v, ok := row[col]
	if !ok {
		return 0, fmt.Errorf("%w: missing column %q", ErrMalformedRecord, col)
	}
	var n int
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("%w: column %q has non-integer value %v", ErrMalformedRecord, col, t)
		}
		n = int(t)
	case int64:
		n = int(t)
	case int:
		n = t
	case string:
		parsed, err := strconv.Atoi(t)
		if err != nil {
			return 0, fmt.Errorf("%w: column %q has non-numeric value %q", ErrMalformedRecord, col, t)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: column %q has unsupported type %T", ErrMalformedRecord, col, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: column %q is negative (%d)", ErrMalformedRecord, col, n)
	}
	return n, nil
}

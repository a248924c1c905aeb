package report

import (
	"errors"
	"testing"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
)

func rawRow(overrides map[string]interface{}) models.RawRecord {
	row := models.RawRecord{
		models.ColArea:       "BE",
		models.ColContractor: "X",
		models.ColStoreID:    "001",
		models.ColTimestamp:  "2024-01-01",
		models.ColHelmeted:   float64(5),
		models.ColUnhelmeted: float64(2),
		models.ColTotal:      float64(7),
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestNormalizeCanonicalizesStoreID(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"json number", float64(7), "7"},
		{"string", "7", "7"},
		{"int64 from sqlite", int64(7), "7"},
		{"leading zeros preserved", "007", "007"},
		{"bytes from driver", []byte("042"), "042"},
	}

	for _, tc := range cases {
		rows, err := Normalize([]models.RawRecord{rawRow(map[string]interface{}{models.ColStoreID: tc.value})})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if rows[0].StoreID != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, rows[0].StoreID, tc.want)
		}
	}
}

func TestNormalizeRejectsWholeBatchOnMalformedRow(t *testing.T) {
	rows := []models.RawRecord{
		rawRow(nil),
		rawRow(map[string]interface{}{models.ColHelmeted: "not a number"}),
	}

	got, err := Normalize(rows)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	if got != nil {
		t.Fatalf("no partial results on failure, got %v", got)
	}
}

func TestNormalizeRejectsMissingColumn(t *testing.T) {
	row := rawRow(nil)
	delete(row, models.ColTimestamp)

	_, err := Normalize([]models.RawRecord{row})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestNormalizeRejectsNegativeCounts(t *testing.T) {
	_, err := Normalize([]models.RawRecord{rawRow(map[string]interface{}{models.ColUnhelmeted: float64(-1)})})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestNormalizeEmptyBatch(t *testing.T) {
	rows, err := Normalize(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty slice, got %v", rows)
	}
}

package models

// Column names expected from the tabular source, keyed by header.
const (
	ColArea       = "area"
	ColContractor = "contractor"
	ColStoreID    = "store_id"
	ColTimestamp  = "timestamp"
	ColHelmeted   = "helmeted"
	ColUnhelmeted = "unhelmeted"
	ColTotal      = "total"
)

// RequiredColumns lists every column a source row must carry.
var RequiredColumns = []string{
	ColArea, ColContractor, ColStoreID, ColTimestamp,
	ColHelmeted, ColUnhelmeted, ColTotal,
}

// AreaCodes is the fixed set of facility area codes.
var AreaCodes = []string{
	"BE", "BG", "BN", "BS", "BW",
	"NEL", "REL", "RSL", "RC", "RN",
	"NEU", "REU", "RSU",
}

// RawRecord is one source row as fetched, keyed by column header.
// Cell values arrive as whatever the source driver produced (string,
// float64, int64), before normalization.
type RawRecord map[string]interface{}

// Observation is one normalized helmet-compliance observation row.
// StoreID stays a string even when the source stores it as a number;
// leading zeros must survive filtering.
type Observation struct {
	Area       string `json:"area"`
	Contractor string `json:"contractor"`
	StoreID    string `json:"storeId"`
	Timestamp  string `json:"timestamp"` // YYYY-MM-DD, optionally with a trailing time part
	Helmeted   int    `json:"helmeted"`
	Unhelmeted int    `json:"unhelmeted"`
	// Total is supplied by the source independently. It usually equals
	// Helmeted+Unhelmeted but the source does not enforce that, so it is
	// passed through as-is and never recomputed.
	Total int `json:"total"`
}

package models

import "strings"

// ReportFilter represents filter parameters for the daily report views
type ReportFilter struct {
	Area       string `form:"area"`       // "All" or one of the 13 area codes
	Contractor string `form:"contractor"` // "All" or free text
	StoreID    string `form:"storeId"`    // "All" or an opaque identifier
	Date       string `form:"date"`       // YYYY-MM-DD, matched by substring
}

// MonthlyFilter represents filter parameters for the monthly report view
type MonthlyFilter struct {
	Area       string `form:"area"`
	Contractor string `form:"contractor"`
	StoreID    string `form:"storeId"`
	Year       int    `form:"year"`
	Month      int    `form:"month"` // 1-12
}

// IsAll reports whether a filter value is the no-constraint sentinel.
// The original form sends "All"/"ALL"; an absent parameter means the same.
func IsAll(v string) bool {
	return v == "" || strings.EqualFold(v, "all")
}

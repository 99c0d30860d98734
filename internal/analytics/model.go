package analytics

import "time"

// Snapshot is the aggregated margin view of one organization's active menu,
// recomputed on demand and kept for the dashboard.
type Snapshot struct {
	ID              int       `json:"id"`
	OrganizationID  string    `json:"organization_id"`
	AvgMarginPct    float64   `json:"avg_margin_percentage"`
	MedianMarginPct float64   `json:"median_margin_percentage"`
	ItemCount       int       `json:"item_count"`
	ExcellentCount  int       `json:"excellent_count"`
	GoodCount       int       `json:"good_count"`
	WarningCount    int       `json:"warning_count"`
	DangerCount     int       `json:"danger_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

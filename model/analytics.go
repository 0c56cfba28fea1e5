package model

import "time"

// MatchEvent represents a single match query for analytics tracking.
type MatchEvent struct {
	Styles       []string      `json:"styles"`
	Filtered     bool          `json:"filtered"` // any hard filter present in the query
	ResponseTime time.Duration `json:"response_time"`
	PoolSize     int           `json:"pool_size"`
	ResultCount  int           `json:"result_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularStyle is aggregated demand for a single style tag.
type PopularStyle struct {
	Style      string `json:"style"`
	QueryCount int    `json:"query_count"`
}

// AnalyticsDashboard is the aggregate view served by GET /analytics.
type AnalyticsDashboard struct {
	TotalMatches24h int            `json:"total_matches_24h"`
	AvgResponseTime int64          `json:"avg_response_time_ms"`
	AvgPoolSize     float64        `json:"avg_pool_size"`
	AvgResultCount  float64        `json:"avg_result_count"`
	FilteredPercent float64        `json:"filtered_percent"`
	PopularStyles   []PopularStyle `json:"popular_styles"`
	TotalCreators   int            `json:"total_creators"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

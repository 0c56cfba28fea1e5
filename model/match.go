package model

import "time"

// QueryFilters carries a client's match preferences. Every field is optional
// and independently nullable; the API layer validates ranges before the
// filters reach the scorer.
type QueryFilters struct {
	Styles     []string   `json:"styles,omitempty"`
	BudgetMin  *float64   `json:"budget_min,omitempty"`
	BudgetMax  *float64   `json:"budget_max,omitempty"`
	DistanceKm *float64   `json:"distance_km,omitempty"`
	DateStart  *time.Time `json:"date_start,omitempty"`
	DateEnd    *time.Time `json:"date_end,omitempty"`
	ClientLat  *float64   `json:"client_lat,omitempty"`
	ClientLng  *float64   `json:"client_lng,omitempty"`
}

// HasBudget reports whether both budget bounds are present. The budget term
// only hard-filters when the client supplied a complete range.
func (f QueryFilters) HasBudget() bool {
	return f.BudgetMin != nil && f.BudgetMax != nil
}

// HasDateWindow reports whether both ends of the desired date window are present.
func (f QueryFilters) HasDateWindow() bool {
	return f.DateStart != nil && f.DateEnd != nil
}

// HasClientLocation reports whether both client coordinates are present.
func (f QueryFilters) HasClientLocation() bool {
	return f.ClientLat != nil && f.ClientLng != nil
}

// ScoredCreator is a candidate annotated with the scorer's output.
// DistanceKm is nil when either side of the distance computation lacked
// coordinates. Candidates that fail a hard filter never leave the ranker,
// so PassesHardFilters is not serialized.
type ScoredCreator struct {
	Candidate
	MatchScore        int      `json:"match_score"`
	DistanceKm        *float64 `json:"distance"`
	PassesHardFilters bool     `json:"-"`
}

// Package model defines the domain types exchanged between the API layer,
// the record store, and the match scorer.
package model

import "time"

// Creator is a photographer profile offered on the marketplace.
//
// Lat/Lng and MinProjectBudgetUSD are pointers because profiles are allowed
// to omit them; the match scorer treats absent values as indeterminate
// rather than failing (see internal/matching).
type Creator struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	Bio                 string    `json:"bio,omitempty"`
	Lat                 *float64  `json:"lat"`
	Lng                 *float64  `json:"lng"`
	TravelRadiusKm      float64   `json:"travel_radius_km"`
	MinProjectBudgetUSD *float64  `json:"min_project_budget_usd"`
	Styles              []string  `json:"styles"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// PortfolioImage is a single image in a creator's portfolio.
type PortfolioImage struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creator_id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Tags      []string  `json:"tags"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Project is a published body of work (a shoot, a series) on a creator profile.
type Project struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	CoverURL    string    `json:"cover_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AvailabilityBlock is a closed interval during which a creator is bookable.
type AvailabilityBlock struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creator_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// Candidate is a creator with its portfolio, projects, and availability
// already attached. The store materializes candidates before scoring; the
// scorer never performs I/O of its own.
type Candidate struct {
	Creator
	PortfolioImages []PortfolioImage    `json:"portfolio_images"`
	Projects        []Project           `json:"projects"`
	Availability    []AvailabilityBlock `json:"availability"`
}

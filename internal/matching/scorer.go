// Package matching implements the creator match scorer: a pure,
// single-pass transform from (candidate pool, query filters) to a ranked,
// hard-filtered list of scored creators.
//
// Each candidate is scored by four bounded, non-negative terms:
//
//	distance     up to 10 points
//	budget       up to 20 points
//	availability up to 30 points
//	style        up to 40 points
//
// so totals always land in [0, 100]. Distance, budget, and availability can
// also raise a hard-filter failure, which removes the candidate from the
// output entirely. Missing candidate data never hard-fails on its own: it
// is treated as indeterminate and scores a neutral default instead.
package matching

import (
	"math"

	"github.com/lenslink/lenslink/internal/geo"
	"github.com/lenslink/lenslink/internal/tags"
	"github.com/lenslink/lenslink/model"
)

// Per-term score ceilings and neutral defaults.
const (
	distanceCeiling     = 10.0
	budgetCeiling       = 20.0
	availabilityCeiling = 30.0
	styleCeiling        = 40.0

	budgetFlat       = 10.0 // candidate priced, no budget filter supplied
	availabilityFlat = 15.0 // no date filter or no availability data
	styleFlat        = 20.0 // candidate tagged, no styles requested
)

// ScoreCreator computes one candidate's score, distance, and hard-filter
// verdict against the query filters. It never mutates its inputs and never
// fails: absent fields score their neutral defaults.
func ScoreCreator(c model.Candidate, f model.QueryFilters) model.ScoredCreator {
	score := 0.0
	passes := true

	distance := distanceKm(c, f)

	// Distance term. Skipped entirely when either side lacks coordinates:
	// no points, no failure, distance stays nil.
	if distance != nil {
		d := *distance
		if f.DistanceKm != nil && d > *f.DistanceKm {
			passes = false
		}
		// A non-positive travel radius means the creator does not travel.
		if c.TravelRadiusKm > 0 && d <= c.TravelRadiusKm {
			score += distanceCeiling * (1 - d/c.TravelRadiusKm)
		}
	}

	score, passes = budgetTerm(c, f, score, passes)
	score, passes = availabilityTerm(c, f, score, passes)
	score += styleTerm(c, f)

	return model.ScoredCreator{
		Candidate:         c,
		MatchScore:        int(math.Round(score)),
		DistanceKm:        distance,
		PassesHardFilters: passes,
	}
}

// distanceKm returns the client-to-candidate distance, or nil when either
// coordinate pair is absent.
func distanceKm(c model.Candidate, f model.QueryFilters) *float64 {
	if !f.HasClientLocation() || c.Lat == nil || c.Lng == nil {
		return nil
	}
	d := geo.Haversine(*f.ClientLat, *f.ClientLng, *c.Lat, *c.Lng)
	return &d
}

// budgetTerm awards up to 20 points. With a complete budget filter the
// candidate's minimum price must not exceed the filter maximum (hard
// filter); the award scales with closeness to the filter minimum. Without a
// budget filter a priced candidate gets a flat 10. A candidate with no
// minimum price scores 0 here but is never hard-failed: absent data is
// indeterminate, not disqualifying.
func budgetTerm(c model.Candidate, f model.QueryFilters, score float64, passes bool) (float64, bool) {
	if c.MinProjectBudgetUSD == nil {
		return score, passes
	}
	minPrice := *c.MinProjectBudgetUSD

	if !f.HasBudget() {
		return score + budgetFlat, passes
	}

	if minPrice > *f.BudgetMax {
		return score, false
	}

	if *f.BudgetMin > 0 {
		fit := 1 - math.Abs(minPrice-*f.BudgetMin) / *f.BudgetMax
		if fit < 0 {
			fit = 0
		}
		return score + budgetCeiling*fit, passes
	}
	return score + budgetCeiling, passes
}

// availabilityTerm awards 30 points when at least one availability block
// overlaps the requested window, hard-fails when blocks exist but none
// overlap, and awards a flat 15 (available by default) when there is no
// date filter or no availability data.
func availabilityTerm(c model.Candidate, f model.QueryFilters, score float64, passes bool) (float64, bool) {
	if !f.HasDateWindow() || len(c.Availability) == 0 {
		return score + availabilityFlat, passes
	}

	for _, block := range c.Availability {
		if rangesOverlap(*f.DateStart, *f.DateEnd, block.Start, block.End) {
			return score + availabilityCeiling, passes
		}
	}
	return score, false
}

// styleTerm awards Jaccard(requested, candidate tags) * 40 when both sides
// have tags, a flat 20 when the candidate is tagged but nothing was
// requested, and 0 otherwise. The candidate tag set is the union of the
// declared styles, portfolio image tags, and project tags.
func styleTerm(c model.Candidate, f model.QueryFilters) float64 {
	lists := make([][]string, 0, 2+len(c.PortfolioImages)+len(c.Projects))
	lists = append(lists, c.Styles)
	for _, img := range c.PortfolioImages {
		lists = append(lists, img.Tags)
	}
	for _, p := range c.Projects {
		lists = append(lists, p.Tags)
	}
	candidateTags := tags.Union(lists...)
	requested := tags.NormalizeAll(f.Styles)

	switch {
	case len(requested) > 0 && len(candidateTags) > 0:
		return styleCeiling * tags.Jaccard(requested, candidateTags)
	case len(requested) == 0 && len(candidateTags) > 0:
		return styleFlat
	default:
		return 0
	}
}

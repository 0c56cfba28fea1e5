package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lenslink/lenslink/internal/matching"
	"github.com/lenslink/lenslink/internal/tags"
	"github.com/lenslink/lenslink/model"
)

// MatchRequest defines the structure for match queries.
type MatchRequest struct {
	Filters model.QueryFilters `json:"filters"`
}

// MatchResponse is the ranked result of a match query.
type MatchResponse struct {
	Creators []model.ScoredCreator `json:"creators"`
	Total    int                   `json:"total"`
	PoolSize int                   `json:"pool_size"`
	Took     int64                 `json:"took"` // milliseconds
}

// MatchHandler scores the whole creator pool against the caller's filters
// and returns the survivors ordered by descending match score.
// Request Body: MatchRequest
func (api *API) MatchHandler(c *gin.Context) {
	startTime := time.Now()

	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateMatchFilters(&req.Filters); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	req.Filters.Styles = tags.NormalizeAll(req.Filters.Styles)

	pool, err := api.store.ListCandidates(c.Request.Context())
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeMatchFailed,
			"Failed to load the creator pool: "+err.Error())
		return
	}

	ranked := matching.Rank(pool, req.Filters)

	responseTime := time.Since(startTime)
	event := model.MatchEvent{
		Styles:       req.Filters.Styles,
		Filtered:     api.hasHardFilters(req.Filters),
		ResponseTime: responseTime,
		PoolSize:     len(pool),
		ResultCount:  len(ranked),
	}

	// Appends to the in-memory log; persistence happens off the request path.
	if err := api.analytics.TrackMatchEvent(event); err != nil {
		api.logger.Warn("failed to track match event", zap.Error(err))
	}

	c.JSON(http.StatusOK, MatchResponse{
		Creators: ranked,
		Total:    len(ranked),
		PoolSize: len(pool),
		Took:     responseTime.Milliseconds(),
	})
}

// hasHardFilters reports whether the query carries any filter that can
// exclude candidates outright.
func (api *API) hasHardFilters(f model.QueryFilters) bool {
	return f.DistanceKm != nil || f.HasBudget() || f.HasDateWindow()
}

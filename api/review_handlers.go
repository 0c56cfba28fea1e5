package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenslink/lenslink/model"
)

// CreateReviewRequest defines the structure for review submissions.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// CreateReviewHandler files the client's review of a completed booking.
// One review per booking; the client side writes it.
// Request Body: CreateReviewRequest
func (api *API) CreateReviewHandler(c *gin.Context) {
	bookingID := c.Param("bookingId")

	booking, ok := api.loadVisibleBooking(c, bookingID)
	if !ok {
		return
	}
	claims, _ := callerClaims(c)

	if booking.ClientID != claims.UserID {
		SendForbiddenError(c, "Only the booking's client can leave a review")
		return
	}
	if booking.Status != model.BookingStatusCompleted {
		SendError(c, http.StatusConflict, ErrorCodeInvalidTransition,
			"Only completed bookings can be reviewed")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		result := &ValidationResult{}
		result.AddError("rating", "Rating must be between 1 and 5")
		SendValidationError(c, result)
		return
	}

	review, err := api.store.CreateReview(c.Request.Context(), model.Review{
		BookingID: booking.ID,
		CreatorID: booking.CreatorID,
		ClientID:  booking.ClientID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		SendStoreError(c, "review creation", err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListReviewsHandler lists a creator's reviews, newest first.
func (api *API) ListReviewsHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	if _, err := api.store.GetCreator(c.Request.Context(), creatorID); err != nil {
		SendStoreError(c, "creator lookup", err)
		return
	}

	reviews, err := api.store.ListReviewsForCreator(c.Request.Context(), creatorID)
	if err != nil {
		SendStoreError(c, "review listing", err)
		return
	}

	avg := 0.0
	for _, r := range reviews {
		avg += float64(r.Rating)
	}
	if len(reviews) > 0 {
		avg /= float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"total":          len(reviews),
		"average_rating": avg,
	})
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lenslink/lenslink/internal/auth"
	"github.com/lenslink/lenslink/model"
)

// CreateBookingRequest defines the structure for booking requests.
type CreateBookingRequest struct {
	CreatorID string    `json:"creator_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	BudgetUSD float64   `json:"budget_usd"`
	Notes     string    `json:"notes,omitempty"`
}

// CreateBookingHandler files a booking request against a creator. The
// booking starts in pending state; the creator accepts or declines it.
// Request Body: CreateBookingRequest
func (api *API) CreateBookingHandler(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return
	}
	if claims.Role != auth.RoleClient {
		SendForbiddenError(c, "Only clients can request bookings")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result := &ValidationResult{Valid: true}
	if req.CreatorID == "" {
		result.AddError("creator_id", "Creator is required")
	}
	if !req.End.After(req.Start) {
		result.AddError("end", "Booking end must be after start")
	}
	if req.BudgetUSD < 0 {
		result.AddError("budget_usd", "Budget must not be negative")
	}
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	booking, err := api.store.CreateBooking(c.Request.Context(), model.Booking{
		ClientID:  claims.UserID,
		CreatorID: req.CreatorID,
		Start:     req.Start,
		End:       req.End,
		BudgetUSD: req.BudgetUSD,
		Notes:     req.Notes,
		Status:    model.BookingStatusPending,
	})
	if err != nil {
		SendStoreError(c, "booking creation", err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookingHandler retrieves a booking visible to the caller.
func (api *API) GetBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingId")

	booking, ok := api.loadVisibleBooking(c, bookingID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListBookingsHandler lists the caller's bookings, both sides.
func (api *API) ListBookingsHandler(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return
	}

	bookings, err := api.store.ListBookingsForUser(c.Request.Context(), claims.UserID)
	if err != nil {
		SendStoreError(c, "booking listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": len(bookings)})
}

// UpdateBookingStatusRequest defines the structure for status changes.
type UpdateBookingStatusRequest struct {
	Status model.BookingStatus `json:"status"`
}

// UpdateBookingStatusHandler advances a booking through its lifecycle.
// The creator side accepts or declines; either side completes or cancels.
// Request Body: UpdateBookingStatusRequest
func (api *API) UpdateBookingStatusHandler(c *gin.Context) {
	bookingID := c.Param("bookingId")

	booking, ok := api.loadVisibleBooking(c, bookingID)
	if !ok {
		return
	}
	claims, _ := callerClaims(c)

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if !req.Status.IsValid() {
		result := &ValidationResult{}
		result.AddError("status", "Unknown booking status '"+string(req.Status)+"'")
		SendValidationError(c, result)
		return
	}

	if !booking.Status.CanTransitionTo(req.Status) {
		SendError(c, http.StatusConflict, ErrorCodeInvalidTransition,
			"Cannot transition booking from '"+string(booking.Status)+"' to '"+string(req.Status)+"'")
		return
	}

	// Accepting or declining is the creator's call; completing and
	// cancelling are open to both sides.
	if req.Status == model.BookingStatusAccepted || req.Status == model.BookingStatusDeclined {
		if !api.callerOwnsCreator(c, claims, booking.CreatorID) {
			SendForbiddenError(c, "Only the booked creator can accept or decline")
			return
		}
	}

	updated, err := api.store.UpdateBookingStatus(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		SendStoreError(c, "booking status update", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// loadVisibleBooking fetches the booking and verifies the caller is the
// client or the booked creator. It writes the error response on failure.
func (api *API) loadVisibleBooking(c *gin.Context, bookingID string) (model.Booking, bool) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return model.Booking{}, false
	}

	booking, err := api.store.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		SendStoreError(c, "booking lookup", err)
		return model.Booking{}, false
	}

	if booking.ClientID != claims.UserID && !api.callerOwnsCreator(c, claims, booking.CreatorID) {
		SendForbiddenError(c, "Only booking participants can access it")
		return model.Booking{}, false
	}

	return booking, true
}

// callerOwnsCreator reports whether the caller owns the creator profile.
func (api *API) callerOwnsCreator(c *gin.Context, claims auth.Claims, creatorID string) bool {
	creator, err := api.store.GetCreator(c.Request.Context(), creatorID)
	if err != nil {
		return false
	}
	return creator.UserID == claims.UserID
}

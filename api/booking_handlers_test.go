package api

import (
	"net/http"
	"testing"

	"github.com/lenslink/lenslink/internal/auth"
	"github.com/lenslink/lenslink/model"
)

// seedBookingFixture creates a creator profile owned by creatorUser and a
// pending booking filed by clientUser.
func seedBookingFixture(t *testing.T, env *testEnv, clientUser, creatorUser string) (model.Creator, model.Booking) {
	t.Helper()

	creatorToken := env.token(t, creatorUser, auth.RoleCreator)
	w := env.do(t, "POST", "/creators", creatorToken, model.Creator{Name: "Ana"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create profile: %s", w.Body.String())
	}
	var creator model.Creator
	decodeBody(t, w, &creator)

	clientToken := env.token(t, clientUser, auth.RoleClient)
	w = env.do(t, "POST", "/bookings", clientToken, CreateBookingRequest{
		CreatorID: creator.ID,
		Start:     day(10),
		End:       day(11),
		BudgetUSD: 1200,
		Notes:     "rooftop shoot",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create booking: %s", w.Body.String())
	}
	var booking model.Booking
	decodeBody(t, w, &booking)

	return creator, booking
}

func TestCreateBookingHandler(t *testing.T) {
	env := setupTestEnv(t)
	creatorToken := env.token(t, "creator-1", auth.RoleCreator)

	w := env.do(t, "POST", "/creators", creatorToken, model.Creator{Name: "Ana"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create profile: %s", w.Body.String())
	}
	var creator model.Creator
	decodeBody(t, w, &creator)

	tests := []struct {
		name           string
		token          string
		body           CreateBookingRequest
		expectedStatus int
	}{
		{
			name:  "valid booking",
			token: env.token(t, "client-1", auth.RoleClient),
			body: CreateBookingRequest{
				CreatorID: creator.ID,
				Start:     day(10),
				End:       day(11),
				BudgetUSD: 1000,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:  "creators cannot book",
			token: creatorToken,
			body: CreateBookingRequest{
				CreatorID: creator.ID,
				Start:     day(10),
				End:       day(11),
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:  "unknown creator",
			token: env.token(t, "client-1", auth.RoleClient),
			body: CreateBookingRequest{
				CreatorID: "nope",
				Start:     day(10),
				End:       day(11),
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "inverted window",
			token: env.token(t, "client-1", auth.RoleClient),
			body: CreateBookingRequest{
				CreatorID: creator.ID,
				Start:     day(11),
				End:       day(10),
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "negative budget",
			token: env.token(t, "client-1", auth.RoleClient),
			body: CreateBookingRequest{
				CreatorID: creator.ID,
				Start:     day(10),
				End:       day(11),
				BudgetUSD: -1,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, "POST", "/bookings", tt.token, tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	env := setupTestEnv(t)
	_, booking := seedBookingFixture(t, env, "client-1", "creator-1")

	clientToken := env.token(t, "client-1", auth.RoleClient)
	creatorToken := env.token(t, "creator-1", auth.RoleCreator)
	path := "/bookings/" + booking.ID + "/status"

	// The client cannot accept their own request.
	w := env.do(t, "PATCH", path, clientToken, UpdateBookingStatusRequest{Status: model.BookingStatusAccepted})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d: %s", http.StatusForbidden, w.Code, w.Body.String())
	}

	// Skipping straight to completed is an illegal transition.
	w = env.do(t, "PATCH", path, creatorToken, UpdateBookingStatusRequest{Status: model.BookingStatusCompleted})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d, got %d: %s", http.StatusConflict, w.Code, w.Body.String())
	}

	// Unknown status values are rejected outright.
	w = env.do(t, "PATCH", path, creatorToken, UpdateBookingStatusRequest{Status: "paused"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
	}

	// The creator accepts, then either side completes.
	w = env.do(t, "PATCH", path, creatorToken, UpdateBookingStatusRequest{Status: model.BookingStatusAccepted})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	w = env.do(t, "PATCH", path, clientToken, UpdateBookingStatusRequest{Status: model.BookingStatusCompleted})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	// Completed is terminal.
	w = env.do(t, "PATCH", path, clientToken, UpdateBookingStatusRequest{Status: model.BookingStatusCancelled})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d, got %d: %s", http.StatusConflict, w.Code, w.Body.String())
	}
}

func TestBookingVisibility(t *testing.T) {
	env := setupTestEnv(t)
	_, booking := seedBookingFixture(t, env, "client-1", "creator-1")

	// A stranger cannot see the booking.
	strangerToken := env.token(t, "client-2", auth.RoleClient)
	w := env.do(t, "GET", "/bookings/"+booking.ID, strangerToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d", http.StatusForbidden, w.Code)
	}

	// Both participants can.
	for _, tok := range []string{
		env.token(t, "client-1", auth.RoleClient),
		env.token(t, "creator-1", auth.RoleCreator),
	} {
		w = env.do(t, "GET", "/bookings/"+booking.ID, tok, nil)
		if w.Code != http.StatusOK {
			t.Errorf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}
	}

	// Each side sees the booking in their listing.
	var resp struct {
		Bookings []model.Booking `json:"bookings"`
		Total    int             `json:"total"`
	}
	w = env.do(t, "GET", "/bookings", env.token(t, "creator-1", auth.RoleCreator), nil)
	decodeBody(t, w, &resp)
	if resp.Total != 1 {
		t.Errorf("Expected creator to see 1 booking, got %d", resp.Total)
	}
}

func TestReviewFlow(t *testing.T) {
	env := setupTestEnv(t)
	creator, booking := seedBookingFixture(t, env, "client-1", "creator-1")

	clientToken := env.token(t, "client-1", auth.RoleClient)
	creatorToken := env.token(t, "creator-1", auth.RoleCreator)
	reviewPath := "/bookings/" + booking.ID + "/review"
	statusPath := "/bookings/" + booking.ID + "/status"

	// Pending bookings cannot be reviewed.
	w := env.do(t, "POST", reviewPath, clientToken, CreateReviewRequest{Rating: 5})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d, got %d: %s", http.StatusConflict, w.Code, w.Body.String())
	}

	env.do(t, "PATCH", statusPath, creatorToken, UpdateBookingStatusRequest{Status: model.BookingStatusAccepted})
	env.do(t, "PATCH", statusPath, clientToken, UpdateBookingStatusRequest{Status: model.BookingStatusCompleted})

	// The creator cannot review their own work.
	w = env.do(t, "POST", reviewPath, creatorToken, CreateReviewRequest{Rating: 5})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d: %s", http.StatusForbidden, w.Code, w.Body.String())
	}

	// Rating bounds.
	w = env.do(t, "POST", reviewPath, clientToken, CreateReviewRequest{Rating: 6})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	w = env.do(t, "POST", reviewPath, clientToken, CreateReviewRequest{Rating: 5, Comment: "fantastic"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	// One review per booking.
	w = env.do(t, "POST", reviewPath, clientToken, CreateReviewRequest{Rating: 4})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d, got %d: %s", http.StatusConflict, w.Code, w.Body.String())
	}

	w = env.do(t, "GET", "/creators/"+creator.ID+"/reviews", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Reviews       []model.Review `json:"reviews"`
		Total         int            `json:"total"`
		AverageRating float64        `json:"average_rating"`
	}
	decodeBody(t, w, &resp)
	if resp.Total != 1 || resp.AverageRating != 5 {
		t.Errorf("Expected one 5-star review, got total=%d avg=%v", resp.Total, resp.AverageRating)
	}
}

// Package services defines the interfaces the API layer depends on, so
// handlers can be exercised against fakes and the sqlite store stays
// swappable.
package services

import (
	"context"

	"github.com/lenslink/lenslink/model"
)

// CreatorStore manages creator profiles and their attached records.
type CreatorStore interface {
	CreateCreator(ctx context.Context, c model.Creator) (model.Creator, error)
	GetCreator(ctx context.Context, id string) (model.Creator, error)
	UpdateCreator(ctx context.Context, c model.Creator) (model.Creator, error)
	DeleteCreator(ctx context.Context, id string) error
	ListCreators(ctx context.Context, limit, offset int) ([]model.Creator, int, error)

	AddPortfolioImage(ctx context.Context, img model.PortfolioImage) (model.PortfolioImage, error)
	ListPortfolioImages(ctx context.Context, creatorID string) ([]model.PortfolioImage, error)
	AddProject(ctx context.Context, p model.Project) (model.Project, error)
	ListProjects(ctx context.Context, creatorID string) ([]model.Project, error)
	AddAvailability(ctx context.Context, b model.AvailabilityBlock) (model.AvailabilityBlock, error)
	ListAvailability(ctx context.Context, creatorID string) ([]model.AvailabilityBlock, error)

	// ListCandidates materializes every creator with portfolio, projects,
	// and availability attached, ready for the match scorer.
	ListCandidates(ctx context.Context) ([]model.Candidate, error)
}

// SwipeStore records swipe verdicts between users.
type SwipeStore interface {
	// RecordSwipe stores (or replaces) a swipe.
	RecordSwipe(ctx context.Context, s model.Swipe) error
	// HasLike reports whether from has an active like on to.
	HasLike(ctx context.Context, from, to string) (bool, error)
}

// ThreadStore manages conversations and their messages.
type ThreadStore interface {
	// EnsureThread returns the thread between the two users, creating it
	// if none exists. The pair is unordered.
	EnsureThread(ctx context.Context, userA, userB string) (model.Thread, error)
	GetThread(ctx context.Context, id string) (model.Thread, error)
	ListThreads(ctx context.Context, userID string) ([]model.Thread, error)
	AddMessage(ctx context.Context, m model.Message) (model.Message, error)
	ListMessages(ctx context.Context, threadID string, limit, offset int) ([]model.Message, error)
}

// BookingStore manages booking requests.
type BookingStore interface {
	CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, id string) (model.Booking, error)
	ListBookingsForUser(ctx context.Context, userID string) ([]model.Booking, error)
	// UpdateBookingStatus persists a status change already validated by
	// the caller against the booking state machine.
	UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (model.Booking, error)
}

// ReviewStore manages reviews of completed bookings.
type ReviewStore interface {
	// CreateReview stores a review; a second review for the same booking
	// fails with ErrReviewExists.
	CreateReview(ctx context.Context, r model.Review) (model.Review, error)
	ListReviewsForCreator(ctx context.Context, creatorID string) ([]model.Review, error)
}

// Analytics tracks match-query traffic and aggregates it for the dashboard.
type Analytics interface {
	TrackMatchEvent(event model.MatchEvent) error
	GetDashboardData(ctx context.Context) (model.AnalyticsDashboard, error)
}

// Store is the full record store consumed by the API.
type Store interface {
	CreatorStore
	SwipeStore
	ThreadStore
	BookingStore
	ReviewStore
	Close() error
}

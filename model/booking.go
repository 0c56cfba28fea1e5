package model

import "time"

// BookingStatus represents the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is one of the known states.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusDeclined,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step. Declined, completed, and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusAccepted || next == BookingStatusDeclined || next == BookingStatusCancelled
	case BookingStatusAccepted:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		return false
	}
}

// Booking is a client's request to hire a creator for a date window.
type Booking struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"client_id"`
	CreatorID string        `json:"creator_id"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	BudgetUSD float64       `json:"budget_usd"`
	Notes     string        `json:"notes,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Review is a client's rating of a completed booking. One review per booking.
type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	CreatorID string    `json:"creator_id"`
	ClientID  string    `json:"client_id"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

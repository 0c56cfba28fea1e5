package model

import "time"

// SwipeDirection is a user's verdict on a profile card.
type SwipeDirection string

const (
	SwipeLike SwipeDirection = "like"
	SwipePass SwipeDirection = "pass"
)

// IsValid reports whether the direction is one of the known values.
func (d SwipeDirection) IsValid() bool {
	return d == SwipeLike || d == SwipePass
}

// Swipe records one user's verdict on another. A later swipe between the
// same pair replaces the earlier one.
type Swipe struct {
	FromUserID string         `json:"from_user_id"`
	ToUserID   string         `json:"to_user_id"`
	Direction  SwipeDirection `json:"direction"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Thread is a conversation between two matched users. Threads are created
// when a swipe becomes mutual and are the only place messages can live.
type Thread struct {
	ID        string    `json:"id"`
	UserA     string    `json:"user_a"`
	UserB     string    `json:"user_b"`
	CreatedAt time.Time `json:"created_at"`
}

// HasParticipant reports whether userID is one of the two thread members.
func (t Thread) HasParticipant(userID string) bool {
	return t.UserA == userID || t.UserB == userID
}

// Message is a single message inside a thread.
type Message struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

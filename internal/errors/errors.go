// Package errors defines the error vocabulary shared by the store, the
// services, and the API layer. Sentinels support errors.Is checks; the
// typed errors carry enough context for a useful message.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCreatorNotFound is returned when a creator profile is not found
	ErrCreatorNotFound = errors.New("creator not found")

	// ErrBookingNotFound is returned when a booking is not found
	ErrBookingNotFound = errors.New("booking not found")

	// ErrThreadNotFound is returned when a message thread is not found
	ErrThreadNotFound = errors.New("thread not found")

	// ErrReviewExists is returned when a booking already has a review
	ErrReviewExists = errors.New("review already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden is returned when the caller is not allowed to act on the record
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition is returned for illegal booking status changes
	ErrInvalidTransition = errors.New("invalid status transition")
)

// CreatorNotFoundError represents a missing creator with context
type CreatorNotFoundError struct {
	CreatorID string
}

func (e *CreatorNotFoundError) Error() string {
	return fmt.Sprintf("creator with ID '%s' not found", e.CreatorID)
}

func (e *CreatorNotFoundError) Is(target error) bool {
	return target == ErrCreatorNotFound
}

// NewCreatorNotFoundError creates a new CreatorNotFoundError
func NewCreatorNotFoundError(creatorID string) *CreatorNotFoundError {
	return &CreatorNotFoundError{CreatorID: creatorID}
}

// BookingNotFoundError represents a missing booking with context
type BookingNotFoundError struct {
	BookingID string
}

func (e *BookingNotFoundError) Error() string {
	return fmt.Sprintf("booking with ID '%s' not found", e.BookingID)
}

func (e *BookingNotFoundError) Is(target error) bool {
	return target == ErrBookingNotFound
}

// NewBookingNotFoundError creates a new BookingNotFoundError
func NewBookingNotFoundError(bookingID string) *BookingNotFoundError {
	return &BookingNotFoundError{BookingID: bookingID}
}

// ThreadNotFoundError represents a missing thread with context
type ThreadNotFoundError struct {
	ThreadID string
}

func (e *ThreadNotFoundError) Error() string {
	return fmt.Sprintf("thread with ID '%s' not found", e.ThreadID)
}

func (e *ThreadNotFoundError) Is(target error) bool {
	return target == ErrThreadNotFound
}

// NewThreadNotFoundError creates a new ThreadNotFoundError
func NewThreadNotFoundError(threadID string) *ThreadNotFoundError {
	return &ThreadNotFoundError{ThreadID: threadID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidTransitionError represents an illegal booking status change
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from '%s' to '%s'", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

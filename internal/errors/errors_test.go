package errors

import (
	"errors"
	"testing"
)

func TestCreatorNotFoundError(t *testing.T) {
	err := NewCreatorNotFoundError("cr-123")

	expectedMsg := "creator with ID 'cr-123' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrCreatorNotFound) {
		t.Error("Expected error to match ErrCreatorNotFound sentinel")
	}

	if errors.Is(err, ErrBookingNotFound) {
		t.Error("Error should not match ErrBookingNotFound")
	}
}

func TestBookingNotFoundError(t *testing.T) {
	err := NewBookingNotFoundError("bk-9")

	expectedMsg := "booking with ID 'bk-9' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrBookingNotFound) {
		t.Error("Expected error to match ErrBookingNotFound sentinel")
	}
}

func TestThreadNotFoundError(t *testing.T) {
	err := NewThreadNotFoundError("th-1")

	if !errors.Is(err, ErrThreadNotFound) {
		t.Error("Expected error to match ErrThreadNotFound sentinel")
	}
	if errors.Is(err, ErrCreatorNotFound) {
		t.Error("Error should not match ErrCreatorNotFound")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("budget_min", "must be non-negative")

	expectedMsg := "validation error for field 'budget_min': must be non-negative"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}

	// Without a field name
	err2 := NewValidationError("", "bad payload")
	expectedMsg2 := "validation error: bad payload"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}
}

func TestInvalidTransitionError(t *testing.T) {
	err := NewInvalidTransitionError("declined", "accepted")

	expectedMsg := "cannot transition booking from 'declined' to 'accepted'"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidTransition) {
		t.Error("Expected error to match ErrInvalidTransition sentinel")
	}
}

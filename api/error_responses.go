package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/lenslink/lenslink/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrorCodeCreatorNotFound   ErrorCode = "CREATOR_NOT_FOUND"
	ErrorCodeBookingNotFound   ErrorCode = "BOOKING_NOT_FOUND"
	ErrorCodeThreadNotFound    ErrorCode = "THREAD_NOT_FOUND"
	ErrorCodeInvalidJSON       ErrorCode = "INVALID_JSON"
	ErrorCodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden         ErrorCode = "FORBIDDEN"
	ErrorCodeReviewExists      ErrorCode = "REVIEW_ALREADY_EXISTS"
	ErrorCodeInvalidTransition ErrorCode = "INVALID_STATUS_TRANSITION"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrorCodeMatchFailed   ErrorCode = "MATCH_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendCreatorNotFoundError sends a standardized creator not found error
func SendCreatorNotFoundError(c *gin.Context, creatorID string) {
	SendError(c, http.StatusNotFound, ErrorCodeCreatorNotFound,
		"Creator '"+creatorID+"' not found")
}

// SendBookingNotFoundError sends a standardized booking not found error
func SendBookingNotFoundError(c *gin.Context, bookingID string) {
	SendError(c, http.StatusNotFound, ErrorCodeBookingNotFound,
		"Booking '"+bookingID+"' not found")
}

// SendThreadNotFoundError sends a standardized thread not found error
func SendThreadNotFoundError(c *gin.Context, threadID string) {
	SendError(c, http.StatusNotFound, ErrorCodeThreadNotFound,
		"Thread '"+threadID+"' not found")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendUnauthorizedError sends a standardized authentication error
func SendUnauthorizedError(c *gin.Context, message string) {
	SendError(c, http.StatusUnauthorized, ErrorCodeUnauthorized, message)
}

// SendForbiddenError sends a standardized authorization error
func SendForbiddenError(c *gin.Context, message string) {
	SendError(c, http.StatusForbidden, ErrorCodeForbidden, message)
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendStoreError maps well-known store errors to their HTTP responses and
// falls back to an internal error for everything else.
func SendStoreError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCreatorNotFound):
		SendError(c, http.StatusNotFound, ErrorCodeCreatorNotFound, err.Error())
	case errors.Is(err, apperrors.ErrBookingNotFound):
		SendError(c, http.StatusNotFound, ErrorCodeBookingNotFound, err.Error())
	case errors.Is(err, apperrors.ErrThreadNotFound):
		SendError(c, http.StatusNotFound, ErrorCodeThreadNotFound, err.Error())
	case errors.Is(err, apperrors.ErrReviewExists):
		SendError(c, http.StatusConflict, ErrorCodeReviewExists, err.Error())
	case errors.Is(err, apperrors.ErrInvalidTransition):
		SendError(c, http.StatusConflict, ErrorCodeInvalidTransition, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		SendForbiddenError(c, err.Error())
	default:
		SendInternalError(c, operation, err)
	}
}

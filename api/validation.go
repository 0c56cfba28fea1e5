// Package api provides validation utilities for API request handling.
package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lenslink/lenslink/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateMatchFilters validates a match query's filters. Optional fields
// that arrive must be in range, and paired fields (budget bounds, date
// window, client coordinates) must arrive together.
func ValidateMatchFilters(f *model.QueryFilters) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if f.ClientLat != nil && (*f.ClientLat < -90 || *f.ClientLat > 90) {
		result.AddError("client_lat", "Latitude must be between -90 and 90")
	}
	if f.ClientLng != nil && (*f.ClientLng < -180 || *f.ClientLng > 180) {
		result.AddError("client_lng", "Longitude must be between -180 and 180")
	}
	if (f.ClientLat == nil) != (f.ClientLng == nil) {
		result.AddError("client_lat", "client_lat and client_lng must be provided together")
	}

	if f.DistanceKm != nil {
		if *f.DistanceKm < 0 {
			result.AddError("distance_km", "Distance must not be negative")
		} else if *f.DistanceKm > 10000 {
			result.AddError("distance_km", "Distance must not exceed 10000 km")
		}
	}
	if f.DistanceKm != nil && !f.HasClientLocation() {
		result.AddError("distance_km", "distance_km requires client_lat and client_lng")
	}

	if f.BudgetMin != nil && *f.BudgetMin < 0 {
		result.AddError("budget_min", "Budget must not be negative")
	}
	if f.BudgetMax != nil && *f.BudgetMax < 0 {
		result.AddError("budget_max", "Budget must not be negative")
	}
	if (f.BudgetMin == nil) != (f.BudgetMax == nil) {
		result.AddError("budget_min", "budget_min and budget_max must be provided together")
	}
	if f.HasBudget() && *f.BudgetMin > *f.BudgetMax {
		result.AddError("budget_min", "budget_min must not exceed budget_max")
	}

	if (f.DateStart == nil) != (f.DateEnd == nil) {
		result.AddError("date_start", "date_start and date_end must be provided together")
	}
	if f.HasDateWindow() && f.DateStart.After(*f.DateEnd) {
		result.AddError("date_start", "date_start must not be after date_end")
	}

	for _, style := range f.Styles {
		if strings.TrimSpace(style) == "" {
			result.AddError("styles", "Style tags cannot be empty or whitespace-only")
			break
		}
	}

	return result
}

// ValidateCreatorProfile validates a creator profile for creation or update.
func ValidateCreatorProfile(c *model.Creator) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(c.Name) == "" {
		result.AddError("name", "Name is required")
	}
	if c.Lat != nil && (*c.Lat < -90 || *c.Lat > 90) {
		result.AddError("lat", "Latitude must be between -90 and 90")
	}
	if c.Lng != nil && (*c.Lng < -180 || *c.Lng > 180) {
		result.AddError("lng", "Longitude must be between -180 and 180")
	}
	if (c.Lat == nil) != (c.Lng == nil) {
		result.AddError("lat", "lat and lng must be provided together")
	}
	if c.MinProjectBudgetUSD != nil && *c.MinProjectBudgetUSD < 0 {
		result.AddError("min_project_budget_usd", "Minimum budget must not be negative")
	}

	return result
}

// ValidatePagination validates pagination parameters
func ValidatePagination(page, pageSize int) (int, int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	// Set defaults
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	// Validate limits
	if pageSize > 100 {
		pageSize = 100 // Maximum page size
	}

	return page, pageSize, result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

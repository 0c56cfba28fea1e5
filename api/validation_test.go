package api

import (
	"testing"

	"github.com/lenslink/lenslink/model"
)

func TestValidateMatchFilters(t *testing.T) {
	tests := []struct {
		name          string
		filters       model.QueryFilters
		expectValid   bool
		expectedField string
	}{
		{
			name:        "empty filters are valid",
			filters:     model.QueryFilters{},
			expectValid: true,
		},
		{
			name: "complete filters are valid",
			filters: model.QueryFilters{
				Styles:     []string{"wedding"},
				BudgetMin:  floatPtr(500),
				BudgetMax:  floatPtr(2000),
				ClientLat:  floatPtr(40.7),
				ClientLng:  floatPtr(-74.0),
				DistanceKm: floatPtr(100),
				DateStart:  timePtr(day(1)),
				DateEnd:    timePtr(day(5)),
			},
			expectValid: true,
		},
		{
			name: "latitude below range",
			filters: model.QueryFilters{
				ClientLat: floatPtr(-91),
				ClientLng: floatPtr(0),
			},
			expectValid:   false,
			expectedField: "client_lat",
		},
		{
			name: "longitude above range",
			filters: model.QueryFilters{
				ClientLat: floatPtr(0),
				ClientLng: floatPtr(181),
			},
			expectValid:   false,
			expectedField: "client_lng",
		},
		{
			name: "lone latitude",
			filters: model.QueryFilters{
				ClientLat: floatPtr(40),
			},
			expectValid:   false,
			expectedField: "client_lat",
		},
		{
			name: "negative distance",
			filters: model.QueryFilters{
				ClientLat:  floatPtr(40),
				ClientLng:  floatPtr(-74),
				DistanceKm: floatPtr(-5),
			},
			expectValid:   false,
			expectedField: "distance_km",
		},
		{
			name: "distance beyond cap",
			filters: model.QueryFilters{
				ClientLat:  floatPtr(40),
				ClientLng:  floatPtr(-74),
				DistanceKm: floatPtr(10001),
			},
			expectValid:   false,
			expectedField: "distance_km",
		},
		{
			name: "distance without location",
			filters: model.QueryFilters{
				DistanceKm: floatPtr(50),
			},
			expectValid:   false,
			expectedField: "distance_km",
		},
		{
			name: "negative budget",
			filters: model.QueryFilters{
				BudgetMin: floatPtr(-1),
				BudgetMax: floatPtr(100),
			},
			expectValid:   false,
			expectedField: "budget_min",
		},
		{
			name: "budget min above max",
			filters: model.QueryFilters{
				BudgetMin: floatPtr(2000),
				BudgetMax: floatPtr(100),
			},
			expectValid:   false,
			expectedField: "budget_min",
		},
		{
			name: "lone budget bound",
			filters: model.QueryFilters{
				BudgetMax: floatPtr(100),
			},
			expectValid:   false,
			expectedField: "budget_min",
		},
		{
			name: "lone date bound",
			filters: model.QueryFilters{
				DateEnd: timePtr(day(5)),
			},
			expectValid:   false,
			expectedField: "date_start",
		},
		{
			name: "inverted date window",
			filters: model.QueryFilters{
				DateStart: timePtr(day(10)),
				DateEnd:   timePtr(day(5)),
			},
			expectValid:   false,
			expectedField: "date_start",
		},
		{
			name: "blank style tag",
			filters: model.QueryFilters{
				Styles: []string{"wedding", "  "},
			},
			expectValid:   false,
			expectedField: "styles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateMatchFilters(&tt.filters)

			if tt.expectValid {
				if result.HasErrors() {
					t.Errorf("Expected valid filters, got errors: %+v", result.Errors)
				}
				return
			}

			if !result.HasErrors() {
				t.Fatal("Expected validation errors, got none")
			}
			found := false
			for _, err := range result.Errors {
				if err.Field == tt.expectedField {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected an error on field %q, got %+v", tt.expectedField, result.Errors)
			}
		})
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		expectedPage     int
		expectedPageSize int
	}{
		{name: "defaults applied", page: 0, pageSize: 0, expectedPage: 1, expectedPageSize: 10},
		{name: "negative values reset", page: -3, pageSize: -1, expectedPage: 1, expectedPageSize: 10},
		{name: "oversized page capped", page: 2, pageSize: 500, expectedPage: 2, expectedPageSize: 100},
		{name: "valid values kept", page: 3, pageSize: 25, expectedPage: 3, expectedPageSize: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize, result := ValidatePagination(tt.page, tt.pageSize)
			if result.HasErrors() {
				t.Errorf("Expected no errors, got %+v", result.Errors)
			}
			if page != tt.expectedPage || pageSize != tt.expectedPageSize {
				t.Errorf("Expected page=%d size=%d, got page=%d size=%d",
					tt.expectedPage, tt.expectedPageSize, page, pageSize)
			}
		})
	}
}

func TestValidateCreatorProfile(t *testing.T) {
	tests := []struct {
		name        string
		creator     model.Creator
		expectValid bool
	}{
		{
			name:        "valid minimal profile",
			creator:     model.Creator{Name: "Ana"},
			expectValid: true,
		},
		{
			name: "valid located profile",
			creator: model.Creator{
				Name: "Ana",
				Lat:  floatPtr(40.7),
				Lng:  floatPtr(-74.0),
			},
			expectValid: true,
		},
		{
			name:        "whitespace name",
			creator:     model.Creator{Name: " \t"},
			expectValid: false,
		},
		{
			name: "negative minimum budget",
			creator: model.Creator{
				Name:                "Ana",
				MinProjectBudgetUSD: floatPtr(-10),
			},
			expectValid: false,
		},
		{
			name: "lone longitude",
			creator: model.Creator{
				Name: "Ana",
				Lng:  floatPtr(-74.0),
			},
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCreatorProfile(&tt.creator)
			if result.HasErrors() == tt.expectValid {
				t.Errorf("Expected valid=%v, got errors: %+v", tt.expectValid, result.Errors)
			}
		})
	}
}

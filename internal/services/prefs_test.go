package services

import (
	"reflect"
	"testing"

	"planora/internal/models/request_models"
)

func validRequest() request_models.ItineraryRequest {
	return request_models.ItineraryRequest{
		Destination: "Kyoto, Japan",
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-03",
		Budget:      "medium",
		Interests:   []string{"food", "culture"},
	}
}

func TestValidatePreferencesAcceptsValidRequest(t *testing.T) {
	prefs, fieldErrs := ValidatePreferences(validRequest())
	if fieldErrs != nil {
		t.Fatalf("expected no field errors, got %v", fieldErrs)
	}
	if prefs.Destination != "Kyoto, Japan" {
		t.Errorf("destination = %q", prefs.Destination)
	}
	if prefs.Budget != "medium" {
		t.Errorf("budget = %q", prefs.Budget)
	}
	if got := prefs.StartDate.Format("2006-01-02"); got != "2024-05-01" {
		t.Errorf("start date = %q", got)
	}
}

func TestValidatePreferencesFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*request_models.ItineraryRequest)
		field   string
		message string
	}{
		{
			name:    "missing destination",
			mutate:  func(r *request_models.ItineraryRequest) { r.Destination = "   " },
			field:   "destination",
			message: "Destination is required",
		},
		{
			name: "destination too long",
			mutate: func(r *request_models.ItineraryRequest) {
				long := make([]byte, 121)
				for i := range long {
					long[i] = 'a'
				}
				r.Destination = string(long)
			},
			field:   "destination",
			message: "Destination must be 120 characters or fewer",
		},
		{
			name:    "garbage start date",
			mutate:  func(r *request_models.ItineraryRequest) { r.StartDate = "not-a-date" },
			field:   "startDate",
			message: "Start date must be a valid date",
		},
		{
			name:    "garbage end date",
			mutate:  func(r *request_models.ItineraryRequest) { r.EndDate = "05/03/2024" },
			field:   "endDate",
			message: "End date must be a valid date",
		},
		{
			name: "end before start",
			mutate: func(r *request_models.ItineraryRequest) {
				r.StartDate = "2024-05-03"
				r.EndDate = "2024-05-01"
			},
			field:   "endDate",
			message: "End date must be on or after the start date",
		},
		{
			name:    "missing budget",
			mutate:  func(r *request_models.ItineraryRequest) { r.Budget = "" },
			field:   "budget",
			message: "Budget is required",
		},
		{
			name:    "unknown budget",
			mutate:  func(r *request_models.ItineraryRequest) { r.Budget = "lavish" },
			field:   "budget",
			message: "Budget must be one of low, medium, or high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, fieldErrs := ValidatePreferences(req)
			if fieldErrs == nil {
				t.Fatal("expected field errors")
			}
			if got := fieldErrs[tt.field]; got != tt.message {
				t.Errorf("fieldErrs[%q] = %q, want %q", tt.field, got, tt.message)
			}
		})
	}
}

func TestValidatePreferencesCollectsMultipleErrors(t *testing.T) {
	req := request_models.ItineraryRequest{}
	_, fieldErrs := ValidatePreferences(req)
	if fieldErrs == nil {
		t.Fatal("expected field errors")
	}
	for _, field := range []string{"destination", "startDate", "endDate", "budget"} {
		if _, ok := fieldErrs[field]; !ok {
			t.Errorf("missing error for field %q", field)
		}
	}
}

func TestValidatePreferencesNormalizesBudgetCase(t *testing.T) {
	req := validRequest()
	req.Budget = "  HIGH "
	prefs, fieldErrs := ValidatePreferences(req)
	if fieldErrs != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if prefs.Budget != "high" {
		t.Errorf("budget = %q, want %q", prefs.Budget, "high")
	}
}

func TestValidatePreferencesAcceptsTimestampDates(t *testing.T) {
	req := validRequest()
	req.StartDate = "2024-05-01T15:04:05Z"
	req.EndDate = "2024-05-02T08:00:00+09:00"
	prefs, fieldErrs := ValidatePreferences(req)
	if fieldErrs != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if got := prefs.StartDate.Format("2006-01-02"); got != "2024-05-01" {
		t.Errorf("start date = %q", got)
	}
}

func TestNormalizeInterests(t *testing.T) {
	got := normalizeInterests([]string{" food ", "", "Food", "culture", "FOOD", "nature"})
	want := []string{"food", "culture", "nature"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeInterests = %v, want %v", got, want)
	}
}

func TestTravelDaysInclusive(t *testing.T) {
	prefs, fieldErrs := ValidatePreferences(validRequest())
	if fieldErrs != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}

	days := TravelDays(prefs)
	if len(days) != 3 {
		t.Fatalf("len(days) = %d, want 3", len(days))
	}
	if days[0].Day != 1 || days[0].Date != "2024-05-01" || days[0].Label != "May 1, 2024" {
		t.Errorf("first day = %+v", days[0])
	}
	if days[2].Day != 3 || days[2].Date != "2024-05-03" {
		t.Errorf("last day = %+v", days[2])
	}
}

func TestTravelDaysSameDayTrip(t *testing.T) {
	req := validRequest()
	req.EndDate = req.StartDate
	prefs, fieldErrs := ValidatePreferences(req)
	if fieldErrs != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}

	days := TravelDays(prefs)
	if len(days) != 1 {
		t.Fatalf("len(days) = %d, want 1", len(days))
	}
}

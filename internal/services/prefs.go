package services

import (
	"strings"
	"time"

	"planora/internal/models/request_models"
	"planora/internal/models/response_models"
	"planora/pkg/utils"
)

const maxDestinationLength = 120

// Prefs is the validated, canonical trip request. Dates are date-only values
// in UTC; Budget is always one of the lowercase levels below.
type Prefs struct {
	Destination     string
	StartDate       time.Time
	EndDate         time.Time
	Budget          string
	Interests       []string
	GroupType       string
	Accommodation   string
	SpecialRequests string
}

var budgetLevels = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// ValidatePreferences normalizes a raw request into Prefs. On failure it
// returns one message per invalid field so the client can highlight inputs.
func ValidatePreferences(req request_models.ItineraryRequest) (Prefs, utils.FieldErrors) {
	fieldErrs := utils.FieldErrors{}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		fieldErrs["destination"] = "Destination is required"
	} else if len(destination) > maxDestinationLength {
		fieldErrs["destination"] = "Destination must be 120 characters or fewer"
	}

	start, startOK := parseDate(req.StartDate)
	if !startOK {
		fieldErrs["startDate"] = "Start date must be a valid date"
	}
	end, endOK := parseDate(req.EndDate)
	if !endOK {
		fieldErrs["endDate"] = "End date must be a valid date"
	}
	if startOK && endOK && start.After(end) {
		fieldErrs["endDate"] = "End date must be on or after the start date"
	}

	budget := strings.ToLower(strings.TrimSpace(req.Budget))
	if budget == "" {
		fieldErrs["budget"] = "Budget is required"
	} else if !budgetLevels[budget] {
		fieldErrs["budget"] = "Budget must be one of low, medium, or high"
	}

	if len(fieldErrs) > 0 {
		return Prefs{}, fieldErrs
	}

	return Prefs{
		Destination:     destination,
		StartDate:       start,
		EndDate:         end,
		Budget:          budget,
		Interests:       normalizeInterests(req.Interests),
		GroupType:       strings.TrimSpace(req.GroupType),
		Accommodation:   strings.TrimSpace(req.Accommodation),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}, nil
}

// parseDate accepts a plain calendar date or a full timestamp, truncating the
// latter to its date. Results are date-only UTC values so day arithmetic never
// drifts across timezones.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// normalizeInterests trims entries, drops empties, and deduplicates while
// keeping first-seen order.
func normalizeInterests(interests []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		key := strings.ToLower(interest)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, interest)
	}
	return out
}

// TravelDays enumerates one entry per calendar day from StartDate to EndDate
// inclusive. A same-day trip yields exactly one entry.
func TravelDays(p Prefs) []response_models.TravelDay {
	var days []response_models.TravelDay
	for current, index := p.StartDate, 0; !current.After(p.EndDate); current, index = current.AddDate(0, 0, 1), index+1 {
		days = append(days, response_models.TravelDay{
			Day:   index + 1,
			Date:  current.Format("2006-01-02"),
			Label: current.Format("January 2, 2006"),
		})
	}
	return days
}

package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"planora/internal/models/response_models"
)

// PlanRequest carries the validated trip request plus the precomputed travel
// days to an AI provider. Day count is fixed here, never inferred by the model.
type PlanRequest struct {
	Destination     string                       `json:"destination"`
	StartDate       string                       `json:"startDate"`
	EndDate         string                       `json:"endDate"`
	Budget          string                       `json:"budget"`
	Interests       []string                     `json:"interests"`
	GroupType       string                       `json:"groupType,omitempty"`
	Accommodation   string                       `json:"accommodation,omitempty"`
	SpecialRequests string                       `json:"specialRequests,omitempty"`
	Days            []response_models.TravelDay `json:"travelDays"`
}

// ItineraryClientInterface is implemented by each AI provider. A nil client
// means the feature is unconfigured; callers must treat that as "disabled",
// not as a failure.
type ItineraryClientInterface interface {
	GenerateItinerary(ctx context.Context, req PlanRequest) (*response_models.Itinerary, error)
}

const itinerarySystemInstructions = `You are a travel planner. Produce balanced itineraries that reflect the destination's highlights and the traveler's stated interests. Do not schedule the same marquee attraction on multiple days unless the request explicitly asks for it. Mix cultural, outdoor, dining, and neighborhood experiences across the trip. Respond with JSON only, no prose and no markdown fences.`

// BuildItineraryPrompt renders the user message sent to every provider: the
// serialized trip request, the travel-day table, and the response shape.
func BuildItineraryPrompt(req PlanRequest) string {
	payload, _ := json.MarshalIndent(req, "", "  ")

	var b strings.Builder
	b.WriteString("Plan a trip for the following request:\n")
	b.Write(payload)
	b.WriteString("\n\nTravel days (cover every one of them):\n")
	for _, d := range req.Days {
		fmt.Fprintf(&b, "- Day %d: %s (%s)\n", d.Day, d.Label, d.Date)
	}

	fmt.Fprintf(&b, `
Return ONLY JSON matching this shape:

{
  "destination": "string",
  "duration": "%d days",
  "budget": "%s",
  "interests": ["string"],
  "overview": "one paragraph",
  "tips": ["string", "string", "string"],
  "days": [
    {
      "title": "Day 1",
      "date": "%s",
      "summary": "one paragraph",
      "activities": [
        { "title": "string", "time": "8:30 AM", "description": "string" }
      ]
    }
  ]
}

Hard constraints:
- "days" must contain at least %d entries, one per travel day above, in order.
- Every day needs at least one activity with non-empty title, time, description.
- Keep "budget" lowercase.
`, len(req.Days), req.Budget, firstDayLabel(req.Days), len(req.Days))

	return b.String()
}

func firstDayLabel(days []response_models.TravelDay) string {
	if len(days) == 0 {
		return ""
	}
	return days[0].Label
}

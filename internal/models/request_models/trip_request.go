package request_models

import "planora/internal/models/response_models"

// SaveTripRequest persists a generated itinerary. Start and end dates come
// back from the client because the itinerary itself only carries display dates.
type SaveTripRequest struct {
	StartDate string                    `json:"startDate"`
	EndDate   string                    `json:"endDate"`
	Itinerary response_models.Itinerary `json:"itinerary"`
}

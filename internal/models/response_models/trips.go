package response_models

type TripResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Budget      string    `json:"budget"`
	Duration    string    `json:"duration"`
	CreatedAt   int64     `json:"created_at"`
	Itinerary   Itinerary `json:"itinerary"`
}

type TripSummary struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Budget      string `json:"budget"`
	Duration    string `json:"duration"`
	CreatedAt   int64  `json:"created_at"`
}

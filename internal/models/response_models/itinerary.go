package response_models

// Activity is a single scheduled item inside a day plan. Time is a display
// string ("8:30 AM", "19:00"); no timezone math happens on it.
type Activity struct {
	Title       string `json:"title"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

type DayPlan struct {
	Title      string     `json:"title"`
	Date       string     `json:"date"`
	Summary    string     `json:"summary"`
	Activities []Activity `json:"activities"`
}

type Itinerary struct {
	Destination string    `json:"destination"`
	Duration    string    `json:"duration"`
	Budget      string    `json:"budget"`
	Interests   []string  `json:"interests"`
	Overview    string    `json:"overview"`
	Tips        []string  `json:"tips"`
	Days        []DayPlan `json:"days"`
}

// TravelDay is one calendar day of the trip, precomputed before generation so
// both the deterministic planner and the AI prompt agree on day count and dates.
type TravelDay struct {
	Day   int    `json:"day"`
	Date  string `json:"date"`
	Label string `json:"label"`
}

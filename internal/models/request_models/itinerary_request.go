package request_models

// ItineraryRequest is the raw, untrusted trip request from the form. Field
// names mirror the web client payload; validation happens in the services layer.
type ItineraryRequest struct {
	Destination     string   `json:"destination"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Budget          string   `json:"budget"`
	Interests       []string `json:"interests"`
	GroupType       string   `json:"groupType"`
	Accommodation   string   `json:"accommodation"`
	SpecialRequests string   `json:"specialRequests"`
}

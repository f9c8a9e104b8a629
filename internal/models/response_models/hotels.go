package response_models

type Hotel struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      int      `json:"price"`
	Currency   string   `json:"currency"`
	Rating     int      `json:"rating"`
	Amenities  []string `json:"amenities"`
	Location   string   `json:"location"`
	BookingURL string   `json:"booking_url"`
}

type HotelSuggestions struct {
	Hotels []Hotel `json:"hotels"`
	City   string  `json:"city"`
	Budget string  `json:"budget"`
}

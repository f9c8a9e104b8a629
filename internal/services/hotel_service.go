package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"planora/internal/models/response_models"
	"planora/pkg/memcache"
	"planora/pkg/utils"
)

const hotelCacheTTL = 30 * time.Minute

type HotelServiceInterface interface {
	Suggest(destination, budget, checkIn, checkOut string) (*response_models.HotelSuggestions, error)
}

// HotelService produces deterministic mock hotel suggestions from a per-city
// pricing table. No booking inventory is queried; the output is stable for a
// given (city, budget, dates) so repeat requests render identically.
type HotelService struct {
	cache *memcache.TTLCache
}

func NewHotelService(cache *memcache.TTLCache) HotelServiceInterface {
	return &HotelService{cache: cache}
}

type cityPricing struct {
	Low, Medium, High int
	Areas             []string
}

var cityPricingTable = map[string]cityPricing{
	"bangkok":   {Low: 25, Medium: 60, High: 180, Areas: []string{"Sukhumvit", "Silom", "Riverside", "Old City", "Siam"}},
	"paris":     {Low: 80, Medium: 180, High: 450, Areas: []string{"Marais", "Latin Quarter", "Champs-Élysées", "Montmartre", "Saint-Germain"}},
	"tokyo":     {Low: 65, Medium: 140, High: 380, Areas: []string{"Shinjuku", "Shibuya", "Ginza", "Asakusa", "Roppongi"}},
	"new york":  {Low: 120, Medium: 250, High: 550, Areas: []string{"Manhattan", "Brooklyn", "Times Square", "SoHo", "Upper East Side"}},
	"london":    {Low: 90, Medium: 200, High: 480, Areas: []string{"Westminster", "Covent Garden", "Shoreditch", "Kensington", "Camden"}},
	"barcelona": {Low: 70, Medium: 150, High: 380, Areas: []string{"Gothic Quarter", "Eixample", "Gracia", "Barceloneta", "El Born"}},
	"bali":      {Low: 35, Medium: 85, High: 250, Areas: []string{"Seminyak", "Ubud", "Canggu", "Nusa Dua", "Sanur"}},
	"dubai":     {Low: 95, Medium: 220, High: 600, Areas: []string{"Downtown", "Marina", "Palm Jumeirah", "JBR", "Business Bay"}},
	"rome":      {Low: 75, Medium: 160, High: 400, Areas: []string{"Trastevere", "Centro Storico", "Vatican", "Monti", "Trevi"}},
	"singapore": {Low: 85, Medium: 170, High: 420, Areas: []string{"Marina Bay", "Orchard", "Chinatown", "Sentosa", "Clarke Quay"}},
	"sydney":    {Low: 95, Medium: 190, High: 450, Areas: []string{"CBD", "Darling Harbour", "Bondi", "The Rocks", "Surry Hills"}},
}

var defaultPricing = cityPricing{
	Low: 60, Medium: 130, High: 300,
	Areas: []string{"Downtown", "City Center", "Historic District", "Waterfront", "Old Town"},
}

func (s *HotelService) Suggest(destination, budget, checkIn, checkOut string) (*response_models.HotelSuggestions, error) {
	if strings.TrimSpace(destination) == "" {
		return nil, utils.ErrInvalidInput
	}
	budget = strings.ToLower(strings.TrimSpace(budget))
	if !budgetLevels[budget] {
		return nil, utils.ErrInvalidInput
	}

	city := ExtractCityName(destination)
	cacheKey := fmt.Sprintf("hotels:%s:%s:%s:%s", strings.ToLower(city), budget, checkIn, checkOut)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if suggestions, ok := cached.(*response_models.HotelSuggestions); ok {
			return suggestions, nil
		}
	}

	suggestions := &response_models.HotelSuggestions{
		Hotels: generateHotels(city, budget, checkIn, checkOut),
		City:   city,
		Budget: budget,
	}
	s.cache.Set(cacheKey, suggestions, hotelCacheTTL)
	return suggestions, nil
}

func pricingFor(city string) cityPricing {
	if pricing, ok := cityPricingTable[strings.ToLower(city)]; ok {
		return pricing
	}
	return defaultPricing
}

func basePrice(pricing cityPricing, budget string) int {
	switch budget {
	case "low":
		return pricing.Low
	case "high":
		return pricing.High
	default:
		return pricing.Medium
	}
}

func hotelName(city, area, budget string, index int) string {
	var patterns []string
	switch budget {
	case "low":
		patterns = []string{
			fmt.Sprintf("%s Express Hotel", city),
			fmt.Sprintf("Budget Inn %s", area),
			fmt.Sprintf("%s Hostel %s", city, area),
		}
	case "high":
		patterns = []string{
			fmt.Sprintf("The %s Palace", area),
			fmt.Sprintf("%s Luxury Suites", city),
			fmt.Sprintf("Grand Hotel %s", city),
		}
	default:
		patterns = []string{
			fmt.Sprintf("Novotel %s %s", city, area),
			fmt.Sprintf("%s Grand Hotel", city),
			fmt.Sprintf("Mercure %s", area),
		}
	}
	return patterns[index%len(patterns)]
}

func hotelAmenities(budget string) []string {
	switch budget {
	case "low":
		return []string{"Free WiFi", "24-Hour Reception", "Luggage Storage"}
	case "high":
		return []string{"Free WiFi", "Spa & Wellness", "Pool", "Fine Dining"}
	default:
		return []string{"Free WiFi", "Breakfast Included", "Gym"}
	}
}

func hotelRating(budget string) int {
	switch budget {
	case "low":
		return 3
	case "high":
		return 5
	default:
		return 4
	}
}

func bookingURL(city, checkIn, checkOut string, minPrice, maxPrice int) string {
	if checkIn == "" || checkOut == "" {
		start := time.Now().AddDate(0, 0, 30)
		checkIn = start.Format("2006-01-02")
		checkOut = start.AddDate(0, 0, 2).Format("2006-01-02")
	}

	params := url.Values{}
	params.Set("ss", city)
	params.Set("checkin", checkIn)
	params.Set("checkout", checkOut)
	params.Set("group_adults", "2")
	params.Set("no_rooms", "1")
	params.Set("nflt", fmt.Sprintf("price=USD-%d-%d-1", minPrice, maxPrice))

	return "https://www.booking.com/searchresults.html?" + params.Encode()
}

func generateHotels(city, budget, checkIn, checkOut string) []response_models.Hotel {
	pricing := pricingFor(city)
	base := basePrice(pricing, budget)
	rating := hotelRating(budget)
	amenities := hotelAmenities(budget)

	priceVariations := []float64{0.9, 1.0, 1.15}
	priceBands := [][2]float64{{0.85, 1.15}, {0.80, 1.20}, {0.75, 1.25}}

	hotels := make([]response_models.Hotel, 0, len(priceVariations))
	for i, variation := range priceVariations {
		area := pricing.Areas[i%len(pricing.Areas)]
		band := priceBands[i]
		minPrice := int(float64(base) * band[0])
		maxPrice := int(float64(base)*band[1] + 0.5)

		hotels = append(hotels, response_models.Hotel{
			ID:         fmt.Sprintf("%s-%s-%d", strings.ToLower(city), budget, i),
			Name:       hotelName(city, area, budget, i),
			Price:      int(float64(base)*variation + 0.5),
			Currency:   "USD",
			Rating:     rating,
			Amenities:  amenities,
			Location:   fmt.Sprintf("%s, %s", area, city),
			BookingURL: bookingURL(city, checkIn, checkOut, minPrice, maxPrice),
		})
	}
	return hotels
}

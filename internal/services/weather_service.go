package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"planora/internal/models/response_models"
	"planora/pkg/memcache"
	"planora/pkg/utils"
)

const (
	weatherCacheTTL    = 5 * time.Minute
	openWeatherBaseURL = "https://api.openweathermap.org"
)

type WeatherServiceInterface interface {
	GetForecast(ctx context.Context, destination string) (*response_models.WeatherReport, error)
}

type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *memcache.TTLCache
}

func NewWeatherService(apiKey string, cache *memcache.TTLCache) WeatherServiceInterface {
	return &WeatherService{
		apiKey:     apiKey,
		baseURL:    openWeatherBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
	}
}

// Coordinates for destinations the form suggests, so the common cases skip a
// geocoding round trip.
var majorCityCoords = map[string][2]float64{
	"paris":     {48.8566, 2.3522},
	"tokyo":     {35.6762, 139.6503},
	"new york":  {40.7128, -74.006},
	"barcelona": {41.3874, 2.1686},
	"bali":      {-8.3405, 115.092},
	"london":    {51.5074, -0.1278},
	"rome":      {41.9028, 12.4964},
	"dubai":     {25.2048, 55.2708},
	"singapore": {1.3521, 103.8198},
	"sydney":    {-33.8688, 151.2093},
}

// ExtractCityName takes the city token from a "City, Country" destination.
func ExtractCityName(destination string) string {
	parts := strings.SplitN(destination, ",", 2)
	return strings.TrimSpace(parts[0])
}

func (s *WeatherService) GetForecast(ctx context.Context, destination string) (*response_models.WeatherReport, error) {
	if strings.TrimSpace(destination) == "" {
		return nil, utils.ErrInvalidInput
	}
	if s.apiKey == "" {
		return nil, utils.ErrWeatherNotConfigured
	}

	city := ExtractCityName(destination)
	cacheKey := "weather:" + strings.ToLower(city)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if report, ok := cached.(*response_models.WeatherReport); ok {
			return report, nil
		}
	}

	lat, lon, err := s.resolveCoords(ctx, city)
	if err != nil {
		return nil, err
	}

	report, err := s.fetchForecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, report, weatherCacheTTL)
	return report, nil
}

func (s *WeatherService) resolveCoords(ctx context.Context, city string) (float64, float64, error) {
	if coords, ok := majorCityCoords[strings.ToLower(city)]; ok {
		return coords[0], coords[1], nil
	}

	geoURL := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=1&appid=%s",
		s.baseURL, url.QueryEscape(city), url.QueryEscape(s.apiKey))

	var results []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := s.getJSON(ctx, geoURL, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, utils.ErrLocationNotFound
	}
	return results[0].Lat, results[0].Lon, nil
}

type forecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp    float64 `json:"temp"`
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Pop   float64 `json:"pop"`
	DtTxt string  `json:"dt_txt"`
}

type openWeatherForecast struct {
	List []forecastSample `json:"list"`
}

func (s *WeatherService) fetchForecast(ctx context.Context, lat, lon float64) (*response_models.WeatherReport, error) {
	forecastURL := fmt.Sprintf("%s/data/2.5/forecast?lat=%f&lon=%f&units=metric&appid=%s",
		s.baseURL, lat, lon, url.QueryEscape(s.apiKey))

	var data openWeatherForecast
	if err := s.getJSON(ctx, forecastURL, &data); err != nil {
		return nil, err
	}
	if len(data.List) == 0 {
		return nil, fmt.Errorf("weather provider returned empty forecast")
	}

	first := data.List[0]
	current := response_models.CurrentWeather{
		Temp: int(first.Main.Temp + 0.5),
	}
	if len(first.Weather) > 0 {
		current.Description = first.Weather[0].Description
		current.Icon = first.Weather[0].Icon
	}

	// The 5-day feed carries 3-hour samples. Keep one entry per calendar day,
	// preferring the midday sample as representative.
	byDate := make(map[string]forecastSample)
	var order []string
	for _, item := range data.List {
		date := strings.SplitN(item.DtTxt, " ", 2)[0]
		if _, seen := byDate[date]; !seen {
			order = append(order, date)
			byDate[date] = item
		} else if strings.Contains(item.DtTxt, "12:00:00") {
			byDate[date] = item
		}
	}

	var forecast []response_models.ForecastDay
	for _, date := range order {
		if len(forecast) == 5 {
			break
		}
		item := byDate[date]
		day := response_models.ForecastDay{
			Date:          date,
			TempMin:       int(item.Main.TempMin + 0.5),
			TempMax:       int(item.Main.TempMax + 0.5),
			Temp:          int(item.Main.Temp + 0.5),
			Precipitation: item.Pop,
		}
		if len(item.Weather) > 0 {
			day.Description = item.Weather[0].Description
			day.Icon = item.Weather[0].Icon
		}
		if t, err := time.Parse("2006-01-02", date); err == nil {
			day.Day = t.Weekday().String()[:3]
		}
		forecast = append(forecast, day)
	}

	return &response_models.WeatherReport{
		Current:   current,
		Forecast:  forecast,
		TravelTip: GenerateTravelTip(forecast),
	}, nil
}

func (s *WeatherService) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather provider returned status %d for %s", resp.StatusCode, req.URL.Path)
		return fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// GenerateTravelTip turns the condensed forecast into one packing suggestion.
func GenerateTravelTip(forecast []response_models.ForecastDay) string {
	if len(forecast) == 0 {
		return "Check the forecast and pack accordingly for your trip."
	}

	var sum float64
	hasRain, hasCold, hasHot := false, false, false
	for _, day := range forecast {
		sum += float64(day.Temp)
		if day.Precipitation > 0.3 {
			hasRain = true
		}
		if day.Temp < 10 {
			hasCold = true
		}
		if day.Temp > 30 {
			hasHot = true
		}
	}
	avg := sum / float64(len(forecast))

	switch {
	case hasRain && hasCold:
		return "Pack layers, a warm jacket, and waterproof gear. Rain and cooler temperatures expected."
	case hasRain:
		return "Don't forget an umbrella and a light rain jacket. Showers are in the forecast."
	case hasCold:
		return "Bring warm layers and a jacket. Temperatures will be on the cooler side."
	case hasHot:
		return "Stay hydrated and wear sunscreen. Hot weather ahead!"
	case avg > 20 && avg < 28:
		return "Perfect weather for outdoor activities. Light layers recommended."
	default:
		return "Check the forecast and pack accordingly for your trip."
	}
}

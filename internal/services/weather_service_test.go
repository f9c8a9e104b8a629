package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planora/internal/models/response_models"
	"planora/pkg/memcache"
	"planora/pkg/utils"
)

func TestExtractCityName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Paris, France", "Paris"},
		{"Tokyo", "Tokyo"},
		{" New York , USA", "New York"},
		{"Ubud, Bali, Indonesia", "Ubud"},
	}
	for _, tt := range tests {
		if got := ExtractCityName(tt.in); got != tt.want {
			t.Errorf("ExtractCityName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetForecastRequiresDestination(t *testing.T) {
	svc := NewWeatherService("key", memcache.NewTTLCache())
	if _, err := svc.GetForecast(context.Background(), "  "); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetForecastRequiresAPIKey(t *testing.T) {
	svc := NewWeatherService("", memcache.NewTTLCache())
	if _, err := svc.GetForecast(context.Background(), "Paris, France"); !errors.Is(err, utils.ErrWeatherNotConfigured) {
		t.Errorf("err = %v, want ErrWeatherNotConfigured", err)
	}
}

const forecastFixture = `{
	"list": [
		{"dt": 1714550400, "dt_txt": "2024-05-01 09:00:00", "main": {"temp": 16.2, "temp_min": 12.1, "temp_max": 17.4}, "weather": [{"description": "light rain", "icon": "10d"}], "pop": 0.6},
		{"dt": 1714561200, "dt_txt": "2024-05-01 12:00:00", "main": {"temp": 18.7, "temp_min": 14.0, "temp_max": 19.2}, "weather": [{"description": "scattered clouds", "icon": "03d"}], "pop": 0.4},
		{"dt": 1714636800, "dt_txt": "2024-05-02 09:00:00", "main": {"temp": 21.3, "temp_min": 15.8, "temp_max": 22.0}, "weather": [{"description": "clear sky", "icon": "01d"}], "pop": 0.0}
	]
}`

func newForecastTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/2.5/forecast":
			w.Write([]byte(forecastFixture))
		case "/geo/1.0/direct":
			w.Write([]byte(`[{"lat": 48.2082, "lon": 16.3738}]`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
}

func newTestWeatherService(baseURL string) *WeatherService {
	return &WeatherService{
		apiKey:     "test-key",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Second},
		cache:      memcache.NewTTLCache(),
	}
}

func TestGetForecastCondensesSamplesPerDay(t *testing.T) {
	server := newForecastTestServer(t)
	defer server.Close()

	svc := newTestWeatherService(server.URL)
	report, err := svc.GetForecast(context.Background(), "Paris, France")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Forecast) != 2 {
		t.Fatalf("len(forecast) = %d, want 2", len(report.Forecast))
	}

	first := report.Forecast[0]
	if first.Date != "2024-05-01" {
		t.Errorf("date = %q", first.Date)
	}
	// Midday sample replaces the earlier one for the same date.
	if first.Description != "scattered clouds" {
		t.Errorf("description = %q, want the 12:00 sample", first.Description)
	}
	if first.Temp != 19 {
		t.Errorf("temp = %d, want 19", first.Temp)
	}
	if first.Day != "Wed" {
		t.Errorf("day = %q, want Wed", first.Day)
	}

	if report.Current.Description != "light rain" {
		t.Errorf("current description = %q, want the first sample", report.Current.Description)
	}
	if report.TravelTip == "" {
		t.Error("expected a travel tip")
	}
}

func TestGetForecastGeocodesUnknownCities(t *testing.T) {
	server := newForecastTestServer(t)
	defer server.Close()

	svc := newTestWeatherService(server.URL)
	if _, err := svc.GetForecast(context.Background(), "Vienna, Austria"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetForecastUnknownLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc := newTestWeatherService(server.URL)
	if _, err := svc.GetForecast(context.Background(), "Atlantis"); !errors.Is(err, utils.ErrLocationNotFound) {
		t.Errorf("err = %v, want ErrLocationNotFound", err)
	}
}

func TestGetForecastCachesByCity(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data/2.5/forecast" {
			calls++
		}
		w.Write([]byte(forecastFixture))
	}))
	defer server.Close()

	svc := newTestWeatherService(server.URL)
	for i := 0; i < 3; i++ {
		if _, err := svc.GetForecast(context.Background(), "Paris, France"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("forecast fetched %d times, want 1", calls)
	}
}

func TestGenerateTravelTip(t *testing.T) {
	day := func(temp int, pop float64) response_models.ForecastDay {
		return response_models.ForecastDay{Temp: temp, Precipitation: pop}
	}

	tests := []struct {
		name     string
		forecast []response_models.ForecastDay
		want     string
	}{
		{
			name:     "rain and cold",
			forecast: []response_models.ForecastDay{day(8, 0.5), day(12, 0.1)},
			want:     "Pack layers, a warm jacket, and waterproof gear. Rain and cooler temperatures expected.",
		},
		{
			name:     "rain only",
			forecast: []response_models.ForecastDay{day(18, 0.5), day(20, 0.4)},
			want:     "Don't forget an umbrella and a light rain jacket. Showers are in the forecast.",
		},
		{
			name:     "cold only",
			forecast: []response_models.ForecastDay{day(5, 0.0), day(14, 0.1)},
			want:     "Bring warm layers and a jacket. Temperatures will be on the cooler side.",
		},
		{
			name:     "hot",
			forecast: []response_models.ForecastDay{day(33, 0.0), day(29, 0.0)},
			want:     "Stay hydrated and wear sunscreen. Hot weather ahead!",
		},
		{
			name:     "pleasant average",
			forecast: []response_models.ForecastDay{day(22, 0.0), day(25, 0.1)},
			want:     "Perfect weather for outdoor activities. Light layers recommended.",
		},
		{
			name:     "empty forecast",
			forecast: nil,
			want:     "Check the forecast and pack accordingly for your trip.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateTravelTip(tt.forecast); got != tt.want {
				t.Errorf("GenerateTravelTip = %q, want %q", got, tt.want)
			}
		})
	}
}

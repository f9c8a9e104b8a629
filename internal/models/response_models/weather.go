package response_models

type CurrentWeather struct {
	Temp        int    `json:"temp"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ForecastDay struct {
	Date          string  `json:"date"`
	Day           string  `json:"day"`
	TempMin       int     `json:"temp_min"`
	TempMax       int     `json:"temp_max"`
	Temp          int     `json:"temp"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Precipitation float64 `json:"precipitation,omitempty"`
}

type WeatherReport struct {
	Current   CurrentWeather `json:"current"`
	Forecast  []ForecastDay  `json:"forecast"`
	TravelTip string         `json:"travel_tip"`
}

package weather_fx

import (
	"os"

	"go.uber.org/fx"

	"planora/internal/api/controllers"
	"planora/internal/services"
	"planora/pkg/memcache"
)

var Module = fx.Provide(
	provideWeatherService,
	provideWeatherController)

func provideWeatherService(cache *memcache.TTLCache) services.WeatherServiceInterface {
	return services.NewWeatherService(os.Getenv("OPENWEATHER_API_KEY"), cache)
}

func provideWeatherController(weatherService services.WeatherServiceInterface) *controllers.WeatherController {
	return controllers.NewWeatherController(weatherService)
}

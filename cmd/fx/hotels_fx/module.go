package hotels_fx

import (
	"go.uber.org/fx"

	"planora/internal/api/controllers"
	"planora/internal/services"
	"planora/pkg/memcache"
)

var Module = fx.Provide(
	provideHotelService,
	provideHotelController)

func provideHotelService(cache *memcache.TTLCache) services.HotelServiceInterface {
	return services.NewHotelService(cache)
}

func provideHotelController(hotelService services.HotelServiceInterface) *controllers.HotelController {
	return controllers.NewHotelController(hotelService)
}

package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"planora/internal/api/controllers"
	"planora/internal/repositories"
	"planora/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepositoryInterface {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepositoryInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}

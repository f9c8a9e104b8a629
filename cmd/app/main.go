package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"planora/cmd/fx/db_fx"
	"planora/cmd/fx/hotels_fx"
	"planora/cmd/fx/itinerary_fx"
	"planora/cmd/fx/memcache_fx"
	"planora/cmd/fx/trips_fx"
	"planora/cmd/fx/weather_fx"
	"planora/internal/api/controllers"
	"planora/internal/infra"
	"planora/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		itinerary_fx.Module,
		trips_fx.Module,
		weather_fx.Module,
		hotels_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	hotelController *controllers.HotelController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, tripController, weatherController, hotelController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	hotelController *controllers.HotelController) {

	api := r.Group("/api")
	api.POST("/itinerary", itineraryController.GenerateItineraryHandler)

	tripsGroup := api.Group("/trips")
	tripsGroup.POST("", tripController.SaveTripHandler)
	tripsGroup.GET("", tripController.ListTripsHandler)
	tripsGroup.GET("/:id", tripController.GetTripHandler)

	api.GET("/weather", weatherController.GetForecastHandler)
	api.GET("/hotels", hotelController.SuggestHotelsHandler)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

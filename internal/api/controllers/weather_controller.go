package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planora/internal/services"
	"planora/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{weatherService: weatherService}
}

func (wc *WeatherController) GetForecastHandler(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination parameter is required")
		return
	}

	report, err := wc.weatherService.GetForecast(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Forecast retrieved")
}

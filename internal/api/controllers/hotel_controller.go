package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planora/internal/services"
	"planora/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{hotelService: hotelService}
}

func (hc *HotelController) SuggestHotelsHandler(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination parameter is required")
		return
	}
	budget := c.Query("budget")
	if budget == "" {
		utils.RespondError(c, http.StatusBadRequest, "Valid budget parameter (low/medium/high) is required")
		return
	}

	suggestions, err := hc.hotelService.Suggest(destination, budget, c.Query("checkin"), c.Query("checkout"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Hotel suggestions generated")
}

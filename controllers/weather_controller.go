package controllers

import (
	"net/http"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type WeatherController struct {
	WeatherSvc *services.WeatherService
}

func NewWeatherController(svc *services.WeatherService) *WeatherController {
	return &WeatherController{WeatherSvc: svc}
}

func (ctrl *WeatherController) Current(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var query services.WeatherQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	report, err := ctrl.WeatherSvc.Current(farmerID, query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, report)
}

func (ctrl *WeatherController) Alerts(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	alerts, err := ctrl.WeatherSvc.Alerts(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, alerts)
}

package controllers

import (
	"net/http"
	"strconv"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type refreshPricesPayload struct {
	Crop  string `json:"crop"`
	State string `json:"state"`
	Limit int    `json:"limit"`
}

type MarketController struct {
	MarketSvc *services.MarketService
}

func NewMarketController(svc *services.MarketService) *MarketController {
	return &MarketController{MarketSvc: svc}
}

// Refresh pulls current mandi prices from the Agmarknet feed.
func (ctrl *MarketController) Refresh(c *gin.Context) {
	var payload refreshPricesPayload
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	ingested, err := ctrl.MarketSvc.Refresh(payload.Crop, payload.State, payload.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"ingested": ingested})
}

func (ctrl *MarketController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
	list, err := ctrl.MarketSvc.List(c.Query("crop"), c.Query("state"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, list)
}

// Latest returns the freshest price per state for one crop.
func (ctrl *MarketController) Latest(c *gin.Context) {
	list, err := ctrl.MarketSvc.LatestByState(c.Query("crop"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, list)
}

func (ctrl *MarketController) Crops(c *gin.Context) {
	crops, err := ctrl.MarketSvc.Crops()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, crops)
}

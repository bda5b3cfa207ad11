package controllers

import (
	"net/http"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type PestController struct {
	PestSvc *services.PestService
}

func NewPestController(svc *services.PestService) *PestController {
	return &PestController{PestSvc: svc}
}

func (ctrl *PestController) CreateAlert(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload services.PestAlertInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	alert, err := ctrl.PestSvc.Create(farmerID, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, alert)
}

func (ctrl *PestController) GetAlerts(c *gin.Context) {
	alerts, err := ctrl.PestSvc.List(c.Query("state"), c.Query("district"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, alerts)
}

func (ctrl *PestController) ConfirmAlert(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	alert, err := ctrl.PestSvc.Confirm(id, farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, alert)
}

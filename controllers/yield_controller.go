package controllers

import (
	"net/http"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type YieldController struct {
	YieldSvc *services.YieldService
}

func NewYieldController(svc *services.YieldService) *YieldController {
	return &YieldController{YieldSvc: svc}
}

func (ctrl *YieldController) CreateRecord(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload services.YieldRecordInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	record, err := ctrl.YieldSvc.CreateRecord(farmerID, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, record)
}

func (ctrl *YieldController) GetRecords(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	records, err := ctrl.YieldSvc.ListRecords(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, records)
}

func (ctrl *YieldController) DeleteRecord(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.YieldSvc.DeleteRecord(id, farmerID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *YieldController) Predict(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload services.PredictionInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	prediction, err := ctrl.YieldSvc.Predict(farmerID, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, prediction)
}

func (ctrl *YieldController) GetPredictions(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	predictions, err := ctrl.YieldSvc.ListPredictions(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, predictions)
}

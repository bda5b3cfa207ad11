package controllers

import (
	"net/http"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type detectPayload struct {
	ImageURL    string `json:"image_url"`
	ImageBase64 string `json:"image_base64"`
	CropType    string `json:"crop_type"`
}

type DiseaseController struct {
	DiseaseSvc *services.DiseaseService
}

func NewDiseaseController(svc *services.DiseaseService) *DiseaseController {
	return &DiseaseController{DiseaseSvc: svc}
}

func (ctrl *DiseaseController) Detect(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload detectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	record, result, err := ctrl.DiseaseSvc.Detect(farmerID, payload.ImageURL, payload.ImageBase64, payload.CropType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONData(c, http.StatusOK, gin.H{
		"id":         record.ID,
		"image_url":  record.ImageURL,
		"disease":    result.Disease,
		"confidence": result.Confidence,
		"remedies":   result.Remedies,
	})
}

func (ctrl *DiseaseController) History(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	list, err := ctrl.DiseaseSvc.History(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, list)
}

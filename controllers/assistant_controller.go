package controllers

import (
	"net/http"
	"strconv"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type chatPayload struct {
	Message  string                 `json:"message" binding:"required"`
	Language string                 `json:"language"`
	History  []services.HistoryTurn `json:"history"`
	IsVoice  bool                   `json:"is_voice"`
}

type AssistantController struct {
	AssistantSvc *services.AssistantService
}

func NewAssistantController(svc *services.AssistantService) *AssistantController {
	return &AssistantController{AssistantSvc: svc}
}

func (ctrl *AssistantController) Chat(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload chatPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "message is required")
		return
	}

	record, err := ctrl.AssistantSvc.Chat(farmerID, payload.Message, payload.Language, payload.History, payload.IsVoice)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, record)
}

func (ctrl *AssistantController) History(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	list, err := ctrl.AssistantSvc.History(farmerID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, list)
}

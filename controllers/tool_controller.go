package controllers

import (
	"net/http"
	"strconv"

	"krishimitra-backend/models"
	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type createToolPayload struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	DailyRate   float64 `json:"daily_rate"`
	Available   *bool   `json:"available"`
	Location    string  `json:"location"`
}

type updateToolPayload struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	DailyRate   *float64 `json:"daily_rate"`
	Available   *bool    `json:"available"`
	Location    *string  `json:"location"`
}

type ToolController struct {
	ToolSvc *services.ToolService
}

func NewToolController(svc *services.ToolService) *ToolController {
	return &ToolController{ToolSvc: svc}
}

// GetTools is the public listing with available/category/location filters.
func (ctrl *ToolController) GetTools(c *gin.Context) {
	filters := services.ToolFilters{
		Category: c.Query("category"),
		Location: c.Query("location"),
	}
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "available must be true or false")
			return
		}
		filters.Available = &v
	}

	tools, err := ctrl.ToolSvc.List(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, tools)
}

func (ctrl *ToolController) GetTool(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	tool, err := ctrl.ToolSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, tool)
}

func (ctrl *ToolController) CreateTool(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload createToolPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name and category are required")
		return
	}

	available := true
	if payload.Available != nil {
		available = *payload.Available
	}

	tool, err := ctrl.ToolSvc.Create(farmerID, models.Tool{
		Name:        payload.Name,
		Category:    payload.Category,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		DailyRate:   payload.DailyRate,
		Available:   available,
		Location:    payload.Location,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, tool)
}

func (ctrl *ToolController) UpdateTool(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateToolPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	tool, err := ctrl.ToolSvc.Update(id, farmerID, services.ToolUpdate{
		Name:        payload.Name,
		Category:    payload.Category,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		DailyRate:   payload.DailyRate,
		Available:   payload.Available,
		Location:    payload.Location,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, tool)
}

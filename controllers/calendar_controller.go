package controllers

import (
	"net/http"
	"strconv"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type completeReminderPayload struct {
	Done *bool `json:"done" binding:"required"`
}

type updateEntryPayload struct {
	CropName            *string  `json:"crop_name"`
	Variety             *string  `json:"variety"`
	PlantingDate        *string  `json:"planting_date"`
	ExpectedHarvestDate *string  `json:"expected_harvest_date"`
	FieldSize           *float64 `json:"field_size"`
	FieldLocation       *string  `json:"field_location"`
	Notes               *string  `json:"notes"`
}

type CalendarController struct {
	CalendarSvc *services.CalendarService
}

func NewCalendarController(svc *services.CalendarService) *CalendarController {
	return &CalendarController{CalendarSvc: svc}
}

func (ctrl *CalendarController) CreateEntry(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload services.CalendarEntryInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	entry, err := ctrl.CalendarSvc.CreateEntry(farmerID, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, entry)
}

func (ctrl *CalendarController) ListEntries(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	entries, err := ctrl.CalendarSvc.ListEntries(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, entries)
}

func (ctrl *CalendarController) UpdateEntry(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	entry, err := ctrl.CalendarSvc.UpdateEntry(id, farmerID, services.CalendarEntryUpdate{
		CropName:            payload.CropName,
		Variety:             payload.Variety,
		PlantingDate:        payload.PlantingDate,
		ExpectedHarvestDate: payload.ExpectedHarvestDate,
		FieldSize:           payload.FieldSize,
		FieldLocation:       payload.FieldLocation,
		Notes:               payload.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, entry)
}

func (ctrl *CalendarController) DeleteEntry(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.CalendarSvc.DeleteEntry(id, farmerID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *CalendarController) CreateReminder(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload services.ReminderInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	reminder, err := ctrl.CalendarSvc.CreateReminder(farmerID, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, reminder)
}

func (ctrl *CalendarController) CompleteReminder(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload completeReminderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "done is required")
		return
	}

	reminder, err := ctrl.CalendarSvc.CompleteReminder(id, farmerID, *payload.Done)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, reminder)
}

func (ctrl *CalendarController) UpcomingReminders(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	reminders, err := ctrl.CalendarSvc.UpcomingReminders(farmerID, days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, reminders)
}

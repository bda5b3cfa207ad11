package controllers

import (
	"net/http"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type createBookingPayload struct {
	ToolID    uint   `json:"tool_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // yyyy-mm-dd
	EndDate   string `json:"end_date" binding:"required"`
}

type updateBookingPayload struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// GetBookings lists bookings where the caller rents or owns the tool.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	bookings, err := ctrl.BookingSvc.ListForFarmer(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "tool_id, start_date and end_date are required")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(farmerID, payload.ToolID, payload.StartDate, payload.EndDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, booking)
}

// UpdateBookingStatus moves a booking along its lifecycle; only the renter
// or the tool owner may do this.
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, farmerID, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, booking)
}

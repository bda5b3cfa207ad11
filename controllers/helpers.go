package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"krishimitra-backend/middleware"
	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id path segment as a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// mustFarmerID pulls the acting farmer from the auth middleware; routes
// using it must sit behind RequireAuth.
func mustFarmerID(c *gin.Context) (uint, bool) {
	id, ok := middleware.FarmerID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return id, true
}

// respondServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message; the cause is
// logged, not leaked.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrToolUnavailable),
		errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrToolNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDateConflict),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrAlreadyConfirmed):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}

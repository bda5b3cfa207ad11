package controllers

import (
	"net/http"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type registerPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	State    string `json:"state"`
	District string `json:"district"`
	Language string `json:"language"`
}

type loginPayload struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileUpdatePayload struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	State    *string `json:"state"`
	District *string `json:"district"`
	Language *string `json:"language"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name, phone and password are required")
		return
	}

	farmer, token, err := ctrl.AuthSvc.Register(
		payload.FullName, payload.Phone, payload.Password,
		payload.State, payload.District, payload.Language,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONData(c, http.StatusCreated, gin.H{"farmer": farmer, "token": token})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "phone and password are required")
		return
	}

	farmer, token, err := ctrl.AuthSvc.Login(payload.Phone, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONData(c, http.StatusOK, gin.H{"farmer": farmer, "token": token})
}

func (ctrl *AuthController) GetProfile(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	farmer, err := ctrl.AuthSvc.GetProfile(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, farmer)
}

func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload profileUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	farmer, err := ctrl.AuthSvc.UpdateProfile(farmerID, services.ProfileUpdate{
		FullName: payload.FullName,
		Email:    payload.Email,
		State:    payload.State,
		District: payload.District,
		Language: payload.Language,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, farmer)
}

package controllers

import (
	"net/http"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type SchemeController struct {
	SchemeSvc *services.SchemeService
}

func NewSchemeController(svc *services.SchemeService) *SchemeController {
	return &SchemeController{SchemeSvc: svc}
}

func (ctrl *SchemeController) GetSchemes(c *gin.Context) {
	schemes, err := ctrl.SchemeSvc.List(c.Query("scheme_type"), c.Query("state"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, schemes)
}

func (ctrl *SchemeController) GetScheme(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	scheme, err := ctrl.SchemeSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, scheme)
}

package controllers

import (
	"net/http"

	"krishimitra-backend/services"
	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	ExpenseSvc *services.ExpenseService
}

func NewExpenseController(svc *services.ExpenseService) *ExpenseController {
	return &ExpenseController{ExpenseSvc: svc}
}

func (ctrl *ExpenseController) CreateExpense(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	var payload services.ExpenseInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	expense, err := ctrl.ExpenseSvc.Create(farmerID, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, expense)
}

func (ctrl *ExpenseController) GetExpenses(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	expenses, err := ctrl.ExpenseSvc.List(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, expenses)
}

func (ctrl *ExpenseController) DeleteExpense(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.ExpenseSvc.Delete(id, farmerID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *ExpenseController) GetAnalytics(c *gin.Context) {
	farmerID, ok := mustFarmerID(c)
	if !ok {
		return
	}

	summary, err := ctrl.ExpenseSvc.Summary(farmerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, summary)
}

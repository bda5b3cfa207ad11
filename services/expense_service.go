package services

import (
	"errors"
	"fmt"
	"strings"

	"krishimitra-backend/models"

	"gorm.io/gorm"
)

type ExpenseService struct {
	DB *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{DB: db}
}

type ExpenseInput struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ExpenseDate string  `json:"expense_date"`
}

func (s *ExpenseService) Create(farmerID uint, in ExpenseInput) (*models.FarmExpense, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	date, err := ParseDate(in.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expense_date", ErrValidation)
	}

	expense := models.FarmExpense{
		FarmerID:    farmerID,
		Amount:      in.Amount,
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		ExpenseDate: date,
	}
	if err := s.DB.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

func (s *ExpenseService) List(farmerID uint) ([]models.FarmExpense, error) {
	var list []models.FarmExpense
	err := s.DB.
		Where("farmer_id = ?", farmerID).
		Order("expense_date DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return list, nil
}

func (s *ExpenseService) Delete(expenseID, farmerID uint) error {
	var expense models.FarmExpense
	if err := s.DB.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("db error loading expense %d: %w", expenseID, err)
	}
	if expense.FarmerID != farmerID {
		return ErrForbidden
	}
	if err := s.DB.Delete(&expense).Error; err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// AnalyticsSummary aggregates a farmer's money in and out.
type AnalyticsSummary struct {
	TotalExpenses     float64            `json:"total_expenses"`
	TotalRevenue      float64            `json:"total_revenue"`
	Net               float64            `json:"net"`
	ExpensesByCate    map[string]float64 `json:"expenses_by_category"`
	YieldByCrop       map[string]float64 `json:"yield_by_crop"` // quintals
	ExpenseCount      int                `json:"expense_count"`
	YieldRecordCount  int                `json:"yield_record_count"`
}

// Summary computes the analytics dashboard numbers for a farmer.
func (s *ExpenseService) Summary(farmerID uint) (*AnalyticsSummary, error) {
	expenses, err := s.List(farmerID)
	if err != nil {
		return nil, err
	}

	var yields []models.YieldRecord
	if err := s.DB.Where("farmer_id = ?", farmerID).Find(&yields).Error; err != nil {
		return nil, fmt.Errorf("failed to load yield records: %w", err)
	}

	return Summarize(expenses, yields), nil
}

// Summarize folds expenses and yield records into the dashboard totals.
func Summarize(expenses []models.FarmExpense, yields []models.YieldRecord) *AnalyticsSummary {
	summary := &AnalyticsSummary{
		ExpensesByCate:   make(map[string]float64),
		YieldByCrop:      make(map[string]float64),
		ExpenseCount:     len(expenses),
		YieldRecordCount: len(yields),
	}

	for _, e := range expenses {
		summary.TotalExpenses += e.Amount
		summary.ExpensesByCate[e.Category] += e.Amount
	}
	for _, y := range yields {
		summary.TotalRevenue += y.Revenue
		summary.YieldByCrop[y.CropName] += y.Quantity
	}
	summary.Net = summary.TotalRevenue - summary.TotalExpenses
	return summary
}

package services

import (
	"testing"

	"krishimitra-backend/models"
)

func TestSummarize(t *testing.T) {
	expenses := []models.FarmExpense{
		{Category: "seeds", Amount: 1500},
		{Category: "seeds", Amount: 500},
		{Category: "fertilizer", Amount: 2200},
	}
	yields := []models.YieldRecord{
		{CropName: "Wheat", Quantity: 18, Revenue: 36000},
		{CropName: "Wheat", Quantity: 4, Revenue: 8000},
		{CropName: "Onion", Quantity: 10, Revenue: 14000},
	}

	s := Summarize(expenses, yields)
	if s.TotalExpenses != 4200 {
		t.Errorf("total expenses = %v, want 4200", s.TotalExpenses)
	}
	if s.TotalRevenue != 58000 {
		t.Errorf("total revenue = %v, want 58000", s.TotalRevenue)
	}
	if s.Net != 53800 {
		t.Errorf("net = %v, want 53800", s.Net)
	}
	if s.ExpensesByCate["seeds"] != 2000 {
		t.Errorf("seeds total = %v, want 2000", s.ExpensesByCate["seeds"])
	}
	if s.YieldByCrop["Wheat"] != 22 {
		t.Errorf("wheat quantity = %v, want 22", s.YieldByCrop["Wheat"])
	}
	if s.ExpenseCount != 3 || s.YieldRecordCount != 3 {
		t.Errorf("counts = %d/%d, want 3/3", s.ExpenseCount, s.YieldRecordCount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.TotalExpenses != 0 || s.TotalRevenue != 0 || s.Net != 0 {
		t.Errorf("empty summary not zeroed: %+v", s)
	}
	if s.ExpensesByCate == nil || s.YieldByCrop == nil {
		t.Error("maps must be initialized even when empty")
	}
}

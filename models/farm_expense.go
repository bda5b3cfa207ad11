package models

import (
	"time"

	"gorm.io/gorm"
)

type FarmExpense struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID    uint      `gorm:"index;column:farmer_id" json:"farmer_id"`
	Amount      float64   `json:"amount"`
	Category    string    `gorm:"size:100;index" json:"category"` // seeds, fertilizer, labor, equipment, ...
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ExpenseDate time.Time `gorm:"column:expense_date;index" json:"expense_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

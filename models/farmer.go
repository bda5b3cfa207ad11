package models

import (
	"time"

	"gorm.io/gorm"
)

type Farmer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	Phone     string         `gorm:"uniqueIndex;size:20" json:"phone"`
	Email     string         `gorm:"size:255" json:"email,omitempty"`
	Password  string         `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	State     string         `gorm:"size:100" json:"state,omitempty"`
	District  string         `gorm:"size:100" json:"district,omitempty"`
	Language  string         `gorm:"size:10;default:en" json:"language"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

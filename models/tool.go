package models

import (
	"gorm.io/gorm"
)

// Tool is a rentable piece of farm equipment listed by its owner.
type Tool struct {
	gorm.Model

	OwnerID     uint    `gorm:"index;column:owner_id" json:"owner_id"`
	Name        string  `gorm:"size:255" json:"name"`
	Category    string  `gorm:"size:100;index" json:"category"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string  `gorm:"column:image_url;size:512" json:"image_url,omitempty"`
	DailyRate   float64 `gorm:"column:daily_rate" json:"daily_rate"`
	Available   bool    `gorm:"default:true" json:"available"`
	Location    string  `gorm:"size:255" json:"location,omitempty"`

	Owner Farmer `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type ChatMessage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FarmerID  uint           `gorm:"index;column:farmer_id" json:"farmer_id"`
	Message   string         `gorm:"type:text" json:"message"`
	Response  string         `gorm:"type:text" json:"response,omitempty"`
	Language  string         `gorm:"size:10;default:en" json:"language"`
	IsVoice   bool           `gorm:"column:is_voice;default:false" json:"is_voice"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

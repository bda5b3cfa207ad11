package models

import (
	"time"
)

type WeatherAlert struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID  uint   `gorm:"index;column:farmer_id" json:"farmer_id"`
	AlertType string `gorm:"size:50;column:alert_type" json:"alert_type"` // heavy_rain, heat_wave, high_wind
	Severity  string `gorm:"size:20" json:"severity"`                     // low, medium, high
	Location  string `gorm:"size:255" json:"location"`
	Message   string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

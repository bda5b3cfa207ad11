package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type YieldRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID      uint      `gorm:"index;column:farmer_id" json:"farmer_id"`
	CropName      string    `gorm:"size:100;column:crop_name" json:"crop_name"`
	FieldLocation string    `gorm:"size:255;column:field_location" json:"field_location,omitempty"`
	HarvestDate   time.Time `gorm:"column:harvest_date;index" json:"harvest_date"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `gorm:"size:20;default:quintal" json:"unit"`
	Revenue       float64   `json:"revenue,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type YieldPrediction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID            uint       `gorm:"index;column:farmer_id" json:"farmer_id"`
	CropName            string     `gorm:"size:100;column:crop_name" json:"crop_name"`
	PredictedYield      float64    `gorm:"column:predicted_yield" json:"predicted_yield"` // quintals
	ConfidenceLevel     int        `gorm:"column:confidence_level" json:"confidence_level"`
	PredictionDate      time.Time  `gorm:"column:prediction_date" json:"prediction_date"`
	ExpectedHarvestDate *time.Time `gorm:"column:expected_harvest_date" json:"expected_harvest_date,omitempty"`

	// Factors is the JSON array of influencing factors returned by the model.
	Factors datatypes.JSON `json:"factors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

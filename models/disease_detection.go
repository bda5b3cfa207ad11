package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DiseaseDetection struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID    uint    `gorm:"index;column:farmer_id" json:"farmer_id"`
	CropType    string  `gorm:"size:100" json:"crop_type,omitempty"`
	ImageURL    string  `gorm:"column:image_url;size:512" json:"image_url"`
	DiseaseName string  `gorm:"size:255" json:"disease_name,omitempty"`
	Confidence  int     `json:"confidence"`

	// Remedies holds the parsed remedy list as a JSON array of strings.
	Remedies datatypes.JSON `json:"remedies,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

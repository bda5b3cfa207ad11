package models

import (
	"time"

	"gorm.io/gorm"
)

type PestAlert struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID       uint   `gorm:"index;column:farmer_id" json:"farmer_id"`
	PestName       string `gorm:"size:255;column:pest_name" json:"pest_name"`
	Description    string `gorm:"type:text" json:"description"`
	Severity       string `gorm:"size:20" json:"severity"` // low, medium, high
	Location       string `gorm:"size:255" json:"location"`
	State          string `gorm:"size:100;index" json:"state,omitempty"`
	District       string `gorm:"size:100;index" json:"district,omitempty"`
	CropAffected   string `gorm:"size:100;column:crop_affected" json:"crop_affected,omitempty"`
	ImageURL       string `gorm:"size:512;column:image_url" json:"image_url,omitempty"`
	ConfirmedCount int    `gorm:"column:confirmed_count;default:0" json:"confirmed_count"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PestAlertConfirmation records one farmer vouching for an alert;
// the (alert_id, farmer_id) pair is unique so a farmer counts once.
type PestAlertConfirmation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AlertID   uint      `gorm:"column:alert_id;uniqueIndex:idx_alert_farmer" json:"alert_id"`
	FarmerID  uint      `gorm:"column:farmer_id;uniqueIndex:idx_alert_farmer" json:"farmer_id"`
	CreatedAt time.Time `json:"created_at"`
}

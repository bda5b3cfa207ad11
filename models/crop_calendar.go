package models

import (
	"time"

	"gorm.io/gorm"
)

type CropCalendarEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID            uint       `gorm:"index;column:farmer_id" json:"farmer_id"`
	CropName            string     `gorm:"size:100" json:"crop_name"`
	Variety             string     `gorm:"size:100" json:"variety,omitempty"`
	PlantingDate        time.Time  `gorm:"column:planting_date" json:"planting_date"`
	ExpectedHarvestDate *time.Time `gorm:"column:expected_harvest_date" json:"expected_harvest_date,omitempty"`
	FieldSize           float64    `gorm:"column:field_size" json:"field_size,omitempty"`
	FieldLocation       string     `gorm:"size:255" json:"field_location,omitempty"`
	Notes               string     `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Reminders []CropReminder `gorm:"foreignKey:CalendarEntryID" json:"reminders,omitempty"`
}

func (CropCalendarEntry) TableName() string { return "crop_calendar" }

type CropReminder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID        uint      `gorm:"index;column:farmer_id" json:"farmer_id"`
	CalendarEntryID uint      `gorm:"index;column:calendar_entry_id" json:"calendar_entry_id"`
	ReminderType    string    `gorm:"size:50" json:"reminder_type"` // irrigation, fertilizer, pesticide, harvest
	Title           string    `gorm:"size:255" json:"title"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	ReminderDate    time.Time `gorm:"column:reminder_date;index" json:"reminder_date"`
	IsCompleted     bool      `gorm:"column:is_completed;default:false" json:"is_completed"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

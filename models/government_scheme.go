package models

import (
	"time"

	"gorm.io/gorm"
)

type GovernmentScheme struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SchemeName         string     `gorm:"size:255;column:scheme_name" json:"scheme_name"`
	SchemeType         string     `gorm:"size:100;index;column:scheme_type" json:"scheme_type"` // subsidy, loan, insurance, ...
	Description        string     `gorm:"type:text" json:"description"`
	Eligibility        string     `gorm:"type:text" json:"eligibility,omitempty"`
	Benefits           string     `gorm:"type:text" json:"benefits,omitempty"`
	ApplicationProcess string     `gorm:"type:text;column:application_process" json:"application_process,omitempty"`
	ContactInfo        string     `gorm:"size:512;column:contact_info" json:"contact_info,omitempty"`
	State              string     `gorm:"size:100;index" json:"state,omitempty"` // empty = nationwide
	District           string     `gorm:"size:100" json:"district,omitempty"`
	StartDate          *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate            *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	IsActive           bool       `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

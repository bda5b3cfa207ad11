package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. A booking starts out pending and only ever moves
// forward: pending -> confirmed -> completed, with cancellation allowed
// from pending or confirmed. completed and cancelled are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ToolID        uint      `gorm:"index;column:tool_id" json:"tool_id"`
	RenterID      uint      `gorm:"index;column:renter_id" json:"renter_id"`
	ReferenceCode string    `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`
	StartDate     time.Time `gorm:"column:start_date;index" json:"start_date"`
	EndDate       time.Time `gorm:"column:end_date" json:"end_date"`

	// TotalPrice is derived from the tool's daily rate at creation and
	// never changes afterwards; there is no reschedule operation.
	TotalPrice float64 `gorm:"column:total_price" json:"total_price"`
	Status     string  `gorm:"size:32;index" json:"status"`

	Tool   Tool   `gorm:"foreignKey:ToolID;references:ID" json:"tool,omitempty"`
	Renter Farmer `gorm:"foreignKey:RenterID;references:ID" json:"-"`
}

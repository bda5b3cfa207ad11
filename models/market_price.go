package models

import (
	"time"
)

type MarketPrice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CropName        string    `gorm:"size:100;index;column:crop_name" json:"crop_name"`
	Variety         string    `gorm:"size:100" json:"variety,omitempty"`
	State           string    `gorm:"size:100;index" json:"state"`
	District        string    `gorm:"size:100" json:"district"`
	MarketName      string    `gorm:"size:255;column:market_name" json:"market_name"`
	PricePerQuintal float64   `gorm:"column:price_per_quintal" json:"price_per_quintal"`
	Currency        string    `gorm:"size:10;default:INR" json:"currency"`
	Date            time.Time `gorm:"index" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code        string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`

	BasePrice       float64 `json:"base_price"`
	OperationalCost float64 `json:"operational_cost"`

	Preparation string `gorm:"size:500" json:"preparation"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

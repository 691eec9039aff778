package models

import "time"

type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:50" json:"category"`
	Unit     string `gorm:"size:20" json:"unit"`

	Quantity   int `json:"quantity"`
	AlertLevel int `json:"alert_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock é derivado, nunca armazenado.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.AlertLevel
}

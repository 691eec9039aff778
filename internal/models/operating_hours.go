package models

import "time"

// Janela de atendimento da clínica por dia da semana.
type OperatingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday int `gorm:"uniqueIndex" json:"weekday"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

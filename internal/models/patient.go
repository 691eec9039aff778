package models

import "time"

// CPF é identidade imutável: definido na criação, nunca atualizado.
type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	CPF       string     `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	BirthDate *time.Time `json:"birth_date"`

	GuardianName  string `gorm:"size:100" json:"guardian_name"`
	GuardianPhone string `gorm:"size:20" json:"guardian_phone"`

	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`
	Notes   string `gorm:"size:500" json:"notes"`

	CreatedByID *uint `json:"created_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

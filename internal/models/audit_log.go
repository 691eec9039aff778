package models

import "time"

// Registro append-only. Nunca atualizado ou removido pela aplicação.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint  `json:"user_id"`
	Action string `gorm:"size:10;not null" json:"action"` // INSERT | UPDATE | DELETE

	TableName string `gorm:"size:50;not null" json:"table_name"`
	RecordID  *uint  `json:"record_id"`

	OldData string `gorm:"type:text" json:"old_data"`
	NewData string `gorm:"type:text" json:"new_data"`

	CreatedAt time.Time `json:"created_at"`
}

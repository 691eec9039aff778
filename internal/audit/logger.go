package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/VidaPediatria/clinic-api/internal/models"
)

const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	tableName string,
	recordID *uint,
	oldData any,
	newData any,
) error {

	if l.db == nil {
		return nil
	}

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		OldData:   marshal(oldData),
		NewData:   marshal(newData),
	}

	return l.db.Create(&entry).Error
}

func marshal(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

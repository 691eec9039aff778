package models

import "time"

type ExamResult struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex:idx_result_appointment_service" json:"appointment_id"`
	ServiceID     uint `gorm:"uniqueIndex:idx_result_appointment_service" json:"service_id"`
	PatientID     uint `json:"patient_id"`

	ResultData string `gorm:"type:text" json:"result_data"`
	Notes      string `gorm:"size:500" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	IssuedAt *time.Time `json:"issued_at"`

	CreatedByID *uint `json:"created_by_id"`
	UpdatedByID *uint `json:"updated_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	ScheduledAt time.Time `json:"scheduled_at"`

	Status string `gorm:"size:30;default:'scheduled'" json:"status"`

	PaymentMethod string `gorm:"size:20" json:"payment_method"`
	InsuranceType string `gorm:"size:20" json:"insurance_type"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedByID *uint `json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`

	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Services []AppointmentService `json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Linha do join appointment <-> service. Carrega cópia desnormalizada do
// resultado; a linha canônica vive em exam_results.
type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex:idx_appointment_service" json:"appointment_id"`

	ServiceID uint    `gorm:"uniqueIndex:idx_appointment_service" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ResultData string `gorm:"type:text" json:"result_data"`
	Notes      string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
